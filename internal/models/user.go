package model

import "time"

// Rôles connus. Le coeur ne consomme que le rôle et le nom d'affichage.
const (
	RoleCitizen = "citizen"
	RoleAdmin   = "admin"
)

type UserProfile struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"` // citizen, admin
	CreatedAt time.Time `json:"createdAt"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token string      `json:"token"`
	User  UserProfile `json:"user"`
}

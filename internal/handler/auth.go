package handler

import (
	"net/http"

	"github.com/Vedlovable/Samadhaan-Setu/internal/database"
	"github.com/Vedlovable/Samadhaan-Setu/internal/middleware"
	model "github.com/Vedlovable/Samadhaan-Setu/internal/models"
	"github.com/Vedlovable/Samadhaan-Setu/internal/utils"
	"github.com/google/uuid"
)

// Login vérifie les identifiants et ouvre une session de 7 jours
func Login(w http.ResponseWriter, r *http.Request) {
	var req model.LoginRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.Error(w, http.StatusBadRequest, "JSON invalide", err)
		return
	}

	if req.Email == "" || req.Password == "" {
		utils.ErrorSimple(w, http.StatusBadRequest, "email et mot de passe requis")
		return
	}

	ctx := r.Context()

	var user model.UserProfile
	err := database.DB.QueryRow(ctx, `
		SELECT id, name, email, role, created_at
		FROM users
		WHERE email = $1 AND password_hash = crypt($2, password_hash)
	`, req.Email, req.Password).Scan(&user.ID, &user.Name, &user.Email, &user.Role, &user.CreatedAt)
	if err != nil {
		utils.ErrorSimple(w, http.StatusUnauthorized, "identifiants invalides")
		return
	}

	token := uuid.NewString()
	_, err = database.DB.Exec(ctx, `
		INSERT INTO sessions(token, user_id, is_active, expires_at)
		VALUES($1, $2, true, NOW() + interval '7 days')
	`, token, user.ID)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "impossible de créer la session", err)
		return
	}

	utils.Success(w, model.LoginResponse{Token: token, User: user})
}

// Logout désactive la session courante
func Logout(w http.ResponseWriter, r *http.Request) {
	token, err := middleware.GetTokenFromContext(r)
	if err != nil {
		utils.ErrorSimple(w, http.StatusUnauthorized, "session introuvable")
		return
	}

	_, err = database.DB.Exec(r.Context(), `UPDATE sessions SET is_active = false WHERE token = $1`, token)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "impossible de fermer la session", err)
		return
	}

	utils.Message(w, "logged out")
}

// Me retourne l'utilisateur courant
func Me(w http.ResponseWriter, r *http.Request) {
	user, err := middleware.GetUserFromContext(r)
	if err != nil {
		utils.ErrorSimple(w, http.StatusUnauthorized, "authentification requise")
		return
	}
	utils.Success(w, user)
}

package model

import "time"

// IssueStatus vocabulaire de statut côté base distante
type IssueStatus string

const (
	IssuePending    IssueStatus = "Pending"
	IssueInProgress IssueStatus = "In Progress"
	IssueResolved   IssueStatus = "Resolved"
)

// Issue représente un signalement citoyen stocké dans la table distante
type Issue struct {
	ID          int64       `json:"id"`
	UserID      string      `json:"userId"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Location    string      `json:"location"`
	Status      IssueStatus `json:"status"`
	CreatedAt   time.Time   `json:"createdAt"`
	Lat         *float64    `json:"lat,omitempty"`
	Lng         *float64    `json:"lng,omitempty"`
}

// IssueWithMedia est la projection de liste : issue + URLs médias regroupées par type
type IssueWithMedia struct {
	Issue
	Images []string `json:"images"`
	Audios []string `json:"audios"`
}

// Media est une pièce jointe d'un Issue (immutable après création)
type Media struct {
	ID        int64     `json:"id"`
	IssueID   int64     `json:"issueId"`
	Type      string    `json:"type"` // image, audio
	URL       string    `json:"url"`
	CreatedAt time.Time `json:"createdAt"`
}

type CreateIssueRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Category    string   `json:"category"` // road, lighting, sanitation, water, parks
	Priority    string   `json:"priority"` // low, medium, high
	Location    string   `json:"location"`
	Lat         *float64 `json:"lat,omitempty"`
	Lng         *float64 `json:"lng,omitempty"`
	Address     string   `json:"address,omitempty"`
}

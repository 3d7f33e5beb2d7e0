package model

import "time"

// ReportStatus vocabulaire de statut côté store local (disjoint de IssueStatus)
type ReportStatus string

const (
	ReportOpen       ReportStatus = "open"
	ReportInProgress ReportStatus = "in_progress"
	ReportResolved   ReportStatus = "resolved"
)

// Report est un signalement stocké uniquement dans le store local de l'appareil.
// L'ID est assigné côté client (timestamp) et n'est pas garanti unique entre appareils.
type Report struct {
	ID          int64        `json:"id"`
	Title       string       `json:"title"`
	Category    string       `json:"category"`
	Priority    string       `json:"priority"`
	Description string       `json:"description"`
	Location    string       `json:"location"`
	Status      ReportStatus `json:"status"`
	Lat         *float64     `json:"lat,omitempty"`
	Lng         *float64     `json:"lng,omitempty"`
	Address     string       `json:"address,omitempty"`
	Images      []string     `json:"images,omitempty"` // data URLs inline
	Audio       string       `json:"audio,omitempty"`  // data URL inline
	ReportedBy  string       `json:"reportedBy"`
	CreatedAt   time.Time    `json:"createdAt"`
}

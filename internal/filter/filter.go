// Package filter calcule la projection filtrée/recherchée de l'ensemble des
// signalements pour l'affichage. Recalcul complet à chaque changement :
// l'ensemble de travail est petit, pas besoin de diffing incrémental.
package filter

import (
	"strings"
	"time"

	model "github.com/Vedlovable/Samadhaan-Setu/internal/models"
)

// Record est la projection unifiée d'un Issue distant ou d'un Report local.
// Status garde le vocabulaire du backend d'origine ; le filtrage et les stats
// passent par la forme normalisée (vocabulaire local).
type Record struct {
	Kind          model.EntityKind `json:"kind"`
	ID            int64            `json:"id"`
	Title         string           `json:"title"`
	Category      string           `json:"category,omitempty"`
	Priority      string           `json:"priority,omitempty"`
	Location      string           `json:"location"`
	Status        string           `json:"status"`
	ReportedBy    string           `json:"reportedBy,omitempty"`
	Assignee      string           `json:"assignee,omitempty"`
	CreatedAt     time.Time        `json:"createdAt"`
	Lat           *float64         `json:"lat,omitempty"`
	Lng           *float64         `json:"lng,omitempty"`
	Images        []string         `json:"images,omitempty"`
	Audios        []string         `json:"audios,omitempty"`
	StoredLocally bool             `json:"storedLocally"`
}

// Criteria porte les trois prédicats indépendants. "all" ou vide = joker.
type Criteria struct {
	Status   string
	Category string
	Query    string
}

// Stats sont les compteurs des cartes du tableau de bord.
type Stats struct {
	Total      int `json:"total"`
	Open       int `json:"open"`
	InProgress int `json:"inProgress"`
	Resolved   int `json:"resolved"`
}

// Marker est un point affichable sur la carte (lat et lng tous deux présents).
type Marker struct {
	Kind   model.EntityKind `json:"kind"`
	ID     int64            `json:"id"`
	Title  string           `json:"title"`
	Status string           `json:"status"`
	Lat    float64          `json:"lat"`
	Lng    float64          `json:"lng"`
}

// Normalize ramène un statut de n'importe quel backend au vocabulaire local.
func Normalize(status string) model.ReportStatus {
	switch status {
	case string(model.IssuePending), string(model.ReportOpen):
		return model.ReportOpen
	case string(model.IssueInProgress), string(model.ReportInProgress):
		return model.ReportInProgress
	case string(model.IssueResolved), string(model.ReportResolved):
		return model.ReportResolved
	default:
		return model.ReportStatus(status)
	}
}

// Apply retourne la sous-séquence satisfaisant les trois prédicats (conjonction),
// dans l'ordre d'origine. Recherche insensible à la casse sur titre, lieu,
// rapporteur et assigné.
func Apply(records []Record, c Criteria) []Record {
	q := strings.ToLower(strings.TrimSpace(c.Query))
	out := make([]Record, 0, len(records))

	for _, r := range records {
		if !wildcard(c.Status) && Normalize(r.Status) != Normalize(c.Status) {
			continue
		}
		if !wildcard(c.Category) && !strings.EqualFold(r.Category, c.Category) {
			continue
		}
		if q != "" && !matchesQuery(r, q) {
			continue
		}
		out = append(out, r)
	}
	return out
}

// ComputeStats compte les records par statut normalisé.
func ComputeStats(records []Record) Stats {
	s := Stats{Total: len(records)}
	for _, r := range records {
		switch Normalize(r.Status) {
		case model.ReportOpen:
			s.Open++
		case model.ReportInProgress:
			s.InProgress++
		case model.ReportResolved:
			s.Resolved++
		}
	}
	return s
}

// Markers projette les records géolocalisés en points de carte.
func Markers(records []Record) []Marker {
	out := make([]Marker, 0, len(records))
	for _, r := range records {
		if r.Lat == nil || r.Lng == nil {
			continue
		}
		out = append(out, Marker{Kind: r.Kind, ID: r.ID, Title: r.Title, Status: r.Status, Lat: *r.Lat, Lng: *r.Lng})
	}
	return out
}

func wildcard(v string) bool {
	return v == "" || v == "all"
}

func matchesQuery(r Record, q string) bool {
	for _, f := range []string{r.Title, r.Location, r.ReportedBy, r.Assignee} {
		if strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	return false
}

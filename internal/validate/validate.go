// Package validate vérifie les champs d'une soumission avant toute persistance.
package validate

import (
	"errors"
	"strings"

	model "github.com/Vedlovable/Samadhaan-Setu/internal/models"
)

var categories = map[string]bool{
	"road": true, "lighting": true, "sanitation": true, "water": true, "parks": true,
}

var priorities = map[string]bool{
	"low": true, "medium": true, "high": true,
}

// Submission vérifie les champs requis et les vocabulaires fermés.
// Toute erreur est retournée avant la moindre écriture.
func Submission(req model.CreateIssueRequest) error {
	if strings.TrimSpace(req.Title) == "" {
		return errors.New("title required")
	}
	if strings.TrimSpace(req.Description) == "" {
		return errors.New("description required")
	}
	if req.Category == "" {
		return errors.New("category required")
	}
	if !categories[req.Category] {
		return errors.New("invalid category: " + req.Category)
	}
	if req.Priority != "" && !priorities[req.Priority] {
		return errors.New("invalid priority: " + req.Priority)
	}
	return nil
}

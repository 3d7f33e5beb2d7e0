// Package status implémente les deux cycles de statut à trois états.
// Chaque backend a son propre vocabulaire ; les deux anneaux sont indépendants.
package status

import model "github.com/Vedlovable/Samadhaan-Setu/internal/models"

// NextReport retourne le statut suivant dans l'anneau local :
// open → in_progress → resolved → open
// Une valeur inconnue retombe sur le premier état de l'anneau.
func NextReport(s model.ReportStatus) model.ReportStatus {
	switch s {
	case model.ReportOpen:
		return model.ReportInProgress
	case model.ReportInProgress:
		return model.ReportResolved
	default:
		return model.ReportOpen
	}
}

// NextIssue retourne le statut suivant dans l'anneau distant :
// Pending → In Progress → Resolved → Pending
func NextIssue(s model.IssueStatus) model.IssueStatus {
	switch s {
	case model.IssuePending:
		return model.IssueInProgress
	case model.IssueInProgress:
		return model.IssueResolved
	default:
		return model.IssuePending
	}
}

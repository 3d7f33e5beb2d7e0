package model

import (
	"fmt"
	"time"
)

// EntityKind discrimine les deux familles d'entités partageant le journal de suivi.
type EntityKind string

const (
	KindIssue  EntityKind = "issue"
	KindReport EntityKind = "report"
)

// UpdateKey identifie l'entité propriétaire d'une liste de notes de suivi.
// La clé composite (kind, id) remplace l'ancien préfixage par chaîne, qui laissait
// les IDs d'issues sans préfixe et pouvait entrer en collision avec un report.
type UpdateKey struct {
	Kind EntityKind
	ID   int64
}

func (k UpdateKey) String() string {
	return fmt.Sprintf("%s:%d", k.Kind, k.ID)
}

// ProgressUpdate est une note de suivi horodatée avec un instantané du statut.
type ProgressUpdate struct {
	Message   string    `json:"message"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

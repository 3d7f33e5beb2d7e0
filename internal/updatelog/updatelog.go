// Package updatelog gère le journal des notes de suivi, en append-only,
// stocké sous une seule clé du store local.
package updatelog

import (
	"encoding/json"
	"fmt"

	"github.com/Vedlovable/Samadhaan-Setu/internal/logger"
	model "github.com/Vedlovable/Samadhaan-Setu/internal/models"
	"github.com/Vedlovable/Samadhaan-Setu/internal/storage"
)

// StorageKey est la clé du store local sous laquelle tout le journal est sérialisé.
const StorageKey = "issue_updates"

// DefaultMessage remplace un message vide lors de l'enregistrement d'une note.
const DefaultMessage = "Status updated"

type Store struct {
	kv storage.KV
}

func New(kv storage.KV) *Store {
	return &Store{kv: kv}
}

// Read désérialise tout le journal. Clé absente ou contenu corrompu
// produisent une map vide : le cache local est jetable, pas une source de vérité.
func (s *Store) Read() map[string][]model.ProgressUpdate {
	raw, err := s.kv.Get(StorageKey)
	if err != nil {
		return map[string][]model.ProgressUpdate{}
	}

	var updates map[string][]model.ProgressUpdate
	if err := json.Unmarshal(raw, &updates); err != nil {
		logger.Warning("updatelog: contenu corrompu, journal réinitialisé: %v", err)
		return map[string][]model.ProgressUpdate{}
	}
	if updates == nil {
		updates = map[string][]model.ProgressUpdate{}
	}
	return updates
}

// Write sérialise et remplace tout le journal (snapshot complet, pas un merge).
func (s *Store) Write(updates map[string][]model.ProgressUpdate) error {
	raw, err := json.Marshal(updates)
	if err != nil {
		return fmt.Errorf("updatelog marshal: %w", err)
	}
	if err := s.kv.Set(StorageKey, raw); err != nil {
		return fmt.Errorf("updatelog write: %w", err)
	}
	return nil
}

// Append lit le journal, pousse entry en fin de liste pour key (créée si absente)
// et réécrit le tout. Non atomique entre appelants concurrents : dernier écrivain gagne.
func (s *Store) Append(key model.UpdateKey, entry model.ProgressUpdate) error {
	if entry.Message == "" {
		entry.Message = DefaultMessage
	}

	updates := s.Read()
	k := key.String()
	updates[k] = append(updates[k], entry)
	return s.Write(updates)
}

// List retourne les notes de key, de la plus récente à la plus ancienne (affichage).
func (s *Store) List(key model.UpdateKey) []model.ProgressUpdate {
	entries := s.Read()[key.String()]
	out := make([]model.ProgressUpdate, 0, len(entries))
	for i := len(entries) - 1; i >= 0; i-- {
		out = append(out, entries[i])
	}
	return out
}

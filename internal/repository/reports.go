package repository

import (
	"encoding/json"
	"fmt"

	"github.com/Vedlovable/Samadhaan-Setu/internal/logger"
	model "github.com/Vedlovable/Samadhaan-Setu/internal/models"
	"github.com/Vedlovable/Samadhaan-Setu/internal/storage"
)

// ReportsKey est la clé du store local sous laquelle la liste des reports est sérialisée.
const ReportsKey = "reports"

// ReportRepo est la moitié locale du repository : la liste entière des
// reports vit sous une seule clé du store local, en JSON.
type ReportRepo struct {
	kv storage.KV
}

func NewReportRepo(kv storage.KV) *ReportRepo {
	return &ReportRepo{kv: kv}
}

// List lit et parse la liste locale. Clé absente ou JSON corrompu produisent
// une liste vide avec un avertissement : le cache local est jetable, l'erreur
// n'est jamais remontée (politique inverse du chemin distant, assumée).
func (r *ReportRepo) List() []model.Report {
	raw, err := r.kv.Get(ReportsKey)
	if err != nil {
		return []model.Report{}
	}

	var reports []model.Report
	if err := json.Unmarshal(raw, &reports); err != nil {
		logger.Warning("reports: contenu local corrompu, liste réinitialisée: %v", err)
		return []model.Report{}
	}
	return reports
}

// Get retourne le report d'ID donné, ou une erreur s'il est absent.
func (r *ReportRepo) Get(id int64) (*model.Report, error) {
	for _, rep := range r.List() {
		if rep.ID == id {
			return &rep, nil
		}
	}
	return nil, fmt.Errorf("report %d not found", id)
}

// Append ajoute un report en fin de liste et réécrit le tout.
func (r *ReportRepo) Append(report model.Report) error {
	reports := append(r.List(), report)
	return r.write(reports)
}

// UpdateStatus réécrit le record en place dans la liste complète.
func (r *ReportRepo) UpdateStatus(id int64, status model.ReportStatus) error {
	reports := r.List()
	found := false
	for i := range reports {
		if reports[i].ID == id {
			reports[i].Status = status
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("report %d not found", id)
	}
	return r.write(reports)
}

func (r *ReportRepo) write(reports []model.Report) error {
	raw, err := json.Marshal(reports)
	if err != nil {
		return fmt.Errorf("reports marshal: %w", err)
	}
	if err := r.kv.Set(ReportsKey, raw); err != nil {
		return fmt.Errorf("reports write: %w", err)
	}
	return nil
}

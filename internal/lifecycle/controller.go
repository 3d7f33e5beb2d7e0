// Package lifecycle orchestre les actions d'administration et de soumission :
// assignation, avancement de statut, notes de suivi, et la bascule locale
// quand le backend distant est indisponible.
package lifecycle

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/Vedlovable/Samadhaan-Setu/internal/filter"
	"github.com/Vedlovable/Samadhaan-Setu/internal/logger"
	"github.com/Vedlovable/Samadhaan-Setu/internal/metrics"
	model "github.com/Vedlovable/Samadhaan-Setu/internal/models"
	"github.com/Vedlovable/Samadhaan-Setu/internal/repository"
	"github.com/Vedlovable/Samadhaan-Setu/internal/status"
)

// DefaultAssignee est le libellé utilisé quand l'admin n'a pas de nom d'affichage.
const DefaultAssignee = "Admin"

// IssueStore est la moitié distante du repository vue par le contrôleur.
type IssueStore interface {
	List(ctx context.Context) ([]model.IssueWithMedia, error)
	Get(ctx context.Context, id int64) (*model.Issue, error)
	Create(ctx context.Context, userID string, req model.CreateIssueRequest, images []repository.UploadFile, audio *repository.UploadFile) (int64, error)
	UpdateStatus(ctx context.Context, id int64, status model.IssueStatus) error
}

// ReportStore est la moitié locale.
type ReportStore interface {
	List() []model.Report
	Get(id int64) (*model.Report, error)
	Append(report model.Report) error
	UpdateStatus(id int64, status model.ReportStatus) error
}

// UpdateLog est le journal des notes de suivi.
type UpdateLog interface {
	Append(key model.UpdateKey, entry model.ProgressUpdate) error
	List(key model.UpdateKey) []model.ProgressUpdate
}

// Dialog est le contexte de mise à jour "courant" : une seule entité à la fois.
type Dialog struct {
	Kind  model.EntityKind
	ID    int64
	Draft string
}

// Controller relie cycle de statut, persistance et journal pour chaque action.
type Controller struct {
	issues  IssueStore
	reports ReportStore
	updates UpdateLog

	mu        sync.Mutex
	assignees map[model.UpdateKey]string // overlay en mémoire, non persisté
	dialog    *Dialog
}

func NewController(issues IssueStore, reports ReportStore, updates UpdateLog) *Controller {
	return &Controller{
		issues:    issues,
		reports:   reports,
		updates:   updates,
		assignees: make(map[model.UpdateKey]string),
	}
}

// Assign affecte l'entité à l'admin courant. Idempotent : une entité déjà
// assignée garde son assigné. Nom vide → libellé générique.
func (c *Controller) Assign(kind model.EntityKind, id int64, adminName string) string {
	c.mu.Lock()
	defer c.mu.Unlock()

	key := model.UpdateKey{Kind: kind, ID: id}
	if current, ok := c.assignees[key]; ok && current != "" {
		return current
	}
	if adminName == "" {
		adminName = DefaultAssignee
	}
	c.assignees[key] = adminName
	return adminName
}

// OpenDialog capture l'entité "courante" et efface le brouillon.
func (c *Controller) OpenDialog(kind model.EntityKind, id int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.dialog = &Dialog{Kind: kind, ID: id}
}

// CancelDialog ferme le dialogue sans toucher ni statut ni journal.
func (c *Controller) CancelDialog() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.dialog = nil
}

// CurrentDialog retourne le dialogue en cours, ou nil.
func (c *Controller) CurrentDialog() *Dialog {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.dialog == nil {
		return nil
	}
	d := *c.dialog
	return &d
}

// SaveUpdate avance le statut d'un cran dans le cycle du backend propriétaire,
// persiste le nouveau statut, ajoute la note au journal (message par défaut si
// vide) puis ferme le dialogue. Les étapes ne sont pas transactionnelles :
// un échec de persistance interrompt avant l'écriture du journal.
func (c *Controller) SaveUpdate(ctx context.Context, kind model.EntityKind, id int64, message string) (string, error) {
	var newStatus string

	switch kind {
	case model.KindIssue:
		issue, err := c.issues.Get(ctx, id)
		if err != nil {
			return "", err
		}
		next := status.NextIssue(issue.Status)
		if err := c.issues.UpdateStatus(ctx, id, next); err != nil {
			return "", err
		}
		newStatus = string(next)

	case model.KindReport:
		report, err := c.reports.Get(id)
		if err != nil {
			return "", err
		}
		next := status.NextReport(report.Status)
		if err := c.reports.UpdateStatus(id, next); err != nil {
			return "", err
		}
		newStatus = string(next)

	default:
		return "", fmt.Errorf("unknown entity kind %q", kind)
	}

	key := model.UpdateKey{Kind: kind, ID: id}
	if err := c.updates.Append(key, model.ProgressUpdate{
		Message:   message,
		Status:    newStatus,
		CreatedAt: time.Now(),
	}); err != nil {
		// Statut déjà persisté : état partiellement mis à jour, assumé
		return newStatus, fmt.Errorf("progress note not recorded: %w", err)
	}

	metrics.StatusUpdatesTotal.WithLabelValues(string(kind)).Inc()

	c.mu.Lock()
	if c.dialog != nil && c.dialog.Kind == kind && c.dialog.ID == id {
		c.dialog = nil
	}
	c.mu.Unlock()

	return newStatus, nil
}

// SubmitResult indique où la soumission a fini par être stockée.
type SubmitResult struct {
	ID            int64 `json:"id"`
	StoredLocally bool  `json:"storedLocally"`
}

// SubmitReport tente d'abord le chemin distant ; sur tout échec, construit un
// Report local (ID = timestamp client) et l'ajoute à la liste locale. La
// bascule est silencieuse pour l'utilisateur, seul un avertissement est loggé.
func (c *Controller) SubmitReport(ctx context.Context, user model.UserProfile, req model.CreateIssueRequest, images []repository.UploadFile, audio *repository.UploadFile) (SubmitResult, error) {
	issueID, err := c.issues.Create(ctx, user.ID, req, images, audio)
	if err == nil {
		metrics.SubmissionsTotal.WithLabelValues("remote").Inc()
		return SubmitResult{ID: issueID}, nil
	}

	logger.Warning("soumission distante échouée, bascule sur le store local: %v", err)
	metrics.FallbacksTotal.Inc()

	report := model.Report{
		ID:          time.Now().UnixMilli(),
		Title:       req.Title,
		Category:    req.Category,
		Priority:    req.Priority,
		Description: req.Description,
		Location:    req.Location,
		Status:      model.ReportOpen,
		Lat:         req.Lat,
		Lng:         req.Lng,
		Address:     req.Address,
		ReportedBy:  user.Name,
		CreatedAt:   time.Now(),
	}
	for _, img := range images {
		report.Images = append(report.Images, encodeDataURL(img.Data))
	}
	if audio != nil {
		report.Audio = encodeDataURL(audio.Data)
	}

	if err := c.reports.Append(report); err != nil {
		return SubmitResult{}, fmt.Errorf("local fallback failed: %w", err)
	}

	metrics.SubmissionsTotal.WithLabelValues("local").Inc()
	return SubmitResult{ID: report.ID, StoredLocally: true}, nil
}

// encodeDataURL encode un asset binaire en data URL base64, la forme inline
// d'un Report local : des octets bruts ne survivent pas à la sérialisation JSON.
func encodeDataURL(data []byte) string {
	mime := http.DetectContentType(data)
	return fmt.Sprintf("data:%s;base64,%s", mime, base64.StdEncoding.EncodeToString(data))
}

// Records construit la projection fusionnée des deux backends, avec l'overlay
// d'assignation. Une erreur du backend distant est remontée telle quelle.
func (c *Controller) Records(ctx context.Context) ([]filter.Record, error) {
	issues, err := c.issues.List(ctx)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	assignees := make(map[model.UpdateKey]string, len(c.assignees))
	for k, v := range c.assignees {
		assignees[k] = v
	}
	c.mu.Unlock()

	records := make([]filter.Record, 0, len(issues))
	for _, i := range issues {
		records = append(records, filter.Record{
			Kind:      model.KindIssue,
			ID:        i.ID,
			Title:     i.Title,
			Location:  i.Location,
			Status:    string(i.Status),
			CreatedAt: i.CreatedAt,
			Lat:       i.Lat,
			Lng:       i.Lng,
			Images:    i.Images,
			Audios:    i.Audios,
			Assignee:  assignees[model.UpdateKey{Kind: model.KindIssue, ID: i.ID}],
		})
	}
	for _, r := range c.reports.List() {
		records = append(records, filter.Record{
			Kind:          model.KindReport,
			ID:            r.ID,
			Title:         r.Title,
			Category:      r.Category,
			Priority:      r.Priority,
			Location:      r.Location,
			Status:        string(r.Status),
			ReportedBy:    r.ReportedBy,
			CreatedAt:     r.CreatedAt,
			Lat:           r.Lat,
			Lng:           r.Lng,
			Images:        r.Images,
			StoredLocally: true,
			Assignee:      assignees[model.UpdateKey{Kind: model.KindReport, ID: r.ID}],
		})
	}
	return records, nil
}

// Updates retourne le journal d'une entité, du plus récent au plus ancien.
func (c *Controller) Updates(kind model.EntityKind, id int64) []model.ProgressUpdate {
	return c.updates.List(model.UpdateKey{Kind: kind, ID: id})
}

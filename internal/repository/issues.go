// Package repository lit et écrit les signalements depuis les deux backends :
// la table Postgres distante (issues + media) et le store local de l'appareil.
package repository

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/Vedlovable/Samadhaan-Setu/internal/logger"
	model "github.com/Vedlovable/Samadhaan-Setu/internal/models"
	"github.com/Vedlovable/Samadhaan-Setu/internal/scanner"
	"github.com/Vedlovable/Samadhaan-Setu/internal/utils"
	"github.com/jackc/pgx/v5/pgxpool"
)

// UploadFile est un asset binaire reçu d'une soumission multipart.
type UploadFile struct {
	Filename string
	Data     []byte
}

// MediaUploader est le sous-ensemble du media store dont le repository a besoin.
type MediaUploader interface {
	UploadIssueImage(ctx context.Context, file io.Reader, issueID int64, filename string) (url, publicID string, err error)
	UploadVoiceNote(ctx context.Context, file io.Reader, issueID int64) (url, publicID string, err error)
	Delete(ctx context.Context, publicID, resourceType string) error
}

// IssueRepo est la moitié distante du repository.
type IssueRepo struct {
	db    *pgxpool.Pool
	media MediaUploader
}

func NewIssueRepo(db *pgxpool.Pool, media MediaUploader) *IssueRepo {
	return &IssueRepo{db: db, media: media}
}

// List récupère tous les issues avec leurs URLs médias regroupées par type.
// Issues du plus récent au plus ancien, médias du plus ancien au plus récent.
// Toute erreur de fetch est remontée à l'appelant (pas de fallback liste vide).
func (r *IssueRepo) List(ctx context.Context) ([]model.IssueWithMedia, error) {
	rows, err := r.db.Query(ctx, `
		SELECT
			i.id, i.user_id, i.title, i.description, i.location, i.status, i.created_at, i.lat, i.lng,
			COALESCE(array_agg(m.url ORDER BY m.created_at) FILTER (WHERE m.type = 'image'), '{}') AS images,
			COALESCE(array_agg(m.url ORDER BY m.created_at) FILTER (WHERE m.type = 'audio'), '{}') AS audios
		FROM issues i
		LEFT JOIN media m ON m.issue_id = i.id
		GROUP BY i.id
		ORDER BY i.created_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("list issues: %w", err)
	}
	defer rows.Close()

	var issues []model.IssueWithMedia
	for rows.Next() {
		issue, err := scanner.ScanIssueWithMedia(rows)
		if err != nil {
			return nil, fmt.Errorf("scan issue: %w", err)
		}
		issues = append(issues, *issue)
	}
	return issues, rows.Err()
}

// Get récupère un issue par son ID.
func (r *IssueRepo) Get(ctx context.Context, id int64) (*model.Issue, error) {
	row := r.db.QueryRow(ctx, `
		SELECT id, user_id, title, description, location, status, created_at, lat, lng
		FROM issues
		WHERE id = $1
	`, id)

	issue, err := scanner.ScanIssue(row)
	if err != nil {
		return nil, fmt.Errorf("get issue %d: %w", id, err)
	}
	return issue, nil
}

// Create insère la ligne issue, uploade chaque image puis la note vocale
// éventuelle, et insère une ligne media par asset. En cas d'échec après
// création de la ligne, les étapes déjà faites sont compensées (suppression
// des assets uploadés et de la ligne issue) avant de retourner l'erreur,
// pour que le fallback local de l'appelant ne produise pas de doublon.
func (r *IssueRepo) Create(ctx context.Context, userID string, req model.CreateIssueRequest, images []UploadFile, audio *UploadFile) (int64, error) {
	var issueID int64
	err := r.db.QueryRow(ctx, `
		INSERT INTO issues(user_id, title, description, location, status, lat, lng, created_at)
		VALUES($1, $2, $3, $4, $5, $6, $7, NOW())
		RETURNING id
	`, userID, req.Title, req.Description, req.Location, model.IssuePending,
		utils.PointerToNullFloat64(req.Lat), utils.PointerToNullFloat64(req.Lng),
	).Scan(&issueID)
	if err != nil {
		// Échec avant tout upload : rien à compenser
		return 0, fmt.Errorf("insert issue: %w", err)
	}

	type uploaded struct {
		url          string
		publicID     string
		mediaType    string
		resourceType string
	}
	var assets []uploaded

	compensate := func(cause error) error {
		for _, a := range assets {
			if err := r.media.Delete(ctx, a.publicID, a.resourceType); err != nil {
				logger.Warning("compensation: suppression asset %s échouée: %v", a.publicID, err)
			}
		}
		if _, err := r.db.Exec(ctx, `DELETE FROM media WHERE issue_id = $1`, issueID); err != nil {
			logger.Warning("compensation: suppression media de l'issue %d échouée: %v", issueID, err)
		}
		if _, err := r.db.Exec(ctx, `DELETE FROM issues WHERE id = $1`, issueID); err != nil {
			logger.Warning("compensation: suppression issue %d échouée: %v", issueID, err)
		}
		return cause
	}

	for _, img := range images {
		url, publicID, err := r.media.UploadIssueImage(ctx, bytes.NewReader(img.Data), issueID, img.Filename)
		if err != nil {
			return 0, compensate(err)
		}
		assets = append(assets, uploaded{url: url, publicID: publicID, mediaType: "image", resourceType: "image"})
	}

	if audio != nil {
		url, publicID, err := r.media.UploadVoiceNote(ctx, bytes.NewReader(audio.Data), issueID)
		if err != nil {
			return 0, compensate(err)
		}
		assets = append(assets, uploaded{url: url, publicID: publicID, mediaType: "audio", resourceType: "video"})
	}

	for _, a := range assets {
		_, err := r.db.Exec(ctx, `
			INSERT INTO media(issue_id, type, url, created_at)
			VALUES($1, $2, $3, NOW())
		`, issueID, a.mediaType, a.url)
		if err != nil {
			return 0, compensate(fmt.Errorf("insert media: %w", err))
		}
	}

	return issueID, nil
}

// UpdateStatus met à jour le statut d'une seule ligne. L'appelant doit
// refetch la liste après succès, rien n'est propagé automatiquement.
func (r *IssueRepo) UpdateStatus(ctx context.Context, id int64, status model.IssueStatus) error {
	res, err := r.db.Exec(ctx, `UPDATE issues SET status = $1 WHERE id = $2`, status, id)
	if err != nil {
		return fmt.Errorf("update issue %d status: %w", id, err)
	}
	if res.RowsAffected() == 0 {
		return fmt.Errorf("issue %d not found", id)
	}
	return nil
}

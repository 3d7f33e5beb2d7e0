package scanner

import (
	"database/sql"

	model "github.com/Vedlovable/Samadhaan-Setu/internal/models"
	"github.com/Vedlovable/Samadhaan-Setu/internal/utils"
)

// ScanIssue scanne une ligne SQL vers un Issue
// Utilise les types sql.Null* et les convertit automatiquement
func ScanIssue(scanner interface {
	Scan(dest ...interface{}) error
}) (*model.Issue, error) {
	var i model.Issue
	var lat, lng sql.NullFloat64

	err := scanner.Scan(
		&i.ID, &i.UserID, &i.Title, &i.Description, &i.Location,
		&i.Status, &i.CreatedAt, &lat, &lng,
	)
	if err != nil {
		return nil, err
	}

	i.Lat = utils.NullFloat64ToPointer(lat)
	i.Lng = utils.NullFloat64ToPointer(lng)

	return &i, nil
}

// ScanIssueWithMedia scanne une ligne du join issues/media vers un IssueWithMedia.
// Les colonnes images et audios sont des text[] agrégés, scannés nativement par pgx.
func ScanIssueWithMedia(scanner interface {
	Scan(dest ...interface{}) error
}) (*model.IssueWithMedia, error) {
	var i model.IssueWithMedia
	var lat, lng sql.NullFloat64

	err := scanner.Scan(
		&i.ID, &i.UserID, &i.Title, &i.Description, &i.Location,
		&i.Status, &i.CreatedAt, &lat, &lng,
		&i.Images, &i.Audios,
	)
	if err != nil {
		return nil, err
	}

	i.Lat = utils.NullFloat64ToPointer(lat)
	i.Lng = utils.NullFloat64ToPointer(lng)
	if i.Images == nil {
		i.Images = []string{}
	}
	if i.Audios == nil {
		i.Audios = []string{}
	}

	return &i, nil
}

package repository

import (
	"testing"
	"time"

	model "github.com/Vedlovable/Samadhaan-Setu/internal/models"
	"github.com/Vedlovable/Samadhaan-Setu/internal/storage/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListEmptyWhenKeyMissing(t *testing.T) {
	repo := NewReportRepo(memory.New())
	assert.Empty(t, repo.List())
}

func TestListEmptyWhenPayloadCorrupt(t *testing.T) {
	kv := memory.New()
	require.NoError(t, kv.Set(ReportsKey, []byte("[{broken")))

	repo := NewReportRepo(kv)
	assert.Empty(t, repo.List())
}

func TestAppendThenList(t *testing.T) {
	repo := NewReportRepo(memory.New())

	lat, lng := 10.0, 20.0
	require.NoError(t, repo.Append(model.Report{ID: 1, Title: "Pothole", Status: model.ReportOpen, Lat: &lat, Lng: &lng, CreatedAt: time.Now()}))
	require.NoError(t, repo.Append(model.Report{ID: 2, Title: "Street light", Status: model.ReportResolved, CreatedAt: time.Now()}))

	reports := repo.List()
	require.Len(t, reports, 2)
	assert.Equal(t, int64(1), reports[0].ID)
	assert.Equal(t, int64(2), reports[1].ID)

	// Un seul des deux a des coordonnées exploitables pour la carte
	withCoords := 0
	for _, r := range reports {
		if r.Lat != nil && r.Lng != nil {
			withCoords++
		}
	}
	assert.Equal(t, 1, withCoords)
}

func TestUpdateStatusRewritesInPlace(t *testing.T) {
	repo := NewReportRepo(memory.New())
	require.NoError(t, repo.Append(model.Report{ID: 1, Status: model.ReportOpen}))
	require.NoError(t, repo.Append(model.Report{ID: 2, Status: model.ReportOpen}))

	require.NoError(t, repo.UpdateStatus(2, model.ReportInProgress))

	reports := repo.List()
	assert.Equal(t, model.ReportOpen, reports[0].Status)
	assert.Equal(t, model.ReportInProgress, reports[1].Status)
}

func TestUpdateStatusUnknownID(t *testing.T) {
	repo := NewReportRepo(memory.New())
	assert.Error(t, repo.UpdateStatus(99, model.ReportResolved))
}

func TestGet(t *testing.T) {
	repo := NewReportRepo(memory.New())
	require.NoError(t, repo.Append(model.Report{ID: 5, Title: "Leak"}))

	got, err := repo.Get(5)
	require.NoError(t, err)
	assert.Equal(t, "Leak", got.Title)

	_, err = repo.Get(6)
	assert.Error(t, err)
}

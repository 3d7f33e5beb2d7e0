package filter

import (
	"testing"

	model "github.com/Vedlovable/Samadhaan-Setu/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixture() []Record {
	return []Record{
		{Kind: model.KindReport, ID: 1, Title: "Pothole on Main St", Category: "road", Status: "open", Location: "Main St", ReportedBy: "Asha"},
		{Kind: model.KindReport, ID: 2, Title: "Broken street light", Category: "lighting", Status: "resolved", Location: "Park Ave", ReportedBy: "Ravi"},
		{Kind: model.KindIssue, ID: 3, Title: "Overflowing bin", Category: "sanitation", Status: "Pending", Location: "Market Rd", ReportedBy: "Meera"},
		{Kind: model.KindIssue, ID: 4, Title: "Water leakage", Category: "water", Status: "Resolved", Location: "Canal St", ReportedBy: "Asha"},
		{Kind: model.KindReport, ID: 5, Title: "Fallen tree in park", Category: "parks", Status: "resolved", Location: "City Park", ReportedBy: "John", Assignee: "Admin"},
	}
}

func TestStatusFilterPreservesOrder(t *testing.T) {
	got := Apply(fixture(), Criteria{Status: "resolved", Category: "all", Query: ""})

	require.Len(t, got, 3)
	assert.Equal(t, int64(2), got[0].ID)
	assert.Equal(t, int64(4), got[1].ID) // "Resolved" distant compte aussi
	assert.Equal(t, int64(5), got[2].ID)
}

func TestCategoryFilter(t *testing.T) {
	got := Apply(fixture(), Criteria{Status: "all", Category: "road"})
	require.Len(t, got, 1)
	assert.Equal(t, int64(1), got[0].ID)
}

func TestQueryMatchesTitleLocationReporterAssignee(t *testing.T) {
	assert.Len(t, Apply(fixture(), Criteria{Query: "pothole"}), 1)
	assert.Len(t, Apply(fixture(), Criteria{Query: "market"}), 1)
	assert.Len(t, Apply(fixture(), Criteria{Query: "asha"}), 2)
	assert.Len(t, Apply(fixture(), Criteria{Query: "admin"}), 1)
}

func TestConjunction(t *testing.T) {
	got := Apply(fixture(), Criteria{Status: "resolved", Category: "water", Query: "asha"})
	require.Len(t, got, 1)
	assert.Equal(t, int64(4), got[0].ID)
}

func TestWildcards(t *testing.T) {
	assert.Len(t, Apply(fixture(), Criteria{}), 5)
	assert.Len(t, Apply(fixture(), Criteria{Status: "all", Category: "all"}), 5)
}

func TestComputeStats(t *testing.T) {
	s := ComputeStats(fixture())
	assert.Equal(t, Stats{Total: 5, Open: 2, InProgress: 0, Resolved: 3}, s)
}

func TestMarkersRequireBothCoordinates(t *testing.T) {
	lat, lng := 10.0, 20.0
	records := []Record{
		{ID: 1, Status: "open", Lat: &lat, Lng: &lng},
		{ID: 2, Status: "resolved"},
		{ID: 3, Status: "open", Lat: &lat}, // lng manquante
	}

	markers := Markers(records)
	require.Len(t, markers, 1)
	assert.Equal(t, int64(1), markers[0].ID)
}

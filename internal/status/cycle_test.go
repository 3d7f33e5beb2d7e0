package status

import (
	"testing"

	model "github.com/Vedlovable/Samadhaan-Setu/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestNextReport(t *testing.T) {
	assert.Equal(t, model.ReportInProgress, NextReport(model.ReportOpen))
	assert.Equal(t, model.ReportResolved, NextReport(model.ReportInProgress))
	assert.Equal(t, model.ReportOpen, NextReport(model.ReportResolved))
}

func TestNextIssue(t *testing.T) {
	assert.Equal(t, model.IssueInProgress, NextIssue(model.IssuePending))
	assert.Equal(t, model.IssueResolved, NextIssue(model.IssueInProgress))
	assert.Equal(t, model.IssuePending, NextIssue(model.IssueResolved))
}

func TestThreeStepsReturnToStart(t *testing.T) {
	for _, s := range []model.ReportStatus{model.ReportOpen, model.ReportInProgress, model.ReportResolved} {
		assert.Equal(t, s, NextReport(NextReport(NextReport(s))))
	}
	for _, s := range []model.IssueStatus{model.IssuePending, model.IssueInProgress, model.IssueResolved} {
		assert.Equal(t, s, NextIssue(NextIssue(NextIssue(s))))
	}
}

func TestUnknownValueFallsToFirstState(t *testing.T) {
	assert.Equal(t, model.ReportOpen, NextReport("bogus"))
	assert.Equal(t, model.IssuePending, NextIssue("bogus"))
}

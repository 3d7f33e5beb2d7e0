package validate

import (
	"testing"

	model "github.com/Vedlovable/Samadhaan-Setu/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestSubmission(t *testing.T) {
	valid := model.CreateIssueRequest{Title: "Pothole", Description: "Deep one", Category: "road", Priority: "high"}
	assert.NoError(t, Submission(valid))

	missingTitle := valid
	missingTitle.Title = "  "
	assert.Error(t, Submission(missingTitle))

	missingDesc := valid
	missingDesc.Description = ""
	assert.Error(t, Submission(missingDesc))

	badCategory := valid
	badCategory.Category = "ufo"
	assert.Error(t, Submission(badCategory))

	badPriority := valid
	badPriority.Priority = "urgent"
	assert.Error(t, Submission(badPriority))

	noPriority := valid
	noPriority.Priority = ""
	assert.NoError(t, Submission(noPriority))
}

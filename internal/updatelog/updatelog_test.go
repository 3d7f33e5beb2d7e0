package updatelog

import (
	"testing"
	"time"

	model "github.com/Vedlovable/Samadhaan-Setu/internal/models"
	"github.com/Vedlovable/Samadhaan-Setu/internal/storage/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppendThenReadContainsEntryLast(t *testing.T) {
	s := New(memory.New())
	key := model.UpdateKey{Kind: model.KindIssue, ID: 7}

	require.NoError(t, s.Append(key, model.ProgressUpdate{Message: "first", Status: "Pending", CreatedAt: time.Now()}))
	require.NoError(t, s.Append(key, model.ProgressUpdate{Message: "second", Status: "In Progress", CreatedAt: time.Now()}))

	entries := s.Read()[key.String()]
	require.Len(t, entries, 2)
	assert.Equal(t, "second", entries[len(entries)-1].Message)
}

func TestAppendDoesNotDisturbOtherKeys(t *testing.T) {
	s := New(memory.New())
	a := model.UpdateKey{Kind: model.KindIssue, ID: 1}
	b := model.UpdateKey{Kind: model.KindIssue, ID: 2}

	require.NoError(t, s.Append(a, model.ProgressUpdate{Message: "on a"}))
	require.NoError(t, s.Append(b, model.ProgressUpdate{Message: "on b"}))

	updates := s.Read()
	require.Len(t, updates[a.String()], 1)
	assert.Equal(t, "on a", updates[a.String()][0].Message)
	require.Len(t, updates[b.String()], 1)
	assert.Equal(t, "on b", updates[b.String()][0].Message)
}

func TestSameNumericIDDifferentKindsDoNotCollide(t *testing.T) {
	s := New(memory.New())
	issueKey := model.UpdateKey{Kind: model.KindIssue, ID: 42}
	reportKey := model.UpdateKey{Kind: model.KindReport, ID: 42}

	require.NoError(t, s.Append(issueKey, model.ProgressUpdate{Message: "issue note", Status: "Pending"}))
	require.NoError(t, s.Append(reportKey, model.ProgressUpdate{Message: "report note", Status: "open"}))

	updates := s.Read()
	require.Len(t, updates[issueKey.String()], 1)
	assert.Equal(t, "issue note", updates[issueKey.String()][0].Message)
	require.Len(t, updates[reportKey.String()], 1)
	assert.Equal(t, "report note", updates[reportKey.String()][0].Message)
}

func TestEmptyMessageGetsPlaceholder(t *testing.T) {
	s := New(memory.New())
	key := model.UpdateKey{Kind: model.KindReport, ID: 3}

	require.NoError(t, s.Append(key, model.ProgressUpdate{Message: "", Status: "in_progress"}))

	entries := s.Read()[key.String()]
	require.Len(t, entries, 1)
	assert.Equal(t, DefaultMessage, entries[0].Message)
}

func TestCorruptPayloadReadsAsEmpty(t *testing.T) {
	kv := memory.New()
	require.NoError(t, kv.Set(StorageKey, []byte("{not json")))

	s := New(kv)
	assert.Empty(t, s.Read())
}

func TestListIsReverseChronological(t *testing.T) {
	s := New(memory.New())
	key := model.UpdateKey{Kind: model.KindIssue, ID: 9}

	require.NoError(t, s.Append(key, model.ProgressUpdate{Message: "oldest"}))
	require.NoError(t, s.Append(key, model.ProgressUpdate{Message: "newest"}))

	list := s.List(key)
	require.Len(t, list, 2)
	assert.Equal(t, "newest", list[0].Message)
	assert.Equal(t, "oldest", list[1].Message)
}

func TestWriteNotifiesSubscribers(t *testing.T) {
	kv := memory.New()
	var touched []string
	kv.Subscribe(func(key string) { touched = append(touched, key) })

	s := New(kv)
	require.NoError(t, s.Append(model.UpdateKey{Kind: model.KindIssue, ID: 1}, model.ProgressUpdate{Message: "x"}))

	assert.Equal(t, []string{StorageKey}, touched)
}

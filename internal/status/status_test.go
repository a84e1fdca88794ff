package status

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"docstyle/internal/model"
	"docstyle/internal/status/mocks"
)

var (
	_ Store = (*MemoryStore)(nil)
	_ Store = (*RedisStore)(nil)
)

func TestTracker_RecordAndSnapshot(t *testing.T) {
	ctx := context.Background()
	tr := NewTracker(NewMemoryStore(0))
	base := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	tick := 0
	tr.now = func() time.Time {
		tick++
		return base.Add(time.Duration(tick) * time.Second)
	}

	for _, st := range []model.Stage{model.StageUploaded, model.StageAnalyzing, model.StageDesigning, model.StageFormatting, model.StageComplete} {
		require.NoError(t, tr.Record(ctx, "1700000000000-report.docx", st))
	}

	snap, err := tr.Snapshot(ctx, "1700000000000-report.docx")
	require.NoError(t, err)
	assert.Equal(t, model.StageComplete, snap.Stage)
	assert.Equal(t, "Document ready", snap.Message)
	assert.Equal(t, base.Add(5*time.Second), snap.UpdatedAt)
	require.Len(t, snap.History, 5)
	assert.Equal(t, model.StageUploaded, snap.History[0].Stage)
	assert.Equal(t, "Document uploaded", snap.History[0].Message)
	assert.Equal(t, "Analyzing document content", snap.History[1].Message)
}

func TestTracker_Errors(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown document", func(t *testing.T) {
		_, err := NewTracker(NewMemoryStore(0)).Snapshot(ctx, "nope")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("invalid stage", func(t *testing.T) {
		err := NewTracker(NewMemoryStore(0)).Record(ctx, "doc", model.Stage("printing"))
		assert.ErrorContains(t, err, `unknown stage "printing"`)
	})

	t.Run("empty id", func(t *testing.T) {
		err := NewTracker(NewMemoryStore(0)).Record(ctx, "", model.StageUploaded)
		assert.Error(t, err)
	})

	t.Run("store failure is wrapped", func(t *testing.T) {
		store := new(mocks.MockStore)
		store.On("Append", ctx, mock.MatchedBy(func(ev model.StageEvent) bool {
			return ev.DocumentID == "doc" && ev.Stage == model.StageAnalyzing
		})).Return(errors.New("connection refused")).Once()

		err := NewTracker(store).Record(ctx, "doc", model.StageAnalyzing)

		assert.EqualError(t, err, "record stage analyzing: connection refused")
		store.AssertExpectations(t)
	})
}

func TestMemoryStore_TTL(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore(time.Minute)
	now := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return now }

	require.NoError(t, s.Append(ctx, model.StageEvent{DocumentID: "a", Stage: model.StageUploaded}))

	now = now.Add(30 * time.Second)
	got, err := s.History(ctx, "a")
	require.NoError(t, err)
	assert.Len(t, got, 1)

	now = now.Add(2 * time.Minute)
	_, err = s.History(ctx, "a")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, s.Append(ctx, model.StageEvent{DocumentID: "b", Stage: model.StageUploaded}))
	assert.NotContains(t, s.entries, "a")
}

func TestMemoryStore_HistoryIsCopy(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore(0)
	require.NoError(t, s.Append(ctx, model.StageEvent{DocumentID: "a", Stage: model.StageUploaded}))

	got, err := s.History(ctx, "a")
	require.NoError(t, err)
	got[0].Stage = model.StageFailed

	again, err := s.History(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, model.StageUploaded, again[0].Stage)
}

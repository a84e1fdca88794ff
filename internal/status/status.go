// Package status tracks the client-visible progress of documents through the
// pipeline. Stages are recorded when the work they describe actually starts or
// finishes; nothing here is driven by timers.
package status

import (
	"context"
	"errors"
	"fmt"
	"time"

	"docstyle/internal/model"
)

// ErrNotFound is returned when no stage was ever recorded for a document.
var ErrNotFound = errors.New("document status not found")

// Store is an append-only journal of stage events keyed by document id.
type Store interface {
	// Append adds ev to the document's history.
	Append(ctx context.Context, ev model.StageEvent) error
	// History returns the document's events oldest first, or ErrNotFound.
	History(ctx context.Context, documentID string) ([]model.StageEvent, error)
}

// Snapshot is the current state of one document plus how it got there.
type Snapshot struct {
	DocumentID string             `json:"documentId"`
	Stage      model.Stage        `json:"stage"`
	Message    string             `json:"message"`
	UpdatedAt  time.Time          `json:"updatedAt"`
	History    []model.StageEvent `json:"history"`
}

// Tracker records stage transitions into a Store.
type Tracker struct {
	store Store
	now   func() time.Time
}

// NewTracker returns a Tracker writing to store.
func NewTracker(store Store) *Tracker {
	return &Tracker{store: store, now: time.Now}
}

// Record appends stage for documentID with its standard message.
func (t *Tracker) Record(ctx context.Context, documentID string, stage model.Stage) error {
	if documentID == "" {
		return fmt.Errorf("record stage %s: empty document id", stage)
	}
	if !stage.Valid() {
		return fmt.Errorf("record stage: unknown stage %q", stage)
	}
	ev := model.StageEvent{
		DocumentID: documentID,
		Stage:      stage,
		Message:    stage.Message(),
		At:         t.now().UTC(),
	}
	if err := t.store.Append(ctx, ev); err != nil {
		return fmt.Errorf("record stage %s: %w", stage, err)
	}
	return nil
}

// Snapshot returns the latest stage of documentID with its full history.
func (t *Tracker) Snapshot(ctx context.Context, documentID string) (*Snapshot, error) {
	events, err := t.store.History(ctx, documentID)
	if err != nil {
		return nil, err
	}
	if len(events) == 0 {
		return nil, ErrNotFound
	}
	last := events[len(events)-1]
	return &Snapshot{
		DocumentID: documentID,
		Stage:      last.Stage,
		Message:    last.Message,
		UpdatedAt:  last.At,
		History:    events,
	}, nil
}

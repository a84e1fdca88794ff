package status

import (
	"context"
	"sync"
	"time"

	"docstyle/internal/model"
)

type memoryEntry struct {
	events  []model.StageEvent
	expires time.Time
}

// MemoryStore keeps histories in process memory. Entries expire ttl after
// their last update; a zero ttl keeps them forever.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]*memoryEntry
	ttl     time.Duration
	now     func() time.Time
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]*memoryEntry),
		ttl:     ttl,
		now:     time.Now,
	}
}

func (m *MemoryStore) Append(ctx context.Context, ev model.StageEvent) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	m.evictLocked(now)

	e, ok := m.entries[ev.DocumentID]
	if !ok {
		e = &memoryEntry{}
		m.entries[ev.DocumentID] = e
	}
	e.events = append(e.events, ev)
	if m.ttl > 0 {
		e.expires = now.Add(m.ttl)
	}
	return nil
}

func (m *MemoryStore) History(ctx context.Context, documentID string) ([]model.StageEvent, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	e, ok := m.entries[documentID]
	if !ok || m.expired(e, m.now()) {
		return nil, ErrNotFound
	}
	out := make([]model.StageEvent, len(e.events))
	copy(out, e.events)
	return out, nil
}

func (m *MemoryStore) expired(e *memoryEntry, now time.Time) bool {
	return m.ttl > 0 && now.After(e.expires)
}

func (m *MemoryStore) evictLocked(now time.Time) {
	if m.ttl <= 0 {
		return
	}
	for id, e := range m.entries {
		if m.expired(e, now) {
			delete(m.entries, id)
		}
	}
}

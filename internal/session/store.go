package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/iliyamo/event-registration/internal/model"
)

// ErrSessionNotFound is returned for unknown or expired session ids.
var ErrSessionNotFound = errors.New("session not found")

// Store persists sessions between requests.
type Store interface {
	Create(ctx context.Context) (*model.Session, error)
	Get(ctx context.Context, id string) (*model.Session, error)
	Save(ctx context.Context, s *model.Session) error
}

// newSession returns a fresh session on the gallery screen.
func newSession(now time.Time) *model.Session {
	return &model.Session{
		ID:        uuid.NewString(),
		State:     model.Gallery(),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

type memEntry struct {
	sess    model.Session
	expires time.Time
}

// MemoryStore keeps sessions in process memory.  Entries expire ttl after
// their last save.  Writes periodically drop expired entries, so
// abandoned sessions do not accumulate.
type MemoryStore struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries map[string]memEntry
	now     func() time.Time

	lastSweep time.Time
}

// NewMemoryStore returns an empty in-memory store.
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{ttl: ttl, entries: make(map[string]memEntry), now: time.Now}
}

// Create opens a new session in the gallery state.
func (m *MemoryStore) Create(ctx context.Context) (*model.Session, error) {
	s := newSession(m.now().UTC())
	if err := m.Save(ctx, s); err != nil {
		return nil, err
	}
	return s, nil
}

// Get returns a copy of the stored session.
func (m *MemoryStore) Get(_ context.Context, id string) (*model.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.entries[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	if m.ttl > 0 && m.now().After(e.expires) {
		delete(m.entries, id)
		return nil, ErrSessionNotFound
	}
	s := e.sess
	return &s, nil
}

// Save stores a copy of s and refreshes its expiry.
func (m *MemoryStore) Save(_ context.Context, s *model.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := m.now()
	m.sweep(now)
	m.entries[s.ID] = memEntry{sess: *s, expires: now.Add(m.ttl)}
	return nil
}

// Len reports how many sessions are held, expired ones included until the
// next write.
func (m *MemoryStore) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.entries)
}

// sweep deletes expired entries, at most once per quarter ttl.  Callers
// hold m.mu.
func (m *MemoryStore) sweep(now time.Time) {
	if m.ttl <= 0 || now.Sub(m.lastSweep) < m.ttl/4 {
		return
	}
	m.lastSweep = now
	for id, e := range m.entries {
		if now.After(e.expires) {
			delete(m.entries, id)
		}
	}
}

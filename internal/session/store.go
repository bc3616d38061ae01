// Package session keeps live games addressable by ID with idle-based
// expiry, for embedders that host many concurrent matches.
package session

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/headsup/internal/game"
)

var (
	// ErrSessionExists is returned when creating a session under an ID that
	// is already live.
	ErrSessionExists = errors.New("session already exists")
	// ErrSessionNotFound is returned for lookups of unknown or expired IDs.
	ErrSessionNotFound = errors.New("session not found")
)

// DefaultTTL is how long an untouched session survives.
const DefaultTTL = 30 * time.Minute

type entry struct {
	game       *game.Game
	lastActive time.Time
}

// Store maps session IDs to games and evicts sessions idle past the TTL.
// All methods are safe for concurrent use; the games themselves are not,
// so callers serialize access per session.
type Store struct {
	mu       sync.Mutex
	sessions map[string]*entry
	ttl      time.Duration
	clock    quartz.Clock
	logger   *log.Logger
}

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithTTL sets the idle expiry.
func WithTTL(ttl time.Duration) StoreOption {
	return func(s *Store) { s.ttl = ttl }
}

// WithClock substitutes the time source, for tests.
func WithClock(clock quartz.Clock) StoreOption {
	return func(s *Store) { s.clock = clock }
}

// WithStoreLogger sets the structured logger.
func WithStoreLogger(logger *log.Logger) StoreOption {
	return func(s *Store) { s.logger = logger }
}

// NewStore creates an empty session store.
func NewStore(opts ...StoreOption) *Store {
	s := &Store{
		sessions: map[string]*entry{},
		ttl:      DefaultTTL,
		clock:    quartz.NewReal(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = log.Default()
	}
	return s
}

// Create registers a game under a fresh ID and returns it.
func (s *Store) Create(g *game.Game) string {
	id := NewID()
	// NewID is time-prefixed and random-tailed; a collision would mean a
	// broken entropy source, which NewID already treats as fatal.
	_ = s.CreateWithID(id, g)
	return id
}

// CreateWithID registers a game under a caller-chosen ID.
func (s *Store) CreateWithID(id string, g *game.Game) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[id]; ok {
		return ErrSessionExists
	}
	s.sessions[id] = &entry{game: g, lastActive: s.clock.Now()}
	s.logger.Debug("session created", "id", id)
	return nil
}

// Get returns the session's game and refreshes its idle timer. A session
// past its TTL is treated as gone even if not yet swept.
func (s *Store) Get(id string) (*game.Game, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	now := s.clock.Now()
	if now.Sub(e.lastActive) > s.ttl {
		delete(s.sessions, id)
		s.logger.Debug("session expired", "id", id)
		return nil, ErrSessionNotFound
	}
	e.lastActive = now
	return e.game, nil
}

// Delete removes a session if present.
func (s *Store) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
}

// Len returns the number of live sessions, including any not yet swept.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// IDs returns the session IDs in sorted order.
func (s *Store) IDs() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	ids := make([]string, 0, len(s.sessions))
	for id := range s.sessions {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Evict removes every session idle past the TTL and reports how many went.
func (s *Store) Evict() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.clock.Now()
	evicted := 0
	for id, e := range s.sessions {
		if now.Sub(e.lastActive) > s.ttl {
			delete(s.sessions, id)
			evicted++
		}
	}
	if evicted > 0 {
		s.logger.Debug("sessions evicted", "count", evicted)
	}
	return evicted
}

// Sweep evicts idle sessions on the given interval until the context ends.
func (s *Store) Sweep(ctx context.Context, interval time.Duration) error {
	return s.clock.TickerFunc(ctx, interval, func() error {
		s.Evict()
		return nil
	}, "session-sweep").Wait()
}

package store

import (
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"lumina/internal/models"
	"lumina/internal/storage"
)

// Event describes a committed mutation. Op is the operation that produced the
// commit, e.g. "cart.add" or "orders.create".
type Event struct {
	Op string
	At time.Time
}

// Subscriber receives an Event after every successful commit.
type Subscriber func(Event)

// Store owns the single current AppState snapshot. All mutations go through
// Update, which serializes the whole clone-mutate-persist-install sequence,
// and subscribers are notified after each commit so the presentation layer
// never has to poll for changes.
type Store struct {
	mu      sync.RWMutex
	state   *models.AppState
	storage storage.Storage

	subMu   sync.Mutex
	subs    map[int]Subscriber
	nextSub int
}

// New creates a Store backed by the given storage. Call Load before use.
func New(st storage.Storage) *Store {
	return &Store{
		storage: st,
		subs:    make(map[int]Subscriber),
	}
}

// Load restores the persisted snapshot. When no snapshot exists, or the
// persisted one is corrupt, the store falls back to the seed state and
// persists it. Any other storage failure is propagated: overwriting a
// possibly healthy snapshot with seed data on a transient read error would
// lose it.
func (s *Store) Load() error {
	state, err := s.storage.Load()
	if err != nil {
		if !errors.Is(err, storage.ErrCorrupt) {
			return fmt.Errorf("failed to load persisted state: %w", err)
		}
		log.Printf("Persisted state is corrupt, falling back to seed data: %v", err)
		state = nil
	}
	if state == nil {
		state = Seed()
		if err := s.storage.Save(state); err != nil {
			return fmt.Errorf("failed to persist seed state: %w", err)
		}
	}

	s.mu.Lock()
	s.state = state
	s.mu.Unlock()
	return nil
}

// Current returns a deep copy of the current snapshot. Callers may read and
// mutate the copy freely; changes only take effect through Update.
func (s *Store) Current() *models.AppState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Clone()
}

// Update applies fn to a clone of the current snapshot, persists the result
// and installs it as current. The write lock is held across the whole
// sequence, so concurrent updates serialize instead of overwriting each
// other's base snapshot. An error from fn aborts the update and leaves the
// current snapshot untouched, as does a persistence failure.
func (s *Store) Update(op string, fn func(state *models.AppState) error) error {
	s.mu.Lock()
	next := s.state.Clone()
	if err := fn(next); err != nil {
		s.mu.Unlock()
		return err
	}
	if err := s.storage.Save(next); err != nil {
		s.mu.Unlock()
		return fmt.Errorf("failed to commit %s: %w", op, err)
	}
	s.state = next
	s.mu.Unlock()

	s.notify(Event{Op: op, At: time.Now()})
	return nil
}

// Commit persists next wholesale and makes it the current snapshot. The lock
// is held across persist and install so storage and memory cannot diverge.
// Prefer Update for read-modify-write mutations; Commit is for replacing the
// snapshot with an externally built one (e.g. a restore).
func (s *Store) Commit(next *models.AppState, op string) error {
	s.mu.Lock()
	if err := s.storage.Save(next); err != nil {
		s.mu.Unlock()
		return fmt.Errorf("failed to commit %s: %w", op, err)
	}
	s.state = next
	s.mu.Unlock()

	s.notify(Event{Op: op, At: time.Now()})
	return nil
}

// Subscribe registers fn to be called after every commit. The returned
// function removes the subscription.
func (s *Store) Subscribe(fn Subscriber) (unsubscribe func()) {
	s.subMu.Lock()
	defer s.subMu.Unlock()

	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	return func() {
		s.subMu.Lock()
		defer s.subMu.Unlock()
		delete(s.subs, id)
	}
}

func (s *Store) notify(ev Event) {
	s.subMu.Lock()
	subs := make([]Subscriber, 0, len(s.subs))
	for _, fn := range s.subs {
		subs = append(subs, fn)
	}
	s.subMu.Unlock()

	for _, fn := range subs {
		fn(ev)
	}
}

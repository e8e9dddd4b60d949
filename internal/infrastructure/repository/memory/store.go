package memory

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/riskibarqy/referee-delegation/internal/domain/assignment"
	"github.com/riskibarqy/referee-delegation/internal/domain/availability"
	"github.com/riskibarqy/referee-delegation/internal/domain/delegation"
	"github.com/riskibarqy/referee-delegation/internal/domain/match"
)

var (
	ErrDuplicateKey = errors.New("memory: duplicate key")
	ErrRowNotFound  = errors.New("memory: row not found")
)

type availabilityKey struct {
	refereeID string
	date      string
}

func keyFor(refereeID string, date string) availabilityKey {
	return availabilityKey{refereeID: refereeID, date: date}
}

type state struct {
	matches      map[string]match.Match
	assignments  map[string]assignment.Assignment
	availability map[availabilityKey]availability.Record
}

func newState() *state {
	return &state{
		matches:      make(map[string]match.Match),
		assignments:  make(map[string]assignment.Assignment),
		availability: make(map[availabilityKey]availability.Record),
	}
}

func (s *state) clone() *state {
	out := &state{
		matches:      make(map[string]match.Match, len(s.matches)),
		assignments:  make(map[string]assignment.Assignment, len(s.assignments)),
		availability: make(map[availabilityKey]availability.Record, len(s.availability)),
	}
	for k, v := range s.matches {
		out.matches[k] = cloneMatch(v)
	}
	for k, v := range s.assignments {
		out.assignments[k] = cloneAssignment(v)
	}
	for k, v := range s.availability {
		out.availability[k] = v
	}
	return out
}

// Store keeps matches, the assignment ledger and availability in memory.
// A transaction holds the store-wide lock and restores a snapshot on failure.
type Store struct {
	mu sync.RWMutex
	st *state
}

func NewStore() *Store {
	return &Store{st: newState()}
}

// Seed loads initial rows without validation.
func (s *Store) Seed(matches []match.Match, assignments []assignment.Assignment, records []availability.Record) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, m := range matches {
		s.st.matches[m.ID] = cloneMatch(m)
	}
	for _, a := range assignments {
		s.st.assignments[a.ID] = cloneAssignment(a)
	}
	for _, rec := range records {
		rec.Date = availability.Date(rec.Date)
		s.st.availability[keyFor(rec.RefereeID, availability.FormatDate(rec.Date))] = rec
	}
}

func (s *Store) Matches() *MatchRepository {
	return &MatchRepository{access: access{store: s}}
}

func (s *Store) Assignments() *AssignmentRepository {
	return &AssignmentRepository{access: access{store: s}}
}

func (s *Store) Availability() *AvailabilityRepository {
	return &AvailabilityRepository{access: access{store: s}}
}

// WithinTx serializes fn against every other store access.
func (s *Store) WithinTx(ctx context.Context, fn func(ctx context.Context, stores delegation.Stores) error) (err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := s.st.clone()
	defer func() {
		if recovered := recover(); recovered != nil {
			s.st = snapshot
			panic(recovered)
		}
		if err != nil {
			s.st = snapshot
		}
	}()

	tx := access{store: s, inTx: true}
	stores := delegation.Stores{
		Matches:      &MatchRepository{access: tx},
		Assignments:  &AssignmentRepository{access: tx},
		Availability: &AvailabilityRepository{access: tx},
		Locks:        noopLocker{},
	}
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("begin memory tx: %w", err)
	}
	return fn(ctx, stores)
}

// noopLocker relies on the transaction already holding the store-wide lock.
type noopLocker struct{}

func (noopLocker) LockRefereeDay(context.Context, string, time.Time) error { return nil }

// access reads and writes the store state, taking the lock unless a transaction already holds it.
type access struct {
	store *Store
	inTx  bool
}

func (a access) read(fn func(st *state)) {
	if a.inTx {
		fn(a.store.st)
		return
	}
	a.store.mu.RLock()
	defer a.store.mu.RUnlock()
	fn(a.store.st)
}

func (a access) write(fn func(st *state) error) error {
	if a.inTx {
		return fn(a.store.st)
	}
	a.store.mu.Lock()
	defer a.store.mu.Unlock()
	return fn(a.store.st)
}

func cloneMatch(m match.Match) match.Match {
	out := m
	if m.HomeScore != nil {
		v := *m.HomeScore
		out.HomeScore = &v
	}
	if m.AwayScore != nil {
		v := *m.AwayScore
		out.AwayScore = &v
	}
	if m.DelegatedAt != nil {
		v := *m.DelegatedAt
		out.DelegatedAt = &v
	}
	return out
}

func cloneAssignment(a assignment.Assignment) assignment.Assignment {
	out := a
	if a.RespondedAt != nil {
		v := *a.RespondedAt
		out.RespondedAt = &v
	}
	if a.Fee != nil {
		v := *a.Fee
		out.Fee = &v
	}
	if a.TravelCost != nil {
		v := *a.TravelCost
		out.TravelCost = &v
	}
	return out
}

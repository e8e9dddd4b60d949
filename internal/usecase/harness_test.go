package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/riskibarqy/referee-delegation/internal/domain/assignment"
	"github.com/riskibarqy/referee-delegation/internal/domain/delegation"
	"github.com/riskibarqy/referee-delegation/internal/domain/match"
	"github.com/riskibarqy/referee-delegation/internal/infrastructure/repository/memory"
)

// testNow puts the seeded round-two matches on 2025-06-03.
var testNow = time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)

type sequenceIDs struct {
	mu     sync.Mutex
	prefix string
	n      int
}

func (g *sequenceIDs) NewID() (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.n++
	return fmt.Sprintf("%s-%03d", g.prefix, g.n), nil
}

type harness struct {
	store        *memory.Store
	referees     *memory.RefereeRepository
	ids          *sequenceIDs
	delegations  *DelegationService
	availability *AvailabilityService
	matches      *MatchService
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	return newHarnessWithTx(t, nil)
}

// newHarnessWithTx lets a test wrap the store transaction manager.
func newHarnessWithTx(t *testing.T, wrap func(delegation.TxManager) delegation.TxManager) *harness {
	t.Helper()

	store := memory.NewStore()
	store.Seed(memory.SeedMatches(testNow), nil, nil)

	users := memory.NewUserRepository(memory.SeedUsers())
	referees := memory.NewRefereeRepository(memory.SeedReferees(), users)
	teams := memory.NewTeamRepository(memory.SeedTeams())
	venues := memory.NewVenueRepository(memory.SeedVenues())
	competitions := memory.NewCompetitionRepository(memory.SeedCompetitions())

	var tx delegation.TxManager = store
	if wrap != nil {
		tx = wrap(store)
	}

	ids := &sequenceIDs{prefix: "id"}
	hydrator := NewMatchViewHydrator(competitions, teams, venues, users, referees, store.Assignments(), 4)

	delegations := NewDelegationService(tx, store.Matches(), store.Assignments(), store.Availability(), referees, hydrator, DelegationConfig{}, ids, nil)
	delegations.now = func() time.Time { return testNow }

	availabilitySvc := NewAvailabilityService(tx, store.Availability(), referees, nil)
	availabilitySvc.now = func() time.Time { return testNow }

	matches := NewMatchService(tx, store.Matches(), competitions, teams, venues, hydrator, ids, nil)
	matches.now = func() time.Time { return testNow }

	return &harness{
		store:        store,
		referees:     referees,
		ids:          ids,
		delegations:  delegations,
		availability: availabilitySvc,
		matches:      matches,
	}
}

func (h *harness) delegate(t *testing.T, matchID string, refereeIDs ...string) delegation.MatchView {
	t.Helper()
	view, err := h.delegations.DelegateReferees(t.Context(), DelegateRefereesInput{
		MatchID:    matchID,
		DelegateID: memory.UserIDDelegate,
		Roster:     roster(refereeIDs...),
	})
	if err != nil {
		t.Fatalf("delegate referees to %s: %v", matchID, err)
	}
	return view
}

func (h *harness) ledger(t *testing.T, matchID string) []assignment.Assignment {
	t.Helper()
	items, err := h.store.Assignments().ListByMatch(t.Context(), matchID)
	if err != nil {
		t.Fatalf("list ledger for %s: %v", matchID, err)
	}
	return items
}

// roster assigns roles in order: first, second, third.
func roster(refereeIDs ...string) []delegation.RosterEntry {
	roles := []assignment.Role{assignment.RoleFirstReferee, assignment.RoleSecondReferee, assignment.RoleThirdReferee}
	out := make([]delegation.RosterEntry, 0, len(refereeIDs))
	for i, id := range refereeIDs {
		out = append(out, delegation.RosterEntry{RefereeID: id, Role: roles[i%len(roles)]})
	}
	return out
}

func refereeIDsOf(items []assignment.Assignment) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, item.RefereeID)
	}
	return out
}

var errConnectionReset = errors.New("connection reset by peer")

// partialInsertTx writes the first row of every assignment batch and then fails.
type partialInsertTx struct {
	inner delegation.TxManager
}

func (p partialInsertTx) WithinTx(ctx context.Context, fn func(ctx context.Context, stores delegation.Stores) error) error {
	return p.inner.WithinTx(ctx, func(ctx context.Context, stores delegation.Stores) error {
		stores.Assignments = partialInsertRepository{Repository: stores.Assignments}
		return fn(ctx, stores)
	})
}

type partialInsertRepository struct {
	assignment.Repository
}

func (r partialInsertRepository) InsertBatch(ctx context.Context, items []assignment.Assignment) error {
	if len(items) > 0 {
		if err := r.Repository.InsertBatch(ctx, items[:1]); err != nil {
			return err
		}
	}
	return errConnectionReset
}

// recordingLockTx records the referee day locks a transaction takes.
type recordingLockTx struct {
	inner delegation.TxManager
	mu    sync.Mutex
	locks []string
	err   error
}

func (r *recordingLockTx) WithinTx(ctx context.Context, fn func(ctx context.Context, stores delegation.Stores) error) error {
	return r.inner.WithinTx(ctx, func(ctx context.Context, stores delegation.Stores) error {
		stores.Locks = r
		return fn(ctx, stores)
	})
}

func (r *recordingLockTx) LockRefereeDay(_ context.Context, refereeID string, day time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.locks = append(r.locks, refereeID+"@"+day.Format("2006-01-02"))
	return r.err
}

// countingMatchRepo counts match reads made outside a transaction.
type countingMatchRepo struct {
	match.Repository
	mu        sync.Mutex
	getByID   int
	listByIDs int
	requested []string
}

func (c *countingMatchRepo) GetByID(ctx context.Context, matchID string) (match.Match, bool, error) {
	c.mu.Lock()
	c.getByID++
	c.mu.Unlock()
	return c.Repository.GetByID(ctx, matchID)
}

func (c *countingMatchRepo) ListByIDs(ctx context.Context, matchIDs []string) ([]match.Match, error) {
	c.mu.Lock()
	c.listByIDs++
	c.requested = append(c.requested, matchIDs...)
	c.mu.Unlock()
	return c.Repository.ListByIDs(ctx, matchIDs)
}

package usecase

import (
	"context"
	"fmt"
	"sync"

	"github.com/panjf2000/ants/v2"
	"github.com/riskibarqy/referee-delegation/internal/domain/assignment"
	"github.com/riskibarqy/referee-delegation/internal/domain/competition"
	"github.com/riskibarqy/referee-delegation/internal/domain/delegation"
	"github.com/riskibarqy/referee-delegation/internal/domain/match"
	"github.com/riskibarqy/referee-delegation/internal/domain/referee"
	"github.com/riskibarqy/referee-delegation/internal/domain/team"
	"github.com/riskibarqy/referee-delegation/internal/domain/user"
	"github.com/riskibarqy/referee-delegation/internal/domain/venue"
	"github.com/sourcegraph/conc/pool"
)

const defaultHydrationWorkers = 8

// MatchViewHydrator expands matches with registry records and the ordered ledger.
type MatchViewHydrator struct {
	competitionRepo competition.Repository
	teamRepo        team.Repository
	venueRepo       venue.Repository
	userRepo        user.Repository
	refereeRepo     referee.Repository
	assignmentRepo  assignment.Repository
	workers         int
}

func NewMatchViewHydrator(
	competitionRepo competition.Repository,
	teamRepo team.Repository,
	venueRepo venue.Repository,
	userRepo user.Repository,
	refereeRepo referee.Repository,
	assignmentRepo assignment.Repository,
	workers int,
) *MatchViewHydrator {
	if workers < 1 {
		workers = defaultHydrationWorkers
	}
	return &MatchViewHydrator{
		competitionRepo: competitionRepo,
		teamRepo:        teamRepo,
		venueRepo:       venueRepo,
		userRepo:        userRepo,
		refereeRepo:     refereeRepo,
		assignmentRepo:  assignmentRepo,
		workers:         workers,
	}
}

// Hydrate loads the current ledger for the match and builds its view.
func (h *MatchViewHydrator) Hydrate(ctx context.Context, item match.Match) (delegation.MatchView, error) {
	assignments, err := h.assignmentRepo.ListByMatch(ctx, item.ID)
	if err != nil {
		return delegation.MatchView{}, fmt.Errorf("list assignments for match=%s: %w", item.ID, err)
	}
	return h.HydrateWithAssignments(ctx, item, assignments)
}

// HydrateWithAssignments builds the view from a ledger already in hand.
// Registry lookups run concurrently.
func (h *MatchViewHydrator) HydrateWithAssignments(ctx context.Context, item match.Match, assignments []assignment.Assignment) (delegation.MatchView, error) {
	view := delegation.MatchView{Match: item}

	p := pool.New().WithContext(ctx).WithCancelOnError()
	p.Go(func(ctx context.Context) error {
		value, ok, err := h.competitionRepo.GetByID(ctx, item.CompetitionID)
		if err != nil {
			return fmt.Errorf("get competition=%s: %w", item.CompetitionID, err)
		}
		if ok {
			view.Competition = &value
		}
		return nil
	})
	p.Go(func(ctx context.Context) error {
		value, ok, err := h.teamRepo.GetByID(ctx, item.HomeTeamID)
		if err != nil {
			return fmt.Errorf("get home team=%s: %w", item.HomeTeamID, err)
		}
		if ok {
			view.HomeTeam = &value
		}
		return nil
	})
	p.Go(func(ctx context.Context) error {
		value, ok, err := h.teamRepo.GetByID(ctx, item.AwayTeamID)
		if err != nil {
			return fmt.Errorf("get away team=%s: %w", item.AwayTeamID, err)
		}
		if ok {
			view.AwayTeam = &value
		}
		return nil
	})
	if item.VenueID != "" {
		p.Go(func(ctx context.Context) error {
			value, ok, err := h.venueRepo.GetByID(ctx, item.VenueID)
			if err != nil {
				return fmt.Errorf("get venue=%s: %w", item.VenueID, err)
			}
			if ok {
				view.Venue = &value
			}
			return nil
		})
	}
	if item.DelegatedBy != "" {
		p.Go(func(ctx context.Context) error {
			value, ok, err := h.userRepo.GetByID(ctx, item.DelegatedBy)
			if err != nil {
				return fmt.Errorf("get delegating user=%s: %w", item.DelegatedBy, err)
			}
			if ok {
				view.DelegatedBy = &value
			}
			return nil
		})
	}
	p.Go(func(ctx context.Context) error {
		items, err := h.assignmentViews(ctx, assignments)
		if err != nil {
			return err
		}
		view.Assignments = items
		return nil
	})

	if err := p.Wait(); err != nil {
		return delegation.MatchView{}, err
	}
	return view, nil
}

// HydrateMany builds views for a page of matches on a bounded worker pool, preserving order.
func (h *MatchViewHydrator) HydrateMany(ctx context.Context, items []match.Match) ([]delegation.MatchView, error) {
	if len(items) == 0 {
		return []delegation.MatchView{}, nil
	}

	workerCount := h.workers
	if workerCount > len(items) {
		workerCount = len(items)
	}
	workerPool, err := ants.NewPool(workerCount)
	if err != nil {
		return nil, fmt.Errorf("create hydration pool: %w", err)
	}
	defer workerPool.Release()

	views := make([]delegation.MatchView, len(items))
	var (
		workers  sync.WaitGroup
		mu       sync.Mutex
		firstErr error
	)
	for i, item := range items {
		workers.Add(1)
		if err := workerPool.Submit(func() {
			defer workers.Done()
			view, err := h.Hydrate(ctx, item)
			if err != nil {
				mu.Lock()
				if firstErr == nil {
					firstErr = err
				}
				mu.Unlock()
				return
			}
			views[i] = view
		}); err != nil {
			workers.Done()
			workers.Wait()
			return nil, fmt.Errorf("submit hydration task: %w", err)
		}
	}
	workers.Wait()

	if firstErr != nil {
		return nil, firstErr
	}
	return views, nil
}

func (h *MatchViewHydrator) assignmentViews(ctx context.Context, assignments []assignment.Assignment) ([]delegation.AssignmentView, error) {
	out := make([]delegation.AssignmentView, 0, len(assignments))
	if len(assignments) == 0 {
		return out, nil
	}

	refereeIDs := make([]string, 0, len(assignments))
	for _, a := range assignments {
		refereeIDs = append(refereeIDs, a.RefereeID)
	}
	referees, err := h.refereeRepo.ListByIDs(ctx, refereeIDs)
	if err != nil {
		return nil, fmt.Errorf("list referees for assignments: %w", err)
	}
	byID := make(map[string]referee.Referee, len(referees))
	for _, r := range referees {
		byID[r.ID] = r
	}

	for _, a := range assignments {
		ref, ok := byID[a.RefereeID]
		if !ok {
			ref = referee.Referee{ID: a.RefereeID}
		}
		out = append(out, delegation.AssignmentView{Assignment: a, Referee: ref})
	}
	delegation.SortAssignments(out)
	return out, nil
}

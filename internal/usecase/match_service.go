package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/riskibarqy/referee-delegation/internal/domain/competition"
	"github.com/riskibarqy/referee-delegation/internal/domain/delegation"
	"github.com/riskibarqy/referee-delegation/internal/domain/match"
	"github.com/riskibarqy/referee-delegation/internal/domain/team"
	"github.com/riskibarqy/referee-delegation/internal/domain/venue"
	idgen "github.com/riskibarqy/referee-delegation/internal/platform/id"
	"github.com/riskibarqy/referee-delegation/internal/platform/logging"
)

type CreateMatchInput struct {
	CompetitionID string
	HomeTeamID    string
	AwayTeamID    string
	VenueID       string
	ScheduledAt   time.Time
	Round         string
	Notes         string
}

// ListMatchesInput filters the match list. From and To are inclusive bounds on kickoff.
type ListMatchesInput struct {
	Status           string
	DelegationStatus string
	CompetitionID    string
	From             time.Time
	To               time.Time
	Page             int
	Limit            int
}

type MatchService struct {
	txManager       delegation.TxManager
	matchRepo       match.Repository
	competitionRepo competition.Repository
	teamRepo        team.Repository
	venueRepo       venue.Repository
	hydrator        *MatchViewHydrator
	idGen           idgen.Generator
	logger          *logging.Logger
	now             func() time.Time
}

func NewMatchService(
	txManager delegation.TxManager,
	matchRepo match.Repository,
	competitionRepo competition.Repository,
	teamRepo team.Repository,
	venueRepo venue.Repository,
	hydrator *MatchViewHydrator,
	idGen idgen.Generator,
	logger *logging.Logger,
) *MatchService {
	if logger == nil {
		logger = logging.Default()
	}
	return &MatchService{
		txManager:       txManager,
		matchRepo:       matchRepo,
		competitionRepo: competitionRepo,
		teamRepo:        teamRepo,
		venueRepo:       venueRepo,
		hydrator:        hydrator,
		idGen:           idGen,
		logger:          logger.Named("match"),
		now:             time.Now,
	}
}

// CreateMatch schedules a match with an empty delegation.
func (s *MatchService) CreateMatch(ctx context.Context, input CreateMatchInput) (delegation.MatchView, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.CreateMatch")
	defer span.End()

	input.CompetitionID = strings.TrimSpace(input.CompetitionID)
	input.HomeTeamID = strings.TrimSpace(input.HomeTeamID)
	input.AwayTeamID = strings.TrimSpace(input.AwayTeamID)
	input.VenueID = strings.TrimSpace(input.VenueID)

	if input.CompetitionID == "" || input.HomeTeamID == "" || input.AwayTeamID == "" {
		return delegation.MatchView{}, fmt.Errorf("%w: competition, home team and away team are required", ErrInvalidInput)
	}
	if input.HomeTeamID == input.AwayTeamID {
		return delegation.MatchView{}, fmt.Errorf("%w: %v", ErrInvalidInput, match.ErrSameTeams)
	}
	if input.ScheduledAt.IsZero() {
		return delegation.MatchView{}, fmt.Errorf("%w: scheduled time is required", ErrInvalidInput)
	}
	if err := s.ensureReferences(ctx, input); err != nil {
		return delegation.MatchView{}, err
	}

	id, err := s.idGen.NewID()
	if err != nil {
		return delegation.MatchView{}, fmt.Errorf("generate match id: %w", err)
	}

	now := s.now().UTC()
	item := match.Match{
		ID:               id,
		CompetitionID:    input.CompetitionID,
		HomeTeamID:       input.HomeTeamID,
		AwayTeamID:       input.AwayTeamID,
		VenueID:          input.VenueID,
		ScheduledAt:      input.ScheduledAt.UTC(),
		Round:            strings.TrimSpace(input.Round),
		Status:           match.StatusScheduled,
		DelegationStatus: match.DelegationPending,
		Notes:            strings.TrimSpace(input.Notes),
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := item.Validate(); err != nil {
		return delegation.MatchView{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err := s.matchRepo.Create(ctx, item); err != nil {
		return delegation.MatchView{}, fmt.Errorf("create match: %w", err)
	}

	s.logger.InfoContext(ctx, "match created", "match_id", item.ID, "scheduled_at", item.ScheduledAt)
	return s.hydrator.HydrateWithAssignments(ctx, item, nil)
}

func (s *MatchService) GetMatch(ctx context.Context, matchID string) (delegation.MatchView, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.GetMatch")
	defer span.End()

	matchID = strings.TrimSpace(matchID)
	if matchID == "" {
		return delegation.MatchView{}, fmt.Errorf("%w: match id is required", ErrInvalidInput)
	}
	item, ok, err := s.matchRepo.GetByID(ctx, matchID)
	if err != nil {
		return delegation.MatchView{}, fmt.Errorf("get match: %w", err)
	}
	if !ok {
		return delegation.MatchView{}, fmt.Errorf("%w: match %s not found", ErrNotFound, matchID)
	}
	return s.hydrator.Hydrate(ctx, item)
}

func (s *MatchService) ListMatches(ctx context.Context, input ListMatchesInput) (delegation.Page, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.ListMatches")
	defer span.End()

	page, limit, err := normalizePage(input.Page, input.Limit)
	if err != nil {
		return delegation.Page{}, err
	}

	filter := match.ListFilter{CompetitionID: strings.TrimSpace(input.CompetitionID)}
	if value := strings.TrimSpace(input.Status); value != "" {
		status, err := match.ParseStatus(value)
		if err != nil {
			return delegation.Page{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		filter.Statuses = []match.Status{status}
	}
	if value := strings.TrimSpace(input.DelegationStatus); value != "" {
		status, err := match.ParseDelegationStatus(value)
		if err != nil {
			return delegation.Page{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		filter.DelegationStatuses = []match.DelegationStatus{status}
	}
	if !input.From.IsZero() {
		from := input.From
		filter.ScheduledFrom = &from
	}
	if !input.To.IsZero() {
		to := input.To
		filter.ScheduledTo = &to
	}
	if filter.ScheduledFrom != nil && filter.ScheduledTo != nil && filter.ScheduledTo.Before(*filter.ScheduledFrom) {
		return delegation.Page{}, fmt.Errorf("%w: date range is inverted", ErrInvalidInput)
	}

	total, err := s.matchRepo.Count(ctx, filter)
	if err != nil {
		return delegation.Page{}, fmt.Errorf("count matches: %w", err)
	}
	filter.Limit = limit
	filter.Offset = (page - 1) * limit
	items, err := s.matchRepo.List(ctx, filter)
	if err != nil {
		return delegation.Page{}, fmt.Errorf("list matches: %w", err)
	}

	views, err := s.hydrator.HydrateMany(ctx, items)
	if err != nil {
		return delegation.Page{}, err
	}
	return delegation.Page{Items: views, Total: total, Page: page, Limit: limit}, nil
}

// RecordResult stores the final score and completes the match.
func (s *MatchService) RecordResult(ctx context.Context, matchID string, homeScore, awayScore int) (delegation.MatchView, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.RecordResult")
	defer span.End()

	if err := match.ValidateScore(match.StatusCompleted, &homeScore, &awayScore); err != nil {
		return delegation.MatchView{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	updated, err := s.mutate(ctx, matchID, func(m *match.Match) error {
		if m.Status == match.StatusCancelled {
			return fmt.Errorf("%w: match %s is cancelled", ErrInvalidState, m.ID)
		}
		m.Status = match.StatusCompleted
		m.HomeScore = &homeScore
		m.AwayScore = &awayScore
		return nil
	})
	if err != nil {
		return delegation.MatchView{}, err
	}

	s.logger.InfoContext(ctx, "match result recorded", "match_id", updated.ID, "home_score", homeScore, "away_score", awayScore)
	return s.hydrator.Hydrate(ctx, updated)
}

// UpdateMatchStatus moves a match between non-completed lifecycle states.
func (s *MatchService) UpdateMatchStatus(ctx context.Context, matchID, status string) (delegation.MatchView, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.UpdateMatchStatus")
	defer span.End()

	next, err := match.ParseStatus(status)
	if err != nil {
		return delegation.MatchView{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if next == match.StatusCompleted {
		return delegation.MatchView{}, fmt.Errorf("%w: matches are completed by recording a result", ErrInvalidInput)
	}

	updated, err := s.mutate(ctx, matchID, func(m *match.Match) error {
		if !m.CanTransitionTo(next) {
			return fmt.Errorf("%w: match %s cannot move from %s to %s", ErrInvalidState, m.ID, m.Status, next)
		}
		m.Status = next
		return nil
	})
	if err != nil {
		return delegation.MatchView{}, err
	}
	return s.hydrator.Hydrate(ctx, updated)
}

func (s *MatchService) mutate(ctx context.Context, matchID string, apply func(m *match.Match) error) (match.Match, error) {
	matchID = strings.TrimSpace(matchID)
	if matchID == "" {
		return match.Match{}, fmt.Errorf("%w: match id is required", ErrInvalidInput)
	}

	var updated match.Match
	err := s.txManager.WithinTx(ctx, func(ctx context.Context, stores delegation.Stores) error {
		m, ok, err := stores.Matches.GetByIDForUpdate(ctx, matchID)
		if err != nil {
			return fmt.Errorf("lock match: %w", err)
		}
		if !ok {
			return fmt.Errorf("%w: match %s not found", ErrNotFound, matchID)
		}
		if err := apply(&m); err != nil {
			return err
		}
		m.UpdatedAt = s.now().UTC()
		if err := stores.Matches.Update(ctx, m); err != nil {
			return fmt.Errorf("update match: %w", err)
		}
		updated = m
		return nil
	})
	return updated, err
}

func (s *MatchService) ensureReferences(ctx context.Context, input CreateMatchInput) error {
	if _, ok, err := s.competitionRepo.GetByID(ctx, input.CompetitionID); err != nil {
		return fmt.Errorf("get competition: %w", err)
	} else if !ok {
		return fmt.Errorf("%w: competition %s not found", ErrNotFound, input.CompetitionID)
	}
	for _, teamID := range []string{input.HomeTeamID, input.AwayTeamID} {
		if _, ok, err := s.teamRepo.GetByID(ctx, teamID); err != nil {
			return fmt.Errorf("get team: %w", err)
		} else if !ok {
			return fmt.Errorf("%w: team %s not found", ErrNotFound, teamID)
		}
	}
	if input.VenueID == "" {
		return nil
	}
	if _, ok, err := s.venueRepo.GetByID(ctx, input.VenueID); err != nil {
		return fmt.Errorf("get venue: %w", err)
	} else if !ok {
		return fmt.Errorf("%w: venue %s not found", ErrNotFound, input.VenueID)
	}
	return nil
}

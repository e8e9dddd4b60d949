package usecase

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/referee-delegation/internal/domain/assignment"
	"github.com/riskibarqy/referee-delegation/internal/domain/availability"
	"github.com/riskibarqy/referee-delegation/internal/domain/delegation"
	"github.com/riskibarqy/referee-delegation/internal/domain/match"
	"github.com/riskibarqy/referee-delegation/internal/domain/referee"
	idgen "github.com/riskibarqy/referee-delegation/internal/platform/id"
	"github.com/riskibarqy/referee-delegation/internal/platform/logging"
	"go.opentelemetry.io/otel/attribute"
)

const (
	defaultDelegationPageLimit = 20
	maxDelegationPageLimit     = 100
	defaultUpcomingWindow      = 7 * 24 * time.Hour
	defaultScheduleHorizon     = 30 * 24 * time.Hour
)

// DelegationConfig tunes the delegation engine.
type DelegationConfig struct {
	Rules          delegation.Rules
	Location       *time.Location
	UpcomingWindow time.Duration
}

// DelegateRefereesInput replaces the full roster of a match.
type DelegateRefereesInput struct {
	MatchID    string
	DelegateID string
	Roster     []delegation.RosterEntry
}

type ListDelegationsInput struct {
	DelegateID string
	Status     string
	Page       int
	Limit      int
}

type DelegationService struct {
	txManager        delegation.TxManager
	matchRepo        match.Repository
	assignmentRepo   assignment.Repository
	availabilityRepo availability.Repository
	refereeRepo      referee.Repository
	hydrator         *MatchViewHydrator
	rules            delegation.Rules
	loc              *time.Location
	upcomingWindow   time.Duration
	idGen            idgen.Generator
	logger           *logging.Logger
	now              func() time.Time
}

func NewDelegationService(
	txManager delegation.TxManager,
	matchRepo match.Repository,
	assignmentRepo assignment.Repository,
	availabilityRepo availability.Repository,
	refereeRepo referee.Repository,
	hydrator *MatchViewHydrator,
	cfg DelegationConfig,
	idGen idgen.Generator,
	logger *logging.Logger,
) *DelegationService {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}
	if cfg.UpcomingWindow <= 0 {
		cfg.UpcomingWindow = defaultUpcomingWindow
	}
	if cfg.Rules.RequiredReferees < 1 {
		cfg.Rules = delegation.DefaultRules()
	}

	return &DelegationService{
		txManager:        txManager,
		matchRepo:        matchRepo,
		assignmentRepo:   assignmentRepo,
		availabilityRepo: availabilityRepo,
		refereeRepo:      refereeRepo,
		hydrator:         hydrator,
		rules:            cfg.Rules,
		loc:              cfg.Location,
		upcomingWindow:   cfg.UpcomingWindow,
		idGen:            idGen,
		logger:           logger.Named("delegation"),
		now:              time.Now,
	}
}

// DelegateReferees validates every referee in submission order and, if all
// pass, atomically replaces the ledger of the match.
func (s *DelegationService) DelegateReferees(ctx context.Context, input DelegateRefereesInput) (delegation.MatchView, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DelegationService.DelegateReferees",
		attribute.String("match.id", input.MatchID),
		attribute.Int("roster.size", len(input.Roster)),
	)
	defer span.End()

	input.MatchID = strings.TrimSpace(input.MatchID)
	input.DelegateID = strings.TrimSpace(input.DelegateID)
	if input.MatchID == "" {
		return delegation.MatchView{}, fmt.Errorf("%w: match id is required", ErrInvalidInput)
	}
	if input.DelegateID == "" {
		return delegation.MatchView{}, fmt.Errorf("%w: delegate id is required", ErrInvalidInput)
	}
	for i := range input.Roster {
		input.Roster[i].RefereeID = strings.TrimSpace(input.Roster[i].RefereeID)
	}
	if err := delegation.ValidateRoster(input.Roster); err != nil {
		return delegation.MatchView{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	var (
		updated match.Match
		ledger  []assignment.Assignment
	)
	err := s.txManager.WithinTx(ctx, func(ctx context.Context, stores delegation.Stores) error {
		m, err := s.lockMatch(ctx, stores, input.MatchID)
		if err != nil {
			return err
		}
		if !m.AcceptsDelegation() {
			return fmt.Errorf("%w: match %s is %s", ErrInvalidState, m.ID, m.Status)
		}

		if err := s.ensureActiveReferees(ctx, input.Roster); err != nil {
			return err
		}

		checker := NewConflictChecker(stores.Availability, stores.Assignments, s.loc)
		if err := lockRosterDay(ctx, stores.Locks, input.Roster, checker.MatchDate(m.ScheduledAt)); err != nil {
			return err
		}
		for _, entry := range input.Roster {
			if err := checker.Check(ctx, entry.RefereeID, m.ScheduledAt, m.ID); err != nil {
				return err
			}
		}

		previous, err := stores.Assignments.ListByMatch(ctx, m.ID)
		if err != nil {
			return fmt.Errorf("list current roster: %w", err)
		}
		ledger, err = s.buildLedger(m.ID, input.Roster, previous)
		if err != nil {
			return err
		}

		if err := stores.Assignments.DeleteByMatch(ctx, m.ID); err != nil {
			return fmt.Errorf("delete current roster: %w", err)
		}
		if err := stores.Assignments.InsertBatch(ctx, ledger); err != nil {
			return fmt.Errorf("insert roster: %w", err)
		}

		now := s.now().UTC()
		m.DelegationStatus = s.rules.ComputeDelegationStatus(m.DelegationStatus, ledger)
		m.DelegatedBy = input.DelegateID
		m.DelegatedAt = &now
		m.UpdatedAt = now
		if err := stores.Matches.Update(ctx, m); err != nil {
			return fmt.Errorf("update match delegation: %w", err)
		}
		updated = m
		return nil
	})
	if err != nil {
		return delegation.MatchView{}, err
	}

	s.logger.InfoContext(ctx, "roster replaced",
		"match_id", updated.ID,
		"delegate_id", input.DelegateID,
		"referee_count", len(ledger),
		"delegation_status", updated.DelegationStatus,
	)
	return s.hydrator.HydrateWithAssignments(ctx, updated, ledger)
}

// RemoveRefereeFromMatch deletes one assignment and recomputes the status from what remains.
func (s *DelegationService) RemoveRefereeFromMatch(ctx context.Context, matchID, refereeID string) (delegation.MatchView, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DelegationService.RemoveRefereeFromMatch", attribute.String("match.id", matchID))
	defer span.End()

	matchID, refereeID, err := requireMatchAndReferee(matchID, refereeID)
	if err != nil {
		return delegation.MatchView{}, err
	}

	var (
		updated   match.Match
		remaining []assignment.Assignment
	)
	err = s.txManager.WithinTx(ctx, func(ctx context.Context, stores delegation.Stores) error {
		m, err := s.lockMatch(ctx, stores, matchID)
		if err != nil {
			return err
		}
		if _, err := s.requireAssignment(ctx, stores, matchID, refereeID); err != nil {
			return err
		}
		if err := stores.Assignments.Delete(ctx, matchID, refereeID); err != nil {
			return fmt.Errorf("delete assignment: %w", err)
		}

		remaining, err = stores.Assignments.ListByMatch(ctx, matchID)
		if err != nil {
			return fmt.Errorf("list remaining roster: %w", err)
		}
		m, err = s.recompute(ctx, stores, m, s.rules.ComputeDelegationStatus(m.DelegationStatus, remaining))
		if err != nil {
			return err
		}
		updated = m
		return nil
	})
	if err != nil {
		return delegation.MatchView{}, err
	}

	s.logger.InfoContext(ctx, "referee removed from match",
		"match_id", matchID,
		"referee_id", refereeID,
		"delegation_status", updated.DelegationStatus,
	)
	return s.hydrator.HydrateWithAssignments(ctx, updated, remaining)
}

// UpdateRefereeRole changes only the role of an assignment.
func (s *DelegationService) UpdateRefereeRole(ctx context.Context, matchID, refereeID, role string) (delegation.MatchView, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DelegationService.UpdateRefereeRole", attribute.String("match.id", matchID))
	defer span.End()

	matchID, refereeID, err := requireMatchAndReferee(matchID, refereeID)
	if err != nil {
		return delegation.MatchView{}, err
	}
	newRole, err := assignment.ParseRole(role)
	if err != nil {
		return delegation.MatchView{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	var (
		current match.Match
		ledger  []assignment.Assignment
	)
	err = s.txManager.WithinTx(ctx, func(ctx context.Context, stores delegation.Stores) error {
		m, err := s.lockMatch(ctx, stores, matchID)
		if err != nil {
			return err
		}
		ledger, err = stores.Assignments.ListByMatch(ctx, matchID)
		if err != nil {
			return fmt.Errorf("list roster: %w", err)
		}

		idx := -1
		for i, a := range ledger {
			if a.RefereeID == refereeID {
				idx = i
				break
			}
		}
		if idx < 0 {
			return fmt.Errorf("%w: referee %s is not assigned to match %s", ErrNotFound, refereeID, matchID)
		}
		for _, a := range ledger {
			if a.RefereeID != refereeID && a.Role == newRole {
				return fmt.Errorf("%w: role %s is already held by referee %s", ErrConflict, newRole, a.RefereeID)
			}
		}
		current = m
		if ledger[idx].Role == newRole {
			return nil
		}

		ledger[idx].Role = newRole
		ledger[idx].UpdatedAt = s.now().UTC()
		if err := stores.Assignments.Update(ctx, ledger[idx]); err != nil {
			return fmt.Errorf("update assignment role: %w", err)
		}
		return nil
	})
	if err != nil {
		return delegation.MatchView{}, err
	}

	return s.hydrator.HydrateWithAssignments(ctx, current, ledger)
}

// ConfirmAssignment records the referee's acceptance. A complete roster with
// every assignment accepted advances to confirmed.
func (s *DelegationService) ConfirmAssignment(ctx context.Context, matchID, refereeID string) (delegation.MatchView, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DelegationService.ConfirmAssignment", attribute.String("match.id", matchID))
	defer span.End()

	matchID, refereeID, err := requireMatchAndReferee(matchID, refereeID)
	if err != nil {
		return delegation.MatchView{}, err
	}

	var (
		updated match.Match
		ledger  []assignment.Assignment
	)
	err = s.txManager.WithinTx(ctx, func(ctx context.Context, stores delegation.Stores) error {
		m, err := s.lockMatch(ctx, stores, matchID)
		if err != nil {
			return err
		}
		item, err := s.requireAssignment(ctx, stores, matchID, refereeID)
		if err != nil {
			return err
		}

		if item.Status != assignment.StatusAccepted {
			item.Accept(s.now().UTC())
			if err := stores.Assignments.Update(ctx, item); err != nil {
				return fmt.Errorf("accept assignment: %w", err)
			}
		}

		ledger, err = stores.Assignments.ListByMatch(ctx, matchID)
		if err != nil {
			return fmt.Errorf("list roster: %w", err)
		}
		m, err = s.recompute(ctx, stores, m, s.rules.AdvanceOnConfirm(m.DelegationStatus, ledger))
		if err != nil {
			return err
		}
		updated = m
		return nil
	})
	if err != nil {
		return delegation.MatchView{}, err
	}

	s.logger.InfoContext(ctx, "assignment confirmed",
		"match_id", matchID,
		"referee_id", refereeID,
		"delegation_status", updated.DelegationStatus,
	)
	return s.hydrator.HydrateWithAssignments(ctx, updated, ledger)
}

// RejectAssignment records a decline. Complete and confirmed delegations drop to partial.
func (s *DelegationService) RejectAssignment(ctx context.Context, matchID, refereeID, reason string) (delegation.MatchView, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DelegationService.RejectAssignment", attribute.String("match.id", matchID))
	defer span.End()

	matchID, refereeID, err := requireMatchAndReferee(matchID, refereeID)
	if err != nil {
		return delegation.MatchView{}, err
	}
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return delegation.MatchView{}, fmt.Errorf("%w: decline reason is required", ErrInvalidInput)
	}

	var (
		updated match.Match
		ledger  []assignment.Assignment
	)
	err = s.txManager.WithinTx(ctx, func(ctx context.Context, stores delegation.Stores) error {
		m, err := s.lockMatch(ctx, stores, matchID)
		if err != nil {
			return err
		}
		item, err := s.requireAssignment(ctx, stores, matchID, refereeID)
		if err != nil {
			return err
		}

		item.Decline(reason, s.now().UTC())
		if err := stores.Assignments.Update(ctx, item); err != nil {
			return fmt.Errorf("decline assignment: %w", err)
		}

		ledger, err = stores.Assignments.ListByMatch(ctx, matchID)
		if err != nil {
			return fmt.Errorf("list roster: %w", err)
		}
		m, err = s.recompute(ctx, stores, m, delegation.ApplyDecline(m.DelegationStatus))
		if err != nil {
			return err
		}
		updated = m
		return nil
	})
	if err != nil {
		return delegation.MatchView{}, err
	}

	s.logger.InfoContext(ctx, "assignment declined",
		"match_id", matchID,
		"referee_id", refereeID,
		"delegation_status", updated.DelegationStatus,
	)
	return s.hydrator.HydrateWithAssignments(ctx, updated, ledger)
}

// GetAvailableRefereesForMatch returns active referees that a roster for the match would accept.
func (s *DelegationService) GetAvailableRefereesForMatch(ctx context.Context, matchID string) ([]referee.Referee, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DelegationService.GetAvailableRefereesForMatch", attribute.String("match.id", matchID))
	defer span.End()

	m, err := s.getMatch(ctx, matchID)
	if err != nil {
		return nil, err
	}

	active, err := s.refereeRepo.List(ctx, referee.ListFilter{ActiveOnly: true})
	if err != nil {
		return nil, fmt.Errorf("list active referees: %w", err)
	}

	checker := NewConflictChecker(s.availabilityRepo, s.assignmentRepo, s.loc)
	blocked, err := checker.BlockedReferees(ctx, m.ScheduledAt, m.ID)
	if err != nil {
		return nil, err
	}

	out := make([]referee.Referee, 0, len(active))
	for _, item := range active {
		if _, skip := blocked[item.ID]; skip {
			continue
		}
		out = append(out, item)
	}
	referee.SortByName(out)
	return out, nil
}

func (s *DelegationService) GetMatchDelegation(ctx context.Context, matchID string) (delegation.MatchView, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DelegationService.GetMatchDelegation", attribute.String("match.id", matchID))
	defer span.End()

	m, err := s.getMatch(ctx, matchID)
	if err != nil {
		return delegation.MatchView{}, err
	}
	return s.hydrator.Hydrate(ctx, m)
}

// GetDelegationStatistics aggregates on every call.
func (s *DelegationService) GetDelegationStatistics(ctx context.Context) (delegation.Statistics, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DelegationService.GetDelegationStatistics")
	defer span.End()

	counts, err := s.matchRepo.CountByDelegationStatus(ctx)
	if err != nil {
		return delegation.Statistics{}, fmt.Errorf("count matches by delegation status: %w", err)
	}

	from, to := delegation.UpcomingWindow(s.now().UTC(), s.upcomingWindow)
	upcoming, err := s.matchRepo.Count(ctx, match.ListFilter{
		DelegationStatuses: []match.DelegationStatus{match.DelegationPending, match.DelegationPartial},
		ScheduledFrom:      &from,
		ScheduledTo:        &to,
	})
	if err != nil {
		return delegation.Statistics{}, fmt.Errorf("count upcoming pending matches: %w", err)
	}

	return delegation.NewStatistics(counts, upcoming), nil
}

// ListDelegationsByDelegate pages through matches last delegated by the given user.
func (s *DelegationService) ListDelegationsByDelegate(ctx context.Context, input ListDelegationsInput) (delegation.Page, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DelegationService.ListDelegationsByDelegate")
	defer span.End()

	input.DelegateID = strings.TrimSpace(input.DelegateID)
	if input.DelegateID == "" {
		return delegation.Page{}, fmt.Errorf("%w: delegate id is required", ErrInvalidInput)
	}
	page, limit, err := normalizePage(input.Page, input.Limit)
	if err != nil {
		return delegation.Page{}, err
	}

	filter := match.ListFilter{DelegatedBy: input.DelegateID}
	if status := strings.TrimSpace(input.Status); status != "" {
		parsed, err := match.ParseDelegationStatus(status)
		if err != nil {
			return delegation.Page{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		filter.DelegationStatuses = []match.DelegationStatus{parsed}
	}

	total, err := s.matchRepo.Count(ctx, filter)
	if err != nil {
		return delegation.Page{}, fmt.Errorf("count delegated matches: %w", err)
	}

	filter.Limit = limit
	filter.Offset = (page - 1) * limit
	items, err := s.matchRepo.List(ctx, filter)
	if err != nil {
		return delegation.Page{}, fmt.Errorf("list delegated matches: %w", err)
	}

	views, err := s.hydrator.HydrateMany(ctx, items)
	if err != nil {
		return delegation.Page{}, err
	}

	return delegation.Page{Items: views, Total: total, Page: page, Limit: limit}, nil
}

// ListRefereeAssignments returns the referee's assignments on matches scheduled in [from, to).
// Zero bounds default to today and thirty days ahead.
func (s *DelegationService) ListRefereeAssignments(ctx context.Context, refereeID string, from, to time.Time) ([]delegation.RefereeAssignment, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DelegationService.ListRefereeAssignments")
	defer span.End()

	refereeID = strings.TrimSpace(refereeID)
	if refereeID == "" {
		return nil, fmt.Errorf("%w: referee id is required", ErrInvalidInput)
	}
	if from.IsZero() {
		from, _ = delegation.DayWindow(s.now(), s.loc)
	}
	if to.IsZero() {
		to = from.Add(defaultScheduleHorizon)
	}
	if !to.After(from) {
		return nil, fmt.Errorf("%w: date range is inverted", ErrInvalidInput)
	}

	if _, ok, err := s.refereeRepo.GetByID(ctx, refereeID); err != nil {
		return nil, fmt.Errorf("get referee: %w", err)
	} else if !ok {
		return nil, fmt.Errorf("%w: referee %s not found", ErrNotFound, refereeID)
	}

	items, err := s.assignmentRepo.ListByReferee(ctx, refereeID, from, to)
	if err != nil {
		return nil, fmt.Errorf("list referee assignments: %w", err)
	}

	matchIDs := make([]string, 0, len(items))
	for _, item := range items {
		matchIDs = append(matchIDs, item.MatchID)
	}
	matches, err := s.matchRepo.ListByIDs(ctx, matchIDs)
	if err != nil {
		return nil, fmt.Errorf("list matches: %w", err)
	}

	views, err := s.hydrator.HydrateMany(ctx, matches)
	if err != nil {
		return nil, err
	}

	byMatch := make(map[string]delegation.MatchView, len(views))
	for _, view := range views {
		byMatch[view.Match.ID] = view
	}
	out := make([]delegation.RefereeAssignment, 0, len(items))
	for _, item := range items {
		view, ok := byMatch[item.MatchID]
		if !ok {
			continue
		}
		out = append(out, delegation.RefereeAssignment{Assignment: item, Match: view})
	}
	return out, nil
}

func (s *DelegationService) getMatch(ctx context.Context, matchID string) (match.Match, error) {
	matchID = strings.TrimSpace(matchID)
	if matchID == "" {
		return match.Match{}, fmt.Errorf("%w: match id is required", ErrInvalidInput)
	}
	m, ok, err := s.matchRepo.GetByID(ctx, matchID)
	if err != nil {
		return match.Match{}, fmt.Errorf("get match: %w", err)
	}
	if !ok {
		return match.Match{}, fmt.Errorf("%w: match %s not found", ErrNotFound, matchID)
	}
	return m, nil
}

func (s *DelegationService) lockMatch(ctx context.Context, stores delegation.Stores, matchID string) (match.Match, error) {
	m, ok, err := stores.Matches.GetByIDForUpdate(ctx, matchID)
	if err != nil {
		return match.Match{}, crerr.Wrapf(err, "lock match %s", matchID)
	}
	if !ok {
		return match.Match{}, fmt.Errorf("%w: match %s not found", ErrNotFound, matchID)
	}
	return m, nil
}

func (s *DelegationService) requireAssignment(ctx context.Context, stores delegation.Stores, matchID, refereeID string) (assignment.Assignment, error) {
	item, ok, err := stores.Assignments.GetByMatchAndReferee(ctx, matchID, refereeID)
	if err != nil {
		return assignment.Assignment{}, fmt.Errorf("get assignment: %w", err)
	}
	if !ok {
		return assignment.Assignment{}, fmt.Errorf("%w: referee %s is not assigned to match %s", ErrNotFound, refereeID, matchID)
	}
	return item, nil
}

// recompute persists a new delegation status when it differs from the stored one.
func (s *DelegationService) recompute(ctx context.Context, stores delegation.Stores, m match.Match, next match.DelegationStatus) (match.Match, error) {
	if m.DelegationStatus == next {
		return m, nil
	}
	m.DelegationStatus = next
	m.UpdatedAt = s.now().UTC()
	if err := stores.Matches.Update(ctx, m); err != nil {
		return match.Match{}, fmt.Errorf("update delegation status: %w", err)
	}
	return m, nil
}

func (s *DelegationService) ensureActiveReferees(ctx context.Context, roster []delegation.RosterEntry) error {
	ids := make([]string, 0, len(roster))
	for _, entry := range roster {
		ids = append(ids, entry.RefereeID)
	}
	found, err := s.refereeRepo.ListByIDs(ctx, ids)
	if err != nil {
		return fmt.Errorf("list roster referees: %w", err)
	}

	byID := make(map[string]referee.Referee, len(found))
	for _, r := range found {
		byID[r.ID] = r
	}
	for _, id := range ids {
		r, ok := byID[id]
		if !ok {
			return fmt.Errorf("%w: referee %s not found", ErrNotFound, id)
		}
		if !r.Active {
			return fmt.Errorf("%w: referee %s is inactive", ErrInvalidInput, id)
		}
	}
	return nil
}

// buildLedger creates pending assignments for the roster. A referee already on
// the match keeps its assignment id so replaying a roster leaves the ledger unchanged.
func (s *DelegationService) buildLedger(matchID string, roster []delegation.RosterEntry, previous []assignment.Assignment) ([]assignment.Assignment, error) {
	prevByReferee := make(map[string]assignment.Assignment, len(previous))
	for _, a := range previous {
		prevByReferee[a.RefereeID] = a
	}

	now := s.now().UTC()
	out := make([]assignment.Assignment, 0, len(roster))
	for _, entry := range roster {
		item := assignment.Assignment{
			MatchID:    matchID,
			RefereeID:  entry.RefereeID,
			Role:       entry.Role,
			Status:     assignment.StatusPending,
			Fee:        entry.Fee,
			TravelCost: entry.TravelCost,
			CreatedAt:  now,
			UpdatedAt:  now,
		}
		if prev, ok := prevByReferee[entry.RefereeID]; ok {
			item.ID = prev.ID
			item.CreatedAt = prev.CreatedAt
		} else {
			id, err := s.idGen.NewID()
			if err != nil {
				return nil, fmt.Errorf("generate assignment id: %w", err)
			}
			item.ID = id
		}
		if err := item.Validate(); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		out = append(out, item)
	}
	return out, nil
}

// lockRosterDay takes the referee day locks in id order so concurrent rosters cannot deadlock.
func lockRosterDay(ctx context.Context, locks delegation.Locker, roster []delegation.RosterEntry, day time.Time) error {
	if locks == nil {
		return nil
	}
	ids := make([]string, 0, len(roster))
	for _, entry := range roster {
		ids = append(ids, entry.RefereeID)
	}
	slices.Sort(ids)
	for _, id := range ids {
		if err := locks.LockRefereeDay(ctx, id, day); err != nil {
			return err
		}
	}
	return nil
}

func requireMatchAndReferee(matchID, refereeID string) (string, string, error) {
	matchID = strings.TrimSpace(matchID)
	refereeID = strings.TrimSpace(refereeID)
	if matchID == "" {
		return "", "", fmt.Errorf("%w: match id is required", ErrInvalidInput)
	}
	if refereeID == "" {
		return "", "", fmt.Errorf("%w: referee id is required", ErrInvalidInput)
	}
	return matchID, refereeID, nil
}

func normalizePage(page, limit int) (int, int, error) {
	if page < 0 || limit < 0 {
		return 0, 0, fmt.Errorf("%w: page and limit must not be negative", ErrInvalidInput)
	}
	if page == 0 {
		page = 1
	}
	if limit == 0 {
		limit = defaultDelegationPageLimit
	}
	if limit > maxDelegationPageLimit {
		limit = maxDelegationPageLimit
	}
	return page, limit, nil
}

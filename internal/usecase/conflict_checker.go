package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/riskibarqy/referee-delegation/internal/domain/assignment"
	"github.com/riskibarqy/referee-delegation/internal/domain/availability"
	"github.com/riskibarqy/referee-delegation/internal/domain/delegation"
)

// ConflictChecker applies the availability and double-booking rules.
// Roster submission and the candidate pool both go through it, so they
// share one calendar-day definition and one exclusion rule.
type ConflictChecker struct {
	availabilityRepo availability.Repository
	assignmentRepo   assignment.Repository
	loc              *time.Location
}

func NewConflictChecker(availabilityRepo availability.Repository, assignmentRepo assignment.Repository, loc *time.Location) *ConflictChecker {
	if loc == nil {
		loc = time.UTC
	}
	return &ConflictChecker{
		availabilityRepo: availabilityRepo,
		assignmentRepo:   assignmentRepo,
		loc:              loc,
	}
}

// MatchDate is the calendar date a kickoff falls on in the federation timezone.
func (c *ConflictChecker) MatchDate(at time.Time) time.Time {
	return availability.DateIn(at, c.loc)
}

// IsUnavailable reports an explicit unavailable record on the calendar date of at.
func (c *ConflictChecker) IsUnavailable(ctx context.Context, refereeID string, at time.Time) (bool, error) {
	record, found, err := c.availabilityRepo.Get(ctx, refereeID, c.MatchDate(at))
	if err != nil {
		return false, fmt.Errorf("get availability for referee=%s: %w", refereeID, err)
	}
	return !availability.EffectiveAvailability(record, found), nil
}

// HasConflictingMatch finds an assignment of the referee on another match the same calendar day.
func (c *ConflictChecker) HasConflictingMatch(ctx context.Context, refereeID string, at time.Time, excludingMatchID string) (assignment.Assignment, bool, error) {
	from, to := delegation.DayWindow(at, c.loc)
	item, found, err := c.assignmentRepo.FindConflicting(ctx, refereeID, from, to, excludingMatchID)
	if err != nil {
		return assignment.Assignment{}, false, fmt.Errorf("find conflicting assignment for referee=%s: %w", refereeID, err)
	}
	return item, found, nil
}

// Check returns a *ConflictError when the referee cannot officiate a match at the given time.
func (c *ConflictChecker) Check(ctx context.Context, refereeID string, at time.Time, matchID string) error {
	unavailable, err := c.IsUnavailable(ctx, refereeID, at)
	if err != nil {
		return err
	}
	if unavailable {
		return &ConflictError{RefereeID: refereeID, Reason: ConflictUnavailable, Date: c.MatchDate(at)}
	}

	other, conflicting, err := c.HasConflictingMatch(ctx, refereeID, at, matchID)
	if err != nil {
		return err
	}
	if conflicting {
		return &ConflictError{RefereeID: refereeID, Reason: ConflictDoubleBooked, Date: c.MatchDate(at), MatchID: other.MatchID}
	}
	return nil
}

// BlockedReferees returns every referee that Check would reject for the match.
func (c *ConflictChecker) BlockedReferees(ctx context.Context, at time.Time, matchID string) (map[string]struct{}, error) {
	unavailable, err := c.availabilityRepo.ListUnavailableOn(ctx, c.MatchDate(at))
	if err != nil {
		return nil, fmt.Errorf("list unavailable referees: %w", err)
	}

	from, to := delegation.DayWindow(at, c.loc)
	busy, err := c.assignmentRepo.ListRefereeIDsBusyBetween(ctx, from, to, matchID)
	if err != nil {
		return nil, fmt.Errorf("list busy referees: %w", err)
	}

	blocked := make(map[string]struct{}, len(unavailable)+len(busy))
	for _, id := range unavailable {
		blocked[id] = struct{}{}
	}
	for _, id := range busy {
		blocked[id] = struct{}{}
	}
	return blocked, nil
}

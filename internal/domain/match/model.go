package match

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

type Status string

const (
	StatusScheduled  Status = "scheduled"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusPostponed  Status = "postponed"
	StatusCancelled  Status = "cancelled"
)

type DelegationStatus string

const (
	DelegationPending   DelegationStatus = "pending"
	DelegationPartial   DelegationStatus = "partial"
	DelegationComplete  DelegationStatus = "complete"
	DelegationConfirmed DelegationStatus = "confirmed"
)

// AllDelegationStatuses lists every delegation status in lifecycle order.
var AllDelegationStatuses = []DelegationStatus{
	DelegationPending,
	DelegationPartial,
	DelegationComplete,
	DelegationConfirmed,
}

var (
	ErrSameTeams       = errors.New("home and away team must differ")
	ErrScoreNotAllowed = errors.New("scores are only allowed on completed matches")
	ErrScoreIncomplete = errors.New("home and away score must both be set")
	ErrNegativeScore   = errors.New("score must not be negative")
)

func ParseStatus(value string) (Status, error) {
	status := Status(strings.ToLower(strings.TrimSpace(value)))
	switch status {
	case StatusScheduled, StatusInProgress, StatusCompleted, StatusPostponed, StatusCancelled:
		return status, nil
	default:
		return "", fmt.Errorf("unknown match status %q", value)
	}
}

// IsTerminal reports whether the lifecycle has ended. Terminal matches take no new assignments.
func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

func ParseDelegationStatus(value string) (DelegationStatus, error) {
	status := DelegationStatus(strings.ToLower(strings.TrimSpace(value)))
	for _, known := range AllDelegationStatuses {
		if status == known {
			return status, nil
		}
	}
	return "", fmt.Errorf("unknown delegation status %q", value)
}

// Match is one scheduled fixture that needs officials.
type Match struct {
	ID               string
	CompetitionID    string
	HomeTeamID       string
	AwayTeamID       string
	VenueID          string
	ScheduledAt      time.Time
	Round            string
	Status           Status
	HomeScore        *int
	AwayScore        *int
	DelegationStatus DelegationStatus
	DelegatedBy      string
	DelegatedAt      *time.Time
	Notes            string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func (m Match) Validate() error {
	if m.ID == "" {
		return fmt.Errorf("match id is required")
	}
	if m.CompetitionID == "" {
		return fmt.Errorf("match competition id is required")
	}
	if m.HomeTeamID == "" || m.AwayTeamID == "" {
		return fmt.Errorf("match home and away team are required")
	}
	if m.HomeTeamID == m.AwayTeamID {
		return ErrSameTeams
	}
	if m.ScheduledAt.IsZero() {
		return fmt.Errorf("match scheduled time is required")
	}
	if _, err := ParseStatus(string(m.Status)); err != nil {
		return err
	}
	if _, err := ParseDelegationStatus(string(m.DelegationStatus)); err != nil {
		return err
	}
	return ValidateScore(m.Status, m.HomeScore, m.AwayScore)
}

// ValidateScore enforces both-or-neither scores, set only when completed.
func ValidateScore(status Status, home, away *int) error {
	if home == nil && away == nil {
		return nil
	}
	if home == nil || away == nil {
		return ErrScoreIncomplete
	}
	if status != StatusCompleted {
		return ErrScoreNotAllowed
	}
	if *home < 0 || *away < 0 {
		return ErrNegativeScore
	}
	return nil
}

// AcceptsDelegation reports whether assignments may be added to the match.
func (m Match) AcceptsDelegation() bool {
	return !m.Status.IsTerminal()
}

// CanTransitionTo reports whether a lifecycle change is allowed. Completion goes through result entry.
func (m Match) CanTransitionTo(next Status) bool {
	if m.Status.IsTerminal() || next == StatusCompleted {
		return false
	}
	return m.Status != next
}

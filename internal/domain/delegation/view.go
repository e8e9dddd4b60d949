package delegation

import (
	"sort"

	"github.com/riskibarqy/referee-delegation/internal/domain/assignment"
	"github.com/riskibarqy/referee-delegation/internal/domain/competition"
	"github.com/riskibarqy/referee-delegation/internal/domain/match"
	"github.com/riskibarqy/referee-delegation/internal/domain/referee"
	"github.com/riskibarqy/referee-delegation/internal/domain/team"
	"github.com/riskibarqy/referee-delegation/internal/domain/user"
	"github.com/riskibarqy/referee-delegation/internal/domain/venue"
)

// MatchView is a match with its registry references and ledger expanded for display.
type MatchView struct {
	Match       match.Match
	Competition *competition.Competition
	HomeTeam    *team.Team
	AwayTeam    *team.Team
	Venue       *venue.Venue
	DelegatedBy *user.User
	Assignments []AssignmentView
}

type AssignmentView struct {
	Assignment assignment.Assignment
	Referee    referee.Referee
}

// RefereeAssignment is one entry of a referee's own schedule.
type RefereeAssignment struct {
	Assignment assignment.Assignment
	Match      MatchView
}

// SortAssignments orders by role, then referee last name.
func SortAssignments(items []AssignmentView) {
	sort.SliceStable(items, func(i, j int) bool {
		ri, rj := items[i].Assignment.Role.Rank(), items[j].Assignment.Role.Rank()
		if ri != rj {
			return ri < rj
		}
		return referee.Less(items[i].Referee, items[j].Referee)
	})
}

// Statistics is the delegation overview for admins and delegates.
type Statistics struct {
	Total           int
	ByStatus        map[match.DelegationStatus]int
	UpcomingPending int
}

// NewStatistics fills every delegation status key, zero when absent.
func NewStatistics(counts map[match.DelegationStatus]int, upcomingPending int) Statistics {
	stats := Statistics{
		ByStatus:        make(map[match.DelegationStatus]int, len(match.AllDelegationStatuses)),
		UpcomingPending: upcomingPending,
	}
	for _, status := range match.AllDelegationStatuses {
		stats.ByStatus[status] = counts[status]
		stats.Total += counts[status]
	}
	return stats
}

// Page is one page of delegation views.
type Page struct {
	Items []MatchView
	Total int
	Page  int
	Limit int
}

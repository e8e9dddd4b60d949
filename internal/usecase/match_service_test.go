package usecase

import (
	"testing"
	"time"

	"github.com/riskibarqy/referee-delegation/internal/domain/match"
	"github.com/riskibarqy/referee-delegation/internal/infrastructure/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchService_CreateMatch(t *testing.T) {
	h := newHarness(t)

	view, err := h.matches.CreateMatch(t.Context(), CreateMatchInput{
		CompetitionID: memory.CompetitionIDCup,
		HomeTeamID:    "team-psm",
		AwayTeamID:    "team-arema",
		VenueID:       "venue-jis",
		ScheduledAt:   time.Date(2025, 6, 20, 12, 0, 0, 0, time.UTC),
		Round:         " Semi-final ",
	})
	require.NoError(t, err)

	assert.Equal(t, "id-001", view.Match.ID)
	assert.Equal(t, match.StatusScheduled, view.Match.Status)
	assert.Equal(t, match.DelegationPending, view.Match.DelegationStatus)
	assert.Equal(t, "Semi-final", view.Match.Round)
	require.NotNil(t, view.Competition)
	assert.Equal(t, "Piala Indonesia", view.Competition.Name)
	require.NotNil(t, view.Venue)
	assert.Empty(t, view.Assignments)

	stored, ok, err := h.store.Matches().GetByID(t.Context(), view.Match.ID)
	require.NoError(t, err)
	require.True(t, ok)
	assert.True(t, stored.CreatedAt.Equal(testNow))
}

func TestMatchService_CreateMatch_InvalidInput(t *testing.T) {
	at := time.Date(2025, 6, 20, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		input   CreateMatchInput
		wantErr error
	}{
		{name: "same teams", input: CreateMatchInput{CompetitionID: memory.CompetitionIDLiga1, HomeTeamID: "team-psm", AwayTeamID: "team-psm", ScheduledAt: at}, wantErr: ErrInvalidInput},
		{name: "missing kickoff", input: CreateMatchInput{CompetitionID: memory.CompetitionIDLiga1, HomeTeamID: "team-psm", AwayTeamID: "team-arema"}, wantErr: ErrInvalidInput},
		{name: "missing competition", input: CreateMatchInput{HomeTeamID: "team-psm", AwayTeamID: "team-arema", ScheduledAt: at}, wantErr: ErrInvalidInput},
		{name: "unknown team", input: CreateMatchInput{CompetitionID: memory.CompetitionIDLiga1, HomeTeamID: "team-psm", AwayTeamID: "team-ghost", ScheduledAt: at}, wantErr: ErrNotFound},
		{name: "unknown venue", input: CreateMatchInput{CompetitionID: memory.CompetitionIDLiga1, HomeTeamID: "team-psm", AwayTeamID: "team-arema", VenueID: "venue-ghost", ScheduledAt: at}, wantErr: ErrNotFound},
		{name: "unknown competition", input: CreateMatchInput{CompetitionID: "ghost-cup", HomeTeamID: "team-psm", AwayTeamID: "team-arema", ScheduledAt: at}, wantErr: ErrNotFound},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			h := newHarness(t)
			_, err := h.matches.CreateMatch(t.Context(), tc.input)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestMatchService_RecordResultAndStatus(t *testing.T) {
	h := newHarness(t)
	h.delegate(t, "match-002", "ref-01", "ref-02", "ref-03")

	view, err := h.matches.UpdateMatchStatus(t.Context(), "match-002", "in_progress")
	require.NoError(t, err)
	assert.Equal(t, match.StatusInProgress, view.Match.Status)
	assert.Len(t, view.Assignments, 3)

	_, err = h.matches.UpdateMatchStatus(t.Context(), "match-002", "completed")
	assert.ErrorIs(t, err, ErrInvalidInput)

	view, err = h.matches.RecordResult(t.Context(), "match-002", 3, 1)
	require.NoError(t, err)
	assert.Equal(t, match.StatusCompleted, view.Match.Status)
	require.NotNil(t, view.Match.HomeScore)
	assert.Equal(t, 3, *view.Match.HomeScore)
	assert.Equal(t, 1, *view.Match.AwayScore)
	assert.Equal(t, match.DelegationComplete, view.Match.DelegationStatus)

	_, err = h.matches.UpdateMatchStatus(t.Context(), "match-002", "postponed")
	assert.ErrorIs(t, err, ErrInvalidState)

	_, err = h.delegations.DelegateReferees(t.Context(), DelegateRefereesInput{
		MatchID:    "match-002",
		DelegateID: memory.UserIDDelegate,
		Roster:     roster("ref-04"),
	})
	assert.ErrorIs(t, err, ErrInvalidState)

	// Referees can still respond after the final whistle.
	_, err = h.delegations.ConfirmAssignment(t.Context(), "match-002", "ref-01")
	assert.NoError(t, err)
}

func TestMatchService_RecordResult_Errors(t *testing.T) {
	h := newHarness(t)

	_, err := h.matches.RecordResult(t.Context(), "match-002", -1, 0)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = h.matches.UpdateMatchStatus(t.Context(), "match-003", "cancelled")
	require.NoError(t, err)
	_, err = h.matches.RecordResult(t.Context(), "match-003", 1, 0)
	assert.ErrorIs(t, err, ErrInvalidState)

	_, err = h.matches.RecordResult(t.Context(), "match-999", 1, 0)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = h.matches.UpdateMatchStatus(t.Context(), "match-004", "abandoned")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestMatchService_ListMatches(t *testing.T) {
	h := newHarness(t)
	h.delegate(t, "match-004", "ref-01")

	page, err := h.matches.ListMatches(t.Context(), ListMatchesInput{})
	require.NoError(t, err)
	assert.Equal(t, 5, page.Total)
	require.Len(t, page.Items, 5)
	assert.Equal(t, "match-001", page.Items[0].Match.ID)

	page, err = h.matches.ListMatches(t.Context(), ListMatchesInput{DelegationStatus: "partial"})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "match-004", page.Items[0].Match.ID)
	assert.Len(t, page.Items[0].Assignments, 1)

	page, err = h.matches.ListMatches(t.Context(), ListMatchesInput{
		From:  june(3),
		To:    june(6).Add(19 * time.Hour),
		Limit: 2,
	})
	require.NoError(t, err)
	assert.Equal(t, 3, page.Total)
	require.Len(t, page.Items, 2)
	assert.Equal(t, "match-002", page.Items[0].Match.ID)
	assert.Equal(t, "match-003", page.Items[1].Match.ID)

	page, err = h.matches.ListMatches(t.Context(), ListMatchesInput{CompetitionID: memory.CompetitionIDCup, Status: "scheduled"})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "match-005", page.Items[0].Match.ID)

	_, err = h.matches.ListMatches(t.Context(), ListMatchesInput{From: june(6), To: june(3)})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = h.matches.ListMatches(t.Context(), ListMatchesInput{Page: -1})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

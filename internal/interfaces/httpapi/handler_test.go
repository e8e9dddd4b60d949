package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/referee-delegation/internal/domain/availability"
	"github.com/riskibarqy/referee-delegation/internal/domain/user"
	"github.com/riskibarqy/referee-delegation/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/referee-delegation/internal/platform/logging"
	"github.com/riskibarqy/referee-delegation/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	tokenAdmin    = "token-admin"
	tokenDelegate = "token-delegate"
	tokenRef01    = "token-ref-01"
	tokenRef02    = "token-ref-02"
)

type staticVerifier map[string]user.Principal

func (v staticVerifier) VerifyAccessToken(_ context.Context, token string) (user.Principal, error) {
	p, ok := v[token]
	if !ok {
		return user.Principal{}, fmt.Errorf("%w: unknown token", usecase.ErrUnauthorized)
	}
	return p, nil
}

type counterIDs struct {
	mu sync.Mutex
	n  int
}

func (g *counterIDs) NewID() (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.n++
	return fmt.Sprintf("id-%03d", g.n), nil
}

type apiResponse struct {
	APIVersion string           `json:"apiVersion"`
	Data       json.RawMessage  `json:"data"`
	Error      *googleErrorBody `json:"error"`
}

func newTestRouter(t *testing.T) (http.Handler, time.Time) {
	t.Helper()

	now := time.Now().UTC()
	store := memory.NewStore()
	store.Seed(memory.SeedMatches(now), nil, nil)

	users := memory.NewUserRepository(memory.SeedUsers())
	referees := memory.NewRefereeRepository(memory.SeedReferees(), users)
	teams := memory.NewTeamRepository(memory.SeedTeams())
	venues := memory.NewVenueRepository(memory.SeedVenues())
	competitions := memory.NewCompetitionRepository(memory.SeedCompetitions())

	logger := logging.NewNop()
	ids := &counterIDs{}
	hydrator := usecase.NewMatchViewHydrator(competitions, teams, venues, users, referees, store.Assignments(), 2)

	handler := NewHandler(
		usecase.NewDelegationService(store, store.Matches(), store.Assignments(), store.Availability(), referees, hydrator, usecase.DelegationConfig{}, ids, logger),
		usecase.NewAvailabilityService(store, store.Availability(), referees, logger),
		usecase.NewMatchService(store, store.Matches(), competitions, teams, venues, hydrator, ids, logger),
		usecase.NewRefereeService(referees),
		time.UTC,
		logger,
	)

	verifier := staticVerifier{
		tokenAdmin:    {UserID: memory.UserIDAdmin, Role: user.RoleAdmin},
		tokenDelegate: {UserID: memory.UserIDDelegate, Role: user.RoleDelegate},
		tokenRef01:    {UserID: "user-ref-01", Role: user.RoleReferee},
		tokenRef02:    {UserID: "user-ref-02", Role: user.RoleReferee},
	}

	return NewRouter(handler, verifier, logger, false, nil), now
}

func call(t *testing.T, router http.Handler, method, path, token string, body any) (int, apiResponse) {
	t.Helper()

	var payload []byte
	if body != nil {
		var err error
		payload, err = sonic.Marshal(body)
		require.NoError(t, err)
	}

	req := httptest.NewRequest(method, path, bytes.NewReader(payload))
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var out apiResponse
	require.NoError(t, sonic.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return rec.Code, out
}

func decodeData[T any](t *testing.T, resp apiResponse) T {
	t.Helper()
	var out T
	require.NoError(t, sonic.Unmarshal(resp.Data, &out))
	return out
}

func fullRoster(ids ...string) map[string]any {
	roles := []string{"first_referee", "second_referee", "third_referee"}
	entries := make([]map[string]any, 0, len(ids))
	for i, id := range ids {
		entries = append(entries, map[string]any{"referee_id": id, "role": roles[i]})
	}
	return map[string]any{"referees": entries}
}

func TestRouter_Healthz(t *testing.T) {
	router, _ := newTestRouter(t)

	status, resp := call(t, router, http.MethodGet, "/healthz", "", nil)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, googleAPIVersion, resp.APIVersion)
}

func TestRouter_RoleGate(t *testing.T) {
	router, _ := newTestRouter(t)

	tests := []struct {
		name   string
		method string
		path   string
		token  string
		status int
	}{
		{name: "missing token", method: http.MethodGet, path: "/v1/matches", status: http.StatusUnauthorized},
		{name: "unknown token", method: http.MethodGet, path: "/v1/matches", token: "nope", status: http.StatusUnauthorized},
		{name: "referee lists matches", method: http.MethodGet, path: "/v1/matches", token: tokenRef01, status: http.StatusOK},
		{name: "referee cannot delegate", method: http.MethodPost, path: "/v1/matches/match-002/delegation", token: tokenRef01, status: http.StatusForbidden},
		{name: "delegate cannot create match", method: http.MethodPost, path: "/v1/matches", token: tokenDelegate, status: http.StatusForbidden},
		{name: "delegate cannot confirm", method: http.MethodPost, path: "/v1/matches/match-002/confirm", token: tokenDelegate, status: http.StatusForbidden},
		{name: "delegate reads statistics", method: http.MethodGet, path: "/v1/delegations/statistics", token: tokenDelegate, status: http.StatusOK},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			status, resp := call(t, router, tc.method, tc.path, tc.token, nil)
			assert.Equal(t, tc.status, status)
			if tc.status >= http.StatusBadRequest {
				require.NotNil(t, resp.Error)
			}
		})
	}
}

func TestRouter_DelegateAndConfirm(t *testing.T) {
	router, _ := newTestRouter(t)

	status, resp := call(t, router, http.MethodPost, "/v1/matches/match-002/delegation", tokenDelegate, fullRoster("ref-01", "ref-02", "ref-03"))
	require.Equal(t, http.StatusOK, status, resp.Error)

	view := decodeData[matchDTO](t, resp)
	assert.Equal(t, "complete", view.DelegationStatus)
	require.Len(t, view.Assignments, 3)
	assert.Equal(t, "ref-01", view.Assignments[0].RefereeID)
	require.NotNil(t, view.DelegatedBy)
	assert.Equal(t, memory.UserIDDelegate, view.DelegatedBy.ID)

	status, resp = call(t, router, http.MethodPost, "/v1/matches/match-002/confirm", tokenRef01, nil)
	require.Equal(t, http.StatusOK, status, resp.Error)
	view = decodeData[matchDTO](t, resp)
	assert.Equal(t, "accepted", view.Assignments[0].Status)

	status, resp = call(t, router, http.MethodPost, "/v1/matches/match-002/reject", tokenRef02, map[string]any{"reason": "family event"})
	require.Equal(t, http.StatusOK, status, resp.Error)
	view = decodeData[matchDTO](t, resp)
	for _, item := range view.Assignments {
		if item.RefereeID == "ref-02" {
			assert.Equal(t, "declined", item.Status)
			assert.Equal(t, "family event", item.DeclineReason)
		}
	}

	status, resp = call(t, router, http.MethodGet, "/v1/referees/me/assignments", tokenRef01, nil)
	require.Equal(t, http.StatusOK, status, resp.Error)
	assignments := decodeData[[]refereeAssignmentDTO](t, resp)
	require.Len(t, assignments, 1)
	assert.Equal(t, "match-002", assignments[0].Match.ID)
}

func TestRouter_DelegateConflictDetails(t *testing.T) {
	router, now := newTestRouter(t)
	matchDay := availability.FormatDate(memory.SeedMatches(now)[1].ScheduledAt)

	status, resp := call(t, router, http.MethodPut, "/v1/referees/me/availability/"+matchDay, tokenRef02, map[string]any{
		"is_available": false,
		"reason":       "sick",
	})
	require.Equal(t, http.StatusOK, status, resp.Error)

	status, resp = call(t, router, http.MethodPost, "/v1/matches/match-002/delegation", tokenDelegate, fullRoster("ref-01", "ref-02", "ref-03"))
	require.Equal(t, http.StatusConflict, status)
	require.NotNil(t, resp.Error)
	require.Len(t, resp.Error.Errors, 1)
	assert.Equal(t, "ABORTED", resp.Error.Status)
	assert.Equal(t, "refereeUnavailable", resp.Error.Errors[0].Reason)
	assert.Equal(t, "ref-02", resp.Error.Errors[0].Location)
	assert.Equal(t, matchDay, resp.Error.Errors[0].Date)

	status, resp = call(t, router, http.MethodGet, "/v1/matches/match-002/delegation", tokenDelegate, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Empty(t, decodeData[matchDTO](t, resp).Assignments)
}

func TestRouter_AvailabilitySelfScope(t *testing.T) {
	router, _ := newTestRouter(t)

	status, _ := call(t, router, http.MethodPut, "/v1/referees/ref-02/availability/2030-01-01", tokenRef01, map[string]any{"is_available": false})
	assert.Equal(t, http.StatusForbidden, status)

	status, _ = call(t, router, http.MethodPut, "/v1/referees/ref-01/availability/2030-01-01", tokenRef01, map[string]any{"is_available": false})
	assert.Equal(t, http.StatusOK, status)

	status, _ = call(t, router, http.MethodGet, "/v1/referees/me/availability?from=2030-01-01&to=2030-01-02", tokenAdmin, nil)
	assert.Equal(t, http.StatusBadRequest, status)

	status, resp := call(t, router, http.MethodGet, "/v1/referees/ref-01/availability?from=2030-01-01&to=2030-01-02", tokenAdmin, nil)
	require.Equal(t, http.StatusOK, status)
	days := decodeData[[]dayEntryDTO](t, resp)
	require.Len(t, days, 2)
	assert.False(t, days[0].IsAvailable)
	assert.True(t, days[0].Explicit)
	assert.True(t, days[1].IsAvailable)
	assert.False(t, days[1].Explicit)

	status, _ = call(t, router, http.MethodDelete, "/v1/referees/me/availability/2030-01-01", tokenRef01, nil)
	assert.Equal(t, http.StatusOK, status)
}

func TestRouter_CreateMatch(t *testing.T) {
	router, now := newTestRouter(t)
	kickoff := now.Add(72 * time.Hour).Truncate(time.Minute).Format(time.RFC3339)

	status, resp := call(t, router, http.MethodPost, "/v1/matches", tokenAdmin, map[string]any{
		"competition_id": memory.CompetitionIDCup,
		"home_team_id":   "team-psm",
		"away_team_id":   "team-arema",
		"scheduled_at":   kickoff,
	})
	require.Equal(t, http.StatusCreated, status, resp.Error)
	created := decodeData[matchDTO](t, resp)
	assert.Equal(t, "scheduled", created.Status)
	assert.Equal(t, "pending", created.DelegationStatus)
	assert.Empty(t, created.Assignments)

	status, _ = call(t, router, http.MethodPost, "/v1/matches", tokenAdmin, map[string]any{
		"competition_id": memory.CompetitionIDCup,
		"home_team_id":   "team-psm",
		"away_team_id":   "team-psm",
		"scheduled_at":   kickoff,
	})
	assert.Equal(t, http.StatusBadRequest, status)

	status, _ = call(t, router, http.MethodPost, "/v1/matches", tokenAdmin, map[string]any{
		"competition_id": memory.CompetitionIDCup,
		"home_team_id":   "team-psm",
		"away_team_id":   "team-arema",
		"scheduled_at":   kickoff,
		"unexpected":     true,
	})
	assert.Equal(t, http.StatusBadRequest, status)
}

package httpapi

import (
	"net/http"

	"github.com/riskibarqy/referee-delegation/internal/domain/user"
)

var (
	anyRole           = []user.Role{user.RoleAdmin, user.RoleDelegate, user.RoleReferee}
	staffRoles        = []user.Role{user.RoleAdmin, user.RoleDelegate}
	adminOnly         = []user.Role{user.RoleAdmin}
	refereeOnly       = []user.Role{user.RoleReferee}
	availabilityWrite = []user.Role{user.RoleAdmin, user.RoleReferee}
)

func registerSystemRoutes(mux *http.ServeMux, handler *Handler, swaggerEnabled bool) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
	if !swaggerEnabled {
		return
	}

	mux.HandleFunc("GET /openapi.yaml", handler.OpenAPI)
	mux.HandleFunc("GET /docs", handler.SwaggerUI)
	mux.HandleFunc("GET /docs/", handler.SwaggerUI)
}

func registerDelegationRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	mux.Handle("POST /v1/matches/{matchID}/delegation", guarded(verifier, staffRoles, handler.DelegateReferees))
	mux.Handle("GET /v1/matches/{matchID}/delegation", guarded(verifier, anyRole, handler.GetMatchDelegation))
	mux.Handle("GET /v1/matches/{matchID}/available-referees", guarded(verifier, staffRoles, handler.GetAvailableReferees))
	mux.Handle("PATCH /v1/matches/{matchID}/referees/{refereeID}", guarded(verifier, staffRoles, handler.UpdateRefereeRole))
	mux.Handle("DELETE /v1/matches/{matchID}/referees/{refereeID}", guarded(verifier, staffRoles, handler.RemoveReferee))
	mux.Handle("POST /v1/matches/{matchID}/confirm", guarded(verifier, refereeOnly, handler.ConfirmAssignment))
	mux.Handle("POST /v1/matches/{matchID}/reject", guarded(verifier, refereeOnly, handler.RejectAssignment))
	mux.Handle("GET /v1/delegations/statistics", guarded(verifier, staffRoles, handler.GetDelegationStatistics))
	mux.Handle("GET /v1/delegations/me", guarded(verifier, staffRoles, handler.ListMyDelegations))
}

func registerMatchRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	mux.Handle("POST /v1/matches", guarded(verifier, adminOnly, handler.CreateMatch))
	mux.Handle("GET /v1/matches", guarded(verifier, anyRole, handler.ListMatches))
	mux.Handle("GET /v1/matches/{matchID}", guarded(verifier, anyRole, handler.GetMatch))
	mux.Handle("POST /v1/matches/{matchID}/result", guarded(verifier, adminOnly, handler.RecordResult))
	mux.Handle("PATCH /v1/matches/{matchID}/status", guarded(verifier, adminOnly, handler.UpdateMatchStatus))
}

func registerRefereeRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	mux.Handle("GET /v1/referees", guarded(verifier, staffRoles, handler.ListReferees))
	mux.Handle("GET /v1/referees/me/assignments", guarded(verifier, refereeOnly, handler.ListMyAssignments))
	mux.Handle("GET /v1/referees/{refereeID}/availability", guarded(verifier, anyRole, handler.GetAvailabilityCalendar))
	mux.Handle("GET /v1/referees/{refereeID}/availability/month", guarded(verifier, anyRole, handler.GetAvailabilityMonth))
	mux.Handle("PUT /v1/referees/{refereeID}/availability", guarded(verifier, availabilityWrite, handler.SetAvailabilityRange))
	mux.Handle("PUT /v1/referees/{refereeID}/availability/{date}", guarded(verifier, availabilityWrite, handler.SetAvailability))
	mux.Handle("DELETE /v1/referees/{refereeID}/availability/{date}", guarded(verifier, availabilityWrite, handler.ClearAvailability))
}

func guarded(verifier TokenVerifier, roles []user.Role, fn http.HandlerFunc) http.Handler {
	return RequireAuth(verifier, RequireRole(roles, fn))
}

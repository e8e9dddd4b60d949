package httpapi

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/riskibarqy/referee-delegation/internal/domain/assignment"
	"github.com/riskibarqy/referee-delegation/internal/domain/delegation"
	"github.com/riskibarqy/referee-delegation/internal/domain/user"
	"github.com/riskibarqy/referee-delegation/internal/usecase"
)

func (h *Handler) DelegateReferees(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DelegateReferees")
	defer span.End()

	matchID := r.PathValue("matchID")
	p, err := h.principal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req delegateRefereesRequest
	if err := h.decodeJSON(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	roster := make([]delegation.RosterEntry, 0, len(req.Referees))
	for _, entry := range req.Referees {
		roster = append(roster, delegation.RosterEntry{
			RefereeID:  entry.RefereeID,
			Role:       assignment.Role(strings.TrimSpace(entry.Role)),
			Fee:        entry.Fee,
			TravelCost: entry.TravelCost,
		})
	}

	view, err := h.delegationService.DelegateReferees(ctx, usecase.DelegateRefereesInput{
		MatchID:    matchID,
		DelegateID: p.UserID,
		Roster:     roster,
	})
	if err != nil {
		h.fail(ctx, w, "delegate referees failed", err, "match_id", matchID, "delegate_id", p.UserID)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, matchViewToDTO(view))
}

func (h *Handler) GetMatchDelegation(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetMatchDelegation")
	defer span.End()

	matchID := r.PathValue("matchID")
	view, err := h.delegationService.GetMatchDelegation(ctx, matchID)
	if err != nil {
		h.fail(ctx, w, "get match delegation failed", err, "match_id", matchID)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, matchViewToDTO(view))
}

func (h *Handler) GetAvailableReferees(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetAvailableReferees")
	defer span.End()

	matchID := r.PathValue("matchID")
	items, err := h.delegationService.GetAvailableRefereesForMatch(ctx, matchID)
	if err != nil {
		h.fail(ctx, w, "list available referees failed", err, "match_id", matchID)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, refereesToDTO(items))
}

func (h *Handler) UpdateRefereeRole(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateRefereeRole")
	defer span.End()

	matchID, refereeID := r.PathValue("matchID"), r.PathValue("refereeID")
	var req updateRoleRequest
	if err := h.decodeJSON(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	view, err := h.delegationService.UpdateRefereeRole(ctx, matchID, refereeID, req.Role)
	if err != nil {
		h.fail(ctx, w, "update referee role failed", err, "match_id", matchID, "referee_id", refereeID)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, matchViewToDTO(view))
}

func (h *Handler) RemoveReferee(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RemoveReferee")
	defer span.End()

	matchID, refereeID := r.PathValue("matchID"), r.PathValue("refereeID")
	view, err := h.delegationService.RemoveRefereeFromMatch(ctx, matchID, refereeID)
	if err != nil {
		h.fail(ctx, w, "remove referee failed", err, "match_id", matchID, "referee_id", refereeID)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, matchViewToDTO(view))
}

func (h *Handler) ConfirmAssignment(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ConfirmAssignment")
	defer span.End()

	matchID := r.PathValue("matchID")
	refereeID, err := h.ownRefereeID(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	view, err := h.delegationService.ConfirmAssignment(ctx, matchID, refereeID)
	if err != nil {
		h.fail(ctx, w, "confirm assignment failed", err, "match_id", matchID, "referee_id", refereeID)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, matchViewToDTO(view))
}

func (h *Handler) RejectAssignment(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RejectAssignment")
	defer span.End()

	matchID := r.PathValue("matchID")
	refereeID, err := h.ownRefereeID(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req rejectAssignmentRequest
	if err := h.decodeJSON(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	view, err := h.delegationService.RejectAssignment(ctx, matchID, refereeID, req.Reason)
	if err != nil {
		h.fail(ctx, w, "reject assignment failed", err, "match_id", matchID, "referee_id", refereeID)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, matchViewToDTO(view))
}

func (h *Handler) GetDelegationStatistics(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetDelegationStatistics")
	defer span.End()

	stats, err := h.delegationService.GetDelegationStatistics(ctx)
	if err != nil {
		h.fail(ctx, w, "get delegation statistics failed", err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, statisticsToDTO(stats))
}

// ListMyDelegations pages through the caller's delegations. Admins may
// inspect another delegate through delegate_id.
func (h *Handler) ListMyDelegations(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListMyDelegations")
	defer span.End()

	p, err := h.principal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	query := r.URL.Query()
	delegateID := p.UserID
	if other := strings.TrimSpace(query.Get("delegate_id")); other != "" && other != p.UserID {
		if p.Role != user.RoleAdmin {
			writeError(ctx, w, fmt.Errorf("%w: only admins can list other delegates", usecase.ErrForbidden))
			return
		}
		delegateID = other
	}

	page, err := parseIntParam("page", query.Get("page"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	limit, err := parseIntParam("limit", query.Get("limit"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	result, err := h.delegationService.ListDelegationsByDelegate(ctx, usecase.ListDelegationsInput{
		DelegateID: delegateID,
		Status:     query.Get("status"),
		Page:       page,
		Limit:      limit,
	})
	if err != nil {
		h.fail(ctx, w, "list delegations failed", err, "delegate_id", delegateID)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, pageToDTO(result))
}

package httpapi

import (
	"fmt"
	"net/http"
	"time"

	"github.com/riskibarqy/referee-delegation/internal/usecase"
)

func (h *Handler) CreateMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateMatch")
	defer span.End()

	var req createMatchRequest
	if err := h.decodeJSON(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	scheduledAt, err := time.Parse(time.RFC3339, req.ScheduledAt)
	if err != nil {
		writeError(ctx, w, fmt.Errorf("%w: scheduled_at: %v", usecase.ErrInvalidInput, err))
		return
	}

	view, err := h.matchService.CreateMatch(ctx, usecase.CreateMatchInput{
		CompetitionID: req.CompetitionID,
		HomeTeamID:    req.HomeTeamID,
		AwayTeamID:    req.AwayTeamID,
		VenueID:       req.VenueID,
		ScheduledAt:   scheduledAt,
		Round:         req.Round,
		Notes:         req.Notes,
	})
	if err != nil {
		h.fail(ctx, w, "create match failed", err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, matchViewToDTO(view))
}

func (h *Handler) ListMatches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListMatches")
	defer span.End()

	query := r.URL.Query()
	from, err := h.parseInstantParam("from", query.Get("from"), false)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	to, err := h.parseInstantParam("to", query.Get("to"), true)
	if err != nil {
		writeError(ctx, w, err)
		return
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

	result, err := h.matchService.ListMatches(ctx, usecase.ListMatchesInput{
		Status:           query.Get("status"),
		DelegationStatus: query.Get("delegation_status"),
		CompetitionID:    query.Get("competition_id"),
		From:             from,
		To:               to,
		Page:             page,
		Limit:            limit,
	})
	if err != nil {
		h.fail(ctx, w, "list matches failed", err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, pageToDTO(result))
}

func (h *Handler) GetMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetMatch")
	defer span.End()

	matchID := r.PathValue("matchID")
	view, err := h.matchService.GetMatch(ctx, matchID)
	if err != nil {
		h.fail(ctx, w, "get match failed", err, "match_id", matchID)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, matchViewToDTO(view))
}

func (h *Handler) RecordResult(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RecordResult")
	defer span.End()

	matchID := r.PathValue("matchID")
	var req recordResultRequest
	if err := h.decodeJSON(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	view, err := h.matchService.RecordResult(ctx, matchID, *req.HomeScore, *req.AwayScore)
	if err != nil {
		h.fail(ctx, w, "record result failed", err, "match_id", matchID)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, matchViewToDTO(view))
}

func (h *Handler) UpdateMatchStatus(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateMatchStatus")
	defer span.End()

	matchID := r.PathValue("matchID")
	var req updateMatchStatusRequest
	if err := h.decodeJSON(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	view, err := h.matchService.UpdateMatchStatus(ctx, matchID, req.Status)
	if err != nil {
		h.fail(ctx, w, "update match status failed", err, "match_id", matchID)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, matchViewToDTO(view))
}

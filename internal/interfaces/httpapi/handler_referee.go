package httpapi

import (
	"net/http"
	"time"

	"github.com/riskibarqy/referee-delegation/internal/domain/availability"
	"github.com/riskibarqy/referee-delegation/internal/usecase"
)

func (h *Handler) ListReferees(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListReferees")
	defer span.End()

	query := r.URL.Query()
	activeOnly, err := parseBoolParam("active", query.Get("active"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	items, err := h.refereeService.ListReferees(ctx, usecase.ListRefereesInput{
		ActiveOnly: activeOnly,
		Category:   query.Get("category"),
		City:       query.Get("city"),
	})
	if err != nil {
		h.fail(ctx, w, "list referees failed", err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, refereesToDTO(items))
}

func (h *Handler) ListMyAssignments(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListMyAssignments")
	defer span.End()

	refereeID, err := h.ownRefereeID(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

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

	items, err := h.delegationService.ListRefereeAssignments(ctx, refereeID, from, to)
	if err != nil {
		h.fail(ctx, w, "list referee assignments failed", err, "referee_id", refereeID)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, refereeAssignmentsToDTO(items))
}

func (h *Handler) GetAvailabilityCalendar(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetAvailabilityCalendar")
	defer span.End()

	refereeID, err := h.refereeScope(ctx, r.PathValue("refereeID"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	query := r.URL.Query()
	from, err := parseDateParam("from", query.Get("from"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	to, err := parseDateParam("to", query.Get("to"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	entries, err := h.availabilityService.GetCalendar(ctx, refereeID, from, to)
	if err != nil {
		h.fail(ctx, w, "get availability calendar failed", err, "referee_id", refereeID)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, calendarToDTO(entries))
}

func (h *Handler) GetAvailabilityMonth(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetAvailabilityMonth")
	defer span.End()

	refereeID, err := h.refereeScope(ctx, r.PathValue("refereeID"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	query := r.URL.Query()
	year, err := parseIntParam("year", query.Get("year"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	month, err := parseIntParam("month", query.Get("month"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	if year == 0 && month == 0 {
		now := time.Now().In(h.loc)
		year, month = now.Year(), int(now.Month())
	}

	entries, err := h.availabilityService.GetMonthCalendar(ctx, refereeID, year, time.Month(month))
	if err != nil {
		h.fail(ctx, w, "get availability month failed", err, "referee_id", refereeID)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, calendarToDTO(entries))
}

func (h *Handler) SetAvailability(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SetAvailability")
	defer span.End()

	refereeID, err := h.refereeScope(ctx, r.PathValue("refereeID"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	date, err := parseDateParam("date", r.PathValue("date"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req setAvailabilityRequest
	if err := h.decodeJSON(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	record, err := h.availabilityService.SetAvailability(ctx, usecase.SetAvailabilityInput{
		RefereeID: refereeID,
		Date:      date,
		Available: *req.IsAvailable,
		Reason:    req.Reason,
	})
	if err != nil {
		h.fail(ctx, w, "set availability failed", err, "referee_id", refereeID)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, availabilityRecordToDTO(record))
}

func (h *Handler) ClearAvailability(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ClearAvailability")
	defer span.End()

	refereeID, err := h.refereeScope(ctx, r.PathValue("refereeID"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	date, err := parseDateParam("date", r.PathValue("date"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	if err := h.availabilityService.ClearAvailability(ctx, refereeID, date); err != nil {
		h.fail(ctx, w, "clear availability failed", err, "referee_id", refereeID)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]string{
		"referee_id": refereeID,
		"date":       availability.FormatDate(date),
	})
}

func (h *Handler) SetAvailabilityRange(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SetAvailabilityRange")
	defer span.End()

	refereeID, err := h.refereeScope(ctx, r.PathValue("refereeID"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req setAvailabilityRangeRequest
	if err := h.decodeJSON(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	from, err := parseDateParam("from", req.From)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	to, err := parseDateParam("to", req.To)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	records, err := h.availabilityService.SetAvailabilityRange(ctx, usecase.SetAvailabilityRangeInput{
		RefereeID: refereeID,
		From:      from,
		To:        to,
		Available: *req.IsAvailable,
		Reason:    req.Reason,
	})
	if err != nil {
		h.fail(ctx, w, "set availability range failed", err, "referee_id", refereeID)
		return
	}

	out := make([]availabilityRecordDTO, 0, len(records))
	for _, record := range records {
		out = append(out, availabilityRecordToDTO(record))
	}
	writeSuccess(ctx, w, http.StatusOK, out)
}

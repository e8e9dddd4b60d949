package httpapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/referee-delegation/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteSuccess_GoogleEnvelope(t *testing.T) {
	rec := httptest.NewRecorder()
	writeSuccess(context.Background(), rec, http.StatusOK, map[string]string{"status": "ok"})

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	var body map[string]any
	if err := sonic.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response body: %v", err)
	}

	if got, _ := body["apiVersion"].(string); got != "2.0" {
		t.Fatalf("expected apiVersion=2.0, got %v", body["apiVersion"])
	}
	if _, ok := body["data"]; !ok {
		t.Fatalf("expected data key in success response")
	}
	if _, ok := body["error"]; ok {
		t.Fatalf("did not expect error key in success response")
	}
}

func TestWriteError_GoogleEnvelope(t *testing.T) {
	rec := httptest.NewRecorder()
	writeError(context.Background(), rec, fmt.Errorf("%w: bad payload", usecase.ErrInvalidInput))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}

	var body map[string]any
	if err := sonic.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response body: %v", err)
	}

	if got, _ := body["apiVersion"].(string); got != "2.0" {
		t.Fatalf("expected apiVersion=2.0, got %v", body["apiVersion"])
	}
	errorObj, ok := body["error"].(map[string]any)
	if !ok {
		t.Fatalf("expected error object in response")
	}
	if got, _ := errorObj["status"].(string); got != "INVALID_ARGUMENT" {
		t.Fatalf("expected error status INVALID_ARGUMENT, got %v", errorObj["status"])
	}
}

func TestWriteError_ConflictDetails(t *testing.T) {
	rec := httptest.NewRecorder()
	err := fmt.Errorf("delegate: %w", &usecase.ConflictError{
		RefereeID: "ref-02",
		Reason:    usecase.ConflictDoubleBooked,
		Date:      time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC),
		MatchID:   "match-002",
	})
	writeError(context.Background(), rec, err)

	require.Equal(t, http.StatusConflict, rec.Code)

	var body struct {
		Error struct {
			Status string            `json:"status"`
			Errors []googleErrorItem `json:"errors"`
		} `json:"error"`
	}
	require.NoError(t, sonic.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ABORTED", body.Error.Status)
	require.Len(t, body.Error.Errors, 1)
	assert.Equal(t, googleErrorItem{
		Domain:       errorDomain,
		Reason:       "refereeDoubleBooked",
		Message:      err.Error(),
		Location:     "ref-02",
		LocationType: "referee",
		Date:         "2025-06-03",
		MatchID:      "match-002",
	}, body.Error.Errors[0])
}

func TestMapError_Statuses(t *testing.T) {
	tests := []struct {
		err    error
		status int
		code   string
	}{
		{err: fmt.Errorf("%w: x", usecase.ErrInvalidInput), status: http.StatusBadRequest, code: "INVALID_ARGUMENT"},
		{err: fmt.Errorf("%w: x", usecase.ErrNotFound), status: http.StatusNotFound, code: "NOT_FOUND"},
		{err: fmt.Errorf("%w: x", usecase.ErrInvalidState), status: http.StatusConflict, code: "FAILED_PRECONDITION"},
		{err: &usecase.ConflictError{RefereeID: "ref-01"}, status: http.StatusConflict, code: "ABORTED"},
		{err: fmt.Errorf("%w: x", usecase.ErrUnauthorized), status: http.StatusUnauthorized, code: "UNAUTHENTICATED"},
		{err: fmt.Errorf("%w: x", usecase.ErrForbidden), status: http.StatusForbidden, code: "PERMISSION_DENIED"},
		{err: fmt.Errorf("%w: x", usecase.ErrDependencyUnavailable), status: http.StatusServiceUnavailable, code: "UNAVAILABLE"},
		{err: errors.New("pq: connection refused"), status: http.StatusInternalServerError, code: "INTERNAL"},
	}

	for _, tc := range tests {
		t.Run(tc.code, func(t *testing.T) {
			got := mapError(context.Background(), tc.err)
			assert.Equal(t, tc.status, got.HTTPStatus)
			assert.Equal(t, tc.code, got.Status)
		})
	}
}

func TestWriteError_HidesInternalMessages(t *testing.T) {
	rec := httptest.NewRecorder()
	writeError(context.Background(), rec, errors.New("pq: password authentication failed for user delegation"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "password")
}

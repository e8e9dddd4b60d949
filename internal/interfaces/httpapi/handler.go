package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"
	"github.com/riskibarqy/referee-delegation/internal/domain/availability"
	"github.com/riskibarqy/referee-delegation/internal/domain/user"
	"github.com/riskibarqy/referee-delegation/internal/platform/logging"
	"github.com/riskibarqy/referee-delegation/internal/usecase"
)

// selfAlias lets a referee address their own record without knowing its id.
const selfAlias = "me"

type Handler struct {
	delegationService   *usecase.DelegationService
	availabilityService *usecase.AvailabilityService
	matchService        *usecase.MatchService
	refereeService      *usecase.RefereeService
	loc                 *time.Location
	logger              *logging.Logger
	validator           *validator.Validate
}

func NewHandler(
	delegationService *usecase.DelegationService,
	availabilityService *usecase.AvailabilityService,
	matchService *usecase.MatchService,
	refereeService *usecase.RefereeService,
	loc *time.Location,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	if loc == nil {
		loc = time.UTC
	}

	return &Handler{
		delegationService:   delegationService,
		availabilityService: availabilityService,
		matchService:        matchService,
		refereeService:      refereeService,
		loc:                 loc,
		logger:              logger.Named("httpapi"),
		validator:           validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) decodeJSON(ctx context.Context, r *http.Request, dst any) error {
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dst); err != nil {
		return fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err)
	}
	return h.validateRequest(ctx, dst)
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}
	return nil
}

// fail logs client errors at warn and everything else at error, then writes the envelope.
func (h *Handler) fail(ctx context.Context, w http.ResponseWriter, msg string, err error, args ...any) {
	args = append(args, "error", err)
	if mapError(ctx, err).HTTPStatus >= http.StatusInternalServerError {
		h.logger.ErrorContext(ctx, msg, args...)
	} else {
		h.logger.WarnContext(ctx, msg, args...)
	}
	writeError(ctx, w, err)
}

func (h *Handler) principal(ctx context.Context) (user.Principal, error) {
	p, ok := principalFromContext(ctx)
	if !ok || strings.TrimSpace(p.UserID) == "" {
		return user.Principal{}, fmt.Errorf("%w: missing principal", usecase.ErrUnauthorized)
	}
	return p, nil
}

// ownRefereeID resolves the referee record of the calling user.
func (h *Handler) ownRefereeID(ctx context.Context) (string, error) {
	p, err := h.principal(ctx)
	if err != nil {
		return "", err
	}
	ref, err := h.refereeService.GetMyReferee(ctx, p.UserID)
	if err != nil {
		return "", err
	}
	return ref.ID, nil
}

// refereeScope resolves the {refereeID} path value. Referees may only address
// their own record; admins and delegates may address any referee.
func (h *Handler) refereeScope(ctx context.Context, raw string) (string, error) {
	p, err := h.principal(ctx)
	if err != nil {
		return "", err
	}
	raw = strings.TrimSpace(raw)
	if p.Role != user.RoleReferee {
		if raw == selfAlias {
			return "", fmt.Errorf("%w: only referees can use %q", usecase.ErrInvalidInput, selfAlias)
		}
		return raw, nil
	}

	own, err := h.ownRefereeID(ctx)
	if err != nil {
		return "", err
	}
	if raw != selfAlias && raw != own {
		return "", fmt.Errorf("%w: referees can only access their own record", usecase.ErrForbidden)
	}
	return own, nil
}

func parseDateParam(name, value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, nil
	}
	t, err := availability.ParseDate(value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %s: %v", usecase.ErrInvalidInput, name, err)
	}
	return t, nil
}

// parseInstantParam accepts RFC3339 or a calendar date in the federation
// timezone. A date used as an upper bound covers the whole day.
func (h *Handler) parseInstantParam(name, value string, upper bool) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t.UTC(), nil
	}
	t, err := time.ParseInLocation(availability.DateLayout, value, h.loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %s must be RFC3339 or YYYY-MM-DD", usecase.ErrInvalidInput, name)
	}
	if upper {
		t = t.AddDate(0, 0, 1).Add(-time.Nanosecond)
	}
	return t.UTC(), nil
}

func parseIntParam(name, value string) (int, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer", usecase.ErrInvalidInput, name)
	}
	return n, nil
}

func parseBoolParam(name, value string) (bool, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return false, nil
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("%w: %s must be a boolean", usecase.ErrInvalidInput, name)
	}
	return b, nil
}

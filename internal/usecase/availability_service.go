package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/riskibarqy/referee-delegation/internal/domain/availability"
	"github.com/riskibarqy/referee-delegation/internal/domain/delegation"
	"github.com/riskibarqy/referee-delegation/internal/domain/referee"
	"github.com/riskibarqy/referee-delegation/internal/platform/logging"
	"go.opentelemetry.io/otel/attribute"
)

type SetAvailabilityInput struct {
	RefereeID string
	Date      time.Time
	Available bool
	Reason    string
}

// SetAvailabilityRangeInput overwrites every day of the inclusive range [From, To].
type SetAvailabilityRangeInput struct {
	RefereeID string
	From      time.Time
	To        time.Time
	Available bool
	Reason    string
}

type AvailabilityService struct {
	txManager        delegation.TxManager
	availabilityRepo availability.Repository
	refereeRepo      referee.Repository
	logger           *logging.Logger
	now              func() time.Time
}

func NewAvailabilityService(
	txManager delegation.TxManager,
	availabilityRepo availability.Repository,
	refereeRepo referee.Repository,
	logger *logging.Logger,
) *AvailabilityService {
	if logger == nil {
		logger = logging.Default()
	}
	return &AvailabilityService{
		txManager:        txManager,
		availabilityRepo: availabilityRepo,
		refereeRepo:      refereeRepo,
		logger:           logger.Named("availability"),
		now:              time.Now,
	}
}

func (s *AvailabilityService) SetAvailability(ctx context.Context, input SetAvailabilityInput) (availability.Record, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AvailabilityService.SetAvailability")
	defer span.End()

	refereeID, err := s.requireReferee(ctx, input.RefereeID)
	if err != nil {
		return availability.Record{}, err
	}
	if input.Date.IsZero() {
		return availability.Record{}, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	records := availability.ExpandRange(refereeID, input.Date, input.Date, input.Available, strings.TrimSpace(input.Reason), s.now().UTC())
	record := records[0]
	if err := s.availabilityRepo.Upsert(ctx, record); err != nil {
		return availability.Record{}, fmt.Errorf("upsert availability: %w", err)
	}
	return record, nil
}

// SetAvailabilityRange replaces all records in the range inside one transaction.
func (s *AvailabilityService) SetAvailabilityRange(ctx context.Context, input SetAvailabilityRangeInput) ([]availability.Record, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AvailabilityService.SetAvailabilityRange")
	defer span.End()

	if input.From.IsZero() || input.To.IsZero() {
		return nil, fmt.Errorf("%w: from and to dates are required", ErrInvalidInput)
	}
	days, err := availability.ValidateRange(input.From, input.To)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	refereeID, err := s.requireReferee(ctx, input.RefereeID)
	if err != nil {
		return nil, err
	}
	span.SetAttributes(attribute.Int("availability.days", days))

	from, to := availability.Date(input.From), availability.Date(input.To)
	records := availability.ExpandRange(refereeID, from, to, input.Available, strings.TrimSpace(input.Reason), s.now().UTC())

	err = s.txManager.WithinTx(ctx, func(ctx context.Context, stores delegation.Stores) error {
		if err := stores.Availability.DeleteRange(ctx, refereeID, from, to); err != nil {
			return fmt.Errorf("delete availability range: %w", err)
		}
		if err := stores.Availability.InsertBatch(ctx, records); err != nil {
			return fmt.Errorf("insert availability range: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "availability range written",
		"referee_id", refereeID,
		"from", availability.FormatDate(from),
		"to", availability.FormatDate(to),
		"available", input.Available,
	)
	return records, nil
}

// ClearAvailability removes the explicit record so the day falls back to available.
func (s *AvailabilityService) ClearAvailability(ctx context.Context, refereeID string, date time.Time) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.AvailabilityService.ClearAvailability")
	defer span.End()

	refereeID, err := s.requireReferee(ctx, refereeID)
	if err != nil {
		return err
	}
	if date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if _, err := s.availabilityRepo.Delete(ctx, refereeID, availability.Date(date)); err != nil {
		return fmt.Errorf("delete availability: %w", err)
	}
	return nil
}

func (s *AvailabilityService) GetCalendar(ctx context.Context, refereeID string, from, to time.Time) ([]availability.DayEntry, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AvailabilityService.GetCalendar")
	defer span.End()

	if from.IsZero() || to.IsZero() {
		return nil, fmt.Errorf("%w: from and to dates are required", ErrInvalidInput)
	}
	if _, err := availability.ValidateRange(from, to); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	refereeID, err := s.requireReferee(ctx, refereeID)
	if err != nil {
		return nil, err
	}

	from, to = availability.Date(from), availability.Date(to)
	records, err := s.availabilityRepo.ListByReferee(ctx, refereeID, from, to)
	if err != nil {
		return nil, fmt.Errorf("list availability: %w", err)
	}
	return availability.BuildCalendar(from, to, records), nil
}

func (s *AvailabilityService) GetMonthCalendar(ctx context.Context, refereeID string, year int, month time.Month) ([]availability.DayEntry, error) {
	from, to, err := availability.MonthRange(year, month)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return s.GetCalendar(ctx, refereeID, from, to)
}

func (s *AvailabilityService) requireReferee(ctx context.Context, refereeID string) (string, error) {
	refereeID = strings.TrimSpace(refereeID)
	if refereeID == "" {
		return "", fmt.Errorf("%w: referee id is required", ErrInvalidInput)
	}
	_, ok, err := s.refereeRepo.GetByID(ctx, refereeID)
	if err != nil {
		return "", fmt.Errorf("get referee: %w", err)
	}
	if !ok {
		return "", fmt.Errorf("%w: referee %s not found", ErrNotFound, refereeID)
	}
	return refereeID, nil
}

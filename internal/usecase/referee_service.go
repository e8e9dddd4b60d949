package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/riskibarqy/referee-delegation/internal/domain/referee"
)

type ListRefereesInput struct {
	ActiveOnly bool
	Category   string
	City       string
}

// RefereeService exposes registry reads for referees.
type RefereeService struct {
	refereeRepo referee.Repository
}

func NewRefereeService(refereeRepo referee.Repository) *RefereeService {
	return &RefereeService{refereeRepo: refereeRepo}
}

func (s *RefereeService) ListReferees(ctx context.Context, input ListRefereesInput) ([]referee.Referee, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RefereeService.ListReferees")
	defer span.End()

	filter := referee.ListFilter{ActiveOnly: input.ActiveOnly, City: strings.TrimSpace(input.City)}
	if category := strings.TrimSpace(input.Category); category != "" {
		filter.Category = referee.LicenseCategory(strings.ToLower(category))
		if _, ok := referee.AllLicenseCategories[filter.Category]; !ok {
			return nil, fmt.Errorf("%w: unknown license category %q", ErrInvalidInput, category)
		}
	}

	items, err := s.refereeRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list referees: %w", err)
	}
	referee.SortByName(items)
	return items, nil
}

func (s *RefereeService) GetReferee(ctx context.Context, refereeID string) (referee.Referee, error) {
	refereeID = strings.TrimSpace(refereeID)
	if refereeID == "" {
		return referee.Referee{}, fmt.Errorf("%w: referee id is required", ErrInvalidInput)
	}
	item, ok, err := s.refereeRepo.GetByID(ctx, refereeID)
	if err != nil {
		return referee.Referee{}, fmt.Errorf("get referee: %w", err)
	}
	if !ok {
		return referee.Referee{}, fmt.Errorf("%w: referee %s not found", ErrNotFound, refereeID)
	}
	return item, nil
}

// GetMyReferee resolves the referee record owned by the calling user.
func (s *RefereeService) GetMyReferee(ctx context.Context, userID string) (referee.Referee, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RefereeService.GetMyReferee")
	defer span.End()

	userID = strings.TrimSpace(userID)
	if userID == "" {
		return referee.Referee{}, fmt.Errorf("%w: user id is required", ErrUnauthorized)
	}
	item, ok, err := s.refereeRepo.GetByUserID(ctx, userID)
	if err != nil {
		return referee.Referee{}, fmt.Errorf("get referee by user: %w", err)
	}
	if !ok {
		return referee.Referee{}, fmt.Errorf("%w: no referee profile for user %s", ErrForbidden, userID)
	}
	return item, nil
}

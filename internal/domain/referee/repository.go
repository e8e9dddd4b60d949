package referee

import "context"

type ListFilter struct {
	ActiveOnly bool
	Category   LicenseCategory
	City       string
}

// Repository returns referees hydrated with their user record.
type Repository interface {
	GetByID(ctx context.Context, refereeID string) (Referee, bool, error)
	GetByUserID(ctx context.Context, userID string) (Referee, bool, error)
	ListByIDs(ctx context.Context, refereeIDs []string) ([]Referee, error)
	List(ctx context.Context, filter ListFilter) ([]Referee, error)
}

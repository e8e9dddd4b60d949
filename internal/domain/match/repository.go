package match

import (
	"context"
	"time"
)

// ListFilter narrows match listings. ScheduledFrom and ScheduledTo are inclusive.
type ListFilter struct {
	Statuses           []Status
	DelegationStatuses []DelegationStatus
	CompetitionID      string
	DelegatedBy        string
	ScheduledFrom      *time.Time
	ScheduledTo        *time.Time
	Limit              int
	Offset             int
}

// Repository exposes match persistence for use cases.
type Repository interface {
	GetByID(ctx context.Context, matchID string) (Match, bool, error)
	// GetByIDForUpdate reads the match and holds a row lock until the surrounding transaction ends.
	GetByIDForUpdate(ctx context.Context, matchID string) (Match, bool, error)
	// ListByIDs skips unknown ids and orders by scheduled_at, id.
	ListByIDs(ctx context.Context, matchIDs []string) ([]Match, error)
	List(ctx context.Context, filter ListFilter) ([]Match, error)
	Count(ctx context.Context, filter ListFilter) (int, error)
	CountByDelegationStatus(ctx context.Context) (map[DelegationStatus]int, error)
	Create(ctx context.Context, item Match) error
	Update(ctx context.Context, item Match) error
}

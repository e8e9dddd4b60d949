package venue

import "context"

type Repository interface {
	GetByID(ctx context.Context, venueID string) (Venue, bool, error)
	List(ctx context.Context) ([]Venue, error)
}

package user

import "context"

// Repository describes user lookups needed by use cases.
type Repository interface {
	GetByID(ctx context.Context, userID string) (User, bool, error)
	ListByIDs(ctx context.Context, userIDs []string) ([]User, error)
}

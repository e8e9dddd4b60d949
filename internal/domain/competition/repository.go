package competition

import "context"

type Repository interface {
	GetByID(ctx context.Context, competitionID string) (Competition, bool, error)
	List(ctx context.Context) ([]Competition, error)
}

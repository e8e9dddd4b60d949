package availability

import (
	"context"
	"time"
)

// Repository persists explicit availability records. Range bounds are inclusive calendar dates.
type Repository interface {
	Get(ctx context.Context, refereeID string, date time.Time) (Record, bool, error)
	ListByReferee(ctx context.Context, refereeID string, from, to time.Time) ([]Record, error)
	ListUnavailableOn(ctx context.Context, date time.Time) ([]string, error)
	Upsert(ctx context.Context, record Record) error
	InsertBatch(ctx context.Context, records []Record) error
	DeleteRange(ctx context.Context, refereeID string, from, to time.Time) error
	Delete(ctx context.Context, refereeID string, date time.Time) (bool, error)
}

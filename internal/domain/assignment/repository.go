package assignment

import (
	"context"
	"time"
)

// Repository is the assignment ledger. Time windows are half-open [from, to).
type Repository interface {
	ListByMatch(ctx context.Context, matchID string) ([]Assignment, error)
	ListByReferee(ctx context.Context, refereeID string, from, to time.Time) ([]Assignment, error)
	GetByMatchAndReferee(ctx context.Context, matchID, refereeID string) (Assignment, bool, error)
	InsertBatch(ctx context.Context, items []Assignment) error
	Update(ctx context.Context, item Assignment) error
	Delete(ctx context.Context, matchID, refereeID string) error
	DeleteByMatch(ctx context.Context, matchID string) error
	// FindConflicting returns an assignment of the referee on another match scheduled inside the window.
	FindConflicting(ctx context.Context, refereeID string, from, to time.Time, excludeMatchID string) (Assignment, bool, error)
	// ListRefereeIDsBusyBetween returns referees assigned to any other match scheduled inside the window.
	ListRefereeIDsBusyBetween(ctx context.Context, from, to time.Time, excludeMatchID string) ([]string, error)
}

package delegation

import (
	"context"
	"time"

	"github.com/riskibarqy/referee-delegation/internal/domain/assignment"
	"github.com/riskibarqy/referee-delegation/internal/domain/availability"
	"github.com/riskibarqy/referee-delegation/internal/domain/match"
)

// Stores are the repositories bound to one scoped transaction.
type Stores struct {
	Matches      match.Repository
	Assignments  assignment.Repository
	Availability availability.Repository
	Locks        Locker
}

// Locker serializes writers that book the same referee on the same calendar
// day. Locks are held until the surrounding transaction ends.
type Locker interface {
	LockRefereeDay(ctx context.Context, refereeID string, day time.Time) error
}

// TxManager runs fn inside one transaction. The transaction commits when fn
// returns nil and rolls back on error or panic.
type TxManager interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context, stores Stores) error) error
}

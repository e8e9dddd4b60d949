package usecase

import (
	"fmt"
	"time"

	crerr "github.com/cockroachdb/errors"
)

var (
	ErrInvalidInput          = crerr.New("invalid input")
	ErrNotFound              = crerr.New("resource not found")
	ErrInvalidState          = crerr.New("invalid state")
	ErrConflict              = crerr.New("conflict")
	ErrUnauthorized          = crerr.New("unauthorized")
	ErrForbidden             = crerr.New("forbidden")
	ErrDependencyUnavailable = crerr.New("dependency unavailable")
)

type ConflictReason string

const (
	ConflictUnavailable  ConflictReason = "referee_unavailable"
	ConflictDoubleBooked ConflictReason = "referee_double_booked"
)

// ConflictError identifies the referee that blocked a roster and why.
type ConflictError struct {
	RefereeID string
	Reason    ConflictReason
	Date      time.Time
	// MatchID is the other match for double bookings.
	MatchID string
}

func (e *ConflictError) Error() string {
	date := e.Date.Format("2006-01-02")
	switch e.Reason {
	case ConflictDoubleBooked:
		return fmt.Sprintf("conflict: referee %s is already assigned to match %s on %s", e.RefereeID, e.MatchID, date)
	default:
		return fmt.Sprintf("conflict: referee %s is unavailable on %s", e.RefereeID, date)
	}
}

func (e *ConflictError) Is(target error) bool {
	return target == ErrConflict
}

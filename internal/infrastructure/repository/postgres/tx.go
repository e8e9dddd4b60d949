package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/referee-delegation/internal/domain/availability"
	"github.com/riskibarqy/referee-delegation/internal/domain/delegation"
)

// TxManager runs delegation mutations on one READ COMMITTED transaction.
// Ledger writers lock the match row first, so concurrent writers on the same
// match serialize while other matches proceed. Roster writers also take a
// transaction advisory lock per referee and day, so two matches on the same
// day cannot both book one referee.
type TxManager struct {
	db *sqlx.DB
}

func NewTxManager(db *sqlx.DB) *TxManager {
	return &TxManager{db: db}
}

func (m *TxManager) WithinTx(ctx context.Context, fn func(ctx context.Context, stores delegation.Stores) error) (err error) {
	tx, err := m.db.BeginTxx(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted})
	if err != nil {
		return fmt.Errorf("begin delegation tx: %w", err)
	}

	committed := false
	defer func() {
		if committed {
			return
		}
		if rbErr := tx.Rollback(); rbErr != nil && err == nil {
			err = fmt.Errorf("rollback delegation tx: %w", rbErr)
		}
	}()

	stores := delegation.Stores{
		Matches:      &MatchRepository{db: tx},
		Assignments:  &AssignmentRepository{db: tx},
		Availability: &AvailabilityRepository{db: tx},
		Locks:        &advisoryLocker{db: tx},
	}
	if err := fn(ctx, stores); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit delegation tx: %w", err)
	}
	committed = true
	return nil
}

// advisoryLocker maps a referee day onto pg_advisory_xact_lock.
type advisoryLocker struct {
	db dbtx
}

func (l *advisoryLocker) LockRefereeDay(ctx context.Context, refereeID string, day time.Time) error {
	if _, err := l.db.ExecContext(ctx, refereeDayLockQuery, refereeDayLockKey(refereeID, day)); err != nil {
		return fmt.Errorf("lock referee %s day %s: %w", refereeID, availability.FormatDate(day), err)
	}
	return nil
}

const refereeDayLockQuery = `SELECT pg_advisory_xact_lock(hashtext($1))`

func refereeDayLockKey(refereeID string, day time.Time) string {
	return "referee-day:" + refereeID + ":" + availability.FormatDate(day)
}

package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/referee-delegation/internal/domain/availability"
	qb "github.com/riskibarqy/referee-delegation/internal/platform/querybuilder"
)

const availabilityColumns = "referee_id, date, is_available, reason, updated_at"

type AvailabilityRepository struct {
	db dbtx
}

func NewAvailabilityRepository(db *sqlx.DB) *AvailabilityRepository {
	return &AvailabilityRepository{db: db}
}

func (r *AvailabilityRepository) Get(ctx context.Context, refereeID string, date time.Time) (availability.Record, bool, error) {
	query, args, err := qb.Select(availabilityColumns).From("referee_availability").
		Where(qb.Eq("referee_id", refereeID), qb.Eq("date", availability.FormatDate(date))).
		ToSQL()
	if err != nil {
		return availability.Record{}, false, fmt.Errorf("build get availability query: %w", err)
	}

	var row availabilityTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return availability.Record{}, false, nil
		}
		return availability.Record{}, false, fmt.Errorf("select availability: %w", err)
	}
	return availabilityFromRow(row), true, nil
}

func (r *AvailabilityRepository) ListByReferee(ctx context.Context, refereeID string, from, to time.Time) ([]availability.Record, error) {
	query, args, err := qb.Select(availabilityColumns).From("referee_availability").
		Where(
			qb.Eq("referee_id", refereeID),
			qb.Gte("date", availability.FormatDate(from)),
			qb.Lte("date", availability.FormatDate(to)),
		).
		OrderBy("date").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list availability query: %w", err)
	}

	var rows []availabilityTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select availability: %w", err)
	}

	out := make([]availability.Record, 0, len(rows))
	for _, row := range rows {
		out = append(out, availabilityFromRow(row))
	}
	return out, nil
}

func (r *AvailabilityRepository) ListUnavailableOn(ctx context.Context, date time.Time) ([]string, error) {
	query, args, err := qb.Select("referee_id").From("referee_availability").
		Where(qb.Eq("date", availability.FormatDate(date)), qb.Eq("is_available", false)).
		OrderBy("referee_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build unavailable referees query: %w", err)
	}

	var ids []string
	if err := r.db.SelectContext(ctx, &ids, query, args...); err != nil {
		return nil, fmt.Errorf("select unavailable referees: %w", err)
	}
	return ids, nil
}

func (r *AvailabilityRepository) Upsert(ctx context.Context, record availability.Record) error {
	return r.InsertBatch(ctx, []availability.Record{record})
}

// InsertBatch overwrites existing days, so it also serves single-day upserts.
func (r *AvailabilityRepository) InsertBatch(ctx context.Context, records []availability.Record) error {
	if len(records) == 0 {
		return nil
	}

	builder := qb.InsertInto("referee_availability").
		Columns("referee_id", "date", "is_available", "reason", "updated_at").
		Suffix(`ON CONFLICT (referee_id, date) DO UPDATE SET
    is_available = EXCLUDED.is_available,
    reason = EXCLUDED.reason,
    updated_at = EXCLUDED.updated_at`)
	for _, rec := range records {
		builder = builder.Values(rec.RefereeID, availability.FormatDate(rec.Date), rec.IsAvailable, nullString(rec.Reason), rec.UpdatedAt.UTC())
	}
	query, args, err := builder.ToSQL()
	if err != nil {
		return fmt.Errorf("build upsert availability query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return writeError("upsert availability", err)
	}
	return nil
}

func (r *AvailabilityRepository) DeleteRange(ctx context.Context, refereeID string, from, to time.Time) error {
	query, args, err := qb.DeleteFrom("referee_availability").
		Where(
			qb.Eq("referee_id", refereeID),
			qb.Gte("date", availability.FormatDate(from)),
			qb.Lte("date", availability.FormatDate(to)),
		).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build delete availability range query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("delete availability range: %w", err)
	}
	return nil
}

func (r *AvailabilityRepository) Delete(ctx context.Context, refereeID string, date time.Time) (bool, error) {
	query, args, err := qb.DeleteFrom("referee_availability").
		Where(qb.Eq("referee_id", refereeID), qb.Eq("date", availability.FormatDate(date))).
		ToSQL()
	if err != nil {
		return false, fmt.Errorf("build delete availability query: %w", err)
	}
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("delete availability: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete availability rows affected: %w", err)
	}
	return n > 0, nil
}

func availabilityFromRow(row availabilityTableModel) availability.Record {
	return availability.Record{
		RefereeID:   row.RefereeID,
		Date:        availability.Date(row.Date),
		IsAvailable: row.IsAvailable,
		Reason:      row.Reason.String,
		UpdatedAt:   row.UpdatedAt.UTC(),
	}
}

package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/referee-delegation/internal/domain/assignment"
	qb "github.com/riskibarqy/referee-delegation/internal/platform/querybuilder"
)

const (
	assignmentsWithMatch = "match_assignments a JOIN matches m ON m.id = a.match_id"
	roleOrder            = "CASE a.role WHEN 'first_referee' THEN 1 WHEN 'second_referee' THEN 2 WHEN 'third_referee' THEN 3 ELSE 4 END"
)

type AssignmentRepository struct {
	db dbtx
}

func NewAssignmentRepository(db *sqlx.DB) *AssignmentRepository {
	return &AssignmentRepository{db: db}
}

func (r *AssignmentRepository) ListByMatch(ctx context.Context, matchID string) ([]assignment.Assignment, error) {
	query, args, err := qb.Select(assignmentColumns).From("match_assignments a").
		Where(qb.Eq("a.match_id", matchID)).
		OrderBy(roleOrder, "a.id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list assignments by match query: %w", err)
	}
	return r.selectRows(ctx, "select assignments by match", query, args)
}

func (r *AssignmentRepository) ListByReferee(ctx context.Context, refereeID string, from, to time.Time) ([]assignment.Assignment, error) {
	query, args, err := qb.Select(assignmentColumns).From(assignmentsWithMatch).
		Where(
			qb.Eq("a.referee_id", refereeID),
			qb.Gte("m.scheduled_at", from.UTC()),
			qb.Lt("m.scheduled_at", to.UTC()),
		).
		OrderBy("m.scheduled_at", "a.id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list assignments by referee query: %w", err)
	}
	return r.selectRows(ctx, "select assignments by referee", query, args)
}

func (r *AssignmentRepository) GetByMatchAndReferee(ctx context.Context, matchID, refereeID string) (assignment.Assignment, bool, error) {
	query, args, err := qb.Select(assignmentColumns).From("match_assignments a").
		Where(qb.Eq("a.match_id", matchID), qb.Eq("a.referee_id", refereeID)).
		ToSQL()
	if err != nil {
		return assignment.Assignment{}, false, fmt.Errorf("build get assignment query: %w", err)
	}

	var row assignmentTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return assignment.Assignment{}, false, nil
		}
		return assignment.Assignment{}, false, fmt.Errorf("select assignment: %w", err)
	}
	return row.toDomain(), true, nil
}

func (r *AssignmentRepository) InsertBatch(ctx context.Context, items []assignment.Assignment) error {
	if len(items) == 0 {
		return nil
	}

	builder := qb.InsertInto("match_assignments").Columns(
		"id", "match_id", "referee_id", "role", "status", "responded_at",
		"decline_reason", "fee", "travel_cost", "created_at", "updated_at",
	)
	for _, item := range items {
		row := newAssignmentTableModel(item)
		builder = builder.Values(
			row.ID, row.MatchID, row.RefereeID, row.Role, row.Status, row.RespondedAt,
			row.DeclineReason, row.Fee, row.TravelCost, row.CreatedAt, row.UpdatedAt,
		)
	}
	query, args, err := builder.ToSQL()
	if err != nil {
		return fmt.Errorf("build insert assignments query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return writeError("insert assignments", err)
	}
	return nil
}

func (r *AssignmentRepository) Update(ctx context.Context, item assignment.Assignment) error {
	row := newAssignmentTableModel(item)
	query, args, err := qb.Update("match_assignments").
		Set("role", row.Role).
		Set("status", row.Status).
		Set("responded_at", row.RespondedAt).
		Set("decline_reason", row.DeclineReason).
		Set("fee", row.Fee).
		Set("travel_cost", row.TravelCost).
		Set("updated_at", row.UpdatedAt).
		Where(qb.Eq("id", row.ID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build update assignment query: %w", err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return writeError("update assignment", err)
	}
	return expectAffected(res, "update assignment")
}

func (r *AssignmentRepository) Delete(ctx context.Context, matchID, refereeID string) error {
	query, args, err := qb.DeleteFrom("match_assignments").
		Where(qb.Eq("match_id", matchID), qb.Eq("referee_id", refereeID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build delete assignment query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("delete assignment: %w", err)
	}
	return nil
}

func (r *AssignmentRepository) DeleteByMatch(ctx context.Context, matchID string) error {
	query, args, err := qb.DeleteFrom("match_assignments").
		Where(qb.Eq("match_id", matchID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build delete match assignments query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("delete match assignments: %w", err)
	}
	return nil
}

// FindConflicting returns the earliest assignment of the referee on another match kicking off in [from, to).
func (r *AssignmentRepository) FindConflicting(ctx context.Context, refereeID string, from, to time.Time, excludeMatchID string) (assignment.Assignment, bool, error) {
	query, args, err := qb.Select(assignmentColumns).From(assignmentsWithMatch).
		Where(
			qb.Eq("a.referee_id", refereeID),
			qb.Neq("a.match_id", excludeMatchID),
			qb.Gte("m.scheduled_at", from.UTC()),
			qb.Lt("m.scheduled_at", to.UTC()),
		).
		OrderBy("m.scheduled_at", "a.id").
		Limit(1).
		ToSQL()
	if err != nil {
		return assignment.Assignment{}, false, fmt.Errorf("build find conflicting assignment query: %w", err)
	}

	var row assignmentTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return assignment.Assignment{}, false, nil
		}
		return assignment.Assignment{}, false, fmt.Errorf("select conflicting assignment: %w", err)
	}
	return row.toDomain(), true, nil
}

func (r *AssignmentRepository) ListRefereeIDsBusyBetween(ctx context.Context, from, to time.Time, excludeMatchID string) ([]string, error) {
	query, args, err := qb.Select("DISTINCT a.referee_id").From(assignmentsWithMatch).
		Where(
			qb.Neq("a.match_id", excludeMatchID),
			qb.Gte("m.scheduled_at", from.UTC()),
			qb.Lt("m.scheduled_at", to.UTC()),
		).
		OrderBy("a.referee_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build busy referees query: %w", err)
	}

	var ids []string
	if err := r.db.SelectContext(ctx, &ids, query, args...); err != nil {
		return nil, fmt.Errorf("select busy referees: %w", err)
	}
	return ids, nil
}

func (r *AssignmentRepository) selectRows(ctx context.Context, op, query string, args []any) ([]assignment.Assignment, error) {
	var rows []assignmentTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	out := make([]assignment.Assignment, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/riskibarqy/referee-delegation/internal/domain/match"
	qb "github.com/riskibarqy/referee-delegation/internal/platform/querybuilder"
)

type MatchRepository struct {
	db dbtx
}

func NewMatchRepository(db *sqlx.DB) *MatchRepository {
	return &MatchRepository{db: db}
}

func (r *MatchRepository) GetByID(ctx context.Context, matchID string) (match.Match, bool, error) {
	return r.get(ctx, matchID, false)
}

// GetByIDForUpdate must run inside TxManager.WithinTx; the row lock lasts until commit.
func (r *MatchRepository) GetByIDForUpdate(ctx context.Context, matchID string) (match.Match, bool, error) {
	return r.get(ctx, matchID, true)
}

func (r *MatchRepository) get(ctx context.Context, matchID string, lock bool) (match.Match, bool, error) {
	builder := qb.Select(matchColumns).From("matches").Where(qb.Eq("id", matchID))
	if lock {
		builder = builder.ForUpdate()
	}
	query, args, err := builder.ToSQL()
	if err != nil {
		return match.Match{}, false, fmt.Errorf("build select match query: %w", err)
	}

	var row matchTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return match.Match{}, false, nil
		}
		return match.Match{}, false, fmt.Errorf("select match: %w", err)
	}
	return row.toDomain(), true, nil
}

func (r *MatchRepository) ListByIDs(ctx context.Context, matchIDs []string) ([]match.Match, error) {
	if len(matchIDs) == 0 {
		return []match.Match{}, nil
	}
	query, args, err := qb.Select(matchColumns).From("matches").
		Where(qb.Expr("id = ANY(?)", pq.Array(matchIDs))).
		OrderBy("scheduled_at", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list matches by ids query: %w", err)
	}
	return r.selectMatches(ctx, query, args)
}

func (r *MatchRepository) List(ctx context.Context, filter match.ListFilter) ([]match.Match, error) {
	query, args, err := qb.Select(matchColumns).From("matches").
		Where(matchFilterConditions(filter)...).
		OrderBy("scheduled_at", "id").
		Limit(filter.Limit).
		Offset(filter.Offset).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list matches query: %w", err)
	}
	return r.selectMatches(ctx, query, args)
}

func (r *MatchRepository) selectMatches(ctx context.Context, query string, args []any) ([]match.Match, error) {
	var rows []matchTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select matches: %w", err)
	}

	out := make([]match.Match, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *MatchRepository) Count(ctx context.Context, filter match.ListFilter) (int, error) {
	query, args, err := qb.Select("COUNT(1)").From("matches").
		Where(matchFilterConditions(filter)...).
		ToSQL()
	if err != nil {
		return 0, fmt.Errorf("build count matches query: %w", err)
	}

	var count int
	if err := r.db.GetContext(ctx, &count, query, args...); err != nil {
		return 0, fmt.Errorf("count matches: %w", err)
	}
	return count, nil
}

func (r *MatchRepository) CountByDelegationStatus(ctx context.Context) (map[match.DelegationStatus]int, error) {
	query, args, err := qb.Select("delegation_status", "COUNT(1) AS total").From("matches").
		GroupBy("delegation_status").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build count by delegation status query: %w", err)
	}

	var rows []struct {
		DelegationStatus string `db:"delegation_status"`
		Total            int    `db:"total"`
	}
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("count matches by delegation status: %w", err)
	}

	out := make(map[match.DelegationStatus]int, len(rows))
	for _, row := range rows {
		out[match.DelegationStatus(row.DelegationStatus)] = row.Total
	}
	return out, nil
}

func (r *MatchRepository) Create(ctx context.Context, item match.Match) error {
	query, args, err := qb.InsertModel("matches", newMatchTableModel(item), "")
	if err != nil {
		return fmt.Errorf("build insert match query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return writeError("insert match", err)
	}
	return nil
}

func (r *MatchRepository) Update(ctx context.Context, item match.Match) error {
	row := newMatchTableModel(item)
	query, args, err := qb.Update("matches").
		Set("competition_id", row.CompetitionID).
		Set("home_team_id", row.HomeTeamID).
		Set("away_team_id", row.AwayTeamID).
		Set("venue_id", row.VenueID).
		Set("scheduled_at", row.ScheduledAt).
		Set("round", row.Round).
		Set("status", row.Status).
		Set("home_score", row.HomeScore).
		Set("away_score", row.AwayScore).
		Set("delegation_status", row.DelegationStatus).
		Set("delegated_by", row.DelegatedBy).
		Set("delegated_at", row.DelegatedAt).
		Set("notes", row.Notes).
		Set("updated_at", row.UpdatedAt).
		Where(qb.Eq("id", row.ID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build update match query: %w", err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return writeError("update match", err)
	}
	return expectAffected(res, "update match")
}

func matchFilterConditions(filter match.ListFilter) []qb.Condition {
	conds := make([]qb.Condition, 0, 6)
	if len(filter.Statuses) > 0 {
		values := make([]any, 0, len(filter.Statuses))
		for _, s := range filter.Statuses {
			values = append(values, string(s))
		}
		conds = append(conds, qb.In("status", values))
	}
	if len(filter.DelegationStatuses) > 0 {
		values := make([]any, 0, len(filter.DelegationStatuses))
		for _, s := range filter.DelegationStatuses {
			values = append(values, string(s))
		}
		conds = append(conds, qb.In("delegation_status", values))
	}
	if filter.CompetitionID != "" {
		conds = append(conds, qb.Eq("competition_id", filter.CompetitionID))
	}
	if filter.DelegatedBy != "" {
		conds = append(conds, qb.Eq("delegated_by", filter.DelegatedBy))
	}
	if filter.ScheduledFrom != nil {
		conds = append(conds, qb.Gte("scheduled_at", filter.ScheduledFrom.UTC()))
	}
	if filter.ScheduledTo != nil {
		conds = append(conds, qb.Lte("scheduled_at", filter.ScheduledTo.UTC()))
	}
	return conds
}

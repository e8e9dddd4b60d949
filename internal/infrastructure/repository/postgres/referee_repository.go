package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/riskibarqy/referee-delegation/internal/domain/referee"
	"github.com/riskibarqy/referee-delegation/internal/domain/user"
	qb "github.com/riskibarqy/referee-delegation/internal/platform/querybuilder"
)

const refereeOrder = "LOWER(u.last_name), LOWER(u.first_name), r.id"

type UserRepository struct {
	db *sqlx.DB
}

func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) GetByID(ctx context.Context, userID string) (user.User, bool, error) {
	query, args, err := qb.Select(userColumns).From("users").Where(qb.Eq("id", userID)).ToSQL()
	if err != nil {
		return user.User{}, false, fmt.Errorf("build select user query: %w", err)
	}

	var row userTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return user.User{}, false, nil
		}
		return user.User{}, false, fmt.Errorf("select user: %w", err)
	}
	return row.toDomain(), true, nil
}

func (r *UserRepository) ListByIDs(ctx context.Context, userIDs []string) ([]user.User, error) {
	if len(userIDs) == 0 {
		return []user.User{}, nil
	}
	query, args, err := qb.Select(userColumns).From("users").
		Where(qb.Expr("id = ANY(?)", pq.Array(userIDs))).
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select users query: %w", err)
	}

	var rows []userTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select users: %w", err)
	}

	out := make([]user.User, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

type RefereeRepository struct {
	db *sqlx.DB
}

func NewRefereeRepository(db *sqlx.DB) *RefereeRepository {
	return &RefereeRepository{db: db}
}

func (r *RefereeRepository) GetByID(ctx context.Context, refereeID string) (referee.Referee, bool, error) {
	return r.getOne(ctx, qb.Eq("r.id", refereeID))
}

func (r *RefereeRepository) GetByUserID(ctx context.Context, userID string) (referee.Referee, bool, error) {
	return r.getOne(ctx, qb.Eq("r.user_id", userID))
}

func (r *RefereeRepository) ListByIDs(ctx context.Context, refereeIDs []string) ([]referee.Referee, error) {
	if len(refereeIDs) == 0 {
		return []referee.Referee{}, nil
	}
	return r.list(ctx, qb.Expr("r.id = ANY(?)", pq.Array(refereeIDs)))
}

func (r *RefereeRepository) List(ctx context.Context, filter referee.ListFilter) ([]referee.Referee, error) {
	conds := make([]qb.Condition, 0, 3)
	if filter.ActiveOnly {
		conds = append(conds, qb.Eq("r.is_active", true))
	}
	if filter.Category != "" {
		conds = append(conds, qb.Eq("r.license_category", string(filter.Category)))
	}
	if filter.City != "" {
		conds = append(conds, qb.Expr("LOWER(r.city) = LOWER(?)", filter.City))
	}
	return r.list(ctx, conds...)
}

func (r *RefereeRepository) getOne(ctx context.Context, cond qb.Condition) (referee.Referee, bool, error) {
	query, args, err := qb.Select(refereeColumns).From(refereeFrom).Where(cond).ToSQL()
	if err != nil {
		return referee.Referee{}, false, fmt.Errorf("build select referee query: %w", err)
	}

	var row refereeTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return referee.Referee{}, false, nil
		}
		return referee.Referee{}, false, fmt.Errorf("select referee: %w", err)
	}
	return row.toDomain(), true, nil
}

func (r *RefereeRepository) list(ctx context.Context, conds ...qb.Condition) ([]referee.Referee, error) {
	query, args, err := qb.Select(refereeColumns).From(refereeFrom).
		Where(conds...).
		OrderBy(refereeOrder).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list referees query: %w", err)
	}

	var rows []refereeTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select referees: %w", err)
	}

	out := make([]referee.Referee, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

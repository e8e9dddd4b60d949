package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/referee-delegation/internal/infrastructure/repository/memory"
	qb "github.com/riskibarqy/referee-delegation/internal/platform/querybuilder"
)

const onConflictIDNothing = "ON CONFLICT (id) DO NOTHING"

// BootstrapSeed loads the demo federation into an empty database.
// It is a no-op once any user exists.
func BootstrapSeed(ctx context.Context, db *sqlx.DB, now time.Time) error {
	var count int
	if err := db.GetContext(ctx, &count, `SELECT COUNT(1) FROM users`); err != nil {
		return fmt.Errorf("count users for bootstrap seed: %w", err)
	}
	if count > 0 {
		return nil
	}

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin seed tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	now = now.UTC()
	exec := func(label string, query string, args []any, err error) error {
		if err != nil {
			return fmt.Errorf("build seed %s query: %w", label, err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("seed %s: %w", label, err)
		}
		return nil
	}

	for _, u := range memory.SeedUsers() {
		if err := u.Validate(); err != nil {
			return fmt.Errorf("seed user %s: %w", u.ID, err)
		}
		row := userTableModel{
			ID: u.ID, Email: u.Email, FirstName: u.FirstName, LastName: u.LastName,
			Phone: nullString(u.Phone), Role: string(u.Role), IsActive: u.Active,
			CreatedAt: now, UpdatedAt: now,
		}
		query, args, err := qb.InsertModel("users", row, onConflictIDNothing)
		if err := exec("user "+u.ID, query, args, err); err != nil {
			return err
		}
	}

	for _, r := range memory.SeedReferees() {
		if err := r.Validate(); err != nil {
			return fmt.Errorf("seed referee %s: %w", r.ID, err)
		}
		query, args, err := qb.InsertInto("referees").
			Columns("id", "user_id", "license_number", "license_category", "city", "years_of_experience", "is_active", "created_at", "updated_at").
			Values(r.ID, r.UserID, r.LicenseNumber, string(r.LicenseCategory), nullString(r.City), r.YearsOfExperience, r.Active, now, now).
			Suffix(onConflictIDNothing).
			ToSQL()
		if err := exec("referee "+r.ID, query, args, err); err != nil {
			return err
		}
	}

	for _, t := range memory.SeedTeams() {
		if err := t.Validate(); err != nil {
			return fmt.Errorf("seed team %s: %w", t.ID, err)
		}
		query, args, err := qb.InsertModel("teams", teamTableModel{ID: t.ID, Name: t.Name, ShortName: t.ShortName, City: nullString(t.City)}, onConflictIDNothing)
		if err := exec("team "+t.ID, query, args, err); err != nil {
			return err
		}
	}

	for _, v := range memory.SeedVenues() {
		row := venueTableModel{ID: v.ID, Name: v.Name, City: nullString(v.City), Address: nullString(v.Address), Capacity: v.Capacity}
		query, args, err := qb.InsertModel("venues", row, onConflictIDNothing)
		if err := exec("venue "+v.ID, query, args, err); err != nil {
			return err
		}
	}

	for _, c := range memory.SeedCompetitions() {
		row := competitionTableModel{ID: c.ID, Name: c.Name, Season: c.Season, Category: nullString(c.Category)}
		query, args, err := qb.InsertModel("competitions", row, onConflictIDNothing)
		if err := exec("competition "+c.ID, query, args, err); err != nil {
			return err
		}
	}

	for _, m := range memory.SeedMatches(now) {
		if err := m.Validate(); err != nil {
			return fmt.Errorf("seed match %s: %w", m.ID, err)
		}
		query, args, err := qb.InsertModel("matches", newMatchTableModel(m), onConflictIDNothing)
		if err := exec("match "+m.ID, query, args, err); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit seed tx: %w", err)
	}
	return nil
}

package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/referee-delegation/internal/domain/competition"
	"github.com/riskibarqy/referee-delegation/internal/domain/team"
	"github.com/riskibarqy/referee-delegation/internal/domain/venue"
	qb "github.com/riskibarqy/referee-delegation/internal/platform/querybuilder"
)

type TeamRepository struct {
	db *sqlx.DB
}

func NewTeamRepository(db *sqlx.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

func (r *TeamRepository) GetByID(ctx context.Context, teamID string) (team.Team, bool, error) {
	query, args, err := qb.Select("id", "name", "short_name", "city").From("teams").
		Where(qb.Eq("id", teamID)).
		ToSQL()
	if err != nil {
		return team.Team{}, false, fmt.Errorf("build select team query: %w", err)
	}

	var row teamTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return team.Team{}, false, nil
		}
		return team.Team{}, false, fmt.Errorf("select team: %w", err)
	}
	return teamFromRow(row), true, nil
}

func (r *TeamRepository) List(ctx context.Context) ([]team.Team, error) {
	query, args, err := qb.Select("id", "name", "short_name", "city").From("teams").
		OrderBy("name", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select teams query: %w", err)
	}

	var rows []teamTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select teams: %w", err)
	}

	out := make([]team.Team, 0, len(rows))
	for _, row := range rows {
		out = append(out, teamFromRow(row))
	}
	return out, nil
}

func teamFromRow(row teamTableModel) team.Team {
	return team.Team{ID: row.ID, Name: row.Name, ShortName: row.ShortName, City: row.City.String}
}

type VenueRepository struct {
	db *sqlx.DB
}

func NewVenueRepository(db *sqlx.DB) *VenueRepository {
	return &VenueRepository{db: db}
}

func (r *VenueRepository) GetByID(ctx context.Context, venueID string) (venue.Venue, bool, error) {
	query, args, err := qb.Select("id", "name", "city", "address", "capacity").From("venues").
		Where(qb.Eq("id", venueID)).
		ToSQL()
	if err != nil {
		return venue.Venue{}, false, fmt.Errorf("build select venue query: %w", err)
	}

	var row venueTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return venue.Venue{}, false, nil
		}
		return venue.Venue{}, false, fmt.Errorf("select venue: %w", err)
	}
	return venueFromRow(row), true, nil
}

func (r *VenueRepository) List(ctx context.Context) ([]venue.Venue, error) {
	query, args, err := qb.Select("id", "name", "city", "address", "capacity").From("venues").
		OrderBy("name", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select venues query: %w", err)
	}

	var rows []venueTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select venues: %w", err)
	}

	out := make([]venue.Venue, 0, len(rows))
	for _, row := range rows {
		out = append(out, venueFromRow(row))
	}
	return out, nil
}

func venueFromRow(row venueTableModel) venue.Venue {
	return venue.Venue{ID: row.ID, Name: row.Name, City: row.City.String, Address: row.Address.String, Capacity: row.Capacity}
}

type CompetitionRepository struct {
	db *sqlx.DB
}

func NewCompetitionRepository(db *sqlx.DB) *CompetitionRepository {
	return &CompetitionRepository{db: db}
}

func (r *CompetitionRepository) GetByID(ctx context.Context, competitionID string) (competition.Competition, bool, error) {
	query, args, err := qb.Select("id", "name", "season", "category").From("competitions").
		Where(qb.Eq("id", competitionID)).
		ToSQL()
	if err != nil {
		return competition.Competition{}, false, fmt.Errorf("build select competition query: %w", err)
	}

	var row competitionTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return competition.Competition{}, false, nil
		}
		return competition.Competition{}, false, fmt.Errorf("select competition: %w", err)
	}
	return competitionFromRow(row), true, nil
}

func (r *CompetitionRepository) List(ctx context.Context) ([]competition.Competition, error) {
	query, args, err := qb.Select("id", "name", "season", "category").From("competitions").
		OrderBy("name", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select competitions query: %w", err)
	}

	var rows []competitionTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select competitions: %w", err)
	}

	out := make([]competition.Competition, 0, len(rows))
	for _, row := range rows {
		out = append(out, competitionFromRow(row))
	}
	return out, nil
}

func competitionFromRow(row competitionTableModel) competition.Competition {
	return competition.Competition{ID: row.ID, Name: row.Name, Season: row.Season, Category: row.Category.String}
}

package postgres

import (
	"database/sql"
	"time"

	"github.com/riskibarqy/referee-delegation/internal/domain/match"
)

const matchColumns = "id, competition_id, home_team_id, away_team_id, venue_id, scheduled_at, round, status, " +
	"home_score, away_score, delegation_status, delegated_by, delegated_at, notes, created_at, updated_at"

type matchTableModel struct {
	ID               string         `db:"id"`
	CompetitionID    string         `db:"competition_id"`
	HomeTeamID       string         `db:"home_team_id"`
	AwayTeamID       string         `db:"away_team_id"`
	VenueID          sql.NullString `db:"venue_id"`
	ScheduledAt      time.Time      `db:"scheduled_at"`
	Round            sql.NullString `db:"round"`
	Status           string         `db:"status"`
	HomeScore        sql.NullInt64  `db:"home_score"`
	AwayScore        sql.NullInt64  `db:"away_score"`
	DelegationStatus string         `db:"delegation_status"`
	DelegatedBy      sql.NullString `db:"delegated_by"`
	DelegatedAt      sql.NullTime   `db:"delegated_at"`
	Notes            sql.NullString `db:"notes"`
	CreatedAt        time.Time      `db:"created_at"`
	UpdatedAt        time.Time      `db:"updated_at"`
}

func newMatchTableModel(m match.Match) matchTableModel {
	return matchTableModel{
		ID:               m.ID,
		CompetitionID:    m.CompetitionID,
		HomeTeamID:       m.HomeTeamID,
		AwayTeamID:       m.AwayTeamID,
		VenueID:          nullString(m.VenueID),
		ScheduledAt:      m.ScheduledAt.UTC(),
		Round:            nullString(m.Round),
		Status:           string(m.Status),
		HomeScore:        nullIntPtr(m.HomeScore),
		AwayScore:        nullIntPtr(m.AwayScore),
		DelegationStatus: string(m.DelegationStatus),
		DelegatedBy:      nullString(m.DelegatedBy),
		DelegatedAt:      nullTimePtr(m.DelegatedAt),
		Notes:            nullString(m.Notes),
		CreatedAt:        m.CreatedAt.UTC(),
		UpdatedAt:        m.UpdatedAt.UTC(),
	}
}

func (row matchTableModel) toDomain() match.Match {
	return match.Match{
		ID:               row.ID,
		CompetitionID:    row.CompetitionID,
		HomeTeamID:       row.HomeTeamID,
		AwayTeamID:       row.AwayTeamID,
		VenueID:          row.VenueID.String,
		ScheduledAt:      row.ScheduledAt.UTC(),
		Round:            row.Round.String,
		Status:           match.Status(row.Status),
		HomeScore:        intPtrFromNull(row.HomeScore),
		AwayScore:        intPtrFromNull(row.AwayScore),
		DelegationStatus: match.DelegationStatus(row.DelegationStatus),
		DelegatedBy:      row.DelegatedBy.String,
		DelegatedAt:      timePtrFromNull(row.DelegatedAt),
		Notes:            row.Notes.String,
		CreatedAt:        row.CreatedAt.UTC(),
		UpdatedAt:        row.UpdatedAt.UTC(),
	}
}

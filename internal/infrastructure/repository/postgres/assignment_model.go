package postgres

import (
	"database/sql"
	"time"

	"github.com/riskibarqy/referee-delegation/internal/domain/assignment"
)

const assignmentColumns = "a.id, a.match_id, a.referee_id, a.role, a.status, a.responded_at, a.decline_reason, " +
	"a.fee, a.travel_cost, a.created_at, a.updated_at"

type assignmentTableModel struct {
	ID            string         `db:"id"`
	MatchID       string         `db:"match_id"`
	RefereeID     string         `db:"referee_id"`
	Role          string         `db:"role"`
	Status        string         `db:"status"`
	RespondedAt   sql.NullTime   `db:"responded_at"`
	DeclineReason sql.NullString `db:"decline_reason"`
	Fee           sql.NullInt64  `db:"fee"`
	TravelCost    sql.NullInt64  `db:"travel_cost"`
	CreatedAt     time.Time      `db:"created_at"`
	UpdatedAt     time.Time      `db:"updated_at"`
}

func newAssignmentTableModel(a assignment.Assignment) assignmentTableModel {
	return assignmentTableModel{
		ID:            a.ID,
		MatchID:       a.MatchID,
		RefereeID:     a.RefereeID,
		Role:          string(a.Role),
		Status:        string(a.Status),
		RespondedAt:   nullTimePtr(a.RespondedAt),
		DeclineReason: nullString(a.DeclineReason),
		Fee:           nullInt64Ptr(a.Fee),
		TravelCost:    nullInt64Ptr(a.TravelCost),
		CreatedAt:     a.CreatedAt.UTC(),
		UpdatedAt:     a.UpdatedAt.UTC(),
	}
}

func (row assignmentTableModel) toDomain() assignment.Assignment {
	return assignment.Assignment{
		ID:            row.ID,
		MatchID:       row.MatchID,
		RefereeID:     row.RefereeID,
		Role:          assignment.Role(row.Role),
		Status:        assignment.Status(row.Status),
		RespondedAt:   timePtrFromNull(row.RespondedAt),
		DeclineReason: row.DeclineReason.String,
		Fee:           int64PtrFromNull(row.Fee),
		TravelCost:    int64PtrFromNull(row.TravelCost),
		CreatedAt:     row.CreatedAt.UTC(),
		UpdatedAt:     row.UpdatedAt.UTC(),
	}
}

type availabilityTableModel struct {
	RefereeID   string         `db:"referee_id"`
	Date        time.Time      `db:"date"`
	IsAvailable bool           `db:"is_available"`
	Reason      sql.NullString `db:"reason"`
	UpdatedAt   time.Time      `db:"updated_at"`
}

package httpapi

import (
	"time"

	"github.com/riskibarqy/referee-delegation/internal/domain/assignment"
	"github.com/riskibarqy/referee-delegation/internal/domain/availability"
	"github.com/riskibarqy/referee-delegation/internal/domain/delegation"
	"github.com/riskibarqy/referee-delegation/internal/domain/referee"
	"github.com/riskibarqy/referee-delegation/internal/domain/user"
)

type rosterEntryRequest struct {
	RefereeID  string `json:"referee_id" validate:"required"`
	Role       string `json:"role" validate:"required,oneof=first_referee second_referee third_referee"`
	Fee        *int64 `json:"fee,omitempty" validate:"omitempty,gte=0"`
	TravelCost *int64 `json:"travel_cost,omitempty" validate:"omitempty,gte=0"`
}

type delegateRefereesRequest struct {
	Referees []rosterEntryRequest `json:"referees" validate:"required,min=1,dive"`
}

type updateRoleRequest struct {
	Role string `json:"role" validate:"required"`
}

type rejectAssignmentRequest struct {
	Reason string `json:"reason" validate:"required,max=500"`
}

type setAvailabilityRequest struct {
	IsAvailable *bool  `json:"is_available" validate:"required"`
	Reason      string `json:"reason" validate:"max=255"`
}

type setAvailabilityRangeRequest struct {
	From        string `json:"from" validate:"required,datetime=2006-01-02"`
	To          string `json:"to" validate:"required,datetime=2006-01-02"`
	IsAvailable *bool  `json:"is_available" validate:"required"`
	Reason      string `json:"reason" validate:"max=255"`
}

type createMatchRequest struct {
	CompetitionID string `json:"competition_id" validate:"required"`
	HomeTeamID    string `json:"home_team_id" validate:"required"`
	AwayTeamID    string `json:"away_team_id" validate:"required,nefield=HomeTeamID"`
	VenueID       string `json:"venue_id"`
	ScheduledAt   string `json:"scheduled_at" validate:"required,datetime=2006-01-02T15:04:05Z07:00"`
	Round         string `json:"round" validate:"max=60"`
	Notes         string `json:"notes" validate:"max=1000"`
}

type recordResultRequest struct {
	HomeScore *int `json:"home_score" validate:"required,gte=0"`
	AwayScore *int `json:"away_score" validate:"required,gte=0"`
}

type updateMatchStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

type userDTO struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone,omitempty"`
	Role      string `json:"role"`
}

type refereeDTO struct {
	ID                string  `json:"id"`
	UserID            string  `json:"user_id"`
	LicenseNumber     string  `json:"license_number"`
	LicenseCategory   string  `json:"license_category"`
	City              string  `json:"city,omitempty"`
	YearsOfExperience int     `json:"years_of_experience"`
	IsActive          bool    `json:"is_active"`
	User              userDTO `json:"user"`
}

type refDTO struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type assignmentDTO struct {
	ID            string     `json:"id"`
	RefereeID     string     `json:"referee_id"`
	Role          string     `json:"role"`
	Status        string     `json:"status"`
	RespondedAt   *time.Time `json:"responded_at,omitempty"`
	DeclineReason string     `json:"decline_reason,omitempty"`
	Fee           *int64     `json:"fee,omitempty"`
	TravelCost    *int64     `json:"travel_cost,omitempty"`
	Referee       refereeDTO `json:"referee"`
}

type matchDTO struct {
	ID               string          `json:"id"`
	Competition      *refDTO         `json:"competition,omitempty"`
	HomeTeam         *refDTO         `json:"home_team,omitempty"`
	AwayTeam         *refDTO         `json:"away_team,omitempty"`
	Venue            *refDTO         `json:"venue,omitempty"`
	ScheduledAt      time.Time       `json:"scheduled_at"`
	Round            string          `json:"round,omitempty"`
	Status           string          `json:"status"`
	HomeScore        *int            `json:"home_score,omitempty"`
	AwayScore        *int            `json:"away_score,omitempty"`
	DelegationStatus string          `json:"delegation_status"`
	DelegatedBy      *userDTO        `json:"delegated_by,omitempty"`
	DelegatedAt      *time.Time      `json:"delegated_at,omitempty"`
	Notes            string          `json:"notes,omitempty"`
	Assignments      []assignmentDTO `json:"assignments"`
}

type pageDTO struct {
	Items []matchDTO `json:"items"`
	Total int        `json:"total"`
	Page  int        `json:"page"`
	Limit int        `json:"limit"`
}

type statisticsDTO struct {
	Total           int            `json:"total"`
	ByStatus        map[string]int `json:"by_status"`
	UpcomingPending int            `json:"upcoming_pending"`
}

type refereeAssignmentDTO struct {
	AssignmentID  string     `json:"assignment_id"`
	Role          string     `json:"role"`
	Status        string     `json:"status"`
	RespondedAt   *time.Time `json:"responded_at,omitempty"`
	DeclineReason string     `json:"decline_reason,omitempty"`
	Match         matchDTO   `json:"match"`
}

type dayEntryDTO struct {
	Date        string `json:"date"`
	IsAvailable bool   `json:"is_available"`
	Explicit    bool   `json:"explicit"`
	Reason      string `json:"reason,omitempty"`
}

type availabilityRecordDTO struct {
	RefereeID   string    `json:"referee_id"`
	Date        string    `json:"date"`
	IsAvailable bool      `json:"is_available"`
	Reason      string    `json:"reason,omitempty"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func userToDTO(u user.User) userDTO {
	return userDTO{ID: u.ID, Email: u.Email, FirstName: u.FirstName, LastName: u.LastName, Phone: u.Phone, Role: string(u.Role)}
}

func refereeToDTO(r referee.Referee) refereeDTO {
	return refereeDTO{
		ID:                r.ID,
		UserID:            r.UserID,
		LicenseNumber:     r.LicenseNumber,
		LicenseCategory:   string(r.LicenseCategory),
		City:              r.City,
		YearsOfExperience: r.YearsOfExperience,
		IsActive:          r.Active,
		User:              userToDTO(r.User),
	}
}

func refereesToDTO(items []referee.Referee) []refereeDTO {
	out := make([]refereeDTO, 0, len(items))
	for _, item := range items {
		out = append(out, refereeToDTO(item))
	}
	return out
}

func assignmentToDTO(a assignment.Assignment, r referee.Referee) assignmentDTO {
	return assignmentDTO{
		ID:            a.ID,
		RefereeID:     a.RefereeID,
		Role:          string(a.Role),
		Status:        string(a.Status),
		RespondedAt:   a.RespondedAt,
		DeclineReason: a.DeclineReason,
		Fee:           a.Fee,
		TravelCost:    a.TravelCost,
		Referee:       refereeToDTO(r),
	}
}

func matchViewToDTO(view delegation.MatchView) matchDTO {
	m := view.Match
	out := matchDTO{
		ID:               m.ID,
		ScheduledAt:      m.ScheduledAt,
		Round:            m.Round,
		Status:           string(m.Status),
		HomeScore:        m.HomeScore,
		AwayScore:        m.AwayScore,
		DelegationStatus: string(m.DelegationStatus),
		DelegatedAt:      m.DelegatedAt,
		Notes:            m.Notes,
		Assignments:      make([]assignmentDTO, 0, len(view.Assignments)),
	}
	if view.Competition != nil {
		out.Competition = &refDTO{ID: view.Competition.ID, Name: view.Competition.Name}
	}
	if view.HomeTeam != nil {
		out.HomeTeam = &refDTO{ID: view.HomeTeam.ID, Name: view.HomeTeam.Name}
	}
	if view.AwayTeam != nil {
		out.AwayTeam = &refDTO{ID: view.AwayTeam.ID, Name: view.AwayTeam.Name}
	}
	if view.Venue != nil {
		out.Venue = &refDTO{ID: view.Venue.ID, Name: view.Venue.Name}
	}
	if view.DelegatedBy != nil {
		delegatedBy := userToDTO(*view.DelegatedBy)
		out.DelegatedBy = &delegatedBy
	}
	for _, item := range view.Assignments {
		out.Assignments = append(out.Assignments, assignmentToDTO(item.Assignment, item.Referee))
	}
	return out
}

func pageToDTO(page delegation.Page) pageDTO {
	items := make([]matchDTO, 0, len(page.Items))
	for _, view := range page.Items {
		items = append(items, matchViewToDTO(view))
	}
	return pageDTO{Items: items, Total: page.Total, Page: page.Page, Limit: page.Limit}
}

func statisticsToDTO(stats delegation.Statistics) statisticsDTO {
	byStatus := make(map[string]int, len(stats.ByStatus))
	for status, count := range stats.ByStatus {
		byStatus[string(status)] = count
	}
	return statisticsDTO{Total: stats.Total, ByStatus: byStatus, UpcomingPending: stats.UpcomingPending}
}

func refereeAssignmentsToDTO(items []delegation.RefereeAssignment) []refereeAssignmentDTO {
	out := make([]refereeAssignmentDTO, 0, len(items))
	for _, item := range items {
		out = append(out, refereeAssignmentDTO{
			AssignmentID:  item.Assignment.ID,
			Role:          string(item.Assignment.Role),
			Status:        string(item.Assignment.Status),
			RespondedAt:   item.Assignment.RespondedAt,
			DeclineReason: item.Assignment.DeclineReason,
			Match:         matchViewToDTO(item.Match),
		})
	}
	return out
}

func calendarToDTO(entries []availability.DayEntry) []dayEntryDTO {
	out := make([]dayEntryDTO, 0, len(entries))
	for _, entry := range entries {
		out = append(out, dayEntryDTO{
			Date:        availability.FormatDate(entry.Date),
			IsAvailable: entry.Available,
			Explicit:    entry.Explicit,
			Reason:      entry.Reason,
		})
	}
	return out
}

func availabilityRecordToDTO(record availability.Record) availabilityRecordDTO {
	return availabilityRecordDTO{
		RefereeID:   record.RefereeID,
		Date:        availability.FormatDate(record.Date),
		IsAvailable: record.IsAvailable,
		Reason:      record.Reason,
		UpdatedAt:   record.UpdatedAt,
	}
}

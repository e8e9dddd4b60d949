package postgres

import (
	"database/sql"
	"time"

	"github.com/riskibarqy/referee-delegation/internal/domain/referee"
	"github.com/riskibarqy/referee-delegation/internal/domain/user"
)

type teamTableModel struct {
	ID        string         `db:"id"`
	Name      string         `db:"name"`
	ShortName string         `db:"short_name"`
	City      sql.NullString `db:"city"`
}

type venueTableModel struct {
	ID       string         `db:"id"`
	Name     string         `db:"name"`
	City     sql.NullString `db:"city"`
	Address  sql.NullString `db:"address"`
	Capacity int            `db:"capacity"`
}

type competitionTableModel struct {
	ID       string         `db:"id"`
	Name     string         `db:"name"`
	Season   string         `db:"season"`
	Category sql.NullString `db:"category"`
}

const userColumns = "id, email, first_name, last_name, phone, role, is_active, created_at, updated_at"

type userTableModel struct {
	ID        string         `db:"id"`
	Email     string         `db:"email"`
	FirstName string         `db:"first_name"`
	LastName  string         `db:"last_name"`
	Phone     sql.NullString `db:"phone"`
	Role      string         `db:"role"`
	IsActive  bool           `db:"is_active"`
	CreatedAt time.Time      `db:"created_at"`
	UpdatedAt time.Time      `db:"updated_at"`
}

func (row userTableModel) toDomain() user.User {
	return user.User{
		ID:        row.ID,
		Email:     row.Email,
		FirstName: row.FirstName,
		LastName:  row.LastName,
		Phone:     row.Phone.String,
		Role:      user.Role(row.Role),
		Active:    row.IsActive,
		CreatedAt: row.CreatedAt.UTC(),
		UpdatedAt: row.UpdatedAt.UTC(),
	}
}

// refereeColumns joins the owning user so every referee comes back hydrated.
const refereeColumns = "r.id, r.user_id, r.license_number, r.license_category, r.city, r.years_of_experience, " +
	"r.is_active, r.created_at, r.updated_at, u.email AS user_email, u.first_name AS user_first_name, " +
	"u.last_name AS user_last_name, u.phone AS user_phone, u.role AS user_role, u.is_active AS user_is_active"

const refereeFrom = "referees r JOIN users u ON u.id = r.user_id"

type refereeTableModel struct {
	ID                string         `db:"id"`
	UserID            string         `db:"user_id"`
	LicenseNumber     string         `db:"license_number"`
	LicenseCategory   string         `db:"license_category"`
	City              sql.NullString `db:"city"`
	YearsOfExperience int            `db:"years_of_experience"`
	IsActive          bool           `db:"is_active"`
	CreatedAt         time.Time      `db:"created_at"`
	UpdatedAt         time.Time      `db:"updated_at"`
	UserEmail         string         `db:"user_email"`
	UserFirstName     string         `db:"user_first_name"`
	UserLastName      string         `db:"user_last_name"`
	UserPhone         sql.NullString `db:"user_phone"`
	UserRole          string         `db:"user_role"`
	UserIsActive      bool           `db:"user_is_active"`
}

func (row refereeTableModel) toDomain() referee.Referee {
	return referee.Referee{
		ID:                row.ID,
		UserID:            row.UserID,
		LicenseNumber:     row.LicenseNumber,
		LicenseCategory:   referee.LicenseCategory(row.LicenseCategory),
		City:              row.City.String,
		YearsOfExperience: row.YearsOfExperience,
		Active:            row.IsActive,
		User: user.User{
			ID:        row.UserID,
			Email:     row.UserEmail,
			FirstName: row.UserFirstName,
			LastName:  row.UserLastName,
			Phone:     row.UserPhone.String,
			Role:      user.Role(row.UserRole),
			Active:    row.UserIsActive,
		},
		CreatedAt: row.CreatedAt.UTC(),
		UpdatedAt: row.UpdatedAt.UTC(),
	}
}

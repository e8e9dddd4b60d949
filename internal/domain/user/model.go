package user

import (
	"fmt"
	"strings"
	"time"
)

type Role string

const (
	RoleAdmin    Role = "admin"
	RoleDelegate Role = "delegate"
	RoleReferee  Role = "referee"
)

func ParseRole(value string) (Role, error) {
	role := Role(strings.ToLower(strings.TrimSpace(value)))
	switch role {
	case RoleAdmin, RoleDelegate, RoleReferee:
		return role, nil
	default:
		return "", fmt.Errorf("unknown user role %q", value)
	}
}

// User is an account known to the federation directory.
type User struct {
	ID        string
	Email     string
	FirstName string
	LastName  string
	Phone     string
	Role      Role
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (u User) Validate() error {
	if u.ID == "" {
		return fmt.Errorf("user id is required")
	}
	if strings.TrimSpace(u.Email) == "" {
		return fmt.Errorf("user email is required")
	}
	if _, err := ParseRole(string(u.Role)); err != nil {
		return err
	}
	return nil
}

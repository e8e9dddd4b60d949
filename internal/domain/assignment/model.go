package assignment

import (
	"fmt"
	"strings"
	"time"
)

type Role string

const (
	RoleFirstReferee  Role = "first_referee"
	RoleSecondReferee Role = "second_referee"
	RoleThirdReferee  Role = "third_referee"
)

var roleRank = map[Role]int{
	RoleFirstReferee:  1,
	RoleSecondReferee: 2,
	RoleThirdReferee:  3,
}

func ParseRole(value string) (Role, error) {
	role := Role(strings.ToLower(strings.TrimSpace(value)))
	if _, ok := roleRank[role]; !ok {
		return "", fmt.Errorf("unknown referee role %q", value)
	}
	return role, nil
}

// Rank orders roles for display. Unknown roles sort last.
func (r Role) Rank() int {
	if rank, ok := roleRank[r]; ok {
		return rank
	}
	return len(roleRank) + 1
}

type Status string

const (
	StatusPending  Status = "pending"
	StatusAccepted Status = "accepted"
	StatusDeclined Status = "declined"
)

// Assignment places one referee on one match in one role.
type Assignment struct {
	ID            string
	MatchID       string
	RefereeID     string
	Role          Role
	Status        Status
	RespondedAt   *time.Time
	DeclineReason string
	Fee           *int64
	TravelCost    *int64
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (a Assignment) Validate() error {
	if a.ID == "" {
		return fmt.Errorf("assignment id is required")
	}
	if a.MatchID == "" || a.RefereeID == "" {
		return fmt.Errorf("assignment match and referee are required")
	}
	if _, err := ParseRole(string(a.Role)); err != nil {
		return err
	}
	if a.Fee != nil && *a.Fee < 0 {
		return fmt.Errorf("assignment fee must not be negative")
	}
	if a.TravelCost != nil && *a.TravelCost < 0 {
		return fmt.Errorf("assignment travel cost must not be negative")
	}
	return nil
}

func (a *Assignment) Accept(now time.Time) {
	a.Status = StatusAccepted
	a.RespondedAt = &now
	a.DeclineReason = ""
	a.UpdatedAt = now
}

func (a *Assignment) Decline(reason string, now time.Time) {
	a.Status = StatusDeclined
	a.RespondedAt = &now
	a.DeclineReason = reason
	a.UpdatedAt = now
}

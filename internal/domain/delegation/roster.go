package delegation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/riskibarqy/referee-delegation/internal/domain/assignment"
)

var (
	ErrEmptyRoster      = errors.New("roster must not be empty")
	ErrDuplicateReferee = errors.New("referee appears more than once in roster")
	ErrDuplicateRole    = errors.New("role appears more than once in roster")
	ErrMissingReferee   = errors.New("referee id is required")
	ErrNegativeAmount   = errors.New("fee and travel cost must not be negative")
)

// RosterEntry is one requested assignment in a roster submission.
type RosterEntry struct {
	RefereeID  string
	Role       assignment.Role
	Fee        *int64
	TravelCost *int64
}

// ValidateRoster checks the shape of a roster before any storage lookups.
func ValidateRoster(entries []RosterEntry) error {
	if len(entries) == 0 {
		return ErrEmptyRoster
	}

	seenReferees := make(map[string]struct{}, len(entries))
	seenRoles := make(map[assignment.Role]struct{}, len(entries))
	for i, entry := range entries {
		refereeID := strings.TrimSpace(entry.RefereeID)
		if refereeID == "" {
			return fmt.Errorf("%w: entry %d", ErrMissingReferee, i)
		}
		if _, err := assignment.ParseRole(string(entry.Role)); err != nil {
			return err
		}
		if _, ok := seenReferees[refereeID]; ok {
			return fmt.Errorf("%w: %s", ErrDuplicateReferee, refereeID)
		}
		if _, ok := seenRoles[entry.Role]; ok {
			return fmt.Errorf("%w: %s", ErrDuplicateRole, entry.Role)
		}
		if (entry.Fee != nil && *entry.Fee < 0) || (entry.TravelCost != nil && *entry.TravelCost < 0) {
			return fmt.Errorf("%w: %s", ErrNegativeAmount, refereeID)
		}
		seenReferees[refereeID] = struct{}{}
		seenRoles[entry.Role] = struct{}{}
	}
	return nil
}

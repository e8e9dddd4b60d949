package referee

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/riskibarqy/referee-delegation/internal/domain/user"
)

type LicenseCategory string

const (
	LicenseNational  LicenseCategory = "national"
	LicenseRegional  LicenseCategory = "regional"
	LicenseDistrict  LicenseCategory = "district"
	LicenseCandidate LicenseCategory = "candidate"
)

var AllLicenseCategories = map[LicenseCategory]struct{}{
	LicenseNational:  {},
	LicenseRegional:  {},
	LicenseDistrict:  {},
	LicenseCandidate: {},
}

// Referee is the officiating profile attached 1:1 to a user.
type Referee struct {
	ID                string
	UserID            string
	LicenseNumber     string
	LicenseCategory   LicenseCategory
	City              string
	YearsOfExperience int
	Active            bool
	User              user.User
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

func (r Referee) Validate() error {
	if r.ID == "" {
		return fmt.Errorf("referee id is required")
	}
	if r.UserID == "" {
		return fmt.Errorf("referee user id is required")
	}
	if strings.TrimSpace(r.LicenseNumber) == "" {
		return fmt.Errorf("referee license number is required")
	}
	if _, ok := AllLicenseCategories[r.LicenseCategory]; !ok {
		return fmt.Errorf("unknown license category %q", r.LicenseCategory)
	}
	if r.YearsOfExperience < 0 {
		return fmt.Errorf("years of experience must not be negative")
	}
	return nil
}

// SortByName orders referees by last name, then first name, then id.
func SortByName(items []Referee) {
	sort.SliceStable(items, func(i, j int) bool {
		return Less(items[i], items[j])
	})
}

func Less(a, b Referee) bool {
	al, bl := strings.ToLower(a.User.LastName), strings.ToLower(b.User.LastName)
	if al != bl {
		return al < bl
	}
	af, bf := strings.ToLower(a.User.FirstName), strings.ToLower(b.User.FirstName)
	if af != bf {
		return af < bf
	}
	return a.ID < b.ID
}

package referee

import (
	"testing"

	"github.com/riskibarqy/referee-delegation/internal/domain/user"
	"github.com/stretchr/testify/assert"
)

func TestSortByName(t *testing.T) {
	items := []Referee{
		{ID: "r3", User: user.User{FirstName: "Ana", LastName: "Zec"}},
		{ID: "r2", User: user.User{FirstName: "Marko", LastName: "horvat"}},
		{ID: "r1", User: user.User{FirstName: "Ivan", LastName: "Horvat"}},
		{ID: "r0", User: user.User{FirstName: "Ivan", LastName: "Horvat"}},
	}

	SortByName(items)

	got := make([]string, 0, len(items))
	for _, item := range items {
		got = append(got, item.ID)
	}
	assert.Equal(t, []string{"r0", "r1", "r2", "r3"}, got)
}

func TestReferee_Validate(t *testing.T) {
	valid := Referee{ID: "r1", UserID: "u1", LicenseNumber: "HNS-1", LicenseCategory: LicenseNational}
	assert.NoError(t, valid.Validate())

	bad := valid
	bad.LicenseCategory = "pro"
	assert.Error(t, bad.Validate())

	bad = valid
	bad.YearsOfExperience = -1
	assert.Error(t, bad.Validate())
}

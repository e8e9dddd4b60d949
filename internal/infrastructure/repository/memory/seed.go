package memory

import (
	"time"

	"github.com/riskibarqy/referee-delegation/internal/domain/competition"
	"github.com/riskibarqy/referee-delegation/internal/domain/match"
	"github.com/riskibarqy/referee-delegation/internal/domain/referee"
	"github.com/riskibarqy/referee-delegation/internal/domain/team"
	"github.com/riskibarqy/referee-delegation/internal/domain/user"
	"github.com/riskibarqy/referee-delegation/internal/domain/venue"
)

const (
	CompetitionIDLiga1 = "liga-1-2025"
	CompetitionIDCup   = "piala-indonesia-2025"

	UserIDAdmin     = "user-admin"
	UserIDDelegate  = "user-delegate-1"
	UserIDDelegate2 = "user-delegate-2"
)

func SeedUsers() []user.User {
	return []user.User{
		{ID: UserIDAdmin, Email: "admin@federation.test", FirstName: "Rina", LastName: "Wulandari", Role: user.RoleAdmin, Active: true},
		{ID: UserIDDelegate, Email: "delegate1@federation.test", FirstName: "Budi", LastName: "Santoso", Role: user.RoleDelegate, Active: true},
		{ID: UserIDDelegate2, Email: "delegate2@federation.test", FirstName: "Sari", LastName: "Pratiwi", Role: user.RoleDelegate, Active: true},
		{ID: "user-ref-01", Email: "thoriq@federation.test", FirstName: "Thoriq", LastName: "Alkatiri", Role: user.RoleReferee, Active: true},
		{ID: "user-ref-02", Email: "yudi@federation.test", FirstName: "Yudi", LastName: "Nurcahya", Role: user.RoleReferee, Active: true},
		{ID: "user-ref-03", Email: "fariq@federation.test", FirstName: "Fariq", LastName: "Hitaba", Role: user.RoleReferee, Active: true},
		{ID: "user-ref-04", Email: "oki@federation.test", FirstName: "Oki", LastName: "Dwi Putra", Role: user.RoleReferee, Active: true},
		{ID: "user-ref-05", Email: "naufal@federation.test", FirstName: "Naufal", LastName: "Adya", Role: user.RoleReferee, Active: true},
		{ID: "user-ref-06", Email: "aprisman@federation.test", FirstName: "Aprisman", LastName: "Aranda", Role: user.RoleReferee, Active: true},
		{ID: "user-ref-07", Email: "rizki@federation.test", FirstName: "Rizki", LastName: "Bayu", Role: user.RoleReferee, Active: false},
	}
}

func SeedReferees() []referee.Referee {
	return []referee.Referee{
		{ID: "ref-01", UserID: "user-ref-01", LicenseNumber: "PSSI-N-001", LicenseCategory: referee.LicenseNational, City: "Jakarta", YearsOfExperience: 12, Active: true},
		{ID: "ref-02", UserID: "user-ref-02", LicenseNumber: "PSSI-N-002", LicenseCategory: referee.LicenseNational, City: "Bandung", YearsOfExperience: 9, Active: true},
		{ID: "ref-03", UserID: "user-ref-03", LicenseNumber: "PSSI-R-010", LicenseCategory: referee.LicenseRegional, City: "Surabaya", YearsOfExperience: 6, Active: true},
		{ID: "ref-04", UserID: "user-ref-04", LicenseNumber: "PSSI-R-011", LicenseCategory: referee.LicenseRegional, City: "Denpasar", YearsOfExperience: 5, Active: true},
		{ID: "ref-05", UserID: "user-ref-05", LicenseNumber: "PSSI-D-101", LicenseCategory: referee.LicenseDistrict, City: "Jakarta", YearsOfExperience: 3, Active: true},
		{ID: "ref-06", UserID: "user-ref-06", LicenseNumber: "PSSI-C-201", LicenseCategory: referee.LicenseCandidate, City: "Malang", YearsOfExperience: 1, Active: true},
		{ID: "ref-07", UserID: "user-ref-07", LicenseNumber: "PSSI-D-102", LicenseCategory: referee.LicenseDistrict, City: "Bandung", YearsOfExperience: 4, Active: false},
	}
}

func SeedTeams() []team.Team {
	return []team.Team{
		{ID: "team-persija", Name: "Persija Jakarta", ShortName: "PSJ", City: "Jakarta"},
		{ID: "team-persib", Name: "Persib Bandung", ShortName: "PSB", City: "Bandung"},
		{ID: "team-persebaya", Name: "Persebaya Surabaya", ShortName: "PRB", City: "Surabaya"},
		{ID: "team-baliutd", Name: "Bali United", ShortName: "BU", City: "Gianyar"},
		{ID: "team-arema", Name: "Arema FC", ShortName: "ARE", City: "Malang"},
		{ID: "team-psm", Name: "PSM Makassar", ShortName: "PSM", City: "Makassar"},
	}
}

func SeedVenues() []venue.Venue {
	return []venue.Venue{
		{ID: "venue-jis", Name: "Jakarta International Stadium", City: "Jakarta", Capacity: 82000},
		{ID: "venue-glbla", Name: "Gelora Bandung Lautan Api", City: "Bandung", Capacity: 38000},
		{ID: "venue-gbt", Name: "Gelora Bung Tomo", City: "Surabaya", Capacity: 46000},
		{ID: "venue-dipta", Name: "Kapten I Wayan Dipta", City: "Gianyar", Capacity: 18000},
	}
}

func SeedCompetitions() []competition.Competition {
	return []competition.Competition{
		{ID: CompetitionIDLiga1, Name: "Liga 1", Season: "2025/2026", Category: "senior"},
		{ID: CompetitionIDCup, Name: "Piala Indonesia", Season: "2025/2026", Category: "cup"},
	}
}

// SeedMatches schedules a few rounds relative to now so the dashboard has upcoming work.
func SeedMatches(now time.Time) []match.Match {
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	at := func(days, hour, minute int) time.Time {
		return day.AddDate(0, 0, days).Add(time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute)
	}
	home, away := 2, 1

	return []match.Match{
		{
			ID: "match-001", CompetitionID: CompetitionIDLiga1, HomeTeamID: "team-persija", AwayTeamID: "team-persib", VenueID: "venue-jis",
			ScheduledAt: at(-3, 12, 30), Round: "Round 1", Status: match.StatusCompleted, HomeScore: &home, AwayScore: &away,
			DelegationStatus: match.DelegationPending, CreatedAt: now, UpdatedAt: now,
		},
		{
			ID: "match-002", CompetitionID: CompetitionIDLiga1, HomeTeamID: "team-persebaya", AwayTeamID: "team-baliutd", VenueID: "venue-gbt",
			ScheduledAt: at(2, 12, 30), Round: "Round 2", Status: match.StatusScheduled,
			DelegationStatus: match.DelegationPending, CreatedAt: now, UpdatedAt: now,
		},
		{
			ID: "match-003", CompetitionID: CompetitionIDLiga1, HomeTeamID: "team-arema", AwayTeamID: "team-psm",
			ScheduledAt: at(2, 15, 0), Round: "Round 2", Status: match.StatusScheduled,
			DelegationStatus: match.DelegationPending, CreatedAt: now, UpdatedAt: now,
		},
		{
			ID: "match-004", CompetitionID: CompetitionIDLiga1, HomeTeamID: "team-persib", AwayTeamID: "team-persebaya", VenueID: "venue-glbla",
			ScheduledAt: at(9, 12, 30), Round: "Round 3", Status: match.StatusScheduled,
			DelegationStatus: match.DelegationPending, CreatedAt: now, UpdatedAt: now,
		},
		{
			ID: "match-005", CompetitionID: CompetitionIDCup, HomeTeamID: "team-baliutd", AwayTeamID: "team-persija", VenueID: "venue-dipta",
			ScheduledAt: at(5, 19, 0), Round: "Quarter-final", Status: match.StatusScheduled,
			DelegationStatus: match.DelegationPending, CreatedAt: now, UpdatedAt: now,
		},
	}
}

package cache

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/riskibarqy/referee-delegation/internal/domain/team"
	"github.com/riskibarqy/referee-delegation/internal/domain/venue"
	basecache "github.com/riskibarqy/referee-delegation/internal/platform/cache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingTeams struct {
	calls atomic.Int32
	items map[string]team.Team
	err   error
}

func (c *countingTeams) GetByID(_ context.Context, teamID string) (team.Team, bool, error) {
	c.calls.Add(1)
	if c.err != nil {
		return team.Team{}, false, c.err
	}
	item, ok := c.items[teamID]
	return item, ok, nil
}

func (c *countingTeams) List(context.Context) ([]team.Team, error) {
	c.calls.Add(1)
	if c.err != nil {
		return nil, c.err
	}
	out := make([]team.Team, 0, len(c.items))
	for _, item := range c.items {
		out = append(out, item)
	}
	return out, nil
}

func TestTeamRepository_CachesHitsAndMisses(t *testing.T) {
	next := &countingTeams{items: map[string]team.Team{"team-persija": {ID: "team-persija", Name: "Persija Jakarta"}}}
	repo := NewTeamRepository(next, basecache.NewStore(time.Minute))
	ctx := context.Background()

	for range 3 {
		got, ok, err := repo.GetByID(ctx, "team-persija")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "Persija Jakarta", got.Name)
	}
	assert.Equal(t, int32(1), next.calls.Load())

	for range 2 {
		_, ok, err := repo.GetByID(ctx, "team-unknown")
		require.NoError(t, err)
		assert.False(t, ok)
	}
	assert.Equal(t, int32(2), next.calls.Load())
}

func TestTeamRepository_ListReturnsCopies(t *testing.T) {
	next := &countingTeams{items: map[string]team.Team{"team-psm": {ID: "team-psm", Name: "PSM Makassar"}}}
	repo := NewTeamRepository(next, basecache.NewStore(time.Minute))
	ctx := context.Background()

	first, err := repo.List(ctx)
	require.NoError(t, err)
	first[0].Name = "mutated"

	second, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, "PSM Makassar", second[0].Name)
	assert.Equal(t, int32(1), next.calls.Load())
}

func TestTeamRepository_DoesNotCacheErrors(t *testing.T) {
	next := &countingTeams{err: errors.New("connection refused")}
	repo := NewTeamRepository(next, basecache.NewStore(time.Minute))
	ctx := context.Background()

	_, _, err := repo.GetByID(ctx, "team-persib")
	require.Error(t, err)

	next.err = nil
	next.items = map[string]team.Team{"team-persib": {ID: "team-persib"}}
	_, ok, err := repo.GetByID(ctx, "team-persib")
	require.NoError(t, err)
	assert.True(t, ok)
}

type staticVenues struct{ calls int }

func (s *staticVenues) GetByID(_ context.Context, venueID string) (venue.Venue, bool, error) {
	s.calls++
	return venue.Venue{ID: venueID, Name: "Gelora Bung Tomo"}, true, nil
}

func (s *staticVenues) List(context.Context) ([]venue.Venue, error) {
	s.calls++
	return []venue.Venue{{ID: "venue-gbt"}}, nil
}

func TestVenueRepository_KeysDoNotCollideWithTeams(t *testing.T) {
	store := basecache.NewStore(time.Minute)
	teams := &countingTeams{items: map[string]team.Team{"x": {ID: "x", Name: "team"}}}
	venues := &staticVenues{}
	ctx := context.Background()

	_, _, err := NewTeamRepository(teams, store).GetByID(ctx, "x")
	require.NoError(t, err)
	got, ok, err := NewVenueRepository(venues, store).GetByID(ctx, "x")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "Gelora Bung Tomo", got.Name)
	assert.Equal(t, 1, venues.calls)
}

package cache

import (
	"context"

	"github.com/riskibarqy/referee-delegation/internal/domain/competition"
	"github.com/riskibarqy/referee-delegation/internal/domain/team"
	"github.com/riskibarqy/referee-delegation/internal/domain/venue"
	basecache "github.com/riskibarqy/referee-delegation/internal/platform/cache"
)

// Registry data changes only through migrations and seeds, so these
// decorators never invalidate; entries age out with the store TTL.

type TeamRepository struct {
	next  team.Repository
	cache *basecache.Store
}

func NewTeamRepository(next team.Repository, cache *basecache.Store) *TeamRepository {
	return &TeamRepository{next: next, cache: cache}
}

func (r *TeamRepository) GetByID(ctx context.Context, teamID string) (team.Team, bool, error) {
	return getByID(ctx, r.cache, "team:id:"+teamID, func(ctx context.Context) (team.Team, bool, error) {
		return r.next.GetByID(ctx, teamID)
	})
}

func (r *TeamRepository) List(ctx context.Context) ([]team.Team, error) {
	return list(ctx, r.cache, "team:list", r.next.List)
}

type VenueRepository struct {
	next  venue.Repository
	cache *basecache.Store
}

func NewVenueRepository(next venue.Repository, cache *basecache.Store) *VenueRepository {
	return &VenueRepository{next: next, cache: cache}
}

func (r *VenueRepository) GetByID(ctx context.Context, venueID string) (venue.Venue, bool, error) {
	return getByID(ctx, r.cache, "venue:id:"+venueID, func(ctx context.Context) (venue.Venue, bool, error) {
		return r.next.GetByID(ctx, venueID)
	})
}

func (r *VenueRepository) List(ctx context.Context) ([]venue.Venue, error) {
	return list(ctx, r.cache, "venue:list", r.next.List)
}

type CompetitionRepository struct {
	next  competition.Repository
	cache *basecache.Store
}

func NewCompetitionRepository(next competition.Repository, cache *basecache.Store) *CompetitionRepository {
	return &CompetitionRepository{next: next, cache: cache}
}

func (r *CompetitionRepository) GetByID(ctx context.Context, competitionID string) (competition.Competition, bool, error) {
	return getByID(ctx, r.cache, "competition:id:"+competitionID, func(ctx context.Context) (competition.Competition, bool, error) {
		return r.next.GetByID(ctx, competitionID)
	})
}

func (r *CompetitionRepository) List(ctx context.Context) ([]competition.Competition, error) {
	return list(ctx, r.cache, "competition:list", r.next.List)
}

// cachedByID remembers misses too, so unknown ids do not hit storage again.
type cachedByID[T any] struct {
	value  T
	exists bool
}

func getByID[T any](ctx context.Context, store *basecache.Store, key string, load func(context.Context) (T, bool, error)) (T, bool, error) {
	v, err := store.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		item, exists, err := load(ctx)
		if err != nil {
			return nil, err
		}
		return cachedByID[T]{value: item, exists: exists}, nil
	})
	if err != nil {
		var zero T
		return zero, false, err
	}

	cached, _ := v.(cachedByID[T])
	return cached.value, cached.exists, nil
}

func list[T any](ctx context.Context, store *basecache.Store, key string, load func(context.Context) ([]T, error)) ([]T, error) {
	v, err := store.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		items, err := load(ctx)
		if err != nil {
			return nil, err
		}
		return append([]T(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]T)
	return append([]T(nil), items...), nil
}

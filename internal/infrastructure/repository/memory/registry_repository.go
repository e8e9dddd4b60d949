package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/riskibarqy/referee-delegation/internal/domain/competition"
	"github.com/riskibarqy/referee-delegation/internal/domain/referee"
	"github.com/riskibarqy/referee-delegation/internal/domain/user"
	"github.com/riskibarqy/referee-delegation/internal/domain/venue"
)

type VenueRepository struct {
	mu    sync.RWMutex
	items map[string]venue.Venue
}

func NewVenueRepository(venues []venue.Venue) *VenueRepository {
	items := make(map[string]venue.Venue, len(venues))
	for _, item := range venues {
		items[item.ID] = item
	}
	return &VenueRepository{items: items}
}

func (r *VenueRepository) GetByID(_ context.Context, venueID string) (venue.Venue, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[venueID]
	return item, ok, nil
}

func (r *VenueRepository) List(_ context.Context) ([]venue.Venue, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]venue.Venue, 0, len(r.items))
	for _, item := range r.items {
		out = append(out, item)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

type CompetitionRepository struct {
	mu    sync.RWMutex
	items map[string]competition.Competition
}

func NewCompetitionRepository(competitions []competition.Competition) *CompetitionRepository {
	items := make(map[string]competition.Competition, len(competitions))
	for _, item := range competitions {
		items[item.ID] = item
	}
	return &CompetitionRepository{items: items}
}

func (r *CompetitionRepository) GetByID(_ context.Context, competitionID string) (competition.Competition, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[competitionID]
	return item, ok, nil
}

func (r *CompetitionRepository) List(_ context.Context) ([]competition.Competition, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]competition.Competition, 0, len(r.items))
	for _, item := range r.items {
		out = append(out, item)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

type UserRepository struct {
	mu    sync.RWMutex
	items map[string]user.User
}

func NewUserRepository(users []user.User) *UserRepository {
	items := make(map[string]user.User, len(users))
	for _, item := range users {
		items[item.ID] = item
	}
	return &UserRepository{items: items}
}

func (r *UserRepository) GetByID(_ context.Context, userID string) (user.User, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[userID]
	return item, ok, nil
}

func (r *UserRepository) ListByIDs(_ context.Context, userIDs []string) ([]user.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]user.User, 0, len(userIDs))
	for _, id := range userIDs {
		if item, ok := r.items[id]; ok {
			out = append(out, item)
		}
	}
	return out, nil
}

// RefereeRepository hydrates every referee with its user from the given user repository.
type RefereeRepository struct {
	mu     sync.RWMutex
	items  map[string]referee.Referee
	byUser map[string]string
	users  *UserRepository
}

func NewRefereeRepository(referees []referee.Referee, users *UserRepository) *RefereeRepository {
	items := make(map[string]referee.Referee, len(referees))
	byUser := make(map[string]string, len(referees))
	for _, item := range referees {
		items[item.ID] = item
		byUser[item.UserID] = item.ID
	}
	return &RefereeRepository{items: items, byUser: byUser, users: users}
}

func (r *RefereeRepository) GetByID(ctx context.Context, refereeID string) (referee.Referee, bool, error) {
	r.mu.RLock()
	item, ok := r.items[refereeID]
	r.mu.RUnlock()
	if !ok {
		return referee.Referee{}, false, nil
	}
	return r.hydrate(ctx, item), true, nil
}

func (r *RefereeRepository) GetByUserID(ctx context.Context, userID string) (referee.Referee, bool, error) {
	r.mu.RLock()
	id, ok := r.byUser[userID]
	item := r.items[id]
	r.mu.RUnlock()
	if !ok {
		return referee.Referee{}, false, nil
	}
	return r.hydrate(ctx, item), true, nil
}

func (r *RefereeRepository) ListByIDs(ctx context.Context, refereeIDs []string) ([]referee.Referee, error) {
	r.mu.RLock()
	out := make([]referee.Referee, 0, len(refereeIDs))
	for _, id := range refereeIDs {
		if item, ok := r.items[id]; ok {
			out = append(out, item)
		}
	}
	r.mu.RUnlock()

	for i := range out {
		out[i] = r.hydrate(ctx, out[i])
	}
	return out, nil
}

func (r *RefereeRepository) List(ctx context.Context, filter referee.ListFilter) ([]referee.Referee, error) {
	r.mu.RLock()
	out := make([]referee.Referee, 0, len(r.items))
	for _, item := range r.items {
		if filter.ActiveOnly && !item.Active {
			continue
		}
		if filter.Category != "" && item.LicenseCategory != filter.Category {
			continue
		}
		if filter.City != "" && !strings.EqualFold(item.City, filter.City) {
			continue
		}
		out = append(out, item)
	}
	r.mu.RUnlock()

	for i := range out {
		out[i] = r.hydrate(ctx, out[i])
	}
	referee.SortByName(out)
	return out, nil
}

func (r *RefereeRepository) hydrate(ctx context.Context, item referee.Referee) referee.Referee {
	if r.users == nil {
		return item
	}
	if u, ok, _ := r.users.GetByID(ctx, item.UserID); ok {
		item.User = u
	}
	return item
}

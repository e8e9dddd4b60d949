package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/riskibarqy/referee-delegation/internal/domain/match"
)

type MatchRepository struct {
	access
}

func (r *MatchRepository) GetByID(_ context.Context, matchID string) (match.Match, bool, error) {
	var (
		item match.Match
		ok   bool
	)
	r.read(func(st *state) {
		item, ok = st.matches[matchID]
		item = cloneMatch(item)
	})
	return item, ok, nil
}

// GetByIDForUpdate relies on the transaction holding the store lock.
func (r *MatchRepository) GetByIDForUpdate(ctx context.Context, matchID string) (match.Match, bool, error) {
	return r.GetByID(ctx, matchID)
}

func (r *MatchRepository) ListByIDs(_ context.Context, matchIDs []string) ([]match.Match, error) {
	out := make([]match.Match, 0, len(matchIDs))
	r.read(func(st *state) {
		seen := make(map[string]struct{}, len(matchIDs))
		for _, id := range matchIDs {
			if _, dup := seen[id]; dup {
				continue
			}
			seen[id] = struct{}{}
			if item, ok := st.matches[id]; ok {
				out = append(out, cloneMatch(item))
			}
		}
	})
	sortMatches(out)
	return out, nil
}

func (r *MatchRepository) List(_ context.Context, filter match.ListFilter) ([]match.Match, error) {
	var out []match.Match
	r.read(func(st *state) {
		out = filterMatches(st, filter)
	})

	if filter.Offset > 0 {
		if filter.Offset >= len(out) {
			return []match.Match{}, nil
		}
		out = out[filter.Offset:]
	}
	if filter.Limit > 0 && len(out) > filter.Limit {
		out = out[:filter.Limit]
	}
	return out, nil
}

func (r *MatchRepository) Count(_ context.Context, filter match.ListFilter) (int, error) {
	var count int
	r.read(func(st *state) {
		count = len(filterMatches(st, filter))
	})
	return count, nil
}

func (r *MatchRepository) CountByDelegationStatus(_ context.Context) (map[match.DelegationStatus]int, error) {
	out := make(map[match.DelegationStatus]int)
	r.read(func(st *state) {
		for _, m := range st.matches {
			out[m.DelegationStatus]++
		}
	})
	return out, nil
}

func (r *MatchRepository) Create(_ context.Context, item match.Match) error {
	return r.write(func(st *state) error {
		if _, exists := st.matches[item.ID]; exists {
			return fmt.Errorf("%w: match %s", ErrDuplicateKey, item.ID)
		}
		st.matches[item.ID] = cloneMatch(item)
		return nil
	})
}

func (r *MatchRepository) Update(_ context.Context, item match.Match) error {
	return r.write(func(st *state) error {
		if _, exists := st.matches[item.ID]; !exists {
			return fmt.Errorf("%w: match %s", ErrRowNotFound, item.ID)
		}
		st.matches[item.ID] = cloneMatch(item)
		return nil
	})
}

func filterMatches(st *state, filter match.ListFilter) []match.Match {
	statuses := make(map[match.Status]struct{}, len(filter.Statuses))
	for _, s := range filter.Statuses {
		statuses[s] = struct{}{}
	}
	delegationStatuses := make(map[match.DelegationStatus]struct{}, len(filter.DelegationStatuses))
	for _, s := range filter.DelegationStatuses {
		delegationStatuses[s] = struct{}{}
	}

	out := make([]match.Match, 0, len(st.matches))
	for _, m := range st.matches {
		if len(statuses) > 0 {
			if _, ok := statuses[m.Status]; !ok {
				continue
			}
		}
		if len(delegationStatuses) > 0 {
			if _, ok := delegationStatuses[m.DelegationStatus]; !ok {
				continue
			}
		}
		if filter.CompetitionID != "" && m.CompetitionID != filter.CompetitionID {
			continue
		}
		if filter.DelegatedBy != "" && m.DelegatedBy != filter.DelegatedBy {
			continue
		}
		if filter.ScheduledFrom != nil && m.ScheduledAt.Before(*filter.ScheduledFrom) {
			continue
		}
		if filter.ScheduledTo != nil && m.ScheduledAt.After(*filter.ScheduledTo) {
			continue
		}
		out = append(out, cloneMatch(m))
	}

	sortMatches(out)
	return out
}

func sortMatches(out []match.Match) {
	sort.Slice(out, func(i, j int) bool {
		if !out[i].ScheduledAt.Equal(out[j].ScheduledAt) {
			return out[i].ScheduledAt.Before(out[j].ScheduledAt)
		}
		return out[i].ID < out[j].ID
	})
}

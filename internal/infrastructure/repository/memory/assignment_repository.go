package memory

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/riskibarqy/referee-delegation/internal/domain/assignment"
	"github.com/riskibarqy/referee-delegation/internal/domain/delegation"
)

type AssignmentRepository struct {
	access
}

func (r *AssignmentRepository) ListByMatch(_ context.Context, matchID string) ([]assignment.Assignment, error) {
	var out []assignment.Assignment
	r.read(func(st *state) {
		out = make([]assignment.Assignment, 0, 3)
		for _, a := range st.assignments {
			if a.MatchID == matchID {
				out = append(out, cloneAssignment(a))
			}
		}
	})

	sort.Slice(out, func(i, j int) bool {
		if out[i].Role.Rank() != out[j].Role.Rank() {
			return out[i].Role.Rank() < out[j].Role.Rank()
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (r *AssignmentRepository) ListByReferee(_ context.Context, refereeID string, from, to time.Time) ([]assignment.Assignment, error) {
	type row struct {
		item        assignment.Assignment
		scheduledAt time.Time
	}

	var rows []row
	r.read(func(st *state) {
		for _, a := range st.assignments {
			if a.RefereeID != refereeID {
				continue
			}
			m, ok := st.matches[a.MatchID]
			if !ok || !delegation.InWindow(m.ScheduledAt, from, to) {
				continue
			}
			rows = append(rows, row{item: cloneAssignment(a), scheduledAt: m.ScheduledAt})
		}
	})

	sort.Slice(rows, func(i, j int) bool {
		if !rows[i].scheduledAt.Equal(rows[j].scheduledAt) {
			return rows[i].scheduledAt.Before(rows[j].scheduledAt)
		}
		return rows[i].item.ID < rows[j].item.ID
	})

	out := make([]assignment.Assignment, 0, len(rows))
	for _, rw := range rows {
		out = append(out, rw.item)
	}
	return out, nil
}

func (r *AssignmentRepository) GetByMatchAndReferee(_ context.Context, matchID, refereeID string) (assignment.Assignment, bool, error) {
	var (
		item assignment.Assignment
		ok   bool
	)
	r.read(func(st *state) {
		for _, a := range st.assignments {
			if a.MatchID == matchID && a.RefereeID == refereeID {
				item, ok = cloneAssignment(a), true
				return
			}
		}
	})
	return item, ok, nil
}

// InsertBatch checks every row before writing any, so a rejected batch leaves no rows behind.
func (r *AssignmentRepository) InsertBatch(_ context.Context, items []assignment.Assignment) error {
	return r.write(func(st *state) error {
		pending := make(map[string]assignment.Assignment, len(items))
		for _, item := range items {
			if _, exists := st.assignments[item.ID]; exists {
				return fmt.Errorf("%w: assignment %s", ErrDuplicateKey, item.ID)
			}
			if _, exists := pending[item.ID]; exists {
				return fmt.Errorf("%w: assignment %s", ErrDuplicateKey, item.ID)
			}
			if err := checkUnique(st, pending, item); err != nil {
				return err
			}
			pending[item.ID] = item
		}
		for id, item := range pending {
			st.assignments[id] = cloneAssignment(item)
		}
		return nil
	})
}

func (r *AssignmentRepository) Update(_ context.Context, item assignment.Assignment) error {
	return r.write(func(st *state) error {
		if _, exists := st.assignments[item.ID]; !exists {
			return fmt.Errorf("%w: assignment %s", ErrRowNotFound, item.ID)
		}
		if err := checkUnique(st, nil, item); err != nil {
			return err
		}
		st.assignments[item.ID] = cloneAssignment(item)
		return nil
	})
}

func (r *AssignmentRepository) Delete(_ context.Context, matchID, refereeID string) error {
	return r.write(func(st *state) error {
		for id, a := range st.assignments {
			if a.MatchID == matchID && a.RefereeID == refereeID {
				delete(st.assignments, id)
			}
		}
		return nil
	})
}

func (r *AssignmentRepository) DeleteByMatch(_ context.Context, matchID string) error {
	return r.write(func(st *state) error {
		for id, a := range st.assignments {
			if a.MatchID == matchID {
				delete(st.assignments, id)
			}
		}
		return nil
	})
}

func (r *AssignmentRepository) FindConflicting(_ context.Context, refereeID string, from, to time.Time, excludeMatchID string) (assignment.Assignment, bool, error) {
	var (
		found    assignment.Assignment
		ok       bool
		earliest time.Time
	)
	r.read(func(st *state) {
		for _, a := range st.assignments {
			if a.RefereeID != refereeID || a.MatchID == excludeMatchID {
				continue
			}
			m, exists := st.matches[a.MatchID]
			if !exists || !delegation.InWindow(m.ScheduledAt, from, to) {
				continue
			}
			if !ok || m.ScheduledAt.Before(earliest) {
				found, ok, earliest = cloneAssignment(a), true, m.ScheduledAt
			}
		}
	})
	return found, ok, nil
}

func (r *AssignmentRepository) ListRefereeIDsBusyBetween(_ context.Context, from, to time.Time, excludeMatchID string) ([]string, error) {
	seen := make(map[string]struct{})
	r.read(func(st *state) {
		for _, a := range st.assignments {
			if a.MatchID == excludeMatchID {
				continue
			}
			m, exists := st.matches[a.MatchID]
			if !exists || !delegation.InWindow(m.ScheduledAt, from, to) {
				continue
			}
			seen[a.RefereeID] = struct{}{}
		}
	})

	out := make([]string, 0, len(seen))
	for id := range seen {
		out = append(out, id)
	}
	sort.Strings(out)
	return out, nil
}

// checkUnique enforces one assignment per (match, referee) and per (match, role).
func checkUnique(st *state, pending map[string]assignment.Assignment, item assignment.Assignment) error {
	check := func(other assignment.Assignment) error {
		if other.ID == item.ID || other.MatchID != item.MatchID {
			return nil
		}
		if other.RefereeID == item.RefereeID {
			return fmt.Errorf("%w: referee %s on match %s", ErrDuplicateKey, item.RefereeID, item.MatchID)
		}
		if other.Role == item.Role {
			return fmt.Errorf("%w: role %s on match %s", ErrDuplicateKey, item.Role, item.MatchID)
		}
		return nil
	}
	for _, other := range st.assignments {
		if err := check(other); err != nil {
			return err
		}
	}
	for _, other := range pending {
		if err := check(other); err != nil {
			return err
		}
	}
	return nil
}

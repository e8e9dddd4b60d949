package memory

import (
	"context"
	"sort"
	"time"

	"github.com/riskibarqy/referee-delegation/internal/domain/availability"
)

type AvailabilityRepository struct {
	access
}

func (r *AvailabilityRepository) Get(_ context.Context, refereeID string, date time.Time) (availability.Record, bool, error) {
	var (
		rec availability.Record
		ok  bool
	)
	r.read(func(st *state) {
		rec, ok = st.availability[keyFor(refereeID, availability.FormatDate(date))]
	})
	return rec, ok, nil
}

func (r *AvailabilityRepository) ListByReferee(_ context.Context, refereeID string, from, to time.Time) ([]availability.Record, error) {
	from, to = availability.Date(from), availability.Date(to)

	var out []availability.Record
	r.read(func(st *state) {
		for key, rec := range st.availability {
			if key.refereeID != refereeID {
				continue
			}
			if rec.Date.Before(from) || rec.Date.After(to) {
				continue
			}
			out = append(out, rec)
		}
	})

	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out, nil
}

func (r *AvailabilityRepository) ListUnavailableOn(_ context.Context, date time.Time) ([]string, error) {
	day := availability.FormatDate(date)

	var out []string
	r.read(func(st *state) {
		for key, rec := range st.availability {
			if key.date == day && !rec.IsAvailable {
				out = append(out, key.refereeID)
			}
		}
	})

	sort.Strings(out)
	return out, nil
}

func (r *AvailabilityRepository) Upsert(_ context.Context, record availability.Record) error {
	record.Date = availability.Date(record.Date)
	return r.write(func(st *state) error {
		st.availability[keyFor(record.RefereeID, availability.FormatDate(record.Date))] = record
		return nil
	})
}

func (r *AvailabilityRepository) InsertBatch(_ context.Context, records []availability.Record) error {
	return r.write(func(st *state) error {
		for _, record := range records {
			record.Date = availability.Date(record.Date)
			st.availability[keyFor(record.RefereeID, availability.FormatDate(record.Date))] = record
		}
		return nil
	})
}

func (r *AvailabilityRepository) DeleteRange(_ context.Context, refereeID string, from, to time.Time) error {
	from, to = availability.Date(from), availability.Date(to)
	return r.write(func(st *state) error {
		for key, rec := range st.availability {
			if key.refereeID != refereeID {
				continue
			}
			if rec.Date.Before(from) || rec.Date.After(to) {
				continue
			}
			delete(st.availability, key)
		}
		return nil
	})
}

func (r *AvailabilityRepository) Delete(_ context.Context, refereeID string, date time.Time) (bool, error) {
	var deleted bool
	err := r.write(func(st *state) error {
		key := keyFor(refereeID, availability.FormatDate(date))
		if _, ok := st.availability[key]; ok {
			delete(st.availability, key)
			deleted = true
		}
		return nil
	})
	return deleted, err
}

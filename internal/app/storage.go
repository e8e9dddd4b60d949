package app

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/riskibarqy/referee-delegation/internal/config"
	"github.com/riskibarqy/referee-delegation/internal/domain/assignment"
	"github.com/riskibarqy/referee-delegation/internal/domain/availability"
	"github.com/riskibarqy/referee-delegation/internal/domain/competition"
	"github.com/riskibarqy/referee-delegation/internal/domain/delegation"
	"github.com/riskibarqy/referee-delegation/internal/domain/match"
	"github.com/riskibarqy/referee-delegation/internal/domain/referee"
	"github.com/riskibarqy/referee-delegation/internal/domain/team"
	"github.com/riskibarqy/referee-delegation/internal/domain/user"
	"github.com/riskibarqy/referee-delegation/internal/domain/venue"
	"github.com/riskibarqy/referee-delegation/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/referee-delegation/internal/infrastructure/repository/postgres"
	"github.com/riskibarqy/referee-delegation/internal/platform/logging"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"
	"go.opentelemetry.io/otel/attribute"
)

// storage groups the repositories of one backend.
type storage struct {
	tx           delegation.TxManager
	matches      match.Repository
	assignments  assignment.Repository
	availability availability.Repository
	users        user.Repository
	referees     referee.Repository
	teams        team.Repository
	venues       venue.Repository
	competitions competition.Repository
	close        func() error
}

func (s *storage) Close() error {
	if s == nil || s.close == nil {
		return nil
	}
	return s.close()
}

func openStorage(ctx context.Context, cfg config.Config, logger *logging.Logger) (*storage, error) {
	switch cfg.StorageDriver {
	case config.StoragePostgres:
		return openPostgres(ctx, cfg, logger)
	default:
		return openMemory(cfg, logger), nil
	}
}

// openMemory always carries the registry seed; matches are only seeded when
// SeedOnStart is set.
func openMemory(cfg config.Config, logger *logging.Logger) *storage {
	store := memory.NewStore()
	if cfg.SeedOnStart {
		store.Seed(memory.SeedMatches(time.Now().UTC()), nil, nil)
	}
	users := memory.NewUserRepository(memory.SeedUsers())

	logger.Info("storage ready", "driver", config.StorageMemory, "seeded", cfg.SeedOnStart)
	return &storage{
		tx:           store,
		matches:      store.Matches(),
		assignments:  store.Assignments(),
		availability: store.Availability(),
		users:        users,
		referees:     memory.NewRefereeRepository(memory.SeedReferees(), users),
		teams:        memory.NewTeamRepository(memory.SeedTeams()),
		venues:       memory.NewVenueRepository(memory.SeedVenues()),
		competitions: memory.NewCompetitionRepository(memory.SeedCompetitions()),
	}
}

func openPostgres(ctx context.Context, cfg config.Config, logger *logging.Logger) (*storage, error) {
	dsn := normalizeDBURL(cfg.DBURL, cfg.DBDisablePreparedBinary)
	db, err := otelsqlx.Open("postgres", dsn,
		otelsql.WithAttributes(attribute.String("db.system", "postgresql")),
		otelsql.WithDBName(dbNameFromURL(dsn)),
		otelsql.WithQueryFormatter(formatDBQueryForTrace),
	)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	db.SetMaxOpenConns(cfg.DBMaxOpenConns)
	db.SetMaxIdleConns(cfg.DBMaxIdleConns)
	db.SetConnMaxLifetime(cfg.DBConnMaxLifetime)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}

	if cfg.SeedOnStart {
		if err := postgres.BootstrapSeed(ctx, db, time.Now().UTC()); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("seed postgres: %w", err)
		}
	}

	logger.Info("storage ready",
		"driver", config.StoragePostgres,
		"db", dbNameFromURL(dsn),
		"max_open_conns", cfg.DBMaxOpenConns,
		"seeded", cfg.SeedOnStart,
	)
	return newPostgresStorage(db), nil
}

func newPostgresStorage(db *sqlx.DB) *storage {
	return &storage{
		tx:           postgres.NewTxManager(db),
		matches:      postgres.NewMatchRepository(db),
		assignments:  postgres.NewAssignmentRepository(db),
		availability: postgres.NewAvailabilityRepository(db),
		users:        postgres.NewUserRepository(db),
		referees:     postgres.NewRefereeRepository(db),
		teams:        postgres.NewTeamRepository(db),
		venues:       postgres.NewVenueRepository(db),
		competitions: postgres.NewCompetitionRepository(db),
		close:        db.Close,
	}
}

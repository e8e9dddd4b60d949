package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/riskibarqy/referee-delegation/internal/config"
	"github.com/riskibarqy/referee-delegation/internal/domain/delegation"
	"github.com/riskibarqy/referee-delegation/internal/infrastructure/account/introspection"
	repocache "github.com/riskibarqy/referee-delegation/internal/infrastructure/repository/cache"
	"github.com/riskibarqy/referee-delegation/internal/interfaces/httpapi"
	"github.com/riskibarqy/referee-delegation/internal/platform/cache"
	idgen "github.com/riskibarqy/referee-delegation/internal/platform/id"
	"github.com/riskibarqy/referee-delegation/internal/platform/logging"
	"github.com/riskibarqy/referee-delegation/internal/platform/resilience"
	"github.com/riskibarqy/referee-delegation/internal/usecase"
)

// App is the wired HTTP service and the resources it owns.
type App struct {
	Server  *http.Server
	storage *storage
	logger  *logging.Logger
}

func New(ctx context.Context, cfg config.Config, logger *logging.Logger) (*App, error) {
	if logger == nil {
		logger = logging.Default()
	}

	store, err := openStorage(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	router := newRouter(cfg, store, logger)
	server := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadTimeout:       cfg.ReadTimeout,
		ReadHeaderTimeout: cfg.ReadTimeout,
		WriteTimeout:      cfg.WriteTimeout,
	}
	if server.Addr == "" {
		_ = store.Close()
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	return &App{Server: server, storage: store, logger: logger}, nil
}

// Shutdown drains the HTTP server and then releases storage.
func (a *App) Shutdown(ctx context.Context) error {
	serverErr := a.Server.Shutdown(ctx)
	if err := a.storage.Close(); err != nil {
		a.logger.ErrorContext(ctx, "close storage failed", "error", err)
	}
	return serverErr
}

func newRouter(cfg config.Config, store *storage, logger *logging.Logger) http.Handler {
	teams, venues, competitions := store.teams, store.venues, store.competitions
	if cfg.CacheEnabled {
		registryCache := cache.NewStore(cfg.CacheTTL)
		teams = repocache.NewTeamRepository(teams, registryCache)
		venues = repocache.NewVenueRepository(venues, registryCache)
		competitions = repocache.NewCompetitionRepository(competitions, registryCache)
	}

	hydrator := usecase.NewMatchViewHydrator(
		competitions,
		teams,
		venues,
		store.users,
		store.referees,
		store.assignments,
		cfg.ViewHydrationWorkers,
	)
	ids := idgen.NewUUIDGenerator()

	delegationSvc := usecase.NewDelegationService(
		store.tx,
		store.matches,
		store.assignments,
		store.availability,
		store.referees,
		hydrator,
		usecase.DelegationConfig{
			Rules:          delegation.Rules{RequiredReferees: cfg.DelegationRequiredReferees},
			Location:       cfg.DelegationLocation,
			UpcomingWindow: cfg.DelegationUpcomingWindow,
		},
		ids,
		logger,
	)
	availabilitySvc := usecase.NewAvailabilityService(store.tx, store.availability, store.referees, logger)
	matchSvc := usecase.NewMatchService(store.tx, store.matches, competitions, teams, venues, hydrator, ids, logger)
	refereeSvc := usecase.NewRefereeService(store.referees)

	verifier := introspection.NewClient(
		&http.Client{Timeout: cfg.AuthTimeout},
		introspection.Config{
			BaseURL:        cfg.AuthBaseURL,
			IntrospectPath: cfg.AuthIntrospectPath,
			AdminKey:       cfg.AuthAdminKey,
			Timeout:        cfg.AuthTimeout,
			CacheTTL:       cfg.AuthCacheTTL,
			CircuitBreaker: resilience.CircuitBreakerConfig{
				Enabled:          cfg.AuthCircuitEnabled,
				FailureThreshold: cfg.AuthCircuitFailureCount,
				OpenTimeout:      cfg.AuthCircuitOpenTimeout,
				HalfOpenMaxReq:   cfg.AuthCircuitHalfOpenMaxReq,
			},
		},
		logger,
	)

	handler := httpapi.NewHandler(delegationSvc, availabilitySvc, matchSvc, refereeSvc, cfg.DelegationLocation, logger)
	return httpapi.NewRouter(handler, verifier, logger, cfg.SwaggerEnabled, cfg.CORSAllowedOrigins)
}

package observability

import (
	"context"
	"errors"
	"fmt"

	"github.com/riskibarqy/referee-delegation/internal/config"
	"github.com/riskibarqy/referee-delegation/internal/platform/logging"
)

// Setup starts tracing, profiling and the pprof listener. The returned func
// stops them in reverse order and joins their errors.
func Setup(cfg config.Config, logger *logging.Logger) (func(context.Context) error, error) {
	if logger == nil {
		logger = logging.Default()
	}
	logger = logger.Named("observability")

	shutdownTracing := InitUptrace(cfg, logger)

	stopProfiler, err := InitPyroscope(cfg, logger)
	if err != nil {
		_ = shutdownTracing(context.Background())
		return nil, fmt.Errorf("start pyroscope: %w", err)
	}

	pprofServer := StartPprofServer(cfg, logger)

	return func(ctx context.Context) error {
		var errs []error
		if err := StopPprofServer(ctx, pprofServer, logger); err != nil {
			errs = append(errs, fmt.Errorf("stop pprof: %w", err))
		}
		if err := stopProfiler(); err != nil {
			errs = append(errs, fmt.Errorf("stop pyroscope: %w", err))
		}
		if err := shutdownTracing(ctx); err != nil {
			errs = append(errs, fmt.Errorf("shutdown uptrace: %w", err))
		}
		return errors.Join(errs...)
	}, nil
}

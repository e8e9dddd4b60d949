package observability

import (
	"context"
	"testing"
	"time"

	"github.com/riskibarqy/referee-delegation/internal/config"
	"github.com/riskibarqy/referee-delegation/internal/platform/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitUptrace_Disabled(t *testing.T) {
	cfg := config.Config{
		UptraceEnabled: false,
		ServiceName:    "referee-delegation-api",
		ServiceVersion: "dev",
		AppEnv:         config.EnvDev,
	}

	shutdown := InitUptrace(cfg, logging.NewNop())
	assert.NoError(t, shutdown(context.Background()))
}

func TestInitUptrace_EnabledWithoutDSNIsNoop(t *testing.T) {
	shutdown := InitUptrace(config.Config{UptraceEnabled: true}, logging.NewNop())
	assert.NoError(t, shutdown(context.Background()))
}

func TestSetup_AllDisabled(t *testing.T) {
	shutdown, err := Setup(config.Config{ShutdownTimeout: time.Second}, logging.NewNop())
	require.NoError(t, err)
	assert.NoError(t, shutdown(context.Background()))
}

func TestStartPprofServer_Disabled(t *testing.T) {
	srv := StartPprofServer(config.Config{PprofEnabled: false}, logging.NewNop())
	assert.Nil(t, srv)
	assert.NoError(t, StopPprofServer(context.Background(), srv, logging.NewNop()))
}

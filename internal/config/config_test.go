package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/riskibarqy/referee-delegation/internal/platform/logging"
)

func TestLoad_AppEnvValidation(t *testing.T) {
	t.Setenv("APP_ENV", "invalid")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for invalid APP_ENV")
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.StorageDriver != StorageMemory {
		t.Fatalf("expected memory storage by default, got %q", cfg.StorageDriver)
	}
	if cfg.DelegationRequiredReferees != 3 {
		t.Fatalf("expected 3 required referees, got %d", cfg.DelegationRequiredReferees)
	}
	if cfg.DelegationUpcomingWindow != 7*24*time.Hour {
		t.Fatalf("unexpected upcoming window: %s", cfg.DelegationUpcomingWindow)
	}
	if cfg.DelegationLocation == nil || cfg.DelegationLocation.String() != "Asia/Jakarta" {
		t.Fatalf("unexpected delegation location: %v", cfg.DelegationLocation)
	}
	if !cfg.SeedOnStart {
		t.Fatalf("expected seeding on start in dev")
	}
	if cfg.LogFormat != logging.FormatConsole {
		t.Fatalf("expected console logs in dev, got %q", cfg.LogFormat)
	}
	if cfg.PprofAddr != ":6060" {
		t.Fatalf("expected default pprof addr :6060, got %q", cfg.PprofAddr)
	}
}

func TestLoad_DefaultsByEnv(t *testing.T) {
	t.Run("prod disables swagger by default", func(t *testing.T) {
		t.Setenv("APP_ENV", EnvProd)
		t.Setenv("STORAGE_DRIVER", StoragePostgres)
		t.Setenv("AUTH_ADMIN_KEY", "admin-key")
		t.Setenv("SWAGGER_ENABLED", "")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if cfg.SwaggerEnabled {
			t.Fatalf("expected SwaggerEnabled=false in prod by default")
		}
		if cfg.SeedOnStart {
			t.Fatalf("expected SeedOnStart=false in prod by default")
		}
		if cfg.LogFormat != logging.FormatJSON {
			t.Fatalf("expected json logs in prod, got %q", cfg.LogFormat)
		}
	})

	t.Run("prod rejects memory storage", func(t *testing.T) {
		t.Setenv("APP_ENV", EnvProd)
		t.Setenv("STORAGE_DRIVER", StorageMemory)
		t.Setenv("AUTH_ADMIN_KEY", "admin-key")

		if _, err := Load(); err == nil {
			t.Fatalf("expected error for memory storage in prod")
		}
	})

	t.Run("prod requires auth admin key", func(t *testing.T) {
		t.Setenv("APP_ENV", EnvProd)
		t.Setenv("STORAGE_DRIVER", StoragePostgres)
		t.Setenv("AUTH_ADMIN_KEY", "")

		if _, err := Load(); err == nil {
			t.Fatalf("expected error without AUTH_ADMIN_KEY in prod")
		}
	})
}

func TestLoad_Validation(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{name: "unknown storage driver", key: "STORAGE_DRIVER", val: "mongo"},
		{name: "bad timezone", key: "DELEGATION_TIMEZONE", val: "Mars/Olympus"},
		{name: "zero required referees", key: "DELEGATION_REQUIRED_REFEREES", val: "0"},
		{name: "negative upcoming window", key: "DELEGATION_UPCOMING_WINDOW", val: "-1h"},
		{name: "zero hydration workers", key: "VIEW_HYDRATION_WORKERS", val: "0"},
		{name: "idle above open conns", key: "DB_MAX_IDLE_CONNS", val: "50"},
		{name: "bad cache ttl", key: "CACHE_TTL", val: "soon"},
		{name: "zero circuit failure count", key: "AUTH_CIRCUIT_FAILURE_COUNT", val: "0"},
		{name: "bad bool", key: "CACHE_ENABLED", val: "maybe"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv("APP_ENV", EnvDev)
			t.Setenv(tc.key, tc.val)
			if _, err := Load(); err == nil {
				t.Fatalf("expected error for %s=%q", tc.key, tc.val)
			}
		})
	}
}

func TestLoad_DelegationOverrides(t *testing.T) {
	t.Setenv("APP_ENV", EnvStage)
	t.Setenv("DELEGATION_TIMEZONE", "UTC")
	t.Setenv("DELEGATION_REQUIRED_REFEREES", "4")
	t.Setenv("DELEGATION_UPCOMING_WINDOW", "72h")
	t.Setenv("VIEW_HYDRATION_WORKERS", "2")
	t.Setenv("APP_LOG_LEVEL", "warn")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.DelegationLocation != time.UTC {
		t.Fatalf("expected UTC location, got %v", cfg.DelegationLocation)
	}
	if cfg.DelegationRequiredReferees != 4 || cfg.DelegationUpcomingWindow != 72*time.Hour || cfg.ViewHydrationWorkers != 2 {
		t.Fatalf("unexpected delegation settings: %+v", cfg)
	}
	if cfg.LogLevel != logging.LevelWarn {
		t.Fatalf("unexpected log level: %s", cfg.LogLevel)
	}
}

func TestLoad_UptraceRequiresDSNWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "true")
	t.Setenv("UPTRACE_DSN", "")
	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when UPTRACE_ENABLED=true without UPTRACE_DSN")
	}
}

func TestLoad_UptraceDSNFromOTLPHeaders(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "true")
	t.Setenv("UPTRACE_DSN", "")
	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", `foo=bar, uptrace-dsn="https://token@api.uptrace.dev?grpc=4317"`)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.UptraceDSN != "https://token@api.uptrace.dev?grpc=4317" {
		t.Fatalf("unexpected uptrace dsn: %q", cfg.UptraceDSN)
	}
}

func TestLoad_PyroscopeRequiresServerAddressWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("PYROSCOPE_ENABLED", "true")
	t.Setenv("PYROSCOPE_SERVER_ADDRESS", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when PYROSCOPE_ENABLED=true without PYROSCOPE_SERVER_ADDRESS")
	}
}

func TestLoad_DotEnvFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.env")
	content := "DELEGATION_REQUIRED_REFEREES=5\nAPP_SERVICE_NAME=from-file\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write env file: %v", err)
	}

	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("APP_ENV_FILE", path)
	t.Setenv("APP_SERVICE_NAME", "from-process")
	// godotenv skips keys that are present, even when empty. Setenv registers
	// the restore so the value read from the file does not leak.
	t.Setenv("DELEGATION_REQUIRED_REFEREES", "")
	if err := os.Unsetenv("DELEGATION_REQUIRED_REFEREES"); err != nil {
		t.Fatalf("unset env: %v", err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.DelegationRequiredReferees != 5 {
		t.Fatalf("expected value from env file, got %d", cfg.DelegationRequiredReferees)
	}
	if cfg.ServiceName != "from-process" {
		t.Fatalf("expected process env to win, got %q", cfg.ServiceName)
	}
}

func TestLoad_MissingDotEnvIsIgnored(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("APP_ENV_FILE", filepath.Join(t.TempDir(), "absent.env"))

	if _, err := Load(); err != nil {
		t.Fatalf("expected missing env file to be ignored, got %v", err)
	}
}

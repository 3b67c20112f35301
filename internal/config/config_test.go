package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// configKeys lists every variable Load reads, so tests can start from
// a clean environment regardless of the developer's shell.
var configKeys = []string{
	"SERVER_PORT", "SERVER_READ_TIMEOUT", "SERVER_WRITE_TIMEOUT",
	"OPTIMIZER_WORKERS", "OPTIMIZER_GLOBAL_TIMEOUT", "OPTIMIZER_PROVIDER_TIMEOUT",
	"OFFER_MANIFEST", "PROVIDER_FETCH_DELAY",
	"REDIS_ADDR", "REDIS_PASSWORD", "REDIS_DB", "CACHE_TTL",
	"LOG_LEVEL", "LOG_FORMAT", "APP_ENV",
}

func resetEnv(t *testing.T) {
	t.Helper()
	for _, key := range configKeys {
		if value, ok := os.LookupEnv(key); ok {
			t.Cleanup(func() { os.Setenv(key, value) })
			os.Unsetenv(key)
		}
	}
}

// loadWith runs Load against a clean environment plus the given
// overrides.
func loadWith(t *testing.T, overrides map[string]string) (*Config, error) {
	t.Helper()
	resetEnv(t)
	for key, value := range overrides {
		t.Setenv(key, value)
	}
	return Load()
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := loadWith(t, nil)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 10*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 10*time.Second, cfg.Server.WriteTimeout)

	assert.Equal(t, 4, cfg.Optimizer.Workers)
	assert.Equal(t, 30*time.Second, cfg.Optimizer.GlobalTimeout)
	assert.Equal(t, 10*time.Second, cfg.Optimizer.ProviderTimeout)

	assert.Empty(t, cfg.Provider.ManifestPath)
	assert.Equal(t, 2*time.Second, cfg.Provider.FetchDelay)

	assert.Empty(t, cfg.Redis.Addr)
	assert.Zero(t, cfg.Redis.DB)
	assert.Equal(t, 15*time.Minute, cfg.Redis.CacheTTL)

	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, "development", cfg.App.Env)
}

func TestLoad_EnvironmentOverridesEverything(t *testing.T) {
	cfg, err := loadWith(t, map[string]string{
		"SERVER_PORT":                "3000",
		"SERVER_READ_TIMEOUT":        "30s",
		"SERVER_WRITE_TIMEOUT":       "30s",
		"OPTIMIZER_WORKERS":          "8",
		"OPTIMIZER_GLOBAL_TIMEOUT":   "60s",
		"OPTIMIZER_PROVIDER_TIMEOUT": "20s",
		"OFFER_MANIFEST":             "testdata/manifest.yaml",
		"PROVIDER_FETCH_DELAY":       "500ms",
		"REDIS_ADDR":                 "localhost:6379",
		"REDIS_DB":                   "2",
		"CACHE_TTL":                  "1h",
		"LOG_LEVEL":                  "debug",
		"LOG_FORMAT":                 "console",
		"APP_ENV":                    "production",
	})
	require.NoError(t, err)

	assert.Equal(t, 3000, cfg.Server.Port)
	assert.Equal(t, 30*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 30*time.Second, cfg.Server.WriteTimeout)
	assert.Equal(t, 8, cfg.Optimizer.Workers)
	assert.Equal(t, time.Minute, cfg.Optimizer.GlobalTimeout)
	assert.Equal(t, 20*time.Second, cfg.Optimizer.ProviderTimeout)
	assert.Equal(t, "testdata/manifest.yaml", cfg.Provider.ManifestPath)
	assert.Equal(t, 500*time.Millisecond, cfg.Provider.FetchDelay)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
	assert.Equal(t, 2, cfg.Redis.DB)
	assert.Equal(t, time.Hour, cfg.Redis.CacheTTL)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
	assert.Equal(t, "production", cfg.App.Env)
}

func TestLoad_UntouchedFieldsKeepDefaults(t *testing.T) {
	cfg, err := loadWith(t, map[string]string{"SERVER_PORT": "9000"})
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, 10*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 4, cfg.Optimizer.Workers)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoad_PortValidation(t *testing.T) {
	tests := []struct {
		name    string
		port    string
		wantErr string
	}{
		{"lowest valid", "1", ""},
		{"default", "8080", ""},
		{"highest valid", "65535", ""},
		{"zero", "0", "SERVER_PORT must be between 1 and 65535"},
		{"negative", "-1", "SERVER_PORT must be between 1 and 65535"},
		{"above range", "65536", "SERVER_PORT must be between 1 and 65535"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := loadWith(t, map[string]string{"SERVER_PORT": tt.port})
			if tt.wantErr == "" {
				require.NoError(t, err)
				assert.NotNil(t, cfg)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
			assert.Nil(t, cfg)
		})
	}
}

func TestLoad_TimeoutsMustBePositive(t *testing.T) {
	tests := []struct {
		name   string
		envVar string
		value  string
	}{
		{"zero read timeout", "SERVER_READ_TIMEOUT", "0s"},
		{"negative read timeout", "SERVER_READ_TIMEOUT", "-1s"},
		{"zero write timeout", "SERVER_WRITE_TIMEOUT", "0s"},
		{"negative write timeout", "SERVER_WRITE_TIMEOUT", "-1s"},
		{"zero global timeout", "OPTIMIZER_GLOBAL_TIMEOUT", "0s"},
		{"negative global timeout", "OPTIMIZER_GLOBAL_TIMEOUT", "-1s"},
		{"zero provider timeout", "OPTIMIZER_PROVIDER_TIMEOUT", "0s"},
		{"negative provider timeout", "OPTIMIZER_PROVIDER_TIMEOUT", "-1s"},
		{"zero cache ttl", "CACHE_TTL", "0s"},
		{"negative cache ttl", "CACHE_TTL", "-1s"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := loadWith(t, map[string]string{tt.envVar: tt.value})
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.envVar+" must be positive")
			assert.Nil(t, cfg)
		})
	}
}

func TestLoad_ProviderBudgetInsideGlobal(t *testing.T) {
	tests := []struct {
		name     string
		provider string
	}{
		{"equal to global", "10s"},
		{"above global", "20s"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := loadWith(t, map[string]string{
				"OPTIMIZER_GLOBAL_TIMEOUT":   "10s",
				"OPTIMIZER_PROVIDER_TIMEOUT": tt.provider,
			})
			require.Error(t, err)
			assert.Contains(t, err.Error(), "OPTIMIZER_PROVIDER_TIMEOUT")
			assert.Contains(t, err.Error(), "should be less than")
			assert.Nil(t, cfg)
		})
	}
}

func TestLoad_WorkerFloor(t *testing.T) {
	tests := []struct {
		name    string
		workers string
		wantErr bool
	}{
		{"single worker", "1", false},
		{"many workers", "16", false},
		{"zero workers", "0", true},
		{"negative workers", "-2", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := loadWith(t, map[string]string{"OPTIMIZER_WORKERS": tt.workers})
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "OPTIMIZER_WORKERS must be at least 1")
				assert.Nil(t, cfg)
			} else {
				require.NoError(t, err)
				assert.NotNil(t, cfg)
			}
		})
	}
}

func TestLoad_FetchDelayZeroIsFine(t *testing.T) {
	cfg, err := loadWith(t, map[string]string{"PROVIDER_FETCH_DELAY": "0s"})
	require.NoError(t, err)
	assert.Zero(t, cfg.Provider.FetchDelay)

	cfg, err = loadWith(t, map[string]string{"PROVIDER_FETCH_DELAY": "-1s"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "PROVIDER_FETCH_DELAY must not be negative")
	assert.Nil(t, cfg)
}

func TestLoad_RedisDBNotNegative(t *testing.T) {
	cfg, err := loadWith(t, map[string]string{"REDIS_DB": "-1"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "REDIS_DB must not be negative")
	assert.Nil(t, cfg)
}

func TestLoad_EnumFields(t *testing.T) {
	tests := []struct {
		name    string
		envVar  string
		value   string
		wantErr string
	}{
		{"debug level", "LOG_LEVEL", "debug", ""},
		{"warn level", "LOG_LEVEL", "warn", ""},
		{"error level", "LOG_LEVEL", "error", ""},
		{"trace level rejected", "LOG_LEVEL", "trace", "LOG_LEVEL must be one of"},
		{"fatal level rejected", "LOG_LEVEL", "fatal", "LOG_LEVEL must be one of"},
		{"console format", "LOG_FORMAT", "console", ""},
		{"text format rejected", "LOG_FORMAT", "text", "LOG_FORMAT must be one of"},
		{"staging env", "APP_ENV", "staging", ""},
		{"local env rejected", "APP_ENV", "local", "APP_ENV must be one of"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := loadWith(t, map[string]string{tt.envVar: tt.value})
			if tt.wantErr == "" {
				require.NoError(t, err)
				assert.NotNil(t, cfg)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
			assert.Nil(t, cfg)
		})
	}
}

func TestLoad_DurationSyntax(t *testing.T) {
	cfg, err := loadWith(t, map[string]string{
		"SERVER_READ_TIMEOUT":        "1m30s",
		"SERVER_WRITE_TIMEOUT":       "2m",
		"OPTIMIZER_GLOBAL_TIMEOUT":   "500ms",
		"OPTIMIZER_PROVIDER_TIMEOUT": "100ms",
	})
	require.NoError(t, err)

	assert.Equal(t, 90*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 2*time.Minute, cfg.Server.WriteTimeout)
	assert.Equal(t, 500*time.Millisecond, cfg.Optimizer.GlobalTimeout)
	assert.Equal(t, 100*time.Millisecond, cfg.Optimizer.ProviderTimeout)
}

func TestMustLoad_ReturnsConfig(t *testing.T) {
	resetEnv(t)

	assert.NotPanics(t, func() {
		assert.NotNil(t, MustLoad())
	})
}

func TestMustLoad_PanicsOnBadConfig(t *testing.T) {
	resetEnv(t)
	t.Setenv("SERVER_PORT", "0")

	assert.Panics(t, func() { MustLoad() })
}

func TestConfig_ModeHelpers(t *testing.T) {
	tests := []struct {
		env  string
		dev  bool
		prod bool
	}{
		{env: "development", dev: true, prod: false},
		{env: "staging", dev: false, prod: false},
		{env: "production", dev: false, prod: true},
	}

	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			cfg, err := loadWith(t, map[string]string{"APP_ENV": tt.env})
			require.NoError(t, err)
			assert.Equal(t, tt.dev, cfg.IsDevelopment())
			assert.Equal(t, tt.prod, cfg.IsProduction())
		})
	}
}

func TestConfig_CacheEnabled(t *testing.T) {
	cfg, err := loadWith(t, nil)
	require.NoError(t, err)
	assert.False(t, cfg.CacheEnabled(), "no address, no cache")

	cfg, err = loadWith(t, map[string]string{"REDIS_ADDR": "localhost:6379"})
	require.NoError(t, err)
	assert.True(t, cfg.CacheEnabled())
}

package config

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	viper.Reset()
	t.Setenv("STORAGE_DRIVER", "memory")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, StorageDriverMemory, cfg.StorageDriver)
	assert.Equal(t, "file://migrations", cfg.MigrationsPath)
	assert.Equal(t, "100-M", cfg.RateLimit)
	assert.Equal(t, []string{"*"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, 1, cfg.ImportWorkers)
	assert.True(t, cfg.MaxDealAmount.Equal(decimal.New(1, 12)))
	assert.Equal(t, 10, cfg.MaxDealAgeYears)
	assert.False(t, cfg.AuthEnabled)
}

func TestLoadConfig_Overrides(t *testing.T) {
	viper.Reset()
	t.Setenv("STORAGE_DRIVER", "MEMORY")
	t.Setenv("IMPORT_WORKERS", "8")
	t.Setenv("MAX_DEAL_AMOUNT", "5000.50")
	t.Setenv("MAX_DEAL_AGE_YEARS", "3")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("AUTH_ENABLED", "true")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, StorageDriverMemory, cfg.StorageDriver)
	assert.Equal(t, 8, cfg.ImportWorkers)
	assert.Equal(t, "5000.5", cfg.MaxDealAmount.String())
	assert.Equal(t, 3, cfg.MaxDealAgeYears)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSAllowedOrigins)
	assert.True(t, cfg.AuthEnabled)
}

func TestLoadConfig_InvalidValuesFallBack(t *testing.T) {
	viper.Reset()
	t.Setenv("STORAGE_DRIVER", "sqlite")
	t.Setenv("IMPORT_WORKERS", "0")
	t.Setenv("MAX_DEAL_AMOUNT", "lots")
	t.Setenv("MAX_DEAL_AGE_YEARS", "-2")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, StorageDriverPostgres, cfg.StorageDriver)
	assert.Equal(t, 1, cfg.ImportWorkers)
	assert.True(t, cfg.MaxDealAmount.Equal(decimal.New(1, 12)))
	assert.Equal(t, 10, cfg.MaxDealAgeYears)
}

func TestLoadConfig_MaxDealAmountClampedToColumn(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		expected string
	}{
		{"largest storable value", "999999999999999.9999", "999999999999999.9999"},
		{"just above column", "1000000000000000", "999999999999999.9999"},
		{"huge exponent", "1e2000000", "999999999999999.9999"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			viper.Reset()
			t.Setenv("MAX_DEAL_AMOUNT", tc.value)

			cfg, err := LoadConfig()
			require.NoError(t, err)

			assert.Equal(t, tc.expected, cfg.MaxDealAmount.String())
		})
	}
}

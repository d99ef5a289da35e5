package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/mailbundle/core/config"
)

type serverConfig struct {
	Host string `env:"CONFIG_TEST_HOST" envDefault:"localhost"`
	Port int    `env:"CONFIG_TEST_PORT" envDefault:"587"`
}

type cachedConfig struct {
	Value string `env:"CONFIG_TEST_CACHED" envDefault:"first"`
}

type requiredConfig struct {
	Token string `env:"CONFIG_TEST_REQUIRED_TOKEN,required"`
}

func TestLoad(t *testing.T) {
	t.Run("loads defaults and environment values", func(t *testing.T) {
		t.Setenv("CONFIG_TEST_HOST", "smtp.example.com")

		var cfg serverConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, "smtp.example.com", cfg.Host)
		assert.Equal(t, 587, cfg.Port)
	})

	t.Run("caches per type", func(t *testing.T) {
		t.Setenv("CONFIG_TEST_CACHED", "from-env")

		var first cachedConfig
		require.NoError(t, config.Load(&first))
		assert.Equal(t, "from-env", first.Value)

		// The cached value survives later environment changes.
		t.Setenv("CONFIG_TEST_CACHED", "changed")
		var second cachedConfig
		require.NoError(t, config.Load(&second))
		assert.Equal(t, "from-env", second.Value)
	})

	t.Run("fails on missing required variable", func(t *testing.T) {
		var cfg requiredConfig
		err := config.Load(&cfg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "requiredConfig")
	})

	t.Run("rejects nil target", func(t *testing.T) {
		var cfg *serverConfig
		err := config.Load(cfg)
		require.Error(t, err)
	})
}

func TestMustLoad(t *testing.T) {
	t.Run("panics on failure", func(t *testing.T) {
		assert.Panics(t, func() {
			var cfg requiredConfig
			config.MustLoad(&cfg)
		})
	})
}

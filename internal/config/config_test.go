package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"emailwriter/internal/config"
)

type testConfig struct {
	Name    string        `env:"TEST_NAME" envDefault:"fallback"`
	Timeout time.Duration `env:"TEST_TIMEOUT" envDefault:"5s"`
}

type requiredConfig struct {
	Key string `env:"TEST_REQUIRED_KEY,required"`
}

func TestLoadReadsEnvironment(t *testing.T) {
	t.Setenv("TEST_NAME", "from-env")
	t.Setenv("TEST_TIMEOUT", "30s")

	var cfg testConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "from-env", cfg.Name)
	assert.Equal(t, 30*time.Second, cfg.Timeout)
}

func TestLoadAppliesDefaults(t *testing.T) {
	var cfg testConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "fallback", cfg.Name)
	assert.Equal(t, 5*time.Second, cfg.Timeout)
}

func TestLoadRequiredMissing(t *testing.T) {
	var cfg requiredConfig
	err := config.Load(&cfg)
	require.ErrorIs(t, err, config.ErrParse)
}

func TestLoadNilPointer(t *testing.T) {
	err := config.Load[testConfig](nil)
	require.ErrorIs(t, err, config.ErrNilPointer)
}

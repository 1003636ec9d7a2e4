package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseConfig_Defaults(t *testing.T) {
	cfg, displayVersion, err := ParseConfig([]string{})

	require.NoError(t, err)
	assert.False(t, displayVersion)
	assert.Equal(t, 4000, cfg.Port)
	assert.Equal(t, "dev", cfg.Env)
	assert.Equal(t, 25, cfg.DB.MaxOpenConns)
	assert.Equal(t, 5*time.Minute, cfg.Cache.AnalyticsTTL)
	assert.Empty(t, cfg.Redis.URL)
	assert.Empty(t, cfg.AMQP.URL)
}

func TestParseConfig_EnvironmentAndFlags(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("DB_DSN", "postgres://booking@localhost/booking")
	t.Setenv("ANALYTICS_CACHE_TTL", "30s")
	t.Setenv("DB_MAX_OPEN_CONNS", "not-a-number")

	cfg, displayVersion, err := ParseConfig([]string{"-env", "prod", "-redis-url", "localhost:6379", "-version"})

	require.NoError(t, err)
	assert.True(t, displayVersion)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "prod", cfg.Env)
	assert.Equal(t, "postgres://booking@localhost/booking", cfg.DB.DSN)
	assert.Equal(t, 25, cfg.DB.MaxOpenConns)
	assert.Equal(t, 30*time.Second, cfg.Cache.AnalyticsTTL)
	assert.Equal(t, "localhost:6379", cfg.Redis.URL)
}

func TestParseConfig_UnknownFlag(t *testing.T) {
	_, _, err := ParseConfig([]string{"-stripe-key", "sk_test"})

	assert.Error(t, err)
}

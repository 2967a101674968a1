package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewConfig_Defaults(t *testing.T) {
	cfg := NewConfig()

	assert.Equal(t, int32(3004), cfg.HTTP.Port)
	assert.Equal(t, "0.0.0.0", cfg.HTTP.Host)
	assert.Empty(t, cfg.HTTP.AllowedOrigins)
	assert.Equal(t, "./bookclub.db", cfg.Database.Path)
	assert.Equal(t, 5, cfg.Global.ShutdownTimeoutInSeconds)
	assert.False(t, cfg.Maintenance.Enabled)
	assert.Equal(t, "0 3 * * *", cfg.Maintenance.Schedule)
}

func TestNewConfig_EnvOverrides(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("DATABASE_PATH", "/tmp/other.db")
	t.Setenv("MAINTENANCE_ENABLED", "true")

	cfg := NewConfig()

	assert.Equal(t, int32(8080), cfg.HTTP.Port)
	assert.Equal(t, "/tmp/other.db", cfg.Database.Path)
	assert.True(t, cfg.Maintenance.Enabled)
}

func TestSplitOrigins(t *testing.T) {
	assert.Nil(t, splitOrigins(""))
	assert.Equal(t,
		[]string{"http://localhost:3000", "https://bookclub.example.com"},
		splitOrigins("http://localhost:3000, https://bookclub.example.com"),
	)
	assert.Equal(t, []string{"http://localhost:3000"}, splitOrigins("http://localhost:3000,,"))
}

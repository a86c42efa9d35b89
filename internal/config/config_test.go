package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_defaults(t *testing.T) {
	// when: no config file and no env overrides
	cfg, err := Load("does-not-exist.yaml")

	// then
	assert.NoError(t, err)
	assert.Equal(t, "http://localhost:3000", cfg.Host)
	assert.True(t, cfg.Frontend.Enabled)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "kakeibo", cfg.Database.Name)
	assert.Equal(t, "kakeibo", cfg.Database.Schema)
}

func TestLoad_envOverrides(t *testing.T) {
	// given
	t.Setenv("KAKEIBO_DB_HOST", "db.internal")
	t.Setenv("KAKEIBO_DB_PASS", "secret")
	t.Setenv("KAKEIBO_HOST", "https://kakeibo.example.com")

	// when
	cfg, err := Load("does-not-exist.yaml")

	// then
	assert.NoError(t, err)
	assert.Equal(t, "https://kakeibo.example.com", cfg.Host)
	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, "secret", cfg.Database.Pass)
}

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_DefaultsAndEnvExpansion(t *testing.T) {
	t.Setenv("BRIEFING_TEST_FRESHRSS_PASSWORD", "s3cret")

	path := writeConfig(t, `
freshrss:
  base_url: http://rss.local/api/greader.php
  username: reader
  password: ${BRIEFING_TEST_FRESHRSS_PASSWORD}
session:
  background_revalidate: true
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "s3cret", cfg.FreshRSS.Password)
	assert.Equal(t, 3, cfg.FreshRSS.Retry.MaxAttempts)
	assert.Equal(t, CacheDriverMemory, cfg.Cache.Driver)
	assert.Equal(t, ":8080", cfg.HTTP.Addr)
	assert.Equal(t, 15*time.Minute, cfg.Session.RefreshInterval)
	assert.Equal(t, 20*time.Second, cfg.Session.RequestTimeout)
	assert.True(t, cfg.Session.BackgroundRevalidate)
	assert.False(t, cfg.Session.OptimisticMutations)
	assert.Empty(t, cfg.RabbitMQ.URL)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "missing freshrss url", body: "log_level: debug\n"},
		{name: "redis without url", body: "freshrss:\n  base_url: http://x\ncache:\n  driver: redis\n"},
		{name: "unknown driver", body: "freshrss:\n  base_url: http://x\ncache:\n  driver: memcached\n"},
		{name: "bad yaml", body: "freshrss: [\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			assert.Error(t, err)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestDatabaseConfig_DSN(t *testing.T) {
	d := DatabaseConfig{Host: "db", Port: 5432, User: "u", Password: "p", DBName: "news", SSLMode: "disable"}
	assert.Equal(t, "host=db port=5432 user=u password=p dbname=news sslmode=disable", d.DSN())
}

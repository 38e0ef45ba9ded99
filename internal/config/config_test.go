package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	path := writeConfig(t, `
[storage]
driver = "memory"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeoutDuration())
	assert.Equal(t, "info", cfg.Logs.Level)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.Equal(t, DirectoryModeLocal, cfg.PropertyDirectory.Mode)
	assert.Equal(t, -1, cfg.Kafka.RequiredAcks)
	assert.Equal(t, 10*time.Millisecond, cfg.Kafka.BatchTimeout())
	assert.False(t, cfg.Kafka.Enabled)
}

func TestLoad_Full(t *testing.T) {
	path := writeConfig(t, `
[server]
http_port = 9090

[database]
host = "db"
user = "booking"
password = "secret"
dbname = "bookings"

[property_directory]
mode = "remote"
url = "http://catalog:8080"
timeout = 2

[kafka]
enabled = true
brokers = ["kafka-1:9092", "kafka-2:9092"]
topic = "bookings"
required_acks = 1
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, StorageDriverPostgres, cfg.Storage.Driver)
	assert.Equal(t, "host=db port=5432 user=booking password=secret dbname=bookings sslmode=disable", cfg.Database.DSN())
	assert.Equal(t, "http://catalog:8080", cfg.PropertyDirectory.URL)
	assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, cfg.Kafka.Brokers)
	assert.Equal(t, 1, cfg.Kafka.RequiredAcks)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "postgres without database", content: `[storage]
driver = "postgres"`},
		{name: "unknown driver", content: `[storage]
driver = "sqlite"`},
		{name: "remote without url", content: `[storage]
driver = "memory"
[property_directory]
mode = "remote"`},
		{name: "kafka without brokers", content: `[storage]
driver = "memory"
[kafka]
enabled = true`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	assert.Error(t, err)
}

func TestPath(t *testing.T) {
	t.Setenv(EnvConfigPath, "")
	assert.Equal(t, DefaultPath, Path())

	t.Setenv(EnvConfigPath, "/etc/booking/config.toml")
	assert.Equal(t, "/etc/booking/config.toml", Path())
}

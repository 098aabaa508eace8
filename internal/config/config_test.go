package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
[server]
http_port = 9090

[database]
host = "localhost"
port = 5432
user = "waypartner"
password = "secret"
dbname = "booking"

[logs]
file = "logs/app.log"
level = "debug"

[metrics]
enabled = true
service_name = "booking-test"

[whatsapp]
enabled = false

[booking]
auto_register_vehicles = true
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, "debug", cfg.Logs.Level)
	assert.True(t, cfg.Metrics.Enabled)
	assert.True(t, cfg.Booking.AutoRegisterVehicles)
	assert.False(t, cfg.WhatsApp.Enabled)
}

func TestLoad_Defaults(t *testing.T) {
	path := writeConfig(t, `
[database]
host = "localhost"
port = 5432
user = "waypartner"
dbname = "booking"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, 15, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "disable", cfg.Database.SSLMode)
	assert.Equal(t, 25, cfg.Database.MaxOpenConns)
	assert.Equal(t, "info", cfg.Logs.Level)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.False(t, cfg.Booking.AutoRegisterVehicles)
}

func TestLoad_Validation(t *testing.T) {
	t.Run("missing database host", func(t *testing.T) {
		path := writeConfig(t, `
[database]
port = 5432
user = "waypartner"
dbname = "booking"
`)
		_, err := Load(path)
		assert.ErrorIs(t, err, ErrInvalidConfig)
	})

	t.Run("whatsapp enabled without url", func(t *testing.T) {
		path := writeConfig(t, `
[database]
host = "localhost"
port = 5432
user = "waypartner"
dbname = "booking"

[whatsapp]
enabled = true
`)
		_, err := Load(path)
		assert.ErrorIs(t, err, ErrInvalidConfig)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
		assert.Error(t, err)
	})
}

func TestDatabaseConfig_DSN(t *testing.T) {
	cfg := DatabaseConfig{
		Host:     "db.internal",
		Port:     5433,
		User:     "svc",
		Password: "pw",
		DBName:   "booking",
		SSLMode:  "require",
	}

	assert.Equal(t, "host=db.internal port=5433 user=svc password=pw dbname=booking sslmode=require", cfg.DSN())
}

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.AppPort)
	assert.Equal(t, DriverMySQL, cfg.DBDriver)
	assert.Equal(t, 24*time.Hour, cfg.SessionTTL)
	assert.Equal(t, 60*time.Second, cfg.CacheTTL)
	assert.True(t, cfg.AllowAdminSignup)
	assert.Equal(t, 5, cfg.LoginBurst)
}

func TestLoadConfigRequiresSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := LoadConfig()
	assert.Error(t, err)
}

func TestLoadConfigRejectsUnknownDriver(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("DB_DRIVER", "oracle")

	_, err := LoadConfig()
	assert.ErrorContains(t, err, "oracle")
}

func TestMySQLDSN(t *testing.T) {
	cfg := &Config{
		DBUser:     "app",
		DBPassword: "p@ss",
		DBHost:     "db",
		DBPort:     "3306",
		DBName:     "events",
	}

	dsn := cfg.MySQLDSN()
	assert.Contains(t, dsn, "app:p@ss@tcp(db:3306)/events")
	assert.Contains(t, dsn, "parseTime=true")
}

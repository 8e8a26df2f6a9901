package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "alerta-stock", cfg.App.Name)
	assert.Equal(t, "localhost", cfg.DB.Host)
	assert.Equal(t, 5432, cfg.DB.Port)
	assert.Equal(t, "alerta_stock", cfg.DB.DBName)
	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.Equal(t, 10, cfg.Alerts.DefaultThreshold)
	assert.Equal(t, 1, cfg.Alerts.AverageDailySales)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_PORT", "6543")
	t.Setenv("HTTP_PORT", "3000")
	t.Setenv("ALERTS_DEFAULT_THRESHOLD", "7")
	t.Setenv("ALERTS_AVERAGE_DAILY_SALES", "2")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.App.Env)
	assert.Equal(t, "db.internal", cfg.DB.Host)
	assert.Equal(t, 6543, cfg.DB.Port)
	assert.Equal(t, 3000, cfg.HTTP.Port)
	assert.Equal(t, 7, cfg.Alerts.DefaultThreshold)
	assert.Equal(t, 2, cfg.Alerts.AverageDailySales)
}

func TestDBConfig_ConnectionString(t *testing.T) {
	db := DBConfig{
		Host: "localhost", Port: 5432,
		User: "postgres", Password: "p@ss/word",
		DBName: "alerta_stock", SSLMode: "disable",
	}
	dsn := db.ConnectionString()
	assert.Contains(t, dsn, "postgres://")
	assert.Contains(t, dsn, "localhost:5432")
	assert.Contains(t, dsn, "/alerta_stock")
	assert.Contains(t, dsn, "sslmode=disable")
	// La contraseña va URL-encoded.
	assert.NotContains(t, dsn, "p@ss/word")

	db.DatabaseURL = "postgresql://u:p@remoto:5432/otra"
	assert.Equal(t, "postgresql://u:p@remoto:5432/otra", db.ConnectionString())
}

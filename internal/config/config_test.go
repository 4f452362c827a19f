package config_test

import (
	"testing"

	"message-board/internal/config"

	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBool(t *testing.T) {
	for _, value := range []string{"1", "true", "TRUE", "Yes", "y", "on", " On "} {
		assert.True(t, config.ParseBool(value), value)
	}
	for _, value := range []string{"", "0", "false", "no", "off", "enabled", "tru"} {
		assert.False(t, config.ParseBool(value), value)
	}
}

func TestParseDefaults(t *testing.T) {
	cfg, err := config.Parse(map[string]string{})
	require.NoError(t, err)

	assert.Equal(t, 5000, cfg.Port)
	assert.Equal(t, config.MySQLConfig{
		Host:     "localhost",
		Port:     3306,
		User:     "default_user",
		Password: "default_password",
		Database: "default_db",
	}, cfg.MySQL)

	assert.False(t, cfg.APM.Enabled())
	assert.Equal(t, "message-board", cfg.APM.ServiceName)
	assert.Equal(t, "dev", cfg.APM.Environment)
	assert.Equal(t, "", cfg.APM.SecretToken)
	assert.True(t, bool(cfg.APM.VerifyServerCert))
}

func TestParseOverrides(t *testing.T) {
	cfg, err := config.Parse(map[string]string{
		"MYSQL_HOST":                     "db.internal",
		"MYSQL_USER":                     "board",
		"MYSQL_PASSWORD":                 "s3cret",
		"MYSQL_DB":                       "board",
		"ELASTIC_APM_SERVER_URL":         "https://apm.internal:8200",
		"ELASTIC_APM_SERVICE_NAME":       "board-api",
		"ELASTIC_APM_SECRET_TOKEN":       "token",
		"ELASTIC_APM_ENVIRONMENT":        "prod",
		"ELASTIC_APM_VERIFY_SERVER_CERT": "off",
	})
	require.NoError(t, err)

	assert.Equal(t, "db.internal", cfg.MySQL.Host)
	assert.Equal(t, "board", cfg.MySQL.User)
	assert.Equal(t, "s3cret", cfg.MySQL.Password)
	assert.Equal(t, "board", cfg.MySQL.Database)

	assert.True(t, cfg.APM.Enabled())
	assert.Equal(t, "https://apm.internal:8200", cfg.APM.ServerURL)
	assert.Equal(t, "board-api", cfg.APM.ServiceName)
	assert.Equal(t, "token", cfg.APM.SecretToken)
	assert.Equal(t, "prod", cfg.APM.Environment)
	assert.False(t, bool(cfg.APM.VerifyServerCert))
}

func TestParseInvalidPort(t *testing.T) {
	_, err := config.Parse(map[string]string{"MYSQL_PORT": "not-a-port"})
	assert.Error(t, err)
}

func TestDSN(t *testing.T) {
	cfg := config.MySQLConfig{Host: "db", Port: 3307, User: "u", Password: "p@ss", Database: "board"}

	parsed, err := mysql.ParseDSN(cfg.DSN())
	require.NoError(t, err)

	assert.Equal(t, "tcp", parsed.Net)
	assert.Equal(t, "db:3307", parsed.Addr)
	assert.Equal(t, "u", parsed.User)
	assert.Equal(t, "p@ss", parsed.Passwd)
	assert.Equal(t, "board", parsed.DBName)
	assert.True(t, parsed.ParseTime)
}

package config

import (
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/go-sql-driver/mysql"
)

type MySQLConfig struct {
	Host     string `env:"MYSQL_HOST" envDefault:"localhost"`
	Port     int    `env:"MYSQL_PORT" envDefault:"3306"`
	User     string `env:"MYSQL_USER" envDefault:"default_user"`
	Password string `env:"MYSQL_PASSWORD" envDefault:"default_password"`
	Database string `env:"MYSQL_DB" envDefault:"default_db"`
}

// DSN renders the connection string understood by go-sql-driver/mysql.
func (c MySQLConfig) DSN() string {
	cfg := mysql.NewConfig()
	cfg.Net = "tcp"
	cfg.Addr = net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
	cfg.User = c.User
	cfg.Passwd = c.Password
	cfg.DBName = c.Database
	cfg.ParseTime = true
	cfg.Params = map[string]string{"charset": "utf8mb4"}
	return cfg.FormatDSN()
}

// Bool is an env flag that accepts the usual truthy spellings. Anything
// outside the truthy set is false.
type Bool bool

func (b *Bool) UnmarshalText(text []byte) error {
	*b = Bool(ParseBool(string(text)))
	return nil
}

var truthy = map[string]struct{}{
	"1": {}, "true": {}, "yes": {}, "y": {}, "on": {},
}

func ParseBool(value string) bool {
	_, ok := truthy[strings.ToLower(strings.TrimSpace(value))]
	return ok
}

type APMConfig struct {
	ServerURL        string `env:"ELASTIC_APM_SERVER_URL"`
	ServiceName      string `env:"ELASTIC_APM_SERVICE_NAME" envDefault:"message-board"`
	SecretToken      string `env:"ELASTIC_APM_SECRET_TOKEN"`
	Environment      string `env:"ELASTIC_APM_ENVIRONMENT" envDefault:"dev"`
	VerifyServerCert Bool   `env:"ELASTIC_APM_VERIFY_SERVER_CERT" envDefault:"true"`
}

// Enabled reports whether an APM server was configured. Without one the
// telemetry integration is skipped entirely.
func (c APMConfig) Enabled() bool {
	return c.ServerURL != ""
}

type Config struct {
	Port  int `env:"PORT" envDefault:"5000"`
	MySQL MySQLConfig
	APM   APMConfig
}

func Load() (*Config, error) {
	return Parse(env.ToMap(os.Environ()))
}

func Parse(environ map[string]string) (*Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Environment: environ}); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}
	return &cfg, nil
}

package config

import "time"

type DBDriver string

const (
	DriverPostgres DBDriver = "postgres"
	DriverSqlite   DBDriver = "sqlite"
)

type Database struct {
	Driver   DBDriver `mapstructure:"DATABASE_DRIVER" default:"postgres"`
	Host     string   `mapstructure:"DATABASE_HOST" default:"localhost"`
	Port     int      `mapstructure:"DATABASE_PORT" default:"5432"`
	Name     string   `mapstructure:"DATABASE_NAME" default:"tripal_blast"`
	User     string   `mapstructure:"DATABASE_USER" default:"postgres"`
	Password string   `mapstructure:"DATABASE_PASSWORD" default:"tripal"`
}

type Redis struct {
	Host     string `mapstructure:"REDIS_HOST" default:"127.0.0.1"`
	Port     int    `mapstructure:"REDIS_PORT" default:"6379"`
	Password string `mapstructure:"REDIS_PASSWORD"`
	DB       int    `mapstructure:"REDIS_DB" default:"0"`
	// Enabled turns on content-change broadcasting over redis pub/sub.
	Enabled bool `mapstructure:"REDIS_ENABLED" default:"false"`
}

type Server struct {
	Platform string `mapstructure:"PLATFORM" default:"tripal"`
	Service  string `mapstructure:"SERVICE" default:"blast"`
	Port     int    `mapstructure:"WEB_PORT" default:"8080"`
	Env      string `mapstructure:"ENV" default:"dev"`
}

type Auth struct {
	JWTSecret string        `mapstructure:"AUTH_JWT_SECRET" default:"tripal-blast-dev-secret"`
	TokenTTL  time.Duration `mapstructure:"AUTH_TOKEN_TTL" default:"24h"`
}

type Log struct {
	LogPath  string `mapstructure:"LOG_PATH" default:"./info.log"`
	LogLevel string `mapstructure:"LOG_LEVEL" default:"info"`
}

type Trace struct {
	Version        string `mapstructure:"TRACE_VERSION" default:"0.0.1"`
	TraceEndpoint  string `mapstructure:"TRACE_TRACEENDPOINT" default:""`
	MetricEndpoint string `mapstructure:"TRACE_METRICENDPOINT" default:""`
}

type Seed struct {
	// AdminUID is the privileged account fixtures are created as.
	AdminUID int64 `mapstructure:"SEED_ADMIN_UID" default:"1"`
}

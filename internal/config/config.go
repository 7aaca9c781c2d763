package config

import "time"

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Auth      AuthConfig      `yaml:"auth"`
	Analysis  AnalysisConfig  `yaml:"analysis"`
	Log       LogConfig       `yaml:"log"`
	CORS      CORSConfig      `yaml:"cors"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"false"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"60s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
	MaxBodyBytes    int64         `yaml:"max_body_bytes"   env:"SERVER_MAX_BODY_BYTES"   env-default:"10485760"`
}

// DatabaseConfig holds PostgreSQL connection settings. An empty DSN runs the
// server without a database, on the word list from AnalysisConfig.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"10"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"1"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	AutoMigrate     bool          `yaml:"auto_migrate"       env:"DATABASE_AUTO_MIGRATE"       env-default:"true"`
}

// Enabled reports whether a database is configured.
func (c DatabaseConfig) Enabled() bool { return c.DSN != "" }

// AuthConfig holds admin token settings. An empty secret disables the admin
// API.
type AuthConfig struct {
	JWTSecret string        `yaml:"jwt_secret" env:"AUTH_JWT_SECRET"`
	JWTIssuer string        `yaml:"jwt_issuer" env:"AUTH_JWT_ISSUER" env-default:"telugu-word-analysis"`
	TokenTTL  time.Duration `yaml:"token_ttl"  env:"AUTH_TOKEN_TTL"  env-default:"24h"`
}

// Enabled reports whether admin tokens can be issued and verified.
func (c AuthConfig) Enabled() bool { return c.JWTSecret != "" }

// AnalysisConfig holds corpus and statistics settings.
type AnalysisConfig struct {
	Workers        int    `yaml:"workers"          env:"ANALYSIS_WORKERS"          env-default:"0"`
	WordListPath   string `yaml:"word_list_path"   env:"ANALYSIS_WORD_LIST_PATH"`
	WordListFormat string `yaml:"word_list_format" env:"ANALYSIS_WORD_LIST_FORMAT" env-default:"auto"`
	LexiconPath    string `yaml:"lexicon_path"     env:"ANALYSIS_LEXICON_PATH"`
	StatsOutput    string `yaml:"stats_output"     env:"ANALYSIS_STATS_OUTPUT"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// RateLimitConfig holds per-IP limits for expensive endpoints.
type RateLimitConfig struct {
	PatternSearchPerMinute int           `yaml:"pattern_search_per_minute" env:"RATE_LIMIT_PATTERN_SEARCH" env-default:"120"`
	CleanupInterval        time.Duration `yaml:"cleanup_interval"          env:"RATE_LIMIT_CLEANUP_INTERVAL" env-default:"5m"`
}

package config

import (
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Redis     RedisConfig     `yaml:"redis"`
	Auth      AuthConfig      `yaml:"auth"`
	Quiz      QuizConfig      `yaml:"quiz"`
	Results   ResultsConfig   `yaml:"results"`
	Scheduler SchedulerConfig `yaml:"scheduler"`
	Log       LogConfig       `yaml:"log"`
	CORS      CORSConfig      `yaml:"cors"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
	MaxUploadBytes  int64         `yaml:"max_upload_bytes" env:"SERVER_MAX_UPLOAD_BYTES" env-default:"10485760"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	AutoMigrate     bool          `yaml:"auto_migrate"       env:"DATABASE_AUTO_MIGRATE"       env-default:"true"`
}

// RedisConfig holds the cache connection settings.
type RedisConfig struct {
	Addr     string `yaml:"addr"     env:"REDIS_ADDR"     env-default:"localhost:6379"`
	Password string `yaml:"password" env:"REDIS_PASSWORD"`
	DB       int    `yaml:"db"       env:"REDIS_DB"       env-default:"0"`
}

// AuthConfig holds authentication settings.
type AuthConfig struct {
	JWTSecret        string        `yaml:"jwt_secret"         env:"AUTH_JWT_SECRET"          env-required:"true"`
	JWTIssuer        string        `yaml:"jwt_issuer"         env:"AUTH_JWT_ISSUER"          env-default:"quizly"`
	AccessTokenTTL   time.Duration `yaml:"access_token_ttl"   env:"AUTH_ACCESS_TOKEN_TTL"    env-default:"24h"`
	PasswordHashCost int           `yaml:"password_hash_cost" env:"AUTH_PASSWORD_HASH_COST"  env-default:"12"`
}

// QuizConfig holds quiz management settings.
type QuizConfig struct {
	DefaultPageSize int `yaml:"default_page_size" env:"QUIZ_DEFAULT_PAGE_SIZE" env-default:"20"`
	MaxPageSize     int `yaml:"max_page_size"     env:"QUIZ_MAX_PAGE_SIZE"     env-default:"100"`
	MaxImportRows   int `yaml:"max_import_rows"   env:"QUIZ_MAX_IMPORT_ROWS"   env-default:"5000"`
}

// ResultsConfig holds result storage settings.
type ResultsConfig struct {
	DetailTTL time.Duration `yaml:"detail_ttl" env:"RESULTS_DETAIL_TTL" env-default:"48h"`
}

// SchedulerConfig holds background job settings.
type SchedulerConfig struct {
	Enabled          bool          `yaml:"enabled"            env:"SCHEDULER_ENABLED"            env-default:"true"`
	QuizReminderSpec string        `yaml:"quiz_reminder_spec" env:"SCHEDULER_QUIZ_REMINDER_SPEC" env-default:"0 0 * * *"`
	JobTimeout       time.Duration `yaml:"job_timeout"        env:"SCHEDULER_JOB_TIMEOUT"        env-default:"5m"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// RateLimitConfig holds the per-IP limit on the auth endpoints. Counters
// live in Redis so the limit holds across instances.
type RateLimitConfig struct {
	Enabled       bool   `yaml:"enabled"         env:"RATE_LIMIT_ENABLED"         env-default:"true"`
	AuthPerMinute int64  `yaml:"auth_per_minute" env:"RATE_LIMIT_AUTH_PER_MINUTE" env-default:"10"`
	Prefix        string `yaml:"prefix"          env:"RATE_LIMIT_PREFIX"          env-default:"quizly:ratelimit"`
}

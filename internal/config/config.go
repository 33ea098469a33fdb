package config

import "time"

// Config is the root application configuration.
type Config struct {
	Server      ServerConfig      `yaml:"server"`
	Database    DatabaseConfig    `yaml:"database"`
	Auth        AuthConfig        `yaml:"auth"`
	Translation TranslationConfig `yaml:"translation"`
	Cache       CacheConfig       `yaml:"cache"`
	Ballot      BallotConfig      `yaml:"ballot"`
	Log         LogConfig         `yaml:"log"`
	CORS        CORSConfig        `yaml:"cors"`
	RateLimit   RateLimitConfig   `yaml:"rate_limit"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	MigrateOnStart  bool          `yaml:"migrate_on_start"   env:"DATABASE_MIGRATE_ON_START"   env-default:"true"`
}

// AuthConfig holds JWT settings for the candidate edit surface.
type AuthConfig struct {
	JWTSecret string        `yaml:"jwt_secret" env:"AUTH_JWT_SECRET" env-required:"true"`
	JWTIssuer string        `yaml:"jwt_issuer" env:"AUTH_JWT_ISSUER" env-default:"electnepal"`
	TokenTTL  time.Duration `yaml:"token_ttl"  env:"AUTH_TOKEN_TTL"  env-default:"24h"`
}

// TranslationConfig holds machine-translation pipeline settings.
type TranslationConfig struct {
	Engine      string        `yaml:"engine"       env:"TRANSLATION_ENGINE"       env-default:"google"`
	BaseURL     string        `yaml:"base_url"     env:"TRANSLATION_BASE_URL"     env-default:"https://translation.googleapis.com/language/translate/v2"`
	APIKey      string        `yaml:"api_key"      env:"TRANSLATION_API_KEY"`
	SourceLang  string        `yaml:"source_lang"  env:"TRANSLATION_SOURCE_LANG"  env-default:"en"`
	TargetLang  string        `yaml:"target_lang"  env:"TRANSLATION_TARGET_LANG"  env-default:"ne"`
	Timeout     time.Duration `yaml:"timeout"      env:"TRANSLATION_TIMEOUT"      env-default:"15s"`
	WorkTimeout time.Duration `yaml:"work_timeout" env:"TRANSLATION_WORK_TIMEOUT" env-default:"30s"`
	Workers     int           `yaml:"workers"      env:"TRANSLATION_WORKERS"      env-default:"8"`
}

// CacheConfig holds translation-cache settings. With an empty RedisURL the
// in-process store is used.
type CacheConfig struct {
	RedisURL  string        `yaml:"redis_url"  env:"CACHE_REDIS_URL"`
	KeyPrefix string        `yaml:"key_prefix" env:"CACHE_KEY_PREFIX" env-default:"electnepal:mt:"`
	TTL       time.Duration `yaml:"ttl"        env:"CACHE_TTL"        env-default:"504h"`
}

// BallotConfig holds ballot query settings.
type BallotConfig struct {
	PageSize    int `yaml:"page_size"     env:"BALLOT_PAGE_SIZE"     env-default:"20"`
	MaxPageSize int `yaml:"max_page_size" env:"BALLOT_MAX_PAGE_SIZE" env-default:"100"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PUT,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// RateLimitConfig holds per-IP rate limiting settings.
type RateLimitConfig struct {
	RequestsPerMinute int           `yaml:"requests_per_minute" env:"RATE_LIMIT_RPM"              env-default:"120"`
	CleanupInterval   time.Duration `yaml:"cleanup_interval"    env:"RATE_LIMIT_CLEANUP_INTERVAL" env-default:"5m"`
}

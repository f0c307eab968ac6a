package config

import "time"

// Config is the root application configuration, shared by the listener and
// the worker.
type Config struct {
	Telegram TelegramConfig `yaml:"telegram"`
	Catalog  CatalogConfig  `yaml:"catalog"`
	Database DatabaseConfig `yaml:"database"`
	Queue    QueueConfig    `yaml:"queue"`
	Bot      BotConfig      `yaml:"bot"`
	Log      LogConfig      `yaml:"log"`
}

// TelegramConfig holds Bot API credentials and long-poll settings.
type TelegramConfig struct {
	Token       string        `yaml:"token"        env:"TELEGRAM_TOKEN"        env-required:"true"`
	BotName     string        `yaml:"bot_name"     env:"TELEGRAM_BOT_NAME"     env-default:"boozybot"`
	PollTimeout time.Duration `yaml:"poll_timeout" env:"TELEGRAM_POLL_TIMEOUT" env-default:"10s"`
	PollLimit   int           `yaml:"poll_limit"   env:"TELEGRAM_POLL_LIMIT"   env-default:"100"`
}

// CatalogConfig holds drink catalog API settings.
type CatalogConfig struct {
	Key     string        `yaml:"key"      env:"CATALOG_KEY"      env-required:"true"`
	BaseURL string        `yaml:"base_url" env:"CATALOG_BASE_URL" env-default:"https://addb.absolutdrinks.com"`
	Timeout time.Duration `yaml:"timeout"  env:"CATALOG_TIMEOUT"  env-default:"10s"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"10"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"2"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// QueueConfig holds Redis queue settings: delivery is at-least-once, retries
// are bounded with exponential backoff, exhausted jobs go to the dead list.
type QueueConfig struct {
	RedisAddr    string        `yaml:"redis_addr"    env:"QUEUE_REDIS_ADDR"    env-default:"localhost:6379"`
	RedisDB      int           `yaml:"redis_db"      env:"QUEUE_REDIS_DB"      env-default:"0"`
	Name         string        `yaml:"name"          env:"QUEUE_NAME"          env-default:"updates"`
	Concurrency  int           `yaml:"concurrency"   env:"QUEUE_CONCURRENCY"   env-default:"4"`
	MaxAttempts  int           `yaml:"max_attempts"  env:"QUEUE_MAX_ATTEMPTS"  env-default:"5"`
	RetryBackoff time.Duration `yaml:"retry_backoff" env:"QUEUE_RETRY_BACKOFF" env-default:"2s"`
	JobTimeout   time.Duration `yaml:"job_timeout"   env:"QUEUE_JOB_TIMEOUT"   env-default:"30s"`
}

// BotConfig holds recommendation behavior settings.
type BotConfig struct {
	// MaxIngredients caps how many ingredients a single chat may register.
	MaxIngredients int `yaml:"max_ingredients" env:"BOT_MAX_INGREDIENTS" env-default:"10"`

	// PageSize is how many drinks a /search or /next delivers at once;
	// the overflow stays in the result cache.
	PageSize int `yaml:"page_size" env:"BOT_PAGE_SIZE" env-default:"2"`

	// InlinePageSize is the per-sequence page size of incremental search.
	InlinePageSize int `yaml:"inline_page_size" env:"BOT_INLINE_PAGE_SIZE" env-default:"10"`

	// Tolerance is how many significant ingredients a recommended drink
	// may still be missing.
	Tolerance int `yaml:"tolerance" env:"BOT_TOLERANCE" env-default:"1"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

package config

import (
	"testing"
	"time"
)

// setRequiredEnv sets the env vars without which Load fails.
func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("TELEGRAM_TOKEN", "123:abc")
	t.Setenv("CATALOG_KEY", "test-key")
	t.Setenv("DATABASE_DSN", "postgres://localhost:5432/boozy")
	t.Setenv("CONFIG_PATH", "")
}

func TestLoad_DefaultsFromEnvOnly(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Telegram.PollTimeout != 10*time.Second {
		t.Errorf("poll_timeout = %v, want 10s", cfg.Telegram.PollTimeout)
	}
	if cfg.Catalog.BaseURL != "https://addb.absolutdrinks.com" {
		t.Errorf("catalog base_url = %q", cfg.Catalog.BaseURL)
	}
	if cfg.Queue.MaxAttempts != 5 {
		t.Errorf("queue max_attempts = %d, want 5", cfg.Queue.MaxAttempts)
	}
	if cfg.Bot.MaxIngredients != 10 {
		t.Errorf("bot max_ingredients = %d, want 10", cfg.Bot.MaxIngredients)
	}
	if cfg.Bot.PageSize != 2 {
		t.Errorf("bot page_size = %d, want 2", cfg.Bot.PageSize)
	}
	if cfg.Log.Level != "info" || cfg.Log.Format != "json" {
		t.Errorf("log defaults = %q/%q, want info/json", cfg.Log.Level, cfg.Log.Format)
	}
}

func TestLoad_MissingRequired(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("TELEGRAM_TOKEN", "")

	if _, err := Load(); err == nil {
		t.Fatal("Load() succeeded without TELEGRAM_TOKEN")
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	valid := func() Config {
		return Config{
			Telegram: TelegramConfig{Token: "t", PollTimeout: 10 * time.Second, PollLimit: 100},
			Queue: QueueConfig{
				Name:         "updates",
				Concurrency:  4,
				MaxAttempts:  5,
				RetryBackoff: 2 * time.Second,
				JobTimeout:   30 * time.Second,
			},
			Bot: BotConfig{MaxIngredients: 10, PageSize: 2, InlinePageSize: 10, Tolerance: 1},
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid", func(c *Config) {}, false},
		{"zero tolerance is allowed", func(c *Config) { c.Bot.Tolerance = 0 }, false},
		{"poll limit above telegram max", func(c *Config) { c.Telegram.PollLimit = 150 }, true},
		{"empty queue name", func(c *Config) { c.Queue.Name = "" }, true},
		{"zero max attempts", func(c *Config) { c.Queue.MaxAttempts = 0 }, true},
		{"negative backoff", func(c *Config) { c.Queue.RetryBackoff = -time.Second }, true},
		{"zero page size", func(c *Config) { c.Bot.PageSize = 0 }, true},
		{"oversized inline page", func(c *Config) { c.Bot.InlinePageSize = 51 }, true},
		{"negative tolerance", func(c *Config) { c.Bot.Tolerance = -1 }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := valid()
			tt.mutate(&cfg)
			if err := cfg.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

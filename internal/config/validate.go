package config

import "fmt"

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.Telegram.PollTimeout <= 0 {
		return fmt.Errorf("telegram.poll_timeout must be > 0 (got %v)", c.Telegram.PollTimeout)
	}
	if c.Telegram.PollLimit <= 0 || c.Telegram.PollLimit > 100 {
		return fmt.Errorf("telegram.poll_limit must be in 1..100 (got %d)", c.Telegram.PollLimit)
	}

	if err := c.Queue.validate(); err != nil {
		return fmt.Errorf("queue: %w", err)
	}
	if err := c.Bot.validate(); err != nil {
		return fmt.Errorf("bot: %w", err)
	}

	return nil
}

func (q *QueueConfig) validate() error {
	if q.Name == "" {
		return fmt.Errorf("name must not be empty")
	}
	if q.Concurrency <= 0 {
		return fmt.Errorf("concurrency must be > 0 (got %d)", q.Concurrency)
	}
	if q.MaxAttempts <= 0 {
		return fmt.Errorf("max_attempts must be > 0 (got %d)", q.MaxAttempts)
	}
	if q.RetryBackoff <= 0 {
		return fmt.Errorf("retry_backoff must be > 0 (got %v)", q.RetryBackoff)
	}
	if q.JobTimeout <= 0 {
		return fmt.Errorf("job_timeout must be > 0 (got %v)", q.JobTimeout)
	}
	return nil
}

func (b *BotConfig) validate() error {
	if b.MaxIngredients <= 0 {
		return fmt.Errorf("max_ingredients must be > 0 (got %d)", b.MaxIngredients)
	}
	if b.PageSize <= 0 {
		return fmt.Errorf("page_size must be > 0 (got %d)", b.PageSize)
	}
	if b.InlinePageSize <= 0 || b.InlinePageSize > 50 {
		return fmt.Errorf("inline_page_size must be in 1..50 (got %d)", b.InlinePageSize)
	}
	if b.Tolerance < 0 {
		return fmt.Errorf("tolerance must be >= 0 (got %d)", b.Tolerance)
	}
	return nil
}

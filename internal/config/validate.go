package config

import (
	"fmt"

	"github.com/robfig/cron/v3"
	"golang.org/x/crypto/bcrypt"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}
	if c.Auth.PasswordHashCost < bcrypt.MinCost || c.Auth.PasswordHashCost > bcrypt.MaxCost {
		return fmt.Errorf("auth.password_hash_cost must be in [%d, %d] (got %d)",
			bcrypt.MinCost, bcrypt.MaxCost, c.Auth.PasswordHashCost)
	}

	if c.Results.DetailTTL <= 0 {
		return fmt.Errorf("results.detail_ttl must be > 0 (got %s)", c.Results.DetailTTL)
	}

	if err := c.Quiz.validate(); err != nil {
		return fmt.Errorf("quiz: %w", err)
	}

	if c.RateLimit.Enabled && c.RateLimit.AuthPerMinute <= 0 {
		return fmt.Errorf("rate_limit.auth_per_minute must be > 0 (got %d)", c.RateLimit.AuthPerMinute)
	}

	if c.Scheduler.Enabled {
		if _, err := cron.ParseStandard(c.Scheduler.QuizReminderSpec); err != nil {
			return fmt.Errorf("scheduler.quiz_reminder_spec: %w", err)
		}
		if c.Scheduler.JobTimeout <= 0 {
			return fmt.Errorf("scheduler.job_timeout must be > 0 (got %s)", c.Scheduler.JobTimeout)
		}
	}

	return nil
}

func (q QuizConfig) validate() error {
	if q.DefaultPageSize <= 0 {
		return fmt.Errorf("default_page_size must be > 0 (got %d)", q.DefaultPageSize)
	}
	if q.MaxPageSize < q.DefaultPageSize {
		return fmt.Errorf("max_page_size must be >= default_page_size (got %d < %d)", q.MaxPageSize, q.DefaultPageSize)
	}
	if q.MaxImportRows <= 0 {
		return fmt.Errorf("max_import_rows must be > 0 (got %d)", q.MaxImportRows)
	}
	return nil
}

// Addr returns host:port for the HTTP listener.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

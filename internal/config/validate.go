package config

import (
	"fmt"
	"slices"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port)
	}

	if c.Auth.Enabled() && len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if c.Database.Enabled() && c.Database.MinConns > c.Database.MaxConns {
		return fmt.Errorf("database.min_conns (%d) must not exceed max_conns (%d)",
			c.Database.MinConns, c.Database.MaxConns)
	}

	if err := c.Analysis.validate(); err != nil {
		return fmt.Errorf("analysis: %w", err)
	}

	if c.RateLimit.PatternSearchPerMinute <= 0 {
		return fmt.Errorf("rate_limit.pattern_search_per_minute must be > 0 (got %d)", c.RateLimit.PatternSearchPerMinute)
	}

	return nil
}

// WordListFormats lists the accepted analysis.word_list_format values.
var WordListFormats = []string{"auto", "js", "text", "csv", "json"}

func (a *AnalysisConfig) validate() error {
	if a.Workers < 0 {
		return fmt.Errorf("workers must be >= 0 (got %d)", a.Workers)
	}

	a.WordListFormat = strings.ToLower(strings.TrimSpace(a.WordListFormat))
	if a.WordListFormat == "" {
		a.WordListFormat = "auto"
	}
	if !slices.Contains(WordListFormats, a.WordListFormat) {
		return fmt.Errorf("word_list_format must be one of %s (got %q)",
			strings.Join(WordListFormats, ", "), a.WordListFormat)
	}

	return nil
}

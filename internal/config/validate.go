package config

import "fmt"

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if err := c.Translation.validate(); err != nil {
		return fmt.Errorf("translation: %w", err)
	}

	if c.Cache.TTL < 0 {
		return fmt.Errorf("cache.ttl must be >= 0 (got %v)", c.Cache.TTL)
	}

	if c.Ballot.PageSize <= 0 {
		return fmt.Errorf("ballot.page_size must be > 0 (got %d)", c.Ballot.PageSize)
	}
	if c.Ballot.MaxPageSize < c.Ballot.PageSize {
		return fmt.Errorf("ballot.max_page_size must be >= page_size (got %d < %d)",
			c.Ballot.MaxPageSize, c.Ballot.PageSize)
	}

	return nil
}

func (t *TranslationConfig) validate() error {
	if t.BaseURL == "" {
		return fmt.Errorf("base_url is required")
	}
	if t.SourceLang == "" || t.TargetLang == "" {
		return fmt.Errorf("source_lang and target_lang are required")
	}
	if t.SourceLang == t.TargetLang {
		return fmt.Errorf("source_lang and target_lang must differ (both %q)", t.SourceLang)
	}
	if t.Workers <= 0 {
		return fmt.Errorf("workers must be > 0 (got %d)", t.Workers)
	}
	if t.Timeout <= 0 {
		return fmt.Errorf("timeout must be > 0 (got %v)", t.Timeout)
	}
	return nil
}

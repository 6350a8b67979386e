package config

import (
	"fmt"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if err := c.Glossary.validate(); err != nil {
		return fmt.Errorf("glossary: %w", err)
	}

	return nil
}

func (g *GlossaryConfig) validate() error {
	if g.MinApprovals < 1 {
		return fmt.Errorf("min_approvals must be >= 1 (got %d)", g.MinApprovals)
	}
	if g.MaxContentLength <= 0 {
		return fmt.Errorf("max_content_length must be > 0 (got %d)", g.MaxContentLength)
	}
	if g.MaxCommentLength <= 0 {
		return fmt.Errorf("max_comment_length must be > 0 (got %d)", g.MaxCommentLength)
	}
	if g.MaxReviewersPerRequest <= 0 {
		return fmt.Errorf("max_reviewers_per_request must be > 0 (got %d)", g.MaxReviewersPerRequest)
	}
	return nil
}

package domain

import (
	"fmt"
	"time"
)

// ReviewConfig is the per-role configuration read from .rolelens.yaml.
// The expected-directories catalog is intentionally not configurable.
type ReviewConfig struct {
	Lint LintConfig `yaml:"lint" json:"lint"`
	Skip SkipConfig `yaml:"skip" json:"skip"`
}

// LintConfig controls how the external linter is invoked.
type LintConfig struct {
	Binary         string `yaml:"binary" json:"binary"`
	TimeoutSeconds int    `yaml:"timeout_seconds" json:"timeout_seconds"`
}

// SkipConfig suppresses selected recommendation types.
type SkipConfig struct {
	Recommendations []string `yaml:"recommendations" json:"recommendations,omitempty"`
}

const (
	DefaultLintBinary     = "ansible-lint"
	DefaultLintTimeoutSec = 60
)

func DefaultConfig() ReviewConfig {
	return ReviewConfig{
		Lint: LintConfig{
			Binary:         DefaultLintBinary,
			TimeoutSeconds: DefaultLintTimeoutSec,
		},
	}
}

// Validate catches typos in user-supplied config before it is applied.
func (c ReviewConfig) Validate() error {
	if c.Lint.TimeoutSeconds < 0 {
		return fmt.Errorf("lint.timeout_seconds must not be negative, got %d", c.Lint.TimeoutSeconds)
	}
	known := make(map[string]bool, len(RecommendationTypes))
	for _, t := range RecommendationTypes {
		known[t] = true
	}
	for _, t := range c.Skip.Recommendations {
		if !known[t] {
			return fmt.Errorf("unknown recommendation type %q in skip.recommendations", t)
		}
	}
	return nil
}

// Timeout returns the lint time budget, falling back to the default when
// unset.
func (c LintConfig) Timeout() time.Duration {
	secs := c.TimeoutSeconds
	if secs == 0 {
		secs = DefaultLintTimeoutSec
	}
	return time.Duration(secs) * time.Second
}

// BinaryOrDefault returns the configured linter binary name.
func (c LintConfig) BinaryOrDefault() string {
	if c.Binary == "" {
		return DefaultLintBinary
	}
	return c.Binary
}

// SkipsRecommendation reports whether recommendations of type t are
// suppressed.
func (c SkipConfig) SkipsRecommendation(t string) bool {
	for _, s := range c.Recommendations {
		if s == t {
			return true
		}
	}
	return false
}

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rolelens/rolelens/internal/domain"
	"gopkg.in/yaml.v3"
)

const fileName = ".rolelens.yaml"

// YAMLLoader implements domain.ConfigLoader by reading .rolelens.yaml from
// the role directory.
type YAMLLoader struct{}

// New creates a YAMLLoader.
func New() *YAMLLoader { return &YAMLLoader{} }

// Load reads .rolelens.yaml from rolePath.
// Returns DefaultConfig if the file does not exist.
func (l *YAMLLoader) Load(rolePath string) (domain.ReviewConfig, error) {
	data, err := os.ReadFile(filepath.Join(rolePath, fileName))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domain.DefaultConfig(), nil
		}
		return domain.ReviewConfig{}, err
	}

	cfg := domain.DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return domain.ReviewConfig{}, fmt.Errorf("parsing %s: %w", fileName, err)
	}

	if err := cfg.Validate(); err != nil {
		return domain.ReviewConfig{}, fmt.Errorf("invalid %s: %w", fileName, err)
	}

	return cfg, nil
}

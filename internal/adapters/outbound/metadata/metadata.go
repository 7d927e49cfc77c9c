package metadata

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rolelens/rolelens/internal/domain"
	"gopkg.in/yaml.v3"
)

// YAMLLoader implements domain.MetadataLoader by parsing meta/main.yml.
type YAMLLoader struct{}

func New() *YAMLLoader { return &YAMLLoader{} }

// metaMain mirrors the Galaxy metadata file layout.
type metaMain struct {
	GalaxyInfo struct {
		Author            string `yaml:"author"`
		Description       string `yaml:"description"`
		License           string `yaml:"license"`
		// Often written unquoted in the wild, so it may parse as a
		// float rather than a string.
		MinAnsibleVersion any `yaml:"min_ansible_version"`
	} `yaml:"galaxy_info"`
	Dependencies []any `yaml:"dependencies"`
}

// Load parses meta/main.yml under rolePath. Absent or malformed metadata
// yields nil; the structure report stays valid either way.
func (l *YAMLLoader) Load(rolePath string) *domain.RoleMetadata {
	data, err := os.ReadFile(filepath.Join(rolePath, "meta", "main.yml"))
	if err != nil {
		return nil
	}

	var meta metaMain
	if err := yaml.Unmarshal(data, &meta); err != nil {
		return nil
	}

	minVersion := ""
	if meta.GalaxyInfo.MinAnsibleVersion != nil {
		minVersion = fmt.Sprint(meta.GalaxyInfo.MinAnsibleVersion)
	}

	return &domain.RoleMetadata{
		Author:            meta.GalaxyInfo.Author,
		Description:       meta.GalaxyInfo.Description,
		License:           meta.GalaxyInfo.License,
		MinAnsibleVersion: minVersion,
		DependencyCount:   len(meta.Dependencies),
	}
}

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/pepcheck/pepcheck/internal/domain"
)

const fileName = ".pepcheck.yaml"

// YAMLLoader implements domain.ConfigLoader by reading .pepcheck.yaml.
type YAMLLoader struct{}

// New creates a YAMLLoader.
func New() *YAMLLoader { return &YAMLLoader{} }

// Load reads .pepcheck.yaml from projectPath. A missing file yields the
// defaults; fields the file omits keep their default values.
func (l *YAMLLoader) Load(projectPath string) (domain.CheckConfig, error) {
	data, err := os.ReadFile(filepath.Join(projectPath, fileName))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domain.DefaultConfig(), nil
		}
		return domain.CheckConfig{}, err
	}

	cfg := domain.DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return domain.CheckConfig{}, fmt.Errorf("parsing %s: %w", fileName, err)
	}

	// Validate eagerly so a typo fails the run before any file is read.
	if err := cfg.Validate(); err != nil {
		return domain.CheckConfig{}, fmt.Errorf("invalid %s: %w", fileName, err)
	}

	return cfg, nil
}

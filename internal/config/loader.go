package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Load reads and parses the configuration file. A missing file yields the
// defaults so the tool works without any setup.
func Load(path string) (*Config, error) {
	expandedPath, err := expandPath(path)
	if err != nil {
		return nil, fmt.Errorf("failed to expand config path: %w", err)
	}

	cfg := Default()

	data, err := os.ReadFile(expandedPath)
	if err != nil {
		if os.IsNotExist(err) {
			if err := cfg.expandPaths(); err != nil {
				return nil, err
			}
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.expandPaths(); err != nil {
		return nil, fmt.Errorf("failed to expand paths: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// expandPath expands ~ to home directory
func expandPath(path string) (string, error) {
	if !strings.HasPrefix(path, "~") {
		return path, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(home, path[1:]), nil
}

// expandPaths expands ~ in all path fields
func (c *Config) expandPaths() error {
	var err error

	c.Database.Path, err = expandPath(c.Database.Path)
	if err != nil {
		return err
	}

	return nil
}

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	var errs []error

	if c.Database.Path == "" {
		errs = append(errs, errors.New("database.path is required"))
	}

	if c.Report.Title == "" {
		errs = append(errs, errors.New("report.title is required"))
	}
	if c.Report.TopN < 1 {
		errs = append(errs, errors.New("report.top_n must be at least 1"))
	}
	if !c.Report.TopNAllowed(c.Report.TopN) {
		errs = append(errs, fmt.Errorf("report.top_n %d is not in report.top_n_choices", c.Report.TopN))
	}
	if c.Report.MinScore < 0 || c.Report.MinScore > 100 {
		errs = append(errs, errors.New("report.min_score must be between 0 and 100"))
	}
	for _, choice := range c.Report.TopNChoices {
		if choice < 1 {
			errs = append(errs, fmt.Errorf("report.top_n_choices entry %d must be positive", choice))
		}
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	return nil
}

// EnsureDirectories creates necessary directories for the database
func (c *Config) EnsureDirectories() error {
	dir := filepath.Dir(c.Database.Path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}
	return nil
}

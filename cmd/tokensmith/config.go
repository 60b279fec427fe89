package main

import (
	"os"

	"gopkg.in/yaml.v3"
)

// ProjectConfig holds the contents of .tokensmith/config.yaml.
type ProjectConfig struct {
	Version     string `yaml:"version"`
	CatalogPath string `yaml:"catalog_path"`
	LogFile     string `yaml:"log_file"`
}

// loadProjectConfig reads .tokensmith/config.yaml from the current directory.
// Returns nil (no error) if the file does not exist.
func loadProjectConfig() (*ProjectConfig, error) {
	data, err := os.ReadFile(".tokensmith/config.yaml")
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var cfg ProjectConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// resolveCatalogPath returns the catalog path to use, applying the fallback chain:
//  1. Explicit --catalog flag value (non-empty override)
//  2. catalog_path from .tokensmith/config.yaml
//  3. "" — the caller auto-discovers, then falls back to the embedded catalog
func resolveCatalogPath(flagValue string, cfg *ProjectConfig) string {
	if flagValue != "" {
		return flagValue
	}
	if cfg != nil && cfg.CatalogPath != "" {
		return cfg.CatalogPath
	}
	return ""
}

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const configFileName = ".precheck.yaml"

func defaultConfig() *Config {
	return &Config{
		Todos: TodosConfig{
			Markers:    []string{"TODO"},
			Extensions: []string{".py", ".js"},
		},
	}
}

// loadConfig reads .precheck.yaml from the work tree root if present,
// falling back to defaults when the file is missing or the current
// directory is not inside a repository
func loadConfig() (*Config, error) {
	cfg := defaultConfig()

	dir := "."
	if root, err := workTreeRoot(); err == nil && root != "" {
		dir = root
	}

	data, err := os.ReadFile(filepath.Join(dir, configFileName))
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading %s: %w", configFileName, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", configFileName, err)
	}

	if len(cfg.Todos.Markers) == 0 {
		cfg.Todos.Markers = defaultConfig().Todos.Markers
	}
	if len(cfg.Todos.Extensions) == 0 {
		cfg.Todos.Extensions = defaultConfig().Todos.Extensions
	}

	return cfg, nil
}

// pathspecs converts the configured extensions into git pathspec globs
func (c TodosConfig) pathspecs() []string {
	specs := make([]string, 0, len(c.Extensions))
	for _, ext := range c.Extensions {
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		specs = append(specs, "*"+ext)
	}
	return specs
}

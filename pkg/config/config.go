// Package config reads and writes the solver defaults file.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/vertexlab/vertex/pkg/api/vertex"
	"github.com/vertexlab/vertex/pkg/mvc"
	"sigs.k8s.io/yaml"
)

const DefaultFile = "vertex.yaml"

func Default() *vertex.Config {
	return &vertex.Config{
		Bounds: []string{"degree", "clique"},
	}
}

// Load reads the config file at path. Fields missing from the file keep
// their default values.
func Load(path string) (*vertex.Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := Default()
	if err := yaml.UnmarshalStrict(raw, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if _, err := Options(cfg); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Options turns a config into search options.
func Options(cfg *vertex.Config) (mvc.Options, error) {
	opts := mvc.DefaultOptions()
	if cfg.Bounds != nil {
		b, ok := mvc.ParseBounds(cfg.Bounds)
		if !ok {
			return opts, fmt.Errorf("unknown bound in %v", cfg.Bounds)
		}
		opts.Bounds = b
	}
	if cfg.TimeLimit != "" {
		d, err := time.ParseDuration(cfg.TimeLimit)
		if err != nil {
			return opts, fmt.Errorf("failed to parse time limit: %w", err)
		}
		if d < 0 {
			return opts, fmt.Errorf("negative time limit %s", d)
		}
		opts.TimeLimit = d
	}
	if cfg.NodeLimit < 0 {
		return opts, fmt.Errorf("negative node limit %d", cfg.NodeLimit)
	}
	opts.NodeLimit = cfg.NodeLimit
	return opts, nil
}

// Init writes a config file with default values.
type Init struct {
	File     string
	GraphDir string
	Store    string
}

func (i *Init) Init() error {
	_, err := os.Stat(i.File)
	if !os.IsNotExist(err) {
		return fmt.Errorf("config file %s already exists", i.File)
	}
	cfg := Default()
	cfg.GraphDir = i.GraphDir
	cfg.Store = i.Store
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(i.File, data, 0o640)
}

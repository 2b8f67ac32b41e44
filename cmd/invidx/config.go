package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// config carries CLI defaults; flags override every field.
type config struct {
	Dataset string `yaml:"dataset"`
	Index   string `yaml:"index"`
	Codec   string `yaml:"codec"`
	TopN    int    `yaml:"top_n"`
}

func defaultConfig() config {
	return config{
		Index: "inverted.index",
		Codec: "binary",
		TopN:  10,
	}
}

func loadConfig(path string) (config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	if cfg.TopN <= 0 {
		return cfg, fmt.Errorf("%s: top_n must be positive, got %d", path, cfg.TopN)
	}
	return cfg, nil
}

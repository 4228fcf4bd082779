package main

import (
	"fmt"
	"os"
	"runtime"

	"gopkg.in/yaml.v3"
)

// generatorConfig holds all run parameters
type generatorConfig struct {
	MinDim         int    `yaml:"min_dim"`
	MaxDim         int    `yaml:"max_dim"`
	Games          int    `yaml:"games"`
	MovesBeforeEnd int    `yaml:"moves_before_end"`
	Workers        int    `yaml:"workers"`
	DataDir        string `yaml:"data_dir"`
	MetaDir        string `yaml:"metadata_dir"`
	Gzip           bool   `yaml:"gzip"`
	Seed           int64  `yaml:"seed"` // 0 means time-based
}

func defaultConfig() generatorConfig {
	return generatorConfig{
		MinDim:  3,
		MaxDim:  7,
		Games:   10000,
		Workers: runtime.NumCPU(),
		DataDir: "data",
		MetaDir: "metadata",
	}
}

// loadConfig reads run parameters from a YAML file, applying defaults for
// anything left unset
func loadConfig(path string) (generatorConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return generatorConfig{}, fmt.Errorf("failed to read config file: %w", err)
	}
	cfg := generatorConfig{}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return generatorConfig{}, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Fill defaults for unset fields
	def := defaultConfig()
	if cfg.MinDim == 0 {
		cfg.MinDim = def.MinDim
	}
	if cfg.MaxDim == 0 {
		cfg.MaxDim = def.MaxDim
	}
	if cfg.Games == 0 {
		cfg.Games = def.Games
	}
	if cfg.Workers == 0 {
		cfg.Workers = def.Workers
	}
	if cfg.DataDir == "" {
		cfg.DataDir = def.DataDir
	}
	if cfg.MetaDir == "" {
		cfg.MetaDir = def.MetaDir
	}
	return cfg, nil
}

func (cfg generatorConfig) check() error {
	if cfg.MinDim < 1 {
		return fmt.Errorf("board dimension must be at least 1")
	}
	if cfg.MaxDim < cfg.MinDim {
		return fmt.Errorf("max dimension %d below min dimension %d", cfg.MaxDim, cfg.MinDim)
	}
	if cfg.Games < 1 {
		return fmt.Errorf("games per dimension must be at least 1")
	}
	if cfg.MovesBeforeEnd < 0 {
		return fmt.Errorf("moves before end must not be negative")
	}
	if cfg.Workers < 1 {
		return fmt.Errorf("workers must be at least 1")
	}
	return nil
}

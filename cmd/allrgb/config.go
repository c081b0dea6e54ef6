package main

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

// runConfig is the resolved configuration of one invocation.
type runConfig struct {
	Rows     int
	Cols     int
	Output   string
	Seed     int64
	SeedSet  bool
	Order    string
	Symmetry string
	Check    bool
	Verify   string
	LogLevel string
}

func defaultRunConfig() runConfig {
	return runConfig{
		Rows:     4096,
		Cols:     4096,
		Output:   "allrgb.png",
		Order:    "sdfs",
		Symmetry: "random",
		LogLevel: "info",
	}
}

type fileConfig struct {
	Rows     int    `toml:"rows"`
	Cols     int    `toml:"cols"`
	Output   string `toml:"output"`
	Seed     int64  `toml:"seed"`
	Order    string `toml:"order"`
	Symmetry string `toml:"symmetry"`
	Check    bool   `toml:"check"`
	LogLevel string `toml:"log_level"`
}

// loadRunConfig overlays the keys present in the TOML file at path onto cfg.
func loadRunConfig(path string, cfg runConfig) (runConfig, error) {
	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return runConfig{}, fmt.Errorf("load allrgb config: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return runConfig{}, fmt.Errorf("load allrgb config: unknown key %q", undecoded[0].String())
	}

	if meta.IsDefined("rows") {
		cfg.Rows = raw.Rows
	}
	if meta.IsDefined("cols") {
		cfg.Cols = raw.Cols
	}
	if meta.IsDefined("output") {
		cfg.Output = strings.TrimSpace(raw.Output)
	}
	if meta.IsDefined("seed") {
		cfg.Seed = raw.Seed
		cfg.SeedSet = true
	}
	if meta.IsDefined("order") {
		cfg.Order = strings.TrimSpace(raw.Order)
	}
	if meta.IsDefined("symmetry") {
		cfg.Symmetry = strings.TrimSpace(raw.Symmetry)
	}
	if meta.IsDefined("check") {
		cfg.Check = raw.Check
	}
	if meta.IsDefined("log_level") {
		cfg.LogLevel = strings.TrimSpace(raw.LogLevel)
	}

	return cfg, nil
}

package main

import (
	"flag"
	"fmt"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"kinesis/internal/storage"
)

type ctlConfig struct {
	Plan   string
	Goal   float64
	Period time.Duration
	Store  string
	DBPath string
}

type fileConfig struct {
	Plan     string  `toml:"plan"`
	Goal     float64 `toml:"goal"`
	Period   string  `toml:"period"`
	PeriodMS int64   `toml:"period_ms"`
	Store    string  `toml:"store"`
	DBPath   string  `toml:"db_path"`
}

func defaultConfig() ctlConfig {
	return ctlConfig{
		Store:  storage.DefaultStoreKind(),
		DBPath: "kinesis.db",
	}
}

func loadOrDefaultConfig(path string) (ctlConfig, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return ctlConfig{}, fmt.Errorf("load config: %w", err)
	}

	if meta.IsDefined("plan") {
		cfg.Plan = strings.TrimSpace(raw.Plan)
	}
	if meta.IsDefined("goal") {
		cfg.Goal = raw.Goal
	}
	if meta.IsDefined("period") {
		d, err := time.ParseDuration(strings.TrimSpace(raw.Period))
		if err != nil {
			return ctlConfig{}, fmt.Errorf("parse period: %w", err)
		}
		cfg.Period = d
	}
	if meta.IsDefined("period_ms") {
		cfg.Period = time.Duration(raw.PeriodMS) * time.Millisecond
	}
	if meta.IsDefined("store") {
		cfg.Store = strings.TrimSpace(raw.Store)
	}
	if meta.IsDefined("db_path") {
		cfg.DBPath = strings.TrimSpace(raw.DBPath)
	}

	return cfg, nil
}

// applyFlags lets explicitly set command-line flags override the file
// config; unset flags keep the configured values.
func (c *ctlConfig) applyFlags(fs *flag.FlagSet, planPath string, goal float64, period time.Duration, storeKind, dbPath string) {
	set := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })

	if set["plan"] {
		c.Plan = planPath
	}
	if set["goal"] {
		c.Goal = goal
	}
	if set["period"] {
		c.Period = period
	}
	if set["store"] {
		c.Store = storeKind
	}
	if set["db-path"] {
		c.DBPath = dbPath
	}
}

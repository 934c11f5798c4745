// Package config is the ambient configuration surface for the btreeindex CLI: a JSON-tagged
// struct, a Default constructor, and a sync.Once-guarded package-level singleton loader that
// falls back to defaults (writing them out) when the file is absent, in the same shape as the
// wider pack's GetXxx singletons (e.g. utils/global_key_dict's GetGlobalKeyDict). Only the first
// caller's path takes effect for the lifetime of the process — exactly like those singletons,
// which also take their path/config on first construction only.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/pkg/errors"
)

// Config is the full ambient configuration surface: the tree's minimum degree plus the
// driver-level concerns (snapshot location, logging) an embedding program needs to set.
type Config struct {
	// Degree is the B-tree's minimum degree t. Must be >= 2.
	Degree int `json:"degree"`

	// SnapshotPath is where the tree's snapshot is loaded from at startup and saved to after
	// every mutating operation.
	SnapshotPath string `json:"snapshot_path"`

	// SnapshotOnWrite records that the tree is snapshotted after every successful mutation. It
	// defaults to true and is stored and loaded with the rest of the file; the CLI driver
	// snapshots after every mutation whatever its value.
	SnapshotOnWrite bool `json:"snapshot_on_write"`

	// LogLevel is one of "debug", "info", "warn", "error". It is stored and loaded with the rest
	// of the file; no code reads it, and logging is not filtered by level.
	LogLevel string `json:"log_level"`
}

// Default returns the configuration a fresh install starts with.
func Default() *Config {
	return &Config{
		Degree:          3,
		SnapshotPath:    "btree.snapshot.json",
		SnapshotOnWrite: true,
		LogLevel:        "info",
	}
}

var (
	instance *Config
	loadErr  error
	once     sync.Once
)

// Load returns the process-wide Config, reading path and caching the result on the first call;
// every later call returns the same instance regardless of the path argument it's given. A
// missing file yields Default(), written out to path so a second run finds it; a malformed file
// yields an error without overwriting it, since overwriting a file a human is mid-edit on would
// destroy their changes.
func Load(path string) (*Config, error) {
	once.Do(func() {
		instance, loadErr = load(path)
	})
	return instance, loadErr
}

func load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg := Default()
			if saveErr := Save(cfg, path); saveErr != nil {
				return cfg, saveErr
			}
			return cfg, nil
		}
		return nil, errors.Wrap(err, "config: read")
	}

	cfg := Default()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrap(err, "config: parse")
	}
	return cfg, nil
}

// Save writes cfg to path as indented JSON, creating the parent directory if needed.
func Save(cfg *Config, path string) error {
	dir := filepath.Dir(path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.Wrap(err, "config: create directory")
		}
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return errors.Wrap(err, "config: marshal")
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrap(err, "config: write")
	}
	return nil
}

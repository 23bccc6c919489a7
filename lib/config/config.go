// Copyright 2026 The LXC Idmap Authors
// SPDX-License-Identifier: Apache-2.0

// Package config provides configuration loading for lxc-idmap.
//
// Configuration is optional: the defaults reproduce the standard
// Proxmox file locations and the root owner account. When a file is
// wanted it comes from exactly one place: the LXC_IDMAP_CONFIG
// environment variable or the --config flag. There is no search-path
// discovery, so a run is never influenced by a file the operator did
// not name.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ColorMode controls when the output headers are styled.
type ColorMode string

const (
	// ColorAuto styles headers only when stdout is a terminal.
	ColorAuto ColorMode = "auto"
	// ColorAlways styles headers unconditionally.
	ColorAlways ColorMode = "always"
	// ColorNever disables styling.
	ColorNever ColorMode = "never"
)

// Config holds the presentation settings for the rendered output.
// The mapping semantics themselves (id ranges, filler offset) are
// fixed and not configurable.
type Config struct {
	// Owner is the host account that receives the subordinate id
	// reservations. Default: root, since root creates the container.
	Owner string `yaml:"owner"`

	// Color selects when header comments are styled.
	Color ColorMode `yaml:"color"`

	// Paths are the destination files named in the output headers.
	Paths PathsConfig `yaml:"paths"`
}

// PathsConfig names the files the operator is told to edit.
type PathsConfig struct {
	// ContainerConf is the per-container config file.
	ContainerConf string `yaml:"container_conf"`

	// SubUID and SubGID are the subordinate id files.
	SubUID string `yaml:"subuid"`
	SubGID string `yaml:"subgid"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Owner: "root",
		Color: ColorAuto,
		Paths: PathsConfig{
			ContainerConf: "/etc/pve/lxc/<container_id>.conf",
			SubUID:        "/etc/subuid",
			SubGID:        "/etc/subgid",
		},
	}
}

// Load returns the configuration from the file named by the
// LXC_IDMAP_CONFIG environment variable, or the defaults when the
// variable is unset.
func Load() (*Config, error) {
	path := os.Getenv("LXC_IDMAP_CONFIG")
	if path == "" {
		return Default(), nil
	}
	return LoadFile(path)
}

// LoadFile loads the configuration file at path on top of the
// defaults, so a partial file only overrides what it names.
func LoadFile(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the loaded values.
func (c *Config) Validate() error {
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("invalid color mode %q (want auto, always, or never)", c.Color)
	}
	if c.Owner == "" {
		return fmt.Errorf("owner must not be empty")
	}
	if c.Paths.ContainerConf == "" || c.Paths.SubUID == "" || c.Paths.SubGID == "" {
		return fmt.Errorf("paths must not be empty")
	}
	return nil
}

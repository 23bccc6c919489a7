// Copyright 2026 The LXC Idmap Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"testing"

	"github.com/lxc-tools/idmap/lib/config"
)

func TestColorEnabled(t *testing.T) {
	t.Setenv("NO_COLOR", "")

	if colorEnabled(config.ColorAlways, true) {
		t.Error("--no-color must override color: always")
	}
	if !colorEnabled(config.ColorAlways, false) {
		t.Error("color: always should enable color")
	}
	if colorEnabled(config.ColorNever, false) {
		t.Error("color: never should disable color")
	}

	t.Setenv("NO_COLOR", "1")
	if colorEnabled(config.ColorAlways, false) {
		t.Error("NO_COLOR must override color: always")
	}
}

func TestLoadConfigFlagWins(t *testing.T) {
	t.Setenv("LXC_IDMAP_CONFIG", "/nonexistent/env.yaml")

	// An explicit --config path is used even when the env var points
	// elsewhere; both missing files fail, but with the flag's path.
	if _, err := loadConfig("/nonexistent/flag.yaml"); err == nil {
		t.Error("expected error for missing --config file")
	}

	if _, err := loadConfig(""); err == nil {
		t.Error("expected error for missing env config file")
	}
}

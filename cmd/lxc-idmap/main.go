// Copyright 2026 The LXC Idmap Authors
// SPDX-License-Identifier: Apache-2.0

// lxc-idmap prints the user-namespace id mapping configuration for an
// unprivileged LXC container from a sparse set of container-to-host
// id mappings.
//
// Usage:
//
//	lxc-idmap [flags] [lxc_uid[:lxc_gid][=host_uid[:host_gid]]...]
//	lxc-idmap -u <id[=host_id]> -g <id[=host_id]>
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/lxc-tools/idmap/lib/config"
	"github.com/lxc-tools/idmap/lib/idmap"
	"github.com/lxc-tools/idmap/lib/render"
	"github.com/lxc-tools/idmap/lib/version"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	flags := pflag.NewFlagSet("lxc-idmap", pflag.ContinueOnError)
	flags.SetOutput(io.Discard)
	flags.Usage = func() { printUsage(os.Stderr) }

	users := flags.StringArrayP("user", "u", nil,
		"container uid, or uid=host_uid pair; no gid mapping is created")
	groups := flags.StringArrayP("group", "g", nil,
		"container gid, or gid=host_gid pair; no uid mapping is created")
	configPath := flags.String("config", "",
		"config file path (default: $LXC_IDMAP_CONFIG when set)")
	noColor := flags.Bool("no-color", false, "disable styled headers")
	showVersion := flags.BoolP("version", "V", false, "print version and exit")

	if err := flags.Parse(args); err != nil {
		// pflag already ran flags.Usage for --help.
		if errors.Is(err, pflag.ErrHelp) {
			return err
		}
		return fmt.Errorf("%w\n\nRun 'lxc-idmap --help' for usage", err)
	}

	if *showVersion {
		fmt.Printf("lxc-idmap %s\n", version.Info())
		return nil
	}

	logger := newLogger()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		return err
	}

	points, err := idmap.Normalize(flags.Args(), *users, *groups)
	if err != nil {
		if errors.Is(err, idmap.ErrNoInput) {
			printUsage(os.Stderr)
		}
		return err
	}
	logger.Debug("normalized mappings",
		"tokens", len(flags.Args()), "user_options", len(*users),
		"group_options", len(*groups), "points", len(points))

	ranges, err := idmap.Partition(points)
	if err != nil {
		return err
	}
	logger.Debug("partitioned id space", "ranges", len(ranges))

	fmt.Print(render.Output(ranges, render.Options{
		ContainerConfPath: cfg.Paths.ContainerConf,
		SubUIDPath:        cfg.Paths.SubUID,
		SubGIDPath:        cfg.Paths.SubGID,
		Owner:             cfg.Owner,
		Color:             colorEnabled(cfg.Color, *noColor),
	}))
	return nil
}

// loadConfig prefers the --config flag over the LXC_IDMAP_CONFIG
// environment variable. Without either, the built-in defaults apply.
func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadFile(path)
	}
	return config.Load()
}

// colorEnabled resolves the configured color mode against the
// --no-color flag, the NO_COLOR convention, and whether stdout is a
// terminal.
func colorEnabled(mode config.ColorMode, noColor bool) bool {
	if noColor || os.Getenv("NO_COLOR") != "" {
		return false
	}
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	default:
		return term.IsTerminal(int(os.Stdout.Fd()))
	}
}

// newLogger creates the command logger. When stderr is a terminal,
// uses slog.TextHandler for human-readable output; when piped, uses
// slog.JSONHandler. Debug level is enabled via LXC_IDMAP_DEBUG, so
// normal runs emit nothing on stderr.
func newLogger() *slog.Logger {
	level := slog.LevelInfo
	if os.Getenv("LXC_IDMAP_DEBUG") != "" {
		level = slog.LevelDebug
	}
	options := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if term.IsTerminal(int(os.Stderr.Fd())) {
		handler = slog.NewTextHandler(os.Stderr, options)
	} else {
		handler = slog.NewJSONHandler(os.Stderr, options)
	}
	return slog.New(handler)
}

func printUsage(w io.Writer) {
	fmt.Fprint(w, `lxc-idmap - Generate id mappings for unprivileged LXC containers

USAGE
    lxc-idmap [flags] [lxc_uid[:lxc_gid][=host_uid[:host_gid]]...]

    Each positional mapping creates one uid and one gid mapping. An
    omitted gid defaults to the uid; an omitted host side defaults to
    the container side.

FLAGS
    -u, --user id[=host_id]    map a single uid (repeatable); no gid
                               mapping is created
    -g, --group id[=host_id]   map a single gid (repeatable); no uid
                               mapping is created
        --config path          config file (default: $LXC_IDMAP_CONFIG)
        --no-color             disable styled headers
    -V, --version              print version and exit

EXAMPLES
    # Map container uid/gid 1000 to host uid/gid 1000
    lxc-idmap 1000

    # Map container uid 1000, gid 1005 to host uid 2000, gid 2005
    lxc-idmap 1000:1005=2000:2005

    # Map uid 1000 to host uid 107, and gid 1000 to itself
    lxc-idmap -u 1000=107 -g 1000

The printed blocks go into the container config and the host's
subordinate id files; nothing is written by this tool.
`)
}

// Copyright (c) 2024 John Millikin <john@john-millikin.com>
//
// Permission to use, copy, modify, and/or distribute this software for any
// purpose with or without fee is hereby granted.
//
// THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES WITH
// REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF MERCHANTABILITY
// AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR ANY SPECIAL, DIRECT,
// INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES WHATSOEVER RESULTING FROM
// LOSS OF USE, DATA OR PROFITS, WHETHER IN AN ACTION OF CONTRACT, NEGLIGENCE OR
// OTHER TORTIOUS ACTION, ARISING OUT OF OR IN CONNECTION WITH THE USE OR
// PERFORMANCE OF THIS SOFTWARE.
//
// SPDX-License-Identifier: 0BSD

package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/pflag"
)

type cmdFormat struct {
	render  renderFlags
	outPath string
	watch   bool
	verbose bool

	logger *slog.Logger
}

func (*cmdFormat) help() *commandHelp {
	return &commandHelp{
		usage:   "format [options] TREE.json...",
		summary: "Render syntax trees as Erlang source",
	}
}

func (cmd *cmdFormat) flags(flags *pflag.FlagSet) {
	cmd.render.register(flags)
	flags.StringVarP(&cmd.outPath, "output", "o", "", "write the result to this file instead of stdout")
	flags.BoolVarP(&cmd.watch, "watch", "w", false, "render again whenever an input changes")
	flags.BoolVarP(&cmd.verbose, "verbose", "v", false, "log debug messages")
}

func (cmd *cmdFormat) run(ctx context.Context, argv []string) int {
	if len(argv) < 1 {
		fmt.Fprintln(os.Stderr, "usage: rebar3-format format [options] TREE.json...")
		return 1
	}
	if cmd.outPath != "" && len(argv) > 1 {
		fmt.Fprintln(os.Stderr, "--output requires exactly one input")
		return 1
	}
	logger := newLogger(cmd.verbose)
	cmd.logger = logger

	cfg, err := cmd.render.loadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	r, err := newRenderer(ctx, cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	defer r.close(ctx)
	logger.Debug("Settings loaded",
		"paper", r.opts.Paper(),
		"ribbon", r.opts.Ribbon(),
		"plugins", len(r.plugins),
	)

	failed := false
	for _, path := range argv {
		if err := cmd.formatOne(r, path); err != nil {
			fmt.Fprintln(os.Stderr, err)
			failed = true
		}
	}
	if !cmd.watch {
		if failed {
			return 1
		}
		return 0
	}

	fw, err := newFileWatcher(argv, defaultDebounceInterval, logger)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	defer fw.close()
	err = fw.watch(ctx, func(path string) {
		if err := cmd.formatOne(r, path); err != nil {
			logger.Error("Render failed", "path", path, "error", err)
			return
		}
		logger.Info("Rendered", "path", path)
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}

func (cmd *cmdFormat) formatOne(r *renderer, path string) error {
	tree, err := readTree(path)
	if err != nil {
		return err
	}
	if errs, warns := countMarkers(tree); errs+warns > 0 {
		cmd.logger.Warn("Input contains diagnostics", "path", path, "errors", errs, "warnings", warns)
	}
	output, err := r.render(tree)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return writeOutput(cmd.outPath, output+"\n")
}

func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

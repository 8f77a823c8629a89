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
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/pflag"

	"github.com/alanz/rebar3-format/config"
	"github.com/alanz/rebar3-format/internal/msgplugin"
	"github.com/alanz/rebar3-format/printer"
	"github.com/alanz/rebar3-format/syntax"
)

// renderFlags are the layout flags shared by the commands that render
// trees. A flag given on the command line overrides the environment, which
// overrides the configuration file.
type renderFlags struct {
	flagSet     *pflag.FlagSet
	configPath  string
	paper       int
	ribbon      int
	breakIndent int
	subIndent   int
	encoding    string
	profile     string
	plugins     []string
}

func (rf *renderFlags) register(flags *pflag.FlagSet) {
	rf.flagSet = flags
	flags.StringVarP(&rf.configPath, "config", "c", "", "configuration file (default "+config.DefaultFileName+" if present)")
	flags.IntVar(&rf.paper, "paper", printer.DefaultPaper, "maximum line width")
	flags.IntVar(&rf.ribbon, "ribbon", 0, "maximum characters per line, not counting indentation (default: from --profile)")
	flags.IntVar(&rf.breakIndent, "break-indent", printer.DefaultBreakIndent, "indentation of clause bodies")
	flags.IntVar(&rf.subIndent, "sub-indent", printer.DefaultSubIndent, "indentation of continuation lines")
	flags.StringVar(&rf.encoding, "encoding", printer.UTF8.String(), "output encoding (utf8 or latin1)")
	flags.StringVar(&rf.profile, "profile", printer.ProfileOTP.String(), "layout profile (otp or rebar3)")
	flags.StringArrayVar(&rf.plugins, "message-plugin", nil, "MODULE=FILE: describe diagnostics of MODULE with a WebAssembly plugin")
}

func (rf *renderFlags) changed(name string) bool {
	return rf.flagSet != nil && rf.flagSet.Changed(name)
}

func (rf *renderFlags) loadConfig() (*config.Config, error) {
	path := rf.configPath
	if path == "" {
		if _, err := os.Stat(config.DefaultFileName); err == nil {
			path = config.DefaultFileName
		} else if !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if err := rf.applyTo(cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (rf *renderFlags) applyTo(cfg *config.Config) error {
	if rf.changed("paper") {
		cfg.Paper = rf.paper
	}
	if rf.changed("ribbon") {
		cfg.Ribbon = rf.ribbon
	}
	if rf.changed("break-indent") {
		cfg.BreakIndent = rf.breakIndent
	}
	if rf.changed("sub-indent") {
		cfg.SubIndent = rf.subIndent
	}
	if rf.changed("encoding") {
		cfg.Encoding = rf.encoding
	}
	if rf.changed("profile") {
		cfg.Profile = rf.profile
	}
	for _, arg := range rf.plugins {
		module, path, err := parsePluginFlag(arg)
		if err != nil {
			return err
		}
		if cfg.MessagePlugins == nil {
			cfg.MessagePlugins = make(map[string]string)
		}
		cfg.MessagePlugins[module] = path
	}
	return nil
}

type renderer struct {
	opts    *printer.Options
	plugins []*msgplugin.Plugin
}

func newRenderer(ctx context.Context, cfg *config.Config) (*renderer, error) {
	printerOpts, err := cfg.Options()
	if err != nil {
		return nil, err
	}
	r := &renderer{}
	pluginOpts := pluginOptions(cfg)
	for _, module := range cfg.PluginModules() {
		plugin, err := msgplugin.LoadFile(ctx, cfg.MessagePlugins[module], pluginOpts...)
		if err != nil {
			r.close(ctx)
			return nil, fmt.Errorf("message plugin for %s: %w", module, err)
		}
		r.plugins = append(r.plugins, plugin)
		printerOpts = append(printerOpts, printer.WithMessageFormatter(module, plugin))
	}
	r.opts = printer.NewOptions(printerOpts...)
	return r, nil
}

func pluginOptions(cfg *config.Config) []msgplugin.Option {
	var opts []msgplugin.Option
	if cfg.PluginMemoryPages > 0 {
		opts = append(opts, msgplugin.WithMemoryLimitPages(cfg.PluginMemoryPages))
	}
	return opts
}

func (r *renderer) close(ctx context.Context) {
	for _, plugin := range r.plugins {
		plugin.Close(ctx)
	}
	r.plugins = nil
}

func (r *renderer) renderFile(path string) (string, error) {
	tree, err := readTree(path)
	if err != nil {
		return "", err
	}
	return r.render(tree)
}

// render formats tree, reporting a malformed tree as an error.
func (r *renderer) render(tree syntax.Node) (out string, err error) {
	defer func() {
		if v := recover(); v != nil {
			err = fmt.Errorf("%v", v)
		}
	}()
	return r.opts.Format(tree), nil
}

// countMarkers counts the error and warning markers anywhere in tree.
func countMarkers(tree syntax.Node) (errs, warns int) {
	syntax.Walk(tree, func(node syntax.Node) bool {
		switch node.(type) {
		case *syntax.ErrorMarker:
			errs++
		case *syntax.WarningMarker:
			warns++
		}
		return true
	})
	return errs, warns
}

func readTree(path string) (syntax.Node, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	tree, err := syntax.DecodeJSON(buf)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return tree, nil
}

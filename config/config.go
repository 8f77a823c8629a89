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

// Package config reads formatter settings from a YAML file and the
// environment, and turns them into printer options.
package config

import (
	"fmt"
	"sort"
	"strings"

	"github.com/alanz/rebar3-format/printer"
)

// DefaultFileName is looked up in the working directory when no
// configuration file is given explicitly.
const DefaultFileName = ".rebar3-format.yaml"

// A wasm32 memory has at most 65536 pages.
const maxPluginMemoryPages = 65536

type Config struct {
	// Paper is the maximum line width.
	Paper int `yaml:"paper"`

	// Ribbon is the maximum number of characters on a line, not counting
	// indentation. Zero selects the ribbon of Profile.
	Ribbon int `yaml:"ribbon"`

	BreakIndent int    `yaml:"break_indent"`
	SubIndent   int    `yaml:"sub_indent"`
	Encoding    string `yaml:"encoding"`
	Profile     string `yaml:"profile"`

	// MessagePlugins maps a module name to the path of a WebAssembly
	// module that describes the diagnostics raised by that module.
	MessagePlugins map[string]string `yaml:"message_plugins"`

	// PluginMemoryPages caps the memory of a message plugin instance, in
	// 64 KiB pages. Zero keeps the plugin host's default.
	PluginMemoryPages uint32 `yaml:"plugin_memory_pages"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Paper:       printer.DefaultPaper,
		BreakIndent: printer.DefaultBreakIndent,
		SubIndent:   printer.DefaultSubIndent,
		Encoding:    printer.UTF8.String(),
		Profile:     printer.ProfileOTP.String(),
	}
}

type FieldError struct {
	Field   string
	Message string
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationError collects every invalid field of a configuration.
type ValidationError struct {
	Errors []FieldError
}

func (e ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("invalid configuration: %s", e.Errors[0].Error())
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "invalid configuration (%d errors):", len(e.Errors))
	for _, err := range e.Errors {
		fmt.Fprintf(&sb, "\n  - %s", err.Error())
	}
	return sb.String()
}

func (c *Config) Validate() error {
	var errs []FieldError
	if c.Paper <= 0 {
		errs = append(errs, FieldError{"paper", "must be positive"})
	}
	if c.Ribbon < 0 {
		errs = append(errs, FieldError{"ribbon", "must not be negative"})
	}
	if c.BreakIndent < 0 {
		errs = append(errs, FieldError{"break_indent", "must not be negative"})
	}
	if c.SubIndent < 0 {
		errs = append(errs, FieldError{"sub_indent", "must not be negative"})
	}
	if _, err := printer.ParseEncoding(c.Encoding); err != nil {
		errs = append(errs, FieldError{"encoding", err.Error()})
	}
	if _, err := printer.ParseProfile(c.Profile); err != nil {
		errs = append(errs, FieldError{"profile", err.Error()})
	}
	if c.PluginMemoryPages > maxPluginMemoryPages {
		errs = append(errs, FieldError{"plugin_memory_pages", fmt.Sprintf("must be at most %d", maxPluginMemoryPages)})
	}
	for _, module := range c.PluginModules() {
		if c.MessagePlugins[module] == "" {
			errs = append(errs, FieldError{"message_plugins." + module, "path is required"})
		}
	}
	if len(errs) > 0 {
		return ValidationError{Errors: errs}
	}
	return nil
}

// PluginModules returns the modules that have a message plugin, sorted.
func (c *Config) PluginModules() []string {
	modules := make([]string, 0, len(c.MessagePlugins))
	for module := range c.MessagePlugins {
		modules = append(modules, module)
	}
	sort.Strings(modules)
	return modules
}

// Options converts a validated configuration into printer options.
func (c *Config) Options() ([]printer.Option, error) {
	encoding, err := printer.ParseEncoding(c.Encoding)
	if err != nil {
		return nil, err
	}
	profile, err := printer.ParseProfile(c.Profile)
	if err != nil {
		return nil, err
	}
	opts := []printer.Option{
		printer.WithPaper(c.Paper),
		printer.WithProfile(profile),
		printer.WithBreakIndent(c.BreakIndent),
		printer.WithSubIndent(c.SubIndent),
		printer.WithEncoding(encoding),
	}
	if c.Ribbon > 0 {
		opts = append(opts, printer.WithRibbon(c.Ribbon))
	}
	return opts, nil
}

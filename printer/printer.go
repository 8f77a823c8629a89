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

// Package printer translates an Erlang syntax tree into a layout document
// and renders it as source text.
package printer

import (
	"fmt"

	"github.com/alanz/rebar3-format/layout"
	"github.com/alanz/rebar3-format/syntax"
)

const (
	DefaultPaper       = 80
	DefaultBreakIndent = 4
	DefaultSubIndent   = 2
)

// Encoding selects how non-ASCII characters in strings, characters and
// quoted atoms are printed.
type Encoding uint8

const (
	UTF8 Encoding = iota
	Latin1
)

func (e Encoding) String() string {
	switch e {
	case UTF8:
		return "utf8"
	case Latin1:
		return "latin1"
	}
	return fmt.Sprintf("Encoding(%d)", uint8(e))
}

func ParseEncoding(s string) (Encoding, error) {
	switch s {
	case "utf8", "unicode":
		return UTF8, nil
	case "latin1":
		return Latin1, nil
	}
	return 0, fmt.Errorf("unknown encoding %q (want utf8 or latin1)", s)
}

// Profile is a named set of defaults. ProfileOTP matches the widths used by
// the standard library's pretty printer; ProfileRebar3 uses a wider ribbon.
type Profile uint8

const (
	ProfileOTP Profile = iota
	ProfileRebar3
)

func (p Profile) Ribbon() int {
	if p == ProfileRebar3 {
		return 65
	}
	return 56
}

func (p Profile) String() string {
	switch p {
	case ProfileOTP:
		return "otp"
	case ProfileRebar3:
		return "rebar3"
	}
	return fmt.Sprintf("Profile(%d)", uint8(p))
}

func ParseProfile(s string) (Profile, error) {
	switch s {
	case "otp":
		return ProfileOTP, nil
	case "rebar3":
		return ProfileRebar3, nil
	}
	return 0, fmt.Errorf("unknown profile %q (want otp or rebar3)", s)
}

// Hook wraps the layout of every node. It receives the node, the context it
// is being laid out in, and a function producing the default layout.
type Hook func(node syntax.Node, ctx Context, next func(Context) layout.Document) layout.Document

// MessageFormatter describes the payload of an error or warning marker.
// Module names the module that raised the diagnostic.
type MessageFormatter interface {
	FormatMessage(module string, descriptor syntax.Node) (string, error)
}

type Option interface {
	apply(*Options)
}

type option func(*Options)

func (f option) apply(opts *Options) { f(opts) }

type Options struct {
	paper       int
	ribbon      int
	breakIndent int
	subIndent   int
	encoding    Encoding
	hook        Hook
	formatters  map[string]MessageFormatter
}

func WithPaper(paper int) Option {
	return option(func(opts *Options) {
		opts.paper = paper
	})
}

func WithRibbon(ribbon int) Option {
	return option(func(opts *Options) {
		opts.ribbon = ribbon
	})
}

func WithBreakIndent(indent int) Option {
	return option(func(opts *Options) {
		opts.breakIndent = indent
	})
}

func WithSubIndent(indent int) Option {
	return option(func(opts *Options) {
		opts.subIndent = indent
	})
}

func WithEncoding(encoding Encoding) Option {
	return option(func(opts *Options) {
		opts.encoding = encoding
	})
}

// WithProfile sets the ribbon width of the profile. A later WithRibbon
// takes precedence.
func WithProfile(profile Profile) Option {
	return option(func(opts *Options) {
		opts.ribbon = profile.Ribbon()
	})
}

func WithHook(hook Hook) Option {
	return option(func(opts *Options) {
		opts.hook = hook
	})
}

// WithMessageFormatter registers the formatter used for markers whose
// module is the given name.
func WithMessageFormatter(module string, formatter MessageFormatter) Option {
	return option(func(opts *Options) {
		if opts.formatters == nil {
			opts.formatters = make(map[string]MessageFormatter)
		}
		opts.formatters[module] = formatter
	})
}

func NewOptions(opts ...Option) *Options {
	options := &Options{
		paper:       DefaultPaper,
		ribbon:      ProfileOTP.Ribbon(),
		breakIndent: DefaultBreakIndent,
		subIndent:   DefaultSubIndent,
		encoding:    UTF8,
	}
	for _, opt := range opts {
		opt.apply(options)
	}
	return options
}

func (opts *Options) Paper() int       { return opts.paper }
func (opts *Options) Ribbon() int      { return opts.ribbon }
func (opts *Options) BreakIndent() int { return opts.breakIndent }
func (opts *Options) SubIndent() int   { return opts.subIndent }

// Layout translates node into a document. It panics if the tree contains a
// node that is not well formed, such as an attribute with arguments of the
// wrong shape.
func Layout(node syntax.Node, opts ...Option) layout.Document {
	return NewOptions(opts...).Layout(node)
}

// Format renders node as text within the configured widths.
func Format(node syntax.Node, opts ...Option) string {
	return NewOptions(opts...).Format(node)
}

func (opts *Options) Layout(node syntax.Node) layout.Document {
	p := &printer{opts: opts}
	return p.lay(node, p.rootContext())
}

func (opts *Options) Format(node syntax.Node) string {
	return layout.Format(opts.Layout(node), opts.paper, opts.ribbon)
}

type printer struct {
	opts *Options
}

func (p *printer) rootContext() Context {
	return Context{
		Paper:       p.opts.paper,
		Ribbon:      p.opts.ribbon,
		BreakIndent: p.opts.breakIndent,
		SubIndent:   p.opts.subIndent,
		Encoding:    p.opts.encoding,
	}
}

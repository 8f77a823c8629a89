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
	"os"
	"strings"

	"github.com/pmezard/go-difflib/difflib"
	"github.com/spf13/pflag"
)

type cmdCheck struct {
	render renderFlags
}

func (*cmdCheck) help() *commandHelp {
	return &commandHelp{
		usage:   "check [options] TREE.json EXPECTED.erl",
		summary: "Report how a rendered tree differs from an existing file",
	}
}

func (cmd *cmdCheck) flags(flags *pflag.FlagSet) {
	cmd.render.register(flags)
}

func (cmd *cmdCheck) run(ctx context.Context, argv []string) int {
	if len(argv) != 2 {
		fmt.Fprintln(os.Stderr, "usage: rebar3-format check [options] TREE.json EXPECTED.erl")
		return 1
	}
	treePath, expectPath := argv[0], argv[1]

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

	got, err := r.renderFile(treePath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	expect, err := os.ReadFile(expectPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	diff, err := renderDiff(expectPath, string(expect), got)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	if diff == "" {
		return 0
	}
	fmt.Print(diff)
	return 1
}

// renderDiff compares an existing file with rendered output, which carries
// no final newline. It returns "" when they match.
func renderDiff(expectPath, expect, got string) (string, error) {
	expect = strings.TrimRight(expect, "\n") + "\n"
	got = got + "\n"
	if expect == got {
		return "", nil
	}
	return difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(expect),
		B:        difflib.SplitLines(got),
		FromFile: expectPath,
		ToFile:   expectPath + " (formatted)",
		Context:  3,
	})
}

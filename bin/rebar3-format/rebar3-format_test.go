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
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/pflag"

	"github.com/alanz/rebar3-format/config"
	"github.com/alanz/rebar3-format/internal/testutil"
	"github.com/alanz/rebar3-format/syntax"
)

func TestParsePluginFlag(t *testing.T) {
	module, path, err := parsePluginFlag("erl_lint=plugins/lint.wasm")
	testutil.AssertNoError(t, err)
	testutil.ExpectEq(t, "erl_lint", module)
	testutil.ExpectEq(t, "plugins/lint.wasm", path)

	for _, arg := range []string{"", "erl_lint", "=lint.wasm", "erl_lint="} {
		_, _, err := parsePluginFlag(arg)
		testutil.AssertError(t, err)
	}
}

func TestRenderFlags(t *testing.T) {
	var rf renderFlags
	flags := pflag.NewFlagSet("format", pflag.ContinueOnError)
	rf.register(flags)
	err := flags.Parse([]string{
		"--paper", "100",
		"--profile", "rebar3",
		"--message-plugin", "erl_lint=lint.wasm",
	})
	testutil.AssertNoError(t, err)

	cfg := config.Default()
	cfg.BreakIndent = 2
	testutil.AssertNoError(t, rf.applyTo(cfg))

	testutil.ExpectEq(t, 100, cfg.Paper)
	testutil.ExpectEq(t, "rebar3", cfg.Profile)
	testutil.ExpectEq(t, 2, cfg.BreakIndent)
	testutil.ExpectEq(t, 0, cfg.Ribbon)
	testutil.ExpectEq(t, "lint.wasm", cfg.MessagePlugins["erl_lint"])
}

func TestRenderFlagsBadPlugin(t *testing.T) {
	var rf renderFlags
	flags := pflag.NewFlagSet("format", pflag.ContinueOnError)
	rf.register(flags)
	testutil.AssertNoError(t, flags.Parse([]string{"--message-plugin", "lint.wasm"}))
	testutil.AssertError(t, rf.applyTo(config.Default()))
}

func TestRenderFile(t *testing.T) {
	dir := t.TempDir()
	treePath := filepath.Join(dir, "tree.json")
	tree := `{"type": "attribute", "name": {"type": "atom", "name": "module"},
		"arguments": [{"type": "atom", "name": "foo"}]}`
	testutil.AssertNoError(t, os.WriteFile(treePath, []byte(tree), 0o666))

	r, err := newRenderer(context.Background(), config.Default())
	testutil.AssertNoError(t, err)
	defer r.close(context.Background())

	got, err := r.renderFile(treePath)
	testutil.AssertNoError(t, err)
	testutil.ExpectEq(t, "-module(foo).", got)
}

func TestRenderFileErrors(t *testing.T) {
	dir := t.TempDir()
	badPath := filepath.Join(dir, "bad.json")
	testutil.AssertNoError(t, os.WriteFile(badPath, []byte(`{"type": "no_such_kind"}`), 0o666))

	r, err := newRenderer(context.Background(), config.Default())
	testutil.AssertNoError(t, err)

	_, err = r.renderFile(badPath)
	testutil.AssertError(t, err)
	testutil.ExpectTrue(t, strings.HasPrefix(err.Error(), badPath+": "))

	_, err = r.renderFile(filepath.Join(dir, "missing.json"))
	testutil.AssertError(t, err)
}

func TestRenderMalformed(t *testing.T) {
	r, err := newRenderer(context.Background(), config.Default())
	testutil.AssertNoError(t, err)

	_, err = r.render(syntax.NewAttribute("spec", syntax.NewAtom("foo")))
	testutil.AssertError(t, err)
	testutil.ExpectTrue(t, strings.HasPrefix(err.Error(), "printer: malformed attribute:"))
}

func TestCountMarkers(t *testing.T) {
	tree := syntax.NewFormList(
		&syntax.ErrorMarker{Module: "erl_parse", Descriptor: syntax.NewAtom("bad")},
		syntax.NewAttribute("module", syntax.NewAtom("foo")),
		&syntax.WarningMarker{Module: "erl_lint", Descriptor: syntax.NewAtom("unused")},
		&syntax.ErrorMarker{Module: "erl_lint", Descriptor: syntax.NewAtom("unbound")},
	)
	errs, warns := countMarkers(tree)
	testutil.ExpectEq(t, 2, errs)
	testutil.ExpectEq(t, 1, warns)
}

func TestPluginOptions(t *testing.T) {
	cfg := config.Default()
	testutil.ExpectEq(t, 0, len(pluginOptions(cfg)))

	cfg.PluginMemoryPages = 256
	testutil.ExpectEq(t, 1, len(pluginOptions(cfg)))
}

func TestFormatOne(t *testing.T) {
	dir := t.TempDir()
	treePath := filepath.Join(dir, "tree.json")
	outPath := filepath.Join(dir, "out.erl")
	tree := `{"type": "attribute", "name": {"type": "atom", "name": "module"},
		"arguments": [{"type": "atom", "name": "foo"}]}`
	testutil.AssertNoError(t, os.WriteFile(treePath, []byte(tree), 0o666))

	r, err := newRenderer(context.Background(), config.Default())
	testutil.AssertNoError(t, err)
	cmd := &cmdFormat{outPath: outPath, logger: discardLogger()}
	testutil.AssertNoError(t, cmd.formatOne(r, treePath))

	got, err := os.ReadFile(outPath)
	testutil.AssertNoError(t, err)
	testutil.ExpectEq(t, "-module(foo).\n", string(got))
}

func TestRenderDiff(t *testing.T) {
	diff, err := renderDiff("foo.erl", "-module(foo).\n", "-module(foo).")
	testutil.AssertNoError(t, err)
	testutil.ExpectEq(t, "", diff)

	diff, err = renderDiff("foo.erl", "-module(foo).\n", "-module(bar).")
	testutil.AssertNoError(t, err)
	testutil.ExpectNoDiff(t, strings.Join([]string{
		"--- foo.erl",
		"+++ foo.erl (formatted)",
		"@@ -1 +1 @@",
		"--module(foo).",
		"+-module(bar).",
		"",
	}, "\n"), diff)
}

func TestWriteOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.erl")
	testutil.AssertNoError(t, os.WriteFile(path, []byte("old contents that are longer"), 0o666))
	testutil.AssertNoError(t, writeOutput(path, "-module(foo).\n"))

	got, err := os.ReadFile(path)
	testutil.AssertNoError(t, err)
	testutil.ExpectEq(t, "-module(foo).\n", string(got))
}

func TestDebouncer(t *testing.T) {
	d := newDebouncer(20 * time.Millisecond)
	defer d.stop()

	var calls atomic.Int32
	done := make(chan struct{}, 4)
	for range 3 {
		d.trigger(func() {
			calls.Add(1)
			done <- struct{}{}
		})
	}

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("debounced callback was not called")
	}
	time.Sleep(100 * time.Millisecond)
	testutil.ExpectEq(t, int32(1), calls.Load())
}

func TestDebouncerSerializesCallbacks(t *testing.T) {
	d := newDebouncer(time.Millisecond)
	defer d.stop()

	var active, overlaps atomic.Int32
	started := make(chan struct{}, 2)
	done := make(chan struct{}, 2)
	callback := func() {
		if active.Add(1) > 1 {
			overlaps.Add(1)
		}
		started <- struct{}{}
		time.Sleep(50 * time.Millisecond)
		active.Add(-1)
		done <- struct{}{}
	}

	d.trigger(callback)
	select {
	case <-started:
	case <-time.After(5 * time.Second):
		t.Fatal("first callback was not called")
	}
	d.trigger(callback)

	for range 2 {
		select {
		case <-done:
		case <-time.After(5 * time.Second):
			t.Fatal("callback did not finish")
		}
	}
	testutil.ExpectEq(t, int32(0), overlaps.Load())
}

func TestFileWatcherInputFor(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "tree.json")
	testutil.AssertNoError(t, os.WriteFile(input, []byte("{}"), 0o666))

	fw, err := newFileWatcher([]string{input}, time.Millisecond, discardLogger())
	testutil.AssertNoError(t, err)
	defer fw.close()

	path, ok := fw.inputFor(fsnotify.Event{Name: input, Op: fsnotify.Write})
	testutil.ExpectTrue(t, ok)
	testutil.ExpectEq(t, input, path)

	_, ok = fw.inputFor(fsnotify.Event{Name: input, Op: fsnotify.Chmod})
	testutil.ExpectFalse(t, ok)

	_, ok = fw.inputFor(fsnotify.Event{Name: filepath.Join(dir, "other.json"), Op: fsnotify.Create})
	testutil.ExpectFalse(t, ok)
}

func TestFileWatcherWatch(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "tree.json")
	testutil.AssertNoError(t, os.WriteFile(input, []byte("{}"), 0o666))

	fw, err := newFileWatcher([]string{input}, 10*time.Millisecond, discardLogger())
	testutil.AssertNoError(t, err)
	defer fw.close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	changed := make(chan string, 8)
	watchErr := make(chan error, 1)
	go func() {
		watchErr <- fw.watch(ctx, func(path string) { changed <- path })
	}()

	testutil.AssertNoError(t, os.WriteFile(input, []byte(`{"type": "nil"}`), 0o666))
	select {
	case path := <-changed:
		testutil.ExpectEq(t, input, path)
	case <-time.After(5 * time.Second):
		t.Fatal("no change reported")
	}

	cancel()
	testutil.AssertNoError(t, <-watchErr)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

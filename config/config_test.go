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

package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/alanz/rebar3-format/config"
	"github.com/alanz/rebar3-format/internal/testutil"
	"github.com/alanz/rebar3-format/printer"
	"github.com/alanz/rebar3-format/syntax"
)

func TestParse(t *testing.T) {
	cfg, err := config.Parse([]byte(`
paper: 100
profile: rebar3
break_indent: 2
message_plugins:
  erl_lint: plugins/lint.wasm
plugin_memory_pages: 256
`))
	testutil.AssertNoError(t, err)
	testutil.ExpectEq(t, 100, cfg.Paper)
	testutil.ExpectEq(t, 0, cfg.Ribbon)
	testutil.ExpectEq(t, 2, cfg.BreakIndent)
	testutil.ExpectEq(t, printer.DefaultSubIndent, cfg.SubIndent)
	testutil.ExpectEq(t, "utf8", cfg.Encoding)
	testutil.ExpectEq(t, "rebar3", cfg.Profile)
	testutil.ExpectEq(t, "plugins/lint.wasm", cfg.MessagePlugins["erl_lint"])
	testutil.ExpectEq(t, uint32(256), cfg.PluginMemoryPages)
	testutil.ExpectNoError(t, cfg.Validate())
}

func TestParseEmpty(t *testing.T) {
	cfg, err := config.Parse(nil)
	testutil.AssertNoError(t, err)
	if !reflect.DeepEqual(config.Default(), cfg) {
		t.Errorf("Parse(nil) = %#v, want the defaults", cfg)
	}
}

func TestParseUnknownField(t *testing.T) {
	_, err := config.Parse([]byte("papre: 100\n"))
	testutil.AssertError(t, err)
}

func TestValidate(t *testing.T) {
	cfg := config.Default()
	cfg.Paper = 0
	cfg.SubIndent = -1
	cfg.Encoding = "ebcdic"
	cfg.PluginMemoryPages = 70000
	cfg.MessagePlugins = map[string]string{"erl_parse": ""}

	err := cfg.Validate()
	var verr config.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	var fields []string
	for _, fe := range verr.Errors {
		fields = append(fields, fe.Field)
	}
	testutil.ExpectSliceEq(t, []string{"paper", "sub_indent", "encoding", "plugin_memory_pages", "message_plugins.erl_parse"}, fields)
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		"REBAR3_FORMAT_PAPER":    "120",
		"REBAR3_FORMAT_ENCODING": "latin1",
		"REBAR3_FORMAT_RIBBON":   "",
	}
	lookup := func(name string) (string, bool) {
		val, ok := env[name]
		return val, ok
	}
	cfg := config.Default()
	testutil.AssertNoError(t, cfg.ApplyEnv(lookup))
	testutil.ExpectEq(t, 120, cfg.Paper)
	testutil.ExpectEq(t, 0, cfg.Ribbon)
	testutil.ExpectEq(t, "latin1", cfg.Encoding)

	env["REBAR3_FORMAT_SUB_INDENT"] = "two"
	testutil.AssertError(t, cfg.ApplyEnv(lookup))
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), config.DefaultFileName)
	err := os.WriteFile(path, []byte("paper: 60\nribbon: 40\n"), 0o644)
	testutil.AssertNoError(t, err)
	t.Setenv("REBAR3_FORMAT_PAPER", "70")

	cfg, err := config.Load(path)
	testutil.AssertNoError(t, err)
	testutil.ExpectEq(t, 70, cfg.Paper)
	testutil.ExpectEq(t, 40, cfg.Ribbon)

	_, err = config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	testutil.AssertError(t, err)
}

func TestOptions(t *testing.T) {
	cfg := config.Default()
	cfg.Paper = 20
	cfg.Ribbon = 20
	opts, err := cfg.Options()
	testutil.AssertNoError(t, err)

	resolved := printer.NewOptions(opts...)
	testutil.ExpectEq(t, 20, resolved.Paper())
	testutil.ExpectEq(t, 20, resolved.Ribbon())

	node := syntax.NewTuple(syntax.NewAtom("alpha"), syntax.NewAtom("beta"), syntax.NewAtom("gamma"))
	testutil.ExpectEq(t, "{alpha, beta, gamma}", printer.Format(node, opts...))

	cfg.Ribbon = 0
	cfg.Profile = "rebar3"
	opts, err = cfg.Options()
	testutil.AssertNoError(t, err)
	testutil.ExpectEq(t, 65, printer.NewOptions(opts...).Ribbon())
}

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

package msgplugin_test

import (
	"context"
	"testing"

	"github.com/alanz/rebar3-format/internal/msgplugin"
	"github.com/alanz/rebar3-format/internal/testutil"
	"github.com/alanz/rebar3-format/printer"
	"github.com/alanz/rebar3-format/syntax"
)

func uleb(n int) []byte {
	var out []byte
	for {
		b := byte(n & 0x7f)
		n >>= 7
		if n == 0 {
			return append(out, b)
		}
		out = append(out, b|0x80)
	}
}

func section(id byte, content ...byte) []byte {
	out := append([]byte{id}, uleb(len(content))...)
	return append(out, content...)
}

func name(s string) []byte {
	return append(uleb(len(s)), s...)
}

func concat(parts ...[]byte) []byte {
	var out []byte
	for _, part := range parts {
		out = append(out, part...)
	}
	return out
}

// stubPlugin assembles a plugin that answers every request with a fixed
// response text and return code. Its allocator is a bump pointer starting
// at 1024; the response lives in a data segment at address 16.
func stubPlugin(rc byte, response string) []byte {
	allocate := []byte{
		0x00,       // no locals
		0x23, 0x00, // global.get 0
		0x23, 0x00, // global.get 0
		0x20, 0x00, // local.get 0
		0x6a,       // i32.add
		0x24, 0x00, // global.set 0
		0x0b,       // end
	}
	message := []byte{
		0x00,             // no locals
		0x20, 0x01,       // local.get 1
		0x41, 0x10,       // i32.const 16
		0x36, 0x02, 0x00, // i32.store
		0x41, rc,         // i32.const rc
		0x0b,             // end
	}
	data := concat(
		[]byte{byte(len(response)), 0, 0, 0},
		[]byte(response),
	)
	return concat(
		[]byte{0x00, 0x61, 0x73, 0x6d, 0x01, 0x00, 0x00, 0x00},
		section(1, concat(
			[]byte{0x02},
			[]byte{0x60, 0x01, 0x7f, 0x01, 0x7f},
			[]byte{0x60, 0x02, 0x7f, 0x7f, 0x01, 0x7f},
		)...),
		section(3, 0x02, 0x00, 0x01),
		section(5, 0x01, 0x00, 0x01),
		section(6, 0x01, 0x7f, 0x01, 0x41, 0x80, 0x08, 0x0b),
		section(7, concat(
			[]byte{0x03},
			name("memory"), []byte{0x02, 0x00},
			name("rebar3_format_allocate"), []byte{0x00, 0x00},
			name("rebar3_format_message"), []byte{0x00, 0x01},
		)...),
		section(10, concat(
			[]byte{0x02},
			uleb(len(allocate)), allocate,
			uleb(len(message)), message,
		)...),
		section(11, concat(
			[]byte{0x01, 0x00, 0x41, 0x10, 0x0b},
			uleb(len(data)), data,
		)...),
	)
}

func TestFormatMessage(t *testing.T) {
	ctx := context.Background()
	plugin, err := msgplugin.Load(ctx, stubPlugin(0, "syntax error"))
	testutil.AssertNoError(t, err)
	defer plugin.Close(ctx)

	msg, err := plugin.FormatMessage("erl_parse", syntax.NewAtom("bad"))
	testutil.AssertNoError(t, err)
	testutil.ExpectEq(t, "syntax error", msg)

	// Instances are not reused, so a second call sees a fresh allocator.
	msg, err = plugin.FormatMessageContext(ctx, "erl_parse", syntax.NewAtom("bad"))
	testutil.AssertNoError(t, err)
	testutil.ExpectEq(t, "syntax error", msg)
}

func TestFormatMessageError(t *testing.T) {
	ctx := context.Background()
	plugin, err := msgplugin.Load(ctx, stubPlugin(1, "unknown descriptor"))
	testutil.AssertNoError(t, err)
	defer plugin.Close(ctx)

	_, err = plugin.FormatMessage("erl_lint", syntax.NewAtom("bad"))
	testutil.AssertError(t, err)
	testutil.ExpectEq(t, "msgplugin: unknown descriptor", err.Error())
}

func TestPrinterFallback(t *testing.T) {
	ctx := context.Background()
	good, err := msgplugin.Load(ctx, stubPlugin(0, "syntax error"))
	testutil.AssertNoError(t, err)
	defer good.Close(ctx)
	bad, err := msgplugin.Load(ctx, stubPlugin(1, "unknown descriptor"))
	testutil.AssertNoError(t, err)
	defer bad.Close(ctx)

	node := syntax.NewFormList(
		&syntax.ErrorMarker{Line: 7, Module: "erl_parse", Descriptor: syntax.NewAtom("bad")},
		&syntax.ErrorMarker{Line: 9, Module: "erl_lint", Descriptor: syntax.NewAtom("bad")},
	)
	got := printer.Format(node,
		printer.WithMessageFormatter("erl_parse", good),
		printer.WithMessageFormatter("erl_lint", bad),
	)
	testutil.ExpectEq(t, "** 7: syntax error **\n\n** {9, erl_lint, bad} **", got)
}

func TestLoadErrors(t *testing.T) {
	ctx := context.Background()

	_, err := msgplugin.Load(ctx, []byte("not wasm"))
	testutil.AssertError(t, err)

	empty := []byte{0x00, 0x61, 0x73, 0x6d, 0x01, 0x00, 0x00, 0x00}
	_, err = msgplugin.Load(ctx, empty)
	testutil.AssertError(t, err)
	testutil.ExpectEq(t, `msgplugin: missing export "rebar3_format_allocate"`, err.Error())

	_, err = msgplugin.LoadFile(ctx, "testdata/does-not-exist.wasm")
	testutil.AssertError(t, err)
}

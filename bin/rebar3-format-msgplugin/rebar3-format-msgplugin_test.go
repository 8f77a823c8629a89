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
	"testing"

	"github.com/alanz/rebar3-format/internal/testutil"
	"github.com/alanz/rebar3-format/syntax"
)

func TestFormatMessage(t *testing.T) {
	fa := syntax.NewTuple(syntax.NewAtom("foo"), syntax.NewInteger(2))
	tests := []struct {
		name       string
		module     string
		descriptor syntax.Node
		want       string
	}{
		{
			name:   "parse_error",
			module: "erl_parse",
			descriptor: syntax.NewList(
				syntax.NewString("syntax error before: "),
				syntax.NewString("'end'"),
			),
			want: "syntax error before: 'end'",
		},
		{
			name:       "parse_term",
			module:     "erl_parse",
			descriptor: syntax.NewTuple(syntax.NewAtom("bad"), syntax.NewInteger(1)),
			want:       "{bad, 1}",
		},
		{
			name:       "undefined_function",
			module:     "erl_lint",
			descriptor: syntax.NewTuple(syntax.NewAtom("undefined_function"), fa),
			want:       "function foo/2 undefined",
		},
		{
			name:       "unbound_var",
			module:     "erl_lint",
			descriptor: syntax.NewTuple(syntax.NewAtom("unbound_var"), syntax.NewAtom("X")),
			want:       "variable 'X' is unbound",
		},
		{
			name:       "export_all",
			module:     "erl_lint",
			descriptor: syntax.NewAtom("export_all"),
			want:       "export_all flag enabled - all functions will be exported",
		},
		{
			name:       "illegal",
			module:     "erl_scan",
			descriptor: syntax.NewTuple(syntax.NewAtom("illegal"), syntax.NewAtom("character")),
			want:       "illegal character",
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, err := formatMessage(test.module, test.descriptor)
			testutil.AssertNoError(t, err)
			testutil.ExpectEq(t, test.want, got)
		})
	}
}

func TestFormatMessageUnknown(t *testing.T) {
	_, err := formatMessage("erl_lint", syntax.NewAtom("no_such_warning"))
	testutil.AssertError(t, err)
	_, err = formatMessage("my_module", syntax.NewAtom("x"))
	testutil.AssertError(t, err)
}

func TestHandleRequest(t *testing.T) {
	msg, err := handleRequest([]byte(`{"module":"erl_lint","descriptor":` +
		`{"type":"tuple","elements":[{"type":"atom","name":"undefined_record"},{"type":"atom","name":"state"}]}}`))
	testutil.AssertNoError(t, err)
	testutil.ExpectEq(t, "record state undefined", msg)

	_, err = handleRequest([]byte(`{"module":"erl_lint","descriptor":{"type":"nope"}}`))
	testutil.ExpectErrorCode(t, 2004, err)
}

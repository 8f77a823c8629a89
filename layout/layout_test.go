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

package layout_test

import (
	"testing"

	"github.com/alanz/rebar3-format/internal/testutil"
	"github.com/alanz/rebar3-format/layout"
)

func TestFormat(t *testing.T) {
	text := layout.Text
	comment := func(s string) layout.Document {
		return layout.Floating(layout.Break(text(s)), 1, 0)
	}

	tests := []struct {
		name   string
		doc    layout.Document
		paper  int
		ribbon int
		want   string
	}{
		{
			name: "text",
			doc:  text("hello"),
			want: "hello",
		},
		{
			name: "sep_horizontal",
			doc:  layout.Sep(text("a"), text("b")),
			want: "a b",
		},
		{
			name:  "sep_vertical",
			doc:   layout.Sep(text("aaaa"), text("bbbb")),
			paper: 6,
			want:  "aaaa\nbbbb",
		},
		{
			name:  "sep_beside_margin",
			doc:   layout.Beside(text("f("), layout.Sep(text("aaaa"), text("bbbb"))),
			paper: 8,
			want:  "f(aaaa\n  bbbb",
		},
		{
			name:  "follow",
			doc:   layout.Follow(text("case"), text("X"), 4),
			paper: 5,
			want:  "case\n    X",
		},
		{
			name: "beside_above",
			doc:  layout.Beside(text("foo("), layout.Above(text("a"), text("b"))),
			want: "foo(a\n    b",
		},
		{
			name: "beside_absorbs_nest",
			doc:  layout.Beside(text("ab"), layout.Nest(4, text("c"))),
			want: "abc",
		},
		{
			name: "above_nest",
			doc:  layout.Above(text("a"), layout.Nest(2, text("b"))),
			want: "a\n  b",
		},
		{
			name:  "par_fill",
			doc:   layout.Par(0, text("xx"), text("xx"), text("xx"), text("xx")),
			paper: 8,
			want:  "xx xx xx\nxx",
		},
		{
			name:  "par_offset",
			doc:   layout.Par(2, text("xx"), text("xx"), text("xx"), text("xx")),
			paper: 8,
			want:  "xx xx xx\n  xx",
		},
		{
			name:   "ribbon",
			doc:    layout.Nest(10, layout.Sep(text("aaaa"), text("bbbb"))),
			ribbon: 5,
			want:   "          aaaa\n          bbbb",
		},
		{
			name: "break",
			doc:  layout.Beside(layout.Break(text("% c")), text("x")),
			want: "% c\nx",
		},
		{
			name: "blank_line",
			doc:  layout.Stack(text("a"), text(""), text("b")),
			want: "a\n\nb",
		},
		{
			name: "trailing_whitespace",
			doc:  layout.Above(text("a "), text("b")),
			want: "a\nb",
		},
		{
			name: "float_swap",
			doc: layout.Beside(
				layout.Beside(text("X"), comment("  % c")),
				layout.Float(text(",")),
			),
			want: "X,  % c",
		},
		{
			name: "float_into_par",
			doc: layout.Beside(
				layout.Par(0, text("a"), layout.Beside(text("b"), comment(" % c"))),
				layout.Float(text(")")),
			),
			want: "a b) % c",
		},
		{
			name: "float_above",
			doc: layout.Above(
				layout.Floating(text("x"), 0, 1),
				layout.Floating(text("y"), 0, 0),
			),
			want: "y\nx",
		},
		{
			name: "break_in_flat_sep",
			doc:  layout.Sep(layout.Break(text("a")), text("b")),
			want: "a\nb",
		},
		{
			name: "break_in_flat_par",
			doc:  layout.Par(2, layout.Break(text("a  % c")), text("+"), text("b")),
			want: "a  % c\n  + b",
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			paper, ribbon := test.paper, test.ribbon
			if paper == 0 {
				paper = 80
			}
			if ribbon == 0 {
				ribbon = 65
			}
			got := layout.Format(test.doc, paper, ribbon)
			testutil.ExpectNoDiff(t, test.want, got)
		})
	}
}

func TestNormalization(t *testing.T) {
	x := layout.Text("x")
	testutil.ExpectTrue(t, layout.IsEmpty(layout.Sep()))
	testutil.ExpectTrue(t, layout.IsEmpty(layout.Beside(layout.Empty(), layout.Empty())))
	testutil.ExpectTrue(t, layout.IsEmpty(layout.Nest(4, layout.Empty())))
	testutil.ExpectTrue(t, layout.IsEmpty(layout.Floating(layout.Empty(), 1, 1)))
	testutil.ExpectFalse(t, layout.IsEmpty(layout.Text("")))
	testutil.ExpectEq(t, x, layout.Par(2, layout.Empty(), x, layout.Empty()))
	testutil.ExpectEq(t, x, layout.Nest(0, x))
	testutil.ExpectEq(t, x, layout.Above(layout.Empty(), x))
	testutil.ExpectEq(t, x, layout.Concat(layout.Empty(), x))
}

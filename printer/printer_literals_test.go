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

package printer_test

import (
	"strings"
	"testing"

	"github.com/alanz/rebar3-format/internal/testutil"
	"github.com/alanz/rebar3-format/printer"
)

func TestTidyFloat(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"3.000000", "3.0"},
		{"1.50000e+00", "1.5"},
		{"2.0e-000", "2.0"},
		{"1.0e05", "1.0e+5"},
		{"6.02214e-023", "6.02214e-23"},
		{"0.1234", "0.1234"},
		{"12.5000001", "12.5"},
		{"-1.0", "-1.0"},
	}
	for _, test := range tests {
		t.Run(test.in, func(t *testing.T) {
			got := printer.TidyFloat(test.in)
			testutil.ExpectEq(t, test.want, got)
			testutil.ExpectEq(t, got, printer.TidyFloat(got))
		})
	}
}

func TestSplitString(t *testing.T) {
	got := printer.SplitString(`"hello world foo bar baz"`, 10)
	testutil.ExpectSliceEq(t, []string{`"hello world "`, `"foo bar baz"`}, got)
}

func TestSplitStringShort(t *testing.T) {
	testutil.ExpectSliceEq(t, []string{`"short"`}, printer.SplitString(`"short"`, 37))
}

func TestSplitStringEscapes(t *testing.T) {
	literals := []string{
		`"` + strings.Repeat(`abc\n`, 20) + `"`,
		`"` + strings.Repeat(`\x{1F600}xy`, 10) + `"`,
		`"` + strings.Repeat(`\0123 `, 15) + `"`,
		`"` + strings.Repeat(`a\^Gb`, 15) + `"`,
	}
	for _, literal := range literals {
		segments := printer.SplitString(literal, 12)
		testutil.ExpectTrue(t, len(segments) > 1)

		var joined strings.Builder
		for _, segment := range segments {
			testutil.ExpectTrue(t, strings.HasPrefix(segment, `"`) && strings.HasSuffix(segment, `"`))
			content := segment[1 : len(segment)-1]
			if n := len(content) - len(strings.TrimRight(content, `\`)); n%2 != 0 {
				t.Errorf("segment %q ends inside an escape", segment)
			}
			joined.WriteString(content)
		}
		testutil.ExpectEq(t, literal[1:len(literal)-1], joined.String())
	}
}

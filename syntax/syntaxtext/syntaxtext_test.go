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

package syntaxtext_test

import (
	"testing"

	"github.com/alanz/rebar3-format/internal/testutil"
	"github.com/alanz/rebar3-format/syntax"
	"github.com/alanz/rebar3-format/syntax/syntaxtext"
)

func TestEncode(t *testing.T) {
	node := syntax.NewFormList(
		syntax.AddPrecomments(
			syntax.NewAttribute("module", syntax.NewAtom("m")),
			syntax.NewComment(" header"),
		),
		&syntax.Macro{Name: syntax.NewVariable("M"), Arguments: []syntax.Node{}},
		syntax.NewList(syntax.NewChar('a')),
	)
	want := `form_list {
	forms = [
		attribute {
			pre_comments = [
				comment {
					lines = [" header"]
				}
			]
			name = atom {
				name = "m"
			}
			arguments = [
				atom {
					name = "m"
				}
			]
		}
		macro {
			name = variable {
				name = "M"
			}
			arguments = []
		}
		list {
			prefix = [
				char {
					value = 'a'
				}
			]
		}
	]
}
`
	testutil.ExpectNoDiff(t, want, syntaxtext.Encode(node))
}

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

package printer

import (
	"strings"

	"github.com/alanz/rebar3-format/layout"
	"github.com/alanz/rebar3-format/syntax"
)

const defaultCommentPadding = 2

// Leading comments float above the node at the lowest priority, so they
// stay in front of anything else that floats. Trailing comments float right
// past separators and closing brackets, and end the line.
func layPrecomments(comments []*syntax.Comment, d layout.Document) layout.Document {
	if len(comments) == 0 {
		return d
	}
	return layout.Above(layout.Floating(layout.Break(stackComments(comments, false)), -1, -1), d)
}

func layPostcomments(comments []*syntax.Comment, d layout.Document) layout.Document {
	if len(comments) == 0 {
		return d
	}
	return layout.Beside(d, layout.Floating(layout.Break(stackComments(comments, true)), 1, 0))
}

func stackComments(comments []*syntax.Comment, pad bool) layout.Document {
	docs := make([]layout.Document, len(comments))
	for ii, comment := range comments {
		d := stackCommentLines(comment.Lines)
		if pad {
			padding := defaultCommentPadding
			if comment.Padding != nil {
				padding = *comment.Padding
			}
			d = layout.Beside(layout.Text(spaces(padding)), d)
		}
		docs[ii] = d
	}
	return layout.Stack(docs...)
}

func stackCommentLines(lines []string) layout.Document {
	if len(lines) == 0 {
		return layout.Text("%")
	}
	docs := make([]layout.Document, len(lines))
	for ii, line := range lines {
		docs[ii] = layout.Text("%" + line)
	}
	return layout.Stack(docs...)
}

// layComment prints a standalone comment, which is unpadded unless the
// comment says otherwise.
func layComment(comment *syntax.Comment) layout.Document {
	d := stackCommentLines(comment.Lines)
	if comment.Padding != nil && *comment.Padding > 0 {
		d = layout.Beside(layout.Text(spaces(*comment.Padding)), d)
	}
	return layout.Float(layout.Break(d))
}

func spaces(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat(" ", n)
}

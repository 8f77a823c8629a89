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

// Package layout is a document algebra for pretty printing. A Document
// describes a set of possible layouts of some text; Format picks one that
// fits within a paper width and a ribbon width (the number of non-indentation
// characters per line).
//
// The combinators follow the classic Hughes / Peyton Jones design: Text is a
// single line, Above stacks documents, Beside joins the last line of one
// document to the first line of the next, Sep and Par choose between
// horizontal and vertical arrangements, and Floating marks documents (such as
// separators and trailing comments) that may move past each other so that
// punctuation stays attached to the code it belongs to.
package layout

import (
	"unicode/utf8"
)

type Document interface {
	isDocument()
}

type empty struct{}

type text struct {
	s     string
	width int
}

type nest struct {
	n int
	d Document
}

type above struct {
	a Document
	b Document
}

type beside struct {
	a Document
	b Document
}

type sep struct {
	ds     []Document
	offset int
	par    bool
}

type floating struct {
	d Document
	h int
	v int
}

func (*empty) isDocument()    {}
func (*text) isDocument()     {}
func (*nest) isDocument()     {}
func (*above) isDocument()    {}
func (*beside) isDocument()   {}
func (*sep) isDocument()      {}
func (*floating) isDocument() {}

var emptyDocument = &empty{}

// Empty is the document with no layout at all. It is the identity of Beside
// and Sep, and of Above when on the left.
func Empty() Document {
	return emptyDocument
}

func IsEmpty(d Document) bool {
	_, ok := d.(*empty)
	return ok
}

// Text is a single line. The empty string is not Empty: Text("") is a line
// of width zero, used for blank lines.
func Text(s string) Document {
	return &text{s: s, width: utf8.RuneCountInString(s)}
}

// Nest indents every line of d by n columns, relative to the enclosing
// margin. A nest directly on the right of Beside has no effect.
func Nest(n int, d Document) Document {
	if n == 0 || IsEmpty(d) {
		return d
	}
	return &nest{n: n, d: d}
}

// Above places b on the lines following a, at the same margin. Above(a,
// Empty()) is a terminated document: anything placed beside it starts on a
// new line.
func Above(a, b Document) Document {
	if IsEmpty(a) {
		return b
	}
	return &above{a: a, b: b}
}

// Beside places b after the last character of a, so that b's first line
// continues a's last line.
func Beside(a, b Document) Document {
	if IsEmpty(a) {
		return b
	}
	if IsEmpty(b) {
		return a
	}
	return &beside{a: a, b: b}
}

// Sep lays out ds horizontally, separated by single spaces, if the result
// fits on one line. Otherwise every element is placed at the same margin.
func Sep(ds ...Document) Document {
	return newSep(ds, 0, false)
}

// Par fills lines like a paragraph: elements stay on the current line while
// they fit, and continuation lines are indented by offset.
func Par(offset int, ds ...Document) Document {
	return newSep(ds, offset, true)
}

func newSep(ds []Document, offset int, par bool) Document {
	var kept []Document
	for _, d := range ds {
		if !IsEmpty(d) {
			kept = append(kept, d)
		}
	}
	switch len(kept) {
	case 0:
		return Empty()
	case 1:
		return kept[0]
	}
	return &sep{ds: kept, offset: offset, par: par}
}

// Floating marks d as free to move past neighbouring floating documents. In
// a horizontal chain, a float with a higher h moves right past one with a
// lower h; in a vertical chain, v is compared the same way.
func Floating(d Document, h, v int) Document {
	if IsEmpty(d) {
		return d
	}
	return &floating{d: d, h: h, v: v}
}

// Float is Floating(d, 0, 0).
func Float(d Document) Document {
	return Floating(d, 0, 0)
}

// Follow places b after a on the same line if both fit, and otherwise on
// the next line indented by offset.
func Follow(a, b Document, offset int) Document {
	return Sep(a, Nest(offset, b))
}

// Break terminates d, forcing whatever follows it onto a new line.
func Break(d Document) Document {
	return Above(d, Empty())
}

// Stack is Above folded over ds.
func Stack(ds ...Document) Document {
	out := Empty()
	for ii := len(ds) - 1; ii >= 0; ii-- {
		if IsEmpty(out) {
			out = ds[ii]
			continue
		}
		out = Above(ds[ii], out)
	}
	return out
}

// Concat is Beside folded over ds.
func Concat(ds ...Document) Document {
	out := Empty()
	for _, d := range ds {
		out = Beside(out, d)
	}
	return out
}

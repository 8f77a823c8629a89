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

package layout

import (
	"strings"
)

// Format lays out d within the given paper and ribbon widths. Lines never
// carry trailing whitespace, and the result has no final newline.
//
// Format is greedy: at each Sep or Par it looks ahead to the next line break
// and commits to the horizontal layout if it fits. A document that cannot
// fit at all is still printed, overflowing the paper.
func Format(d Document, paper, ribbon int) string {
	r := renderer{
		paper:   paper,
		ribbon:  ribbon,
		pending: true,
	}
	r.run(expand(d))
	return trimLines(r.buf.String())
}

type commandKind uint8

const (
	cmdDocument commandKind = iota
	cmdNewline
	cmdBesideRight
	cmdParItem
	cmdSpace
	cmdStop
)

type command struct {
	kind   commandKind
	margin int
	flat   bool
	doc    Document

	// cmdParItem: the column that continuation lines are indented from.
	start int
}

type renderer struct {
	paper  int
	ribbon int

	buf        strings.Builder
	col        int
	lineIndent int
	pending    bool
	started    bool

	stack []command
}

func (r *renderer) push(cmd command) {
	r.stack = append(r.stack, cmd)
}

func (r *renderer) run(d Document) {
	r.push(command{kind: cmdDocument, doc: d})
	for len(r.stack) > 0 {
		cmd := r.stack[len(r.stack)-1]
		r.stack = r.stack[:len(r.stack)-1]
		switch cmd.kind {
		case cmdDocument:
			r.document(cmd)
		case cmdNewline:
			r.pending = true
		case cmdBesideRight:
			margin := r.col
			if r.pending {
				margin = cmd.margin
			}
			doc := cmd.doc
			for {
				n, ok := doc.(*nest)
				if !ok {
					break
				}
				doc = n.d
			}
			r.push(command{kind: cmdDocument, margin: margin, flat: cmd.flat, doc: doc})
		case cmdParItem:
			r.parItem(cmd)
		case cmdSpace:
			if !r.pending {
				r.emit(0, " ", 1)
			}
		}
	}
}

func (r *renderer) document(cmd command) {
	switch d := cmd.doc.(type) {
	case *empty:
	case *text:
		r.emit(cmd.margin, d.s, d.width)
	case *nest:
		r.push(command{kind: cmdDocument, margin: cmd.margin + d.n, flat: cmd.flat, doc: d.d})
	case *floating:
		r.push(command{kind: cmdDocument, margin: cmd.margin, flat: cmd.flat, doc: d.d})
	case *above:
		r.push(command{kind: cmdDocument, margin: cmd.margin, doc: d.b})
		r.push(command{kind: cmdNewline})
		r.push(command{kind: cmdDocument, margin: cmd.margin, doc: d.a})
	case *beside:
		r.push(command{kind: cmdBesideRight, margin: cmd.margin, flat: cmd.flat, doc: d.b})
		r.push(command{kind: cmdDocument, margin: cmd.margin, flat: cmd.flat, doc: d.a})
	case *sep:
		if cmd.flat || r.fits(cmd.margin, d) {
			r.pushFlat(cmd.margin, d)
			return
		}
		last := len(d.ds) - 1
		if d.par {
			for ii := last; ii > 0; ii-- {
				r.push(command{kind: cmdParItem, margin: cmd.margin + d.offset, doc: d.ds[ii], start: cmd.margin})
			}
		} else {
			for ii := last; ii > 0; ii-- {
				r.push(command{kind: cmdDocument, margin: cmd.margin, doc: d.ds[ii]})
				r.push(command{kind: cmdNewline})
			}
		}
		r.push(command{kind: cmdDocument, margin: cmd.margin, doc: d.ds[0]})
	}
}

// pushFlat schedules a horizontal layout. A separating space is dropped
// when the previous element ended with a break, and the elements of a
// paragraph after such a break start at the paragraph's offset.
func (r *renderer) pushFlat(margin int, d *sep) {
	for ii := len(d.ds) - 1; ii >= 0; ii-- {
		itemMargin := margin
		if d.par && ii > 0 {
			itemMargin = margin + d.offset
		}
		r.push(command{kind: cmdDocument, margin: itemMargin, flat: true, doc: d.ds[ii]})
		if ii > 0 {
			r.push(command{kind: cmdSpace})
		}
	}
}

func (r *renderer) parItem(cmd command) {
	if !r.pending && r.fits(cmd.margin, Beside(Text(" "), cmd.doc)) {
		r.emit(cmd.margin, " ", 1)
		r.push(command{kind: cmdDocument, margin: cmd.margin, flat: true, doc: cmd.doc})
		return
	}
	r.pending = true
	r.push(command{kind: cmdDocument, margin: cmd.margin, doc: cmd.doc})
}

func (r *renderer) emit(margin int, s string, width int) {
	if r.pending {
		if r.started {
			r.buf.WriteByte('\n')
		}
		r.buf.WriteString(strings.Repeat(" ", max(margin, 0)))
		r.col = margin
		r.lineIndent = margin
		r.pending = false
	}
	r.buf.WriteString(s)
	r.col += width
	r.started = true
}

// fits reports whether d, laid out flat at the current position, and the
// rest of the line after it stay within both the paper and the ribbon.
func (r *renderer) fits(margin int, d Document) bool {
	col, lineIndent := r.col, r.lineIndent
	if r.pending {
		col, lineIndent = margin, margin
	}
	width := min(r.paper-col, r.ribbon-(col-lineIndent))
	if width < 0 {
		return false
	}

	todo := []command{{kind: cmdDocument, flat: true, doc: d}}
	rest := len(r.stack)
	for {
		var cmd command
		if len(todo) > 0 {
			cmd = todo[len(todo)-1]
			todo = todo[:len(todo)-1]
		} else if rest > 0 {
			rest--
			cmd = r.stack[rest]
		} else {
			return true
		}

		switch cmd.kind {
		case cmdNewline, cmdParItem, cmdStop:
			return true
		case cmdBesideRight:
			todo = append(todo, command{kind: cmdDocument, flat: cmd.flat, doc: cmd.doc})
			continue
		case cmdSpace:
			width -= 1
			if width < 0 {
				return false
			}
			continue
		}

		switch d := cmd.doc.(type) {
		case *text:
			width -= d.width
			if width < 0 {
				return false
			}
		case *nest:
			todo = append(todo, command{kind: cmdDocument, flat: cmd.flat, doc: d.d})
		case *floating:
			todo = append(todo, command{kind: cmdDocument, flat: cmd.flat, doc: d.d})
		case *beside:
			todo = append(todo,
				command{kind: cmdDocument, flat: cmd.flat, doc: d.b},
				command{kind: cmdDocument, flat: cmd.flat, doc: d.a},
			)
		case *above:
			// A terminated document ends the line wherever it appears;
			// anything else vertical cannot be flat.
			if cmd.flat && !IsEmpty(d.b) {
				return false
			}
			todo = append(todo,
				command{kind: cmdStop},
				command{kind: cmdDocument, flat: cmd.flat, doc: d.a},
			)
		case *sep:
			if cmd.flat {
				for ii := len(d.ds) - 1; ii >= 0; ii-- {
					todo = append(todo, command{kind: cmdDocument, flat: true, doc: d.ds[ii]})
					if ii > 0 {
						width -= 1
					}
				}
				if width < 0 {
					return false
				}
			} else {
				todo = append(todo,
					command{kind: cmdStop},
					command{kind: cmdDocument, doc: d.ds[0]},
				)
			}
		}
	}
}

func trimLines(s string) string {
	lines := strings.Split(s, "\n")
	for ii, line := range lines {
		lines[ii] = strings.TrimRight(line, " \t")
	}
	return strings.Join(lines, "\n")
}

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
	"fmt"
	"strconv"

	"github.com/alanz/rebar3-format/layout"
	"github.com/alanz/rebar3-format/syntax"
)

func (p *printer) layErrorMarker(node *syntax.ErrorMarker, ctx Context) layout.Document {
	info := p.layErrorInfo(node.Line, node.Module, node.Descriptor, ctx.ResetPrec())
	return layout.Concat(layout.Text("** "), info, layout.Text(" **"))
}

func (p *printer) layWarningMarker(node *syntax.WarningMarker, ctx Context) layout.Document {
	info := p.layErrorInfo(node.Line, node.Module, node.Descriptor, ctx.ResetPrec())
	return layout.Beside(layout.Text("%% WARNING: "), info)
}

// layErrorInfo asks the formatter registered for module to describe the
// diagnostic. Without a formatter, or if it fails, the diagnostic is
// printed as the term {Line, Module, Descriptor}.
func (p *printer) layErrorInfo(line int, module string, descriptor syntax.Node, ctx Context) layout.Document {
	if descriptor == nil {
		descriptor = syntax.NewAtom("undefined")
	}
	if message, ok := p.formatMessage(module, descriptor); ok {
		if line > 0 {
			return layout.Beside(layout.Text(strconv.Itoa(line)+": "), layout.Text(message))
		}
		return layout.Text(message)
	}
	if module == "" {
		return p.lay(descriptor, ctx)
	}
	term := syntax.NewTuple(syntax.NewInteger(int64(line)), syntax.NewAtom(module), descriptor)
	return p.lay(term, ctx)
}

func (p *printer) formatMessage(module string, descriptor syntax.Node) (message string, ok bool) {
	formatter := p.opts.formatters[module]
	if formatter == nil || module == "" {
		return "", false
	}
	defer func() {
		if r := recover(); r != nil {
			message, ok = "", false
		}
	}()
	message, err := formatter.FormatMessage(module, descriptor)
	if err != nil {
		return "", false
	}
	return message, true
}

// errorf formats a panic message for malformed trees.
func errorf(node syntax.Node, format string, args ...any) string {
	return fmt.Sprintf("printer: malformed %s: %s", node.Kind(), fmt.Sprintf(format, args...))
}

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

// Package syntaxtext renders a syntax tree as indented text, one field per
// line, for debugging parser output and printer input.
package syntaxtext

import (
	"fmt"
	"io"
	"reflect"
	"strconv"
	"strings"

	"github.com/alanz/rebar3-format/syntax"
)

func Encode(node syntax.Node) string {
	var buf strings.Builder
	EncodeTo(node, &buf)
	return buf.String()
}

func EncodeTo(node syntax.Node, w io.Writer) error {
	e := encoder{w: w}
	e.visitNode("", node)
	return e.err
}

type encoder struct {
	w      io.Writer
	indent int
	err    error
}

func (e *encoder) line(s string) {
	if e.err != nil {
		return
	}
	if indent := strings.Repeat("\t", e.indent); indent != "" {
		if _, err := io.WriteString(e.w, indent); err != nil {
			e.err = err
			return
		}
	}
	if _, err := io.WriteString(e.w, s); err != nil {
		e.err = err
		return
	}
	if _, err := io.WriteString(e.w, "\n"); err != nil {
		e.err = err
		return
	}
}

func (e *encoder) linef(format string, a ...any) {
	e.line(fmt.Sprintf(format, a...))
}

func (e *encoder) visitNode(name string, node syntax.Node) {
	prefix := ""
	if name != "" {
		prefix = name + " = "
	}
	if node == nil {
		e.linef("%snone", prefix)
		return
	}
	e.linef("%s%s {", prefix, node.Kind())
	e.indent += 1
	e.visitFields(reflect.ValueOf(node).Elem())
	e.indent -= 1
	e.line("}")
}

func (e *encoder) visitFields(v reflect.Value) {
	t := v.Type()
	for ii := 0; ii < t.NumField(); ii++ {
		if e.err != nil {
			return
		}
		field := t.Field(ii)
		if field.Anonymous {
			e.visitFields(v.Field(ii))
			continue
		}
		if !field.IsExported() {
			continue
		}
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		e.visitField(name, v.Field(ii).Interface())
	}
}

func (e *encoder) visitField(name string, value any) {
	switch value := value.(type) {
	case syntax.Node:
		e.visitNode(name, value)
	case []syntax.Node:
		if value == nil {
			return
		}
		if len(value) == 0 {
			e.linef("%s = []", name)
			return
		}
		e.linef("%s = [", name)
		e.indent += 1
		for _, item := range value {
			e.visitNode("", item)
		}
		e.indent -= 1
		e.line("]")
	case []*syntax.Comment:
		if len(value) == 0 {
			return
		}
		e.linef("%s = [", name)
		e.indent += 1
		for _, item := range value {
			e.visitNode("", item)
		}
		e.indent -= 1
		e.line("]")
	case []string:
		quoted := make([]string, len(value))
		for ii, s := range value {
			quoted[ii] = strconv.Quote(s)
		}
		e.linef("%s = [%s]", name, strings.Join(quoted, ", "))
	case *int:
		if value != nil {
			e.linef("%s = %d", name, *value)
		}
	case rune:
		e.linef("%s = %s", name, strconv.QuoteRune(value))
	case string:
		e.linef("%s = %s", name, strconv.Quote(value))
	case int:
		if value != 0 {
			e.linef("%s = %d", name, value)
		}
	case bool:
		if value {
			e.linef("%s = true", name)
		}
	case nil:
		// An absent optional child.
	default:
		panic(fmt.Sprintf("syntaxtext: unhandled field %s (%T)", name, value))
	}
}

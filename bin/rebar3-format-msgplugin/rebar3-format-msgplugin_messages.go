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
	"encoding/json"
	"fmt"
	"strings"

	"github.com/alanz/rebar3-format/printer"
	"github.com/alanz/rebar3-format/syntax"
)

type request struct {
	Module     string          `json:"module"`
	Descriptor json.RawMessage `json:"descriptor"`
}

func handleRequest(buf []byte) (string, error) {
	var req request
	if err := json.Unmarshal(buf, &req); err != nil {
		return "", fmt.Errorf("malformed request: %w", err)
	}
	descriptor, err := syntax.DecodeJSON(req.Descriptor)
	if err != nil {
		return "", err
	}
	return formatMessage(req.Module, descriptor)
}

func formatMessage(module string, descriptor syntax.Node) (string, error) {
	switch module {
	case "erl_parse":
		if msg, ok := charList(descriptor); ok {
			return msg, nil
		}
		return term(descriptor), nil
	case "erl_lint":
		return lintMessage(descriptor)
	case "erl_scan":
		return scanMessage(descriptor)
	}
	return "", fmt.Errorf("no messages for module %q", module)
}

func lintMessage(descriptor syntax.Node) (string, error) {
	tag, args := taggedTuple(descriptor)
	switch {
	case tag == "undefined_function" && len(args) == 1:
		return fmt.Sprintf("function %s undefined", functionName(args[0])), nil
	case tag == "unused_function" && len(args) == 1:
		return fmt.Sprintf("function %s is unused", functionName(args[0])), nil
	case tag == "redefine_function" && len(args) == 1:
		return fmt.Sprintf("function %s already defined", functionName(args[0])), nil
	case tag == "unbound_var" && len(args) == 1:
		return fmt.Sprintf("variable %s is unbound", term(args[0])), nil
	case tag == "unused_var" && len(args) == 1:
		return fmt.Sprintf("variable %s is unused", term(args[0])), nil
	case tag == "undefined_record" && len(args) == 1:
		return fmt.Sprintf("record %s undefined", term(args[0])), nil
	case tag == "export_all" && len(args) == 0:
		return "export_all flag enabled - all functions will be exported", nil
	}
	return "", fmt.Errorf("unknown erl_lint descriptor %s", term(descriptor))
}

func scanMessage(descriptor syntax.Node) (string, error) {
	tag, args := taggedTuple(descriptor)
	switch {
	case tag == "illegal" && len(args) == 1:
		return fmt.Sprintf("illegal %s", term(args[0])), nil
	case tag == "base" && len(args) == 1:
		return fmt.Sprintf("illegal base '%s'", term(args[0])), nil
	}
	return "", fmt.Errorf("unknown erl_scan descriptor %s", term(descriptor))
}

// taggedTuple splits {Tag, Args...}. A bare atom is a tag without
// arguments.
func taggedTuple(node syntax.Node) (string, []syntax.Node) {
	switch node := node.(type) {
	case *syntax.Atom:
		return node.Name, nil
	case *syntax.Tuple:
		if len(node.Elements) > 0 {
			if tag, ok := node.Elements[0].(*syntax.Atom); ok {
				return tag.Name, node.Elements[1:]
			}
		}
	}
	return "", nil
}

func functionName(node syntax.Node) string {
	if fa, ok := node.(*syntax.Tuple); ok && len(fa.Elements) == 2 {
		return term(fa.Elements[0]) + "/" + term(fa.Elements[1])
	}
	return term(node)
}

// charList flattens a string, or a list of strings, into one message.
func charList(node syntax.Node) (string, bool) {
	switch node := node.(type) {
	case *syntax.String:
		return node.Value, true
	case *syntax.Nil:
		return "", true
	case *syntax.List:
		if node.Suffix != nil {
			return "", false
		}
		var sb strings.Builder
		for _, elem := range node.Prefix {
			s, ok := charList(elem)
			if !ok {
				return "", false
			}
			sb.WriteString(s)
		}
		return sb.String(), true
	}
	return "", false
}

func term(node syntax.Node) string {
	return printer.Format(node, printer.WithPaper(1<<16), printer.WithRibbon(1<<16))
}

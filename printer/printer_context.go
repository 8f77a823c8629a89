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
	"github.com/alanz/rebar3-format/layout"
)

// ClauseKind selects how a clause is laid out. The same syntax node is used
// for function clauses, case branches, if branches and so on; only the
// enclosing construct knows which.
type ClauseKind uint8

const (
	ClauseNone ClauseKind = iota
	ClauseCase
	ClauseIf
	ClauseReceive
	ClauseTry
	ClauseFun
	ClauseSpec
	ClauseFunction
)

func (k ClauseKind) String() string {
	switch k {
	case ClauseNone:
		return "none"
	case ClauseCase:
		return "case"
	case ClauseIf:
		return "if"
	case ClauseReceive:
		return "receive"
	case ClauseTry:
		return "try"
	case ClauseFun:
		return "fun"
	case ClauseSpec:
		return "spec"
	case ClauseFunction:
		return "function"
	}
	return "unknown"
}

// Context is passed by value down the tree. Prec is the minimum precedence
// an expression must have to be printed without parentheses.
type Context struct {
	Prec        int
	Paper       int
	Ribbon      int
	BreakIndent int
	SubIndent   int
	Encoding    Encoding

	Clause ClauseKind

	// FunctionName is the layout of the name printed before each clause
	// when Clause is ClauseFunction.
	FunctionName layout.Document

	// InType is set inside type expressions, where operators use the type
	// precedence table.
	InType bool
}

func (c Context) ResetPrec() Context {
	c.Prec = 0
	return c
}

func (c Context) SetPrec(prec int) Context {
	c.Prec = prec
	return c
}

func (c Context) WithClause(kind ClauseKind) Context {
	c.Clause = kind
	c.FunctionName = nil
	return c
}

func (c Context) WithFunctionName(name layout.Document) Context {
	c.Clause = ClauseFunction
	c.FunctionName = name
	return c
}

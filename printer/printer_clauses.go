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
	"github.com/alanz/rebar3-format/syntax"
)

// layClauses stacks clauses vertically, separated by ";". The clause
// context of ctx decides how each clause head is printed.
func (p *printer) layClauses(clauses []syntax.Node, ctx Context) layout.Document {
	return layout.Stack(p.seq(clauses, floatText(";"), ctx)...)
}

func (p *printer) layBody(body []syntax.Node, ctx Context) layout.Document {
	return layout.Sep(p.seq(body, floatText(","), ctx)...)
}

func (p *printer) layClause(node *syntax.Clause, ctx Context) layout.Document {
	ctx1 := ctx.ResetPrec().WithClause(ClauseNone)
	patterns := layout.Par(0, p.seq(node.Patterns, floatText(","), ctx1)...)
	var guard layout.Document
	if node.Guard != nil {
		guard = p.lay(node.Guard, ctx1)
	}
	body := p.layBody(node.Body, ctx1)

	switch ctx.Clause {
	case ClauseFunction:
		head := layout.Beside(ctx.FunctionName, layParentheses(patterns))
		return appendClauseBody(body, appendGuard(guard, head, ctx1), ctx1)
	case ClauseIf:
		if guard == nil {
			guard = layout.Text("true")
		}
		return appendClauseBody(body, guard, ctx1)
	case ClauseCase, ClauseReceive, ClauseTry:
		return appendClauseBody(body, appendGuard(guard, patterns, ctx1), ctx1)
	}
	return appendClauseBody(body, appendGuard(guard, layParentheses(patterns), ctx1), ctx1)
}

func appendGuard(guard, d layout.Document, ctx Context) layout.Document {
	if guard == nil {
		return d
	}
	return layout.Par(ctx.BreakIndent, d, layout.Follow(layout.Text("when"), guard, ctx.SubIndent))
}

func appendClauseBody(body, head layout.Document, ctx Context) layout.Document {
	return layout.Sep(layout.Beside(head, floatText(" ->")), layout.Nest(ctx.BreakIndent, body))
}

func (p *printer) layFunction(node *syntax.Function, ctx Context) layout.Document {
	ctx1 := ctx.ResetPrec().WithClause(ClauseNone)
	name := p.lay(node.Name, ctx1)
	clauses := p.layClauses(node.Clauses, ctx1.WithFunctionName(name))
	return layout.Beside(clauses, floatText("."))
}

func (p *printer) layFunExpr(name syntax.Node, clauses []syntax.Node, ctx Context) layout.Document {
	ctx1 := ctx.ResetPrec().WithClause(ClauseFun)
	if name != nil {
		ctx1 = ctx1.WithFunctionName(p.lay(name, ctx1.WithClause(ClauseNone)))
	}
	d := p.layClauses(clauses, ctx1)
	return layout.Sep(layout.Follow(layout.Text("fun"), d, ctx1.SubIndent), layout.Text("end"))
}

func (p *printer) layCase(node *syntax.CaseExpr, ctx Context) layout.Document {
	ctx1 := ctx.ResetPrec().WithClause(ClauseNone)
	argument := p.lay(node.Argument, ctx1)
	clauses := p.layClauses(node.Clauses, ctx1.WithClause(ClauseCase))
	return layout.Sep(
		layout.Par(ctx1.BreakIndent, layout.Follow(layout.Text("case"), argument, ctx1.SubIndent), layout.Text("of")),
		layout.Nest(ctx1.BreakIndent, clauses),
		layout.Text("end"),
	)
}

func (p *printer) layIf(node *syntax.IfExpr, ctx Context) layout.Document {
	ctx1 := ctx.ResetPrec().WithClause(ClauseIf)
	clauses := p.layClauses(node.Clauses, ctx1)
	return layout.Sep(layout.Follow(layout.Text("if"), clauses, ctx1.BreakIndent), layout.Text("end"))
}

func (p *printer) layReceive(node *syntax.ReceiveExpr, ctx Context) layout.Document {
	ctx1 := ctx.ResetPrec().WithClause(ClauseNone)
	d := p.layClauses(node.Clauses, ctx1.WithClause(ClauseReceive))
	if node.Timeout != nil {
		timeout := p.lay(node.Timeout, ctx1)
		action := p.layBody(node.Action, ctx1)
		after := layout.Follow(floatText("after"), appendClauseBody(action, timeout, ctx1), ctx1.BreakIndent)
		d = layout.Sep(d, after)
	}
	return layout.Sep(layout.Text("receive"), layout.Nest(ctx1.BreakIndent, d), layout.Text("end"))
}

// layTry prints only the sections that are present:
//
//	try Body [of Clauses] [catch Handlers] [after After] end
func (p *printer) layTry(node *syntax.TryExpr, ctx Context) layout.Document {
	ctx1 := ctx.ResetPrec().WithClause(ClauseNone)
	indent := ctx1.BreakIndent
	body := p.layBody(node.Body, ctx1)

	es := []layout.Document{layout.Text("end")}
	if len(node.After) > 0 {
		es = append([]layout.Document{
			layout.Text("after"),
			layout.Nest(indent, p.layBody(node.After, ctx1)),
		}, es...)
	}
	if len(node.Handlers) > 0 {
		es = append([]layout.Document{
			layout.Text("catch"),
			layout.Nest(indent, p.layClauses(node.Handlers, ctx1.WithClause(ClauseTry))),
		}, es...)
	}
	if len(node.Clauses) > 0 {
		es = append([]layout.Document{
			layout.Text("of"),
			layout.Nest(indent, p.layClauses(node.Clauses, ctx1.WithClause(ClauseTry))),
		}, es...)
	}
	head := layout.Par(0, layout.Follow(layout.Text("try"), body, ctx1.SubIndent), es[0])
	return layout.Sep(append([]layout.Document{head}, es[1:]...)...)
}

func (p *printer) layClassQualifier(node *syntax.ClassQualifier, ctx Context) layout.Document {
	ctx1 := ctx.SetPrec(maxPrec)
	d := layout.Concat(p.lay(node.Class, ctx1), layout.Text(":"), p.lay(node.Body, ctx1))
	if node.Stacktrace != nil {
		d = layout.Concat(d, layout.Text(":"), p.lay(node.Stacktrace, ctx1))
	}
	return d
}

func (p *printer) layBlock(node *syntax.BlockExpr, ctx Context) layout.Document {
	ctx1 := ctx.ResetPrec().WithClause(ClauseNone)
	return layout.Sep(
		layout.Text("begin"),
		layout.Nest(ctx1.BreakIndent, p.layBody(node.Body, ctx1)),
		layout.Text("end"),
	)
}

func (p *printer) layMaybe(node *syntax.MaybeExpr, ctx Context) layout.Document {
	ctx1 := ctx.ResetPrec().WithClause(ClauseNone)
	es := []layout.Document{
		layout.Text("maybe"),
		layout.Nest(ctx1.BreakIndent, p.layBody(node.Body, ctx1)),
	}
	if node.Else != nil {
		es = append(es, p.lay(node.Else, ctx1))
	}
	return layout.Sep(append(es, layout.Text("end"))...)
}

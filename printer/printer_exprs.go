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
	"slices"

	"github.com/alanz/rebar3-format/layout"
	"github.com/alanz/rebar3-format/syntax"
)

// lay is the entry point for every node: it runs the hook, if any, and
// attaches the node's comments to its layout.
func (p *printer) lay(node syntax.Node, ctx Context) layout.Document {
	if node.Kind().IsType() {
		ctx.InType = true
	}
	var d layout.Document
	if hook := p.opts.hook; hook != nil {
		d = hook(node, ctx, func(ctx Context) layout.Document {
			return p.layNode(node, ctx)
		})
	} else {
		d = p.layNode(node, ctx)
	}
	if syntax.HasComments(node) {
		d = layPostcomments(node.Postcomments(), d)
		d = layPrecomments(node.Precomments(), d)
	}
	return d
}

func (p *printer) layNode(node syntax.Node, ctx Context) layout.Document {
	switch node := node.(type) {
	case *syntax.Atom:
		return layout.Text(atomLiteral(node.Name, ctx.Encoding))
	case *syntax.Variable:
		return layout.Text(node.Name)
	case *syntax.Integer:
		return layout.Text(node.Value)
	case *syntax.Float:
		return layout.Text(TidyFloat(node.Literal))
	case *syntax.Char:
		return layout.Text(charLiteral(node.Value, ctx.Encoding))
	case *syntax.String:
		return layString(node.Value, ctx)
	case *syntax.Nil:
		return layout.Text("[]")
	case *syntax.Underscore:
		return layout.Text("_")
	case *syntax.Text:
		return layout.Text(node.Text)
	case *syntax.Operator:
		return layout.Text(node.Name)
	case *syntax.Comment:
		return layComment(node)
	case *syntax.EOFMarker:
		return layout.Empty()

	case *syntax.Tuple:
		return p.layBrackets("{", node.Elements, "}", ctx)
	case *syntax.List:
		return p.layList(node, ctx)
	case *syntax.Binary:
		return p.layBrackets("<<", node.Fields, ">>", ctx)
	case *syntax.BinaryField:
		return p.layBinaryField(node, ctx)
	case *syntax.SizeQualifier:
		ctx1 := ctx.SetPrec(maxPrec)
		return layout.Concat(p.lay(node.Body, ctx1), layout.Text(":"), p.lay(node.Size, ctx1))
	case *syntax.MapExpr:
		return p.layMapExpr(node, ctx)
	case *syntax.MapFieldAssoc:
		return p.layAssoc(node.Name, "=>", node.Value, ctx)
	case *syntax.MapFieldExact:
		return p.layAssoc(node.Name, ":=", node.Value, ctx)
	case *syntax.InfixExpr:
		return p.layInfix(node, ctx)
	case *syntax.PrefixExpr:
		return p.layPrefix(node, ctx)
	case *syntax.MatchExpr:
		return p.layMatch(node.Pattern, " =", node.Body, ctx)
	case *syntax.MaybeMatchExpr:
		return p.layMatch(node.Pattern, " ?=", node.Body, ctx)
	case *syntax.Application:
		return p.layApplication(node, ctx)
	case *syntax.ModuleQualifier:
		prec := valueInfix[":"]
		return layout.Concat(
			p.lay(node.Module, ctx.SetPrec(prec.left)),
			layout.Text(":"),
			p.lay(node.Body, ctx.SetPrec(prec.right)),
		)
	case *syntax.ArityQualifier:
		ctx1 := ctx.ResetPrec()
		return layout.Concat(p.lay(node.Body, ctx1), layout.Text("/"), p.lay(node.Arity, ctx1))
	case *syntax.ImplicitFun:
		return layout.Beside(floatText("fun "), p.lay(node.Name, ctx.ResetPrec()))
	case *syntax.Parentheses:
		return layParentheses(p.lay(node.Body, ctx.ResetPrec()))
	case *syntax.Conjunction:
		return layout.Par(0, p.seq(node.Body, floatText(","), ctx.ResetPrec())...)
	case *syntax.Disjunction:
		return layout.Sep(p.seq(node.Body, floatText(";"), ctx.ResetPrec())...)
	case *syntax.ListComp:
		return p.layComprehension("[", node.Template, node.Body, "]", ctx)
	case *syntax.BinaryComp:
		return p.layComprehension("<< ", node.Template, node.Body, " >>", ctx)
	case *syntax.Generator:
		return p.layGenerator(node.Pattern, "<- ", node.Body, ctx)
	case *syntax.BinaryGenerator:
		return p.layGenerator(node.Pattern, "<= ", node.Body, ctx)
	case *syntax.RecordExpr:
		return p.layRecordExpr(node, ctx)
	case *syntax.RecordField:
		return p.layRecordField(node, ctx)
	case *syntax.RecordAccess:
		return p.layRecordAccess(node, ctx)
	case *syntax.RecordIndexExpr:
		prec := valuePrefix["#"]
		d := layout.Concat(
			layout.Text("#"),
			p.lay(node.Type, ctx.ResetPrec()),
			layout.Text("."),
			p.lay(node.Field, ctx.SetPrec(prec.right)),
		)
		return maybeParentheses(d, prec.own, ctx)
	case *syntax.Macro:
		return p.layMacro(node, ctx)

	case *syntax.Function:
		return p.layFunction(node, ctx)
	case *syntax.Clause:
		return p.layClause(node, ctx)
	case *syntax.FunExpr:
		return p.layFunExpr(nil, node.Clauses, ctx)
	case *syntax.NamedFunExpr:
		return p.layFunExpr(node.Name, node.Clauses, ctx)
	case *syntax.CaseExpr:
		return p.layCase(node, ctx)
	case *syntax.IfExpr:
		return p.layIf(node, ctx)
	case *syntax.ReceiveExpr:
		return p.layReceive(node, ctx)
	case *syntax.TryExpr:
		return p.layTry(node, ctx)
	case *syntax.ClassQualifier:
		return p.layClassQualifier(node, ctx)
	case *syntax.CatchExpr:
		prec := valuePrefix["catch"]
		d := p.lay(node.Body, ctx.SetPrec(prec.right))
		return maybeParentheses(layout.Follow(layout.Text("catch"), d, ctx.SubIndent), prec.own, ctx)
	case *syntax.BlockExpr:
		return p.layBlock(node, ctx)
	case *syntax.MaybeExpr:
		return p.layMaybe(node, ctx)
	case *syntax.ElseExpr:
		ctx1 := ctx.ResetPrec()
		return layout.Sep(
			layout.Text("else"),
			layout.Nest(ctx1.BreakIndent, p.layClauses(node.Clauses, ctx1.WithClause(ClauseCase))),
		)

	case *syntax.Attribute:
		return p.layAttribute(node, ctx)
	case *syntax.FormList:
		return p.layFormList(node, ctx)
	case *syntax.ErrorMarker:
		return p.layErrorMarker(node, ctx)
	case *syntax.WarningMarker:
		return p.layWarningMarker(node, ctx)

	case *syntax.AnnotatedType:
		return p.layAnnotatedType(node, ctx)
	case *syntax.FunType:
		return layout.Text("fun()")
	case *syntax.TypeUnion:
		return p.layTypeUnion(node, ctx)
	case *syntax.FunctionType:
		return p.layFunctionType(node, ctx)
	case *syntax.ConstrainedFunctionType:
		return p.layConstrainedFunctionType(node, ctx)
	case *syntax.Constraint:
		return p.layConstraint(node, ctx)
	case *syntax.IntegerRangeType:
		return p.layIntegerRangeType(node, ctx)
	case *syntax.MapType:
		return p.layMapType(node, ctx)
	case *syntax.MapTypeAssoc:
		return p.layAssoc(node.Name, "=>", node.Value, ctx)
	case *syntax.MapTypeExact:
		return p.layAssoc(node.Name, ":=", node.Value, ctx)
	case *syntax.RecordType:
		return p.layRecordType(node, ctx)
	case *syntax.RecordTypeField:
		ctx1 := ctx.ResetPrec()
		return layout.Par(ctx1.BreakIndent, p.lay(node.Name, ctx1), floatText("::"), p.lay(node.Type, ctx1))
	case *syntax.TupleType:
		if node.AnySize {
			return layout.Text("tuple()")
		}
		return p.layBrackets("{", node.Elements, "}", ctx)
	case *syntax.TypeApplication:
		return p.layBuiltinTypeApplication(node, ctx)
	case *syntax.UserTypeApplication:
		return p.layTypeApplication(node.Name, node.Arguments, ctx)
	case *syntax.BitstringType:
		return p.layBitstringType(node, ctx)
	case *syntax.TypedRecordField:
		return p.layTypedRecordField(node, ctx)
	}
	panic(fmt.Sprintf("printer: unknown node type %T", node))
}

func floatText(s string) layout.Document {
	return layout.Float(layout.Text(s))
}

// seq lays out nodes with sep attached to every element but the last.
func (p *printer) seq(nodes []syntax.Node, sep layout.Document, ctx Context) []layout.Document {
	out := make([]layout.Document, len(nodes))
	for ii, node := range nodes {
		d := p.lay(node, ctx)
		if sep != nil && ii < len(nodes)-1 {
			d = layout.Beside(d, sep)
		}
		out[ii] = d
	}
	return out
}

// layBrackets is the layout of tuples and binaries: comma separated
// elements filled between open and close.
func (p *printer) layBrackets(open string, elements []syntax.Node, close string, ctx Context) layout.Document {
	es := p.seq(elements, floatText(","), ctx.ResetPrec())
	return layout.Concat(floatText(open), layout.Par(0, es...), floatText(close))
}

func (p *printer) layList(node *syntax.List, ctx Context) layout.Document {
	ctx1 := ctx.ResetPrec()
	prefix, suffix := compactList(node)
	d1 := layout.Par(0, p.seq(prefix, floatText(","), ctx1)...)
	var d layout.Document
	if suffix == nil {
		d = layout.Beside(d1, floatText("]"))
	} else {
		tail := layout.Concat(floatText("| "), p.lay(suffix, ctx1), floatText("]"))
		d = layout.Follow(d1, tail, 0)
	}
	return layout.Beside(floatText("["), d)
}

// compactList merges nested list tails into the prefix, so that
// [a | [b | T]] prints as [a, b | T] and a [] tail disappears. Tails with
// comments are kept as written.
func compactList(node *syntax.List) ([]syntax.Node, syntax.Node) {
	prefix, suffix := node.Prefix, node.Suffix
	for suffix != nil && !syntax.HasComments(suffix) {
		switch tail := suffix.(type) {
		case *syntax.List:
			prefix = append(slices.Clip(prefix), tail.Prefix...)
			suffix = tail.Suffix
			continue
		case *syntax.Nil:
			suffix = nil
		}
		break
	}
	return prefix, suffix
}

func (p *printer) layBinaryField(node *syntax.BinaryField, ctx Context) layout.Document {
	ctx1 := ctx.SetPrec(maxPrec)
	d := p.lay(node.Body, ctx1)
	if len(node.Types) == 0 {
		return d
	}
	types := p.seq(node.Types, floatText("-"), ctx1)
	return layout.Concat(d, floatText("/"), layout.Concat(types...))
}

func (p *printer) layMapExpr(node *syntax.MapExpr, ctx Context) layout.Document {
	es := p.seq(node.Fields, floatText(","), ctx.ResetPrec())
	d := layout.Concat(floatText("#{"), layout.Par(0, es...), floatText("}"))
	if node.Argument == nil {
		return d
	}
	prec := valueInfix["#"]
	d = layout.Beside(p.lay(node.Argument, ctx.SetPrec(prec.left)), d)
	return maybeParentheses(d, prec.own, ctx)
}

func (p *printer) layAssoc(name syntax.Node, op string, value syntax.Node, ctx Context) layout.Document {
	ctx1 := ctx.ResetPrec()
	return layout.Par(ctx1.BreakIndent, p.lay(name, ctx1), floatText(op), p.lay(value, ctx1))
}

func (p *printer) layInfix(node *syntax.InfixExpr, ctx Context) layout.Document {
	var prec infixPrec
	if op, ok := node.Operator.(*syntax.Operator); ok {
		prec = ctx.inopPrec(op.Name)
	}
	d1 := p.lay(node.Left, ctx.SetPrec(prec.left))
	d2 := p.lay(node.Operator, ctx.ResetPrec())
	d3 := p.lay(node.Right, ctx.SetPrec(prec.right))
	return maybeParentheses(layout.Par(ctx.SubIndent, d1, d2, d3), prec.own, ctx)
}

func (p *printer) layPrefix(node *syntax.PrefixExpr, ctx Context) layout.Document {
	var prec prefixPrec
	var name string
	if op, ok := node.Operator.(*syntax.Operator); ok {
		name = op.Name
		prec = ctx.preopPrec(name)
	}
	d1 := p.lay(node.Operator, ctx.ResetPrec())
	var d layout.Document
	switch name {
	case "+", "-":
		// A signed literal after a sign would read as "--" or "+-".
		var d2 layout.Document
		if isSignedLiteral(node.Argument) {
			d2 = layParentheses(p.lay(node.Argument, ctx.ResetPrec()))
		} else {
			d2 = p.lay(node.Argument, ctx.SetPrec(prec.right))
		}
		d = layout.Beside(d1, d2)
	default:
		d = layout.Par(ctx.SubIndent, d1, p.lay(node.Argument, ctx.SetPrec(prec.right)))
	}
	return maybeParentheses(d, prec.own, ctx)
}

func isSignedLiteral(node syntax.Node) bool {
	var literal string
	switch node := node.(type) {
	case *syntax.Integer:
		literal = node.Value
	case *syntax.Float:
		literal = node.Literal
	default:
		return false
	}
	return len(literal) > 0 && (literal[0] == '-' || literal[0] == '+')
}

func (p *printer) layMatch(pattern syntax.Node, op string, body syntax.Node, ctx Context) layout.Document {
	prec := valueInfix["="]
	d1 := p.lay(pattern, ctx.SetPrec(prec.left))
	d2 := p.lay(body, ctx.SetPrec(prec.right))
	d := layout.Follow(layout.Beside(d1, floatText(op)), d2, ctx.BreakIndent)
	return maybeParentheses(d, prec.own, ctx)
}

func (p *printer) layApplication(node *syntax.Application, ctx Context) layout.Document {
	d := p.lay(node.Operator, ctx.SetPrec(funcPrecL))
	as := p.seq(node.Arguments, floatText(","), ctx.ResetPrec())
	d = layout.Concat(d, layout.Text("("), layout.Par(0, as...), floatText(")"))
	return maybeParentheses(d, funcPrec, ctx)
}

func (p *printer) layComprehension(open string, template syntax.Node, body []syntax.Node, close string, ctx Context) layout.Document {
	ctx1 := ctx.ResetPrec()
	d1 := p.lay(template, ctx1)
	d2 := layout.Par(0, p.seq(body, floatText(","), ctx1)...)
	return layout.Beside(
		floatText(open),
		layout.Par(0, d1, layout.Concat(floatText("|| "), d2, floatText(close))),
	)
}

func (p *printer) layGenerator(pattern syntax.Node, op string, body syntax.Node, ctx Context) layout.Document {
	ctx1 := ctx.ResetPrec()
	return layout.Par(ctx1.BreakIndent, p.lay(pattern, ctx1), layout.Beside(layout.Text(op), p.lay(body, ctx1)))
}

func (p *printer) layRecordExpr(node *syntax.RecordExpr, ctx Context) layout.Document {
	prec := valueInfix["#"]
	ctx1 := ctx.ResetPrec()
	fields := layout.Par(0, p.seq(node.Fields, floatText(","), ctx1)...)
	d := layout.Concat(
		floatText("#"),
		p.lay(node.Type, ctx1),
		layout.Text("{"),
		fields,
		floatText("}"),
	)
	if node.Argument != nil {
		d = layout.Beside(p.lay(node.Argument, ctx.SetPrec(prec.left)), d)
	}
	return maybeParentheses(d, prec.own, ctx)
}

func (p *printer) layRecordField(node *syntax.RecordField, ctx Context) layout.Document {
	ctx1 := ctx.ResetPrec()
	d := p.lay(node.Name, ctx1)
	if node.Value == nil {
		return d
	}
	return layout.Par(ctx1.BreakIndent, d, floatText("="), p.lay(node.Value, ctx1))
}

func (p *printer) layRecordAccess(node *syntax.RecordAccess, ctx Context) layout.Document {
	prec := valueInfix["#"]
	d := layout.Concat(
		p.lay(node.Argument, ctx.SetPrec(prec.left)),
		floatText("#"),
		p.lay(node.Type, ctx.ResetPrec()),
		floatText("."),
		p.lay(node.Field, ctx.SetPrec(prec.right)),
	)
	return maybeParentheses(d, prec.own, ctx)
}

// layMacro prints "?Name" or "?Name(Args)". The expansion of a macro is
// unknown, so it is parenthesized wherever any precedence is required.
func (p *printer) layMacro(node *syntax.Macro, ctx Context) layout.Document {
	ctx1 := ctx.ResetPrec()
	d := p.lay(node.Name, ctx1)
	if node.Arguments != nil {
		as := p.seq(node.Arguments, floatText(","), ctx1)
		d = layout.Concat(d, layout.Text("("), layout.Par(0, as...), floatText(")"))
	}
	return maybeParentheses(layout.Beside(floatText("?"), d), 0, ctx)
}

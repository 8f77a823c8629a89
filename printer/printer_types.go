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

func (p *printer) layAnnotatedType(node *syntax.AnnotatedType, ctx Context) layout.Document {
	prec := typeInopPrec("::")
	d1 := p.lay(node.Name, ctx.ResetPrec())
	d2 := p.lay(node.Body, ctx.SetPrec(prec.right))
	d := layout.Follow(layout.Beside(d1, floatText(" ::")), d2, ctx.BreakIndent)
	return maybeParentheses(d, prec.own, ctx)
}

func (p *printer) layTypeUnion(node *syntax.TypeUnion, ctx Context) layout.Document {
	prec := typeInopPrec("|")
	d := layout.Par(0, p.seq(node.Types, floatText(" |"), ctx.SetPrec(prec.right))...)
	return maybeParentheses(d, prec.own, ctx)
}

// layFunctionType prints "fun((Args) -> Ret)", or "(Args) -> Ret" as a spec
// clause.
func (p *printer) layFunctionType(node *syntax.FunctionType, ctx Context) layout.Document {
	ctx1 := ctx.ResetPrec().WithClause(ClauseNone)
	var args layout.Document
	if node.AnyArity {
		args = layout.Text("(...)")
	} else {
		as := p.seq(node.Arguments, floatText(","), ctx1)
		args = layout.Concat(layout.Text("("), layout.Par(0, as...), floatText(")"))
	}
	ret := p.lay(node.Return, ctx1)
	d := layout.Follow(layout.Beside(args, floatText(" ->")), ret, ctx1.SubIndent)
	if ctx.Clause == ClauseSpec {
		return d
	}
	return layout.Concat(floatText("fun("), d, floatText(")"))
}

func (p *printer) layConstrainedFunctionType(node *syntax.ConstrainedFunctionType, ctx Context) layout.Document {
	ctx1 := ctx.ResetPrec()
	d1 := p.lay(node.Body, ctx1)
	d2 := p.lay(node.Argument, ctx1.WithClause(ClauseNone))
	return layout.Par(ctx1.BreakIndent, d1, layout.Follow(layout.Text("when"), d2, ctx1.SubIndent))
}

func (p *printer) layConstraint(node *syntax.Constraint, ctx Context) layout.Document {
	if name, ok := node.Argument.(*syntax.Atom); ok && name.Name == "is_subtype" && len(node.Body) == 2 {
		prec := typeInopPrec("::")
		d1 := p.lay(node.Body[0], ctx.SetPrec(prec.left))
		d2 := p.lay(node.Body[1], ctx.SetPrec(prec.right))
		d := layout.Follow(layout.Beside(d1, floatText(" ::")), d2, ctx.BreakIndent)
		return maybeParentheses(d, prec.own, ctx)
	}
	return p.layTypeApplication(node.Argument, node.Body, ctx)
}

func (p *printer) layIntegerRangeType(node *syntax.IntegerRangeType, ctx Context) layout.Document {
	prec := typeInopPrec("..")
	d := layout.Concat(
		p.lay(node.Low, ctx.SetPrec(prec.left)),
		layout.Text(".."),
		p.lay(node.High, ctx.SetPrec(prec.right)),
	)
	return maybeParentheses(d, prec.own, ctx)
}

func (p *printer) layMapType(node *syntax.MapType, ctx Context) layout.Document {
	if node.AnySize {
		return layout.Text("map()")
	}
	prec := typePreopPrec("#")
	es := p.seq(node.Fields, floatText(","), ctx.ResetPrec())
	d := layout.Concat(floatText("#{"), layout.Par(0, es...), floatText("}"))
	return maybeParentheses(d, prec.own, ctx)
}

func (p *printer) layRecordType(node *syntax.RecordType, ctx Context) layout.Document {
	prec := typePreopPrec("#")
	ctx1 := ctx.ResetPrec()
	es := p.seq(node.Fields, floatText(","), ctx1)
	d := layout.Concat(
		layout.Text("#"),
		p.lay(node.Name, ctx1),
		layout.Text("{"),
		layout.Par(0, es...),
		floatText("}"),
	)
	return maybeParentheses(d, prec.own, ctx)
}

// layBuiltinTypeApplication prefers the list shorthands "[]", "[T]" and
// "[T, ...]" for the unqualified nil/0, list/1 and nonempty_list/1.
func (p *printer) layBuiltinTypeApplication(node *syntax.TypeApplication, ctx Context) layout.Document {
	if name, ok := node.Name.(*syntax.Atom); ok {
		switch {
		case name.Name == "nil" && len(node.Arguments) == 0:
			return layout.Text("[]")
		case name.Name == "list" && len(node.Arguments) == 1:
			return layout.Concat(layout.Text("["), p.lay(node.Arguments[0], ctx.ResetPrec()), layout.Text("]"))
		case name.Name == "nonempty_list" && len(node.Arguments) == 1:
			return layout.Concat(layout.Text("["), p.lay(node.Arguments[0], ctx.ResetPrec()), layout.Text(", ...]"))
		}
	}
	return p.layTypeApplication(node.Name, node.Arguments, ctx)
}

func (p *printer) layTypeApplication(name syntax.Node, args []syntax.Node, ctx Context) layout.Document {
	d := layout.Beside(p.lay(name, ctx.SetPrec(funcPrecL)), layout.Text("("))
	as := p.seq(args, floatText(","), ctx.ResetPrec())
	d = layout.Concat(d, layout.Par(0, as...), floatText(")"))
	return maybeParentheses(d, funcPrec, ctx)
}

func (p *printer) layBitstringType(node *syntax.BitstringType, ctx Context) layout.Document {
	ctx1 := ctx.SetPrec(maxPrec)
	var ds []layout.Document
	if !isZeroInteger(node.M) {
		ds = append(ds, layout.Beside(layout.Text("_:"), p.lay(node.M, ctx1)))
	}
	if !isZeroInteger(node.N) {
		ds = append(ds, layout.Beside(layout.Text("_:_*"), p.lay(node.N, ctx1)))
	}
	for ii := 0; ii < len(ds)-1; ii++ {
		ds[ii] = layout.Beside(ds[ii], floatText(","))
	}
	return layout.Concat(floatText("<<"), layout.Par(0, ds...), floatText(">>"))
}

func isZeroInteger(node syntax.Node) bool {
	if node == nil {
		return true
	}
	n, ok := node.(*syntax.Integer)
	if !ok {
		return false
	}
	v, ok := n.Int64()
	return ok && v == 0
}

func (p *printer) layTypedRecordField(node *syntax.TypedRecordField, ctx Context) layout.Document {
	prec := typeInopPrec("::")
	ctx1 := ctx.ResetPrec()
	body := ctx1
	body.InType = false
	d := layout.Follow(
		layout.Beside(p.lay(node.Body, body), floatText(" ::")),
		p.lay(node.Type, ctx1),
		ctx1.BreakIndent,
	)
	return maybeParentheses(d, prec.own, ctx)
}

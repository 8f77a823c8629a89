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

func (p *printer) layAttribute(node *syntax.Attribute, ctx Context) layout.Document {
	ctx1 := ctx.ResetPrec()
	name := p.layAttributeName(node.Name, ctx1)

	var d layout.Document
	switch attributeName(node) {
	case "spec", "callback":
		d = p.laySpecAttribute(node, name, ctx1)
	case "type", "opaque":
		d = p.layTypeAttribute(node, name, ctx1)
	case "export_type", "optional_callbacks":
		d = p.layFunctionNamesAttribute(node, name, ctx1)
	default:
		if node.Arguments == nil {
			d = name
		} else {
			as := p.seq(node.Arguments, floatText(","), ctx1)
			d = layout.Beside(name, layout.Concat(layout.Text("("), layout.Par(0, as...), floatText(")")))
		}
	}
	return layout.Concat(floatText("-"), d, floatText("."))
}

func attributeName(node *syntax.Attribute) string {
	if name, ok := node.Name.(*syntax.Atom); ok {
		return name.Name
	}
	return ""
}

// The preprocessor directives -if and -else are keywords, and are printed
// without the quotes an atom with that name would need.
func (p *printer) layAttributeName(name syntax.Node, ctx Context) layout.Document {
	if atom, ok := name.(*syntax.Atom); ok && (atom.Name == "if" || atom.Name == "else") {
		d := layout.Text(atom.Name)
		if syntax.HasComments(atom) {
			d = layPostcomments(atom.Postcomments(), d)
			d = layPrecomments(atom.Precomments(), d)
		}
		return d
	}
	return p.lay(name, ctx)
}

// laySpecAttribute prints "-spec Name(Args) -> Ret." with one clause per
// function type. The argument is {Name, [Type...]}, where Name is an atom,
// {F, A} or {M, F, A}.
func (p *printer) laySpecAttribute(node *syntax.Attribute, name layout.Document, ctx Context) layout.Document {
	spec := singleTuple(node, 2)
	var funcName syntax.Node
	switch fn := spec.Elements[0].(type) {
	case *syntax.Tuple:
		switch len(fn.Elements) {
		case 2:
			funcName = fn.Elements[0]
		case 3:
			funcName = &syntax.ModuleQualifier{Module: fn.Elements[0], Body: fn.Elements[1]}
		default:
			panic(errorf(node, "spec name has %d elements", len(fn.Elements)))
		}
	default:
		funcName = fn
	}
	types := listElements(node, spec.Elements[1])
	clauses := p.layClauses(types, ctx.WithClause(ClauseSpec))
	return layout.Beside(layout.Follow(name, p.lay(funcName, ctx), ctx.BreakIndent), clauses)
}

// layTypeAttribute prints "-type Name(Vars) :: Type." from the argument
// {Name, Type, [Var...]}.
func (p *printer) layTypeAttribute(node *syntax.Attribute, name layout.Document, ctx Context) layout.Document {
	def := singleTuple(node, 3)
	vars := listElements(node, def.Elements[2])
	head := p.layTypeApplication(def.Elements[0], vars, ctx)
	body := p.lay(def.Elements[1], ctx)
	return layout.Beside(
		layout.Follow(name, layout.Beside(head, floatText(" :: ")), ctx.BreakIndent),
		body,
	)
}

// layFunctionNamesAttribute prints the list of {Name, Arity} tuples of
// -export_type and -optional_callbacks as "Name/Arity".
func (p *printer) layFunctionNamesAttribute(node *syntax.Attribute, name layout.Document, ctx Context) layout.Document {
	if len(node.Arguments) != 1 {
		panic(errorf(node, "expected 1 argument, got %d", len(node.Arguments)))
	}
	var names []syntax.Node
	for _, elem := range listElements(node, node.Arguments[0]) {
		fn, ok := elem.(*syntax.Tuple)
		if !ok || len(fn.Elements) != 2 {
			panic(errorf(node, "expected a {Name, Arity} tuple, got %s", elem.Kind()))
		}
		qualifier := &syntax.ArityQualifier{Body: fn.Elements[0], Arity: fn.Elements[1]}
		qualifier.Pre = fn.Pre
		qualifier.Post = fn.Post
		names = append(names, qualifier)
	}
	list := &syntax.List{Prefix: names}
	if ann, ok := node.Arguments[0].(*syntax.List); ok {
		list.Pre = ann.Pre
		list.Post = ann.Post
	}
	return layout.Beside(name, layout.Concat(layout.Text("("), p.lay(list, ctx), floatText(")")))
}

func singleTuple(node *syntax.Attribute, size int) *syntax.Tuple {
	if len(node.Arguments) != 1 {
		panic(errorf(node, "expected 1 argument, got %d", len(node.Arguments)))
	}
	tuple, ok := node.Arguments[0].(*syntax.Tuple)
	if !ok {
		panic(errorf(node, "expected a tuple argument, got %s", node.Arguments[0].Kind()))
	}
	if len(tuple.Elements) != size {
		panic(errorf(node, "expected a tuple of %d elements, got %d", size, len(tuple.Elements)))
	}
	return tuple
}

// listElements returns the elements of a proper list literal.
func listElements(node *syntax.Attribute, list syntax.Node) []syntax.Node {
	switch list := list.(type) {
	case *syntax.Nil:
		return nil
	case *syntax.List:
		prefix, suffix := compactList(list)
		if suffix != nil {
			panic(errorf(node, "expected a proper list"))
		}
		return prefix
	}
	panic(errorf(node, "expected a list, got %s", list.Kind()))
}

// layFormList separates forms by a blank line. Forms that print nothing,
// such as the end-of-file marker, are left out.
func (p *printer) layFormList(node *syntax.FormList, ctx Context) layout.Document {
	ctx1 := ctx.ResetPrec()
	var docs []layout.Document
	for _, form := range node.Forms {
		if d := p.lay(form, ctx1); !layout.IsEmpty(d) {
			docs = append(docs, d)
		}
	}
	if len(docs) == 0 {
		return layout.Empty()
	}
	d := docs[len(docs)-1]
	for ii := len(docs) - 2; ii >= 0; ii-- {
		d = layout.Above(docs[ii], layout.Above(layout.Text(""), d))
	}
	return d
}

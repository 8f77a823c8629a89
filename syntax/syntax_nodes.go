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

package syntax

import (
	"strconv"
)

type Atom struct {
	leafNode
	Name string `json:"name"`
}

var _ Node = (*Atom)(nil)

func NewAtom(name string) *Atom {
	return &Atom{Name: name}
}

func (*Atom) Kind() Kind { return KindAtom }

type Variable struct {
	leafNode
	Name string `json:"name"`
}

var _ Node = (*Variable)(nil)

func NewVariable(name string) *Variable {
	return &Variable{Name: name}
}

func (*Variable) Kind() Kind { return KindVariable }

// Integer holds the literal text of an integer, which may carry a sign or a
// base prefix ("16#FF").
type Integer struct {
	leafNode
	Value string `json:"value"`
}

var _ Node = (*Integer)(nil)

func NewInteger(value int64) *Integer {
	return &Integer{Value: strconv.FormatInt(value, 10)}
}

func (*Integer) Kind() Kind { return KindInteger }

func (n *Integer) IsNegative() bool {
	return len(n.Value) > 0 && n.Value[0] == '-'
}

// Int64 returns the value of a plain decimal literal.
func (n *Integer) Int64() (int64, bool) {
	v, err := strconv.ParseInt(n.Value, 10, 64)
	return v, err == nil
}

// Float holds the literal text of a float, as printed by the parser.
type Float struct {
	leafNode
	Literal string `json:"literal"`
}

var _ Node = (*Float)(nil)

func NewFloat(literal string) *Float {
	return &Float{Literal: literal}
}

func (*Float) Kind() Kind { return KindFloat }

func (n *Float) IsNegative() bool {
	return len(n.Literal) > 0 && n.Literal[0] == '-'
}

type Char struct {
	leafNode
	Value rune `json:"value"`
}

var _ Node = (*Char)(nil)

func NewChar(value rune) *Char {
	return &Char{Value: value}
}

func (*Char) Kind() Kind { return KindChar }

// String holds the unescaped value of a string literal.
type String struct {
	leafNode
	Value string `json:"value"`
}

var _ Node = (*String)(nil)

func NewString(value string) *String {
	return &String{Value: value}
}

func (*String) Kind() Kind { return KindString }

// Nil is the empty list "[]".
type Nil struct {
	leafNode
}

var _ Node = (*Nil)(nil)

func (*Nil) Kind() Kind { return KindNil }

type Underscore struct {
	leafNode
}

var _ Node = (*Underscore)(nil)

func (*Underscore) Kind() Kind { return KindUnderscore }

// Text is raw source text, emitted verbatim.
type Text struct {
	leafNode
	Text string `json:"text"`
}

var _ Node = (*Text)(nil)

func NewText(text string) *Text {
	return &Text{Text: text}
}

func (*Text) Kind() Kind { return KindText }

type Operator struct {
	leafNode
	Name string `json:"name"`
}

var _ Node = (*Operator)(nil)

func NewOperator(name string) *Operator {
	return &Operator{Name: name}
}

func (*Operator) Kind() Kind { return KindOperator }

// Comment is either attached to another node or stands alone as a form.
// Lines do not include the leading '%'.
type Comment struct {
	leafNode
	Padding *int     `json:"padding,omitempty"`
	Lines   []string `json:"lines"`
}

var _ Node = (*Comment)(nil)

func NewComment(lines ...string) *Comment {
	return &Comment{Lines: lines}
}

func NewPaddedComment(padding int, lines ...string) *Comment {
	return &Comment{Padding: &padding, Lines: lines}
}

func (*Comment) Kind() Kind { return KindComment }

type EOFMarker struct {
	leafNode
}

var _ Node = (*EOFMarker)(nil)

func (*EOFMarker) Kind() Kind { return KindEOFMarker }

type Tuple struct {
	Annotations
	Elements []Node `json:"elements"`
}

var _ Node = (*Tuple)(nil)

func NewTuple(elements ...Node) *Tuple {
	return &Tuple{Elements: elements}
}

func (*Tuple) Kind() Kind             { return KindTuple }
func (n *Tuple) privChildren() []Node { return collect(n.Elements) }

// List is "[Prefix | Suffix]"; a nil Suffix is a proper list.
type List struct {
	Annotations
	Prefix []Node `json:"prefix"`
	Suffix Node   `json:"suffix,omitempty"`
}

var _ Node = (*List)(nil)

func NewList(elements ...Node) *List {
	return &List{Prefix: elements}
}

func (*List) Kind() Kind             { return KindList }
func (n *List) privChildren() []Node { return collect(n.Prefix, n.Suffix) }

type Binary struct {
	Annotations
	Fields []Node `json:"fields"`
}

var _ Node = (*Binary)(nil)

func (*Binary) Kind() Kind             { return KindBinary }
func (n *Binary) privChildren() []Node { return collect(n.Fields) }

type BinaryField struct {
	Annotations
	Body  Node   `json:"body"`
	Types []Node `json:"types,omitempty"`
}

var _ Node = (*BinaryField)(nil)

func (*BinaryField) Kind() Kind             { return KindBinaryField }
func (n *BinaryField) privChildren() []Node { return collect(n.Body, n.Types) }

type SizeQualifier struct {
	Annotations
	Body Node `json:"body"`
	Size Node `json:"size"`
}

var _ Node = (*SizeQualifier)(nil)

func (*SizeQualifier) Kind() Kind             { return KindSizeQualifier }
func (n *SizeQualifier) privChildren() []Node { return collect(n.Body, n.Size) }

// MapExpr is "#{...}", or "Argument#{...}" when updating an existing map.
type MapExpr struct {
	Annotations
	Argument Node   `json:"argument,omitempty"`
	Fields   []Node `json:"fields"`
}

var _ Node = (*MapExpr)(nil)

func (*MapExpr) Kind() Kind             { return KindMapExpr }
func (n *MapExpr) privChildren() []Node { return collect(n.Argument, n.Fields) }

type MapFieldAssoc struct {
	Annotations
	Name  Node `json:"name"`
	Value Node `json:"value"`
}

var _ Node = (*MapFieldAssoc)(nil)

func (*MapFieldAssoc) Kind() Kind             { return KindMapFieldAssoc }
func (n *MapFieldAssoc) privChildren() []Node { return collect(n.Name, n.Value) }

type MapFieldExact struct {
	Annotations
	Name  Node `json:"name"`
	Value Node `json:"value"`
}

var _ Node = (*MapFieldExact)(nil)

func (*MapFieldExact) Kind() Kind             { return KindMapFieldExact }
func (n *MapFieldExact) privChildren() []Node { return collect(n.Name, n.Value) }

type InfixExpr struct {
	Annotations
	Left     Node `json:"left"`
	Operator Node `json:"operator"`
	Right    Node `json:"right"`
}

var _ Node = (*InfixExpr)(nil)

func NewInfixExpr(left Node, op string, right Node) *InfixExpr {
	return &InfixExpr{Left: left, Operator: NewOperator(op), Right: right}
}

func (*InfixExpr) Kind() Kind             { return KindInfixExpr }
func (n *InfixExpr) privChildren() []Node { return collect(n.Left, n.Operator, n.Right) }

type PrefixExpr struct {
	Annotations
	Operator Node `json:"operator"`
	Argument Node `json:"argument"`
}

var _ Node = (*PrefixExpr)(nil)

func NewPrefixExpr(op string, argument Node) *PrefixExpr {
	return &PrefixExpr{Operator: NewOperator(op), Argument: argument}
}

func (*PrefixExpr) Kind() Kind             { return KindPrefixExpr }
func (n *PrefixExpr) privChildren() []Node { return collect(n.Operator, n.Argument) }

type MatchExpr struct {
	Annotations
	Pattern Node `json:"pattern"`
	Body    Node `json:"body"`
}

var _ Node = (*MatchExpr)(nil)

func (*MatchExpr) Kind() Kind             { return KindMatchExpr }
func (n *MatchExpr) privChildren() []Node { return collect(n.Pattern, n.Body) }

type Application struct {
	Annotations
	Operator  Node   `json:"operator"`
	Arguments []Node `json:"arguments"`
}

var _ Node = (*Application)(nil)

func NewApplication(operator Node, arguments ...Node) *Application {
	return &Application{Operator: operator, Arguments: arguments}
}

func (*Application) Kind() Kind             { return KindApplication }
func (n *Application) privChildren() []Node { return collect(n.Operator, n.Arguments) }

// ModuleQualifier is "Module:Body".
type ModuleQualifier struct {
	Annotations
	Module Node `json:"module"`
	Body   Node `json:"body"`
}

var _ Node = (*ModuleQualifier)(nil)

func (*ModuleQualifier) Kind() Kind             { return KindModuleQualifier }
func (n *ModuleQualifier) privChildren() []Node { return collect(n.Module, n.Body) }

// ArityQualifier is "Body/Arity".
type ArityQualifier struct {
	Annotations
	Body  Node `json:"body"`
	Arity Node `json:"arity"`
}

var _ Node = (*ArityQualifier)(nil)

func (*ArityQualifier) Kind() Kind             { return KindArityQualifier }
func (n *ArityQualifier) privChildren() []Node { return collect(n.Body, n.Arity) }

type ImplicitFun struct {
	Annotations
	Name Node `json:"name"`
}

var _ Node = (*ImplicitFun)(nil)

func (*ImplicitFun) Kind() Kind             { return KindImplicitFun }
func (n *ImplicitFun) privChildren() []Node { return collect(n.Name) }

type FunExpr struct {
	Annotations
	Clauses []Node `json:"clauses"`
}

var _ Node = (*FunExpr)(nil)

func (*FunExpr) Kind() Kind             { return KindFunExpr }
func (n *FunExpr) privChildren() []Node { return collect(n.Clauses) }

type NamedFunExpr struct {
	Annotations
	Name    Node   `json:"name"`
	Clauses []Node `json:"clauses"`
}

var _ Node = (*NamedFunExpr)(nil)

func (*NamedFunExpr) Kind() Kind             { return KindNamedFunExpr }
func (n *NamedFunExpr) privChildren() []Node { return collect(n.Name, n.Clauses) }

type Function struct {
	Annotations
	Name    Node   `json:"name"`
	Clauses []Node `json:"clauses"`
}

var _ Node = (*Function)(nil)

func (*Function) Kind() Kind             { return KindFunction }
func (n *Function) privChildren() []Node { return collect(n.Name, n.Clauses) }

// Clause is shared by functions, funs and the control constructs. A nil
// Guard means no guard; a guard is usually a Disjunction of Conjunctions.
type Clause struct {
	Annotations
	Patterns []Node `json:"patterns"`
	Guard    Node   `json:"guard,omitempty"`
	Body     []Node `json:"body"`
}

var _ Node = (*Clause)(nil)

func NewClause(patterns []Node, guard Node, body ...Node) *Clause {
	return &Clause{Patterns: patterns, Guard: guard, Body: body}
}

func (*Clause) Kind() Kind             { return KindClause }
func (n *Clause) privChildren() []Node { return collect(n.Patterns, n.Guard, n.Body) }

type CaseExpr struct {
	Annotations
	Argument Node   `json:"argument"`
	Clauses  []Node `json:"clauses"`
}

var _ Node = (*CaseExpr)(nil)

func (*CaseExpr) Kind() Kind             { return KindCaseExpr }
func (n *CaseExpr) privChildren() []Node { return collect(n.Argument, n.Clauses) }

type IfExpr struct {
	Annotations
	Clauses []Node `json:"clauses"`
}

var _ Node = (*IfExpr)(nil)

func (*IfExpr) Kind() Kind             { return KindIfExpr }
func (n *IfExpr) privChildren() []Node { return collect(n.Clauses) }

// ReceiveExpr has an "after" section when Timeout is non-nil.
type ReceiveExpr struct {
	Annotations
	Clauses []Node `json:"clauses"`
	Timeout Node   `json:"timeout,omitempty"`
	Action  []Node `json:"action,omitempty"`
}

var _ Node = (*ReceiveExpr)(nil)

func (*ReceiveExpr) Kind() Kind             { return KindReceiveExpr }
func (n *ReceiveExpr) privChildren() []Node { return collect(n.Clauses, n.Timeout, n.Action) }

type TryExpr struct {
	Annotations
	Body     []Node `json:"body"`
	Clauses  []Node `json:"clauses,omitempty"`
	Handlers []Node `json:"handlers,omitempty"`
	After    []Node `json:"after,omitempty"`
}

var _ Node = (*TryExpr)(nil)

func (*TryExpr) Kind() Kind { return KindTryExpr }
func (n *TryExpr) privChildren() []Node {
	return collect(n.Body, n.Clauses, n.Handlers, n.After)
}

// ClassQualifier is "Class:Body" or "Class:Body:Stacktrace" in a catch clause.
type ClassQualifier struct {
	Annotations
	Class      Node `json:"class"`
	Body       Node `json:"body"`
	Stacktrace Node `json:"stacktrace,omitempty"`
}

var _ Node = (*ClassQualifier)(nil)

func (*ClassQualifier) Kind() Kind             { return KindClassQualifier }
func (n *ClassQualifier) privChildren() []Node { return collect(n.Class, n.Body, n.Stacktrace) }

type CatchExpr struct {
	Annotations
	Body Node `json:"body"`
}

var _ Node = (*CatchExpr)(nil)

func (*CatchExpr) Kind() Kind             { return KindCatchExpr }
func (n *CatchExpr) privChildren() []Node { return collect(n.Body) }

type BlockExpr struct {
	Annotations
	Body []Node `json:"body"`
}

var _ Node = (*BlockExpr)(nil)

func (*BlockExpr) Kind() Kind             { return KindBlockExpr }
func (n *BlockExpr) privChildren() []Node { return collect(n.Body) }

// MaybeExpr is "maybe Body [else Clauses] end"; Else is an ElseExpr or nil.
type MaybeExpr struct {
	Annotations
	Body []Node `json:"body"`
	Else Node   `json:"else,omitempty"`
}

var _ Node = (*MaybeExpr)(nil)

func (*MaybeExpr) Kind() Kind             { return KindMaybeExpr }
func (n *MaybeExpr) privChildren() []Node { return collect(n.Body, n.Else) }

// MaybeMatchExpr is "Pattern ?= Body".
type MaybeMatchExpr struct {
	Annotations
	Pattern Node `json:"pattern"`
	Body    Node `json:"body"`
}

var _ Node = (*MaybeMatchExpr)(nil)

func (*MaybeMatchExpr) Kind() Kind             { return KindMaybeMatchExpr }
func (n *MaybeMatchExpr) privChildren() []Node { return collect(n.Pattern, n.Body) }

type ElseExpr struct {
	Annotations
	Clauses []Node `json:"clauses"`
}

var _ Node = (*ElseExpr)(nil)

func (*ElseExpr) Kind() Kind             { return KindElseExpr }
func (n *ElseExpr) privChildren() []Node { return collect(n.Clauses) }

type Parentheses struct {
	Annotations
	Body Node `json:"body"`
}

var _ Node = (*Parentheses)(nil)

func (*Parentheses) Kind() Kind             { return KindParentheses }
func (n *Parentheses) privChildren() []Node { return collect(n.Body) }

// Conjunction is a comma-separated guard sequence.
type Conjunction struct {
	Annotations
	Body []Node `json:"body"`
}

var _ Node = (*Conjunction)(nil)

func (*Conjunction) Kind() Kind             { return KindConjunction }
func (n *Conjunction) privChildren() []Node { return collect(n.Body) }

// Disjunction is a semicolon-separated sequence of guards.
type Disjunction struct {
	Annotations
	Body []Node `json:"body"`
}

var _ Node = (*Disjunction)(nil)

func (*Disjunction) Kind() Kind             { return KindDisjunction }
func (n *Disjunction) privChildren() []Node { return collect(n.Body) }

type ListComp struct {
	Annotations
	Template Node   `json:"template"`
	Body     []Node `json:"body"`
}

var _ Node = (*ListComp)(nil)

func (*ListComp) Kind() Kind             { return KindListComp }
func (n *ListComp) privChildren() []Node { return collect(n.Template, n.Body) }

type BinaryComp struct {
	Annotations
	Template Node   `json:"template"`
	Body     []Node `json:"body"`
}

var _ Node = (*BinaryComp)(nil)

func (*BinaryComp) Kind() Kind             { return KindBinaryComp }
func (n *BinaryComp) privChildren() []Node { return collect(n.Template, n.Body) }

// Generator is "Pattern <- Body".
type Generator struct {
	Annotations
	Pattern Node `json:"pattern"`
	Body    Node `json:"body"`
}

var _ Node = (*Generator)(nil)

func (*Generator) Kind() Kind             { return KindGenerator }
func (n *Generator) privChildren() []Node { return collect(n.Pattern, n.Body) }

// BinaryGenerator is "Pattern <= Body".
type BinaryGenerator struct {
	Annotations
	Pattern Node `json:"pattern"`
	Body    Node `json:"body"`
}

var _ Node = (*BinaryGenerator)(nil)

func (*BinaryGenerator) Kind() Kind             { return KindBinaryGenerator }
func (n *BinaryGenerator) privChildren() []Node { return collect(n.Pattern, n.Body) }

// RecordExpr is "#Type{Fields}", or "Argument#Type{Fields}" for an update.
type RecordExpr struct {
	Annotations
	Argument Node   `json:"argument,omitempty"`
	Type     Node   `json:"record_type"`
	Fields   []Node `json:"fields"`
}

var _ Node = (*RecordExpr)(nil)

func (*RecordExpr) Kind() Kind             { return KindRecordExpr }
func (n *RecordExpr) privChildren() []Node { return collect(n.Argument, n.Type, n.Fields) }

type RecordField struct {
	Annotations
	Name  Node `json:"name"`
	Value Node `json:"value,omitempty"`
}

var _ Node = (*RecordField)(nil)

func (*RecordField) Kind() Kind             { return KindRecordField }
func (n *RecordField) privChildren() []Node { return collect(n.Name, n.Value) }

// RecordAccess is "Argument#Type.Field".
type RecordAccess struct {
	Annotations
	Argument Node `json:"argument"`
	Type     Node `json:"record_type"`
	Field    Node `json:"field"`
}

var _ Node = (*RecordAccess)(nil)

func (*RecordAccess) Kind() Kind             { return KindRecordAccess }
func (n *RecordAccess) privChildren() []Node { return collect(n.Argument, n.Type, n.Field) }

// RecordIndexExpr is "#Type.Field".
type RecordIndexExpr struct {
	Annotations
	Type  Node `json:"record_type"`
	Field Node `json:"field"`
}

var _ Node = (*RecordIndexExpr)(nil)

func (*RecordIndexExpr) Kind() Kind             { return KindRecordIndexExpr }
func (n *RecordIndexExpr) privChildren() []Node { return collect(n.Type, n.Field) }

// Macro is "?Name" when Arguments is nil, and "?Name(Arguments)" otherwise
// (including an empty, non-nil argument list).
type Macro struct {
	Annotations
	Name      Node   `json:"name"`
	Arguments []Node `json:"arguments,omitempty"`
}

var _ Node = (*Macro)(nil)

func (*Macro) Kind() Kind             { return KindMacro }
func (n *Macro) privChildren() []Node { return collect(n.Name, n.Arguments) }

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

// Attribute is "-Name(Arguments).", or "-Name." when Arguments is nil.
//
// The argument shapes of some attributes are fixed by the parser:
//
//	spec, callback              [{Name, [FunctionType...]}] where Name is
//	                            an atom, {F, A} or {M, F, A}
//	type, opaque                [{Name, Type, [Variable...]}]
//	export_type,
//	optional_callbacks         [[{Name, Arity}...]]
type Attribute struct {
	Annotations
	Name      Node   `json:"name"`
	Arguments []Node `json:"arguments,omitempty"`
}

var _ Node = (*Attribute)(nil)

func NewAttribute(name string, arguments ...Node) *Attribute {
	return &Attribute{Name: NewAtom(name), Arguments: arguments}
}

func (*Attribute) Kind() Kind             { return KindAttribute }
func (n *Attribute) privChildren() []Node { return collect(n.Name, n.Arguments) }

type FormList struct {
	Annotations
	Forms []Node `json:"forms"`
}

var _ Node = (*FormList)(nil)

func NewFormList(forms ...Node) *FormList {
	return &FormList{Forms: forms}
}

func (*FormList) Kind() Kind             { return KindFormList }
func (n *FormList) privChildren() []Node { return collect(n.Forms) }

// ErrorMarker reports a parse error in place of a form. Module names the
// module that knows how to describe Descriptor; Line is zero when unknown.
type ErrorMarker struct {
	Annotations
	Line       int    `json:"line,omitempty"`
	Module     string `json:"module,omitempty"`
	Descriptor Node   `json:"descriptor"`
}

var _ Node = (*ErrorMarker)(nil)

func (*ErrorMarker) Kind() Kind             { return KindErrorMarker }
func (n *ErrorMarker) privChildren() []Node { return collect(n.Descriptor) }

type WarningMarker struct {
	Annotations
	Line       int    `json:"line,omitempty"`
	Module     string `json:"module,omitempty"`
	Descriptor Node   `json:"descriptor"`
}

var _ Node = (*WarningMarker)(nil)

func (*WarningMarker) Kind() Kind             { return KindWarningMarker }
func (n *WarningMarker) privChildren() []Node { return collect(n.Descriptor) }

// AnnotatedType is "Name :: Body".
type AnnotatedType struct {
	Annotations
	Name Node `json:"name"`
	Body Node `json:"body"`
}

var _ Node = (*AnnotatedType)(nil)

func (*AnnotatedType) Kind() Kind             { return KindAnnotatedType }
func (n *AnnotatedType) privChildren() []Node { return collect(n.Name, n.Body) }

// FunType is "fun()".
type FunType struct {
	leafNode
}

var _ Node = (*FunType)(nil)

func (*FunType) Kind() Kind { return KindFunType }

type TypeUnion struct {
	Annotations
	Types []Node `json:"types"`
}

var _ Node = (*TypeUnion)(nil)

func NewTypeUnion(types ...Node) *TypeUnion {
	return &TypeUnion{Types: types}
}

func (*TypeUnion) Kind() Kind             { return KindTypeUnion }
func (n *TypeUnion) privChildren() []Node { return collect(n.Types) }

// FunctionType is "fun((Arguments) -> Return)", or "(Arguments) -> Return"
// inside a spec. AnyArity renders the argument list as "(...)".
type FunctionType struct {
	Annotations
	AnyArity  bool   `json:"any_arity,omitempty"`
	Arguments []Node `json:"arguments"`
	Return    Node   `json:"return"`
}

var _ Node = (*FunctionType)(nil)

func (*FunctionType) Kind() Kind             { return KindFunctionType }
func (n *FunctionType) privChildren() []Node { return collect(n.Arguments, n.Return) }

// ConstrainedFunctionType is "Body when Argument"; Argument is a
// Conjunction of Constraint nodes.
type ConstrainedFunctionType struct {
	Annotations
	Body     Node `json:"body"`
	Argument Node `json:"argument"`
}

var _ Node = (*ConstrainedFunctionType)(nil)

func (*ConstrainedFunctionType) Kind() Kind { return KindConstrainedFunctionType }
func (n *ConstrainedFunctionType) privChildren() []Node {
	return collect(n.Body, n.Argument)
}

// Constraint is "Name(Body...)"; the is_subtype constraint with two
// arguments renders as "Var :: Type".
type Constraint struct {
	Annotations
	Argument Node   `json:"argument"`
	Body     []Node `json:"body"`
}

var _ Node = (*Constraint)(nil)

func (*Constraint) Kind() Kind             { return KindConstraint }
func (n *Constraint) privChildren() []Node { return collect(n.Argument, n.Body) }

type IntegerRangeType struct {
	Annotations
	Low  Node `json:"low"`
	High Node `json:"high"`
}

var _ Node = (*IntegerRangeType)(nil)

func (*IntegerRangeType) Kind() Kind             { return KindIntegerRangeType }
func (n *IntegerRangeType) privChildren() []Node { return collect(n.Low, n.High) }

// MapType is "#{Fields}", or "map()" when AnySize is set.
type MapType struct {
	Annotations
	AnySize bool   `json:"any_size,omitempty"`
	Fields  []Node `json:"fields"`
}

var _ Node = (*MapType)(nil)

func (*MapType) Kind() Kind             { return KindMapType }
func (n *MapType) privChildren() []Node { return collect(n.Fields) }

type MapTypeAssoc struct {
	Annotations
	Name  Node `json:"name"`
	Value Node `json:"value"`
}

var _ Node = (*MapTypeAssoc)(nil)

func (*MapTypeAssoc) Kind() Kind             { return KindMapTypeAssoc }
func (n *MapTypeAssoc) privChildren() []Node { return collect(n.Name, n.Value) }

type MapTypeExact struct {
	Annotations
	Name  Node `json:"name"`
	Value Node `json:"value"`
}

var _ Node = (*MapTypeExact)(nil)

func (*MapTypeExact) Kind() Kind             { return KindMapTypeExact }
func (n *MapTypeExact) privChildren() []Node { return collect(n.Name, n.Value) }

type RecordType struct {
	Annotations
	Name   Node   `json:"name"`
	Fields []Node `json:"fields"`
}

var _ Node = (*RecordType)(nil)

func (*RecordType) Kind() Kind             { return KindRecordType }
func (n *RecordType) privChildren() []Node { return collect(n.Name, n.Fields) }

type RecordTypeField struct {
	Annotations
	Name Node `json:"name"`
	Type Node `json:"field_type"`
}

var _ Node = (*RecordTypeField)(nil)

func (*RecordTypeField) Kind() Kind             { return KindRecordTypeField }
func (n *RecordTypeField) privChildren() []Node { return collect(n.Name, n.Type) }

// TupleType is "{Elements}", or "tuple()" when AnySize is set.
type TupleType struct {
	Annotations
	AnySize  bool   `json:"any_size,omitempty"`
	Elements []Node `json:"elements"`
}

var _ Node = (*TupleType)(nil)

func (*TupleType) Kind() Kind             { return KindTupleType }
func (n *TupleType) privChildren() []Node { return collect(n.Elements) }

// TypeApplication is a built-in or remote type, "Name(Arguments)". Name is an
// Atom or a ModuleQualifier.
type TypeApplication struct {
	Annotations
	Name      Node   `json:"name"`
	Arguments []Node `json:"arguments"`
}

var _ Node = (*TypeApplication)(nil)

func NewTypeApplication(name string, arguments ...Node) *TypeApplication {
	return &TypeApplication{Name: NewAtom(name), Arguments: arguments}
}

func (*TypeApplication) Kind() Kind             { return KindTypeApplication }
func (n *TypeApplication) privChildren() []Node { return collect(n.Name, n.Arguments) }

type UserTypeApplication struct {
	Annotations
	Name      Node   `json:"name"`
	Arguments []Node `json:"arguments"`
}

var _ Node = (*UserTypeApplication)(nil)

func (*UserTypeApplication) Kind() Kind             { return KindUserTypeApplication }
func (n *UserTypeApplication) privChildren() []Node { return collect(n.Name, n.Arguments) }

// BitstringType is "<<_:M, _:_*N>>"; zero-valued sizes are left out.
type BitstringType struct {
	Annotations
	M Node `json:"m"`
	N Node `json:"n"`
}

var _ Node = (*BitstringType)(nil)

func (*BitstringType) Kind() Kind             { return KindBitstringType }
func (n *BitstringType) privChildren() []Node { return collect(n.M, n.N) }

type TypedRecordField struct {
	Annotations
	Body Node `json:"body"`
	Type Node `json:"field_type"`
}

var _ Node = (*TypedRecordField)(nil)

func (*TypedRecordField) Kind() Kind             { return KindTypedRecordField }
func (n *TypedRecordField) privChildren() []Node { return collect(n.Body, n.Type) }

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
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"reflect"
	"strings"
)

var nodeFactories = [kindCount]func() Node{
	KindAtom:                    func() Node { return &Atom{} },
	KindVariable:                func() Node { return &Variable{} },
	KindInteger:                 func() Node { return &Integer{} },
	KindFloat:                   func() Node { return &Float{} },
	KindChar:                    func() Node { return &Char{} },
	KindString:                  func() Node { return &String{} },
	KindNil:                     func() Node { return &Nil{} },
	KindUnderscore:              func() Node { return &Underscore{} },
	KindText:                    func() Node { return &Text{} },
	KindOperator:                func() Node { return &Operator{} },
	KindComment:                 func() Node { return &Comment{} },
	KindEOFMarker:               func() Node { return &EOFMarker{} },
	KindTuple:                   func() Node { return &Tuple{} },
	KindList:                    func() Node { return &List{} },
	KindBinary:                  func() Node { return &Binary{} },
	KindBinaryField:             func() Node { return &BinaryField{} },
	KindSizeQualifier:           func() Node { return &SizeQualifier{} },
	KindMapExpr:                 func() Node { return &MapExpr{} },
	KindMapFieldAssoc:           func() Node { return &MapFieldAssoc{} },
	KindMapFieldExact:           func() Node { return &MapFieldExact{} },
	KindInfixExpr:               func() Node { return &InfixExpr{} },
	KindPrefixExpr:              func() Node { return &PrefixExpr{} },
	KindMatchExpr:               func() Node { return &MatchExpr{} },
	KindApplication:             func() Node { return &Application{} },
	KindModuleQualifier:         func() Node { return &ModuleQualifier{} },
	KindArityQualifier:          func() Node { return &ArityQualifier{} },
	KindImplicitFun:             func() Node { return &ImplicitFun{} },
	KindFunExpr:                 func() Node { return &FunExpr{} },
	KindNamedFunExpr:            func() Node { return &NamedFunExpr{} },
	KindFunction:                func() Node { return &Function{} },
	KindClause:                  func() Node { return &Clause{} },
	KindCaseExpr:                func() Node { return &CaseExpr{} },
	KindIfExpr:                  func() Node { return &IfExpr{} },
	KindReceiveExpr:             func() Node { return &ReceiveExpr{} },
	KindTryExpr:                 func() Node { return &TryExpr{} },
	KindClassQualifier:          func() Node { return &ClassQualifier{} },
	KindCatchExpr:               func() Node { return &CatchExpr{} },
	KindBlockExpr:               func() Node { return &BlockExpr{} },
	KindMaybeExpr:               func() Node { return &MaybeExpr{} },
	KindMaybeMatchExpr:          func() Node { return &MaybeMatchExpr{} },
	KindElseExpr:                func() Node { return &ElseExpr{} },
	KindParentheses:             func() Node { return &Parentheses{} },
	KindConjunction:             func() Node { return &Conjunction{} },
	KindDisjunction:             func() Node { return &Disjunction{} },
	KindListComp:                func() Node { return &ListComp{} },
	KindBinaryComp:              func() Node { return &BinaryComp{} },
	KindGenerator:               func() Node { return &Generator{} },
	KindBinaryGenerator:         func() Node { return &BinaryGenerator{} },
	KindRecordExpr:              func() Node { return &RecordExpr{} },
	KindRecordField:             func() Node { return &RecordField{} },
	KindRecordAccess:            func() Node { return &RecordAccess{} },
	KindRecordIndexExpr:         func() Node { return &RecordIndexExpr{} },
	KindMacro:                   func() Node { return &Macro{} },
	KindAttribute:               func() Node { return &Attribute{} },
	KindFormList:                func() Node { return &FormList{} },
	KindErrorMarker:             func() Node { return &ErrorMarker{} },
	KindWarningMarker:           func() Node { return &WarningMarker{} },
	KindAnnotatedType:           func() Node { return &AnnotatedType{} },
	KindFunType:                 func() Node { return &FunType{} },
	KindTypeUnion:               func() Node { return &TypeUnion{} },
	KindFunctionType:            func() Node { return &FunctionType{} },
	KindConstrainedFunctionType: func() Node { return &ConstrainedFunctionType{} },
	KindConstraint:              func() Node { return &Constraint{} },
	KindIntegerRangeType:        func() Node { return &IntegerRangeType{} },
	KindMapType:                 func() Node { return &MapType{} },
	KindMapTypeAssoc:            func() Node { return &MapTypeAssoc{} },
	KindMapTypeExact:            func() Node { return &MapTypeExact{} },
	KindRecordType:              func() Node { return &RecordType{} },
	KindRecordTypeField:         func() Node { return &RecordTypeField{} },
	KindTupleType:               func() Node { return &TupleType{} },
	KindTypeApplication:         func() Node { return &TypeApplication{} },
	KindUserTypeApplication:     func() Node { return &UserTypeApplication{} },
	KindBitstringType:           func() Node { return &BitstringType{} },
	KindTypedRecordField:        func() Node { return &TypedRecordField{} },
}

var (
	nodeType         = reflect.TypeFor[Node]()
	nodeSliceType    = reflect.TypeFor[[]Node]()
	commentSliceType = reflect.TypeFor[[]*Comment]()
)

// DecodeJSON reads a syntax tree from its JSON form. Every node is an object
// whose "type" member names its Kind; the remaining members are the node's
// fields. An absent list member means "none", which is distinct from an
// empty array.
func DecodeJSON(data []byte) (Node, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	var raw json.RawMessage
	if err := dec.Decode(&raw); err != nil {
		return nil, errInvalidJSON(err)
	}
	var extra json.RawMessage
	if err := dec.Decode(&extra); err != io.EOF {
		return nil, errTrailingData()
	}
	return decodeNode("$", raw)
}

func decodeNode(path string, raw json.RawMessage) (Node, error) {
	var members map[string]json.RawMessage
	if err := json.Unmarshal(raw, &members); err != nil || members == nil {
		return nil, errNotAnObject(path)
	}
	var kindName string
	typeRaw, ok := members["type"]
	if !ok {
		return nil, errMissingType(path)
	}
	if err := json.Unmarshal(typeRaw, &kindName); err != nil {
		return nil, errMissingType(path)
	}
	kind, ok := KindByName(kindName)
	if !ok {
		return nil, errUnknownKind(path, kindName)
	}

	node := nodeFactories[kind]()
	used := map[string]bool{"type": true}
	if err := decodeFields(path, reflect.ValueOf(node).Elem(), members, used); err != nil {
		return nil, err
	}
	for name := range members {
		if !used[name] {
			return nil, errUnknownField(path, kind, name)
		}
	}
	return node, nil
}

func decodeFields(path string, v reflect.Value, members map[string]json.RawMessage, used map[string]bool) error {
	t := v.Type()
	for ii := 0; ii < t.NumField(); ii++ {
		field := t.Field(ii)
		if field.Anonymous {
			if err := decodeFields(path, v.Field(ii), members, used); err != nil {
				return err
			}
			continue
		}
		if !field.IsExported() {
			continue
		}
		name := jsonName(field)
		raw, ok := members[name]
		if !ok {
			continue
		}
		used[name] = true
		if err := decodeField(path+"."+name, v.Field(ii), raw); err != nil {
			return err
		}
	}
	return nil
}

func decodeField(path string, fv reflect.Value, raw json.RawMessage) error {
	switch fv.Type() {
	case nodeType:
		if isNull(raw) {
			return nil
		}
		node, err := decodeNode(path, raw)
		if err != nil {
			return err
		}
		fv.Set(reflect.ValueOf(node))
		return nil
	case nodeSliceType:
		if isNull(raw) {
			return nil
		}
		var items []json.RawMessage
		if err := json.Unmarshal(raw, &items); err != nil {
			return errFieldType(path, "an array of nodes")
		}
		nodes := make([]Node, 0, len(items))
		for ii, item := range items {
			node, err := decodeNode(fmt.Sprintf("%s[%d]", path, ii), item)
			if err != nil {
				return err
			}
			nodes = append(nodes, node)
		}
		fv.Set(reflect.ValueOf(nodes))
		return nil
	case commentSliceType:
		var items []json.RawMessage
		if err := json.Unmarshal(raw, &items); err != nil {
			return errFieldType(path, "an array of comments")
		}
		comments := make([]*Comment, 0, len(items))
		for ii, item := range items {
			itemPath := fmt.Sprintf("%s[%d]", path, ii)
			node, err := decodeNode(itemPath, item)
			if err != nil {
				return err
			}
			comment, ok := node.(*Comment)
			if !ok {
				return errExpectedComment(itemPath, node.Kind())
			}
			comments = append(comments, comment)
		}
		fv.Set(reflect.ValueOf(comments))
		return nil
	}

	// Integer literals may be given as JSON numbers.
	if fv.Kind() == reflect.String && len(raw) > 0 && (raw[0] == '-' || (raw[0] >= '0' && raw[0] <= '9')) {
		fv.SetString(string(raw))
		return nil
	}
	if err := json.Unmarshal(raw, fv.Addr().Interface()); err != nil {
		return errFieldType(path, fmt.Sprintf("a value of type %s", fv.Type()))
	}
	return nil
}

func jsonName(field reflect.StructField) string {
	tag := field.Tag.Get("json")
	if tag == "" {
		return field.Name
	}
	name, _, _ := strings.Cut(tag, ",")
	return name
}

func jsonOmitEmpty(field reflect.StructField) bool {
	_, opts, _ := strings.Cut(field.Tag.Get("json"), ",")
	return opts == "omitempty"
}

func isNull(raw json.RawMessage) bool {
	return string(bytes.TrimSpace(raw)) == "null"
}

// EncodeJSON writes a syntax tree in the form read by DecodeJSON. Members
// appear in field declaration order.
func EncodeJSON(node Node) ([]byte, error) {
	var buf bytes.Buffer
	if err := encodeNode(&buf, node); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func encodeNode(buf *bytes.Buffer, node Node) error {
	buf.WriteString(`{"type":`)
	kindJSON, _ := json.Marshal(node.Kind().String())
	buf.Write(kindJSON)
	if err := encodeFields(buf, reflect.ValueOf(node).Elem()); err != nil {
		return err
	}
	buf.WriteByte('}')
	return nil
}

func encodeFields(buf *bytes.Buffer, v reflect.Value) error {
	t := v.Type()
	for ii := 0; ii < t.NumField(); ii++ {
		field := t.Field(ii)
		fv := v.Field(ii)
		if field.Anonymous {
			if err := encodeFields(buf, fv); err != nil {
				return err
			}
			continue
		}
		if !field.IsExported() {
			continue
		}

		switch field.Type {
		case nodeType:
			if fv.IsNil() {
				continue
			}
			writeMemberName(buf, jsonName(field))
			if err := encodeNode(buf, fv.Interface().(Node)); err != nil {
				return err
			}
			continue
		case nodeSliceType:
			// A nil list means "none"; an empty list is kept.
			if fv.IsNil() {
				continue
			}
			writeMemberName(buf, jsonName(field))
			buf.WriteByte('[')
			for jj, item := range fv.Interface().([]Node) {
				if jj > 0 {
					buf.WriteByte(',')
				}
				if err := encodeNode(buf, item); err != nil {
					return err
				}
			}
			buf.WriteByte(']')
			continue
		case commentSliceType:
			comments := fv.Interface().([]*Comment)
			if len(comments) == 0 {
				continue
			}
			writeMemberName(buf, jsonName(field))
			buf.WriteByte('[')
			for jj, comment := range comments {
				if jj > 0 {
					buf.WriteByte(',')
				}
				if err := encodeNode(buf, comment); err != nil {
					return err
				}
			}
			buf.WriteByte(']')
			continue
		}

		if jsonOmitEmpty(field) && fv.IsZero() {
			continue
		}
		value, err := json.Marshal(fv.Interface())
		if err != nil {
			return err
		}
		writeMemberName(buf, jsonName(field))
		buf.Write(value)
	}
	return nil
}

func writeMemberName(buf *bytes.Buffer, name string) {
	nameJSON, _ := json.Marshal(name)
	buf.WriteByte(',')
	buf.Write(nameJSON)
	buf.WriteByte(':')
}

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
	"fmt"
)

type Kind uint8

const (
	KindInvalid Kind = iota

	// Leaves
	KindAtom
	KindVariable
	KindInteger
	KindFloat
	KindChar
	KindString
	KindNil
	KindUnderscore
	KindText
	KindOperator
	KindComment
	KindEOFMarker

	// Expressions and patterns
	KindTuple
	KindList
	KindBinary
	KindBinaryField
	KindSizeQualifier
	KindMapExpr
	KindMapFieldAssoc
	KindMapFieldExact
	KindInfixExpr
	KindPrefixExpr
	KindMatchExpr
	KindApplication
	KindModuleQualifier
	KindArityQualifier
	KindImplicitFun
	KindFunExpr
	KindNamedFunExpr
	KindFunction
	KindClause
	KindCaseExpr
	KindIfExpr
	KindReceiveExpr
	KindTryExpr
	KindClassQualifier
	KindCatchExpr
	KindBlockExpr
	KindMaybeExpr
	KindMaybeMatchExpr
	KindElseExpr
	KindParentheses
	KindConjunction
	KindDisjunction
	KindListComp
	KindBinaryComp
	KindGenerator
	KindBinaryGenerator
	KindRecordExpr
	KindRecordField
	KindRecordAccess
	KindRecordIndexExpr
	KindMacro

	// Forms
	KindAttribute
	KindFormList
	KindErrorMarker
	KindWarningMarker

	// Types
	KindAnnotatedType
	KindFunType
	KindTypeUnion
	KindFunctionType
	KindConstrainedFunctionType
	KindConstraint
	KindIntegerRangeType
	KindMapType
	KindMapTypeAssoc
	KindMapTypeExact
	KindRecordType
	KindRecordTypeField
	KindTupleType
	KindTypeApplication
	KindUserTypeApplication
	KindBitstringType
	KindTypedRecordField

	kindCount
)

var kindNames = [kindCount]string{
	KindInvalid:                 "invalid",
	KindAtom:                    "atom",
	KindVariable:                "variable",
	KindInteger:                 "integer",
	KindFloat:                   "float",
	KindChar:                    "char",
	KindString:                  "string",
	KindNil:                     "nil",
	KindUnderscore:              "underscore",
	KindText:                    "text",
	KindOperator:                "operator",
	KindComment:                 "comment",
	KindEOFMarker:               "eof_marker",
	KindTuple:                   "tuple",
	KindList:                    "list",
	KindBinary:                  "binary",
	KindBinaryField:             "binary_field",
	KindSizeQualifier:           "size_qualifier",
	KindMapExpr:                 "map_expr",
	KindMapFieldAssoc:           "map_field_assoc",
	KindMapFieldExact:           "map_field_exact",
	KindInfixExpr:               "infix_expr",
	KindPrefixExpr:              "prefix_expr",
	KindMatchExpr:               "match_expr",
	KindApplication:             "application",
	KindModuleQualifier:         "module_qualifier",
	KindArityQualifier:          "arity_qualifier",
	KindImplicitFun:             "implicit_fun",
	KindFunExpr:                 "fun_expr",
	KindNamedFunExpr:            "named_fun_expr",
	KindFunction:                "function",
	KindClause:                  "clause",
	KindCaseExpr:                "case_expr",
	KindIfExpr:                  "if_expr",
	KindReceiveExpr:             "receive_expr",
	KindTryExpr:                 "try_expr",
	KindClassQualifier:          "class_qualifier",
	KindCatchExpr:               "catch_expr",
	KindBlockExpr:               "block_expr",
	KindMaybeExpr:               "maybe_expr",
	KindMaybeMatchExpr:          "maybe_match_expr",
	KindElseExpr:                "else_expr",
	KindParentheses:             "parentheses",
	KindConjunction:             "conjunction",
	KindDisjunction:             "disjunction",
	KindListComp:                "list_comp",
	KindBinaryComp:              "binary_comp",
	KindGenerator:               "generator",
	KindBinaryGenerator:         "binary_generator",
	KindRecordExpr:              "record_expr",
	KindRecordField:             "record_field",
	KindRecordAccess:            "record_access",
	KindRecordIndexExpr:         "record_index_expr",
	KindMacro:                   "macro",
	KindAttribute:               "attribute",
	KindFormList:                "form_list",
	KindErrorMarker:             "error_marker",
	KindWarningMarker:           "warning_marker",
	KindAnnotatedType:           "annotated_type",
	KindFunType:                 "fun_type",
	KindTypeUnion:               "type_union",
	KindFunctionType:            "function_type",
	KindConstrainedFunctionType: "constrained_function_type",
	KindConstraint:              "constraint",
	KindIntegerRangeType:        "integer_range_type",
	KindMapType:                 "map_type",
	KindMapTypeAssoc:            "map_type_assoc",
	KindMapTypeExact:            "map_type_exact",
	KindRecordType:              "record_type",
	KindRecordTypeField:         "record_type_field",
	KindTupleType:               "tuple_type",
	KindTypeApplication:         "type_application",
	KindUserTypeApplication:     "user_type_application",
	KindBitstringType:           "bitstring_type",
	KindTypedRecordField:        "typed_record_field",
}

var kindsByName = func() map[string]Kind {
	out := make(map[string]Kind, kindCount)
	for kind := KindAtom; kind < kindCount; kind++ {
		out[kindNames[kind]] = kind
	}
	return out
}()

func (k Kind) String() string {
	if k < kindCount {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

func KindByName(name string) (Kind, bool) {
	kind, ok := kindsByName[name]
	return kind, ok
}

// IsType reports whether nodes of this kind only occur in type positions.
func (k Kind) IsType() bool {
	return k >= KindAnnotatedType && k < kindCount
}

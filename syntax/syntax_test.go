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

package syntax_test

import (
	"testing"

	"github.com/alanz/rebar3-format/internal/testutil"
	"github.com/alanz/rebar3-format/syntax"
)

func TestKindNames(t *testing.T) {
	for kind := syntax.KindAtom; kind <= syntax.KindTypedRecordField; kind++ {
		name := kind.String()
		got, ok := syntax.KindByName(name)
		if !ok || got != kind {
			t.Errorf("KindByName(%q) = (%v, %v), want %v", name, got, ok, kind)
		}
	}
	_, ok := syntax.KindByName("no_such_kind")
	testutil.ExpectFalse(t, ok)
	testutil.ExpectTrue(t, syntax.KindTypeUnion.IsType())
	testutil.ExpectFalse(t, syntax.KindInfixExpr.IsType())
}

func TestEncodeJSON(t *testing.T) {
	node := syntax.NewApplication(
		syntax.NewAtom("foo"),
		syntax.NewInteger(1),
		syntax.NewVariable("X"),
	)
	got, err := syntax.EncodeJSON(node)
	testutil.AssertNoError(t, err)
	testutil.ExpectEq(t, `{"type":"application",`+
		`"operator":{"type":"atom","name":"foo"},`+
		`"arguments":[{"type":"integer","value":"1"},{"type":"variable","name":"X"}]}`,
		string(got))
}

func TestEncodeJSONComments(t *testing.T) {
	node := syntax.AddPostcomments(
		syntax.AddPrecomments(syntax.NewAtom("ok"), syntax.NewComment(" a")),
		syntax.NewPaddedComment(1, " b"),
	)
	got, err := syntax.EncodeJSON(node)
	testutil.AssertNoError(t, err)
	testutil.ExpectEq(t, `{"type":"atom",`+
		`"pre_comments":[{"type":"comment","lines":[" a"]}],`+
		`"post_comments":[{"type":"comment","padding":1,"lines":[" b"]}],`+
		`"name":"ok"}`,
		string(got))
}

func TestDecodeJSON(t *testing.T) {
	node, err := syntax.DecodeJSON([]byte(`{
		"type": "infix_expr",
		"left": {"type": "integer", "value": 1},
		"operator": {"type": "operator", "name": "+"},
		"right": {"type": "variable", "name": "X",
			"post_comments": [{"type": "comment", "lines": [" trailing"]}]}
	}`))
	testutil.AssertNoError(t, err)

	infix, ok := node.(*syntax.InfixExpr)
	if !ok {
		t.Fatalf("expected *syntax.InfixExpr, got %T", node)
	}
	testutil.ExpectEq(t, "1", infix.Left.(*syntax.Integer).Value)
	testutil.ExpectEq(t, "+", infix.Operator.(*syntax.Operator).Name)
	testutil.ExpectEq(t, "X", infix.Right.(*syntax.Variable).Name)

	post := infix.Right.Postcomments()
	testutil.ExpectEq(t, 1, len(post))
	testutil.ExpectSliceEq(t, []string{" trailing"}, post[0].Lines)
	testutil.ExpectTrue(t, post[0].Padding == nil)
}

func TestDecodeJSONAbsentVersusEmpty(t *testing.T) {
	node, err := syntax.DecodeJSON([]byte(`{"type": "macro", "name": {"type": "variable", "name": "LINE"}}`))
	testutil.AssertNoError(t, err)
	testutil.ExpectTrue(t, node.(*syntax.Macro).Arguments == nil)

	node, err = syntax.DecodeJSON([]byte(`{"type": "macro", "name": {"type": "atom", "name": "m"}, "arguments": []}`))
	testutil.AssertNoError(t, err)
	args := node.(*syntax.Macro).Arguments
	testutil.ExpectTrue(t, args != nil)
	testutil.ExpectEq(t, 0, len(args))

	encoded, err := syntax.EncodeJSON(node)
	testutil.AssertNoError(t, err)
	testutil.ExpectEq(t, `{"type":"macro","name":{"type":"atom","name":"m"},"arguments":[]}`, string(encoded))
}

func TestDecodeJSONRoundTrip(t *testing.T) {
	src := `{"type":"function","name":{"type":"atom","name":"f"},` +
		`"clauses":[{"type":"clause","patterns":[{"type":"variable","name":"X"}],` +
		`"guard":{"type":"application","operator":{"type":"atom","name":"is_atom"},` +
		`"arguments":[{"type":"variable","name":"X"}]},` +
		`"body":[{"type":"atom","name":"ok"}]}]}`
	node, err := syntax.DecodeJSON([]byte(src))
	testutil.AssertNoError(t, err)
	got, err := syntax.EncodeJSON(node)
	testutil.AssertNoError(t, err)
	testutil.ExpectEq(t, src, string(got))
}

func TestDecodeJSONErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		code uint32
		path string
	}{
		{"invalid", `{`, 2000, ""},
		{"trailing", `{"type":"nil"} {}`, 2001, ""},
		{"not_object", `[1]`, 2002, "$"},
		{"missing_type", `{"name":"x"}`, 2003, "$"},
		{"unknown_kind", `{"type":"lambda"}`, 2004, "$"},
		{"field_type", `{"type":"tuple","elements":{}}`, 2005, "$.elements"},
		{"unknown_field", `{"type":"nil","value":1}`, 2006, "$"},
		{"expected_comment", `{"type":"nil","pre_comments":[{"type":"nil"}]}`, 2007, "$.pre_comments[0]"},
		{"nested", `{"type":"tuple","elements":[{"type":"atom"},{"type":"bogus"}]}`, 2004, "$.elements[1]"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := syntax.DecodeJSON([]byte(test.src))
			testutil.AssertError(t, err)
			testutil.ExpectErrorCode(t, test.code, err)
			testutil.ExpectEq(t, test.path, err.(*syntax.Error).Path())
		})
	}
}

func TestWalk(t *testing.T) {
	tree := syntax.NewTuple(
		syntax.NewAtom("a"),
		syntax.NewList(syntax.NewInteger(1), syntax.NewInteger(2)),
	)
	var kinds []syntax.Kind
	syntax.Walk(tree, func(node syntax.Node) bool {
		if node != nil {
			kinds = append(kinds, node.Kind())
		}
		return true
	})
	testutil.ExpectSliceEq(t, []syntax.Kind{
		syntax.KindTuple,
		syntax.KindAtom,
		syntax.KindList,
		syntax.KindInteger,
		syntax.KindInteger,
	}, kinds)

	var children []syntax.Kind
	for child := range syntax.Children(tree) {
		children = append(children, child.Kind())
	}
	testutil.ExpectSliceEq(t, []syntax.Kind{syntax.KindAtom, syntax.KindList}, children)
}

func TestChildrenSkipsAbsentNodes(t *testing.T) {
	clause := syntax.NewClause(nil, nil, syntax.NewAtom("ok"))
	count := 0
	for range syntax.Children(clause) {
		count++
	}
	testutil.ExpectEq(t, 1, count)
}

func TestIntegerHelpers(t *testing.T) {
	n := syntax.NewInteger(-42)
	testutil.ExpectTrue(t, n.IsNegative())
	v, ok := n.Int64()
	testutil.ExpectTrue(t, ok)
	testutil.ExpectEq(t, int64(-42), v)

	_, ok = (&syntax.Integer{Value: "16#FF"}).Int64()
	testutil.ExpectFalse(t, ok)
}

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
	"iter"
)

// Node is an Erlang syntax tree node. The set of node types is closed: every
// implementation lives in this package.
type Node interface {
	Kind() Kind

	Precomments() []*Comment
	Postcomments() []*Comment

	privChildren() []Node
	annotations() *Annotations
}

// Annotations holds the comments attached to a node. Pre-comments are placed
// above the node, post-comments follow it on the same line.
type Annotations struct {
	Pre  []*Comment `json:"pre_comments,omitempty"`
	Post []*Comment `json:"post_comments,omitempty"`
}

func (a *Annotations) Precomments() []*Comment {
	return a.Pre
}

func (a *Annotations) Postcomments() []*Comment {
	return a.Post
}

func (a *Annotations) annotations() *Annotations {
	return a
}

func HasComments(node Node) bool {
	return len(node.Precomments()) > 0 || len(node.Postcomments()) > 0
}

// AddPrecomments attaches leading comments to a node under construction.
func AddPrecomments[N Node](node N, comments ...*Comment) N {
	ann := node.annotations()
	ann.Pre = append(ann.Pre, comments...)
	return node
}

// AddPostcomments attaches trailing comments to a node under construction.
func AddPostcomments[N Node](node N, comments ...*Comment) N {
	ann := node.annotations()
	ann.Post = append(ann.Post, comments...)
	return node
}

func Children(node Node) iter.Seq[Node] {
	return iterChildren(node.privChildren())
}

func Walk(node Node, walkFn func(Node) bool) {
	if node == nil || !walkFn(node) {
		return
	}
	for _, child := range node.privChildren() {
		Walk(child, walkFn)
	}
	walkFn(nil)
}

func iterChildren(childNodes []Node) iter.Seq[Node] {
	return func(yield func(Node) bool) {
		for _, child := range childNodes {
			if !yield(child) {
				return
			}
		}
	}
}

// collect flattens single nodes and node slices into one child list, skipping
// absent (nil) children.
func collect(parts ...any) []Node {
	var out []Node
	for _, part := range parts {
		switch part := part.(type) {
		case Node:
			if part != nil {
				out = append(out, part)
			}
		case []Node:
			for _, n := range part {
				if n != nil {
					out = append(out, n)
				}
			}
		case nil:
		default:
			panic("syntax.collect: unexpected child type")
		}
	}
	return out
}

type leafNode struct {
	Annotations
}

func (*leafNode) privChildren() []Node {
	return nil
}

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

// Error is returned when a serialized syntax tree cannot be decoded. Path
// locates the offending value, e.g. "$.forms[2].clauses[0]".
type Error struct {
	code    uint32
	message string
	path    string
}

var _ error = (*Error)(nil)

func (err *Error) Error() string {
	if err.path == "" {
		return fmt.Sprintf("E%d: %s", err.code, err.message)
	}
	return fmt.Sprintf("E%d: %s: %s", err.code, err.path, err.message)
}

func (err *Error) Code() uint32 {
	return err.code
}

func (err *Error) Message() string {
	return err.message
}

func (err *Error) Path() string {
	return err.path
}

func errInvalidJSON(cause error) error {
	return &Error{
		code:    2000,
		message: fmt.Sprintf("Invalid JSON: %v", cause),
	}
}

func errTrailingData() error {
	return &Error{
		code:    2001,
		message: "Unexpected data after syntax tree",
	}
}

func errNotAnObject(path string) error {
	return &Error{
		code:    2002,
		message: "Expected a node object",
		path:    path,
	}
}

func errMissingType(path string) error {
	return &Error{
		code:    2003,
		message: `Node object has no "type" string`,
		path:    path,
	}
}

func errUnknownKind(path, name string) error {
	return &Error{
		code:    2004,
		message: fmt.Sprintf("Unknown node type %q", name),
		path:    path,
	}
}

func errFieldType(path, want string) error {
	return &Error{
		code:    2005,
		message: fmt.Sprintf("Expected %s", want),
		path:    path,
	}
}

func errUnknownField(path string, kind Kind, field string) error {
	return &Error{
		code:    2006,
		message: fmt.Sprintf("Unknown field %q for node type %q", field, kind),
		path:    path,
	}
}

func errExpectedComment(path string, got Kind) error {
	return &Error{
		code:    2007,
		message: fmt.Sprintf("Expected a comment node, got %q", got),
		path:    path,
	}
}

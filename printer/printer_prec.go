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
)

// Precedences of the form (left, own, right) for infix operators and
// (own, right) for prefix operators. An operand is parenthesized when the
// precedence required by its position is greater than its own.
type infixPrec struct {
	left, own, right int
}

type prefixPrec struct {
	own, right int
}

const (
	maxPrec = 900

	// Function application: the callee position and the application itself.
	funcPrecL = 800
	funcPrec  = 700
)

var valueInfix = map[string]infixPrec{
	"=":       {150, 100, 100},
	"!":       {150, 100, 100},
	"?=":      {150, 100, 100},
	"orelse":  {160, 150, 150},
	"andalso": {200, 160, 160},
	"==":      {300, 200, 300},
	"/=":      {300, 200, 300},
	"=<":      {300, 200, 300},
	"<":       {300, 200, 300},
	">=":      {300, 200, 300},
	">":       {300, 200, 300},
	"=:=":     {300, 200, 300},
	"=/=":     {300, 200, 300},
	"++":      {400, 300, 300},
	"--":      {400, 300, 300},
	"+":       {400, 400, 500},
	"-":       {400, 400, 500},
	"bor":     {400, 400, 500},
	"bxor":    {400, 400, 500},
	"bsl":     {400, 400, 500},
	"bsr":     {400, 400, 500},
	"or":      {400, 400, 500},
	"xor":     {400, 400, 500},
	"*":       {500, 500, 600},
	"/":       {500, 500, 600},
	"div":     {500, 500, 600},
	"rem":     {500, 500, 600},
	"band":    {500, 500, 600},
	"and":     {500, 500, 600},
	"#":       {800, 700, 800},
	":":       {900, 800, 900},
	".":       {900, 900, 1000},
}

var valuePrefix = map[string]prefixPrec{
	"catch": {0, 100},
	"+":     {600, 700},
	"-":     {600, 700},
	"bnot":  {600, 700},
	"not":   {600, 700},
	"#":     {700, 800},
}

var typeInfix = map[string]infixPrec{
	"=":    {150, 100, 100},
	"::":   {160, 150, 150},
	"|":    {180, 170, 170},
	"..":   {300, 200, 300},
	"+":    {400, 400, 500},
	"-":    {400, 400, 500},
	"bor":  {400, 400, 500},
	"bxor": {400, 400, 500},
	"bsl":  {400, 400, 500},
	"bsr":  {400, 400, 500},
	"*":    {500, 500, 600},
	"/":    {500, 500, 600},
	"div":  {500, 500, 600},
	"rem":  {500, 500, 600},
	"band": {500, 500, 600},
	"#":    {800, 700, 800},
}

var typePrefix = map[string]prefixPrec{
	"+":    {600, 700},
	"-":    {600, 700},
	"bnot": {600, 700},
	"#":    {700, 800},
}

// inopPrec looks up an infix operator. Unknown operators bind loosest.
func (c Context) inopPrec(op string) infixPrec {
	table := valueInfix
	if c.InType {
		table = typeInfix
	}
	if prec, ok := table[op]; ok {
		return prec
	}
	return infixPrec{}
}

func (c Context) preopPrec(op string) prefixPrec {
	table := valuePrefix
	if c.InType {
		table = typePrefix
	}
	if prec, ok := table[op]; ok {
		return prec
	}
	return prefixPrec{}
}

func typeInopPrec(op string) infixPrec {
	return typeInfix[op]
}

func typePreopPrec(op string) prefixPrec {
	return typePrefix[op]
}

func maybeParentheses(d layout.Document, prec int, ctx Context) layout.Document {
	if ctx.Prec > prec {
		return layParentheses(d)
	}
	return d
}

func layParentheses(d layout.Document) layout.Document {
	return layout.Concat(
		layout.Float(layout.Text("(")),
		d,
		layout.Float(layout.Text(")")),
	)
}

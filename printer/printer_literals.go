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
	"fmt"
	"strings"

	"github.com/alanz/rebar3-format/layout"
)

// TidyFloat shortens a float literal: the first fraction digit is always
// kept, the mantissa is cut at the first run of three zeros, and a zero
// exponent is dropped. The result is a fixed point of TidyFloat.
//
//	3.000000     => 3.0
//	1.50000e+00  => 1.5
//	2.0e-000     => 2.0
//	1.0e05       => 1.0e+5
func TidyFloat(s string) string {
	var out strings.Builder
	ii := 0
	for ii < len(s) {
		c := s[ii]
		if c == 'e' || c == 'E' {
			out.WriteString(tidyExponent(s[ii:]))
			return out.String()
		}
		out.WriteByte(c)
		ii++
		if c == '.' {
			if ii < len(s) {
				out.WriteByte(s[ii])
				ii++
			}
			break
		}
	}
	for ii < len(s) {
		if strings.HasPrefix(s[ii:], "000") {
			break
		}
		c := s[ii]
		if c == 'e' || c == 'E' {
			break
		}
		out.WriteByte(c)
		ii++
	}
	if exp := strings.IndexAny(s[ii:], "eE"); exp >= 0 {
		out.WriteString(tidyExponent(s[ii+exp:]))
	}
	return out.String()
}

// tidyExponent normalizes "e[+-]digits".
func tidyExponent(s string) string {
	sign := "+"
	digits := s[1:]
	if len(digits) > 0 && (digits[0] == '+' || digits[0] == '-') {
		sign = digits[:1]
		digits = digits[1:]
	}
	digits = strings.TrimLeft(digits, "0")
	if digits == "" {
		return ""
	}
	return "e" + sign + digits
}

// SplitString breaks a quoted string literal into quoted segments of about
// width characters, for literals longer than width. A segment may only end
// after a space or after a complete escape sequence, and only when at least
// five characters of the literal remain. The contents of the segments,
// concatenated, are the contents of the literal.
func SplitString(literal string, width int) []string {
	s := []rune(literal)
	var out []string
	for width > 0 && len(s) > width {
		head, rest, ok := splitPoint(s, width-1)
		if !ok {
			break
		}
		out = append(out, string(head)+`"`)
		s = append([]rune{'"'}, rest...)
	}
	return append(out, string(s))
}

// splitPoint scans s with a budget of n characters. Once the budget is
// spent, s is split at the next permitted point.
func splitPoint(s []rune, n int) (head, rest []rune, ok bool) {
	for ii := 0; ii < len(s); {
		remaining := len(s) - ii
		switch s[ii] {
		case ' ':
			if n <= 0 && remaining >= 5 {
				return s[:ii+1], s[ii+1:], true
			}
		case '\\':
			end := escapeEnd(s, ii)
			n -= end - ii
			ii = end
			if n <= 0 && len(s)-ii >= 5 {
				return s[:ii], s[ii:], true
			}
			continue
		}
		n--
		ii++
	}
	return nil, nil, false
}

// escapeEnd returns the index just past the escape sequence starting with
// the backslash at s[start]: "\X", "\^X", up to three octal digits, or
// "\x{...}".
func escapeEnd(s []rune, start int) int {
	ii := start + 1
	if ii >= len(s) {
		return ii
	}
	switch c := s[ii]; {
	case c == '^' && ii+1 < len(s):
		return ii + 2
	case c == 'x' && ii+1 < len(s) && s[ii+1] == '{':
		ii += 2
		for ii < len(s) && s[ii] != '}' {
			ii++
		}
		if ii < len(s) {
			ii++
		}
		return ii
	case isOctal(c):
		end := ii + 1
		for end < len(s) && end < ii+3 && isOctal(s[end]) {
			end++
		}
		return end
	}
	return ii + 1
}

func isOctal(c rune) bool {
	return c >= '0' && c <= '7'
}

// layString prints a string literal, split into a vertical stack of
// adjacent literals when it is wider than two thirds of the ribbon.
func layString(value string, ctx Context) layout.Document {
	segments := SplitString(quoteString(value, '"', ctx.Encoding), ctx.Ribbon*2/3)
	docs := make([]layout.Document, len(segments))
	for ii, segment := range segments {
		docs[ii] = layout.Text(segment)
	}
	return layout.Stack(docs...)
}

var reservedWords = map[string]bool{
	"after":   true,
	"and":     true,
	"andalso": true,
	"band":    true,
	"begin":   true,
	"bnot":    true,
	"bor":     true,
	"bsl":     true,
	"bsr":     true,
	"bxor":    true,
	"case":    true,
	"catch":   true,
	"cond":    true,
	"div":     true,
	"else":    true,
	"end":     true,
	"fun":     true,
	"if":      true,
	"let":     true,
	"maybe":   true,
	"not":     true,
	"of":      true,
	"or":      true,
	"orelse":  true,
	"receive": true,
	"rem":     true,
	"try":     true,
	"when":    true,
	"xor":     true,
}

// atomLiteral quotes an atom unless it is a lowercase identifier that is
// not a reserved word.
func atomLiteral(name string, enc Encoding) string {
	if isPlainAtom(name) && !reservedWords[name] {
		return name
	}
	return quoteString(name, '\'', enc)
}

func isPlainAtom(name string) bool {
	for ii, r := range name {
		if ii == 0 {
			if !isLower(r) {
				return false
			}
			continue
		}
		if !isLower(r) && !isUpper(r) && !(r >= '0' && r <= '9') && r != '_' && r != '@' {
			return false
		}
	}
	return name != ""
}

// Latin-1 letters are identifier characters, except for the
// multiplication and division signs.
func isLower(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 0xDF && r <= 0xFF && r != 0xF7)
}

func isUpper(r rune) bool {
	return (r >= 'A' && r <= 'Z') || (r >= 0xC0 && r <= 0xDE && r != 0xD7)
}

func quoteString(s string, quote rune, enc Encoding) string {
	var buf strings.Builder
	buf.WriteRune(quote)
	for _, r := range s {
		writeEscaped(&buf, r, quote, enc)
	}
	buf.WriteRune(quote)
	return buf.String()
}

func charLiteral(r rune, enc Encoding) string {
	if r == ' ' {
		return `$\s`
	}
	var buf strings.Builder
	buf.WriteByte('$')
	writeEscaped(&buf, r, '"', enc)
	return buf.String()
}

func writeEscaped(buf *strings.Builder, r rune, quote rune, enc Encoding) {
	switch r {
	case quote, '\\':
		buf.WriteByte('\\')
		buf.WriteRune(r)
		return
	case '\n':
		buf.WriteString(`\n`)
		return
	case '\r':
		buf.WriteString(`\r`)
		return
	case '\t':
		buf.WriteString(`\t`)
		return
	case '\v':
		buf.WriteString(`\v`)
		return
	case '\b':
		buf.WriteString(`\b`)
		return
	case '\f':
		buf.WriteString(`\f`)
		return
	case 0x1B:
		buf.WriteString(`\e`)
		return
	case 0x7F:
		buf.WriteString(`\d`)
		return
	}
	switch {
	case r < 0x20, r >= 0x80 && r < 0xA0:
		fmt.Fprintf(buf, `\%03o`, r)
	case r > 0xFF && enc == Latin1:
		fmt.Fprintf(buf, `\x{%X}`, r)
	default:
		buf.WriteRune(r)
	}
}

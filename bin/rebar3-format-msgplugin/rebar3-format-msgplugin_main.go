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

package main

import (
	"fmt"
	"io"
	"log"
	"os"
)

// Run natively, the plugin reads one request (without the length prefix)
// from a file or stdin and prints the message.
func main() {
	args := os.Args[1:]
	if len(args) > 1 {
		log.Fatalf("usage: %s [REQUEST.json]", os.Args[0])
	}

	var (
		buf []byte
		err error
	)
	if len(args) == 1 {
		buf, err = os.ReadFile(args[0])
	} else {
		buf, err = io.ReadAll(os.Stdin)
	}
	if err != nil {
		log.Fatal(err)
	}

	msg, err := handleRequest(buf)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(msg)
}

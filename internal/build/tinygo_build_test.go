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
	"testing"

	"github.com/alanz/rebar3-format/internal/testutil"
)

func TestTinygoCommand(t *testing.T) {
	b := buildFlags{
		tinygo:   "external/tinygo/bin/tinygo",
		output:   "out/plugin.wasm",
		chdir:    "src",
		goSdkBin: "external/go/bin",
		wasmOpt:  "external/binaryen/bin/wasm-opt",
		target:   "wasip1",
	}
	cmd := tinygoCommand(b, "/work", "/tmp", nil)

	testutil.ExpectEq(t, "/work/external/tinygo/bin/tinygo", cmd.Path)
	testutil.ExpectSliceEq(t, []string{
		"/work/external/tinygo/bin/tinygo",
		"build",
		"-target=wasip1",
		"-o=/work/out/plugin.wasm",
		defaultPackage,
	}, cmd.Args)
	testutil.ExpectEq(t, "/work/src", cmd.Dir)
	testutil.ExpectSliceEq(t, []string{
		"HOME=/tmp/tinygo-home",
		"PATH=/work/external/go/bin",
		"WASMOPT=/work/external/binaryen/bin/wasm-opt",
	}, cmd.Env)
}

func TestTinygoCommandPackages(t *testing.T) {
	b := buildFlags{tinygo: "/opt/tinygo/bin/tinygo", output: "a.wasm", chdir: ".", target: "wasi"}
	cmd := tinygoCommand(b, "/work", "/tmp", []string{"./x", "./y"})
	testutil.ExpectSliceEq(t, []string{
		"/opt/tinygo/bin/tinygo",
		"build",
		"-target=wasi",
		"-o=/work/a.wasm",
		"./x",
		"./y",
	}, cmd.Args)
}

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

// Command tinygo_build compiles the message plugin to WebAssembly with a
// hermetic TinyGo toolchain. Paths are relative to the working directory.
package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/spf13/pflag"
)

const defaultPackage = "./bin/rebar3-format-msgplugin"

type buildFlags struct {
	tinygo   string
	output   string
	chdir    string
	goSdkBin string
	wasmOpt  string
	target   string
}

func main() {
	var b buildFlags
	flags := pflag.NewFlagSet("tinygo_build", pflag.ExitOnError)
	flags.StringVar(&b.tinygo, "tinygo", "tinygo", "TinyGo binary")
	flags.StringVarP(&b.output, "output", "o", "rebar3-format-msgplugin.wasm", "output file")
	flags.StringVar(&b.chdir, "chdir", ".", "module root")
	flags.StringVar(&b.goSdkBin, "go-sdk-bin", "", "directory holding the go binary")
	flags.StringVar(&b.wasmOpt, "wasm-opt", "", "wasm-opt binary")
	flags.StringVar(&b.target, "target", "wasip1", "TinyGo target")
	flags.Parse(os.Args[1:])

	pwd, err := os.Getwd()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	cmd := tinygoCommand(b, pwd, os.Getenv("TMPDIR"), flags.Args())
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func tinygoCommand(b buildFlags, pwd, tmpDir string, pkgs []string) *exec.Cmd {
	if len(pkgs) == 0 {
		pkgs = []string{defaultPackage}
	}
	args := []string{"build", "-target=" + b.target, "-o=" + filepath.Join(pwd, b.output)}
	args = append(args, pkgs...)

	tinygo := b.tinygo
	if !filepath.IsAbs(tinygo) && filepath.Base(tinygo) != tinygo {
		tinygo = filepath.Join(pwd, tinygo)
	}
	cmd := exec.Command(tinygo, args...)
	cmd.Env = []string{"HOME=" + filepath.Join(tmpDir, "tinygo-home")}
	if b.goSdkBin != "" {
		cmd.Env = append(cmd.Env, "PATH="+filepath.Join(pwd, b.goSdkBin))
	} else {
		cmd.Env = append(cmd.Env, "PATH="+os.Getenv("PATH"))
	}
	if b.wasmOpt != "" {
		cmd.Env = append(cmd.Env, "WASMOPT="+filepath.Join(pwd, b.wasmOpt))
	}
	cmd.Dir = filepath.Join(pwd, b.chdir)
	return cmd
}

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

package testutil

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"slices"
)

// TestdataFS returns the repository's top-level testdata directory.
func TestdataFS() (fs.FS, error) {
	_, file, _, ok := runtime.Caller(0)
	if !ok {
		return nil, fmt.Errorf("testutil: unable to locate source directory")
	}
	root := filepath.Join(filepath.Dir(file), "..", "..", "testdata")
	if _, err := os.Stat(root); err != nil {
		return nil, err
	}
	return os.DirFS(root), nil
}

// GoldenCase is one directory of a golden test suite: an input syntax tree
// and the text it is expected to format to.
type GoldenCase struct {
	Name   string
	Input  []byte
	Expect []byte
}

// LoadGoldenCases reads every "<dir>/<name>/input.json" and its sibling
// "expect.erl" from the testdata filesystem, sorted by name.
func LoadGoldenCases(testdata fs.FS, dir string) ([]GoldenCase, error) {
	entries, err := fs.ReadDir(testdata, dir)
	if err != nil {
		return nil, err
	}
	var cases []GoldenCase
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		name := entry.Name()
		input, err := fs.ReadFile(testdata, dir+"/"+name+"/input.json")
		if err != nil {
			return nil, err
		}
		expect, err := fs.ReadFile(testdata, dir+"/"+name+"/expect.erl")
		if err != nil {
			return nil, err
		}
		cases = append(cases, GoldenCase{
			Name:   name,
			Input:  input,
			Expect: expect,
		})
	}
	slices.SortFunc(cases, func(a, b GoldenCase) int {
		if a.Name < b.Name {
			return -1
		}
		if a.Name > b.Name {
			return 1
		}
		return 0
	})
	return cases, nil
}

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

// Package msgplugin runs WebAssembly modules that describe the diagnostics
// carried by error and warning markers.
//
// A plugin exports two functions:
//
//	rebar3_format_allocate(len u32) -> ptr
//	rebar3_format_message(request_ptr, response_ptr_ptr) -> u8
//
// The request is a little-endian u32 length followed by a JSON object
// {"module": ..., "descriptor": ...}, where the descriptor is a syntax tree in
// the format of syntax.EncodeJSON. The plugin stores the address of its
// response, a u32 length followed by UTF-8 text, at response_ptr_ptr. A
// non-zero return code means the response text is an error message.
package msgplugin

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"os"

	wasm "github.com/tetratelabs/wazero"

	"github.com/alanz/rebar3-format/printer"
	"github.com/alanz/rebar3-format/syntax"
)

const (
	exportAllocate = "rebar3_format_allocate"
	exportMessage  = "rebar3_format_message"

	// 64 KiB pages; 1 GiB in total.
	defaultMemoryLimitPages = 16384
)

type Option interface {
	apply(*options)
}

type option func(*options)

func (f option) apply(opts *options) { f(opts) }

type options struct {
	memoryLimitPages uint32
}

// WithMemoryLimitPages caps the linear memory of each plugin instance.
func WithMemoryLimitPages(pages uint32) Option {
	return option(func(opts *options) {
		opts.memoryLimitPages = pages
	})
}

// Plugin is a compiled message plugin. Every call to FormatMessage runs in
// a fresh instance, so a plugin keeps no state between messages.
type Plugin struct {
	runtime  wasm.Runtime
	compiled wasm.CompiledModule
}

var _ printer.MessageFormatter = (*Plugin)(nil)

func Load(ctx context.Context, pluginBin []byte, opts ...Option) (*Plugin, error) {
	o := options{memoryLimitPages: defaultMemoryLimitPages}
	for _, opt := range opts {
		opt.apply(&o)
	}
	runtimeConfig := wasm.NewRuntimeConfigInterpreter()
	runtimeConfig = runtimeConfig.WithMemoryLimitPages(o.memoryLimitPages)
	runtime := wasm.NewRuntimeWithConfig(ctx, runtimeConfig)

	compiled, err := runtime.CompileModule(ctx, pluginBin)
	if err != nil {
		runtime.Close(ctx)
		return nil, fmt.Errorf("msgplugin: compile: %w", err)
	}
	for _, name := range []string{exportAllocate, exportMessage} {
		if _, ok := compiled.ExportedFunctions()[name]; !ok {
			runtime.Close(ctx)
			return nil, fmt.Errorf("msgplugin: missing export %q", name)
		}
	}
	return &Plugin{runtime: runtime, compiled: compiled}, nil
}

func LoadFile(ctx context.Context, path string, opts ...Option) (*Plugin, error) {
	pluginBin, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Load(ctx, pluginBin, opts...)
}

func (p *Plugin) Close(ctx context.Context) error {
	return p.runtime.Close(ctx)
}

type request struct {
	Module     string          `json:"module"`
	Descriptor json.RawMessage `json:"descriptor"`
}

func (p *Plugin) FormatMessage(module string, descriptor syntax.Node) (string, error) {
	return p.FormatMessageContext(context.Background(), module, descriptor)
}

func (p *Plugin) FormatMessageContext(ctx context.Context, module string, descriptor syntax.Node) (string, error) {
	descriptorJSON, err := syntax.EncodeJSON(descriptor)
	if err != nil {
		return "", err
	}
	payload, err := json.Marshal(request{Module: module, Descriptor: descriptorJSON})
	if err != nil {
		return "", err
	}
	requestBuf := binary.LittleEndian.AppendUint32(nil, uint32(len(payload)))
	requestBuf = append(requestBuf, payload...)

	moduleConfig := wasm.NewModuleConfig().WithName("")
	plugin, err := p.runtime.InstantiateModule(ctx, p.compiled, moduleConfig)
	if err != nil {
		return "", fmt.Errorf("msgplugin: instantiate: %w", err)
	}
	defer plugin.Close(ctx)
	mem := plugin.Memory()
	if mem == nil {
		return "", fmt.Errorf("msgplugin: plugin has no memory")
	}

	wasmAlloc := plugin.ExportedFunction(exportAllocate)
	wasmMessage := plugin.ExportedFunction(exportMessage)

	results, err := wasmAlloc.Call(ctx, uint64(len(requestBuf)))
	if err != nil {
		return "", fmt.Errorf("msgplugin: %s: %w", exportAllocate, err)
	}
	requestPtr := uint32(results[0])
	if !mem.Write(requestPtr, requestBuf) {
		return "", fmt.Errorf("msgplugin: request buffer out of range")
	}

	results, err = wasmAlloc.Call(ctx, 4)
	if err != nil {
		return "", fmt.Errorf("msgplugin: %s: %w", exportAllocate, err)
	}
	responsePtrPtr := uint32(results[0])

	results, err = wasmMessage.Call(ctx, uint64(requestPtr), uint64(responsePtrPtr))
	if err != nil {
		return "", fmt.Errorf("msgplugin: %s: %w", exportMessage, err)
	}
	rc := uint8(results[0])

	responsePtr, ok := mem.ReadUint32Le(responsePtrPtr)
	if !ok {
		return "", fmt.Errorf("msgplugin: failed to read response address")
	}
	responseLen, ok := mem.ReadUint32Le(responsePtr)
	if !ok {
		return "", fmt.Errorf("msgplugin: failed to read response length")
	}
	responseBuf, ok := mem.Read(responsePtr+4, responseLen)
	if !ok {
		return "", fmt.Errorf("msgplugin: failed to read response")
	}
	if rc != 0 {
		return "", fmt.Errorf("msgplugin: %s", responseBuf)
	}
	return string(responseBuf), nil
}

// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package uledtest implements a scripted fake of uled.Primitives so that
// code driving user LEDs can be tested without the device.
package uledtest

import (
	"fmt"
	"strings"
	"sync"
)

// Requests understood by IoctlRead and Ioctl. Same values as in package uled.
const (
	Supported uintptr = 0x1d01
	SetAll    uintptr = 0x1d03
	GetAll    uintptr = 0x1d04
)

// Call is one recorded primitive call.
type Call struct {
	Op    string // "open", "ioctl", "ioctlread", "close", "printf" or "usleep"
	Path  string
	Flags int
	Fd    int
	Req   uintptr
	Arg   uintptr
	Usec  uint32
	Text  string
}

// Fake implements uled.Primitives.
//
// The zero value opens fd 0 and accepts every request.
type Fake struct {
	// Fd is returned by a successful Open.
	Fd int
	// OpenErr, if negative, is returned by Open.
	OpenErr int
	// IoctlResults are consumed one per Ioctl call. Once exhausted Ioctl
	// returns 0.
	IoctlResults []int
	// ReadErrs is returned by IoctlRead for the given request when negative.
	ReadErrs map[uintptr]int
	// CloseErr, if negative, is returned by Close.
	CloseErr int
	// SupportedMask is reported for Supported.
	SupportedMask uint32
	// State is the mask last written with SetAll, reported for GetAll.
	State uint32
	// PanicOn makes the named operation panic instead of returning.
	PanicOn string

	mu    sync.Mutex
	calls []Call
	out   strings.Builder
}

// Open implements uled.Primitives.
func (f *Fake) Open(path string, flags int) int {
	f.record(Call{Op: "open", Path: path, Flags: flags})
	if f.OpenErr < 0 {
		return f.OpenErr
	}
	return f.Fd
}

// Ioctl implements uled.Primitives.
func (f *Fake) Ioctl(fd int, req, arg uintptr) int {
	f.record(Call{Op: "ioctl", Fd: fd, Req: req, Arg: arg})
	f.mu.Lock()
	defer f.mu.Unlock()
	r := 0
	if len(f.IoctlResults) != 0 {
		r = f.IoctlResults[0]
		f.IoctlResults = f.IoctlResults[1:]
	}
	if r >= 0 && req == SetAll {
		f.State = uint32(arg)
	}
	return r
}

// IoctlRead implements uled.Primitives.
func (f *Fake) IoctlRead(fd int, req uintptr, out *uint32) int {
	f.record(Call{Op: "ioctlread", Fd: fd, Req: req})
	f.mu.Lock()
	defer f.mu.Unlock()
	if r := f.ReadErrs[req]; r < 0 {
		return r
	}
	switch req {
	case Supported:
		*out = f.SupportedMask
	case GetAll:
		*out = f.State
	default:
		// ENOTTY
		return -25
	}
	return 0
}

// Close implements uled.Primitives.
func (f *Fake) Close(fd int) int {
	f.record(Call{Op: "close", Fd: fd})
	if f.CloseErr < 0 {
		return f.CloseErr
	}
	return 0
}

// Printf implements uled.Primitives.
func (f *Fake) Printf(format string, args ...any) int {
	s := fmt.Sprintf(format, args...)
	f.record(Call{Op: "printf", Text: s})
	f.mu.Lock()
	defer f.mu.Unlock()
	f.out.WriteString(s)
	return len(s)
}

// Usleep implements uled.Primitives. It returns immediately.
func (f *Fake) Usleep(usec uint32) int {
	f.record(Call{Op: "usleep", Usec: usec})
	return 0
}

// Calls returns the calls recorded so far.
func (f *Fake) Calls() []Call {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]Call, len(f.calls))
	copy(out, f.calls)
	return out
}

// Ops returns the operation of each recorded call, printf excluded.
func (f *Fake) Ops() []string {
	var ops []string
	for _, c := range f.Calls() {
		if c.Op != "printf" {
			ops = append(ops, c.Op)
		}
	}
	return ops
}

// Count returns how many times op was called.
func (f *Fake) Count(op string) int {
	n := 0
	for _, c := range f.Calls() {
		if c.Op == op {
			n++
		}
	}
	return n
}

// Output returns everything printed.
func (f *Fake) Output() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.out.String()
}

func (f *Fake) record(c Call) {
	f.mu.Lock()
	f.calls = append(f.calls, c)
	f.mu.Unlock()
	if f.PanicOn == c.Op {
		panic(fmt.Sprintf("uledtest: %s", c.Op))
	}
}

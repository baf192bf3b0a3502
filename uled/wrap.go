// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package uled

// Open opens path with flags.
func Open(p Primitives, path string, flags int) (Handle, error) {
	r := p.Open(path, flags)
	if r < 0 {
		return 0, &Error{Op: "open", Path: path, Code: r}
	}
	return Handle(r), nil
}

// Ioctl issues the control request req on h with the integer argument arg
// and returns the device acknowledgment.
func Ioctl(p Primitives, h Handle, req, arg uintptr) (int, error) {
	r := p.Ioctl(int(h), req, arg)
	if r < 0 {
		return 0, &Error{Op: "ioctl", Request: req, Code: r}
	}
	return r, nil
}

// IoctlRead issues the control request req on h and returns the 32 bits
// value filled in by the device.
func IoctlRead(p Primitives, h Handle, req uintptr) (uint32, error) {
	var v uint32
	if r := p.IoctlRead(int(h), req, &v); r < 0 {
		return 0, &Error{Op: "ioctl", Request: req, Code: r}
	}
	return v, nil
}

// Close releases h.
func Close(p Primitives, h Handle) error {
	if r := p.Close(int(h)); r < 0 {
		return &Error{Op: "close", Code: r}
	}
	return nil
}

// Puts writes text and a new line to the diagnostic output.
//
// text is printed verbatim, it is never used as a format.
func Puts(p Primitives, text string) {
	p.Printf("%s\n", text)
}

// Usleep blocks for usec microseconds. The outcome is not reported.
func Usleep(p Primitives, usec uint32) {
	p.Usleep(usec)
}

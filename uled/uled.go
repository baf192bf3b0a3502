// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package uled

import "syscall"

// DevicePath is the character device of the board's user LEDs.
const DevicePath = "/dev/userleds"

// O_WRONLY is the open mode used for the LED device.
const O_WRONLY = syscall.O_WRONLY

// Requests of the user-LED driver. The LED state is a bitmask where bit n
// is LED n.
const (
	_ULEDBASE = 0x1d00

	// ULEDIOC_SUPPORTED reads the mask of LEDs the device supports.
	ULEDIOC_SUPPORTED uintptr = _ULEDBASE | 0x0001
	// ULEDIOC_SETLED sets a single LED. Not used by this package, Bank
	// derives single LED updates from ULEDIOC_SETALL.
	ULEDIOC_SETLED uintptr = _ULEDBASE | 0x0002
	// ULEDIOC_SETALL sets every LED at once from the mask passed by value.
	ULEDIOC_SETALL uintptr = _ULEDBASE | 0x0003
	// ULEDIOC_GETALL reads the current mask.
	ULEDIOC_GETALL uintptr = _ULEDBASE | 0x0004
)

// Handle is an open session on a device as returned by Open.
type Handle int

// Primitives is the raw operating system surface used by this package.
//
// Every method returns the host convention: negative means failure and is
// usually the negated errno, non-negative is the result.
type Primitives interface {
	Open(path string, flags int) int
	// Ioctl issues req with arg passed by value.
	Ioctl(fd int, req, arg uintptr) int
	// IoctlRead issues req with a pointer to out.
	IoctlRead(fd int, req uintptr, out *uint32) int
	Close(fd int) int
	Printf(format string, args ...any) int
	Usleep(usec uint32) int
}

// Host performs real system calls.
//
// It is traced through the standard logger when built with the
// periph_uled_debug tag.
var Host Primitives = traced(hostPrimitives{})

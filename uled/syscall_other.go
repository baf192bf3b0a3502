//go:build !linux

// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.
//
// The user-LED character device only exists on Linux. Elsewhere, device
// calls fail with ENOSYS so that the rest of the package still builds and
// reports a regular error.

package uled

import (
	"fmt"
	"time"
)

// Linux value, so codes are identical on every OS.
const enosys = 38

type hostPrimitives struct{}

func (hostPrimitives) Open(path string, flags int) int {
	return -enosys
}

func (hostPrimitives) Ioctl(fd int, req, arg uintptr) int {
	return -enosys
}

func (hostPrimitives) IoctlRead(fd int, req uintptr, out *uint32) int {
	return -enosys
}

func (hostPrimitives) Close(fd int) int {
	return -enosys
}

func (hostPrimitives) Printf(format string, args ...any) int {
	n, err := fmt.Printf(format, args...)
	if err != nil {
		return -1
	}
	return n
}

func (hostPrimitives) Usleep(usec uint32) int {
	time.Sleep(time.Duration(usec) * time.Microsecond)
	return 0
}

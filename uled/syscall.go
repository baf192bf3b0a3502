//go:build linux

// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.
//
// This file is the only place where system calls are issued. Errors are
// folded back into the negative return convention of Primitives.

package uled

import (
	"fmt"
	"syscall"
	"unsafe"
)

type hostPrimitives struct{}

func (hostPrimitives) Open(path string, flags int) int {
	fd, err := syscall.Open(path, flags|syscall.O_CLOEXEC, 0)
	if err != nil {
		return negErrno(err)
	}
	return fd
}

func (hostPrimitives) Ioctl(fd int, req, arg uintptr) int {
	r1, _, ep := syscall.Syscall(syscall.SYS_IOCTL, uintptr(fd), req, arg)
	if ep != 0 {
		return -int(ep)
	}
	return int(r1)
}

func (hostPrimitives) IoctlRead(fd int, req uintptr, out *uint32) int {
	r1, _, ep := syscall.Syscall(syscall.SYS_IOCTL, uintptr(fd), req, uintptr(unsafe.Pointer(out)))
	if ep != 0 {
		return -int(ep)
	}
	return int(r1)
}

func (hostPrimitives) Close(fd int) int {
	if err := syscall.Close(fd); err != nil {
		return negErrno(err)
	}
	return 0
}

func (hostPrimitives) Printf(format string, args ...any) int {
	n, err := fmt.Printf(format, args...)
	if err != nil {
		return -1
	}
	return n
}

func (hostPrimitives) Usleep(usec uint32) int {
	ts := syscall.NsecToTimespec(int64(usec) * 1000)
	for {
		// On EINTR, rem holds the time left to sleep.
		var rem syscall.Timespec
		err := syscall.Nanosleep(&ts, &rem)
		if err == nil {
			return 0
		}
		if err != syscall.EINTR {
			return negErrno(err)
		}
		ts = rem
	}
}

func negErrno(err error) int {
	if e, ok := err.(syscall.Errno); ok {
		return -int(e)
	}
	return -1
}

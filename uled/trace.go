// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package uled

// tracer logs every raw call and its return value through logf.
type tracer struct {
	p Primitives
}

func (t *tracer) Open(path string, flags int) int {
	r := t.p.Open(path, flags)
	logf("uled: open(%q, %#x) = %d", path, flags, r)
	return r
}

func (t *tracer) Ioctl(fd int, req, arg uintptr) int {
	r := t.p.Ioctl(fd, req, arg)
	logf("uled: ioctl(%d, %#x, %#x) = %d", fd, req, arg, r)
	return r
}

func (t *tracer) IoctlRead(fd int, req uintptr, out *uint32) int {
	r := t.p.IoctlRead(fd, req, out)
	logf("uled: ioctl(%d, %#x, &%#x) = %d", fd, req, *out, r)
	return r
}

func (t *tracer) Close(fd int) int {
	r := t.p.Close(fd)
	logf("uled: close(%d) = %d", fd, r)
	return r
}

func (t *tracer) Printf(format string, args ...any) int {
	return t.p.Printf(format, args...)
}

func (t *tracer) Usleep(usec uint32) int {
	r := t.p.Usleep(usec)
	logf("uled: usleep(%d) = %d", usec, r)
	return r
}

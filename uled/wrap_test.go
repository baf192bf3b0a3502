// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package uled

import (
	"errors"
	"strings"
	"testing"

	"periph.io/x/userleds/uled/uledtest"
)

func TestProtocolMirror(t *testing.T) {
	if ULEDIOC_SUPPORTED != uledtest.Supported || ULEDIOC_SETALL != uledtest.SetAll || ULEDIOC_GETALL != uledtest.GetAll {
		t.Fatal("uledtest request codes diverge from uled")
	}
}

func TestOpen(t *testing.T) {
	for _, v := range []int{-1, -2, -5, -13, -16, -4095} {
		f := &uledtest.Fake{OpenErr: v}
		h, err := Open(f, DevicePath, O_WRONLY)
		if h != 0 {
			t.Errorf("Open() = %d on failure %d", h, v)
		}
		if Code(err) != v {
			t.Errorf("Code(%v) = %d, expected %d", err, Code(err), v)
		}
		if !errors.Is(err, ErrOpen) || errors.Is(err, ErrControl) {
			t.Errorf("%v isn't classified as an open failure", err)
		}
	}
	for _, v := range []int{0, 3, 1024} {
		f := &uledtest.Fake{Fd: v}
		h, err := Open(f, DevicePath, O_WRONLY)
		if err != nil {
			t.Fatal(err)
		}
		if int(h) != v {
			t.Errorf("Open() = %d, expected %d", h, v)
		}
		c := f.Calls()[0]
		if c.Path != DevicePath || c.Flags != O_WRONLY {
			t.Errorf("unexpected call %+v", c)
		}
	}
}

func TestIoctl(t *testing.T) {
	data := []struct {
		ret int
		ok  bool
	}{
		{-1, false},
		{-5, false},
		{-25, false},
		{0, true},
		{1, true},
		{255, true},
	}
	for _, line := range data {
		f := &uledtest.Fake{IoctlResults: []int{line.ret}}
		v, err := Ioctl(f, 3, ULEDIOC_SETALL, 1)
		if line.ok {
			if err != nil || v != line.ret {
				t.Errorf("Ioctl() = %d, %v; expected %d", v, err, line.ret)
			}
			continue
		}
		if Code(err) != line.ret {
			t.Errorf("Code(%v) = %d, expected %d", err, Code(err), line.ret)
		}
		if !errors.Is(err, ErrControl) {
			t.Errorf("%v isn't classified as a control failure", err)
		}
		var e *Error
		if !errors.As(err, &e) || e.Request != ULEDIOC_SETALL {
			t.Errorf("unexpected error %#v", err)
		}
	}
	f := &uledtest.Fake{}
	if _, err := Ioctl(f, 7, ULEDIOC_SETALL, 0x5); err != nil {
		t.Fatal(err)
	}
	if c := f.Calls()[0]; c.Fd != 7 || c.Req != ULEDIOC_SETALL || c.Arg != 0x5 {
		t.Errorf("unexpected call %+v", c)
	}
}

func TestIoctlRead(t *testing.T) {
	f := &uledtest.Fake{SupportedMask: 0x0f}
	v, err := IoctlRead(f, 3, ULEDIOC_SUPPORTED)
	if err != nil || v != 0x0f {
		t.Fatalf("IoctlRead() = %#x, %v", v, err)
	}
	f.ReadErrs = map[uintptr]int{ULEDIOC_SUPPORTED: -22}
	if _, err = IoctlRead(f, 3, ULEDIOC_SUPPORTED); Code(err) != -22 {
		t.Fatalf("unexpected error %v", err)
	}
}

func TestClose(t *testing.T) {
	if err := Close(&uledtest.Fake{}, 3); err != nil {
		t.Fatal(err)
	}
	err := Close(&uledtest.Fake{CloseErr: -9}, 3)
	if Code(err) != -9 || !errors.Is(err, ErrClose) {
		t.Fatalf("unexpected error %v", err)
	}
}

func TestPuts(t *testing.T) {
	f := &uledtest.Fake{}
	Puts(f, "100% on")
	if s := f.Output(); s != "100% on\n" {
		t.Fatalf("Output() = %q", s)
	}
}

func TestUsleep(t *testing.T) {
	f := &uledtest.Fake{}
	Usleep(f, 500000)
	if c := f.Calls()[0]; c.Op != "usleep" || c.Usec != 500000 {
		t.Fatalf("unexpected call %+v", c)
	}
}

func TestCode(t *testing.T) {
	if Code(nil) != 0 {
		t.Error("Code(nil) != 0")
	}
	if Code(errors.New("foo")) != -1 {
		t.Error("foreign error must map to -1")
	}
	wrapped := errors.Join(errors.New("context"), &Error{Op: "ioctl", Code: -5})
	if Code(wrapped) != -5 {
		t.Errorf("Code(%v) = %d", wrapped, Code(wrapped))
	}
}

func TestErrorString(t *testing.T) {
	data := []struct {
		err  *Error
		want string
	}{
		{&Error{Op: "open", Path: "/dev/userleds", Code: -2}, "uled: open /dev/userleds: "},
		{&Error{Op: "ioctl", Request: ULEDIOC_SETALL, Code: -5}, "uled: ioctl 0x1d03: "},
		{&Error{Op: "close", Code: -9}, "uled: close: "},
	}
	for _, line := range data {
		s := line.err.Error()
		if !strings.HasPrefix(s, line.want) {
			t.Errorf("Error() = %q, expected prefix %q", s, line.want)
		}
		if !strings.Contains(s, "(-") {
			t.Errorf("Error() = %q lacks the raw code", s)
		}
	}
}

func TestTracer(t *testing.T) {
	f := &uledtest.Fake{Fd: 4, SupportedMask: 1}
	p := &tracer{p: f}
	h, err := Open(p, DevicePath, O_WRONLY)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := IoctlRead(p, h, ULEDIOC_SUPPORTED); err != nil {
		t.Fatal(err)
	}
	if _, err := Ioctl(p, h, ULEDIOC_SETALL, 1); err != nil {
		t.Fatal(err)
	}
	Usleep(p, 1)
	Puts(p, "x")
	if err := Close(p, h); err != nil {
		t.Fatal(err)
	}
	want := []string{"open", "ioctlread", "ioctl", "usleep", "close"}
	got := f.Ops()
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Fatalf("Ops() = %v, expected %v", got, want)
	}
}

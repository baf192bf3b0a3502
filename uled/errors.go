// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package uled

import (
	"errors"
	"fmt"
	"syscall"
)

// Failure kinds. Use errors.Is on an error returned by this package.
var (
	// ErrOpen is a failure to open the device: missing path, permission
	// denied or device busy.
	ErrOpen = errors.New("uled: open failed")
	// ErrControl is a device rejecting or failing a control request.
	ErrControl = errors.New("uled: control request failed")
	// ErrClose is a failure to release a handle.
	ErrClose = errors.New("uled: close failed")
	// ErrClosed is returned by a Bank used after Close.
	ErrClosed = errors.New("uled: bank is closed")
)

// Error is a failed primitive call.
type Error struct {
	// Op is the primitive: "open", "ioctl" or "close".
	Op   string
	Path string
	// Request is the ioctl request code, if Op is "ioctl".
	Request uintptr
	// Code is the raw negative value returned by the primitive.
	Code int
}

func (e *Error) Error() string {
	var target string
	switch e.Op {
	case "open":
		target = e.Path
	case "ioctl":
		target = fmt.Sprintf("%#x", e.Request)
	}
	msg := fmt.Sprintf("error %d", e.Code)
	if e.Code < 0 {
		msg = fmt.Sprintf("%s (%d)", syscall.Errno(-e.Code).Error(), e.Code)
	}
	if target == "" {
		return fmt.Sprintf("uled: %s: %s", e.Op, msg)
	}
	return fmt.Sprintf("uled: %s %s: %s", e.Op, target, msg)
}

// Is matches the failure kind of e.
func (e *Error) Is(target error) bool {
	switch target {
	case ErrOpen:
		return e.Op == "open"
	case ErrControl:
		return e.Op == "ioctl"
	case ErrClose:
		return e.Op == "close"
	}
	return false
}

// Code returns the raw code carried by err.
//
// It is 0 for a nil error and -1 for an error that doesn't come from a
// primitive call.
func Code(err error) int {
	if err == nil {
		return 0
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return -1
}

// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package uled drives a bank of user LEDs exposed as a character device
// (/dev/userleds) through the user-LED ioctl protocol.
//
// The package is split in two layers. Primitives is the raw system call
// surface (open, ioctl, close, printf, usleep) where every call returns the
// host convention: a negative value is a failure, anything else is a result
// or a handle. Host is the only implementation that performs real system
// calls. The functions Open, Ioctl, IoctlRead, Close, Puts and Usleep wrap
// those calls and turn negative returns into *Error values so that no raw
// return code leaks to callers unexamined.
//
// On top of that, Bank keeps a long-lived session with the device and
// exposes each LED as a periph.io/x/conn/v3/gpio.PinIO registered in
// gpioreg by the "userleds" driver.
package uled

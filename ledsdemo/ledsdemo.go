// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package ledsdemo blinks LED 1 of the user-LED bank once: it opens
// /dev/userleds, turns the LED on, waits half a second and turns it off.
//
// Main is the program entry point. It has a fixed C-like signature and
// turns the outcome of Run into a process status.
package ledsdemo

import (
	"time"

	"periph.io/x/userleds/uled"
)

// Masks written with ULEDIOC_SETALL.
const (
	On  = 1
	Off = 0
)

// Delay is how long the LED stays on, in microseconds.
const Delay = 500000

// Run performs the blink sequence on p and returns the first failure.
//
// The device is closed on every returning path once it was opened. A
// runtime fault releases nothing.
func Run(p uled.Primitives) (int, error) {
	uled.Puts(p, "Hello, LEDs!!")

	uled.Puts(p, "Opening "+uled.DevicePath)
	h, err := uled.Open(p, uled.DevicePath, uled.O_WRONLY)
	if err != nil {
		return 0, err
	}

	uled.Puts(p, "Set LED 1 to 1")
	if _, err := uled.Ioctl(p, h, uled.ULEDIOC_SETALL, On); err != nil {
		_ = uled.Close(p, h)
		return 0, err
	}

	uled.Puts(p, "Sleeping...")
	uled.Usleep(p, Delay)

	uled.Puts(p, "Set LED 1 to 0")
	if _, err := uled.Ioctl(p, h, uled.ULEDIOC_SETALL, Off); err != nil {
		_ = uled.Close(p, h)
		return 0, err
	}
	_ = uled.Close(p, h)
	return 0, nil
}

// Main runs the blink sequence on the host and returns the process status:
// 0 on success, the raw failure code otherwise. argc and argv are ignored.
func Main(argc int32, argv **byte) int32 {
	return MainWith(uled.Host, argc, argv)
}

// MainWith is Main on an arbitrary primitive layer.
func MainWith(p uled.Primitives, _ int32, _ **byte) (status int32) {
	defer trap()
	v, err := Run(p)
	if err != nil {
		code := uled.Code(err)
		p.Printf("ERROR: leds main failed with error %d\n", code)
		return int32(code)
	}
	return int32(v)
}

// halt never returns. It prints nothing and releases nothing.
var halt = func() {
	for {
		time.Sleep(time.Hour)
	}
}

// trap stops the program on a runtime fault. Failures reported by the
// primitives never get here.
func trap() {
	if r := recover(); r != nil {
		halt()
	}
}

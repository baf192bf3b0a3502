// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package uled

import (
	"errors"
	"time"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/pin"
)

var errOutputOnly = errors.New("uled: LEDs are output only")

// LED is one LED of a Bank. It implements gpio.PinIO but only the output
// half is functional.
type LED struct {
	bank   *Bank
	number int
	name   string
}

// String implements conn.Resource.
func (l *LED) String() string {
	return l.name
}

// Halt implements conn.Resource. There is nothing to interrupt.
func (l *LED) Halt() error {
	return nil
}

// Name implements pin.Pin.
func (l *LED) Name() string {
	return l.name
}

// Number returns the bit of this LED in the bank mask. Implements pin.Pin.
func (l *LED) Number() int {
	return l.number
}

// Deprecated: Use PinFunc.Func. Will be removed in v4. Function implements pin.Pin.
func (l *LED) Function() string {
	return string(l.Func())
}

// Func implements pin.PinFunc.
func (l *LED) Func() pin.Func {
	if l.Read() {
		return gpio.OUT_HIGH
	}
	return gpio.OUT_LOW
}

// SupportedFuncs implements pin.PinFunc.
func (l *LED) SupportedFuncs() []pin.Func {
	return []pin.Func{gpio.OUT}
}

// SetFunc implements pin.PinFunc.
func (l *LED) SetFunc(f pin.Func) error {
	switch f {
	case gpio.OUT_HIGH:
		return l.Out(gpio.High)
	case gpio.OUT, gpio.OUT_LOW:
		return l.Out(gpio.Low)
	default:
		return errors.New("unsupported function")
	}
}

// In implements gpio.PinIn. LEDs can't be inputs.
func (l *LED) In(gpio.Pull, gpio.Edge) error {
	return errOutputOnly
}

// Read returns the last level written to this LED. Implements gpio.PinIn.
func (l *LED) Read() gpio.Level {
	return l.bank.State()&(1<<uint(l.number)) != 0
}

// WaitForEdge implements gpio.PinIn. It always returns false.
func (l *LED) WaitForEdge(time.Duration) bool {
	return false
}

// Pull implements gpio.PinIn.
func (l *LED) Pull() gpio.Pull {
	return gpio.PullNoChange
}

// DefaultPull implements gpio.PinIn.
func (l *LED) DefaultPull() gpio.Pull {
	return gpio.PullNoChange
}

// Out turns the LED on for gpio.High. Implements gpio.PinOut.
func (l *LED) Out(level gpio.Level) error {
	return l.bank.SetLED(l.number, bool(level))
}

// PWM implements gpio.PinOut. The user-LED driver has no dimming.
func (l *LED) PWM(gpio.Duty, physic.Frequency) error {
	return errors.New("PWM() not implemented")
}

var _ gpio.PinIO = &LED{}
var _ pin.PinFunc = &LED{}

// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package uledsmoketest is leveraged by periph-smoketest to verify that the
// user LEDs of a board respond.
package uledsmoketest

import (
	"errors"
	"flag"
	"fmt"
	"strings"
	"time"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/userleds"
)

// SmokeTest is imported by periph-smoketest.
type SmokeTest struct {
}

// Name implements the SmokeTest interface.
func (s *SmokeTest) Name() string {
	return "userleds"
}

// Description implements the SmokeTest interface.
func (s *SmokeTest) Description() string {
	return "Blinks every user LED"
}

// Run implements the SmokeTest interface.
func (s *SmokeTest) Run(f *flag.FlagSet, args []string) error {
	name := f.String("led", "", "LED to test, e.g. USERLEDS_LED0; all if empty")
	delay := f.Duration("delay", 500*time.Millisecond, "time each LED stays on")
	if err := f.Parse(args); err != nil {
		return err
	}
	if f.NArg() != 0 {
		f.Usage()
		return errors.New("unrecognized arguments")
	}
	if _, err := userleds.Init(); err != nil {
		return err
	}
	var leds []gpio.PinIO
	if *name != "" {
		p := gpioreg.ByName(*name)
		if p == nil {
			return fmt.Errorf("LED %q not found", *name)
		}
		leds = append(leds, p)
	} else {
		for _, p := range gpioreg.All() {
			if strings.Contains(p.Name(), "_LED") {
				leds = append(leds, p)
			}
		}
	}
	if len(leds) == 0 {
		return errors.New("no user LED registered")
	}
	for _, p := range leds {
		if err := blink(p, *delay); err != nil {
			return err
		}
	}
	return nil
}

// blink turns p on then off and verifies that the level reads back.
func blink(p gpio.PinIO, delay time.Duration) error {
	for _, l := range []gpio.Level{gpio.High, gpio.Low} {
		if err := p.Out(l); err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
		if got := p.Read(); got != l {
			return fmt.Errorf("%s: expected to read %s but got %s", p, l, got)
		}
		if l == gpio.High {
			time.Sleep(delay)
		}
	}
	return nil
}

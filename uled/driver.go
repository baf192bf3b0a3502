// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package uled

import (
	"errors"
	"fmt"
	"log"
	"path/filepath"
	"runtime"
	"sync"

	"periph.io/x/conn/v3/driver/driverreg"
	"periph.io/x/conn/v3/gpio/gpioreg"
)

// Banks returns the devices opened by the driver.
func Banks() []*Bank {
	drvLEDs.mu.Lock()
	defer drvLEDs.mu.Unlock()
	out := make([]*Bank, len(drvLEDs.banks))
	copy(out, drvLEDs.banks)
	return out
}

// driverLEDs implements periph.Driver.
type driverLEDs struct {
	mu    sync.Mutex
	banks []*Bank
}

func (d *driverLEDs) String() string {
	return "userleds"
}

func (d *driverLEDs) Prerequisites() []string {
	return nil
}

func (d *driverLEDs) After() []string {
	return nil
}

// Init opens every /dev/userleds* device and registers its LEDs in gpioreg.
func (d *driverLEDs) Init() (bool, error) {
	if runtime.GOOS != "linux" {
		return false, errors.New("user LEDs are only supported on linux")
	}
	items, err := filepath.Glob(DevicePath + "*")
	if err != nil {
		return true, fmt.Errorf("uled: %w", err)
	}
	if len(items) == 0 {
		return false, errors.New("no user LED device found")
	}
	return true, d.register(Host, items)
}

// register opens each path and registers the LEDs not already known to
// gpioreg. It fails only if no device could be opened.
func (d *driverLEDs) register(p Primitives, paths []string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	var errs []error
	for _, path := range paths {
		b, err := OpenBank(p, path)
		if err != nil {
			log.Println("uled.driverLEDs.Init() Error", err)
			errs = append(errs, err)
			continue
		}
		d.banks = append(d.banks, b)
		for _, led := range b.LEDs() {
			if gpioreg.ByName(led.Name()) != nil {
				continue
			}
			if err := gpioreg.Register(led); err != nil {
				log.Println("uled: gpioreg.Register(", led.Name(), ") returned", err)
			}
		}
	}
	if len(d.banks) == 0 && len(errs) != 0 {
		return errors.Join(errs...)
	}
	return nil
}

var drvLEDs driverLEDs

func init() {
	driverreg.MustRegister(&drvLEDs)
}

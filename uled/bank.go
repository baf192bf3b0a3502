// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package uled

import (
	"fmt"
	"log"
	"math/bits"
	"path/filepath"
	"strings"
	"sync"
)

// Used when the device doesn't answer ULEDIOC_SUPPORTED.
const defaultSupported uint32 = 0xff

// Bank is an open user-LED device.
//
// The handle is owned by the Bank from OpenBank until Close and is released
// exactly once. A Bank is safe for concurrent use.
type Bank struct {
	p    Primitives
	path string

	mu        sync.Mutex
	h         Handle
	closed    bool
	supported uint32
	// state is the last mask successfully written.
	state uint32
	leds  []*LED
}

// OpenBank opens the user-LED device at path in write-only mode and
// queries which LEDs it supports.
func OpenBank(p Primitives, path string) (*Bank, error) {
	h, err := Open(p, path, O_WRONLY)
	if err != nil {
		return nil, err
	}
	b := &Bank{p: p, path: path, h: h}
	if b.supported, err = IoctlRead(p, h, ULEDIOC_SUPPORTED); err != nil {
		log.Printf("uled: %s: %v; assuming %d LEDs", path, err, bits.OnesCount32(defaultSupported))
		b.supported = defaultSupported
	}
	if b.supported == 0 {
		_ = Close(p, h)
		return nil, fmt.Errorf("uled: %s reports no LED", path)
	}
	// A write-only driver may refuse reads, start from all off then.
	if v, err := IoctlRead(p, h, ULEDIOC_GETALL); err == nil {
		b.state = v & b.supported
	}
	prefix := strings.ToUpper(filepath.Base(path))
	for n := 0; n < 32; n++ {
		if b.supported&(1<<uint(n)) != 0 {
			b.leds = append(b.leds, &LED{bank: b, number: n, name: fmt.Sprintf("%s_LED%d", prefix, n)})
		}
	}
	return b, nil
}

// Path returns the device path.
func (b *Bank) Path() string {
	return b.path
}

// Supported returns the mask of LEDs present on the device.
func (b *Bank) Supported() uint32 {
	return b.supported
}

// LEDs returns one pin per supported LED, in bit order.
func (b *Bank) LEDs() []*LED {
	return b.leds
}

// State returns the last mask written to the device.
func (b *Bank) State() uint32 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.state
}

// SetAll sets every LED from mask.
func (b *Bank) SetAll(mask uint32) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.setAll(mask)
}

// SetLED turns LED n on or off, leaving the others untouched.
func (b *Bank) SetLED(n int, on bool) error {
	if n < 0 || n > 31 {
		return fmt.Errorf("uled: LED %d out of range", n)
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	mask := b.state &^ (1 << uint(n))
	if on {
		mask |= 1 << uint(n)
	}
	return b.setAll(mask)
}

// GetAll reads the mask currently applied by the device.
func (b *Bank) GetAll() (uint32, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return 0, ErrClosed
	}
	return IoctlRead(b.p, b.h, ULEDIOC_GETALL)
}

// Halt turns every LED off. Implements conn.Resource.
func (b *Bank) Halt() error {
	return b.SetAll(0)
}

// Close releases the device. Calling it more than once is a no-op.
func (b *Bank) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return nil
	}
	b.closed = true
	return Close(b.p, b.h)
}

// String implements conn.Resource.
func (b *Bank) String() string {
	return fmt.Sprintf("%s (%d LEDs)", b.path, bits.OnesCount32(b.supported))
}

func (b *Bank) setAll(mask uint32) error {
	if b.closed {
		return ErrClosed
	}
	if extra := mask &^ b.supported; extra != 0 {
		return fmt.Errorf("uled: %s: unsupported LEDs %#x", b.path, extra)
	}
	if _, err := Ioctl(b.p, b.h, ULEDIOC_SETALL, uintptr(mask)); err != nil {
		return err
	}
	b.state = mask
	return nil
}

// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// leds blinks LED 1 of /dev/userleds once.
package main

import (
	"os"

	"periph.io/x/userleds/ledsdemo"
)

func main() {
	os.Exit(int(ledsdemo.Main(int32(len(os.Args)), nil)))
}

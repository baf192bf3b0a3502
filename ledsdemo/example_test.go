// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ledsdemo_test

import (
	"fmt"

	"periph.io/x/userleds/ledsdemo"
	"periph.io/x/userleds/uled/uledtest"
)

func ExampleMainWith() {
	// Simulate a device that rejects the first request.
	f := &uledtest.Fake{Fd: 3, IoctlResults: []int{-5}}
	status := ledsdemo.MainWith(f, 0, nil)
	fmt.Print(f.Output())
	fmt.Println("status:", status)
	// Output:
	// Hello, LEDs!!
	// Opening /dev/userleds
	// Set LED 1 to 1
	// ERROR: leds main failed with error -5
	// status: -5
}

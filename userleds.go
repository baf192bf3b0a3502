// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package userleds loads the drivers of this module.
package userleds

import (
	"periph.io/x/conn/v3/driver/driverreg"

	// Make sure the user-LED driver is registered.
	_ "periph.io/x/userleds/uled"
)

// Init calls driverreg.Init() and returns it as-is.
//
// The only difference is that by calling userleds.Init(), you are guaranteed
// to have the user-LED driver implicitly loaded, so that every LED of
// /dev/userleds* is available through gpioreg.
func Init() (*driverreg.State, error) {
	return driverreg.Init()
}

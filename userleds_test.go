// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package userleds

import "testing"

func TestInit(t *testing.T) {
	state, err := Init()
	if err != nil {
		t.Fatal(err)
	}
	found := false
	for _, d := range state.Loaded {
		found = found || d.String() == "userleds"
	}
	for _, f := range state.Skipped {
		found = found || f.D.String() == "userleds"
	}
	for _, f := range state.Failed {
		found = found || f.D.String() == "userleds"
	}
	if !found {
		t.Fatal("userleds driver wasn't registered")
	}
}

// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package treetimer

// Default is the process-wide session used by the package-level functions. It
// is not synchronized; use it from a single goroutine.
var Default = NewSession(nil)

// Start opens a scope on the Default session.
func Start(name string) Handle {
	return Default.Open(name)
}

// Stop closes the innermost open scope of the Default session.
func Stop() error {
	return Default.Stop()
}

// Measure opens a scope on the Default session and returns its guard.
func Measure(name string) *Scope {
	return Default.Measure(name)
}

// Render renders the Default session.
func Render(opts ...RenderOption) (string, error) {
	return Default.Render(opts...)
}

// String renders the Default session with default options.
func String() string {
	return Default.String()
}

// Reset discards all measurements of the Default session.
func Reset() {
	Default.Reset()
}

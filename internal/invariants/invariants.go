// Copyright 2024 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

// Package invariants exposes whether expensive consistency checks should run.
// They are enabled by building with the "invariants" or "race" build tags.
package invariants

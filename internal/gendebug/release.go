//go:build !debug

package gendebug

// Enabled is false in release builds: Assert and Tracef compile down to
// nothing, and Token dereferences pay no generation-check cost.
const Enabled = false

// Assert is a no-op outside -tags debug.
func Assert(bool, string, ...any) {}

// Tracef is a no-op outside -tags debug.
func Tracef(string, ...any) {}

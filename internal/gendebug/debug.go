//go:build debug

// Package gendebug backs generation-counter checking for use from
// languages without a borrow checker: every arena reset bumps a generation
// counter, every allocation handle can carry the generation it was issued
// at, and dereferencing a stale handle panics when the binary is built
// with -tags debug. Built without that tag, every check in this package
// compiles away.
package gendebug

import (
	"fmt"
	"os"
)

// Enabled is true when built with -tags debug.
const Enabled = true

// Assert panics with a formatted message if cond is false.
func Assert(cond bool, format string, args ...any) {
	if !cond {
		panic(fmt.Sprintf(format, args...))
	}
}

// Tracef writes a formatted diagnostic line to stderr. It exists so arena
// growth and generation-counter events are observable in debug builds
// (e.g. "dynamic arena grew committed span to N bytes") without paying for a logging
// dependency on the release build's allocation hot path.
func Tracef(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "gendebug: "+format+"\n", args...)
}

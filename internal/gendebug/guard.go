package gendebug

import "sync/atomic"

// BorrowGuard is a debug-build-only exclusive-access check. It does not
// make an arena thread-safe — concurrent use of a single arena remains
// unsupported regardless of build tags — but, built with -tags debug, it
// turns the common mistake of calling Reset/ResetAndShrink concurrently
// with an allocation on the same arena into an immediate panic instead of
// silent corruption. Outside -tags debug, Acquire and Release compile down
// to nothing and a guard costs exactly one unused int32 field.
type BorrowGuard struct {
	held int32
}

// Acquire marks the guard held. It panics if the guard is already held,
// which only happens when two operations on the same arena overlap
// without external synchronization — a violation of the single-owner
// discipline the package requires. A no-op outside -tags debug.
func (g *BorrowGuard) Acquire() {
	if !Enabled {
		return
	}
	if !atomic.CompareAndSwapInt32(&g.held, 0, 1) {
		panic("arena: concurrent access detected (borrow already held)")
	}
}

// Release marks the guard free. A no-op outside -tags debug.
func (g *BorrowGuard) Release() {
	if !Enabled {
		return
	}
	atomic.StoreInt32(&g.held, 0)
}

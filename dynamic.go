package arena

import (
	"fmt"
	"unsafe"

	"github.com/bumparena/memarena/internal/gendebug"
	"github.com/bumparena/memarena/internal/platform"
)

// DynamicArena is a bump allocator over a large virtual-address
// reservation, with pages committed on demand as the arena fills and
// optionally decommitted back by ResetAndShrink. Like FixedArena it
// supports the same five allocation operations and an O(1) Reset; unlike
// FixedArena it can grow without moving any existing allocation, up to the
// byte span reserved at construction.
type DynamicArena struct {
	plat platform.Platform

	base       unsafe.Pointer // start of the reserved VM region
	reserved   uintptr        // maximum byte span ever usable
	committed  uintptr        // current byte span with read/write access
	used       uintptr        // bump cursor, offset from base
	pageSize   uintptr
	generation uint64
	guard      gendebug.BorrowGuard
}

// NewDynamicArena reserves a contiguous virtual-address range of exactly
// reserved bytes and commits the first capacity bytes of it. capacity must
// be <= reserved; violating that, or a platform reservation failure, is a
// programmer error and panics.
func NewDynamicArena(capacity, reserved int) *DynamicArena {
	return newDynamicArena(capacity, reserved, platform.Default())
}

// newDynamicArena is the constructor proper, parameterised over the
// platform so tests can substitute a fake VM backend.
func newDynamicArena(capacity, reserved int, plat platform.Platform) *DynamicArena {
	if capacity < 0 || reserved < 0 {
		panic("arena: negative size")
	}
	if uintptr(capacity) > uintptr(reserved) {
		panic("arena: capacity exceeds reserved")
	}

	base, err := plat.Reserve(uintptr(reserved))
	if err != nil {
		panic(fmt.Sprintf("arena: reserve %d bytes: %v", reserved, err))
	}
	if capacity > 0 {
		if err := plat.Commit(base, uintptr(capacity)); err != nil {
			panic(fmt.Sprintf("arena: commit %d bytes: %v", capacity, err))
		}
	}

	return &DynamicArena{
		plat:      plat,
		base:      base,
		reserved:  uintptr(reserved),
		committed: uintptr(capacity),
		pageSize:  plat.PageSize(),
	}
}

// allocBytes implements allocator. align is accepted for interface
// symmetry with FixedArena but, per the shared alignment policy, is not
// honoured beyond the arena's own base alignment (a full page).
func (d *DynamicArena) allocBytes(size, _ uintptr) ([]byte, error) {
	d.requireLive()
	d.guard.Acquire()
	defer d.guard.Release()
	if size == 0 {
		return nil, nil
	}

	newUsed := d.used + size
	if newUsed < d.used || newUsed > d.reserved {
		return nil, ErrAtCapacity
	}

	if newUsed > d.committed {
		d.grow(newUsed)
	}

	ptr := unsafe.Add(d.base, d.used)
	d.used = newUsed
	return unsafe.Slice((*byte)(ptr), int(size)), nil
}

// grow commits enough memory to cover need bytes from base. The growth
// formula doubles need (used+size), not committed, and clamps to reserved:
// this can over-commit for a pathological sequence of one huge allocation
// followed by many small ones, but the behaviour is preserved verbatim
// from the source design rather than "fixed" absent a concrete regression.
func (d *DynamicArena) grow(need uintptr) {
	rawTarget := need * 2
	if rawTarget < need || rawTarget > d.reserved {
		rawTarget = d.reserved
	}
	// The platform can only commit whole pages; round the raw target up
	// so that committed always lands on a page boundary, the invariant
	// every grow (as opposed to construction with a sub-page capacity) is
	// expected to uphold.
	target := alignUp(rawTarget, d.pageSize)
	if target > d.reserved {
		target = d.reserved
	}
	if err := d.plat.Commit(d.base, target); err != nil {
		panic(fmt.Sprintf("arena: commit %d bytes during growth: %v", target, err))
	}
	d.committed = target
	gendebug.Tracef("dynamic arena grew committed span to %d bytes (reserved %d)", target, d.reserved)
}

func (d *DynamicArena) currentGeneration() uint64 { return d.generation }

func (d *DynamicArena) requireLive() {
	if d.base == nil {
		panic("arena: use after Release()")
	}
}

// Used returns the number of bytes currently allocated from the arena.
func (d *DynamicArena) Used() int { return int(d.used) }

// Committed returns the number of bytes currently backed by physical
// memory, always a multiple of the platform page size except when the
// arena was constructed with a sub-page capacity that has not yet grown.
func (d *DynamicArena) Committed() int { return int(d.committed) }

// Reserved returns the total virtual-address span reserved at
// construction; it is the upper bound used can ever reach.
func (d *DynamicArena) Reserved() int { return int(d.reserved) }

// Reset returns the bump cursor to zero, reclaiming every allocation made
// since construction (or the previous Reset/ResetAndShrink) in O(1). It
// does not decommit: the next allocation cycle reuses already-committed
// pages without a syscall.
//
// Like FixedArena.Reset, this requires that no allocation handed out
// before the call is still in use.
func (d *DynamicArena) Reset() {
	d.requireLive()
	d.guard.Acquire()
	defer d.guard.Release()
	d.used = 0
	d.generation++
	gendebug.Tracef("dynamic arena reset: generation now %d", d.generation)
}

// ResetAndShrink resets the bump cursor to zero and, if newSize is less
// than the current committed span, decommits everything above
// newSize rounded up to the next page boundary. newSize == 0 decommits
// everything; newSize >= the current committed span leaves committed
// unchanged.
func (d *DynamicArena) ResetAndShrink(newSize int) {
	d.requireLive()
	d.guard.Acquire()
	defer d.guard.Release()
	if newSize < 0 {
		panic("arena: negative size")
	}
	d.used = 0
	d.generation++

	target := uintptr(newSize)
	if target >= d.committed {
		return
	}

	freeFrom := alignUp(target, d.pageSize)
	if freeFrom >= d.committed {
		return
	}

	if err := d.plat.Decommit(d.base, freeFrom, d.committed-freeFrom); err != nil {
		panic(fmt.Sprintf("arena: decommit from %d: %v", freeFrom, err))
	}
	d.committed = freeFrom
	gendebug.Tracef("dynamic arena shrank committed span to %d bytes", freeFrom)
}

// Release releases the entire reserved region in one call. Committed pages
// are implicitly decommitted by the release. Subsequent operations panic.
func (d *DynamicArena) Release() {
	if d.base != nil {
		if err := d.plat.Release(d.base, d.reserved); err != nil {
			panic(fmt.Sprintf("arena: release: %v", err))
		}
	}
	d.base = nil
	d.reserved = 0
	d.committed = 0
	d.used = 0
}

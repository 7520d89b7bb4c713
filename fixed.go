package arena

import (
	"unsafe"

	"github.com/bumparena/memarena/internal/gendebug"
)

// FixedArena is a bump allocator over a single heap block of fixed size.
// It never grows: once its capacity is exhausted, allocations fail with
// ErrAtCapacity instead of acquiring more memory. Reclaim everything with
// Reset, in O(1).
//
// A FixedArena's base is aligned to the alignment passed to
// NewFixedArena, but individual allocations are not re-aligned to their
// own type's natural alignment — this is a deliberate simplicity/
// performance trade-off. Callers whose types demand larger alignment than
// the arena's base must pick a compatible base alignment at construction.
type FixedArena struct {
	mem        []byte         // raw backing allocation, over-sized to allow alignment
	base       unsafe.Pointer // aligned start of the usable region within mem
	capacity   uintptr        // usable byte capacity from base
	used       uintptr        // bump cursor, offset from base
	baseAlign  uintptr
	generation uint64
	guard      gendebug.BorrowGuard
}

// NewFixedArena acquires a single heap block of exactly capacity bytes
// whose start is aligned to align, which must be a power of two. Arguments
// are taken verbatim: there is no rounding. Failure to satisfy the request
// is a programmer error and panics.
func NewFixedArena(capacity int, align int) *FixedArena {
	if capacity < 0 {
		panic("arena: negative capacity")
	}
	if align <= 0 {
		align = 1
	}
	a := uintptr(align)
	if a&(a-1) != 0 {
		panic("arena: alignment must be a power of two")
	}

	capBytes := uintptr(capacity)
	mem := make([]byte, capBytes+a)
	raw := uintptr(unsafe.Pointer(unsafe.SliceData(mem)))
	aligned := alignUp(raw, a)
	base := unsafe.Add(unsafe.Pointer(unsafe.SliceData(mem)), aligned-raw)

	return &FixedArena{
		mem:       mem,
		base:      base,
		capacity:  capBytes,
		baseAlign: a,
	}
}

// allocBytes implements allocator. Per the arena's alignment policy, align
// is accepted but not honoured beyond the base alignment fixed at
// construction.
func (f *FixedArena) allocBytes(size, _ uintptr) ([]byte, error) {
	f.requireLive()
	f.guard.Acquire()
	defer f.guard.Release()
	if size == 0 {
		return nil, nil
	}

	newUsed := f.used + size
	if newUsed < f.used || newUsed > f.capacity {
		return nil, ErrAtCapacity
	}

	ptr := unsafe.Add(f.base, f.used)
	f.used = newUsed
	return unsafe.Slice((*byte)(ptr), int(size)), nil
}

func (f *FixedArena) currentGeneration() uint64 { return f.generation }

func (f *FixedArena) requireLive() {
	if f.base == nil {
		panic("arena: use after Release()")
	}
}

// Used returns the number of bytes currently allocated from the arena.
func (f *FixedArena) Used() int {
	return int(f.used)
}

// Capacity returns the arena's total byte capacity.
func (f *FixedArena) Capacity() int {
	return int(f.capacity)
}

// Reset returns the bump cursor to zero, reclaiming every allocation made
// since construction (or the previous Reset) in O(1). It does not touch
// the backing memory.
//
// Reset requires that no allocation handed out before the call is still in
// use. Go cannot enforce this at compile time; see the package doc for the
// debug-build generation check that catches violations at runtime.
func (f *FixedArena) Reset() {
	f.requireLive()
	f.guard.Acquire()
	defer f.guard.Release()
	f.used = 0
	f.generation++
	gendebug.Tracef("fixed arena reset: generation now %d", f.generation)
}

// Release drops the arena's backing block, making the arena unusable.
// Subsequent operations panic.
func (f *FixedArena) Release() {
	f.mem = nil
	f.base = nil
	f.used = 0
	f.capacity = 0
}

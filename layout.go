package arena

import (
	"math/bits"
	"unsafe"
)

// valueLayout describes the size and alignment of a value of type T, the
// same two numbers a language-level allocator layout would carry.
type valueLayout struct {
	size  uintptr
	align uintptr
}

func layoutOf[T any]() valueLayout {
	var zero T
	return valueLayout{size: unsafe.Sizeof(zero), align: uintptr(unsafe.Alignof(zero))}
}

// alignUp rounds off up to the next multiple of align. align must be a
// power of two; callers that derive align from layoutOf or a page size
// already guarantee this.
func alignUp(off, align uintptr) uintptr {
	if align <= 1 {
		return off
	}
	mask := align - 1
	return (off + mask) &^ mask
}

// arrayBytes computes the total byte size of count elements of size
// elemSize, the same computation both FixedArena and DynamicArena use to
// size an array allocation. It panics on overflow rather than returning an
// error: an element count that overflows the platform's address range is a
// programmer error in sizing, not a runtime capacity event.
func arrayBytes(elemSize uintptr, count int) uintptr {
	if count < 0 {
		panic("arena: negative element count")
	}
	if count == 0 || elemSize == 0 {
		return 0
	}
	hi, lo := bits.Mul(uint(elemSize), uint(count))
	if hi != 0 {
		panic("arena: array size overflows address space")
	}
	return uintptr(lo)
}

// zeroBase backs baseOf's fallback for zero-length allocations (a
// zero-sized element type, or a request for zero bytes): returning a
// pointer to it lets callers dereference a *T of a zero-sized T without a
// nil-pointer special case, the same trick the runtime's own zerobase
// plays for zero-sized allocations.
var zeroBase byte

// baseOf returns the address of the first byte of b, or &zeroBase if b is
// empty.
func baseOf(b []byte) unsafe.Pointer {
	if len(b) == 0 {
		return unsafe.Pointer(&zeroBase)
	}
	return unsafe.Pointer(unsafe.SliceData(b))
}

package arena

import "github.com/bumparena/memarena/internal/gendebug"

// TokenValue is a generation-checked handle to a single-value arena
// allocation. Built with -tags debug, Get panics if the issuing arena has
// been Reset (or ResetAndShrink) since the token was produced; built
// without that tag, the check compiles away and TokenValue is exactly as
// cheap as the raw pointer it wraps.
//
// This is the concrete form of the "languages without borrow checking
// should adopt a generation counter" fallback: Go cannot statically prove
// that reset happens only after every prior handle is dead, so debug
// builds catch the violation dynamically instead.
type TokenValue[T any] struct {
	ptr *T
	gen uint64
	src allocator
}

// Get returns the token's underlying pointer, after a debug-build check
// that the issuing arena hasn't been reset since the token was issued.
func (t TokenValue[T]) Get() *T {
	if gendebug.Enabled && t.src != nil {
		gendebug.Assert(
			t.gen == t.src.currentGeneration(),
			"arena: stale token dereferenced: issued at generation %d, arena now at generation %d",
			t.gen, t.src.currentGeneration(),
		)
	}
	return t.ptr
}

func newTokenValue[T any](a allocator, ptr *T) TokenValue[T] {
	return TokenValue[T]{ptr: ptr, gen: a.currentGeneration(), src: a}
}

// AllocValueToken is AllocValue, wrapped in a generation-checked TokenValue.
func AllocValueToken[T any](a allocator, v T) (TokenValue[T], error) {
	p, err := AllocValue(a, v)
	if err != nil {
		return TokenValue[T]{}, err
	}
	return newTokenValue(a, p), nil
}

// AllocZeroedToken is AllocZeroed, wrapped in a generation-checked
// TokenValue.
func AllocZeroedToken[T any](a allocator) (TokenValue[T], error) {
	p, err := AllocZeroed[T](a)
	if err != nil {
		return TokenValue[T]{}, err
	}
	return newTokenValue(a, p), nil
}

// TokenArray is TokenValue's counterpart for a slice allocation: a
// generation-checked handle to the count elements returned by one of the
// array allocation operations.
type TokenArray[T any] struct {
	s   []T
	gen uint64
	src allocator
}

// Get returns the token's underlying slice, after the same debug-build
// staleness check as TokenValue.Get.
func (t TokenArray[T]) Get() []T {
	if gendebug.Enabled && t.src != nil {
		gendebug.Assert(
			t.gen == t.src.currentGeneration(),
			"arena: stale token dereferenced: issued at generation %d, arena now at generation %d",
			t.gen, t.src.currentGeneration(),
		)
	}
	return t.s
}

func newTokenArray[T any](a allocator, s []T) TokenArray[T] {
	return TokenArray[T]{s: s, gen: a.currentGeneration(), src: a}
}

// AllocArrayToken is AllocArray, wrapped in a generation-checked
// TokenArray.
func AllocArrayToken[T any](a allocator, v T, count int) (TokenArray[T], error) {
	s, err := AllocArray(a, v, count)
	if err != nil {
		return TokenArray[T]{}, err
	}
	return newTokenArray(a, s), nil
}

// AllocArrayZeroedToken is AllocArrayZeroed, wrapped in a generation-checked
// TokenArray.
func AllocArrayZeroedToken[T any](a allocator, count int) (TokenArray[T], error) {
	s, err := AllocArrayZeroed[T](a, count)
	if err != nil {
		return TokenArray[T]{}, err
	}
	return newTokenArray(a, s), nil
}

// AllocArrayUninitializedToken is AllocArrayUninitialized, wrapped in a
// generation-checked TokenArray.
func AllocArrayUninitializedToken[T any](a allocator, count int) (TokenArray[T], error) {
	s, err := AllocArrayUninitialized[T](a, count)
	if err != nil {
		return TokenArray[T]{}, err
	}
	return newTokenArray(a, s), nil
}

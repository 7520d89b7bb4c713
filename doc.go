// Package arena implements bump-pointer memory arenas for short-lived,
// batch-oriented workloads: per-frame data in games, per-request scratch in
// services, per-stage data in compilers.
//
// # Overview
//
// Two arena kinds are provided:
//
//   - FixedArena is backed by a single heap block of a fixed size. It never
//     grows; once its capacity is exhausted, allocations fail with
//     ErrAtCapacity.
//   - DynamicArena is backed by a large virtual-address reservation, with
//     pages committed on demand as the arena fills and optionally
//     decommitted on ResetAndShrink.
//
// Both expose the same five allocation operations (AllocValue, AllocZeroed,
// AllocArray, AllocArrayZeroed, AllocArrayUninitialized) and a Reset that
// reclaims everything in O(1).
//
// # Basic usage
//
//	a := arena.NewFixedArena(64*1024, 8)
//	defer a.Release()
//
//	p, err := arena.AllocValue(a, myStruct{X: 1, Y: 2})
//	if err != nil {
//		// a.Reset() and retry, or propagate
//	}
//
//	a.Reset() // O(1), invalidates every handle issued since construction
//
// # Thread safety
//
// Neither arena kind is safe for concurrent mutation. Allocation only needs
// shared access to the arena (the bump cursor advances through interior
// mutability), but Reset and ResetAndShrink require that no goroutine holds
// a live reference to memory allocated before the call — this is the
// caller's responsibility to uphold, the same way a single-threaded Rust or
// C++ arena relies on a borrow checker or discipline it cannot express in
// Go's type system. Built with `-tags debug`, every TokenValue/TokenArray
// (see AllocValueToken, AllocArrayToken) panics if dereferenced after a
// Reset bumped the arena's generation past the one it was issued at; this
// catches the common case in tests without
// imposing any cost on production builds.
//
// # No per-allocation free
//
// There is no way to free a single allocation. The only reclamation
// mechanism is Reset (or ResetAndShrink for DynamicArena), which discards
// every outstanding allocation at once.
package arena

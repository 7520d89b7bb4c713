package arena

import "errors"

// ErrAtCapacity is returned when an allocation would advance an arena's
// bump cursor past its capacity (FixedArena) or past its reservation
// (DynamicArena). It is the only capacity-exhaustion error either arena
// kind ever returns; callers recover by resetting, sizing up at
// construction, or propagating the error.
//
// Construction-time mistakes (a bad size/alignment pair, a reservation the
// platform refuses, an array element count that overflows the address
// space) are programmer errors, not capacity events, and panic instead.
var ErrAtCapacity = errors.New("arena: at capacity")

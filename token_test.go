package arena

import (
	"testing"

	"github.com/bumparena/memarena/internal/gendebug"
)

func TestTokenGetReturnsValueWithinSameGeneration(t *testing.T) {
	a := NewFixedArena(64, 8)
	defer a.Release()

	tok, err := AllocValueToken(a, int64(7))
	if err != nil {
		t.Fatal(err)
	}
	if *tok.Get() != 7 {
		t.Fatalf("Get() = %d, want 7", *tok.Get())
	}
}

// Dereferencing a token after Reset only panics in debug builds (see
// internal/gendebug); in release builds, which is what runs by default,
// the check is compiled away and Get returns the (now-invalid) pointer.
func TestTokenSurvivesResetOutsideDebugBuilds(t *testing.T) {
	if gendebug.Enabled {
		t.Skip("built with -tags debug: Get panics on a stale token")
	}

	a := NewFixedArena(64, 8)
	defer a.Release()

	tok, err := AllocValueToken(a, int64(7))
	if err != nil {
		t.Fatal(err)
	}
	a.Reset()
	_ = tok.Get() // must not panic outside debug builds
}

func TestTokenArrayGetReturnsSliceWithinSameGeneration(t *testing.T) {
	a := NewFixedArena(64, 8)
	defer a.Release()

	tok, err := AllocArrayZeroedToken[int32](a, 4)
	if err != nil {
		t.Fatal(err)
	}
	s := tok.Get()
	if len(s) != 4 {
		t.Fatalf("len(Get()) = %d, want 4", len(s))
	}
	for i, v := range s {
		if v != 0 {
			t.Fatalf("s[%d] = %d, want 0", i, v)
		}
	}
}

func TestTokenArraySurvivesResetOutsideDebugBuilds(t *testing.T) {
	if gendebug.Enabled {
		t.Skip("built with -tags debug: Get panics on a stale token")
	}

	a := NewFixedArena(64, 8)
	defer a.Release()

	tok, err := AllocArrayToken(a, int64(3), 2)
	if err != nil {
		t.Fatal(err)
	}
	a.Reset()
	_ = tok.Get() // must not panic outside debug builds
}

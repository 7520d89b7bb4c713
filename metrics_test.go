package arena

import "testing"

func TestFixedArenaMetrics(t *testing.T) {
	a := NewFixedArena(1024, 8)
	defer a.Release()

	m := a.Metrics()
	if m.Capacity != 1024 || m.Used != 0 || m.Utilization != 0 {
		t.Fatalf("initial Metrics() = %+v, want {Used:0 Capacity:1024 Utilization:0}", m)
	}

	if _, err := AllocArrayUninitialized[byte](a, 512); err != nil {
		t.Fatal(err)
	}

	m = a.Metrics()
	if m.Used != 512 {
		t.Fatalf("Used() after allocating 512 bytes = %d, want 512", m.Used)
	}
	if m.Utilization != 0.5 {
		t.Fatalf("Utilization = %f, want 0.5", m.Utilization)
	}
}

func TestDynamicArenaMetrics(t *testing.T) {
	a := newDynamicArena(0, 4*fakePageSize, newFakePlatform(fakePageSize))
	defer a.Release()

	m := a.Metrics()
	if m.Reserved != 4*fakePageSize || m.Committed != 0 || m.Used != 0 {
		t.Fatalf("initial Metrics() = %+v", m)
	}

	if _, err := AllocArrayUninitialized[byte](a, fakePageSize); err != nil {
		t.Fatal(err)
	}

	m = a.Metrics()
	if m.Used != fakePageSize {
		t.Fatalf("Used() = %d, want %d", m.Used, fakePageSize)
	}
	if m.Committed == 0 {
		t.Fatal("Committed() should be non-zero after allocation")
	}
}

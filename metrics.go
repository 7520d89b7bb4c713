package arena

// FixedMetrics is a snapshot of a FixedArena's usage.
type FixedMetrics struct {
	Used        int     // bytes currently allocated
	Capacity    int     // total byte capacity
	Utilization float64 // Used / Capacity, 0 if Capacity is 0
}

// Metrics returns a snapshot of the arena's current usage.
func (f *FixedArena) Metrics() FixedMetrics {
	return FixedMetrics{
		Used:        int(f.used),
		Capacity:    int(f.capacity),
		Utilization: ratio(f.used, f.capacity),
	}
}

// DynamicMetrics is a snapshot of a DynamicArena's usage.
type DynamicMetrics struct {
	Used        int     // bytes currently allocated
	Committed   int     // bytes currently backed by physical memory
	Reserved    int     // total virtual-address span reserved
	Utilization float64 // Used / Reserved, 0 if Reserved is 0
}

// Metrics returns a snapshot of the arena's current usage.
func (d *DynamicArena) Metrics() DynamicMetrics {
	return DynamicMetrics{
		Used:        int(d.used),
		Committed:   int(d.committed),
		Reserved:    int(d.reserved),
		Utilization: ratio(d.used, d.reserved),
	}
}

func ratio(used, total uintptr) float64 {
	if total == 0 {
		return 0
	}
	return float64(used) / float64(total)
}

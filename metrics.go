package arena

// Stats is a point-in-time snapshot of an arena's usage.
type Stats struct {
	InUse       int     // bytes consumed by allocations and padding
	Capacity    int     // total region length in bytes
	Remaining   int     // bytes still available
	Utilization float64 // InUse / Capacity, 0.0 to 1.0
}

// Utilization returns the ratio of consumed bytes to capacity (0.0 to 1.0).
// Returns 0.0 for an invalid arena.
func (a *Arena) Utilization() float64 {
	if !a.valid() || len(a.region) == 0 {
		return 0
	}
	return float64(a.offset) / float64(len(a.region))
}

// Stats returns a snapshot of the arena's usage.
func (a *Arena) Stats() Stats {
	return Stats{
		InUse:       a.Offset(),
		Capacity:    a.Capacity(),
		Remaining:   a.Remaining(),
		Utilization: a.Utilization(),
	}
}

// Utilization returns the underlying arena's utilization ratio.
func (t *TrackedArena) Utilization() float64 {
	if t == nil {
		return 0
	}
	return t.arena.Utilization()
}

// Stats returns a snapshot of the underlying arena's usage.
func (t *TrackedArena) Stats() Stats {
	if t == nil {
		return Stats{}
	}
	return t.arena.Stats()
}

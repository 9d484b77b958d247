package puzzle

import (
	"fmt"

	"github.com/lixenwraith/farmstead/core"
)

// Counter is a named shared progress value with its completion threshold
type Counter struct {
	Name      string
	Threshold int
	Value     int
}

// Reached reports whether the counter met its threshold
func (c Counter) Reached() bool {
	return c.Value >= c.Threshold
}

type countKey struct {
	counter string
	entity  core.Entity
}

// ProgressTracker owns the puzzle's counters, shared by all entities and clones
// Values only grow within a session; Reset is the only way back to zero
type ProgressTracker struct {
	counters []*Counter
	index    map[string]*Counter
	counted  map[countKey]struct{}
	byEntity map[core.Entity]int

	signalled bool
}

func NewProgressTracker(specs []CounterSpec) *ProgressTracker {
	t := &ProgressTracker{
		counters: make([]*Counter, 0, len(specs)),
		index:    make(map[string]*Counter, len(specs)),
	}
	for _, spec := range specs {
		c := &Counter{Name: spec.Name, Threshold: spec.Threshold}
		t.counters = append(t.counters, c)
		t.index[spec.Name] = c
	}
	t.Reset()
	return t
}

// Increment counts one completion of entity e toward the named counter
// Each (counter, entity) pair counts at most once; repeats return ErrAlreadyCounted
func (t *ProgressTracker) Increment(name string, e core.Entity) (int, error) {
	c, ok := t.index[name]
	if !ok {
		return 0, fmt.Errorf("%w: counter %q", ErrConfigurationMissing, name)
	}
	key := countKey{counter: name, entity: e}
	if _, dup := t.counted[key]; dup {
		return c.Value, fmt.Errorf("%w: entity %d on %q", ErrAlreadyCounted, e, name)
	}
	t.counted[key] = struct{}{}
	t.byEntity[e]++
	c.Value++
	return c.Value, nil
}

// Counted reports whether e already contributed to the named counter
func (t *ProgressTracker) Counted(name string, e core.Entity) bool {
	_, ok := t.counted[countKey{counter: name, entity: e}]
	return ok
}

// CountedAny reports whether e contributed to any counter
func (t *ProgressTracker) CountedAny(e core.Entity) bool {
	return t.byEntity[e] > 0
}

// Counter returns a copy of the named counter
func (t *ProgressTracker) Counter(name string) (Counter, bool) {
	c, ok := t.index[name]
	if !ok {
		return Counter{}, false
	}
	return *c, true
}

// Counters returns copies of all counters in definition order
func (t *ProgressTracker) Counters() []Counter {
	out := make([]Counter, len(t.counters))
	for i, c := range t.counters {
		out[i] = *c
	}
	return out
}

// Complete is the level predicate: every counter reached its threshold
// A puzzle without counters never completes
func (t *ProgressTracker) Complete() bool {
	if len(t.counters) == 0 {
		return false
	}
	for _, c := range t.counters {
		if !c.Reached() {
			return false
		}
	}
	return true
}

// Evaluate is the edge-triggered completion signal
// Returns true only on the first call that observes Complete() in this session
func (t *ProgressTracker) Evaluate() bool {
	if t.signalled || !t.Complete() {
		return false
	}
	t.signalled = true
	return true
}

// Signalled reports whether the completion edge already fired
func (t *ProgressTracker) Signalled() bool {
	return t.signalled
}

// Fraction returns overall progress in [0, 1], each counter capped at its threshold
func (t *ProgressTracker) Fraction() float64 {
	total, done := 0, 0
	for _, c := range t.counters {
		total += c.Threshold
		done += min(c.Value, c.Threshold)
	}
	if total == 0 {
		return 0
	}
	return float64(done) / float64(total)
}

// Reset zeroes all counters, forgets counted entities and re-arms the signal
func (t *ProgressTracker) Reset() {
	for _, c := range t.counters {
		c.Value = 0
	}
	t.counted = make(map[countKey]struct{})
	t.byEntity = make(map[core.Entity]int)
	t.signalled = false
}

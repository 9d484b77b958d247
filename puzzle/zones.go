package puzzle

import (
	"slices"

	"github.com/lixenwraith/farmstead/core"
)

// SnapZone is a registry entry: static spec plus exclusive occupancy
type SnapZone struct {
	ZoneSpec
	Occupant core.Entity
}

// Occupied reports whether an entity holds the zone
func (z *SnapZone) Occupied() bool {
	return z.Occupant != core.EntityNone
}

// Accepts reports whether entities of the template may enter
func (z *SnapZone) Accepts(template string) bool {
	return len(z.ZoneSpec.Accepts) == 0 || slices.Contains(z.ZoneSpec.Accepts, template)
}

// ZoneRegistry holds the puzzle's zones in definition order
// Zones are created once per puzzle; only occupancy changes afterwards
type ZoneRegistry struct {
	zones []*SnapZone
	index map[string]*SnapZone
}

func NewZoneRegistry(specs []ZoneSpec) *ZoneRegistry {
	r := &ZoneRegistry{
		zones: make([]*SnapZone, 0, len(specs)),
		index: make(map[string]*SnapZone, len(specs)),
	}
	for _, spec := range specs {
		z := &SnapZone{ZoneSpec: spec}
		r.zones = append(r.zones, z)
		r.index[spec.ID] = z
	}
	return r
}

// Get returns the zone by id
func (r *ZoneRegistry) Get(id string) (*SnapZone, bool) {
	z, ok := r.index[id]
	return z, ok
}

// All returns zones in registry order
func (r *ZoneRegistry) All() []*SnapZone {
	return r.zones
}

// PrerequisiteMet reports whether the zone's prerequisite (if any) is filled
func (r *ZoneRegistry) PrerequisiteMet(z *SnapZone) bool {
	if z.Requires == "" {
		return true
	}
	req, ok := r.index[z.Requires]
	return ok && req.Occupied()
}

// Occupy claims the zone for e; fails if the zone is unknown or held by another entity
func (r *ZoneRegistry) Occupy(id string, e core.Entity) bool {
	z, ok := r.index[id]
	if !ok || (z.Occupied() && z.Occupant != e) {
		return false
	}
	z.Occupant = e
	return true
}

// Release frees the zone if it exists
func (r *ZoneRegistry) Release(id string) {
	if z, ok := r.index[id]; ok {
		z.Occupant = core.EntityNone
	}
}

// ReleaseAll frees every zone
func (r *ZoneRegistry) ReleaseAll() {
	for _, z := range r.zones {
		z.Occupant = core.EntityNone
	}
}

// OccupiedCount returns the number of filled zones
func (r *ZoneRegistry) OccupiedCount() int {
	n := 0
	for _, z := range r.zones {
		if z.Occupied() {
			n++
		}
	}
	return n
}

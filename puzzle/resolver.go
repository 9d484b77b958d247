package puzzle

import (
	"github.com/lixenwraith/farmstead/core"
	"github.com/lixenwraith/farmstead/vmath"
)

// Candidate is what the resolver needs to know about the entity being placed
type Candidate struct {
	Entity   core.Entity
	Template string
	Stage    int
	Position vmath.Vec2
}

// SnapResolver selects the best eligible zone for a candidate
type SnapResolver struct {
	zones *ZoneRegistry
}

func NewSnapResolver(zones *ZoneRegistry) *SnapResolver {
	return &SnapResolver{zones: zones}
}

// Eligible reports whether c may enter z, ignoring distance
func (r *SnapResolver) Eligible(z *SnapZone, c Candidate) bool {
	if z.Occupied() {
		return false
	}
	if !r.zones.PrerequisiteMet(z) {
		return false
	}
	if c.Stage < z.MinStage {
		return false
	}
	return z.Accepts(c.Template)
}

// Preview returns the zone Commit would pick, without mutating anything
// Nearest eligible zone within range wins; ties keep registry order
func (r *SnapResolver) Preview(c Candidate) (*SnapZone, bool) {
	var best *SnapZone
	bestDistSq := 0.0

	for _, z := range r.zones.All() {
		if !r.Eligible(z, c) {
			continue
		}
		d := vmath.V2DistSq(c.Position, z.Position)
		if d > z.Range*z.Range {
			continue
		}
		// Strict less-than keeps the earlier zone on equal distance
		if best == nil || d < bestDistSq {
			best = z
			bestDistSq = d
		}
	}
	return best, best != nil
}

// Commit resolves like Preview and marks the chosen zone occupied by c.Entity
func (r *SnapResolver) Commit(c Candidate) (*SnapZone, bool) {
	z, ok := r.Preview(c)
	if !ok {
		return nil, false
	}
	if !r.zones.Occupy(z.ID, c.Entity) {
		return nil, false
	}
	return z, true
}

package puzzle

import (
	"fmt"
	"strings"
	"time"

	"github.com/lixenwraith/farmstead/core"
	"github.com/lixenwraith/farmstead/parameter"
	"github.com/lixenwraith/farmstead/vmath"
)

// PhaseKind selects which transform channel a phase drives
type PhaseKind uint8

const (
	PhaseHold PhaseKind = iota
	PhaseMove
	PhaseRotate
	PhaseFade
)

var phaseKindNames = [...]string{
	PhaseHold:   "hold",
	PhaseMove:   "move",
	PhaseRotate: "rotate",
	PhaseFade:   "fade",
}

func (k PhaseKind) String() string {
	if int(k) < len(phaseKindNames) {
		return phaseKindNames[k]
	}
	return "unknown"
}

// ParsePhaseKind resolves a configuration name, case-insensitive
func ParsePhaseKind(name string) (PhaseKind, error) {
	for i, n := range phaseKindNames {
		if strings.EqualFold(n, name) {
			return PhaseKind(i), nil
		}
	}
	return PhaseHold, fmt.Errorf("unknown phase kind %q", name)
}

// Phase is one timed step of a post-snap sequence
type Phase struct {
	Kind     PhaseKind
	Duration time.Duration

	// To is the move target as an offset from the zone anchor
	To vmath.Vec2
	// Value is the rotate target in degrees or the fade target alpha
	Value float64

	// Applied when the phase completes
	Visual string // Replaces the visual tag when non-empty
	Stage  int    // Added to the stage counter, clamped to MaxStage
}

// CounterSpec declares a tracked completion condition
type CounterSpec struct {
	Name      string
	Threshold int
}

// ZoneSpec declares a snap target
type ZoneSpec struct {
	ID       string
	Position vmath.Vec2
	Range    float64

	Requires string   // Prerequisite zone that must be occupied first
	MinStage int      // Entity stage required to enter
	Accepts  []string // Template ids accepted, empty accepts all

	Counter string  // Overrides the template counter for entities locked here
	Phases  []Phase // Overrides the template phases for entities snapped here
}

// Template is the factory description of an interactive entity
type Template struct {
	ID            string
	Positions     []vmath.Vec2 // One initial instance per position
	SpawnPosition vmath.Vec2   // Where clones appear
	MaxLive       int          // Clone ceiling for this lineage, 0 disables cloning

	HitRadius float64
	Rotation  float64
	MaxStage  int

	// Redraggable allows picking the entity up again after it locks, while below MaxStage and uncounted
	Redraggable bool

	Counter      string
	CountAtStage int // Minimum stage before the entity contributes to Counter

	Visual  string                      // Initial visual tag
	Visuals map[core.EntityState]string // Visual tag applied on entering a state
	Phases  []Phase
}

// Definition is the complete static data of one puzzle
type Definition struct {
	Name            string
	NextScene       string
	TransitionDelay time.Duration

	Counters  []CounterSpec
	Zones     []ZoneSpec
	Templates []Template
}

// withDefaults fills zero-valued tunables
func (d Definition) withDefaults() Definition {
	zones := make([]ZoneSpec, len(d.Zones))
	copy(zones, d.Zones)
	for i := range zones {
		if zones[i].Range <= 0 {
			zones[i].Range = parameter.DefaultZoneRange
		}
	}
	d.Zones = zones

	templates := make([]Template, len(d.Templates))
	copy(templates, d.Templates)
	for i := range templates {
		if templates[i].HitRadius <= 0 {
			templates[i].HitRadius = parameter.DefaultHitRadius
		}
	}
	d.Templates = templates

	if d.TransitionDelay < 0 {
		d.TransitionDelay = 0
	}
	return d
}

// Validate checks every cross reference in the definition
// All failures wrap ErrConfigurationMissing
func (d Definition) Validate() error {
	if d.Name == "" {
		return fmt.Errorf("%w: puzzle name", ErrConfigurationMissing)
	}
	if len(d.Templates) == 0 {
		return fmt.Errorf("%w: puzzle %q has no templates", ErrConfigurationMissing, d.Name)
	}
	if len(d.Zones) == 0 {
		return fmt.Errorf("%w: puzzle %q has no zones", ErrConfigurationMissing, d.Name)
	}

	counters := make(map[string]bool, len(d.Counters))
	for _, c := range d.Counters {
		if c.Name == "" || counters[c.Name] {
			return fmt.Errorf("%w: counter name empty or duplicated (%q)", ErrConfigurationMissing, c.Name)
		}
		if c.Threshold <= 0 {
			return fmt.Errorf("%w: counter %q threshold must be positive", ErrConfigurationMissing, c.Name)
		}
		counters[c.Name] = true
	}

	templates := make(map[string]bool, len(d.Templates))
	for _, t := range d.Templates {
		if t.ID == "" || templates[t.ID] {
			return fmt.Errorf("%w: template id empty or duplicated (%q)", ErrConfigurationMissing, t.ID)
		}
		templates[t.ID] = true
		if len(t.Positions) == 0 {
			return fmt.Errorf("%w: template %q has no initial positions", ErrConfigurationMissing, t.ID)
		}
		if t.Counter != "" && !counters[t.Counter] {
			return fmt.Errorf("%w: template %q references counter %q", ErrConfigurationMissing, t.ID, t.Counter)
		}
		if t.MaxStage < 0 || t.CountAtStage > t.MaxStage {
			return fmt.Errorf("%w: template %q count_at_stage exceeds max_stage", ErrConfigurationMissing, t.ID)
		}
	}

	zones := make(map[string]bool, len(d.Zones))
	for _, z := range d.Zones {
		if z.ID == "" || zones[z.ID] {
			return fmt.Errorf("%w: zone id empty or duplicated (%q)", ErrConfigurationMissing, z.ID)
		}
		zones[z.ID] = true
	}
	for _, z := range d.Zones {
		if z.Requires != "" && (!zones[z.Requires] || z.Requires == z.ID) {
			return fmt.Errorf("%w: zone %q requires unknown zone %q", ErrConfigurationMissing, z.ID, z.Requires)
		}
		if z.Counter != "" && !counters[z.Counter] {
			return fmt.Errorf("%w: zone %q references counter %q", ErrConfigurationMissing, z.ID, z.Counter)
		}
		for _, id := range z.Accepts {
			if !templates[id] {
				return fmt.Errorf("%w: zone %q accepts unknown template %q", ErrConfigurationMissing, z.ID, id)
			}
		}
	}
	return nil
}

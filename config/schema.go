package config

import (
	"fmt"
	"time"

	"github.com/lixenwraith/farmstead/core"
	"github.com/lixenwraith/farmstead/parameter"
	"github.com/lixenwraith/farmstead/puzzle"
	"github.com/lixenwraith/farmstead/vmath"
)

// File is one TOML document: optional includes plus any number of puzzles
type File struct {
	Start   string         `toml:"start"`
	Include []string       `toml:"include"`
	Puzzles []PuzzleConfig `toml:"puzzle"`
}

// PuzzleConfig is the TOML shape of puzzle.Definition
type PuzzleConfig struct {
	Name            string           `toml:"name"`
	Next            string           `toml:"next"`
	TransitionDelay *time.Duration   `toml:"transition_delay"`
	Counters        []CounterConfig  `toml:"counter"`
	Zones           []ZoneConfig     `toml:"zone"`
	Templates       []TemplateConfig `toml:"template"`
}

type CounterConfig struct {
	Name      string `toml:"name"`
	Threshold int    `toml:"threshold"`
}

type ZoneConfig struct {
	ID       string        `toml:"id"`
	Position []float64     `toml:"position"`
	Range    float64       `toml:"range"`
	Requires string        `toml:"requires"`
	MinStage int           `toml:"min_stage"`
	Accepts  []string      `toml:"accepts"`
	Counter  string        `toml:"counter"`
	Phases   []PhaseConfig `toml:"phase"`
}

type TemplateConfig struct {
	ID            string            `toml:"id"`
	Positions     [][]float64       `toml:"positions"`
	SpawnPosition []float64         `toml:"spawn_position"`
	MaxLive       int               `toml:"max_live"`
	HitRadius     float64           `toml:"hit_radius"`
	Rotation      float64           `toml:"rotation"`
	MaxStage      int               `toml:"max_stage"`
	Redraggable   bool              `toml:"redraggable"`
	Counter       string            `toml:"counter"`
	CountAtStage  int               `toml:"count_at_stage"`
	Visual        string            `toml:"visual"`
	Visuals       map[string]string `toml:"visuals"` // State name to visual tag
	Phases        []PhaseConfig     `toml:"phase"`
}

type PhaseConfig struct {
	Kind     string        `toml:"kind"`
	Duration time.Duration `toml:"duration"`
	To       []float64     `toml:"to"`
	Value    float64       `toml:"value"`
	Visual   string        `toml:"visual"`
	Stage    int           `toml:"stage"`
}

// Definition converts the TOML shape into a puzzle definition
// Only shape errors are reported here; cross references are checked by puzzle.New
func (c PuzzleConfig) Definition() (puzzle.Definition, error) {
	def := puzzle.Definition{
		Name:            c.Name,
		NextScene:       c.Next,
		TransitionDelay: parameter.DefaultTransitionDelay,
	}
	if c.TransitionDelay != nil {
		def.TransitionDelay = *c.TransitionDelay
	}

	for _, cc := range c.Counters {
		def.Counters = append(def.Counters, puzzle.CounterSpec{Name: cc.Name, Threshold: cc.Threshold})
	}

	for _, zc := range c.Zones {
		pos, err := vec(zc.Position)
		if err != nil {
			return def, fmt.Errorf("puzzle %q zone %q position: %w", c.Name, zc.ID, err)
		}
		phases, err := convertPhases(zc.Phases)
		if err != nil {
			return def, fmt.Errorf("puzzle %q zone %q: %w", c.Name, zc.ID, err)
		}
		def.Zones = append(def.Zones, puzzle.ZoneSpec{
			ID:       zc.ID,
			Position: pos,
			Range:    zc.Range,
			Requires: zc.Requires,
			MinStage: zc.MinStage,
			Accepts:  zc.Accepts,
			Counter:  zc.Counter,
			Phases:   phases,
		})
	}

	for _, tc := range c.Templates {
		t, err := tc.template()
		if err != nil {
			return def, fmt.Errorf("puzzle %q template %q: %w", c.Name, tc.ID, err)
		}
		def.Templates = append(def.Templates, t)
	}
	return def, nil
}

func (tc TemplateConfig) template() (puzzle.Template, error) {
	t := puzzle.Template{
		ID:           tc.ID,
		MaxLive:      tc.MaxLive,
		HitRadius:    tc.HitRadius,
		Rotation:     tc.Rotation,
		MaxStage:     tc.MaxStage,
		Redraggable:  tc.Redraggable,
		Counter:      tc.Counter,
		CountAtStage: tc.CountAtStage,
		Visual:       tc.Visual,
	}

	for i, p := range tc.Positions {
		pos, err := vec(p)
		if err != nil {
			return t, fmt.Errorf("positions[%d]: %w", i, err)
		}
		t.Positions = append(t.Positions, pos)
	}

	// Clones appear at the first initial position unless told otherwise
	if tc.SpawnPosition != nil {
		pos, err := vec(tc.SpawnPosition)
		if err != nil {
			return t, fmt.Errorf("spawn_position: %w", err)
		}
		t.SpawnPosition = pos
	} else if len(t.Positions) > 0 {
		t.SpawnPosition = t.Positions[0]
	}

	if len(tc.Visuals) > 0 {
		t.Visuals = make(map[core.EntityState]string, len(tc.Visuals))
		for name, visual := range tc.Visuals {
			state, ok := core.ParseState(name)
			if !ok {
				return t, fmt.Errorf("visuals: unknown state %q", name)
			}
			t.Visuals[state] = visual
		}
	}

	phases, err := convertPhases(tc.Phases)
	if err != nil {
		return t, err
	}
	t.Phases = phases
	return t, nil
}

func convertPhases(in []PhaseConfig) ([]puzzle.Phase, error) {
	if len(in) == 0 {
		return nil, nil
	}
	out := make([]puzzle.Phase, 0, len(in))
	for i, pc := range in {
		kind, err := puzzle.ParsePhaseKind(pc.Kind)
		if err != nil {
			return nil, fmt.Errorf("phase[%d]: %w", i, err)
		}
		if pc.Duration < 0 {
			return nil, fmt.Errorf("phase[%d]: negative duration %s", i, pc.Duration)
		}
		p := puzzle.Phase{
			Kind:     kind,
			Duration: pc.Duration,
			Value:    pc.Value,
			Visual:   pc.Visual,
			Stage:    pc.Stage,
		}
		if pc.To != nil {
			if p.To, err = vec(pc.To); err != nil {
				return nil, fmt.Errorf("phase[%d] to: %w", i, err)
			}
		}
		out = append(out, p)
	}
	return out, nil
}

func vec(v []float64) (vmath.Vec2, error) {
	if len(v) != 2 {
		return vmath.Vec2{}, fmt.Errorf("want [x, y], got %d values", len(v))
	}
	return vmath.V2(v[0], v[1]), nil
}

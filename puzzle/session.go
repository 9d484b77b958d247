package puzzle

import (
	"context"
	"fmt"
	"slices"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/lixenwraith/farmstead/component"
	"github.com/lixenwraith/farmstead/core"
	"github.com/lixenwraith/farmstead/engine"
	"github.com/lixenwraith/farmstead/event"
	"github.com/lixenwraith/farmstead/status"
	"github.com/lixenwraith/farmstead/vmath"
)

// SceneLoader is the scene-transition collaborator
type SceneLoader interface {
	LoadScene(id string)
}

// SceneLoaderFunc adapts a function to SceneLoader
type SceneLoaderFunc func(id string)

func (f SceneLoaderFunc) LoadScene(id string) { f(id) }

// SpatialQuery resolves the topmost interactive entity under a point
type SpatialQuery interface {
	TopmostAt(pos vmath.Vec2) (core.Entity, bool)
}

// Options wires a session to its collaborators; every field is optional
type Options struct {
	Logger   *logrus.Entry
	Spatial  SpatialQuery // Defaults to the session's own world
	Scenes   SceneLoader
	Metrics  *status.Registry
	Tracer   trace.Tracer
	Handlers []event.Handler
}

// Session is one running puzzle: entity arena, zones, counters and the drag lock
// All methods must be called from a single goroutine (the tick loop)
type Session struct {
	id  string
	def Definition

	templates map[string]*Template
	world     *engine.World
	sequences *engine.Store[*Sequencer]

	zones    *ZoneRegistry
	resolver *SnapResolver
	progress *ProgressTracker
	spawner  *CloneSpawner
	lock     DragLock

	queue  *event.Queue
	router *event.Router

	spatial SpatialQuery
	scenes  SceneLoader
	tracer  trace.Tracer
	span    trace.Span

	baseLog *logrus.Entry
	log     *logrus.Entry

	disabled bool
	closed   bool
	tick     int64

	// Scene transition countdown, armed by the completion edge
	transitionPending bool
	transitionLeft    time.Duration
	transitioned      bool

	statDrags       *atomic.Int64
	statSnaps       *atomic.Int64
	statSpawns      *atomic.Int64
	statActive      *atomic.Int64
	statCompletions *atomic.Int64
	statProgress    *status.AtomicFloat
}

// New builds a session from a definition and populates its initial entities
// A session is always returned; when the definition is invalid it is disabled,
// ignores all input and the ErrConfigurationMissing error is returned alongside
func New(def Definition, opts Options) (*Session, error) {
	def = def.withDefaults()

	s := &Session{
		def:       def,
		templates: make(map[string]*Template, len(def.Templates)),
		world:     engine.NewWorld(),
		sequences: engine.NewStore[*Sequencer](),
		zones:     NewZoneRegistry(def.Zones),
		progress:  NewProgressTracker(def.Counters),
		queue:     event.NewQueue(),
		scenes:    opts.Scenes,
		tracer:    opts.Tracer,
		baseLog:   opts.Logger,
	}
	s.world.RegisterStore(s.sequences)
	s.resolver = NewSnapResolver(s.zones)
	s.spawner = NewCloneSpawner(s)
	s.router = event.NewRouter(s.queue)
	for _, h := range opts.Handlers {
		s.router.Register(h)
	}
	for i := range s.def.Templates {
		s.templates[s.def.Templates[i].ID] = &s.def.Templates[i]
	}

	s.spatial = opts.Spatial
	if s.spatial == nil {
		s.spatial = s.world
	}
	if s.tracer == nil {
		s.tracer = otel.Tracer("github.com/lixenwraith/farmstead/puzzle")
	}
	if s.baseLog == nil {
		s.baseLog = logrus.NewEntry(logrus.StandardLogger())
	}
	s.log = s.baseLog.WithField("puzzle", def.Name)

	reg := opts.Metrics
	if reg == nil {
		reg = status.NewRegistry()
	}
	s.statDrags = reg.Ints.Get("puzzle.drags")
	s.statSnaps = reg.Ints.Get("puzzle.snaps")
	s.statSpawns = reg.Ints.Get("puzzle.spawns")
	s.statActive = reg.Ints.Get("puzzle.sequences.active")
	s.statCompletions = reg.Ints.Get("puzzle.completions")
	s.statProgress = reg.Floats.Get("puzzle.progress")

	if err := def.Validate(); err != nil {
		s.disabled = true
		s.log.WithError(err).Error("puzzle disabled")
		return s, err
	}

	s.populate()
	s.log.WithFields(logrus.Fields{
		"zones":     len(def.Zones),
		"templates": len(def.Templates),
		"entities":  s.world.Interactives.Count(),
	}).Info("puzzle started")
	return s, nil
}

// ID returns the current session instance id, renewed by Reset
func (s *Session) ID() string { return s.id }

// Name returns the puzzle name
func (s *Session) Name() string { return s.def.Name }

// NextScene returns the scene loaded after completion, empty at chain end
func (s *Session) NextScene() string { return s.def.NextScene }

// Disabled reports whether the definition failed validation
func (s *Session) Disabled() bool { return s.disabled }

// Complete reports whether every counter reached its threshold
func (s *Session) Complete() bool { return s.progress.Complete() }

// Register adds a presentation handler to the session's router
func (s *Session) Register(h event.Handler) {
	s.router.Register(h)
}

// Reset discards every entity, zone occupancy, counter and pending transition,
// then recreates the template instances under a fresh session id
func (s *Session) Reset() {
	if s.disabled || s.closed {
		return
	}
	s.endSpan("reset")
	s.populate()
	s.log.Info("puzzle reset")
	s.emit(event.EventPuzzleReset, &event.PuzzlePayload{Puzzle: s.def.Name, Scene: s.def.NextScene})
}

// Close ends the session; all further input is rejected
func (s *Session) Close() {
	if s.closed {
		return
	}
	s.closed = true
	s.endSpan("closed")
	s.world.Clear()
	s.zones.ReleaseAll()
	s.lock.reset()
	s.queue.Clear()
	s.statActive.Store(0)
}

// Tick advances the session by dt: transition countdown, phase sequencers in
// entity-id order, drag preview refresh, then event dispatch
func (s *Session) Tick(dt time.Duration) {
	if s.disabled || s.closed {
		return
	}
	s.tick++

	s.countdown(dt)
	s.advanceSequences(dt)
	if h := s.lock.Holder(); h != core.EntityNone {
		s.refreshPreview(h)
	}

	s.statActive.Store(int64(s.sequences.Count()))
	s.router.DispatchAll()
}

// PointerDown starts dragging the topmost entity under pos
// Returns nil when nothing is under the pointer
func (s *Session) PointerDown(pos vmath.Vec2) error {
	if err := s.usable(); err != nil {
		return err
	}
	e, ok := s.spatial.TopmostAt(pos)
	if !ok {
		return nil
	}
	return s.BeginDrag(e, pos)
}

// PointerMove updates the current drag, no-op without one
func (s *Session) PointerMove(pos vmath.Vec2) error {
	if err := s.usable(); err != nil {
		return err
	}
	h := s.lock.Holder()
	if h == core.EntityNone {
		return nil
	}
	return s.UpdateDrag(h, pos)
}

// PointerUp releases the current drag, no-op without one
func (s *Session) PointerUp() error {
	if err := s.usable(); err != nil {
		return err
	}
	h := s.lock.Holder()
	if h == core.EntityNone {
		return nil
	}
	return s.EndDrag(h)
}

// SpawnFromTemplate creates an Idle instance of t at pos
func (s *Session) SpawnFromTemplate(t *Template, pos vmath.Vec2) core.Entity {
	e := s.world.CreateEntity()
	s.world.Transforms.Set(e, component.TransformComponent{
		Position: pos,
		Rotation: t.Rotation,
		Alpha:    1,
	})
	s.world.Interactives.Set(e, component.InteractiveComponent{
		Template:  t.ID,
		State:     core.StateIdle,
		MaxStage:  t.MaxStage,
		Visual:    t.Visual,
		HitRadius: t.HitRadius,
	})
	return e
}

// LiveCount returns the number of live entities of the template lineage
func (s *Session) LiveCount(template string) int {
	n := 0
	for _, e := range s.world.Interactives.All() {
		if ic, _ := s.world.Interactives.Get(e); ic.Template == template {
			n++
		}
	}
	return n
}

func (s *Session) populate() {
	s.id = uuid.NewString()
	s.log = s.baseLog.WithFields(logrus.Fields{"puzzle": s.def.Name, "session": s.id})
	_, s.span = s.tracer.Start(context.Background(), "puzzle.session",
		trace.WithAttributes(
			attribute.String("puzzle.name", s.def.Name),
			attribute.String("puzzle.session", s.id),
		))

	s.world.Clear()
	s.zones.ReleaseAll()
	s.progress.Reset()
	s.lock.reset()
	s.queue.Clear()
	s.tick = 0
	s.transitionPending = false
	s.transitionLeft = 0
	s.transitioned = false
	s.statActive.Store(0)
	s.statProgress.Set(0)

	for i := range s.def.Templates {
		t := &s.def.Templates[i]
		for _, pos := range t.Positions {
			s.SpawnFromTemplate(t, pos)
		}
	}
}

func (s *Session) advanceSequences(dt time.Duration) {
	entities := s.sequences.All()
	slices.Sort(entities)

	for _, e := range entities {
		seq, ok := s.sequences.Get(e)
		if !ok {
			continue
		}
		ic, _ := s.world.Interactives.Get(e)
		tr, _ := s.world.Transforms.Get(e)

		done := seq.Advance(dt, &tr, func(i int, p Phase) {
			s.applyPhaseEffects(e, &ic, i, p)
		})
		s.world.Transforms.Set(e, tr)
		s.world.Interactives.Set(e, ic)

		if done {
			if err := s.SequenceComplete(e); err != nil {
				s.log.WithError(err).Warn("sequence completion rejected")
			}
		}
	}
}

func (s *Session) onPuzzleComplete() {
	s.statCompletions.Add(1)
	s.span.AddEvent("puzzle.completed")
	s.log.WithField("next", s.def.NextScene).Info("puzzle completed")
	s.emit(event.EventPuzzleCompleted, &event.PuzzlePayload{Puzzle: s.def.Name, Scene: s.def.NextScene})

	if s.def.TransitionDelay <= 0 {
		s.fireTransition()
		return
	}
	s.transitionPending = true
	s.transitionLeft = s.def.TransitionDelay
}

func (s *Session) countdown(dt time.Duration) {
	if !s.transitionPending || dt <= 0 {
		return
	}
	s.transitionLeft -= dt
	if s.transitionLeft <= 0 {
		s.fireTransition()
	}
}

// fireTransition invokes the scene loader at most once per session instance
func (s *Session) fireTransition() {
	s.transitionPending = false
	if s.transitioned {
		return
	}
	s.transitioned = true

	s.emit(event.EventSceneTransition, &event.PuzzlePayload{Puzzle: s.def.Name, Scene: s.def.NextScene})
	if s.def.NextScene == "" {
		s.log.Info("puzzle chain finished")
		return
	}
	s.log.WithField("scene", s.def.NextScene).Info("scene transition")
	if s.scenes != nil {
		s.scenes.LoadScene(s.def.NextScene)
	}
}

func (s *Session) emit(t event.EventType, payload any) {
	s.queue.Push(event.GameEvent{Type: t, Payload: payload, Tick: s.tick})
}

func (s *Session) usable() error {
	if s.disabled {
		return fmt.Errorf("%w: puzzle %q is disabled", ErrConfigurationMissing, s.def.Name)
	}
	if s.closed {
		return fmt.Errorf("%w: puzzle %q is closed", ErrInvalidTransition, s.def.Name)
	}
	return nil
}

func (s *Session) endSpan(reason string) {
	if s.span == nil {
		return
	}
	s.span.SetAttributes(
		attribute.String("puzzle.end", reason),
		attribute.Bool("puzzle.complete", s.progress.Complete()),
	)
	s.span.End()
	s.span = nil
}

func entityAttrs(e core.Entity, ic component.InteractiveComponent) trace.EventOption {
	return trace.WithAttributes(
		attribute.Int64("entity", int64(e)),
		attribute.String("template", ic.Template),
		attribute.String("zone", ic.Zone),
		attribute.Int("stage", ic.Stage),
	)
}

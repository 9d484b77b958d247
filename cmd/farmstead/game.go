package main

import (
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/farmstead/config"
	"github.com/lixenwraith/farmstead/engine"
	"github.com/lixenwraith/farmstead/event"
	"github.com/lixenwraith/farmstead/input"
	"github.com/lixenwraith/farmstead/puzzle"
	"github.com/lixenwraith/farmstead/render"
	"github.com/lixenwraith/farmstead/status"
)

// game owns the running session and swaps it on scene transitions
// Every method except construction runs on the scheduler goroutine,
// including pointer decoding, so the pointer state has a single owner
type game struct {
	catalog   *config.Catalog
	renderer  *render.Renderer
	pointer   *input.Pointer
	clock     *engine.PausableClock
	scheduler *engine.ClockScheduler
	metrics   *status.Registry
	log       *logrus.Entry
	handlers  []event.Handler

	session *puzzle.Session
}

// load replaces the current session with the named puzzle
// An unknown name keeps the current session running
func (g *game) load(name string) {
	def, ok := g.catalog.Get(name)
	if !ok {
		g.log.WithField("puzzle", name).Error("unknown puzzle")
		return
	}

	if g.session != nil {
		g.session.Close()
	}

	session, err := puzzle.New(def, puzzle.Options{
		Logger:   g.log,
		Scenes:   puzzle.SceneLoaderFunc(g.requestScene),
		Metrics:  g.metrics,
		Handlers: g.handlers,
	})
	if err != nil {
		g.log.WithError(err).WithField("puzzle", name).Warn("puzzle loaded disabled")
	}
	g.session = session
	g.pointer.Reset()
	g.draw()
}

// requestScene defers the swap until the completing tick has returned
func (g *game) requestScene(name string) {
	if !g.scheduler.Submit(func() { g.load(name) }) {
		g.log.WithField("puzzle", name).Warn("scene load dropped")
	}
}

func (g *game) tick(dt time.Duration) {
	if g.session == nil {
		return
	}
	g.session.Tick(dt)
	g.draw()
}

func (g *game) reset() {
	if g.session == nil {
		return
	}
	g.session.Reset()
	g.pointer.Reset()
	g.draw()
}

// mouseInput decodes a raw mouse event and forwards the resulting gesture
func (g *game) mouseInput(ev *tcell.EventMouse) {
	pe := g.pointer.Handle(ev)
	if pe.Action != input.PointerNone {
		g.pointerInput(pe)
	}
}

func (g *game) pointerInput(pe input.PointerEvent) {
	if g.session == nil || g.clock.IsPaused() {
		return
	}

	var err error
	switch pe.Action {
	case input.PointerPress:
		err = g.session.PointerDown(pe.Position)
	case input.PointerMove:
		err = g.session.PointerMove(pe.Position)
	case input.PointerRelease:
		err = g.session.PointerUp()
	}
	if err != nil {
		g.log.WithError(err).WithField("action", pe.Action.String()).Debug("pointer input rejected")
	}
}

func (g *game) togglePause() {
	if g.clock.IsPaused() {
		g.clock.Resume()
	} else {
		g.clock.Pause()
		if g.session != nil && g.pointer.Pressed() {
			_ = g.session.PointerUp()
		}
		g.pointer.Reset()
	}
	g.renderer.SetPaused(g.clock.IsPaused())
	g.draw()
}

// skip jumps to the next puzzle in the chain without completing the current one
func (g *game) skip() {
	if g.session == nil || g.session.NextScene() == "" {
		return
	}
	g.log.WithField("next", g.session.NextScene()).Info("puzzle skipped")
	g.load(g.session.NextScene())
}

func (g *game) draw() {
	if g.session == nil {
		return
	}
	g.renderer.Draw(g.session.Snapshot())
}

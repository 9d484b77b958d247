package engine

import (
	"github.com/lixenwraith/farmstead/component"
	"github.com/lixenwraith/farmstead/core"
	"github.com/lixenwraith/farmstead/vmath"
)

// World is the entity arena of one puzzle session
// Entities are plain ids; data lives in typed stores
type World struct {
	nextEntityID core.Entity

	Transforms   *Store[component.TransformComponent]
	Interactives *Store[component.InteractiveComponent]
	Drags        *Store[component.DragComponent]

	// Lifecycle registry, all stores are cleared/removed uniformly
	allStores []AnyStore
}

// NewWorld creates a world with the built-in component stores registered
func NewWorld() *World {
	w := &World{
		nextEntityID: 1,
		Transforms:   NewStore[component.TransformComponent](),
		Interactives: NewStore[component.InteractiveComponent](),
		Drags:        NewStore[component.DragComponent](),
	}
	w.allStores = []AnyStore{w.Transforms, w.Interactives, w.Drags}
	return w
}

// RegisterStore adds an externally owned store to lifecycle management
func (w *World) RegisterStore(s AnyStore) {
	w.allStores = append(w.allStores, s)
}

// CreateEntity reserves a new entity id without adding any components
func (w *World) CreateEntity() core.Entity {
	id := w.nextEntityID
	w.nextEntityID++
	return id
}

// DestroyEntity removes all components associated with an entity
func (w *World) DestroyEntity(e core.Entity) {
	for _, s := range w.allStores {
		s.Remove(e)
	}
}

// Alive reports whether the entity still has interactive data
func (w *World) Alive(e core.Entity) bool {
	return w.Interactives.Has(e)
}

// Clear removes all entities and restarts id allocation
func (w *World) Clear() {
	w.nextEntityID = 1
	for _, s := range w.allStores {
		s.Clear()
	}
}

// TopmostAt returns the interactive entity under pos
// Highest layer wins; within a layer the newest entity (drawn last) wins
func (w *World) TopmostAt(pos vmath.Vec2) (core.Entity, bool) {
	best := core.EntityNone
	bestLayer := 0

	for _, e := range w.Interactives.All() {
		ic, _ := w.Interactives.Get(e)
		tr, ok := w.Transforms.Get(e)
		if !ok {
			continue
		}
		if vmath.V2DistSq(pos, tr.Position) > ic.HitRadius*ic.HitRadius {
			continue
		}
		if best == core.EntityNone || ic.Layer > bestLayer || (ic.Layer == bestLayer && e > best) {
			best = e
			bestLayer = ic.Layer
		}
	}
	return best, best != core.EntityNone
}

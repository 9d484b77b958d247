package engine

import (
	"slices"

	"github.com/lixenwraith/farmstead/core"
)

// Store is a generic container for a specific component type T
// Iteration order is insertion order, so queries are deterministic
// Not safe for concurrent use; owned by the tick goroutine
type Store[T any] struct {
	components map[core.Entity]T
	entities   []core.Entity
}

// NewStore creates a new component store for type T
func NewStore[T any]() *Store[T] {
	return &Store[T]{
		components: make(map[core.Entity]T),
		entities:   make([]core.Entity, 0, 32),
	}
}

// Set inserts or updates a component for an entity
func (s *Store[T]) Set(e core.Entity, val T) {
	if _, exists := s.components[e]; !exists {
		s.entities = append(s.entities, e)
	}
	s.components[e] = val
}

// Get retrieves a component for an entity
func (s *Store[T]) Get(e core.Entity) (T, bool) {
	val, ok := s.components[e]
	return val, ok
}

// Update applies fn to a copy of the component and stores the result
// Returns false if the entity has no component in this store
func (s *Store[T]) Update(e core.Entity, fn func(*T)) bool {
	val, ok := s.components[e]
	if !ok {
		return false
	}
	fn(&val)
	s.components[e] = val
	return true
}

// Remove deletes a component from an entity, preserving order of the rest
func (s *Store[T]) Remove(e core.Entity) {
	if _, exists := s.components[e]; !exists {
		return
	}
	delete(s.components, e)
	if i := slices.Index(s.entities, e); i >= 0 {
		s.entities = slices.Delete(s.entities, i, i+1)
	}
}

// Has checks if entity has this component
func (s *Store[T]) Has(e core.Entity) bool {
	_, ok := s.components[e]
	return ok
}

// All returns a copy of all entities with this component in insertion order
func (s *Store[T]) All() []core.Entity {
	return slices.Clone(s.entities)
}

// Count returns number of entities with this component
func (s *Store[T]) Count() int {
	return len(s.entities)
}

// Clear removes all components from this store
func (s *Store[T]) Clear() {
	s.components = make(map[core.Entity]T)
	s.entities = s.entities[:0]
}

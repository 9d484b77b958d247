package engine

import "github.com/lixenwraith/farmstead/core"

// AnyStore provides type-erased operations for lifecycle management
// World manages all stores uniformly for entity destruction and reset
type AnyStore interface {
	// Remove deletes the entity's component if present
	Remove(e core.Entity)

	// Has checks if an entity has this component
	Has(e core.Entity) bool

	// Count returns the number of entities with this component
	Count() int

	// Clear removes all components from this store
	Clear()
}

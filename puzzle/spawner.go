package puzzle

import (
	"github.com/lixenwraith/farmstead/core"
	"github.com/lixenwraith/farmstead/vmath"
)

// EntityFactory creates entities from templates inside the owning session
type EntityFactory interface {
	SpawnFromTemplate(t *Template, pos vmath.Vec2) core.Entity
	LiveCount(template string) int
}

// CloneSpawner adds template instances when an entity first settles
// Clones share session collaborators through the factory, never the source entity
type CloneSpawner struct {
	factory EntityFactory
}

func NewCloneSpawner(factory EntityFactory) *CloneSpawner {
	return &CloneSpawner{factory: factory}
}

// OnFirstSettle spawns one clone at the template spawn position if the lineage
// is below MaxLive. Returns the new entity and true when a clone was created
func (cs *CloneSpawner) OnFirstSettle(t *Template) (core.Entity, bool) {
	if t == nil || t.MaxLive <= 0 {
		return core.EntityNone, false
	}
	if cs.factory.LiveCount(t.ID) >= t.MaxLive {
		return core.EntityNone, false
	}
	return cs.factory.SpawnFromTemplate(t, t.SpawnPosition), true
}

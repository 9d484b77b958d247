package core

// Entity is an arena handle issued by engine.World
// Zero is never issued and means "no entity"
type Entity uint64

// EntityNone is the null handle
const EntityNone Entity = 0

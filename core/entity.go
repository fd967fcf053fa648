package core

// Entity identifies an active target. Serials increase monotonically for the
// lifetime of a world and are never reused
type Entity uint64

// NoEntity is the zero identity, used by miss events with no target
const NoEntity Entity = 0

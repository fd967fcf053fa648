package engine

import (
	"github.com/lixenwraith/gridstrike/component"
	"github.com/lixenwraith/gridstrike/core"
)

// TargetStore owns the active target set. Iteration order is creation
// order, which keeps lifecycle updates deterministic
type TargetStore struct {
	nextID core.Entity

	ordered []*component.TargetComponent
	byID    map[core.Entity]*component.TargetComponent
	byCell  map[int]*component.TargetComponent
}

// NewTargetStore creates an empty store; serials start at 1
func NewTargetStore() *TargetStore {
	return &TargetStore{
		nextID: 1,
		byID:   make(map[core.Entity]*component.TargetComponent),
		byCell: make(map[int]*component.TargetComponent),
	}
}

// NextSerial reserves the next monotonically increasing target identity
func (s *TargetStore) NextSerial() core.Entity {
	id := s.nextID
	s.nextID++
	return id
}

// Add registers a created target. At most one target may occupy a cell;
// a double occupancy is a scheduler bug and panics
func (s *TargetStore) Add(t *component.TargetComponent) {
	if _, taken := s.byCell[t.Cell]; taken {
		panic("target store: cell already occupied")
	}
	s.ordered = append(s.ordered, t)
	s.byID[t.ID] = t
	s.byCell[t.Cell] = t
}

// Remove deletes a target by identity
func (s *TargetStore) Remove(id core.Entity) {
	t, ok := s.byID[id]
	if !ok {
		return
	}
	delete(s.byID, id)
	delete(s.byCell, t.Cell)
	for i, o := range s.ordered {
		if o.ID == id {
			s.ordered = append(s.ordered[:i], s.ordered[i+1:]...)
			break
		}
	}
}

// Get returns the target with the given identity
func (s *TargetStore) Get(id core.Entity) (*component.TargetComponent, bool) {
	t, ok := s.byID[id]
	return t, ok
}

// Occupied reports whether a cell currently hosts a target
func (s *TargetStore) Occupied(cell int) bool {
	_, ok := s.byCell[cell]
	return ok
}

// ByCell returns the target occupying a cell
func (s *TargetStore) ByCell(cell int) (*component.TargetComponent, bool) {
	t, ok := s.byCell[cell]
	return t, ok
}

// Count returns the active target population
func (s *TargetStore) Count() int {
	return len(s.ordered)
}

// All returns the active targets in creation order. The slice is shared;
// callers that remove during iteration must copy first
func (s *TargetStore) All() []*component.TargetComponent {
	return s.ordered
}

// Clear discards every active target. Serials keep increasing
func (s *TargetStore) Clear() {
	s.ordered = s.ordered[:0]
	clear(s.byID)
	clear(s.byCell)
}

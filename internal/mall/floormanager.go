package mall

import (
	"mall-engine/internal/logger"
	"mall-engine/internal/semantic"
)

// FloorManager owns the "current floor" slot. Exactly one floor is current
// at a time; switching hides every other floor before showing the target so
// two floors are never simultaneously visible mid-transition.
type FloorManager struct {
	reg *semantic.Registry
	log *logger.Logger

	currentFloorID string
}

// NewFloorManager returns a floor manager over the registry.
func NewFloorManager(reg *semantic.Registry, log *logger.Logger) *FloorManager {
	return &FloorManager{reg: reg, log: log}
}

// SetCurrentFloor makes the floor with the given semantic id current. Every
// other floor (with its whole subtree) is hidden first, then the target is
// shown. Unknown ids are a logged no-op and leave the current floor
// unchanged.
func (m *FloorManager) SetCurrentFloor(id string) {
	target := m.reg.GetByID(id)
	if target == nil || target.Type != semantic.TypeFloor {
		m.log.Logf("setCurrentFloor: no floor with id %s", id)
		return
	}
	for _, floor := range m.reg.GetByType(semantic.TypeFloor) {
		if floor.ID != id {
			m.setSubtreeVisible(floor, false)
		}
	}
	m.setSubtreeVisible(target, true)
	m.currentFloorID = id
}

// CurrentFloor returns the current floor, or nil when none is set.
func (m *FloorManager) CurrentFloor() *semantic.Object {
	if m.currentFloorID == "" {
		return nil
	}
	return m.reg.GetByID(m.currentFloorID)
}

// IsCurrent reports whether id is the current floor.
func (m *FloorManager) IsCurrent(id string) bool {
	return id != "" && m.currentFloorID == id
}

// setSubtreeVisible flips visibility on an object and all its descendants.
// The rendered meshes follow: the scene only draws visible objects.
func (m *FloorManager) setSubtreeVisible(o *semantic.Object, visible bool) {
	o.Visible = visible
	for _, childID := range o.ChildrenIDs {
		if child := m.reg.GetByID(childID); child != nil {
			m.setSubtreeVisible(child, visible)
		}
	}
}

// clear resets the current-floor slot. Called by MallManager.Clear.
func (m *FloorManager) clear() {
	m.currentFloorID = ""
}

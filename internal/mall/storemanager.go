// Package mall enforces business invariants on top of the semantic registry:
// a single current floor, a single selected store, and at most one
// highlighted store. One manager set exists per loaded project and is
// constructed fresh on each load.
package mall

import (
	"mall-engine/internal/entities"
	"mall-engine/internal/logger"
	"mall-engine/internal/semantic"
)

// StoreManager owns store lifecycle plus the selection and highlight slots.
// Both slots are single-valued: setting a new id silently replaces the
// previous one. Invalid ids are logged and ignored, never errors, because
// UI interactions race with async loading.
type StoreManager struct {
	reg     *semantic.Registry
	meshes  *semantic.MeshRegistry
	factory *semantic.Factory
	log     *logger.Logger

	selectedID    string
	highlightedID string
}

// NewStoreManager returns a store manager over the given registries.
func NewStoreManager(reg *semantic.Registry, meshes *semantic.MeshRegistry, factory *semantic.Factory, log *logger.Logger) *StoreManager {
	return &StoreManager{reg: reg, meshes: meshes, factory: factory, log: log}
}

// AddStore registers a store (and its products) under the given parent area.
func (m *StoreManager) AddStore(s *entities.Store, parentID string, baseY float32) *semantic.Object {
	obj := m.factory.FromStore(s, parentID, baseY)
	for i := range s.Products {
		m.factory.FromProduct(&s.Products[i], obj)
	}
	return obj
}

// RemoveStore tears a store down in a fixed order: clear the selection and
// highlight slots if they point at it, unbind meshes, then unregister.
// Later steps must not run first or they would free data the earlier steps
// still read. Product children go down with the store. Returns whether the
// id existed.
func (m *StoreManager) RemoveStore(id string) bool {
	obj := m.reg.GetByID(id)
	if obj == nil || obj.Type != semantic.TypeStore {
		m.log.Logf("removeStore: no store with id %s", id)
		return false
	}
	if m.selectedID == id {
		m.selectedID = ""
	}
	if m.highlightedID == id {
		m.highlightedID = ""
	}
	for _, childID := range append([]string(nil), obj.ChildrenIDs...) {
		m.meshes.Unbind(childID)
		m.reg.Unregister(childID)
	}
	m.meshes.Unbind(id)
	m.reg.Unregister(id)
	return true
}

// SelectStore puts the store in the selection slot, replacing any previous
// selection. Unknown ids are a logged no-op.
func (m *StoreManager) SelectStore(id string) {
	obj := m.reg.GetByID(id)
	if obj == nil || obj.Type != semantic.TypeStore {
		m.log.Logf("selectStore: no store with id %s", id)
		return
	}
	m.selectedID = id
}

// DeselectStore empties the selection slot.
func (m *StoreManager) DeselectStore() {
	m.selectedID = ""
}

// SelectedStore returns the selected store, or nil.
func (m *StoreManager) SelectedStore() *semantic.Object {
	if m.selectedID == "" {
		return nil
	}
	return m.reg.GetByID(m.selectedID)
}

// IsSelected reports whether id occupies the selection slot.
func (m *StoreManager) IsSelected(id string) bool {
	return id != "" && m.selectedID == id
}

// HighlightStore puts the store in the highlight slot, replacing any
// previous highlight. Independent of selection. Unknown ids are a logged
// no-op.
func (m *StoreManager) HighlightStore(id string) {
	obj := m.reg.GetByID(id)
	if obj == nil || obj.Type != semantic.TypeStore {
		m.log.Logf("highlightStore: no store with id %s", id)
		return
	}
	m.highlightedID = id
}

// ClearHighlight empties the highlight slot.
func (m *StoreManager) ClearHighlight() {
	m.highlightedID = ""
}

// HighlightedStore returns the highlighted store, or nil.
func (m *StoreManager) HighlightedStore() *semantic.Object {
	if m.highlightedID == "" {
		return nil
	}
	return m.reg.GetByID(m.highlightedID)
}

// clear resets both slots. Called by MallManager.Clear as part of the
// registry+manager reset unit.
func (m *StoreManager) clear() {
	m.selectedID = ""
	m.highlightedID = ""
}

package semantic

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// MeshRegistry is a bidirectional table from semantic id to renderable
// handle. The association is weak: binding never implies lifetime, and
// unregistering a semantic object does not touch its binding. Domain
// managers unbind before unregistering.
type MeshRegistry struct {
	models map[string]rl.Model
}

// NewMeshRegistry returns an empty mesh registry.
func NewMeshRegistry() *MeshRegistry {
	return &MeshRegistry{models: make(map[string]rl.Model)}
}

// Bind associates a renderable model with a semantic id, replacing any
// previous binding for that id.
func (m *MeshRegistry) Bind(semanticID string, model rl.Model) {
	m.models[semanticID] = model
}

// Unbind releases the binding for a semantic id. No-op when none exists.
func (m *MeshRegistry) Unbind(semanticID string) {
	delete(m.models, semanticID)
}

// Get returns the model bound to a semantic id.
func (m *MeshRegistry) Get(semanticID string) (rl.Model, bool) {
	model, ok := m.models[semanticID]
	return model, ok
}

// Count returns the number of live bindings.
func (m *MeshRegistry) Count() int {
	return len(m.models)
}

// Clear drops every binding. Models are not unloaded; their GPU lifetime is
// owned by the geometry cache.
func (m *MeshRegistry) Clear() {
	m.models = make(map[string]rl.Model)
}

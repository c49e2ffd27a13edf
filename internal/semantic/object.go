// Package semantic is the canonical store of meaning in the scene: every
// interactive node is represented by a semantic record (type, business id,
// transform, bounds, hierarchy, visibility) independent of how it is
// rendered. Render bindings live in a separate MeshRegistry so the registry
// never depends on render internals.
package semantic

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Type classifies what a scene node means in the mall domain.
type Type string

const (
	TypeMall       Type = "mall"
	TypeFloor      Type = "floor"
	TypeArea       Type = "area"
	TypeStore      Type = "store"
	TypeProduct    Type = "product"
	TypeEntrance   Type = "entrance"
	TypeCheckout   Type = "checkout"
	TypeDecoration Type = "decoration"
)

// Transform is a node's position, rotation (Euler radians), and scale.
type Transform struct {
	Position rl.Vector3
	Rotation rl.Vector3
	Scale    rl.Vector3
}

// IdentityTransform returns a transform at the origin with unit scale.
func IdentityTransform() Transform {
	return Transform{Scale: rl.NewVector3(1, 1, 1)}
}

// Object is one semantic record. IDs are generated and unique within a
// registry; ParentID/ChildrenIDs address other records by id rather than by
// native reference, so teardown order stays explicit.
type Object struct {
	ID         string
	Type       Type
	BusinessID string
	Transform  Transform
	Bounds     rl.BoundingBox

	// MeshID names the renderable bound to this object, when any. The
	// registry itself never reads it; it exists so callers can round-trip
	// to the MeshRegistry.
	MeshID string

	ParentID    string
	ChildrenIDs []string

	Interactive bool
	Visible     bool

	Metadata map[string]any
}

// WorldPosition returns the object's world position. Satisfies the camera
// package's follow-target interface.
func (o *Object) WorldPosition() rl.Vector3 {
	return o.Transform.Position
}

// Meta returns the metadata value for key, or nil.
func (o *Object) Meta(key string) any {
	if o.Metadata == nil {
		return nil
	}
	return o.Metadata[key]
}

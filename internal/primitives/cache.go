// Package primitives memoizes reusable primitive models keyed by their
// dimensions. Models are generated on first request so GPU resources are
// allocated after the window/GL context exists; the cache is purely
// additive until Dispose tears every entry down at system teardown.
package primitives

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Kind names a primitive shape.
type Kind string

const (
	KindBox      Kind = "box"
	KindPlane    Kind = "plane"
	KindCylinder Kind = "cylinder"
)

// key identifies a cached model: shape plus up to three dimensions.
type key struct {
	kind    Kind
	a, b, c float32
}

// Backend generates and unloads renderable models. The default talks to
// raylib; tests substitute a fake so no GL context is needed.
type Backend interface {
	Generate(kind Kind, a, b, c float32) rl.Model
	Unload(model rl.Model)
}

// raylibBackend builds models from raylib meshes.
type raylibBackend struct{}

// cylinderSlices controls cylinder mesh resolution.
const cylinderSlices = 16

func (raylibBackend) Generate(kind Kind, a, b, c float32) rl.Model {
	switch kind {
	case KindPlane:
		return rl.LoadModelFromMesh(rl.GenMeshPlane(a, b, 1, 1))
	case KindCylinder:
		return rl.LoadModelFromMesh(rl.GenMeshCylinder(a, b, cylinderSlices))
	default:
		return rl.LoadModelFromMesh(rl.GenMeshCube(a, b, c))
	}
}

func (raylibBackend) Unload(model rl.Model) {
	rl.UnloadModel(model)
}

// Cache memoizes models by kind and dimensions.
type Cache struct {
	backend Backend
	models  map[key]rl.Model
}

// NewCache returns a cache over the raylib backend.
func NewCache() *Cache {
	return NewCacheWith(raylibBackend{})
}

// NewCacheWith returns a cache over a custom backend.
func NewCacheWith(b Backend) *Cache {
	return &Cache{backend: b, models: make(map[key]rl.Model)}
}

// Box returns the memoized box model with the given extents.
func (c *Cache) Box(w, h, l float32) rl.Model {
	return c.get(key{KindBox, w, h, l})
}

// Plane returns the memoized plane model (width, length on XZ).
func (c *Cache) Plane(w, l float32) rl.Model {
	return c.get(key{KindPlane, w, l, 0})
}

// Cylinder returns the memoized cylinder model (radius, height).
func (c *Cache) Cylinder(radius, height float32) rl.Model {
	return c.get(key{KindCylinder, radius, height, 0})
}

func (c *Cache) get(k key) rl.Model {
	if m, ok := c.models[k]; ok {
		return m
	}
	m := c.backend.Generate(k.kind, k.a, k.b, k.c)
	c.models[k] = m
	return m
}

// Len returns the number of cached models.
func (c *Cache) Len() int {
	return len(c.models)
}

// Dispose unloads every cached model and empties the cache. Expected to be
// called once at teardown, not interleaved with normal use.
func (c *Cache) Dispose() {
	for k, m := range c.models {
		c.backend.Unload(m)
		delete(c.models, k)
	}
}

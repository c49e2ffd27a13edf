package semantic

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"mall-engine/internal/entities"
)

// Factory builds semantic records from business entities and registers them.
// It owns the mapping from backend geometry (2D outlines on the floor plane,
// heights) to 3D transforms and bounding boxes; it never touches renderables.
type Factory struct {
	reg *Registry
}

// NewFactory returns a factory registering into reg.
func NewFactory(reg *Registry) *Factory {
	return &Factory{reg: reg}
}

// outlineBounds converts a 2D outline plus a vertical extent into a world
// bounding box. Outline Y maps to world Z. ok is false for an empty outline.
func outlineBounds(outline entities.Outline, baseY, height float32) (rl.BoundingBox, bool) {
	min, max, ok := entities.PolygonExtents(outline.Vertices)
	if !ok {
		return rl.BoundingBox{}, false
	}
	return rl.NewBoundingBox(
		rl.NewVector3(float32(min.X), baseY, float32(min.Y)),
		rl.NewVector3(float32(max.X), baseY+height, float32(max.Y)),
	), true
}

// FromMall registers the root object for a project. Its bounds enclose every
// floor outline across the full stacked height.
func (f *Factory) FromMall(m *entities.Mall) *Object {
	var all []entities.Point2
	var totalHeight float32
	for _, fl := range m.Floors {
		all = append(all, fl.Shape.Vertices...)
		totalHeight += float32(fl.Height)
	}
	bounds, _ := outlineBounds(entities.Outline{Vertices: all}, 0, totalHeight)
	return f.reg.Register(Params{
		Type:       TypeMall,
		BusinessID: m.ProjectID,
		Bounds:     bounds,
		Metadata: map[string]any{
			"name":     m.Name,
			"gridSize": m.Settings.GridSize,
		},
	})
}

// FromFloor registers one floor at the given base elevation. The object sits
// at the outline centroid; bounds span the outline footprint up to the floor
// height.
func (f *Factory) FromFloor(fl *entities.Floor, parentID string, baseY float32) *Object {
	center := entities.PolygonCenter(fl.Shape.Vertices)
	bounds, _ := outlineBounds(fl.Shape, baseY, float32(fl.Height))
	return f.reg.Register(Params{
		Type:       TypeFloor,
		BusinessID: fl.FloorID,
		Position:   rl.NewVector3(float32(center.X), baseY, float32(center.Y)),
		Bounds:     bounds,
		ParentID:   parentID,
		Metadata: map[string]any{
			"name":  fl.Name,
			"level": fl.Level,
			"color": fl.Color,
		},
	})
}

// FromArea registers a functional region of a floor as a thin slab on the
// floor plane. Non-shop areas (corridors, elevators, ...) are registered
// non-interactive.
func (f *Factory) FromArea(a *entities.Area, parentID string, baseY float32) *Object {
	const slabHeight = 0.1
	center := entities.PolygonCenter(a.Shape.Vertices)
	bounds, _ := outlineBounds(a.Shape, baseY, slabHeight)
	o := f.reg.Register(Params{
		Type:       TypeArea,
		BusinessID: a.AreaID,
		Position:   rl.NewVector3(float32(center.X), baseY, float32(center.Y)),
		Bounds:     bounds,
		ParentID:   parentID,
		Metadata: map[string]any{
			"name":     a.Name,
			"areaType": a.Type,
			"color":    a.Color,
			"merchant": a.MerchantID,
		},
	})
	if !entities.IsShopArea(a.Type) {
		o.Interactive = false
	}
	return o
}

// FromStore registers a store as a box footprint at its position on the
// floor plane.
func (f *Factory) FromStore(s *entities.Store, parentID string, baseY float32) *Object {
	halfW := float32(s.Width) / 2
	halfD := float32(s.Depth) / 2
	px := float32(s.Position.X)
	pz := float32(s.Position.Y)
	h := float32(s.Height)
	return f.reg.Register(Params{
		Type:       TypeStore,
		BusinessID: s.StoreID,
		Position:   rl.NewVector3(px, baseY, pz),
		Scale:      rl.NewVector3(float32(s.Width), h, float32(s.Depth)),
		Bounds: rl.NewBoundingBox(
			rl.NewVector3(px-halfW, baseY, pz-halfD),
			rl.NewVector3(px+halfW, baseY+h, pz+halfD),
		),
		ParentID: parentID,
		Metadata: map[string]any{
			"name":   s.Name,
			"status": s.Status,
		},
	})
}

// FromProduct registers a product marker under its store. Products have no
// footprint of their own; they inherit the store position.
func (f *Factory) FromProduct(p *entities.Product, store *Object) *Object {
	return f.reg.Register(Params{
		Type:       TypeProduct,
		BusinessID: p.ProductID,
		Position:   store.Transform.Position,
		ParentID:   store.ID,
		Metadata: map[string]any{
			"name":   p.Name,
			"status": p.Status,
			"price":  p.Price,
		},
	})
}

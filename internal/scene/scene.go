// Package scene is the viewer's render and input layer: it binds geometry
// for semantic objects, draws the mall each frame, and translates raw
// raylib input into engine calls.
package scene

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"mall-engine/internal/boundary"
	"mall-engine/internal/engine"
	"mall-engine/internal/engineconfig"
	"mall-engine/internal/entities"
	"mall-engine/internal/pool"
	"mall-engine/internal/primitives"
	"mall-engine/internal/semantic"
)

const (
	gridExtent     = 50
	gridMinorStep  = 1
	gridMajorStep  = 10
	gridMinorAlpha = 50
	gridMajorAlpha = 120
	axisLineAlpha  = 220

	floorSlabThickness = 0.2
	areaSlabThickness  = 0.1
	characterRadius    = 0.4
	characterHeight    = 1.7
)

// Base tints by semantic type; areas refine by business area type.
var (
	floorTint     = rl.NewColor(110, 110, 115, 255)
	storeTint     = rl.NewColor(205, 180, 140, 255)
	productTint   = rl.NewColor(120, 190, 120, 255)
	fallbackTint  = rl.NewColor(160, 160, 160, 255)
	selectedTint  = rl.NewColor(255, 200, 50, 255)
	highlightTint = rl.NewColor(100, 180, 255, 255)
	characterTint = rl.NewColor(230, 90, 70, 255)
	wallTint      = rl.NewColor(200, 200, 210, 90)
)

var areaTints = map[string]rl.Color{
	entities.AreaRetail:    rl.NewColor(140, 170, 200, 255),
	entities.AreaFood:      rl.NewColor(220, 160, 110, 255),
	entities.AreaCorridor:  rl.NewColor(90, 90, 95, 255),
	entities.AreaElevator:  rl.NewColor(170, 140, 190, 255),
	entities.AreaEscalator: rl.NewColor(170, 140, 190, 255),
	entities.AreaRestroom:  rl.NewColor(130, 190, 180, 255),
}

// Scene draws the loaded mall and feeds input to the engine. Geometry is
// bound lazily on first draw so loading never touches the GPU off the main
// thread.
type Scene struct {
	eng         *engine.Engine
	cache       *primitives.Cache
	nodes       *pool.NodePool
	frame       []*pool.Node
	GridVisible bool
	cursorDone  bool
}

// New returns a scene over the engine using the shared geometry cache.
func New(eng *engine.Engine, cache *primitives.Cache, cfg engineconfig.Config) *Scene {
	return &Scene{
		eng:         eng,
		cache:       cache,
		nodes:       pool.NewNodePool(cfg.PoolCapacity),
		GridVisible: cfg.GridVisible,
	}
}

// SetGridVisible toggles the editor grid.
func (s *Scene) SetGridVisible(visible bool) {
	s.GridVisible = visible
}

// Update gathers this frame's input and advances the engine. active is
// false while the console owns the keyboard.
func (s *Scene) Update(dt float32, active bool) {
	if !s.cursorDone {
		rl.DisableCursor()
		s.cursorDone = true
	}
	in := boundary.MoveInput{}
	if active {
		// Branch on the transition destination so Tab mid-transition
		// reverses instead of re-entering the same mode.
		if rl.IsKeyPressed(rl.KeyTab) {
			if s.eng.TargetMode() == engine.ModeBuild {
				s.eng.EnterRoam()
			} else {
				s.eng.EnterBuild()
			}
		}
		delta := rl.GetMouseDelta()
		switch s.eng.Mode() {
		case engine.ModeRoam:
			s.eng.PointerDelta(delta.X, delta.Y)
			in = boundary.MoveInput{
				Forward:  rl.IsKeyDown(rl.KeyW),
				Backward: rl.IsKeyDown(rl.KeyS),
				Left:     rl.IsKeyDown(rl.KeyA),
				Right:    rl.IsKeyDown(rl.KeyD),
			}
		default:
			if rl.IsMouseButtonDown(rl.MouseRightButton) {
				s.eng.PointerDelta(delta.X, delta.Y)
			}
			if rl.IsMouseButtonDown(rl.MouseMiddleButton) {
				s.eng.Pan(delta.X, delta.Y)
			}
			s.eng.Zoom(rl.GetMouseWheelMove())
			s.pick()
		}
	}
	s.eng.Update(dt, in)
}

// pick runs hover highlight every frame and selection on left click.
func (s *Scene) pick() {
	ray := rl.GetScreenToWorldRay(rl.GetMousePosition(), *s.eng.Camera())
	hit := s.eng.PickStore(ray)
	if hit != nil {
		s.eng.HighlightStore(hit.ID)
	} else {
		s.eng.ClearHighlight()
	}
	if rl.IsMouseButtonPressed(rl.MouseLeftButton) {
		if hit != nil {
			s.eng.SelectStore(hit.ID)
		} else {
			s.eng.DeselectStore()
		}
	}
}

// Draw renders the 3D scene. Call between ClearBackground and the 2D overlay.
func (s *Scene) Draw() {
	rl.BeginMode3D(*s.eng.Camera())
	if s.GridVisible {
		drawEditorGrid()
	}
	s.drawObjects()
	s.drawBoundaryWalls()
	if s.eng.Mode() == engine.ModeRoam {
		s.drawCharacter()
	}
	rl.EndMode3D()
}

// drawObjects binds geometry lazily, builds this frame's draw list from the
// node pool, draws it, and releases the nodes. The selected store
// additionally gets a wireframe box.
func (s *Scene) drawObjects() {
	selected := s.eng.SelectedStore()
	highlighted := s.eng.HighlightedStore()
	meshes := s.eng.Meshes()

	s.frame = s.frame[:0]
	for _, obj := range s.eng.Query(semantic.Filter{}) {
		if !obj.Visible || obj.Type == semantic.TypeMall {
			continue
		}
		model, ok := meshes.Get(obj.ID)
		if !ok {
			model = s.bindGeometry(obj)
		}
		node := s.nodes.Acquire()
		node.Model, node.HasModel = model, true
		node.Position = nodePosition(obj)
		node.Tint = tintFor(obj, selected, highlighted)
		s.frame = append(s.frame, node)
	}

	for _, node := range s.frame {
		rl.DrawModel(node.Model, node.Position, 1, node.Tint)
	}
	if selected != nil {
		rl.DrawBoundingBox(selected.Bounds, selectedTint)
	}
	for _, node := range s.frame {
		s.nodes.Release(node)
	}
}

// bindGeometry builds a cached model sized to the object's bounds and
// registers the binding.
func (s *Scene) bindGeometry(obj *semantic.Object) rl.Model {
	w := obj.Bounds.Max.X - obj.Bounds.Min.X
	h := obj.Bounds.Max.Y - obj.Bounds.Min.Y
	l := obj.Bounds.Max.Z - obj.Bounds.Min.Z
	var model rl.Model
	switch obj.Type {
	case semantic.TypeFloor:
		model = s.cache.Box(w, floorSlabThickness, l)
	case semantic.TypeArea:
		model = s.cache.Box(w, areaSlabThickness, l)
	case semantic.TypeProduct:
		model = s.cache.Cylinder(0.15, 0.3)
	default:
		model = s.cache.Box(w, h, l)
	}
	s.eng.Meshes().Bind(obj.ID, model)
	return model
}

// drawBoundaryWalls outlines the current floor's walkable shape as
// wireframe walls up to the floor height.
func (s *Scene) drawBoundaryWalls() {
	floor := s.eng.CurrentFloor()
	project := s.eng.Project()
	if floor == nil || project == nil {
		return
	}
	fl := project.FloorByID(floor.BusinessID)
	if fl == nil || len(fl.Shape.Vertices) < 3 {
		return
	}
	baseY := floor.Transform.Position.Y
	topY := baseY + float32(fl.Height)
	n := len(fl.Shape.Vertices)
	for i := 0; i < n; i++ {
		a := fl.Shape.Vertices[i]
		b := fl.Shape.Vertices[(i+1)%n]
		pa := rl.NewVector3(float32(a.X), baseY, float32(a.Y))
		pb := rl.NewVector3(float32(b.X), baseY, float32(b.Y))
		ta := rl.NewVector3(float32(a.X), topY, float32(a.Y))
		tb := rl.NewVector3(float32(b.X), topY, float32(b.Y))
		rl.DrawLine3D(pa, pb, wallTint)
		rl.DrawLine3D(ta, tb, wallTint)
		rl.DrawLine3D(pa, ta, wallTint)
	}
}

func (s *Scene) drawCharacter() {
	pos := s.eng.Character().Position
	rl.DrawCylinder(pos, characterRadius, characterRadius, characterHeight, 12, characterTint)
}

// tintFor picks the draw color: selection wins over highlight, which wins
// over the type's base tint.
func tintFor(obj, selected, highlighted *semantic.Object) rl.Color {
	if obj == selected {
		return selectedTint
	}
	if obj == highlighted {
		return highlightTint
	}
	switch obj.Type {
	case semantic.TypeFloor:
		return floorTint
	case semantic.TypeArea:
		if t, ok := obj.Meta("areaType").(string); ok {
			if c, found := areaTints[t]; found {
				return c
			}
		}
		return fallbackTint
	case semantic.TypeStore:
		return storeTint
	case semantic.TypeProduct:
		return productTint
	default:
		return fallbackTint
	}
}

// nodePosition places a node so its model geometry lines up with the
// object. Floor bounds span the full floor height but render as a thin
// slab, so the slab sits on the floor base rather than at the bounds
// center. Products carry no bounds of their own and draw at their
// transform (the store position).
func nodePosition(obj *semantic.Object) rl.Vector3 {
	switch obj.Type {
	case semantic.TypeFloor:
		c := boundsCenter(obj.Bounds)
		return rl.NewVector3(c.X, obj.Bounds.Min.Y+floorSlabThickness/2, c.Z)
	case semantic.TypeProduct:
		return obj.Transform.Position
	default:
		return boundsCenter(obj.Bounds)
	}
}

func boundsCenter(b rl.BoundingBox) rl.Vector3 {
	return rl.NewVector3(
		(b.Min.X+b.Max.X)/2,
		(b.Min.Y+b.Max.Y)/2,
		(b.Min.Z+b.Max.Z)/2,
	)
}

// drawEditorGrid draws a grid on the XZ plane with major/minor lines and
// axis lines. Reuses start/end vectors to avoid per-frame allocations.
func drawEditorGrid() {
	minor := rl.NewColor(128, 128, 128, gridMinorAlpha)
	major := rl.NewColor(160, 160, 160, gridMajorAlpha)
	axisX := rl.NewColor(220, 80, 80, axisLineAlpha)
	axisY := rl.NewColor(80, 220, 80, axisLineAlpha)
	axisZ := rl.NewColor(80, 80, 220, axisLineAlpha)

	var start, end rl.Vector3
	for x := -gridExtent; x <= gridExtent; x += gridMinorStep {
		c := major
		if x%gridMajorStep != 0 {
			c = minor
		}
		start.X, start.Y, start.Z = float32(x), 0, float32(-gridExtent)
		end.X, end.Y, end.Z = float32(x), 0, float32(gridExtent)
		rl.DrawLine3D(start, end, c)
	}
	for z := -gridExtent; z <= gridExtent; z += gridMinorStep {
		c := major
		if z%gridMajorStep != 0 {
			c = minor
		}
		start.X, start.Y, start.Z = float32(-gridExtent), 0, float32(z)
		end.X, end.Y, end.Z = float32(gridExtent), 0, float32(z)
		rl.DrawLine3D(start, end, c)
	}

	start.X, start.Y, start.Z = float32(-gridExtent), 0, 0
	end.X, end.Y, end.Z = float32(gridExtent), 0, 0
	rl.DrawLine3D(start, end, axisX)
	start.X, start.Y, start.Z = 0, float32(-gridExtent), 0
	end.X, end.Y, end.Z = 0, float32(gridExtent), 0
	rl.DrawLine3D(start, end, axisY)
	start.X, start.Y, start.Z = 0, 0, float32(-gridExtent)
	end.X, end.Y, end.Z = 0, 0, float32(gridExtent)
	rl.DrawLine3D(start, end, axisZ)
}

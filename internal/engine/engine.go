// Package engine is the external surface of the 3D scene interaction
// engine: it composes the registries, domain managers, history, boundary
// collision, and camera subsystem behind one handle, leaving rendering and
// persistence to the host.
package engine

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/tanema/gween/ease"

	"mall-engine/internal/boundary"
	"mall-engine/internal/camera"
	"mall-engine/internal/engineconfig"
	"mall-engine/internal/entities"
	"mall-engine/internal/history"
	"mall-engine/internal/logger"
	"mall-engine/internal/mall"
	"mall-engine/internal/semantic"
)

// Mode selects which controller drives the camera. The two are never both
// active in the same frame.
type Mode int

const (
	// ModeBuild is free-orbit editing.
	ModeBuild Mode = iota
	// ModeRoam is third-person character roaming.
	ModeRoam
)

// transitionDuration is the length of the animated build/roam camera move.
const transitionDuration = 0.8

// Engine owns one loaded project's scene state.
type Engine struct {
	cfg engineconfig.Config
	log *logger.Logger

	reg    *semantic.Registry
	meshes *semantic.MeshRegistry
	mall   *mall.MallManager
	hist   *history.Manager

	character *boundary.Character

	cam      rl.Camera3D
	animator *camera.Animator
	orbit    *camera.OrbitController
	follow   *camera.FollowController

	mode    Mode
	pending Mode // destination of the in-flight transition, valid while the animator is active
	project *entities.Mall
}

// New wires an engine from configuration. The camera starts in build mode
// at a standard editing vantage.
func New(cfg engineconfig.Config, log *logger.Logger) *Engine {
	reg := semantic.NewRegistry()
	meshes := semantic.NewMeshRegistry()
	e := &Engine{
		cfg:       cfg,
		log:       log,
		reg:       reg,
		meshes:    meshes,
		mall:      mall.NewMallManager(reg, meshes, log),
		hist:      history.New(cfg.HistoryMax),
		character: boundary.NewCharacter(cfg.CollisionRadius, cfg.MoveSpeed, cfg.TurnLerp),
		cam: rl.Camera3D{
			Position:   rl.NewVector3(30, 30, 30),
			Target:     rl.NewVector3(0, 0, 0),
			Up:         rl.NewVector3(0, 1, 0),
			Fovy:       45,
			Projection: rl.CameraPerspective,
		},
		mode: ModeBuild,
	}
	e.animator = camera.NewAnimator(&e.cam)
	e.orbit = camera.NewOrbitController(&e.cam, cfg.Orbit)
	e.follow = camera.NewFollowController(&e.cam, cfg.Follow)
	return e
}

// Camera returns the shared camera handle for rendering.
func (e *Engine) Camera() *rl.Camera3D {
	return &e.cam
}

// Registry exposes read-only semantic queries to the presentation layer.
func (e *Engine) Registry() *semantic.Registry {
	return e.reg
}

// Meshes exposes the render-binding table.
func (e *Engine) Meshes() *semantic.MeshRegistry {
	return e.meshes
}

// Character returns the roaming avatar.
func (e *Engine) Character() *boundary.Character {
	return e.character
}

// Mode returns the active camera mode.
func (e *Engine) Mode() Mode {
	return e.mode
}

// TargetMode returns the mode the camera is heading for: the transition
// destination while one is in flight, the settled mode otherwise. Toggle
// input should branch on this so a second toggle mid-transition reverses
// direction instead of re-entering the same one.
func (e *Engine) TargetMode() Mode {
	if e.animator.Active() {
		return e.pending
	}
	return e.mode
}

// Project returns the loaded project document, or nil.
func (e *Engine) Project() *entities.Mall {
	return e.project
}

// --- Loading ---

// LoadMall replaces any loaded project with the given payload and returns
// the root semantic object. The walkable boundary and the character spawn
// follow the current floor, and the load state becomes the first history
// checkpoint.
func (e *Engine) LoadMall(project *entities.Mall) *semantic.Object {
	e.mall.Clear()
	e.hist.Clear()
	e.project = project
	root := e.mall.LoadMall(project)
	e.syncFloorState()
	e.hist.Push(project)
	return root
}

// applyProject rebuilds the scene from a history snapshot without touching
// the history stack itself.
func (e *Engine) applyProject(project *entities.Mall) {
	e.mall.Clear()
	e.project = project
	e.mall.LoadMall(project)
	e.syncFloorState()
}

// syncFloorState points the walkable boundary and character spawn at the
// current floor's outline.
func (e *Engine) syncFloorState() {
	current := e.mall.Floors.CurrentFloor()
	if current == nil || e.project == nil {
		e.character.SetBoundary(entities.Outline{})
		return
	}
	fl := e.project.FloorByID(current.BusinessID)
	if fl == nil {
		e.character.SetBoundary(entities.Outline{})
		return
	}
	e.character.SetBoundary(fl.Shape)
	center := entities.PolygonCenter(fl.Shape.Vertices)
	e.character.SetPosition(rl.NewVector3(
		float32(center.X),
		current.Transform.Position.Y,
		float32(center.Y),
	))
	e.orbit.SetTarget(current.Transform.Position)
}

// --- Queries ---

// GetByID returns the semantic object with the given id, or nil.
func (e *Engine) GetByID(id string) *semantic.Object {
	return e.reg.GetByID(id)
}

// GetByBusinessID returns the object bound to a business entity, or nil.
func (e *Engine) GetByBusinessID(businessID string, typ semantic.Type) *semantic.Object {
	return e.reg.GetByBusinessID(businessID, typ)
}

// GetByType returns all objects of a semantic type.
func (e *Engine) GetByType(typ semantic.Type) []*semantic.Object {
	return e.reg.GetByType(typ)
}

// Query runs a filtered registry query.
func (e *Engine) Query(f semantic.Filter) []*semantic.Object {
	return e.reg.Query(f)
}

// --- Mutators (idempotent, invalid ids are logged no-ops) ---

// SelectStore puts a store in the selection slot.
func (e *Engine) SelectStore(id string) { e.mall.Stores.SelectStore(id) }

// DeselectStore empties the selection slot.
func (e *Engine) DeselectStore() { e.mall.Stores.DeselectStore() }

// SelectedStore returns the selected store, or nil.
func (e *Engine) SelectedStore() *semantic.Object { return e.mall.Stores.SelectedStore() }

// HighlightStore puts a store in the highlight slot.
func (e *Engine) HighlightStore(id string) { e.mall.Stores.HighlightStore(id) }

// ClearHighlight empties the highlight slot.
func (e *Engine) ClearHighlight() { e.mall.Stores.ClearHighlight() }

// HighlightedStore returns the highlighted store, or nil.
func (e *Engine) HighlightedStore() *semantic.Object { return e.mall.Stores.HighlightedStore() }

// RemoveStore tears down a store and its products.
func (e *Engine) RemoveStore(id string) bool { return e.mall.Stores.RemoveStore(id) }

// SetCurrentFloor switches the visible floor and moves the walkable
// boundary and character spawn with it.
func (e *Engine) SetCurrentFloor(id string) {
	e.mall.Floors.SetCurrentFloor(id)
	e.syncFloorState()
}

// CurrentFloor returns the current floor, or nil.
func (e *Engine) CurrentFloor() *semantic.Object { return e.mall.Floors.CurrentFloor() }

// --- History ---

// PushHistory records the current project as an undo checkpoint and returns
// it, or nil when no project is loaded.
func (e *Engine) PushHistory() *entities.Mall {
	if e.project == nil {
		return nil
	}
	e.hist.Push(e.project)
	return e.project
}

// Undo steps back one checkpoint, rebuilds the scene from it, and returns
// the resulting project, or nil when there is nothing to undo.
func (e *Engine) Undo() *entities.Mall {
	snap := e.hist.Undo()
	if snap == nil {
		return nil
	}
	e.applyProject(snap)
	return snap
}

// Redo steps forward one checkpoint, rebuilds the scene from it, and
// returns the resulting project, or nil when there is nothing to redo.
func (e *Engine) Redo() *entities.Mall {
	snap := e.hist.Redo()
	if snap == nil {
		return nil
	}
	e.applyProject(snap)
	return snap
}

// CanUndo reports whether an undo step is available.
func (e *Engine) CanUndo() bool { return e.hist.CanUndo() }

// CanRedo reports whether a redo step is available.
func (e *Engine) CanRedo() bool { return e.hist.CanRedo() }

// ClearHistory drops every checkpoint. The loaded scene is untouched, so
// callers usually follow with PushHistory to re-anchor undo.
func (e *Engine) ClearHistory() {
	e.hist.Clear()
}

// HistoryCount returns the number of stored checkpoints.
func (e *Engine) HistoryCount() int { return e.hist.Count() }

// --- Boundary / movement ---

// SetBoundary replaces the walkable outline directly, overriding the
// current floor's shape until the next floor switch.
func (e *Engine) SetBoundary(points []entities.Point2) {
	e.character.SetBoundary(entities.Outline{Vertices: points, IsClosed: true})
}

// --- Camera ---

// EnterRoam animates the camera from its current placement down behind the
// character, then hands control to the follow controller. Called while a
// transition toward build is in flight, it reverses from the current
// camera pose; called while already heading to roam, it is a no-op.
func (e *Engine) EnterRoam() {
	if e.TargetMode() == ModeRoam {
		return
	}
	pos := e.character.Position
	yaw := e.character.Heading
	// Land exactly on the follow controller's ideal placement for the
	// starting pitch so the handoff does not pop.
	horiz := e.cfg.Follow.Distance * math32.Cos(camera.DefaultPitch)
	behind := rl.NewVector3(
		pos.X-horiz*math32.Sin(yaw),
		pos.Y+e.cfg.Follow.Distance*math32.Sin(camera.DefaultPitch)+e.cfg.Follow.HeightBias,
		pos.Z-horiz*math32.Cos(yaw),
	)
	head := rl.NewVector3(pos.X, pos.Y+e.cfg.Follow.HeadOffset, pos.Z)
	e.follow.SetTarget(e.character)
	e.follow.SetAngles(yaw, camera.DefaultPitch)
	e.pending = ModeRoam
	e.animator.AnimateTo(behind, head, transitionDuration, ease.InOutQuad, func() {
		e.mode = ModeRoam
	})
}

// EnterBuild animates the camera back up to the editing vantage over the
// current floor and hands control to the orbit controller. Mid-transition
// calls follow the same reversal rules as EnterRoam.
func (e *Engine) EnterBuild() {
	if e.TargetMode() == ModeBuild {
		return
	}
	e.follow.SetTarget(nil)
	target := rl.NewVector3(0, 0, 0)
	if floor := e.mall.Floors.CurrentFloor(); floor != nil {
		target = floor.Transform.Position
	}
	vantage := rl.NewVector3(target.X+25, target.Y+30, target.Z+25)
	e.pending = ModeBuild
	e.animator.AnimateTo(vantage, target, transitionDuration, ease.InOutQuad, func() {
		e.mode = ModeBuild
		e.orbit.SetTarget(target)
	})
}

// PointerDelta routes pointer movement to whichever controller owns the
// camera this frame.
func (e *Engine) PointerDelta(dx, dy float32) {
	if e.animator.Active() {
		return
	}
	switch e.mode {
	case ModeRoam:
		e.follow.HandlePointerDelta(dx, dy)
	default:
		e.orbit.Rotate(dx, dy)
	}
}

// Zoom forwards wheel input to the orbit controller in build mode.
func (e *Engine) Zoom(delta float32) {
	if e.mode == ModeBuild && !e.animator.Active() {
		e.orbit.Zoom(delta)
	}
}

// Pan forwards drag input to the orbit controller in build mode.
func (e *Engine) Pan(dx, dy float32) {
	if e.mode == ModeBuild && !e.animator.Active() {
		e.orbit.Pan(dx, dy)
	}
}

// Update advances one frame: an in-flight camera animation takes priority;
// otherwise the mode's controller runs, and in roam mode the character
// moves first so the follow camera chases fresh state.
func (e *Engine) Update(dt float32, in boundary.MoveInput) {
	if e.animator.Update(dt) {
		return
	}
	switch e.mode {
	case ModeRoam:
		e.character.Move(in, e.follow.Yaw(), dt)
		e.follow.Update(dt)
	default:
		e.orbit.Update(dt)
	}
}

// PickStore returns the nearest visible, interactive store whose bounds the
// ray hits, or nil.
func (e *Engine) PickStore(ray rl.Ray) *semantic.Object {
	var best *semantic.Object
	bestDist := float32(math32.MaxFloat32)
	for _, store := range e.reg.GetByType(semantic.TypeStore) {
		if !store.Visible || !store.Interactive {
			continue
		}
		if dist, hit := rayHitsBox(ray, store.Bounds); hit && dist < bestDist {
			best = store
			bestDist = dist
		}
	}
	return best
}

// rayHitsBox is a slab-method ray/AABB intersection returning the entry
// distance along the ray.
func rayHitsBox(ray rl.Ray, box rl.BoundingBox) (float32, bool) {
	tmin := float32(0)
	tmax := float32(math32.MaxFloat32)

	origin := [3]float32{ray.Position.X, ray.Position.Y, ray.Position.Z}
	dir := [3]float32{ray.Direction.X, ray.Direction.Y, ray.Direction.Z}
	lo := [3]float32{box.Min.X, box.Min.Y, box.Min.Z}
	hi := [3]float32{box.Max.X, box.Max.Y, box.Max.Z}

	for i := 0; i < 3; i++ {
		if math32.Abs(dir[i]) < 1e-8 {
			if origin[i] < lo[i] || origin[i] > hi[i] {
				return 0, false
			}
			continue
		}
		inv := 1 / dir[i]
		t1 := (lo[i] - origin[i]) * inv
		t2 := (hi[i] - origin[i]) * inv
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		if t1 > tmin {
			tmin = t1
		}
		if t2 < tmax {
			tmax = t2
		}
		if tmin > tmax {
			return 0, false
		}
	}
	return tmin, true
}

// Dispose tears the engine down: managers and registries reset, camera
// controllers released. The geometry cache is owned by the host and
// disposed there.
func (e *Engine) Dispose() {
	e.animator.Stop()
	e.orbit.Dispose()
	e.follow.Dispose()
	e.mall.Clear()
	e.hist.Clear()
	e.project = nil
}

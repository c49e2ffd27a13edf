package engine

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"

	"mall-engine/internal/boundary"
	"mall-engine/internal/engineconfig"
	"mall-engine/internal/entities"
	"mall-engine/internal/logger"
	"mall-engine/internal/semantic"
)

func rect(w, h float64) entities.Outline {
	return entities.Outline{
		Vertices: []entities.Point2{{X: 0, Y: 0}, {X: w, Y: 0}, {X: w, Y: h}, {X: 0, Y: h}},
		IsClosed: true,
	}
}

func sampleProject() *entities.Mall {
	return &entities.Mall{
		ProjectID: "p1",
		Name:      "Test Mall",
		Floors: []entities.Floor{
			{
				FloorID: "f2", Name: "Second", Level: 2, Height: 4, Shape: rect(40, 30),
			},
			{
				FloorID: "f1", Name: "Ground", Level: 1, Height: 4, Shape: rect(40, 30),
				Areas: []entities.Area{
					{
						AreaID: "a1", Name: "Retail Wing", Type: entities.AreaRetail, Shape: rect(20, 30),
						Stores: []entities.Store{
							{
								StoreID: "s1", Name: "Coffee", Status: entities.StoreActive,
								Position: entities.Point2{X: 5, Y: 5}, Width: 4, Depth: 4, Height: 3,
							},
							{
								StoreID: "s2", Name: "Books", Status: entities.StoreActive,
								Position: entities.Point2{X: 12, Y: 5}, Width: 6, Depth: 4, Height: 3,
							},
						},
					},
				},
			},
		},
	}
}

func newEngine(t *testing.T) *Engine {
	t.Helper()
	return New(engineconfig.Default(), logger.New())
}

func loadedEngine(t *testing.T) *Engine {
	t.Helper()
	e := newEngine(t)
	if root := e.LoadMall(sampleProject()); root == nil {
		t.Fatal("LoadMall returned nil root")
	}
	return e
}

func TestLoadMallBuildsScene(t *testing.T) {
	e := loadedEngine(t)
	if got := len(e.GetByType(semantic.TypeStore)); got != 2 {
		t.Fatalf("store count = %d, want 2", got)
	}
	floor := e.CurrentFloor()
	if floor == nil || floor.BusinessID != "f1" {
		t.Fatalf("current floor = %+v, want f1", floor)
	}
	if e.HistoryCount() != 1 {
		t.Errorf("history count after load = %d, want 1", e.HistoryCount())
	}
	if e.CanUndo() {
		t.Error("CanUndo true right after load")
	}
}

func TestLoadMallSpawnsCharacterOnFloor(t *testing.T) {
	e := loadedEngine(t)
	pos := e.Character().Position
	if pos.X != 20 || pos.Z != 15 {
		t.Errorf("spawn = (%v, %v), want floor center (20, 15)", pos.X, pos.Z)
	}
}

func TestSelectionDelegation(t *testing.T) {
	e := loadedEngine(t)
	s1 := e.GetByBusinessID("s1", semantic.TypeStore)
	e.SelectStore(s1.ID)
	if got := e.SelectedStore(); got != s1 {
		t.Fatalf("selected = %v, want s1", got)
	}
	e.HighlightStore(s1.ID)
	e.DeselectStore()
	if e.SelectedStore() != nil {
		t.Error("selection survived DeselectStore")
	}
	if e.HighlightedStore() != s1 {
		t.Error("highlight did not survive deselect")
	}
	e.ClearHighlight()
	if e.HighlightedStore() != nil {
		t.Error("highlight survived ClearHighlight")
	}
}

func TestUndoRestoresScene(t *testing.T) {
	e := loadedEngine(t)

	// Mutate the document and the scene together, then checkpoint.
	project := e.Project()
	area := &project.Floors[1].Areas[0]
	area.Stores = area.Stores[:1] // drop s2
	s2 := e.GetByBusinessID("s2", semantic.TypeStore)
	e.RemoveStore(s2.ID)
	e.PushHistory()

	if got := len(e.GetByType(semantic.TypeStore)); got != 1 {
		t.Fatalf("store count after removal = %d, want 1", got)
	}

	restored := e.Undo()
	if restored == nil {
		t.Fatal("Undo returned nil with a checkpoint available")
	}
	if got := len(e.GetByType(semantic.TypeStore)); got != 2 {
		t.Errorf("store count after undo = %d, want 2", got)
	}
	if e.GetByBusinessID("s2", semantic.TypeStore) == nil {
		t.Error("s2 not rebuilt by undo")
	}

	if again := e.Undo(); again != nil {
		t.Error("Undo past the load checkpoint returned a project")
	}

	redone := e.Redo()
	if redone == nil {
		t.Fatal("Redo returned nil after undo")
	}
	if got := len(e.GetByType(semantic.TypeStore)); got != 1 {
		t.Errorf("store count after redo = %d, want 1", got)
	}

	e.ClearHistory()
	if e.CanUndo() || e.CanRedo() || e.HistoryCount() != 0 {
		t.Error("ClearHistory left checkpoints behind")
	}
}

func TestSetCurrentFloorMovesBoundary(t *testing.T) {
	e := loadedEngine(t)
	f2 := e.GetByBusinessID("f2", semantic.TypeFloor)
	e.SetCurrentFloor(f2.ID)
	if got := e.CurrentFloor(); got != f2 {
		t.Fatalf("current floor = %v, want f2", got)
	}
	// Character respawns at the new floor's center, at its base height.
	pos := e.Character().Position
	if pos.X != 20 || pos.Z != 15 {
		t.Errorf("respawn = (%v, %v), want (20, 15)", pos.X, pos.Z)
	}
	if pos.Y != f2.Transform.Position.Y {
		t.Errorf("respawn height = %v, want %v", pos.Y, f2.Transform.Position.Y)
	}
}

func TestRoamTransitionAndMovement(t *testing.T) {
	e := loadedEngine(t)
	e.EnterRoam()
	if e.Mode() != ModeBuild {
		t.Fatal("mode switched before the transition finished")
	}

	// The animation takes transitionDuration seconds of simulated time.
	for i := 0; i < 120; i++ {
		e.Update(1.0/60, boundary.MoveInput{})
	}
	if e.Mode() != ModeRoam {
		t.Fatal("mode did not switch to roam after the transition")
	}

	before := e.Character().Position
	for i := 0; i < 30; i++ {
		e.Update(1.0/60, boundary.MoveInput{Forward: true})
	}
	after := e.Character().Position
	if before.X == after.X && before.Z == after.Z {
		t.Error("character did not move in roam mode")
	}

	e.EnterBuild()
	for i := 0; i < 120; i++ {
		e.Update(1.0/60, boundary.MoveInput{})
	}
	if e.Mode() != ModeBuild {
		t.Error("mode did not switch back to build")
	}
}

func TestToggleMidTransitionReverses(t *testing.T) {
	e := loadedEngine(t)
	e.EnterRoam()
	if e.TargetMode() != ModeRoam {
		t.Fatalf("target mode = %v, want roam", e.TargetMode())
	}

	// Partway through, toggle back. The destination must flip to build
	// and the camera must settle there.
	for i := 0; i < 12; i++ {
		e.Update(1.0/60, boundary.MoveInput{})
	}
	e.EnterBuild()
	if e.TargetMode() != ModeBuild {
		t.Fatalf("target mode after reversal = %v, want build", e.TargetMode())
	}
	for i := 0; i < 120; i++ {
		e.Update(1.0/60, boundary.MoveInput{})
	}
	if e.Mode() != ModeBuild {
		t.Errorf("mode = %v, want build after reversed transition", e.Mode())
	}
}

func TestRepeatedEnterRoamDoesNotRestartTransition(t *testing.T) {
	e := loadedEngine(t)
	e.EnterRoam()

	// Advance half the transition, re-enter the same direction, then run
	// just past the remaining half. A restarted animation would still be
	// mid-flight at that point.
	for i := 0; i < 30; i++ {
		e.Update(1.0/60, boundary.MoveInput{})
	}
	e.EnterRoam()
	for i := 0; i < 30; i++ {
		e.Update(1.0/60, boundary.MoveInput{})
	}
	if e.Mode() != ModeRoam {
		t.Error("redundant EnterRoam restarted the in-flight transition")
	}
}

func TestPointerRoutingIgnoredDuringAnimation(t *testing.T) {
	e := loadedEngine(t)
	e.EnterRoam()
	before := *e.Camera()
	e.PointerDelta(50, 50)
	e.Update(0, boundary.MoveInput{})
	after := *e.Camera()
	if before.Position != after.Position {
		t.Error("pointer input moved the camera mid-animation")
	}
}

func TestPickStore(t *testing.T) {
	e := loadedEngine(t)
	s1 := e.GetByBusinessID("s1", semantic.TypeStore)

	// Straight down through s1's footprint center.
	ray := rl.Ray{
		Position:  rl.NewVector3(5, 50, 5),
		Direction: rl.NewVector3(0, -1, 0),
	}
	if got := e.PickStore(ray); got != s1 {
		t.Fatalf("picked %v, want s1", got)
	}

	// Down through empty corridor space.
	miss := rl.Ray{
		Position:  rl.NewVector3(35, 50, 25),
		Direction: rl.NewVector3(0, -1, 0),
	}
	if got := e.PickStore(miss); got != nil {
		t.Errorf("picked %v on a miss ray", got)
	}

	// Hidden stores are not pickable.
	s1.Visible = false
	if got := e.PickStore(ray); got != nil {
		t.Errorf("picked hidden store %v", got)
	}
}

func TestPickStoreNearest(t *testing.T) {
	e := loadedEngine(t)
	s1 := e.GetByBusinessID("s1", semantic.TypeStore)
	s2 := e.GetByBusinessID("s2", semantic.TypeStore)

	// A ray along +X at store height crosses s1 (x 3..7) then s2 (x 9..15).
	ray := rl.Ray{
		Position:  rl.NewVector3(-10, 1, 5),
		Direction: rl.NewVector3(1, 0, 0),
	}
	if got := e.PickStore(ray); got != s1 {
		t.Fatalf("picked %v, want nearer store s1", got)
	}
	s1.Visible = false
	if got := e.PickStore(ray); got != s2 {
		t.Errorf("picked %v, want s2 once s1 hidden", got)
	}
}

func TestSetBoundaryOverride(t *testing.T) {
	e := loadedEngine(t)
	// A tiny box around the spawn point; walking forward far should clamp.
	e.SetBoundary([]entities.Point2{{X: 19, Y: 14}, {X: 21, Y: 14}, {X: 21, Y: 16}, {X: 19, Y: 16}})
	e.EnterRoam()
	for i := 0; i < 120; i++ {
		e.Update(1.0/60, boundary.MoveInput{})
	}
	for i := 0; i < 300; i++ {
		e.Update(1.0/60, boundary.MoveInput{Forward: true})
	}
	pos := e.Character().Position
	if pos.X < 18 || pos.X > 22 || pos.Z < 13 || pos.Z > 17 {
		t.Errorf("character escaped the boundary: (%v, %v)", pos.X, pos.Z)
	}
}

func TestDispose(t *testing.T) {
	e := loadedEngine(t)
	e.Dispose()
	if e.Registry().Count() != 0 {
		t.Error("registry not empty after Dispose")
	}
	if e.Project() != nil {
		t.Error("project still set after Dispose")
	}
	if e.HistoryCount() != 0 {
		t.Error("history not cleared by Dispose")
	}
}

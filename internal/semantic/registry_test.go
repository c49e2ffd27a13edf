package semantic

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"

	"mall-engine/internal/entities"
)

func TestRegisterAssignsFreshIDs(t *testing.T) {
	r := NewRegistry()
	a := r.Register(Params{Type: TypeStore, BusinessID: "s1"})
	b := r.Register(Params{Type: TypeStore, BusinessID: "s2"})
	if a.ID == "" || b.ID == "" {
		t.Fatal("ids must be non-empty")
	}
	if a.ID == b.ID {
		t.Fatalf("ids must be unique, both %q", a.ID)
	}
}

func TestRegisterDefaults(t *testing.T) {
	r := NewRegistry()
	o := r.Register(Params{Type: TypeStore})
	if !o.Interactive || !o.Visible {
		t.Errorf("interactive=%v visible=%v, want both true", o.Interactive, o.Visible)
	}
	if o.Transform.Scale != rl.NewVector3(1, 1, 1) {
		t.Errorf("zero scale not promoted to unit scale: %v", o.Transform.Scale)
	}
}

func TestRoundTrip(t *testing.T) {
	r := NewRegistry()
	o := r.Register(Params{Type: TypeStore, BusinessID: "s1"})
	if got := r.GetByID(o.ID); got != o {
		t.Fatalf("GetByID = %v, want %v", got, o)
	}
	if !r.Unregister(o.ID) {
		t.Fatal("Unregister returned false for existing id")
	}
	if got := r.GetByID(o.ID); got != nil {
		t.Errorf("GetByID after unregister = %v, want nil", got)
	}
	if r.Unregister(o.ID) {
		t.Error("second Unregister returned true")
	}
	// A new registration must never reuse the old id.
	o2 := r.Register(Params{Type: TypeStore, BusinessID: "s1"})
	if o2.ID == o.ID {
		t.Error("id reused after unregister")
	}
}

func TestGetByBusinessID(t *testing.T) {
	r := NewRegistry()
	store := r.Register(Params{Type: TypeStore, BusinessID: "b1"})
	// Same business id under a different semantic type resolves separately.
	area := r.Register(Params{Type: TypeArea, BusinessID: "b1"})
	if got := r.GetByBusinessID("b1", TypeStore); got != store {
		t.Errorf("store lookup = %v", got)
	}
	if got := r.GetByBusinessID("b1", TypeArea); got != area {
		t.Errorf("area lookup = %v", got)
	}
	if got := r.GetByBusinessID("nope", TypeStore); got != nil {
		t.Errorf("missing lookup = %v, want nil", got)
	}
}

func TestGetByTypePreservesOrder(t *testing.T) {
	r := NewRegistry()
	a := r.Register(Params{Type: TypeFloor, BusinessID: "f1"})
	b := r.Register(Params{Type: TypeFloor, BusinessID: "f2"})
	r.Register(Params{Type: TypeStore, BusinessID: "s1"})
	floors := r.GetByType(TypeFloor)
	if len(floors) != 2 || floors[0] != a || floors[1] != b {
		t.Errorf("GetByType(floor) = %v", floors)
	}
}

func TestParentChildWiring(t *testing.T) {
	r := NewRegistry()
	floor := r.Register(Params{Type: TypeFloor, BusinessID: "f1"})
	area := r.Register(Params{Type: TypeArea, BusinessID: "a1", ParentID: floor.ID})
	if len(floor.ChildrenIDs) != 1 || floor.ChildrenIDs[0] != area.ID {
		t.Fatalf("floor children = %v", floor.ChildrenIDs)
	}
	r.Unregister(area.ID)
	if len(floor.ChildrenIDs) != 0 {
		t.Errorf("child id not detached from parent: %v", floor.ChildrenIDs)
	}
}

func TestUnregisterClearsChildParentID(t *testing.T) {
	r := NewRegistry()
	floor := r.Register(Params{Type: TypeFloor, BusinessID: "f1"})
	area := r.Register(Params{Type: TypeArea, BusinessID: "a1", ParentID: floor.ID})
	r.Unregister(floor.ID)
	if area.ParentID != "" {
		t.Errorf("child still references freed parent %q", area.ParentID)
	}
}

func TestQueryFilters(t *testing.T) {
	r := NewRegistry()
	floor := r.Register(Params{Type: TypeFloor, BusinessID: "f1"})
	s1 := r.Register(Params{Type: TypeStore, BusinessID: "s1", ParentID: floor.ID})
	s2 := r.Register(Params{Type: TypeStore, BusinessID: "s2", ParentID: floor.ID})
	s2.Visible = false

	if got := r.Query(Filter{Type: TypeStore}); len(got) != 2 {
		t.Errorf("Query(store) returned %d objects", len(got))
	}
	vis := true
	got := r.Query(Filter{Type: TypeStore, Visible: &vis})
	if len(got) != 1 || got[0] != s1 {
		t.Errorf("Query(store, visible) = %v", got)
	}
	if got := r.Query(Filter{ParentID: floor.ID}); len(got) != 2 {
		t.Errorf("Query(parent) returned %d objects", len(got))
	}
}

func TestClear(t *testing.T) {
	r := NewRegistry()
	r.Register(Params{Type: TypeStore, BusinessID: "s1"})
	r.Clear()
	if r.Count() != 0 {
		t.Errorf("count after clear = %d", r.Count())
	}
	if got := r.GetByBusinessID("s1", TypeStore); got != nil {
		t.Errorf("business index survived clear: %v", got)
	}
}

func TestMeshRegistryBindUnbind(t *testing.T) {
	m := NewMeshRegistry()
	var model rl.Model
	m.Bind("id1", model)
	if _, ok := m.Get("id1"); !ok {
		t.Fatal("binding not found")
	}
	m.Unbind("id1")
	if _, ok := m.Get("id1"); ok {
		t.Error("binding survived unbind")
	}
	m.Unbind("id1") // no-op
	if m.Count() != 0 {
		t.Errorf("count = %d", m.Count())
	}
}

func TestFactoryStoreBounds(t *testing.T) {
	r := NewRegistry()
	f := NewFactory(r)
	s := &entities.Store{
		StoreID:  "s1",
		Name:     "Coffee",
		Status:   entities.StoreActive,
		Position: entities.Point2{X: 10, Y: 4},
		Width:    4, Depth: 2, Height: 3,
	}
	o := f.FromStore(s, "", 0)
	if o.Type != TypeStore || o.BusinessID != "s1" {
		t.Fatalf("object = %+v", o)
	}
	if o.Bounds.Min.X != 8 || o.Bounds.Max.X != 12 {
		t.Errorf("x bounds = %v..%v, want 8..12", o.Bounds.Min.X, o.Bounds.Max.X)
	}
	if o.Bounds.Min.Z != 3 || o.Bounds.Max.Z != 5 {
		t.Errorf("z bounds = %v..%v, want 3..5", o.Bounds.Min.Z, o.Bounds.Max.Z)
	}
	if o.Bounds.Max.Y != 3 {
		t.Errorf("height = %v, want 3", o.Bounds.Max.Y)
	}
	if o.Meta("name") != "Coffee" {
		t.Errorf("metadata name = %v", o.Meta("name"))
	}
}

func TestFactoryAreaInteractivity(t *testing.T) {
	r := NewRegistry()
	f := NewFactory(r)
	shape := entities.Outline{Vertices: []entities.Point2{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}}, IsClosed: true}
	shop := f.FromArea(&entities.Area{AreaID: "a1", Type: entities.AreaRetail, Shape: shape}, "", 0)
	corridor := f.FromArea(&entities.Area{AreaID: "a2", Type: entities.AreaCorridor, Shape: shape}, "", 0)
	if !shop.Interactive {
		t.Error("retail area must be interactive")
	}
	if corridor.Interactive {
		t.Error("corridor must not be interactive")
	}
}

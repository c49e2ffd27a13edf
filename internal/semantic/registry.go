package semantic

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/google/uuid"
)

// Params describes a record to register. Zero-value Scale is promoted to
// unit scale; Interactive and Visible default to true on the created object.
type Params struct {
	Type       Type
	BusinessID string
	Position   rl.Vector3
	Rotation   rl.Vector3
	Scale      rl.Vector3
	Bounds     rl.BoundingBox
	ParentID   string
	Metadata   map[string]any
}

// Registry maps generated ids to semantic objects and keeps secondary
// indexes for business-id and type lookups. All query methods are pure.
type Registry struct {
	objects    map[string]*Object
	byBusiness map[businessKey]string
	byType     map[Type][]string
}

type businessKey struct {
	id  string
	typ Type
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	r := &Registry{}
	r.reset()
	return r
}

func (r *Registry) reset() {
	r.objects = make(map[string]*Object)
	r.byBusiness = make(map[businessKey]string)
	r.byType = make(map[Type][]string)
}

// Register creates and stores a new record with a fresh id. If ParentID
// names a registered object, the new id is appended to its children.
func (r *Registry) Register(p Params) *Object {
	scale := p.Scale
	if scale.X == 0 && scale.Y == 0 && scale.Z == 0 {
		scale = rl.NewVector3(1, 1, 1)
	}
	o := &Object{
		ID:         uuid.NewString(),
		Type:       p.Type,
		BusinessID: p.BusinessID,
		Transform: Transform{
			Position: p.Position,
			Rotation: p.Rotation,
			Scale:    scale,
		},
		Bounds:      p.Bounds,
		ParentID:    p.ParentID,
		Interactive: true,
		Visible:     true,
		Metadata:    p.Metadata,
	}
	r.objects[o.ID] = o
	if p.BusinessID != "" {
		r.byBusiness[businessKey{p.BusinessID, p.Type}] = o.ID
	}
	r.byType[p.Type] = append(r.byType[p.Type], o.ID)
	if p.ParentID != "" {
		if parent, ok := r.objects[p.ParentID]; ok {
			parent.ChildrenIDs = append(parent.ChildrenIDs, o.ID)
		}
	}
	return o
}

// Unregister removes the record and detaches it from its parent and
// children. Returns whether the id existed. Mesh bindings are NOT released
// here; callers unbind first (the registry must not know about rendering).
func (r *Registry) Unregister(id string) bool {
	o, ok := r.objects[id]
	if !ok {
		return false
	}
	delete(r.objects, id)
	if o.BusinessID != "" {
		delete(r.byBusiness, businessKey{o.BusinessID, o.Type})
	}
	r.byType[o.Type] = removeID(r.byType[o.Type], id)
	if o.ParentID != "" {
		if parent, pok := r.objects[o.ParentID]; pok {
			parent.ChildrenIDs = removeID(parent.ChildrenIDs, id)
		}
	}
	for _, childID := range o.ChildrenIDs {
		if child, cok := r.objects[childID]; cok {
			child.ParentID = ""
		}
	}
	return true
}

// GetByID returns the object with the given id, or nil.
func (r *Registry) GetByID(id string) *Object {
	return r.objects[id]
}

// GetByBusinessID returns the object bound to a business entity of the given
// type, or nil.
func (r *Registry) GetByBusinessID(businessID string, typ Type) *Object {
	id, ok := r.byBusiness[businessKey{businessID, typ}]
	if !ok {
		return nil
	}
	return r.objects[id]
}

// GetByType returns all objects of the given type, in registration order.
func (r *Registry) GetByType(typ Type) []*Object {
	ids := r.byType[typ]
	out := make([]*Object, 0, len(ids))
	for _, id := range ids {
		if o, ok := r.objects[id]; ok {
			out = append(out, o)
		}
	}
	return out
}

// Filter narrows a Query. Nil pointer fields and empty strings mean "any".
type Filter struct {
	Type        Type
	BusinessID  string
	ParentID    string
	Interactive *bool
	Visible     *bool
}

// Query returns every object matching the filter. Order is unspecified.
func (r *Registry) Query(f Filter) []*Object {
	var out []*Object
	for _, o := range r.objects {
		if f.Type != "" && o.Type != f.Type {
			continue
		}
		if f.BusinessID != "" && o.BusinessID != f.BusinessID {
			continue
		}
		if f.ParentID != "" && o.ParentID != f.ParentID {
			continue
		}
		if f.Interactive != nil && o.Interactive != *f.Interactive {
			continue
		}
		if f.Visible != nil && o.Visible != *f.Visible {
			continue
		}
		out = append(out, o)
	}
	return out
}

// Count returns the number of registered objects.
func (r *Registry) Count() int {
	return len(r.objects)
}

// Clear removes every record and index entry.
func (r *Registry) Clear() {
	r.reset()
}

func removeID(ids []string, id string) []string {
	for i, v := range ids {
		if v == id {
			copy(ids[i:], ids[i+1:])
			return ids[:len(ids)-1]
		}
	}
	return ids
}

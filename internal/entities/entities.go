// Package entities holds the plain business records the engine consumes from
// the backend: mall projects, floors, areas, stores, and products. The records
// carry no behavior beyond geometry helpers; the source of truth lives outside
// the engine.
package entities

// Area types as defined by the backend's shared types.
const (
	AreaRetail    = "retail"
	AreaFood      = "food"
	AreaService   = "service"
	AreaAnchor    = "anchor"
	AreaCommon    = "common"
	AreaCorridor  = "corridor"
	AreaElevator  = "elevator"
	AreaEscalator = "escalator"
	AreaStairs    = "stairs"
	AreaRestroom  = "restroom"
	AreaStorage   = "storage"
	AreaOffice    = "office"
	AreaParking   = "parking"
	AreaOther     = "other"
)

// Store statuses as defined by the backend's shared types.
const (
	StorePending  = "PENDING"
	StoreActive   = "ACTIVE"
	StoreInactive = "INACTIVE"
	StoreClosed   = "CLOSED"
)

// Product statuses as defined by the backend's shared types.
const (
	ProductOnSale  = "ON_SALE"
	ProductOffSale = "OFF_SALE"
	ProductSoldOut = "SOLD_OUT"
)

// Point2 is a 2D point on the floor plane (X maps to world X, Y to world Z).
type Point2 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Outline is an ordered, closed sequence of 2D points describing a walkable
// or buildable region. The backend requires at least 3 vertices; the engine
// treats shorter outlines as "no boundary".
type Outline struct {
	Vertices []Point2 `json:"vertices"`
	IsClosed bool     `json:"isClosed"`
}

// Settings holds per-project builder settings.
type Settings struct {
	GridSize           float64 `json:"gridSize"`
	SnapToGrid         bool    `json:"snapToGrid"`
	DefaultFloorHeight float64 `json:"defaultFloorHeight"`
	Unit               string  `json:"unit"`
}

// Product is a sellable item belonging to a store.
type Product struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Status    string  `json:"status"`
	Price     float64 `json:"price"`
}

// Store is a merchant's shop placed inside an area. Position is the store
// footprint center on the floor plane; Size is its width/depth/height extent.
type Store struct {
	StoreID  string    `json:"storeId"`
	Name     string    `json:"name"`
	Status   string    `json:"status"`
	Position Point2    `json:"position"`
	Width    float64   `json:"width"`
	Depth    float64   `json:"depth"`
	Height   float64   `json:"height"`
	Products []Product `json:"products,omitempty"`
}

// Area is a functional region of a floor (retail, corridor, elevator, ...).
type Area struct {
	AreaID     string  `json:"areaId"`
	Name       string  `json:"name"`
	Type       string  `json:"type"`
	Shape      Outline `json:"shape"`
	Color      string  `json:"color,omitempty"`
	MerchantID string  `json:"merchantId,omitempty"`
	Visible    bool    `json:"visible"`
	Locked     bool    `json:"locked"`
	Stores     []Store `json:"stores,omitempty"`
}

// Floor is one level of the mall. Level is the floor number (1-based above
// ground); Height is the floor-to-ceiling height in world units.
type Floor struct {
	FloorID        string  `json:"floorId"`
	Name           string  `json:"name"`
	Level          int     `json:"level"`
	Height         float64 `json:"height"`
	Shape          Outline `json:"shape"`
	InheritOutline bool    `json:"inheritOutline"`
	Color          string  `json:"color,omitempty"`
	Visible        bool    `json:"visible"`
	Locked         bool    `json:"locked"`
	SortOrder      int     `json:"sortOrder"`
	Areas          []Area  `json:"areas,omitempty"`
}

// Mall is the full editable project document: the unit of loading and of
// history snapshots.
type Mall struct {
	ProjectID   string   `json:"projectId"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Settings    Settings `json:"settings"`
	Floors      []Floor  `json:"floors"`
}

// FloorByID returns the floor with the given id, or nil.
func (m *Mall) FloorByID(id string) *Floor {
	for i := range m.Floors {
		if m.Floors[i].FloorID == id {
			return &m.Floors[i]
		}
	}
	return nil
}

// IsShopArea reports whether an area type hosts stores.
func IsShopArea(areaType string) bool {
	switch areaType {
	case AreaRetail, AreaFood, AreaService, AreaAnchor:
		return true
	}
	return false
}

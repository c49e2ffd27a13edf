// Package mapgen builds procedural sample mall projects so the viewer has
// something to load without a backend connection.
package mapgen

import (
	"fmt"
	"math/rand"
	"time"

	"mall-engine/internal/entities"
)

// Options controls procedural mall generation. Width/Depth are the floor
// footprint in world units. Seed == 0 uses a time-based seed.
type Options struct {
	Floors        int
	Width         float64
	Depth         float64
	FloorHeight   float64
	StoresPerWing int

	Seed int64
}

// DefaultOptions returns a small three-floor mall.
func DefaultOptions() Options {
	return Options{
		Floors:        3,
		Width:         60,
		Depth:         40,
		FloorHeight:   4,
		StoresPerWing: 4,
		Seed:          0,
	}
}

var storeNames = []string{
	"Coffee Corner", "Page Turner Books", "Sneaker Loft", "Gadget Garage",
	"Fresh Threads", "Sugar Rush", "Vinyl Vault", "Plant Parlor",
	"Game Haven", "Scent Studio", "Bright Optics", "Daily Deli",
}

var productNames = []string{
	"Classic", "Deluxe", "Mini", "Family Pack", "Limited Edition",
}

// Generate builds a mall project from the options. The same seed always
// produces the same project.
func Generate(opts Options) *entities.Mall {
	if opts.Floors <= 0 {
		opts.Floors = 1
	}
	if opts.Width <= 0 || opts.Depth <= 0 {
		opts.Width, opts.Depth = 60, 40
	}
	if opts.FloorHeight <= 0 {
		opts.FloorHeight = 4
	}
	if opts.StoresPerWing < 0 {
		opts.StoresPerWing = 0
	}
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	project := &entities.Mall{
		ProjectID: fmt.Sprintf("sample-%d", seed),
		Name:      "Sample Mall",
		Settings: entities.Settings{
			GridSize:           1,
			SnapToGrid:         true,
			DefaultFloorHeight: opts.FloorHeight,
			Unit:               "m",
		},
	}
	for level := 1; level <= opts.Floors; level++ {
		project.Floors = append(project.Floors, generateFloor(rng, opts, level))
	}
	return project
}

func generateFloor(rng *rand.Rand, opts Options, level int) entities.Floor {
	fl := entities.Floor{
		FloorID: fmt.Sprintf("floor-%d", level),
		Name:    fmt.Sprintf("Level %d", level),
		Level:   level,
		Height:  opts.FloorHeight,
		Shape:   rectOutline(0, 0, opts.Width, opts.Depth),
		Visible: true,
	}

	// Layout: two retail wings split by a central corridor running along Z.
	corridorW := opts.Width * 0.15
	wingW := (opts.Width - corridorW) / 2
	leftWing := rectOutline(0, 0, wingW, opts.Depth)
	rightWing := rectOutline(wingW+corridorW, 0, wingW, opts.Depth)
	corridor := rectOutline(wingW, 0, corridorW, opts.Depth)

	fl.Areas = append(fl.Areas,
		entities.Area{
			AreaID:  fmt.Sprintf("f%d-wing-west", level),
			Name:    "West Wing",
			Type:    entities.AreaRetail,
			Shape:   leftWing,
			Visible: true,
			Stores:  generateWingStores(rng, fmt.Sprintf("f%d-w", level), 0, wingW, opts),
		},
		entities.Area{
			AreaID:  fmt.Sprintf("f%d-corridor", level),
			Name:    "Central Corridor",
			Type:    entities.AreaCorridor,
			Shape:   corridor,
			Visible: true,
		},
		entities.Area{
			AreaID:  fmt.Sprintf("f%d-wing-east", level),
			Name:    "East Wing",
			Type:    entities.AreaRetail,
			Shape:   rightWing,
			Visible: true,
			Stores:  generateWingStores(rng, fmt.Sprintf("f%d-e", level), wingW+corridorW, wingW, opts),
		},
	)
	return fl
}

// generateWingStores lines stores up along the wing's Z axis, leaving a
// margin so every store footprint stays inside the wing outline.
func generateWingStores(rng *rand.Rand, idPrefix string, wingX, wingW float64, opts Options) []entities.Store {
	n := opts.StoresPerWing
	if n == 0 {
		return nil
	}
	slotD := opts.Depth / float64(n)
	stores := make([]entities.Store, 0, n)
	for i := 0; i < n; i++ {
		w := wingW * (0.5 + rng.Float64()*0.3)
		d := slotD * (0.5 + rng.Float64()*0.3)
		s := entities.Store{
			StoreID:  fmt.Sprintf("%s-s%d", idPrefix, i+1),
			Name:     storeNames[rng.Intn(len(storeNames))],
			Status:   entities.StoreActive,
			Position: entities.Point2{X: wingX + wingW/2, Y: slotD*float64(i) + slotD/2},
			Width:    w,
			Depth:    d,
			Height:   opts.FloorHeight * 0.75,
		}
		for p := 0; p < 1+rng.Intn(3); p++ {
			s.Products = append(s.Products, entities.Product{
				ProductID: fmt.Sprintf("%s-p%d", s.StoreID, p+1),
				Name:      productNames[rng.Intn(len(productNames))],
				Status:    entities.ProductOnSale,
				Price:     float64(5+rng.Intn(95)) + 0.99,
			})
		}
		stores = append(stores, s)
	}
	return stores
}

func rectOutline(x, y, w, d float64) entities.Outline {
	return entities.Outline{
		Vertices: []entities.Point2{
			{X: x, Y: y}, {X: x + w, Y: y}, {X: x + w, Y: y + d}, {X: x, Y: y + d},
		},
		IsClosed: true,
	}
}

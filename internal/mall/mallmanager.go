package mall

import (
	"sort"

	"mall-engine/internal/entities"
	"mall-engine/internal/logger"
	"mall-engine/internal/semantic"
)

// MallManager composes the floor and store managers and owns project-level
// load/clear. It is the only component that walks the full business
// hierarchy.
type MallManager struct {
	reg     *semantic.Registry
	meshes  *semantic.MeshRegistry
	factory *semantic.Factory
	log     *logger.Logger

	Floors *FloorManager
	Stores *StoreManager

	rootID string
}

// NewMallManager wires a manager set over fresh registries.
func NewMallManager(reg *semantic.Registry, meshes *semantic.MeshRegistry, log *logger.Logger) *MallManager {
	factory := semantic.NewFactory(reg)
	return &MallManager{
		reg:     reg,
		meshes:  meshes,
		factory: factory,
		log:     log,
		Floors:  NewFloorManager(reg, log),
		Stores:  NewStoreManager(reg, meshes, factory, log),
	}
}

// LoadMall walks the project depth-first (mall, floors, areas, stores,
// products), registering each level before descending, then defaults the
// current floor to the first floor loaded. Returns the root semantic object.
func (m *MallManager) LoadMall(project *entities.Mall) *semantic.Object {
	root := m.factory.FromMall(project)
	m.rootID = root.ID

	// Floors stack bottom-up in level order regardless of payload order.
	floors := make([]*entities.Floor, 0, len(project.Floors))
	for i := range project.Floors {
		floors = append(floors, &project.Floors[i])
	}
	sort.SliceStable(floors, func(i, j int) bool { return floors[i].Level < floors[j].Level })

	var firstFloorID string
	var baseY float32
	for _, fl := range floors {
		floorObj := m.factory.FromFloor(fl, root.ID, baseY)
		if firstFloorID == "" {
			firstFloorID = floorObj.ID
		}
		for ai := range fl.Areas {
			area := &fl.Areas[ai]
			areaObj := m.factory.FromArea(area, floorObj.ID, baseY)
			for si := range area.Stores {
				m.Stores.AddStore(&area.Stores[si], areaObj.ID, baseY)
			}
		}
		baseY += float32(fl.Height)
	}

	if firstFloorID != "" {
		m.Floors.SetCurrentFloor(firstFloorID)
	}
	m.log.Logf("loadMall: %s (%d floors, %d objects)", project.Name, len(floors), m.reg.Count())
	return root
}

// Root returns the root semantic object for the loaded project, or nil.
func (m *MallManager) Root() *semantic.Object {
	if m.rootID == "" {
		return nil
	}
	return m.reg.GetByID(m.rootID)
}

// Clear resets both registries and every manager-held reference as a unit.
// Clearing only the registry would leave the managers pointing at freed ids.
func (m *MallManager) Clear() {
	m.Stores.clear()
	m.Floors.clear()
	m.meshes.Clear()
	m.reg.Clear()
	m.rootID = ""
}

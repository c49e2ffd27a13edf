package engineconfig

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// EngineConfigPath is the path to the engine config file, relative to the process working directory.
const EngineConfigPath = "config/engine.yaml"

// FollowCamera holds third-person follow camera tunables.
type FollowCamera struct {
	Distance    float32 `yaml:"distance"`     // orbit distance behind the character
	Sensitivity float32 `yaml:"sensitivity"`  // radians per pointer pixel
	Smoothness  float32 `yaml:"smoothness"`   // per-frame lerp fraction toward the ideal position
	HeightBias  float32 `yaml:"height_bias"`  // additive vertical offset on the ideal position
	MinHeight   float32 `yaml:"min_height"`   // camera never drops below this Y
	HeadOffset  float32 `yaml:"head_offset"`  // look-at point above the character's feet
	PitchMin    float32 `yaml:"pitch_min"`    // radians
	PitchMax    float32 `yaml:"pitch_max"`    // radians
}

// OrbitCamera holds free-orbit editing camera tunables.
type OrbitCamera struct {
	MinDistance float32 `yaml:"min_distance"`
	MaxDistance float32 `yaml:"max_distance"`
	Damping     float32 `yaml:"damping"`       // per-frame decay factor for rotate/pan/zoom velocity
	MinPolar    float32 `yaml:"min_polar"`     // radians above straight-down
	MaxPolar    float32 `yaml:"max_polar"`     // radians; kept short of horizontal
	RotateSpeed float32 `yaml:"rotate_speed"`  // radians per pointer pixel
	ZoomSpeed   float32 `yaml:"zoom_speed"`    // distance units per wheel tick
}

// Config holds engine-level tunables. Persisted across runs; in-mall project
// data is separate and owned by the backend.
type Config struct {
	HistoryMax      int     `yaml:"history_max"`      // undo stack depth
	CollisionRadius float32 `yaml:"collision_radius"` // roaming character radius for boundary sampling
	MoveSpeed       float32 `yaml:"move_speed"`       // world units per second
	TurnLerp        float32 `yaml:"turn_lerp"`        // per-frame heading blend fraction
	PoolCapacity    int     `yaml:"pool_capacity"`    // max idle nodes kept by the resource pool
	GridVisible     bool    `yaml:"grid_visible"`
	ShowFPS         bool    `yaml:"show_fps"`
	ShowCounts      bool    `yaml:"show_counts"`

	Follow FollowCamera `yaml:"follow_camera"`
	Orbit  OrbitCamera  `yaml:"orbit_camera"`
}

// Default returns the default engine tunables (grid on, overlays off).
func Default() Config {
	return Config{
		HistoryMax:      50,
		CollisionRadius: 0.5,
		MoveSpeed:       5,
		TurnLerp:        0.15,
		PoolCapacity:    64,
		GridVisible:     true,
		ShowFPS:         false,
		ShowCounts:      false,
		Follow: FollowCamera{
			Distance:    8,
			Sensitivity: 0.005,
			Smoothness:  0.1,
			HeightBias:  0.8,
			MinHeight:   0.5,
			HeadOffset:  1.7,
			PitchMin:    -0.35,
			PitchMax:    1.2,
		},
		Orbit: OrbitCamera{
			MinDistance: 5,
			MaxDistance: 100,
			Damping:     0.05,
			MinPolar:    0.1,
			MaxPolar:    1.52,
			RotateSpeed: 0.005,
			ZoomSpeed:   2,
		},
	}
}

// Load reads engine tunables from config/engine.yaml. A missing file is the
// normal first-run case and returns Default() silently; an unreadable file
// also returns Default() but reports the parse error so the caller can log it.
func Load() (Config, error) {
	data, err := os.ReadFile(EngineConfigPath)
	if err != nil {
		return Default(), nil
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), err
	}
	return cfg, nil
}

// Save writes engine tunables to config/engine.yaml, creating the config directory if needed.
func Save(cfg Config) error {
	dir := filepath.Dir(EngineConfigPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(EngineConfigPath, data, 0644)
}

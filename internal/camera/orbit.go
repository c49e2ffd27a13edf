package camera

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"

	"mall-engine/internal/engineconfig"
)

// OrbitController is the free-editing camera: damped rotate/pan/zoom around
// a target point, with the distance clamped to a min/max range and the
// polar angle kept short of horizontal and of straight-down, so the view
// can neither flatten out nor flip under the floor. Input calls accumulate
// velocity; Update must be polled once per frame for the damping decay to
// take effect.
type OrbitController struct {
	cam    *rl.Camera3D
	cfg    engineconfig.OrbitCamera
	target rl.Vector3

	azimuth  float32 // rotation around Y, radians
	polar    float32 // angle from the +Y axis, radians
	distance float32

	rotVelX, rotVelY float32
	panVelX, panVelY float32
	zoomVel          float32

	onChange func()
}

// NewOrbitController derives the initial spherical state from the camera's
// current position and target.
func NewOrbitController(cam *rl.Camera3D, cfg engineconfig.OrbitCamera) *OrbitController {
	c := &OrbitController{cam: cam, cfg: cfg, target: cam.Target}
	dx := cam.Position.X - cam.Target.X
	dy := cam.Position.Y - cam.Target.Y
	dz := cam.Position.Z - cam.Target.Z
	c.distance = math32.Sqrt(dx*dx + dy*dy + dz*dz)
	if c.distance == 0 {
		c.distance = cfg.MinDistance
	}
	c.azimuth = math32.Atan2(dx, dz)
	c.polar = math32.Acos(clamp(dy/c.distance, -1, 1))
	c.clampState()
	return c
}

// Rotate adds orbital velocity from a pointer drag, in pixels.
func (c *OrbitController) Rotate(dx, dy float32) {
	c.rotVelX += dx * c.cfg.RotateSpeed
	c.rotVelY += dy * c.cfg.RotateSpeed
}

// Pan adds lateral velocity, moving the orbit target on the view plane.
func (c *OrbitController) Pan(dx, dy float32) {
	// Pan scale follows distance so screen-space drags feel constant.
	scale := c.distance * 0.001
	c.panVelX += dx * scale
	c.panVelY += dy * scale
}

// Zoom adds dolly velocity from wheel ticks. Positive zooms in.
func (c *OrbitController) Zoom(delta float32) {
	c.zoomVel -= delta * c.cfg.ZoomSpeed
}

// OnChange registers a notification fired whenever an Update actually moved
// the camera, for on-demand re-rendering.
func (c *OrbitController) OnChange(cb func()) {
	c.onChange = cb
}

// SetTarget recenters the orbit on a new point.
func (c *OrbitController) SetTarget(target rl.Vector3) {
	c.target = target
}

// Update applies the accumulated velocities, decays them by the damping
// factor, and recomputes the camera placement. Call once per frame.
// Returns whether the camera moved.
func (c *OrbitController) Update(dt float32) bool {
	moved := c.rotVelX != 0 || c.rotVelY != 0 ||
		c.panVelX != 0 || c.panVelY != 0 || c.zoomVel != 0
	if !moved {
		return false
	}

	c.azimuth -= c.rotVelX
	c.polar -= c.rotVelY
	c.distance += c.zoomVel

	// Pan moves the target in camera-local axes projected on the floor.
	sinA, cosA := math32.Sin(c.azimuth), math32.Cos(c.azimuth)
	c.target.X += -cosA*c.panVelX + sinA*c.panVelY
	c.target.Z += sinA*c.panVelX + cosA*c.panVelY

	c.clampState()
	c.apply()

	decay := 1 - c.cfg.Damping
	c.rotVelX *= decay
	c.rotVelY *= decay
	c.panVelX *= decay
	c.panVelY *= decay
	c.zoomVel *= decay
	const rest = 1e-5
	if math32.Abs(c.rotVelX) < rest {
		c.rotVelX = 0
	}
	if math32.Abs(c.rotVelY) < rest {
		c.rotVelY = 0
	}
	if math32.Abs(c.panVelX) < rest {
		c.panVelX = 0
	}
	if math32.Abs(c.panVelY) < rest {
		c.panVelY = 0
	}
	if math32.Abs(c.zoomVel) < rest {
		c.zoomVel = 0
	}

	if c.onChange != nil {
		c.onChange()
	}
	return true
}

// Distance returns the current orbit distance.
func (c *OrbitController) Distance() float32 {
	return c.distance
}

// Dispose drops the change notification. The controller holds no other
// resources.
func (c *OrbitController) Dispose() {
	c.onChange = nil
}

func (c *OrbitController) clampState() {
	c.distance = clamp(c.distance, c.cfg.MinDistance, c.cfg.MaxDistance)
	c.polar = clamp(c.polar, c.cfg.MinPolar, c.cfg.MaxPolar)
}

// apply places the camera on the sphere around the target.
func (c *OrbitController) apply() {
	sinP, cosP := math32.Sin(c.polar), math32.Cos(c.polar)
	c.cam.Position = rl.NewVector3(
		c.target.X+c.distance*sinP*math32.Sin(c.azimuth),
		c.target.Y+c.distance*cosP,
		c.target.Z+c.distance*sinP*math32.Cos(c.azimuth),
	)
	c.cam.Target = c.target
}

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

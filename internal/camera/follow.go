package camera

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"

	"mall-engine/internal/engineconfig"
)

// Positioned is the follow target: a weak, non-owning reference to any
// scene node that can report its world position.
type Positioned interface {
	WorldPosition() rl.Vector3
}

// FollowController is the third-person roaming camera. Pointer deltas drive
// yaw and pitch; each frame the ideal position is computed in spherical
// coordinates behind the target and the camera lerps toward it by a
// smoothness fraction, producing lag-behind chase motion. The camera always
// looks at the target's position plus a fixed head offset.
type FollowController struct {
	cam *rl.Camera3D
	cfg engineconfig.FollowCamera

	target Positioned
	yaw    float32
	pitch  float32

	onChange func()
}

// DefaultPitch is the pitch a follow camera starts at before any pointer
// input, a slight downward look over the target's shoulder.
const DefaultPitch = 0.3

// NewFollowController returns a follow controller with no target.
func NewFollowController(cam *rl.Camera3D, cfg engineconfig.FollowCamera) *FollowController {
	return &FollowController{cam: cam, cfg: cfg, pitch: clamp(DefaultPitch, cfg.PitchMin, cfg.PitchMax)}
}

// SetTarget starts following node. Passing nil clears the follow state.
func (c *FollowController) SetTarget(node Positioned) {
	c.target = node
}

// Target returns the node being followed, or nil.
func (c *FollowController) Target() Positioned {
	return c.target
}

// HandlePointerDelta applies a pointer movement, scaled by the sensitivity
// constant. Pitch is clamped to the configured vertical range so the view
// can never flip.
func (c *FollowController) HandlePointerDelta(dx, dy float32) {
	c.SetAngles(c.yaw-dx*c.cfg.Sensitivity, c.pitch+dy*c.cfg.Sensitivity)
}

// SetAngles sets yaw and pitch directly. Pitch is clamped into
// [PitchMin, PitchMax]; yaw is free.
func (c *FollowController) SetAngles(yaw, pitch float32) {
	c.yaw = yaw
	c.pitch = clamp(pitch, c.cfg.PitchMin, c.cfg.PitchMax)
}

// Yaw returns the current camera yaw, which also serves as the
// camera-relative basis for character movement.
func (c *FollowController) Yaw() float32 {
	return c.yaw
}

// Pitch returns the current (clamped) pitch.
func (c *FollowController) Pitch() float32 {
	return c.pitch
}

// OnChange registers a notification fired whenever an Update moved the
// camera.
func (c *FollowController) OnChange(cb func()) {
	c.onChange = cb
}

// Update advances the chase motion one frame. No-op without a target.
// Returns whether the camera moved.
func (c *FollowController) Update(dt float32) bool {
	if c.target == nil {
		return false
	}
	t := c.target.WorldPosition()

	// Ideal position on the sphere behind the target: horizontal distance
	// shrinks as the pitch rises, vertical offset grows, with a small
	// additive height bias and a hard floor.
	horiz := c.cfg.Distance * math32.Cos(c.pitch)
	ideal := rl.NewVector3(
		t.X-horiz*math32.Sin(c.yaw),
		t.Y+c.cfg.Distance*math32.Sin(c.pitch)+c.cfg.HeightBias,
		t.Z-horiz*math32.Cos(c.yaw),
	)
	if ideal.Y < c.cfg.MinHeight {
		ideal.Y = c.cfg.MinHeight
	}

	// Lerp, never snap: the chase lag is the point.
	before := c.cam.Position
	c.cam.Position = rl.Vector3Lerp(c.cam.Position, ideal, c.cfg.Smoothness)
	c.cam.Target = rl.NewVector3(t.X, t.Y+c.cfg.HeadOffset, t.Z)

	moved := before != c.cam.Position
	if moved && c.onChange != nil {
		c.onChange()
	}
	return moved
}

// Dispose clears the target and the change notification.
func (c *FollowController) Dispose() {
	c.target = nil
	c.onChange = nil
}

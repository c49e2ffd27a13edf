package boundary

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"

	"mall-engine/internal/entities"
)

// MoveInput carries the raw directional input flags for one frame.
type MoveInput struct {
	Forward  bool
	Backward bool
	Left     bool
	Right    bool
}

// Any reports whether any direction is pressed.
func (in MoveInput) Any() bool {
	return in.Forward || in.Backward || in.Left || in.Right
}

// Character is the roaming avatar: a position on the floor plane and a
// heading. Movement is camera-relative, clipped against the boundary
// outline with axis-decomposed sliding, and the heading blends toward the
// movement direction instead of snapping.
type Character struct {
	Position rl.Vector3
	Heading  float32 // yaw in radians; 0 faces +Z

	boundary entities.Outline
	radius   float32
	speed    float32
	turnLerp float32
}

// NewCharacter returns a character with the given collision radius, movement
// speed (world units per second), and per-frame heading blend fraction.
func NewCharacter(radius, speed, turnLerp float32) *Character {
	return &Character{radius: radius, speed: speed, turnLerp: turnLerp}
}

// SetBoundary replaces the walkable outline. Outlines with fewer than 3
// vertices disable collision (see Contains).
func (c *Character) SetBoundary(outline entities.Outline) {
	c.boundary = outline
}

// SetPosition teleports the character, bypassing collision.
func (c *Character) SetPosition(pos rl.Vector3) {
	c.Position = pos
}

// WorldPosition reports the current position. Satisfies the camera
// package's follow-target interface.
func (c *Character) WorldPosition() rl.Vector3 {
	return c.Position
}

// Move advances the character one frame from raw input flags and the camera
// yaw. Returns whether the position changed.
func (c *Character) Move(in MoveInput, cameraYaw, dt float32) bool {
	if !in.Any() || dt <= 0 {
		return false
	}
	// Camera-relative basis on the floor plane: forward points away from
	// the camera, right is perpendicular.
	forwardX, forwardZ := math32.Sin(cameraYaw), math32.Cos(cameraYaw)
	rightX, rightZ := math32.Cos(cameraYaw), -math32.Sin(cameraYaw)

	var ax, az float32
	if in.Forward {
		ax += forwardX
		az += forwardZ
	}
	if in.Backward {
		ax -= forwardX
		az -= forwardZ
	}
	if in.Right {
		ax += rightX
		az += rightZ
	}
	if in.Left {
		ax -= rightX
		az -= rightZ
	}
	length := math32.Sqrt(ax*ax + az*az)
	if length == 0 {
		return false
	}
	scale := c.speed * dt / length
	return c.step(ax*scale, az*scale)
}

// step applies a displacement with five-sample containment and axis slide,
// then blends the heading toward the applied movement direction.
func (c *Character) step(dx, dz float32) bool {
	x, z := c.Position.X, c.Position.Z
	appliedX, appliedZ := float32(0), float32(0)

	switch {
	case c.fits(x+dx, z+dz):
		appliedX, appliedZ = dx, dz
	default:
		// Slide: test each axis displacement independently, holding the
		// other axis at its current value, and keep whichever passes.
		if c.fits(x+dx, z) {
			appliedX = dx
		}
		if c.fits(x, z+dz) {
			appliedZ = dz
		}
	}
	if appliedX == 0 && appliedZ == 0 {
		return false
	}
	c.Position.X += appliedX
	c.Position.Z += appliedZ
	c.blendHeading(math32.Atan2(appliedX, appliedZ))
	return true
}

// fits reports whether all five samples (center and four radius offsets on
// the x and z axes) of a candidate position lie inside the boundary.
func (c *Character) fits(x, z float32) bool {
	r := c.radius
	return Contains(c.boundary, x, z) &&
		Contains(c.boundary, x+r, z) &&
		Contains(c.boundary, x-r, z) &&
		Contains(c.boundary, x, z+r) &&
		Contains(c.boundary, x, z-r)
}

// blendHeading moves the heading a fixed fraction toward target, with the
// difference normalized into (-pi, pi] so the character never spins the
// long way around.
func (c *Character) blendHeading(target float32) {
	diff := normalizeAngle(target - c.Heading)
	c.Heading = normalizeAngle(c.Heading + diff*c.turnLerp)
}

// normalizeAngle wraps an angle into (-pi, pi].
func normalizeAngle(a float32) float32 {
	a = math32.Mod(a, 2*math32.Pi)
	if a > math32.Pi {
		a -= 2 * math32.Pi
	} else if a <= -math32.Pi {
		a += 2 * math32.Pi
	}
	return a
}

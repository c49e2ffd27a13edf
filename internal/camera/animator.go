// Package camera drives the two mutually exclusive camera behaviors (free
// orbit editing, third-person follow) plus a shared time-based animation
// mechanism. Everything advances inside per-frame Update calls from the
// host render loop; an "animation" is a plain state record, not a blocking
// operation.
package camera

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Animator moves a camera between two position/look-at pairs over a fixed
// duration, with progress remapped by a pluggable easing function. At most
// one animation is in flight; starting a new one replaces it.
type Animator struct {
	cam *rl.Camera3D

	tween      *gween.Tween // progress 0..1 through the easing
	startPos   rl.Vector3
	endPos     rl.Vector3
	startLook  rl.Vector3
	endLook    rl.Vector3
	onComplete func()
	active     bool
}

// NewAnimator returns an animator driving cam.
func NewAnimator(cam *rl.Camera3D) *Animator {
	return &Animator{cam: cam}
}

// AnimateTo starts a move from the camera's current position/target to pos
// and lookAt over duration seconds. easeFn defaults to ease.Linear when
// nil. onComplete (optional) fires exactly once when progress reaches 1.
func (a *Animator) AnimateTo(pos, lookAt rl.Vector3, duration float32, easeFn ease.TweenFunc, onComplete func()) {
	if easeFn == nil {
		easeFn = ease.Linear
	}
	if duration <= 0 {
		// Degenerate duration: complete on the next Update.
		duration = 1e-6
	}
	a.startPos = a.cam.Position
	a.endPos = pos
	a.startLook = a.cam.Target
	a.endLook = lookAt
	a.tween = gween.New(0, 1, duration, easeFn)
	a.onComplete = onComplete
	a.active = true
}

// Active reports whether an animation is in flight. An active animation
// takes priority over follow-mode updates in the same frame.
func (a *Animator) Active() bool {
	return a.active
}

// Stop cancels the in-flight animation. The queued completion callback is
// dropped, not invoked.
func (a *Animator) Stop() {
	a.active = false
	a.tween = nil
	a.onComplete = nil
}

// Update advances the animation by dt seconds. On completion the camera
// lands exactly on the end position/look-at and the callback fires once.
// Returns whether the camera moved this frame.
func (a *Animator) Update(dt float32) bool {
	if !a.active {
		return false
	}
	progress, finished := a.tween.Update(dt)
	a.cam.Position = rl.Vector3Lerp(a.startPos, a.endPos, progress)
	a.cam.Target = rl.Vector3Lerp(a.startLook, a.endLook, progress)
	if finished {
		a.cam.Position = a.endPos
		a.cam.Target = a.endLook
		done := a.onComplete
		a.Stop()
		if done != nil {
			done()
		}
	}
	return true
}

package camera

import (
	"testing"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/tanema/gween/ease"

	"mall-engine/internal/engineconfig"
)

const eps = 1e-4

func near(t *testing.T, name string, got, want float32) {
	t.Helper()
	if math32.Abs(got-want) > eps {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

func nearVec(t *testing.T, name string, got, want rl.Vector3) {
	t.Helper()
	if math32.Abs(got.X-want.X) > eps || math32.Abs(got.Y-want.Y) > eps || math32.Abs(got.Z-want.Z) > eps {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

func testCamera() *rl.Camera3D {
	return &rl.Camera3D{
		Position: rl.NewVector3(10, 10, 10),
		Target:   rl.NewVector3(0, 0, 0),
		Up:       rl.NewVector3(0, 1, 0),
		Fovy:     45,
	}
}

func TestFollowStartsAtDefaultPitch(t *testing.T) {
	c := NewFollowController(testCamera(), engineconfig.Default().Follow)
	near(t, "pitch", c.Pitch(), DefaultPitch)
}

// --- Animator ---

func TestAnimatorCompletesExactly(t *testing.T) {
	cam := testCamera()
	a := NewAnimator(cam)
	end := rl.NewVector3(0, 5, 0)
	look := rl.NewVector3(1, 0, 1)
	calls := 0
	a.AnimateTo(end, look, 0.1, ease.Linear, func() { calls++ })

	if !a.Active() {
		t.Fatal("animator not active after AnimateTo")
	}
	a.Update(0.05)
	if !a.Active() || calls != 0 {
		t.Fatal("animation finished early")
	}
	a.Update(0.05)
	if a.Active() {
		t.Error("animation still active after full duration")
	}
	nearVec(t, "position", cam.Position, end)
	nearVec(t, "target", cam.Target, look)
	if calls != 1 {
		t.Errorf("completion callback fired %d times, want 1", calls)
	}
	// Further updates are no-ops and never refire the callback.
	a.Update(0.05)
	if calls != 1 {
		t.Errorf("callback refired: %d calls", calls)
	}
}

func TestAnimatorOvershootStillLandsExactly(t *testing.T) {
	cam := testCamera()
	a := NewAnimator(cam)
	end := rl.NewVector3(-3, 2, 7)
	a.AnimateTo(end, rl.NewVector3(0, 0, 0), 0.1, ease.OutQuad, nil)
	a.Update(1) // one giant frame
	if a.Active() {
		t.Error("animation survived an overshooting frame")
	}
	nearVec(t, "position", cam.Position, end)
}

func TestAnimatorStopDropsCallback(t *testing.T) {
	cam := testCamera()
	a := NewAnimator(cam)
	calls := 0
	a.AnimateTo(rl.NewVector3(0, 0, 0), rl.NewVector3(0, 0, 0), 0.1, nil, func() { calls++ })
	a.Update(0.05)
	a.Stop()
	a.Update(1)
	if calls != 0 {
		t.Error("stopped animation invoked its callback")
	}
	if a.Active() {
		t.Error("animator active after Stop")
	}
}

func TestAnimatorRestartReplaces(t *testing.T) {
	cam := testCamera()
	a := NewAnimator(cam)
	first := 0
	a.AnimateTo(rl.NewVector3(1, 1, 1), rl.NewVector3(0, 0, 0), 0.1, nil, func() { first++ })
	end := rl.NewVector3(9, 9, 9)
	a.AnimateTo(end, rl.NewVector3(0, 0, 0), 0.1, nil, nil)
	a.Update(1)
	nearVec(t, "position", cam.Position, end)
	if first != 0 {
		t.Error("replaced animation invoked its callback")
	}
}

// --- FollowController ---

func followCfg() engineconfig.FollowCamera {
	return engineconfig.Default().Follow
}

type fixedTarget struct{ pos rl.Vector3 }

func (f *fixedTarget) WorldPosition() rl.Vector3 { return f.pos }

func TestSetAnglesClampsPitch(t *testing.T) {
	cfg := followCfg()
	c := NewFollowController(testCamera(), cfg)
	c.SetAngles(1, cfg.PitchMax+5)
	if c.Pitch() != cfg.PitchMax {
		t.Errorf("pitch = %v, want exactly %v", c.Pitch(), cfg.PitchMax)
	}
	c.SetAngles(1, cfg.PitchMin-5)
	if c.Pitch() != cfg.PitchMin {
		t.Errorf("pitch = %v, want exactly %v", c.Pitch(), cfg.PitchMin)
	}
	near(t, "yaw unclamped", c.Yaw(), 1)
}

func TestPointerDeltaUsesSensitivity(t *testing.T) {
	cfg := followCfg()
	c := NewFollowController(testCamera(), cfg)
	c.SetAngles(0, 0.5)
	c.HandlePointerDelta(10, -4)
	near(t, "yaw", c.Yaw(), -10*cfg.Sensitivity)
	near(t, "pitch", c.Pitch(), 0.5-4*cfg.Sensitivity)
}

func TestFollowLerpsTowardIdeal(t *testing.T) {
	cfg := followCfg()
	cam := testCamera()
	c := NewFollowController(cam, cfg)
	target := &fixedTarget{pos: rl.NewVector3(0, 0, 0)}
	c.SetTarget(target)
	c.SetAngles(0, 0.3)

	before := cam.Position
	if !c.Update(1.0 / 60) {
		t.Fatal("follow update reported no movement")
	}
	horiz := cfg.Distance * math32.Cos(0.3)
	ideal := rl.NewVector3(
		0,
		cfg.Distance*math32.Sin(0.3)+cfg.HeightBias,
		-horiz,
	)
	want := rl.Vector3Lerp(before, ideal, cfg.Smoothness)
	nearVec(t, "chase position", cam.Position, want)
	nearVec(t, "look-at", cam.Target, rl.NewVector3(0, cfg.HeadOffset, 0))

	// Repeated updates converge on the ideal position, never snapping.
	for i := 0; i < 500; i++ {
		c.Update(1.0 / 60)
	}
	nearVec(t, "converged position", cam.Position, ideal)
}

func TestFollowMinHeightClamp(t *testing.T) {
	cfg := followCfg()
	cfg.HeightBias = 0
	cam := testCamera()
	c := NewFollowController(cam, cfg)
	c.SetTarget(&fixedTarget{pos: rl.NewVector3(0, 0, 0)})
	c.SetAngles(0, cfg.PitchMin) // looking up from below
	for i := 0; i < 500; i++ {
		c.Update(1.0 / 60)
	}
	if cam.Position.Y < cfg.MinHeight-eps {
		t.Errorf("camera sank to %v, floor is %v", cam.Position.Y, cfg.MinHeight)
	}
}

func TestFollowWithoutTargetIsNoOp(t *testing.T) {
	cam := testCamera()
	c := NewFollowController(cam, followCfg())
	before := cam.Position
	if c.Update(1.0 / 60) {
		t.Error("update without target reported movement")
	}
	if cam.Position != before {
		t.Error("camera moved without a target")
	}
}

// --- OrbitController ---

func orbitCfg() engineconfig.OrbitCamera {
	return engineconfig.Default().Orbit
}

func TestOrbitZoomClampsDistance(t *testing.T) {
	cfg := orbitCfg()
	c := NewOrbitController(testCamera(), cfg)
	c.Zoom(-10000) // dolly way out
	c.Update(1.0 / 60)
	if c.Distance() != cfg.MaxDistance {
		t.Errorf("distance = %v, want clamp at %v", c.Distance(), cfg.MaxDistance)
	}
	c2 := NewOrbitController(testCamera(), cfg)
	c2.Zoom(10000)
	c2.Update(1.0 / 60)
	if c2.Distance() != cfg.MinDistance {
		t.Errorf("distance = %v, want clamp at %v", c2.Distance(), cfg.MinDistance)
	}
}

func TestOrbitPolarNeverReachesHorizontal(t *testing.T) {
	cfg := orbitCfg()
	cam := testCamera()
	c := NewOrbitController(cam, cfg)
	c.Rotate(0, -100000) // crank the view down hard
	for i := 0; i < 200; i++ {
		c.Update(1.0 / 60)
	}
	if cam.Position.Y < cam.Target.Y {
		t.Error("camera dropped below the floor plane")
	}
}

func TestOrbitDampingDecays(t *testing.T) {
	c := NewOrbitController(testCamera(), orbitCfg())
	c.Rotate(10, 0)
	if !c.Update(1.0 / 60) {
		t.Fatal("first update after input reported no movement")
	}
	// With no further input, velocity decays to rest in bounded steps.
	steps := 0
	for c.Update(1.0/60) && steps < 10000 {
		steps++
	}
	if steps >= 10000 {
		t.Error("orbit velocity never decayed to rest")
	}
	if c.Update(1.0 / 60) {
		t.Error("update reported movement after coming to rest")
	}
}

func TestOrbitOnChangeFires(t *testing.T) {
	c := NewOrbitController(testCamera(), orbitCfg())
	fired := 0
	c.OnChange(func() { fired++ })
	c.Update(1.0 / 60) // idle: no notification
	if fired != 0 {
		t.Error("onChange fired while idle")
	}
	c.Zoom(1)
	c.Update(1.0 / 60)
	if fired == 0 {
		t.Error("onChange did not fire after input")
	}
	c.Dispose()
	c.Zoom(1)
	c.Update(1.0 / 60) // must not panic after dispose
}

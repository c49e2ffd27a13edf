package pool

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func TestAcquireDefaults(t *testing.T) {
	p := NewNodePool(4)
	n := p.Acquire()
	if n.Scale != rl.NewVector3(1, 1, 1) || !n.Visible || n.HasModel {
		t.Errorf("fresh node not in default state: %+v", n)
	}
}

func TestReleaseResetsState(t *testing.T) {
	p := NewNodePool(4)
	n := p.Acquire()
	n.Position = rl.NewVector3(3, 4, 5)
	n.Scale = rl.NewVector3(2, 2, 2)
	n.Visible = false
	n.HasModel = true
	p.Release(n)

	again := p.Acquire()
	if again != n {
		t.Fatal("idle node not reused")
	}
	if again.Position != (rl.Vector3{}) || again.Scale != rl.NewVector3(1, 1, 1) {
		t.Errorf("transform not reset: %+v", again)
	}
	if !again.Visible || again.HasModel {
		t.Errorf("flags not reset: %+v", again)
	}
}

func TestReleaseBeyondCapacityIsDiscarded(t *testing.T) {
	p := NewNodePool(2)
	nodes := []*Node{p.Acquire(), p.Acquire(), p.Acquire()}
	for _, n := range nodes {
		p.Release(n)
	}
	if p.IdleCount() != 2 {
		t.Errorf("idle = %d, want capacity 2", p.IdleCount())
	}
	p.Release(nil) // ignored
	if p.IdleCount() != 2 {
		t.Error("nil release changed the pool")
	}
}

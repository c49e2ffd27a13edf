// Package pool provides a bounded acquire/release pool for transient scene
// nodes (markers, ghosts, drag previews) so per-frame churn does not
// allocate. Released nodes are reset to a known default state before reuse.
package pool

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Node is a transient scene node: a transform, a tint, a visibility flag,
// and an optional renderable handle.
type Node struct {
	Position rl.Vector3
	Rotation rl.Vector3
	Scale    rl.Vector3
	Tint     rl.Color
	Visible  bool
	Model    rl.Model
	HasModel bool
}

// reset returns the node to acquire defaults: origin, unit scale, white
// tint, visible, no model.
func (n *Node) reset() {
	n.Position = rl.Vector3{}
	n.Rotation = rl.Vector3{}
	n.Scale = rl.NewVector3(1, 1, 1)
	n.Tint = rl.White
	n.Visible = true
	n.Model = rl.Model{}
	n.HasModel = false
}

// NodePool keeps up to a configured number of idle nodes for reuse.
type NodePool struct {
	idle []*Node
	max  int
}

// NewNodePool returns a pool holding at most max idle nodes. Non-positive
// max falls back to a small default.
func NewNodePool(max int) *NodePool {
	if max <= 0 {
		max = 16
	}
	return &NodePool{idle: make([]*Node, 0, max), max: max}
}

// Acquire returns a node in default state, reusing an idle one when
// available.
func (p *NodePool) Acquire() *Node {
	if n := len(p.idle); n > 0 {
		node := p.idle[n-1]
		p.idle[n-1] = nil
		p.idle = p.idle[:n-1]
		return node
	}
	node := &Node{}
	node.reset()
	return node
}

// Release resets the node and returns it to the pool. Releasing more nodes
// than the capacity silently discards the excess; nil is ignored.
func (p *NodePool) Release(node *Node) {
	if node == nil {
		return
	}
	node.reset()
	if len(p.idle) >= p.max {
		return
	}
	p.idle = append(p.idle, node)
}

// IdleCount returns the number of nodes currently held for reuse.
func (p *NodePool) IdleCount() int {
	return len(p.idle)
}

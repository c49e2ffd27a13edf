// Package history provides bounded undo/redo over whole-project snapshots.
// Snapshots are full copies rather than diffs: simpler and correct, at the
// cost of memory, bounded by a configurable maximum stack length.
package history

import (
	"github.com/jinzhu/copier"

	"mall-engine/internal/entities"
)

// DefaultMax is the stack depth used when New is given a non-positive limit.
const DefaultMax = 50

// Manager is an array-backed snapshot stack with a movable cursor. The
// cursor always points at the snapshot representing the current state, so
// Undo immediately followed by Redo returns to the same content.
type Manager struct {
	max     int
	stack   []*entities.Mall
	current int // cursor; -1 when the stack is empty
}

// New returns a history manager holding at most max snapshots.
func New(max int) *Manager {
	if max <= 0 {
		max = DefaultMax
	}
	return &Manager{max: max, current: -1}
}

// snapshotCopy deep-copies a project document so stored checkpoints and
// returned values never alias caller-held state.
func snapshotCopy(src *entities.Mall) *entities.Mall {
	if src == nil {
		return nil
	}
	dst := &entities.Mall{}
	_ = copier.CopyWithOption(dst, src, copier.Option{DeepCopy: true})
	return dst
}

// Push records a new checkpoint. If the cursor is not at the tail (the user
// undid and then made a fresh edit), everything after the cursor is
// discarded first: a new edit invalidates the redo branch. When the stack
// exceeds the maximum length the oldest entry is dropped and the cursor
// compensated, so it still refers to the just-pushed entry.
func (m *Manager) Push(snapshot *entities.Mall) {
	if snapshot == nil {
		return
	}
	if m.current < len(m.stack)-1 {
		m.stack = m.stack[:m.current+1]
	}
	m.stack = append(m.stack, snapshotCopy(snapshot))
	m.current++
	if len(m.stack) > m.max {
		m.stack = m.stack[1:]
		m.current--
	}
}

// Undo moves the cursor back one entry and returns a copy of the snapshot
// there. Returns nil when already at the first entry or empty.
func (m *Manager) Undo() *entities.Mall {
	if !m.CanUndo() {
		return nil
	}
	m.current--
	return snapshotCopy(m.stack[m.current])
}

// Redo moves the cursor forward one entry and returns a copy of the
// snapshot there. Returns nil when already at the last entry.
func (m *Manager) Redo() *entities.Mall {
	if !m.CanRedo() {
		return nil
	}
	m.current++
	return snapshotCopy(m.stack[m.current])
}

// CanUndo reports whether the cursor can move back.
func (m *Manager) CanUndo() bool {
	return m.current > 0
}

// CanRedo reports whether the cursor can move forward.
func (m *Manager) CanRedo() bool {
	return m.current >= 0 && m.current < len(m.stack)-1
}

// Count returns the number of stored snapshots.
func (m *Manager) Count() int {
	return len(m.stack)
}

// Clear drops every snapshot and resets the cursor.
func (m *Manager) Clear() {
	m.stack = nil
	m.current = -1
}

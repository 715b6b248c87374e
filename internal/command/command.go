// Package command provides reversible scene edits and the undo/redo
// history that executes them. Every edit targets objects by name so a
// command survives its target being recreated, and fails cleanly when
// the target is gone.
package command

import (
	"studio3d/internal/engine"
)

// Command is one reversible edit against the scene manager. Execute
// and Undo return false when the edit did not apply (typically a stale
// target name); in that case scene state is left unchanged.
type Command interface {
	Execute(mgr *engine.SceneManager) bool
	Undo(mgr *engine.SceneManager) bool

	// Description is a short label for UI display, e.g. "Move Cube".
	Description() string

	// CanMergeWith reports whether other can be folded into this
	// command, so a continuous drag collapses into one history entry.
	CanMergeWith(other Command) bool

	// MergeWith absorbs other's target value. The receiver keeps its
	// own captured before-state, so one undo reverts the whole chain.
	MergeWith(other Command)
}

// noMerge provides the default non-coalescing behavior.
type noMerge struct{}

func (noMerge) CanMergeWith(Command) bool { return false }
func (noMerge) MergeWith(Command)         {}

package command

import (
	"log"

	"studio3d/internal/engine"
)

// DefaultMaxDepth is the history cap when none is configured.
const DefaultMaxDepth = 100

// History holds the undo and redo stacks (most recent last). Exactly
// the commands on the undo stack, in order, have been applied and not
// reversed.
type History struct {
	undoStack []Command
	redoStack []Command
	maxDepth  int
	onChanged func()
}

// NewHistory returns a history capped at DefaultMaxDepth.
func NewHistory() *History {
	return NewHistoryWithDepth(DefaultMaxDepth)
}

// NewHistoryWithDepth returns a history with a custom cap. Depths
// below one fall back to the default.
func NewHistoryWithDepth(maxDepth int) *History {
	if maxDepth < 1 {
		maxDepth = DefaultMaxDepth
	}
	return &History{
		undoStack: make([]Command, 0, maxDepth),
		redoStack: make([]Command, 0, maxDepth),
		maxDepth:  maxDepth,
	}
}

// SetChangedCallback registers the single subscriber notified after
// every stack mutation.
func (h *History) SetChangedCallback(fn func()) {
	h.onChanged = fn
}

func (h *History) fireChanged() {
	if h.onChanged != nil {
		h.onChanged()
	}
}

// ExecuteCommand applies cmd against the manager. With mergeable set,
// the command is folded into the top undo entry when that entry accepts
// it, so a stream of drag updates lands in one history slot; the merged
// command object is discarded after its data is absorbed. A failed
// Execute leaves both stacks untouched.
func (h *History) ExecuteCommand(cmd Command, mgr *engine.SceneManager, mergeable bool) bool {
	if cmd == nil {
		return false
	}
	if mergeable && len(h.undoStack) > 0 {
		top := h.undoStack[len(h.undoStack)-1]
		if top.CanMergeWith(cmd) {
			if !cmd.Execute(mgr) {
				return false
			}
			top.MergeWith(cmd)
			h.fireChanged()
			return true
		}
	}
	if !cmd.Execute(mgr) {
		return false
	}
	h.redoStack = h.redoStack[:0]
	h.undoStack = append(h.undoStack, cmd)
	if len(h.undoStack) > h.maxDepth {
		// Evict the oldest entries from the bottom.
		over := len(h.undoStack) - h.maxDepth
		h.undoStack = append(h.undoStack[:0], h.undoStack[over:]...)
	}
	h.fireChanged()
	return true
}

// Undo reverses the most recent command. If the command's Undo fails
// (stale target) it is pushed back so it is never lost from both stacks.
func (h *History) Undo(mgr *engine.SceneManager) bool {
	if len(h.undoStack) == 0 {
		return false
	}
	cmd := h.undoStack[len(h.undoStack)-1]
	h.undoStack = h.undoStack[:len(h.undoStack)-1]
	if !cmd.Undo(mgr) {
		log.Printf("History: undo of %q failed, keeping it on the stack", cmd.Description())
		h.undoStack = append(h.undoStack, cmd)
		return false
	}
	h.redoStack = append(h.redoStack, cmd)
	h.fireChanged()
	return true
}

// Redo re-applies the most recently undone command, with the same
// push-back rollback on failure.
func (h *History) Redo(mgr *engine.SceneManager) bool {
	if len(h.redoStack) == 0 {
		return false
	}
	cmd := h.redoStack[len(h.redoStack)-1]
	h.redoStack = h.redoStack[:len(h.redoStack)-1]
	if !cmd.Execute(mgr) {
		log.Printf("History: redo of %q failed, keeping it on the stack", cmd.Description())
		h.redoStack = append(h.redoStack, cmd)
		return false
	}
	h.undoStack = append(h.undoStack, cmd)
	h.fireChanged()
	return true
}

// Clear empties both stacks.
func (h *History) Clear() {
	h.undoStack = h.undoStack[:0]
	h.redoStack = h.redoStack[:0]
	h.fireChanged()
}

// CanUndo reports whether an undo is available.
func (h *History) CanUndo() bool { return len(h.undoStack) > 0 }

// CanRedo reports whether a redo is available.
func (h *History) CanRedo() bool { return len(h.redoStack) > 0 }

// UndoCount returns the number of applied commands on the undo stack.
func (h *History) UndoCount() int { return len(h.undoStack) }

// RedoCount returns the number of reversed commands on the redo stack.
func (h *History) RedoCount() int { return len(h.redoStack) }

// UndoDescription returns the label of the next command to be undone,
// or "" when the stack is empty.
func (h *History) UndoDescription() string {
	if len(h.undoStack) == 0 {
		return ""
	}
	return h.undoStack[len(h.undoStack)-1].Description()
}

// RedoDescription returns the label of the next command to be redone,
// or "" when the stack is empty.
func (h *History) RedoDescription() string {
	if len(h.redoStack) == 0 {
		return ""
	}
	return h.redoStack[len(h.redoStack)-1].Description()
}

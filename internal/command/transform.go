package command

import (
	"log"

	rl "github.com/gen2brain/raylib-go/raylib"

	"studio3d/internal/engine"
)

// MoveCommand sets an object's local position. The before-value is
// captured at construction, while the pre-edit state is still current.
type MoveCommand struct {
	Target string
	Before rl.Vector3
	After  rl.Vector3
}

// NewMoveCommand captures obj's current position as the undo state.
func NewMoveCommand(obj *engine.SceneObject, to rl.Vector3) *MoveCommand {
	return &MoveCommand{
		Target: obj.Name,
		Before: obj.Transform.Position,
		After:  to,
	}
}

func (c *MoveCommand) Execute(mgr *engine.SceneManager) bool {
	obj := mgr.GetObject(c.Target)
	if obj == nil {
		log.Printf("MoveCommand: target %q no longer exists", c.Target)
		return false
	}
	obj.SetPosition(c.After)
	return true
}

func (c *MoveCommand) Undo(mgr *engine.SceneManager) bool {
	obj := mgr.GetObject(c.Target)
	if obj == nil {
		log.Printf("MoveCommand: undo target %q no longer exists", c.Target)
		return false
	}
	obj.SetPosition(c.Before)
	return true
}

func (c *MoveCommand) Description() string { return "Move " + c.Target }

func (c *MoveCommand) CanMergeWith(other Command) bool {
	o, ok := other.(*MoveCommand)
	return ok && o.Target == c.Target
}

func (c *MoveCommand) MergeWith(other Command) {
	if o, ok := other.(*MoveCommand); ok {
		c.After = o.After
	}
}

// RotateCommand sets an object's local Euler rotation (radians).
type RotateCommand struct {
	Target string
	Before rl.Vector3
	After  rl.Vector3
}

func NewRotateCommand(obj *engine.SceneObject, to rl.Vector3) *RotateCommand {
	return &RotateCommand{
		Target: obj.Name,
		Before: obj.Transform.Rotation,
		After:  to,
	}
}

func (c *RotateCommand) Execute(mgr *engine.SceneManager) bool {
	obj := mgr.GetObject(c.Target)
	if obj == nil {
		log.Printf("RotateCommand: target %q no longer exists", c.Target)
		return false
	}
	obj.SetRotation(c.After)
	return true
}

func (c *RotateCommand) Undo(mgr *engine.SceneManager) bool {
	obj := mgr.GetObject(c.Target)
	if obj == nil {
		log.Printf("RotateCommand: undo target %q no longer exists", c.Target)
		return false
	}
	obj.SetRotation(c.Before)
	return true
}

func (c *RotateCommand) Description() string { return "Rotate " + c.Target }

func (c *RotateCommand) CanMergeWith(other Command) bool {
	o, ok := other.(*RotateCommand)
	return ok && o.Target == c.Target
}

func (c *RotateCommand) MergeWith(other Command) {
	if o, ok := other.(*RotateCommand); ok {
		c.After = o.After
	}
}

// ScaleCommand sets an object's local scale.
type ScaleCommand struct {
	Target string
	Before rl.Vector3
	After  rl.Vector3
}

func NewScaleCommand(obj *engine.SceneObject, to rl.Vector3) *ScaleCommand {
	return &ScaleCommand{
		Target: obj.Name,
		Before: obj.Transform.Scale,
		After:  to,
	}
}

func (c *ScaleCommand) Execute(mgr *engine.SceneManager) bool {
	obj := mgr.GetObject(c.Target)
	if obj == nil {
		log.Printf("ScaleCommand: target %q no longer exists", c.Target)
		return false
	}
	obj.SetScale(c.After)
	return true
}

func (c *ScaleCommand) Undo(mgr *engine.SceneManager) bool {
	obj := mgr.GetObject(c.Target)
	if obj == nil {
		log.Printf("ScaleCommand: undo target %q no longer exists", c.Target)
		return false
	}
	obj.SetScale(c.Before)
	return true
}

func (c *ScaleCommand) Description() string { return "Scale " + c.Target }

func (c *ScaleCommand) CanMergeWith(other Command) bool {
	o, ok := other.(*ScaleCommand)
	return ok && o.Target == c.Target
}

func (c *ScaleCommand) MergeWith(other Command) {
	if o, ok := other.(*ScaleCommand); ok {
		c.After = o.After
	}
}

package command

import (
	"fmt"
	"log"

	"github.com/jinzhu/copier"

	"studio3d/internal/engine"
)

// ObjectSnapshot holds everything needed to rebuild a scene object:
// identity, transform, parent link, tags and asset references.
type ObjectSnapshot struct {
	Name         string
	Type         string
	Visible      bool
	Transform    engine.Transform
	ParentName   string
	Tags         []string
	MeshName     string
	MaterialName string
}

// snapshotObject deep-copies obj's rebuildable state. The tag slice
// must not alias the live object's, which mutates its slice in place.
func snapshotObject(obj *engine.SceneObject) ObjectSnapshot {
	var snap ObjectSnapshot
	if err := copier.CopyWithOption(&snap, obj, copier.Option{DeepCopy: true}); err != nil {
		log.Printf("command: snapshot of %q fell back to field copy: %v", obj.Name, err)
		snap = ObjectSnapshot{
			Name:         obj.Name,
			Type:         obj.Type,
			Visible:      obj.Visible,
			Transform:    obj.Transform,
			MeshName:     obj.MeshName,
			MaterialName: obj.MaterialName,
			Tags:         append([]string(nil), obj.Tags...),
		}
	}
	if obj.Parent != nil {
		snap.ParentName = obj.Parent.Name
	}
	return snap
}

// restore builds a new object from the snapshot under the given name
// and relinks it to its recorded parent if that parent still exists.
func (s ObjectSnapshot) restore(mgr *engine.SceneManager, name string) *engine.SceneObject {
	obj := mgr.CreateObject(name, s.Type)
	if obj == nil {
		return nil
	}
	obj.Visible = s.Visible
	obj.MeshName = s.MeshName
	obj.MaterialName = s.MaterialName
	obj.Tags = append([]string(nil), s.Tags...)
	obj.SetTransform(s.Transform)
	if s.ParentName != "" && mgr.GetObject(s.ParentName) != nil {
		mgr.SetParent(name, s.ParentName)
	}
	return obj
}

// DeleteObjectCommand removes an object destructively. Undo recreates
// it from the snapshot and reattaches it to its old parent; children
// that were orphaned by the delete stay orphaned.
type DeleteObjectCommand struct {
	noMerge
	snapshot ObjectSnapshot
}

// NewDeleteObjectCommand snapshots obj while it still exists.
func NewDeleteObjectCommand(obj *engine.SceneObject) *DeleteObjectCommand {
	return &DeleteObjectCommand{snapshot: snapshotObject(obj)}
}

func (c *DeleteObjectCommand) Execute(mgr *engine.SceneManager) bool {
	return mgr.RemoveObject(c.snapshot.Name)
}

func (c *DeleteObjectCommand) Undo(mgr *engine.SceneManager) bool {
	if mgr.GetObject(c.snapshot.Name) != nil {
		log.Printf("DeleteObjectCommand: cannot restore %q, name is taken", c.snapshot.Name)
		return false
	}
	return c.snapshot.restore(mgr, c.snapshot.Name) != nil
}

func (c *DeleteObjectCommand) Description() string {
	return "Delete " + c.snapshot.Name
}

// CreateObjectCommand adds a fresh object. Undo removes it again.
type CreateObjectCommand struct {
	noMerge
	Name string
	Type string
}

func NewCreateObjectCommand(name, objType string) *CreateObjectCommand {
	return &CreateObjectCommand{Name: name, Type: objType}
}

func (c *CreateObjectCommand) Execute(mgr *engine.SceneManager) bool {
	if mgr.GetObject(c.Name) != nil {
		log.Printf("CreateObjectCommand: %q already exists", c.Name)
		return false
	}
	return mgr.CreateObject(c.Name, c.Type) != nil
}

func (c *CreateObjectCommand) Undo(mgr *engine.SceneManager) bool {
	return mgr.RemoveObject(c.Name)
}

func (c *CreateObjectCommand) Description() string {
	return "Create " + c.Name
}

// ReparentCommand moves an object under a new parent (empty name for
// the scene root). The old parent is captured at construction.
type ReparentCommand struct {
	noMerge
	Child     string
	NewParent string
	OldParent string
}

func NewReparentCommand(child *engine.SceneObject, newParent string) *ReparentCommand {
	cmd := &ReparentCommand{Child: child.Name, NewParent: newParent}
	if child.Parent != nil {
		cmd.OldParent = child.Parent.Name
	}
	return cmd
}

func (c *ReparentCommand) Execute(mgr *engine.SceneManager) bool {
	return c.apply(mgr, c.NewParent)
}

func (c *ReparentCommand) Undo(mgr *engine.SceneManager) bool {
	return c.apply(mgr, c.OldParent)
}

func (c *ReparentCommand) apply(mgr *engine.SceneManager, parent string) bool {
	if mgr.GetObject(c.Child) == nil {
		log.Printf("ReparentCommand: target %q no longer exists", c.Child)
		return false
	}
	if parent == "" {
		return mgr.ClearParent(c.Child)
	}
	return mgr.SetParent(c.Child, parent)
}

func (c *ReparentCommand) Description() string {
	return "Reparent " + c.Child
}

// RenameCommand re-keys an object. Undo renames it back.
type RenameCommand struct {
	noMerge
	OldName string
	NewName string
}

func NewRenameCommand(oldName, newName string) *RenameCommand {
	return &RenameCommand{OldName: oldName, NewName: newName}
}

func (c *RenameCommand) Execute(mgr *engine.SceneManager) bool {
	return mgr.RenameObject(c.OldName, c.NewName)
}

func (c *RenameCommand) Undo(mgr *engine.SceneManager) bool {
	return mgr.RenameObject(c.NewName, c.OldName)
}

func (c *RenameCommand) Description() string {
	return fmt.Sprintf("Rename %s to %s", c.OldName, c.NewName)
}

// DuplicateCommand copies an object's snapshot under a fresh name,
// slightly offset so the copy is visible next to the original. Undo
// removes the copy.
type DuplicateCommand struct {
	noMerge
	Source   string
	CopyName string
	snapshot ObjectSnapshot
}

// NewDuplicateCommand snapshots obj and picks a free name for the copy.
func NewDuplicateCommand(mgr *engine.SceneManager, obj *engine.SceneObject) *DuplicateCommand {
	name := obj.Name + ".copy"
	for i := 2; mgr.GetObject(name) != nil; i++ {
		name = fmt.Sprintf("%s.copy%d", obj.Name, i)
	}
	snap := snapshotObject(obj)
	snap.Transform.Position.X += 0.5
	return &DuplicateCommand{Source: obj.Name, CopyName: name, snapshot: snap}
}

func (c *DuplicateCommand) Execute(mgr *engine.SceneManager) bool {
	if mgr.GetObject(c.CopyName) != nil {
		log.Printf("DuplicateCommand: %q already exists", c.CopyName)
		return false
	}
	return c.snapshot.restore(mgr, c.CopyName) != nil
}

func (c *DuplicateCommand) Undo(mgr *engine.SceneManager) bool {
	return mgr.RemoveObject(c.CopyName)
}

func (c *DuplicateCommand) Description() string {
	return "Duplicate " + c.Source
}

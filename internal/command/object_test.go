package command

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"

	"studio3d/internal/engine"
)

func TestDeleteUndoRoundTrip(t *testing.T) {
	mgr, _ := newTestScene(t)
	h := NewHistory()

	mgr.CreateObject("Grandparent", "Mesh")
	parent := mgr.CreateObject("Parent", "Mesh")
	parent.SetPosition(rl.Vector3{X: 1, Y: 2, Z: 3})
	parent.AddTag("enemy")
	parent.AddTag("boss")
	parent.MeshName = "ogre"
	mgr.SetParent("Parent", "Grandparent")
	mgr.CreateObject("Child", "Mesh")
	mgr.SetParent("Child", "Parent")

	if !h.ExecuteCommand(NewDeleteObjectCommand(parent), mgr, false) {
		t.Fatal("delete failed")
	}
	if mgr.GetObject("Parent") != nil {
		t.Fatal("object still present after delete")
	}

	if !h.Undo(mgr) {
		t.Fatal("undo of delete failed")
	}

	restored := mgr.GetObject("Parent")
	if restored == nil {
		t.Fatal("object not recreated by undo")
	}
	if restored.Type != "Mesh" || !restored.Visible {
		t.Error("identity not restored")
	}
	if !vecNear(restored.Transform.Position, rl.Vector3{X: 1, Y: 2, Z: 3}) {
		t.Errorf("transform not restored: %v", restored.Transform.Position)
	}
	if restored.MeshName != "ogre" {
		t.Errorf("mesh reference not restored: %q", restored.MeshName)
	}
	if len(restored.Tags) != 2 || !restored.HasTag("enemy") || !restored.HasTag("boss") {
		t.Errorf("tags not restored: %v", restored.Tags)
	}
	if restored.Parent == nil || restored.Parent.Name != "Grandparent" {
		t.Error("parent link not restored")
	}

	// Orphaning is not part of the delete, so undoing the delete does
	// not re-attach the former children.
	child := mgr.GetObject("Child")
	if child == nil {
		t.Fatal("child was deleted with its parent")
	}
	if child.Parent != nil {
		t.Error("former child should remain orphaned after delete-undo")
	}
}

func TestDeleteUndoSnapshotOutlivesMutation(t *testing.T) {
	mgr, cube := newTestScene(t)
	cube.AddTag("enemy")
	cube.AddTag("boss")

	cmd := NewDeleteObjectCommand(cube)

	// Mutating the live object after snapshotting must not leak into
	// the captured state. RemoveTag shifts the slice in place, so a
	// shallow tag copy would be corrupted here.
	cube.RemoveTag("enemy")
	cube.AddTag("late")
	cube.SetPosition(rl.Vector3{X: 9, Y: 9, Z: 9})

	cmd.Execute(mgr)
	cmd.Undo(mgr)

	restored := mgr.GetObject("Cube")
	if len(restored.Tags) != 2 || !restored.HasTag("enemy") || !restored.HasTag("boss") {
		t.Errorf("snapshot tags = %v, want the tags at capture time", restored.Tags)
	}
	if restored.HasTag("late") {
		t.Error("snapshot aliased the live tag slice")
	}
	if !vecNear(restored.Transform.Position, rl.Vector3{}) {
		t.Errorf("snapshot position = %v, want origin", restored.Transform.Position)
	}
}

func TestDeleteUndoFailsWhenNameRetaken(t *testing.T) {
	mgr, cube := newTestScene(t)
	cmd := NewDeleteObjectCommand(cube)
	cmd.Execute(mgr)

	mgr.CreateObject("Cube", "Camera")

	if cmd.Undo(mgr) {
		t.Error("undo should fail when the name was retaken")
	}
	if mgr.GetObject("Cube").Type != "Camera" {
		t.Error("failed undo must not clobber the new object")
	}
}

func TestCreateObjectCommand(t *testing.T) {
	mgr, _ := newTestScene(t)
	h := NewHistory()

	cmd := NewCreateObjectCommand("Lamp", "Mesh")
	if !h.ExecuteCommand(cmd, mgr, false) {
		t.Fatal("create failed")
	}
	if mgr.GetObject("Lamp") == nil {
		t.Fatal("object missing after create")
	}

	if h.ExecuteCommand(NewCreateObjectCommand("Lamp", "Mesh"), mgr, false) {
		t.Error("creating a taken name should fail")
	}

	h.Undo(mgr)
	if mgr.GetObject("Lamp") != nil {
		t.Error("object still present after undoing create")
	}
}

func TestReparentCommand(t *testing.T) {
	mgr, _ := newTestScene(t)
	h := NewHistory()
	mgr.CreateObject("A", "Mesh")
	mgr.CreateObject("B", "Mesh")
	child := mgr.CreateObject("Child", "Mesh")
	mgr.SetParent("Child", "A")

	if !h.ExecuteCommand(NewReparentCommand(child, "B"), mgr, false) {
		t.Fatal("reparent failed")
	}
	if child.Parent == nil || child.Parent.Name != "B" {
		t.Error("child not attached to B")
	}

	h.Undo(mgr)
	if child.Parent == nil || child.Parent.Name != "A" {
		t.Error("undo did not restore the old parent")
	}

	// Unparent, then undo back under A.
	if !h.ExecuteCommand(NewReparentCommand(child, ""), mgr, false) {
		t.Fatal("unparent failed")
	}
	if child.Parent != nil {
		t.Error("child should be a root after unparent")
	}
	h.Undo(mgr)
	if child.Parent == nil || child.Parent.Name != "A" {
		t.Error("undo did not restore the parent after unparent")
	}
}

func TestRenameCommand(t *testing.T) {
	mgr, _ := newTestScene(t)
	h := NewHistory()

	if !h.ExecuteCommand(NewRenameCommand("Cube", "Crate"), mgr, false) {
		t.Fatal("rename failed")
	}
	if mgr.GetObject("Crate") == nil || mgr.GetObject("Cube") != nil {
		t.Error("rename not applied")
	}

	h.Undo(mgr)
	if mgr.GetObject("Cube") == nil || mgr.GetObject("Crate") != nil {
		t.Error("undo did not restore the old name")
	}
}

func TestDuplicateCommand(t *testing.T) {
	mgr, cube := newTestScene(t)
	h := NewHistory()
	cube.SetPosition(rl.Vector3{X: 1, Y: 0, Z: 0})
	cube.AddTag("prop")

	cmd := NewDuplicateCommand(mgr, cube)
	if !h.ExecuteCommand(cmd, mgr, false) {
		t.Fatal("duplicate failed")
	}

	copy := mgr.GetObject("Cube.copy")
	if copy == nil {
		t.Fatal("copy not created")
	}
	if !copy.HasTag("prop") {
		t.Error("copy did not inherit tags")
	}
	if !vecNear(copy.Transform.Position, rl.Vector3{X: 1.5, Y: 0, Z: 0}) {
		t.Errorf("copy position = %v, want offset original", copy.Transform.Position)
	}

	// A second duplicate picks the next free name.
	h.ExecuteCommand(NewDuplicateCommand(mgr, cube), mgr, false)
	if mgr.GetObject("Cube.copy2") == nil {
		t.Error("second copy should be named Cube.copy2")
	}

	h.Undo(mgr)
	h.Undo(mgr)
	if mgr.GetObject("Cube.copy") != nil || mgr.GetObject("Cube.copy2") != nil {
		t.Error("undo did not remove the copies")
	}
}

func TestTransformMergeRules(t *testing.T) {
	mgr, cube := newTestScene(t)
	other := mgr.CreateObject("Other", "Mesh")

	move := NewMoveCommand(cube, rl.Vector3{X: 5, Y: 0, Z: 0})
	sameTarget := NewMoveCommand(cube, rl.Vector3{X: 10, Y: 0, Z: 0})
	otherTarget := NewMoveCommand(other, rl.Vector3{X: 10, Y: 0, Z: 0})
	scale := NewScaleCommand(cube, rl.Vector3{X: 2, Y: 2, Z: 2})

	if !move.CanMergeWith(sameTarget) {
		t.Error("same-kind same-target commands should merge")
	}
	if move.CanMergeWith(otherTarget) {
		t.Error("commands on different targets must not merge")
	}
	if move.CanMergeWith(scale) {
		t.Error("commands of different kinds must not merge")
	}

	move.MergeWith(sameTarget)
	if !vecNear(move.After, rl.Vector3{X: 10, Y: 0, Z: 0}) {
		t.Errorf("merge did not adopt the new target value: %v", move.After)
	}
	if !vecNear(move.Before, rl.Vector3{}) {
		t.Errorf("merge must keep the original before-state: %v", move.Before)
	}
}

func TestRotateAndScaleCommands(t *testing.T) {
	mgr, cube := newTestScene(t)
	h := NewHistory()

	rot := rl.Vector3{X: 0, Y: 1.5, Z: 0}
	h.ExecuteCommand(NewRotateCommand(cube, rot), mgr, false)
	if !vecNear(cube.Transform.Rotation, rot) {
		t.Errorf("rotation = %v", cube.Transform.Rotation)
	}

	sc := rl.Vector3{X: 2, Y: 3, Z: 4}
	h.ExecuteCommand(NewScaleCommand(cube, sc), mgr, false)
	if !vecNear(cube.Transform.Scale, sc) {
		t.Errorf("scale = %v", cube.Transform.Scale)
	}

	h.Undo(mgr)
	h.Undo(mgr)
	if !vecNear(cube.Transform.Rotation, rl.Vector3{}) {
		t.Errorf("rotation after undo = %v", cube.Transform.Rotation)
	}
	if !vecNear(cube.Transform.Scale, rl.Vector3{X: 1, Y: 1, Z: 1}) {
		t.Errorf("scale after undo = %v", cube.Transform.Scale)
	}
}

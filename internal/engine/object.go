package engine

import (
	"log"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// SceneObject is a named entity in the scene graph. It owns its children
// and keeps a non-owning back-reference to its parent. The world matrix
// is cached and recomputed lazily when the local transform or any
// ancestor changes.
type SceneObject struct {
	Name         string
	Type         string
	Visible      bool
	MeshName     string
	MaterialName string
	Tags         []string
	Transform    Transform
	Parent       *SceneObject
	Children     []*SceneObject

	worldMatrix rl.Matrix
	dirty       bool
}

// NewSceneObject creates an object with an identity transform.
func NewSceneObject(name, objType string) *SceneObject {
	return &SceneObject{
		Name:      name,
		Type:      objType,
		Visible:   true,
		Transform: NewTransform(),
		Children:  make([]*SceneObject, 0),
		dirty:     true,
	}
}

// SetPosition stores the new local position and invalidates cached
// world matrices for this object and all descendants. Values are not
// range-checked.
func (o *SceneObject) SetPosition(pos rl.Vector3) {
	o.Transform.Position = pos
	o.MarkDirty()
}

// SetRotation stores new Euler angles (radians) and invalidates caches.
func (o *SceneObject) SetRotation(rot rl.Vector3) {
	o.Transform.Rotation = rot
	o.MarkDirty()
}

// SetScale stores the new local scale and invalidates caches.
func (o *SceneObject) SetScale(scale rl.Vector3) {
	o.Transform.Scale = scale
	o.MarkDirty()
}

// SetTransform replaces the whole local transform at once.
func (o *SceneObject) SetTransform(t Transform) {
	o.Transform = t
	o.MarkDirty()
}

// MarkDirty flags this object's cached world matrix as stale, along
// with every descendant's. A child is flagged exactly once per actual
// mutation, not per frame.
func (o *SceneObject) MarkDirty() {
	o.dirty = true
	for _, child := range o.Children {
		child.MarkDirty()
	}
}

// WorldMatrix returns the cached world matrix, recomputing it first if
// the object or any ancestor changed since the last read.
func (o *SceneObject) WorldMatrix() rl.Matrix {
	if o.dirty {
		local := o.Transform.LocalMatrix()
		if o.Parent != nil {
			o.worldMatrix = rl.MatrixMultiply(local, o.Parent.WorldMatrix())
		} else {
			o.worldMatrix = local
		}
		o.dirty = false
	}
	return o.worldMatrix
}

// WorldPosition returns the object's origin transformed into world space.
func (o *SceneObject) WorldPosition() rl.Vector3 {
	return rl.Vector3Transform(rl.Vector3{}, o.WorldMatrix())
}

// SetParent detaches the object from its current parent (if any) and
// attaches it under newParent. A nil parent makes the object a root.
func (o *SceneObject) SetParent(newParent *SceneObject) {
	if o.Parent == newParent {
		return
	}
	if o.Parent != nil {
		o.Parent.RemoveChild(o)
	}
	if newParent != nil {
		newParent.AddChild(o)
	} else {
		o.MarkDirty()
	}
}

// AddChild appends child to this object's children and points the
// child's parent reference back here. Adding a child that is already
// present logs a warning and changes nothing.
func (o *SceneObject) AddChild(child *SceneObject) {
	if child == nil {
		log.Printf("SceneObject %q: AddChild called with nil child", o.Name)
		return
	}
	for _, c := range o.Children {
		if c == child {
			log.Printf("SceneObject %q: child %q already attached", o.Name, child.Name)
			return
		}
	}
	if child.Parent != nil {
		child.Parent.RemoveChild(child)
	}
	child.Parent = o
	o.Children = append(o.Children, child)
	child.MarkDirty()
}

// RemoveChild detaches child from this object. Removing an absent child
// logs a warning and changes nothing.
func (o *SceneObject) RemoveChild(child *SceneObject) {
	for i, c := range o.Children {
		if c == child {
			o.Children = append(o.Children[:i], o.Children[i+1:]...)
			child.Parent = nil
			child.MarkDirty()
			return
		}
	}
	if child != nil {
		log.Printf("SceneObject %q: RemoveChild: %q is not a child", o.Name, child.Name)
	}
}

// IsDescendantOf reports whether ancestor appears anywhere in this
// object's parent chain.
func (o *SceneObject) IsDescendantOf(ancestor *SceneObject) bool {
	p := o.Parent
	for p != nil {
		if p == ancestor {
			return true
		}
		p = p.Parent
	}
	return false
}

// Update refreshes the cached world matrix if needed, then recurses
// into children unconditionally: a child's own local transform may have
// changed even when this node is clean.
func (o *SceneObject) Update(deltaTime float32) {
	if o.dirty {
		o.WorldMatrix()
	}
	for _, child := range o.Children {
		child.Update(deltaTime)
	}
}

// AddTag appends a tag. Duplicate tags are rejected with a warning.
func (o *SceneObject) AddTag(tag string) {
	if o.HasTag(tag) {
		log.Printf("SceneObject %q: tag %q already present", o.Name, tag)
		return
	}
	o.Tags = append(o.Tags, tag)
}

// RemoveTag removes a tag if present.
func (o *SceneObject) RemoveTag(tag string) {
	for i, t := range o.Tags {
		if t == tag {
			o.Tags = append(o.Tags[:i], o.Tags[i+1:]...)
			return
		}
	}
}

// HasTag reports whether the object carries the given tag.
func (o *SceneObject) HasTag(tag string) bool {
	for _, t := range o.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// Render hands the object to the renderer collaborator. The scene graph
// never draws anything itself.
func (o *SceneObject) Render(r Renderer) {
	if r == nil || !o.Visible {
		return
	}
	r.DrawObject(o)
}

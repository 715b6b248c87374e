package engine

// callbacks holds the scene manager's change notifications. Each slot
// has at most one subscriber; setting a callback replaces the previous
// one and firing with none registered is a no-op.
type callbacks struct {
	objectAdded    func(obj *SceneObject)
	objectRemoved  func(name string)
	objectSelected func(name string)
	sceneChanged   func()
}

func (c *callbacks) fireObjectAdded(obj *SceneObject) {
	if c.objectAdded != nil {
		c.objectAdded(obj)
	}
}

func (c *callbacks) fireObjectRemoved(name string) {
	if c.objectRemoved != nil {
		c.objectRemoved(name)
	}
}

func (c *callbacks) fireObjectSelected(name string) {
	if c.objectSelected != nil {
		c.objectSelected(name)
	}
}

func (c *callbacks) fireSceneChanged() {
	if c.sceneChanged != nil {
		c.sceneChanged()
	}
}

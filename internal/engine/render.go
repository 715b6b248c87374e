package engine

// Renderer is the drawing collaborator. The core calls it once per
// visible entity per frame after Update; what drawing means is entirely
// up to the implementation.
type Renderer interface {
	DrawObject(obj *SceneObject)
	DrawLight(l *Light)
}

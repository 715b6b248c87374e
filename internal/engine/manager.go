package engine

import (
	"log"
	"sort"
)

// SceneManager owns every object and light in the loaded scene, keyed
// by name. It enforces name uniqueness, manages hierarchy edits and
// selection, tracks the active camera and fires change notifications.
type SceneManager struct {
	SceneName string

	objects      map[string]*SceneObject
	lights       map[string]*Light
	selected     string
	activeCamera string

	callbacks callbacks
}

// NewSceneManager returns an empty manager with no scene loaded.
func NewSceneManager() *SceneManager {
	return &SceneManager{
		objects: make(map[string]*SceneObject),
		lights:  make(map[string]*Light),
	}
}

// SetObjectAddedCallback registers the single object-added subscriber.
func (m *SceneManager) SetObjectAddedCallback(fn func(obj *SceneObject)) {
	m.callbacks.objectAdded = fn
}

// SetObjectRemovedCallback registers the single object-removed subscriber.
func (m *SceneManager) SetObjectRemovedCallback(fn func(name string)) {
	m.callbacks.objectRemoved = fn
}

// SetObjectSelectedCallback registers the single selection subscriber.
// Deselection fires it with an empty name.
func (m *SceneManager) SetObjectSelectedCallback(fn func(name string)) {
	m.callbacks.objectSelected = fn
}

// SetSceneChangedCallback registers the single scene-changed subscriber.
func (m *SceneManager) SetSceneChangedCallback(fn func()) {
	m.callbacks.sceneChanged = fn
}

// CreateScene resets the manager to an empty scene with the given name.
// Calling it while already on that scene is a no-op success.
func (m *SceneManager) CreateScene(name string) bool {
	if name == "" {
		log.Println("SceneManager: CreateScene with empty name")
		return false
	}
	if m.SceneName == name {
		return true
	}
	m.reset()
	m.SceneName = name
	m.callbacks.fireSceneChanged()
	return true
}

// UnloadScene drops every object and light and clears the scene name.
func (m *SceneManager) UnloadScene() {
	m.reset()
	m.callbacks.fireSceneChanged()
}

func (m *SceneManager) reset() {
	m.objects = make(map[string]*SceneObject)
	m.lights = make(map[string]*Light)
	m.selected = ""
	m.activeCamera = ""
	m.SceneName = ""
}

// CreateObject creates and registers a new object. An empty name or
// type fails. If the name is already taken the existing object is
// returned with a warning rather than an error.
func (m *SceneManager) CreateObject(name, objType string) *SceneObject {
	if name == "" || objType == "" {
		log.Printf("SceneManager: CreateObject rejected (name=%q type=%q)", name, objType)
		return nil
	}
	if existing, ok := m.objects[name]; ok {
		log.Printf("SceneManager: object %q already exists, returning it", name)
		return existing
	}
	obj := NewSceneObject(name, objType)
	m.objects[name] = obj
	m.callbacks.fireObjectAdded(obj)
	return obj
}

// RemoveObject deletes the named object. Its children are detached and
// become roots; they are not deleted. Selection pointing at the object
// is cleared.
func (m *SceneManager) RemoveObject(name string) bool {
	if name == "" {
		log.Println("SceneManager: RemoveObject with empty name")
		return false
	}
	obj, ok := m.objects[name]
	if !ok {
		log.Printf("SceneManager: RemoveObject: %q not found", name)
		return false
	}
	if m.selected == name {
		m.selected = ""
	}
	if m.activeCamera == name {
		m.activeCamera = ""
	}
	if obj.Parent != nil {
		obj.Parent.RemoveChild(obj)
	}
	for len(obj.Children) > 0 {
		obj.RemoveChild(obj.Children[0])
	}
	delete(m.objects, name)
	m.callbacks.fireObjectRemoved(name)
	return true
}

// GetObject returns the named object, or nil.
func (m *SceneManager) GetObject(name string) *SceneObject {
	if name == "" {
		return nil
	}
	return m.objects[name]
}

// RenameObject re-keys an object under a new unique name, updating the
// selection and active camera if they pointed at it.
func (m *SceneManager) RenameObject(oldName, newName string) bool {
	if oldName == "" || newName == "" {
		log.Println("SceneManager: RenameObject with empty name")
		return false
	}
	obj, ok := m.objects[oldName]
	if !ok {
		log.Printf("SceneManager: RenameObject: %q not found", oldName)
		return false
	}
	if oldName == newName {
		return true
	}
	if _, taken := m.objects[newName]; taken {
		log.Printf("SceneManager: RenameObject: %q already taken", newName)
		return false
	}
	delete(m.objects, oldName)
	obj.Name = newName
	m.objects[newName] = obj
	if m.selected == oldName {
		m.selected = newName
	}
	if m.activeCamera == oldName {
		m.activeCamera = newName
	}
	m.callbacks.fireSceneChanged()
	return true
}

// FindByTag returns all objects carrying the tag, sorted by name.
func (m *SceneManager) FindByTag(tag string) []*SceneObject {
	var result []*SceneObject
	for _, obj := range m.objects {
		if obj.HasTag(tag) {
			result = append(result, obj)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result
}

// ObjectNames returns all object names in sorted order.
func (m *SceneManager) ObjectNames() []string {
	names := make([]string, 0, len(m.objects))
	for name := range m.objects {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ObjectCount returns the number of registered objects.
func (m *SceneManager) ObjectCount() int {
	return len(m.objects)
}

// SetParent attaches child under parent. It rejects empty names,
// self-parenting, unknown objects, and any edit that would make an
// object its own ancestor.
func (m *SceneManager) SetParent(childName, parentName string) bool {
	if childName == "" || parentName == "" {
		log.Println("SceneManager: SetParent with empty name")
		return false
	}
	if childName == parentName {
		log.Printf("SceneManager: SetParent: %q cannot parent itself", childName)
		return false
	}
	child := m.objects[childName]
	parent := m.objects[parentName]
	if child == nil || parent == nil {
		log.Printf("SceneManager: SetParent: %q or %q not found", childName, parentName)
		return false
	}
	if parent.IsDescendantOf(child) {
		log.Printf("SceneManager: SetParent: %q is a descendant of %q, would create a cycle", parentName, childName)
		return false
	}
	child.SetParent(parent)
	m.callbacks.fireSceneChanged()
	return true
}

// ClearParent makes the named object a root.
func (m *SceneManager) ClearParent(childName string) bool {
	child := m.objects[childName]
	if child == nil {
		log.Printf("SceneManager: ClearParent: %q not found", childName)
		return false
	}
	child.SetParent(nil)
	m.callbacks.fireSceneChanged()
	return true
}

// SelectObject makes the named object the single current selection.
// Selecting an unknown name warns and leaves the selection unchanged.
func (m *SceneManager) SelectObject(name string) bool {
	if _, ok := m.objects[name]; !ok {
		log.Printf("SceneManager: SelectObject: %q not found", name)
		return false
	}
	m.selected = name
	m.callbacks.fireObjectSelected(name)
	return true
}

// DeselectObject clears the selection.
func (m *SceneManager) DeselectObject() {
	m.selected = ""
	m.callbacks.fireObjectSelected("")
}

// SelectedObject returns the currently selected object, or nil.
func (m *SceneManager) SelectedObject() *SceneObject {
	if m.selected == "" {
		return nil
	}
	return m.objects[m.selected]
}

// SelectedName returns the currently selected object's name ("" if none).
func (m *SceneManager) SelectedName() string {
	return m.selected
}

// CreateLight creates and registers a light. Lights share the object
// naming rules but live in a disjoint namespace.
func (m *SceneManager) CreateLight(name string, kind LightKind) *Light {
	if name == "" {
		log.Println("SceneManager: CreateLight with empty name")
		return nil
	}
	if existing, ok := m.lights[name]; ok {
		log.Printf("SceneManager: light %q already exists, returning it", name)
		return existing
	}
	light := NewLight(name, kind)
	m.lights[name] = light
	m.callbacks.fireSceneChanged()
	return light
}

// RemoveLight deletes the named light.
func (m *SceneManager) RemoveLight(name string) bool {
	if _, ok := m.lights[name]; !ok {
		log.Printf("SceneManager: RemoveLight: %q not found", name)
		return false
	}
	delete(m.lights, name)
	m.callbacks.fireSceneChanged()
	return true
}

// GetLight returns the named light, or nil.
func (m *SceneManager) GetLight(name string) *Light {
	return m.lights[name]
}

// LightNames returns all light names in sorted order.
func (m *SceneManager) LightNames() []string {
	names := make([]string, 0, len(m.lights))
	for name := range m.lights {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// SetActiveCamera marks an existing object as the scene's camera.
func (m *SceneManager) SetActiveCamera(name string) bool {
	if _, ok := m.objects[name]; !ok {
		log.Printf("SceneManager: SetActiveCamera: %q not found", name)
		return false
	}
	m.activeCamera = name
	return true
}

// ActiveCamera returns the active camera object, or nil.
func (m *SceneManager) ActiveCamera() *SceneObject {
	if m.activeCamera == "" {
		return nil
	}
	return m.objects[m.activeCamera]
}

// ActiveCameraName returns the active camera's name ("" if none).
func (m *SceneManager) ActiveCameraName() string {
	return m.activeCamera
}

// Update refreshes world matrices from the roots down.
func (m *SceneManager) Update(deltaTime float32) {
	for _, name := range m.ObjectNames() {
		obj := m.objects[name]
		if obj.Parent == nil {
			obj.Update(deltaTime)
		}
	}
}

// Render hands every visible object and every light to the renderer,
// in name order.
func (m *SceneManager) Render(r Renderer) {
	if r == nil {
		return
	}
	for _, name := range m.ObjectNames() {
		m.objects[name].Render(r)
	}
	for _, name := range m.LightNames() {
		m.lights[name].Render(r)
	}
}

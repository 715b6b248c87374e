// Package serializer persists a scene to the versioned JSON text
// format and rebuilds it. Parent links are resolved in a second pass so
// an object may name a parent that appears later in the document.
package serializer

import (
	"encoding/json"
	"fmt"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"

	"studio3d/internal/engine"
)

// Version is written to every scene document.
const Version = 1

type sceneFile struct {
	Version      int         `json:"version"`
	SceneName    string      `json:"sceneName"`
	Objects      []objectDef `json:"objects"`
	Lights       []lightDef  `json:"lights"`
	ActiveCamera string      `json:"activeCamera,omitempty"`
	Selected     string      `json:"selected,omitempty"`
}

type objectDef struct {
	Name     string     `json:"name"`
	Type     string     `json:"type"`
	Visible  bool       `json:"visible"`
	Position [3]float32 `json:"position"`
	Rotation [3]float32 `json:"rotation"`
	// Nil means the document omitted the field, not a zero scale.
	Scale  *[3]float32 `json:"scale"`
	Parent *string     `json:"parent"`
	Tags     []string   `json:"tags,omitempty"`
	Mesh     string     `json:"mesh,omitempty"`
	Material string     `json:"material,omitempty"`
}

type lightDef struct {
	Name      string     `json:"name"`
	Kind      string     `json:"kind"`
	Position  [3]float32 `json:"position"`
	Direction [3]float32 `json:"direction"`
	Color     [4]uint8   `json:"color"`
	Intensity float32    `json:"intensity"`
	Range     float32    `json:"range,omitempty"`
	SpotAngle float32    `json:"spotAngle,omitempty"`
}

var kindByName = map[string]engine.LightKind{
	"Directional": engine.LightDirectional,
	"Point":       engine.LightPoint,
	"Spot":        engine.LightSpot,
}

func toArray(v rl.Vector3) [3]float32 {
	return [3]float32{v.X, v.Y, v.Z}
}

func toVector(a [3]float32) rl.Vector3 {
	return rl.Vector3{X: a[0], Y: a[1], Z: a[2]}
}

// SerializeToString renders the manager's full state as JSON text.
// Objects and lights are emitted in name order so output is stable.
func SerializeToString(mgr *engine.SceneManager) (string, error) {
	sf := sceneFile{
		Version:      Version,
		SceneName:    mgr.SceneName,
		Objects:      make([]objectDef, 0, mgr.ObjectCount()),
		Lights:       make([]lightDef, 0),
		ActiveCamera: mgr.ActiveCameraName(),
		Selected:     mgr.SelectedName(),
	}

	for _, name := range mgr.ObjectNames() {
		obj := mgr.GetObject(name)
		scale := toArray(obj.Transform.Scale)
		def := objectDef{
			Name:     obj.Name,
			Type:     obj.Type,
			Visible:  obj.Visible,
			Position: toArray(obj.Transform.Position),
			Rotation: toArray(obj.Transform.Rotation),
			Scale:    &scale,
			Tags:     obj.Tags,
			Mesh:     obj.MeshName,
			Material: obj.MaterialName,
		}
		if obj.Parent != nil {
			parent := obj.Parent.Name
			def.Parent = &parent
		}
		sf.Objects = append(sf.Objects, def)
	}

	for _, name := range mgr.LightNames() {
		light := mgr.GetLight(name)
		sf.Lights = append(sf.Lights, lightDef{
			Name:      light.Name,
			Kind:      light.Kind.String(),
			Position:  toArray(light.Position),
			Direction: toArray(light.Direction),
			Color:     [4]uint8{light.Color.R, light.Color.G, light.Color.B, light.Color.A},
			Intensity: light.Intensity,
			Range:     light.Range,
			SpotAngle: light.SpotAngle,
		})
	}

	data, err := json.MarshalIndent(sf, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal scene: %w", err)
	}
	return string(data), nil
}

// DeserializeFromString replaces the manager's contents with the scene
// described by text. Pass one creates every object and light; pass two
// relinks parents, tolerating forward references.
func DeserializeFromString(mgr *engine.SceneManager, text string) error {
	var sf sceneFile
	if err := json.Unmarshal([]byte(text), &sf); err != nil {
		return fmt.Errorf("parse scene: %w", err)
	}
	if sf.Version > Version {
		return fmt.Errorf("scene version %d is newer than supported version %d", sf.Version, Version)
	}

	mgr.UnloadScene()
	mgr.CreateScene(sf.SceneName)

	for _, def := range sf.Objects {
		obj := mgr.CreateObject(def.Name, def.Type)
		if obj == nil {
			return fmt.Errorf("scene object %q: invalid definition", def.Name)
		}
		obj.Visible = def.Visible
		obj.MeshName = def.Mesh
		obj.MaterialName = def.Material
		obj.Tags = append([]string(nil), def.Tags...)
		scale := rl.Vector3{X: 1, Y: 1, Z: 1}
		if def.Scale != nil {
			scale = toVector(*def.Scale)
		}
		obj.SetTransform(engine.Transform{
			Position: toVector(def.Position),
			Rotation: toVector(def.Rotation),
			Scale:    scale,
		})
	}

	for _, def := range sf.Lights {
		kind, ok := kindByName[def.Kind]
		if !ok {
			kind = engine.LightPoint
		}
		light := mgr.CreateLight(def.Name, kind)
		if light == nil {
			return fmt.Errorf("scene light %q: invalid definition", def.Name)
		}
		light.Position = toVector(def.Position)
		light.Direction = toVector(def.Direction)
		light.Color = rl.Color{R: def.Color[0], G: def.Color[1], B: def.Color[2], A: def.Color[3]}
		light.Intensity = def.Intensity
		light.Range = def.Range
		light.SpotAngle = def.SpotAngle
	}

	// Second pass: parents may be declared after their children.
	for _, def := range sf.Objects {
		if def.Parent != nil && *def.Parent != "" {
			if !mgr.SetParent(def.Name, *def.Parent) {
				return fmt.Errorf("scene object %q: cannot attach to parent %q", def.Name, *def.Parent)
			}
		}
	}

	if sf.ActiveCamera != "" {
		mgr.SetActiveCamera(sf.ActiveCamera)
	}
	if sf.Selected != "" {
		mgr.SelectObject(sf.Selected)
	}
	return nil
}

// SaveScene writes the serialized scene to path.
func SaveScene(mgr *engine.SceneManager, path string) error {
	text, err := SerializeToString(mgr)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, []byte(text), 0644); err != nil {
		return fmt.Errorf("write scene: %w", err)
	}
	return nil
}

// LoadScene reads a scene document from path into the manager.
func LoadScene(mgr *engine.SceneManager, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read scene: %w", err)
	}
	return DeserializeFromString(mgr, string(data))
}

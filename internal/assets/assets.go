// Package assets loads and caches meshes and materials by name. The
// scene graph only ever stores the names; lookups come back through
// this package.
package assets

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
)

// Mesh is the loaded summary of a glTF mesh file. Vertex data stays on
// the renderer side; the core only needs identity and counts.
type Mesh struct {
	Name          string
	Path          string
	VertexCount   int
	TriangleCount int
}

// Material defines surface properties for rendering.
type Material struct {
	Name      string
	Color     rl.Color
	Metallic  float32
	Roughness float32
	Emissive  float32
}

// materialDef is the JSON format for material files.
type materialDef struct {
	Name      string  `json:"name"`
	Color     string  `json:"color"`
	Metallic  float32 `json:"metallic"`
	Roughness float32 `json:"roughness"`
	Emissive  float32 `json:"emissive"`
}

var colorByName = map[string]rl.Color{
	"Red":       rl.Red,
	"Blue":      rl.Blue,
	"Green":     rl.Green,
	"Purple":    rl.Purple,
	"Orange":    rl.Orange,
	"Yellow":    rl.Yellow,
	"Gold":      rl.Gold,
	"White":     rl.White,
	"Gray":      rl.Gray,
	"LightGray": rl.LightGray,
	"DarkGray":  rl.DarkGray,
	"Black":     rl.Black,
	"Pink":      rl.Pink,
	"Maroon":    rl.Maroon,
	"Brown":     rl.Brown,
	"Beige":     rl.Beige,
	"SkyBlue":   rl.SkyBlue,
	"Lime":      rl.Lime,
}

// LookupColor returns a raylib color from a name string.
func LookupColor(name string) rl.Color {
	if c, ok := colorByName[name]; ok {
		return c
	}
	return rl.White
}

var manager *Manager

// Manager caches loaded assets by name.
type Manager struct {
	meshes    map[string]*Mesh
	materials map[string]*Material
}

// Init resets the package-level asset manager.
func Init() {
	manager = &Manager{
		meshes:    make(map[string]*Mesh),
		materials: make(map[string]*Material),
	}
}

func ensureInit() {
	if manager == nil {
		Init()
	}
}

// LoadMesh parses a glTF/GLB file and caches the mesh under its base
// file name. Loading an already-cached path returns the cached entry.
func LoadMesh(path string) (*Mesh, error) {
	ensureInit()

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	if mesh, ok := manager.meshes[name]; ok {
		return mesh, nil
	}

	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open gltf %s: %w", path, err)
	}

	mesh := &Mesh{Name: name, Path: path}
	for _, m := range doc.Meshes {
		for _, prim := range m.Primitives {
			if idx, ok := prim.Attributes[gltf.POSITION]; ok {
				positions, err := modeler.ReadPosition(doc, doc.Accessors[idx], nil)
				if err != nil {
					return nil, fmt.Errorf("read positions in %s: %w", path, err)
				}
				mesh.VertexCount += len(positions)
			}
			if prim.Indices != nil {
				indices, err := modeler.ReadIndices(doc, doc.Accessors[*prim.Indices], nil)
				if err != nil {
					return nil, fmt.Errorf("read indices in %s: %w", path, err)
				}
				mesh.TriangleCount += len(indices) / 3
			}
		}
	}

	manager.meshes[name] = mesh
	return mesh, nil
}

// GetMesh returns a cached mesh by name, or nil.
func GetMesh(name string) *Mesh {
	ensureInit()
	return manager.meshes[name]
}

// LoadMaterial reads a material definition file and caches it.
func LoadMaterial(path string) (*Material, error) {
	ensureInit()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read material: %w", err)
	}
	var def materialDef
	if err := json.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("parse material: %w", err)
	}
	if def.Name == "" {
		def.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	mat := &Material{
		Name:      def.Name,
		Color:     LookupColor(def.Color),
		Metallic:  def.Metallic,
		Roughness: def.Roughness,
		Emissive:  def.Emissive,
	}
	manager.materials[mat.Name] = mat
	return mat, nil
}

// GetMaterial returns a cached material by name, or nil.
func GetMaterial(name string) *Material {
	ensureInit()
	return manager.materials[name]
}

package engine

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// LightKind selects the light model.
type LightKind int

const (
	LightDirectional LightKind = iota
	LightPoint
	LightSpot
)

func (k LightKind) String() string {
	switch k {
	case LightDirectional:
		return "Directional"
	case LightPoint:
		return "Point"
	case LightSpot:
		return "Spot"
	}
	return "Unknown"
}

// Light is a named light source. Lights live in their own namespace in
// the scene manager, disjoint from objects.
type Light struct {
	Name      string
	Kind      LightKind
	Position  rl.Vector3
	Direction rl.Vector3
	Color     rl.Color
	Intensity float32
	Range     float32
	SpotAngle float32
}

// NewLight returns a white light of the given kind.
func NewLight(name string, kind LightKind) *Light {
	return &Light{
		Name:      name,
		Kind:      kind,
		Direction: rl.Vector3{X: 0, Y: -1, Z: 0},
		Color:     rl.White,
		Intensity: 1,
		Range:     10,
	}
}

// Render hands the light to the renderer collaborator.
func (l *Light) Render(r Renderer) {
	if r == nil {
		return
	}
	r.DrawLight(l)
}

package engine

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Transform holds the local position, rotation and scale of a scene object.
// Rotation is Euler angles in radians, applied X then Y then Z.
type Transform struct {
	Position rl.Vector3
	Rotation rl.Vector3
	Scale    rl.Vector3
}

// NewTransform returns an identity transform.
func NewTransform() Transform {
	return Transform{
		Scale: rl.Vector3{X: 1, Y: 1, Z: 1},
	}
}

// LocalMatrix composes the transform into a matrix that applies
// scale, then rotation, then translation.
func (t Transform) LocalMatrix() rl.Matrix {
	scale := rl.MatrixScale(t.Scale.X, t.Scale.Y, t.Scale.Z)

	rotX := rl.MatrixRotateX(t.Rotation.X)
	rotY := rl.MatrixRotateY(t.Rotation.Y)
	rotZ := rl.MatrixRotateZ(t.Rotation.Z)
	rotation := rl.MatrixMultiply(rl.MatrixMultiply(rotX, rotY), rotZ)

	translation := rl.MatrixTranslate(t.Position.X, t.Position.Y, t.Position.Z)

	return rl.MatrixMultiply(rl.MatrixMultiply(scale, rotation), translation)
}

package components

import (
	"raypick/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type MeshType int

const (
	MeshCube MeshType = iota
	MeshSphere
	MeshPlane
)

// MeshRenderer draws a primitive at the owning object's world position.
type MeshRenderer struct {
	engine.BaseComponent
	MeshType  MeshType
	Color     rl.Color
	Size      rl.Vector3 // full extents; X is the radius for spheres
	Wireframe bool
}

func NewMeshRenderer(meshType MeshType, color rl.Color, size rl.Vector3) *MeshRenderer {
	return &MeshRenderer{
		MeshType: meshType,
		Color:    color,
		Size:     size,
	}
}

// Draw must be called between rl.BeginMode3D and rl.EndMode3D.
func (m *MeshRenderer) Draw() {
	g := m.GetGameObject()
	if g == nil || !g.Active {
		return
	}

	pos := g.WorldPosition()
	scale := g.WorldScale()
	size := rl.Vector3{X: m.Size.X * scale.X, Y: m.Size.Y * scale.Y, Z: m.Size.Z * scale.Z}

	switch m.MeshType {
	case MeshCube:
		rl.DrawCubeV(pos, size, m.Color)
		if m.Wireframe {
			rl.DrawCubeWiresV(pos, size, rl.Black)
		}
	case MeshSphere:
		rl.DrawSphere(pos, size.X, m.Color)
		if m.Wireframe {
			rl.DrawSphereWires(pos, size.X, 12, 12, rl.Black)
		}
	case MeshPlane:
		rl.DrawPlane(pos, rl.Vector2{X: size.X, Y: size.Z}, m.Color)
	}
}

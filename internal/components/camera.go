package components

import (
	"raypick/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type Camera struct {
	engine.BaseComponent
	FOV        float32 // vertical, degrees; world-space height for orthographic
	Near       float32
	Far        float32
	Projection rl.CameraProjection
	IsMain     bool // If true, this is the active game camera
}

func NewCamera() *Camera {
	return &Camera{
		FOV:        45.0,
		Near:       0.1,
		Far:        1000.0,
		Projection: rl.CameraPerspective,
	}
}

// Position returns the eye position in world space.
func (c *Camera) Position() rl.Vector3 {
	g := c.GetGameObject()
	if g == nil {
		return rl.Vector3{}
	}
	return g.WorldPosition()
}

// Forward returns the world-space view direction of the owning object.
func (c *Camera) Forward() rl.Vector3 {
	g := c.GetGameObject()
	if g == nil {
		return engine.Forward
	}
	return rl.Vector3RotateByQuaternion(engine.Forward, g.WorldRotation())
}

// Up returns the world-space up vector of the owning object.
func (c *Camera) Up() rl.Vector3 {
	g := c.GetGameObject()
	if g == nil {
		return rl.Vector3{Y: 1}
	}
	return rl.Vector3RotateByQuaternion(rl.Vector3{Y: 1}, g.WorldRotation())
}

func (c *Camera) GetRaylibCamera() rl.Camera3D {
	if c.GetGameObject() == nil {
		return rl.Camera3D{}
	}
	eye := c.Position()
	return rl.Camera3D{
		Position:   eye,
		Target:     rl.Vector3Add(eye, c.Forward()),
		Up:         c.Up(),
		Fovy:       c.FOV,
		Projection: c.Projection,
	}
}

// FindMainCamera returns the first camera in scene flagged IsMain, falling
// back to the first camera found.
func FindMainCamera(scene *engine.Scene) *Camera {
	if scene == nil {
		return nil
	}
	var first *Camera
	for _, g := range scene.GameObjects {
		cam := engine.GetComponent[*Camera](g)
		if cam == nil {
			continue
		}
		if cam.IsMain {
			return cam
		}
		if first == nil {
			first = cam
		}
	}
	return first
}

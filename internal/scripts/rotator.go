package scripts

import (
	"raypick/internal/engine"
	"raypick/internal/mathx"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Rotator is a simple script that spins an object around the world Y axis.
type Rotator struct {
	engine.BaseComponent
	Speed float32 // degrees per second
}

func (r *Rotator) Update(deltaTime float32) {
	g := r.GetGameObject()
	if g == nil {
		return
	}
	step := rl.QuaternionFromAxisAngle(mathx.UnitY, r.Speed*deltaTime*rl.Deg2rad)
	g.Transform.Rotation = rl.QuaternionNormalize(rl.QuaternionMultiply(step, g.Transform.Rotation))
}

func init() {
	engine.RegisterScript("Rotator", rotatorFactory, rotatorSerializer)
}

func rotatorFactory(props map[string]any) engine.Component {
	speed := float32(90)
	if v, ok := props["speed"].(float64); ok {
		speed = float32(v)
	}
	return &Rotator{Speed: speed}
}

func rotatorSerializer(c engine.Component) map[string]any {
	r, ok := c.(*Rotator)
	if !ok {
		return nil
	}
	return map[string]any{
		"speed": float64(r.Speed),
	}
}

package components

import (
	"raypick/internal/engine"
	"raypick/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type BoxCollider struct {
	engine.BaseComponent
	Size   rl.Vector3
	Offset rl.Vector3
	Group  physics.CollisionFilterGroups
	Mask   physics.CollisionFilterGroupFlags
}

func NewBoxCollider(size rl.Vector3) *BoxCollider {
	return &BoxCollider{
		Size:  size,
		Group: physics.DefaultFilter,
		Mask:  physics.AllFilter,
	}
}

// GetCenter returns the world-space center of this collider
func (b *BoxCollider) GetCenter() rl.Vector3 {
	return rl.Vector3Add(b.GetGameObject().WorldPosition(), b.Offset)
}

// GetWorldSize returns the collider size scaled by the object's world scale
func (b *BoxCollider) GetWorldSize() rl.Vector3 {
	scale := b.GetGameObject().WorldScale()
	return rl.Vector3{X: b.Size.X * scale.X, Y: b.Size.Y * scale.Y, Z: b.Size.Z * scale.Z}
}

// GetAABB returns the world-space bounds. Rotation is not applied.
func (b *BoxCollider) GetAABB() physics.AABB {
	return physics.NewAABBFromCenter(b.GetCenter(), b.GetWorldSize())
}

func (b *BoxCollider) CollisionGroup() physics.CollisionFilterGroups { return b.Group }

func (b *BoxCollider) CanCollideWith() physics.CollisionFilterGroupFlags { return b.Mask }

func (b *BoxCollider) IntersectRay(origin, direction rl.Vector3, maxDistance float32) (physics.Hit, bool) {
	return physics.IntersectAABB(origin, direction, b.GetAABB(), maxDistance)
}

package components

import (
	"raypick/internal/engine"
	"raypick/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type SphereCollider struct {
	engine.BaseComponent
	Radius float32
	Offset rl.Vector3
	Group  physics.CollisionFilterGroups
	Mask   physics.CollisionFilterGroupFlags
}

func NewSphereCollider(radius float32) *SphereCollider {
	return &SphereCollider{
		Radius: radius,
		Group:  physics.DefaultFilter,
		Mask:   physics.AllFilter,
	}
}

// GetCenter returns the world-space center of this collider
func (s *SphereCollider) GetCenter() rl.Vector3 {
	return rl.Vector3Add(s.GetGameObject().WorldPosition(), s.Offset)
}

// GetWorldRadius scales the radius by the largest world scale axis.
func (s *SphereCollider) GetWorldRadius() float32 {
	scale := s.GetGameObject().WorldScale()
	return s.Radius * max(abs(scale.X), abs(scale.Y), abs(scale.Z))
}

func (s *SphereCollider) CollisionGroup() physics.CollisionFilterGroups { return s.Group }

func (s *SphereCollider) CanCollideWith() physics.CollisionFilterGroupFlags { return s.Mask }

func (s *SphereCollider) IntersectRay(origin, direction rl.Vector3, maxDistance float32) (physics.Hit, bool) {
	return physics.IntersectSphere(origin, direction, s.GetCenter(), s.GetWorldRadius(), maxDistance)
}

func abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

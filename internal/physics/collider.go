package physics

import (
	"raypick/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Collider is a component the simulation can query against.
type Collider interface {
	engine.Component
	CollisionGroup() CollisionFilterGroups
	CanCollideWith() CollisionFilterGroupFlags
	// IntersectRay tests a normalized ray up to maxDistance.
	IntersectRay(origin, direction rl.Vector3, maxDistance float32) (Hit, bool)
}

// Hit is a single shape intersection along a ray.
type Hit struct {
	Point    rl.Vector3
	Normal   rl.Vector3
	Distance float32
}

// HitResult is the outcome of a simulation query.
type HitResult struct {
	Succeeded bool
	Collider  Collider
	Point     rl.Vector3
	Normal    rl.Vector3
	// HitFraction is the distance of the hit along the query segment, in [0, 1].
	HitFraction float32
}

// Entity returns the GameObject owning the hit collider.
func (h HitResult) Entity() *engine.GameObject {
	if h.Collider == nil {
		return nil
	}
	return h.Collider.GetGameObject()
}

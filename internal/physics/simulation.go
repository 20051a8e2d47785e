package physics

import (
	"slices"

	"raypick/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Simulation answers ray queries against registered colliders.
// It performs no dynamics.
type Simulation struct {
	colliders []Collider
}

func NewSimulation() *Simulation {
	return &Simulation{colliders: make([]Collider, 0)}
}

// AddCollider registers c. Adding the same collider twice is a no-op.
func (s *Simulation) AddCollider(c Collider) {
	if slices.Contains(s.colliders, c) {
		return
	}
	s.colliders = append(s.colliders, c)
}

func (s *Simulation) RemoveCollider(c Collider) {
	if i := slices.Index(s.colliders, c); i >= 0 {
		s.colliders = slices.Delete(s.colliders, i, i+1)
	}
}

// Register adds every collider component of g and returns how many were added.
func (s *Simulation) Register(g *engine.GameObject) int {
	colliders := engine.FindComponents[Collider](g)
	for _, c := range colliders {
		s.AddCollider(c)
	}
	return len(colliders)
}

// Unregister removes every collider component of g and of its descendants.
func (s *Simulation) Unregister(g *engine.GameObject) {
	for _, child := range g.Children {
		s.Unregister(child)
	}
	for _, c := range engine.FindComponents[Collider](g) {
		s.RemoveCollider(c)
	}
}

func (s *Simulation) Colliders() []Collider {
	return s.colliders
}

// Raycast returns the closest hit between from and to using the default filter.
func (s *Simulation) Raycast(from, to rl.Vector3) HitResult {
	return s.RaycastFiltered(from, to, DefaultFilter, AllFilter)
}

// RaycastFiltered returns the closest hit between from and to among colliders
// accepted by the group/mask pair.
func (s *Simulation) RaycastFiltered(from, to rl.Vector3, group CollisionFilterGroups, mask CollisionFilterGroupFlags) HitResult {
	var closest HitResult
	s.cast(from, to, group, mask, func(h HitResult) {
		if !closest.Succeeded || h.HitFraction < closest.HitFraction {
			closest = h
		}
	})
	return closest
}

// RaycastPenetrating appends every hit between from and to into results,
// nearest first.
func (s *Simulation) RaycastPenetrating(from, to rl.Vector3, results *[]HitResult) {
	s.RaycastPenetratingFiltered(from, to, results, DefaultFilter, AllFilter)
}

func (s *Simulation) RaycastPenetratingFiltered(from, to rl.Vector3, results *[]HitResult, group CollisionFilterGroups, mask CollisionFilterGroupFlags) {
	start := len(*results)
	s.cast(from, to, group, mask, func(h HitResult) {
		*results = append(*results, h)
	})
	slices.SortStableFunc((*results)[start:], func(a, b HitResult) int {
		switch {
		case a.HitFraction < b.HitFraction:
			return -1
		case a.HitFraction > b.HitFraction:
			return 1
		}
		return 0
	})
}

// RaycastPenetratingNew is RaycastPenetrating into a freshly allocated slice.
func (s *Simulation) RaycastPenetratingNew(from, to rl.Vector3) []HitResult {
	return s.RaycastPenetratingNewFiltered(from, to, DefaultFilter, AllFilter)
}

func (s *Simulation) RaycastPenetratingNewFiltered(from, to rl.Vector3, group CollisionFilterGroups, mask CollisionFilterGroupFlags) []HitResult {
	results := make([]HitResult, 0)
	s.RaycastPenetratingFiltered(from, to, &results, group, mask)
	return results
}

func (s *Simulation) cast(from, to rl.Vector3, group CollisionFilterGroups, mask CollisionFilterGroupFlags, visit func(HitResult)) {
	delta := rl.Vector3Subtract(to, from)
	length := rl.Vector3Length(delta)
	if length == 0 {
		return
	}
	direction := rl.Vector3Scale(delta, 1/length)

	for _, c := range s.colliders {
		g := c.GetGameObject()
		if g == nil || !g.Active {
			continue
		}
		if !canInteract(group, mask, c.CollisionGroup(), c.CanCollideWith()) {
			continue
		}
		hit, ok := c.IntersectRay(from, direction, length)
		if !ok {
			continue
		}
		visit(HitResult{
			Succeeded:   true,
			Collider:    c,
			Point:       hit.Point,
			Normal:      hit.Normal,
			HitFraction: hit.Distance / length,
		})
	}
}

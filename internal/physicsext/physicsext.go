// Package physicsext adds RaySegment-based raycast helpers on top of the
// physics simulation. Every helper validates its simulation argument and
// forwards the segment's endpoints unchanged.
package physicsext

import (
	"fmt"
	"reflect"

	"raypick/internal/engine"
	"raypick/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var (
	ErrNilSimulation = fmt.Errorf("%w: simulation is nil", engine.ErrInvalidArgument)
	ErrNilResults    = fmt.Errorf("%w: results is nil", engine.ErrInvalidArgument)
)

// Raycaster is the simulation query surface the helpers forward to.
// *physics.Simulation implements it.
type Raycaster interface {
	Raycast(from, to rl.Vector3) physics.HitResult
	RaycastFiltered(from, to rl.Vector3, group physics.CollisionFilterGroups, mask physics.CollisionFilterGroupFlags) physics.HitResult
	RaycastPenetrating(from, to rl.Vector3, results *[]physics.HitResult)
	RaycastPenetratingFiltered(from, to rl.Vector3, results *[]physics.HitResult, group physics.CollisionFilterGroups, mask physics.CollisionFilterGroupFlags)
	RaycastPenetratingNew(from, to rl.Vector3) []physics.HitResult
	RaycastPenetratingNewFiltered(from, to rl.Vector3, group physics.CollisionFilterGroups, mask physics.CollisionFilterGroupFlags) []physics.HitResult
}

var _ Raycaster = (*physics.Simulation)(nil)

// Raycast stops at the first hit along seg.
func Raycast(sim Raycaster, seg physics.RaySegment) (physics.HitResult, error) {
	if isNil(sim) {
		return physics.HitResult{}, ErrNilSimulation
	}
	return sim.Raycast(seg.Start, seg.End), nil
}

// RaycastFiltered stops at the first hit along seg. group is the query's own
// collision group and mask the groups it can collide with.
func RaycastFiltered(sim Raycaster, seg physics.RaySegment, group physics.CollisionFilterGroups, mask physics.CollisionFilterGroupFlags) (physics.HitResult, error) {
	if isNil(sim) {
		return physics.HitResult{}, ErrNilSimulation
	}
	return sim.RaycastFiltered(seg.Start, seg.End, group, mask), nil
}

// RaycastPenetrating appends every shape seg passes through to *results.
func RaycastPenetrating(sim Raycaster, seg physics.RaySegment, results *[]physics.HitResult) error {
	if isNil(sim) {
		return ErrNilSimulation
	}
	if results == nil {
		return ErrNilResults
	}
	sim.RaycastPenetrating(seg.Start, seg.End, results)
	return nil
}

// RaycastPenetratingFiltered appends every shape seg passes through to
// *results, honoring the filter.
func RaycastPenetratingFiltered(sim Raycaster, seg physics.RaySegment, results *[]physics.HitResult, group physics.CollisionFilterGroups, mask physics.CollisionFilterGroupFlags) error {
	if isNil(sim) {
		return ErrNilSimulation
	}
	if results == nil {
		return ErrNilResults
	}
	sim.RaycastPenetratingFiltered(seg.Start, seg.End, results, group, mask)
	return nil
}

// RaycastPenetratingNew returns a new slice with every shape seg passes through.
func RaycastPenetratingNew(sim Raycaster, seg physics.RaySegment) ([]physics.HitResult, error) {
	if isNil(sim) {
		return nil, ErrNilSimulation
	}
	return sim.RaycastPenetratingNew(seg.Start, seg.End), nil
}

// RaycastPenetratingNewFiltered returns a new slice with every shape seg
// passes through, honoring the filter.
func RaycastPenetratingNewFiltered(sim Raycaster, seg physics.RaySegment, group physics.CollisionFilterGroups, mask physics.CollisionFilterGroupFlags) ([]physics.HitResult, error) {
	if isNil(sim) {
		return nil, ErrNilSimulation
	}
	return sim.RaycastPenetratingNewFiltered(seg.Start, seg.End, group, mask), nil
}

// isNil catches both a nil interface and an interface holding a nil pointer.
func isNil(sim Raycaster) bool {
	if sim == nil {
		return true
	}
	v := reflect.ValueOf(sim)
	return v.Kind() == reflect.Pointer && v.IsNil()
}

package physics

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
)

func TestRaySegment(t *testing.T) {
	seg := NewRaySegment(rl.Vector3{X: 1}, rl.Vector3{X: 1, Y: 4})

	assert.Equal(t, float32(4), seg.Length())
	assert.Equal(t, rl.Vector3{Y: 1}, seg.Direction())
	assert.Equal(t, rl.Vector3{X: 1, Y: 1}, seg.PointAt(0.25))
	assert.Equal(t, "Start:(1.00, 0.00, 0.00) End:(1.00, 4.00, 0.00)", seg.String())
}

func TestFilterInteraction(t *testing.T) {
	assert.True(t, canInteract(DefaultFilter, AllFilter, StaticFilter, AllFilter))
	assert.False(t, canInteract(DefaultFilter, DefaultFilterFlag, StaticFilter, AllFilter))
	assert.False(t, canInteract(DefaultFilter, AllFilter, StaticFilter, StaticFilterFlag))
	assert.False(t, canInteract(DefaultFilter, NoneFilter, DefaultFilter, AllFilter))
	assert.True(t, AllFilter.Has(CustomFilter10))
}

func TestIntersectAABBParallelRay(t *testing.T) {
	box := NewAABBFromCenter(rl.Vector3{}, rl.Vector3{X: 2, Y: 2, Z: 2})

	_, ok := IntersectAABB(rl.Vector3{X: -5, Y: 3}, rl.Vector3{X: 1}, box, 100)
	assert.False(t, ok, "parallel ray outside the Y slab misses")

	hit, ok := IntersectAABB(rl.Vector3{X: -5, Y: 0.5}, rl.Vector3{X: 1}, box, 100)
	assert.True(t, ok)
	assert.InDelta(t, 4, hit.Distance, 1e-5)

	_, ok = IntersectAABB(rl.Vector3{X: 5}, rl.Vector3{X: 1}, box, 100)
	assert.False(t, ok, "box behind the ray")
}

func TestNewAABBFromCenter(t *testing.T) {
	box := NewAABBFromCenter(rl.Vector3{X: 1}, rl.Vector3{X: -2, Y: 2, Z: 2})

	assert.Equal(t, rl.Vector3{X: 0, Y: -1, Z: -1}, box.Min)
	assert.Equal(t, rl.Vector3{X: 2, Y: 1, Z: 1}, box.Max)
}

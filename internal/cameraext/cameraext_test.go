package cameraext

import (
	"testing"

	"raypick/internal/components"
	"raypick/internal/engine"
	"raypick/internal/physics"
	"raypick/internal/physicsext"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var viewport = Viewport{Width: 800, Height: 600}

func newCamera(pos rl.Vector3) *components.Camera {
	g := engine.NewGameObject("Camera")
	g.Transform.Position = pos
	cam := components.NewCamera()
	cam.FOV = 90
	cam.Near = 1
	cam.Far = 100
	g.AddComponent(cam)
	return cam
}

func assertVectorNear(t *testing.T, want, got rl.Vector3, delta float64) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, delta, "X")
	assert.InDelta(t, want.Y, got.Y, delta, "Y")
	assert.InDelta(t, want.Z, got.Z, delta, "Z")
}

func TestWorldToScreenPerspective(t *testing.T) {
	cam := newCamera(rl.Vector3{})
	tests := []struct {
		name string
		pos  rl.Vector3
		want rl.Vector2
	}{
		{"center", rl.Vector3{Z: -10}, rl.Vector2{X: 400, Y: 300}},
		{"top edge", rl.Vector3{Y: 10, Z: -10}, rl.Vector2{X: 400, Y: 0}},
		{"bottom edge", rl.Vector3{Y: -5, Z: -5}, rl.Vector2{X: 400, Y: 600}},
		{"right edge", rl.Vector3{X: 40.0 / 3, Z: -10}, rl.Vector2{X: 800, Y: 300}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := WorldToScreen(cam, tt.pos, viewport)
			require.NoError(t, err)
			assert.InDelta(t, tt.want.X, got.X, 0.05)
			assert.InDelta(t, tt.want.Y, got.Y, 0.05)
		})
	}
}

func TestWorldToScreenPoint(t *testing.T) {
	cam := newCamera(rl.Vector3{})

	p, err := WorldToScreenPoint(cam, rl.Vector3{X: 2.5, Y: -2.5, Z: -10}, viewport)
	require.NoError(t, err)
	assert.Equal(t, ScreenPoint{X: 475, Y: 375}, p)
	assert.Equal(t, "X:475 Y:375", p.String())
	assert.Equal(t, rl.Vector2{X: 475, Y: 375}, p.Vector2())
}

func TestScreenToWorldRaySegmentSpansFrustum(t *testing.T) {
	cam := newCamera(rl.Vector3{X: 1, Y: 2, Z: 3})

	seg, err := ScreenToWorldRaySegment(cam, rl.Vector2{X: 400, Y: 300}, viewport)
	require.NoError(t, err)
	assertVectorNear(t, rl.Vector3{X: 1, Y: 2, Z: 2}, seg.Start, 1e-3)
	assertVectorNear(t, rl.Vector3{X: 1, Y: 2, Z: -97}, seg.End, 0.05)
}

func TestScreenWorldRoundTrip(t *testing.T) {
	cam := newCamera(rl.Vector3{X: 3, Y: 4, Z: 10})
	cam.GetGameObject().Transform.SetEuler(-20, 30, 0)
	target := rl.Vector3Add(cam.Position(), rl.Vector3Scale(cam.Forward(), 20))
	target = rl.Vector3Add(target, rl.Vector3{X: 2, Y: -1, Z: 0.5})

	screen, err := WorldToScreen(cam, target, viewport)
	require.NoError(t, err)

	seg, err := ScreenToWorldRaySegment(cam, screen, viewport)
	require.NoError(t, err)

	// target must lie on the segment's line
	toTarget := rl.Vector3Subtract(target, seg.Start)
	along := rl.Vector3DotProduct(toTarget, seg.Direction())
	closest := rl.Vector3Add(seg.Start, rl.Vector3Scale(seg.Direction(), along))
	assertVectorNear(t, target, closest, 0.01)
	assert.Greater(t, along, float32(0))
	assert.Less(t, along, seg.Length())

	depthPoint, err := ScreenToWorldPoint(cam, screen, -1, viewport)
	require.NoError(t, err)
	assertVectorNear(t, seg.Start, depthPoint, 1e-4)
}

func TestRotatedCameraLooksAlongForward(t *testing.T) {
	cam := newCamera(rl.Vector3{})
	cam.GetGameObject().Transform.SetEuler(0, 90, 0)

	got, err := WorldToScreen(cam, rl.Vector3{X: -10}, viewport)
	require.NoError(t, err)
	assert.InDelta(t, 400, got.X, 0.05)
	assert.InDelta(t, 300, got.Y, 0.05)
}

func TestOrthographicProjection(t *testing.T) {
	cam := newCamera(rl.Vector3{})
	cam.Projection = rl.CameraOrthographic
	cam.FOV = 20
	vp := Viewport{Width: 200, Height: 100}

	got, err := WorldToScreen(cam, rl.Vector3{X: 10, Y: 5, Z: -5}, vp)
	require.NoError(t, err)
	assert.InDelta(t, 150, got.X, 1e-3)
	assert.InDelta(t, 25, got.Y, 1e-3)

	seg, err := ScreenToWorldRaySegment(cam, got, vp)
	require.NoError(t, err)
	assertVectorNear(t, rl.Vector3{X: 10, Y: 5, Z: -1}, seg.Start, 1e-3)
	assertVectorNear(t, rl.Vector3{X: 10, Y: 5, Z: -100}, seg.End, 0.01)
}

func TestInvalidArguments(t *testing.T) {
	detached := components.NewCamera()
	cam := newCamera(rl.Vector3{})

	_, err := WorldToScreen(nil, rl.Vector3{}, viewport)
	assert.ErrorIs(t, err, ErrNilCamera)
	assert.ErrorIs(t, err, engine.ErrInvalidArgument)

	_, err = ScreenToWorldRaySegment(detached, rl.Vector2{}, viewport)
	assert.ErrorIs(t, err, ErrNilCamera)

	_, err = ScreenToWorldPoint(cam, rl.Vector2{}, 0, Viewport{Width: 800})
	assert.ErrorIs(t, err, ErrEmptyViewport)

	_, err = WorldToScreenPoint(cam, rl.Vector3{}, Viewport{})
	assert.ErrorIs(t, err, ErrEmptyViewport)

	_, err = ViewMatrix(nil)
	assert.ErrorIs(t, err, ErrNilCamera)

	_, err = ViewMatrix(detached)
	assert.ErrorIs(t, err, ErrNilCamera)

	_, err = ProjectionMatrix(nil, viewport)
	assert.ErrorIs(t, err, ErrNilCamera)

	_, err = ProjectionMatrix(cam, Viewport{})
	assert.ErrorIs(t, err, ErrEmptyViewport)
}

func TestMatricesComposeViewProjection(t *testing.T) {
	cam := newCamera(rl.Vector3{Y: 2, Z: 10})

	view, err := ViewMatrix(cam)
	require.NoError(t, err)
	proj, err := ProjectionMatrix(cam, viewport)
	require.NoError(t, err)
	viewProj, err := ViewProjection(cam, viewport)
	require.NoError(t, err)

	assert.Equal(t, rl.MatrixMultiply(view, proj), viewProj)
}

func TestMouseRayHitsProjectedObject(t *testing.T) {
	cam := newCamera(rl.Vector3{Y: 5, Z: 15})
	cam.GetGameObject().Transform.Rotation = rl.QuaternionFromAxisAngle(rl.Vector3{X: 1}, -20*rl.Deg2rad)

	sim := physics.NewSimulation()
	cube := engine.NewGameObject("Cube")
	cube.Transform.Position = rl.Vector3{X: 3, Y: 1, Z: -2}
	cube.AddComponent(components.NewBoxCollider(rl.Vector3{X: 2, Y: 2, Z: 2}))
	sim.Register(cube)

	screen, err := WorldToScreen(cam, cube.Transform.Position, viewport)
	require.NoError(t, err)
	seg, err := ScreenToWorldRaySegment(cam, screen, viewport)
	require.NoError(t, err)

	hit, err := physicsext.Raycast(sim, seg)
	require.NoError(t, err)
	require.True(t, hit.Succeeded)
	assert.Same(t, cube, hit.Entity())
}

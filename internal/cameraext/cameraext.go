// Package cameraext converts between screen pixels and world space for a
// camera component.
package cameraext

import (
	"fmt"
	"math"

	"raypick/internal/components"
	"raypick/internal/engine"
	"raypick/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var (
	ErrNilCamera     = fmt.Errorf("%w: camera is nil or detached", engine.ErrInvalidArgument)
	ErrEmptyViewport = fmt.Errorf("%w: viewport has no area", engine.ErrInvalidArgument)
)

// Viewport is the render target size in pixels.
type Viewport struct {
	Width  int32
	Height int32
}

func (v Viewport) AspectRatio() float32 {
	return float32(v.Width) / float32(v.Height)
}

// ScreenPoint is an integer pixel position, origin top-left.
type ScreenPoint struct {
	X, Y int32
}

func (p ScreenPoint) Vector2() rl.Vector2 {
	return rl.Vector2{X: float32(p.X), Y: float32(p.Y)}
}

func (p ScreenPoint) String() string {
	return fmt.Sprintf("X:%d Y:%d", p.X, p.Y)
}

func validateCamera(cam *components.Camera) error {
	if cam == nil || cam.GetGameObject() == nil {
		return ErrNilCamera
	}
	return nil
}

func validate(cam *components.Camera, vp Viewport) error {
	if err := validateCamera(cam); err != nil {
		return err
	}
	if vp.Width <= 0 || vp.Height <= 0 {
		return ErrEmptyViewport
	}
	return nil
}

// ViewMatrix returns the world-to-view transform of cam.
func ViewMatrix(cam *components.Camera) (rl.Matrix, error) {
	if err := validateCamera(cam); err != nil {
		return rl.Matrix{}, err
	}
	return viewMatrix(cam), nil
}

// ProjectionMatrix returns the view-to-clip transform of cam for vp.
func ProjectionMatrix(cam *components.Camera, vp Viewport) (rl.Matrix, error) {
	if err := validate(cam, vp); err != nil {
		return rl.Matrix{}, err
	}
	return projectionMatrix(cam, vp), nil
}

// ViewProjection returns the combined world-to-clip transform.
func ViewProjection(cam *components.Camera, vp Viewport) (rl.Matrix, error) {
	if err := validate(cam, vp); err != nil {
		return rl.Matrix{}, err
	}
	return rl.MatrixMultiply(viewMatrix(cam), projectionMatrix(cam, vp)), nil
}

func viewMatrix(cam *components.Camera) rl.Matrix {
	eye := cam.Position()
	return rl.MatrixLookAt(eye, rl.Vector3Add(eye, cam.Forward()), cam.Up())
}

func projectionMatrix(cam *components.Camera, vp Viewport) rl.Matrix {
	aspect := vp.AspectRatio()
	if cam.Projection == rl.CameraOrthographic {
		top := cam.FOV / 2
		right := top * aspect
		return rl.MatrixOrtho(-right, right, -top, top, cam.Near, cam.Far)
	}
	top := cam.Near * float32(math.Tan(float64(cam.FOV*rl.Deg2rad/2)))
	right := top * aspect
	return rl.MatrixFrustum(-right, right, -top, top, cam.Near, cam.Far)
}

// WorldToScreen projects pos onto vp in pixels. Points behind a perspective
// camera project mirrored through the center.
func WorldToScreen(cam *components.Camera, pos rl.Vector3, vp Viewport) (rl.Vector2, error) {
	viewProj, err := ViewProjection(cam, vp)
	if err != nil {
		return rl.Vector2{}, err
	}
	ndc := transformPoint(pos, viewProj)
	return rl.Vector2{
		X: (ndc.X + 1) / 2 * float32(vp.Width),
		Y: (1 - ndc.Y) / 2 * float32(vp.Height),
	}, nil
}

// WorldToScreenPoint is WorldToScreen rounded to whole pixels.
func WorldToScreenPoint(cam *components.Camera, pos rl.Vector3, vp Viewport) (ScreenPoint, error) {
	v, err := WorldToScreen(cam, pos, vp)
	if err != nil {
		return ScreenPoint{}, err
	}
	return ScreenPoint{
		X: int32(math.Round(float64(v.X))),
		Y: int32(math.Round(float64(v.Y))),
	}, nil
}

// ScreenToWorldPoint unprojects a pixel at the given NDC depth, -1 on the
// near plane and 1 on the far plane.
func ScreenToWorldPoint(cam *components.Camera, screen rl.Vector2, depth float32, vp Viewport) (rl.Vector3, error) {
	viewProj, err := ViewProjection(cam, vp)
	if err != nil {
		return rl.Vector3{}, err
	}
	return unproject(screen, depth, rl.MatrixInvert(viewProj), vp), nil
}

// ScreenToWorldRaySegment returns the segment through a pixel from the near
// plane to the far plane.
func ScreenToWorldRaySegment(cam *components.Camera, screen rl.Vector2, vp Viewport) (physics.RaySegment, error) {
	viewProj, err := ViewProjection(cam, vp)
	if err != nil {
		return physics.RaySegment{}, err
	}
	inv := rl.MatrixInvert(viewProj)
	return physics.NewRaySegment(
		unproject(screen, -1, inv, vp),
		unproject(screen, 1, inv, vp),
	), nil
}

func unproject(screen rl.Vector2, depth float32, invViewProj rl.Matrix, vp Viewport) rl.Vector3 {
	ndc := rl.Vector3{
		X: 2*screen.X/float32(vp.Width) - 1,
		Y: 1 - 2*screen.Y/float32(vp.Height),
		Z: depth,
	}
	return transformPoint(ndc, invViewProj)
}

// transformPoint applies m to p as a homogeneous point and divides by w.
func transformPoint(p rl.Vector3, m rl.Matrix) rl.Vector3 {
	x := m.M0*p.X + m.M4*p.Y + m.M8*p.Z + m.M12
	y := m.M1*p.X + m.M5*p.Y + m.M9*p.Z + m.M13
	z := m.M2*p.X + m.M6*p.Y + m.M10*p.Z + m.M14
	w := m.M3*p.X + m.M7*p.Y + m.M11*p.Z + m.M15
	if w == 0 {
		return rl.Vector3{X: x, Y: y, Z: z}
	}
	return rl.Vector3{X: x / w, Y: y / w, Z: z / w}
}

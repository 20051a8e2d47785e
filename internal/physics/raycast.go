package physics

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const faceEpsilon = 0.001

// IntersectAABB runs a slab test of a normalized ray against box.
// A ray starting inside the box reports the exit point.
func IntersectAABB(origin, direction rl.Vector3, box AABB, maxDistance float32) (Hit, bool) {
	tmin := float32(-math.MaxFloat32)
	tmax := float32(math.MaxFloat32)

	axes := [3]struct{ o, d, lo, hi float32 }{
		{origin.X, direction.X, box.Min.X, box.Max.X},
		{origin.Y, direction.Y, box.Min.Y, box.Max.Y},
		{origin.Z, direction.Z, box.Min.Z, box.Max.Z},
	}
	for _, a := range axes {
		if a.d == 0 {
			if a.o < a.lo || a.o > a.hi {
				return Hit{}, false
			}
			continue
		}
		t1 := (a.lo - a.o) / a.d
		t2 := (a.hi - a.o) / a.d
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tmin = max(tmin, t1)
		tmax = min(tmax, t2)
		if tmin > tmax {
			return Hit{}, false
		}
	}

	if tmax < 0 || tmin > maxDistance {
		return Hit{}, false
	}
	t := tmin
	if t < 0 {
		t = tmax
	}
	if t > maxDistance {
		return Hit{}, false
	}

	point := rl.Vector3Add(origin, rl.Vector3Scale(direction, t))
	return Hit{Point: point, Normal: boxFaceNormal(point, box), Distance: t}, true
}

// boxFaceNormal picks the outward normal of the face point lies on.
func boxFaceNormal(point rl.Vector3, box AABB) rl.Vector3 {
	switch {
	case abs(point.X-box.Min.X) < faceEpsilon:
		return rl.Vector3{X: -1}
	case abs(point.X-box.Max.X) < faceEpsilon:
		return rl.Vector3{X: 1}
	case abs(point.Y-box.Min.Y) < faceEpsilon:
		return rl.Vector3{Y: -1}
	case abs(point.Y-box.Max.Y) < faceEpsilon:
		return rl.Vector3{Y: 1}
	case abs(point.Z-box.Min.Z) < faceEpsilon:
		return rl.Vector3{Z: -1}
	default:
		return rl.Vector3{Z: 1}
	}
}

// IntersectSphere tests a normalized ray against a sphere.
// A ray starting inside the sphere reports the exit point.
func IntersectSphere(origin, direction, center rl.Vector3, radius, maxDistance float32) (Hit, bool) {
	oc := rl.Vector3Subtract(origin, center)
	b := rl.Vector3DotProduct(oc, direction)
	c := rl.Vector3DotProduct(oc, oc) - radius*radius

	discriminant := b*b - c
	if discriminant < 0 {
		return Hit{}, false
	}
	sq := float32(math.Sqrt(float64(discriminant)))

	t := -b - sq
	if t < 0 {
		t = -b + sq
	}
	if t < 0 || t > maxDistance {
		return Hit{}, false
	}

	point := rl.Vector3Add(origin, rl.Vector3Scale(direction, t))
	normal := rl.Vector3Normalize(rl.Vector3Subtract(point, center))
	return Hit{Point: point, Normal: normal, Distance: t}, true
}

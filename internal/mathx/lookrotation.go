package mathx

import rl "github.com/gen2brain/raylib-go/raylib"

const parallelEpsilon = 1e-6

var (
	UnitY = rl.Vector3{X: 0, Y: 1, Z: 0}
	UnitZ = rl.Vector3{X: 0, Y: 0, Z: 1}
)

// LookRotation returns the rotation that turns the -Z forward axis from eye
// toward target, keeping up as close to the rotated +Y as possible.
// When up is parallel to the view direction UnitZ is used instead; when eye
// equals target the identity is returned.
func LookRotation(eye, target, up rl.Vector3) rl.Quaternion {
	forward := rl.Vector3Subtract(target, eye)
	if rl.Vector3LengthSqr(forward) < parallelEpsilon {
		return rl.QuaternionIdentity()
	}
	forward = rl.Vector3Normalize(forward)

	right := rl.Vector3CrossProduct(forward, up)
	if rl.Vector3LengthSqr(right) < parallelEpsilon {
		right = rl.Vector3CrossProduct(forward, UnitZ)
	}
	right = rl.Vector3Normalize(right)
	trueUp := rl.Vector3CrossProduct(right, forward)

	// Columns are the rotated basis: X=right, Y=up, Z=-forward.
	basis := rl.Matrix{
		M0: right.X, M4: trueUp.X, M8: -forward.X,
		M1: right.Y, M5: trueUp.Y, M9: -forward.Y,
		M2: right.Z, M6: trueUp.Z, M10: -forward.Z,
		M15: 1,
	}
	return rl.QuaternionNormalize(rl.QuaternionFromMatrix(basis))
}

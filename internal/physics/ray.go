package physics

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// RaySegment is a directed line from Start to End used for collision queries.
type RaySegment struct {
	Start rl.Vector3
	End   rl.Vector3
}

func NewRaySegment(start, end rl.Vector3) RaySegment {
	return RaySegment{Start: start, End: end}
}

// Direction returns the normalized Start->End direction, or zero for a degenerate segment.
func (r RaySegment) Direction() rl.Vector3 {
	return rl.Vector3Normalize(rl.Vector3Subtract(r.End, r.Start))
}

func (r RaySegment) Length() float32 {
	return rl.Vector3Distance(r.Start, r.End)
}

// PointAt returns the point at fraction t of the segment, t in [0, 1].
func (r RaySegment) PointAt(t float32) rl.Vector3 {
	return rl.Vector3Lerp(r.Start, r.End, t)
}

func (r RaySegment) String() string {
	return fmt.Sprintf("Start:(%.2f, %.2f, %.2f) End:(%.2f, %.2f, %.2f)",
		r.Start.X, r.Start.Y, r.Start.Z, r.End.X, r.End.Y, r.End.Z)
}

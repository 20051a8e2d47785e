package engine

import rl "github.com/gen2brain/raylib-go/raylib"

// Input is the per-frame input state scripts read from. The game loop binds
// it to raylib; tests substitute a fake.
type Input interface {
	MousePosition() rl.Vector2
	IsMouseButtonPressed(button rl.MouseButton) bool
}

// DebugText collects lines of on-screen diagnostic text for the current frame.
type DebugText interface {
	Print(message string, x, y int32)
}

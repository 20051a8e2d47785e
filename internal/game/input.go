package game

import rl "github.com/gen2brain/raylib-go/raylib"

// raylibInput reads the live raylib input state.
type raylibInput struct{}

func (raylibInput) MousePosition() rl.Vector2 {
	return rl.GetMousePosition()
}

func (raylibInput) IsMouseButtonPressed(button rl.MouseButton) bool {
	return rl.IsMouseButtonPressed(button)
}

type textLine struct {
	text string
	x, y int32
}

// frameText buffers debug lines during Update and draws them after the 3D pass.
type frameText struct {
	lines    []textLine
	fontSize int32
	color    rl.Color
}

func newFrameText() *frameText {
	return &frameText{fontSize: 20, color: rl.DarkGray}
}

func (f *frameText) Print(message string, x, y int32) {
	f.lines = append(f.lines, textLine{text: message, x: x, y: y})
}

// Flush draws and clears the buffered lines.
func (f *frameText) Flush() {
	for _, l := range f.lines {
		rl.DrawText(l.text, l.x, l.y, f.fontSize, f.color)
	}
	f.lines = f.lines[:0]
}

package ui

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Input is the pointer and key state for one frame.
type Input struct {
	X, Y     int
	Down     bool // left button held
	Pressed  bool // left button went down this frame
	Released bool // left button went up this frame

	// Nudge is -1 or +1 when an arrow key was pressed this frame.
	Nudge int
}

// PollInput reads the current frame's input from ebiten.
func PollInput() Input {
	x, y := ebiten.CursorPosition()
	in := Input{
		X:        x,
		Y:        y,
		Down:     ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		Pressed:  inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		Released: inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft),
	}
	switch {
	case repeating(ebiten.KeyArrowLeft):
		in.Nudge = -1
	case repeating(ebiten.KeyArrowRight):
		in.Nudge = 1
	}
	return in
}

// repeating is true on the first frame a key is held and then every few
// frames after a short delay.
func repeating(k ebiten.Key) bool {
	d := inpututil.KeyPressDuration(k)
	return d == 1 || (d > 20 && d%4 == 0)
}

func (in Input) over(r image.Rectangle) bool {
	return image.Pt(in.X, in.Y).In(r)
}

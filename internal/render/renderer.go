package render

import (
	"errors"
	"image/color"
)

// ErrTerminated is returned from Game.Update to end the run loop cleanly.
var ErrTerminated = errors.New("render: terminated")

// Canvas is the drawing surface a frame is painted on. Coordinates are
// logical pixels as returned by Game.Layout; backends scale them as needed.
type Canvas interface {
	// Size returns the logical width and height.
	Size() (width, height int)

	// Fill paints the whole surface.
	Fill(clr color.Color)

	// FillRect paints an axis-aligned rectangle.
	FillRect(x, y, width, height float32, clr color.Color)

	// StrokeLine draws a line segment of the given stroke width.
	StrokeLine(x1, y1, x2, y2, strokeWidth float32, clr color.Color)

	// DrawText draws a single line of text with its top-left corner at (x, y).
	DrawText(text string, x, y int)
}

// InputManager handles input from the user (keyboard).
type InputManager interface {
	IsKeyPressed(key Key) bool
	IsKeyJustPressed(key Key) bool
}

// Key represents a keyboard key.
type Key int

// Key constants for common keys
const (
	KeyW Key = iota
	KeyA
	KeyS
	KeyD
	KeyM // Map toggle key
	KeyR // Ray toggle key
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyTab
	KeyEscape
	KeyEnter
)

var keyNames = [...]string{
	KeyW:      "W",
	KeyA:      "A",
	KeyS:      "S",
	KeyD:      "D",
	KeyM:      "M",
	KeyR:      "R",
	KeyUp:     "Up",
	KeyDown:   "Down",
	KeyLeft:   "Left",
	KeyRight:  "Right",
	KeyTab:    "Tab",
	KeyEscape: "Escape",
	KeyEnter:  "Enter",
}

func (k Key) String() string {
	if k >= 0 && int(k) < len(keyNames) {
		return keyNames[k]
	}
	return "Unknown"
}

// Game represents the game interface that the engine will call.
type Game interface {
	// Update advances one frame. Returning ErrTerminated stops the engine
	// without an error.
	Update() error

	// Draw paints the current frame.
	Draw(canvas Canvas)

	// Layout accepts the outside size (e.g., window size) and returns the logical screen size.
	Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int)
}

// Engine represents the backend that owns the window and the frame loop.
type Engine interface {
	// SetWindowSize sets the window size in pixels.
	SetWindowSize(width, height int)

	// SetWindowTitle sets the window title.
	SetWindowTitle(title string)

	// SetWindowResizable enables or disables window resizing.
	SetWindowResizable(resizable bool)

	// InputManager returns the keyboard state source fed by this engine.
	InputManager() InputManager

	// RunGame runs the game loop with the provided game.
	// This is a blocking call that runs until the game ends.
	RunGame(game Game) error
}

package ebiten

import (
	"errors"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"chosenoffset.com/raycaster/internal/render"
)

// EbitenCanvas wraps an ebiten.Image to implement the render.Canvas interface.
type EbitenCanvas struct {
	img *ebiten.Image
}

// WrapEbitenImage wraps an existing ebiten.Image as a render.Canvas.
func WrapEbitenImage(img *ebiten.Image) *EbitenCanvas {
	return &EbitenCanvas{img: img}
}

// Size returns the width and height of the image.
func (c *EbitenCanvas) Size() (width, height int) {
	return c.img.Bounds().Dx(), c.img.Bounds().Dy()
}

// Fill fills the entire image with the given color.
func (c *EbitenCanvas) Fill(clr color.Color) {
	c.img.Fill(clr)
}

// FillRect draws a filled rectangle.
func (c *EbitenCanvas) FillRect(x, y, width, height float32, clr color.Color) {
	vector.DrawFilledRect(c.img, x, y, width, height, clr, false)
}

// StrokeLine draws a line segment.
func (c *EbitenCanvas) StrokeLine(x1, y1, x2, y2, strokeWidth float32, clr color.Color) {
	vector.StrokeLine(c.img, x1, y1, x2, y2, strokeWidth, clr, true)
}

// DrawText draws text using the debug font. The debug font is always white.
func (c *EbitenCanvas) DrawText(str string, x, y int) {
	ebitenutil.DebugPrintAt(c.img, str, x, y)
}

// GetEbitenImage returns the underlying ebiten.Image.
func (c *EbitenCanvas) GetEbitenImage() *ebiten.Image {
	return c.img
}

// EbitenInputManager implements the InputManager interface using Ebiten.
type EbitenInputManager struct{}

// NewInputManager creates a new Ebiten-based input manager.
func NewInputManager() render.InputManager {
	return &EbitenInputManager{}
}

// IsKeyPressed returns whether the specified key is currently pressed.
func (m *EbitenInputManager) IsKeyPressed(key render.Key) bool {
	k, ok := keyToEbitenKey(key)
	return ok && ebiten.IsKeyPressed(k)
}

// IsKeyJustPressed returns whether the specified key was just pressed this frame.
func (m *EbitenInputManager) IsKeyJustPressed(key render.Key) bool {
	k, ok := keyToEbitenKey(key)
	return ok && inpututil.IsKeyJustPressed(k)
}

// keyToEbitenKey converts a render.Key to an ebiten.Key.
func keyToEbitenKey(key render.Key) (ebiten.Key, bool) {
	switch key {
	case render.KeyW:
		return ebiten.KeyW, true
	case render.KeyA:
		return ebiten.KeyA, true
	case render.KeyS:
		return ebiten.KeyS, true
	case render.KeyD:
		return ebiten.KeyD, true
	case render.KeyM:
		return ebiten.KeyM, true
	case render.KeyR:
		return ebiten.KeyR, true
	case render.KeyUp:
		return ebiten.KeyArrowUp, true
	case render.KeyDown:
		return ebiten.KeyArrowDown, true
	case render.KeyLeft:
		return ebiten.KeyArrowLeft, true
	case render.KeyRight:
		return ebiten.KeyArrowRight, true
	case render.KeyTab:
		return ebiten.KeyTab, true
	case render.KeyEscape:
		return ebiten.KeyEscape, true
	case render.KeyEnter:
		return ebiten.KeyEnter, true
	default:
		return 0, false
	}
}

// EbitenEngine implements the Engine interface using Ebiten.
type EbitenEngine struct {
	input render.InputManager
}

// NewEngine creates a new Ebiten-based game engine.
func NewEngine() render.Engine {
	return &EbitenEngine{input: NewInputManager()}
}

// SetWindowSize sets the window size in pixels.
func (e *EbitenEngine) SetWindowSize(width, height int) {
	ebiten.SetWindowSize(width, height)
}

// SetWindowTitle sets the window title.
func (e *EbitenEngine) SetWindowTitle(title string) {
	ebiten.SetWindowTitle(title)
}

// SetWindowResizable enables or disables window resizing.
func (e *EbitenEngine) SetWindowResizable(resizable bool) {
	if resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	} else {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
	}
}

// InputManager returns the keyboard reader backed by ebiten.
func (e *EbitenEngine) InputManager() render.InputManager {
	return e.input
}

// RunGame runs the game loop with the provided game.
func (e *EbitenEngine) RunGame(game render.Game) error {
	err := ebiten.RunGame(&gameAdapter{game: game})
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}

// gameAdapter adapts a render.Game to ebiten.Game interface.
type gameAdapter struct {
	game render.Game
}

// Update implements ebiten.Game.
func (a *gameAdapter) Update() error {
	if err := a.game.Update(); err != nil {
		if errors.Is(err, render.ErrTerminated) {
			return ebiten.Termination
		}
		return err
	}
	return nil
}

// Draw implements ebiten.Game.
func (a *gameAdapter) Draw(screen *ebiten.Image) {
	a.game.Draw(&EbitenCanvas{img: screen})
}

// Layout implements ebiten.Game.
func (a *gameAdapter) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.game.Layout(outsideWidth, outsideHeight)
}

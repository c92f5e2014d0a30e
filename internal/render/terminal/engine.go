package terminal

import (
	"errors"
	"fmt"
	"log"
	"time"
	"unicode"

	"github.com/gdamore/tcell/v2"

	"chosenoffset.com/raycaster/internal/render"
)

// InputManager reports keys seen since the previous frame. Terminals only
// deliver press (and auto-repeat) events, so a key counts as held for the
// frame that follows each event.
type InputManager struct {
	pressed map[render.Key]bool
}

// NewInputManager creates an empty key set.
func NewInputManager() *InputManager {
	return &InputManager{pressed: make(map[render.Key]bool)}
}

// IsKeyPressed returns whether key was pressed since the previous frame.
func (m *InputManager) IsKeyPressed(key render.Key) bool {
	return m.pressed[key]
}

// IsKeyJustPressed is the same as IsKeyPressed; every terminal key event is an edge.
func (m *InputManager) IsKeyJustPressed(key render.Key) bool {
	return m.pressed[key]
}

func (m *InputManager) press(key render.Key) {
	m.pressed[key] = true
}

func (m *InputManager) endFrame() {
	clear(m.pressed)
}

// keyFromEvent converts a tcell key event to a render.Key.
func keyFromEvent(ev *tcell.EventKey) (render.Key, bool) {
	switch ev.Key() {
	case tcell.KeyUp:
		return render.KeyUp, true
	case tcell.KeyDown:
		return render.KeyDown, true
	case tcell.KeyLeft:
		return render.KeyLeft, true
	case tcell.KeyRight:
		return render.KeyRight, true
	case tcell.KeyTab:
		return render.KeyTab, true
	case tcell.KeyEnter:
		return render.KeyEnter, true
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return render.KeyEscape, true
	case tcell.KeyRune:
		switch unicode.ToLower(ev.Rune()) {
		case 'w':
			return render.KeyW, true
		case 'a':
			return render.KeyA, true
		case 's':
			return render.KeyS, true
		case 'd':
			return render.KeyD, true
		case 'm':
			return render.KeyM, true
		case 'r':
			return render.KeyR, true
		case 'q':
			return render.KeyEscape, true
		}
	}
	return 0, false
}

// Engine implements render.Engine with a ticker-driven loop over a tcell screen.
type Engine struct {
	screen tcell.Screen
	input  *InputManager
	tps    int
	title  string
}

// NewEngine creates an engine on the process terminal running at tps frames per second.
func NewEngine(tps int) (*Engine, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("failed to create terminal screen: %w", err)
	}
	return NewEngineWithScreen(screen, tps), nil
}

// NewEngineWithScreen creates an engine on an existing, uninitialised screen.
func NewEngineWithScreen(screen tcell.Screen, tps int) *Engine {
	if tps <= 0 {
		tps = 30
	}
	return &Engine{
		screen: screen,
		input:  NewInputManager(),
		tps:    tps,
	}
}

// SetWindowSize is a no-op; the terminal decides its own size.
func (e *Engine) SetWindowSize(width, height int) {}

// SetWindowTitle records the title, shown in the log when the loop starts.
func (e *Engine) SetWindowTitle(title string) {
	e.title = title
}

// SetWindowResizable is a no-op; terminals can always be resized.
func (e *Engine) SetWindowResizable(resizable bool) {}

// InputManager returns the key set fed by this engine's event loop.
func (e *Engine) InputManager() render.InputManager {
	return e.input
}

// RunGame initialises the screen and runs frames until the game returns
// render.ErrTerminated or another error.
func (e *Engine) RunGame(game render.Game) error {
	if err := e.screen.Init(); err != nil {
		return fmt.Errorf("failed to initialise terminal: %w", err)
	}
	defer e.screen.Fini()
	e.screen.HideCursor()

	if e.title != "" {
		log.Printf("Running %q in the terminal at %d fps", e.title, e.tps)
	}

	done := make(chan struct{})
	defer close(done)

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := e.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	ticker := time.NewTicker(time.Second / time.Duration(e.tps))
	defer ticker.Stop()

	for {
		select {
		case ev := <-events:
			e.handleEvent(ev)
		case <-ticker.C:
			if err := e.frame(game); err != nil {
				if errors.Is(err, render.ErrTerminated) {
					return nil
				}
				return err
			}
		}
	}
}

func (e *Engine) handleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if key, ok := keyFromEvent(ev); ok {
			e.input.press(key)
		}
	case *tcell.EventResize:
		e.screen.Sync()
	}
}

func (e *Engine) frame(game render.Game) error {
	if err := game.Update(); err != nil {
		return err
	}

	cols, rows := e.screen.Size()
	w, h := game.Layout(cols, rows)

	e.screen.Clear()
	game.Draw(NewCanvas(e.screen, w, h))
	e.screen.Show()

	e.input.endFrame()
	return nil
}

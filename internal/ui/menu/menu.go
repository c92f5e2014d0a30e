package menu

import (
	"fmt"
	"image/color"

	"chosenoffset.com/raycaster/internal/render"
	"chosenoffset.com/raycaster/internal/world/mapscanner"
)

// GameState represents the current state of the game.
type GameState int

const (
	StateMainMenu GameState = iota
	StatePlaying
)

const (
	startY      = 60
	entryHeight = 20
)

// MainMenu lists the maps found in the data directory.
type MainMenu struct {
	maps     []mapscanner.MapEntry
	selected int
	input    render.InputManager
}

// NewMainMenu creates a new main menu.
func NewMainMenu(maps []mapscanner.MapEntry, input render.InputManager) *MainMenu {
	return &MainMenu{
		maps:  maps,
		input: input,
	}
}

// Selected returns the highlighted entry.
func (m *MainMenu) Selected() (mapscanner.MapEntry, bool) {
	if len(m.maps) == 0 {
		return mapscanner.MapEntry{}, false
	}
	return m.maps[m.selected], true
}

// Update updates the menu state based on user input.
// Returns true once a map was chosen.
func (m *MainMenu) Update() (chosen bool, entry mapscanner.MapEntry) {
	if len(m.maps) == 0 {
		return false, mapscanner.MapEntry{}
	}

	if m.input.IsKeyJustPressed(render.KeyUp) || m.input.IsKeyJustPressed(render.KeyW) {
		m.selected = (m.selected - 1 + len(m.maps)) % len(m.maps)
	}
	if m.input.IsKeyJustPressed(render.KeyDown) || m.input.IsKeyJustPressed(render.KeyS) {
		m.selected = (m.selected + 1) % len(m.maps)
	}

	if m.input.IsKeyJustPressed(render.KeyEnter) {
		return true, m.maps[m.selected]
	}

	return false, mapscanner.MapEntry{}
}

// Draw renders the menu onto canvas.
func (m *MainMenu) Draw(canvas render.Canvas) {
	canvas.Fill(color.RGBA{20, 20, 30, 255})
	canvas.DrawText("RAYCASTER", 50, 20)
	canvas.DrawText("Select a map", 50, 36)

	if len(m.maps) == 0 {
		canvas.DrawText("No maps found in data directory!", 50, startY)
		return
	}

	for i, entry := range m.maps {
		y := startY + i*entryHeight
		if i == m.selected {
			canvas.FillRect(45, float32(y-2), 300, entryHeight-2, color.RGBA{60, 90, 60, 255})
			canvas.DrawText(">", 50, y)
		}
		canvas.DrawText(fmt.Sprintf("  %s", entry.Name), 60, y)
	}

	_, h := canvas.Size()
	canvas.DrawText("Up/Down to choose, Enter to start, Esc to quit.", 20, h-30)
}

package game

import (
	"fmt"
	"log"

	"chosenoffset.com/raycaster/internal/config"
	"chosenoffset.com/raycaster/internal/render"
	"chosenoffset.com/raycaster/internal/ui/menu"
	"chosenoffset.com/raycaster/internal/world/gridmap"
	"chosenoffset.com/raycaster/internal/world/mapscanner"
)

// Manager handles the overall game state, including menu and gameplay.
type Manager struct {
	Config   *config.Config
	State    menu.GameState
	MainMenu *menu.MainMenu
	Game     *Game
	InputMgr render.InputManager
}

// NewManager creates a manager that starts on the map menu.
func NewManager(cfg *config.Config, input render.InputManager, maps []mapscanner.MapEntry) *Manager {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	return &Manager{
		Config:   cfg,
		State:    menu.StateMainMenu,
		MainMenu: menu.NewMainMenu(maps, input),
		InputMgr: input,
	}
}

// NewManagerWithMap creates a manager that goes straight into play on m.
func NewManagerWithMap(cfg *config.Config, input render.InputManager, m *gridmap.Map) (*Manager, error) {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	mgr := &Manager{
		Config:   cfg,
		State:    menu.StatePlaying,
		InputMgr: input,
	}
	if err := mgr.startGame(m); err != nil {
		return nil, err
	}
	return mgr, nil
}

// Update implements render.Game.
func (m *Manager) Update() error {
	switch m.State {
	case menu.StateMainMenu:
		if m.InputMgr.IsKeyJustPressed(render.KeyEscape) {
			return render.ErrTerminated
		}

		chosen, entry := m.MainMenu.Update()
		if !chosen {
			return nil
		}

		log.Printf("Loading map %s from %s", entry.Name, entry.Path)
		gameMap, err := gridmap.LoadMap(entry.Path)
		if err != nil {
			return fmt.Errorf("failed to load map %s: %w", entry.Name, err)
		}
		return m.startGame(gameMap)

	case menu.StatePlaying:
		return m.Game.Update()
	}
	return nil
}

func (m *Manager) startGame(gameMap *gridmap.Map) error {
	g, err := NewGame(m.Config, gameMap, m.InputMgr)
	if err != nil {
		return err
	}
	m.Game = g
	m.State = menu.StatePlaying
	return nil
}

// Draw implements render.Game.
func (m *Manager) Draw(screen render.Canvas) {
	switch m.State {
	case menu.StateMainMenu:
		m.MainMenu.Draw(screen)
	case menu.StatePlaying:
		m.Game.Draw(screen)
	}
}

// Layout implements render.Game.
func (m *Manager) Layout(outsideWidth, outsideHeight int) (int, int) {
	return m.Config.Window.Width, m.Config.Window.Height
}

package game

import (
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"

	"chosenoffset.com/raycaster/internal/config"
	"chosenoffset.com/raycaster/internal/core/geom"
	"chosenoffset.com/raycaster/internal/core/player"
	"chosenoffset.com/raycaster/internal/core/projection"
	"chosenoffset.com/raycaster/internal/core/raycast"
	"chosenoffset.com/raycaster/internal/render"
	"chosenoffset.com/raycaster/internal/ui/hud"
	"chosenoffset.com/raycaster/internal/world/gridmap"
)

// Game holds all game state and logic.
type Game struct {
	Config    *config.Config
	GameMap   *gridmap.Map
	Player    *player.State
	Fan       *raycast.Fan
	Projector *projection.Projector
	InputMgr  render.InputManager
	GameHUD   *hud.HUD
	SessionID uuid.UUID

	// Overlay toggles
	ShowMap  bool
	ShowRays bool
	Debug    bool

	// Results of the most recent frame
	hits   []raycast.Hit
	slices []projection.Slice

	FrameCount int
}

// NewGame places a player at the map's spawn point and sizes the ray fan
// and projector from cfg.
func NewGame(cfg *config.Config, m *gridmap.Map, input render.InputManager) (*Game, error) {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if m == nil {
		return nil, errors.New("no map given")
	}

	spawn := m.Spawn()
	g := &Game{
		Config:    cfg,
		GameMap:   m,
		Player:    player.New(geom.Point{X: spawn.X, Y: spawn.Y}, spawn.Angle, cfg.Player.Speed, cfg.Player.RotationStep),
		Fan:       raycast.NewFan(cfg.Camera.RayCount),
		Projector: projection.New(cfg.Projection(m.TileSize()), cfg.Camera.RayCount, m.Color),
		InputMgr:  input,
		GameHUD:   hud.New(&hud.HUDConfig{ShowPosition: true, ShowHeading: true, ShowFrame: true, ShowSession: true, Position: "bottom-left", Opacity: 0.7}),
		SessionID: uuid.New(),
		ShowMap:   cfg.Render.ShowMap,
		ShowRays:  cfg.Render.ShowRays,
		Debug:     cfg.Render.Debug,
	}

	log.Printf("Session %s: map %q (%dx%d), %d rays over %.0f°, spawn (%.1f, %.1f)",
		g.SessionID, m.Name(), m.Width(), m.Height(), cfg.Camera.RayCount, cfg.Camera.FOVDegrees, spawn.X, spawn.Y)

	return g, nil
}

// Update handles one tick of input and recasts the view.
func (g *Game) Update() error {
	if g.InputMgr != nil {
		if g.InputMgr.IsKeyJustPressed(render.KeyEscape) {
			log.Printf("Session %s: quit after %d frames", g.SessionID, g.FrameCount)
			return render.ErrTerminated
		}

		for _, a := range g.actions() {
			g.Player.Apply(a)
		}

		if g.InputMgr.IsKeyJustPressed(render.KeyM) {
			g.ShowMap = !g.ShowMap
		}
		if g.InputMgr.IsKeyJustPressed(render.KeyR) {
			g.ShowRays = !g.ShowRays
		}
		if g.InputMgr.IsKeyJustPressed(render.KeyTab) {
			g.Debug = !g.Debug
		}
	}

	g.Frame()
	return nil
}

// actions maps held keys to player actions, rotation first.
func (g *Game) actions() []player.Action {
	var out []player.Action
	held := func(keys ...render.Key) bool {
		for _, k := range keys {
			if g.InputMgr.IsKeyPressed(k) {
				return true
			}
		}
		return false
	}

	if held(render.KeyA, render.KeyLeft) {
		out = append(out, player.ActionRotateLeft)
	}
	if held(render.KeyD, render.KeyRight) {
		out = append(out, player.ActionRotateRight)
	}
	if held(render.KeyW, render.KeyUp) {
		out = append(out, player.ActionMoveForward)
	}
	if held(render.KeyS, render.KeyDown) {
		out = append(out, player.ActionMoveBackward)
	}
	return out
}

// Frame casts the fan from the player's position and projects it.
func (g *Game) Frame() []projection.Slice {
	fov := g.Config.Camera.FOVDegrees
	if w := g.Config.Render.Workers; w > 1 {
		g.hits = g.Fan.CastParallel(g.GameMap, g.Player.Pos, g.Player.Angle, fov, w)
	} else {
		g.hits = g.Fan.Cast(g.GameMap, g.Player.Pos, g.Player.Angle, fov)
	}
	g.slices = g.Projector.Project(g.Player.Angle, g.hits)
	g.FrameCount++
	return g.slices
}

// Hits returns the hits of the most recent frame.
func (g *Game) Hits() []raycast.Hit {
	return g.hits
}

// Stats collects what the HUD shows about the current frame.
func (g *Game) Stats() hud.Stats {
	ts := g.GameMap.TileSize()
	hits := 0
	for _, h := range g.hits {
		if !h.Missed() {
			hits++
		}
	}
	return hud.Stats{
		X:        g.Player.Pos.X,
		Y:        g.Player.Pos.Y,
		TileCol:  geom.TileIndex(g.Player.Pos.X, ts),
		TileRow:  geom.TileIndex(g.Player.Pos.Y, ts),
		Angle:    g.Player.Angle,
		Frame:    g.FrameCount,
		Session:  g.SessionID.String(),
		Hits:     hits,
		RayCount: g.Fan.Len(),
	}
}

// Layout returns the game's logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.Config.Window.Width, g.Config.Window.Height
}

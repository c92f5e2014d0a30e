package game

import (
	"errors"
	"image/color"
	"math"
	"path/filepath"
	"testing"

	"chosenoffset.com/raycaster/internal/config"
	"chosenoffset.com/raycaster/internal/core/geom"
	"chosenoffset.com/raycaster/internal/render"
	"chosenoffset.com/raycaster/internal/ui/menu"
	"chosenoffset.com/raycaster/internal/world/gridmap"
	"chosenoffset.com/raycaster/internal/world/mapscanner"
)

// fakeInput reports a fixed set of held and just-pressed keys.
type fakeInput struct {
	held map[render.Key]bool
	just map[render.Key]bool
}

func newFakeInput() *fakeInput {
	return &fakeInput{held: map[render.Key]bool{}, just: map[render.Key]bool{}}
}

func (f *fakeInput) IsKeyPressed(k render.Key) bool     { return f.held[k] }
func (f *fakeInput) IsKeyJustPressed(k render.Key) bool { return f.just[k] }

func (f *fakeInput) reset() {
	clear(f.held)
	clear(f.just)
}

// recordingCanvas counts draw calls.
type recordingCanvas struct {
	fills   int
	strokes int
	texts   []string
	rects   []color.Color
}

func (c *recordingCanvas) Size() (int, int) { return 1024, 512 }
func (c *recordingCanvas) Fill(color.Color) {}

func (c *recordingCanvas) FillRect(x, y, w, h float32, clr color.Color) {
	c.fills++
	c.rects = append(c.rects, clr)
}

func (c *recordingCanvas) StrokeLine(x1, y1, x2, y2, sw float32, clr color.Color) {
	c.strokes++
}

func (c *recordingCanvas) DrawText(text string, x, y int) {
	c.texts = append(c.texts, text)
}

func newTestGame(t *testing.T, input render.InputManager) *Game {
	t.Helper()
	g, err := NewGame(config.DefaultConfig(), gridmap.Default(), input)
	if err != nil {
		t.Fatalf("Failed to create game: %v", err)
	}
	return g
}

func TestNewGame(t *testing.T) {
	g := newTestGame(t, newFakeInput())

	if g.Player.Pos != (geom.Point{X: 300, Y: 300}) {
		t.Errorf("Expected spawn (300, 300), got %v", g.Player.Pos)
	}
	if g.Fan.Len() != 60 {
		t.Errorf("Expected 60 rays, got %d", g.Fan.Len())
	}
	if !g.ShowMap || !g.ShowRays || g.Debug {
		t.Errorf("Expected overlay toggles from config, got map=%v rays=%v debug=%v", g.ShowMap, g.ShowRays, g.Debug)
	}
	if g.SessionID.String() == "" {
		t.Error("Expected a session id")
	}
}

func TestNewGameErrors(t *testing.T) {
	if _, err := NewGame(config.DefaultConfig(), nil, newFakeInput()); err == nil {
		t.Error("Expected an error for a nil map")
	}

	cfg := config.DefaultConfig()
	cfg.Camera.RayCount = 0
	if _, err := NewGame(cfg, gridmap.Default(), newFakeInput()); err == nil {
		t.Error("Expected an error for an invalid config")
	}
}

func TestFrameCentreRayHitsEastWall(t *testing.T) {
	g := newTestGame(t, newFakeInput())
	slices := g.Frame()

	if len(slices) != 60 {
		t.Fatalf("Expected 60 slices, got %d", len(slices))
	}

	centre := g.Hits()[30]
	if centre.Missed() || centre.WallType != 1 {
		t.Fatalf("Expected centre ray to hit the border, got %+v", centre)
	}
	if math.Abs(centre.Distance-148) > 1e-6 {
		t.Errorf("Expected distance 148, got %v", centre.Distance)
	}

	for i, s := range slices {
		if !s.Visible {
			t.Errorf("Expected slice %d to be visible in a closed map", i)
		}
	}
	if g.FrameCount != 1 {
		t.Errorf("Expected frame count 1, got %d", g.FrameCount)
	}
}

func TestFrameParallelMatchesSequential(t *testing.T) {
	seq := newTestGame(t, newFakeInput())

	cfg := config.DefaultConfig()
	cfg.Render.Workers = 4
	par, err := NewGame(cfg, gridmap.Default(), newFakeInput())
	if err != nil {
		t.Fatalf("Failed to create game: %v", err)
	}

	a := seq.Frame()
	b := par.Frame()
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("Slice %d differs: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestUpdateMovesPlayer(t *testing.T) {
	input := newFakeInput()
	g := newTestGame(t, input)

	input.held[render.KeyW] = true
	if err := g.Update(); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if math.Abs(g.Player.Pos.X-305) > 1e-9 || math.Abs(g.Player.Pos.Y-300) > 1e-9 {
		t.Errorf("Expected (305, 300), got %v", g.Player.Pos)
	}

	input.reset()
	input.held[render.KeyDown] = true
	g.Update()
	if math.Abs(g.Player.Pos.X-300) > 1e-9 {
		t.Errorf("Expected to step back to x=300, got %v", g.Player.Pos.X)
	}

	input.reset()
	input.held[render.KeyLeft] = true
	g.Update()
	if math.Abs(g.Player.Angle-(geom.TwoPi-0.1)) > 1e-9 {
		t.Errorf("Expected heading 2π-0.1, got %v", g.Player.Angle)
	}

	input.reset()
	input.held[render.KeyD] = true
	g.Update()
	if g.Player.Angle > 1e-9 && geom.TwoPi-g.Player.Angle > 1e-9 {
		t.Errorf("Expected heading back at 0, got %v", g.Player.Angle)
	}

	if g.FrameCount != 4 {
		t.Errorf("Expected 4 frames, got %d", g.FrameCount)
	}
}

func TestUpdateToggles(t *testing.T) {
	input := newFakeInput()
	g := newTestGame(t, input)

	input.just[render.KeyM] = true
	input.just[render.KeyR] = true
	input.just[render.KeyTab] = true
	g.Update()

	if g.ShowMap || g.ShowRays || !g.Debug {
		t.Errorf("Expected toggles flipped, got map=%v rays=%v debug=%v", g.ShowMap, g.ShowRays, g.Debug)
	}
}

func TestUpdateEscapeTerminates(t *testing.T) {
	input := newFakeInput()
	g := newTestGame(t, input)

	input.just[render.KeyEscape] = true
	if err := g.Update(); !errors.Is(err, render.ErrTerminated) {
		t.Errorf("Expected ErrTerminated, got %v", err)
	}
}

func TestDraw(t *testing.T) {
	g := newTestGame(t, newFakeInput())

	c := &recordingCanvas{}
	g.Draw(c)

	// 64 tiles, the player marker and 60 wall slices
	if c.fills != 64+1+60 {
		t.Errorf("Expected 125 filled rects, got %d", c.fills)
	}
	// Heading line and 60 rays
	if c.strokes != 61 {
		t.Errorf("Expected 61 lines, got %d", c.strokes)
	}
	if len(c.texts) != 0 {
		t.Errorf("Expected no HUD text, got %v", c.texts)
	}
}

func TestDrawSceneOnlyWithHUD(t *testing.T) {
	g := newTestGame(t, newFakeInput())
	g.ShowMap = false
	g.ShowRays = false
	g.Debug = true
	g.Frame()

	c := &recordingCanvas{}
	g.Draw(c)

	// 60 slices plus the HUD panel
	if c.fills != 61 {
		t.Errorf("Expected 61 filled rects, got %d", c.fills)
	}
	if c.strokes != 0 {
		t.Errorf("Expected no lines, got %d", c.strokes)
	}
	if len(c.texts) != 4 {
		t.Errorf("Expected 4 HUD lines, got %v", c.texts)
	}
}

func TestStats(t *testing.T) {
	g := newTestGame(t, newFakeInput())
	g.Frame()

	s := g.Stats()
	if s.TileCol != 4 || s.TileRow != 4 {
		t.Errorf("Expected tile (4, 4), got (%d, %d)", s.TileCol, s.TileRow)
	}
	if s.Hits != 60 || s.RayCount != 60 {
		t.Errorf("Expected 60/60 hits, got %d/%d", s.Hits, s.RayCount)
	}
	if s.Session != g.SessionID.String() {
		t.Errorf("Expected session %s, got %s", g.SessionID, s.Session)
	}
}

func TestLayout(t *testing.T) {
	g := newTestGame(t, newFakeInput())
	if w, h := g.Layout(1, 1); w != 1024 || h != 512 {
		t.Errorf("Expected 1024x512, got %dx%d", w, h)
	}
}

func TestManagerMenuToGame(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "default.json")
	if err := gridmap.SaveMap(gridmap.Default(), path); err != nil {
		t.Fatalf("Failed to save map: %v", err)
	}

	input := newFakeInput()
	mgr := NewManager(config.DefaultConfig(), input, []mapscanner.MapEntry{{Name: "default", Path: path}})

	if err := mgr.Update(); err != nil || mgr.State != menu.StateMainMenu {
		t.Fatalf("Expected to stay on the menu, got state %v err %v", mgr.State, err)
	}

	input.just[render.KeyEnter] = true
	if err := mgr.Update(); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if mgr.State != menu.StatePlaying || mgr.Game == nil {
		t.Fatal("Expected the game to start")
	}
	if mgr.Game.GameMap.Name() != "default" {
		t.Errorf("Expected map default, got %s", mgr.Game.GameMap.Name())
	}

	input.reset()
	mgr.Update()
	c := &recordingCanvas{}
	mgr.Draw(c)
	if c.fills == 0 {
		t.Error("Expected the game to draw")
	}
}

func TestManagerMenuErrors(t *testing.T) {
	input := newFakeInput()
	mgr := NewManager(nil, input, []mapscanner.MapEntry{{Name: "broken", Path: filepath.Join(t.TempDir(), "missing.json")}})

	input.just[render.KeyEnter] = true
	if err := mgr.Update(); err == nil {
		t.Error("Expected an error loading a missing map")
	}

	input.reset()
	input.just[render.KeyEscape] = true
	if err := mgr.Update(); !errors.Is(err, render.ErrTerminated) {
		t.Errorf("Expected ErrTerminated from the menu, got %v", err)
	}
}

func TestNewManagerWithMap(t *testing.T) {
	mgr, err := NewManagerWithMap(nil, newFakeInput(), gridmap.Default())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if mgr.State != menu.StatePlaying {
		t.Errorf("Expected to start playing, got %v", mgr.State)
	}
	if w, h := mgr.Layout(0, 0); w != 1024 || h != 512 {
		t.Errorf("Expected 1024x512, got %dx%d", w, h)
	}
}

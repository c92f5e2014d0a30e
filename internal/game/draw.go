package game

import (
	"math"

	"chosenoffset.com/raycaster/internal/render"
)

// Draw renders the map overlay, the rays and the wall slices.
func (g *Game) Draw(screen render.Canvas) {
	if g.slices == nil {
		g.Frame()
	}

	screen.Fill(backgroundColor)

	scale := g.mapScale()
	if g.ShowMap {
		g.drawMap(screen, scale)
		g.drawPlayer(screen, scale)
	}
	if g.ShowRays {
		g.drawRays(screen, scale)
	}

	g.drawScene(screen)

	if g.Debug {
		g.GameHUD.Draw(screen, g.Stats())
	}
}

// mapScale fits the overlay into the area left of the 3D view.
func (g *Game) mapScale() float64 {
	worldW := float64(g.GameMap.Width()) * g.GameMap.TileSize()
	worldH := float64(g.GameMap.Height()) * g.GameMap.TileSize()

	availW := g.Config.Scene.LeftOffset
	if availW <= 0 {
		availW = float64(g.Config.Window.Width)
	}
	availH := float64(g.Config.Window.Height)

	return math.Min(1, math.Min(availW/worldW, availH/worldH))
}

func (g *Game) drawMap(screen render.Canvas, scale float64) {
	for _, t := range g.GameMap.TileRects() {
		x := float32(t.X*scale) + tileBorder
		y := float32(t.Y*scale) + tileBorder
		size := float32(t.Size*scale) - 2*tileBorder
		if size <= 0 {
			size = float32(t.Size * scale)
		}
		screen.FillRect(x, y, size, size, t.Color)
	}
}

func (g *Game) drawPlayer(screen render.Canvas, scale float64) {
	px := float32(g.Player.Pos.X * scale)
	py := float32(g.Player.Pos.Y * scale)
	screen.FillRect(px-playerSize/2, py-playerSize/2, playerSize, playerSize, playerColor)

	hx := px + float32(g.Player.Delta.X*headingScale*scale)
	hy := py + float32(g.Player.Delta.Y*headingScale*scale)
	screen.StrokeLine(px, py, hx, hy, markerLine, playerColor)
}

func (g *Game) drawRays(screen render.Canvas, scale float64) {
	px := float32(g.Player.Pos.X * scale)
	py := float32(g.Player.Pos.Y * scale)
	for _, h := range g.hits {
		if h.Missed() {
			continue
		}
		screen.StrokeLine(px, py, float32(h.X*scale), float32(h.Y*scale), rayWidth, rayColor)
	}
}

func (g *Game) drawScene(screen render.Canvas) {
	for _, s := range g.slices {
		if !s.Visible {
			continue
		}
		screen.FillRect(float32(s.X), float32(s.Top), float32(s.Width), float32(s.Height), s.Color)
	}
}

// Package hud provides a small text overlay showing where the player is,
// which way they face and how far the frame loop has run.
package hud

import (
	"fmt"
	"image/color"
	"math"
)

const (
	lineHeight = 16
	padding    = 10
	charWidth  = 6 // Debug font cell width
)

// Canvas is the subset of render.Canvas the HUD draws with.
type Canvas interface {
	Size() (width, height int)
	FillRect(x, y, width, height float32, clr color.Color)
	DrawText(text string, x, y int)
}

// HUDConfig defines what to display in the HUD
type HUDConfig struct {
	ShowPosition bool    `json:"show_position"` // Show world position and tile
	ShowHeading  bool    `json:"show_heading"`  // Show heading in degrees
	ShowFrame    bool    `json:"show_frame"`    // Show frame counter
	ShowSession  bool    `json:"show_session"`  // Show session id
	Position     string  `json:"position"`      // "top-left", "top-right", "bottom-left", "bottom-right"
	Opacity      float64 `json:"opacity"`       // Background opacity (0-1)
}

// DefaultConfig returns a sensible default HUD configuration
func DefaultConfig() *HUDConfig {
	return &HUDConfig{
		ShowPosition: true,
		ShowHeading:  true,
		ShowFrame:    true,
		ShowSession:  false,
		Position:     "bottom-left",
		Opacity:      0.7,
	}
}

// Stats is the per-frame data shown by the HUD.
type Stats struct {
	X, Y     float64
	TileCol  int
	TileRow  int
	Angle    float64 // Radians
	Frame    int
	Session  string
	Hits     int // Rays that met a wall this frame
	RayCount int
}

// HUD manages the heads-up display
type HUD struct {
	config *HUDConfig
}

// New creates a new HUD with the given configuration
func New(config *HUDConfig) *HUD {
	if config == nil {
		config = DefaultConfig()
	}
	return &HUD{config: config}
}

// Lines returns the text lines for s, top to bottom.
func (h *HUD) Lines(s Stats) []string {
	var lines []string

	if h.config.ShowPosition {
		lines = append(lines, fmt.Sprintf("Pos: %.1f, %.1f (tile %d, %d)", s.X, s.Y, s.TileCol, s.TileRow))
	}
	if h.config.ShowHeading {
		lines = append(lines, fmt.Sprintf("Heading: %.1f°", s.Angle*180/math.Pi))
	}
	if h.config.ShowFrame {
		lines = append(lines, fmt.Sprintf("Frame: %d  Rays: %d/%d", s.Frame, s.Hits, s.RayCount))
	}
	if h.config.ShowSession && s.Session != "" {
		lines = append(lines, "Session: "+s.Session)
	}

	return lines
}

// Draw renders the HUD onto canvas
func (h *HUD) Draw(canvas Canvas, s Stats) {
	lines := h.Lines(s)
	if len(lines) == 0 {
		return
	}

	widest := 0
	for _, l := range lines {
		widest = max(widest, len([]rune(l)))
	}
	panelWidth := widest*charWidth + padding
	panelHeight := len(lines)*lineHeight + padding/2

	x, y := h.calculatePosition(canvas, panelWidth, panelHeight)

	alpha := uint8(h.config.Opacity * 255)
	canvas.FillRect(float32(x), float32(y), float32(panelWidth), float32(panelHeight), color.RGBA{20, 20, 30, alpha})

	for i, l := range lines {
		canvas.DrawText(l, x+padding/2, y+i*lineHeight)
	}
}

// calculatePosition returns the top-left corner of the HUD panel
func (h *HUD) calculatePosition(canvas Canvas, panelWidth, panelHeight int) (int, int) {
	screenWidth, screenHeight := canvas.Size()

	switch h.config.Position {
	case "top-right":
		return screenWidth - panelWidth - padding, padding
	case "bottom-left":
		return padding, screenHeight - panelHeight - padding
	case "bottom-right":
		return screenWidth - panelWidth - padding, screenHeight - panelHeight - padding
	default: // "top-left"
		return padding, padding
	}
}

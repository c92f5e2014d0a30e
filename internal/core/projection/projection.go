// Package projection turns ray hits into screen-space wall slices.
package projection

import (
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"chosenoffset.com/raycaster/internal/core/geom"
	"chosenoffset.com/raycaster/internal/core/raycast"
)

// Config holds the fixed screen-space parameters of the 3D view.
type Config struct {
	TileSize           float64 // World units per tile side
	ProjectionConstant float64 // Scales tileSize/distance into pixels
	MaxHeight          float64 // Vertical extent of the viewport
	CenterY            float64 // Screen y of the horizon
	LeftOffset         float64 // Screen x of the first column
	ColumnWidth        float64 // Width of one slice in pixels
	VerticalAlpha      float64 // Opacity for hits on constant-x lines
	HorizontalAlpha    float64 // Opacity for hits on constant-y lines
}

// DefaultConfig matches a 60-ray, 8-pixel-column view on the right half of a 1024x512 window.
func DefaultConfig() Config {
	return Config{
		TileSize:           64,
		ProjectionConstant: 320,
		MaxHeight:          320,
		CenterY:            160,
		LeftOffset:         530,
		ColumnWidth:        8,
		VerticalAlpha:      0.9,
		HorizontalAlpha:    0.7,
	}
}

// Slice is one projected column of wall.
type Slice struct {
	Column   int
	X        float64
	Width    float64
	Top      float64
	Height   float64
	Distance float64 // Fish-eye corrected
	WallType int
	Side     raycast.Side
	Base     color.RGBA  // Palette color of the wall type
	Color    color.NRGBA // Base color with the side's opacity
	Alpha    float64
	Visible  bool
}

// Bottom returns the screen y of the slice's lower edge.
func (s Slice) Bottom() float64 {
	return s.Top + s.Height
}

// Solid returns the slice color composited over black, for surfaces that
// cannot blend.
func (s Slice) Solid() color.RGBA {
	c, _ := colorful.MakeColor(s.Base)
	r, g, b := c.BlendRgb(colorful.Color{}, 1-s.Alpha).RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}

// Projector maps a fan of hits onto a reused slice buffer.
type Projector struct {
	cfg     Config
	palette func(code int) color.RGBA
	slices  []Slice
}

// New creates a projector for n columns. palette resolves wall types to colors.
func New(cfg Config, n int, palette func(code int) color.RGBA) *Projector {
	if n < 1 {
		n = 1
	}
	return &Projector{
		cfg:     cfg,
		palette: palette,
		slices:  make([]Slice, n),
	}
}

// Config returns the projector's parameters.
func (p *Projector) Config() Config {
	return p.cfg
}

// Slices returns the result of the last projection.
func (p *Projector) Slices() []Slice {
	return p.slices
}

// CorrectedDistance removes the fish-eye bulge by scaling d with the cosine
// of the ray's offset from the heading.
func CorrectedDistance(heading, angle, d float64) float64 {
	delta := geom.NormalizeAngle(heading - angle)
	return d * math.Cos(delta)
}

// WallHeight converts a corrected distance to a slice height in pixels,
// clamped to MaxHeight.
func (p *Projector) WallHeight(corrected float64) float64 {
	if corrected <= 0 {
		return p.cfg.MaxHeight
	}

	h := p.cfg.TileSize * p.cfg.ProjectionConstant / corrected
	if h > p.cfg.MaxHeight || math.IsInf(h, 1) || math.IsNaN(h) {
		return p.cfg.MaxHeight
	}
	return h
}

// Project fills one slice per hit. Slices beyond len(hits) are left hidden.
func (p *Projector) Project(heading float64, hits []raycast.Hit) []Slice {
	for i := range p.slices {
		if i >= len(hits) {
			p.slices[i] = Slice{Column: i}
			continue
		}
		p.slices[i] = p.project(i, heading, hits[i])
	}
	return p.slices
}

func (p *Projector) project(i int, heading float64, hit raycast.Hit) Slice {
	corrected := CorrectedDistance(heading, hit.Angle, hit.Distance)
	height := p.WallHeight(corrected)

	s := Slice{
		Column:   i,
		X:        p.cfg.LeftOffset + float64(i)*p.cfg.ColumnWidth,
		Width:    p.cfg.ColumnWidth,
		Top:      p.cfg.CenterY - height/2,
		Height:   height,
		Distance: corrected,
		WallType: hit.WallType,
		Side:     hit.Side,
		Visible:  !hit.Missed() && hit.WallType > 0,
	}

	if !s.Visible {
		return s
	}

	s.Alpha = p.cfg.HorizontalAlpha
	if hit.Side == raycast.SideVertical {
		s.Alpha = p.cfg.VerticalAlpha
	}

	s.Base = p.palette(hit.WallType)
	s.Color = color.NRGBA{R: s.Base.R, G: s.Base.G, B: s.Base.B, A: uint8(math.Round(s.Alpha * 0xff))}
	return s
}

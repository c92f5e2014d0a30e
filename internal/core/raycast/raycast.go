// Package raycast finds where rays leaving the player meet the walls of a
// tile grid. Each ray is resolved by two independent grid-line scans, one
// over horizontal lines and one over vertical lines; the nearer hit wins.
package raycast

import (
	"math"

	"chosenoffset.com/raycaster/internal/core/geom"
)

// NoHitDistance is reported when a scan leaves the grid without meeting a wall.
const NoHitDistance = 1_000_000

// boundaryEpsilon pushes a decreasing scan onto the far side of the grid
// line so the lookup lands in the neighbouring tile, not the current one.
const boundaryEpsilon = 0.0001

// Grid is the read-only view of a tile map the caster needs.
type Grid interface {
	Width() int
	Height() int
	TileSize() float64
	TileAt(col, row int) (code int, ok bool)
}

// Side tells which family of grid lines a ray hit.
type Side int

const (
	SideNone       Side = iota
	SideHorizontal      // constant-y line
	SideVertical        // constant-x line
)

func (s Side) String() string {
	switch s {
	case SideHorizontal:
		return "horizontal"
	case SideVertical:
		return "vertical"
	default:
		return "none"
	}
}

// Hit is the outcome of casting one ray.
type Hit struct {
	Angle    float64
	X, Y     float64
	Distance float64
	WallType int
	Side     Side
}

// Missed reports whether the ray found no wall.
func (h Hit) Missed() bool {
	return h.Side == SideNone
}

// Point returns the ray's end point.
func (h Hit) Point() geom.Point {
	return geom.Point{X: h.X, Y: h.Y}
}

// scanAxis describes one family of grid lines. The primary coordinate is the
// one that advances a full tile per step (y for horizontal lines, x for
// vertical ones); the secondary coordinate follows the ray's slope.
type scanAxis struct {
	side       Side
	parallel   func(angle float64) bool
	decreasing func(angle float64) bool
	slope      func(angle float64) float64
	split      func(p geom.Point) (primary, secondary float64)
	join       func(primary, secondary float64) geom.Point
	extent     func(g Grid) int
}

var horizontalLines = scanAxis{
	side: SideHorizontal,
	parallel: func(a float64) bool {
		return a == 0 || a == math.Pi
	},
	decreasing: func(a float64) bool {
		return a > math.Pi
	},
	slope: func(a float64) float64 {
		return 1 / math.Tan(a)
	},
	split: func(p geom.Point) (float64, float64) {
		return p.Y, p.X
	},
	join: func(primary, secondary float64) geom.Point {
		return geom.Point{X: secondary, Y: primary}
	},
	extent: func(g Grid) int { return g.Height() },
}

var verticalLines = scanAxis{
	side: SideVertical,
	parallel: func(a float64) bool {
		return a == geom.HalfPi || a == geom.ThreeHalfPi
	},
	decreasing: func(a float64) bool {
		return a > geom.HalfPi && a < geom.ThreeHalfPi
	},
	slope: math.Tan,
	split: func(p geom.Point) (float64, float64) {
		return p.X, p.Y
	},
	join: func(primary, secondary float64) geom.Point {
		return geom.Point{X: primary, Y: secondary}
	},
	extent: func(g Grid) int { return g.Width() },
}

func miss(origin geom.Point, angle float64) Hit {
	return Hit{
		Angle:    angle,
		X:        origin.X,
		Y:        origin.Y,
		Distance: NoHitDistance,
	}
}

// scan steps along one family of grid lines until it meets a wall, leaves
// the grid, or has taken as many steps as the grid is wide in that axis.
func scan(g Grid, origin geom.Point, angle float64, ax scanAxis) Hit {
	if ax.parallel(angle) {
		return miss(origin, angle)
	}

	slope := ax.slope(angle)
	if math.IsInf(slope, 0) || math.IsNaN(slope) {
		return miss(origin, angle)
	}

	tileSize := g.TileSize()
	p0, s0 := ax.split(origin)

	var primary, step float64
	if ax.decreasing(angle) {
		primary = geom.SnapToGridFloor(p0, tileSize) - boundaryEpsilon
		step = -tileSize
	} else {
		primary = geom.SnapToGridFloor(p0, tileSize) + tileSize
		step = tileSize
	}
	secondary := s0 + (primary-p0)*slope
	secondaryStep := step * slope

	limit := ax.extent(g)
	for depth := 0; depth < limit; depth++ {
		pt := ax.join(primary, secondary)
		code, ok := g.TileAt(geom.TileIndex(pt.X, tileSize), geom.TileIndex(pt.Y, tileSize))
		if !ok {
			return miss(origin, angle)
		}

		if code > 0 {
			return Hit{
				Angle:    angle,
				X:        pt.X,
				Y:        pt.Y,
				Distance: geom.Distance(origin, pt),
				WallType: code,
				Side:     ax.side,
			}
		}

		primary += step
		secondary += secondaryStep
	}

	return miss(origin, angle)
}

// Cast returns the nearest wall along the ray leaving origin at angle.
// angle must already be normalized to [0, 2π). On an exact tie between the
// two scans the vertical-line hit is kept.
func Cast(g Grid, origin geom.Point, angle float64) Hit {
	h := scan(g, origin, angle, horizontalLines)
	v := scan(g, origin, angle, verticalLines)

	if v.Distance <= h.Distance {
		return v
	}
	return h
}

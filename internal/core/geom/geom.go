// Package geom holds the small amount of plane geometry the raycaster needs:
// points, angle wrapping, distances and grid snapping.
package geom

import "math"

const (
	// TwoPi is one full turn in radians.
	TwoPi = 2 * math.Pi
	// HalfPi points straight down the screen (y grows downward).
	HalfPi = math.Pi / 2
	// ThreeHalfPi points straight up the screen.
	ThreeHalfPi = 3 * math.Pi / 2
)

// Point represents a 2D point in world space
type Point struct {
	X, Y float64
}

// Add returns p translated by q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns p translated by -q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// NormalizeAngle wraps a into [0, 2π) with a single turn of correction.
// Inputs more than one turn outside the range are not fully reduced.
func NormalizeAngle(a float64) float64 {
	if a < 0 {
		a += TwoPi
		// -ε + 2π can round up to exactly 2π
		if a >= TwoPi {
			return 0
		}
		return a
	}
	if a >= TwoPi {
		a -= TwoPi
	}
	return a
}

// Distance calculates the Euclidean distance between two points
func Distance(a, b Point) float64 {
	dx := b.X - a.X
	dy := b.Y - a.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// SnapToGridFloor returns the largest multiple of tileSize that is <= v.
func SnapToGridFloor(v, tileSize float64) float64 {
	return math.Floor(v/tileSize) * tileSize
}

// TileIndex returns the grid cell index containing world coordinate v.
func TileIndex(v, tileSize float64) int {
	return int(math.Floor(v / tileSize))
}

// Radians converts degrees to radians.
func Radians(deg float64) float64 {
	return deg * math.Pi / 180
}

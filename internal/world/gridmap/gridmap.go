// Package gridmap holds the static tile grid the raycaster walks through.
// A Map is validated on construction and never changes afterwards.
package gridmap

import (
	"fmt"
	"image/color"
	"sort"
)

// Empty is the tile code for passable floor.
const Empty = 0

// SpawnPoint defines where the player starts and which way they face
type SpawnPoint struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Angle float64 `json:"angle"` // Radians
}

// TileRect is one map cell in world coordinates, ready to be painted.
type TileRect struct {
	Col, Row int
	X, Y     float64
	Size     float64
	Code     int
	Color    color.RGBA
}

// Map is a fixed-size grid of tile codes with a color per code.
type Map struct {
	name     string
	width    int
	height   int
	tileSize float64
	tiles    []int
	colors   map[int]color.RGBA
	spawn    SpawnPoint
}

// New validates the grid and returns an immutable Map.
// Every non-zero code used in tiles must have an entry in colors.
func New(name string, width, height int, tileSize float64, tiles []int, colors map[int]color.RGBA) (*Map, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid map dimensions: %dx%d", width, height)
	}

	if tileSize <= 0 {
		return nil, fmt.Errorf("invalid tile size: %v", tileSize)
	}

	if len(tiles) != width*height {
		return nil, fmt.Errorf("tile count mismatch: expected %d (%dx%d), got %d", width*height, width, height, len(tiles))
	}

	palette := make(map[int]color.RGBA, len(colors)+1)
	for code, c := range colors {
		palette[code] = c
	}
	if _, ok := palette[Empty]; !ok {
		palette[Empty] = color.RGBA{A: 0xff}
	}

	var missing []int
	seen := make(map[int]bool)
	for i, code := range tiles {
		if code < 0 {
			return nil, fmt.Errorf("negative tile code %d at (%d, %d)", code, i%width, i/width)
		}
		if seen[code] {
			continue
		}
		seen[code] = true
		if _, ok := palette[code]; !ok {
			missing = append(missing, code)
		}
	}
	if len(missing) > 0 {
		sort.Ints(missing)
		return nil, fmt.Errorf("no color configured for tile codes %v", missing)
	}

	grid := make([]int, len(tiles))
	copy(grid, tiles)

	return &Map{
		name:     name,
		width:    width,
		height:   height,
		tileSize: tileSize,
		tiles:    grid,
		colors:   palette,
		spawn: SpawnPoint{
			X: float64(width) * tileSize / 2,
			Y: float64(height) * tileSize / 2,
		},
	}, nil
}

// WithSpawn returns a copy of the map that starts the player at sp.
func (m *Map) WithSpawn(sp SpawnPoint) *Map {
	cp := *m
	cp.spawn = sp
	return &cp
}

// Name returns the map's display name.
func (m *Map) Name() string { return m.name }

// Width returns the number of columns.
func (m *Map) Width() int { return m.width }

// Height returns the number of rows.
func (m *Map) Height() int { return m.height }

// TileSize returns the side length of one tile in world units.
func (m *Map) TileSize() float64 { return m.tileSize }

// Spawn returns the configured player start.
func (m *Map) Spawn() SpawnPoint { return m.spawn }

// TileAt returns the tile code at the given grid coordinates.
// ok is false when the coordinates are outside the grid.
func (m *Map) TileAt(col, row int) (code int, ok bool) {
	if col < 0 || col >= m.width || row < 0 || row >= m.height {
		return Empty, false
	}
	return m.tiles[row*m.width+col], true
}

// IsWall reports whether the cell holds a wall. Cells outside the grid are not walls.
func (m *Map) IsWall(col, row int) bool {
	code, ok := m.TileAt(col, row)
	return ok && code != Empty
}

// Color returns the display color for a tile code.
func (m *Map) Color(code int) color.RGBA {
	return m.colors[code]
}

// TileRects lists every cell as a rectangle in world coordinates, row by row.
func (m *Map) TileRects() []TileRect {
	rects := make([]TileRect, 0, len(m.tiles))
	for row := 0; row < m.height; row++ {
		for col := 0; col < m.width; col++ {
			code := m.tiles[row*m.width+col]
			rects = append(rects, TileRect{
				Col:   col,
				Row:   row,
				X:     float64(col) * m.tileSize,
				Y:     float64(row) * m.tileSize,
				Size:  m.tileSize,
				Code:  code,
				Color: m.colors[code],
			})
		}
	}
	return rects
}

// Default returns the built-in 8x8 demo map.
func Default() *Map {
	tiles := []int{
		1, 1, 1, 1, 1, 1, 1, 1,
		1, 0, 2, 0, 0, 0, 0, 1,
		1, 0, 2, 0, 0, 0, 0, 1,
		1, 0, 2, 0, 0, 0, 0, 1,
		1, 0, 0, 0, 0, 0, 0, 1,
		1, 0, 0, 0, 0, 3, 0, 1,
		1, 0, 0, 0, 0, 0, 0, 1,
		1, 1, 1, 1, 1, 1, 1, 1,
	}
	colors := map[int]color.RGBA{
		0: {A: 0xff},
		1: {R: 0xff, A: 0xff},
		2: {G: 0x80, A: 0xff},
		3: {B: 0xff, A: 0xff},
	}

	m, err := New("default", 8, 8, 64, tiles, colors)
	if err != nil {
		panic(fmt.Sprintf("gridmap: built-in map is invalid: %v", err))
	}
	return m.WithSpawn(SpawnPoint{X: 300, Y: 300})
}

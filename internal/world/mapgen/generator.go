// Package mapgen builds random closed tile maps for the raycaster.
package mapgen

import (
	"errors"
	"fmt"
	"image/color"
	"math/rand/v2"

	"github.com/lucasb-eyer/go-colorful"

	"chosenoffset.com/raycaster/internal/core/geom"
	"chosenoffset.com/raycaster/internal/world/gridmap"
)

// Wall codes used by generated maps.
const (
	BorderWall    = 1
	PartitionWall = 2
	PillarWall    = 3
)

// GeneratorConfig controls map generation
type GeneratorConfig struct {
	Name          string
	Width         int     // Tiles across, border included
	Height        int     // Tiles down, border included
	TileSize      float64 // World units per tile
	Partitions    int     // Interior wall runs, each with a doorway
	PillarDensity float64 // Chance per open tile of a pillar (0-1)
	Seed          uint64
}

// DefaultConfig returns a 16x16 map with a few rooms and pillars
func DefaultConfig() GeneratorConfig {
	return GeneratorConfig{
		Name:          "generated",
		Width:         16,
		Height:        16,
		TileSize:      64,
		Partitions:    3,
		PillarDensity: 0.05,
		Seed:          1,
	}
}

// Generator creates maps from a config
type Generator struct {
	config GeneratorConfig
	rng    *rand.Rand
}

// NewGenerator creates a generator seeded from config.Seed
func NewGenerator(config GeneratorConfig) *Generator {
	return &Generator{
		config: config,
		rng:    rand.New(rand.NewPCG(config.Seed, config.Seed^0x9e3779b97f4a7c15)),
	}
}

// Generate builds a bordered map. Every open tile is reachable from the
// spawn point, which sits in the open tile nearest the centre.
func (g *Generator) Generate() (*gridmap.Map, error) {
	w, h := g.config.Width, g.config.Height
	if w < 3 || h < 3 {
		return nil, fmt.Errorf("map must be at least 3x3, got %dx%d", w, h)
	}
	if g.config.PillarDensity < 0 || g.config.PillarDensity > 1 {
		return nil, fmt.Errorf("pillar density must be in [0, 1], got %v", g.config.PillarDensity)
	}

	tiles := make([][]int, h)
	for y := range tiles {
		tiles[y] = make([]int, w)
		for x := range tiles[y] {
			if x == 0 || y == 0 || x == w-1 || y == h-1 {
				tiles[y][x] = BorderWall
			}
		}
	}

	for i := 0; i < g.config.Partitions; i++ {
		g.addPartition(tiles)
	}
	g.addPillars(tiles)

	sx, sy, ok := g.findSpawn(tiles)
	if !ok {
		return nil, errors.New("no open tile left for the player")
	}
	g.fillUnreachable(tiles, sx, sy)

	flat := make([]int, 0, w*h)
	for _, row := range tiles {
		flat = append(flat, row...)
	}

	m, err := gridmap.New(g.config.Name, w, h, g.config.TileSize, flat, g.palette())
	if err != nil {
		return nil, err
	}

	ts := g.config.TileSize
	return m.WithSpawn(gridmap.SpawnPoint{
		X:     (float64(sx) + 0.5) * ts,
		Y:     (float64(sy) + 0.5) * ts,
		Angle: g.rng.Float64() * geom.TwoPi,
	}), nil
}

// addPartition draws a straight interior wall with a one-tile doorway.
func (g *Generator) addPartition(tiles [][]int) {
	h, w := len(tiles), len(tiles[0])
	if g.rng.IntN(2) == 0 && w > 4 {
		x := 2 + g.rng.IntN(w-4)
		door := 1 + g.rng.IntN(h-2)
		for y := 1; y < h-1; y++ {
			if y != door {
				tiles[y][x] = PartitionWall
			}
		}
		return
	}
	if h > 4 {
		y := 2 + g.rng.IntN(h-4)
		door := 1 + g.rng.IntN(w-2)
		for x := 1; x < w-1; x++ {
			if x != door {
				tiles[y][x] = PartitionWall
			}
		}
	}
}

func (g *Generator) addPillars(tiles [][]int) {
	if g.config.PillarDensity == 0 {
		return
	}
	for y := 1; y < len(tiles)-1; y++ {
		for x := 1; x < len(tiles[y])-1; x++ {
			if tiles[y][x] == gridmap.Empty && g.rng.Float64() < g.config.PillarDensity {
				tiles[y][x] = PillarWall
			}
		}
	}
}

// findSpawn returns the open tile closest to the centre of the map.
func (g *Generator) findSpawn(tiles [][]int) (int, int, bool) {
	cx, cy := len(tiles[0])/2, len(tiles)/2
	best, bx, by := -1, 0, 0
	for y, row := range tiles {
		for x, code := range row {
			if code != gridmap.Empty {
				continue
			}
			d := (x-cx)*(x-cx) + (y-cy)*(y-cy)
			if best < 0 || d < best {
				best, bx, by = d, x, y
			}
		}
	}
	return bx, by, best >= 0
}

// fillUnreachable walls off open tiles the player cannot walk to.
func (g *Generator) fillUnreachable(tiles [][]int, sx, sy int) {
	reachable := make(map[[2]int]bool)
	stack := [][2]int{{sx, sy}}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if reachable[p] {
			continue
		}
		reachable[p] = true

		for _, d := range [][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}} {
			n := [2]int{p[0] + d[0], p[1] + d[1]}
			if tiles[n[1]][n[0]] == gridmap.Empty && !reachable[n] {
				stack = append(stack, n)
			}
		}
	}

	for y, row := range tiles {
		for x, code := range row {
			if code == gridmap.Empty && !reachable[[2]int{x, y}] {
				tiles[y][x] = PillarWall
			}
		}
	}
}

// palette picks a random hue per wall code with fixed saturation and value.
func (g *Generator) palette() map[int]color.RGBA {
	colors := map[int]color.RGBA{gridmap.Empty: {A: 0xff}}
	for _, code := range []int{BorderWall, PartitionWall, PillarWall} {
		c := colorful.Hsv(g.rng.Float64()*360, 0.7, 0.9)
		r, gr, b := c.RGB255()
		colors[code] = color.RGBA{R: r, G: gr, B: b, A: 0xff}
	}
	return colors
}

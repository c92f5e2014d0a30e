package main

import (
	"flag"
	"fmt"
	"os"

	"chosenoffset.com/raycaster/internal/world/gridmap"
	"chosenoffset.com/raycaster/internal/world/mapgen"
)

func main() {
	defaults := mapgen.DefaultConfig()

	out := flag.String("out", "data/maps/generated.json", "output map file")
	name := flag.String("name", defaults.Name, "map name")
	width := flag.Int("width", defaults.Width, "tiles across")
	height := flag.Int("height", defaults.Height, "tiles down")
	tileSize := flag.Float64("tile", defaults.TileSize, "world units per tile")
	partitions := flag.Int("partitions", defaults.Partitions, "interior walls with doorways")
	density := flag.Float64("pillars", defaults.PillarDensity, "pillar chance per open tile (0-1)")
	seed := flag.Uint64("seed", defaults.Seed, "random seed")
	flag.Parse()

	fmt.Println("Raycaster Map Generator")
	fmt.Println("=======================")

	gen := mapgen.NewGenerator(mapgen.GeneratorConfig{
		Name:          *name,
		Width:         *width,
		Height:        *height,
		TileSize:      *tileSize,
		Partitions:    *partitions,
		PillarDensity: *density,
		Seed:          *seed,
	})

	m, err := gen.Generate()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := gridmap.SaveMap(m, *out); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	sp := m.Spawn()
	fmt.Printf("Wrote %dx%d map %q to %s (spawn %.0f, %.0f)\n", m.Width(), m.Height(), m.Name(), *out, sp.X, sp.Y)
}

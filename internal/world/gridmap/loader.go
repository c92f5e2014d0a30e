package gridmap

import (
	"encoding/json"
	"fmt"
	"image/color"
	"os"
	"strconv"

	"github.com/lucasb-eyer/go-colorful"
)

// MapData is the on-disk JSON form of a map
type MapData struct {
	Name        string            `json:"name"`
	Width       int               `json:"width"`
	Height      int               `json:"height"`
	TileSize    float64           `json:"tile_size"`
	PlayerSpawn *SpawnPoint       `json:"player_spawn,omitempty"`
	Tiles       [][]int           `json:"tiles"`  // Rows of tile codes [y][x]
	Colors      map[string]string `json:"colors"` // Tile code -> hex color
}

// LoadMap loads and validates a map from a JSON file
func LoadMap(mapPath string) (*Map, error) {
	data, err := os.ReadFile(mapPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read map file %s: %w", mapPath, err)
	}

	var mapData MapData
	if err := json.Unmarshal(data, &mapData); err != nil {
		return nil, fmt.Errorf("failed to parse map file %s: %w", mapPath, err)
	}

	m, err := mapData.Build()
	if err != nil {
		return nil, fmt.Errorf("invalid map data in %s: %w", mapPath, err)
	}

	return m, nil
}

// Build converts the JSON form into a validated Map.
func (d *MapData) Build() (*Map, error) {
	if len(d.Tiles) != d.Height {
		return nil, fmt.Errorf("tiles array height mismatch: expected %d, got %d", d.Height, len(d.Tiles))
	}

	tiles := make([]int, 0, d.Width*d.Height)
	for y, row := range d.Tiles {
		if len(row) != d.Width {
			return nil, fmt.Errorf("tiles array width mismatch at row %d: expected %d, got %d", y, d.Width, len(row))
		}
		tiles = append(tiles, row...)
	}

	colors, err := parsePalette(d.Colors)
	if err != nil {
		return nil, err
	}

	m, err := New(d.Name, d.Width, d.Height, d.TileSize, tiles, colors)
	if err != nil {
		return nil, err
	}

	if d.PlayerSpawn != nil {
		m = m.WithSpawn(*d.PlayerSpawn)
	}
	return m, nil
}

func parsePalette(raw map[string]string) (map[int]color.RGBA, error) {
	colors := make(map[int]color.RGBA, len(raw))
	for key, hex := range raw {
		code, err := strconv.Atoi(key)
		if err != nil {
			return nil, fmt.Errorf("invalid tile code %q in colors: %w", key, err)
		}

		c, err := colorful.Hex(hex)
		if err != nil {
			return nil, fmt.Errorf("invalid color %q for tile code %d: %w", hex, code, err)
		}

		r, g, b := c.RGB255()
		colors[code] = color.RGBA{R: r, G: g, B: b, A: 0xff}
	}
	return colors, nil
}

// Data returns the JSON form of m, suitable for SaveMap.
func (m *Map) Data() *MapData {
	d := &MapData{
		Name:     m.name,
		Width:    m.width,
		Height:   m.height,
		TileSize: m.tileSize,
		Tiles:    make([][]int, m.height),
		Colors:   make(map[string]string, len(m.colors)),
	}

	spawn := m.spawn
	d.PlayerSpawn = &spawn

	for row := 0; row < m.height; row++ {
		d.Tiles[row] = append([]int(nil), m.tiles[row*m.width:(row+1)*m.width]...)
	}

	for code, c := range m.colors {
		cf, _ := colorful.MakeColor(c)
		d.Colors[strconv.Itoa(code)] = cf.Hex()
	}
	return d
}

// SaveMap writes m to path as indented JSON.
func SaveMap(m *Map, path string) error {
	data, err := json.MarshalIndent(m.Data(), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode map %s: %w", m.name, err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write map file %s: %w", path, err)
	}
	return nil
}

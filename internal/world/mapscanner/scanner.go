package mapscanner

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// MapEntry represents a discoverable map file in the data directory
type MapEntry struct {
	Name string // Display name (file name without extension)
	Path string // Path to the JSON file
}

// ScanMaps scans dir for map files, sorted by name.
// Hidden files and non-JSON files are skipped.
func ScanMaps(dir string) ([]MapEntry, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read map directory: %w", err)
	}

	var maps []MapEntry
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		name := entry.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}

		ext := filepath.Ext(name)
		if !strings.EqualFold(ext, ".json") {
			continue
		}

		maps = append(maps, MapEntry{
			Name: strings.TrimSuffix(name, ext),
			Path: filepath.Join(dir, name),
		})
	}

	sort.Slice(maps, func(i, j int) bool {
		return maps[i].Name < maps[j].Name
	})

	return maps, nil
}

// Find returns the entry called name, if present.
func Find(maps []MapEntry, name string) (MapEntry, bool) {
	for _, m := range maps {
		if m.Name == name {
			return m, true
		}
	}
	return MapEntry{}, false
}

// Resolve turns a -map argument into a file path. An argument that names an
// existing file is used as is; otherwise it is looked up by name in dir.
func Resolve(arg, dir string) (string, error) {
	if info, err := os.Stat(arg); err == nil && !info.IsDir() {
		return arg, nil
	}

	maps, err := ScanMaps(dir)
	if err != nil {
		return "", err
	}

	entry, ok := Find(maps, arg)
	if !ok {
		names := make([]string, len(maps))
		for i, m := range maps {
			names[i] = m.Name
		}
		return "", fmt.Errorf("map %q not found in %s (available: %s)", arg, dir, strings.Join(names, ", "))
	}
	return entry.Path, nil
}

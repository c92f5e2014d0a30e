package main

import (
	"flag"
	"log"

	"chosenoffset.com/raycaster/internal/config"
	"chosenoffset.com/raycaster/internal/game"
	"chosenoffset.com/raycaster/internal/render"
	ebitenrender "chosenoffset.com/raycaster/internal/render/ebiten"
	"chosenoffset.com/raycaster/internal/render/terminal"
	"chosenoffset.com/raycaster/internal/world/gridmap"
	"chosenoffset.com/raycaster/internal/world/mapscanner"
)

func main() {
	configPath := flag.String("config", "data/config.json", "path to the config file")
	mapArg := flag.String("map", "", "map name in the data directory or path to a map file")
	dataDir := flag.String("data", "data/maps", "directory scanned for maps")
	backend := flag.String("backend", "ebiten", "render backend: ebiten or terminal")
	workers := flag.Int("workers", -1, "goroutines casting the ray fan (overrides config when >= 0)")
	debug := flag.Bool("debug", false, "show the HUD overlay")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *workers >= 0 {
		cfg.Render.Workers = *workers
	}
	if *debug {
		cfg.Render.Debug = true
	}

	var engine render.Engine
	switch *backend {
	case "ebiten":
		engine = ebitenrender.NewEngine()
	case "terminal":
		engine, err = terminal.NewEngine(cfg.Window.TPS)
		if err != nil {
			log.Fatalf("Failed to start terminal backend: %v", err)
		}
	default:
		log.Fatalf("Unknown backend %q (want ebiten or terminal)", *backend)
	}
	input := engine.InputManager()

	var manager *game.Manager
	if *mapArg != "" {
		path, err := mapscanner.Resolve(*mapArg, *dataDir)
		if err != nil {
			log.Fatalf("Failed to find map: %v", err)
		}
		gameMap, err := gridmap.LoadMap(path)
		if err != nil {
			log.Fatalf("Failed to load map: %v", err)
		}
		manager, err = game.NewManagerWithMap(cfg, input, gameMap)
		if err != nil {
			log.Fatalf("Failed to start game: %v", err)
		}
	} else {
		log.Println("Scanning data directory for available maps...")
		maps, err := mapscanner.ScanMaps(*dataDir)
		if err != nil {
			log.Printf("Warning: %v; using the built-in map", err)
		}

		if len(maps) == 0 {
			manager, err = game.NewManagerWithMap(cfg, input, gridmap.Default())
			if err != nil {
				log.Fatalf("Failed to start game: %v", err)
			}
		} else {
			manager = game.NewManager(cfg, input, maps)
		}
	}

	engine.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	engine.SetWindowTitle(cfg.Window.Title)
	engine.SetWindowResizable(cfg.Window.Resizable)

	log.Println("Starting game...")
	if err := engine.RunGame(manager); err != nil {
		log.Fatal(err)
	}
}

// Package config provides the tunable parameters of the raycaster.
// Values are loaded from a JSON file laid over DefaultConfig.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"chosenoffset.com/raycaster/internal/core/projection"
)

// Config holds every startup parameter
type Config struct {
	// Window
	Window WindowConfig `json:"window"`

	// Ray fan
	Camera CameraConfig `json:"camera"`

	// Player movement
	Player PlayerConfig `json:"player"`

	// 3D scene placement on screen
	Scene SceneConfig `json:"scene"`

	// Render loop options
	Render RenderConfig `json:"render"`
}

// WindowConfig defines the window or terminal surface
type WindowConfig struct {
	Title     string `json:"title"`
	Width     int    `json:"width"`
	Height    int    `json:"height"`
	Resizable bool   `json:"resizable"`
	TPS       int    `json:"tps"` // Frames per second for the terminal backend
}

// CameraConfig defines the ray fan
type CameraConfig struct {
	FOVDegrees float64 `json:"fov_degrees"` // Total angular width (e.g., 60)
	RayCount   int     `json:"ray_count"`   // Rays per frame (e.g., 60)
}

// PlayerConfig defines per-input increments
type PlayerConfig struct {
	Speed        float64 `json:"speed"`         // World units per move input
	RotationStep float64 `json:"rotation_step"` // Radians per rotate input
}

// SceneConfig defines where and how wall slices are drawn
type SceneConfig struct {
	LeftOffset         float64 `json:"left_offset"`         // Screen x of the first slice
	ColumnWidth        float64 `json:"column_width"`        // Pixels per slice
	CenterY            float64 `json:"center_y"`            // Horizon line
	MaxHeight          float64 `json:"max_height"`          // Clamp for projected height
	ProjectionConstant float64 `json:"projection_constant"` // Height scale factor
	VerticalAlpha      float64 `json:"vertical_alpha"`      // Opacity of constant-x hits
	HorizontalAlpha    float64 `json:"horizontal_alpha"`    // Opacity of constant-y hits
}

// RenderConfig defines optional drawing and casting behaviour
type RenderConfig struct {
	Workers  int  `json:"workers"`   // >1 casts the fan on several goroutines
	ShowMap  bool `json:"show_map"`  // Draw the 2D tile map
	ShowRays bool `json:"show_rays"` // Draw rays over the 2D map
	Debug    bool `json:"debug"`     // Draw the HUD overlay
}

// DefaultConfig returns the classic 1024x512 split-screen setup
func DefaultConfig() *Config {
	return &Config{
		Window: WindowConfig{
			Title:     "Raycaster",
			Width:     1024,
			Height:    512,
			Resizable: false,
			TPS:       30,
		},
		Camera: CameraConfig{
			FOVDegrees: 60,
			RayCount:   60,
		},
		Player: PlayerConfig{
			Speed:        5,
			RotationStep: 0.1,
		},
		Scene: SceneConfig{
			LeftOffset:         530,
			ColumnWidth:        8,
			CenterY:            160,
			MaxHeight:          320,
			ProjectionConstant: 320,
			VerticalAlpha:      0.9,
			HorizontalAlpha:    0.7,
		},
		Render: RenderConfig{
			Workers:  0,
			ShowMap:  true,
			ShowRays: true,
			Debug:    false,
		},
	}
}

// LoadConfig loads config from a JSON file
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		// Return defaults if file doesn't exist
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	config := DefaultConfig() // Start with defaults
	if err := json.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return config, nil
}

// Validate checks that every parameter is usable
func (c *Config) Validate() error {
	var errs []error

	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("invalid window size: %dx%d", c.Window.Width, c.Window.Height))
	}
	if c.Window.TPS <= 0 {
		errs = append(errs, fmt.Errorf("invalid tps: %d", c.Window.TPS))
	}
	if c.Camera.FOVDegrees <= 0 || c.Camera.FOVDegrees > 360 {
		errs = append(errs, fmt.Errorf("fov must be in (0, 360], got %v", c.Camera.FOVDegrees))
	}
	if c.Camera.RayCount <= 0 {
		errs = append(errs, fmt.Errorf("ray count must be positive, got %d", c.Camera.RayCount))
	}
	if c.Player.Speed < 0 {
		errs = append(errs, fmt.Errorf("player speed must not be negative, got %v", c.Player.Speed))
	}
	if c.Scene.ColumnWidth <= 0 {
		errs = append(errs, fmt.Errorf("column width must be positive, got %v", c.Scene.ColumnWidth))
	}
	if c.Scene.MaxHeight <= 0 || c.Scene.ProjectionConstant <= 0 {
		errs = append(errs, errors.New("max height and projection constant must be positive"))
	}
	if c.Scene.VerticalAlpha < 0 || c.Scene.VerticalAlpha > 1 || c.Scene.HorizontalAlpha < 0 || c.Scene.HorizontalAlpha > 1 {
		errs = append(errs, errors.New("alphas must be in [0, 1]"))
	}
	if c.Render.Workers < 0 {
		errs = append(errs, fmt.Errorf("workers must not be negative, got %d", c.Render.Workers))
	}

	return errors.Join(errs...)
}

// Projection builds the projector parameters for a map of the given tile size.
func (c *Config) Projection(tileSize float64) projection.Config {
	return projection.Config{
		TileSize:           tileSize,
		ProjectionConstant: c.Scene.ProjectionConstant,
		MaxHeight:          c.Scene.MaxHeight,
		CenterY:            c.Scene.CenterY,
		LeftOffset:         c.Scene.LeftOffset,
		ColumnWidth:        c.Scene.ColumnWidth,
		VerticalAlpha:      c.Scene.VerticalAlpha,
		HorizontalAlpha:    c.Scene.HorizontalAlpha,
	}
}

// Package config loads viewer settings from an optional YAML file layered
// over built-in defaults.
package config

import (
	"fmt"
	"os"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Settings holds every tunable of the viewer
type Settings struct {
	Window        WindowSettings       `koanf:"window"`
	Camera        CameraSettings       `koanf:"camera"`
	Snap          SnapSettings         `koanf:"snap"`
	Notifications NotificationSettings `koanf:"notifications"`
	Watch         WatchSettings        `koanf:"watch"`
}

// WindowSettings controls the initial window
type WindowSettings struct {
	Width  int    `koanf:"width"`
	Height int    `koanf:"height"`
	Title  string `koanf:"title"`
}

// CameraSettings controls the starting camera orbit
type CameraSettings struct {
	Distance float64 `koanf:"distance"`
	AngleX   float64 `koanf:"angle_x"`
	AngleY   float64 `koanf:"angle_y"`
}

// SnapSettings controls grid snapping while sketching
type SnapSettings struct {
	Enabled  bool    `koanf:"enabled"`
	GridSize float64 `koanf:"grid_size"`
	Radius   float64 `koanf:"radius"`
}

// NotificationSettings controls the toast overlay
type NotificationSettings struct {
	MaxVisible int     `koanf:"max_visible"`
	TTLSeconds float64 `koanf:"ttl_seconds"`
}

// WatchSettings controls the document file watcher
type WatchSettings struct {
	Enabled    bool `koanf:"enabled"`
	DebounceMs int  `koanf:"debounce_ms"`
}

func defaults() map[string]interface{} {
	return map[string]interface{}{
		"window.width":              1280,
		"window.height":             800,
		"window.title":              "govcad",
		"camera.distance":           120.0,
		"camera.angle_x":            0.5,
		"camera.angle_y":            0.6,
		"snap.enabled":              true,
		"snap.grid_size":            5.0,
		"snap.radius":               8.0,
		"notifications.max_visible": 5,
		"notifications.ttl_seconds": 6.0,
		"watch.enabled":             true,
		"watch.debounce_ms":         200,
	}
}

// Load builds Settings from defaults, then overlays the YAML file at path if
// it exists. An empty path or a missing file yields the defaults.
func Load(path string) (Settings, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return Settings{}, fmt.Errorf("loading defaults: %w", err)
	}

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
				return Settings{}, fmt.Errorf("loading config %s: %w", path, err)
			}
		}
	}

	var s Settings
	if err := k.Unmarshal("", &s); err != nil {
		return Settings{}, fmt.Errorf("parsing config: %w", err)
	}
	if err := s.validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

func (s Settings) validate() error {
	if s.Window.Width < 320 || s.Window.Height < 240 {
		return fmt.Errorf("window size %dx%d too small", s.Window.Width, s.Window.Height)
	}
	if s.Camera.Distance <= 0 {
		return fmt.Errorf("camera distance must be positive, got %v", s.Camera.Distance)
	}
	if s.Snap.GridSize <= 0 {
		return fmt.Errorf("snap grid size must be positive, got %v", s.Snap.GridSize)
	}
	if s.Notifications.MaxVisible < 1 {
		return fmt.Errorf("notifications max_visible must be at least 1, got %d", s.Notifications.MaxVisible)
	}
	if s.Watch.DebounceMs < 0 {
		return fmt.Errorf("watch debounce must not be negative, got %d", s.Watch.DebounceMs)
	}
	return nil
}

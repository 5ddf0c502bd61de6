// Package config handles viewer configuration loading and management.
package config

import "github.com/Faultbox/glstate/internal/engine/lighting"

// Config holds all viewer settings.
type Config struct {
	Window  WindowConfig  `yaml:"window"`
	Scene   SceneConfig   `yaml:"scene"`
	Logging LoggingConfig `yaml:"logging"`
	Debug   DebugConfig   `yaml:"debug"`
}

// WindowConfig holds display settings.
type WindowConfig struct {
	Title      string `yaml:"title"`
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Fullscreen bool   `yaml:"fullscreen"`
	VSync      bool   `yaml:"vsync"`
	Hidden     bool   `yaml:"hidden"`
}

// SceneConfig holds the lighting fed to the scene shader.
type SceneConfig struct {
	Ambient    [4]float32            `yaml:"ambient"`
	Lights     []lighting.PointLight `yaml:"lights"`
	Material   lighting.Material     `yaml:"material"`
	ClearColor [4]float32            `yaml:"clear_color"`
	SpinSpeed  float32               `yaml:"spin_speed"` // radians per second
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// DebugConfig holds developer settings.
type DebugConfig struct {
	ScreenshotDir string `yaml:"screenshot_dir"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Title:      "glview",
			Width:      1280,
			Height:     720,
			Fullscreen: false,
			VSync:      true,
		},
		Scene: SceneConfig{
			Ambient: [4]float32{0.2, 0.2, 0.2, 1.0},
			Lights: []lighting.PointLight{
				{
					Position: [3]float32{2, 2, 2},
					Diffuse:  [4]float32{1, 1, 1, 1},
					Specular: [4]float32{1, 1, 1, 1},
				},
			},
			Material: lighting.Material{
				Ambient:   [4]float32{1, 1, 1, 1},
				Diffuse:   [4]float32{0.8, 0.8, 0.8, 1},
				Specular:  [4]float32{0.5, 0.5, 0.5, 1},
				Shininess: 32,
			},
			ClearColor: [4]float32{0.1, 0.1, 0.15, 1.0},
			SpinSpeed:  0.8,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
		Debug: DebugConfig{
			ScreenshotDir: "screenshots",
		},
	}
}

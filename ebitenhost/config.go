package ebitenhost

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/phanxgames/thicket"
	"gopkg.in/yaml.v3"
)

// Config is the on-disk host configuration. Zero fields keep the
// defaults of the screen they are applied to.
//
//	style: dark
//	debug: true
//	font_size: 12
//	wheel_scale: 2
//	show_fps: true
//	screenshot_dir: shots
type Config struct {
	Style         string  `yaml:"style"`
	Debug         bool    `yaml:"debug"`
	FontSize      float64 `yaml:"font_size"`
	WheelScale    float64 `yaml:"wheel_scale"`
	ShowFPS       bool    `yaml:"show_fps"`
	ScreenshotDir string  `yaml:"screenshot_dir"`
}

// LoadConfig parses YAML host configuration. Unknown keys and malformed
// values are errors.
func LoadConfig(data []byte) (Config, error) {
	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("parse host config: %w", err)
	}
	if cfg.Style != "" {
		if _, err := thicket.ParseStyle(cfg.Style); err != nil {
			return Config{}, fmt.Errorf("parse host config: %w", err)
		}
	}
	if cfg.FontSize < 0 {
		return Config{}, fmt.Errorf("parse host config: font_size must not be negative, got %v", cfg.FontSize)
	}
	if cfg.WheelScale < 0 {
		return Config{}, fmt.Errorf("parse host config: wheel_scale must not be negative, got %v", cfg.WheelScale)
	}
	return cfg, nil
}

// LoadConfigFile reads and parses a YAML host configuration file.
func LoadConfigFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read host config: %w", err)
	}
	return LoadConfig(data)
}

// Apply sets the GUI-level options: style and debug mode.
func (c Config) Apply(g *thicket.GUI) {
	if c.Style != "" {
		if s, err := thicket.ParseStyle(c.Style); err == nil {
			g.SetStyle(s)
		}
	}
	if c.Debug {
		g.SetDebugMode(true)
	}
}

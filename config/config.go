package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"glbviewer/common"
)

// DefaultPath is looked up in the working directory. The file is optional.
const DefaultPath = "viewer.yaml"

var ErrInvalid = errors.New("invalid config")

type Config struct {
	Model      string         `yaml:"model"`
	Window     WindowConfig   `yaml:"window"`
	Camera     CameraConfig   `yaml:"camera"`
	Material   MaterialConfig `yaml:"material"`
	ClearColor [4]float32     `yaml:"clear_color"`
	Log        LogConfig      `yaml:"log"`
}

type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

type CameraConfig struct {
	Distance    float32 `yaml:"distance"`
	MinDistance float32 `yaml:"min_distance"`
	MaxDistance float32 `yaml:"max_distance"`
	Sensitivity float32 `yaml:"sensitivity"`
	Fov         float32 `yaml:"fov"`
	Near        float32 `yaml:"near"`
	Far         float32 `yaml:"far"`
	// FollowResize recomputes the projection aspect from the framebuffer.
	// Off keeps the aspect of the initial window.
	FollowResize bool `yaml:"follow_resize"`
}

type MaterialConfig struct {
	BaseColor    [3]float32 `yaml:"base_color"`
	Roughness    float32    `yaml:"roughness"`
	Transmission float32    `yaml:"transmission"`
	// PerPrimitive shades with the material read from the asset instead
	// of the fixed azure glaze.
	PerPrimitive bool `yaml:"per_primitive"`
}

type LogConfig struct {
	Level      string `yaml:"level"`
	File       string `yaml:"file"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
	Compress   bool   `yaml:"compress"`
}

func Default() *Config {
	return &Config{
		Model: "model.glb",
		Window: WindowConfig{
			Width:  800,
			Height: 600,
			Title:  "GLB Viewer - Mouse Rotate",
		},
		Camera: CameraConfig{
			Distance:    5,
			MinDistance: 1,
			MaxDistance: 50,
			Sensitivity: 0.5,
			Fov:         45,
			Near:        0.1,
			Far:         3000,
		},
		Material: MaterialConfig{
			BaseColor:    [3]float32{0.3, 0.72, 0.65},
			Roughness:    0.15,
			Transmission: 0.8,
		},
		ClearColor: [4]float32{0.1, 0.1, 0.12, 1},
		Log: LogConfig{
			Level:      "info",
			MaxSizeMB:  10,
			MaxBackups: 3,
			MaxAgeDays: 7,
		},
	}
}

// Load reads path over the defaults. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err = yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err = cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks ranges and snaps the initial distance into the allowed range.
func (cfg *Config) Validate() error {
	if cfg.Model == "" {
		return fmt.Errorf("%w: model path is empty", ErrInvalid)
	}
	if cfg.Window.Width <= 0 || cfg.Window.Height <= 0 {
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, cfg.Window.Width, cfg.Window.Height)
	}
	cam := &cfg.Camera
	if cam.MinDistance <= 0 || cam.MinDistance > cam.MaxDistance {
		return fmt.Errorf("%w: distance range [%v, %v]", ErrInvalid, cam.MinDistance, cam.MaxDistance)
	}
	if cam.Fov <= 0 || cam.Fov >= 180 {
		return fmt.Errorf("%w: fov %v", ErrInvalid, cam.Fov)
	}
	if cam.Near <= 0 || cam.Near >= cam.Far {
		return fmt.Errorf("%w: clip planes near=%v far=%v", ErrInvalid, cam.Near, cam.Far)
	}
	cam.Distance = common.Clamp(cam.Distance, cam.MinDistance, cam.MaxDistance)

	m := cfg.Material
	if !common.InRange(m.Roughness, 0, 1) {
		return fmt.Errorf("%w: roughness %v", ErrInvalid, m.Roughness)
	}
	if !common.InRange(m.Transmission, 0, 1) {
		return fmt.Errorf("%w: transmission %v", ErrInvalid, m.Transmission)
	}
	switch cfg.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: log level %q", ErrInvalid, cfg.Log.Level)
	}
	return nil
}

// Aspect is the projection aspect of the initial window.
func (cfg *Config) Aspect() float32 {
	return float32(cfg.Window.Width) / float32(cfg.Window.Height)
}

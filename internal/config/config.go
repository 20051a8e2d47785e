package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// DemoConfig configures the raycast demo window and scene.
type DemoConfig struct {
	Width      int32   `env:"RAYPICK_WIDTH" envDefault:"1280"`
	Height     int32   `env:"RAYPICK_HEIGHT" envDefault:"720"`
	Title      string  `env:"RAYPICK_TITLE" envDefault:"Camera Extensions Demo"`
	TargetFPS  int32   `env:"RAYPICK_TARGET_FPS" envDefault:"120"`
	CameraFOV  float32 `env:"RAYPICK_CAMERA_FOV" envDefault:"45"`
	CameraFar  float32 `env:"RAYPICK_CAMERA_FAR" envDefault:"1000"`
	Targets    int     `env:"RAYPICK_TARGETS" envDefault:"12"`
	Seed       int64   `env:"RAYPICK_SEED" envDefault:"1"`
	HighDPI    bool    `env:"RAYPICK_HIGHDPI" envDefault:"true"`
	ShowStatus bool    `env:"RAYPICK_SHOW_STATUS" envDefault:"true"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// LoadDemo parses DemoConfig from the environment and validates it.
func LoadDemo() (DemoConfig, error) {
	var cfg DemoConfig
	if err := ParseEnv(&cfg); err != nil {
		return DemoConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return DemoConfig{}, err
	}
	return cfg, nil
}

func (c DemoConfig) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("window size %dx%d must be positive", c.Width, c.Height)
	case c.CameraFOV <= 0 || c.CameraFOV >= 180:
		return fmt.Errorf("camera fov %.1f out of range (0, 180)", c.CameraFOV)
	case c.CameraFar <= 1:
		return fmt.Errorf("camera far plane %.1f must exceed 1", c.CameraFar)
	case c.Targets < 0:
		return fmt.Errorf("target count %d must not be negative", c.Targets)
	}
	return nil
}

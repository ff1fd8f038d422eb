// Package config loads the engine settings from a TOML file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
	"github.com/spaghettifunk/anima-ffp/engine/core"
)

var ErrInvalidConfig = errors.New("invalid configuration")

type Config struct {
	Application Application `toml:"application"`
	Renderer    Renderer    `toml:"renderer"`
	Assets      Assets      `toml:"assets"`
}

type Application struct {
	// The application name used in windowing.
	Name string `toml:"name"`
	// Window starting position, if applicable.
	StartPosX uint32 `toml:"start_pos_x"`
	StartPosY uint32 `toml:"start_pos_y"`
	// Window starting size.
	StartWidth  uint32 `toml:"start_width"`
	StartHeight uint32 `toml:"start_height"`
	// One of debug, info, warn, error or fatal.
	LogLevel string `toml:"log_level"`
}

type Renderer struct {
	// Keep vertex and index data in host memory even when the driver
	// supports buffer objects.
	ForceSoftwareBuffers bool `toml:"force_software_buffers"`
	// Clamp the driver limits; zero keeps the driver value.
	MaxLights       int `toml:"max_lights"`
	MaxTextureUnits int `toml:"max_texture_units"`
	// When false the depth buffer is never cleared and the renderer
	// alternates depth ranges instead.
	ClearEveryFrame  bool       `toml:"clear_every_frame"`
	BackgroundColour [4]float32 `toml:"background_colour"`
	VSync            bool       `toml:"vsync"`
}

type Assets struct {
	TextureDir string `toml:"texture_dir"`
	// Re-upload textures when their file changes.
	Watch bool `toml:"watch"`
}

func Default() *Config {
	return &Config{
		Application: Application{
			Name:        "Anima FFP",
			StartPosX:   100,
			StartPosY:   100,
			StartWidth:  1280,
			StartHeight: 720,
			LogLevel:    "info",
		},
		Renderer: Renderer{
			ClearEveryFrame:  true,
			BackgroundColour: [4]float32{0.1, 0.1, 0.15, 1},
			VSync:            true,
		},
		Assets: Assets{
			TextureDir: "assets/textures",
		},
	}
}

// Load reads the file at path on top of the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		err = fmt.Errorf("failed to read config `%s`: %w", path, err)
		core.LogError(err.Error())
		return nil, err
	}
	return Parse(data)
}

// Parse decodes data on top of the defaults. Unknown keys are an error.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			err = fmt.Errorf("%w: %s", ErrInvalidConfig, strict.String())
		} else {
			err = fmt.Errorf("%w: %s", ErrInvalidConfig, err.Error())
		}
		core.LogError(err.Error())
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		core.LogError(err.Error())
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Application.Name == "" {
		return fmt.Errorf("%w: application name is empty", ErrInvalidConfig)
	}
	if c.Application.StartWidth == 0 || c.Application.StartHeight == 0 {
		return fmt.Errorf("%w: window size %dx%d", ErrInvalidConfig, c.Application.StartWidth, c.Application.StartHeight)
	}
	if _, err := core.ParseLogLevel(c.Application.LogLevel); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, err.Error())
	}
	if c.Renderer.MaxLights < 0 || c.Renderer.MaxTextureUnits < 0 {
		return fmt.Errorf("%w: negative renderer limits (lights %d, texture units %d)",
			ErrInvalidConfig, c.Renderer.MaxLights, c.Renderer.MaxTextureUnits)
	}
	for _, ch := range c.Renderer.BackgroundColour {
		if ch < 0 || ch > 1 {
			return fmt.Errorf("%w: background colour %v outside [0, 1]", ErrInvalidConfig, c.Renderer.BackgroundColour)
		}
	}
	return nil
}

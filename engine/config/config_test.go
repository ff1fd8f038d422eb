package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
		check   func(t *testing.T, cfg *Config)
	}{
		{
			name:  "empty input keeps defaults",
			input: "",
			check: func(t *testing.T, cfg *Config) {
				if *cfg != *Default() {
					t.Errorf("config = %+v, want defaults", cfg)
				}
			},
		},
		{
			name: "overrides",
			input: `
[application]
name = "demo"
start_width = 800
start_height = 600
log_level = "debug"

[renderer]
force_software_buffers = true
max_lights = 4
clear_every_frame = false
background_colour = [0.0, 0.5, 1.0, 1.0]

[assets]
texture_dir = "textures"
watch = true
`,
			check: func(t *testing.T, cfg *Config) {
				if cfg.Application.Name != "demo" || cfg.Application.StartWidth != 800 {
					t.Errorf("application = %+v", cfg.Application)
				}
				if !cfg.Renderer.ForceSoftwareBuffers || cfg.Renderer.MaxLights != 4 || cfg.Renderer.ClearEveryFrame {
					t.Errorf("renderer = %+v", cfg.Renderer)
				}
				if cfg.Renderer.BackgroundColour[1] != 0.5 {
					t.Errorf("background = %v", cfg.Renderer.BackgroundColour)
				}
				if !cfg.Assets.Watch || cfg.Assets.TextureDir != "textures" {
					t.Errorf("assets = %+v", cfg.Assets)
				}
				// untouched keys keep their defaults
				if !cfg.Renderer.VSync || cfg.Application.StartPosX != 100 {
					t.Errorf("defaults lost: %+v", cfg)
				}
			},
		},
		{name: "unknown key", input: "[renderer]\nmax_light = 2\n", wantErr: true},
		{name: "negative limit", input: "[renderer]\nmax_texture_units = -1\n", wantErr: true},
		{name: "zero width", input: "[application]\nstart_width = 0\n", wantErr: true},
		{name: "bad log level", input: "[application]\nlog_level = \"loud\"\n", wantErr: true},
		{name: "colour out of range", input: "[renderer]\nbackground_colour = [2.0, 0.0, 0.0, 1.0]\n", wantErr: true},
		{name: "malformed", input: "[renderer\n", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Parse([]byte(tt.input))
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidConfig) {
					t.Fatalf("Parse error = %v, want ErrInvalidConfig", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse: %v", err)
			}
			tt.check(t, cfg)
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "anima.toml")
	if err := os.WriteFile(path, []byte("[application]\nname = \"from file\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Application.Name != "from file" {
		t.Errorf("name = %q", cfg.Application.Name)
	}
	if _, err := Load(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("Load of a missing file succeeded")
	}
}

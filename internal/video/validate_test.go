package video

import (
	"os"
	"path/filepath"
	"testing"
)

func validFlags(t *testing.T) *Config {
	t.Helper()
	dir := t.TempDir()
	input := filepath.Join(dir, "input.mp4")
	if err := os.WriteFile(input, []byte("video"), 0o644); err != nil {
		t.Fatal(err)
	}
	return &Config{
		InputPath:  input,
		OutputPath: filepath.Join(dir, "out.mp4"),
		TextureDir: dir,
		Width:      1440,
		Height:     1080,
		Scale:      8,
		DarkColor:  "#b38965",
		LightColor: "#efd9b5",
		Bitrate:    100000,
		Codec:      "mpeg4",
		CPUCores:   2,
		Device:     "cpu",
	}
}

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid", func(*Config) {}, false},
		{"device case", func(c *Config) { c.Device = "CUDA" }, false},
		{"no input", func(c *Config) { c.InputPath = "" }, true},
		{"missing input", func(c *Config) { c.InputPath += ".missing" }, true},
		{"missing textures", func(c *Config) { c.TextureDir = filepath.Join(c.TextureDir, "nope") }, true},
		{"textures is a file", func(c *Config) { c.TextureDir = c.InputPath }, true},
		{"no output", func(c *Config) { c.OutputPath = "" }, true},
		{"zero width", func(c *Config) { c.Width = 0 }, true},
		{"zero scale", func(c *Config) { c.Scale = 0 }, true},
		{"zero bitrate", func(c *Config) { c.Bitrate = 0 }, true},
		{"negative texture size", func(c *Config) { c.TextureSize = -1 }, true},
		{"negative max frames", func(c *Config) { c.MaxFrames = -1 }, true},
		{"zero cores", func(c *Config) { c.CPUCores = 0 }, true},
		{"bad color", func(c *Config) { c.DarkColor = "dark" }, true},
		{"bad device", func(c *Config) { c.Device = "tpu" }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validFlags(t)
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

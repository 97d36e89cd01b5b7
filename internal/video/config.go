package video

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/Sloimayyy/bad-apple-chess/internal/board"
	"github.com/Sloimayyy/bad-apple-chess/internal/texture"
)

// Config holds all the configuration parameters for the application,
// parsed from command-line flags.
type Config struct {
	InputPath   string
	OutputPath  string
	TextureDir  string
	Width       int
	Height      int
	Scale       int
	DarkColor   string
	LightColor  string
	Bitrate     int // kbit/s
	Codec       string
	TextureSize int
	CPUCores    int
	Device      string
	FramesDir   string
	MaxFrames   int
	LogFile     string
	Verbose     bool
}

// Validate checks if the provided configuration is valid.
func (c *Config) Validate() error {
	if c.InputPath == "" {
		return fmt.Errorf("--input/-i flag is required")
	}
	if _, err := os.Stat(c.InputPath); os.IsNotExist(err) {
		return fmt.Errorf("input file does not exist: %s", c.InputPath)
	}
	if info, err := os.Stat(c.TextureDir); err != nil || !info.IsDir() {
		return fmt.Errorf("texture directory does not exist: %s", c.TextureDir)
	}
	if c.OutputPath == "" {
		return fmt.Errorf("--output/-o must not be empty")
	}
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("--width and --height must be positive integers")
	}
	if c.Scale <= 0 {
		return fmt.Errorf("--scale must be a positive integer")
	}
	if c.Bitrate <= 0 {
		return fmt.Errorf("--bitrate must be a positive integer")
	}
	if c.TextureSize < 0 {
		return fmt.Errorf("--texture-size must not be negative")
	}
	if c.MaxFrames < 0 {
		return fmt.Errorf("--max-frames must not be negative")
	}
	if c.CPUCores <= 0 {
		return fmt.Errorf("--cpu-cores must be a positive integer")
	}
	if _, err := c.Palette(); err != nil {
		return err
	}
	switch strings.ToLower(c.Device) {
	case "cpu", "cuda", "mps":
	default:
		return fmt.Errorf("unsupported device: %s. Supported devices are cpu, cuda, mps", c.Device)
	}
	return nil
}

func (c *Config) Resolution() board.Resolution {
	return board.Resolution{Width: c.Width, Height: c.Height}
}

// Palette parses the dark and light square colors.
func (c *Config) Palette() (board.Palette, error) {
	dark, err := board.ParseColor(c.DarkColor)
	if err != nil {
		return board.Palette{}, fmt.Errorf("dark color: %w", err)
	}
	light, err := board.ParseColor(c.LightColor)
	if err != nil {
		return board.Palette{}, fmt.Errorf("light color: %w", err)
	}
	return board.Palette{dark, light}, nil
}

// Prepare loads the textures and validates the board configuration.
// Any error here is fatal and happens before output is created.
func Prepare(cfg *Config) (*board.Config, error) {
	palette, err := cfg.Palette()
	if err != nil {
		return nil, err
	}
	textures, err := texture.Build(cfg.TextureDir, cfg.TextureSize)
	if err != nil {
		return nil, fmt.Errorf("failed to build textures: %w", err)
	}
	boardCfg, err := board.NewConfig(cfg.Resolution(), cfg.Scale, palette, textures)
	if err != nil {
		return nil, err
	}
	texW, texH := boardCfg.TextureSize()
	log.Printf("Board %dx%d squares of %dx%d px, %d textures of %dx%d px",
		boardCfg.Dims.Cols, boardCfg.Dims.Rows, boardCfg.Square.Width, boardCfg.Square.Height,
		len(boardCfg.Textures), texW, texH)
	return boardCfg, nil
}

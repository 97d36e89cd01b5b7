package board

import (
	"fmt"
	"strings"
)

// Renderer draws one full frame from a luminance grid.
type Renderer interface {
	Render(grid *LuminanceGrid, frame *Frame) error
}

// NewRenderer returns a renderer for the specified device.
func NewRenderer(device string, cfg *Config, workers int) (Renderer, error) {
	switch strings.ToLower(device) {
	case "cpu":
		return NewCPURenderer(cfg, workers), nil
	case "cuda":
		return nil, fmt.Errorf("CUDA support is not yet implemented")
	case "mps":
		return nil, fmt.Errorf("MPS support is not yet implemented")
	default:
		return nil, fmt.Errorf("unsupported device: %s", device)
	}
}

package board

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// Resolution is the output frame size in pixels.
type Resolution struct {
	Width  int
	Height int
}

func (r Resolution) String() string {
	return fmt.Sprintf("%dx%d", r.Width, r.Height)
}

// Dims is the number of board squares along each axis.
type Dims struct {
	Cols int
	Rows int
}

// NewDims returns the 4:3 board for the given scale factor.
func NewDims(scale int) Dims {
	return Dims{Cols: 4 * scale, Rows: 3 * scale}
}

// SquareSize is the pixel extent of a single board square.
type SquareSize struct {
	Width  int
	Height int
}

// squareSizeFor divides the resolution evenly between the board squares.
func squareSizeFor(res Resolution, dims Dims) SquareSize {
	return SquareSize{
		Width:  res.Width / dims.Cols,
		Height: res.Height / dims.Rows,
	}
}

// RGB is an 8-bit opaque color.
type RGB struct {
	R, G, B uint8
}

// Palette holds the dark (index 0) and light (index 1) square colors.
type Palette [2]RGB

// DefaultPalette is the brown wooden board.
var DefaultPalette = Palette{
	{R: 179, G: 137, B: 101},
	{R: 239, G: 217, B: 181},
}

// ParseColor parses a hex color such as "#b38965".
func ParseColor(hex string) (RGB, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return RGB{}, fmt.Errorf("invalid color %q: %w", hex, err)
	}
	r, g, b := c.RGB255()
	return RGB{R: r, G: g, B: b}, nil
}

// Hex formats the color the way ParseColor accepts it.
func (c RGB) Hex() string {
	return colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}.Hex()
}

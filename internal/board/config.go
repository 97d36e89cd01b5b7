package board

import (
	"errors"
	"fmt"
	"image"
)

var (
	ErrBoardScale  = errors.New("board scale must be a positive integer")
	ErrResolution  = errors.New("resolution must be an exact multiple of the board dimensions")
	ErrSquareSize  = errors.New("resolution is too small for the board dimensions")
	ErrNoTextures  = errors.New("at least one piece texture is required")
	ErrTextureSize = errors.New("piece textures must share the same non-zero size")
)

// Config is the immutable state shared by every pixel of every frame.
// Build it with NewConfig; the zero value is not usable.
type Config struct {
	Resolution Resolution
	Palette    Palette
	Dims       Dims
	Square     SquareSize
	Textures   []*image.NRGBA

	texWidth  int
	texHeight int
}

// NewConfig validates the render parameters and derives the square size.
// Textures must already be ordered from darkest to lightest.
func NewConfig(res Resolution, scale int, palette Palette, textures []*image.NRGBA) (*Config, error) {
	if scale <= 0 {
		return nil, ErrBoardScale
	}
	if res.Width <= 0 || res.Height <= 0 {
		return nil, fmt.Errorf("%w: got %s", ErrSquareSize, res)
	}

	dims := NewDims(scale)
	square := squareSizeFor(res, dims)
	if square.Width <= 0 || square.Height <= 0 {
		return nil, fmt.Errorf("%w: %s over %dx%d squares", ErrSquareSize, res, dims.Cols, dims.Rows)
	}
	// Remainder pixels would map outside the board.
	if square.Width*dims.Cols != res.Width || square.Height*dims.Rows != res.Height {
		return nil, fmt.Errorf("%w: %s over %dx%d squares", ErrResolution, res, dims.Cols, dims.Rows)
	}

	if len(textures) == 0 {
		return nil, ErrNoTextures
	}
	texWidth, texHeight := textures[0].Rect.Dx(), textures[0].Rect.Dy()
	if texWidth <= 0 || texHeight <= 0 {
		return nil, fmt.Errorf("%w: texture 0 is %dx%d", ErrTextureSize, texWidth, texHeight)
	}
	for i, tex := range textures[1:] {
		if tex.Rect.Dx() != texWidth || tex.Rect.Dy() != texHeight {
			return nil, fmt.Errorf("%w: texture %d is %dx%d, texture 0 is %dx%d",
				ErrTextureSize, i+1, tex.Rect.Dx(), tex.Rect.Dy(), texWidth, texHeight)
		}
	}

	return &Config{
		Resolution: res,
		Palette:    palette,
		Dims:       dims,
		Square:     square,
		Textures:   textures,
		texWidth:   texWidth,
		texHeight:  texHeight,
	}, nil
}

// TextureSize returns the shared width and height of the piece textures.
func (c *Config) TextureSize() (int, int) {
	return c.texWidth, c.texHeight
}

package board

// alphaCutoff is the texture alpha above which a texel replaces the square color.
const alphaCutoff = 127

// Parity returns 0 for a dark square and 1 for a light one. The bottom-left
// square is always dark, whatever the number of rows.
func Parity(col, row, rows int) int {
	return (col + rows - 1 - row) % 2
}

// PieceIndex maps a brightness value onto one of n textures.
// 0 selects the first texture and 255 the last.
func PieceIndex(l uint8, n int) int {
	return int(l) * n / 256
}

// texel scales a position inside a square of the given extent onto a
// texture axis of size texSize, nearest-neighbor.
func texel(local, extent, texSize int) int {
	return local * texSize / extent
}

// ShadePixel computes the output pixel at (x, y) for one frame.
// Coordinates outside the resolution are ignored, so callers may launch
// more invocations than there are pixels.
//
// ShadePixel only reads c and grid and only writes the pixel at (x, y),
// so it can run concurrently for distinct coordinates.
func (c *Config) ShadePixel(grid *LuminanceGrid, frame *Frame, x, y int) {
	if x < 0 || x >= c.Resolution.Width || y < 0 || y >= c.Resolution.Height {
		return
	}

	col, row := x/c.Square.Width, y/c.Square.Height

	bg := c.Palette[Parity(col, row, c.Dims.Rows)]
	o := frame.offset(x, y)
	frame.Pix[o+0] = bg.R
	frame.Pix[o+1] = bg.G
	frame.Pix[o+2] = bg.B

	tex := c.Textures[PieceIndex(grid.At(col, row), len(c.Textures))]

	tx := texel(x%c.Square.Width, c.Square.Width, c.texWidth)
	ty := texel(y%c.Square.Height, c.Square.Height, c.texHeight)
	i := tex.PixOffset(tex.Rect.Min.X+tx, tex.Rect.Min.Y+ty)
	if tex.Pix[i+3] > alphaCutoff {
		frame.Pix[o+0] = tex.Pix[i+0]
		frame.Pix[o+1] = tex.Pix[i+1]
		frame.Pix[o+2] = tex.Pix[i+2]
	}
}

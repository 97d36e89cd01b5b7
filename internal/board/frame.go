package board

import (
	"image"
	"image/color"
)

// LuminanceGrid is one downsampled source frame, one brightness byte per
// board square, stored row-major.
type LuminanceGrid struct {
	Cols int
	Rows int
	Pix  []uint8
}

// NewLuminanceGrid returns an all-black grid for the board.
func NewLuminanceGrid(dims Dims) *LuminanceGrid {
	return &LuminanceGrid{
		Cols: dims.Cols,
		Rows: dims.Rows,
		Pix:  make([]uint8, dims.Cols*dims.Rows),
	}
}

func (g *LuminanceGrid) At(col, row int) uint8 {
	return g.Pix[row*g.Cols+col]
}

func (g *LuminanceGrid) Set(col, row int, l uint8) {
	g.Pix[row*g.Cols+col] = l
}

// Fill sets every cell to l.
func (g *LuminanceGrid) Fill(l uint8) {
	for i := range g.Pix {
		g.Pix[i] = l
	}
}

// Frame is an RGB output buffer, three bytes per pixel, row-major.
// It is reused between frames; every render overwrites all pixels.
type Frame struct {
	Width  int
	Height int
	Pix    []uint8
}

func NewFrame(res Resolution) *Frame {
	return &Frame{
		Width:  res.Width,
		Height: res.Height,
		Pix:    make([]uint8, res.Width*res.Height*3),
	}
}

func (f *Frame) offset(x, y int) int {
	return (y*f.Width + x) * 3
}

// RGBAt returns the pixel at (x, y).
func (f *Frame) RGBAt(x, y int) RGB {
	o := f.offset(x, y)
	return RGB{R: f.Pix[o], G: f.Pix[o+1], B: f.Pix[o+2]}
}

// Clone returns a deep copy of the frame.
func (f *Frame) Clone() *Frame {
	pix := make([]uint8, len(f.Pix))
	copy(pix, f.Pix)
	return &Frame{Width: f.Width, Height: f.Height, Pix: pix}
}

// RGBA converts the frame into an opaque image.RGBA for encoding.
func (f *Frame) RGBA() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, f.Width, f.Height))
	f.CopyRGBA(img.Pix)
	return img
}

// CopyRGBA writes the frame into dst as packed RGBA with opaque alpha.
// dst must hold Width*Height*4 bytes.
func (f *Frame) CopyRGBA(dst []uint8) {
	for i, j := 0, 0; i < len(f.Pix); i, j = i+3, j+4 {
		dst[j+0] = f.Pix[i+0]
		dst[j+1] = f.Pix[i+1]
		dst[j+2] = f.Pix[i+2]
		dst[j+3] = 0xff
	}
}

// ColorModel, Bounds and At let a Frame be used wherever an image.Image is.
func (f *Frame) ColorModel() color.Model { return color.RGBAModel }

func (f *Frame) Bounds() image.Rectangle { return image.Rect(0, 0, f.Width, f.Height) }

func (f *Frame) At(x, y int) color.Color {
	if !(image.Point{X: x, Y: y}.In(f.Bounds())) {
		return color.RGBA{}
	}
	c := f.RGBAt(x, y)
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}
}

package video

import (
	"image"
	"io"

	"golang.org/x/image/draw"

	"github.com/Sloimayyy/bad-apple-chess/internal/board"
)

// ImageDownsampler shrinks decoded frames to one pixel per board square.
type ImageDownsampler struct {
	dims   board.Dims
	scaler draw.Interpolator
	small  *image.RGBA
}

// NewImageDownsampler returns a bicubic downsampler for the board.
func NewImageDownsampler(dims board.Dims) *ImageDownsampler {
	return &ImageDownsampler{
		dims:   dims,
		scaler: draw.CatmullRom,
		small:  image.NewRGBA(image.Rect(0, 0, dims.Cols, dims.Rows)),
	}
}

// Downsample resizes src to the board grid and keeps the red channel of
// each cell as its brightness. The returned grid is freshly allocated.
func (d *ImageDownsampler) Downsample(src image.Image) *board.LuminanceGrid {
	d.scaler.Scale(d.small, d.small.Bounds(), src, src.Bounds(), draw.Src, nil)

	grid := board.NewLuminanceGrid(d.dims)
	for row := 0; row < d.dims.Rows; row++ {
		for col := 0; col < d.dims.Cols; col++ {
			grid.Set(col, row, d.small.Pix[d.small.PixOffset(col, row)])
		}
	}
	return grid
}

// ImageSource adapts an in-memory frame sequence to a GridSource.
type ImageSource struct {
	frames      []image.Image
	fps         float64
	downsampler *ImageDownsampler
	next        int
}

func NewImageSource(frames []image.Image, fps float64, dims board.Dims) *ImageSource {
	return &ImageSource{
		frames:      frames,
		fps:         fps,
		downsampler: NewImageDownsampler(dims),
	}
}

func (s *ImageSource) Next() (*board.LuminanceGrid, error) {
	if s.next >= len(s.frames) {
		return nil, io.EOF
	}
	frame := s.frames[s.next]
	s.next++
	return s.downsampler.Downsample(frame), nil
}

func (s *ImageSource) FPS() float64    { return s.fps }
func (s *ImageSource) FrameCount() int { return len(s.frames) }
func (s *ImageSource) Close() error    { return nil }

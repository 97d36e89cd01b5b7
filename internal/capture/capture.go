// Package capture decodes source videos with OpenCV.
package capture

import (
	"fmt"
	"image"
	"io"
	"log"

	"gocv.io/x/gocv"

	"github.com/Sloimayyy/bad-apple-chess/internal/board"
)

// MatDownsampler shrinks decoded OpenCV frames to one pixel per board square.
type MatDownsampler struct {
	dims  board.Dims
	small gocv.Mat
	rgb   gocv.Mat
}

func NewMatDownsampler(dims board.Dims) *MatDownsampler {
	return &MatDownsampler{
		dims:  dims,
		small: gocv.NewMat(),
		rgb:   gocv.NewMat(),
	}
}

// Downsample resizes a BGR frame to the board grid and keeps the red
// channel of each cell as its brightness.
func (d *MatDownsampler) Downsample(frame gocv.Mat) (grid *board.LuminanceGrid, err error) {
	defer func() {
		// gocv can panic on unexpected Mat types.
		if r := recover(); r != nil {
			err = fmt.Errorf("recovered from panic in gocv: %v", r)
		}
	}()

	// Area interpolation averages every source pixel a cell covers.
	gocv.Resize(frame, &d.small, image.Pt(d.dims.Cols, d.dims.Rows), 0, 0, gocv.InterpolationArea)

	channels := d.small.Channels()
	switch channels {
	case 1:
		d.small.CopyTo(&d.rgb)
	case 3:
		gocv.CvtColor(d.small, &d.rgb, gocv.ColorBGRToRGB)
	case 4:
		gocv.CvtColor(d.small, &d.rgb, gocv.ColorBGRAToRGBA)
	default:
		return nil, fmt.Errorf("unsupported frame with %d channels", channels)
	}

	data := d.rgb.ToBytes()
	if len(data) != d.dims.Cols*d.dims.Rows*channels {
		return nil, fmt.Errorf("resized frame has %d bytes, want %d", len(data), d.dims.Cols*d.dims.Rows*channels)
	}

	grid = board.NewLuminanceGrid(d.dims)
	for i := range grid.Pix {
		grid.Pix[i] = data[i*channels]
	}
	return grid, nil
}

func (d *MatDownsampler) Close() error {
	d.small.Close()
	return d.rgb.Close()
}

// Source decodes a video file with OpenCV, one frame per Next call.
type Source struct {
	capture     *gocv.VideoCapture
	frame       gocv.Mat
	downsampler *MatDownsampler
	fps         float64
	frameCount  int
	size        image.Point
}

// Open opens path and prepares frames for a board of dims.
func Open(path string, dims board.Dims) (*Source, error) {
	capture, err := gocv.VideoCaptureFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not open video: %w", err)
	}
	if !capture.IsOpened() {
		capture.Close()
		return nil, fmt.Errorf("could not open video: %s", path)
	}

	s := &Source{
		capture:     capture,
		frame:       gocv.NewMat(),
		downsampler: NewMatDownsampler(dims),
		fps:         capture.Get(gocv.VideoCaptureFPS),
		frameCount:  int(capture.Get(gocv.VideoCaptureFrameCount)),
		size: image.Pt(
			int(capture.Get(gocv.VideoCaptureFrameWidth)),
			int(capture.Get(gocv.VideoCaptureFrameHeight)),
		),
	}
	if s.fps <= 0 {
		s.Close()
		return nil, fmt.Errorf("video %s reports no frame rate", path)
	}
	if s.frameCount < 0 {
		s.frameCount = 0
	}
	log.Printf("Opened %s: %dx%d, %.3f fps, %d frames", path, s.size.X, s.size.Y, s.fps, s.frameCount)
	return s, nil
}

// Next decodes the next frame. The returned grid is not shared with later calls.
func (s *Source) Next() (*board.LuminanceGrid, error) {
	if ok := s.capture.Read(&s.frame); !ok || s.frame.Empty() {
		return nil, io.EOF
	}
	return s.downsampler.Downsample(s.frame)
}

func (s *Source) FPS() float64 { return s.fps }

func (s *Source) FrameCount() int { return s.frameCount }

// Size returns the source frame size.
func (s *Source) Size() image.Point { return s.size }

func (s *Source) Close() error {
	s.frame.Close()
	s.downsampler.Close()
	return s.capture.Close()
}

package video

import (
	"errors"
	"fmt"
	"image/png"
	"log"
	"os"
	"path/filepath"

	vidio "github.com/AlexEidt/Vidio"

	"github.com/Sloimayyy/bad-apple-chess/internal/board"
)

// VidioSink encodes frames to a video file through ffmpeg.
type VidioSink struct {
	writer *vidio.VideoWriter
	rgba   []byte
}

// NewVidioSink creates path encoded with codec at fps. bitrate is in bits
// per second.
func NewVidioSink(path string, res board.Resolution, fps float64, bitrate int, codec string) (*VidioSink, error) {
	writer, err := vidio.NewVideoWriter(path, res.Width, res.Height, &vidio.Options{
		FPS:     fps,
		Bitrate: bitrate,
		Codec:   codec,
	})
	if err != nil {
		return nil, fmt.Errorf("could not create video writer: %w", err)
	}
	log.Printf("Writing %s: %s, %.3f fps, %d bit/s, codec %s", path, res, fps, bitrate, codec)
	return &VidioSink{
		writer: writer,
		rgba:   make([]byte, res.Width*res.Height*4),
	}, nil
}

func (s *VidioSink) Write(frame *board.Frame) error {
	frame.CopyRGBA(s.rgba)
	return s.writer.Write(s.rgba)
}

func (s *VidioSink) Close() error {
	s.writer.Close()
	return nil
}

// PNGSink saves every frame as a numbered PNG file in a directory.
type PNGSink struct {
	dir  string
	next int
}

func NewPNGSink(dir string) (*PNGSink, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("error creating directory %s: %w", dir, err)
	}
	return &PNGSink{dir: dir}, nil
}

func (s *PNGSink) Write(frame *board.Frame) error {
	filePath := filepath.Join(s.dir, fmt.Sprintf("frame_%06d.png", s.next))
	s.next++

	outFile, err := os.Create(filePath)
	if err != nil {
		return fmt.Errorf("error creating file %s: %w", filePath, err)
	}
	defer outFile.Close()

	if err := png.Encode(outFile, frame.RGBA()); err != nil {
		return fmt.Errorf("error encoding png %s: %w", filePath, err)
	}
	return nil
}

func (s *PNGSink) Close() error { return nil }

// MultiSink writes each frame to all of its sinks in order.
type MultiSink []FrameSink

func (m MultiSink) Write(frame *board.Frame) error {
	for _, s := range m {
		if err := s.Write(frame); err != nil {
			return err
		}
	}
	return nil
}

// Close closes every sink and returns the joined errors.
func (m MultiSink) Close() error {
	var errs []error
	for _, s := range m {
		errs = append(errs, s.Close())
	}
	return errors.Join(errs...)
}

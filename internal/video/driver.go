// Package video runs the frame loop: source frames in, luminance grids to
// the board renderer, rendered frames out to the encoder.
package video

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"sync/atomic"
	"time"

	"github.com/Sloimayyy/bad-apple-chess/internal/board"
)

// GridSource yields one luminance grid per source frame, in order.
// Next returns io.EOF once the source is exhausted.
type GridSource interface {
	Next() (*board.LuminanceGrid, error)
	FPS() float64
	// FrameCount is the expected number of frames, or 0 when unknown.
	FrameCount() int
	Close() error
}

// FrameSink consumes rendered frames in order. A sink must not retain the
// frame after Write returns; the buffer is reused for the next frame.
type FrameSink interface {
	Write(frame *board.Frame) error
	Close() error
}

// Stats summarizes a finished render.
type Stats struct {
	Frames   int           // frames written to the sink
	Rendered int           // frames rendered from source input
	Reused   int           // ticks that repeated the previous frame
	Duration time.Duration // wall time of the render loop
}

// Driver renders source frames one after the other into a single reused
// frame buffer.
type Driver struct {
	source    GridSource
	renderer  board.Renderer
	sink      FrameSink
	frame     *board.Frame
	maxFrames int

	written int64
}

// NewDriver creates a driver. When maxFrames is positive at most that many
// frames are written.
func NewDriver(source GridSource, renderer board.Renderer, sink FrameSink, res board.Resolution, maxFrames int) *Driver {
	return &Driver{
		source:    source,
		renderer:  renderer,
		sink:      sink,
		frame:     board.NewFrame(res),
		maxFrames: maxFrames,
	}
}

// Total returns the number of frames the driver will write, or 0 when the
// source length is unknown and the driver runs until the source ends.
func (d *Driver) Total() int {
	total := d.source.FrameCount()
	if d.maxFrames > 0 && (total <= 0 || d.maxFrames < total) {
		total = d.maxFrames
	}
	return total
}

// Written returns the number of frames handed to the sink so far.
// It is safe to call while Run is in progress.
func (d *Driver) Written() int64 {
	return atomic.LoadInt64(&d.written)
}

// Run renders every tick of the output. If the source runs out before the
// expected frame count, the last frame is written again for the remaining
// ticks. ctx is checked between frames.
func (d *Driver) Run(ctx context.Context) (Stats, error) {
	var stats Stats
	start := time.Now()
	total := d.Total()
	exhausted := false

	for tick := 0; total <= 0 || tick < total; tick++ {
		if err := ctx.Err(); err != nil {
			stats.Duration = time.Since(start)
			return stats, err
		}

		if !exhausted {
			grid, err := d.source.Next()
			switch {
			case errors.Is(err, io.EOF):
				if total <= 0 {
					stats.Duration = time.Since(start)
					return stats, nil
				}
				exhausted = true
				log.Printf("Source exhausted at frame %d of %d, repeating the last frame", tick, total)
			case err != nil:
				stats.Duration = time.Since(start)
				return stats, fmt.Errorf("failed to read frame %d: %w", tick, err)
			default:
				if err := d.renderer.Render(grid, d.frame); err != nil {
					stats.Duration = time.Since(start)
					return stats, fmt.Errorf("failed to render frame %d: %w", tick, err)
				}
				stats.Rendered++
			}
		}
		if exhausted {
			stats.Reused++
		}

		if err := d.sink.Write(d.frame); err != nil {
			stats.Duration = time.Since(start)
			return stats, fmt.Errorf("failed to write frame %d: %w", tick, err)
		}
		stats.Frames++
		atomic.AddInt64(&d.written, 1)
	}

	stats.Duration = time.Since(start)
	return stats, nil
}

package board

import (
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"
)

// CPURenderer shades frames on a pool of goroutines, one block of
// invocations per job.
type CPURenderer struct {
	// launched counts invocations across all frames, including the ones
	// that fall outside the frame. Kept first for 64-bit atomic alignment.
	launched int64

	cfg     *Config
	workers int
	blocks  []block
}

// NewCPURenderer creates a renderer using the given number of workers.
// If workers is 0 or negative, GOMAXPROCS is used.
func NewCPURenderer(cfg *Config, workers int) *CPURenderer {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	return &CPURenderer{
		cfg:     cfg,
		workers: workers,
		blocks:  launchGrid(cfg.Resolution),
	}
}

// Render overwrites every pixel of frame from grid. It returns once the
// whole frame is written.
func (r *CPURenderer) Render(grid *LuminanceGrid, frame *Frame) error {
	if grid.Cols != r.cfg.Dims.Cols || grid.Rows != r.cfg.Dims.Rows || len(grid.Pix) != grid.Cols*grid.Rows {
		return fmt.Errorf("luminance grid is %dx%d, board is %dx%d",
			grid.Cols, grid.Rows, r.cfg.Dims.Cols, r.cfg.Dims.Rows)
	}
	if frame.Width != r.cfg.Resolution.Width || frame.Height != r.cfg.Resolution.Height || len(frame.Pix) != frame.Width*frame.Height*3 {
		return fmt.Errorf("frame is %dx%d, resolution is %s", frame.Width, frame.Height, r.cfg.Resolution)
	}

	jobs := make(chan block, len(r.blocks))
	for _, b := range r.blocks {
		jobs <- b
	}
	close(jobs)

	var wg sync.WaitGroup
	for i := 0; i < r.workers; i++ {
		wg.Add(1)
		go worker(&wg, jobs, r.cfg, grid, frame, &r.launched)
	}
	wg.Wait()
	return nil
}

// Workers returns the size of the goroutine pool.
func (r *CPURenderer) Workers() int {
	return r.workers
}

// Launched returns the number of pixel invocations dispatched so far.
func (r *CPURenderer) Launched() int64 {
	return atomic.LoadInt64(&r.launched)
}

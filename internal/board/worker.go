package board

import (
	"sync"
	"sync/atomic"
)

// blockSize is the edge length, in pixels, of one dispatched block.
const blockSize = 16

// block is the top-left pixel of a blockSize x blockSize tile of invocations.
type block struct {
	X, Y int
}

// launchGrid returns every block needed to cover res. The last row and
// column of blocks may extend past the frame edge.
func launchGrid(res Resolution) []block {
	cols := (res.Width + blockSize - 1) / blockSize
	rows := (res.Height + blockSize - 1) / blockSize
	blocks := make([]block, 0, cols*rows)
	for by := 0; by < rows; by++ {
		for bx := 0; bx < cols; bx++ {
			blocks = append(blocks, block{X: bx * blockSize, Y: by * blockSize})
		}
	}
	return blocks
}

// worker is a goroutine that receives blocks and shades every invocation in
// them. Invocations beyond the frame are left to ShadePixel's bounds check.
func worker(wg *sync.WaitGroup, jobs <-chan block, cfg *Config, grid *LuminanceGrid, frame *Frame, launched *int64) {
	defer wg.Done()
	for b := range jobs {
		for y := b.Y; y < b.Y+blockSize; y++ {
			for x := b.X; x < b.X+blockSize; x++ {
				cfg.ShadePixel(grid, frame, x, y)
			}
		}
		atomic.AddInt64(launched, blockSize*blockSize)
	}
}

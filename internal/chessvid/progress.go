package chessvid

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/lipgloss"
)

// progress draws a spinner line with the frame count until stopped.
type progress struct {
	out   io.Writer
	total int
	count func() int64
	done  chan struct{}
	wg    sync.WaitGroup
}

func startProgress(out io.Writer, total int, count func() int64) *progress {
	p := &progress{
		out:   out,
		total: total,
		count: count,
		done:  make(chan struct{}),
	}
	p.wg.Add(1)
	go p.run()
	return p
}

func (p *progress) run() {
	defer p.wg.Done()
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()
	startTime := time.Now()

	for {
		select {
		case <-p.done:
			fmt.Fprintf(p.out, "\r%s Render complete. %s frames written.\n", "✓", p.counter())
			return
		case <-ticker.C:
			s, _ = s.Update(spinner.TickMsg{})
			processed := p.count()
			elapsed := time.Since(startTime).Seconds()
			var fps float64
			if elapsed > 0 {
				fps = float64(processed) / elapsed
			}
			fmt.Fprintf(p.out, "\r%s Rendering frames %s... (%.2f frames/s)", s.View(), p.counter(), fps)
		}
	}
}

func (p *progress) counter() string {
	if p.total <= 0 {
		return fmt.Sprintf("%d", p.count())
	}
	return fmt.Sprintf("%d/%d", p.count(), p.total)
}

// stop ends the spinner and waits for its final line.
func (p *progress) stop() {
	close(p.done)
	p.wg.Wait()
}

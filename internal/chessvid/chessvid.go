// Package chessvid turns a source video into a chessboard rendition of it.
package chessvid

import (
	"context"
	"fmt"
	"log"
	"os"
	"runtime"

	"github.com/charmbracelet/lipgloss"

	"github.com/Sloimayyy/bad-apple-chess/internal/board"
	"github.com/Sloimayyy/bad-apple-chess/internal/capture"
	"github.com/Sloimayyy/bad-apple-chess/internal/video"
)

// Run is the main application logic.
func Run(ctx context.Context, cfg *video.Config) error {
	log.Printf("Starting render with %d CPU cores on device '%s'.", cfg.CPUCores, cfg.Device)
	runtime.GOMAXPROCS(cfg.CPUCores)

	boardCfg, err := video.Prepare(cfg)
	if err != nil {
		return err
	}
	renderer, err := board.NewRenderer(cfg.Device, boardCfg, cfg.CPUCores)
	if err != nil {
		return err
	}

	source, err := capture.Open(cfg.InputPath, boardCfg.Dims)
	if err != nil {
		return err
	}
	defer source.Close()

	sink, err := openSinks(cfg, source.FPS())
	if err != nil {
		return err
	}

	driver := video.NewDriver(source, renderer, sink, boardCfg.Resolution, cfg.MaxFrames)
	fmt.Printf("Rendering %s at %.3f fps into %s.\n", boardCfg.Resolution, source.FPS(), cfg.OutputPath)

	p := startProgress(os.Stdout, driver.Total(), driver.Written)
	stats, err := driver.Run(ctx)
	p.stop()

	if closeErr := sink.Close(); closeErr != nil && err == nil {
		err = fmt.Errorf("failed to finalize output: %w", closeErr)
	}
	if err != nil {
		return err
	}

	log.Printf("Rendered %d frames (%d repeated) in %s.", stats.Frames, stats.Reused, stats.Duration)
	var fps float64
	if stats.Duration > 0 {
		fps = float64(stats.Frames) / stats.Duration.Seconds()
	}
	log.Printf("Frames per second: %.2f", fps)

	durationStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("202"))
	speedStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("75"))
	fmt.Printf("Total processing time: %s\n", durationStyle.Render(fmt.Sprintf("%.4fs", stats.Duration.Seconds())))
	fmt.Printf("Frames per second: %s\n", speedStyle.Render(fmt.Sprintf("%.2f", fps)))
	if stats.Reused > 0 {
		warnStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
		fmt.Println(warnStyle.Render(fmt.Sprintf("Source ended early: last frame repeated %d times.", stats.Reused)))
	}
	log.Println("Processing complete.")
	return nil
}

func openSinks(cfg *video.Config, fps float64) (video.FrameSink, error) {
	encoder, err := video.NewVidioSink(cfg.OutputPath, cfg.Resolution(), fps, cfg.Bitrate*1000, cfg.Codec)
	if err != nil {
		return nil, err
	}
	if cfg.FramesDir == "" {
		return encoder, nil
	}
	frames, err := video.NewPNGSink(cfg.FramesDir)
	if err != nil {
		encoder.Close()
		return nil, err
	}
	return video.MultiSink{encoder, frames}, nil
}

package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"

	"github.com/spf13/pflag"

	"github.com/Sloimayyy/bad-apple-chess/internal/board"
	"github.com/Sloimayyy/bad-apple-chess/internal/chessvid"
	"github.com/Sloimayyy/bad-apple-chess/internal/logger"
	"github.com/Sloimayyy/bad-apple-chess/internal/video"
)

func main() {
	cfg := parseFlags()

	logFile, err := logger.Init(cfg.LogFile, cfg.Verbose)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logFile.Close()

	if err = cfg.Validate(); err != nil {
		log.Printf("Configuration error: %v", err)
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		logFile.Close()
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err = chessvid.Run(ctx, cfg); err != nil {
		log.Printf("Application error: %v", err)
		fmt.Fprintf(os.Stderr, "Application error: %v\n", err)
		stop()
		logFile.Close()
		os.Exit(1)
	}
}

// parseFlags defines and parses command-line flags, returning them
// in a Config struct.
func parseFlags() *video.Config {
	cfg := &video.Config{}

	pflag.StringVarP(&cfg.InputPath, "input", "i", "", "Path to the source video.")
	pflag.StringVarP(&cfg.OutputPath, "output", "o", "output.mp4", "Path of the rendered video.")
	pflag.StringVarP(&cfg.TextureDir, "textures", "t", "textures", "Directory of chess piece images (PNG or BMP). Names starting with 'b' are black pieces.")
	pflag.IntVar(&cfg.Width, "width", 1440, "Output width in pixels.")
	pflag.IntVar(&cfg.Height, "height", 1080, "Output height in pixels.")
	pflag.IntVarP(&cfg.Scale, "scale", "s", 8, "Board scale: the board has 4*scale columns and 3*scale rows.")
	pflag.StringVar(&cfg.DarkColor, "dark", board.DefaultPalette[0].Hex(), "Dark square color.")
	pflag.StringVar(&cfg.LightColor, "light", board.DefaultPalette[1].Hex(), "Light square color.")
	pflag.IntVarP(&cfg.Bitrate, "bitrate", "b", 100000, "Output bitrate in kbit/s.")
	pflag.StringVar(&cfg.Codec, "codec", "mpeg4", "Output codec, as understood by ffmpeg.")
	pflag.IntVar(&cfg.TextureSize, "texture-size", 0, "Resize every piece image to this square size. 0 keeps the original size.")
	pflag.IntVarP(&cfg.CPUCores, "cpu-cores", "c", runtime.NumCPU(), "Number of CPU cores to use for rendering.")
	pflag.StringVarP(&cfg.Device, "device", "d", "cpu", "Device to use for rendering (cpu, cuda, mps).")
	pflag.StringVar(&cfg.FramesDir, "frames-dir", "", "Also save every rendered frame as a PNG in this directory.")
	pflag.IntVar(&cfg.MaxFrames, "max-frames", 0, "Stop after this many frames. 0 renders the whole source.")
	pflag.StringVar(&cfg.LogFile, "log-file", "chessvid.log", "Path of the log file.")
	pflag.BoolVarP(&cfg.Verbose, "verbose", "v", false, "Mirror the log to stderr.")

	pflag.Parse()
	return cfg
}

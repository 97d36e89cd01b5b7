package board

import (
	"bytes"
	"image/color"
	"testing"
)

func TestCPURenderer_ParityOnly(t *testing.T) {
	res := Resolution{Width: 32, Height: 24}
	transparent := solidTexture(8, 8, color.NRGBA{R: 200, G: 10, B: 10, A: 0})
	opaque := solidTexture(8, 8, color.NRGBA{R: 200, G: 10, B: 10, A: 255})
	cfg := mustConfig(t, res, 1, blackWhite, transparent, opaque)

	grid := NewLuminanceGrid(cfg.Dims)
	frame := NewFrame(res)
	if err := NewCPURenderer(cfg, 4).Render(grid, frame); err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	for y := 0; y < res.Height; y++ {
		for x := 0; x < res.Width; x++ {
			want := blackWhite[Parity(x/8, y/8, 3)]
			if got := frame.RGBAt(x, y); got != want {
				t.Fatalf("pixel (%d,%d) = %v, want %v", x, y, got, want)
			}
		}
	}
	// Bottom-left square is dark, the one to its right is light.
	if got := frame.RGBAt(0, 23); got != blackWhite[0] {
		t.Errorf("bottom-left = %v, want dark", got)
	}
	if got := frame.RGBAt(8, 23); got != blackWhite[1] {
		t.Errorf("bottom second = %v, want light", got)
	}
}

func TestCPURenderer_FullCoverage(t *testing.T) {
	res := Resolution{Width: 32, Height: 24}
	first := solidTexture(8, 8, color.NRGBA{R: 1, G: 1, B: 1, A: 255})
	cfg := mustConfig(t, res, 1, blackWhite, first, gradientTexture(8, 8))

	grid := NewLuminanceGrid(cfg.Dims)
	grid.Fill(255)
	frame := NewFrame(res)
	if err := NewCPURenderer(cfg, 3).Render(grid, frame); err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	for y := 0; y < res.Height; y++ {
		for x := 0; x < res.Width; x++ {
			want := RGB{R: uint8((x % 8) * 10), G: uint8((y % 8) * 10), B: 200}
			if got := frame.RGBAt(x, y); got != want {
				t.Fatalf("pixel (%d,%d) = %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestCPURenderer_Idempotent(t *testing.T) {
	res := Resolution{Width: 64, Height: 48}
	cfg := mustConfig(t, res, 2, DefaultPalette,
		solidTexture(8, 8, color.NRGBA{R: 30, A: 255}),
		gradientTexture(8, 8),
		solidTexture(8, 8, color.NRGBA{B: 90, A: 100}),
	)
	grid := NewLuminanceGrid(cfg.Dims)
	for i := range grid.Pix {
		grid.Pix[i] = uint8(i * 37)
	}
	r := NewCPURenderer(cfg, 0)

	first := NewFrame(res)
	if err := r.Render(grid, first); err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	// A dirty buffer must end up identical: every pixel is overwritten.
	second := NewFrame(res)
	for i := range second.Pix {
		second.Pix[i] = 0xee
	}
	if err := r.Render(grid, second); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if !bytes.Equal(first.Pix, second.Pix) {
		t.Error("rendering the same input twice produced different frames")
	}
}

func TestCPURenderer_OverProvisionedLaunch(t *testing.T) {
	// 40x24 is not a multiple of the 16 pixel block: the launch grid is
	// 3x2 blocks, 1536 invocations for 960 pixels.
	res := Resolution{Width: 40, Height: 24}
	cfg := mustConfig(t, res, 1, blackWhite, solidTexture(10, 8, color.NRGBA{}))
	r := NewCPURenderer(cfg, 2)

	frame := NewFrame(res)
	if err := r.Render(NewLuminanceGrid(cfg.Dims), frame); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if got := r.Launched(); got != 3*2*blockSize*blockSize {
		t.Errorf("Launched() = %d, want %d", got, 3*2*blockSize*blockSize)
	}
	if got := frame.RGBAt(39, 23); got != blackWhite[Parity(3, 2, 3)] {
		t.Errorf("last pixel = %v, want parity color", got)
	}
}

func TestCPURenderer_RejectsMismatchedBuffers(t *testing.T) {
	res := Resolution{Width: 32, Height: 24}
	cfg := mustConfig(t, res, 1, blackWhite, solidTexture(8, 8, color.NRGBA{}))
	r := NewCPURenderer(cfg, 1)

	if err := r.Render(NewLuminanceGrid(Dims{Cols: 8, Rows: 6}), NewFrame(res)); err == nil {
		t.Error("Render() with wrong grid should fail")
	}
	if err := r.Render(NewLuminanceGrid(cfg.Dims), NewFrame(Resolution{16, 12})); err == nil {
		t.Error("Render() with wrong frame should fail")
	}
}

func TestNewRenderer(t *testing.T) {
	cfg := mustConfig(t, Resolution{32, 24}, 1, blackWhite, solidTexture(8, 8, color.NRGBA{}))

	r, err := NewRenderer("CPU", cfg, 5)
	if err != nil {
		t.Fatalf("NewRenderer(CPU) error = %v", err)
	}
	if cpu, ok := r.(*CPURenderer); !ok || cpu.Workers() != 5 {
		t.Errorf("NewRenderer(CPU) = %T, want *CPURenderer with 5 workers", r)
	}

	for _, device := range []string{"cuda", "mps", "tpu"} {
		if _, err := NewRenderer(device, cfg, 1); err == nil {
			t.Errorf("NewRenderer(%q) should fail", device)
		}
	}
}

func BenchmarkCPURenderer_1440x1080(b *testing.B) {
	res := Resolution{Width: 1440, Height: 1080}
	cfg := mustConfig(b, res, 8, DefaultPalette,
		solidTexture(64, 64, color.NRGBA{A: 255}),
		gradientTexture(64, 64),
	)
	grid := NewLuminanceGrid(cfg.Dims)
	for i := range grid.Pix {
		grid.Pix[i] = uint8(i)
	}
	frame := NewFrame(res)
	r := NewCPURenderer(cfg, 0)

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if err := r.Render(grid, frame); err != nil {
			b.Fatal(err)
		}
	}
}

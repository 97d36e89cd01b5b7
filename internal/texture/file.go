package texture

import (
	"fmt"
	"image"
	"image/png"
	"log"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/draw"
)

// LoadDir decodes every PNG and BMP file in dir, in file name order.
// Piece names are the file names without extension.
func LoadDir(dir string) ([]Piece, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("could not read texture directory: %w", err)
	}

	var pieces []Piece
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if ext != ".png" && ext != ".bmp" {
			log.Printf("Skipping non-texture file %s", entry.Name())
			continue
		}

		img, err := loadImage(filepath.Join(dir, entry.Name()), ext)
		if err != nil {
			return nil, fmt.Errorf("failed to load texture %s: %w", entry.Name(), err)
		}
		pieces = append(pieces, Piece{
			Name:  strings.TrimSuffix(entry.Name(), filepath.Ext(entry.Name())),
			Image: img,
		})
	}
	return pieces, nil
}

// loadImage opens and decodes an image from the given file path.
// It converts the image to NRGBA so color channels keep straight alpha.
func loadImage(path string, ext string) (*image.NRGBA, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open file: %w", err)
	}
	defer file.Close()

	var decodedImg image.Image
	switch ext {
	case ".png":
		decodedImg, err = png.Decode(file)
	case ".bmp":
		decodedImg, err = bmp.Decode(file)
	default:
		return nil, fmt.Errorf("unsupported image type: %s", ext)
	}
	if err != nil {
		return nil, fmt.Errorf("could not decode image: %w", err)
	}

	return toNRGBA(decodedImg), nil
}

// toNRGBA returns img as an *image.NRGBA whose bounds start at (0,0).
func toNRGBA(img image.Image) *image.NRGBA {
	if nrgba, ok := img.(*image.NRGBA); ok && nrgba.Rect.Min == (image.Point{}) {
		return nrgba
	}
	bounds := img.Bounds()
	nrgba := image.NewNRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(nrgba, nrgba.Bounds(), img, bounds.Min, draw.Src)
	return nrgba
}

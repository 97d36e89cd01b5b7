// Package texture builds the ordered set of chess piece sprites used by the
// board renderer.
package texture

import (
	"errors"
	"fmt"
	"image"
	"log"
	"sort"
	"strings"

	"golang.org/x/image/draw"
)

var ErrNoPieces = errors.New("no piece textures found")

// Piece is a named sprite. Names starting with "b" are black pieces.
type Piece struct {
	Name  string
	Image *image.NRGBA
}

// IsDark reports whether the piece name marks a black piece.
func IsDark(name string) bool {
	return strings.HasPrefix(name, "b")
}

// transparentCount counts pixels that are not fully opaque.
func transparentCount(img *image.NRGBA) int {
	count := 0
	b := img.Rect
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if img.Pix[img.PixOffset(x, y)+3] < 255 {
				count++
			}
		}
	}
	return count
}

// Weight is the sort key of a piece: how much of the sprite is filled,
// negative for black pieces. The largest black piece sorts first and the
// largest white piece last.
func Weight(p Piece) int {
	w := p.Image.Rect.Dx()
	weight := w*w - transparentCount(p.Image)
	if IsDark(p.Name) {
		return -weight
	}
	return weight
}

// Order sorts pieces from darkest to lightest and returns their images.
// Pieces with equal weight keep name order.
func Order(pieces []Piece) []*image.NRGBA {
	type keyed struct {
		Piece
		weight int
	}
	ks := make([]keyed, len(pieces))
	for i, p := range pieces {
		ks[i] = keyed{Piece: p, weight: Weight(p)}
	}
	sort.SliceStable(ks, func(i, j int) bool {
		if ks[i].weight != ks[j].weight {
			return ks[i].weight < ks[j].weight
		}
		return ks[i].Name < ks[j].Name
	})

	textures := make([]*image.NRGBA, len(ks))
	for i, k := range ks {
		textures[i] = k.Image
		log.Printf("Texture %d: %s (weight %d)", i, k.Name, k.weight)
	}
	return textures
}

// Normalize resizes every piece to size x size with nearest-neighbor
// sampling, so alpha stays a hard cutout.
func Normalize(pieces []Piece, size int) []Piece {
	out := make([]Piece, len(pieces))
	for i, p := range pieces {
		if p.Image.Rect.Dx() == size && p.Image.Rect.Dy() == size {
			out[i] = p
			continue
		}
		dst := image.NewNRGBA(image.Rect(0, 0, size, size))
		draw.NearestNeighbor.Scale(dst, dst.Bounds(), p.Image, p.Image.Bounds(), draw.Src, nil)
		out[i] = Piece{Name: p.Name, Image: dst}
	}
	return out
}

// Build loads the sprites in dir and returns them ordered by weight.
// When size is positive every sprite is first resized to size x size.
// The weights are computed after resizing, on the textures actually drawn.
func Build(dir string, size int) ([]*image.NRGBA, error) {
	pieces, err := LoadDir(dir)
	if err != nil {
		return nil, err
	}
	if len(pieces) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoPieces, dir)
	}
	if size > 0 {
		pieces = Normalize(pieces, size)
	}
	log.Printf("Loaded %d piece textures from %s", len(pieces), dir)
	return Order(pieces), nil
}

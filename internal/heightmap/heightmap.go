// Package heightmap decodes height-map images into one byte per texel and generates new
// ones from fractal value noise. The red channel of the terrain shader's sampler is the
// height, so every decoded image is reduced to grayscale before it reaches the GPU.
package heightmap

import (
	"fmt"
	"image"
	"image/draw"
	"io"

	// Extra decoders; png, jpeg and bmp are already registered by bild/imgio.
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
	_ "image/gif"

	"github.com/anthonynsimon/bild/effect"
	"github.com/anthonynsimon/bild/imgio"
)

// Load opens and decodes the image at path and converts it to grayscale.
func Load(path string) (*image.Gray, error) {
	img, err := imgio.Open(path)
	if err != nil {
		return nil, fmt.Errorf("heightmap: open %s: %w", path, err)
	}
	g := Gray(img)
	if g.Bounds().Empty() {
		return nil, fmt.Errorf("heightmap: %s: empty image", path)
	}
	return g, nil
}

// Decode reads an image in any registered format from r and converts it to grayscale.
func Decode(r io.Reader) (*image.Gray, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("heightmap: decode: %w", err)
	}
	return Gray(img), nil
}

// Gray returns img as a zero-origin *image.Gray. Gray inputs are copied as-is; everything
// else goes through bild's weighted grayscale and keeps the resulting red channel.
func Gray(img image.Image) *image.Gray {
	b := img.Bounds()
	dst := image.NewGray(image.Rect(0, 0, b.Dx(), b.Dy()))
	if b.Empty() {
		return dst
	}
	if g, ok := img.(*image.Gray); ok {
		draw.Draw(dst, dst.Bounds(), g, b.Min, draw.Src)
		return dst
	}
	rgba := effect.Grayscale(img)
	rb := rgba.Bounds()
	for y := 0; y < rb.Dy(); y++ {
		src := rgba.Pix[y*rgba.Stride:]
		row := dst.Pix[y*dst.Stride:]
		for x := 0; x < rb.Dx(); x++ {
			row[x] = src[x*4]
		}
	}
	return dst
}

// Save writes img to path as PNG.
func Save(path string, img image.Image) error {
	if err := imgio.Save(path, img, imgio.PNGEncoder()); err != nil {
		return fmt.Errorf("heightmap: save %s: %w", path, err)
	}
	return nil
}

// Stats summarizes the texel values of a height map.
type Stats struct {
	Width, Height int
	Min, Max      uint8
	Mean          float64
}

// Summarize returns the size and value range of img.
func Summarize(img *image.Gray) Stats {
	b := img.Bounds()
	s := Stats{Width: b.Dx(), Height: b.Dy()}
	if b.Empty() {
		return s
	}
	s.Min = 255
	var sum uint64
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			v := img.GrayAt(x, y).Y
			sum += uint64(v)
			if v < s.Min {
				s.Min = v
			}
			if v > s.Max {
				s.Max = v
			}
		}
	}
	s.Mean = float64(sum) / float64(b.Dx()*b.Dy())
	return s
}

package heightmap

import (
	"image"
	"time"

	"github.com/anthonynsimon/bild/blur"
	"github.com/chewxy/math32"
)

// Options controls procedural height-map generation.
// Width/Height are in texels. Seed controls randomness; Seed == 0 uses a time-based seed.
// Octaves, Frequency, Lacunarity and Gain control the fractal noise shape.
// BlurRadius > 0 smooths the result with a gaussian blur.
type Options struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`

	Seed       int64   `yaml:"seed"`
	Octaves    int     `yaml:"octaves"`
	Frequency  float32 `yaml:"frequency"`
	Lacunarity float32 `yaml:"lacunarity"`
	Gain       float32 `yaml:"gain"`
	BlurRadius float64 `yaml:"blur_radius"`
}

// DefaultOptions returns a 256×256 map with four octaves of noise.
func DefaultOptions() Options {
	return Options{
		Width:      256,
		Height:     256,
		Octaves:    4,
		Frequency:  0.02,
		Lacunarity: 2.0,
		Gain:       0.5,
	}
}

// Generate renders fractal value noise into a grayscale image. Non-positive fields fall
// back to DefaultOptions.
func Generate(opts Options) *image.Gray {
	def := DefaultOptions()
	if opts.Width <= 0 {
		opts.Width = def.Width
	}
	if opts.Height <= 0 {
		opts.Height = def.Height
	}
	if opts.Octaves <= 0 {
		opts.Octaves = def.Octaves
	}
	if opts.Frequency <= 0 {
		opts.Frequency = def.Frequency
	}
	if opts.Lacunarity <= 0 {
		opts.Lacunarity = def.Lacunarity
	}
	if opts.Gain <= 0 {
		opts.Gain = def.Gain
	}
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	img := image.NewGray(image.Rect(0, 0, opts.Width, opts.Height))
	for y := 0; y < opts.Height; y++ {
		row := img.Pix[y*img.Stride:]
		for x := 0; x < opts.Width; x++ {
			h := fractalValueNoise2D(float32(x)*opts.Frequency, float32(y)*opts.Frequency, seed, opts.Octaves, opts.Lacunarity, opts.Gain)
			row[x] = toByte(h)
		}
	}
	if opts.BlurRadius > 0 {
		return Gray(blur.Gaussian(img, opts.BlurRadius))
	}
	return img
}

func toByte(h float32) uint8 {
	if math32.IsNaN(h) || math32.IsInf(h, 0) || h <= 0 {
		return 0
	}
	if h >= 1 {
		return 255
	}
	return uint8(h*255 + 0.5)
}

// fractalValueNoise2D layers smooth value noise with configurable octaves, lacunarity and
// gain. Output is in [0,1].
func fractalValueNoise2D(x, y float32, seed int64, octaves int, lacunarity, gain float32) float32 {
	var sum, maxAmp float32
	amplitude := float32(1)
	freq := float32(1)

	for i := 0; i < octaves; i++ {
		sum += valueNoise2D(x*freq, y*freq, int32(seed)+int32(i)) * amplitude
		maxAmp += amplitude
		amplitude *= gain
		freq *= lacunarity
	}
	if maxAmp == 0 {
		return 0
	}
	return sum / maxAmp
}

// valueNoise2D is smooth value noise in [0,1] over a hashed integer lattice.
func valueNoise2D(x, y float32, seed int32) float32 {
	x0 := int32(math32.Floor(x))
	y0 := int32(math32.Floor(y))
	sx := smoothStep(x - float32(x0))
	sy := smoothStep(y - float32(y0))

	v00 := hash2D(x0, y0, seed)
	v10 := hash2D(x0+1, y0, seed)
	v01 := hash2D(x0, y0+1, seed)
	v11 := hash2D(x0+1, y0+1, seed)

	return lerp(lerp(v00, v10, sx), lerp(v01, v11, sx), sy)
}

// hash2D maps lattice coordinates to a deterministic pseudo-random value in [0,1].
func hash2D(x, y, seed int32) float32 {
	n := x*374761393 + y*668265263 + seed*362437
	n = (n ^ (n >> 13)) * 1274126177
	n = n ^ (n >> 16)
	const invMaxInt = 1.0 / 2147483647.0
	return float32(n&0x7fffffff) * float32(invMaxInt)
}

func lerp(a, b, t float32) float32 {
	return a + (b-a)*t
}

// smoothStep is cubic easing: 3t² - 2t³.
func smoothStep(t float32) float32 {
	if t <= 0 {
		return 0
	}
	if t >= 1 {
		return 1
	}
	return t * t * (3 - 2*t)
}

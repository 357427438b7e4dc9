package histoscale

import (
	"errors"
	"fmt"

	"github.com/exactarea/histoscale/internal/kernel"
)

// Sample constrains the pixel sample depths the scaler accepts.
// uint8 pairs with a maxval of 255, uint16 with 65535.
type Sample = kernel.Sample

// ErrInvalidConfig reports a target geometry the scaler cannot produce.
var ErrInvalidConfig = errors.New("invalid scaling configuration")

// Raster is an interleaved RGB image held in memory. Pix stores rows
// top to bottom, each row Width*Channels samples long.
type Raster[T Sample] struct {
	Width, Height int
	Pix           []T
}

// NewRaster allocates a zeroed raster of the given geometry.
func NewRaster[T Sample](width, height int) *Raster[T] {
	return &Raster[T]{
		Width:  width,
		Height: height,
		Pix:    make([]T, width*height*Channels),
	}
}

// Row returns the y-th row of interleaved samples.
func (r *Raster[T]) Row(y int) []T {
	stride := r.Width * Channels
	return r.Pix[y*stride : (y+1)*stride]
}

// Config describes the target geometry of an upsampling operation.
type Config struct {
	// OutputWidth and OutputHeight are the target dimensions in pixels.
	// Both must be at least the corresponding input dimension.
	OutputWidth  int
	OutputHeight int
}

// Validate checks the configuration against an input geometry.
func (c *Config) Validate(inWidth, inHeight int) error {
	if inWidth < MinInputSize || inHeight < MinInputSize {
		return fmt.Errorf("%w: input %dx%d is below the minimum of %dx%d",
			ErrInvalidConfig, inWidth, inHeight, MinInputSize, MinInputSize)
	}
	if c.OutputWidth < inWidth || c.OutputHeight < inHeight {
		return fmt.Errorf("%w: output %dx%d must not shrink input %dx%d",
			ErrInvalidConfig, c.OutputWidth, c.OutputHeight, inWidth, inHeight)
	}
	return nil
}

// rasterSource feeds raster rows to the kernel.
type rasterSource[T Sample] struct {
	r *Raster[T]
	y int
}

func (s *rasterSource[T]) ReadRow(dst []T) error {
	copy(dst, s.r.Row(s.y))
	s.y++
	return nil
}

// rasterSink collects kernel output rows into a raster.
type rasterSink[T Sample] struct {
	r *Raster[T]
	y int
}

func (s *rasterSink[T]) WriteRow(row []T) error {
	copy(s.r.Row(s.y), row)
	s.y++
	return nil
}

// Upsample enlarges src to the geometry in cfg using exact-area
// natural biquadratic histosplines. Every coarse pixel is treated as a
// constant patch and the output reproduces its average intensity exactly
// over the matching region.
func Upsample[T Sample](src *Raster[T], cfg Config) (*Raster[T], error) {
	if err := cfg.Validate(src.Width, src.Height); err != nil {
		return nil, err
	}
	dst := NewRaster[T](cfg.OutputWidth, cfg.OutputHeight)
	err := kernel.Upsample[T](
		&rasterSink[T]{r: dst},
		&rasterSource[T]{r: src},
		src.Width, src.Height,
		cfg.OutputWidth, cfg.OutputHeight,
	)
	if err != nil {
		return nil, err
	}
	return dst, nil
}

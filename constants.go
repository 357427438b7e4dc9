package histoscale

// Image geometry constants
const (
	// Channels is the number of samples per pixel. The scaler always
	// processes interleaved RGB rasters.
	Channels = 3

	// MinInputSize is the smallest input dimension the spline solver
	// accepts, in pixels. Below this the fixed-point multiplier tail
	// has no room to settle.
	MinInputSize = 15
)

// Sample depth constants
const (
	// MaxVal8 is the maximum sample value of 8-bit rasters.
	MaxVal8 = 255

	// MaxVal16 is the maximum sample value of 16-bit rasters.
	MaxVal16 = 65535
)

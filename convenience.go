package histoscale

import (
	"fmt"
	"math"
)

// TargetForWidth derives a full output geometry from a requested width,
// keeping the input aspect ratio. The height is rounded half away from
// zero, matching the reference tool.
func TargetForWidth(inWidth, inHeight, outWidth int) (Config, error) {
	if outWidth < inWidth {
		return Config{}, fmt.Errorf("%w: requested width %d shrinks input width %d",
			ErrInvalidConfig, outWidth, inWidth)
	}
	ratio := float64(inWidth) / float64(inHeight)
	outHeight := int(float64(outWidth)/ratio + 0.5)
	return Config{OutputWidth: outWidth, OutputHeight: outHeight}, nil
}

// TargetForHeight derives a full output geometry from a requested height,
// keeping the input aspect ratio.
func TargetForHeight(inWidth, inHeight, outHeight int) (Config, error) {
	if outHeight < inHeight {
		return Config{}, fmt.Errorf("%w: requested height %d shrinks input height %d",
			ErrInvalidConfig, outHeight, inHeight)
	}
	ratio := float64(inWidth) / float64(inHeight)
	outWidth := int(float64(outHeight)*ratio + 0.5)
	return Config{OutputWidth: outWidth, OutputHeight: outHeight}, nil
}

// TargetForScale derives an output geometry by multiplying both dimensions
// by factor. Dimensions are rounded to even on ties, matching the C
// library rint used by the reference tool.
func TargetForScale(inWidth, inHeight int, factor float64) (Config, error) {
	if factor < 1 || math.IsInf(factor, 0) || math.IsNaN(factor) {
		return Config{}, fmt.Errorf("%w: scale factor %v must be at least 1",
			ErrInvalidConfig, factor)
	}
	return Config{
		OutputWidth:  int(math.RoundToEven(float64(inWidth) * factor)),
		OutputHeight: int(math.RoundToEven(float64(inHeight) * factor)),
	}, nil
}

// TargetForPercent derives an output geometry from a percentage, where 100
// means no change. Percentages below 100 are rejected.
func TargetForPercent(inWidth, inHeight int, percent float64) (Config, error) {
	if percent < 100 || math.IsInf(percent, 0) || math.IsNaN(percent) {
		return Config{}, fmt.Errorf("%w: percentage %v must be at least 100",
			ErrInvalidConfig, percent)
	}
	return TargetForScale(inWidth, inHeight, percent/100)
}

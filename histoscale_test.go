package histoscale

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gradientRaster(width, height int) *Raster[uint8] {
	r := NewRaster[uint8](width, height)
	for y := 0; y < height; y++ {
		row := r.Row(y)
		for x := 0; x < width; x++ {
			v := uint8((y*37 + x*91) % 256)
			for ch := 0; ch < Channels; ch++ {
				row[x*Channels+ch] = v
			}
		}
	}
	return r
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name     string
		inW, inH int
		cfg      Config
		wantErr  bool
	}{
		{"valid upscale", 15, 15, Config{OutputWidth: 30, OutputHeight: 30}, false},
		{"valid identity", 20, 17, Config{OutputWidth: 20, OutputHeight: 17}, false},
		{"input too narrow", 14, 20, Config{OutputWidth: 40, OutputHeight: 40}, true},
		{"input too short", 20, 14, Config{OutputWidth: 40, OutputHeight: 40}, true},
		{"output shrinks width", 20, 20, Config{OutputWidth: 19, OutputHeight: 40}, true},
		{"output shrinks height", 20, 20, Config{OutputWidth: 40, OutputHeight: 19}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate(tt.inW, tt.inH)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidConfig)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestUpsampleIdentityIsExact(t *testing.T) {
	// Same-size output must reproduce the input byte for byte.
	src := gradientRaster(20, 17)
	dst, err := Upsample(src, Config{OutputWidth: 20, OutputHeight: 17})
	require.NoError(t, err)

	if diff := cmp.Diff(src.Pix, dst.Pix); diff != "" {
		t.Errorf("identity upsample changed pixels (-in +out):\n%s", diff)
	}
}

func TestUpsampleFlatField(t *testing.T) {
	src := NewRaster[uint8](15, 15)
	for i := range src.Pix {
		src.Pix[i] = 128
	}

	dst, err := Upsample(src, Config{OutputWidth: 30, OutputHeight: 30})
	require.NoError(t, err)
	for i, v := range dst.Pix {
		if v != 128 {
			t.Fatalf("sample %d = %d, want 128", i, v)
		}
	}
}

func TestUpsampleExtremeFlatFields(t *testing.T) {
	// All-black and all-white inputs stay flat in both depths.
	t.Run("8-bit", func(t *testing.T) {
		for _, v := range []uint8{0, MaxVal8} {
			src := NewRaster[uint8](16, 16)
			for i := range src.Pix {
				src.Pix[i] = v
			}
			dst, err := Upsample(src, Config{OutputWidth: 41, OutputHeight: 47})
			require.NoError(t, err)
			for i, got := range dst.Pix {
				if got != v {
					t.Fatalf("value %d: sample %d = %d", v, i, got)
				}
			}
		}
	})

	t.Run("16-bit", func(t *testing.T) {
		for _, v := range []uint16{0, MaxVal16} {
			src := NewRaster[uint16](16, 16)
			for i := range src.Pix {
				src.Pix[i] = v
			}
			dst, err := Upsample(src, Config{OutputWidth: 41, OutputHeight: 47})
			require.NoError(t, err)
			for i, got := range dst.Pix {
				if got != v {
					t.Fatalf("value %d: sample %d = %d", v, i, got)
				}
			}
		}
	})
}

func TestUpsampleImpulse16(t *testing.T) {
	// A doubled 16-bit corner impulse keeps its energy near the corner
	// and leaves the opposite quadrant black.
	src := NewRaster[uint16](16, 16)
	for ch := 0; ch < Channels; ch++ {
		src.Pix[ch] = MaxVal16
	}

	cfg, err := TargetForScale(src.Width, src.Height, 2)
	require.NoError(t, err)
	dst, err := Upsample(src, cfg)
	require.NoError(t, err)

	assert.Greater(t, dst.Row(0)[0], uint16(MaxVal16/2), "impulse peak lost")

	for y := 16; y < 32; y++ {
		row := dst.Row(y)
		for x := 16; x < 32; x++ {
			if row[x*Channels] != 0 {
				t.Fatalf("pixel (%d,%d) = %d, want 0", x, y, row[x*Channels])
			}
		}
	}
}

func TestUpsampleRejectsBadGeometry(t *testing.T) {
	src := gradientRaster(15, 15)
	_, err := Upsample(src, Config{OutputWidth: 10, OutputHeight: 10})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

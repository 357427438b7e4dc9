// Package cli implements the command surface shared by the eanbqh8 and
// eanbqh16 tools. Each tool reads one binary PPM, enlarges it, and writes
// the result.
package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/exactarea/histoscale"
	"github.com/exactarea/histoscale/internal/kernel"
	"github.com/exactarea/histoscale/internal/pnm"
)

// Depth selects the sample depth a tool variant accepts.
type Depth int

const (
	// Depth8 accepts rasters with maxval 255.
	Depth8 Depth = iota
	// Depth16 accepts rasters with maxval 65535.
	Depth16
)

func (d Depth) maxVal() int {
	if d == Depth8 {
		return pnm.MaxVal8
	}
	return pnm.MaxVal16
}

// usageError marks failures that warrant showing the usage text.
type usageError struct {
	msg string
}

func (e *usageError) Error() string { return e.msg }

func usageErrorf(format string, args ...any) error {
	return &usageError{msg: fmt.Sprintf(format, args...)}
}

// Run executes one tool invocation. args is the full argument vector
// including the program name. All diagnostics go to stdout, matching the
// reference tool. The return value is the process exit code.
func Run(depth Depth, args []string, stdout io.Writer) int {
	prog := "eanbqh"
	if len(args) > 0 {
		prog = filepath.Base(args[0])
	}
	if err := run(depth, args); err != nil {
		fmt.Fprintf(stdout, "%s: error: %v\n", prog, err)
		var ue *usageError
		if errors.As(err, &ue) {
			fmt.Fprintln(stdout)
			printUsage(stdout, prog)
		}
		return 1
	}
	return 0
}

func run(depth Depth, args []string) error {
	if len(args) < 4 {
		return usageErrorf("too few arguments")
	}
	if len(args) > 6 {
		return usageErrorf("too many arguments")
	}
	inPath, outPath := args[1], args[2]

	in, err := os.Open(inPath)
	if err != nil {
		return fmt.Errorf("cannot open input file %q: %w", inPath, err)
	}
	defer in.Close()

	br := bufio.NewReader(in)
	hdr, err := pnm.ReadHeader(br)
	if err != nil {
		return err
	}
	if hdr.Width < histoscale.MinInputSize || hdr.Height < histoscale.MinInputSize {
		return fmt.Errorf("%w: input image must be at least %dx%d",
			pnm.ErrFormat, histoscale.MinInputSize, histoscale.MinInputSize)
	}
	if hdr.MaxVal != depth.maxVal() {
		return fmt.Errorf("%w: input image must contain %d-bit samples",
			pnm.ErrFormat, sampleBits(depth))
	}

	cfg, err := parseSizing(hdr, args[3:])
	if err != nil {
		return err
	}
	if err := cfg.Validate(hdr.Width, hdr.Height); err != nil {
		return usageErrorf("%v", err)
	}

	// The input header is fully validated; only now may the output file
	// be created.
	out, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("cannot open output file %q: %w", outPath, err)
	}
	defer out.Close()

	if depth == Depth8 {
		err = stream[uint8](out, br, hdr, cfg)
	} else {
		err = stream[uint16](out, br, hdr, cfg)
	}
	if err != nil {
		return err
	}
	return out.Close()
}

// stream pipes input rows through the kernel into the output file.
func stream[T pnm.Sample](out io.Writer, in io.Reader, hdr pnm.Header, cfg histoscale.Config) error {
	w, err := pnm.NewWriter[T](out, cfg.OutputWidth, cfg.OutputHeight)
	if err != nil {
		return err
	}
	r := pnm.NewReader[T](in, hdr.Width)
	err = kernel.Upsample[T](w, r, hdr.Width, hdr.Height, cfg.OutputWidth, cfg.OutputHeight)
	if err != nil {
		return err
	}
	return w.Flush()
}

// parseSizing interprets the sizing arguments, one of:
//
//	WIDTH | -h HEIGHT | -d WIDTH HEIGHT | -s SCALE | -p PERCENTAGE
func parseSizing(hdr pnm.Header, sizing []string) (histoscale.Config, error) {
	switch len(sizing) {
	case 1:
		width, err := parsePositiveInt(sizing[0], "width")
		if err != nil {
			return histoscale.Config{}, err
		}
		return targetOrUsage(histoscale.TargetForWidth(hdr.Width, hdr.Height, width))
	case 2:
		switch sizing[0] {
		case "-h":
			height, err := parsePositiveInt(sizing[1], "height")
			if err != nil {
				return histoscale.Config{}, err
			}
			return targetOrUsage(histoscale.TargetForHeight(hdr.Width, hdr.Height, height))
		case "-s":
			scale, err := parsePositiveFloat(sizing[1], "scale")
			if err != nil {
				return histoscale.Config{}, err
			}
			return targetOrUsage(histoscale.TargetForScale(hdr.Width, hdr.Height, scale))
		case "-p":
			pct, err := parsePositiveFloat(sizing[1], "percentage")
			if err != nil {
				return histoscale.Config{}, err
			}
			return targetOrUsage(histoscale.TargetForPercent(hdr.Width, hdr.Height, pct))
		default:
			return histoscale.Config{}, usageErrorf("invalid arguments")
		}
	case 3:
		if sizing[0] != "-d" {
			return histoscale.Config{}, usageErrorf("invalid arguments")
		}
		width, err := parsePositiveInt(sizing[1], "width")
		if err != nil {
			return histoscale.Config{}, err
		}
		height, err := parsePositiveInt(sizing[2], "height")
		if err != nil {
			return histoscale.Config{}, err
		}
		return histoscale.Config{OutputWidth: width, OutputHeight: height}, nil
	default:
		return histoscale.Config{}, usageErrorf("invalid arguments")
	}
}

func targetOrUsage(cfg histoscale.Config, err error) (histoscale.Config, error) {
	if err != nil {
		return histoscale.Config{}, usageErrorf("%v", err)
	}
	return cfg, nil
}

func parsePositiveInt(s, name string) (int, error) {
	v, err := strconv.Atoi(s)
	if err != nil || v <= 0 {
		return 0, usageErrorf("invalid %s %q", name, s)
	}
	return v, nil
}

func parsePositiveFloat(s, name string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v <= 0 {
		return 0, usageErrorf("invalid %s %q", name, s)
	}
	return v, nil
}

func sampleBits(d Depth) int {
	if d == Depth8 {
		return 8
	}
	return 16
}

func printUsage(w io.Writer, prog string) {
	fmt.Fprintln(w, "USAGE:")
	fmt.Fprintf(w, "  1. Specify output width:\n         %s input.ppm output.ppm width\n", prog)
	fmt.Fprintf(w, "  2. Specify output height:\n         %s input.ppm output.ppm -h height\n", prog)
	fmt.Fprintf(w, "  3. Specify output dimensions:\n         %s input.ppm output.ppm -d width height\n", prog)
	fmt.Fprintf(w, "  4. Specify the scaling factor:\n         %s input.ppm output.ppm -s scale\n", prog)
	fmt.Fprintf(w, "  5. Specify the scaling factor as a percentage:\n         %s input.ppm output.ppm -p percentage\n", prog)
}

// Command eanbqh8 enlarges an 8-bit binary PPM (P6, maxval 255) image
// using exact-area natural biquadratic histospline upsampling.
//
// Usage:
//
//	eanbqh8 input.ppm output.ppm width
//	eanbqh8 input.ppm output.ppm -h height
//	eanbqh8 input.ppm output.ppm -d width height
//	eanbqh8 input.ppm output.ppm -s scale
//	eanbqh8 input.ppm output.ppm -p percentage
package main

import (
	"os"

	"github.com/exactarea/histoscale/internal/cli"
)

func main() {
	os.Exit(cli.Run(cli.Depth8, os.Args, os.Stdout))
}

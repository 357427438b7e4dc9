// Command eanbqh16 enlarges a 16-bit binary PPM (P6, maxval 65535) image
// using exact-area natural biquadratic histospline upsampling.
//
// Usage:
//
//	eanbqh16 input.ppm output.ppm width
//	eanbqh16 input.ppm output.ppm -h height
//	eanbqh16 input.ppm output.ppm -d width height
//	eanbqh16 input.ppm output.ppm -s scale
//	eanbqh16 input.ppm output.ppm -p percentage
package main

import (
	"os"

	"github.com/exactarea/histoscale/internal/cli"
)

func main() {
	os.Exit(cli.Run(cli.Depth16, os.Args, os.Stdout))
}

package gcode

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/pkg/errors"

	"penplot/pkg/cfg"
	"penplot/pkg/geometry"
)

// coord rounds v to the three decimals written, without printing -0.000.
func coord(v float64) float64 {
	v = math.Round(v*1000) / 1000
	if v == 0 {
		return 0
	}
	return v
}

// Write emits the header, one pen down block per polyline and the footer.
func Write(w io.Writer, polylines []geometry.Polyline, p cfg.Plotter) error {
	bw := bufio.NewWriter(w)

	lines := func(block string) {
		if block == "" {
			return
		}
		for _, line := range strings.Split(block, "\n") {
			bw.WriteString(line)
			bw.WriteByte('\n')
		}
	}
	pen := func(command string, z float64) {
		if command != "" {
			lines(command)
			return
		}
		fmt.Fprintf(bw, "G00 Z%.3f\n", coord(z))
	}

	lines(p.Header)
	for _, line := range polylines {
		if len(line) == 0 {
			continue
		}
		fmt.Fprintf(bw, "G00 X%.3f Y%.3f\n", coord(line[0].X), coord(line[0].Y))
		pen(p.PenDown, p.ZDown)
		for i, point := range line[1:] {
			if i == 0 {
				fmt.Fprintf(bw, "G01 F%.1f X%.3f Y%.3f\n", p.FeedRate, coord(point.X), coord(point.Y))
			} else {
				fmt.Fprintf(bw, "G01 X%.3f Y%.3f\n", coord(point.X), coord(point.Y))
			}
		}
		pen(p.PenUp, p.ZUp)
	}
	lines(p.Footer)

	return errors.Wrap(bw.Flush(), "unable to write G-code")
}

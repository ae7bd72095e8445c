package svgdoc

import (
	"bufio"
	"io"
	"strconv"

	"github.com/pkg/errors"

	"penplot/pkg/trace"
)

const tracedHeader = `<?xml version="1.0" standalone="no"?>
<!DOCTYPE svg PUBLIC "-//W3C//DTD SVG 1.1//EN" "http://www.w3.org/Graphics/SVG/1.1/DTD/svg11.dtd">
`

// WriteCurves writes curves as an SVG document of the given pixel size, one
// path element per curve. Each path starts with a move to the curve's start
// and has one L (corner) or C (smooth) command per segment.
func WriteCurves(w io.Writer, width, height int, curves trace.CurveSet) error {
	bw := bufio.NewWriter(w)
	bw.WriteString(tracedHeader)
	bw.WriteString(`<svg width="` + strconv.Itoa(width) + `" height="` + strconv.Itoa(height) +
		`" xmlns="http://www.w3.org/2000/svg" version="1.1">` + "\n")

	point := func(x, y float64) {
		bw.WriteString(FormatNumber(x))
		bw.WriteByte(' ')
		bw.WriteString(FormatNumber(y))
		bw.WriteByte(' ')
	}
	for _, curve := range curves {
		bw.WriteString(`<path d="`)
		for i, segment := range curve.Segments {
			if i == 0 {
				bw.WriteString("M ")
				point(curve.Start.X, curve.Start.Y)
			}
			switch segment.Kind {
			case trace.Corner:
				bw.WriteString("L ")
				point(segment.C.X, segment.C.Y)
			case trace.Smooth:
				bw.WriteString("C ")
				point(segment.C1.X, segment.C1.Y)
				point(segment.C2.X, segment.C2.Y)
				point(segment.End.X, segment.End.Y)
			}
		}
		bw.WriteString(`" fill="none" stroke="black" stroke-width="1"/>` + "\n")
	}
	bw.WriteString("</svg>")
	return errors.Wrap(bw.Flush(), "unable to write SVG")
}

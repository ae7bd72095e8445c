// Package gcode turns the visible geometry of an SVG file into G-code for a
// pen plotter.
package gcode

import (
	"math"
	"os"

	"github.com/pkg/errors"

	"penplot/pkg/cfg"
	"penplot/pkg/errkind"
	"penplot/pkg/geometry"
	"penplot/pkg/logging"
	"penplot/pkg/svgdoc"
	"penplot/pkg/svgpath"
)

// Generator converts SVG files to G-code.
type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

// Generate reads the SVG at svgPath and writes G-code drawing it to outPath.
// The output file is only created once the input has been read and planned.
func (g *Generator) Generate(svgPath, outPath string, p cfg.Plotter) error {
	data, err := os.ReadFile(svgPath)
	if err != nil {
		return errkind.Wrapf(errkind.Input, err, "unable to read %s", svgPath)
	}
	doc, err := svgdoc.Parse(data)
	if err != nil {
		return errkind.Wrapf(errkind.Parse, err, "%s", svgPath)
	}
	paths, err := doc.Paths()
	if err != nil {
		return errkind.Wrapf(errkind.Parse, err, "%s", svgPath)
	}

	polylines := Plan(doc, paths, p)
	if err := checkRange(polylines); err != nil {
		return errkind.Wrapf(errkind.Parse, err, "%s", svgPath)
	}

	f, err := os.Create(outPath)
	if err != nil {
		return errkind.Wrapf(errkind.Output, err, "unable to create %s", outPath)
	}
	if err := Write(f, polylines, p); err != nil {
		f.Close()
		return errkind.Wrapf(errkind.Output, err, "unable to write %s", outPath)
	}
	if err := f.Close(); err != nil {
		return errkind.Wrapf(errkind.Output, err, "unable to close %s", outPath)
	}
	return nil
}

// maxCoordinate bounds machine coordinates; anything larger comes from
// overflowing or absurd input and cannot be plotted.
const maxCoordinate = 1e9

func checkRange(polylines []geometry.Polyline) error {
	for _, line := range polylines {
		for _, pt := range line {
			if !(math.Abs(pt.X) <= maxCoordinate && math.Abs(pt.Y) <= maxCoordinate) {
				return errors.Errorf("coordinate (%g, %g) is out of range", pt.X, pt.Y)
			}
		}
	}
	return nil
}

// machineTransform maps SVG user space to machine coordinates. With FlipY
// the document's bottom edge lands on y = 0 and y grows upwards.
func machineTransform(doc *svgdoc.Document, paths []*svgpath.SubPath, p cfg.Plotter) svgpath.Matrix {
	s := p.Scale
	if !p.FlipY {
		return svgpath.Scale(s, s)
	}
	var top, bottom float64
	if extent, ok := doc.Extent(); ok {
		top, bottom = extent.MinY, extent.MinY+extent.Height
	} else if len(paths) > 0 {
		b := pathBounds(paths)
		top, bottom = b.minY, b.maxY
	}
	return svgpath.Matrix{A: s, D: -s, F: s * (top + bottom)}
}

// Plan moves paths into machine coordinates and reduces them to the
// polylines the pen follows, in drawing order. paths are modified.
func Plan(doc *svgdoc.Document, paths []*svgpath.SubPath, p cfg.Plotter) []geometry.Polyline {
	log := logging.Logger()

	machineTransform(doc, paths, p).TransformPath(paths)

	drawn := paths[:0:0]
	for _, path := range paths {
		if len(path.DrawTo) > 0 {
			drawn = append(drawn, path)
		}
	}

	if p.JoinDistance > 0 {
		var merges int
		drawn, merges = joinPaths(drawn, p.JoinDistance)
		log.Debug("joined paths", "merges", merges)
	}
	if p.Simplify {
		for _, path := range drawn {
			path.Simplify()
		}
	}

	if p.Optimize {
		var travel float64
		drawn, travel = sortPaths(drawn, 0, 0)
		log.Debug("ordered paths", "paths", len(drawn), "travel", travel)
	}

	polylines := make([]geometry.Polyline, 0, len(drawn))
	points := 0
	for _, path := range drawn {
		line := path.Flatten(p.Tolerance)
		points += len(line)
		polylines = append(polylines, line)
	}
	log.Debug("planned toolpaths", "polylines", len(polylines), "points", points)
	return polylines
}

// Package convert holds the two conversion pipelines behind the command line
// tools. The tracing and G-code collaborators are interfaces so either can
// be swapped for another implementation.
package convert

import (
	"os"

	"penplot/pkg/cfg"
	"penplot/pkg/errkind"
	"penplot/pkg/logging"
	"penplot/pkg/raster"
	"penplot/pkg/svgdoc"
	"penplot/pkg/trace"
)

// Tracer turns a luminance image into vector curves.
type Tracer interface {
	Trace(img *raster.Image) (trace.CurveSet, error)
}

// Generator writes G-code for the SVG file at svgPath to outPath.
type Generator interface {
	Generate(svgPath, outPath string, p cfg.Plotter) error
}

// RasterToSVG traces the image at inPath and writes the curves to outPath
// as an SVG the size of the image. A partly written output file is left in
// place on failure.
func RasterToSVG(inPath, outPath string, tracer Tracer) error {
	log := logging.Logger()

	img, format, err := raster.Load(inPath)
	if err != nil {
		return err
	}
	log.Info("loaded image", "path", inPath, "format", format, "width", img.Width, "height", img.Height)

	curves, err := tracer.Trace(img)
	if err != nil {
		if errkind.Of(err) == errkind.Unknown {
			err = errkind.Wrap(errkind.Trace, err, "tracing failed")
		}
		return err
	}

	f, err := os.Create(outPath)
	if err != nil {
		return errkind.Wrapf(errkind.Output, err, "unable to create %s", outPath)
	}
	if err := svgdoc.WriteCurves(f, img.Width, img.Height, curves); err != nil {
		f.Close()
		return errkind.Wrapf(errkind.Output, err, "unable to write %s", outPath)
	}
	if err := f.Close(); err != nil {
		return errkind.Wrapf(errkind.Output, err, "unable to close %s", outPath)
	}
	log.Info("wrote SVG", "path", outPath, "curves", len(curves))
	return nil
}

// SVGToGcode hands the conversion to gen with the plotter settings p.
// Errors gen does not classify are reported as parse errors.
func SVGToGcode(inPath, outPath string, gen Generator, p cfg.Plotter) error {
	if err := gen.Generate(inPath, outPath, p); err != nil {
		if errkind.Of(err) == errkind.Unknown {
			err = errkind.Wrap(errkind.Parse, err, "G-code generation failed")
		}
		return err
	}
	logging.Logger().Info("wrote G-code", "path", outPath)
	return nil
}

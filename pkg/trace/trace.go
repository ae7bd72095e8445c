// Package trace turns a luminance bitmap into closed outlines made of
// straight and cubic segments, in the manner of potrace.
package trace

import (
	"penplot/pkg/cfg"
	"penplot/pkg/errkind"
	"penplot/pkg/geometry"
	"penplot/pkg/logging"
	"penplot/pkg/raster"
)

type SegmentKind int

const (
	Corner SegmentKind = iota
	Smooth
)

func (k SegmentKind) String() string {
	if k == Corner {
		return "corner"
	}
	return "smooth"
}

// Segment is one piece of a curve. A corner goes straight to C and then on
// to End; only C is drawn. A smooth segment is the cubic C1, C2, End.
type Segment struct {
	Kind SegmentKind
	C    geometry.Point
	C1   geometry.Point
	C2   geometry.Point
	End  geometry.Point
}

// Curve is a closed outline. The last segment ends back at Start.
type Curve struct {
	Start    geometry.Point
	Segments []Segment
}

type CurveSet []Curve

// Potrace traces bitmaps with fixed tuning parameters.
type Potrace struct {
	params cfg.Trace
}

func NewPotrace(params cfg.Trace) *Potrace {
	return &Potrace{params: params}
}

// Trace returns one curve per outline of the foreground of img, in the
// scan order of each outline's top left edge. Outer outlines run clockwise
// on screen and holes counter-clockwise.
func (p *Potrace) Trace(img *raster.Image) (CurveSet, error) {
	if img == nil || img.Width <= 0 || img.Height <= 0 {
		return nil, errkind.New(errkind.Trace, "cannot trace an empty image")
	}
	log := logging.Logger()

	bm := newBitmap(img, p.params.Threshold)
	outlines := findOutlines(bm)

	curves := make(CurveSet, 0, len(outlines))
	dropped := 0
	for _, outline := range outlines {
		area := outline.Area()
		if area < 0 {
			area = -area
		}
		if area <= float64(p.params.TurdSize) {
			dropped++
			continue
		}
		polygon := corners(outline)
		if p.params.Epsilon > 0 {
			polygon = polygon.SimplifyClosed(p.params.Epsilon)
		}
		curves = append(curves, smooth(polygon, p.params.AlphaMax))
	}

	log.Debug("traced bitmap",
		"width", img.Width,
		"height", img.Height,
		"foreground", bm.count,
		"outlines", len(outlines),
		"dropped", dropped,
		"curves", len(curves))
	return curves, nil
}

package svgdoc

import (
	"math"
	"strings"

	"penplot/pkg/svgpath"
)

// shapePath returns the path data equivalent to a basic shape element, and
// false for elements that draw nothing.
func shapePath(n *Node) (string, bool) {
	f := FormatNumber
	switch n.XMLName.Local {
	case "path":
		return n.D, strings.TrimSpace(n.D) != ""

	case "rect":
		x, y := ParseNumber(n.X), ParseNumber(n.Y)
		w, h := ParseNumber(n.Width), ParseNumber(n.Height)
		if w <= 0 || h <= 0 {
			return "", false
		}
		rx, ry := ParseNumber(n.RX), ParseNumber(n.RY)
		if n.RX == "" {
			rx = ry
		}
		if n.RY == "" {
			ry = rx
		}
		rx = math.Min(math.Max(rx, 0), w/2)
		ry = math.Min(math.Max(ry, 0), h/2)
		if rx == 0 || ry == 0 {
			return "M " + f(x) + " " + f(y) +
				" H " + f(x+w) + " V " + f(y+h) + " H " + f(x) + " Z", true
		}
		arc := " A " + f(rx) + " " + f(ry) + " 0 0 1 "
		return "M " + f(x+rx) + " " + f(y) +
			" H " + f(x+w-rx) + arc + f(x+w) + " " + f(y+ry) +
			" V " + f(y+h-ry) + arc + f(x+w-rx) + " " + f(y+h) +
			" H " + f(x+rx) + arc + f(x) + " " + f(y+h-ry) +
			" V " + f(y+ry) + arc + f(x+rx) + " " + f(y) + " Z", true

	case "circle", "ellipse":
		cx, cy := ParseNumber(n.CX), ParseNumber(n.CY)
		rx, ry := ParseNumber(n.RX), ParseNumber(n.RY)
		if n.XMLName.Local == "circle" {
			rx = ParseNumber(n.Radius)
			ry = rx
		}
		if rx <= 0 || ry <= 0 {
			return "", false
		}
		arc := " A " + f(rx) + " " + f(ry) + " 0 1 0 "
		return "M " + f(cx-rx) + " " + f(cy) +
			arc + f(cx+rx) + " " + f(cy) +
			arc + f(cx-rx) + " " + f(cy) + " Z", true

	case "line":
		return "M " + f(ParseNumber(n.X1)) + " " + f(ParseNumber(n.Y1)) +
			" L " + f(ParseNumber(n.X2)) + " " + f(ParseNumber(n.Y2)), true

	case "polyline", "polygon":
		points := strings.TrimSpace(n.Points)
		if points == "" {
			return "", false
		}
		// A move to followed by more pairs is an implicit line to.
		d := "M " + points
		if n.XMLName.Local == "polygon" {
			d += " Z"
		}
		return d, true
	}
	return "", false
}

// shape parses the geometry of a drawable element.
func shape(n *Node) ([]*svgpath.SubPath, error) {
	d, ok := shapePath(n)
	if !ok {
		return nil, nil
	}
	return svgpath.Parse(d)
}

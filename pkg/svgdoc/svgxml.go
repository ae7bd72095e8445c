// Package svgdoc reads SVG documents into plottable sub paths and writes
// traced curves back out as SVG.
package svgdoc

import (
	"encoding/xml"
	"strconv"
	"strings"

	"penplot/pkg/errkind"
)

// Node is one SVG element with the attributes the plotter looks at.
type Node struct {
	XMLName   xml.Name
	Width     string  `xml:"width,attr,omitempty"`
	Height    string  `xml:"height,attr,omitempty"`
	ViewBox   string  `xml:"viewBox,attr,omitempty"`
	ID        string  `xml:"id,attr,omitempty"`
	Styles    string  `xml:"style,attr,omitempty"`
	D         string  `xml:"d,attr,omitempty"`
	Transform string  `xml:"transform,attr,omitempty"`
	Children  []*Node `xml:",any"`

	// Presentation attributes. The style attribute takes precedence.
	Fill       string `xml:"fill,attr,omitempty"`
	Stroke     string `xml:"stroke,attr,omitempty"`
	Display    string `xml:"display,attr,omitempty"`
	Visibility string `xml:"visibility,attr,omitempty"`

	// Basic shape geometry.
	X      string `xml:"x,attr,omitempty"`
	Y      string `xml:"y,attr,omitempty"`
	RX     string `xml:"rx,attr,omitempty"`
	RY     string `xml:"ry,attr,omitempty"`
	CX     string `xml:"cx,attr,omitempty"`
	CY     string `xml:"cy,attr,omitempty"`
	Radius string `xml:"r,attr,omitempty"`
	X1     string `xml:"x1,attr,omitempty"`
	Y1     string `xml:"y1,attr,omitempty"`
	X2     string `xml:"x2,attr,omitempty"`
	Y2     string `xml:"y2,attr,omitempty"`
	Points string `xml:"points,attr,omitempty"`

	style map[string]string
}

// Document is a parsed SVG file.
type Document struct {
	Root *Node
}

// Parse decodes an SVG document. Anything that is not well formed XML with
// an svg root element is a parse error.
func Parse(data []byte) (*Document, error) {
	var root Node
	if err := xml.Unmarshal(data, &root); err != nil {
		return nil, errkind.Wrap(errkind.Parse, err, "unable to parse SVG")
	}
	if root.XMLName.Local != "svg" {
		return nil, errkind.Errorf(errkind.Parse, "expected an svg root element, got %q", root.XMLName.Local)
	}
	return &Document{Root: &root}, nil
}

// Extent is the user space rectangle the document shows.
type Extent struct {
	MinX, MinY    float64
	Width, Height float64
}

// Extent returns the viewBox of the root element, or else a rectangle at
// the origin sized by its width and height. ok is false when neither gives
// a usable size.
func (d *Document) Extent() (extent Extent, ok bool) {
	if d.Root.ViewBox != "" {
		fields := strings.FieldsFunc(d.Root.ViewBox, func(r rune) bool {
			return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
		})
		if len(fields) == 4 {
			var v [4]float64
			valid := true
			for i, f := range fields {
				n, err := strconv.ParseFloat(f, 64)
				if err != nil {
					valid = false
					break
				}
				v[i] = n
			}
			if valid && v[2] > 0 && v[3] > 0 {
				return Extent{MinX: v[0], MinY: v[1], Width: v[2], Height: v[3]}, true
			}
		}
	}
	width, errW := parseLength(d.Root.Width)
	height, errH := parseLength(d.Root.Height)
	if errW != nil || errH != nil || width <= 0 || height <= 0 {
		return Extent{}, false
	}
	return Extent{Width: width, Height: height}, true
}

// parseLength reads a number, ignoring a trailing unit such as "px" or "mm".
func parseLength(s string) (float64, error) {
	s = strings.TrimSpace(s)
	end := len(s)
	for end > 0 {
		c := s[end-1]
		if ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') {
			end--
			continue
		}
		break
	}
	return strconv.ParseFloat(s[:end], 64)
}

// ParseNumber returns the value of an optional numeric attribute, 0 if it is
// missing or malformed.
func ParseNumber(n string) float64 {
	val, _ := parseLength(n)
	return val
}

func FormatNumber(n float64) string {
	return strconv.FormatFloat(n, 'f', -1, 64)
}

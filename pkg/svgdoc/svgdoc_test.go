package svgdoc_test

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"penplot/pkg/errkind"
	"penplot/pkg/svgdoc"
	"penplot/pkg/svgpath"
)

func paths(t *testing.T, doc string) []*svgpath.SubPath {
	t.Helper()
	d, err := svgdoc.Parse([]byte(doc))
	require.NoError(t, err)
	p, err := d.Paths()
	require.NoError(t, err)
	return p
}

func TestParseErrors(t *testing.T) {
	for _, doc := range []string{
		"",
		"<svg",
		`<html xmlns="http://www.w3.org/1999/xhtml"></html>`,
	} {
		_, err := svgdoc.Parse([]byte(doc))
		require.Error(t, err, doc)
		assert.Equal(t, errkind.Parse, errkind.Of(err), doc)
	}
}

func TestBadPathData(t *testing.T) {
	d, err := svgdoc.Parse([]byte(`<svg><path d="M 0 0 L 1"/></svg>`))
	require.NoError(t, err)
	_, err = d.Paths()
	require.Error(t, err)
	assert.Equal(t, errkind.Parse, errkind.Of(err))

	d, err = svgdoc.Parse([]byte(`<svg><g transform="spin(3)"><path d="M 0 0 L 1 1"/></g></svg>`))
	require.NoError(t, err)
	_, err = d.Paths()
	assert.Equal(t, errkind.Parse, errkind.Of(err))
}

func TestExtent(t *testing.T) {
	tests := []struct {
		doc  string
		want svgdoc.Extent
		ok   bool
	}{
		{`<svg width="944" height="1334"/>`, svgdoc.Extent{Width: 944, Height: 1334}, true},
		{`<svg width="210mm" height="297mm"/>`, svgdoc.Extent{Width: 210, Height: 297}, true},
		{`<svg width="210mm" height="297mm" viewBox="0 -10,100 200"/>`, svgdoc.Extent{MinY: -10, Width: 100, Height: 200}, true},
		{`<svg viewBox="0 0 0 10" width="5" height="6"/>`, svgdoc.Extent{Width: 5, Height: 6}, true},
		{`<svg/>`, svgdoc.Extent{}, false},
		{`<svg width="100%" height="100%"/>`, svgdoc.Extent{}, false},
	}
	for _, test := range tests {
		d, err := svgdoc.Parse([]byte(test.doc))
		require.NoError(t, err)
		got, ok := d.Extent()
		assert.Equal(t, test.ok, ok, test.doc)
		assert.Equal(t, test.want, got, test.doc)
	}
}

func TestPathsFromShapes(t *testing.T) {
	got := paths(t, `<svg xmlns="http://www.w3.org/2000/svg" width="100" height="100">
  <path d="M 1 2 L 3 4"/>
  <rect x="10" y="20" width="30" height="40"/>
  <line x1="0" y1="0" x2="5" y2="5" stroke="black"/>
  <polyline points="1,1 2,2 3,1" fill="none" stroke="red"/>
  <polygon points="0 0 4 0 4 4"/>
</svg>`)

	expected := []*svgpath.SubPath{
		{X: 1, Y: 2, DrawTo: []*svgpath.DrawTo{{Command: svgpath.LineTo, X: 3, Y: 4}}},
		{X: 10, Y: 20, DrawTo: []*svgpath.DrawTo{
			{Command: svgpath.LineTo, X: 40, Y: 20},
			{Command: svgpath.LineTo, X: 40, Y: 60},
			{Command: svgpath.LineTo, X: 10, Y: 60},
			{Command: svgpath.ClosePath, X: 10, Y: 20},
		}},
		{X: 0, Y: 0, DrawTo: []*svgpath.DrawTo{{Command: svgpath.LineTo, X: 5, Y: 5}}},
		{X: 1, Y: 1, DrawTo: []*svgpath.DrawTo{
			{Command: svgpath.LineTo, X: 2, Y: 2},
			{Command: svgpath.LineTo, X: 3, Y: 1},
		}},
		{X: 0, Y: 0, DrawTo: []*svgpath.DrawTo{
			{Command: svgpath.LineTo, X: 4, Y: 0},
			{Command: svgpath.LineTo, X: 4, Y: 4},
			{Command: svgpath.ClosePath, X: 0, Y: 0},
		}},
	}
	if diff := cmp.Diff(expected, got); diff != "" {
		t.Errorf("incorrect paths: %s", diff)
	}
}

func TestCircleAndEllipse(t *testing.T) {
	got := paths(t, `<svg><circle cx="10" cy="10" r="5"/><ellipse cx="0" cy="0" rx="4" ry="2"/></svg>`)
	require.Len(t, got, 2)

	for _, p := range got[0].Flatten(0.01) {
		assert.InDelta(t, 5, math.Hypot(p.X-10, p.Y-10), 0.01)
	}
	for _, p := range got[1].Flatten(0.01) {
		assert.InDelta(t, 1, p.X*p.X/16+p.Y*p.Y/4, 0.01)
	}
}

func TestRoundedRect(t *testing.T) {
	got := paths(t, `<svg><rect width="10" height="6" rx="2"/></svg>`)
	require.Len(t, got, 1)
	assert.Equal(t, 2.0, got[0].X)
	assert.Equal(t, 0.0, got[0].Y)
	minX, maxX, minY, maxY := math.Inf(1), math.Inf(-1), math.Inf(1), math.Inf(-1)
	for _, p := range got[0].Flatten(0.01) {
		minX, maxX = math.Min(minX, p.X), math.Max(maxX, p.X)
		minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
	}
	assert.InDelta(t, 0, minX, 1e-9)
	assert.InDelta(t, 10, maxX, 1e-9)
	assert.InDelta(t, 0, minY, 1e-9)
	assert.InDelta(t, 6, maxY, 1e-9)
}

func TestTransformsCompose(t *testing.T) {
	got := paths(t, `<svg transform="translate(100 0)">
  <g transform="scale(2)">
    <g transform="translate(1 1)">
      <path d="M 0 0 L 1 0"/>
    </g>
  </g>
</svg>`)
	expected := []*svgpath.SubPath{
		{X: 102, Y: 2, DrawTo: []*svgpath.DrawTo{{Command: svgpath.LineTo, X: 104, Y: 2}}},
	}
	if diff := cmp.Diff(expected, got); diff != "" {
		t.Errorf("incorrect paths: %s", diff)
	}
}

func TestSkippedElements(t *testing.T) {
	got := paths(t, `<svg xmlns="http://www.w3.org/2000/svg"
     xmlns:sodipodi="http://sodipodi.sourceforge.net/DTD/sodipodi-0.dtd">
  <sodipodi:namedview id="base"/>
  <title>drawing</title>
  <defs><path id="hidden-def" d="M 0 0 L 1 1"/></defs>
  <clipPath><rect width="5" height="5"/></clipPath>
  <text x="0" y="0">label</text>
  <path id="none" d="M 0 0 L 1 1" fill="none"/>
  <path id="white" d="M 0 0 L 1 1" style="fill:#ffffff;stroke:none"/>
  <path id="display" d="M 0 0 L 1 1" style="display:none"/>
  <g display="none"><path d="M 0 0 L 1 1"/></g>
  <g visibility="hidden">
    <path id="hidden" d="M 0 0 L 1 1"/>
    <path id="shown" d="M 5 5 L 6 6" visibility="visible"/>
  </g>
  <g style="fill:none;stroke:#000">
    <path id="inherited" d="M 7 7 L 8 8"/>
    <path id="inherit-none" d="M 7 7 L 8 8" stroke="none"/>
  </g>
</svg>`)
	expected := []*svgpath.SubPath{
		{X: 5, Y: 5, DrawTo: []*svgpath.DrawTo{{Command: svgpath.LineTo, X: 6, Y: 6}}},
		{X: 7, Y: 7, DrawTo: []*svgpath.DrawTo{{Command: svgpath.LineTo, X: 8, Y: 8}}},
	}
	if diff := cmp.Diff(expected, got); diff != "" {
		t.Errorf("incorrect paths: %s", diff)
	}
}

func TestStyle(t *testing.T) {
	d, err := svgdoc.Parse([]byte(`<svg><path fill="red" stroke="blue" style="fill: none ; stroke-width:2"/></svg>`))
	require.NoError(t, err)
	node := d.Root.Children[0]
	assert.Equal(t, "none", node.Style("fill"))
	assert.Equal(t, "blue", node.Style("stroke"))
	assert.Equal(t, "2", node.Style("stroke-width"))
	assert.Equal(t, "", node.Style("opacity"))
}

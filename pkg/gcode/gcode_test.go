package gcode_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"penplot/pkg/cfg"
	"penplot/pkg/errkind"
	"penplot/pkg/gcode"
	"penplot/pkg/geometry"
	"penplot/pkg/svgdoc"
	"penplot/pkg/svgpath"
)

func TestWrite(t *testing.T) {
	polylines := []geometry.Polyline{
		{{X: 1, Y: 2}, {X: 3, Y: 4}, {X: 5.0004, Y: -0.0001}},
		{{X: 10, Y: 10}, {X: 11, Y: 10}},
	}
	var buf bytes.Buffer
	require.NoError(t, gcode.Write(&buf, polylines, cfg.DefaultPlotter()))

	want := `G21
G90
M05
G00 F1200.0 X0.0 Y0.0
G00 X1.000 Y2.000
M03
G01 F1200.0 X3.000 Y4.000
G01 X5.000 Y0.000
M05
G00 X10.000 Y10.000
M03
G01 F1200.0 X11.000 Y10.000
M05
M05
G00 X0.0 Y0.0
`
	assert.Equal(t, want, buf.String())
}

func TestWriteZFallback(t *testing.T) {
	p := cfg.DefaultPlotter()
	p.PenDown = ""
	p.PenUp = ""
	p.Header = ""
	p.Footer = ""
	var buf bytes.Buffer
	require.NoError(t, gcode.Write(&buf, []geometry.Polyline{{{X: 0, Y: 0}, {X: 1, Y: 1}}}, p))

	want := `G00 X0.000 Y0.000
G00 Z0.000
G01 F1200.0 X1.000 Y1.000
G00 Z5.000
`
	assert.Equal(t, want, buf.String())
}

func TestWriteEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, gcode.Write(&buf, nil, cfg.DefaultPlotter()))
	assert.Equal(t, "G21\nG90\nM05\nG00 F1200.0 X0.0 Y0.0\nM05\nG00 X0.0 Y0.0\n", buf.String())
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestGenerate(t *testing.T) {
	in := writeFile(t, "in.svg", `<?xml version="1.0" standalone="no"?>
<svg width="100" height="100" xmlns="http://www.w3.org/2000/svg" version="1.1">
<path d="M 10 10 L 20 10 " fill="none" stroke="black" stroke-width="1"/>
</svg>`)
	out := filepath.Join(t.TempDir(), "out.gcode")

	require.NoError(t, gcode.NewGenerator().Generate(in, out, cfg.DefaultPlotter()))
	data, err := os.ReadFile(out)
	require.NoError(t, err)

	want := `G21
G90
M05
G00 F1200.0 X0.0 Y0.0
G00 X2.230 Y20.070
M03
G01 F1200.0 X4.460 Y20.070
M05
M05
G00 X0.0 Y0.0
`
	assert.Equal(t, want, string(data))
}

func TestGenerateTracedCurve(t *testing.T) {
	in := writeFile(t, "in.svg", `<svg width="10" height="10" xmlns="http://www.w3.org/2000/svg" version="1.1">
<path d="M 0 5 C 0 2 2 0 5 0 L 10 0 " fill="none" stroke="black" stroke-width="1"/>
</svg>`)
	out := filepath.Join(t.TempDir(), "out.gcode")

	p := cfg.DefaultPlotter()
	p.Scale = 1
	require.NoError(t, gcode.NewGenerator().Generate(in, out, p))
	data, err := os.ReadFile(out)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
	penDown := indexOf(lines, "M03")
	require.Greater(t, penDown, 0)
	assert.Equal(t, "G00 X0.000 Y5.000", lines[penDown-1])
	assert.Equal(t, "G01 F1200.0", lines[penDown+1][:len("G01 F1200.0")])
	// The curve is flattened into several moves ending at the corner.
	assert.Contains(t, lines, "G01 X5.000 Y10.000")
	assert.Contains(t, lines, "G01 X10.000 Y10.000")
	assert.Greater(t, strings.Count(string(data), "G01"), 3)
}

func indexOf(lines []string, s string) int {
	for i, line := range lines {
		if line == s {
			return i
		}
	}
	return -1
}

func TestGenerateErrors(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "out.gcode")

	err := gcode.NewGenerator().Generate(filepath.Join(dir, "missing.svg"), out, cfg.DefaultPlotter())
	require.Error(t, err)
	assert.Equal(t, errkind.Input, errkind.Of(err))
	assert.NoFileExists(t, out)

	bad := writeFile(t, "bad.svg", "this is not svg")
	err = gcode.NewGenerator().Generate(bad, out, cfg.DefaultPlotter())
	require.Error(t, err)
	assert.Equal(t, errkind.Parse, errkind.Of(err))
	assert.NoFileExists(t, out)

	good := writeFile(t, "good.svg", `<svg width="1" height="1"><path d="M 0 0 L 1 1"/></svg>`)
	err = gcode.NewGenerator().Generate(good, filepath.Join(dir, "no", "such", "dir.gcode"), cfg.DefaultPlotter())
	require.Error(t, err)
	assert.Equal(t, errkind.Output, errkind.Of(err))
}

func TestGenerateHugeCurve(t *testing.T) {
	in := writeFile(t, "huge.svg", `<svg width="10" height="10"><path d="M0 0 C 0 1e300 1e300 0 1 1" stroke="black"/></svg>`)
	out := filepath.Join(t.TempDir(), "out.gcode")

	err := gcode.NewGenerator().Generate(in, out, cfg.DefaultPlotter())
	require.Error(t, err)
	assert.Equal(t, errkind.Parse, errkind.Of(err))
	assert.Contains(t, err.Error(), "out of range")
	assert.NoFileExists(t, out)
}

func TestPlanBoundsCurveFlattening(t *testing.T) {
	doc, err := svgdoc.Parse([]byte(`<svg width="10" height="10"><path d="M0 0 C 0 1e300 1e300 0 1 1"/></svg>`))
	require.NoError(t, err)
	paths, err := doc.Paths()
	require.NoError(t, err)

	got := gcode.Plan(doc, paths, cfg.DefaultPlotter())
	require.Len(t, got, 1)
	assert.Len(t, got[0], geometry.MaxSegments+1)
}

func TestPlanWithoutExtent(t *testing.T) {
	doc, err := svgdoc.Parse([]byte(`<svg><path d="M 0 10 L 0 30"/></svg>`))
	require.NoError(t, err)
	paths, err := doc.Paths()
	require.NoError(t, err)

	p := cfg.DefaultPlotter()
	p.Scale = 2
	p.Optimize = false
	// Without a size the drawing's own bounds are flipped.
	got := gcode.Plan(doc, paths, p)
	assert.Equal(t, []geometry.Polyline{{{X: 0, Y: 60}, {X: 0, Y: 20}}}, got)
}

func TestPlanKeepsOrderWithoutOptimize(t *testing.T) {
	doc, err := svgdoc.Parse([]byte(`<svg width="100" height="100">
<path d="M 90 90 L 95 95"/>
<path d="M 1 1 L 2 2"/>
</svg>`))
	require.NoError(t, err)
	paths, err := doc.Paths()
	require.NoError(t, err)

	p := cfg.DefaultPlotter()
	p.Scale = 1
	p.FlipY = false
	p.Optimize = false
	got := gcode.Plan(doc, paths, p)
	require.Len(t, got, 2)
	assert.Equal(t, geometry.Point{X: 90, Y: 90}, got[0][0])

	paths, err = doc.Paths()
	require.NoError(t, err)
	p.Optimize = true
	got = gcode.Plan(doc, paths, p)
	require.Len(t, got, 2)
	assert.Equal(t, geometry.Point{X: 1, Y: 1}, got[0][0], "optimized plan starts nearest the origin")
}

func TestPlanDropsEmptyPaths(t *testing.T) {
	doc, err := svgdoc.Parse([]byte(`<svg width="10" height="10"/>`))
	require.NoError(t, err)
	paths := []*svgpath.SubPath{{X: 1, Y: 1}}
	assert.Empty(t, gcode.Plan(doc, paths, cfg.DefaultPlotter()))
}

func TestPlanJoinsTouchingPaths(t *testing.T) {
	doc, err := svgdoc.Parse([]byte(`<svg width="100" height="100">
<path d="M 10 0 L 10 10"/>
<path d="M 0 0 L 10 0"/>
</svg>`))
	require.NoError(t, err)

	p := cfg.DefaultPlotter()
	p.Scale = 1
	p.FlipY = false
	p.Optimize = false

	paths, err := doc.Paths()
	require.NoError(t, err)
	got := gcode.Plan(doc, paths, p)
	assert.Equal(t, []geometry.Polyline{{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}}}, got)

	p.JoinDistance = 0
	paths, err = doc.Paths()
	require.NoError(t, err)
	assert.Len(t, gcode.Plan(doc, paths, p), 2)
}

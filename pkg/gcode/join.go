package gcode

import (
	"penplot/pkg/svgpath"
)

// mergePaths appends join to path, end to end, reversing either as needed so
// the chosen ends meet. A gap between the ends is bridged with a line. join
// is left empty.
func mergePaths(path *svgpath.SubPath, pathStart bool, join *svgpath.SubPath, joinStart bool) {
	var a, b *svgpath.SubPath
	switch {
	case !pathStart && joinStart:
		a, b = path, join
	case pathStart && !joinStart:
		a, b = join, path
	case !pathStart && !joinStart:
		a, b = path, join.Reverse()
	default:
		a, b = path.Reverse(), join
	}

	drawTo := a.DrawTo
	if ex, ey := a.EndPoint(); ex != b.X || ey != b.Y {
		drawTo = append(drawTo, &svgpath.DrawTo{Command: svgpath.LineTo, X: b.X, Y: b.Y})
	}
	drawTo = append(drawTo, b.DrawTo...)
	// path can be aliased to a or b; read both before writing.
	x, y := a.X, a.Y
	path.X, path.Y = x, y
	path.DrawTo = drawTo

	join.DrawTo = nil
}

// joinPaths merges paths whose ends lie within maxGap of each other, so
// the pen draws them without lifting. Only pairs are joined; where three or
// more ends meet the paths are left as they are. The result keeps the input
// order of the surviving paths.
func joinPaths(paths []*svgpath.SubPath, maxGap float64) ([]*svgpath.SubPath, int) {
	if len(paths) < 2 {
		return paths, 0
	}
	tree := newPathTree(pathBounds(paths))
	for _, path := range paths {
		tree.addPath(path)
	}

	merges := 0
	tryMerge := func(path *svgpath.SubPath, start bool) bool {
		var x, y float64
		if start {
			x, y = path.StartPoint()
		} else {
			x, y = path.EndPoint()
		}
		neighbors := tree.findNeighbors(path, x, y, maxGap)
		if len(neighbors) != 1 {
			return false
		}
		other := neighbors[0]
		otherStart := distance(x, y, other, true) <= distance(x, y, other, false)

		// Remove both before the merge moves their end points.
		tree.removePath(path)
		tree.removePath(other)
		mergePaths(path, start, other, otherStart)
		tree.addPath(path)
		merges++
		return true
	}

	for _, path := range paths {
		for len(path.DrawTo) > 0 && (tryMerge(path, true) || tryMerge(path, false)) {
		}
	}

	joined := paths[:0:0]
	for _, path := range paths {
		if len(path.DrawTo) > 0 {
			joined = append(joined, path)
		}
	}
	return joined, merges
}

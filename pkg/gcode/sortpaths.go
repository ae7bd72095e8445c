package gcode

import (
	"penplot/pkg/svgpath"
)

// sortPaths orders paths to keep pen up travel short: starting at x, y it
// repeatedly draws the nearest remaining path, reversed when its end is the
// nearer point. It returns the new order and the total travel distance.
func sortPaths(paths []*svgpath.SubPath, x, y float64) ([]*svgpath.SubPath, float64) {
	if len(paths) == 0 {
		return nil, 0
	}
	tree := newPathTree(pathBounds(paths))
	for _, path := range paths {
		tree.addPath(path)
	}

	sorted := make([]*svgpath.SubPath, 0, len(paths))
	done := map[*svgpath.SubPath]bool{}
	travel := 0.0
	for {
		nearest := tree.findNearest(x, y)
		if nearest == nil || done[nearest] {
			break
		}
		tree.removePath(nearest)
		done[nearest] = true

		var d float64
		if end := distance(x, y, nearest, false); end < distance(x, y, nearest, true) {
			d = end
			nearest = nearest.Reverse()
		} else {
			d = distance(x, y, nearest, true)
		}
		travel += d
		x, y = nearest.EndPoint()
		sorted = append(sorted, nearest)
	}

	// Anything the tree could not hold keeps its original order.
	for _, path := range paths {
		if !done[path] {
			sorted = append(sorted, path)
		}
	}
	return sorted, travel
}

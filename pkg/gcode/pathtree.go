package gcode

import (
	"math"
	"sort"

	"github.com/asim/quadtree"

	"penplot/pkg/svgpath"
)

var zeroPoint = quadtree.NewPoint(0, 0, nil)

// pathTree indexes the start and end points of sub paths so the path
// nearest to the pen can be found quickly.
type pathTree struct {
	quadTree *quadtree.QuadTree
	width    float64
	height   float64

	// Insertion order, so ties between equally near paths break the same
	// way on every run.
	order map[*svgpath.SubPath]int
}

type bounds struct {
	minX, minY, maxX, maxY float64
}

// pathBounds returns the box around the start and end points of paths.
func pathBounds(paths []*svgpath.SubPath) bounds {
	b := bounds{
		minX: math.Inf(1),
		minY: math.Inf(1),
		maxX: math.Inf(-1),
		maxY: math.Inf(-1),
	}
	add := func(x, y float64) {
		b.minX = math.Min(b.minX, x)
		b.maxX = math.Max(b.maxX, x)
		b.minY = math.Min(b.minY, y)
		b.maxY = math.Max(b.maxY, y)
	}
	for _, path := range paths {
		add(path.StartPoint())
		add(path.EndPoint())
	}
	return b
}

func newPathTree(b bounds) *pathTree {
	midX := (b.maxX + b.minX) / 2
	midY := (b.maxY + b.minY) / 2
	halfWidth := b.maxX - midX
	halfHeight := b.maxY - midY

	// Add a small margin to avoid dropping objects at the edges
	halfWidth += 10
	halfHeight += 10

	aabb := quadtree.NewAABB(
		quadtree.NewPoint(midX, midY, nil),
		quadtree.NewPoint(halfWidth, halfHeight, nil))
	return &pathTree{
		quadTree: quadtree.New(aabb, 0, nil),
		width:    halfWidth * 2,
		height:   halfHeight * 2,
		order:    map[*svgpath.SubPath]int{},
	}
}

func (t *pathTree) addPath(path *svgpath.SubPath) {
	if len(path.DrawTo) == 0 {
		return
	}
	t.order[path] = len(t.order)

	addOne := func(x, y float64) {
		point := quadtree.NewPoint(x, y, nil)
		points := t.quadTree.KNearest(quadtree.NewAABB(point, zeroPoint), 1, nil)
		if len(points) > 0 {
			pointX, pointY := points[0].Coordinates()
			if pointX == x && pointY == y {
				// Add the path to the existing list
				paths := points[0].Data().(map[*svgpath.SubPath]struct{})
				paths[path] = struct{}{}
				return
			}
		}
		paths := map[*svgpath.SubPath]struct{}{path: {}}
		t.quadTree.Insert(quadtree.NewPoint(x, y, paths))
	}

	addOne(path.StartPoint())
	addOne(path.EndPoint())
}

func (t *pathTree) removePath(path *svgpath.SubPath) {
	removeOne := func(x, y float64) {
		point := quadtree.NewPoint(x, y, nil)
		points := t.quadTree.KNearest(quadtree.NewAABB(point, zeroPoint), 1, nil)
		if len(points) > 0 {
			pointX, pointY := points[0].Coordinates()
			if pointX == x && pointY == y {
				paths := points[0].Data().(map[*svgpath.SubPath]struct{})
				delete(paths, path)
				if len(paths) == 0 {
					t.quadTree.Remove(points[0])
				}
			}
		}
	}
	removeOne(path.StartPoint())
	removeOne(path.EndPoint())
}

// search returns the paths with an end point inside the square of half
// size r around x, y.
func (t *pathTree) search(x, y, r float64) []*svgpath.SubPath {
	aabb := quadtree.NewAABB(
		quadtree.NewPoint(x, y, nil),
		quadtree.NewPoint(r, r, nil),
	)
	seen := map[*svgpath.SubPath]struct{}{}
	var found []*svgpath.SubPath
	for _, point := range t.quadTree.Search(aabb) {
		for path := range point.Data().(map[*svgpath.SubPath]struct{}) {
			if _, ok := seen[path]; !ok {
				seen[path] = struct{}{}
				found = append(found, path)
			}
		}
	}
	return found
}

// findNeighbors returns the paths other than path with an end point within
// maxDist of x, y, sorted by distance.
func (t *pathTree) findNeighbors(path *svgpath.SubPath, x, y, maxDist float64) []*svgpath.SubPath {
	nearestDistance := func(other *svgpath.SubPath) float64 {
		return math.Min(distance(x, y, other, true), distance(x, y, other, false))
	}
	var neighbors []*svgpath.SubPath
	for _, other := range t.search(x, y, maxDist) {
		if other != path && nearestDistance(other) <= maxDist {
			neighbors = append(neighbors, other)
		}
	}
	sort.Slice(neighbors, func(i, j int) bool {
		di := nearestDistance(neighbors[i])
		dj := nearestDistance(neighbors[j])
		if di != dj {
			return di < dj
		}
		return t.order[neighbors[i]] < t.order[neighbors[j]]
	})
	return neighbors
}

// findNearest returns the path with the end point nearest to x, y, or nil
// when the tree is empty. The search square grows until it holds a
// candidate, then is widened once to the candidate's distance so that no
// nearer path outside the square can be missed.
func (t *pathTree) findNearest(x, y float64) *svgpath.SubPath {
	limit := 2 * (t.width + t.height + math.Abs(x) + math.Abs(y))
	r := math.Max(t.width, t.height) / 64
	var candidates []*svgpath.SubPath
	for ; r <= limit; r *= 2 {
		candidates = t.search(x, y, r)
		if len(candidates) > 0 {
			break
		}
	}
	if len(candidates) == 0 {
		return nil
	}

	nearestDistance := func(path *svgpath.SubPath) float64 {
		return math.Min(distance(x, y, path, true), distance(x, y, path, false))
	}
	best := math.Inf(1)
	for _, path := range candidates {
		best = math.Min(best, nearestDistance(path))
	}
	if best > r {
		candidates = t.search(x, y, best)
	}

	sort.Slice(candidates, func(i, j int) bool {
		di := nearestDistance(candidates[i])
		dj := nearestDistance(candidates[j])
		if di != dj {
			return di < dj
		}
		return t.order[candidates[i]] < t.order[candidates[j]]
	})
	return candidates[0]
}

func distance(x, y float64, path *svgpath.SubPath, fromStart bool) float64 {
	var px, py float64
	if fromStart {
		px, py = path.StartPoint()
	} else {
		px, py = path.EndPoint()
	}
	return math.Hypot(px-x, py-y)
}

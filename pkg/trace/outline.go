package trace

import "penplot/pkg/geometry"

type vertex struct {
	X, Y int
}

type direction struct {
	dx, dy int
}

// right turns d clockwise on screen, taking (1, 0) to (0, 1).
func (d direction) right() direction {
	return direction{-d.dy, d.dx}
}

func (d direction) left() direction {
	return direction{d.dy, -d.dx}
}

func (v vertex) step(d direction) vertex {
	return vertex{v.X + d.dx, v.Y + d.dy}
}

// edge is a unit step along a pixel boundary with foreground on its right.
type edge struct {
	from vertex
	dir  direction
	used bool
}

// edgeFinder collects the boundary edges of each foreground run.
type edgeFinder struct {
	bm    *bitmap
	edges []edge
	out   map[vertex][]int
}

func (f *edgeFinder) add(from vertex, dir direction) {
	f.out[from] = append(f.out[from], len(f.edges))
	f.edges = append(f.edges, edge{from: from, dir: dir})
}

func (f *edgeFinder) addRun(y, x1, x2 int) {
	for x := x1; x < x2; x++ {
		if !f.bm.at(x, y-1) {
			f.add(vertex{x, y}, direction{1, 0})
		}
		if x == x2-1 {
			f.add(vertex{x + 1, y}, direction{0, 1})
		}
		if !f.bm.at(x, y+1) {
			f.add(vertex{x + 1, y + 1}, direction{-1, 0})
		}
		if x == x1 {
			f.add(vertex{x, y + 1}, direction{0, -1})
		}
	}
}

// next picks the edge leaving v after arriving along d. Where two
// foreground pixels touch only at v the right turn wins, so diagonal
// neighbours end up in separate outlines.
func (f *edgeFinder) next(v vertex, d direction) int {
	candidates := f.out[v]
	for _, want := range []direction{d.right(), d, d.left()} {
		for _, e := range candidates {
			if f.edges[e].dir == want {
				return e
			}
		}
	}
	return -1
}

// findOutlines links the boundary edges of bm into closed outlines, each
// given as the lattice points it visits. Outlines are ordered by their
// first edge in scan order.
func findOutlines(bm *bitmap) []geometry.Polyline {
	f := &edgeFinder{bm: bm, out: make(map[vertex][]int)}
	findRuns(bm, f)

	var outlines []geometry.Polyline
	for start := range f.edges {
		if f.edges[start].used {
			continue
		}
		var outline geometry.Polyline
		e := start
		for {
			f.edges[e].used = true
			from := f.edges[e].from
			outline = append(outline, geometry.Point{X: float64(from.X), Y: float64(from.Y)})
			e = f.next(from.step(f.edges[e].dir), f.edges[e].dir)
			if e < 0 || e == start || f.edges[e].used {
				break
			}
		}
		outlines = append(outlines, outline)
	}
	return outlines
}

// corners keeps the points of a lattice outline where it changes direction.
func corners(outline geometry.Polyline) geometry.Polyline {
	n := len(outline)
	dir := func(i int) geometry.Vector2 {
		return outline[(i+1)%n].Minus(outline[i])
	}
	var result geometry.Polyline
	for i := range outline {
		if dir((i+n-1)%n) != dir(i) {
			result = append(result, outline[i])
		}
	}
	return result
}

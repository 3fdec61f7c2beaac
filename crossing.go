package vector

import (
	"fmt"
	"sort"
	"strings"
)

// crossing is a location where line A and line B intersect. For each line it holds the segment index and the squared distance from the segment's start vertex. Overlap is set when the crossing is an end of a collinear overlap.
type crossing struct {
	Point
	seg     [2]int
	dist    [2]float64
	overlap bool
}

func (z crossing) String() string {
	overlap := ""
	if z.overlap {
		overlap = " overlap"
	}
	return fmt.Sprintf("pos={%g,%g} seg={%d,%d} dist={%g,%g}%s", z.X, z.Y, z.seg[0], z.seg[1], z.dist[0], z.dist[1], overlap)
}

type crossings []crossing

func (zs crossings) String() string {
	sb := strings.Builder{}
	for i, z := range zs {
		fmt.Fprintf(&sb, "%v %v\n", i, z)
	}
	return sb.String()
}

// SortFor sorts the crossings along line (0 is A, 1 is B), by segment and then by distance along the segment.
func (zs crossings) SortFor(line int) {
	sort.Stable(crossingSort{zs, line})
}

// sort crossings along one of the lines
type crossingSort struct {
	zs   crossings
	line int
}

func (a crossingSort) Len() int {
	return len(a.zs)
}

func (a crossingSort) Swap(i, j int) {
	a.zs[i], a.zs[j] = a.zs[j], a.zs[i]
}

func (a crossingSort) Less(i, j int) bool {
	zi, zj := a.zs[i], a.zs[j]
	if zi.seg[a.line] != zj.seg[a.line] {
		return zi.seg[a.line] < zj.seg[a.line]
	}
	return zi.dist[a.line] < zj.dist[a.line]
}

// vertexOf returns the index of the vertex of segment seg that coincides exactly with p, or -1.
func vertexOf(coords []Point, seg int, p Point) int {
	if p.same2D(coords[seg]) {
		return seg
	} else if p.same2D(coords[seg+1]) {
		return seg + 1
	}
	return -1
}

// coincide returns true if vertices from through to are all at the same location.
func coincide(coords []Point, from, to int) bool {
	for v := from + 1; v <= to; v++ {
		if !coords[v].same2D(coords[from]) {
			return false
		}
	}
	return true
}

// firstVertex returns true if p is the first vertex of coords and the start of segment seg, ie. only repeated first vertices precede seg.
func firstVertex(coords []Point, seg int, p Point) bool {
	return p.same2D(coords[0]) && coincide(coords, 0, seg)
}

// lastVertex returns true if p is the last vertex of coords and the end of segment seg.
func lastVertex(coords []Point, seg int, p Point) bool {
	return p.same2D(coords[len(coords)-1]) && coincide(coords, seg+1, len(coords)-1)
}

// consolidate returns the breaks along line (0 is A, 1 is B), sorted and cleaned of breaks that would not cut the line. The crossings are reordered in place. This and other are the coordinates of the line being broken and of the line it intersects with, which are the same in self-intersection mode.
func (zs crossings) consolidate(line int, this, other []Point) crossings {
	zs.SortFor(line)
	if debugging() {
		for i, z := range zs {
			Logger().Debug("raw break", "line", line, "index", i, "crossing", z)
		}
	}

	alive := make([]bool, len(zs))
	for i := range alive {
		alive[i] = true
	}

	// breaks on the first or last vertex do not cut
	n := len(this)
	for i, z := range zs {
		if firstVertex(this, z.seg[line], z.Point) || lastVertex(this, z.seg[line], z.Point) {
			alive[i] = false
			Logger().Debug("break removed at first/last vertex", "line", line, "index", i)
		}
	}

	// The remaining steps compare against the segments of the other line, a single point has none.
	m := len(other)
	if m < 2 {
		return zs.merge(line, this, alive)
	}

	// Breaks on a vertex of both lines are removed when the previous and next vertices are identical on both lines, ie. both lines run through the vertex together. Example with A and B overlapping (+ is a vertex of both):
	//
	//    A,B ---- + ---- A,B
	//
	// Such breaks must be removed before removing duplicates, otherwise some breaks may be lost.
	for i, z := range zs {
		if !alive[i] {
			continue
		}
		v1 := vertexOf(this, z.seg[line], z.Point)
		if v1 <= 0 || n-1 <= v1 {
			continue
		}
		v2 := vertexOf(other, z.seg[1-line], z.Point)
		if v2 <= 0 || m-1 <= v2 {
			continue // not a vertex or first/last vertex of the other line
		}
		prev1, next1 := this[v1-1], this[v1+1]
		prev2, next2 := other[v2-1], other[v2+1]
		if prev1.same2D(prev2) && next1.same2D(next2) || prev1.same2D(next2) && next1.same2D(prev2) {
			alive[i] = false
			Logger().Debug("break removed between shared segments", "line", line, "index", i)
		}
	}

	breaks := zs.merge(line, this, alive)
	alive = alive[:len(breaks)]
	for i := range alive {
		alive[i] = true
	}

	// A single point touch on an existing vertex of this line where the other line starts or ends has nothing to cut: the vertex already exists and the lines do not cross.
	for i, z := range breaks {
		if !alive[i] || z.overlap {
			continue
		} else if vertexOf(this, z.seg[line], z.Point) == -1 {
			continue
		} else if z.same2D(other[0]) || z.same2D(other[m-1]) {
			alive[i] = false
			Logger().Debug("break removed as vertex touch", "line", line, "index", i)
		}
	}

	return breaks.filter(alive)
}

// merge merges identical breaks and returns the breaks that remain alive. Breaks with identical coordinates may still be distant when measured along the line and are kept, eg. when B runs up along b0 and down along b1 crossing A twice at the same point:
//
//	     |
//	A ---+--- A
//	     | b1
//	     | b0
//
// A break at the end of a segment and one at the start of the next non-degenerate segment are the same break.
func (zs crossings) merge(line int, this []Point, alive []bool) crossings {
	last := -1
	for i, z := range zs {
		if !alive[i] {
			continue
		} else if last == -1 {
			last = i
			continue
		}
		zl := zs[last]
		if z.seg[line] == zl.seg[line] && z.dist[line] == zl.dist[line] ||
			zl.seg[line] < z.seg[line] && z.dist[line] == 0.0 && z.same2D(zl.Point) && coincide(this, zl.seg[line]+1, z.seg[line]) {
			alive[i] = false
			zs[last].overlap = zl.overlap || z.overlap
			Logger().Debug("break removed as duplicate", "line", line, "index", i, "of", last)
		} else {
			last = i
		}
	}
	return zs.filter(alive)
}

func (zs crossings) filter(alive []bool) crossings {
	breaks := crossings{}
	for i, z := range zs {
		if alive[i] {
			breaks = append(breaks, z)
		}
	}
	return breaks
}

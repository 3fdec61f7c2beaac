package vector

import "math"

// breakZ returns the z value of break z on segment seg of coords. Breaks on a vertex take the vertex's z, flat segments keep their z, and otherwise z is interpolated linearly along the segment when withZ is set.
func breakZ(coords []Point, z crossing, line int, withZ bool) float64 {
	seg := z.seg[line]
	p0, p1 := coords[seg], coords[seg+1]
	if z.same2D(p0) {
		return p0.Z
	} else if z.same2D(p1) {
		return p1.Z
	} else if p0.Z == p1.Z {
		return p0.Z
	} else if !withZ {
		return 0.0
	}
	l2 := dist2(p0, p1)
	if l2 == 0.0 {
		return p0.Z
	}
	t := math.Sqrt(z.dist[line]) / math.Sqrt(l2)
	return p0.Z + t*(p1.Z-p0.Z)
}

// splitLine cuts the line at the consolidated breaks zs and returns the children in order along the line. Children that are degenerate are dropped. Without breaks, a copy of the line is returned unless it is degenerate.
func splitLine(coords []Point, zs crossings, line int, withZ bool) []*Polyline {
	children := []*Polyline{}
	emit := func(child []Point) {
		if degenerate(child, withZ) {
			Logger().Debug("degenerate child dropped", "line", line, "coords", len(child))
			return
		}
		children = append(children, &Polyline{child})
	}

	// copy vertices from..to into child, leading vertices are skipped when they coincide with the break that started the child
	copyVertices := func(child []Point, from, to int, afterBreak bool) []Point {
		for v := from; v <= to; v++ {
			if afterBreak && len(child) == 1 && coords[v].same2D(child[0]) {
				continue
			}
			child = append(child, coords[v])
		}
		return child
	}

	child := []Point{coords[0]}
	next, afterBreak := 1, false
	for _, z := range zs {
		seg := z.seg[line]
		child = copyVertices(child, next, seg, afterBreak)

		p := z.Point
		p.Z = breakZ(coords, z, line, withZ)
		if !p.same2D(child[len(child)-1]) {
			child = append(child, p)
		}
		emit(child)

		child = []Point{p}
		next, afterBreak = max(next, seg+1), true
	}
	child = copyVertices(child, next, len(coords)-1, afterBreak)
	emit(child)
	return children
}

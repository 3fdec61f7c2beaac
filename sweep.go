package vector

// sweep is the context of a single intersection call. It holds the coordinates of line A and B (the same slice in self-intersection mode) and the region in which both may intersect. It is not shared between calls.
type sweep struct {
	lines [2][]Point
	self  bool
	withZ bool
	box   Box
	group []int // self-intersection mode, see vertexGroups
}

func newSweep(a, b []Point, self, withZ bool, box Box) *sweep {
	s := &sweep{
		lines: [2][]Point{a, b},
		self:  self,
		withZ: withZ,
		box:   box,
	}
	if self {
		s.group = vertexGroups(a, withZ)
	}
	return s
}

// vertexGroups numbers the runs of consecutive coinciding vertices, so that group[i] == group[j] for i < j when vertices i through j are the same location.
func vertexGroups(coords []Point, withZ bool) []int {
	group := make([]int, len(coords))
	for i := 1; i < len(coords); i++ {
		group[i] = group[i-1]
		if !coords[i].same(coords[i-1], withZ) {
			group[i]++
		}
	}
	return group
}

// left returns the left endpoint of segment seg on line, as used for the sweep status key.
func (s *sweep) left(line, seg int) Point {
	a, b := s.lines[line][seg], s.lines[line][seg+1]
	if lessXYZ(b, a) {
		return b
	}
	return a
}

// events returns the queue of start and end events of all non-degenerate segments that overlap the working region.
func (s *sweep) events() sweepEvents {
	queue := sweepEvents{}
	n := 2
	if s.self {
		n = 1
	}
	for line := 0; line < n; line++ {
		coords := s.lines[line]
		for i := 0; i+1 < len(coords); i++ {
			a, b := coords[i], coords[i+1]
			if a.same(b, s.withZ) {
				continue // zero-length segment
			} else if !segmentBox(a, b).Overlaps(s.box, s.withZ) {
				continue
			}
			queue.addSegment(line, i, a, b)
		}
	}
	queue.Init()
	return queue
}

// run sweeps from left to right and calls visit for each pair of segments, one of line A and one of line B, whose x-extents overlap. In self-intersection mode all pairs of different segments are visited. It stops when visit returns false.
func (s *sweep) run(visit func(segA, segB int) bool) {
	// This is not the original Bentley-Ottmann algorithm: crossings are not inserted as events, instead each segment is tested against all active segments of the other line when it starts.
	queue := s.events()
	status := newSweepStatus()
	for 0 < len(queue) {
		event := queue.Pop()
		cur := activeSegment{left: s.left(event.line, event.seg), line: event.line, seg: event.seg}
		if event.kind == segmentEnds {
			status.Remove(cur)
			continue
		}

		stop := false
		status.Ascend(func(other activeSegment) bool {
			if !s.self && other.line == event.line {
				return true
			}
			segA, segB := event.seg, other.seg
			if event.line == 1 {
				segA, segB = other.seg, event.seg
			}
			if !visit(segA, segB) {
				stop = true
				return false
			}
			return true
		})
		if stop {
			return
		}
		status.Insert(cur)
	}
}

// adjacent returns true in self-intersection mode when both segments share a vertex by construction, either consecutive segments or the first and last segment of a closed line. Zero-length segments in between are skipped, so repeated vertices do not separate neighbours.
func (s *sweep) adjacent(segA, segB int) bool {
	if !s.self {
		return false
	}
	if segB < segA {
		segA, segB = segB, segA
	}
	if s.group[segA+1] == s.group[segB] {
		return true
	}
	coords := s.lines[0]
	n := len(coords)
	return s.group[segA] == 0 && s.group[segB+1] == s.group[n-1] && coords[0].same(coords[n-1], s.withZ)
}

// intersect intersects segment segA of line A with segment segB of line B. Adjacent segments in self-intersection mode always touch at their shared vertex, which is not reported, only their overlaps are.
func (s *sweep) intersect(segA, segB int) (segmentRelation, Point, Point) {
	a, b := s.lines[0], s.lines[1]
	rel, p0, p1 := intersectSegments(a[segA], a[segA+1], b[segB], b[segB+1])
	if rel == segmentsCross && s.adjacent(segA, segB) {
		return segmentsDisjoint, Point{}, Point{}
	}
	if rel != segmentsDisjoint {
		Logger().Debug("segments intersect", "segA", segA, "segB", segB, "relation", rel, "p0", p0, "p1", p1)
	}
	return rel, p0, p1
}

// crossings collects all crossings between line A and B.
func (s *sweep) crossings() crossings {
	zs := crossings{}
	s.run(func(segA, segB int) bool {
		rel, p0, p1 := s.intersect(segA, segB)
		if rel == segmentsDisjoint {
			return true
		}
		zs = s.addCrossing(zs, segA, segB, p0, rel.overlaps())
		if rel != segmentsCross {
			zs = s.addCrossing(zs, segA, segB, p1, rel.overlaps())
		}
		return true
	})
	return zs
}

// addCrossing snaps p and adds it as a crossing. In self-intersection mode it is added a second time with the roles of both segments exchanged, since both segments are on the line that is being split.
func (s *sweep) addCrossing(zs crossings, segA, segB int, p Point, overlap bool) crossings {
	p, distA, distB := s.snapCrossing(segA, segB, p)
	zs = append(zs, crossing{
		Point:   p,
		seg:     [2]int{segA, segB},
		dist:    [2]float64{distA, distB},
		overlap: overlap,
	})
	if s.self {
		zs = append(zs, crossing{
			Point:   p,
			seg:     [2]int{segB, segA},
			dist:    [2]float64{distB, distA},
			overlap: overlap,
		})
	}
	return zs
}

// contact returns whether line A and B cross or only touch at their first or last vertex. It stops at the first crossing.
func (s *sweep) contact() Contact {
	contact := NoContact
	s.run(func(segA, segB int) bool {
		rel, p, _ := s.intersect(segA, segB)
		if rel == segmentsDisjoint {
			return true
		} else if rel == segmentsCross {
			p, _, _ = s.snapCrossing(segA, segB, p)
			if s.endpoint(segA, segB, p) {
				contact = Touching
				return true
			}
		}
		contact = Crossing
		return false
	})
	return contact
}

// endpoint returns true if p is the first or last vertex of line A or B, and that vertex belongs to segment segA or segB respectively.
func (s *sweep) endpoint(segA, segB int, p Point) bool {
	a, b := s.lines[0], s.lines[1]
	return firstVertex(a, segA, p) || lastVertex(a, segA, p) || firstVertex(b, segB, p) || lastVertex(b, segB, p)
}

// points returns all intersection points between line A and B in the order they were found, without duplicates.
func (s *sweep) points() []Point {
	ps := []Point{}
	add := func(p Point) {
		for _, q := range ps {
			if q.same2D(p) {
				return
			}
		}
		ps = append(ps, p)
	}
	s.run(func(segA, segB int) bool {
		rel, p0, p1 := s.intersect(segA, segB)
		if rel == segmentsDisjoint {
			return true
		}
		p0, _, _ = s.snapCrossing(segA, segB, p0)
		add(p0)
		if rel != segmentsCross {
			p1, _, _ = s.snapCrossing(segA, segB, p1)
			add(p1)
		}
		return true
	})
	return ps
}

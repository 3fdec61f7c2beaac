package vector

import (
	"fmt"
	"io"
	"strings"
)

type eventKind int

const (
	segmentStarts eventKind = iota
	segmentEnds
)

func (v eventKind) String() string {
	if v == segmentStarts {
		return "Starts"
	}
	return "Ends"
}

// sweepEvent is an endpoint of segment seg on line (0 is A, 1 is B). Point is the vertex, copied so that events can be ordered without access to the polylines.
type sweepEvent struct {
	Point
	line, seg int
	kind      eventKind
}

func (e sweepEvent) String() string {
	path := "A"
	if e.line == 1 {
		path = "B"
	}
	return fmt.Sprintf("%s%d %v %v", path, e.seg, e.kind, e.Point)
}

// Less orders events from left to right, then bottom to top, then by z. At equal positions segments start before others end, so that segments touching at a vertex are both active at the same time. The remaining ties are broken by line and segment to make the order, and thus the result, deterministic.
func (e sweepEvent) Less(o sweepEvent) bool {
	if e.X != o.X {
		return e.X < o.X
	} else if e.Y != o.Y {
		return e.Y < o.Y
	} else if e.Z != o.Z {
		return e.Z < o.Z
	} else if e.kind != o.kind {
		return e.kind < o.kind
	} else if e.line != o.line {
		return e.line < o.line
	}
	return e.seg < o.seg
}

// sweepEvents is a heap priority queue of sweep events.
type sweepEvents []sweepEvent

func (q sweepEvents) Less(i, j int) bool {
	return q[i].Less(q[j])
}

func (q sweepEvents) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
}

// addSegment adds the start and end events of segment seg from a to b, a and b are ordered from left to right.
func (q *sweepEvents) addSegment(line, seg int, a, b Point) {
	if lessXYZ(b, a) {
		a, b = b, a
	}
	*q = append(*q,
		sweepEvent{Point: a, line: line, seg: seg, kind: segmentStarts},
		sweepEvent{Point: b, line: line, seg: seg, kind: segmentEnds},
	)
}

func (q sweepEvents) Init() {
	n := len(q)
	for i := n/2 - 1; 0 <= i; i-- {
		q.down(i, n)
	}
}

func (q *sweepEvents) Pop() sweepEvent {
	n := len(*q) - 1
	q.Swap(0, n)
	q.down(0, n)

	item := (*q)[n]
	*q = (*q)[:n]
	return item
}

// from container/heap
func (q sweepEvents) down(i0, n int) {
	i := i0
	for {
		j1 := 2*i + 1
		if n <= j1 || j1 < 0 { // j1 < 0 after int overflow
			break
		}
		j := j1 // left child
		if j2 := j1 + 1; j2 < n && q.Less(j2, j1) {
			j = j2 // = 2*i + 2  // right child
		}
		if !q.Less(j, i) {
			break
		}
		q.Swap(i, j)
		i = j
	}
}

func (q sweepEvents) Print(w io.Writer) {
	q2 := make(sweepEvents, len(q))
	copy(q2, q)
	q2.Init()
	for i := 0; 0 < len(q2); i++ {
		fmt.Fprintln(w, i, q2.Pop())
	}
}

func (q sweepEvents) String() string {
	sb := strings.Builder{}
	q.Print(&sb)
	return strings.TrimSuffix(sb.String(), "\n")
}

// lessXYZ orders points by x, then y, then z.
func lessXYZ(p, q Point) bool {
	if p.X != q.X {
		return p.X < q.X
	} else if p.Y != q.Y {
		return p.Y < q.Y
	}
	return p.Z < q.Z
}

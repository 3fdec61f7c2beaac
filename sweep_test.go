package vector

import (
	"fmt"
	"sort"
	"testing"

	"github.com/tdewolff/test"
)

func TestSweepEvents(t *testing.T) {
	queue := sweepEvents{}
	queue.addSegment(0, 0, Point{0, 0, 0}, Point{10, 0, 0})
	queue.addSegment(1, 0, Point{5, 5, 0}, Point{0, 5, 0})
	queue.addSegment(1, 1, Point{5, 5, 0}, Point{10, 5, 0})
	queue.Init()

	events := []string{}
	for 0 < len(queue) {
		events = append(events, queue.Pop().String())
	}
	test.T(t, events, []string{
		"A0 Starts [0; 0; 0]",
		"B0 Starts [0; 5; 0]",
		"B1 Starts [5; 5; 0]",
		"B0 Ends [5; 5; 0]",
		"A0 Ends [10; 0; 0]",
		"B1 Ends [10; 5; 0]",
	})
}

func TestSweepEventsInit(t *testing.T) {
	queue := sweepEvents{}
	for i := 5; 0 <= i; i-- {
		queue = append(queue, sweepEvent{Point: Point{float64(i % 3), float64(i), 0}, seg: i})
	}
	queue.Init()
	segs := []int{}
	for 0 < len(queue) {
		segs = append(segs, queue.Pop().seg)
	}
	test.T(t, segs, []int{0, 3, 1, 4, 2, 5})
}

func TestSweepStatus(t *testing.T) {
	status := newSweepStatus()
	status.Insert(activeSegment{Point{0, 5, 0}, 1, 0})
	status.Insert(activeSegment{Point{0, 0, 0}, 0, 0})
	status.Insert(activeSegment{Point{0, 5, 0}, 0, 2})
	test.T(t, status.Len(), 3)
	test.T(t, status.String(), "A0[0; 0; 0] A2[0; 5; 0] B0[0; 5; 0]")

	status.Remove(activeSegment{Point{0, 5, 0}, 0, 2})
	test.T(t, status.String(), "A0[0; 0; 0] B0[0; 5; 0]")

	defer func() {
		test.That(t, recover() != nil, "must panic when removing a segment that is not active")
	}()
	status.Remove(activeSegment{Point{0, 5, 0}, 0, 2})
}

func TestSweepPairs(t *testing.T) {
	var tts = []struct {
		a, b  string
		self  bool
		pairs []string
	}{
		{"0 0, 10 10", "0 10, 10 0", false, []string{"0-0"}},
		{"0 0, 1 0", "5 0, 6 0", false, []string{}},
		{"0 0, 10 0, 20 0", "5 5, 15 5", false, []string{"0-0", "1-0"}},
		{"0 0, 10 0, 10 0, 20 0", "5 5, 15 5", false, []string{"0-0", "2-0"}}, // zero-length segment skipped
		{"0 0, 10 10, 0 10, 10 0", "", true, []string{"0-1", "0-2", "1-2"}},
		{"0 0, 5 5, 5 5, 10 10", "", true, []string{"0-2"}}, // zero-length segment skipped
	}
	for _, tt := range tts {
		t.Run(fmt.Sprint(tt.a, " x ", tt.b), func(t *testing.T) {
			a := MustParsePolyline(tt.a).Coords()
			b := a
			if !tt.self {
				b = MustParsePolyline(tt.b).Coords()
			}
			box := EmptyBox().Extend(Point{-100, -100, 0}).Extend(Point{100, 100, 0})
			s := newSweep(a, b, tt.self, false, box)
			pairs := []string{}
			s.run(func(segA, segB int) bool {
				if tt.self && segB < segA {
					segA, segB = segB, segA
				}
				pairs = append(pairs, fmt.Sprintf("%d-%d", segA, segB))
				return true
			})
			sort.Strings(pairs)
			test.T(t, pairs, tt.pairs)
		})
	}
}

func TestSweepAdjacent(t *testing.T) {
	var tts = []struct {
		line       string
		segA, segB int
		adjacent   bool
	}{
		{"0 0, 10 0, 10 10, 0 10", 0, 1, true},
		{"0 0, 10 0, 10 10, 0 10", 0, 2, false},
		{"0 0, 10 0, 10 10, 0 0", 0, 2, true},
		{"0 0, 5 5, 5 5, 10 10", 0, 2, true},
		{"0 0, 5 5, 5 5, 5 5, 10 10", 3, 0, true},
		{"0 0, 5 5, 0 5, 5 5, 10 10", 0, 3, false},
		{"0 0, 0 0, 10 0, 10 10, 0 0, 0 0", 1, 3, true},
	}
	for _, tt := range tts {
		t.Run(fmt.Sprint(tt.line, " ", tt.segA, "-", tt.segB), func(t *testing.T) {
			coords := MustParsePolyline(tt.line).Coords()
			s := newSweep(coords, coords, true, false, EmptyBox())
			test.T(t, s.adjacent(tt.segA, tt.segB), tt.adjacent)
		})
	}

	// two lines are never adjacent
	a := MustParsePolyline("0 0, 10 0").Coords()
	b := MustParsePolyline("10 0, 20 0").Coords()
	test.That(t, !newSweep(a, b, false, false, EmptyBox()).adjacent(0, 0))
}

func TestSweepBox(t *testing.T) {
	a := MustParsePolyline("0 0, 10 0, 20 0, 30 0").Coords()
	b := MustParsePolyline("0 1, 30 1").Coords()
	s := newSweep(a, b, false, false, Box{12, -1, 0, 18, 2, 0})
	pairs := []string{}
	s.run(func(segA, segB int) bool {
		pairs = append(pairs, fmt.Sprintf("%d-%d", segA, segB))
		return true
	})
	test.T(t, pairs, []string{"1-0"})
}

func TestSweepStop(t *testing.T) {
	a := MustParsePolyline("0 0, 10 0, 20 0").Coords()
	b := MustParsePolyline("0 1, 30 1").Coords()
	s := newSweep(a, b, false, false, EmptyBox().Extend(Point{-100, -100, 0}).Extend(Point{100, 100, 0}))
	n := 0
	s.run(func(segA, segB int) bool {
		n++
		return false
	})
	test.T(t, n, 1)
}

package vector

import (
	"fmt"
	"strings"

	"github.com/google/btree"
)

// activeSegment is a segment in the sweep status. It is keyed by its left endpoint, which is its position along the sweep line at the moment it was inserted. The order is only valid locally since segments may cross further to the right, which is exactly what we are detecting, but because keys never change the tree remains consistent.
type activeSegment struct {
	left      Point
	line, seg int
}

func (a activeSegment) String() string {
	path := "A"
	if a.line == 1 {
		path = "B"
	}
	return fmt.Sprintf("%s%d%v", path, a.seg, a.left)
}

func lessActive(a, b activeSegment) bool {
	if a.left.Y != b.left.Y {
		return a.left.Y < b.left.Y
	} else if a.left.X != b.left.X {
		return a.left.X < b.left.X
	} else if a.left.Z != b.left.Z {
		return a.left.Z < b.left.Z
	} else if a.line != b.line {
		return a.line < b.line
	}
	return a.seg < b.seg
}

// sweepStatus holds the segments currently crossed by the sweep line, ordered from bottom to top.
type sweepStatus struct {
	tree *btree.BTreeG[activeSegment]
}

func newSweepStatus() *sweepStatus {
	return &sweepStatus{
		tree: btree.NewG(8, lessActive),
	}
}

func (s *sweepStatus) Len() int {
	return s.tree.Len()
}

func (s *sweepStatus) Insert(a activeSegment) {
	if _, ok := s.tree.ReplaceOrInsert(a); ok {
		panic(fmt.Sprintf("bug: segment %v inserted twice in sweep status", a))
	}
}

func (s *sweepStatus) Remove(a activeSegment) {
	if _, ok := s.tree.Delete(a); !ok {
		panic(fmt.Sprintf("bug: segment %v not in sweep status", a))
	}
}

// Ascend calls f for each segment from bottom to top until f returns false.
func (s *sweepStatus) Ascend(f func(activeSegment) bool) {
	s.tree.Ascend(btree.ItemIteratorG[activeSegment](f))
}

func (s *sweepStatus) String() string {
	sb := strings.Builder{}
	s.Ascend(func(a activeSegment) bool {
		if sb.Len() != 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(a.String())
		return true
	})
	return sb.String()
}

package vector

import (
	"testing"

	"github.com/tdewolff/test"
)

func TestEqual(t *testing.T) {
	test.That(t, Equal(1.0, 1.0+Epsilon/2.0))
	test.That(t, !Equal(1.0, 1.0+2.0*Epsilon))
	test.That(t, Interval(5.0, 10.0, 0.0))
	test.That(t, Interval(-Epsilon/2.0, 0.0, 10.0))
	test.That(t, !Interval(11.0, 0.0, 10.0))
}

func TestPoint(t *testing.T) {
	p := Point{3.0, 4.0, 1.0}
	q := Point{1.0, 2.0, 3.0}
	test.T(t, p.Sub(q), Point{2.0, 2.0, -2.0})
	test.Float(t, p.Dot(q), 11.0)
	test.Float(t, p.PerpDot(q), 2.0)
	test.T(t, p.Interpolate(q, 0.5), Point{2.0, 3.0, 2.0})
	test.T(t, p.String(), "[3; 4; 1]")
	test.That(t, p.Equals(Point{3.0, 4.0 + Epsilon/2.0, 1.0}))

	test.That(t, p.same2D(Point{3.0, 4.0, 5.0}))
	test.That(t, p.same(Point{3.0, 4.0, 5.0}, false))
	test.That(t, !p.same(Point{3.0, 4.0, 5.0}, true))
	test.That(t, lessXY(Point{0.0, 5.0, 0.0}, Point{1.0, 0.0, 0.0}))
	test.That(t, lessXY(Point{1.0, 0.0, 0.0}, Point{1.0, 5.0, 0.0}))
	test.That(t, !lessXY(p, p))
	test.Float(t, dist2(p, q), 8.0)
}

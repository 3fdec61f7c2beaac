package vector

import (
	"testing"

	"github.com/tdewolff/test"
)

func TestOptions(t *testing.T) {
	o := newOptions(nil)
	test.That(t, !o.withZ)
	test.That(t, o.boxA == nil && o.boxB == nil)

	a := MustParsePolyline("0 0, 10 10")
	b := MustParsePolyline("5 0, 5 20")
	boxA, boxB := o.bounds(a, b)
	test.T(t, boxA, Box{0, 0, 0, 10, 10, 0})
	test.T(t, boxB, Box{5, 0, 0, 5, 20, 0})

	o = newOptions([]Option{WithZ(), WithBounds(Box{1, 2, 3, 4, 5, 6}, Box{})})
	test.That(t, o.withZ)
	boxA, boxB = o.bounds(a, b)
	test.T(t, boxA, Box{1, 2, 3, 4, 5, 6})
	test.T(t, boxB, Box{})
}

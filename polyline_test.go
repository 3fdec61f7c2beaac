package vector

import (
	"fmt"
	"testing"

	"github.com/tdewolff/test"
)

func TestPolyline(t *testing.T) {
	p := &Polyline{}
	test.That(t, p.Empty())
	test.T(t, p.Segments(), 0)
	p.Add(10, 0)
	p.AddZ(20, 10, 5)
	test.T(t, p.Len(), 2)
	test.T(t, p.Segments(), 1)
	test.T(t, p.Coords()[0], Point{10, 0, 0})
	test.T(t, p.Coords()[1], Point{20, 10, 5})
	test.T(t, p.Bounds(), Box{10, 0, 0, 20, 10, 5})
	test.T(t, p.String(), "10 0, 20 10 5")

	test.That(t, !p.Closed())
	test.That(t, !(&Polyline{}).Add(0, 0).Close().Closed())
	test.That(t, (&Polyline{}).Add(0, 0).Add(10, 0).Add(10, 10).Close().Closed())

	q := p.Copy()
	q.Add(30, 0)
	test.T(t, p.Len(), 2)
	test.That(t, !p.Equals(q))
	test.That(t, p.Equals(NewPolyline(Point{10, 0, 0}, Point{20, 10, 5})))
}

func TestPolylineDegenerate(t *testing.T) {
	test.That(t, (&Polyline{}).Degenerate(false))
	test.That(t, (&Polyline{}).Add(5, 5).Degenerate(false))
	test.That(t, (&Polyline{}).Add(5, 5).Add(5, 5).Degenerate(false))
	test.That(t, (&Polyline{}).AddZ(5, 5, 0).AddZ(5, 5, 1).Degenerate(false))
	test.That(t, !(&Polyline{}).AddZ(5, 5, 0).AddZ(5, 5, 1).Degenerate(true))
	test.That(t, !(&Polyline{}).Add(5, 5).Add(5, 5).Add(6, 5).Degenerate(false))
}

func TestParsePolyline(t *testing.T) {
	var tts = []struct {
		s      string
		coords []Point
	}{
		{"", nil},
		{"0 0, 10 0", []Point{{0, 0, 0}, {10, 0, 0}}},
		{"  0 0,10 0 ,\n10 10 5  ", []Point{{0, 0, 0}, {10, 0, 0}, {10, 10, 5}}},
		{"-1.5 2000, 0.5 -3", []Point{{-1.5, 2000, 0}, {0.5, -3, 0}}},
	}
	for _, tt := range tts {
		t.Run(tt.s, func(t *testing.T) {
			p, err := ParsePolyline(tt.s)
			test.Error(t, err)
			test.T(t, p.Len(), len(tt.coords))
			for i, coord := range tt.coords {
				test.T(t, p.Coords()[i], coord)
			}
		})
	}

	var errs = []string{
		"0",
		"0 0,",
		"0 0 0 0",
		"0 0; 1 1",
		"x y",
		"0 0,, 1 1",
	}
	for _, s := range errs {
		t.Run(fmt.Sprint("error ", s), func(t *testing.T) {
			_, err := ParsePolyline(s)
			test.That(t, err != nil)
		})
	}
}

func TestPolylineStringRoundtrip(t *testing.T) {
	p := MustParsePolyline("0 0, 10.5 0, 10 10 5")
	test.T(t, MustParsePolyline(p.String()).String(), p.String())
}

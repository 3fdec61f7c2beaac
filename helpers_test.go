package vector

import "math/rand/v2"

// RandomPolyline returns a polyline of n normally distributed points, closed if requested.
func RandomPolyline(n int, closed bool) *Polyline {
	p := &Polyline{}
	for i := 0; i < n; i++ {
		p.Add(rand.NormFloat64(), rand.NormFloat64())
	}
	if closed {
		p.Close()
	}
	return p
}

func polylineStrings(ps []*Polyline) []string {
	ss := []string{}
	for _, p := range ps {
		ss = append(ss, p.String())
	}
	return ss
}

package main

import (
	"fmt"

	vector "github.com/OSGeo/grass-sub020"
	"github.com/wroge/wgs84/v2"
)

type transformFunc func(x, y, z float64) (float64, float64, float64)

// projection reprojects input lines into the coordinate system in which they are intersected, and the results back. A nil projection leaves coordinates as they are.
type projection struct {
	forwardFunc, inverseFunc transformFunc
}

func newProjection(from, to int) (*projection, error) {
	if from == 0 && to == 0 || from == to {
		return nil, nil
	} else if from == 0 || to == 0 {
		return nil, fmt.Errorf("both --from and --to must be given")
	}

	crsFrom, crsTo := wgs84.EPSG(from), wgs84.EPSG(to)
	return &projection{
		forwardFunc: transformFunc(wgs84.Transform(crsFrom, crsTo)),
		inverseFunc: transformFunc(wgs84.Transform(crsTo, crsFrom)),
	}, nil
}

func transformPolyline(p *vector.Polyline, f transformFunc) *vector.Polyline {
	q := &vector.Polyline{}
	for _, coord := range p.Coords() {
		x, y, _ := f(coord.X, coord.Y, 0.0)
		q.AddZ(x, y, coord.Z)
	}
	return q
}

func (proj *projection) forward(p *vector.Polyline) *vector.Polyline {
	if proj == nil {
		return p
	}
	return transformPolyline(p, proj.forwardFunc)
}

func (proj *projection) inverseAll(ps []*vector.Polyline) []*vector.Polyline {
	if proj == nil {
		return ps
	}
	qs := make([]*vector.Polyline, 0, len(ps))
	for _, p := range ps {
		qs = append(qs, transformPolyline(p, proj.inverseFunc))
	}
	return qs
}

func (proj *projection) inversePoints(ps []vector.Point) []vector.Point {
	if proj == nil {
		return ps
	}
	qs := make([]vector.Point, 0, len(ps))
	for _, p := range ps {
		x, y, _ := proj.inverseFunc(p.X, p.Y, 0.0)
		qs = append(qs, vector.Point{X: x, Y: y, Z: p.Z})
	}
	return qs
}

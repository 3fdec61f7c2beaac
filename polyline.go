package vector

import (
	"errors"
	"strconv"
	"strings"
)

// ErrEmptyPolyline is returned when a polyline without any points is passed where at least one point is required.
var ErrEmptyPolyline = errors.New("empty polyline")

// Polyline defines an ordered list of points in 2D or 3D space. If the last coordinate equals the first coordinate, the polyline closes itself. Polylines passed to the intersection functions are only read.
type Polyline struct {
	coords []Point
}

// NewPolyline returns a polyline through the given points.
func NewPolyline(coords ...Point) *Polyline {
	return &Polyline{append([]Point(nil), coords...)}
}

// Empty returns true if the polyline has no points.
func (p *Polyline) Empty() bool {
	return len(p.coords) == 0
}

// Len returns the number of points.
func (p *Polyline) Len() int {
	return len(p.coords)
}

// Segments returns the number of segments, ie. pairs of consecutive points.
func (p *Polyline) Segments() int {
	if len(p.coords) < 2 {
		return 0
	}
	return len(p.coords) - 1
}

// Add adds a new 2D point to the polyline.
func (p *Polyline) Add(x, y float64) *Polyline {
	p.coords = append(p.coords, Point{x, y, 0.0})
	return p
}

// AddZ adds a new 3D point to the polyline.
func (p *Polyline) AddZ(x, y, z float64) *Polyline {
	p.coords = append(p.coords, Point{x, y, z})
	return p
}

// Close adds a new point equal to the first, closing the polyline.
func (p *Polyline) Close() *Polyline {
	if 0 < len(p.coords) {
		p.coords = append(p.coords, p.coords[0])
	}
	return p
}

// Closed returns true if the last point coincides exactly with the first.
func (p *Polyline) Closed() bool {
	return 2 < len(p.coords) && p.coords[0].same(p.coords[len(p.coords)-1], true)
}

// Coords returns the list of coordinates of the polyline.
func (p *Polyline) Coords() []Point {
	return p.coords
}

// Copy returns a deep copy of the polyline.
func (p *Polyline) Copy() *Polyline {
	return &Polyline{append([]Point(nil), p.coords...)}
}

// Bounds returns the bounding box of the polyline.
func (p *Polyline) Bounds() Box {
	b := EmptyBox()
	for _, coord := range p.coords {
		b = b.Extend(coord)
	}
	return b
}

// Degenerate returns true if the polyline has fewer than two distinct points. Z is only compared when withZ is set.
func (p *Polyline) Degenerate(withZ bool) bool {
	return degenerate(p.coords, withZ)
}

func degenerate(coords []Point, withZ bool) bool {
	for _, coord := range coords[min(1, len(coords)):] {
		if !coord.same(coords[0], withZ) {
			return false
		}
	}
	return true
}

// Equals returns true if both polylines have the same points with tolerance Epsilon.
func (p *Polyline) Equals(q *Polyline) bool {
	if len(p.coords) != len(q.coords) {
		return false
	}
	for i := range p.coords {
		if !p.coords[i].Equals(q.coords[i]) {
			return false
		}
	}
	return true
}

// String returns the points as a comma separated coordinate list, see ParsePolyline.
func (p *Polyline) String() string {
	sb := strings.Builder{}
	for i, coord := range p.coords {
		if i != 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(strconv.FormatFloat(coord.X, 'g', -1, 64))
		sb.WriteByte(' ')
		sb.WriteString(strconv.FormatFloat(coord.Y, 'g', -1, 64))
		if coord.Z != 0.0 {
			sb.WriteByte(' ')
			sb.WriteString(strconv.FormatFloat(coord.Z, 'g', -1, 64))
		}
	}
	return sb.String()
}

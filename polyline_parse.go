package vector

import (
	"fmt"

	"github.com/tdewolff/parse/v2/strconv"
)

func skipWhitespace(b []byte) int {
	i := 0
	for i < len(b) && (b[i] == ' ' || b[i] == '\n' || b[i] == '\r' || b[i] == '\t') {
		i++
	}
	return i
}

// ParsePolyline parses a list of points separated by commas, each point consisting of two or three whitespace separated numbers, eg. "0 0, 10 0, 10 10 5". This is the coordinate list of a WKT LINESTRING.
func ParsePolyline(s string) (*Polyline, error) {
	b := []byte(s)
	p := &Polyline{}

	i := skipWhitespace(b)
	for i < len(b) {
		var coord [3]float64
		n := 0
		for n < 3 {
			i += skipWhitespace(b[i:])
			if i == len(b) || b[i] == ',' {
				break
			}
			f, m := strconv.ParseFloat(b[i:])
			if m == 0 {
				return nil, fmt.Errorf("bad number at position %d: %q", i, b[i:])
			}
			coord[n] = f
			n++
			i += m
		}
		if n < 2 {
			return nil, fmt.Errorf("point %d has %d coordinates, expected 2 or 3", p.Len(), n)
		}
		p.coords = append(p.coords, Point{coord[0], coord[1], coord[2]})

		i += skipWhitespace(b[i:])
		if i < len(b) {
			if b[i] != ',' {
				return nil, fmt.Errorf("expected comma at position %d: %q", i, b[i:])
			}
			i++
			i += skipWhitespace(b[i:])
			if i == len(b) {
				return nil, fmt.Errorf("trailing comma")
			}
		}
	}
	return p, nil
}

// MustParsePolyline parses a coordinate list and panics on error.
func MustParsePolyline(s string) *Polyline {
	p, err := ParsePolyline(s)
	if err != nil {
		panic(err)
	}
	return p
}

package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	vector "github.com/OSGeo/grass-sub020"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/encoding/wkt"
	"github.com/paulmach/orb/geojson"
	"github.com/tdewolff/minify/v2"
)

type writer struct {
	format    string
	precision int
}

func newWriter(format string, precision int) (*writer, error) {
	switch format {
	case "geojson", "wkt", "text":
	default:
		return nil, fmt.Errorf("unknown output format %q", format)
	}
	return &writer{format, precision}, nil
}

// dec formats f with the number of decimals of the writer, and without superfluous zeros.
func (w *writer) dec(f float64) string {
	if w.precision < 0 {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	s := fmt.Sprintf("%.*f", w.precision, f)
	return string(minify.Decimal([]byte(s), w.precision))
}

// round rounds f to the number of decimals of the writer.
func (w *writer) round(f float64) float64 {
	if w.precision < 0 {
		return f
	}
	g, err := strconv.ParseFloat(w.dec(f), 64)
	if err != nil {
		return f
	}
	return g
}

func (w *writer) geometry(p *vector.Polyline) orb.Geometry {
	g := p.Geometry()
	switch g := g.(type) {
	case orb.Point:
		return orb.Point{w.round(g[0]), w.round(g[1])}
	case orb.LineString:
		for i := range g {
			g[i] = orb.Point{w.round(g[i][0]), w.round(g[i][1])}
		}
	}
	return g
}

func (w *writer) polyline(p *vector.Polyline) string {
	sb := strings.Builder{}
	for i, coord := range p.Coords() {
		if i != 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(w.point(coord))
	}
	return sb.String()
}

func (w *writer) point(p vector.Point) string {
	s := w.dec(p.X) + " " + w.dec(p.Y)
	if p.Z != 0.0 {
		s += " " + w.dec(p.Z)
	}
	return s
}

// writeLines writes the children of line A and B, the children of B are omitted in self-intersection mode.
func (w *writer) writeLines(out io.Writer, as, bs []*vector.Polyline) error {
	switch w.format {
	case "geojson":
		fc := geojson.NewFeatureCollection()
		for i, ps := range [][]*vector.Polyline{as, bs} {
			name := "a"
			if i == 1 {
				name = "b"
			}
			for _, p := range ps {
				f := geojson.NewFeature(w.geometry(p))
				f.Properties["line"] = name
				fc.Append(f)
			}
		}
		b, err := fc.MarshalJSON()
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(out, "%s\n", b)
		return err
	case "wkt":
		for _, ps := range [][]*vector.Polyline{as, bs} {
			for _, p := range ps {
				if _, err := fmt.Fprintln(out, wkt.MarshalString(w.geometry(p))); err != nil {
					return err
				}
			}
		}
		return nil
	}

	for _, ps := range [][]*vector.Polyline{as, bs} {
		for _, p := range ps {
			if _, err := fmt.Fprintln(out, w.polyline(p)); err != nil {
				return err
			}
		}
	}
	return nil
}

func (w *writer) writePoints(out io.Writer, ps []vector.Point) error {
	switch w.format {
	case "geojson":
		mp := orb.MultiPoint{}
		for _, p := range ps {
			mp = append(mp, orb.Point{w.round(p.X), w.round(p.Y)})
		}
		fc := geojson.NewFeatureCollection()
		fc.Append(geojson.NewFeature(mp))
		b, err := fc.MarshalJSON()
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(out, "%s\n", b)
		return err
	case "wkt":
		mp := orb.MultiPoint{}
		for _, p := range ps {
			mp = append(mp, orb.Point{w.round(p.X), w.round(p.Y)})
		}
		_, err := fmt.Fprintln(out, wkt.MarshalString(mp))
		return err
	}

	for _, p := range ps {
		if _, err := fmt.Fprintln(out, w.point(p)); err != nil {
			return err
		}
	}
	return nil
}

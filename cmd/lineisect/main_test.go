package main

import (
	"bytes"
	"math"
	"strings"
	"testing"

	vector "github.com/OSGeo/grass-sub020"
	"github.com/tdewolff/test"
)

func lineStrings(ps []*vector.Polyline) []string {
	ss := []string{}
	for _, p := range ps {
		ss = append(ss, p.String())
	}
	return ss
}

func TestReadLines(t *testing.T) {
	var tts = []struct {
		ext   string
		input string
		lines []string
	}{
		{".txt", "# comment\n0 0, 10 10\n\n0 10, 10 0\n", []string{"0 0, 10 10", "0 10, 10 0"}},
		{".wkt", "LINESTRING(0 0,10 10)\nMULTILINESTRING((0 10,10 0),(5 0,5 10))\nPOINT(3 4)\n", []string{"0 0, 10 10", "0 10, 10 0", "5 0, 5 10", "3 4"}},
		{".geojson", `{"type":"LineString","coordinates":[[0,0],[10,10]]}`, []string{"0 0, 10 10"}},
		{".json", `{"type":"Feature","geometry":{"type":"Polygon","coordinates":[[[0,0],[10,0],[10,10],[0,0]]]},"properties":{}}`, []string{"0 0, 10 0, 10 10, 0 0"}},
		{".geojson", `{"type":"FeatureCollection","features":[
			{"type":"Feature","geometry":{"type":"LineString","coordinates":[[0,0],[10,10]]},"properties":{}},
			{"type":"Feature","geometry":{"type":"LineString","coordinates":[[0,10],[10,0]]},"properties":{}}
		]}`, []string{"0 0, 10 10", "0 10, 10 0"}},
		{".osm", `<?xml version="1.0" encoding="UTF-8"?>
<osm version="0.6">
  <node id="1" lat="0" lon="0"/>
  <node id="2" lat="1" lon="1"/>
  <way id="10">
    <nd ref="1"/>
    <nd ref="2"/>
    <tag k="highway" v="residential"/>
  </way>
</osm>`, []string{"0 0, 1 1"}},
	}
	for _, tt := range tts {
		t.Run(tt.ext, func(t *testing.T) {
			lines, err := readLines(strings.NewReader(tt.input), tt.ext)
			test.Error(t, err)
			test.T(t, lineStrings(lines), tt.lines)
		})
	}

	_, err := readLines(strings.NewReader("0 0, 10"), ".txt")
	test.That(t, err != nil)
	_, err = readLines(strings.NewReader("LINESTRING(0 0,"), ".wkt")
	test.That(t, err != nil)
	_, err = readLines(strings.NewReader("{"), ".geojson")
	test.That(t, err != nil)
}

func TestWriteLines(t *testing.T) {
	as := []*vector.Polyline{vector.MustParsePolyline("0 0, 5 5"), vector.MustParsePolyline("5 5, 10 10")}
	bs := []*vector.Polyline{vector.MustParsePolyline("0 10, 5 5")}

	w, err := newWriter("text", -1)
	test.Error(t, err)
	buf := &bytes.Buffer{}
	test.Error(t, w.writeLines(buf, as, bs))
	test.T(t, buf.String(), "0 0, 5 5\n5 5, 10 10\n0 10, 5 5\n")

	w, _ = newWriter("wkt", -1)
	buf.Reset()
	test.Error(t, w.writeLines(buf, as, nil))
	test.T(t, buf.String(), "LINESTRING(0 0,5 5)\nLINESTRING(5 5,10 10)\n")

	w, _ = newWriter("geojson", -1)
	buf.Reset()
	test.Error(t, w.writeLines(buf, as, bs))
	lines, err := readLines(buf, ".geojson")
	test.Error(t, err)
	test.T(t, lineStrings(lines), []string{"0 0, 5 5", "5 5, 10 10", "0 10, 5 5"})

	_, err = newWriter("svg", -1)
	test.That(t, err != nil)
}

func TestWritePoints(t *testing.T) {
	ps := []vector.Point{{X: 1.23456, Y: 2}}

	w, _ := newWriter("text", 2)
	buf := &bytes.Buffer{}
	test.Error(t, w.writePoints(buf, ps))
	test.T(t, buf.String(), "1.23 2\n")

	w, _ = newWriter("wkt", 2)
	buf.Reset()
	test.Error(t, w.writePoints(buf, ps))
	test.That(t, strings.HasPrefix(buf.String(), "MULTIPOINT"))
	test.That(t, strings.Contains(buf.String(), "1.23 2"))
}

func TestProjection(t *testing.T) {
	proj, err := newProjection(0, 0)
	test.Error(t, err)
	test.That(t, proj == nil)
	_, err = newProjection(4326, 0)
	test.That(t, err != nil)

	proj, err = newProjection(4326, 32633)
	test.Error(t, err)
	p := vector.MustParsePolyline("15 52, 15.1 52.1")
	q := proj.forward(p)
	test.That(t, 100000.0 < q.Coords()[0].X && 1000000.0 < q.Coords()[0].Y)

	r := proj.inverseAll([]*vector.Polyline{q})[0]
	for i, coord := range r.Coords() {
		test.That(t, math.Abs(coord.X-p.Coords()[i].X) < 1e-6)
		test.That(t, math.Abs(coord.Y-p.Coords()[i].Y) < 1e-6)
	}
}

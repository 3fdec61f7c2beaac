package main

import (
	"bufio"
	"bytes"
	"encoding/json"
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	vector "github.com/OSGeo/grass-sub020"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/encoding/wkt"
	"github.com/paulmach/orb/geojson"
	"github.com/paulmach/osm"
	"github.com/paulmach/osm/osmgeojson"
)

func readFile(filename string) ([]*vector.Polyline, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return readLines(f, strings.ToLower(filepath.Ext(filename)))
}

// readLines reads polylines in the format given by the file extension ext.
func readLines(r io.Reader, ext string) ([]*vector.Polyline, error) {
	switch ext {
	case ".geojson", ".json":
		return readGeoJSON(r)
	case ".wkt":
		return readWKT(r)
	case ".osm":
		return readOSM(r)
	}
	return readText(r)
}

func readGeoJSON(r io.Reader) ([]*vector.Polyline, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	var head struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(b, &head); err != nil {
		return nil, fmt.Errorf("geojson: %w", err)
	}

	switch head.Type {
	case "FeatureCollection":
		fc, err := geojson.UnmarshalFeatureCollection(b)
		if err != nil {
			return nil, err
		}
		return featureLines(fc.Features), nil
	case "Feature":
		f, err := geojson.UnmarshalFeature(b)
		if err != nil {
			return nil, err
		}
		return featureLines([]*geojson.Feature{f}), nil
	}
	g, err := geojson.UnmarshalGeometry(b)
	if err != nil {
		return nil, err
	}
	return geometryLines(nil, g.Geometry()), nil
}

func featureLines(fs []*geojson.Feature) []*vector.Polyline {
	lines := []*vector.Polyline{}
	for _, f := range fs {
		lines = geometryLines(lines, f.Geometry)
	}
	return lines
}

// geometryLines appends the lines of g to lines, polygon rings become closed lines and points become single point lines.
func geometryLines(lines []*vector.Polyline, g orb.Geometry) []*vector.Polyline {
	switch g := g.(type) {
	case orb.Point:
		lines = append(lines, vector.FromPoint(g))
	case orb.MultiPoint:
		for _, p := range g {
			lines = append(lines, vector.FromPoint(p))
		}
	case orb.LineString:
		lines = append(lines, vector.FromLineString(g))
	case orb.MultiLineString:
		for _, ls := range g {
			lines = append(lines, vector.FromLineString(ls))
		}
	case orb.Ring:
		lines = append(lines, vector.FromLineString(orb.LineString(g)))
	case orb.Polygon:
		for _, ring := range g {
			lines = append(lines, vector.FromLineString(orb.LineString(ring)))
		}
	case orb.MultiPolygon:
		for _, polygon := range g {
			lines = geometryLines(lines, polygon)
		}
	case orb.Collection:
		for _, h := range g {
			lines = geometryLines(lines, h)
		}
	}
	return lines
}

// readWKT reads one WKT geometry per line.
func readWKT(r io.Reader) ([]*vector.Polyline, error) {
	lines := []*vector.Polyline{}
	scanner := bufio.NewScanner(r)
	for i := 1; scanner.Scan(); i++ {
		s := strings.TrimSpace(scanner.Text())
		if s == "" {
			continue
		}
		g, err := wkt.Unmarshal(s)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i, err)
		}
		lines = geometryLines(lines, g)
	}
	return lines, scanner.Err()
}

// readOSM reads an OSM XML file, ways are converted to lines.
func readOSM(r io.Reader) ([]*vector.Polyline, error) {
	o := &osm.OSM{}
	if err := xml.NewDecoder(r).Decode(o); err != nil {
		return nil, fmt.Errorf("osm: %w", err)
	}
	fc, err := osmgeojson.Convert(o,
		osmgeojson.NoID(true),
		osmgeojson.NoMeta(true),
		osmgeojson.NoRelationMembership(true))
	if err != nil {
		return nil, err
	}
	return featureLines(fc.Features), nil
}

// readText reads one coordinate list per line, see vector.ParsePolyline. Lines starting with # are skipped.
func readText(r io.Reader) ([]*vector.Polyline, error) {
	lines := []*vector.Polyline{}
	scanner := bufio.NewScanner(r)
	for i := 1; scanner.Scan(); i++ {
		b := bytes.TrimSpace(scanner.Bytes())
		if len(b) == 0 || b[0] == '#' {
			continue
		}
		p, err := vector.ParsePolyline(string(b))
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i, err)
		}
		lines = append(lines, p)
	}
	return lines, scanner.Err()
}

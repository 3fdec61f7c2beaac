package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	vector "github.com/OSGeo/grass-sub020"
	"github.com/tdewolff/argp"
)

type Split struct {
	Self      bool   `desc:"Split the first line where it intersects itself"`
	Z         bool   `desc:"Interpolate z at the breaks and compare z of points"`
	From      int    `desc:"EPSG code of the input coordinates, reprojected to --to before intersecting"`
	To        int    `desc:"EPSG code in which to intersect"`
	Format    string `short:"f" default:"geojson" desc:"Output format: geojson, wkt or text"`
	Precision int    `short:"p" default:"-1" desc:"Number of decimals in the output, -1 keeps all"`
	Output    string `short:"o" desc:"Output file"`
	Debug     bool   `desc:"Log engine decisions to stderr"`
	Input     string `index:"0" desc:"Input file with one or two lines (.geojson, .json, .wkt, .osm or a coordinate list per line)"`
}

type Check struct {
	Z     bool   `desc:"Compare z of points"`
	From  int    `desc:"EPSG code of the input coordinates, reprojected to --to before intersecting"`
	To    int    `desc:"EPSG code in which to intersect"`
	Debug bool   `desc:"Log engine decisions to stderr"`
	Input string `index:"0" desc:"Input file with one or two lines"`
}

type Points struct {
	Z         bool   `desc:"Compare z of points"`
	From      int    `desc:"EPSG code of the input coordinates, reprojected to --to before intersecting"`
	To        int    `desc:"EPSG code in which to intersect"`
	Format    string `short:"f" default:"text" desc:"Output format: geojson, wkt or text"`
	Precision int    `short:"p" default:"-1" desc:"Number of decimals in the output, -1 keeps all"`
	Output    string `short:"o" desc:"Output file"`
	Debug     bool   `desc:"Log engine decisions to stderr"`
	Input     string `index:"0" desc:"Input file with one or two lines"`
}

func main() {
	root := argp.NewCmd(&Split{}, "Polyline intersection and splitting toolkit")
	root.AddCmd(&Check{}, "check", "Check whether the lines cross, touch or do not intersect")
	root.AddCmd(&Points{}, "points", "List the points where the lines intersect")
	root.Parse()
	root.PrintHelp()
}

func setDebug(debug bool) {
	if debug {
		vector.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}
}

func createOutput(filename string) (io.WriteCloser, error) {
	if filename == "" || filename == "-" {
		return nopCloser{os.Stdout}, nil
	}
	return os.Create(filename)
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error {
	return nil
}

// loadLines reads the input and returns line A and B, which are the same polyline when self is set or the input has a single line.
func loadLines(filename string, self bool, proj *projection) (*vector.Polyline, *vector.Polyline, error) {
	lines, err := readFile(filename)
	if err != nil {
		return nil, nil, err
	} else if len(lines) == 0 {
		return nil, nil, fmt.Errorf("no lines in %s", filename)
	} else if 2 < len(lines) {
		fmt.Fprintf(os.Stderr, "WARNING: %s has %d lines, only the first two are used\n", filename, len(lines))
	}

	a := proj.forward(lines[0])
	if self || len(lines) == 1 {
		return a, a, nil
	}
	return a, proj.forward(lines[1]), nil
}

func (cmd *Split) Run() error {
	if cmd.Input == "" {
		return argp.ShowUsage
	}
	w, err := newWriter(cmd.Format, cmd.Precision)
	if err != nil {
		fmt.Println("ERROR:", err)
		return argp.ShowUsage
	}
	proj, err := newProjection(cmd.From, cmd.To)
	if err != nil {
		return err
	}
	setDebug(cmd.Debug)

	a, b, err := loadLines(cmd.Input, cmd.Self, proj)
	if err != nil {
		return err
	}

	opts := []vector.Option{}
	if cmd.Z {
		opts = append(opts, vector.WithZ())
	}
	as, bs, err := vector.Intersect(a, b, opts...)
	if err != nil {
		return err
	}

	out, err := createOutput(cmd.Output)
	if err != nil {
		return err
	}
	defer out.Close()
	return w.writeLines(out, proj.inverseAll(as), proj.inverseAll(bs))
}

func (cmd *Check) Run() error {
	if cmd.Input == "" {
		return argp.ShowUsage
	}
	proj, err := newProjection(cmd.From, cmd.To)
	if err != nil {
		return err
	}
	setDebug(cmd.Debug)

	a, b, err := loadLines(cmd.Input, false, proj)
	if err != nil {
		return err
	}

	opts := []vector.Option{}
	if cmd.Z {
		opts = append(opts, vector.WithZ())
	}
	contact, err := vector.CheckIntersection(a, b, opts...)
	if err != nil {
		return err
	}
	fmt.Println(contact)
	return nil
}

func (cmd *Points) Run() error {
	if cmd.Input == "" {
		return argp.ShowUsage
	}
	w, err := newWriter(cmd.Format, cmd.Precision)
	if err != nil {
		fmt.Println("ERROR:", err)
		return argp.ShowUsage
	}
	proj, err := newProjection(cmd.From, cmd.To)
	if err != nil {
		return err
	}
	setDebug(cmd.Debug)

	a, b, err := loadLines(cmd.Input, false, proj)
	if err != nil {
		return err
	}

	opts := []vector.Option{}
	if cmd.Z {
		opts = append(opts, vector.WithZ())
	}
	ps, err := vector.IntersectionPoints(a, b, opts...)
	if err != nil {
		return err
	}

	out, err := createOutput(cmd.Output)
	if err != nil {
		return err
	}
	defer out.Close()
	return w.writePoints(out, proj.inversePoints(ps))
}

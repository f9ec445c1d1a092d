// Command mkobj writes simple test meshes as Wavefront OBJ files.
package main

import (
	"fmt"
	"os"

	"meshview/mesh"

	"github.com/alecthomas/kong"
)

var CLI struct {
	Shape    string  `help:"Shape to generate." enum:"cube,grid,sphere,torus" default:"cube"`
	Size     float64 `help:"Edge length, radius or major radius." default:"50"`
	Minor    float64 `help:"Tube radius (torus only)." default:"15"`
	Segments int     `help:"Subdivisions around the shape." default:"16"`
	Out      string  `help:"Output OBJ path." short:"o" required:"" type:"path"`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("mkobj"),
		kong.Description("Generate a test mesh."),
		kong.UsageOnError())

	m, err := build(CLI.Shape, CLI.Size, CLI.Minor, CLI.Segments)
	ctx.FatalIfErrorf(err)
	ctx.FatalIfErrorf(mesh.Save(CLI.Out, m))
	_, _ = fmt.Fprintf(os.Stderr, "%s: %d vertices, %d faces\n", CLI.Out, len(m.Vertices), len(m.Faces))
}

func build(shape string, size, minor float64, segments int) (*mesh.Mesh, error) {
	if size <= 0 {
		return nil, fmt.Errorf("size must be positive, got %g", size)
	}
	if segments < 3 {
		return nil, fmt.Errorf("segments must be at least 3, got %d", segments)
	}
	switch shape {
	case "cube":
		return mesh.Cube(size), nil
	case "grid":
		return mesh.Grid(size, segments), nil
	case "sphere":
		return mesh.Sphere(size, segments, segments/2+1), nil
	case "torus":
		if minor <= 0 || minor >= size {
			return nil, fmt.Errorf("minor radius must be in (0, %g), got %g", size, minor)
		}
		return mesh.Torus(size, minor, segments, segments/2+1), nil
	}
	return nil, fmt.Errorf("unknown shape %q", shape)
}

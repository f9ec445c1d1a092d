// Package mesh holds polygon meshes loaded from Wavefront OBJ sources.
//
// A Mesh owns its vertex positions and face index lists. Faces refer to
// vertices by 0-based index; vertex positions are mutated in place by the
// physics package every frame while faces stay fixed after load.
package mesh

import (
	"errors"
	"fmt"
	"math"
)

var ErrIndexOutOfRange = errors.New("mesh: face index out of range")

// Vec3 is a 3D point or displacement.
type Vec3 struct {
	X, Y, Z float64
}

func V3(x, y, z float64) Vec3 { return Vec3{X: x, Y: y, Z: z} }

func (v Vec3) Add(o Vec3) Vec3 { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }

// Face is an ordered list of vertex indices. Order is draw order.
type Face []int

// Mesh is a list of vertices and the faces that reference them.
type Mesh struct {
	Vertices []Vec3
	Faces    []Face
}

// Validate reports the first face index that does not address a vertex.
func (m *Mesh) Validate() error {
	if m == nil {
		return nil
	}
	n := len(m.Vertices)
	for fi, f := range m.Faces {
		for _, idx := range f {
			if idx < 0 || idx >= n {
				return fmt.Errorf("%w: face %d references vertex %d (have %d)", ErrIndexOutOfRange, fi, idx+1, n)
			}
		}
	}
	return nil
}

// Bounds returns the per-axis minimum and maximum over all vertices.
// An empty mesh returns two zero vectors.
func (m *Mesh) Bounds() (lo, hi Vec3) {
	if m == nil || len(m.Vertices) == 0 {
		return Vec3{}, Vec3{}
	}
	lo = Vec3{math.Inf(1), math.Inf(1), math.Inf(1)}
	hi = Vec3{math.Inf(-1), math.Inf(-1), math.Inf(-1)}
	for _, v := range m.Vertices {
		lo.X = math.Min(lo.X, v.X)
		lo.Y = math.Min(lo.Y, v.Y)
		lo.Z = math.Min(lo.Z, v.Z)
		hi.X = math.Max(hi.X, v.X)
		hi.Y = math.Max(hi.Y, v.Y)
		hi.Z = math.Max(hi.Z, v.Z)
	}
	return lo, hi
}

// Clone returns a deep copy of m.
func (m *Mesh) Clone() *Mesh {
	if m == nil {
		return nil
	}
	out := &Mesh{
		Vertices: append([]Vec3(nil), m.Vertices...),
		Faces:    make([]Face, len(m.Faces)),
	}
	for i, f := range m.Faces {
		out.Faces[i] = append(Face(nil), f...)
	}
	return out
}

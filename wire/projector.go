// Package wire draws meshes as wireframe outlines into a pixel target.
//
// Pipeline (fixed):
//
//	Mesh → Projection → Clipping → Line rasterization → Target.
//
// There is no depth test, culling, fill or lighting. Faces are stroked in
// file order with one-pixel Bresenham lines.
package wire

import "meshview/mesh"

// DefaultCameraDistance places the eye 200 units behind the origin.
const DefaultCameraDistance = -200

// Point is a projected screen-space position. It may be infinite or NaN when
// a vertex lies on the camera plane.
type Point struct {
	X, Y float64
}

// Projector is a fixed perspective transform onto a Width x Height screen.
type Projector struct {
	Width          int
	Height         int
	CameraDistance float64
}

func NewProjector(w, h int) Projector {
	return Projector{Width: w, Height: h, CameraDistance: DefaultCameraDistance}
}

// Project maps p to screen space. A point with p.Z == -CameraDistance divides
// by zero; the result is not guarded.
func (pr Projector) Project(p mesh.Vec3) Point {
	w := float64(pr.Width)
	h := float64(pr.Height)
	depth := p.Z + pr.CameraDistance
	return Point{
		X: p.X/depth*w + w/2,
		Y: p.Y/depth*h + h/2,
	}
}

// Polygons projects every face of m in face order. The result is the frame's
// draw list: one closed outline per face.
func (pr Projector) Polygons(m *mesh.Mesh) [][]Point {
	if m == nil {
		return nil
	}
	out := make([][]Point, len(m.Faces))
	for fi, f := range m.Faces {
		poly := make([]Point, len(f))
		for i, idx := range f {
			poly[i] = pr.Project(m.Vertices[idx])
		}
		out[fi] = poly
	}
	return out
}

package mesh

import "math"

// Cube returns an axis-aligned cube centered on the origin with six quad faces.
func Cube(size float64) *Mesh {
	h := size / 2
	return &Mesh{
		Vertices: []Vec3{
			{-h, -h, -h}, {h, -h, -h}, {h, h, -h}, {-h, h, -h},
			{-h, -h, h}, {h, -h, h}, {h, h, h}, {-h, h, h},
		},
		Faces: []Face{
			{0, 1, 2, 3}, // front
			{5, 4, 7, 6}, // back
			{4, 0, 3, 7}, // left
			{1, 5, 6, 2}, // right
			{3, 2, 6, 7}, // top
			{4, 5, 1, 0}, // bottom
		},
	}
}

// Grid returns a flat square of quads in the XZ plane at y=0.
func Grid(size float64, segments int) *Mesh {
	if segments < 1 {
		segments = 1
	}
	n := segments + 1
	m := &Mesh{
		Vertices: make([]Vec3, 0, n*n),
		Faces:    make([]Face, 0, segments*segments),
	}
	step := size / float64(segments)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			m.Vertices = append(m.Vertices, Vec3{
				X: -size/2 + float64(j)*step,
				Z: -size/2 + float64(i)*step,
			})
		}
	}
	for i := 0; i < segments; i++ {
		for j := 0; j < segments; j++ {
			i0 := i*n + j
			m.Faces = append(m.Faces, Face{i0, i0 + 1, i0 + n + 1, i0 + n})
		}
	}
	return m
}

// Sphere returns a UV sphere. Poles are single vertices joined by triangles;
// the bands in between are quads.
func Sphere(radius float64, segU, segV int) *Mesh {
	if segU < 3 {
		segU = 3
	}
	if segV < 2 {
		segV = 2
	}

	m := &Mesh{Vertices: []Vec3{{Y: radius}}}
	for v := 1; v < segV; v++ {
		phi := math.Pi * float64(v) / float64(segV)
		y := radius * math.Cos(phi)
		r := radius * math.Sin(phi)
		for u := 0; u < segU; u++ {
			theta := 2 * math.Pi * float64(u) / float64(segU)
			m.Vertices = append(m.Vertices, Vec3{X: r * math.Cos(theta), Y: y, Z: r * math.Sin(theta)})
		}
	}
	m.Vertices = append(m.Vertices, Vec3{Y: -radius})
	bottom := len(m.Vertices) - 1

	ring := func(v, u int) int { return 1 + (v-1)*segU + u%segU }

	for u := 0; u < segU; u++ {
		m.Faces = append(m.Faces, Face{0, ring(1, u+1), ring(1, u)})
	}
	for v := 1; v < segV-1; v++ {
		for u := 0; u < segU; u++ {
			m.Faces = append(m.Faces, Face{ring(v, u), ring(v, u+1), ring(v+1, u+1), ring(v+1, u)})
		}
	}
	for u := 0; u < segU; u++ {
		m.Faces = append(m.Faces, Face{ring(segV-1, u), ring(segV-1, u+1), bottom})
	}
	return m
}

// Torus returns a ring of quads around the Y axis.
func Torus(major, minor float64, segU, segV int) *Mesh {
	if segU < 3 {
		segU = 3
	}
	if segV < 3 {
		segV = 3
	}

	m := &Mesh{
		Vertices: make([]Vec3, 0, segU*segV),
		Faces:    make([]Face, 0, segU*segV),
	}
	for u := 0; u < segU; u++ {
		theta := 2 * math.Pi * float64(u) / float64(segU)
		ct, st := math.Cos(theta), math.Sin(theta)
		for v := 0; v < segV; v++ {
			phi := 2 * math.Pi * float64(v) / float64(segV)
			r := major + minor*math.Cos(phi)
			m.Vertices = append(m.Vertices, Vec3{X: r * ct, Y: minor * math.Sin(phi), Z: r * st})
		}
	}

	idx := func(u, v int) int { return (u%segU)*segV + v%segV }
	for u := 0; u < segU; u++ {
		for v := 0; v < segV; v++ {
			m.Faces = append(m.Faces, Face{idx(u, v), idx(u+1, v), idx(u+1, v+1), idx(u, v+1)})
		}
	}
	return m
}

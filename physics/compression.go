package physics

import (
	"fmt"

	"meshview/mesh"
)

// Compression pushes every vertex along +Y by Speed scaled by how close the
// vertex sits to the mesh's lowest point: the lowest vertices move the full
// Speed, the highest do not move. There is no floor; the mesh keeps
// flattening for as long as it is stepped.
type Compression struct {
	Speed float64 `yaml:"speed"`
}

func (c *Compression) Name() string { return "compression" }

// Step rescans the vertex heights every call.
func (c *Compression) Step(m *mesh.Mesh) error {
	if m == nil || len(m.Vertices) == 0 {
		return ErrEmptyMesh
	}

	minY, maxY := m.Vertices[0].Y, m.Vertices[0].Y
	for _, v := range m.Vertices[1:] {
		if v.Y < minY {
			minY = v.Y
		}
		if v.Y > maxY {
			maxY = v.Y
		}
	}
	span := maxY - minY
	if span == 0 {
		return fmt.Errorf("%w: all vertices at y=%g", ErrFlatMesh, minY)
	}

	for i := range m.Vertices {
		heightRatio := (m.Vertices[i].Y - minY) / span
		m.Vertices[i].Y += c.Speed * (1 - heightRatio)
	}
	return nil
}

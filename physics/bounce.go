package physics

import (
	"fmt"

	"meshview/mesh"
)

// BounceParams configures the per-vertex spring-damper.
type BounceParams struct {
	Ground         float64 `yaml:"ground"`
	Gravity        float64 `yaml:"gravity"`
	SpringConstant float64 `yaml:"spring_constant"`
	Damping        float64 `yaml:"damping"`
	MaxCompression float64 `yaml:"max_compression"`
	MaxExtension   float64 `yaml:"max_extension"`
}

// DefaultBounceParams returns the constructor defaults of the bounce rule.
func DefaultBounceParams() BounceParams {
	return BounceParams{
		Ground:         2,
		Gravity:        4,
		SpringConstant: 10,
		Damping:        0.2,
		MaxCompression: 0.8,
		MaxExtension:   0.8,
	}
}

// Bounce treats every vertex as an independent mass on a vertical spring
// whose rest height is the vertex's Y at construction.
//
// Below the ground plane the spring pushes back once the vertex has sunk more
// than MaxCompression under its rest height; above it, the spring pulls back
// once the vertex has risen more than MaxExtension. Damping is applied only
// on ticks where a spring force acted.
type Bounce struct {
	p BounceParams

	rest []float64
	vel  []mesh.Vec3
}

// NewBounce snapshots the rest heights of m. The returned Bounce must only be
// stepped with meshes of the same vertex count.
func NewBounce(m *mesh.Mesh, p BounceParams) *Bounce {
	var n int
	if m != nil {
		n = len(m.Vertices)
	}
	b := &Bounce{
		p:    p,
		rest: make([]float64, n),
		vel:  make([]mesh.Vec3, n),
	}
	for i := 0; i < n; i++ {
		b.rest[i] = m.Vertices[i].Y
	}
	return b
}

func (b *Bounce) Name() string { return "bounce" }

func (b *Bounce) Params() BounceParams { return b.p }

// Len reports the vertex count the state was built for.
func (b *Bounce) Len() int { return len(b.rest) }

func (b *Bounce) OriginalHeight(i int) float64 { return b.rest[i] }

func (b *Bounce) Velocity(i int) mesh.Vec3 { return b.vel[i] }

// SetVelocity seeds a vertex velocity. X and Z are never changed by Step, so
// seeding them produces a constant sideways drift.
func (b *Bounce) SetVelocity(i int, v mesh.Vec3) { b.vel[i] = v }

func (b *Bounce) Step(m *mesh.Mesh) error {
	if m == nil || len(m.Vertices) != len(b.rest) {
		n := 0
		if m != nil {
			n = len(m.Vertices)
		}
		return fmt.Errorf("%w: built for %d, got %d", ErrVertexCountChanged, len(b.rest), n)
	}

	p := b.p
	for i := range m.Vertices {
		pos := &m.Vertices[i]
		vel := &b.vel[i]

		vel.Y += p.Gravity

		if pos.Y < p.Ground {
			compression := b.rest[i] - pos.Y
			if compression > p.MaxCompression {
				vel.Y += p.SpringConstant * (p.MaxCompression - compression)
				vel.Y *= p.Damping
			}
		} else {
			extension := pos.Y - b.rest[i]
			if extension > p.MaxExtension {
				vel.Y += -p.SpringConstant * (extension - p.MaxExtension)
				vel.Y *= p.Damping
			}
		}

		*pos = pos.Add(*vel)
	}
	return nil
}

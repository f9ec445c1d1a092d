package physics

import (
	"testing"

	"meshview/mesh"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func column(ys ...float64) *mesh.Mesh {
	m := &mesh.Mesh{}
	for _, y := range ys {
		m.Vertices = append(m.Vertices, mesh.V3(0, y, 0))
	}
	return m
}

func TestCompressionMovesLowestMost(t *testing.T) {
	m := column(0, 5, 10)
	c := &Compression{Speed: 1}
	require.NoError(t, c.Step(m))

	assert.Equal(t, 1.0, m.Vertices[0].Y)
	assert.Equal(t, 5.5, m.Vertices[1].Y)
	assert.Equal(t, 10.0, m.Vertices[2].Y)
}

func TestCompressionLeavesXZ(t *testing.T) {
	m := &mesh.Mesh{Vertices: []mesh.Vec3{{X: 3, Y: 0, Z: -4}, {X: -1, Y: 2, Z: 7}}}
	c := &Compression{Speed: 0.5}
	require.NoError(t, c.Step(m))
	assert.Equal(t, mesh.V3(3, 0.5, -4), m.Vertices[0])
	assert.Equal(t, mesh.V3(-1, 2, 7), m.Vertices[1])
}

func TestCompressionKeepsFlattening(t *testing.T) {
	m := column(0, 10)
	c := &Compression{Speed: 1}
	prev := m.Vertices[1].Y - m.Vertices[0].Y
	for i := 0; i < 5; i++ {
		require.NoError(t, c.Step(m))
		span := m.Vertices[1].Y - m.Vertices[0].Y
		assert.Less(t, span, prev)
		prev = span
	}
	assert.Equal(t, 10.0, m.Vertices[1].Y)
}

func TestCompressionDegenerateMeshes(t *testing.T) {
	c := &Compression{Speed: 1}
	assert.ErrorIs(t, c.Step(&mesh.Mesh{}), ErrEmptyMesh)
	assert.ErrorIs(t, c.Step(nil), ErrEmptyMesh)
	assert.ErrorIs(t, c.Step(column(3, 3, 3)), ErrFlatMesh)
	assert.ErrorIs(t, c.Step(mesh.Grid(4, 2)), ErrFlatMesh)
}

func TestBounceFreeVertexOnlyGetsGravity(t *testing.T) {
	m := column(10)
	b := NewBounce(m, DefaultBounceParams())
	require.NoError(t, b.Step(m))

	assert.Equal(t, mesh.V3(0, 4, 0), b.Velocity(0))
	assert.Equal(t, 14.0, m.Vertices[0].Y)
	assert.Equal(t, 10.0, b.OriginalHeight(0))
}

func TestBounceFallsUntilGround(t *testing.T) {
	p := BounceParams{
		Ground:         0,
		Gravity:        -1,
		SpringConstant: 10,
		Damping:        0.5,
		MaxCompression: 0.6,
		MaxExtension:   0.7,
	}
	m := column(10)
	b := NewBounce(m, p)

	ticks := 0
	for m.Vertices[0].Y >= p.Ground {
		before := m.Vertices[0].Y
		require.NoError(t, b.Step(m))
		assert.Less(t, m.Vertices[0].Y, before)
		ticks++
		require.Less(t, ticks, 100)
	}

	// Below ground with compression past the limit: the spring pushes back
	// and the result is damped.
	y := m.Vertices[0].Y
	v := b.Velocity(0).Y
	compression := 10 - y
	require.Greater(t, compression, p.MaxCompression)
	want := (v + p.Gravity + p.SpringConstant*(p.MaxCompression-compression)) * p.Damping

	require.NoError(t, b.Step(m))
	assert.InDelta(t, want, b.Velocity(0).Y, 1e-9)
	assert.InDelta(t, y+want, m.Vertices[0].Y, 1e-9)
}

func TestBounceSpringBranches(t *testing.T) {
	tests := []struct {
		name    string
		p       BounceParams
		startY  float64
		wantVel float64
		wantY   float64
	}{
		{
			name:    "compressed past limit",
			p:       BounceParams{Ground: 2, Gravity: 4, SpringConstant: 5, Damping: 0.2, MaxCompression: 0.6, MaxExtension: 0.7},
			startY:  -1,
			wantVel: 0.4,
			wantY:   -0.6,
		},
		{
			name:    "compressed within limit",
			p:       BounceParams{Ground: 2, Gravity: 4, SpringConstant: 5, Damping: 0.2, MaxCompression: 0.8, MaxExtension: 0.8},
			startY:  -0.5,
			wantVel: 4,
			wantY:   3.5,
		},
		{
			name:    "extended past limit",
			p:       BounceParams{Ground: -10, Gravity: 4, SpringConstant: 10, Damping: 0.2, MaxCompression: 0.8, MaxExtension: 0.8},
			startY:  3,
			wantVel: -3.6,
			wantY:   -0.6,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := column(0)
			b := NewBounce(m, tt.p)
			m.Vertices[0].Y = tt.startY

			require.NoError(t, b.Step(m))
			assert.InDelta(t, tt.wantVel, b.Velocity(0).Y, 1e-9)
			assert.InDelta(t, tt.wantY, m.Vertices[0].Y, 1e-9)
			assert.Equal(t, 0.0, b.OriginalHeight(0))
		})
	}
}

func TestBounceAtRestIsIdempotent(t *testing.T) {
	p := BounceParams{Ground: 2, Gravity: 0, SpringConstant: 0, Damping: 1, MaxCompression: 0.6, MaxExtension: 0.7}
	m := &mesh.Mesh{Vertices: []mesh.Vec3{{X: 1, Y: 5, Z: -3}, {X: 0, Y: 2, Z: 0}}}
	want := m.Clone()
	b := NewBounce(m, p)
	for i := 0; i < 50; i++ {
		require.NoError(t, b.Step(m))
	}
	assert.Equal(t, want.Vertices, m.Vertices)
}

func TestBounceSeededDrift(t *testing.T) {
	p := BounceParams{Ground: -100, Damping: 1, MaxCompression: 1, MaxExtension: 1}
	m := column(0)
	b := NewBounce(m, p)
	b.SetVelocity(0, mesh.V3(1, 0, -2))
	for i := 0; i < 3; i++ {
		require.NoError(t, b.Step(m))
	}
	assert.Equal(t, mesh.V3(3, 0, -6), m.Vertices[0])
}

func TestBounceVerticesAreIndependent(t *testing.T) {
	m := column(10, 0)
	b := NewBounce(m, BounceParams{Ground: 5, Gravity: 1, SpringConstant: 10, Damping: 0.5, MaxCompression: 0.5, MaxExtension: 100})
	m.Vertices[1].Y = -2

	require.NoError(t, b.Step(m))
	assert.Equal(t, 11.0, m.Vertices[0].Y)
	// (1 + 10*(0.5-2)) * 0.5 = -7
	assert.InDelta(t, -9.0, m.Vertices[1].Y, 1e-9)
}

func TestBounceRejectsOtherMesh(t *testing.T) {
	b := NewBounce(column(1, 2), DefaultBounceParams())
	assert.Equal(t, 2, b.Len())
	assert.ErrorIs(t, b.Step(column(1)), ErrVertexCountChanged)
	assert.ErrorIs(t, b.Step(nil), ErrVertexCountChanged)
}

func TestVariantNew(t *testing.T) {
	m := column(0, 1)

	s, err := Variant{Kind: KindCompression, Compression: Compression{Speed: 2}}.New(m)
	require.NoError(t, err)
	require.IsType(t, &Compression{}, s)
	assert.Equal(t, 2.0, s.(*Compression).Speed)
	assert.Equal(t, "compression", s.Name())

	s, err = Variant{Kind: KindBounce, Bounce: DefaultBounceParams()}.New(m)
	require.NoError(t, err)
	require.IsType(t, &Bounce{}, s)
	assert.Equal(t, 2, s.(*Bounce).Len())
	assert.Equal(t, DefaultBounceParams(), s.(*Bounce).Params())

	_, err = Variant{}.New(m)
	assert.ErrorIs(t, err, ErrUnknownKind)
}

func TestParseKind(t *testing.T) {
	k, err := ParseKind("Bounce")
	require.NoError(t, err)
	assert.Equal(t, KindBounce, k)
	assert.Equal(t, "bounce", k.String())

	k, err = ParseKind(" compression ")
	require.NoError(t, err)
	assert.Equal(t, KindCompression, k)

	_, err = ParseKind("jelly")
	assert.ErrorIs(t, err, ErrUnknownKind)
	assert.Equal(t, "kind(9)", Kind(9).String())
}

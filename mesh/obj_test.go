package mesh

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeSingleVertex(t *testing.T) {
	m, err := Decode(strings.NewReader("v 1.0 2.0 3.0\n"))
	require.NoError(t, err)
	require.Len(t, m.Vertices, 1)
	assert.Equal(t, V3(1, 2, 3), m.Vertices[0])
	assert.Empty(t, m.Faces)
}

func TestDecodeFaces(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want Face
	}{
		{"plain", "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 3\n", Face{0, 1, 2}},
		{
			"slashed",
			strings.Repeat("v 0 0 0\n", 9) + "f 1/2/3 4/5/6 7/8/9\n",
			Face{0, 3, 6},
		},
		{"position and normal", "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 3//1 2//1 1//1\n", Face{2, 1, 0}},
		{"quad", "v 0 0 0\nv 1 0 0\nv 1 1 0\nv 0 1 0\nf 1 2 3 4\n", Face{0, 1, 2, 3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := Decode(strings.NewReader(tt.src))
			require.NoError(t, err)
			require.Len(t, m.Faces, 1)
			assert.Equal(t, tt.want, m.Faces[0])
		})
	}
}

func TestDecodeIgnoresOtherStatements(t *testing.T) {
	src := `# a comment
o thing
g group
vn 0 1 0
vt 0.5 0.5
v 1 2 3 1.0
usemtl red
s off
v	4	5	6
f 1 2 1
`
	m, err := Decode(strings.NewReader(src))
	require.NoError(t, err)
	assert.Equal(t, []Vec3{V3(1, 2, 3), V3(4, 5, 6)}, m.Vertices)
	assert.Equal(t, []Face{{0, 1, 0}}, m.Faces)
}

func TestDecodeKeepsFileOrder(t *testing.T) {
	src := "v 0 0 0\nf 1 1 1\nv 1 1 1\nf 2 1 2\n"
	m, err := Decode(strings.NewReader(src))
	require.NoError(t, err)
	assert.Equal(t, []Face{{0, 0, 0}, {1, 0, 1}}, m.Faces)
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		line int
		is   error
	}{
		{"short vertex", "v 1 2\n", 1, ErrShortVertex},
		{"bare vertex", "v\n", 1, ErrShortVertex},
		{"bad float", "v 0 0 0\nv 1 x 3\n", 2, strconv.ErrSyntax},
		{"bad index", "v 0 0 0\nf 1 a 1\n", 2, strconv.ErrSyntax},
		{"empty index", "v 0 0 0\nf /1/1\n", 2, strconv.ErrSyntax},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tt.src))
			require.Error(t, err)
			var pe *ParseError
			require.ErrorAs(t, err, &pe)
			assert.Equal(t, tt.line, pe.Line)
			assert.ErrorIs(t, err, ErrSyntax)
			assert.ErrorIs(t, err, tt.is)
		})
	}
}

func TestDecodeRejectsOutOfRangeFace(t *testing.T) {
	_, err := Decode(strings.NewReader("v 0 0 0\nf 1 2 1\n"))
	require.ErrorIs(t, err, ErrIndexOutOfRange)

	_, err = Decode(strings.NewReader("v 0 0 0\nf 0 1 1\n"))
	require.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	want := Sphere(1.5, 8, 5)
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, want))

	got, err := Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestEncodeFormat(t *testing.T) {
	m := &Mesh{
		Vertices: []Vec3{V3(1, -2.5, 0), V3(0.25, 0, 3)},
		Faces:    []Face{{1, 0}},
	}
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, m))
	assert.Equal(t, "v 1 -2.5 0\nv 0.25 0 3\nf 2 1\n", buf.String())
}

func TestLoadAndSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cube.obj")
	require.NoError(t, Save(path, Cube(2)))

	m, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Cube(2), m)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.obj"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

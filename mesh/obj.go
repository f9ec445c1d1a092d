package mesh

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

var (
	ErrSyntax      = errors.New("mesh: obj syntax error")
	ErrShortVertex = errors.New("vertex needs 3 coordinates")
)

// ParseError records the OBJ line that could not be decoded.
type ParseError struct {
	Line int
	Text string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("mesh: obj line %d %q: %v", e.Line, e.Text, e.Err)
}

func (e *ParseError) Unwrap() []error { return []error{ErrSyntax, e.Err} }

const maxLineBytes = 1 << 20

// Load reads an OBJ file from disk.
func Load(path string) (*Mesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open obj %q: %w", path, err)
	}
	defer f.Close()

	m, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode obj %q: %w", path, err)
	}
	return m, nil
}

// Decode parses the vertex ("v") and face ("f") statements of an OBJ source.
//
// Vertex lines use their first three coordinates; a fourth (w) is ignored.
// Face fields keep only the position index before the first '/', converted
// from 1-based to 0-based. Every other statement is skipped.
func Decode(r io.Reader) (*Mesh, error) {
	m := &Mesh{}
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	line := 0
	for sc.Scan() {
		line++
		text := sc.Text()
		fields := strings.Fields(text)
		if len(fields) == 0 {
			continue
		}
		switch fields[0] {
		case "v":
			v, err := parseVertex(fields[1:])
			if err != nil {
				return nil, &ParseError{Line: line, Text: text, Err: err}
			}
			m.Vertices = append(m.Vertices, v)
		case "f":
			f, err := parseFace(fields[1:])
			if err != nil {
				return nil, &ParseError{Line: line, Text: text, Err: err}
			}
			m.Faces = append(m.Faces, f)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read obj: %w", err)
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}

func parseVertex(fields []string) (Vec3, error) {
	if len(fields) < 3 {
		return Vec3{}, ErrShortVertex
	}
	var c [3]float64
	for i := range c {
		f, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return Vec3{}, err
		}
		c[i] = f
	}
	return Vec3{X: c[0], Y: c[1], Z: c[2]}, nil
}

func parseFace(fields []string) (Face, error) {
	f := make(Face, 0, len(fields))
	for _, field := range fields {
		pos, _, _ := strings.Cut(field, "/")
		idx, err := strconv.Atoi(pos)
		if err != nil {
			return nil, err
		}
		f = append(f, idx-1)
	}
	return f, nil
}

// Encode writes m as OBJ "v" and "f" statements with 1-based face indices.
func Encode(w io.Writer, m *Mesh) error {
	bw := bufio.NewWriter(w)
	buf := make([]byte, 0, 64)
	for _, v := range m.Vertices {
		buf = append(buf[:0], 'v')
		for _, c := range [3]float64{v.X, v.Y, v.Z} {
			buf = append(buf, ' ')
			buf = strconv.AppendFloat(buf, c, 'g', -1, 64)
		}
		buf = append(buf, '\n')
		if _, err := bw.Write(buf); err != nil {
			return err
		}
	}
	for _, f := range m.Faces {
		buf = append(buf[:0], 'f')
		for _, idx := range f {
			buf = append(buf, ' ')
			buf = strconv.AppendInt(buf, int64(idx+1), 10)
		}
		buf = append(buf, '\n')
		if _, err := bw.Write(buf); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// Save writes m to path, replacing any existing file.
func Save(path string, m *Mesh) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create obj %q: %w", path, err)
	}
	if err := Encode(f, m); err != nil {
		_ = f.Close()
		return fmt.Errorf("write obj %q: %w", path, err)
	}
	return f.Close()
}

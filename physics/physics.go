// Package physics advances mesh vertex positions once per frame.
//
// A Stepper borrows the mesh for the duration of a Step call and mutates its
// vertices in place. Two rules exist: Compression flattens the whole mesh
// toward its lowest point, Bounce runs an independent vertical spring-damper
// per vertex against a ground plane.
package physics

import (
	"errors"
	"fmt"
	"strings"

	"meshview/mesh"
)

var (
	ErrEmptyMesh          = errors.New("physics: mesh has no vertices")
	ErrFlatMesh           = errors.New("physics: mesh has zero height")
	ErrVertexCountChanged = errors.New("physics: vertex count changed")
	ErrUnknownKind        = errors.New("physics: unknown kind")
)

// Stepper applies one physics tick to a mesh.
type Stepper interface {
	Name() string
	Step(m *mesh.Mesh) error
}

// Kind selects a Stepper implementation.
type Kind uint8

const (
	KindCompression Kind = iota + 1
	KindBounce
)

func (k Kind) String() string {
	switch k {
	case KindCompression:
		return "compression"
	case KindBounce:
		return "bounce"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// ParseKind maps "compression" or "bounce" to a Kind.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "compression":
		return KindCompression, nil
	case "bounce":
		return KindBounce, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// Variant is a physics rule plus its parameters. Only the parameters that
// match Kind are used.
type Variant struct {
	Kind        Kind
	Compression Compression
	Bounce      BounceParams
}

// New binds the variant to m. Bounce snapshots m's current heights.
func (v Variant) New(m *mesh.Mesh) (Stepper, error) {
	switch v.Kind {
	case KindCompression:
		c := v.Compression
		return &c, nil
	case KindBounce:
		return NewBounce(m, v.Bounce), nil
	}
	return nil, fmt.Errorf("%w: %v", ErrUnknownKind, v.Kind)
}

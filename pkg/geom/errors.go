package geom

import "errors"

// Geometry pipeline errors.
var (
	// ErrEmptyMesh is returned when an operation needs at least one position
	// and the stream is empty.
	ErrEmptyMesh = errors.New("mesh has no positions")

	// ErrUnsupportedTopology is returned when the face list mixes triangle
	// and quad faces. A mesh must be uniformly one or the other.
	ErrUnsupportedTopology = errors.New("unsupported topology: mixed face arity")

	// ErrConsistency is returned when a face's attribute presence flags
	// disagree with the mesh-wide flags.
	ErrConsistency = errors.New("face attribute flags disagree with mesh")
)

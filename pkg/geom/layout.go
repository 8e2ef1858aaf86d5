package geom

import "fmt"

// PackLayout names the set of attributes present in each interleaved vertex
// record. It is selected once per mesh from the mesh-wide presence flags;
// record assembly and stride dispatch through it instead of branching per
// corner.
type PackLayout uint16

const (
	PositionOnly    PackLayout = iota // 3 floats: x y z
	PositionTex                       // 5 floats: x y z u v
	PositionNorm                      // 6 floats: x y z nx ny nz
	PositionNormTex                   // 8 floats: x y z nx ny nz u v
)

// LayoutFor returns the layout matching the given presence flags.
func LayoutFor(hasNormals, hasTexCoords bool) PackLayout {
	switch {
	case hasNormals && hasTexCoords:
		return PositionNormTex
	case hasNormals:
		return PositionNorm
	case hasTexCoords:
		return PositionTex
	default:
		return PositionOnly
	}
}

// Stride returns the number of floats per vertex record.
func (l PackLayout) Stride() int {
	switch l {
	case PositionTex:
		return 5
	case PositionNorm:
		return 6
	case PositionNormTex:
		return 8
	default:
		return 3
	}
}

// ByteStride returns the record size in bytes (float32 components).
func (l PackLayout) ByteStride() int {
	return l.Stride() * 4
}

// HasNormals reports whether records carry a normal.
func (l PackLayout) HasNormals() bool {
	return l == PositionNorm || l == PositionNormTex
}

// HasTexCoords reports whether records carry texture coordinates.
func (l PackLayout) HasTexCoords() bool {
	return l == PositionTex || l == PositionNormTex
}

// Valid reports whether l is one of the defined layouts.
func (l PackLayout) Valid() bool {
	return l <= PositionNormTex
}

// String returns a human-readable layout name.
func (l PackLayout) String() string {
	switch l {
	case PositionOnly:
		return "position"
	case PositionTex:
		return "position+texcoord"
	case PositionNorm:
		return "position+normal"
	case PositionNormTex:
		return "position+normal+texcoord"
	default:
		return fmt.Sprintf("unknown(%d)", uint16(l))
	}
}

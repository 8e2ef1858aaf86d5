package geom

import (
	"fmt"

	"github.com/arbendik/meshprep/pkg/math3"
)

// Buffers is the render-ready result of consolidation: an interleaved
// vertex buffer, an index buffer naming slots in it, and the layout the
// records were packed with.
type Buffers struct {
	Vertices []float32
	Indices  []uint32
	Layout   PackLayout
}

// VertexCount returns the number of vertex records.
func (b *Buffers) VertexCount() int {
	return len(b.Vertices) / b.Layout.Stride()
}

// Positions extracts the position component of every record, so spatial
// metrics can be computed from an already-consolidated buffer (e.g. one
// decoded from the binary cache, where the raw streams are gone).
func (b *Buffers) Positions() []math3.Vec3 {
	stride := b.Layout.Stride()
	out := make([]math3.Vec3, 0, b.VertexCount())
	for i := 0; i+stride <= len(b.Vertices); i += stride {
		out = append(out, math3.Vec3{X: b.Vertices[i], Y: b.Vertices[i+1], Z: b.Vertices[i+2]})
	}
	return out
}

// Consolidate merges the per-corner attribute triples of data into a single
// indexed vertex buffer. Each distinct (position, normal, texcoord) index
// combination is interned into one vertex slot, in first-seen order across
// faces and corners; corners repeating a triple reuse its slot. The index
// buffer has one entry per corner, in original order, so face winding is
// preserved.
//
// The whole pass is validated up front: a face list mixing triangles and
// quads fails with ErrUnsupportedTopology, a face whose presence flags
// disagree with the mesh-wide flags fails with ErrConsistency, and nothing
// is returned in either case. The result is deterministic; re-running on
// identical input reproduces identical buffers.
func Consolidate(data *MeshData) (*Buffers, error) {
	if len(data.Faces) == 0 {
		return nil, fmt.Errorf("consolidate: empty face list: %w", ErrEmptyMesh)
	}

	first := &data.Faces[0]
	arity := first.Arity()
	if arity != 3 && arity != 4 {
		return nil, fmt.Errorf("consolidate: %d-corner faces: %w", arity, ErrUnsupportedTopology)
	}
	hasNormals := first.HasNormals
	hasTexCoords := first.HasTexCoords
	for i := range data.Faces {
		f := &data.Faces[i]
		if f.Arity() != arity {
			return nil, fmt.Errorf("consolidate: face %d has %d corners, mesh has %d: %w",
				i, f.Arity(), arity, ErrUnsupportedTopology)
		}
		if f.HasNormals != hasNormals || f.HasTexCoords != hasTexCoords {
			return nil, fmt.Errorf("consolidate: face %d: %w", i, ErrConsistency)
		}
	}

	layout := LayoutFor(hasNormals, hasTexCoords)
	stride := layout.Stride()
	corners := len(data.Faces) * arity

	// The slot map is local to this pass so stale entries can never leak
	// between meshes or repeated runs.
	slots := make(map[IndexRef]uint32, corners)
	out := &Buffers{
		Vertices: make([]float32, 0, corners*stride),
		Indices:  make([]uint32, 0, corners),
		Layout:   layout,
	}

	for i := range data.Faces {
		f := &data.Faces[i]
		for c := 0; c < arity; c++ {
			ref := f.Corner(c)
			slot, seen := slots[ref]
			if !seen {
				slot = uint32(len(slots))
				slots[ref] = slot
				out.Vertices = appendRecord(out.Vertices, data, ref, layout)
			}
			out.Indices = append(out.Indices, slot)
		}
	}
	return out, nil
}

// appendRecord packs one interleaved vertex record, in the order
// position, normal, texcoord, honoring the layout.
func appendRecord(dst []float32, data *MeshData, ref IndexRef, layout PackLayout) []float32 {
	p := data.Positions[ref.Pos]
	dst = append(dst, p.X, p.Y, p.Z)
	if layout.HasNormals() {
		n := data.Normals[ref.Norm.Value]
		dst = append(dst, n.X, n.Y, n.Z)
	}
	if layout.HasTexCoords() {
		t := data.TexCoords[ref.Tex.Value]
		dst = append(dst, t.X, t.Y)
	}
	return dst
}

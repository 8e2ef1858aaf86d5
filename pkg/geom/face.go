// Package geom consolidates independently indexed mesh attribute streams
// into render-ready vertex and index buffers and measures their extents.
package geom

// OptIndex is an optional index into an attribute stream. The zero value
// means "absent" and compares unequal to every present index, including a
// present index 0.
type OptIndex struct {
	Value uint32
	OK    bool
}

// Index returns a present OptIndex.
func Index(v uint32) OptIndex {
	return OptIndex{Value: v, OK: true}
}

// IndexRef is the attribute triple identifying one unique rendering vertex:
// the combination of position, normal and texcoord indices referenced by a
// face corner. Two refs are equal iff all three components match; attribute
// values are never compared.
type IndexRef struct {
	Pos  uint32
	Norm OptIndex
	Tex  OptIndex
}

// Face is one polygon of a mesh. Each corner holds an index into the
// position stream and, when the presence flags are set, parallel indices
// into the normal and texcoord streams.
type Face struct {
	Verts []uint32
	Norms []uint32
	Texs  []uint32

	HasNormals   bool
	HasTexCoords bool
}

// Arity returns the number of corners (3 for triangles, 4 for quads).
func (f *Face) Arity() int {
	return len(f.Verts)
}

// Corner returns the attribute triple for corner i.
func (f *Face) Corner(i int) IndexRef {
	ref := IndexRef{Pos: f.Verts[i]}
	if f.HasNormals {
		ref.Norm = Index(f.Norms[i])
	}
	if f.HasTexCoords {
		ref.Tex = Index(f.Texs[i])
	}
	return ref
}

// IsUniform reports whether every face shares the same arity and the same
// attribute presence flags. Consolidation requires a uniform face list.
func IsUniform(faces []Face) bool {
	if len(faces) == 0 {
		return true
	}
	first := &faces[0]
	for i := 1; i < len(faces); i++ {
		f := &faces[i]
		if f.Arity() != first.Arity() {
			return false
		}
		if f.HasNormals != first.HasNormals || f.HasTexCoords != first.HasTexCoords {
			return false
		}
	}
	return true
}

package geom

import "github.com/arbendik/meshprep/pkg/math3"

// MeshData holds the raw attribute streams and face list as produced by a
// mesh parser. The three streams are parallel only in the sense that faces
// index into each independently; their lengths are unrelated. Texture
// coordinates use X/Y, the Z component is reserved.
type MeshData struct {
	Positions []math3.Vec3
	Normals   []math3.Vec3
	TexCoords []math3.Vec3
	Faces     []Face
}

// Arity returns the corner count shared by all faces, or 0 for an empty
// face list. Callers should gate on IsUniform first; a mixed list reports
// the first face's arity.
func (d *MeshData) Arity() int {
	if len(d.Faces) == 0 {
		return 0
	}
	return d.Faces[0].Arity()
}

// CornerCount returns the total number of face corners.
func (d *MeshData) CornerCount() int {
	n := 0
	for i := range d.Faces {
		n += d.Faces[i].Arity()
	}
	return n
}

// StripNormals drops the normal stream and every face's normal indices, so
// consolidation packs records without normals.
func (d *MeshData) StripNormals() {
	d.Normals = nil
	for i := range d.Faces {
		d.Faces[i].Norms = nil
		d.Faces[i].HasNormals = false
	}
}

// StripTexCoords drops the texcoord stream and every face's texcoord indices.
func (d *MeshData) StripTexCoords() {
	d.TexCoords = nil
	for i := range d.Faces {
		d.Faces[i].Texs = nil
		d.Faces[i].HasTexCoords = false
	}
}

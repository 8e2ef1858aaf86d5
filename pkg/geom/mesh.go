package geom

import "github.com/arbendik/meshprep/pkg/math3"

// Mesh owns a loaded mesh for the duration of a load phase: the raw
// attribute streams and faces, the consolidated buffers once built, the
// derived spatial metrics, and an opaque texture handle. A Mesh is meant to
// be prepared by a single owning goroutine and treated as read-mostly
// afterwards; independent meshes share nothing.
type Mesh struct {
	data MeshData

	buffers *Buffers
	bbox    *BBox
	sphere  *Sphere

	texture uint32
}

// NewMesh wraps raw streams and faces into a Mesh.
func NewMesh(data MeshData) *Mesh {
	return &Mesh{data: data}
}

// Consolidate builds the render-ready vertex and index buffers. The result
// is stored on the mesh and returned; a previous result is replaced.
func (m *Mesh) Consolidate() (*Buffers, error) {
	b, err := Consolidate(&m.data)
	if err != nil {
		return nil, err
	}
	m.buffers = b
	return b, nil
}

// CalcDimensions computes and stores the bounding box.
func (m *Mesh) CalcDimensions() (BBox, error) {
	box, err := ComputeBBox(m.data.Positions)
	if err != nil {
		return BBox{}, err
	}
	m.bbox = &box
	return box, nil
}

// CalcBoundingSphere computes and stores the bounding sphere. The sphere is
// centered on the bounding box center, computing the box first if it has
// not been computed (or was invalidated by Scale).
func (m *Mesh) CalcBoundingSphere() (Sphere, error) {
	if m.bbox == nil {
		if _, err := m.CalcDimensions(); err != nil {
			return Sphere{}, err
		}
	}
	s, err := ComputeBoundingSphere(m.data.Positions, m.bbox.Center())
	if err != nil {
		return Sphere{}, err
	}
	m.sphere = &s
	return s, nil
}

// Scale multiplies every position component-wise by (sx, sy, sz). Stored
// metrics and consolidated buffers are invalidated, never recomputed
// automatically; callers re-run CalcDimensions, CalcBoundingSphere and
// Consolidate as needed.
func (m *Mesh) Scale(sx, sy, sz float32) {
	s := math3.Vec3{X: sx, Y: sy, Z: sz}
	for i := range m.data.Positions {
		m.data.Positions[i] = m.data.Positions[i].Mul(s)
	}
	m.bbox = nil
	m.sphere = nil
	m.buffers = nil
}

// RenderBuffers exposes the consolidated buffers to the graphics-upload
// collaborator. It returns false until Consolidate has run (or after Scale
// invalidated the result).
func (m *Mesh) RenderBuffers() (*Buffers, bool) {
	return m.buffers, m.buffers != nil
}

// SetBuffers installs already-consolidated buffers, e.g. decoded from the
// binary cache, so consolidation need not be repeated.
func (m *Mesh) SetBuffers(b *Buffers) {
	m.buffers = b
}

// BBox returns the stored bounding box, if computed.
func (m *Mesh) BBox() (BBox, bool) {
	if m.bbox == nil {
		return BBox{}, false
	}
	return *m.bbox, true
}

// BoundingSphere returns the stored bounding sphere, if computed.
func (m *Mesh) BoundingSphere() (Sphere, bool) {
	if m.sphere == nil {
		return Sphere{}, false
	}
	return *m.sphere, true
}

// Raw stream accessors for collaborators that need the unconsolidated
// topology, such as a subdivision-surface exporter.

// Positions returns the raw position stream.
func (m *Mesh) Positions() []math3.Vec3 { return m.data.Positions }

// Normals returns the raw normal stream.
func (m *Mesh) Normals() []math3.Vec3 { return m.data.Normals }

// TexCoords returns the raw texcoord stream.
func (m *Mesh) TexCoords() []math3.Vec3 { return m.data.TexCoords }

// Faces returns the original face list.
func (m *Mesh) Faces() []Face { return m.data.Faces }

// SetTextureHandle associates an opaque external texture handle with the
// mesh. The handle is stored and returned only; decoding and binding belong
// to the texture collaborator.
func (m *Mesh) SetTextureHandle(h uint32) { m.texture = h }

// TextureHandle returns the associated texture handle (0 if none).
func (m *Mesh) TextureHandle() uint32 { return m.texture }

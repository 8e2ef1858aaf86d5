package geom

import "testing"

func TestOptIndexDistinctFromZero(t *testing.T) {
	// An absent index must be a different key component than a present
	// index 0, or unrelated corners would collapse into one slot.
	present := IndexRef{Pos: 0, Norm: Index(0)}
	absent := IndexRef{Pos: 0}
	if present == absent {
		t.Error("IndexRef with normal 0 compares equal to one without a normal")
	}
}

func TestFaceCorner(t *testing.T) {
	f := Face{
		Verts: []uint32{4, 5, 6},
		Norms: []uint32{1, 1, 2},
		Texs:  []uint32{0, 3, 7},

		HasNormals:   true,
		HasTexCoords: true,
	}
	got := f.Corner(1)
	want := IndexRef{Pos: 5, Norm: Index(1), Tex: Index(3)}
	if got != want {
		t.Errorf("Corner(1) = %v, want %v", got, want)
	}

	f.HasNormals = false
	got = f.Corner(1)
	if got.Norm.OK {
		t.Error("Corner() produced a normal index despite HasNormals=false")
	}
}

func TestIsUniform(t *testing.T) {
	tri := Face{Verts: []uint32{0, 1, 2}, HasNormals: false, HasTexCoords: false}
	triN := Face{Verts: []uint32{0, 1, 2}, Norms: []uint32{0, 0, 0}, HasNormals: true}
	quad := Face{Verts: []uint32{0, 1, 2, 3}}

	tests := []struct {
		name  string
		faces []Face
		want  bool
	}{
		{"empty", nil, true},
		{"single", []Face{tri}, true},
		{"all triangles", []Face{tri, tri, tri}, true},
		{"all quads", []Face{quad, quad}, true},
		{"mixed arity", []Face{tri, quad}, false},
		{"mixed flags", []Face{tri, triN}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsUniform(tt.faces); got != tt.want {
				t.Errorf("IsUniform() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestArity(t *testing.T) {
	f := Face{Verts: []uint32{0, 1, 2, 3}}
	if got := f.Arity(); got != 4 {
		t.Errorf("Arity() = %d, want 4", got)
	}
}

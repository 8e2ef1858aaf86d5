package geom

import "testing"

func TestLayoutFor(t *testing.T) {
	tests := []struct {
		name         string
		hasNormals   bool
		hasTexCoords bool
		want         PackLayout
		stride       int
	}{
		{"none", false, false, PositionOnly, 3},
		{"texcoords", false, true, PositionTex, 5},
		{"normals", true, false, PositionNorm, 6},
		{"both", true, true, PositionNormTex, 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := LayoutFor(tt.hasNormals, tt.hasTexCoords)
			if got != tt.want {
				t.Errorf("LayoutFor(%v, %v) = %v, want %v", tt.hasNormals, tt.hasTexCoords, got, tt.want)
			}
			if got.Stride() != tt.stride {
				t.Errorf("Stride() = %d, want %d", got.Stride(), tt.stride)
			}
			if got.ByteStride() != tt.stride*4 {
				t.Errorf("ByteStride() = %d, want %d", got.ByteStride(), tt.stride*4)
			}
			if got.HasNormals() != tt.hasNormals {
				t.Errorf("HasNormals() = %v, want %v", got.HasNormals(), tt.hasNormals)
			}
			if got.HasTexCoords() != tt.hasTexCoords {
				t.Errorf("HasTexCoords() = %v, want %v", got.HasTexCoords(), tt.hasTexCoords)
			}
		})
	}
}

func TestLayoutValid(t *testing.T) {
	if !PositionNormTex.Valid() {
		t.Error("PositionNormTex should be valid")
	}
	if PackLayout(200).Valid() {
		t.Error("layout tag 200 should be invalid")
	}
}

func TestLayoutString(t *testing.T) {
	if got := PositionNormTex.String(); got != "position+normal+texcoord" {
		t.Errorf("String() = %q", got)
	}
	if got := PackLayout(200).String(); got != "unknown(200)" {
		t.Errorf("String() = %q", got)
	}
}

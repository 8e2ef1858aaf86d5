// Package obj parses Wavefront OBJ geometry into the raw attribute streams
// and face list consumed by the consolidation pipeline. Only the geometry
// statements (v, vt, vn, f) are interpreted; grouping, material and
// smoothing statements are skipped.
package obj

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/arbendik/meshprep/pkg/geom"
	"github.com/arbendik/meshprep/pkg/math3"
)

// OBJ parsing errors.
var (
	ErrMalformedVertex = errors.New("malformed vertex record")
	ErrMalformedFace   = errors.New("malformed face record")
)

// Parse reads OBJ text and returns the raw mesh streams. Indices are
// normalized from OBJ's 1-based (or negative relative) form to 0-based and
// range-checked against the streams seen so far. Faces must have 3 or 4
// corners and use one corner form throughout a face; arity may still vary
// across faces here, consolidation is where uniformity is enforced.
func Parse(r io.Reader) (*geom.MeshData, error) {
	data := &geom.MeshData{}
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}
		switch fields[0] {
		case "v":
			v, err := parseVec3(fields[1:])
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			data.Positions = append(data.Positions, v)
		case "vn":
			v, err := parseVec3(fields[1:])
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			data.Normals = append(data.Normals, v)
		case "vt":
			// u v [w]; only u and v are kept.
			if len(fields) < 3 {
				return nil, fmt.Errorf("line %d: vt needs 2 components: %w", lineNo, ErrMalformedVertex)
			}
			u, err1 := parseFloat(fields[1])
			v, err2 := parseFloat(fields[2])
			if err1 != nil || err2 != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, ErrMalformedVertex)
			}
			data.TexCoords = append(data.TexCoords, math3.Vec3{X: u, Y: v})
		case "f":
			face, err := parseFace(fields[1:], data)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			data.Faces = append(data.Faces, face)
		default:
			// g, s, o, mtllib, usemtl and friends carry no geometry.
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading obj: %w", err)
	}
	return data, nil
}

// ParseFile parses an OBJ file from disk.
func ParseFile(path string) (*geom.MeshData, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening obj: %w", err)
	}
	defer f.Close()
	return Parse(f)
}

func parseFloat(s string) (float32, error) {
	v, err := strconv.ParseFloat(s, 32)
	return float32(v), err
}

func parseVec3(fields []string) (math3.Vec3, error) {
	if len(fields) < 3 {
		return math3.Vec3{}, fmt.Errorf("need 3 components, have %d: %w", len(fields), ErrMalformedVertex)
	}
	x, err1 := parseFloat(fields[0])
	y, err2 := parseFloat(fields[1])
	z, err3 := parseFloat(fields[2])
	if err1 != nil || err2 != nil || err3 != nil {
		return math3.Vec3{}, ErrMalformedVertex
	}
	return math3.Vec3{X: x, Y: y, Z: z}, nil
}

func parseFace(corners []string, data *geom.MeshData) (geom.Face, error) {
	if len(corners) < 3 || len(corners) > 4 {
		return geom.Face{}, fmt.Errorf("face has %d corners: %w", len(corners), ErrMalformedFace)
	}

	face := geom.Face{}
	for i, corner := range corners {
		parts := strings.Split(corner, "/")
		// Accepted forms: p, p/t, p//n, p/t/n.
		if len(parts) > 3 {
			return geom.Face{}, fmt.Errorf("corner %q: %w", corner, ErrMalformedFace)
		}

		pos, err := resolveIndex(parts[0], len(data.Positions))
		if err != nil {
			return geom.Face{}, fmt.Errorf("corner %q: %w", corner, err)
		}
		hasTex := len(parts) >= 2 && parts[1] != ""
		hasNorm := len(parts) == 3 && parts[2] != ""
		if i == 0 {
			face.HasTexCoords = hasTex
			face.HasNormals = hasNorm
		} else if hasTex != face.HasTexCoords || hasNorm != face.HasNormals {
			return geom.Face{}, fmt.Errorf("corner %q mixes forms within a face: %w", corner, ErrMalformedFace)
		}

		face.Verts = append(face.Verts, pos)
		if hasTex {
			tex, err := resolveIndex(parts[1], len(data.TexCoords))
			if err != nil {
				return geom.Face{}, fmt.Errorf("corner %q: %w", corner, err)
			}
			face.Texs = append(face.Texs, tex)
		}
		if hasNorm {
			norm, err := resolveIndex(parts[2], len(data.Normals))
			if err != nil {
				return geom.Face{}, fmt.Errorf("corner %q: %w", corner, err)
			}
			face.Norms = append(face.Norms, norm)
		}
	}
	return face, nil
}

// resolveIndex converts an OBJ index to 0-based. OBJ counts from 1; a
// negative index counts back from the end of the stream parsed so far.
func resolveIndex(s string, streamLen int) (uint32, error) {
	i, err := strconv.Atoi(s)
	if err != nil || i == 0 {
		return 0, ErrMalformedFace
	}
	if i < 0 {
		i += streamLen
	} else {
		i--
	}
	if i < 0 || i >= streamLen {
		return 0, fmt.Errorf("index %s out of range (stream has %d): %w", s, streamLen, ErrMalformedFace)
	}
	return uint32(i), nil
}

// Package meshbin implements the binary cache format for consolidated mesh
// buffers. The format is a pure transport: it stores the vertex and index
// buffers exactly as the consolidator produced them so a reload can skip
// consolidation entirely.
//
// Record layout, little-endian:
//
//	magic        [4]byte  "MSHB"
//	version      uint16
//	layout       uint16   pack layout tag
//	vertexCount  uint32   interleaved records
//	indexCount   uint32
//	vertex data  vertexCount * layout stride * float32
//	index data   indexCount * uint32
//	checksum     uint32   CRC-32 (IEEE) over everything above
package meshbin

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"hash/crc32"
	"os"

	"github.com/arbendik/meshprep/pkg/geom"
)

// Version is the current cache format version.
const Version uint16 = 1

var magic = [4]byte{'M', 'S', 'H', 'B'}

// Cache format errors.
var (
	// ErrFormatVersion is returned for an unrecognized magic, version or
	// pack layout tag.
	ErrFormatVersion = errors.New("unrecognized mesh cache format")

	// ErrCorruptCache is returned when the data is inconsistent with the
	// declared counts: truncated or oversized payload, out-of-range index,
	// or checksum mismatch.
	ErrCorruptCache = errors.New("corrupt mesh cache")
)

type header struct {
	Magic       [4]byte
	Version     uint16
	Layout      uint16
	VertexCount uint32
	IndexCount  uint32
}

const headerSize = 16

// Encode serializes consolidated buffers into a cache record.
func Encode(b *geom.Buffers) ([]byte, error) {
	if !b.Layout.Valid() {
		return nil, fmt.Errorf("encode: layout tag %d: %w", uint16(b.Layout), ErrFormatVersion)
	}
	stride := b.Layout.Stride()
	if len(b.Vertices)%stride != 0 {
		return nil, fmt.Errorf("encode: %d floats is not a whole number of %s records: %w",
			len(b.Vertices), b.Layout, ErrCorruptCache)
	}
	vcount := uint32(len(b.Vertices) / stride)
	for i, idx := range b.Indices {
		if idx >= vcount {
			return nil, fmt.Errorf("encode: index %d names slot %d of %d: %w",
				i, idx, vcount, ErrCorruptCache)
		}
	}

	buf := new(bytes.Buffer)
	buf.Grow(headerSize + len(b.Vertices)*4 + len(b.Indices)*4 + 4)
	h := header{
		Magic:       magic,
		Version:     Version,
		Layout:      uint16(b.Layout),
		VertexCount: vcount,
		IndexCount:  uint32(len(b.Indices)),
	}
	binary.Write(buf, binary.LittleEndian, h)
	binary.Write(buf, binary.LittleEndian, b.Vertices)
	binary.Write(buf, binary.LittleEndian, b.Indices)
	binary.Write(buf, binary.LittleEndian, crc32.ChecksumIEEE(buf.Bytes()))
	return buf.Bytes(), nil
}

// Decode reconstructs consolidated buffers from a cache record. The
// round-trip with Encode is exact for all fields.
func Decode(data []byte) (*geom.Buffers, error) {
	if len(data) < headerSize+4 {
		return nil, fmt.Errorf("decode: %d bytes: %w", len(data), ErrCorruptCache)
	}
	var h header
	if err := binary.Read(bytes.NewReader(data), binary.LittleEndian, &h); err != nil {
		return nil, fmt.Errorf("decode header: %w", err)
	}
	if h.Magic != magic {
		return nil, fmt.Errorf("decode: bad magic %q: %w", h.Magic[:], ErrFormatVersion)
	}
	if h.Version != Version {
		return nil, fmt.Errorf("decode: version %d: %w", h.Version, ErrFormatVersion)
	}
	layout := geom.PackLayout(h.Layout)
	if !layout.Valid() {
		return nil, fmt.Errorf("decode: layout tag %d: %w", h.Layout, ErrFormatVersion)
	}

	floatCount := int(h.VertexCount) * layout.Stride()
	want := headerSize + floatCount*4 + int(h.IndexCount)*4 + 4
	if len(data) != want {
		return nil, fmt.Errorf("decode: %d bytes, header declares %d: %w",
			len(data), want, ErrCorruptCache)
	}
	sum := binary.LittleEndian.Uint32(data[len(data)-4:])
	if crc32.ChecksumIEEE(data[:len(data)-4]) != sum {
		return nil, fmt.Errorf("decode: checksum mismatch: %w", ErrCorruptCache)
	}

	out := &geom.Buffers{
		Vertices: make([]float32, floatCount),
		Indices:  make([]uint32, h.IndexCount),
		Layout:   layout,
	}
	r := bytes.NewReader(data[headerSize : len(data)-4])
	binary.Read(r, binary.LittleEndian, out.Vertices)
	binary.Read(r, binary.LittleEndian, out.Indices)
	for i, idx := range out.Indices {
		if idx >= h.VertexCount {
			return nil, fmt.Errorf("decode: index %d names slot %d of %d: %w",
				i, idx, h.VertexCount, ErrCorruptCache)
		}
	}
	return out, nil
}

// WriteFile encodes buffers and writes them to path.
func WriteFile(path string, b *geom.Buffers) error {
	data, err := Encode(b)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ReadFile reads and decodes a cache file.
func ReadFile(path string) (*geom.Buffers, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading cache: %w", err)
	}
	return Decode(data)
}

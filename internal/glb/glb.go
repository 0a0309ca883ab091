// Package glb parses the GLB binary container that wraps glTF assets: a
// 12-byte header followed by length-prefixed, 4-byte-aligned chunks. Chunk
// payloads are digested with CRC32-C so callers can verify integrity and
// deduplicate embedded buffers. The glTF JSON document itself is not
// interpreted here.
package glb

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/fenilsonani/glbkit/internal/crc32c"
	"github.com/fenilsonani/glbkit/internal/mathutil"
	"github.com/fenilsonani/glbkit/pkg/optional"
)

const (
	// Magic is the little-endian u32 spelling "glTF".
	Magic = 0x46546C67

	// Version is the only supported container version.
	Version = 2

	// ChunkTypeJSON and ChunkTypeBIN are the two chunk types defined by the
	// container format. Unknown types are skipped, as the format requires.
	ChunkTypeJSON = 0x4E4F534A
	ChunkTypeBIN  = 0x004E4942

	headerSize      = 12
	chunkHeaderSize = 8
	chunkAlign      = 4
)

var (
	ErrInvalidMagic       = errors.New("glb: invalid magic")
	ErrUnsupportedVersion = errors.New("glb: unsupported container version")
	ErrTruncated          = errors.New("glb: truncated container")
	ErrChunkOrder         = errors.New("glb: unexpected chunk order")
)

// Header is the fixed 12-byte GLB header.
type Header struct {
	Magic   uint32
	Version uint32
	Length  uint32
}

// Chunk is one parsed chunk. Data aliases the input buffer; Digest is the
// CRC32-C of Data.
type Chunk struct {
	Type   uint32
	Data   []byte
	Digest uint32
}

// Container is a parsed GLB asset: the mandatory JSON chunk and, when
// present, the binary buffer chunk.
type Container struct {
	Header Header
	JSON   Chunk
	BIN    optional.Value[Chunk]
}

// Parse reads a GLB container from data. Chunk payloads alias data; the
// caller keeps ownership of the buffer.
func Parse(data []byte) (*Container, error) {
	if len(data) < headerSize {
		return nil, fmt.Errorf("%w: %d byte header", ErrTruncated, len(data))
	}

	hdr := Header{
		Magic:   binary.LittleEndian.Uint32(data[0:4]),
		Version: binary.LittleEndian.Uint32(data[4:8]),
		Length:  binary.LittleEndian.Uint32(data[8:12]),
	}
	if hdr.Magic != Magic {
		return nil, fmt.Errorf("%w: 0x%08X", ErrInvalidMagic, hdr.Magic)
	}
	if hdr.Version != Version {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedVersion, hdr.Version)
	}
	// Compare in the unsigned domain: on 32-bit platforms a declared length
	// of 2^31 or more would go negative through int.
	if uint64(hdr.Length) > uint64(len(data)) {
		return nil, fmt.Errorf("%w: header declares %d bytes, have %d", ErrTruncated, hdr.Length, len(data))
	}

	c := &Container{Header: hdr}
	offset := headerSize
	end := int(hdr.Length)
	first := true

	for offset < end {
		chunk, next, err := readChunk(data[:end], offset)
		if err != nil {
			return nil, err
		}

		switch {
		case first:
			// The container format mandates a leading JSON chunk.
			if chunk.Type != ChunkTypeJSON {
				return nil, fmt.Errorf("%w: first chunk type 0x%08X", ErrChunkOrder, chunk.Type)
			}
			c.JSON = chunk
			first = false
		case chunk.Type == ChunkTypeJSON:
			return nil, fmt.Errorf("%w: duplicate JSON chunk", ErrChunkOrder)
		case chunk.Type == ChunkTypeBIN:
			if c.BIN.Present() {
				return nil, fmt.Errorf("%w: duplicate BIN chunk", ErrChunkOrder)
			}
			c.BIN.Set(chunk)
		default:
			// Unknown chunk, skip.
		}

		offset = next
	}

	if first {
		return nil, fmt.Errorf("%w: no JSON chunk", ErrChunkOrder)
	}
	return c, nil
}

func readChunk(data []byte, offset int) (Chunk, int, error) {
	if offset+chunkHeaderSize > len(data) {
		return Chunk{}, 0, fmt.Errorf("%w: chunk header at offset %d", ErrTruncated, offset)
	}

	length := binary.LittleEndian.Uint32(data[offset : offset+4])
	chunkType := binary.LittleEndian.Uint32(data[offset+4 : offset+8])

	// Validate the attacker-controlled length in the unsigned domain; on
	// 32-bit platforms int(length) could go negative and slip past a
	// signed bounds check.
	start := offset + chunkHeaderSize
	if uint64(length) > uint64(len(data)-start) {
		return Chunk{}, 0, fmt.Errorf("%w: chunk payload of %d bytes at offset %d", ErrTruncated, length, start)
	}

	payload := data[start : start+int(length)]
	chunk := Chunk{
		Type:   chunkType,
		Data:   payload,
		Digest: crc32c.Sum(payload),
	}

	// Chunk starts are 4-byte aligned; the writer pads the payload.
	next := mathutil.AlignUp(start+int(length), chunkAlign)
	if next > len(data) {
		next = len(data)
	}
	return chunk, next, nil
}

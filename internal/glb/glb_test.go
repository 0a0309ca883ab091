package glb

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/fenilsonani/glbkit/internal/crc32c"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildGLB assembles a container the way writers do: JSON chunks padded with
// spaces, BIN chunks with zeros, chunk lengths covering the padding.
func buildGLB(t *testing.T, chunks ...Chunk) []byte {
	t.Helper()

	var body bytes.Buffer
	for _, chunk := range chunks {
		data := append([]byte(nil), chunk.Data...)
		for len(data)%chunkAlign != 0 {
			filler := byte(0x00)
			if chunk.Type == ChunkTypeJSON {
				filler = 0x20
			}
			data = append(data, filler)
		}

		require.NoError(t, binary.Write(&body, binary.LittleEndian, uint32(len(data))))
		require.NoError(t, binary.Write(&body, binary.LittleEndian, chunk.Type))
		body.Write(data)
	}

	var out bytes.Buffer
	require.NoError(t, binary.Write(&out, binary.LittleEndian, uint32(Magic)))
	require.NoError(t, binary.Write(&out, binary.LittleEndian, uint32(Version)))
	require.NoError(t, binary.Write(&out, binary.LittleEndian, uint32(headerSize+body.Len())))
	out.Write(body.Bytes())
	return out.Bytes()
}

func TestParseJSONAndBIN(t *testing.T) {
	jsonData := []byte(`{"asset":{"version":"2.0"}}`)
	binData := []byte{1, 2, 3, 4, 5}

	data := buildGLB(t,
		Chunk{Type: ChunkTypeJSON, Data: jsonData},
		Chunk{Type: ChunkTypeBIN, Data: binData},
	)

	c, err := Parse(data)
	require.NoError(t, err)

	assert.Equal(t, uint32(Magic), c.Header.Magic)
	assert.Equal(t, uint32(Version), c.Header.Version)
	assert.Equal(t, uint32(len(data)), c.Header.Length)

	assert.Equal(t, uint32(ChunkTypeJSON), c.JSON.Type)
	assert.True(t, bytes.HasPrefix(c.JSON.Data, jsonData))
	assert.Equal(t, crc32c.Sum(c.JSON.Data), c.JSON.Digest)

	bin, ok := c.BIN.Get()
	require.True(t, ok)
	assert.True(t, bytes.HasPrefix(bin.Data, binData))
	assert.Equal(t, crc32c.Sum(bin.Data), bin.Digest)
}

func TestParseJSONOnly(t *testing.T) {
	data := buildGLB(t, Chunk{Type: ChunkTypeJSON, Data: []byte(`{}`)})

	c, err := Parse(data)
	require.NoError(t, err)
	assert.False(t, c.BIN.Present())
}

func TestParseSkipsUnknownChunks(t *testing.T) {
	data := buildGLB(t,
		Chunk{Type: ChunkTypeJSON, Data: []byte(`{}`)},
		Chunk{Type: 0xDEADBEEF, Data: []byte("vendor")},
		Chunk{Type: ChunkTypeBIN, Data: []byte{9, 9}},
	)

	c, err := Parse(data)
	require.NoError(t, err)
	bin, ok := c.BIN.Get()
	require.True(t, ok)
	assert.True(t, bytes.HasPrefix(bin.Data, []byte{9, 9}))
}

func TestParseErrors(t *testing.T) {
	valid := buildGLB(t, Chunk{Type: ChunkTypeJSON, Data: []byte(`{}`)})

	tests := []struct {
		name    string
		mutate  func() []byte
		wantErr error
	}{
		{
			name:    "short header",
			mutate:  func() []byte { return valid[:8] },
			wantErr: ErrTruncated,
		},
		{
			name: "bad magic",
			mutate: func() []byte {
				data := append([]byte(nil), valid...)
				binary.LittleEndian.PutUint32(data[0:4], 0x12345678)
				return data
			},
			wantErr: ErrInvalidMagic,
		},
		{
			name: "bad version",
			mutate: func() []byte {
				data := append([]byte(nil), valid...)
				binary.LittleEndian.PutUint32(data[4:8], 1)
				return data
			},
			wantErr: ErrUnsupportedVersion,
		},
		{
			name: "declared length beyond buffer",
			mutate: func() []byte {
				data := append([]byte(nil), valid...)
				binary.LittleEndian.PutUint32(data[8:12], uint32(len(data)+16))
				return data
			},
			wantErr: ErrTruncated,
		},
		{
			name: "chunk payload beyond buffer",
			mutate: func() []byte {
				data := append([]byte(nil), valid...)
				binary.LittleEndian.PutUint32(data[12:16], uint32(len(data)))
				return data
			},
			wantErr: ErrTruncated,
		},
		{
			// Lengths at or above 1<<31 would go negative through int on
			// 32-bit platforms; they must still surface as ErrTruncated,
			// never as a slice bounds panic.
			name: "huge declared length",
			mutate: func() []byte {
				data := append([]byte(nil), valid...)
				binary.LittleEndian.PutUint32(data[8:12], 0xFFFFFFF0)
				return data
			},
			wantErr: ErrTruncated,
		},
		{
			name: "huge chunk length",
			mutate: func() []byte {
				data := append([]byte(nil), valid...)
				binary.LittleEndian.PutUint32(data[12:16], 0xFFFFFFF0)
				return data
			},
			wantErr: ErrTruncated,
		},
		{
			name: "no chunks",
			mutate: func() []byte {
				data := append([]byte(nil), valid[:headerSize]...)
				binary.LittleEndian.PutUint32(data[8:12], headerSize)
				return data
			},
			wantErr: ErrChunkOrder,
		},
		{
			name: "BIN chunk first",
			mutate: func() []byte {
				return buildGLB(t, Chunk{Type: ChunkTypeBIN, Data: []byte{1}})
			},
			wantErr: ErrChunkOrder,
		},
		{
			name: "duplicate JSON chunk",
			mutate: func() []byte {
				return buildGLB(t,
					Chunk{Type: ChunkTypeJSON, Data: []byte(`{}`)},
					Chunk{Type: ChunkTypeJSON, Data: []byte(`{}`)},
				)
			},
			wantErr: ErrChunkOrder,
		},
		{
			name: "duplicate BIN chunk",
			mutate: func() []byte {
				return buildGLB(t,
					Chunk{Type: ChunkTypeJSON, Data: []byte(`{}`)},
					Chunk{Type: ChunkTypeBIN, Data: []byte{1}},
					Chunk{Type: ChunkTypeBIN, Data: []byte{2}},
				)
			},
			wantErr: ErrChunkOrder,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.mutate())
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestLookupExtension(t *testing.T) {
	ext, ok := LookupExtension("KHR_texture_transform")
	require.True(t, ok)
	assert.Equal(t, KHRTextureTransform, ext)
	assert.Equal(t, "KHR_texture_transform", ext.String())

	ext, ok = LookupExtension("VENDOR_not_a_real_extension")
	assert.False(t, ok)
	assert.Equal(t, ExtensionUnknown, ext)

	for known, name := range extensionNames {
		got, ok := LookupExtension(name)
		require.True(t, ok, name)
		assert.Equal(t, known, got, name)
	}
}

func TestDedup(t *testing.T) {
	d := NewDedup()

	a := []byte("shared buffer payload")
	b := append([]byte(nil), a...)
	c := []byte("a different payload")

	first := d.Add(a)
	assert.Equal(t, 1, d.Len())

	// Same content, different backing array: the first copy stays canonical.
	second := d.Add(b)
	assert.Equal(t, 1, d.Len())
	assert.Same(t, &first[0], &second[0])

	d.Add(c)
	assert.Equal(t, 2, d.Len())
}

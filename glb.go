package fastgltf

import (
	"encoding/binary"
	"io"
)

// GLB container constants. All integers in the container are little-endian.
const (
	glbHeaderMagic = 0x46546C67 // "glTF"
	glbVersion     = 2
	glbChunkJSON   = 0x4E4F534A // "JSON"
	glbChunkBIN    = 0x004E4942 // "BIN\0"
)

// glbHeader is the fixed 12-byte file header.
type glbHeader struct {
	Magic   uint32
	Version uint32
	Length  uint32
}

// glbChunkHeader precedes every chunk.
type glbChunkHeader struct {
	ChunkLength uint32
	ChunkType   uint32
}

// glbBuffer records where the BIN chunk of a binary glTF lives. Either the
// bytes were loaded eagerly, or the chunk is a (file, offset, size) range
// that has not been read.
type glbBuffer struct {
	bytes      []byte
	file       string
	fileOffset uint64
	fileSize   uint64
}

// glbFrame is the result of splitting a GLB stream: the JSON chunk as a
// padded source, plus BIN chunk metadata when a BIN chunk exists.
type glbFrame struct {
	json *JSONData
	bin  *glbBuffer
}

// decodeGLB splits a GLB stream into its JSON chunk and optional BIN chunk.
//
// Parameters:
//   - r: the container stream, positioned at byte 0
//   - path: the originating file path; empty for pure stream input
//   - fileSize: the on-disk size for length validation, or a negative value
//     to skip the check when the total size is unknowable
//   - loadBIN: read the BIN payload into memory instead of recording its
//     byte range (always implied when path is empty)
//
// Returns:
//   - *glbFrame: the JSON source and BIN metadata
//   - Error: ErrInvalidGLB on any container violation
func decodeGLB(r io.Reader, path string, fileSize int64, loadBIN bool) (*glbFrame, Error) {
	var header glbHeader
	if err := binary.Read(r, binary.LittleEndian, &header); err != nil {
		return nil, ErrInvalidGLB
	}
	if header.Magic != glbHeaderMagic || header.Version != glbVersion {
		return nil, ErrInvalidGLB
	}
	if fileSize >= 0 && int64(header.Length) != fileSize {
		return nil, ErrInvalidGLB
	}

	var jsonChunk glbChunkHeader
	if err := binary.Read(r, binary.LittleEndian, &jsonChunk); err != nil {
		return nil, ErrInvalidGLB
	}
	if jsonChunk.ChunkType != glbChunkJSON {
		return nil, ErrInvalidGLB
	}

	jsonBytes := make([]byte, int(jsonChunk.ChunkLength)+jsonPadding)
	if _, err := io.ReadFull(r, jsonBytes[:jsonChunk.ChunkLength]); err != nil {
		return nil, ErrInvalidGLB
	}
	frame := &glbFrame{
		json: &JSONData{buf: jsonBytes, n: int(jsonChunk.ChunkLength)},
	}

	// Chunk order is fixed: JSON first, then an optional BIN chunk. Chunks
	// after BIN are ignored.
	offset := uint32(12 + 8 + jsonChunk.ChunkLength)
	if header.Length <= offset+8 {
		return frame, ErrNone
	}

	var binChunk glbChunkHeader
	if err := binary.Read(r, binary.LittleEndian, &binChunk); err != nil {
		return nil, ErrInvalidGLB
	}
	if binChunk.ChunkType != glbChunkBIN {
		return nil, ErrInvalidGLB
	}

	if loadBIN || path == "" {
		payload := make([]byte, binChunk.ChunkLength)
		if _, err := io.ReadFull(r, payload); err != nil {
			return nil, ErrInvalidGLB
		}
		frame.bin = &glbBuffer{bytes: payload, file: path}
	} else {
		// Leave the payload unread; the buffer parser records the range.
		frame.bin = &glbBuffer{
			file:       path,
			fileOffset: uint64(offset) + 8,
			fileSize:   uint64(binChunk.ChunkLength),
		}
	}
	return frame, ErrNone
}

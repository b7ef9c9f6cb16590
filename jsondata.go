package fastgltf

import "os"

// jsonPadding is the number of zero bytes kept after the document. The
// padded form is available through PaddedBytes; the loads in this package
// parse Bytes(), which excludes the padding.
const jsonPadding = 64

// JSONData owns the bytes of a glTF JSON document plus a zero-filled
// padding region. A JSONData is handed to Parser.LoadGLTF; the returned
// document handle does not reference it, since the parsed tree copies
// everything it needs.
type JSONData struct {
	buf []byte
	n   int
}

// NewJSONData creates a JSON source from a byte slice. The bytes are copied.
//
// Parameters:
//   - data: the document bytes
//
// Returns:
//   - *JSONData: the padded JSON source
func NewJSONData(data []byte) *JSONData {
	buf := make([]byte, len(data)+jsonPadding)
	copy(buf, data)
	return &JSONData{buf: buf, n: len(data)}
}

// NewJSONDataFromFile creates a JSON source by reading a whole file. On a
// read failure the source is left empty; the subsequent load fails with
// ErrInvalidJSON.
//
// Parameters:
//   - path: the file to read
//
// Returns:
//   - *JSONData: the padded JSON source, empty if the file was unreadable
func NewJSONDataFromFile(path string) *JSONData {
	data, err := os.ReadFile(path)
	if err != nil {
		return &JSONData{buf: make([]byte, jsonPadding)}
	}
	return &JSONData{buf: append(data, make([]byte, jsonPadding)...), n: len(data)}
}

// Bytes returns the document without the padding region.
func (d *JSONData) Bytes() []byte {
	return d.buf[:d.n]
}

// PaddedBytes returns the document followed by the zero-filled padding.
func (d *JSONData) PaddedBytes() []byte {
	return d.buf
}

// Len returns the document length in bytes, excluding padding.
func (d *JSONData) Len() int {
	return d.n
}

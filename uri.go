package fastgltf

import (
	"path/filepath"
	"strings"

	"github.com/headbirdgames/fastgltf/base64"
)

// decodeURI resolves a buffer or image URI. Data URIs are decoded inline;
// anything else is treated as a path relative to the document's base
// directory and recorded without touching the filesystem.
func (g *GLTF) decodeURI(uri string) (DataSource, DataLocation, Error) {
	if strings.HasPrefix(uri, "data") {
		semicolon := strings.IndexByte(uri, ';')
		if semicolon < len("data:") {
			return DataSource{}, DataLocationNone, ErrInvalidGltf
		}
		comma := strings.IndexByte(uri[semicolon+1:], ',')
		if comma < 0 {
			return DataSource{}, DataLocationNone, ErrInvalidGltf
		}
		comma += semicolon + 1

		if uri[semicolon+1:comma] != "base64" {
			return DataSource{}, DataLocationNone, ErrInvalidGltf
		}

		var decoded []byte
		var err error
		if g.options.has(DontUseSIMD) {
			decoded, err = base64.FallbackDecode(uri[comma+1:])
		} else {
			decoded, err = base64.Decode(uri[comma+1:])
		}
		if err != nil {
			return DataSource{}, DataLocationNone, ErrInvalidGltf
		}

		source := DataSource{
			Bytes:    decoded,
			MimeType: mimeTypeFromString(uri[5:semicolon]),
		}
		if source.MimeType == MimeTypeNone {
			source.MimeType = DetectMimeType(decoded)
		}
		return source, DataLocationVectorWithMime, ErrNone
	}

	source := DataSource{Path: filepath.Join(g.directory, uri)}
	return source, DataLocationFilePathWithByteRange, ErrNone
}

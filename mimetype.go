package fastgltf

import (
	"github.com/h2non/filetype"
	"github.com/h2non/filetype/matchers"
	"github.com/h2non/filetype/types"
)

const (
	mimeTypeJpeg        = "image/jpeg"
	mimeTypePng         = "image/png"
	mimeTypeKtx         = "image/ktx2"
	mimeTypeDds         = "image/vnd-ms.dds"
	mimeTypeGltfBuffer  = "application/gltf-buffer"
	mimeTypeOctetStream = "application/octet-stream"
)

// mimeTypeFromString maps a glTF mimeType field or data-URI media type to
// the enum. Unknown strings map to MimeTypeNone.
func mimeTypeFromString(mime string) MimeType {
	switch mime {
	case mimeTypeJpeg:
		return MimeTypeJPEG
	case mimeTypePng:
		return MimeTypePNG
	case mimeTypeKtx:
		return MimeTypeKTX2
	case mimeTypeDds:
		return MimeTypeDDS
	case mimeTypeGltfBuffer:
		return MimeTypeGltfBuffer
	case mimeTypeOctetStream:
		return MimeTypeOctetStream
	default:
		return MimeTypeNone
	}
}

// The matcher registry knows JPEG and PNG out of the box; the two GPU
// container formats glTF extensions care about are registered here.
var (
	ktx2Type = filetype.NewType("ktx2", mimeTypeKtx)
	ddsType  = filetype.NewType("dds", mimeTypeDds)
)

var ktx2Magic = []byte{0xAB, 0x4B, 0x54, 0x58, 0x20, 0x32, 0x30, 0xBB, 0x0D, 0x0A, 0x1A, 0x0A}

func init() {
	filetype.AddMatcher(ktx2Type, func(buf []byte) bool {
		if len(buf) < len(ktx2Magic) {
			return false
		}
		for i, b := range ktx2Magic {
			if buf[i] != b {
				return false
			}
		}
		return true
	})
	filetype.AddMatcher(ddsType, func(buf []byte) bool {
		return len(buf) >= 4 && buf[0] == 'D' && buf[1] == 'D' && buf[2] == 'S' && buf[3] == ' '
	})
}

// DetectMimeType classifies a byte payload by magic bytes. It is used when
// an embedded resource declares no media type, and is exported for callers
// that fetch external files themselves.
//
// Parameters:
//   - data: the payload to sniff
//
// Returns:
//   - MimeType: the detected type, or MimeTypeNone
func DetectMimeType(data []byte) MimeType {
	kind, err := filetype.Match(data)
	if err != nil || kind == types.Unknown {
		return MimeTypeNone
	}
	switch kind {
	case matchers.TypeJpeg:
		return MimeTypeJPEG
	case matchers.TypePng:
		return MimeTypePNG
	case ktx2Type:
		return MimeTypeKTX2
	case ddsType:
		return MimeTypeDDS
	default:
		return MimeTypeNone
	}
}

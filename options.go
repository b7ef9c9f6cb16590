package fastgltf

// Options is a bit set of caller-supplied load flags.
type Options uint32

const (
	// DontRequireValidAssetMember skips the precondition that the document
	// carries an asset object with a version string.
	DontRequireValidAssetMember Options = 1 << iota

	// AllowDouble permits accessors with componentType 5130 (double
	// precision float), which the glTF 2.0 schema does not define.
	AllowDouble

	// LoadGLBBuffers reads the BIN chunk of a binary glTF into memory
	// during the load. Without it the chunk is recorded as a file byte
	// range and its bytes are never touched.
	LoadGLBBuffers

	// DontUseSIMD forces the portable base64 and JSON implementations.
	// Selection happens per load; other parsers in the process are not
	// affected.
	DontUseSIMD
)

func (o Options) has(flag Options) bool {
	return o&flag != 0
}

// Extensions is a bit set of glTF extensions a Parser is willing to handle.
type Extensions uint32

const (
	// ExtensionKHRTextureBasisU enables KHR_texture_basisu, which lets a
	// texture source a Basis Universal compressed image.
	ExtensionKHRTextureBasisU Extensions = 1 << iota

	// ExtensionKHRTextureTransform enables KHR_texture_transform, which
	// adds UV offset/rotation/scale to texture references.
	ExtensionKHRTextureTransform

	// ExtensionMSFTTextureDDS enables MSFT_texture_dds, which lets a
	// texture source a DDS image.
	ExtensionMSFTTextureDDS
)

// ExtensionsNone enables no extensions.
const ExtensionsNone Extensions = 0

func (e Extensions) has(flag Extensions) bool {
	return e&flag != 0
}

// Package fastgltf parses glTF 2.0 assets from their JSON (.gltf) and
// binary (.glb) encodings into an in-memory Asset.
//
// A Parser is constructed once with the set of extensions the caller is
// prepared to handle and reused across loads. Each load produces a GLTF
// document handle; the caller invokes the Parse* methods it cares about and
// then takes the Asset. The library stops at structure: it records external
// buffer references without fetching them, and it never decodes image
// pixels or touches a GPU.
package fastgltf

import "math"

// --- Enumerations ---

// ComponentType is the scalar storage type of an accessor. Values match the
// glTF componentType constants.
type ComponentType uint32

const (
	ComponentTypeInvalid       ComponentType = 0
	ComponentTypeByte          ComponentType = 5120
	ComponentTypeUnsignedByte  ComponentType = 5121
	ComponentTypeShort         ComponentType = 5122
	ComponentTypeUnsignedShort ComponentType = 5123
	ComponentTypeUnsignedInt   ComponentType = 5125
	ComponentTypeFloat         ComponentType = 5126
	ComponentTypeDouble        ComponentType = 5130
)

// componentTypeFromValue maps a raw componentType number to the enum, or
// ComponentTypeInvalid for numbers outside the schema.
func componentTypeFromValue(v uint64) ComponentType {
	switch ComponentType(v) {
	case ComponentTypeByte, ComponentTypeUnsignedByte, ComponentTypeShort,
		ComponentTypeUnsignedShort, ComponentTypeUnsignedInt,
		ComponentTypeFloat, ComponentTypeDouble:
		return ComponentType(v)
	default:
		return ComponentTypeInvalid
	}
}

// AccessorType is the element shape of an accessor.
type AccessorType uint8

const (
	AccessorTypeInvalid AccessorType = iota
	AccessorTypeScalar
	AccessorTypeVec2
	AccessorTypeVec3
	AccessorTypeVec4
	AccessorTypeMat2
	AccessorTypeMat3
	AccessorTypeMat4
)

// accessorTypeFromString maps a glTF type string to the enum, or
// AccessorTypeInvalid for unknown strings.
func accessorTypeFromString(s string) AccessorType {
	switch s {
	case "SCALAR":
		return AccessorTypeScalar
	case "VEC2":
		return AccessorTypeVec2
	case "VEC3":
		return AccessorTypeVec3
	case "VEC4":
		return AccessorTypeVec4
	case "MAT2":
		return AccessorTypeMat2
	case "MAT3":
		return AccessorTypeMat3
	case "MAT4":
		return AccessorTypeMat4
	default:
		return AccessorTypeInvalid
	}
}

// BufferTarget is the intended GPU binding point of a buffer view. Values
// match the glTF target constants.
type BufferTarget uint32

const (
	BufferTargetArrayBuffer        BufferTarget = 34962
	BufferTargetElementArrayBuffer BufferTarget = 34963
)

// PrimitiveType is the topology of a mesh primitive. Values match the glTF
// mode constants; the default is PrimitiveTypeTriangles.
type PrimitiveType uint8

const (
	PrimitiveTypePoints PrimitiveType = iota
	PrimitiveTypeLines
	PrimitiveTypeLineLoop
	PrimitiveTypeLineStrip
	PrimitiveTypeTriangles
	PrimitiveTypeTriangleStrip
	PrimitiveTypeTriangleFan
)

// MimeType classifies an embedded or referenced resource.
type MimeType uint8

const (
	MimeTypeNone MimeType = iota
	MimeTypeJPEG
	MimeTypePNG
	MimeTypeKTX2
	MimeTypeDDS
	MimeTypeGltfBuffer
	MimeTypeOctetStream
)

// DataLocation discriminates which representation of a DataSource is
// populated.
type DataLocation uint8

const (
	// DataLocationNone means the source holds nothing.
	DataLocationNone DataLocation = iota
	// DataLocationVectorWithMime means the bytes are in memory.
	DataLocationVectorWithMime
	// DataLocationFilePathWithByteRange means the source is a file path
	// plus byte offset; the bytes have not been read.
	DataLocationFilePathWithByteRange
	// DataLocationBufferViewWithMime means the source is a buffer view
	// index into the asset.
	DataLocationBufferViewWithMime
)

// DataSource carries the resolved data reference of a buffer or image.
// Exactly one representation is populated; the owning entity's DataLocation
// says which.
type DataSource struct {
	// Bytes holds the data when it was embedded or eagerly loaded.
	Bytes []byte

	// Path is the resolved filesystem path for external references.
	Path string

	// MimeType classifies the data when known.
	MimeType MimeType

	// FileByteOffset is the offset of the data within Path, for sources
	// that point into a larger file.
	FileByteOffset uint64

	// BufferViewIndex references a buffer view within the same asset.
	BufferViewIndex *uint64
}

// --- Entities ---

// Accessor is a typed view over a buffer view.
type Accessor struct {
	BufferViewIndex *uint64
	ByteOffset      uint64
	ComponentType   ComponentType
	Type            AccessorType
	Count           uint64
	Normalized      bool
	Name            string
}

// BufferView is a contiguous, possibly strided slice of a buffer.
type BufferView struct {
	BufferIndex uint64
	ByteOffset  uint64
	ByteLength  uint64
	ByteStride  *uint64
	Target      *BufferTarget
	Name        string
}

// Buffer is a block of binary data, either embedded, external, or the BIN
// chunk of a binary glTF.
type Buffer struct {
	ByteLength uint64
	Data       DataSource
	Location   DataLocation
	Name       string
}

// Image is a picture resource, referenced by URI or by buffer view.
type Image struct {
	Data     DataSource
	Location DataLocation
	Name     string
}

// NoImageIndex is the Texture.ImageIndex sentinel meaning no source has
// been resolved. ParseTextures starts from it while resolving a texture; a
// texture that ends with neither a plain source nor an extension-supplied
// image fails the parse, so a parsed Asset does not carry it.
const NoImageIndex = uint64(math.MaxUint64)

// Texture pairs an image with a sampler. When an enabled texture extension
// supplies the image, the plain glTF source is demoted to
// FallbackImageIndex.
type Texture struct {
	ImageIndex         uint64
	FallbackImageIndex *uint64
	SamplerIndex       *uint64
	Name               string
}

// TextureInfo is a reference from a material to a texture, including the UV
// transform added by KHR_texture_transform. Without that extension the
// transform fields hold their identity defaults.
type TextureInfo struct {
	TextureIndex  uint64
	TexCoordIndex uint64

	// Scale only carries meaning on normal textures; every slot populates
	// it so the field reads uniformly.
	Scale float32

	Rotation float32
	UVOffset [2]float32
	UVScale  [2]float32
}

// PBRData is the metallic-roughness parameter block of a material.
type PBRData struct {
	BaseColorFactor          [4]float32
	MetallicFactor           float32
	RoughnessFactor          float32
	BaseColorTexture         *TextureInfo
	MetallicRoughnessTexture *TextureInfo
}

// Material describes the appearance of a primitive.
type Material struct {
	EmissiveFactor   [3]float32
	NormalTexture    *TextureInfo
	OcclusionTexture *TextureInfo
	EmissiveTexture  *TextureInfo
	PBRData          *PBRData
	Name             string
}

// Primitive is a renderable unit of a mesh. Attributes maps every semantic
// name found in the source to its accessor index, unfiltered.
type Primitive struct {
	Attributes      map[string]uint64
	Type            PrimitiveType
	IndicesAccessor *uint64
	MaterialIndex   *uint64
}

// Mesh is an ordered set of primitives.
type Mesh struct {
	Primitives []Primitive
	Name       string
}

// Node is one element of the transform hierarchy. Matrix and the TRS fields
// are parsed independently; HasMatrix tells the consumer which to honor.
type Node struct {
	MeshIndex   *uint64
	Children    []uint64
	HasMatrix   bool
	Matrix      [16]float32
	Scale       [3]float32
	Translation [3]float32
	Rotation    [4]float32
	Name        string
}

// Scene is a set of root node indices.
type Scene struct {
	NodeIndices []uint64
	Name        string
}

// Asset is the root aggregate produced by parsing. All cross-references are
// indices into these slices, which preserve source order. An Asset is never
// mutated after it is handed to the caller.
type Asset struct {
	Accessors    []Accessor
	BufferViews  []BufferView
	Buffers      []Buffer
	Images       []Image
	Textures     []Texture
	Materials    []Material
	Meshes       []Mesh
	Nodes        []Node
	Scenes       []Scene
	DefaultScene *uint64
}

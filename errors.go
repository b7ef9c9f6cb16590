package fastgltf

// Error is the single error domain of the library. Every failure a load or
// parse can produce is one of these values; the first failure is latched on
// the GLTF handle and surfaced unchanged.
type Error uint32

const (
	// ErrNone means no error occurred.
	ErrNone Error = iota

	// ErrInvalidPath means the base directory is not a directory, or the
	// binary glTF path is not a regular file.
	ErrInvalidPath

	// ErrInvalidJSON means the document could not be parsed as JSON, or its
	// root is not an object.
	ErrInvalidJSON

	// ErrInvalidGLB means the binary container is malformed: header magic or
	// version mismatch, chunk type mismatch, or length inconsistency.
	ErrInvalidGLB

	// ErrInvalidGltf means a structural schema violation: a required field
	// is missing or has the wrong type, or a cross-field constraint failed.
	ErrInvalidGltf

	// ErrInvalidOrMissingAssetField means the top-level asset object or its
	// version string is missing while required.
	ErrInvalidOrMissingAssetField

	// errMissingField marks an absent top-level array. It never escapes the
	// library: callers of getArray translate it to success with an empty
	// result.
	errMissingField

	// ErrUnsupportedExtensions means extensionsRequired names an extension
	// this library does not know.
	ErrUnsupportedExtensions

	// ErrMissingExtensions means extensionsRequired names a known extension
	// the caller did not enable on the Parser.
	ErrMissingExtensions
)

var _ error = ErrNone

// Error implements the error interface.
//
// Returns:
//   - string: a short description of the error
func (e Error) Error() string {
	switch e {
	case ErrNone:
		return "no error"
	case ErrInvalidPath:
		return "invalid path"
	case ErrInvalidJSON:
		return "invalid JSON document"
	case ErrInvalidGLB:
		return "invalid GLB container"
	case ErrInvalidGltf:
		return "invalid glTF structure"
	case ErrInvalidOrMissingAssetField:
		return "invalid or missing asset field"
	case errMissingField:
		return "missing field"
	case ErrUnsupportedExtensions:
		return "unsupported required extension"
	case ErrMissingExtensions:
		return "required extension not enabled"
	default:
		return "unknown error"
	}
}

package fastgltf

import (
	"github.com/headbirdgames/fastgltf/internal/jsondom"
)

// GLTF is the handle to one loaded document. The caller invokes the Parse*
// methods it needs, in any order, and then takes the Asset. The first
// parse failure is latched; later Parse* calls short-circuit and Asset
// returns nil.
//
// A GLTF is not safe for concurrent use.
type GLTF struct {
	root       *jsondom.Value
	directory  string
	options    Options
	extensions Extensions
	glb        *glbBuffer

	asset *Asset
	err   Error
}

func newGLTF(root *jsondom.Value, directory string, options Options, extensions Extensions, glb *glbBuffer) *GLTF {
	return &GLTF{
		root:       root,
		directory:  directory,
		options:    options,
		extensions: extensions,
		glb:        glb,
		asset:      &Asset{},
	}
}

// Error returns the latched parse error, or ErrNone.
//
// Returns:
//   - Error: the first error any Parse* call produced
func (g *GLTF) Error() Error {
	return g.err
}

// Asset hands over the parsed asset. After any parse failure it returns
// nil; the partially built asset is never exposed. Ownership transfers to
// the caller: subsequent calls return nil.
//
// Returns:
//   - *Asset: the asset, or nil
func (g *GLTF) Asset() *Asset {
	if g.err != ErrNone {
		return nil
	}
	asset := g.asset
	g.asset = nil
	return asset
}

// ParseAll runs every object parser in sequence, stopping at the first
// failure.
//
// Returns:
//   - error: the first parse error, or nil
func (g *GLTF) ParseAll() error {
	steps := []func() error{
		g.ParseAccessors,
		g.ParseBufferViews,
		g.ParseBuffers,
		g.ParseImages,
		g.ParseTextures,
		g.ParseMaterials,
		g.ParseMeshes,
		g.ParseNodes,
		g.ParseScenes,
	}
	for _, step := range steps {
		if err := step(); err != nil {
			return err
		}
	}
	return nil
}

// checkAssetField verifies the document carries an asset object with a
// version string.
func (g *GLTF) checkAssetField() bool {
	asset := g.root.Get("asset")
	if asset == nil || asset.Kind() != jsondom.KindObject {
		return false
	}
	version := asset.Get("version")
	if version == nil {
		return false
	}
	_, ok := version.Str()
	return ok
}

// fail latches the first error and returns it for the caller to propagate.
func (g *GLTF) fail(e Error) error {
	if g.err == ErrNone {
		g.err = e
	}
	return e
}

// sticky short-circuits a Parse* method when a previous one failed.
func (g *GLTF) sticky() error {
	if g.err != ErrNone {
		return g.err
	}
	return nil
}

// isObject reports whether a DOM value is a JSON object.
func isObject(v *jsondom.Value) bool {
	return v.Kind() == jsondom.KindObject
}

// getArray fetches a named member that must be an array when present.
// Absence is reported as errMissingField, which callers translate to
// success with nothing appended.
func getArray(parent *jsondom.Value, name string) ([]*jsondom.Value, Error) {
	member := parent.Get(name)
	if member == nil {
		return nil, errMissingField
	}
	if member.Kind() != jsondom.KindArray {
		return nil, ErrInvalidGltf
	}
	return member.Elems(), ErrNone
}

// Field accessors shared by the object parsers. Each returns the zero value
// and false when the member is absent or has the wrong type.

func getUint(obj *jsondom.Value, key string) (uint64, bool) {
	member := obj.Get(key)
	if member == nil {
		return 0, false
	}
	return member.Uint()
}

func getFloat(obj *jsondom.Value, key string) (float64, bool) {
	member := obj.Get(key)
	if member == nil {
		return 0, false
	}
	return member.Float()
}

func getString(obj *jsondom.Value, key string) (string, bool) {
	member := obj.Get(key)
	if member == nil {
		return "", false
	}
	return member.Str()
}

func getBool(obj *jsondom.Value, key string) (bool, bool) {
	member := obj.Get(key)
	if member == nil {
		return false, false
	}
	return member.Bool()
}

func getObject(obj *jsondom.Value, key string) *jsondom.Value {
	member := obj.Get(key)
	if member == nil || member.Kind() != jsondom.KindObject {
		return nil
	}
	return member
}

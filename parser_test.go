package fastgltf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// loadDocument parses a JSON document with the given flags, failing the
// test if the load itself errors.
func loadDocument(t *testing.T, doc string, options Options, extensions Extensions) *GLTF {
	t.Helper()
	g, err := NewParser(extensions).LoadGLTF(NewJSONData([]byte(doc)), t.TempDir(), options)
	require.NoError(t, err)
	require.NotNil(t, g)
	return g
}

// parseAsset runs every object parser and takes the asset.
func parseAsset(t *testing.T, doc string, options Options, extensions Extensions) *Asset {
	t.Helper()
	g := loadDocument(t, doc, options, extensions)
	require.NoError(t, g.ParseAll())
	asset := g.Asset()
	require.NotNil(t, asset)
	return asset
}

func TestMinimalDocument(t *testing.T) {
	asset := parseAsset(t, `{"asset":{"version":"2.0"}}`, 0, ExtensionsNone)

	assert.Empty(t, asset.Accessors)
	assert.Empty(t, asset.BufferViews)
	assert.Empty(t, asset.Buffers)
	assert.Empty(t, asset.Images)
	assert.Empty(t, asset.Textures)
	assert.Empty(t, asset.Materials)
	assert.Empty(t, asset.Meshes)
	assert.Empty(t, asset.Nodes)
	assert.Empty(t, asset.Scenes)
	assert.Nil(t, asset.DefaultScene)
}

func TestEmptyTopLevelArrays(t *testing.T) {
	asset := parseAsset(t, `{
		"asset": {"version": "2.0"},
		"accessors": [], "buffers": [], "bufferViews": [], "images": [],
		"textures": [], "materials": [], "meshes": [], "nodes": [], "scenes": []
	}`, 0, ExtensionsNone)

	assert.Empty(t, asset.Accessors)
	assert.Empty(t, asset.Scenes)
}

func TestMissingAssetField(t *testing.T) {
	p := NewParser(ExtensionsNone)
	g, err := p.LoadGLTF(NewJSONData([]byte(`{}`)), t.TempDir(), 0)
	assert.Nil(t, g)
	assert.ErrorIs(t, err, ErrInvalidOrMissingAssetField)
	assert.Equal(t, ErrInvalidOrMissingAssetField, p.Error())

	// Version must be a string, not merely present.
	g, err = p.LoadGLTF(NewJSONData([]byte(`{"asset":{"version":2}}`)), t.TempDir(), 0)
	assert.Nil(t, g)
	assert.ErrorIs(t, err, ErrInvalidOrMissingAssetField)

	// The precondition can be waived.
	g, err = p.LoadGLTF(NewJSONData([]byte(`{}`)), t.TempDir(), DontRequireValidAssetMember)
	require.NoError(t, err)
	require.NotNil(t, g)
	require.NoError(t, g.ParseAll())
	assert.NotNil(t, g.Asset())
}

func TestInvalidJSON(t *testing.T) {
	p := NewParser(ExtensionsNone)
	for _, doc := range []string{``, `{`, `[1, 2]`, `"just a string"`} {
		g, err := p.LoadGLTF(NewJSONData([]byte(doc)), t.TempDir(), 0)
		assert.Nil(t, g, "document %q", doc)
		assert.ErrorIs(t, err, ErrInvalidJSON, "document %q", doc)
	}
}

func TestInvalidBaseDirectory(t *testing.T) {
	p := NewParser(ExtensionsNone)
	g, err := p.LoadGLTF(NewJSONData([]byte(`{"asset":{"version":"2.0"}}`)), "/does/not/exist", 0)
	assert.Nil(t, g)
	assert.ErrorIs(t, err, ErrInvalidPath)
	assert.Equal(t, ErrInvalidPath, p.Error())
}

func TestUnreadableJSONFile(t *testing.T) {
	data := NewJSONDataFromFile("/does/not/exist.gltf")
	require.NotNil(t, data)
	assert.Zero(t, data.Len())

	g, err := NewParser(ExtensionsNone).LoadGLTF(data, t.TempDir(), 0)
	assert.Nil(t, g)
	assert.ErrorIs(t, err, ErrInvalidJSON)
}

func TestStickyError(t *testing.T) {
	g := loadDocument(t, `{
		"asset": {"version": "2.0"},
		"accessors": [{"type": "SCALAR", "count": 1}],
		"nodes": [{"name": "survivor"}]
	}`, 0, ExtensionsNone)

	// componentType is required, so accessors fail first.
	err := g.ParseAccessors()
	assert.ErrorIs(t, err, ErrInvalidGltf)
	assert.Equal(t, ErrInvalidGltf, g.Error())

	// Every later parse short-circuits on the latched error.
	assert.ErrorIs(t, g.ParseNodes(), ErrInvalidGltf)
	assert.Nil(t, g.Asset())
}

func TestParseOrderIndependent(t *testing.T) {
	const doc = `{
		"asset": {"version": "2.0"},
		"buffers": [{"byteLength": 3, "uri": "data:application/octet-stream;base64,AQID"}],
		"bufferViews": [{"buffer": 0, "byteLength": 3}],
		"accessors": [{"bufferView": 0, "componentType": 5121, "type": "SCALAR", "count": 3}]
	}`

	forward := loadDocument(t, doc, 0, ExtensionsNone)
	require.NoError(t, forward.ParseBuffers())
	require.NoError(t, forward.ParseBufferViews())
	require.NoError(t, forward.ParseAccessors())

	backward := loadDocument(t, doc, 0, ExtensionsNone)
	require.NoError(t, backward.ParseAccessors())
	require.NoError(t, backward.ParseBufferViews())
	require.NoError(t, backward.ParseBuffers())

	assert.Equal(t, forward.Asset(), backward.Asset())
}

func TestIndependentParsersAgree(t *testing.T) {
	const doc = `{
		"asset": {"version": "2.0"},
		"buffers": [{"byteLength": 3, "uri": "data:application/octet-stream;base64,AQID"}],
		"meshes": [{"primitives": [{"attributes": {"POSITION": 0}}]}],
		"nodes": [{"mesh": 0, "translation": [1, 2, 3]}],
		"scenes": [{"nodes": [0]}],
		"scene": 0
	}`

	first := parseAsset(t, doc, 0, ExtensionsNone)
	second := parseAsset(t, doc, 0, ExtensionsNone)
	assert.Equal(t, first, second)
}

func TestSIMDAndPortableAgree(t *testing.T) {
	const doc = `{
		"asset": {"version": "2.0"},
		"buffers": [{"byteLength": 3, "uri": "data:application/octet-stream;base64,AQID"}],
		"materials": [{"emissiveFactor": [0.25, 0.5, 1.0]}],
		"nodes": [{"matrix": [1,0,0,0,0,1,0,0,0,0,1,0,4,5,6,1]}]
	}`

	fast := parseAsset(t, doc, 0, ExtensionsNone)
	slow := parseAsset(t, doc, DontUseSIMD, ExtensionsNone)
	assert.Equal(t, slow, fast)
}

func TestAssetOwnershipTransfers(t *testing.T) {
	g := loadDocument(t, `{"asset":{"version":"2.0"}}`, 0, ExtensionsNone)
	require.NoError(t, g.ParseAll())
	require.NotNil(t, g.Asset())
	assert.Nil(t, g.Asset(), "second take must return nothing")
}

func TestParserReuseAcrossLoads(t *testing.T) {
	p := NewParser(ExtensionsNone)
	for i := 0; i < 3; i++ {
		g, err := p.LoadGLTF(NewJSONData([]byte(`{"asset":{"version":"2.0"}}`)), t.TempDir(), 0)
		require.NoError(t, err)
		require.NoError(t, g.ParseAll())
		require.NotNil(t, g.Asset())
		assert.Equal(t, ErrNone, p.Error())
	}
}

package fastgltf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequiredUnknownExtension(t *testing.T) {
	p := NewParser(ExtensionKHRTextureBasisU | ExtensionKHRTextureTransform | ExtensionMSFTTextureDDS)
	g, err := p.LoadGLTF(NewJSONData([]byte(
		`{"asset":{"version":"2.0"},"extensionsRequired":["EXT_unknown"]}`,
	)), t.TempDir(), 0)

	assert.Nil(t, g)
	assert.ErrorIs(t, err, ErrUnsupportedExtensions)
	assert.Equal(t, ErrUnsupportedExtensions, p.Error())
}

func TestRequiredExtensionNotEnabled(t *testing.T) {
	// Known to the library, but the caller did not opt in. Enabling a
	// different extension must not satisfy the requirement.
	p := NewParser(ExtensionKHRTextureTransform)
	g, err := p.LoadGLTF(NewJSONData([]byte(
		`{"asset":{"version":"2.0"},"extensionsRequired":["KHR_texture_basisu"]}`,
	)), t.TempDir(), 0)

	assert.Nil(t, g)
	assert.ErrorIs(t, err, ErrMissingExtensions)
}

func TestRequiredExtensionEnabled(t *testing.T) {
	for _, name := range []string{"KHR_texture_basisu", "KHR_texture_transform", "MSFT_texture_dds"} {
		p := NewParser(ExtensionKHRTextureBasisU | ExtensionKHRTextureTransform | ExtensionMSFTTextureDDS)
		g, err := p.LoadGLTF(NewJSONData([]byte(
			`{"asset":{"version":"2.0"},"extensionsRequired":["`+name+`"]}`,
		)), t.TempDir(), 0)
		require.NoError(t, err, name)
		require.NotNil(t, g, name)
	}
}

func TestRequiredExtensionNonStringEntry(t *testing.T) {
	p := NewParser(ExtensionsNone)
	g, err := p.LoadGLTF(NewJSONData([]byte(
		`{"asset":{"version":"2.0"},"extensionsRequired":[42]}`,
	)), t.TempDir(), 0)

	assert.Nil(t, g)
	assert.ErrorIs(t, err, ErrInvalidGltf)
}

func TestExtensionsUsedNotEnforced(t *testing.T) {
	g, err := NewParser(ExtensionsNone).LoadGLTF(NewJSONData([]byte(
		`{"asset":{"version":"2.0"},"extensionsUsed":["EXT_unknown","KHR_texture_basisu"]}`,
	)), t.TempDir(), 0)
	require.NoError(t, err)
	require.NotNil(t, g)
}

func TestUnknownObjectLevelExtensionIgnored(t *testing.T) {
	// Unknown names under an object's extensions member are not an error.
	asset := parseAsset(t, `{
		"asset": {"version": "2.0"},
		"materials": [{"extensions": {"EXT_mystery": {"level": 3}}}]
	}`, 0, ExtensionsNone)
	require.Len(t, asset.Materials, 1)
}

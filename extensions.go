package fastgltf

const (
	extensionKHRTextureBasisU    = "KHR_texture_basisu"
	extensionKHRTextureTransform = "KHR_texture_transform"
	extensionMSFTTextureDDS      = "MSFT_texture_dds"
)

// extensionRegistry is the full set of extension names this library
// recognizes, paired with their Extensions bits.
var extensionRegistry = []struct {
	name string
	flag Extensions
}{
	{extensionKHRTextureBasisU, ExtensionKHRTextureBasisU},
	{extensionKHRTextureTransform, ExtensionKHRTextureTransform},
	{extensionMSFTTextureDDS, ExtensionMSFTTextureDDS},
}

// checkExtensions validates extensionsRequired against the registry and the
// set the caller enabled. extensionsUsed is deliberately not checked here.
func (g *GLTF) checkExtensions() Error {
	required := g.root.Get("extensionsRequired")
	if required == nil {
		return ErrNone
	}
	for _, entry := range required.Elems() {
		name, ok := entry.Str()
		if !ok {
			return ErrInvalidGltf
		}

		known := false
		listed := false
		for _, ext := range extensionRegistry {
			if ext.name == name {
				known = true
				listed = g.extensions.has(ext.flag)
				break
			}
		}
		if !known {
			return ErrUnsupportedExtensions
		}
		if !listed {
			return ErrMissingExtensions
		}
	}
	return ErrNone
}

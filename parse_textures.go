package fastgltf

import (
	"github.com/headbirdgames/fastgltf/internal/jsondom"
)

// Parsers for the texture layer: images, textures, and the TextureInfo
// references embedded in materials.

// ParseImages reads the top-level images array. An image references its
// data by uri or by bufferView, never both; a bufferView reference must be
// accompanied by a mimeType.
//
// Returns:
//   - error: ErrInvalidGltf on a schema violation, nil otherwise
func (g *GLTF) ParseImages() error {
	if err := g.sticky(); err != nil {
		return err
	}

	images, arrErr := getArray(g.root, "images")
	if arrErr == errMissingField {
		return nil
	} else if arrErr != ErrNone {
		return g.fail(arrErr)
	}

	g.asset.Images = make([]Image, 0, len(images))
	for _, value := range images {
		var image Image
		if !isObject(value) {
			return g.fail(ErrInvalidGltf)
		}

		if uri, ok := getString(value, "uri"); ok {
			if value.Get("bufferView") != nil {
				// If uri is declared, bufferView cannot be declared.
				return g.fail(ErrInvalidGltf)
			}
			source, location, uriErr := g.decodeURI(uri)
			if uriErr != ErrNone {
				return g.fail(uriErr)
			}
			image.Data = source
			image.Location = location

			if mime, ok := getString(value, "mimeType"); ok {
				image.Data.MimeType = mimeTypeFromString(mime)
			}
		}

		if bufferViewIndex, ok := getUint(value, "bufferView"); ok {
			mime, ok := getString(value, "mimeType")
			if !ok {
				// If bufferView is defined, mimeType needs to also be defined.
				return g.fail(ErrInvalidGltf)
			}
			index := bufferViewIndex
			image.Data.BufferViewIndex = &index
			image.Data.MimeType = mimeTypeFromString(mime)
			image.Location = DataLocationBufferViewWithMime
		}

		if image.Location == DataLocationNone {
			return g.fail(ErrInvalidGltf)
		}

		image.Name, _ = getString(value, "name")

		g.asset.Images = append(g.asset.Images, image)
	}

	return nil
}

// ParseTextures reads the top-level textures array. A texture must get an
// image from its source field or from an enabled texture extension; when
// both exist the extension wins and the plain source becomes the fallback.
//
// Returns:
//   - error: ErrInvalidGltf on a schema violation, nil otherwise
func (g *GLTF) ParseTextures() error {
	if err := g.sticky(); err != nil {
		return err
	}

	textures, arrErr := getArray(g.root, "textures")
	if arrErr == errMissingField {
		return nil
	} else if arrErr != ErrNone {
		return g.fail(arrErr)
	}

	g.asset.Textures = make([]Texture, 0, len(textures))
	for _, value := range textures {
		var texture Texture
		if !isObject(value) {
			return g.fail(ErrInvalidGltf)
		}

		extensionsObject := getObject(value, "extensions")

		texture.ImageIndex = NoImageIndex
		source, hasSource := getUint(value, "source")
		if hasSource {
			texture.ImageIndex = source
		} else if extensionsObject == nil {
			// Without a source, an extension has to supply the image.
			return g.fail(ErrInvalidGltf)
		}

		if extensionsObject != nil {
			found, ok := g.parseTextureExtensions(&texture, extensionsObject)
			if !ok || (!found && !hasSource) {
				return g.fail(ErrInvalidGltf)
			}
			if found && hasSource {
				fallback := source
				texture.FallbackImageIndex = &fallback
			}
		}

		if samplerIndex, ok := getUint(value, "sampler"); ok {
			texture.SamplerIndex = &samplerIndex
		}

		texture.Name, _ = getString(value, "name")

		g.asset.Textures = append(g.asset.Textures, texture)
	}

	return nil
}

// imageIndexForExtension reads the source field of one texture extension
// object. The three return states mirror the lookup: the extension is
// absent, the extension is present but malformed, or a source was found.
func imageIndexForExtension(extensions *jsondom.Value, name string) (index uint64, present bool, malformed bool) {
	extensionObject := getObject(extensions, name)
	if extensionObject == nil {
		return 0, false, false
	}
	source, ok := getUint(extensionObject, "source")
	if !ok {
		return 0, true, true
	}
	return source, true, false
}

// parseTextureExtensions resolves the image source from the enabled texture
// extensions in priority order. It reports whether a source was found, and
// ok is false when an enabled extension entry is malformed.
func (g *GLTF) parseTextureExtensions(texture *Texture, extensions *jsondom.Value) (found bool, ok bool) {
	if g.extensions.has(ExtensionKHRTextureBasisU) {
		index, present, malformed := imageIndexForExtension(extensions, extensionKHRTextureBasisU)
		if malformed {
			return false, false
		}
		if present {
			texture.ImageIndex = index
			return true, true
		}
	}

	if g.extensions.has(ExtensionMSFTTextureDDS) {
		index, present, malformed := imageIndexForExtension(extensions, extensionMSFTTextureDDS)
		if malformed {
			return false, false
		}
		if present {
			texture.ImageIndex = index
			return true, true
		}
	}

	return false, true
}

// parseTextureInfo reads one texture reference field of a material. An
// absent field yields (nil, ErrNone). The UV transform fields come from
// KHR_texture_transform when that extension is enabled; otherwise they keep
// their identity defaults.
func (g *GLTF) parseTextureInfo(parent *jsondom.Value, key string) (*TextureInfo, Error) {
	child := getObject(parent, key)
	if child == nil {
		return nil, ErrNone
	}

	info := TextureInfo{
		Scale:   1,
		UVScale: [2]float32{1, 1},
	}

	index, ok := getUint(child, "index")
	if !ok {
		return nil, ErrInvalidGltf
	}
	info.TextureIndex = index

	info.TexCoordIndex, _ = getUint(child, "texCoord")

	// scale carries meaning only on normal textures; it is read uniformly.
	if scale, ok := getFloat(child, "scale"); ok {
		info.Scale = float32(scale)
	}

	if !g.extensions.has(ExtensionKHRTextureTransform) {
		return &info, ErrNone
	}

	extensions := getObject(child, "extensions")
	if extensions == nil {
		return &info, ErrNone
	}
	transform := getObject(extensions, extensionKHRTextureTransform)
	if transform == nil {
		return &info, ErrNone
	}

	if texCoord, ok := getUint(transform, "texCoord"); ok {
		info.TexCoordIndex = texCoord
	}
	if rotation, ok := getFloat(transform, "rotation"); ok {
		info.Rotation = float32(rotation)
	}

	if offset := transform.Get("offset"); offset != nil {
		elems := offset.Elems()
		for i := 0; i < 2; i++ {
			if i >= len(elems) {
				return nil, ErrInvalidGltf
			}
			val, ok := elems[i].Float()
			if !ok {
				return nil, ErrInvalidGltf
			}
			info.UVOffset[i] = float32(val)
		}
	}

	if scale := transform.Get("scale"); scale != nil {
		elems := scale.Elems()
		for i := 0; i < 2; i++ {
			if i >= len(elems) {
				return nil, ErrInvalidGltf
			}
			val, ok := elems[i].Float()
			if !ok {
				return nil, ErrInvalidGltf
			}
			info.UVScale[i] = float32(val)
		}
	}

	return &info, ErrNone
}

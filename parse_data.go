package fastgltf

// Parsers for the data layer: accessors, buffer views, and buffers.

// ParseAccessors reads the top-level accessors array. A missing array is
// success with no accessors.
//
// Returns:
//   - error: ErrInvalidGltf on a schema violation, nil otherwise
func (g *GLTF) ParseAccessors() error {
	if err := g.sticky(); err != nil {
		return err
	}

	accessors, arrErr := getArray(g.root, "accessors")
	if arrErr == errMissingField {
		return nil
	} else if arrErr != ErrNone {
		return g.fail(arrErr)
	}

	g.asset.Accessors = make([]Accessor, 0, len(accessors))
	for _, value := range accessors {
		// Required fields: "componentType", "type", "count".
		var accessor Accessor
		if !isObject(value) {
			return g.fail(ErrInvalidGltf)
		}

		componentType, ok := getUint(value, "componentType")
		if !ok {
			return g.fail(ErrInvalidGltf)
		}
		accessor.ComponentType = componentTypeFromValue(componentType)
		if accessor.ComponentType == ComponentTypeInvalid {
			return g.fail(ErrInvalidGltf)
		}
		if accessor.ComponentType == ComponentTypeDouble && !g.options.has(AllowDouble) {
			return g.fail(ErrInvalidGltf)
		}

		accessorType, ok := getString(value, "type")
		if !ok {
			return g.fail(ErrInvalidGltf)
		}
		accessor.Type = accessorTypeFromString(accessorType)
		if accessor.Type == AccessorTypeInvalid {
			return g.fail(ErrInvalidGltf)
		}

		if accessor.Count, ok = getUint(value, "count"); !ok {
			return g.fail(ErrInvalidGltf)
		}

		if bufferView, ok := getUint(value, "bufferView"); ok {
			accessor.BufferViewIndex = &bufferView
		}

		// byteOffset is optional and defaults to 0.
		accessor.ByteOffset, _ = getUint(value, "byteOffset")
		accessor.Normalized, _ = getBool(value, "normalized")
		accessor.Name, _ = getString(value, "name")

		g.asset.Accessors = append(g.asset.Accessors, accessor)
	}

	return nil
}

// ParseBufferViews reads the top-level bufferViews array. A missing array
// is success with no buffer views.
//
// Returns:
//   - error: ErrInvalidGltf on a schema violation, nil otherwise
func (g *GLTF) ParseBufferViews() error {
	if err := g.sticky(); err != nil {
		return err
	}

	bufferViews, arrErr := getArray(g.root, "bufferViews")
	if arrErr == errMissingField {
		return nil
	} else if arrErr != ErrNone {
		return g.fail(arrErr)
	}

	g.asset.BufferViews = make([]BufferView, 0, len(bufferViews))
	for _, value := range bufferViews {
		// Required fields: "buffer", "byteLength".
		var view BufferView
		if !isObject(value) {
			return g.fail(ErrInvalidGltf)
		}

		var ok bool
		if view.BufferIndex, ok = getUint(value, "buffer"); !ok {
			return g.fail(ErrInvalidGltf)
		}
		if view.ByteLength, ok = getUint(value, "byteLength"); !ok {
			return g.fail(ErrInvalidGltf)
		}

		view.ByteOffset, _ = getUint(value, "byteOffset")

		if byteStride, ok := getUint(value, "byteStride"); ok {
			view.ByteStride = &byteStride
		}
		if target, ok := getUint(value, "target"); ok {
			bufferTarget := BufferTarget(target)
			view.Target = &bufferTarget
		}
		view.Name, _ = getString(value, "name")

		g.asset.BufferViews = append(g.asset.BufferViews, view)
	}

	return nil
}

// ParseBuffers reads the top-level buffers array. A buffer without a uri is
// only legal as buffer 0 of a binary glTF with a BIN chunk; when both a uri
// and a BIN chunk exist, the uri wins.
//
// Returns:
//   - error: ErrInvalidGltf on a schema violation, nil otherwise
func (g *GLTF) ParseBuffers() error {
	if err := g.sticky(); err != nil {
		return err
	}

	buffers, arrErr := getArray(g.root, "buffers")
	if arrErr == errMissingField {
		return nil
	} else if arrErr != ErrNone {
		return g.fail(arrErr)
	}

	g.asset.Buffers = make([]Buffer, 0, len(buffers))
	for bufferIndex, value := range buffers {
		// Required fields: "byteLength".
		var buffer Buffer
		if !isObject(value) {
			return g.fail(ErrInvalidGltf)
		}

		var ok bool
		if buffer.ByteLength, ok = getUint(value, "byteLength"); !ok {
			return g.fail(ErrInvalidGltf)
		}

		if uri, ok := getString(value, "uri"); ok {
			source, location, uriErr := g.decodeURI(uri)
			if uriErr != ErrNone {
				return g.fail(uriErr)
			}
			buffer.Data = source
			buffer.Location = location
		} else if bufferIndex == 0 && g.glb != nil {
			if g.options.has(LoadGLBBuffers) || g.glb.bytes != nil {
				buffer.Data.Bytes = g.glb.bytes
				buffer.Location = DataLocationVectorWithMime
			} else {
				buffer.Location = DataLocationFilePathWithByteRange
				buffer.Data.Path = g.glb.file
				buffer.Data.MimeType = MimeTypeGltfBuffer
				buffer.Data.FileByteOffset = g.glb.fileOffset
			}
		} else {
			// Every other buffer has to carry a uri field.
			return g.fail(ErrInvalidGltf)
		}

		if buffer.Location == DataLocationNone {
			return g.fail(ErrInvalidGltf)
		}

		buffer.Name, _ = getString(value, "name")

		g.asset.Buffers = append(g.asset.Buffers, buffer)
	}

	return nil
}

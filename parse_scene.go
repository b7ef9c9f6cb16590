package fastgltf

import (
	"github.com/headbirdgames/fastgltf/internal/jsondom"
)

// Parsers for the scene graph: meshes, nodes, and scenes.

// ParseMeshes reads the top-level meshes array. A mesh object without a
// primitives field is skipped; a malformed primitives field fails the
// parse.
//
// Returns:
//   - error: ErrInvalidGltf on a schema violation, nil otherwise
func (g *GLTF) ParseMeshes() error {
	if err := g.sticky(); err != nil {
		return err
	}

	meshes, arrErr := getArray(g.root, "meshes")
	if arrErr == errMissingField {
		return nil
	} else if arrErr != ErrNone {
		return g.fail(arrErr)
	}

	g.asset.Meshes = make([]Mesh, 0, len(meshes))
	for _, value := range meshes {
		if !isObject(value) {
			return g.fail(ErrInvalidGltf)
		}
		var mesh Mesh

		primitives, primErr := getArray(value, "primitives")
		if primErr == errMissingField {
			continue
		} else if primErr != ErrNone {
			return g.fail(primErr)
		}

		mesh.Primitives = make([]Primitive, 0, len(primitives))
		for _, primitiveValue := range primitives {
			// Required fields: "attributes".
			if !isObject(primitiveValue) {
				return g.fail(ErrInvalidGltf)
			}
			primitive := Primitive{Type: PrimitiveTypeTriangles}

			attributesObject := getObject(primitiveValue, "attributes")
			if attributesObject == nil {
				return g.fail(ErrInvalidGltf)
			}
			// Every key is kept as found; semantics are not filtered.
			primitive.Attributes = make(map[string]uint64, len(attributesObject.Members()))
			for _, member := range attributesObject.Members() {
				accessor, ok := member.Value.Uint()
				if !ok {
					return g.fail(ErrInvalidGltf)
				}
				primitive.Attributes[member.Key] = accessor
			}

			if mode, ok := getUint(primitiveValue, "mode"); ok {
				primitive.Type = PrimitiveType(mode)
			}
			if indices, ok := getUint(primitiveValue, "indices"); ok {
				primitive.IndicesAccessor = &indices
			}
			if materialIndex, ok := getUint(primitiveValue, "material"); ok {
				primitive.MaterialIndex = &materialIndex
			}

			mesh.Primitives = append(mesh.Primitives, primitive)
		}

		mesh.Name, _ = getString(value, "name")

		g.asset.Meshes = append(g.asset.Meshes, mesh)
	}

	return nil
}

// readFloats fills dst from a JSON array member when present, reporting the
// member's presence. A non-numeric element fails; elements beyond len(dst)
// are ignored.
func readFloats(obj *jsondom.Value, key string, dst []float32) (present bool, ok bool) {
	member := obj.Get(key)
	if member == nil || member.Kind() != jsondom.KindArray {
		return false, true
	}
	for i, elem := range member.Elems() {
		if i >= len(dst) {
			break
		}
		val, ok := elem.Float()
		if !ok {
			return true, false
		}
		dst[i] = float32(val)
	}
	return true, true
}

// ParseNodes reads the top-level nodes array. Matrix and TRS fields parse
// independently; a matrix with a non-numeric element clears HasMatrix but
// does not fail the node.
//
// Returns:
//   - error: ErrInvalidGltf on a schema violation, nil otherwise
func (g *GLTF) ParseNodes() error {
	if err := g.sticky(); err != nil {
		return err
	}

	nodes, arrErr := getArray(g.root, "nodes")
	if arrErr == errMissingField {
		return nil
	} else if arrErr != ErrNone {
		return g.fail(arrErr)
	}

	g.asset.Nodes = make([]Node, 0, len(nodes))
	for _, value := range nodes {
		if !isObject(value) {
			return g.fail(ErrInvalidGltf)
		}
		node := Node{
			Matrix: [16]float32{
				1, 0, 0, 0,
				0, 1, 0, 0,
				0, 0, 1, 0,
				0, 0, 0, 1,
			},
			Scale:    [3]float32{1, 1, 1},
			Rotation: [4]float32{0, 0, 0, 1},
		}

		if meshIndex, ok := getUint(value, "mesh"); ok {
			node.MeshIndex = &meshIndex
		}

		children, childErr := getArray(value, "children")
		if childErr == ErrInvalidGltf {
			return g.fail(childErr)
		}
		if len(children) > 0 {
			node.Children = make([]uint64, 0, len(children))
			for _, child := range children {
				index, ok := child.Uint()
				if !ok {
					return g.fail(ErrInvalidGltf)
				}
				node.Children = append(node.Children, index)
			}
		}

		if matrix := value.Get("matrix"); matrix != nil && matrix.Kind() == jsondom.KindArray {
			node.HasMatrix = true
			for i, elem := range matrix.Elems() {
				if i >= len(node.Matrix) {
					break
				}
				val, ok := elem.Float()
				if !ok {
					// The partially filled matrix is kept; the flag tells the
					// consumer not to trust it.
					node.HasMatrix = false
					break
				}
				node.Matrix[i] = float32(val)
			}
		}

		if _, ok := readFloats(value, "scale", node.Scale[:]); !ok {
			return g.fail(ErrInvalidGltf)
		}
		if _, ok := readFloats(value, "translation", node.Translation[:]); !ok {
			return g.fail(ErrInvalidGltf)
		}
		if _, ok := readFloats(value, "rotation", node.Rotation[:]); !ok {
			return g.fail(ErrInvalidGltf)
		}

		node.Name, _ = getString(value, "name")

		g.asset.Nodes = append(g.asset.Nodes, node)
	}

	return nil
}

// ParseScenes reads the default scene index and the top-level scenes array.
// A scene without a nodes field is dropped from the output. When the scenes
// array is absent nothing is read, the default scene index included.
//
// Returns:
//   - error: ErrInvalidGltf on a schema violation, nil otherwise
func (g *GLTF) ParseScenes() error {
	if err := g.sticky(); err != nil {
		return err
	}

	scenes, arrErr := getArray(g.root, "scenes")
	if arrErr == errMissingField {
		return nil
	} else if arrErr != ErrNone {
		return g.fail(arrErr)
	}

	if defaultScene, ok := getUint(g.root, "scene"); ok {
		g.asset.DefaultScene = &defaultScene
	}

	g.asset.Scenes = make([]Scene, 0, len(scenes))
	for _, value := range scenes {
		if !isObject(value) {
			return g.fail(ErrInvalidGltf)
		}
		var scene Scene

		scene.Name, _ = getString(value, "name")

		nodes, nodeErr := getArray(value, "nodes")
		if nodeErr == errMissingField {
			continue
		} else if nodeErr != ErrNone {
			return g.fail(nodeErr)
		}

		scene.NodeIndices = make([]uint64, 0, len(nodes))
		for _, nodeValue := range nodes {
			index, ok := nodeValue.Uint()
			if !ok {
				return g.fail(ErrInvalidGltf)
			}
			scene.NodeIndices = append(scene.NodeIndices, index)
		}

		g.asset.Scenes = append(g.asset.Scenes, scene)
	}

	return nil
}

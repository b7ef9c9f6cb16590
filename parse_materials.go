package fastgltf

import (
	"github.com/headbirdgames/fastgltf/internal/jsondom"
)

// readFactor fills a fixed-size float array from a JSON array member,
// requiring the exact length when the member is present. It reports whether
// the member existed and whether it was well-formed.
func readFactor(obj *jsondom.Value, key string, dst []float32) (present bool, ok bool) {
	member := obj.Get(key)
	if member == nil || member.Kind() != jsondom.KindArray {
		return false, true
	}
	elems := member.Elems()
	if len(elems) != len(dst) {
		return true, false
	}
	for i, elem := range elems {
		val, ok := elem.Float()
		if !ok {
			return true, false
		}
		dst[i] = float32(val)
	}
	return true, true
}

// ParseMaterials reads the top-level materials array.
//
// Returns:
//   - error: ErrInvalidGltf on a schema violation, nil otherwise
func (g *GLTF) ParseMaterials() error {
	if err := g.sticky(); err != nil {
		return err
	}

	materials, arrErr := getArray(g.root, "materials")
	if arrErr == errMissingField {
		return nil
	} else if arrErr != ErrNone {
		return g.fail(arrErr)
	}

	g.asset.Materials = make([]Material, 0, len(materials))
	for _, value := range materials {
		if !isObject(value) {
			return g.fail(ErrInvalidGltf)
		}
		var material Material

		// emissiveFactor must have exactly three components when present.
		if _, ok := readFactor(value, "emissiveFactor", material.EmissiveFactor[:]); !ok {
			return g.fail(ErrInvalidGltf)
		}

		var infoErr Error
		if material.NormalTexture, infoErr = g.parseTextureInfo(value, "normalTexture"); infoErr != ErrNone {
			return g.fail(infoErr)
		}
		if material.OcclusionTexture, infoErr = g.parseTextureInfo(value, "occlusionTexture"); infoErr != ErrNone {
			return g.fail(infoErr)
		}
		if material.EmissiveTexture, infoErr = g.parseTextureInfo(value, "emissiveTexture"); infoErr != ErrNone {
			return g.fail(infoErr)
		}

		if pbrObject := getObject(value, "pbrMetallicRoughness"); pbrObject != nil {
			pbr := PBRData{
				BaseColorFactor: [4]float32{1, 1, 1, 1},
				MetallicFactor:  1,
				RoughnessFactor: 1,
			}

			// baseColorFactor must have exactly four components when present.
			if _, ok := readFactor(pbrObject, "baseColorFactor", pbr.BaseColorFactor[:]); !ok {
				return g.fail(ErrInvalidGltf)
			}

			if factor, ok := getFloat(pbrObject, "metallicFactor"); ok {
				pbr.MetallicFactor = float32(factor)
			}
			if factor, ok := getFloat(pbrObject, "roughnessFactor"); ok {
				pbr.RoughnessFactor = float32(factor)
			}

			if pbr.BaseColorTexture, infoErr = g.parseTextureInfo(pbrObject, "baseColorTexture"); infoErr != ErrNone {
				return g.fail(infoErr)
			}
			if pbr.MetallicRoughnessTexture, infoErr = g.parseTextureInfo(pbrObject, "metallicRoughnessTexture"); infoErr != ErrNone {
				return g.fail(infoErr)
			}

			material.PBRData = &pbr
		}

		material.Name, _ = getString(value, "name")

		g.asset.Materials = append(g.asset.Materials, material)
	}

	return nil
}

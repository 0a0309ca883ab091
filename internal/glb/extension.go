package glb

import "github.com/fenilsonani/glbkit/internal/crc32c"

// Extension identifies a glTF extension this toolkit knows about. Lookup
// goes through the CRC32-C digest of the extension name so the hot path
// never does string comparisons.
type Extension uint8

const (
	ExtensionUnknown Extension = iota
	EXTMeshGPUInstancing
	EXTMeshoptCompression
	KHRLightsPunctual
	KHRMaterialsEmissiveStrength
	KHRMaterialsIOR
	KHRMaterialsSpecular
	KHRMaterialsTransmission
	KHRTextureBasisu
	KHRTextureTransform
)

var extensionNames = map[Extension]string{
	EXTMeshGPUInstancing:         "EXT_mesh_gpu_instancing",
	EXTMeshoptCompression:        "EXT_meshopt_compression",
	KHRLightsPunctual:            "KHR_lights_punctual",
	KHRMaterialsEmissiveStrength: "KHR_materials_emissive_strength",
	KHRMaterialsIOR:              "KHR_materials_ior",
	KHRMaterialsSpecular:         "KHR_materials_specular",
	KHRMaterialsTransmission:     "KHR_materials_transmission",
	KHRTextureBasisu:             "KHR_texture_basisu",
	KHRTextureTransform:          "KHR_texture_transform",
}

var extensionsByDigest = func() map[uint32]Extension {
	m := make(map[uint32]Extension, len(extensionNames))
	for ext, name := range extensionNames {
		m[crc32c.SumString(name)] = ext
	}
	return m
}()

// String returns the canonical extension name.
func (e Extension) String() string {
	if name, ok := extensionNames[e]; ok {
		return name
	}
	return "unknown"
}

// LookupExtension resolves an extension name from a parsed document. ok is
// false for names this toolkit does not know.
func LookupExtension(name string) (Extension, bool) {
	ext, ok := extensionsByDigest[crc32c.SumString(name)]
	if !ok {
		return ExtensionUnknown, false
	}
	return ext, true
}

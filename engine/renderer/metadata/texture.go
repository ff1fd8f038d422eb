package metadata

/**
 * @brief Represents various types of textures.
 */
type TextureType int

const (
	/** @brief A standard two-dimensional texture. */
	TextureType2d TextureType = iota
	/** @brief A cube texture, used for cubemaps. */
	TextureTypeCube
)

type PixelFormat uint8

const (
	PixelFormatRGBA8 PixelFormat = iota
	PixelFormatRGB8
	PixelFormatA8
)

/** @brief Bytes per pixel. */
func (f PixelFormat) Size() int {
	switch f {
	case PixelFormatRGB8:
		return 3
	case PixelFormatA8:
		return 1
	}
	return 4
}

/**
 * @brief Represents a texture.
 */
type Texture struct {
	/** @brief The driver texture handle, 0 until uploaded. */
	Handle uint32
	/** @brief The texture type. */
	TextureType TextureType
	/** @brief The texture Width. */
	Width uint32
	/** @brief The texture Height. */
	Height uint32
	Format PixelFormat
	/** @brief Number of mipmaps to generate on upload, 0 for none. */
	MipMaps uint32
	/** @brief The texture Generation. Incremented every time the data is reloaded. */
	Generation uint32
	/** @brief The texture Name. */
	Name string
}

/** @brief Texture coordinate addressing. */
type TextureAddressing uint8

const (
	TextureAddressingWrap TextureAddressing = iota
	TextureAddressingMirror
	TextureAddressingClamp
)

/** @brief Which channel a blend description applies to. */
type LayerBlendType uint8

const (
	LayerBlendTypeColour LayerBlendType = iota
	LayerBlendTypeAlpha
)

type LayerBlendOperationEx uint8

const (
	/** @brief Use source1 without modification. */
	LayerBlendOperationSource1 LayerBlendOperationEx = iota
	/** @brief Use source2 without modification. */
	LayerBlendOperationSource2
	LayerBlendOperationModulate
	LayerBlendOperationModulateX2
	LayerBlendOperationModulateX4
	LayerBlendOperationAdd
	LayerBlendOperationAddSigned
	/** @brief Interpolate using the alpha of the texture of this stage. */
	LayerBlendOperationBlendTextureAlpha
	/** @brief Interpolate using the alpha of the previous stage. */
	LayerBlendOperationBlendCurrentAlpha
	/** @brief Interpolate using the interpolated vertex alpha. */
	LayerBlendOperationBlendDiffuseAlpha
	/** @brief Interpolate using the manual blend factor. */
	LayerBlendOperationBlendManual
	LayerBlendOperationDotProduct
)

type LayerBlendSource uint8

const (
	/** @brief The colour built up by the previous stages. */
	LayerBlendSourceCurrent LayerBlendSource = iota
	/** @brief The texel sampled by this stage. */
	LayerBlendSourceTexture
	/** @brief Interpolated vertex diffuse colour. */
	LayerBlendSourceDiffuse
	/** @brief Interpolated vertex specular colour. */
	LayerBlendSourceSpecular
	/** @brief A constant colour pushed into the stage. */
	LayerBlendSourceManual
)

/** @brief Describes how one channel of a texture stage is combined. */
type LayerBlendModeEx struct {
	BlendType  LayerBlendType
	Operation  LayerBlendOperationEx
	Source1    LayerBlendSource
	Source2    LayerBlendSource
	ColourArg1 [4]float32
	ColourArg2 [4]float32
	AlphaArg1  float32
	AlphaArg2  float32
	/** @brief Interpolation factor used by BlendManual. */
	BlendFactor float32
}

type TexCoordCalcMethod uint8

const (
	TexCoordCalcNone TexCoordCalcMethod = iota
	/** @brief Sphere mapping. */
	TexCoordCalcEnvironmentMap
	/** @brief Planar reflection, falls back to sphere mapping without cube map support. */
	TexCoordCalcEnvironmentMapPlanar
	TexCoordCalcEnvironmentMapReflection
	TexCoordCalcEnvironmentMapNormal
)

type FilterType uint8

const (
	FilterTypeMin FilterType = iota
	FilterTypeMag
	FilterTypeMip
)

type FilterOptions uint8

const (
	FilterOptionsNone FilterOptions = iota
	FilterOptionsPoint
	FilterOptionsLinear
	FilterOptionsAnisotropic
)

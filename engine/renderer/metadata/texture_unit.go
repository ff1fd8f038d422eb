package metadata

import "github.com/go-gl/mathgl/mgl32"

/**
 * @brief The per-pass state of one texture unit as handed to the renderer.
 */
type TextureUnitState struct {
	Texture *Texture
	/** @brief Index of the mesh texture coordinate set this unit samples. */
	TextureCoordSet uint16
	Addressing      TextureAddressing
	ColourBlendMode LayerBlendModeEx
	AlphaBlendMode  LayerBlendModeEx
	CoordCalc       TexCoordCalcMethod
	/** @brief Texture coordinate transform applied after generation. */
	Transform  mgl32.Mat4
	MinFilter  FilterOptions
	MagFilter  FilterOptions
	MipFilter  FilterOptions
	Anisotropy int
}

/** @brief A unit sampling the texture and modulating it with the lit colour. */
func NewTextureUnitState(texture *Texture) *TextureUnitState {
	return &TextureUnitState{
		Texture: texture,
		ColourBlendMode: LayerBlendModeEx{
			BlendType: LayerBlendTypeColour,
			Operation: LayerBlendOperationModulate,
			Source1:   LayerBlendSourceTexture,
			Source2:   LayerBlendSourceCurrent,
		},
		AlphaBlendMode: LayerBlendModeEx{
			BlendType: LayerBlendTypeAlpha,
			Operation: LayerBlendOperationModulate,
			Source1:   LayerBlendSourceTexture,
			Source2:   LayerBlendSourceCurrent,
		},
		Transform:  mgl32.Ident4(),
		MinFilter:  FilterOptionsLinear,
		MagFilter:  FilterOptionsLinear,
		MipFilter:  FilterOptionsPoint,
		Anisotropy: 1,
	}
}

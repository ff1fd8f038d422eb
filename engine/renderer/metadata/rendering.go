package metadata

import "github.com/go-gl/mathgl/mgl32"

/** @brief Fixed-function surface and state description of a pass. */
type Pass struct {
	Ambient   mgl32.Vec4
	Diffuse   mgl32.Vec4
	Specular  mgl32.Vec4
	Emissive  mgl32.Vec4
	Shininess float32

	SourceBlendFactor SceneBlendFactor
	DestBlendFactor   SceneBlendFactor
	DepthCheck        bool
	DepthWrite        bool
	DepthFunction     CompareFunction
	Culling           CullingMode
	Lighting          bool

	TextureUnits []*TextureUnitState
}

/** @brief An opaque white, lit, depth tested pass without textures. */
func NewPass() *Pass {
	return &Pass{
		Ambient:           mgl32.Vec4{1, 1, 1, 1},
		Diffuse:           mgl32.Vec4{1, 1, 1, 1},
		Specular:          mgl32.Vec4{0, 0, 0, 1},
		Emissive:          mgl32.Vec4{0, 0, 0, 1},
		SourceBlendFactor: SceneBlendFactorOne,
		DestBlendFactor:   SceneBlendFactorZero,
		DepthCheck:        true,
		DepthWrite:        true,
		DepthFunction:     CompareFunctionLessEqual,
		Culling:           CullingModeClockwise,
		Lighting:          true,
	}
}

type Renderable struct {
	Name           string
	WorldTransform mgl32.Mat4
	Pass           *Pass
	Operation      *RenderOperation
}

/** @brief Everything needed to draw one frame. */
type RenderPacket struct {
	DeltaTime        float64
	Viewport         *Viewport
	ProjectionMatrix mgl32.Mat4
	ViewMatrix       mgl32.Mat4
	AmbientLight     mgl32.Vec4
	Lights           []*Light
	Renderables      []*Renderable
}

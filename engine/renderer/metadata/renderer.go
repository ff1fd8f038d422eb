package metadata

type RendererBackendConfig struct {
	/** @brief The name of the application */
	ApplicationName string
	/** @brief Use host memory buffers even when buffer objects are supported. */
	ForceSoftwareBuffers bool
	/** @brief Upper bound for the light slots, 0 keeps the driver value. */
	MaxLights int
	/** @brief Upper bound for the texture stages, 0 keeps the driver value. */
	MaxTextureUnits int
}

type SceneBlendFactor uint8

const (
	SceneBlendFactorOne SceneBlendFactor = iota
	SceneBlendFactorZero
	SceneBlendFactorDestColour
	SceneBlendFactorSourceColour
	SceneBlendFactorOneMinusDestColour
	SceneBlendFactorOneMinusSourceColour
	SceneBlendFactorDestAlpha
	SceneBlendFactorSourceAlpha
	SceneBlendFactorOneMinusDestAlpha
	SceneBlendFactorOneMinusSourceAlpha
)

type CompareFunction uint8

const (
	CompareFunctionAlwaysFail CompareFunction = iota
	CompareFunctionAlwaysPass
	CompareFunctionLess
	CompareFunctionLessEqual
	CompareFunctionEqual
	CompareFunctionNotEqual
	CompareFunctionGreaterEqual
	CompareFunctionGreater
)

type CullingMode uint8

const (
	CullingModeNone CullingMode = iota
	CullingModeClockwise
	CullingModeCounterClockwise
)

type FogMode uint8

const (
	FogModeNone FogMode = iota
	FogModeExp
	FogModeExp2
	FogModeLinear
)

/** @brief Counters accumulated by the backend during one frame. */
type RenderStatistics struct {
	Frame         uint64
	DrawCalls     int
	Vertices      int
	Primitives    int
	SkippedStates int
}

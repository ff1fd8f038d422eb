package opengl

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/spaghettifunk/anima-ffp/engine/core"
	"github.com/spaghettifunk/anima-ffp/engine/renderer/metadata"
)

// OpenGLRenderer drives the fixed-function pipeline. It must only be used
// from the goroutine owning the GL context.
type OpenGLRenderer struct {
	config metadata.RendererBackendConfig
	state  *glState
	caps   *metadata.RenderSystemCapabilities

	buffers *BufferManager
	lights  *LightTable
	stages  *TextureStages
	draw    *drawTranslator

	viewport    *metadata.Viewport
	viewMatrix  mgl32.Mat4
	worldMatrix mgl32.Mat4

	zTrickEven  bool
	depthWrite  bool
	colourWrite [4]bool
	culling     metadata.CullingMode
	fogMode     metadata.FogMode

	stats        metadata.RenderStatistics
	skippedStart int
}

func New(f Functions, config metadata.RendererBackendConfig) *OpenGLRenderer {
	return &OpenGLRenderer{
		config:      config,
		state:       newGLState(f),
		viewMatrix:  mgl32.Ident4(),
		worldMatrix: mgl32.Ident4(),
		zTrickEven:  true,
		depthWrite:  true,
		colourWrite: [4]bool{true, true, true, true},
		culling:     metadata.CullingModeNone,
	}
}

func (r *OpenGLRenderer) Initialize() error {
	r.caps = CheckCaps(r.state.fns, r.config.MaxLights, r.config.MaxTextureUnits)
	if r.caps.MaxLights <= 0 {
		err := fmt.Errorf("context reports no fixed-function lights: %w", core.ErrCapacityExceeded)
		core.LogError(err.Error())
		return err
	}

	hardware := r.caps.VertexBuffer && !r.config.ForceSoftwareBuffers
	r.buffers = newBufferManager(r.state, hardware)
	r.lights = newLightTable(r.state, r.caps.MaxLights)
	r.stages = newTextureStages(r.state, r.caps)
	r.draw = newDrawTranslator(r.state, r.stages)

	f := r.state.fns
	f.ShadeModel(SMOOTH)
	f.Hint(PERSPECTIVE_CORRECTION_HINT, NICEST)
	f.LightModeli(LIGHT_MODEL_COLOR_CONTROL, int32(SEPARATE_SPECULAR_COLOR))
	f.CullFace(BACK)
	r.state.set(DEPTH_TEST, true)
	r.state.setDepthFunc(LEQUAL)
	r.state.set(NORMALIZE, true)
	r.state.set(SCISSOR_TEST, true)
	r.lights.SetLightingEnabled(true)

	core.LogInfo("%s fixed-function renderer initialized", r.config.ApplicationName)
	return nil
}

func (r *OpenGLRenderer) Shutdown() error {
	if r.buffers != nil {
		r.buffers.Shutdown()
	}
	return nil
}

func (r *OpenGLRenderer) Capabilities() *metadata.RenderSystemCapabilities {
	return r.caps
}

func (r *OpenGLRenderer) Buffers() *BufferManager {
	return r.buffers
}

func (r *OpenGLRenderer) Lights() *LightTable {
	return r.lights
}

func (r *OpenGLRenderer) TextureStages() *TextureStages {
	return r.stages
}

func (r *OpenGLRenderer) Stats() metadata.RenderStatistics {
	return r.stats
}

// BeginFrame clears the active viewport, or when it does not clear every
// frame alternates between the two halves of the depth range so the depth
// buffer never needs clearing.
func (r *OpenGLRenderer) BeginFrame() error {
	if r.viewport == nil {
		err := fmt.Errorf("BeginFrame without an active viewport: %w", core.ErrNotFound)
		core.LogError(err.Error())
		return err
	}
	r.stats = metadata.RenderStatistics{Frame: r.stats.Frame + 1}
	r.skippedStart = r.state.Skipped()

	if r.viewport.ClearEveryFrame {
		c := r.viewport.BackgroundColour
		r.state.setClearColor(c[0], c[1], c[2], c[3])
		// writes must be on for the clear to reach the buffers
		r.state.setDepthMask(true)
		r.state.setColorMask(true, true, true, true)
		r.state.fns.Clear(COLOR_BUFFER_BIT | DEPTH_BUFFER_BIT)
		r.state.setDepthMask(r.depthWrite)
		r.state.setColorMask(r.colourWrite[0], r.colourWrite[1], r.colourWrite[2], r.colourWrite[3])
		return nil
	}

	if r.zTrickEven {
		r.state.setDepthFunc(LEQUAL)
		r.state.fns.DepthRange(0, 0.499999999)
	} else {
		r.state.setDepthFunc(GEQUAL)
		r.state.fns.DepthRange(1, 0.5)
	}
	r.zTrickEven = !r.zTrickEven
	return nil
}

func (r *OpenGLRenderer) EndFrame() error {
	r.stages.endFrame()
	r.stats.SkippedStates = r.state.Skipped() - r.skippedStart
	return nil
}

// SetViewport converts the top-left based viewport to GL's bottom-left
// origin and scissors to it.
func (r *OpenGLRenderer) SetViewport(viewport *metadata.Viewport) {
	r.viewport = viewport
	y := viewport.TargetHeight - viewport.Top - viewport.Height
	r.state.set(SCISSOR_TEST, true)
	r.state.setViewport(viewport.Left, y, viewport.Width, viewport.Height)
}

func (r *OpenGLRenderer) SetProjectionMatrix(m mgl32.Mat4) {
	r.state.setMatrixMode(PROJECTION)
	r.state.fns.LoadMatrixf(m)
	r.state.setMatrixMode(MODELVIEW)
}

// SetViewMatrix reloads the modelview and pushes the light positions again
// while only the view is loaded.
func (r *OpenGLRenderer) SetViewMatrix(view mgl32.Mat4) {
	r.viewMatrix = view
	r.stages.setViewMatrix(view)
	r.state.setMatrixMode(MODELVIEW)
	r.state.fns.LoadMatrixf(view)
	r.lights.ResetPositions()
	r.state.fns.MultMatrixf(r.worldMatrix)
}

func (r *OpenGLRenderer) SetWorldMatrix(world mgl32.Mat4) {
	r.worldMatrix = world
	r.state.setMatrixMode(MODELVIEW)
	r.state.fns.LoadMatrixf(r.viewMatrix.Mul4(world))
}

// inEyeSpace runs fn with only the view matrix loaded so light positions are
// transformed like the scene.
func (r *OpenGLRenderer) inEyeSpace(fn func() error) error {
	r.state.setMatrixMode(MODELVIEW)
	r.state.fns.LoadMatrixf(r.viewMatrix)
	err := fn()
	r.state.fns.LoadMatrixf(r.viewMatrix.Mul4(r.worldMatrix))
	return err
}

func (r *OpenGLRenderer) AddLight(light *metadata.Light) error {
	return r.inEyeSpace(func() error { return r.lights.AddLight(light) })
}

func (r *OpenGLRenderer) UpdateLight(light *metadata.Light) error {
	return r.inEyeSpace(func() error { return r.lights.UpdateLight(light) })
}

func (r *OpenGLRenderer) RemoveLight(light *metadata.Light) error {
	return r.lights.RemoveLight(light)
}

func (r *OpenGLRenderer) SetAmbientLight(colour mgl32.Vec4) {
	r.lights.SetAmbientLight(colour)
}

func (r *OpenGLRenderer) SetLightingEnabled(enabled bool) {
	r.lights.SetLightingEnabled(enabled)
}

func (r *OpenGLRenderer) SetSurfaceParams(ambient, diffuse, specular, emissive mgl32.Vec4, shininess float32) {
	f := r.state.fns
	f.Materialfv(FRONT_AND_BACK, AMBIENT, ambient[:])
	f.Materialfv(FRONT_AND_BACK, DIFFUSE, diffuse[:])
	f.Materialfv(FRONT_AND_BACK, SPECULAR, specular[:])
	f.Materialfv(FRONT_AND_BACK, EMISSION, emissive[:])
	f.Materialf(FRONT_AND_BACK, SHININESS, shininess)
}

func glBlendFactor(factor metadata.SceneBlendFactor) Enum {
	switch factor {
	case metadata.SceneBlendFactorZero:
		return ZERO
	case metadata.SceneBlendFactorDestColour:
		return DST_COLOR
	case metadata.SceneBlendFactorSourceColour:
		return SRC_COLOR
	case metadata.SceneBlendFactorOneMinusDestColour:
		return ONE_MINUS_DST_COLOR
	case metadata.SceneBlendFactorOneMinusSourceColour:
		return ONE_MINUS_SRC_COLOR
	case metadata.SceneBlendFactorDestAlpha:
		return DST_ALPHA
	case metadata.SceneBlendFactorSourceAlpha:
		return SRC_ALPHA
	case metadata.SceneBlendFactorOneMinusDestAlpha:
		return ONE_MINUS_DST_ALPHA
	case metadata.SceneBlendFactorOneMinusSourceAlpha:
		return ONE_MINUS_SRC_ALPHA
	}
	return ONE
}

// SetSceneBlending turns blending off for the opaque ONE/ZERO combination.
func (r *OpenGLRenderer) SetSceneBlending(src, dst metadata.SceneBlendFactor) {
	if src == metadata.SceneBlendFactorOne && dst == metadata.SceneBlendFactorZero {
		r.state.set(BLEND, false)
		return
	}
	r.state.set(BLEND, true)
	r.state.setBlendFunc(glBlendFactor(src), glBlendFactor(dst))
}

func glCompareFunction(fn metadata.CompareFunction) Enum {
	switch fn {
	case metadata.CompareFunctionAlwaysFail:
		return NEVER
	case metadata.CompareFunctionAlwaysPass:
		return ALWAYS
	case metadata.CompareFunctionLess:
		return LESS
	case metadata.CompareFunctionEqual:
		return EQUAL
	case metadata.CompareFunctionNotEqual:
		return NOTEQUAL
	case metadata.CompareFunctionGreaterEqual:
		return GEQUAL
	case metadata.CompareFunctionGreater:
		return GREATER
	}
	return LEQUAL
}

func (r *OpenGLRenderer) SetDepthCheck(enabled bool) {
	r.state.set(DEPTH_TEST, enabled)
}

func (r *OpenGLRenderer) SetDepthWrite(enabled bool) {
	r.depthWrite = enabled
	r.state.setDepthMask(enabled)
}

func (r *OpenGLRenderer) SetDepthFunction(fn metadata.CompareFunction) {
	r.state.setDepthFunc(glCompareFunction(fn))
}

func (r *OpenGLRenderer) SetColourWrite(red, green, blue, alpha bool) {
	r.colourWrite = [4]bool{red, green, blue, alpha}
	r.state.setColorMask(red, green, blue, alpha)
}

// SetCullingMode names the winding of the faces that get culled.
func (r *OpenGLRenderer) SetCullingMode(mode metadata.CullingMode) {
	if mode == r.culling {
		r.state.skipped++
		return
	}
	r.culling = mode
	switch mode {
	case metadata.CullingModeNone:
		r.state.set(CULL_FACE, false)
		return
	case metadata.CullingModeClockwise:
		r.state.fns.FrontFace(CCW)
	case metadata.CullingModeCounterClockwise:
		r.state.fns.FrontFace(CW)
	}
	r.state.set(CULL_FACE, true)
}

func (r *OpenGLRenderer) SetFog(mode metadata.FogMode, colour mgl32.Vec4, density, start, end float32) {
	var glMode Enum
	switch mode {
	case metadata.FogModeExp:
		glMode = EXP
	case metadata.FogModeExp2:
		glMode = EXP2
	case metadata.FogModeLinear:
		glMode = LINEAR
	default:
		r.fogMode = mode
		r.state.set(FOG, false)
		return
	}
	r.fogMode = mode
	f := r.state.fns
	r.state.set(FOG, true)
	f.Fogi(FOG_MODE, int32(glMode))
	f.Fogfv(FOG_COLOR, colour[:])
	f.Fogf(FOG_DENSITY, density)
	f.Fogf(FOG_START, start)
	f.Fogf(FOG_END, end)
}

func (r *OpenGLRenderer) NumTextureUnits() int {
	return r.stages.NumStages()
}

// SetTextureUnit applies every setting of a pass texture unit to a stage.
func (r *OpenGLRenderer) SetTextureUnit(index int, unit *metadata.TextureUnitState) error {
	if err := r.stages.SetTexture(index, true, unit.Texture); err != nil {
		return err
	}
	steps := []func() error{
		func() error { return r.stages.SetTextureCoordSet(index, unit.TextureCoordSet) },
		func() error { return r.stages.SetAddressing(index, unit.Addressing) },
		func() error { return r.stages.SetTextureUnitFiltering(index, metadata.FilterTypeMin, unit.MinFilter) },
		func() error { return r.stages.SetTextureUnitFiltering(index, metadata.FilterTypeMag, unit.MagFilter) },
		func() error { return r.stages.SetTextureUnitFiltering(index, metadata.FilterTypeMip, unit.MipFilter) },
		func() error { return r.stages.SetTextureLayerAnisotropy(index, unit.Anisotropy) },
		func() error { return r.stages.SetCoordGeneration(index, unit.CoordCalc) },
		func() error { return r.stages.SetTextureMatrix(index, unit.Transform) },
		func() error { return r.stages.SetBlendMode(index, unit.ColourBlendMode) },
		func() error { return r.stages.SetBlendMode(index, unit.AlphaBlendMode) },
	}
	for _, step := range steps {
		if err := step(); err != nil {
			return err
		}
	}
	return nil
}

func (r *OpenGLRenderer) DisableTextureUnitsFrom(index int) {
	r.stages.DisableFrom(index)
}

func (r *OpenGLRenderer) TextureCreate(texture *metadata.Texture, pixels []byte) error {
	return r.stages.TextureCreate(texture, pixels)
}

func (r *OpenGLRenderer) TextureDestroy(texture *metadata.Texture) {
	r.stages.TextureDestroy(texture)
}

func (r *OpenGLRenderer) CreateVertexBuffer(vertexSize, numVertices int, usage metadata.BufferUsage, useShadowCopy bool) (*metadata.VertexBuffer, error) {
	return r.buffers.CreateVertexBuffer(vertexSize, numVertices, usage, useShadowCopy)
}

func (r *OpenGLRenderer) CreateIndexBuffer(indexType metadata.IndexType, numIndices int, usage metadata.BufferUsage, useShadowCopy bool) (*metadata.IndexBuffer, error) {
	return r.buffers.CreateIndexBuffer(indexType, numIndices, usage, useShadowCopy)
}

func (r *OpenGLRenderer) DestroyBuffer(buffer metadata.HardwareBuffer) error {
	return r.buffers.DestroyBuffer(buffer)
}

func (r *OpenGLRenderer) Render(op *metadata.RenderOperation) error {
	result, err := r.draw.Draw(op)
	if err != nil {
		return err
	}
	if result.Vertices > 0 {
		r.stats.DrawCalls++
		r.stats.Vertices += result.Vertices
		r.stats.Primitives += result.Primitives
	}
	return nil
}

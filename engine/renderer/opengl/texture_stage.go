package opengl

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/spaghettifunk/anima-ffp/engine/core"
	"github.com/spaghettifunk/anima-ffp/engine/renderer/metadata"
)

type appliedBlend struct {
	valid bool
	mode  metadata.LayerBlendModeEx
	scale int
}

type stageState struct {
	// TEXTURE_2D or TEXTURE_CUBE_MAP, 0 until a texture was set
	textureType Enum
	boundHandle uint32
	coordSet    uint16

	colour appliedBlend
	alpha  appliedBlend

	// TEXTURE_ENV_COLOR is shared by both channels: rgb belongs to the
	// colour channel, a to the alpha channel
	envColour [4]float32

	coordCalc     metadata.TexCoordCalcMethod
	useAutoMatrix bool
	autoMatrix    mgl32.Mat4
	textureMatrix mgl32.Mat4

	minFilter  metadata.FilterOptions
	mipFilter  metadata.FilterOptions
	anisotropy float32
}

func (s *stageState) target() Enum {
	if s.textureType == 0 {
		return TEXTURE_2D
	}
	return s.textureType
}

// StageSnapshot is the last state pushed for a texture stage.
type StageSnapshot struct {
	TextureType   Enum
	CoordSet      uint16
	ColourBlend   metadata.LayerBlendModeEx
	ColourScale   int
	AlphaBlend    metadata.LayerBlendModeEx
	AlphaScale    int
	CoordCalc     metadata.TexCoordCalcMethod
	UseAutoMatrix bool
	AutoMatrix    mgl32.Mat4
	TextureMatrix mgl32.Mat4
}

// TextureStages translates per-unit texture state. Every call leaves
// texture unit 0 active.
type TextureStages struct {
	state  *glState
	caps   *metadata.RenderSystemCapabilities
	stages []stageState
	view   mgl32.Mat4
}

func newTextureStages(state *glState, caps *metadata.RenderSystemCapabilities) *TextureStages {
	t := &TextureStages{
		state:  state,
		caps:   caps,
		stages: make([]stageState, caps.NumTextureUnits),
		view:   mgl32.Ident4(),
	}
	for i := range t.stages {
		t.stages[i].autoMatrix = mgl32.Ident4()
		t.stages[i].textureMatrix = mgl32.Ident4()
		t.stages[i].minFilter = metadata.FilterOptionsLinear
		t.stages[i].mipFilter = metadata.FilterOptionsNone
		t.stages[i].anisotropy = 1
	}
	return t
}

func (t *TextureStages) NumStages() int {
	return len(t.stages)
}

func (t *TextureStages) stage(index int) (*stageState, error) {
	if index < 0 || index >= len(t.stages) {
		err := fmt.Errorf("texture stage %d outside [0, %d): %w", index, len(t.stages), core.ErrCapacityExceeded)
		core.LogError(err.Error())
		return nil, err
	}
	return &t.stages[index], nil
}

func (t *TextureStages) selectStage(index int) {
	t.state.activeTexture(TEXTURE0 + Enum(index))
}

func (t *TextureStages) restoreUnit() {
	t.state.activeTexture(TEXTURE0)
}

// setViewMatrix records the view used to build reflection matrices.
func (t *TextureStages) setViewMatrix(view mgl32.Mat4) {
	t.view = view
}

func (t *TextureStages) Snapshot(index int) (StageSnapshot, error) {
	st, err := t.stage(index)
	if err != nil {
		return StageSnapshot{}, err
	}
	return StageSnapshot{
		TextureType:   st.textureType,
		CoordSet:      st.coordSet,
		ColourBlend:   st.colour.mode,
		ColourScale:   st.colour.scale,
		AlphaBlend:    st.alpha.mode,
		AlphaScale:    st.alpha.scale,
		CoordCalc:     st.coordCalc,
		UseAutoMatrix: st.useAutoMatrix,
		AutoMatrix:    st.autoMatrix,
		TextureMatrix: st.textureMatrix,
	}, nil
}

// CoordSets returns the texture coordinate set sampled by every stage.
func (t *TextureStages) CoordSets() []uint16 {
	sets := make([]uint16, len(t.stages))
	for i := range t.stages {
		sets[i] = t.stages[i].coordSet
	}
	return sets
}

func (t *TextureStages) SetTextureCoordSet(index int, set uint16) error {
	st, err := t.stage(index)
	if err != nil {
		return err
	}
	st.coordSet = set
	return nil
}

func glTextureTarget(textureType metadata.TextureType) Enum {
	if textureType == metadata.TextureTypeCube {
		return TEXTURE_CUBE_MAP
	}
	return TEXTURE_2D
}

// SetTexture enables and binds texture on the stage, or disables the stage
// when enabled is false or the texture was never uploaded.
func (t *TextureStages) SetTexture(index int, enabled bool, texture *metadata.Texture) error {
	st, err := t.stage(index)
	if err != nil {
		return err
	}
	t.selectStage(index)
	defer t.restoreUnit()

	if !enabled || texture == nil || texture.Handle == 0 {
		if st.textureType != 0 {
			t.state.set(st.textureType, false)
		}
		return nil
	}

	target := glTextureTarget(texture.TextureType)
	if st.textureType != 0 && st.textureType != target {
		t.state.set(st.textureType, false)
		st.boundHandle = 0
	}
	st.textureType = target
	t.state.set(target, true)
	if st.boundHandle != texture.Handle {
		t.state.fns.BindTexture(target, texture.Handle)
		st.boundHandle = texture.Handle
	}
	return nil
}

func glAddressing(mode metadata.TextureAddressing) int32 {
	switch mode {
	case metadata.TextureAddressingMirror:
		return int32(MIRRORED_REPEAT)
	case metadata.TextureAddressingClamp:
		return int32(CLAMP_TO_EDGE)
	}
	return int32(REPEAT)
}

func (t *TextureStages) SetAddressing(index int, mode metadata.TextureAddressing) error {
	st, err := t.stage(index)
	if err != nil {
		return err
	}
	t.selectStage(index)
	defer t.restoreUnit()

	target := st.target()
	param := glAddressing(mode)
	t.state.fns.TexParameteri(target, TEXTURE_WRAP_S, param)
	t.state.fns.TexParameteri(target, TEXTURE_WRAP_T, param)
	if target == TEXTURE_CUBE_MAP {
		t.state.fns.TexParameteri(target, TEXTURE_WRAP_R, param)
	}
	return nil
}

func glBlendSource(src metadata.LayerBlendSource) Enum {
	switch src {
	case metadata.LayerBlendSourceTexture:
		return TEXTURE
	case metadata.LayerBlendSourceManual:
		return CONSTANT
	case metadata.LayerBlendSourceDiffuse, metadata.LayerBlendSourceSpecular:
		return PRIMARY_COLOR
	}
	return PREVIOUS
}

// glBlendOperation returns the combiner, its post scale and the third
// interpolation source (0 when unused).
func (t *TextureStages) glBlendOperation(blend metadata.LayerBlendModeEx) (Enum, int, Enum) {
	switch blend.Operation {
	case metadata.LayerBlendOperationSource1, metadata.LayerBlendOperationSource2:
		return REPLACE, 1, 0
	case metadata.LayerBlendOperationModulate:
		return MODULATE, 1, 0
	case metadata.LayerBlendOperationModulateX2:
		return MODULATE, 2, 0
	case metadata.LayerBlendOperationModulateX4:
		return MODULATE, 4, 0
	case metadata.LayerBlendOperationAdd:
		return ADD, 1, 0
	case metadata.LayerBlendOperationAddSigned:
		return ADD_SIGNED, 1, 0
	case metadata.LayerBlendOperationBlendTextureAlpha:
		return INTERPOLATE, 1, TEXTURE
	case metadata.LayerBlendOperationBlendCurrentAlpha:
		return INTERPOLATE, 1, PREVIOUS
	case metadata.LayerBlendOperationBlendDiffuseAlpha:
		return INTERPOLATE, 1, PRIMARY_COLOR
	case metadata.LayerBlendOperationBlendManual:
		return INTERPOLATE, 1, CONSTANT
	case metadata.LayerBlendOperationDotProduct:
		// the dot3 combiner only exists for the colour channel
		if t.caps.Dot3 && blend.BlendType == metadata.LayerBlendTypeColour {
			return DOT3_RGB, 1, 0
		}
		return MODULATE, 1, 0
	}
	panic(fmt.Sprintf("unknown blend operation %d", blend.Operation))
}

// SetBlendMode configures the combiner of one channel of the stage. The
// call is dropped when the same description was the last one applied.
func (t *TextureStages) SetBlendMode(index int, blend metadata.LayerBlendModeEx) error {
	st, err := t.stage(index)
	if err != nil {
		return err
	}
	if !t.caps.TextureBlending {
		core.LogDebug("texture blending unsupported, ignoring blend mode of stage %d", index)
		return nil
	}

	last := &st.colour
	if blend.BlendType == metadata.LayerBlendTypeAlpha {
		last = &st.alpha
	}
	if last.valid && last.mode == blend {
		t.state.skipped++
		return nil
	}

	src1 := glBlendSource(blend.Source1)
	src2 := glBlendSource(blend.Source2)
	if blend.Operation == metadata.LayerBlendOperationSource2 {
		// REPLACE reads its first argument
		src1 = src2
	}
	cmd, scale, src3 := t.glBlendOperation(blend)
	if src3 == 0 {
		src3 = CONSTANT
	}

	t.selectStage(index)
	defer t.restoreUnit()

	f := t.state.fns
	f.TexEnvi(TEXTURE_ENV, TEXTURE_ENV_MODE, int32(COMBINE))
	if blend.BlendType == metadata.LayerBlendTypeColour {
		f.TexEnvi(TEXTURE_ENV, COMBINE_RGB, int32(cmd))
		f.TexEnvi(TEXTURE_ENV, SOURCE0_RGB, int32(src1))
		f.TexEnvi(TEXTURE_ENV, SOURCE1_RGB, int32(src2))
		f.TexEnvi(TEXTURE_ENV, SOURCE2_RGB, int32(src3))
		f.TexEnvi(TEXTURE_ENV, OPERAND0_RGB, int32(SRC_COLOR))
		f.TexEnvi(TEXTURE_ENV, OPERAND1_RGB, int32(SRC_COLOR))
		f.TexEnvi(TEXTURE_ENV, OPERAND2_RGB, int32(SRC_ALPHA))
		f.TexEnvf(TEXTURE_ENV, RGB_SCALE, float32(scale))
	} else {
		f.TexEnvi(TEXTURE_ENV, COMBINE_ALPHA, int32(cmd))
		f.TexEnvi(TEXTURE_ENV, SOURCE0_ALPHA, int32(src1))
		f.TexEnvi(TEXTURE_ENV, SOURCE1_ALPHA, int32(src2))
		f.TexEnvi(TEXTURE_ENV, SOURCE2_ALPHA, int32(src3))
		f.TexEnvi(TEXTURE_ENV, OPERAND0_ALPHA, int32(SRC_ALPHA))
		f.TexEnvi(TEXTURE_ENV, OPERAND1_ALPHA, int32(SRC_ALPHA))
		f.TexEnvi(TEXTURE_ENV, OPERAND2_ALPHA, int32(SRC_ALPHA))
		f.TexEnvf(TEXTURE_ENV, ALPHA_SCALE, float32(scale))
	}

	if blend.Source1 == metadata.LayerBlendSourceManual {
		t.setEnvColour(st, blend, blend.ColourArg1, blend.AlphaArg1)
	}
	if blend.Source2 == metadata.LayerBlendSourceManual {
		t.setEnvColour(st, blend, blend.ColourArg2, blend.AlphaArg2)
	}
	if blend.Operation == metadata.LayerBlendOperationBlendManual {
		// the interpolation factor is read from the constant alpha
		st.envColour[3] = blend.BlendFactor
		t.pushEnvColour(st)
	}

	last.valid = true
	last.mode = blend
	last.scale = scale
	return nil
}

// setEnvColour updates the part of the constant colour owned by the
// channel being configured and pushes the whole colour.
func (t *TextureStages) setEnvColour(st *stageState, blend metadata.LayerBlendModeEx, colour [4]float32, alpha float32) {
	if blend.BlendType == metadata.LayerBlendTypeAlpha {
		st.envColour[3] = alpha
	} else {
		copy(st.envColour[:3], colour[:3])
	}
	t.pushEnvColour(st)
}

func (t *TextureStages) pushEnvColour(st *stageState) {
	c := st.envColour
	t.state.fns.TexEnvfv(TEXTURE_ENV, TEXTURE_ENV_COLOR, c[:])
}

// reflectionMatrix undoes the view rotation so reflection vectors are
// generated in world space. The Z axis is flipped to match cube map space.
func reflectionMatrix(view mgl32.Mat4) mgl32.Mat4 {
	var m mgl32.Mat4
	m[0] = view[0]
	m[1] = view[4]
	m[2] = -view[8]
	m[4] = view[1]
	m[5] = view[5]
	m[6] = -view[9]
	m[8] = view[2]
	m[9] = view[6]
	m[10] = -view[10]
	m[15] = 1
	return m
}

func (t *TextureStages) texGen(mode Enum, coords ...Enum) {
	for _, c := range coords {
		t.state.fns.TexGeni(c, TEXTURE_GEN_MODE, int32(mode))
	}
}

func (t *TextureStages) enableGen(s, tt, r, q bool) {
	t.state.set(TEXTURE_GEN_S, s)
	t.state.set(TEXTURE_GEN_T, tt)
	t.state.set(TEXTURE_GEN_R, r)
	t.state.set(TEXTURE_GEN_Q, q)
}

// SetCoordGeneration selects how texture coordinates are computed for the
// stage. Reflection generation also builds the auto texture matrix, which
// every other method clears.
func (t *TextureStages) SetCoordGeneration(index int, method metadata.TexCoordCalcMethod) error {
	st, err := t.stage(index)
	if err != nil {
		return err
	}
	st.useAutoMatrix = false

	if method == metadata.TexCoordCalcNone && st.coordCalc == method {
		t.state.skipped++
		return nil
	}
	st.coordCalc = method

	t.selectStage(index)
	defer t.restoreUnit()

	if method == metadata.TexCoordCalcEnvironmentMapPlanar {
		if t.caps.CubeMapping {
			method = metadata.TexCoordCalcEnvironmentMapReflection
		} else {
			method = metadata.TexCoordCalcEnvironmentMap
		}
	}

	switch method {
	case metadata.TexCoordCalcNone:
		t.enableGen(false, false, false, false)
	case metadata.TexCoordCalcEnvironmentMap:
		t.texGen(SPHERE_MAP, S, T)
		t.enableGen(true, true, false, false)
	case metadata.TexCoordCalcEnvironmentMapReflection:
		t.texGen(REFLECTION_MAP, S, T, R)
		t.enableGen(true, true, true, false)
		st.autoMatrix = reflectionMatrix(t.view)
		st.useAutoMatrix = true
	case metadata.TexCoordCalcEnvironmentMapNormal:
		t.texGen(NORMAL_MAP, S, T, R)
		t.enableGen(true, true, true, false)
	default:
		panic(fmt.Sprintf("unknown texture coordinate calculation %d", method))
	}
	return nil
}

// SetTextureMatrix loads the texture transform of the stage, composed after
// the auto matrix when reflection generation asked for one.
func (t *TextureStages) SetTextureMatrix(index int, xform mgl32.Mat4) error {
	st, err := t.stage(index)
	if err != nil {
		return err
	}
	gm := xform
	// generated coordinates are re-centred by the third row, not the fourth
	gm[12] = gm[8]
	gm[13] = gm[9]

	t.selectStage(index)
	defer t.restoreUnit()

	t.state.setMatrixMode(TEXTURE)
	if st.useAutoMatrix {
		t.state.fns.LoadMatrixf(st.autoMatrix)
		t.state.fns.MultMatrixf(gm)
		st.textureMatrix = st.autoMatrix.Mul4(gm)
	} else {
		t.state.fns.LoadMatrixf(gm)
		st.textureMatrix = gm
	}
	t.state.setMatrixMode(MODELVIEW)
	return nil
}

func combinedMinMipFilter(minFilter, mip metadata.FilterOptions) Enum {
	linearMin := minFilter == metadata.FilterOptionsLinear || minFilter == metadata.FilterOptionsAnisotropic
	switch mip {
	case metadata.FilterOptionsLinear, metadata.FilterOptionsAnisotropic:
		if linearMin {
			return LINEAR_MIPMAP_LINEAR
		}
		return NEAREST_MIPMAP_LINEAR
	case metadata.FilterOptionsPoint:
		if linearMin {
			return LINEAR_MIPMAP_NEAREST
		}
		return NEAREST_MIPMAP_NEAREST
	}
	if linearMin {
		return LINEAR
	}
	return NEAREST
}

func (t *TextureStages) SetTextureUnitFiltering(index int, filterType metadata.FilterType, option metadata.FilterOptions) error {
	st, err := t.stage(index)
	if err != nil {
		return err
	}
	t.selectStage(index)
	defer t.restoreUnit()

	switch filterType {
	case metadata.FilterTypeMin:
		st.minFilter = option
		t.state.fns.TexParameteri(st.target(), TEXTURE_MIN_FILTER, int32(combinedMinMipFilter(st.minFilter, st.mipFilter)))
	case metadata.FilterTypeMag:
		mag := NEAREST
		if option == metadata.FilterOptionsLinear || option == metadata.FilterOptionsAnisotropic {
			mag = LINEAR
		}
		t.state.fns.TexParameteri(st.target(), TEXTURE_MAG_FILTER, int32(mag))
	case metadata.FilterTypeMip:
		st.mipFilter = option
		t.state.fns.TexParameteri(st.target(), TEXTURE_MIN_FILTER, int32(combinedMinMipFilter(st.minFilter, st.mipFilter)))
	}
	return nil
}

func (t *TextureStages) SetTextureLayerAnisotropy(index int, maxAnisotropy int) error {
	st, err := t.stage(index)
	if err != nil {
		return err
	}
	if !t.caps.AnisotropicFiltering {
		return nil
	}
	value := float32(maxAnisotropy)
	if value > t.caps.MaxAnisotropy {
		value = max(float32(int(t.caps.MaxAnisotropy)), 1)
	}
	if value == st.anisotropy {
		t.state.skipped++
		return nil
	}
	t.selectStage(index)
	defer t.restoreUnit()
	t.state.fns.TexParameterf(st.target(), TEXTURE_MAX_ANISOTROPY_EXT, value)
	st.anisotropy = value
	return nil
}

// endFrame forgets the blend state of the upper stages; their previous
// contents are undefined once the next frame binds other textures.
func (t *TextureStages) endFrame() {
	for i := 1; i < len(t.stages); i++ {
		t.stages[i].colour.valid = false
		t.stages[i].alpha.valid = false
	}
}

// DisableFrom turns off every stage from index upwards.
func (t *TextureStages) DisableFrom(index int) {
	for i := index; i < len(t.stages); i++ {
		_ = t.SetTexture(i, false, nil)
	}
}

package opengl

import (
	"errors"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/spaghettifunk/anima-ffp/engine/core"
	"github.com/spaghettifunk/anima-ffp/engine/renderer/metadata"
)

func colourBlend(op metadata.LayerBlendOperationEx, src1, src2 metadata.LayerBlendSource) metadata.LayerBlendModeEx {
	return metadata.LayerBlendModeEx{
		BlendType: metadata.LayerBlendTypeColour,
		Operation: op,
		Source1:   src1,
		Source2:   src2,
	}
}

func alphaBlend(op metadata.LayerBlendOperationEx, src1, src2 metadata.LayerBlendSource) metadata.LayerBlendModeEx {
	b := colourBlend(op, src1, src2)
	b.BlendType = metadata.LayerBlendTypeAlpha
	return b
}

func TestBlendModeModulate(t *testing.T) {
	r, f := newTestRenderer(nil)
	stages := r.TextureStages()
	mode := colourBlend(metadata.LayerBlendOperationModulate, metadata.LayerBlendSourceTexture, metadata.LayerBlendSourceCurrent)

	if err := stages.SetBlendMode(0, mode); err != nil {
		t.Fatal(err)
	}
	checks := []struct {
		pname Enum
		want  Enum
	}{
		{TEXTURE_ENV_MODE, COMBINE},
		{COMBINE_RGB, MODULATE},
		{SOURCE0_RGB, TEXTURE},
		{SOURCE1_RGB, PREVIOUS},
		{OPERAND0_RGB, SRC_COLOR},
		{OPERAND1_RGB, SRC_COLOR},
		{RGB_SCALE, 1},
	}
	for _, c := range checks {
		if got := f.env(TEXTURE0, c.pname); got != c.want {
			t.Errorf("env %#x = %#x, want %#x", c.pname, got, c.want)
		}
	}
	snap, err := stages.Snapshot(0)
	if err != nil {
		t.Fatal(err)
	}
	if snap.ColourBlend != mode || snap.ColourScale != 1 {
		t.Errorf("snapshot = %+v, scale %d", snap.ColourBlend, snap.ColourScale)
	}
	if f.count("TexEnvfv") != 0 {
		t.Error("non-manual blend pushed an environment colour")
	}
}

func TestBlendModeOperations(t *testing.T) {
	tests := []struct {
		name      string
		mode      metadata.LayerBlendModeEx
		noDot3    bool
		combine   Enum
		wantCmd   Enum
		wantScale Enum
		wantSrc0  Enum
		wantSrc2  Enum
	}{
		{
			name:      "modulate x4",
			mode:      colourBlend(metadata.LayerBlendOperationModulateX4, metadata.LayerBlendSourceTexture, metadata.LayerBlendSourceDiffuse),
			combine:   COMBINE_RGB,
			wantCmd:   MODULATE,
			wantScale: 4,
			wantSrc0:  TEXTURE,
			wantSrc2:  CONSTANT,
		},
		{
			name:      "source2 replaces with the second source",
			mode:      colourBlend(metadata.LayerBlendOperationSource2, metadata.LayerBlendSourceTexture, metadata.LayerBlendSourceDiffuse),
			combine:   COMBINE_RGB,
			wantCmd:   REPLACE,
			wantScale: 1,
			wantSrc0:  PRIMARY_COLOR,
			wantSrc2:  CONSTANT,
		},
		{
			name:      "blend current alpha",
			mode:      colourBlend(metadata.LayerBlendOperationBlendCurrentAlpha, metadata.LayerBlendSourceTexture, metadata.LayerBlendSourceCurrent),
			combine:   COMBINE_RGB,
			wantCmd:   INTERPOLATE,
			wantScale: 1,
			wantSrc0:  TEXTURE,
			wantSrc2:  PREVIOUS,
		},
		{
			name:      "dot product colour",
			mode:      colourBlend(metadata.LayerBlendOperationDotProduct, metadata.LayerBlendSourceTexture, metadata.LayerBlendSourceDiffuse),
			combine:   COMBINE_RGB,
			wantCmd:   DOT3_RGB,
			wantScale: 1,
			wantSrc0:  TEXTURE,
			wantSrc2:  CONSTANT,
		},
		{
			name:      "dot product without dot3",
			mode:      colourBlend(metadata.LayerBlendOperationDotProduct, metadata.LayerBlendSourceTexture, metadata.LayerBlendSourceDiffuse),
			noDot3:    true,
			combine:   COMBINE_RGB,
			wantCmd:   MODULATE,
			wantScale: 1,
			wantSrc0:  TEXTURE,
			wantSrc2:  CONSTANT,
		},
		{
			name:      "dot product alpha",
			mode:      alphaBlend(metadata.LayerBlendOperationDotProduct, metadata.LayerBlendSourceTexture, metadata.LayerBlendSourceDiffuse),
			combine:   COMBINE_ALPHA,
			wantCmd:   MODULATE,
			wantScale: 1,
			wantSrc0:  TEXTURE,
			wantSrc2:  CONSTANT,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, f := newTestRenderer(func(f *fakeFunctions) {
				if tt.noDot3 {
					f.strs[EXTENSIONS] = "GL_ARB_multitexture GL_ARB_texture_env_combine"
				}
			})
			if err := r.TextureStages().SetBlendMode(1, tt.mode); err != nil {
				t.Fatal(err)
			}
			unit := TEXTURE0 + 1
			src0, src2, scale := SOURCE0_RGB, SOURCE2_RGB, RGB_SCALE
			if tt.combine == COMBINE_ALPHA {
				src0, src2, scale = SOURCE0_ALPHA, SOURCE2_ALPHA, ALPHA_SCALE
			}
			if got := f.env(unit, tt.combine); got != tt.wantCmd {
				t.Errorf("combine = %#x, want %#x", got, tt.wantCmd)
			}
			if got := f.env(unit, scale); got != tt.wantScale {
				t.Errorf("scale = %d, want %d", got, tt.wantScale)
			}
			if got := f.env(unit, src0); got != tt.wantSrc0 {
				t.Errorf("source0 = %#x, want %#x", got, tt.wantSrc0)
			}
			if got := f.env(unit, src2); got != tt.wantSrc2 {
				t.Errorf("source2 = %#x, want %#x", got, tt.wantSrc2)
			}
			if f.activeUnit != TEXTURE0 {
				t.Errorf("active unit left at %#x", f.activeUnit)
			}
		})
	}
}

func TestBlendModeManualColour(t *testing.T) {
	r, f := newTestRenderer(nil)
	mode := colourBlend(metadata.LayerBlendOperationModulate, metadata.LayerBlendSourceTexture, metadata.LayerBlendSourceManual)
	mode.ColourArg2 = [4]float32{0.2, 0.4, 0.6, 1}
	if err := r.TextureStages().SetBlendMode(0, mode); err != nil {
		t.Fatal(err)
	}
	got := f.envColour[TEXTURE0]
	if len(got) != 4 || got[1] != 0.4 {
		t.Errorf("env colour = %v", got)
	}

	alpha := alphaBlend(metadata.LayerBlendOperationBlendManual, metadata.LayerBlendSourceTexture, metadata.LayerBlendSourceManual)
	alpha.AlphaArg2 = 0.5
	alpha.BlendFactor = 0.75
	if err := r.TextureStages().SetBlendMode(0, alpha); err != nil {
		t.Fatal(err)
	}
	got = f.envColour[TEXTURE0]
	if len(got) != 4 || got[3] != 0.75 {
		t.Errorf("blend factor colour = %v", got)
	}
	if f.env(TEXTURE0, SOURCE2_ALPHA) != CONSTANT {
		t.Errorf("manual blend interpolates with %#x", f.env(TEXTURE0, SOURCE2_ALPHA))
	}
}

func TestBlendModeManualChannelsShareConstant(t *testing.T) {
	r, f := newTestRenderer(nil)
	stages := r.TextureStages()

	colour := colourBlend(metadata.LayerBlendOperationSource1, metadata.LayerBlendSourceManual, metadata.LayerBlendSourceCurrent)
	colour.ColourArg1 = [4]float32{1, 0.5, 0.25, 1}
	if err := stages.SetBlendMode(0, colour); err != nil {
		t.Fatal(err)
	}
	alpha := alphaBlend(metadata.LayerBlendOperationSource1, metadata.LayerBlendSourceManual, metadata.LayerBlendSourceCurrent)
	alpha.AlphaArg1 = 0.75
	if err := stages.SetBlendMode(0, alpha); err != nil {
		t.Fatal(err)
	}

	want := []float32{1, 0.5, 0.25, 0.75}
	got := f.envColour[TEXTURE0]
	if len(got) != 4 {
		t.Fatalf("env colour = %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("env colour = %v, want %v", got, want)
		}
	}

	// reconfiguring the colour keeps the alpha constant
	colour.ColourArg1 = [4]float32{0, 1, 0, 1}
	if err := stages.SetBlendMode(0, colour); err != nil {
		t.Fatal(err)
	}
	if got := f.envColour[TEXTURE0]; got[1] != 1 || got[3] != 0.75 {
		t.Errorf("env colour after colour update = %v", got)
	}
}

func TestBlendModeCache(t *testing.T) {
	r, f := newTestRenderer(nil)
	stages := r.TextureStages()
	mode := colourBlend(metadata.LayerBlendOperationAdd, metadata.LayerBlendSourceTexture, metadata.LayerBlendSourceCurrent)
	if err := stages.SetBlendMode(1, mode); err != nil {
		t.Fatal(err)
	}
	f.reset()
	skipped := r.state.Skipped()
	if err := stages.SetBlendMode(1, mode); err != nil {
		t.Fatal(err)
	}
	if f.count("TexEnvi") != 0 {
		t.Error("identical blend mode was pushed again")
	}
	if r.state.Skipped() != skipped+1 {
		t.Errorf("skipped = %d, want %d", r.state.Skipped(), skipped+1)
	}

	// a new frame forgets the upper stages
	stages.endFrame()
	if err := stages.SetBlendMode(1, mode); err != nil {
		t.Fatal(err)
	}
	if f.count("TexEnvi") == 0 {
		t.Error("blend mode was not pushed after the frame ended")
	}
}

func TestBlendModeWithoutCombiners(t *testing.T) {
	r, f := newTestRenderer(func(f *fakeFunctions) {
		f.strs[EXTENSIONS] = "GL_ARB_multitexture"
	})
	mode := colourBlend(metadata.LayerBlendOperationAdd, metadata.LayerBlendSourceTexture, metadata.LayerBlendSourceCurrent)
	if err := r.TextureStages().SetBlendMode(0, mode); err != nil {
		t.Fatal(err)
	}
	if f.count("TexEnvi") != 0 {
		t.Error("combiner state pushed without texture blending support")
	}
}

func TestStageOutOfRange(t *testing.T) {
	r, _ := newTestRenderer(nil)
	stages := r.TextureStages()
	if stages.NumStages() != 4 {
		t.Fatalf("NumStages = %d, want 4", stages.NumStages())
	}
	if err := stages.SetTextureCoordSet(4, 0); !errors.Is(err, core.ErrCapacityExceeded) {
		t.Errorf("SetTextureCoordSet error = %v, want ErrCapacityExceeded", err)
	}
	if err := stages.SetCoordGeneration(-1, metadata.TexCoordCalcNone); !errors.Is(err, core.ErrCapacityExceeded) {
		t.Errorf("SetCoordGeneration error = %v, want ErrCapacityExceeded", err)
	}
}

func TestReflectionMatrix(t *testing.T) {
	view := mgl32.HomogRotate3DY(mgl32.DegToRad(30)).Mul4(mgl32.Translate3D(1, 2, 3))
	m := reflectionMatrix(view)
	checks := []struct {
		index int
		want  float32
	}{
		{0, view[0]}, {1, view[4]}, {2, -view[8]},
		{4, view[1]}, {5, view[5]}, {6, -view[9]},
		{8, view[2]}, {9, view[6]}, {10, -view[10]},
		{3, 0}, {7, 0}, {11, 0}, {12, 0}, {13, 0}, {14, 0}, {15, 1},
	}
	for _, c := range checks {
		if m[c.index] != c.want {
			t.Errorf("m[%d] = %v, want %v", c.index, m[c.index], c.want)
		}
	}
}

func TestCoordGenerationReflection(t *testing.T) {
	r, f := newTestRenderer(nil)
	stages := r.TextureStages()
	r.SetViewMatrix(mgl32.Translate3D(0, 0, -5))

	if err := stages.SetCoordGeneration(1, metadata.TexCoordCalcEnvironmentMapReflection); err != nil {
		t.Fatal(err)
	}
	unit := TEXTURE0 + 1
	for _, coord := range []Enum{S, T, R} {
		if got := f.texGen[unitKey{unit, coord}]; got != REFLECTION_MAP {
			t.Errorf("texgen %#x = %#x, want REFLECTION_MAP", coord, got)
		}
	}
	if !f.unitEnabled(unit, TEXTURE_GEN_R) || f.unitEnabled(unit, TEXTURE_GEN_Q) {
		t.Error("reflection should generate S, T and R only")
	}
	snap, _ := stages.Snapshot(1)
	if !snap.UseAutoMatrix {
		t.Fatal("reflection did not request the auto matrix")
	}
	want := mgl32.Diag4(mgl32.Vec4{1, 1, -1, 1})
	if !snap.AutoMatrix.ApproxEqual(want) {
		t.Errorf("auto matrix = %v, want %v", snap.AutoMatrix, want)
	}

	if err := stages.SetCoordGeneration(1, metadata.TexCoordCalcNone); err != nil {
		t.Fatal(err)
	}
	snap, _ = stages.Snapshot(1)
	if snap.UseAutoMatrix {
		t.Error("auto matrix still in use after generation was turned off")
	}
	if f.unitEnabled(unit, TEXTURE_GEN_S) || f.unitEnabled(unit, TEXTURE_GEN_R) {
		t.Error("texgen still enabled")
	}
	if f.activeUnit != TEXTURE0 {
		t.Errorf("active unit left at %#x", f.activeUnit)
	}
}

func TestCoordGenerationPlanar(t *testing.T) {
	tests := []struct {
		name       string
		extensions string
		want       Enum
		auto       bool
	}{
		{"with cube maps", "GL_ARB_texture_cube_map GL_ARB_texture_env_combine", REFLECTION_MAP, true},
		{"without cube maps", "GL_ARB_texture_env_combine", SPHERE_MAP, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, f := newTestRenderer(func(f *fakeFunctions) {
				f.strs[EXTENSIONS] = tt.extensions
			})
			if err := r.TextureStages().SetCoordGeneration(0, metadata.TexCoordCalcEnvironmentMapPlanar); err != nil {
				t.Fatal(err)
			}
			if got := f.texGen[unitKey{TEXTURE0, S}]; got != tt.want {
				t.Errorf("texgen S = %#x, want %#x", got, tt.want)
			}
			snap, _ := r.TextureStages().Snapshot(0)
			if snap.UseAutoMatrix != tt.auto {
				t.Errorf("UseAutoMatrix = %t, want %t", snap.UseAutoMatrix, tt.auto)
			}
		})
	}
}

func TestTextureMatrix(t *testing.T) {
	r, f := newTestRenderer(nil)
	stages := r.TextureStages()
	xform := mgl32.Translate3D(0.5, 0.25, 0)
	xform[8], xform[9] = 0.1, 0.2

	if err := stages.SetTextureMatrix(0, xform); err != nil {
		t.Fatal(err)
	}
	got := f.matrices[TEXTURE]
	if got[12] != 0.1 || got[13] != 0.2 {
		t.Errorf("translation = (%v, %v), want (0.1, 0.2)", got[12], got[13])
	}
	if f.matrixMode != MODELVIEW {
		t.Errorf("matrix mode left at %#x", f.matrixMode)
	}

	if err := stages.SetCoordGeneration(0, metadata.TexCoordCalcEnvironmentMapReflection); err != nil {
		t.Fatal(err)
	}
	if err := stages.SetTextureMatrix(0, mgl32.Ident4()); err != nil {
		t.Fatal(err)
	}
	snap, _ := stages.Snapshot(0)
	if !f.matrices[TEXTURE].ApproxEqual(snap.AutoMatrix) {
		t.Errorf("texture matrix = %v, want the auto matrix %v", f.matrices[TEXTURE], snap.AutoMatrix)
	}
	if !snap.TextureMatrix.ApproxEqual(snap.AutoMatrix) {
		t.Errorf("snapshot texture matrix = %v", snap.TextureMatrix)
	}
}

func TestSetTexture(t *testing.T) {
	r, f := newTestRenderer(nil)
	stages := r.TextureStages()
	tex := &metadata.Texture{Handle: 7, TextureType: metadata.TextureType2d}

	if err := stages.SetTexture(2, true, tex); err != nil {
		t.Fatal(err)
	}
	if err := stages.SetTexture(2, true, tex); err != nil {
		t.Fatal(err)
	}
	if f.count("BindTexture") != 1 {
		t.Errorf("BindTexture calls = %d, want 1", f.count("BindTexture"))
	}
	if !f.unitEnabled(TEXTURE0+2, TEXTURE_2D) {
		t.Error("TEXTURE_2D not enabled on stage 2")
	}

	cube := &metadata.Texture{Handle: 9, TextureType: metadata.TextureTypeCube}
	if err := stages.SetTexture(2, true, cube); err != nil {
		t.Fatal(err)
	}
	if f.unitEnabled(TEXTURE0+2, TEXTURE_2D) || !f.unitEnabled(TEXTURE0+2, TEXTURE_CUBE_MAP) {
		t.Error("switching to a cube map did not swap the enabled target")
	}

	stages.DisableFrom(1)
	if f.unitEnabled(TEXTURE0+2, TEXTURE_CUBE_MAP) {
		t.Error("DisableFrom left stage 2 enabled")
	}
	if f.activeUnit != TEXTURE0 {
		t.Errorf("active unit left at %#x", f.activeUnit)
	}
}

func TestAnisotropyClamp(t *testing.T) {
	r, f := newTestRenderer(nil)
	stages := r.TextureStages()
	if err := stages.SetTextureLayerAnisotropy(0, 64); err != nil {
		t.Fatal(err)
	}
	if err := stages.SetTextureLayerAnisotropy(0, 64); err != nil {
		t.Fatal(err)
	}
	if f.count("TexParameterf") != 1 {
		t.Errorf("TexParameterf calls = %d, want 1", f.count("TexParameterf"))
	}
	if got := stages.stages[0].anisotropy; got != 16 {
		t.Errorf("anisotropy = %v, want 16", got)
	}
}

func TestCombinedMinMipFilter(t *testing.T) {
	tests := []struct {
		min, mip metadata.FilterOptions
		want     Enum
	}{
		{metadata.FilterOptionsLinear, metadata.FilterOptionsNone, LINEAR},
		{metadata.FilterOptionsPoint, metadata.FilterOptionsNone, NEAREST},
		{metadata.FilterOptionsLinear, metadata.FilterOptionsPoint, LINEAR_MIPMAP_NEAREST},
		{metadata.FilterOptionsPoint, metadata.FilterOptionsLinear, NEAREST_MIPMAP_LINEAR},
		{metadata.FilterOptionsAnisotropic, metadata.FilterOptionsLinear, LINEAR_MIPMAP_LINEAR},
		{metadata.FilterOptionsPoint, metadata.FilterOptionsPoint, NEAREST_MIPMAP_NEAREST},
	}
	for _, tt := range tests {
		if got := combinedMinMipFilter(tt.min, tt.mip); got != tt.want {
			t.Errorf("combinedMinMipFilter(%d, %d) = %#x, want %#x", tt.min, tt.mip, got, tt.want)
		}
	}
}

func TestTextureCreate(t *testing.T) {
	r, f := newTestRenderer(nil)
	tex := &metadata.Texture{Name: "sky", TextureType: metadata.TextureTypeCube, Width: 2, Height: 2, Format: metadata.PixelFormatRGBA8, MipMaps: 1}

	if err := r.TextureCreate(tex, make([]byte, 16)); !errors.Is(err, core.ErrOutOfRange) {
		t.Fatalf("short upload error = %v, want ErrOutOfRange", err)
	}
	if err := r.TextureCreate(tex, make([]byte, 16*6)); err != nil {
		t.Fatal(err)
	}
	if tex.Handle == 0 || tex.Generation != 1 {
		t.Errorf("handle %d, generation %d", tex.Handle, tex.Generation)
	}
	if f.images != 6 {
		t.Errorf("TexImage2D calls = %d, want 6", f.images)
	}
	r.TextureDestroy(tex)
	if tex.Handle != 0 || f.count("DeleteTexture") != 1 {
		t.Error("TextureDestroy did not release the handle")
	}
}

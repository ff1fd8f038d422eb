package opengl

import (
	"github.com/go-gl/mathgl/mgl32"
)

type unitKey struct {
	unit  Enum
	pname Enum
}

type lightKey struct {
	light Enum
	pname Enum
}

type drawCall struct {
	mode     Enum
	first    int
	count    int
	elemType Enum
	indices  ClientData
	indexed  bool
}

type pointerCall struct {
	array  Enum
	unit   Enum
	size   int
	typ    Enum
	stride int
	ptr    ClientData
}

// fakeFunctions records driver calls and emulates the bits of state the
// translators read back.
type fakeFunctions struct {
	calls []string

	strs   map[Enum]string
	ints   map[Enum]int
	floats map[Enum]float32

	nextID        uint32
	failGenBuffer bool
	failMap       bool
	failUnmap     bool
	bound         map[Enum]uint32
	buffers       map[uint32][]byte
	mapped        map[Enum]bool
	mapAccess     Enum

	activeUnit Enum
	clientUnit Enum
	enabled    map[Enum]bool
	unitCaps   map[unitKey]bool
	arrays     map[unitKey]bool
	texEnv     map[unitKey]float32
	envColour  map[Enum][]float32
	texGen     map[unitKey]Enum
	textures   map[unitKey]uint32
	images     int

	lights     map[lightKey][]float32
	matrixMode Enum
	matrices   map[Enum]mgl32.Mat4

	pointers []pointerCall
	draws    []drawCall

	depthFunc  Enum
	depthRange [2]float64
	colorMask  [4]bool
	clears     int
}

func newFakeFunctions() *fakeFunctions {
	return &fakeFunctions{
		strs: map[Enum]string{
			VENDOR:   "Anima Labs",
			RENDERER: "Fake Rasterizer",
			VERSION:  "2.1 Fake",
			EXTENSIONS: "GL_ARB_multitexture GL_ARB_texture_env_combine GL_ARB_texture_env_dot3 " +
				"GL_ARB_vertex_buffer_object GL_ARB_texture_cube_map GL_EXT_texture_filter_anisotropic " +
				"GL_SGIS_generate_mipmap",
		},
		ints: map[Enum]int{
			MAX_LIGHTS:        8,
			MAX_TEXTURE_UNITS: 4,
			STENCIL_BITS:      8,
		},
		floats: map[Enum]float32{
			MAX_TEXTURE_MAX_ANISOTROPY_EXT: 16,
		},
		bound:      make(map[Enum]uint32),
		buffers:    make(map[uint32][]byte),
		mapped:     make(map[Enum]bool),
		activeUnit: TEXTURE0,
		clientUnit: TEXTURE0,
		enabled:    make(map[Enum]bool),
		unitCaps:   make(map[unitKey]bool),
		arrays:     make(map[unitKey]bool),
		texEnv:     make(map[unitKey]float32),
		envColour:  make(map[Enum][]float32),
		texGen:     make(map[unitKey]Enum),
		textures:   make(map[unitKey]uint32),
		lights:     make(map[lightKey][]float32),
		matrixMode: MODELVIEW,
		matrices: map[Enum]mgl32.Mat4{
			MODELVIEW:  mgl32.Ident4(),
			PROJECTION: mgl32.Ident4(),
			TEXTURE:    mgl32.Ident4(),
		},
		depthFunc: LESS,
		colorMask: [4]bool{true, true, true, true},
	}
}

func (f *fakeFunctions) record(name string) {
	f.calls = append(f.calls, name)
}

// count returns how often the named call was made.
func (f *fakeFunctions) count(name string) int {
	n := 0
	for _, c := range f.calls {
		if c == name {
			n++
		}
	}
	return n
}

func (f *fakeFunctions) reset() {
	f.calls = f.calls[:0]
	f.pointers = nil
	f.draws = nil
}

func perUnit(capability Enum) bool {
	switch capability {
	case TEXTURE_2D, TEXTURE_CUBE_MAP, TEXTURE_GEN_S, TEXTURE_GEN_T, TEXTURE_GEN_R, TEXTURE_GEN_Q:
		return true
	}
	return false
}

func (f *fakeFunctions) isEnabled(capability Enum) bool {
	if perUnit(capability) {
		return f.unitCaps[unitKey{f.activeUnit, capability}]
	}
	return f.enabled[capability]
}

func (f *fakeFunctions) unitEnabled(unit, capability Enum) bool {
	return f.unitCaps[unitKey{unit, capability}]
}

func (f *fakeFunctions) GetError() Enum { f.record("GetError"); return NO_ERROR }

func (f *fakeFunctions) GetInteger(pname Enum) int { f.record("GetInteger"); return f.ints[pname] }

func (f *fakeFunctions) GetFloat(pname Enum) float32 { f.record("GetFloat"); return f.floats[pname] }

func (f *fakeFunctions) GetString(name Enum) string { f.record("GetString"); return f.strs[name] }

func (f *fakeFunctions) Hint(target, mode Enum) { f.record("Hint") }

func (f *fakeFunctions) Flush() { f.record("Flush") }

func (f *fakeFunctions) Enable(capability Enum) {
	f.record("Enable")
	if perUnit(capability) {
		f.unitCaps[unitKey{f.activeUnit, capability}] = true
		return
	}
	f.enabled[capability] = true
}

func (f *fakeFunctions) Disable(capability Enum) {
	f.record("Disable")
	if perUnit(capability) {
		f.unitCaps[unitKey{f.activeUnit, capability}] = false
		return
	}
	f.enabled[capability] = false
}

func (f *fakeFunctions) EnableClientState(array Enum) {
	f.record("EnableClientState")
	unit := f.clientUnit
	if array != TEXTURE_COORD_ARRAY {
		unit = 0
	}
	f.arrays[unitKey{unit, array}] = true
}

func (f *fakeFunctions) DisableClientState(array Enum) {
	f.record("DisableClientState")
	unit := f.clientUnit
	if array != TEXTURE_COORD_ARRAY {
		unit = 0
	}
	f.arrays[unitKey{unit, array}] = false
}

// enabledArrays counts client arrays still switched on.
func (f *fakeFunctions) enabledArrays() int {
	n := 0
	for _, on := range f.arrays {
		if on {
			n++
		}
	}
	return n
}

func (f *fakeFunctions) ActiveTexture(unit Enum) {
	f.record("ActiveTexture")
	f.activeUnit = unit
}

func (f *fakeFunctions) ClientActiveTexture(unit Enum) {
	f.record("ClientActiveTexture")
	f.clientUnit = unit
}

func (f *fakeFunctions) GenBuffer() uint32 {
	f.record("GenBuffer")
	if f.failGenBuffer {
		return 0
	}
	f.nextID++
	f.buffers[f.nextID] = nil
	return f.nextID
}

func (f *fakeFunctions) DeleteBuffer(id uint32) {
	f.record("DeleteBuffer")
	delete(f.buffers, id)
	for target, b := range f.bound {
		if b == id {
			f.bound[target] = 0
		}
	}
}

func (f *fakeFunctions) BindBuffer(target Enum, id uint32) {
	f.record("BindBuffer")
	f.bound[target] = id
}

func (f *fakeFunctions) BufferData(target Enum, size int, data []byte, usage Enum) {
	f.record("BufferData")
	mem := make([]byte, size)
	copy(mem, data)
	f.buffers[f.bound[target]] = mem
}

func (f *fakeFunctions) BufferSubData(target Enum, offset int, data []byte) {
	f.record("BufferSubData")
	copy(f.buffers[f.bound[target]][offset:], data)
}

func (f *fakeFunctions) GetBufferSubData(target Enum, offset int, data []byte) {
	f.record("GetBufferSubData")
	copy(data, f.buffers[f.bound[target]][offset:])
}

func (f *fakeFunctions) MapBuffer(target, access Enum, size int) []byte {
	f.record("MapBuffer")
	f.mapAccess = access
	if f.failMap {
		return nil
	}
	f.mapped[target] = true
	return f.buffers[f.bound[target]][:size]
}

func (f *fakeFunctions) UnmapBuffer(target Enum) bool {
	f.record("UnmapBuffer")
	f.mapped[target] = false
	return !f.failUnmap
}

func (f *fakeFunctions) pointer(array Enum, size int, typ Enum, stride int, ptr ClientData) {
	unit := Enum(0)
	if array == TEXTURE_COORD_ARRAY {
		unit = f.clientUnit
	}
	f.pointers = append(f.pointers, pointerCall{array: array, unit: unit, size: size, typ: typ, stride: stride, ptr: ptr})
}

func (f *fakeFunctions) VertexPointer(size int, typ Enum, stride int, ptr ClientData) {
	f.record("VertexPointer")
	f.pointer(VERTEX_ARRAY, size, typ, stride, ptr)
}

func (f *fakeFunctions) NormalPointer(typ Enum, stride int, ptr ClientData) {
	f.record("NormalPointer")
	f.pointer(NORMAL_ARRAY, 3, typ, stride, ptr)
}

func (f *fakeFunctions) ColorPointer(size int, typ Enum, stride int, ptr ClientData) {
	f.record("ColorPointer")
	f.pointer(COLOR_ARRAY, size, typ, stride, ptr)
}

func (f *fakeFunctions) TexCoordPointer(size int, typ Enum, stride int, ptr ClientData) {
	f.record("TexCoordPointer")
	f.pointer(TEXTURE_COORD_ARRAY, size, typ, stride, ptr)
}

func (f *fakeFunctions) DrawArrays(mode Enum, first, count int) {
	f.record("DrawArrays")
	f.draws = append(f.draws, drawCall{mode: mode, first: first, count: count})
}

func (f *fakeFunctions) DrawElements(mode Enum, count int, typ Enum, indices ClientData) {
	f.record("DrawElements")
	f.draws = append(f.draws, drawCall{mode: mode, count: count, elemType: typ, indices: indices, indexed: true})
}

func (f *fakeFunctions) Color4f(r, g, b, a float32) { f.record("Color4f") }

func (f *fakeFunctions) GenTexture() uint32 {
	f.record("GenTexture")
	f.nextID++
	return f.nextID
}

func (f *fakeFunctions) DeleteTexture(id uint32) { f.record("DeleteTexture") }

func (f *fakeFunctions) BindTexture(target Enum, id uint32) {
	f.record("BindTexture")
	f.textures[unitKey{f.activeUnit, target}] = id
}

func (f *fakeFunctions) TexParameteri(target, pname Enum, param int32) { f.record("TexParameteri") }

func (f *fakeFunctions) TexParameterf(target, pname Enum, param float32) {
	f.record("TexParameterf")
}

func (f *fakeFunctions) TexImage2D(target Enum, level int, internalFormat Enum, width, height int, format, typ Enum, pixels []byte) {
	f.record("TexImage2D")
	f.images++
}

func (f *fakeFunctions) PixelStorei(pname Enum, param int32) { f.record("PixelStorei") }

func (f *fakeFunctions) TexEnvi(target, pname Enum, param int32) {
	f.record("TexEnvi")
	f.texEnv[unitKey{f.activeUnit, pname}] = float32(param)
}

func (f *fakeFunctions) TexEnvf(target, pname Enum, param float32) {
	f.record("TexEnvf")
	f.texEnv[unitKey{f.activeUnit, pname}] = param
}

func (f *fakeFunctions) TexEnvfv(target, pname Enum, params []float32) {
	f.record("TexEnvfv")
	f.envColour[f.activeUnit] = append([]float32(nil), params...)
}

// env reads back a combiner parameter of a unit.
func (f *fakeFunctions) env(unit, pname Enum) Enum {
	return Enum(f.texEnv[unitKey{unit, pname}])
}

func (f *fakeFunctions) TexGeni(coord, pname Enum, param int32) {
	f.record("TexGeni")
	f.texGen[unitKey{f.activeUnit, coord}] = Enum(param)
}

func (f *fakeFunctions) MatrixMode(mode Enum) {
	f.record("MatrixMode")
	f.matrixMode = mode
}

func (f *fakeFunctions) LoadIdentity() {
	f.record("LoadIdentity")
	f.matrices[f.matrixMode] = mgl32.Ident4()
}

func (f *fakeFunctions) LoadMatrixf(m mgl32.Mat4) {
	f.record("LoadMatrixf")
	f.matrices[f.matrixMode] = m
}

func (f *fakeFunctions) MultMatrixf(m mgl32.Mat4) {
	f.record("MultMatrixf")
	f.matrices[f.matrixMode] = f.matrices[f.matrixMode].Mul4(m)
}

func (f *fakeFunctions) Lightf(light, pname Enum, param float32) {
	f.record("Lightf")
	f.lights[lightKey{light, pname}] = []float32{param}
}

func (f *fakeFunctions) Lightfv(light, pname Enum, params []float32) {
	f.record("Lightfv")
	f.lights[lightKey{light, pname}] = append([]float32(nil), params...)
}

func (f *fakeFunctions) light(light, pname Enum) []float32 {
	return f.lights[lightKey{light, pname}]
}

func (f *fakeFunctions) LightModelfv(pname Enum, params []float32) { f.record("LightModelfv") }

func (f *fakeFunctions) LightModeli(pname Enum, param int32) { f.record("LightModeli") }

func (f *fakeFunctions) Materialf(face, pname Enum, param float32) { f.record("Materialf") }

func (f *fakeFunctions) Materialfv(face, pname Enum, params []float32) { f.record("Materialfv") }

func (f *fakeFunctions) ShadeModel(mode Enum) { f.record("ShadeModel") }

func (f *fakeFunctions) DepthFunc(fn Enum) {
	f.record("DepthFunc")
	f.depthFunc = fn
}

func (f *fakeFunctions) DepthMask(flag bool) { f.record("DepthMask") }

func (f *fakeFunctions) DepthRange(near, far float64) {
	f.record("DepthRange")
	f.depthRange = [2]float64{near, far}
}

func (f *fakeFunctions) BlendFunc(src, dst Enum) { f.record("BlendFunc") }

func (f *fakeFunctions) CullFace(mode Enum) { f.record("CullFace") }

func (f *fakeFunctions) FrontFace(mode Enum) { f.record("FrontFace") }

func (f *fakeFunctions) ColorMask(r, g, b, a bool) {
	f.record("ColorMask")
	f.colorMask = [4]bool{r, g, b, a}
}

func (f *fakeFunctions) Fogi(pname Enum, param int32) { f.record("Fogi") }

func (f *fakeFunctions) Fogf(pname Enum, param float32) { f.record("Fogf") }

func (f *fakeFunctions) Fogfv(pname Enum, params []float32) { f.record("Fogfv") }

func (f *fakeFunctions) ClearColor(r, g, b, a float32) { f.record("ClearColor") }

func (f *fakeFunctions) ClearDepth(depth float64) { f.record("ClearDepth") }

func (f *fakeFunctions) Clear(mask Enum) {
	f.record("Clear")
	f.clears++
}

func (f *fakeFunctions) Viewport(x, y, width, height int) { f.record("Viewport") }

func (f *fakeFunctions) Scissor(x, y, width, height int) { f.record("Scissor") }

// newTestRenderer returns an initialized renderer over a fresh fake.
func newTestRenderer(config func(*fakeFunctions)) (*OpenGLRenderer, *fakeFunctions) {
	f := newFakeFunctions()
	if config != nil {
		config(f)
	}
	r := New(f, testBackendConfig())
	if err := r.Initialize(); err != nil {
		panic(err)
	}
	f.reset()
	return r, f
}

package opengl

// glState is the single owner of the driver's global state. Every
// translator goes through it so redundant calls are dropped and the
// "unit 0 active, nothing locked" defaults can be restored cheaply.
type glState struct {
	fns Functions

	texUnits struct {
		active Enum
		client Enum
	}
	arrayBuf   uint32
	elemBuf    uint32
	matrixMode Enum
	enabled    map[capKey]bool
	depthFunc  Enum
	depthMask  bool
	colorMask  [4]bool
	blend      struct {
		src, dst Enum
	}
	viewport   [4]int
	clearColor [4]float32

	skipped int
}

// Texture targets and texgen switches are per texture unit.
type capKey struct {
	capability Enum
	unit       Enum
}

func newGLState(f Functions) *glState {
	s := &glState{
		fns:        f,
		matrixMode: MODELVIEW,
		enabled:    make(map[capKey]bool),
		depthFunc:  LESS,
		depthMask:  true,
		colorMask:  [4]bool{true, true, true, true},
	}
	s.texUnits.active = TEXTURE0
	s.texUnits.client = TEXTURE0
	s.blend.src = ONE
	s.blend.dst = ZERO
	return s
}

// Skipped returns how many driver calls were dropped as redundant.
func (s *glState) Skipped() int {
	return s.skipped
}

func (s *glState) activeTexture(unit Enum) {
	if unit == s.texUnits.active {
		s.skipped++
		return
	}
	s.fns.ActiveTexture(unit)
	s.texUnits.active = unit
}

func (s *glState) clientActiveTexture(unit Enum) {
	if unit == s.texUnits.client {
		s.skipped++
		return
	}
	s.fns.ClientActiveTexture(unit)
	s.texUnits.client = unit
}

func (s *glState) bindBuffer(target Enum, id uint32) {
	switch target {
	case ARRAY_BUFFER:
		if id == s.arrayBuf {
			s.skipped++
			return
		}
		s.arrayBuf = id
	case ELEMENT_ARRAY_BUFFER:
		if id == s.elemBuf {
			s.skipped++
			return
		}
		s.elemBuf = id
	default:
		panic("unknown buffer target")
	}
	s.fns.BindBuffer(target, id)
}

// deleteBuffer drops the buffer and forgets it as a binding, since the
// driver reverts deleted bindings to zero.
func (s *glState) deleteBuffer(id uint32) {
	s.fns.DeleteBuffer(id)
	if s.arrayBuf == id {
		s.arrayBuf = 0
	}
	if s.elemBuf == id {
		s.elemBuf = 0
	}
}

func (s *glState) setMatrixMode(mode Enum) {
	if mode == s.matrixMode {
		s.skipped++
		return
	}
	s.fns.MatrixMode(mode)
	s.matrixMode = mode
}

func (s *glState) set(capability Enum, enable bool) {
	key := capKey{capability: capability}
	switch capability {
	case TEXTURE_2D, TEXTURE_CUBE_MAP, TEXTURE_GEN_S, TEXTURE_GEN_T, TEXTURE_GEN_R, TEXTURE_GEN_Q:
		key.unit = s.texUnits.active
	}
	if s.enabled[key] == enable {
		s.skipped++
		return
	}
	s.enabled[key] = enable
	if enable {
		s.fns.Enable(capability)
	} else {
		s.fns.Disable(capability)
	}
}

func (s *glState) isEnabled(capability Enum) bool {
	key := capKey{capability: capability}
	switch capability {
	case TEXTURE_2D, TEXTURE_CUBE_MAP, TEXTURE_GEN_S, TEXTURE_GEN_T, TEXTURE_GEN_R, TEXTURE_GEN_Q:
		key.unit = s.texUnits.active
	}
	return s.enabled[key]
}

func (s *glState) setDepthFunc(fn Enum) {
	if fn == s.depthFunc {
		s.skipped++
		return
	}
	s.fns.DepthFunc(fn)
	s.depthFunc = fn
}

func (s *glState) setDepthMask(enable bool) {
	if enable == s.depthMask {
		s.skipped++
		return
	}
	s.fns.DepthMask(enable)
	s.depthMask = enable
}

func (s *glState) setColorMask(r, g, b, a bool) {
	mask := [4]bool{r, g, b, a}
	if mask == s.colorMask {
		s.skipped++
		return
	}
	s.fns.ColorMask(r, g, b, a)
	s.colorMask = mask
}

func (s *glState) setBlendFunc(src, dst Enum) {
	if src == s.blend.src && dst == s.blend.dst {
		s.skipped++
		return
	}
	s.fns.BlendFunc(src, dst)
	s.blend.src = src
	s.blend.dst = dst
}

func (s *glState) setViewport(x, y, width, height int) {
	view := [4]int{x, y, width, height}
	if view == s.viewport {
		s.skipped++
		return
	}
	s.fns.Viewport(x, y, width, height)
	s.fns.Scissor(x, y, width, height)
	s.viewport = view
}

func (s *glState) setClearColor(r, g, b, a float32) {
	col := [4]float32{r, g, b, a}
	if col == s.clearColor {
		s.skipped++
		return
	}
	s.fns.ClearColor(r, g, b, a)
	s.clearColor = col
}

package opengl

import "github.com/go-gl/mathgl/mgl32"

// ClientData locates the data behind a client array or index pointer. A nil
// Data slice means Offset is a byte offset into the buffer object bound to
// the matching target; otherwise the pointer is &Data[Offset].
type ClientData struct {
	Offset int
	Data   []byte
}

func (c ClientData) add(offset int) ClientData {
	return ClientData{Offset: c.Offset + offset, Data: c.Data}
}

// Functions is the fixed-function driver surface used by the translators.
// All calls must be made from the goroutine owning the context.
type Functions interface {
	GetError() Enum
	GetInteger(pname Enum) int
	GetFloat(pname Enum) float32
	GetString(name Enum) string
	Hint(target, mode Enum)
	Flush()

	Enable(capability Enum)
	Disable(capability Enum)
	EnableClientState(array Enum)
	DisableClientState(array Enum)
	ActiveTexture(unit Enum)
	ClientActiveTexture(unit Enum)

	GenBuffer() uint32
	DeleteBuffer(id uint32)
	BindBuffer(target Enum, id uint32)
	BufferData(target Enum, size int, data []byte, usage Enum)
	BufferSubData(target Enum, offset int, data []byte)
	GetBufferSubData(target Enum, offset int, data []byte)
	// MapBuffer returns nil when the driver refuses the mapping.
	MapBuffer(target, access Enum, size int) []byte
	UnmapBuffer(target Enum) bool

	VertexPointer(size int, typ Enum, stride int, ptr ClientData)
	NormalPointer(typ Enum, stride int, ptr ClientData)
	ColorPointer(size int, typ Enum, stride int, ptr ClientData)
	TexCoordPointer(size int, typ Enum, stride int, ptr ClientData)
	DrawArrays(mode Enum, first, count int)
	DrawElements(mode Enum, count int, typ Enum, indices ClientData)
	Color4f(r, g, b, a float32)

	GenTexture() uint32
	DeleteTexture(id uint32)
	BindTexture(target Enum, id uint32)
	TexParameteri(target, pname Enum, param int32)
	TexParameterf(target, pname Enum, param float32)
	TexImage2D(target Enum, level int, internalFormat Enum, width, height int, format, typ Enum, pixels []byte)
	PixelStorei(pname Enum, param int32)

	TexEnvi(target, pname Enum, param int32)
	TexEnvf(target, pname Enum, param float32)
	TexEnvfv(target, pname Enum, params []float32)
	TexGeni(coord, pname Enum, param int32)

	MatrixMode(mode Enum)
	LoadIdentity()
	LoadMatrixf(m mgl32.Mat4)
	MultMatrixf(m mgl32.Mat4)

	Lightf(light, pname Enum, param float32)
	Lightfv(light, pname Enum, params []float32)
	LightModelfv(pname Enum, params []float32)
	LightModeli(pname Enum, param int32)
	Materialf(face, pname Enum, param float32)
	Materialfv(face, pname Enum, params []float32)
	ShadeModel(mode Enum)

	DepthFunc(fn Enum)
	DepthMask(flag bool)
	DepthRange(near, far float64)
	BlendFunc(src, dst Enum)
	CullFace(mode Enum)
	FrontFace(mode Enum)
	ColorMask(r, g, b, a bool)
	Fogi(pname Enum, param int32)
	Fogf(pname Enum, param float32)
	Fogfv(pname Enum, params []float32)

	ClearColor(r, g, b, a float32)
	ClearDepth(depth float64)
	Clear(mask Enum)
	Viewport(x, y, width, height int)
	Scissor(x, y, width, height int)
}

// Package gl21 implements the fixed-function driver surface on top of the
// OpenGL 2.1 compatibility bindings.
package gl21

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v2.1/gl"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/spaghettifunk/anima-ffp/engine/renderer/opengl"
)

type Functions struct{}

// New loads the GL entry points. A context must be current.
func New() (*Functions, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to load OpenGL 2.1 entry points: %w", err)
	}
	return &Functions{}, nil
}

var _ opengl.Functions = (*Functions)(nil)

func pointer(c opengl.ClientData) unsafe.Pointer {
	if c.Data == nil {
		return gl.PtrOffset(c.Offset)
	}
	return gl.Ptr(&c.Data[c.Offset])
}

func bytesPtr(b []byte) unsafe.Pointer {
	if len(b) == 0 {
		return nil
	}
	return gl.Ptr(&b[0])
}

func (f *Functions) GetError() opengl.Enum {
	return opengl.Enum(gl.GetError())
}

func (f *Functions) GetInteger(pname opengl.Enum) int {
	var v int32
	gl.GetIntegerv(uint32(pname), &v)
	return int(v)
}

func (f *Functions) GetFloat(pname opengl.Enum) float32 {
	var v float32
	gl.GetFloatv(uint32(pname), &v)
	return v
}

func (f *Functions) GetString(name opengl.Enum) string {
	s := gl.GetString(uint32(name))
	if s == nil {
		return ""
	}
	return gl.GoStr(s)
}

func (f *Functions) Hint(target, mode opengl.Enum) {
	gl.Hint(uint32(target), uint32(mode))
}

func (f *Functions) Flush() {
	gl.Flush()
}

func (f *Functions) Enable(capability opengl.Enum) {
	gl.Enable(uint32(capability))
}

func (f *Functions) Disable(capability opengl.Enum) {
	gl.Disable(uint32(capability))
}

func (f *Functions) EnableClientState(array opengl.Enum) {
	gl.EnableClientState(uint32(array))
}

func (f *Functions) DisableClientState(array opengl.Enum) {
	gl.DisableClientState(uint32(array))
}

func (f *Functions) ActiveTexture(unit opengl.Enum) {
	gl.ActiveTexture(uint32(unit))
}

func (f *Functions) ClientActiveTexture(unit opengl.Enum) {
	gl.ClientActiveTexture(uint32(unit))
}

func (f *Functions) GenBuffer() uint32 {
	var id uint32
	gl.GenBuffers(1, &id)
	return id
}

func (f *Functions) DeleteBuffer(id uint32) {
	gl.DeleteBuffers(1, &id)
}

func (f *Functions) BindBuffer(target opengl.Enum, id uint32) {
	gl.BindBuffer(uint32(target), id)
}

func (f *Functions) BufferData(target opengl.Enum, size int, data []byte, usage opengl.Enum) {
	gl.BufferData(uint32(target), size, bytesPtr(data), uint32(usage))
}

func (f *Functions) BufferSubData(target opengl.Enum, offset int, data []byte) {
	gl.BufferSubData(uint32(target), offset, len(data), bytesPtr(data))
}

func (f *Functions) GetBufferSubData(target opengl.Enum, offset int, data []byte) {
	gl.GetBufferSubData(uint32(target), offset, len(data), bytesPtr(data))
}

func (f *Functions) MapBuffer(target, access opengl.Enum, size int) []byte {
	p := gl.MapBuffer(uint32(target), uint32(access))
	if p == nil {
		return nil
	}
	return unsafe.Slice((*byte)(p), size)
}

func (f *Functions) UnmapBuffer(target opengl.Enum) bool {
	return gl.UnmapBuffer(uint32(target))
}

func (f *Functions) VertexPointer(size int, typ opengl.Enum, stride int, ptr opengl.ClientData) {
	gl.VertexPointer(int32(size), uint32(typ), int32(stride), pointer(ptr))
}

func (f *Functions) NormalPointer(typ opengl.Enum, stride int, ptr opengl.ClientData) {
	gl.NormalPointer(uint32(typ), int32(stride), pointer(ptr))
}

func (f *Functions) ColorPointer(size int, typ opengl.Enum, stride int, ptr opengl.ClientData) {
	gl.ColorPointer(int32(size), uint32(typ), int32(stride), pointer(ptr))
}

func (f *Functions) TexCoordPointer(size int, typ opengl.Enum, stride int, ptr opengl.ClientData) {
	gl.TexCoordPointer(int32(size), uint32(typ), int32(stride), pointer(ptr))
}

func (f *Functions) DrawArrays(mode opengl.Enum, first, count int) {
	gl.DrawArrays(uint32(mode), int32(first), int32(count))
}

func (f *Functions) DrawElements(mode opengl.Enum, count int, typ opengl.Enum, indices opengl.ClientData) {
	gl.DrawElements(uint32(mode), int32(count), uint32(typ), pointer(indices))
}

func (f *Functions) Color4f(r, g, b, a float32) {
	gl.Color4f(r, g, b, a)
}

func (f *Functions) GenTexture() uint32 {
	var id uint32
	gl.GenTextures(1, &id)
	return id
}

func (f *Functions) DeleteTexture(id uint32) {
	gl.DeleteTextures(1, &id)
}

func (f *Functions) BindTexture(target opengl.Enum, id uint32) {
	gl.BindTexture(uint32(target), id)
}

func (f *Functions) TexParameteri(target, pname opengl.Enum, param int32) {
	gl.TexParameteri(uint32(target), uint32(pname), param)
}

func (f *Functions) TexParameterf(target, pname opengl.Enum, param float32) {
	gl.TexParameterf(uint32(target), uint32(pname), param)
}

func (f *Functions) TexImage2D(target opengl.Enum, level int, internalFormat opengl.Enum, width, height int, format, typ opengl.Enum, pixels []byte) {
	gl.TexImage2D(uint32(target), int32(level), int32(internalFormat), int32(width), int32(height), 0, uint32(format), uint32(typ), bytesPtr(pixels))
}

func (f *Functions) PixelStorei(pname opengl.Enum, param int32) {
	gl.PixelStorei(uint32(pname), param)
}

func (f *Functions) TexEnvi(target, pname opengl.Enum, param int32) {
	gl.TexEnvi(uint32(target), uint32(pname), param)
}

func (f *Functions) TexEnvf(target, pname opengl.Enum, param float32) {
	gl.TexEnvf(uint32(target), uint32(pname), param)
}

func (f *Functions) TexEnvfv(target, pname opengl.Enum, params []float32) {
	gl.TexEnvfv(uint32(target), uint32(pname), &params[0])
}

func (f *Functions) TexGeni(coord, pname opengl.Enum, param int32) {
	gl.TexGeni(uint32(coord), uint32(pname), param)
}

func (f *Functions) MatrixMode(mode opengl.Enum) {
	gl.MatrixMode(uint32(mode))
}

func (f *Functions) LoadIdentity() {
	gl.LoadIdentity()
}

// mgl32 matrices are column major, the layout GL expects.
func (f *Functions) LoadMatrixf(m mgl32.Mat4) {
	gl.LoadMatrixf(&m[0])
}

func (f *Functions) MultMatrixf(m mgl32.Mat4) {
	gl.MultMatrixf(&m[0])
}

func (f *Functions) Lightf(light, pname opengl.Enum, param float32) {
	gl.Lightf(uint32(light), uint32(pname), param)
}

func (f *Functions) Lightfv(light, pname opengl.Enum, params []float32) {
	gl.Lightfv(uint32(light), uint32(pname), &params[0])
}

func (f *Functions) LightModelfv(pname opengl.Enum, params []float32) {
	gl.LightModelfv(uint32(pname), &params[0])
}

func (f *Functions) LightModeli(pname opengl.Enum, param int32) {
	gl.LightModeli(uint32(pname), param)
}

func (f *Functions) Materialf(face, pname opengl.Enum, param float32) {
	gl.Materialf(uint32(face), uint32(pname), param)
}

func (f *Functions) Materialfv(face, pname opengl.Enum, params []float32) {
	gl.Materialfv(uint32(face), uint32(pname), &params[0])
}

func (f *Functions) ShadeModel(mode opengl.Enum) {
	gl.ShadeModel(uint32(mode))
}

func (f *Functions) DepthFunc(fn opengl.Enum) {
	gl.DepthFunc(uint32(fn))
}

func (f *Functions) DepthMask(flag bool) {
	gl.DepthMask(flag)
}

func (f *Functions) DepthRange(near, far float64) {
	gl.DepthRange(near, far)
}

func (f *Functions) BlendFunc(src, dst opengl.Enum) {
	gl.BlendFunc(uint32(src), uint32(dst))
}

func (f *Functions) CullFace(mode opengl.Enum) {
	gl.CullFace(uint32(mode))
}

func (f *Functions) FrontFace(mode opengl.Enum) {
	gl.FrontFace(uint32(mode))
}

func (f *Functions) ColorMask(r, g, b, a bool) {
	gl.ColorMask(r, g, b, a)
}

func (f *Functions) Fogi(pname opengl.Enum, param int32) {
	gl.Fogi(uint32(pname), param)
}

func (f *Functions) Fogf(pname opengl.Enum, param float32) {
	gl.Fogf(uint32(pname), param)
}

func (f *Functions) Fogfv(pname opengl.Enum, params []float32) {
	gl.Fogfv(uint32(pname), &params[0])
}

func (f *Functions) ClearColor(r, g, b, a float32) {
	gl.ClearColor(r, g, b, a)
}

func (f *Functions) ClearDepth(depth float64) {
	gl.ClearDepth(depth)
}

func (f *Functions) Clear(mask opengl.Enum) {
	gl.Clear(uint32(mask))
}

func (f *Functions) Viewport(x, y, width, height int) {
	gl.Viewport(int32(x), int32(y), int32(width), int32(height))
}

func (f *Functions) Scissor(x, y, width, height int) {
	gl.Scissor(int32(x), int32(y), int32(width), int32(height))
}

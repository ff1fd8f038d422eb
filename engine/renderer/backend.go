package renderer

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/spaghettifunk/anima-ffp/engine/renderer/metadata"
)

// RendererBackend is the fixed-function render system driven by the
// Renderer. All methods must be called from the goroutine owning the context.
type RendererBackend interface {
	Initialize() error
	Shutdown() error
	Capabilities() *metadata.RenderSystemCapabilities
	Stats() metadata.RenderStatistics

	BeginFrame() error
	EndFrame() error
	SetViewport(viewport *metadata.Viewport)

	SetProjectionMatrix(m mgl32.Mat4)
	SetViewMatrix(m mgl32.Mat4)
	SetWorldMatrix(m mgl32.Mat4)

	AddLight(light *metadata.Light) error
	UpdateLight(light *metadata.Light) error
	RemoveLight(light *metadata.Light) error
	SetAmbientLight(colour mgl32.Vec4)
	SetLightingEnabled(enabled bool)

	SetSurfaceParams(ambient, diffuse, specular, emissive mgl32.Vec4, shininess float32)
	SetSceneBlending(src, dst metadata.SceneBlendFactor)
	SetDepthCheck(enabled bool)
	SetDepthWrite(enabled bool)
	SetDepthFunction(fn metadata.CompareFunction)
	SetCullingMode(mode metadata.CullingMode)
	SetColourWrite(red, green, blue, alpha bool)
	SetFog(mode metadata.FogMode, colour mgl32.Vec4, density, start, end float32)

	NumTextureUnits() int
	SetTextureUnit(index int, unit *metadata.TextureUnitState) error
	DisableTextureUnitsFrom(index int)
	TextureCreate(texture *metadata.Texture, pixels []byte) error
	TextureDestroy(texture *metadata.Texture)

	CreateVertexBuffer(vertexSize, numVertices int, usage metadata.BufferUsage, useShadowCopy bool) (*metadata.VertexBuffer, error)
	CreateIndexBuffer(indexType metadata.IndexType, numIndices int, usage metadata.BufferUsage, useShadowCopy bool) (*metadata.IndexBuffer, error)
	DestroyBuffer(buffer metadata.HardwareBuffer) error

	Render(op *metadata.RenderOperation) error
}

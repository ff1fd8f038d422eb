package metadata

import "strings"

/** @brief Maximum number of texture stages any backend exposes. */
const MaxTextureLayers = 8

/**
 * @brief Capabilities of the current context. Filled once when the context
 * is created and read only afterwards.
 */
type RenderSystemCapabilities struct {
	Vendor   string
	Renderer string
	Version  string

	MaxLights       int
	NumTextureUnits int
	StencilBits     int
	MaxAnisotropy   float32

	MultiTexturing       bool
	TextureBlending      bool
	Dot3                 bool
	VertexBuffer         bool
	CubeMapping          bool
	AnisotropicFiltering bool
	HardwareMipMaps      bool
	StencilBuffer        bool

	extensions map[string]struct{}
}

func NewRenderSystemCapabilities() *RenderSystemCapabilities {
	return &RenderSystemCapabilities{extensions: make(map[string]struct{})}
}

/** @brief Registers every extension of a space separated list. */
func (c *RenderSystemCapabilities) AddExtensions(list string) {
	for _, ext := range strings.Fields(list) {
		c.extensions[ext] = struct{}{}
	}
}

func (c *RenderSystemCapabilities) SupportsExtension(name string) bool {
	_, ok := c.extensions[name]
	return ok
}

func (c *RenderSystemCapabilities) ExtensionCount() int {
	return len(c.extensions)
}

package opengl

import (
	"strings"

	"github.com/spaghettifunk/anima-ffp/engine/core"
	"github.com/spaghettifunk/anima-ffp/engine/renderer/metadata"
)

// CheckCaps queries the current context once. maxLights and maxUnits clamp
// the driver values when they are greater than zero.
func CheckCaps(f Functions, maxLights, maxUnits int) *metadata.RenderSystemCapabilities {
	caps := metadata.NewRenderSystemCapabilities()
	caps.Vendor = f.GetString(VENDOR)
	caps.Renderer = f.GetString(RENDERER)
	caps.Version = f.GetString(VERSION)
	caps.AddExtensions(f.GetString(EXTENSIONS))

	caps.MaxLights = f.GetInteger(MAX_LIGHTS)
	if maxLights > 0 && maxLights < caps.MaxLights {
		caps.MaxLights = maxLights
	}

	caps.NumTextureUnits = f.GetInteger(MAX_TEXTURE_UNITS)
	if caps.NumTextureUnits < 1 {
		caps.NumTextureUnits = 1
	}
	if caps.NumTextureUnits > metadata.MaxTextureLayers {
		caps.NumTextureUnits = metadata.MaxTextureLayers
	}
	if maxUnits > 0 && maxUnits < caps.NumTextureUnits {
		caps.NumTextureUnits = maxUnits
	}

	caps.MultiTexturing = caps.SupportsExtension("GL_ARB_multitexture")
	caps.TextureBlending = caps.SupportsExtension("GL_EXT_texture_env_combine") ||
		caps.SupportsExtension("GL_ARB_texture_env_combine")
	caps.Dot3 = caps.SupportsExtension("GL_ARB_texture_env_dot3")

	// GeForce2 MX and GeForce3 drivers advertise buffer objects that do not work.
	caps.VertexBuffer = caps.SupportsExtension("GL_ARB_vertex_buffer_object") &&
		!strings.Contains(caps.Renderer, "GeForce2 MX") &&
		!strings.Contains(caps.Renderer, "GeForce3")

	caps.CubeMapping = caps.SupportsExtension("GL_ARB_texture_cube_map") ||
		caps.SupportsExtension("GL_EXT_texture_cube_map")

	caps.AnisotropicFiltering = caps.SupportsExtension("GL_EXT_texture_filter_anisotropic")
	if caps.AnisotropicFiltering {
		caps.MaxAnisotropy = f.GetFloat(MAX_TEXTURE_MAX_ANISOTROPY_EXT)
	}

	caps.HardwareMipMaps = caps.SupportsExtension("GL_SGIS_generate_mipmap") &&
		!strings.HasPrefix(caps.Vendor, "ATI")

	caps.StencilBits = f.GetInteger(STENCIL_BITS)
	caps.StencilBuffer = caps.StencilBits > 0

	logCaps(caps)
	return caps
}

func logCaps(caps *metadata.RenderSystemCapabilities) {
	core.LogInfo("GL vendor: %s, renderer: %s, version: %s", caps.Vendor, caps.Renderer, caps.Version)
	core.LogInfo("max lights: %d, texture units: %d, stencil bits: %d, extensions: %d",
		caps.MaxLights, caps.NumTextureUnits, caps.StencilBits, caps.ExtensionCount())
	core.LogDebug("multitexturing: %t, texture blending: %t, dot3: %t, vertex buffers: %t",
		caps.MultiTexturing, caps.TextureBlending, caps.Dot3, caps.VertexBuffer)
	core.LogDebug("cube mapping: %t, anisotropic filtering: %t, hardware mipmaps: %t",
		caps.CubeMapping, caps.AnisotropicFiltering, caps.HardwareMipMaps)
}

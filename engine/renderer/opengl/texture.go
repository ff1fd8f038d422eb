package opengl

import (
	"fmt"

	"github.com/spaghettifunk/anima-ffp/engine/core"
	"github.com/spaghettifunk/anima-ffp/engine/renderer/metadata"
)

func glPixelFormat(format metadata.PixelFormat) Enum {
	switch format {
	case metadata.PixelFormatRGB8:
		return RGB
	case metadata.PixelFormatA8:
		return ALPHA
	}
	return RGBA
}

// TextureCreate uploads already decoded pixels. Cube textures expect the six
// faces one after another in +X, -X, +Y, -Y, +Z, -Z order.
func (t *TextureStages) TextureCreate(texture *metadata.Texture, pixels []byte) error {
	faces := 1
	if texture.TextureType == metadata.TextureTypeCube {
		faces = 6
	}
	faceSize := int(texture.Width) * int(texture.Height) * texture.Format.Size()
	if faceSize == 0 || len(pixels) != faceSize*faces {
		err := fmt.Errorf("texture `%s` expects %d bytes, got %d: %w", texture.Name, faceSize*faces, len(pixels), core.ErrOutOfRange)
		core.LogError(err.Error())
		return err
	}

	if texture.Handle == 0 {
		id := t.state.fns.GenTexture()
		if id == 0 {
			err := fmt.Errorf("driver returned no texture object for `%s`: %w", texture.Name, core.ErrAllocation)
			core.LogError(err.Error())
			return err
		}
		texture.Handle = id
	}

	f := t.state.fns
	target := glTextureTarget(texture.TextureType)
	t.restoreUnit()
	f.BindTexture(target, texture.Handle)
	// unit 0 now holds this texture whatever stage 0 had bound
	t.stages[0].boundHandle = 0

	f.PixelStorei(UNPACK_ALIGNMENT, 1)
	if texture.MipMaps > 0 && t.caps.HardwareMipMaps {
		f.TexParameteri(target, GENERATE_MIPMAP, 1)
		f.TexParameteri(target, TEXTURE_MIN_FILTER, int32(LINEAR_MIPMAP_LINEAR))
	} else {
		f.TexParameteri(target, TEXTURE_MIN_FILTER, int32(LINEAR))
	}
	f.TexParameteri(target, TEXTURE_MAG_FILTER, int32(LINEAR))

	format := glPixelFormat(texture.Format)
	w, h := int(texture.Width), int(texture.Height)
	if faces == 1 {
		f.TexImage2D(TEXTURE_2D, 0, format, w, h, format, UNSIGNED_BYTE, pixels)
	} else {
		for face := 0; face < faces; face++ {
			f.TexImage2D(TEXTURE_CUBE_MAP_POSITIVE_X+Enum(face), 0, format, w, h, format, UNSIGNED_BYTE, pixels[face*faceSize:(face+1)*faceSize])
		}
	}
	texture.Generation++
	core.LogDebug("uploaded texture `%s` (%dx%d, handle %d)", texture.Name, w, h, texture.Handle)
	return nil
}

func (t *TextureStages) TextureDestroy(texture *metadata.Texture) {
	if texture.Handle == 0 {
		return
	}
	t.state.fns.DeleteTexture(texture.Handle)
	for i := range t.stages {
		if t.stages[i].boundHandle == texture.Handle {
			t.stages[i].boundHandle = 0
		}
	}
	texture.Handle = 0
}

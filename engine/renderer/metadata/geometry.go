package metadata

import (
	"encoding/binary"
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/spaghettifunk/anima-ffp/engine/core"
)

/** @brief The name of the default geometry. */
const DefaultGeometryName string = "default"

/** @brief Interleaved vertex as laid out by Vertex3DDeclaration. */
type Vertex3D struct {
	Position mgl32.Vec3
	Normal   mgl32.Vec3
	Texcoord mgl32.Vec2
}

/** @brief Size of one Vertex3D in bytes. */
const Vertex3DSize = 32

/** @brief Position, normal and one texture coordinate set in source 0. */
func Vertex3DDeclaration() *VertexDeclaration {
	decl := NewVertexDeclaration()
	decl.AddElement(0, 0, VertexElementTypeFloat3, VertexElementSemanticPosition, 0)
	decl.AddElement(0, 12, VertexElementTypeFloat3, VertexElementSemanticNormal, 0)
	decl.AddElement(0, 24, VertexElementTypeFloat2, VertexElementSemanticTexCoord, 0)
	return decl
}

/**
 * @brief Represents the configuration for a geometry.
 */
type GeometryConfig struct {
	/** @brief The Name of the geometry. */
	Name string
	/** @brief An array of Vertices. */
	Vertices []Vertex3D
	/** @brief Triangle list indices. */
	Indices []uint16

	Center     mgl32.Vec3
	MinExtents mgl32.Vec3
	MaxExtents mgl32.Vec3
}

/** @brief Vertices packed little endian, ready for a vertex buffer. */
func (c *GeometryConfig) VertexBytes() []byte {
	out := make([]byte, 0, len(c.Vertices)*Vertex3DSize)
	for _, v := range c.Vertices {
		for _, f := range [8]float32{v.Position[0], v.Position[1], v.Position[2], v.Normal[0], v.Normal[1], v.Normal[2], v.Texcoord[0], v.Texcoord[1]} {
			out = binary.LittleEndian.AppendUint32(out, math.Float32bits(f))
		}
	}
	return out
}

/** @brief 16 bit indices packed little endian, ready for an index buffer. */
func (c *GeometryConfig) IndexBytes() []byte {
	out := make([]byte, 0, len(c.Indices)*2)
	for _, i := range c.Indices {
		out = binary.LittleEndian.AppendUint16(out, i)
	}
	return out
}

/**
 * @brief Builds an axis aligned box centred on the origin with 4 vertices
 * per face so every face has its own normal. tileX and tileY repeat the
 * texture across each face.
 */
func GenerateCubeConfig(width, height, depth, tileX, tileY float32, name string) *GeometryConfig {
	if width == 0 {
		core.LogWarn("Width must be nonzero. Defaulting to one.")
		width = 1.0
	}
	if height == 0 {
		core.LogWarn("Height must be nonzero. Defaulting to one.")
		height = 1.0
	}
	if depth == 0 {
		core.LogWarn("Depth must be nonzero. Defaulting to one.")
		depth = 1.0
	}
	if tileX == 0 {
		core.LogWarn("tileX must be nonzero. Defaulting to one.")
		tileX = 1.0
	}
	if tileY == 0 {
		core.LogWarn("tileY must be nonzero. Defaulting to one.")
		tileY = 1.0
	}

	minX, minY, minZ := -width*0.5, -height*0.5, -depth*0.5
	maxX, maxY, maxZ := width*0.5, height*0.5, depth*0.5

	faces := []struct {
		normal  mgl32.Vec3
		corners [4]mgl32.Vec3
	}{
		// front
		{mgl32.Vec3{0, 0, 1}, [4]mgl32.Vec3{{minX, minY, maxZ}, {maxX, maxY, maxZ}, {minX, maxY, maxZ}, {maxX, minY, maxZ}}},
		// back
		{mgl32.Vec3{0, 0, -1}, [4]mgl32.Vec3{{maxX, minY, minZ}, {minX, maxY, minZ}, {maxX, maxY, minZ}, {minX, minY, minZ}}},
		// left
		{mgl32.Vec3{-1, 0, 0}, [4]mgl32.Vec3{{minX, minY, minZ}, {minX, maxY, maxZ}, {minX, maxY, minZ}, {minX, minY, maxZ}}},
		// right
		{mgl32.Vec3{1, 0, 0}, [4]mgl32.Vec3{{maxX, minY, maxZ}, {maxX, maxY, minZ}, {maxX, maxY, maxZ}, {maxX, minY, minZ}}},
		// bottom
		{mgl32.Vec3{0, -1, 0}, [4]mgl32.Vec3{{maxX, minY, maxZ}, {minX, minY, minZ}, {maxX, minY, minZ}, {minX, minY, maxZ}}},
		// top
		{mgl32.Vec3{0, 1, 0}, [4]mgl32.Vec3{{minX, maxY, maxZ}, {maxX, maxY, minZ}, {minX, maxY, minZ}, {maxX, maxY, maxZ}}},
	}
	uvs := [4]mgl32.Vec2{{0, 0}, {tileX, tileY}, {0, tileY}, {tileX, 0}}

	config := &GeometryConfig{
		Vertices:   make([]Vertex3D, 0, 4*6),
		Indices:    make([]uint16, 0, 6*6),
		MinExtents: mgl32.Vec3{minX, minY, minZ},
		MaxExtents: mgl32.Vec3{maxX, maxY, maxZ},
		Name:       name,
	}
	for i, face := range faces {
		for c := range face.corners {
			config.Vertices = append(config.Vertices, Vertex3D{
				Position: face.corners[c],
				Normal:   face.normal,
				Texcoord: uvs[c],
			})
		}
		base := uint16(i * 4)
		config.Indices = append(config.Indices, base, base+1, base+2, base, base+3, base+1)
	}
	if config.Name == "" {
		config.Name = DefaultGeometryName
	}
	return config
}

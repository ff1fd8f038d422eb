package metadata

import "fmt"

type VertexElementSemantic uint8

const (
	VertexElementSemanticPosition VertexElementSemantic = iota
	VertexElementSemanticNormal
	VertexElementSemanticDiffuse
	VertexElementSemanticSpecular
	VertexElementSemanticTexCoord
)

func (s VertexElementSemantic) String() string {
	switch s {
	case VertexElementSemanticPosition:
		return "position"
	case VertexElementSemanticNormal:
		return "normal"
	case VertexElementSemanticDiffuse:
		return "diffuse"
	case VertexElementSemanticSpecular:
		return "specular"
	case VertexElementSemanticTexCoord:
		return "texcoord"
	}
	return fmt.Sprintf("semantic(%d)", uint8(s))
}

type VertexElementType uint8

const (
	VertexElementTypeFloat1 VertexElementType = iota
	VertexElementTypeFloat2
	VertexElementTypeFloat3
	VertexElementTypeFloat4
	/** @brief Packed 8-bit RGBA colour. */
	VertexElementTypeColour
	VertexElementTypeShort1
	VertexElementTypeShort2
	VertexElementTypeShort3
	VertexElementTypeShort4
)

/** @brief Number of components of the type. Panics on an unknown type. */
func (t VertexElementType) Count() int {
	switch t {
	case VertexElementTypeFloat1, VertexElementTypeShort1:
		return 1
	case VertexElementTypeFloat2, VertexElementTypeShort2:
		return 2
	case VertexElementTypeFloat3, VertexElementTypeShort3:
		return 3
	case VertexElementTypeFloat4, VertexElementTypeShort4, VertexElementTypeColour:
		return 4
	}
	panic(fmt.Sprintf("unknown vertex element type %d", t))
}

/** @brief Size of the type in bytes. Panics on an unknown type. */
func (t VertexElementType) Size() int {
	switch t {
	case VertexElementTypeColour:
		return 4
	case VertexElementTypeShort1, VertexElementTypeShort2, VertexElementTypeShort3, VertexElementTypeShort4:
		return 2 * t.Count()
	}
	return 4 * t.Count()
}

/**
 * @brief One attribute inside a vertex. Elements are immutable once they are
 * part of a declaration.
 */
type VertexElement struct {
	/** @brief Index of the vertex buffer binding this element reads from. */
	Source uint16
	/** @brief Byte offset of the element inside the vertex. */
	Offset   int
	Type     VertexElementType
	Semantic VertexElementSemantic
	/** @brief Texture coordinate set index; only meaningful for TexCoord. */
	Index uint16
}

/** @brief Ordered list of vertex elements. */
type VertexDeclaration struct {
	elements []VertexElement
}

func NewVertexDeclaration(elements ...VertexElement) *VertexDeclaration {
	return &VertexDeclaration{elements: append([]VertexElement(nil), elements...)}
}

/** @brief Appends an element and returns it. */
func (d *VertexDeclaration) AddElement(source uint16, offset int, elementType VertexElementType, semantic VertexElementSemantic, index uint16) VertexElement {
	e := VertexElement{
		Source:   source,
		Offset:   offset,
		Type:     elementType,
		Semantic: semantic,
		Index:    index,
	}
	d.elements = append(d.elements, e)
	return e
}

func (d *VertexDeclaration) Elements() []VertexElement {
	return d.elements
}

/** @brief Sum of the element sizes reading from the given source. */
func (d *VertexDeclaration) VertexSize(source uint16) int {
	size := 0
	for _, e := range d.elements {
		if e.Source == source {
			size += e.Type.Size()
		}
	}
	return size
}

/** @brief Maps binding indices to vertex buffers. */
type VertexBufferBinding struct {
	bindings map[uint16]*VertexBuffer
}

func NewVertexBufferBinding() *VertexBufferBinding {
	return &VertexBufferBinding{bindings: make(map[uint16]*VertexBuffer)}
}

func (b *VertexBufferBinding) SetBinding(index uint16, buffer *VertexBuffer) {
	b.bindings[index] = buffer
}

func (b *VertexBufferBinding) UnsetBinding(index uint16) {
	delete(b.bindings, index)
}

func (b *VertexBufferBinding) GetBuffer(index uint16) (*VertexBuffer, bool) {
	vb, ok := b.bindings[index]
	return vb, ok
}

func (b *VertexBufferBinding) Count() int {
	return len(b.bindings)
}

func (b *VertexBufferBinding) Each(fn func(index uint16, buffer *VertexBuffer)) {
	for i, vb := range b.bindings {
		fn(i, vb)
	}
}

type VertexData struct {
	Declaration *VertexDeclaration
	Binding     *VertexBufferBinding
	VertexStart int
	VertexCount int
}

type IndexData struct {
	Buffer     *IndexBuffer
	IndexStart int
	IndexCount int
}

type PrimitiveTopology uint8

const (
	PrimitiveTopologyPointList PrimitiveTopology = iota
	PrimitiveTopologyLineList
	PrimitiveTopologyLineStrip
	PrimitiveTopologyTriangleList
	PrimitiveTopologyTriangleStrip
	PrimitiveTopologyTriangleFan
)

/** @brief Primitives produced by count vertices (or indices). */
func (t PrimitiveTopology) PrimitiveCount(count int) int {
	switch t {
	case PrimitiveTopologyPointList:
		return count
	case PrimitiveTopologyLineList:
		return count / 2
	case PrimitiveTopologyLineStrip:
		return max(count-1, 0)
	case PrimitiveTopologyTriangleList:
		return count / 3
	case PrimitiveTopologyTriangleStrip, PrimitiveTopologyTriangleFan:
		return max(count-2, 0)
	}
	return 0
}

/** @brief A single draw: geometry, topology and an optional index range. */
type RenderOperation struct {
	Topology   PrimitiveTopology
	VertexData *VertexData
	UseIndexes bool
	IndexData  *IndexData
}

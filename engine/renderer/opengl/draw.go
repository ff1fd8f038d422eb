package opengl

import (
	"fmt"

	"github.com/spaghettifunk/anima-ffp/engine/core"
	"github.com/spaghettifunk/anima-ffp/engine/renderer/metadata"
)

func glPrimitive(topology metadata.PrimitiveTopology) Enum {
	switch topology {
	case metadata.PrimitiveTopologyPointList:
		return POINTS
	case metadata.PrimitiveTopologyLineList:
		return LINES
	case metadata.PrimitiveTopologyLineStrip:
		return LINE_STRIP
	case metadata.PrimitiveTopologyTriangleList:
		return TRIANGLES
	case metadata.PrimitiveTopologyTriangleStrip:
		return TRIANGLE_STRIP
	case metadata.PrimitiveTopologyTriangleFan:
		return TRIANGLE_FAN
	}
	panic(fmt.Sprintf("unknown primitive topology %d", topology))
}

func glElementType(elementType metadata.VertexElementType) Enum {
	switch elementType {
	case metadata.VertexElementTypeColour:
		return UNSIGNED_BYTE
	case metadata.VertexElementTypeShort1, metadata.VertexElementTypeShort2,
		metadata.VertexElementTypeShort3, metadata.VertexElementTypeShort4:
		return SHORT
	}
	return FLOAT
}

func glIndexType(indexType metadata.IndexType) Enum {
	if indexType == metadata.IndexType32 {
		return UNSIGNED_INT
	}
	return UNSIGNED_SHORT
}

// clientArray is an attribute stream enabled for a single draw.
type clientArray struct {
	array Enum
	unit  Enum
}

// DrawResult counts what a draw submitted.
type DrawResult struct {
	Vertices   int
	Primitives int
}

// drawTranslator binds vertex streams and issues draws.
type drawTranslator struct {
	state   *glState
	stages  *TextureStages
	enabled []clientArray
}

func newDrawTranslator(state *glState, stages *TextureStages) *drawTranslator {
	return &drawTranslator{
		state:  state,
		stages: stages,
	}
}

// enable expects the client unit of texture arrays to be active already.
func (d *drawTranslator) enable(array, unit Enum) {
	d.state.fns.EnableClientState(array)
	d.enabled = append(d.enabled, clientArray{array: array, unit: unit})
}

// disableAll undoes every enable of the current draw.
func (d *drawTranslator) disableAll() {
	for _, a := range d.enabled {
		if a.array == TEXTURE_COORD_ARRAY {
			d.state.clientActiveTexture(a.unit)
		}
		d.state.fns.DisableClientState(a.array)
	}
	d.enabled = d.enabled[:0]
	d.state.clientActiveTexture(TEXTURE0)
}

func (d *drawTranslator) Draw(op *metadata.RenderOperation) (DrawResult, error) {
	vd := op.VertexData
	if vd == nil || vd.Declaration == nil || vd.Binding == nil {
		err := fmt.Errorf("render operation without vertex data: %w", core.ErrNotFound)
		core.LogError(err.Error())
		return DrawResult{}, err
	}
	if vd.VertexCount == 0 {
		return DrawResult{}, nil
	}
	prim := glPrimitive(op.Topology)

	defer d.disableAll()
	coordSets := d.stages.CoordSets()

	for _, elem := range vd.Declaration.Elements() {
		vb, ok := vd.Binding.GetBuffer(elem.Source)
		if !ok {
			err := fmt.Errorf("no vertex buffer bound at source %d for %s: %w", elem.Source, elem.Semantic, core.ErrNotFound)
			core.LogError(err.Error())
			return DrawResult{}, err
		}
		base, err := bindSource(vb.HardwareBuffer, ARRAY_BUFFER)
		if err != nil {
			core.LogError(err.Error())
			return DrawResult{}, err
		}
		ptr := base.add(elem.Offset)
		stride := vb.VertexSize
		typ := glElementType(elem.Type)

		switch elem.Semantic {
		case metadata.VertexElementSemanticPosition:
			d.state.fns.VertexPointer(elem.Type.Count(), typ, stride, ptr)
			d.enable(VERTEX_ARRAY, 0)
		case metadata.VertexElementSemanticNormal:
			d.state.fns.NormalPointer(typ, stride, ptr)
			d.enable(NORMAL_ARRAY, 0)
		case metadata.VertexElementSemanticDiffuse:
			d.state.fns.ColorPointer(4, typ, stride, ptr)
			d.enable(COLOR_ARRAY, 0)
		case metadata.VertexElementSemanticSpecular:
			core.LogDebug("specular vertex colours are not supported by the fixed-function path, ignoring")
		case metadata.VertexElementSemanticTexCoord:
			// one coordinate set may feed several stages
			for unit, set := range coordSets {
				if set != elem.Index {
					continue
				}
				glUnit := TEXTURE0 + Enum(unit)
				d.state.clientActiveTexture(glUnit)
				d.state.fns.TexCoordPointer(elem.Type.Count(), typ, stride, ptr)
				d.enable(TEXTURE_COORD_ARRAY, glUnit)
			}
			d.state.clientActiveTexture(TEXTURE0)
		default:
			panic(fmt.Sprintf("unknown vertex element semantic %d", elem.Semantic))
		}
	}

	result := DrawResult{Vertices: vd.VertexCount}
	if op.UseIndexes && op.IndexData != nil && op.IndexData.Buffer != nil {
		id := op.IndexData
		base, err := bindSource(id.Buffer.HardwareBuffer, ELEMENT_ARRAY_BUFFER)
		if err != nil {
			core.LogError(err.Error())
			return DrawResult{}, err
		}
		indices := base.add(id.IndexStart * id.Buffer.IndexType.Size())
		d.state.fns.DrawElements(prim, id.IndexCount, glIndexType(id.Buffer.IndexType), indices)
		result.Primitives = op.Topology.PrimitiveCount(id.IndexCount)
	} else {
		d.state.fns.DrawArrays(prim, vd.VertexStart, vd.VertexCount)
		result.Primitives = op.Topology.PrimitiveCount(vd.VertexCount)
	}

	// colour arrays leave the current colour undefined
	d.state.fns.Color4f(1, 1, 1, 1)
	return result, nil
}

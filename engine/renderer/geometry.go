package renderer

import (
	"errors"
	"fmt"

	"github.com/spaghettifunk/anima-ffp/engine/core"
	"github.com/spaghettifunk/anima-ffp/engine/renderer/metadata"
)

// CreateGeometry uploads the geometry into static buffers and returns the
// indexed triangle list drawing it.
func (r *Renderer) CreateGeometry(config *metadata.GeometryConfig) (*metadata.RenderOperation, error) {
	if len(config.Vertices) == 0 || len(config.Indices) == 0 {
		err := fmt.Errorf("geometry `%s` has no vertices or indices: %w", config.Name, core.ErrNotFound)
		core.LogError(err.Error())
		return nil, err
	}

	decl := metadata.Vertex3DDeclaration()
	vb, err := r.backend.CreateVertexBuffer(decl.VertexSize(0), len(config.Vertices), metadata.BufferUsageStaticWriteOnly, false)
	if err != nil {
		return nil, err
	}
	if err := vb.WriteData(0, config.VertexBytes(), false); err != nil {
		r.destroyBuffers(vb.HardwareBuffer)
		return nil, err
	}

	ib, err := r.backend.CreateIndexBuffer(metadata.IndexType16, len(config.Indices), metadata.BufferUsageStaticWriteOnly, false)
	if err != nil {
		r.destroyBuffers(vb.HardwareBuffer)
		return nil, err
	}
	if err := ib.WriteData(0, config.IndexBytes(), false); err != nil {
		r.destroyBuffers(vb.HardwareBuffer, ib.HardwareBuffer)
		return nil, err
	}

	binding := metadata.NewVertexBufferBinding()
	binding.SetBinding(0, vb)
	core.LogDebug("geometry `%s` uploaded: %d vertices, %d indices", config.Name, len(config.Vertices), len(config.Indices))
	return &metadata.RenderOperation{
		Topology: metadata.PrimitiveTopologyTriangleList,
		VertexData: &metadata.VertexData{
			Declaration: decl,
			Binding:     binding,
			VertexCount: len(config.Vertices),
		},
		UseIndexes: true,
		IndexData: &metadata.IndexData{
			Buffer:     ib,
			IndexCount: len(config.Indices),
		},
	}, nil
}

// DestroyGeometry releases the buffers of an operation built by
// CreateGeometry.
func (r *Renderer) DestroyGeometry(op *metadata.RenderOperation) error {
	var buffers []metadata.HardwareBuffer
	if op.VertexData != nil && op.VertexData.Binding != nil {
		op.VertexData.Binding.Each(func(_ uint16, vb *metadata.VertexBuffer) {
			buffers = append(buffers, vb.HardwareBuffer)
		})
	}
	if op.IndexData != nil && op.IndexData.Buffer != nil {
		buffers = append(buffers, op.IndexData.Buffer.HardwareBuffer)
	}
	return r.destroyBuffers(buffers...)
}

func (r *Renderer) destroyBuffers(buffers ...metadata.HardwareBuffer) error {
	var errs []error
	for _, b := range buffers {
		if err := r.backend.DestroyBuffer(b); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

package opengl

import (
	"fmt"

	"github.com/spaghettifunk/anima-ffp/engine/core"
	"github.com/spaghettifunk/anima-ffp/engine/renderer/metadata"
)

type storageFactory func(target Enum, size int, usage metadata.BufferUsage) (bufferStorage, error)

// BufferManager creates and owns every vertex and index buffer. The backing
// strategy is fixed when the manager is created.
type BufferManager struct {
	state   *glState
	create  storageFactory
	backing metadata.BufferBacking
	buffers map[*buffer]struct{}
}

func newBufferManager(state *glState, hardware bool) *BufferManager {
	m := &BufferManager{
		state:   state,
		buffers: make(map[*buffer]struct{}),
	}
	if hardware {
		m.backing = metadata.BufferBackingHardware
		m.create = func(target Enum, size int, usage metadata.BufferUsage) (bufferStorage, error) {
			return newHardwareStorage(state, target, size, usage)
		}
	} else {
		m.backing = metadata.BufferBackingSoftware
		m.create = func(target Enum, size int, usage metadata.BufferUsage) (bufferStorage, error) {
			return newSoftwareStorage(state, size), nil
		}
	}
	core.LogInfo("buffer store using %s buffers", m.backing)
	return m
}

func (m *BufferManager) Backing() metadata.BufferBacking {
	return m.backing
}

// Count returns the number of live buffers.
func (m *BufferManager) Count() int {
	return len(m.buffers)
}

func (m *BufferManager) newBuffer(kind metadata.BufferKind, target Enum, size int, usage metadata.BufferUsage, useShadowCopy bool) (*buffer, error) {
	if size <= 0 {
		err := fmt.Errorf("cannot create an empty %s buffer: %w", kind, core.ErrOutOfRange)
		core.LogError(err.Error())
		return nil, err
	}
	storage, err := m.create(target, size, usage)
	if err != nil {
		core.LogError(err.Error())
		return nil, err
	}
	b := &buffer{
		kind:    kind,
		size:    size,
		usage:   usage,
		storage: storage,
	}
	// host buffers are their own mirror
	if useShadowCopy && m.backing == metadata.BufferBackingHardware {
		b.shadow = make([]byte, size)
	}
	m.buffers[b] = struct{}{}
	return b, nil
}

func (m *BufferManager) CreateVertexBuffer(vertexSize, numVertices int, usage metadata.BufferUsage, useShadowCopy bool) (*metadata.VertexBuffer, error) {
	b, err := m.newBuffer(metadata.BufferKindVertex, ARRAY_BUFFER, vertexSize*numVertices, usage, useShadowCopy)
	if err != nil {
		return nil, err
	}
	return &metadata.VertexBuffer{
		HardwareBuffer: b,
		VertexSize:     vertexSize,
		VertexCount:    numVertices,
	}, nil
}

func (m *BufferManager) CreateIndexBuffer(indexType metadata.IndexType, numIndices int, usage metadata.BufferUsage, useShadowCopy bool) (*metadata.IndexBuffer, error) {
	b, err := m.newBuffer(metadata.BufferKindIndex, ELEMENT_ARRAY_BUFFER, indexType.Size()*numIndices, usage, useShadowCopy)
	if err != nil {
		return nil, err
	}
	return &metadata.IndexBuffer{
		HardwareBuffer: b,
		IndexType:      indexType,
		IndexCount:     numIndices,
	}, nil
}

// DestroyBuffer releases the driver storage. Outstanding locks are dropped.
func (m *BufferManager) DestroyBuffer(hb metadata.HardwareBuffer) error {
	b, ok := hb.(*buffer)
	if !ok {
		return fmt.Errorf("foreign buffer implementation %T: %w", hb, core.ErrNotFound)
	}
	if _, ok := m.buffers[b]; !ok {
		return fmt.Errorf("%s buffer was not created by this manager: %w", b.kind, core.ErrNotFound)
	}
	if b.locked && b.shadow == nil {
		b.storage.unlock()
	}
	b.locked = false
	b.storage.release()
	delete(m.buffers, b)
	return nil
}

func (m *BufferManager) Shutdown() {
	for b := range m.buffers {
		_ = m.DestroyBuffer(b)
	}
}

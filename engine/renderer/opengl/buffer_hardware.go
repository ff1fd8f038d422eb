package opengl

import (
	"fmt"

	"github.com/spaghettifunk/anima-ffp/engine/core"
	"github.com/spaghettifunk/anima-ffp/engine/renderer/metadata"
)

type hardwareStorage struct {
	state  *glState
	target Enum
	id     uint32
	size   int
	usage  metadata.BufferUsage
}

func newHardwareStorage(state *glState, target Enum, size int, usage metadata.BufferUsage) (*hardwareStorage, error) {
	id := state.fns.GenBuffer()
	if id == 0 {
		return nil, fmt.Errorf("driver returned no buffer object for %d bytes: %w", size, core.ErrAllocation)
	}
	h := &hardwareStorage{
		state:  state,
		target: target,
		id:     id,
		size:   size,
		usage:  usage,
	}
	state.bindBuffer(target, id)
	state.fns.BufferData(target, size, nil, glBufferUsage(usage))
	return h, nil
}

func glBufferUsage(usage metadata.BufferUsage) Enum {
	if usage.IsDynamic() {
		return DYNAMIC_DRAW
	}
	return STATIC_DRAW
}

// glAccess picks the map access for a lock. A normal lock maps read-write
// on dynamic buffers and read-only on static ones; a discard lock never
// needs the old contents.
func glAccess(usage metadata.BufferUsage, mode metadata.LockMode) Enum {
	switch mode {
	case metadata.LockModeReadOnly:
		return READ_ONLY
	case metadata.LockModeDiscard:
		if usage.IsWriteOnly() {
			return WRITE_ONLY
		}
		return READ_WRITE
	}
	if usage.IsDynamic() {
		return READ_WRITE
	}
	return READ_ONLY
}

func (h *hardwareStorage) backing() metadata.BufferBacking {
	return metadata.BufferBackingHardware
}

func (h *hardwareStorage) lock(offset, length int, mode metadata.LockMode) ([]byte, error) {
	h.state.bindBuffer(h.target, h.id)
	if mode == metadata.LockModeDiscard {
		// orphan the old storage so the driver does not wait for pending draws
		h.state.fns.BufferData(h.target, h.size, nil, glBufferUsage(h.usage))
	}
	mem := h.state.fns.MapBuffer(h.target, glAccess(h.usage, mode), h.size)
	if mem == nil {
		return nil, fmt.Errorf("driver refused to map buffer %d: %w", h.id, core.ErrAllocation)
	}
	return mem[offset : offset+length], nil
}

func (h *hardwareStorage) unlock() {
	h.state.bindBuffer(h.target, h.id)
	if !h.state.fns.UnmapBuffer(h.target) {
		core.LogWarn("buffer %d contents were lost while mapped", h.id)
	}
}

func (h *hardwareStorage) write(offset int, src []byte, discard bool) {
	h.state.bindBuffer(h.target, h.id)
	// a whole-range upload replaces the storage anyway
	if offset == 0 && len(src) == h.size {
		h.state.fns.BufferData(h.target, h.size, src, glBufferUsage(h.usage))
		return
	}
	if discard {
		h.state.fns.BufferData(h.target, h.size, nil, glBufferUsage(h.usage))
	}
	h.state.fns.BufferSubData(h.target, offset, src)
}

func (h *hardwareStorage) read(offset int, dst []byte) {
	h.state.bindBuffer(h.target, h.id)
	h.state.fns.GetBufferSubData(h.target, offset, dst)
}

func (h *hardwareStorage) bind(target Enum) ClientData {
	h.state.bindBuffer(target, h.id)
	return ClientData{}
}

func (h *hardwareStorage) release() {
	h.state.deleteBuffer(h.id)
	h.id = 0
}

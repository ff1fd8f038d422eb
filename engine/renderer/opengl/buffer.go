package opengl

import (
	"fmt"

	"github.com/spaghettifunk/anima-ffp/engine/core"
	"github.com/spaghettifunk/anima-ffp/engine/renderer/metadata"
)

// bufferStorage is the backing a buffer delegates to: a driver buffer
// object or a block of host memory.
type bufferStorage interface {
	backing() metadata.BufferBacking
	lock(offset, length int, mode metadata.LockMode) ([]byte, error)
	unlock()
	write(offset int, src []byte, discard bool)
	read(offset int, dst []byte)
	// bind makes the storage the source for target and returns the
	// pointer base for client arrays.
	bind(target Enum) ClientData
	release()
}

// buffer enforces the lock contract shared by every backing.
type buffer struct {
	kind    metadata.BufferKind
	size    int
	usage   metadata.BufferUsage
	storage bufferStorage

	// host mirror, nil without shadow copy
	shadow []byte

	locked     bool
	lockMode   metadata.LockMode
	lockOffset int
	lockLength int
}

func (b *buffer) Kind() metadata.BufferKind {
	return b.kind
}

func (b *buffer) SizeInBytes() int {
	return b.size
}

func (b *buffer) Usage() metadata.BufferUsage {
	return b.usage
}

func (b *buffer) Backing() metadata.BufferBacking {
	return b.storage.backing()
}

func (b *buffer) HasShadow() bool {
	return b.shadow != nil
}

func (b *buffer) IsLocked() bool {
	return b.locked
}

func (b *buffer) checkRange(offset, length int) error {
	if offset < 0 || length <= 0 || offset+length > b.size {
		return fmt.Errorf("%s buffer range [%d, %d) of %d bytes: %w", b.kind, offset, offset+length, b.size, core.ErrOutOfRange)
	}
	return nil
}

func (b *buffer) checkAccess(mode metadata.LockMode) error {
	switch mode {
	case metadata.LockModeReadOnly:
		if b.usage.IsWriteOnly() {
			return fmt.Errorf("read-only lock on a write-only %s buffer: %w", b.kind, core.ErrInvalidAccess)
		}
	case metadata.LockModeDiscard:
		if !b.usage.IsDynamic() {
			return fmt.Errorf("discard lock on a static %s buffer: %w", b.kind, core.ErrInvalidAccess)
		}
	}
	return nil
}

func (b *buffer) Lock(offset, length int, mode metadata.LockMode) ([]byte, error) {
	if b.locked {
		err := fmt.Errorf("cannot lock %s buffer: %w", b.kind, core.ErrAlreadyLocked)
		core.LogError(err.Error())
		return nil, err
	}
	if err := b.checkRange(offset, length); err != nil {
		core.LogError(err.Error())
		return nil, err
	}
	if err := b.checkAccess(mode); err != nil {
		core.LogError(err.Error())
		return nil, err
	}

	var region []byte
	if b.shadow != nil {
		region = b.shadow[offset : offset+length]
	} else {
		mem, err := b.storage.lock(offset, length, mode)
		if err != nil {
			core.LogError(err.Error())
			return nil, err
		}
		region = mem
	}

	b.locked = true
	b.lockMode = mode
	b.lockOffset = offset
	b.lockLength = length
	return region, nil
}

func (b *buffer) Unlock() error {
	if !b.locked {
		err := fmt.Errorf("cannot unlock %s buffer: %w", b.kind, core.ErrNotLocked)
		core.LogError(err.Error())
		return err
	}
	if b.shadow != nil {
		// the mirror holds the truth, push back what may have changed
		if b.lockMode != metadata.LockModeReadOnly {
			whole := b.lockOffset == 0 && b.lockLength == b.size
			b.storage.write(b.lockOffset, b.shadow[b.lockOffset:b.lockOffset+b.lockLength], whole)
		}
	} else {
		b.storage.unlock()
	}
	b.locked = false
	return nil
}

func (b *buffer) WriteData(offset int, src []byte, discardWholeBuffer bool) error {
	if b.locked {
		err := fmt.Errorf("cannot write %s buffer while locked: %w", b.kind, core.ErrAlreadyLocked)
		core.LogError(err.Error())
		return err
	}
	if err := b.checkRange(offset, len(src)); err != nil {
		core.LogError(err.Error())
		return err
	}
	if discardWholeBuffer {
		if err := b.checkAccess(metadata.LockModeDiscard); err != nil {
			core.LogError(err.Error())
			return err
		}
	}
	if b.shadow != nil {
		copy(b.shadow[offset:], src)
	}
	b.storage.write(offset, src, discardWholeBuffer)
	return nil
}

func (b *buffer) ReadData(offset int, dst []byte) error {
	if b.locked {
		err := fmt.Errorf("cannot read %s buffer while locked: %w", b.kind, core.ErrAlreadyLocked)
		core.LogError(err.Error())
		return err
	}
	if err := b.checkRange(offset, len(dst)); err != nil {
		core.LogError(err.Error())
		return err
	}
	if b.shadow != nil {
		copy(dst, b.shadow[offset:offset+len(dst)])
		return nil
	}
	if b.usage.IsWriteOnly() {
		err := fmt.Errorf("cannot read a write-only %s buffer: %w", b.kind, core.ErrInvalidAccess)
		core.LogError(err.Error())
		return err
	}
	b.storage.read(offset, dst)
	return nil
}

func (b *buffer) bind(target Enum) ClientData {
	return b.storage.bind(target)
}

// bindSource returns the pointer base of any buffer created by this package.
func bindSource(hb metadata.HardwareBuffer, target Enum) (ClientData, error) {
	b, ok := hb.(*buffer)
	if !ok {
		return ClientData{}, fmt.Errorf("foreign buffer implementation %T: %w", hb, core.ErrNotFound)
	}
	if b.locked {
		return ClientData{}, fmt.Errorf("cannot draw from a locked %s buffer: %w", b.kind, core.ErrAlreadyLocked)
	}
	return b.bind(target), nil
}

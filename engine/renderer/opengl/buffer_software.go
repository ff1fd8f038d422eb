package opengl

import "github.com/spaghettifunk/anima-ffp/engine/renderer/metadata"

// softwareStorage keeps the data in host memory and hands it to the driver
// as client arrays.
type softwareStorage struct {
	state *glState
	data  []byte
}

func newSoftwareStorage(state *glState, size int) *softwareStorage {
	return &softwareStorage{
		state: state,
		data:  make([]byte, size),
	}
}

func (s *softwareStorage) backing() metadata.BufferBacking {
	return metadata.BufferBackingSoftware
}

func (s *softwareStorage) lock(offset, length int, mode metadata.LockMode) ([]byte, error) {
	return s.data[offset : offset+length], nil
}

func (s *softwareStorage) unlock() {}

func (s *softwareStorage) write(offset int, src []byte, discard bool) {
	copy(s.data[offset:], src)
}

func (s *softwareStorage) read(offset int, dst []byte) {
	copy(dst, s.data[offset:])
}

func (s *softwareStorage) bind(target Enum) ClientData {
	s.state.bindBuffer(target, 0)
	return ClientData{Data: s.data}
}

func (s *softwareStorage) release() {
	s.data = nil
}

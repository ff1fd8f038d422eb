package metadata

/** @brief What a hardware buffer holds. */
type BufferKind uint8

const (
	BufferKindVertex BufferKind = iota
	BufferKindIndex
)

func (k BufferKind) String() string {
	if k == BufferKindIndex {
		return "index"
	}
	return "vertex"
}

/**
 * @brief Usage flags given at creation time. Static and Dynamic are
 * exclusive; WriteOnly may be combined with either.
 */
type BufferUsage uint8

const (
	/** @brief Written once, drawn many times. */
	BufferUsageStatic BufferUsage = 0x1
	/** @brief Rewritten frequently. Required for discard locks. */
	BufferUsageDynamic BufferUsage = 0x2
	/** @brief The application never reads the contents back. */
	BufferUsageWriteOnly BufferUsage = 0x4

	BufferUsageStaticWriteOnly  = BufferUsageStatic | BufferUsageWriteOnly
	BufferUsageDynamicWriteOnly = BufferUsageDynamic | BufferUsageWriteOnly
)

func (u BufferUsage) IsDynamic() bool {
	return u&BufferUsageDynamic != 0
}

func (u BufferUsage) IsWriteOnly() bool {
	return u&BufferUsageWriteOnly != 0
}

/** @brief Where the buffer storage lives. */
type BufferBacking uint8

const (
	/** @brief A driver buffer object. */
	BufferBackingHardware BufferBacking = iota
	/** @brief Host memory handed to the driver as client arrays. */
	BufferBackingSoftware
)

func (b BufferBacking) String() string {
	if b == BufferBackingSoftware {
		return "software"
	}
	return "hardware"
}

type LockMode uint8

const (
	/** @brief Read/write access to the existing contents. */
	LockModeNormal LockMode = iota
	/** @brief The previous contents are thrown away before the region is returned. */
	LockModeDiscard
	/** @brief The region is only read. */
	LockModeReadOnly
)

func (m LockMode) String() string {
	switch m {
	case LockModeDiscard:
		return "discard"
	case LockModeReadOnly:
		return "read-only"
	}
	return "normal"
}

type IndexType uint8

const (
	IndexType16 IndexType = iota
	IndexType32
)

/** @brief Size in bytes of one index. */
func (t IndexType) Size() int {
	if t == IndexType32 {
		return 4
	}
	return 2
}

/**
 * @brief A vertex or index buffer owned by the buffer store. Only one lock
 * may be outstanding at a time and the buffer must be unlocked before
 * WriteData, ReadData or drawing.
 */
type HardwareBuffer interface {
	Kind() BufferKind
	SizeInBytes() int
	Usage() BufferUsage
	Backing() BufferBacking
	HasShadow() bool
	IsLocked() bool
	/** @brief Locks [offset, offset+length) and returns the region. */
	Lock(offset, length int, mode LockMode) ([]byte, error)
	Unlock() error
	/** @brief Copies src into the buffer at offset without an explicit lock. */
	WriteData(offset int, src []byte, discardWholeBuffer bool) error
	/** @brief Copies len(dst) bytes starting at offset into dst. */
	ReadData(offset int, dst []byte) error
}

type VertexBuffer struct {
	HardwareBuffer
	/** @brief Stride of one vertex in bytes. */
	VertexSize int
	VertexCount int
}

type IndexBuffer struct {
	HardwareBuffer
	IndexType  IndexType
	IndexCount int
}

package metadata

type ResourceType int

/** @brief Pre-defined resource types. */
const (
	/** @brief Files no loader understands. */
	ResourceTypeNone ResourceType = iota
	/** @brief Image resource type, decoded into an Image. */
	ResourceTypeImage
)

/**
 * @brief A generic structure for a resource. All resource loaders
 * load data into these.
 */
type Resource struct {
	/** @brief The name of the resource. */
	Name string
	/** @brief The full file path of the resource. */
	FullPath string
	/** @brief The size of the resource data in bytes. */
	DataSize uint64
	/** @brief The resource data. */
	Data interface{}
}

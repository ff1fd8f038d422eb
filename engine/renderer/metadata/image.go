package metadata

/**
 * @brief Decoded image data, tightly packed rows starting at the top left
 * unless it was flipped on load.
 */
type Image struct {
	Name   string
	Format PixelFormat
	/** @brief The width of the image. */
	Width uint32
	/** @brief The height of the image. */
	Height uint32
	/** @brief The pixel data of the image. */
	Pixels []uint8
}

/** @brief Parameters used when loading an image. */
type ImageParams struct {
	/** @brief Indicates if the image should be flipped on the y-axis when loaded. */
	FlipY bool
}

package metadata

/** @brief A rectangle of a render target, origin at the top left. */
type Viewport struct {
	Left   int
	Top    int
	Width  int
	Height int
	/** @brief Height of the target the viewport lives in. */
	TargetHeight     int
	ClearEveryFrame  bool
	BackgroundColour [4]float32
}

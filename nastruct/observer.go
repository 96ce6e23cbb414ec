package nastruct

// Observer is shown the frames computed for every snapshot, in the order
// they are computed. It is meant for debugging output such as writing the
// frames to structure files. Implementations must not modify the frames.
type Observer interface {
	// BaseAxes receives every base's axis frame and lab frame reference
	// geometry.
	BaseAxes(bases []Base, axes []BaseAxis)

	// PairAxes receives every base pair frame that could be built.
	PairAxes(bases []Base, pairs []PairAxis)
}

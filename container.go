package orthopack

// StripPackContainerID is the fixed identifier used for the single
// container that exists in strip-pack mode.
const StripPackContainerID = "strip-pack-container"

// Container is a rectangular region with a fixed width and length. In
// strip-pack mode there is exactly one container, and its length is driven
// instead by Problem.containerHeight.
type Container struct {
	ID string
	W  int
	L  int
}

func validateDims(w, l int) error {
	if w <= 0 || l <= 0 {
		return ErrDimensionValue
	}
	return nil
}

func newContainer(id string, w, l int) (Container, error) {
	if err := validateDims(w, l); err != nil {
		return Container{}, err
	}
	return Container{ID: id, W: w, L: l}, nil
}

package orthopack

import "fmt"

// ErrorKind classifies the taxonomy of pre-solve and setter errors the
// core enforces: input-shape, strategy, and dimension errors are all
// surfaced immediately to the caller (never retried or swallowed).
type ErrorKind string

const (
	KindContainers      ErrorKind = "containers"
	KindItems           ErrorKind = "items"
	KindSettings        ErrorKind = "settings"
	KindDimensions      ErrorKind = "dimensions"
	KindStrategy        ErrorKind = "strategy"
	KindMultiProcess    ErrorKind = "worker"
)

// Error is the single error type used across the package. Kind identifies
// the taxonomy bucket (mirrors the per-category exception classes in the
// Python original); Message is a short, stable description.
type Error struct {
	Kind    ErrorKind
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func newError(kind ErrorKind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Message constants, one per distinct failure the core can report. Named
// after the exception message constants in the Python original
// (hyperpack/exceptions.py) so the grounding stays traceable.
var (
	ErrContainersMissing      = newError(KindContainers, "containers missing")
	ErrContainersStripPack    = newError(KindContainers, "can't assign or change containers when solving strip packing")
	ErrContainersCantDelete   = newError(KindContainers, "can't delete the last container")
	ErrContainersDuplicateID  = newError(KindContainers, "duplicate container id")

	ErrItemsMissing    = newError(KindItems, "items missing")
	ErrItemsCantDelete = newError(KindItems, "can't delete the last item")

	ErrSettingsMaxTime    = newError(KindSettings, "max_time_in_seconds must be a positive integer")
	ErrSettingsWorkersNum = newError(KindSettings, "workers_num must be a positive integer")

	ErrDimensionValue          = newError(KindDimensions, "width and length must be positive integers")
	ErrDimensionStripMinHeight = newError(KindDimensions, "container_min_height must be less than or equal to container_height")

	ErrStrategyDuplicate    = newError(KindStrategy, "no duplicate potential points categories allowed")
	ErrStrategyUnknown      = newError(KindStrategy, "unknown potential points category")
	ErrStrategyWrongForMode = newError(KindStrategy, "strategy suffix does not match the container mode")

	ErrAllWorkersFailed = newError(KindMultiProcess, "all hypersearch workers failed")
)

package puzzle

import "errors"

var (
	// ErrConfigurationMissing means a required zone, template or counter reference
	// is absent; the puzzle is disabled but the process keeps running
	ErrConfigurationMissing = errors.New("puzzle configuration missing")

	// ErrInvalidTransition means a state-machine call was made from an incompatible state
	// The call is ignored and logged as a warning
	ErrInvalidTransition = errors.New("invalid state transition")

	// ErrAlreadyCounted means the entity already contributed to the counter
	ErrAlreadyCounted = errors.New("entity already counted")
)

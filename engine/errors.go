package engine

import "errors"

// ErrInvalidDuration is returned when a timer or animation period is not positive
var ErrInvalidDuration = errors.New("duration must be positive")

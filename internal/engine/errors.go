package engine

import "errors"

// ErrInvalidArgument is wrapped by every argument validation error raised by
// helpers layered on the engine.
var ErrInvalidArgument = errors.New("invalid argument")

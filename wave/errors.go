package wave

import "github.com/katalvlaran/timewave/hexagram"

// ErrInvalidArgument is returned for malformed inputs (too few codes, bad
// code width, negative iteration count, empty wave). It is the same value
// as hexagram.ErrInvalidArgument.
var ErrInvalidArgument = hexagram.ErrInvalidArgument

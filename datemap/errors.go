package datemap

import "github.com/katalvlaran/timewave/hexagram"

// ErrInvalidArgument is returned for invalid calendar dates and
// non-positive steps. It is the same value as hexagram.ErrInvalidArgument.
var ErrInvalidArgument = hexagram.ErrInvalidArgument

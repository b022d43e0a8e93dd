package dtw

import "errors"

var (
	// ErrEmptyInput indicates that one or both series are empty.
	ErrEmptyInput = errors.New("dtw: input series must be non-empty")

	// ErrBadInput indicates invalid options (Window < -1, negative or NaN penalty).
	ErrBadInput = errors.New("dtw: invalid options")

	// ErrPathNeedsMatrix indicates ReturnPath without FullMatrix mode.
	ErrPathNeedsMatrix = errors.New("dtw: ReturnPath requires MemoryMode=FullMatrix")
)

package plot

import "errors"

// ErrLengthMismatch indicates a bulk setter was given a slice whose length
// disagrees with the artifact's element count.
var ErrLengthMismatch = errors.New("length mismatch")

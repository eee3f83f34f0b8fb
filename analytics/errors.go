package analytics

import "errors"

// ErrInvalidArgument marks a contract violation at the call boundary: a
// structurally invalid parameter such as a negative lookback window or a
// malformed month string. Empty input data is not an error; it produces
// defined zero-valued results.
var ErrInvalidArgument = errors.New("invalid argument")

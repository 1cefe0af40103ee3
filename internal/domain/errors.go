package domain

import "errors"

// ErrMalformedInput indicates the input could not be parsed as a table
// at all. This is the engine's only hard failure: absent columns and
// empty filter combinations degrade silently instead.
var ErrMalformedInput = errors.New("malformed input dataset")

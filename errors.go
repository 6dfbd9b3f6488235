package strbuf

import "errors"

// Errors returned by the formatted and unpack operations. Everything
// else in the package reports problems through clamping or zero
// returns, never through errors.
var (
	// ErrFormat reports a malformed format string from Copyf or Catf.
	ErrFormat = errors.New("invalid format")

	// ErrShortInput reports that an Unpacker ran out of input before
	// satisfying a read.
	ErrShortInput = errors.New("unpack input too short")
)

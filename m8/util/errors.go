package util

import "github.com/pkg/errors"

// Decode failure kinds. Every decode error wraps one of these; use
// errors.Cause to recover the kind.
var (
	ErrTruncated          = errors.New("truncated input")
	ErrUnsupportedVersion = errors.New("unsupported format version")
	ErrUnknownTag         = errors.New("unknown type tag")
	ErrInvalidEnum        = errors.New("invalid enum value")
	ErrMalformedString    = errors.New("malformed string")
)

package collections

import "errors"

var (
	ErrValueExisted     = errors.New("value existed")
	ErrValueNotExisted  = errors.New("value not existed")
	ErrReadOnlyView     = errors.New("view is read-only")
	ErrNonKeyedArchive  = errors.New("non-keyed archive form is not supported")
	ErrMalformedArchive = errors.New("malformed keyed archive")
)

// NotFound is returned by index lookups when no element matches.
const NotFound = -1

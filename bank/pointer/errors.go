package pointer

import (
	"errors"
	"fmt"
)

var (
	// ErrSyntax indicates malformed pointer text.
	ErrSyntax = errors.New("pointer: malformed pointer")

	// ErrResolve is the family sentinel for pointers that parse but do not
	// resolve against the current document. The specific failure wraps one
	// of the subtypes below, each of which wraps ErrResolve, so callers can
	// test either level with errors.Is.
	ErrResolve = errors.New("pointer: pointer does not resolve")

	// ErrKeyNotFound indicates an object token that matches no key, or an
	// array token that is not a non-negative integer.
	ErrKeyNotFound = fmt.Errorf("%w: key not found", ErrResolve)

	// ErrIndexOutOfRange indicates an array index at or past the array length.
	ErrIndexOutOfRange = fmt.Errorf("%w: index out of range", ErrResolve)

	// ErrNotContainer indicates a token applied to a scalar node.
	ErrNotContainer = fmt.Errorf("%w: token applied to a scalar", ErrResolve)
)

package sizemap

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownProfile reports a profile that names no model.
	ErrUnknownProfile = errors.New("sizemap: unknown profile")

	// ErrNotInitialized reports a lookup on a map that has not been built.
	ErrNotInitialized = errors.New("sizemap: not initialized")

	// ErrInitialized reports a second Init on the same map.
	ErrInitialized = errors.New("sizemap: already initialized")

	// ErrSizeTooLarge reports a size above MaxSize; such requests belong to
	// the page-level path.
	ErrSizeTooLarge = errors.New("sizemap: size exceeds max size")

	// ErrNoAlignedClass reports an alignment no class can satisfy.
	ErrNoAlignedClass = errors.New("sizemap: no class satisfies alignment")
)

// AlignmentError is the panic value of an aligned lookup whose alignment is
// not a non-zero power of two.
type AlignmentError uint64

func (e AlignmentError) Error() string {
	return fmt.Sprintf("sizemap: alignment %d is not a power of two", uint64(e))
}

// Validation failures, wrapped by *ValidationError.
var (
	ErrTableLength   = errors.New("wrong number of classes")
	ErrSentinel      = errors.New("class 0 must be zero")
	ErrNotIncreasing = errors.New("non-increasing size class")
	ErrTooLarge      = errors.New("size class too big")
	ErrMisaligned    = errors.New("not aligned properly")
	ErrMultiPage     = errors.New("multiple pages not allowed")
	ErrPages         = errors.New("pages out of range")
	ErrBatch         = errors.New("num objects to move out of range")
	ErrFragmentation = errors.New("span waste over limit")
	ErrMaxSize       = errors.New("last class doesn't cover max size")
)

// ValidationError describes the first row a table was rejected for.
type ValidationError struct {
	Class int
	Info  SizeClassInfo
	Err   error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("sizemap: class %d %+v: %v", e.Class, e.Info, e.Err)
}

func (e *ValidationError) Unwrap() error { return e.Err }

// ParseError describes malformed override text.
type ParseError struct {
	// Class is the class the bad token belongs to.
	Class int
	// Offset is the byte offset of the bad token.
	Offset int
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("sizemap: parse class %d at offset %d: %v", e.Class, e.Offset, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Parse failures, wrapped by *ParseError.
var (
	ErrSyntax     = errors.New("invalid character")
	ErrFieldCount = errors.New("want size,pages,num_to_move")
	ErrClassCount = errors.New("wrong number of classes")
	ErrOutOfRange = errors.New("value out of range")
	ErrEmptyField = errors.New("empty field")
)

// Package errors defines the engine's error taxonomy: sentinel errors
// paired with typed error structs that carry context and satisfy
// errors.Is against their sentinel.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for the three kinds of failure the core contract
// distinguishes.
var (
	// ErrInvalidArgument is returned for invalid term characters, a
	// negative document id, a duplicate document id, or an invalid
	// stop word.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrOutOfRange is returned for index-by-position lookups outside
	// their valid bounds.
	ErrOutOfRange = errors.New("out of range")

	// ErrNotFound is returned for operations on a document id that is
	// not live.
	ErrNotFound = errors.New("not found")
)

// InvalidArgumentError carries the human-readable reason an argument was
// rejected.
type InvalidArgumentError struct {
	Reason string
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("invalid argument: %s", e.Reason)
}

func (e *InvalidArgumentError) Is(target error) bool {
	return target == ErrInvalidArgument
}

// NewInvalidArgumentError creates a new InvalidArgumentError.
func NewInvalidArgumentError(reason string) *InvalidArgumentError {
	return &InvalidArgumentError{Reason: reason}
}

// OutOfRangeError carries the requested index and the valid length.
type OutOfRangeError struct {
	Index  int
	Length int
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("index %d out of range [0, %d)", e.Index, e.Length)
}

func (e *OutOfRangeError) Is(target error) bool {
	return target == ErrOutOfRange
}

// NewOutOfRangeError creates a new OutOfRangeError.
func NewOutOfRangeError(index, length int) *OutOfRangeError {
	return &OutOfRangeError{Index: index, Length: length}
}

// NotFoundError carries the document id that was not found among live
// documents.
type NotFoundError struct {
	DocumentID int
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("document with id %d not found", e.DocumentID)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// NewNotFoundError creates a new NotFoundError.
func NewNotFoundError(documentID int) *NotFoundError {
	return &NotFoundError{DocumentID: documentID}
}

package errors

import (
	"errors"
	"testing"
)

func TestInvalidArgumentError(t *testing.T) {
	err := NewInvalidArgumentError("invalid query term: --help")

	expectedMsg := "invalid argument: invalid query term: --help"
	if err.Error() != expectedMsg {
		t.Errorf("Expected error message '%s', got '%s'", expectedMsg, err.Error())
	}

	if !errors.Is(err, ErrInvalidArgument) {
		t.Error("Expected error to match ErrInvalidArgument sentinel")
	}
	if errors.Is(err, ErrNotFound) {
		t.Error("Error should not match ErrNotFound")
	}
}

func TestOutOfRangeError(t *testing.T) {
	err := NewOutOfRangeError(5, 3)

	expectedMsg := "index 5 out of range [0, 3)"
	if err.Error() != expectedMsg {
		t.Errorf("Expected error message '%s', got '%s'", expectedMsg, err.Error())
	}
	if !errors.Is(err, ErrOutOfRange) {
		t.Error("Expected error to match ErrOutOfRange sentinel")
	}
}

func TestNotFoundError(t *testing.T) {
	err := NewNotFoundError(42)

	expectedMsg := "document with id 42 not found"
	if err.Error() != expectedMsg {
		t.Errorf("Expected error message '%s', got '%s'", expectedMsg, err.Error())
	}
	if !errors.Is(err, ErrNotFound) {
		t.Error("Expected error to match ErrNotFound sentinel")
	}
}

func TestErrorChaining(t *testing.T) {
	originalErr := NewNotFoundError(7)
	wrappedErr := errors.Join(originalErr, errors.New("additional context"))

	if !errors.Is(wrappedErr, ErrNotFound) {
		t.Error("Expected wrapped error to still match ErrNotFound sentinel")
	}

	var notFoundErr *NotFoundError
	if !errors.As(wrappedErr, &notFoundErr) {
		t.Error("Expected to be able to unwrap to NotFoundError")
	}
	if notFoundErr.DocumentID != 7 {
		t.Errorf("Expected document id 7, got %d", notFoundErr.DocumentID)
	}
}

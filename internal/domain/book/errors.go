package book

import (
	apperrors "libcatalog/pkg/errors"
)

var (
	// ErrBookNotFound covers both missing and soft-deleted records.
	ErrBookNotFound = apperrors.NewNotFound("Book not found")

	// ErrISBNDuplicate is returned when a live book already holds the ISBN.
	ErrISBNDuplicate = apperrors.NewConflict("A book with this ISBN already exists")

	// ErrInvalidISBN is returned for an ISBN that is not 10 or 13 digits.
	ErrInvalidISBN = apperrors.NewValidation("ISBN must be exactly 10 or 13 digits", nil)

	// ErrInvalidStatus is returned for a status outside Available|Borrowed.
	ErrInvalidStatus = apperrors.NewValidation("Status must be Available or Borrowed", nil)
)

package wishlist

import (
	"context"

	apperrors "libcatalog/pkg/errors"
)

// ErrAlreadyWishlisted is returned when the (user, book) pair already exists.
var ErrAlreadyWishlisted = apperrors.NewConflict("User has already wishlisted this book")

// Repository is the wishlist store port.
type Repository interface {
	// Create persists a new entry; ErrAlreadyWishlisted on a duplicate pair.
	Create(ctx context.Context, entry *Entry) error

	// ListByBookID returns every entry for the book, for notification fan-out.
	ListByBookID(ctx context.Context, bookID uint) ([]*Entry, error)
}

package book

import (
	"context"

	"libcatalog/internal/domain/book"
)

// DeleteBookUseCase soft-deletes a book. The record stays in storage with a
// deletion timestamp and disappears from all reads; wishlist rows are left
// untouched.
type DeleteBookUseCase struct {
	bookService book.Service
}

// NewDeleteBookUseCase creates the use case.
func NewDeleteBookUseCase(bookService book.Service) *DeleteBookUseCase {
	return &DeleteBookUseCase{bookService: bookService}
}

// Execute returns NotFound when the id is absent or already soft-deleted.
func (uc *DeleteBookUseCase) Execute(ctx context.Context, id uint) error {
	return uc.bookService.Delete(ctx, id)
}

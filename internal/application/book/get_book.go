package book

import (
	"context"

	"libcatalog/internal/domain/book"
)

// GetBookUseCase reads a single book by id.
type GetBookUseCase struct {
	bookService book.Service
}

// NewGetBookUseCase creates the use case.
func NewGetBookUseCase(bookService book.Service) *GetBookUseCase {
	return &GetBookUseCase{bookService: bookService}
}

// Execute returns NotFound for missing or soft-deleted ids.
func (uc *GetBookUseCase) Execute(ctx context.Context, id uint) (*BookDTO, error) {
	b, err := uc.bookService.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toBookDTO(b), nil
}

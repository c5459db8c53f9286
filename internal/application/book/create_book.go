package book

import (
	"context"

	"libcatalog/internal/domain/book"
)

// CreateBookUseCase adds a book to the catalog.
type CreateBookUseCase struct {
	bookService book.Service
}

// NewCreateBookUseCase creates the use case.
func NewCreateBookUseCase(bookService book.Service) *CreateBookUseCase {
	return &CreateBookUseCase{bookService: bookService}
}

// CreateBookRequest carries the validated create inputs. An empty status
// defaults to Available.
type CreateBookRequest struct {
	Title              string
	Author             string
	ISBN               string
	PublishedYear      int
	AvailabilityStatus string
}

// Execute persists the book; Conflict when a live book holds the ISBN.
func (uc *CreateBookUseCase) Execute(ctx context.Context, req CreateBookRequest) (*BookDTO, error) {
	b, err := uc.bookService.Create(ctx, book.CreateParams{
		Title:         req.Title,
		Author:        req.Author,
		ISBN:          req.ISBN,
		PublishedYear: req.PublishedYear,
		Status:        book.Status(req.AvailabilityStatus),
	})
	if err != nil {
		return nil, err
	}
	return toBookDTO(b), nil
}

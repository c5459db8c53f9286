package book

import (
	"context"

	"libcatalog/internal/domain/book"
)

// UpdateBookUseCase applies a partial field set to an existing book. The
// status-transition side effect (Borrowed->Available dispatch) lives in the
// domain service.
type UpdateBookUseCase struct {
	bookService book.Service
}

// NewUpdateBookUseCase creates the use case.
func NewUpdateBookUseCase(bookService book.Service) *UpdateBookUseCase {
	return &UpdateBookUseCase{bookService: bookService}
}

// UpdateBookRequest carries the optional fields; nil leaves a field
// unchanged.
type UpdateBookRequest struct {
	Title              *string
	Author             *string
	ISBN               *string
	PublishedYear      *int
	AvailabilityStatus *string
}

// Execute updates the book; NotFound when absent or soft-deleted, Conflict
// when the new ISBN collides with another live book.
func (uc *UpdateBookUseCase) Execute(ctx context.Context, id uint, req UpdateBookRequest) (*BookDTO, error) {
	params := book.UpdateParams{
		Title:         req.Title,
		Author:        req.Author,
		ISBN:          req.ISBN,
		PublishedYear: req.PublishedYear,
	}
	if req.AvailabilityStatus != nil {
		status := book.Status(*req.AvailabilityStatus)
		params.Status = &status
	}

	b, err := uc.bookService.Update(ctx, id, params)
	if err != nil {
		return nil, err
	}
	return toBookDTO(b), nil
}

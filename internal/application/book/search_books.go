package book

import (
	"context"

	"libcatalog/internal/domain/book"
)

// SearchBooksUseCase matches a free-text query against title or author.
type SearchBooksUseCase struct {
	bookService book.Service
}

// NewSearchBooksUseCase creates the use case.
func NewSearchBooksUseCase(bookService book.Service) *SearchBooksUseCase {
	return &SearchBooksUseCase{bookService: bookService}
}

// SearchBooksRequest carries the query parameters; Query is required and
// validated at the binding layer.
type SearchBooksRequest struct {
	Query string
	Page  int
	Limit int
}

// Execute searches with the same pagination contract as List.
func (uc *SearchBooksUseCase) Execute(ctx context.Context, req SearchBooksRequest) (*ListBooksResponse, error) {
	page, limit := normalizePaging(req.Page, req.Limit)

	books, total, err := uc.bookService.Search(ctx, book.SearchParams{
		Page:  page,
		Limit: limit,
		Query: req.Query,
	})
	if err != nil {
		return nil, err
	}

	return &ListBooksResponse{
		Books: toBookDTOs(books),
		Page:  page,
		Limit: limit,
		Total: total,
	}, nil
}

package book

import (
	"context"

	"libcatalog/internal/domain/book"
)

// ListBooksUseCase pages through live books with optional author and year
// filters.
type ListBooksUseCase struct {
	bookService book.Service
}

// NewListBooksUseCase creates the use case.
func NewListBooksUseCase(bookService book.Service) *ListBooksUseCase {
	return &ListBooksUseCase{bookService: bookService}
}

// ListBooksRequest carries the query parameters. Zero values disable the
// optional filters.
type ListBooksRequest struct {
	Page          int
	Limit         int
	Author        string
	PublishedYear int
}

// ListBooksResponse is a page of books plus the pagination inputs the
// handler needs to build the envelope metadata.
type ListBooksResponse struct {
	Books []*BookDTO
	Page  int
	Limit int
	Total int64
}

// Execute lists one page ordered by creation time descending. A page past
// the end yields an empty slice with the same metadata.
func (uc *ListBooksUseCase) Execute(ctx context.Context, req ListBooksRequest) (*ListBooksResponse, error) {
	page, limit := normalizePaging(req.Page, req.Limit)

	books, total, err := uc.bookService.List(ctx, book.ListParams{
		Page:          page,
		Limit:         limit,
		Author:        req.Author,
		PublishedYear: req.PublishedYear,
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

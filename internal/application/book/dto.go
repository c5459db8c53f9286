package book

import (
	"time"

	"libcatalog/internal/domain/book"
)

// BookDTO is the application-layer representation of a book, shared by every
// use case response.
type BookDTO struct {
	ID                 uint   `json:"id"`
	Title              string `json:"title"`
	Author             string `json:"author"`
	ISBN               string `json:"isbn"`
	PublishedYear      int    `json:"publishedYear"`
	AvailabilityStatus string `json:"availabilityStatus"`
	CreatedAt          string `json:"createdAt"`
	UpdatedAt          string `json:"updatedAt"`
}

func toBookDTO(b *book.Book) *BookDTO {
	return &BookDTO{
		ID:                 b.ID,
		Title:              b.Title,
		Author:             b.Author,
		ISBN:               b.ISBN,
		PublishedYear:      b.PublishedYear,
		AvailabilityStatus: string(b.Status),
		CreatedAt:          b.CreatedAt.Format(time.RFC3339),
		UpdatedAt:          b.UpdatedAt.Format(time.RFC3339),
	}
}

func toBookDTOs(books []*book.Book) []*BookDTO {
	out := make([]*BookDTO, len(books))
	for i, b := range books {
		out[i] = toBookDTO(b)
	}
	return out
}

// normalizePaging applies the pagination defaults: page >= 1 (default 1),
// limit 1..100 (default 10).
func normalizePaging(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	if limit > 100 {
		limit = 100
	}
	return page, limit
}

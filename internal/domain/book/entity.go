package book

import (
	"time"
)

// Status is the availability state of a book. Transitions are unconstrained
// in either direction; only Borrowed->Available has a side effect (see
// Service.Update).
type Status string

const (
	StatusAvailable Status = "Available"
	StatusBorrowed  Status = "Borrowed"
)

// Valid reports whether s is a known status value.
func (s Status) Valid() bool {
	return s == StatusAvailable || s == StatusBorrowed
}

// Book is the catalog aggregate root. Soft deletion is a persistence concern;
// a Book held by callers is always a live record.
type Book struct {
	ID            uint
	Title         string
	Author        string
	ISBN          string // 10 or 13 digits, unique among live books
	PublishedYear int
	Status        Status
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewBook creates a book record. An empty status defaults to Available;
// format validation is the caller's responsibility.
func NewBook(title, author, isbn string, publishedYear int, status Status) *Book {
	if status == "" {
		status = StatusAvailable
	}
	now := time.Now()
	return &Book{
		Title:         title,
		Author:        author,
		ISBN:          isbn,
		PublishedYear: publishedYear,
		Status:        status,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// UpdateParams is the partial field set accepted by Service.Update. Nil
// pointers leave the corresponding field unchanged.
type UpdateParams struct {
	Title         *string
	Author        *string
	ISBN          *string
	PublishedYear *int
	Status        *Status
}

// Apply copies the non-nil params onto the book.
func (b *Book) Apply(p UpdateParams) {
	if p.Title != nil {
		b.Title = *p.Title
	}
	if p.Author != nil {
		b.Author = *p.Author
	}
	if p.ISBN != nil {
		b.ISBN = *p.ISBN
	}
	if p.PublishedYear != nil {
		b.PublishedYear = *p.PublishedYear
	}
	if p.Status != nil {
		b.Status = *p.Status
	}
	b.UpdatedAt = time.Now()
}

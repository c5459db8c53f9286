package book

import (
	"context"
)

// Repository is the catalog store port, implemented by the mysql package.
// All reads exclude soft-deleted rows.
type Repository interface {
	// Create persists a new book and backfills ID and timestamps.
	Create(ctx context.Context, book *Book) error

	// FindByID returns ErrBookNotFound for missing or soft-deleted ids.
	FindByID(ctx context.Context, id uint) (*Book, error)

	// FindByISBN returns the live book holding isbn, or ErrBookNotFound.
	FindByISBN(ctx context.Context, isbn string) (*Book, error)

	// Update saves all fields of the book.
	Update(ctx context.Context, book *Book) error

	// Delete soft-deletes the book; ErrBookNotFound when no live row matched.
	Delete(ctx context.Context, id uint) error

	// List returns a page of live books ordered by creation time descending,
	// plus the total count for the filter.
	List(ctx context.Context, params ListParams) ([]*Book, int64, error)

	// Search matches query case-insensitively as a substring of title or
	// author, with the same pagination contract as List.
	Search(ctx context.Context, params SearchParams) ([]*Book, int64, error)
}

// ListParams filters and paginates the listing. Zero values disable the
// optional filters.
type ListParams struct {
	Page          int
	Limit         int
	Author        string // case-insensitive substring
	PublishedYear int    // exact match
}

// SearchParams paginates a free-text search.
type SearchParams struct {
	Page  int
	Limit int
	Query string
}

// Dispatcher is the notification dispatch port. Enqueue must not block on
// worker completion; job processing happens out of band.
type Dispatcher interface {
	EnqueueBookAvailable(ctx context.Context, bookID uint, title string) error
}

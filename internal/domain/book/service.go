package book

import (
	"context"
	"errors"
	"regexp"

	"go.uber.org/zap"
)

// Service holds the catalog business rules: ISBN uniqueness among live
// books, soft-delete semantics, and the Borrowed->Available dispatch trigger.
type Service interface {
	Create(ctx context.Context, params CreateParams) (*Book, error)
	GetByID(ctx context.Context, id uint) (*Book, error)
	List(ctx context.Context, params ListParams) ([]*Book, int64, error)
	Search(ctx context.Context, params SearchParams) ([]*Book, int64, error)
	Update(ctx context.Context, id uint, params UpdateParams) (*Book, error)
	Delete(ctx context.Context, id uint) error
}

// CreateParams carries the validated create inputs.
type CreateParams struct {
	Title         string
	Author        string
	ISBN          string
	PublishedYear int
	Status        Status // empty defaults to Available
}

type service struct {
	repo       Repository
	dispatcher Dispatcher
	logger     *zap.Logger
}

// NewService creates the catalog service. The dispatcher is constructed once
// per process and injected here; it is the service's only coupling to the
// notification path.
func NewService(repo Repository, dispatcher Dispatcher, logger *zap.Logger) Service {
	return &service{repo: repo, dispatcher: dispatcher, logger: logger}
}

func (s *service) Create(ctx context.Context, params CreateParams) (*Book, error) {
	if !isValidISBN(params.ISBN) {
		return nil, ErrInvalidISBN
	}
	if params.Status != "" && !params.Status.Valid() {
		return nil, ErrInvalidStatus
	}

	// Uniqueness among live books. The repository translates the database
	// constraint violation to the same error for racing creates.
	if err := s.checkISBNFree(ctx, params.ISBN, 0); err != nil {
		return nil, err
	}

	b := NewBook(params.Title, params.Author, params.ISBN, params.PublishedYear, params.Status)
	if err := s.repo.Create(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *service) GetByID(ctx context.Context, id uint) (*Book, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *service) List(ctx context.Context, params ListParams) ([]*Book, int64, error) {
	return s.repo.List(ctx, params)
}

func (s *service) Search(ctx context.Context, params SearchParams) ([]*Book, int64, error) {
	return s.repo.Search(ctx, params)
}

// Update applies a partial field set. The pre-update status is captured
// first; when the transition is exactly Borrowed->Available a notification
// job is enqueued after the row update. The enqueue is a separate
// transaction from the mutation: a failure is logged and never surfaced to
// the caller.
func (s *service) Update(ctx context.Context, id uint, params UpdateParams) (*Book, error) {
	b, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	prevStatus := b.Status

	if params.ISBN != nil && *params.ISBN != b.ISBN {
		if !isValidISBN(*params.ISBN) {
			return nil, ErrInvalidISBN
		}
		if err := s.checkISBNFree(ctx, *params.ISBN, b.ID); err != nil {
			return nil, err
		}
	}
	if params.Status != nil && !params.Status.Valid() {
		return nil, ErrInvalidStatus
	}

	b.Apply(params)
	if err := s.repo.Update(ctx, b); err != nil {
		return nil, err
	}

	if prevStatus == StatusBorrowed && b.Status == StatusAvailable {
		if err := s.dispatcher.EnqueueBookAvailable(ctx, b.ID, b.Title); err != nil {
			s.logger.Error("failed to enqueue availability notification",
				zap.Uint("bookId", b.ID),
				zap.String("bookTitle", b.Title),
				zap.Error(err))
		}
	}

	return b, nil
}

func (s *service) Delete(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}

// checkISBNFree returns ErrISBNDuplicate when a live book other than selfID
// holds the ISBN.
func (s *service) checkISBNFree(ctx context.Context, isbn string, selfID uint) error {
	existing, err := s.repo.FindByISBN(ctx, isbn)
	if err != nil {
		if errors.Is(err, ErrBookNotFound) {
			return nil
		}
		return err
	}
	if existing.ID != selfID {
		return ErrISBNDuplicate
	}
	return nil
}

var isbnPattern = regexp.MustCompile(`^(\d{10}|\d{13})$`)

func isValidISBN(isbn string) bool {
	return isbnPattern.MatchString(isbn)
}

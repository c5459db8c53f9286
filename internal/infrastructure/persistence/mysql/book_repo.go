package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"libcatalog/internal/domain/book"
	apperrors "libcatalog/pkg/errors"
)

// bookRepository implements book.Repository over MySQL. It converts between
// the domain entity and the GORM model and translates driver errors into the
// domain error taxonomy. The soft-delete plugin filters deleted rows out of
// every query automatically.
type bookRepository struct {
	db *gorm.DB
}

// NewBookRepository creates the catalog store.
func NewBookRepository(db *gorm.DB) book.Repository {
	return &bookRepository{db: db}
}

func (r *bookRepository) Create(ctx context.Context, b *book.Book) error {
	model := toBookModel(b)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if isDuplicateError(err) {
			return book.ErrISBNDuplicate
		}
		return apperrors.Wrap(err, "Failed to create book")
	}
	b.ID = model.ID
	b.CreatedAt = model.CreatedAt
	b.UpdatedAt = model.UpdatedAt
	return nil
}

func (r *bookRepository) FindByID(ctx context.Context, id uint) (*book.Book, error) {
	var model BookModel
	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, book.ErrBookNotFound
		}
		return nil, apperrors.Wrap(err, "Failed to fetch book")
	}
	return toBookEntity(&model), nil
}

func (r *bookRepository) FindByISBN(ctx context.Context, isbn string) (*book.Book, error) {
	var model BookModel
	if err := r.db.WithContext(ctx).Where("isbn = ?", isbn).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, book.ErrBookNotFound
		}
		return nil, apperrors.Wrap(err, "Failed to fetch book")
	}
	return toBookEntity(&model), nil
}

func (r *bookRepository) Update(ctx context.Context, b *book.Book) error {
	model := toBookModel(b)
	model.CreatedAt = b.CreatedAt
	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		if isDuplicateError(err) {
			return book.ErrISBNDuplicate
		}
		return apperrors.Wrap(err, "Failed to update book")
	}
	b.UpdatedAt = model.UpdatedAt
	return nil
}

func (r *bookRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&BookModel{}, id)
	if result.Error != nil {
		return apperrors.Wrap(result.Error, "Failed to delete book")
	}
	if result.RowsAffected == 0 {
		return book.ErrBookNotFound
	}
	return nil
}

func (r *bookRepository) List(ctx context.Context, params book.ListParams) ([]*book.Book, int64, error) {
	query := r.db.WithContext(ctx).Model(&BookModel{})

	// MySQL's utf8mb4 collation makes LIKE case-insensitive.
	if params.Author != "" {
		query = query.Where("author LIKE ?", "%"+params.Author+"%")
	}
	if params.PublishedYear != 0 {
		query = query.Where("published_year = ?", params.PublishedYear)
	}

	return r.paginate(query, params.Page, params.Limit)
}

func (r *bookRepository) Search(ctx context.Context, params book.SearchParams) ([]*book.Book, int64, error) {
	pattern := "%" + params.Query + "%"
	query := r.db.WithContext(ctx).Model(&BookModel{}).
		Where("title LIKE ? OR author LIKE ?", pattern, pattern)

	return r.paginate(query, params.Page, params.Limit)
}

// paginate counts the filtered set, then fetches one page ordered by
// creation time descending (id breaks ties within one timestamp).
func (r *bookRepository) paginate(query *gorm.DB, page, limit int) ([]*book.Book, int64, error) {
	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, apperrors.Wrap(err, "Failed to count books")
	}

	var models []BookModel
	offset := (page - 1) * limit
	err := query.Order("created_at DESC, id DESC").Limit(limit).Offset(offset).Find(&models).Error
	if err != nil {
		return nil, 0, apperrors.Wrap(err, "Failed to list books")
	}

	books := make([]*book.Book, len(models))
	for i := range models {
		books[i] = toBookEntity(&models[i])
	}
	return books, total, nil
}

func toBookModel(b *book.Book) *BookModel {
	return &BookModel{
		ID:            b.ID,
		Title:         b.Title,
		Author:        b.Author,
		ISBN:          b.ISBN,
		PublishedYear: b.PublishedYear,
		Status:        string(b.Status),
	}
}

func toBookEntity(model *BookModel) *book.Book {
	return &book.Book{
		ID:            model.ID,
		Title:         model.Title,
		Author:        model.Author,
		ISBN:          model.ISBN,
		PublishedYear: model.PublishedYear,
		Status:        book.Status(model.Status),
		CreatedAt:     model.CreatedAt,
		UpdatedAt:     model.UpdatedAt,
	}
}

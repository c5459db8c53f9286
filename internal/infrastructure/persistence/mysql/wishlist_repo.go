package mysql

import (
	"context"

	"gorm.io/gorm"

	"libcatalog/internal/domain/wishlist"
	apperrors "libcatalog/pkg/errors"
)

// wishlistRepository implements wishlist.Repository over MySQL.
type wishlistRepository struct {
	db *gorm.DB
}

// NewWishlistRepository creates the wishlist store.
func NewWishlistRepository(db *gorm.DB) wishlist.Repository {
	return &wishlistRepository{db: db}
}

func (r *wishlistRepository) Create(ctx context.Context, e *wishlist.Entry) error {
	model := &WishlistModel{UserID: e.UserID, BookID: e.BookID}
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if isDuplicateError(err) {
			return wishlist.ErrAlreadyWishlisted
		}
		return apperrors.Wrap(err, "Failed to create wishlist entry")
	}
	e.ID = model.ID
	e.CreatedAt = model.CreatedAt
	return nil
}

func (r *wishlistRepository) ListByBookID(ctx context.Context, bookID uint) ([]*wishlist.Entry, error) {
	var models []WishlistModel
	err := r.db.WithContext(ctx).Where("book_id = ?", bookID).Order("id ASC").Find(&models).Error
	if err != nil {
		return nil, apperrors.Wrap(err, "Failed to load wishlist entries")
	}

	entries := make([]*wishlist.Entry, len(models))
	for i, m := range models {
		entries[i] = &wishlist.Entry{
			ID:        m.ID,
			UserID:    m.UserID,
			BookID:    m.BookID,
			CreatedAt: m.CreatedAt,
		}
	}
	return entries, nil
}

package notification

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"libcatalog/internal/domain/wishlist"
	"libcatalog/pkg/metrics"
)

// NotifyWishlistUseCase converts "book X became available" into one
// notification per wishlisting user. Delivery is a log record; re-running
// for the same book is safe and produces the same set again.
type NotifyWishlistUseCase struct {
	wishlists wishlist.Repository
	logger    *zap.Logger
}

// NewNotifyWishlistUseCase creates the fan-out use case.
func NewNotifyWishlistUseCase(wishlists wishlist.Repository, logger *zap.Logger) *NotifyWishlistUseCase {
	return &NotifyWishlistUseCase{wishlists: wishlists, logger: logger}
}

// NotifyWishlistResult is the worker's contract with the queue consumer.
type NotifyWishlistResult struct {
	Processed int    `json:"processed"`
	Message   string `json:"message"`
}

// Execute loads every wishlist entry for the book and emits one notification
// record per entry plus a summary record. A store failure propagates to the
// caller and counts as a failed job attempt.
func (uc *NotifyWishlistUseCase) Execute(ctx context.Context, bookID uint, title string) (*NotifyWishlistResult, error) {
	entries, err := uc.wishlists.ListByBookID(ctx, bookID)
	if err != nil {
		uc.logger.Error("failed to load wishlist entries",
			zap.Uint("bookId", bookID),
			zap.String("bookTitle", title),
			zap.Error(err),
			zap.Stack("stack"))
		return nil, err
	}

	for _, e := range entries {
		uc.logger.Info(
			fmt.Sprintf("Notification prepared for user_id: %d: Book [%s] is now available.", e.UserID, title),
			zap.Uint("userId", e.UserID),
			zap.Uint("bookId", e.BookID),
			zap.String("bookTitle", title))
		metrics.NotificationsPreparedTotal.Inc()
	}

	result := &NotifyWishlistResult{
		Processed: len(entries),
		Message:   fmt.Sprintf("Processed %d wishlist notifications for book: %s", len(entries), title),
	}
	uc.logger.Info(result.Message,
		zap.Uint("bookId", bookID),
		zap.String("bookTitle", title),
		zap.Int("processed", result.Processed))
	return result, nil
}

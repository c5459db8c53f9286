package queue

import (
	"context"
	"fmt"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"

	"libcatalog/internal/application/notification"
	"libcatalog/pkg/metrics"
)

// NotificationHandler consumes notification jobs. Exactly one invocation
// processes each attempt; a returned error hands the job back to the retry
// policy.
type NotificationHandler struct {
	notify *notification.NotifyWishlistUseCase
	logger *zap.Logger
}

// NewNotificationHandler creates the consumer-side handler.
func NewNotificationHandler(notify *notification.NotifyWishlistUseCase, logger *zap.Logger) *NotificationHandler {
	return &NotificationHandler{notify: notify, logger: logger}
}

// HandleBookAvailable processes one TypeBookAvailable attempt.
func (h *NotificationHandler) HandleBookAvailable(ctx context.Context, t *asynq.Task) error {
	payload, err := ParseBookAvailablePayload(t)
	if err != nil {
		// Malformed payloads cannot succeed on retry.
		return fmt.Errorf("%v: %w", err, asynq.SkipRetry)
	}

	result, err := h.notify.Execute(ctx, uint(payload.BookID), payload.BookTitle)
	if err != nil {
		return err
	}

	metrics.JobsProcessedTotal.WithLabelValues("completed").Inc()
	jobID, _ := asynq.GetTaskID(ctx)
	h.logger.Info("notification job completed",
		zap.String("jobId", jobID),
		zap.Uint64("bookId", uint64(payload.BookID)),
		zap.String("bookTitle", payload.BookTitle),
		zap.Int("processed", result.Processed))
	return nil
}

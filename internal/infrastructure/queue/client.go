package queue

import (
	"context"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"

	"libcatalog/internal/domain/book"
	"libcatalog/internal/infrastructure/config"
	apperrors "libcatalog/pkg/errors"
)

// Client is the dispatch side of the notification queue. It is constructed
// once per process with injected configuration and passed to the catalog
// service as a book.Dispatcher; the caller is never blocked on worker
// completion.
type Client struct {
	client *asynq.Client
	queue  config.QueueConfig
	logger *zap.Logger
}

// NewClient creates the dispatch client against the configured Redis
// instance.
func NewClient(cfg *config.Config, logger *zap.Logger) *Client {
	return &Client{
		client: asynq.NewClient(redisOpt(cfg)),
		queue:  cfg.Queue,
		logger: logger,
	}
}

// EnqueueBookAvailable enqueues one notification job. Jobs are not
// deduplicated: two calls for the same transition yield two jobs. Retries
// and backoff are handled by the queue, not here.
func (c *Client) EnqueueBookAvailable(ctx context.Context, bookID uint, title string) error {
	task, err := NewBookAvailableTask(bookID, title)
	if err != nil {
		return apperrors.Wrap(err, "Failed to build notification job")
	}

	info, err := c.client.EnqueueContext(ctx, task,
		asynq.Queue(c.queue.Name),
		asynq.MaxRetry(c.queue.MaxAttempts-1), // attempts = first run + retries
		asynq.Timeout(c.queue.TaskTimeout),
	)
	if err != nil {
		return apperrors.Wrap(err, "Failed to enqueue notification job")
	}

	c.logger.Info("notification job enqueued",
		zap.String("jobId", info.ID),
		zap.String("queue", info.Queue),
		zap.Uint("bookId", bookID),
		zap.String("bookTitle", title))
	return nil
}

// Close releases the underlying Redis connections.
func (c *Client) Close() error {
	return c.client.Close()
}

func redisOpt(cfg *config.Config) asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:         cfg.Redis.Addr(),
		Password:     cfg.Redis.Password,
		DB:           cfg.Redis.DB,
		PoolSize:     cfg.Redis.PoolSize,
		DialTimeout:  cfg.Redis.DialTimeout,
		ReadTimeout:  cfg.Redis.ReadTimeout,
		WriteTimeout: cfg.Redis.WriteTimeout,
	}
}

var _ book.Dispatcher = (*Client)(nil)

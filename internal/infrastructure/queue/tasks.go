package queue

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/hibiken/asynq"
)

// TypeBookAvailable identifies the "book became available" notification job.
const TypeBookAvailable = "notification:book_available"

// FlexID unmarshals from a JSON number or a numeric string, normalizing
// either form to an integer.
type FlexID uint64

// UnmarshalJSON accepts 42 and "42".
func (f *FlexID) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return fmt.Errorf("bookId must be numeric, got %s: %w", string(data), err)
	}
	*f = FlexID(n)
	return nil
}

// BookAvailablePayload is the job descriptor for TypeBookAvailable.
type BookAvailablePayload struct {
	BookID    FlexID `json:"bookId"`
	BookTitle string `json:"bookTitle"`
}

// NewBookAvailableTask builds the asynq task for a Borrowed->Available
// transition.
func NewBookAvailableTask(bookID uint, title string) (*asynq.Task, error) {
	payload, err := json.Marshal(BookAvailablePayload{BookID: FlexID(bookID), BookTitle: title})
	if err != nil {
		return nil, fmt.Errorf("marshal payload: %w", err)
	}
	return asynq.NewTask(TypeBookAvailable, payload), nil
}

// ParseBookAvailablePayload decodes and normalizes a task payload.
func ParseBookAvailablePayload(t *asynq.Task) (BookAvailablePayload, error) {
	var p BookAvailablePayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		return p, fmt.Errorf("unmarshal %s payload: %w", t.Type(), err)
	}
	return p, nil
}

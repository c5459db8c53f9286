// Package integration holds black-box HTTP tests against a running catalog
// API. Each test skips itself when the server is unreachable, so the package
// is safe to run in environments without the full stack.
package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

const defaultBaseURL = "http://localhost:8080"

// Timeout bounds every request made by the helpers.
const Timeout = 10 * time.Second

// BaseURL returns the API root, overridable with CATALOG_API_URL.
func BaseURL() string {
	if url := os.Getenv("CATALOG_API_URL"); url != "" {
		return url
	}
	return defaultBaseURL
}

// Response mirrors the API envelope with Data left raw for per-test decoding.
type Response struct {
	Success    bool            `json:"success"`
	Message    string          `json:"message"`
	Data       json.RawMessage `json:"data"`
	Pagination *Pagination     `json:"pagination"`
	Errors     []FieldError    `json:"errors"`
}

// Pagination is the envelope's paging metadata block.
type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
}

// FieldError is one entry of the envelope's validation detail.
type FieldError struct {
	Field   string      `json:"field"`
	Message string      `json:"message"`
	Value   interface{} `json:"value"`
}

// BookData is the book record as rendered by the API.
type BookData struct {
	ID                 uint   `json:"id"`
	Title              string `json:"title"`
	Author             string `json:"author"`
	ISBN               string `json:"isbn"`
	PublishedYear      int    `json:"publishedYear"`
	AvailabilityStatus string `json:"availabilityStatus"`
	CreatedAt          string `json:"createdAt"`
	UpdatedAt          string `json:"updatedAt"`
}

// RequireServer skips the test when the API is not reachable.
func RequireServer(t *testing.T) {
	t.Helper()
	client := &http.Client{Timeout: 2 * time.Second}
	resp, err := client.Get(BaseURL() + "/health")
	if err != nil {
		t.Skipf("catalog API not reachable at %s: %v", BaseURL(), err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Skipf("catalog API health returned %d", resp.StatusCode)
	}
}

// DoJSON sends one request with an optional JSON body and decodes the
// envelope.
func DoJSON(t *testing.T, method, url string, data interface{}) (int, *Response) {
	t.Helper()

	var body io.Reader
	if data != nil {
		raw, err := json.Marshal(data)
		require.NoError(t, err, "marshal request body")
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, url, body)
	require.NoError(t, err, "build request")
	req.Header.Set("Content-Type", "application/json")

	client := &http.Client{Timeout: Timeout}
	resp, err := client.Do(req)
	require.NoError(t, err, "send request")
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err, "read response body")

	var envelope Response
	require.NoError(t, json.Unmarshal(raw, &envelope), "decode envelope: %s", string(raw))
	return resp.StatusCode, &envelope
}

// GenerateTestISBN yields a unique 13-digit ISBN so repeated runs never
// collide on the uniqueness constraint.
func GenerateTestISBN() string {
	return fmt.Sprintf("978%010d", time.Now().UnixNano()%10000000000)
}

// CreateTestBook creates a book through the API and returns its record.
func CreateTestBook(t *testing.T, title, status string) BookData {
	t.Helper()

	body := map[string]interface{}{
		"title":         title,
		"author":        "Integration Author",
		"isbn":          GenerateTestISBN(),
		"publishedYear": 2020,
	}
	if status != "" {
		body["availabilityStatus"] = status
	}

	code, envelope := DoJSON(t, http.MethodPost, BaseURL()+"/books", body)
	require.Equal(t, http.StatusCreated, code, "create failed: %s", envelope.Message)

	var book BookData
	require.NoError(t, json.Unmarshal(envelope.Data, &book))
	require.NotZero(t, book.ID)
	return book
}

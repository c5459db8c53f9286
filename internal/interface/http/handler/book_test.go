package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appbook "libcatalog/internal/application/book"
	"libcatalog/internal/domain/book"
	apperrors "libcatalog/pkg/errors"
	"libcatalog/pkg/response"
	"libcatalog/pkg/validator"
)

// stubService is an in-memory book.Service for routing and rendering tests.
// Validation behavior under test lives in the binding layer, not here.
type stubService struct {
	books  map[uint]*book.Book
	nextID uint
}

func newStubService() *stubService {
	return &stubService{books: map[uint]*book.Book{}, nextID: 1}
}

func (s *stubService) Create(_ context.Context, p book.CreateParams) (*book.Book, error) {
	for _, b := range s.books {
		if b.ISBN == p.ISBN {
			return nil, book.ErrISBNDuplicate
		}
	}
	b := book.NewBook(p.Title, p.Author, p.ISBN, p.PublishedYear, p.Status)
	b.ID = s.nextID
	s.nextID++
	s.books[b.ID] = b
	return b, nil
}

func (s *stubService) GetByID(_ context.Context, id uint) (*book.Book, error) {
	b, ok := s.books[id]
	if !ok {
		return nil, book.ErrBookNotFound
	}
	return b, nil
}

func (s *stubService) List(_ context.Context, _ book.ListParams) ([]*book.Book, int64, error) {
	out := make([]*book.Book, 0, len(s.books))
	for _, b := range s.books {
		out = append(out, b)
	}
	return out, int64(len(out)), nil
}

func (s *stubService) Search(_ context.Context, _ book.SearchParams) ([]*book.Book, int64, error) {
	return nil, 0, nil
}

func (s *stubService) Update(_ context.Context, id uint, p book.UpdateParams) (*book.Book, error) {
	b, ok := s.books[id]
	if !ok {
		return nil, book.ErrBookNotFound
	}
	b.Apply(p)
	return b, nil
}

func (s *stubService) Delete(_ context.Context, id uint) error {
	if _, ok := s.books[id]; !ok {
		return book.ErrBookNotFound
	}
	delete(s.books, id)
	return nil
}

func setupRouter(t *testing.T) (*gin.Engine, *stubService) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	require.NoError(t, validator.Register())

	svc := newStubService()
	h := NewBookHandler(
		appbook.NewCreateBookUseCase(svc),
		appbook.NewGetBookUseCase(svc),
		appbook.NewListBooksUseCase(svc),
		appbook.NewSearchBooksUseCase(svc),
		appbook.NewUpdateBookUseCase(svc),
		appbook.NewDeleteBookUseCase(svc),
	)

	r := gin.New()
	books := r.Group("/books")
	{
		books.POST("", h.CreateBook)
		books.GET("", h.ListBooks)
		books.GET("/search", h.SearchBooks)
		books.GET("/:id", h.GetBook)
		books.PUT("/:id", h.UpdateBook)
		books.DELETE("/:id", h.DeleteBook)
	}
	return r, svc
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) (*httptest.ResponseRecorder, response.Response) {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var envelope response.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	return w, envelope
}

func TestCreateBookHandler(t *testing.T) {
	r, _ := setupRouter(t)

	w, envelope := doJSON(t, r, http.MethodPost, "/books", gin.H{
		"title":         "1984",
		"author":        "George Orwell",
		"isbn":          "9780451524935",
		"publishedYear": 1949,
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.True(t, envelope.Success)
	assert.Equal(t, "Book created successfully", envelope.Message)

	data, ok := envelope.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "1984", data["title"])
	assert.Equal(t, "Available", data["availabilityStatus"], "status defaults to Available")
	assert.NotZero(t, data["id"])
}

func TestCreateBookValidationErrors(t *testing.T) {
	r, _ := setupRouter(t)

	w, envelope := doJSON(t, r, http.MethodPost, "/books", gin.H{
		"title":         "",
		"author":        "George Orwell",
		"isbn":          "not-an-isbn",
		"publishedYear": 999,
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, envelope.Success)
	assert.Equal(t, "Validation failed", envelope.Message)

	fields := make(map[string]apperrors.FieldError, len(envelope.Errors))
	for _, fe := range envelope.Errors {
		fields[fe.Field] = fe
	}
	assert.Contains(t, fields, "title", "every failing field is enumerated")
	assert.Contains(t, fields, "isbn")
	assert.Contains(t, fields, "publishedYear")
}

func TestCreateBookDuplicateISBN(t *testing.T) {
	r, _ := setupRouter(t)

	body := gin.H{"title": "1984", "author": "George Orwell", "isbn": "9780451524935", "publishedYear": 1949}
	w, _ := doJSON(t, r, http.MethodPost, "/books", body)
	require.Equal(t, http.StatusCreated, w.Code)

	w, envelope := doJSON(t, r, http.MethodPost, "/books", body)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.False(t, envelope.Success)
	assert.Equal(t, "A book with this ISBN already exists", envelope.Message)
}

func TestGetBookNotFound(t *testing.T) {
	r, _ := setupRouter(t)

	w, envelope := doJSON(t, r, http.MethodGet, "/books/42", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.False(t, envelope.Success)
	assert.Equal(t, "Book not found", envelope.Message)
}

func TestGetBookInvalidID(t *testing.T) {
	r, _ := setupRouter(t)

	for _, path := range []string{"/books/abc", "/books/0", "/books/-1"} {
		w, envelope := doJSON(t, r, http.MethodGet, path, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code, "path %s", path)
		assert.False(t, envelope.Success)
	}
}

func TestListBooksPagination(t *testing.T) {
	r, svc := setupRouter(t)
	svc.books[1] = &book.Book{ID: 1, Title: "a", Author: "a", ISBN: "1111111111", Status: book.StatusAvailable}
	svc.books[2] = &book.Book{ID: 2, Title: "b", Author: "b", ISBN: "2222222222", Status: book.StatusAvailable}
	svc.nextID = 3

	w, envelope := doJSON(t, r, http.MethodGet, "/books", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, envelope.Success)
	require.NotNil(t, envelope.Pagination)
	assert.Equal(t, 1, envelope.Pagination.Page)
	assert.Equal(t, 10, envelope.Pagination.Limit)
	assert.Equal(t, int64(2), envelope.Pagination.Total)
	assert.Equal(t, 1, envelope.Pagination.TotalPages)
}

func TestListBooksInvalidQuery(t *testing.T) {
	r, _ := setupRouter(t)

	w, envelope := doJSON(t, r, http.MethodGet, "/books?limit=500", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, envelope.Success)
	assert.Equal(t, "Invalid query parameters", envelope.Message)
}

func TestSearchBooksRequiresQuery(t *testing.T) {
	r, _ := setupRouter(t)

	w, envelope := doJSON(t, r, http.MethodGet, "/books/search", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, envelope.Success)
	assert.Equal(t, "Search query is required", envelope.Message)
	require.NotEmpty(t, envelope.Errors)
	assert.Equal(t, "q", envelope.Errors[0].Field)
}

func TestSearchBooksEmptyResult(t *testing.T) {
	r, _ := setupRouter(t)

	w, envelope := doJSON(t, r, http.MethodGet, "/books/search?q=nothing", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, envelope.Success)
	data, ok := envelope.Data.([]interface{})
	require.True(t, ok, "data is an array even when empty")
	assert.Empty(t, data)
	require.NotNil(t, envelope.Pagination)
	assert.Equal(t, int64(0), envelope.Pagination.Total)
	assert.Equal(t, 0, envelope.Pagination.TotalPages)
}

func TestUpdateBookPartial(t *testing.T) {
	r, svc := setupRouter(t)
	svc.books[1] = &book.Book{ID: 1, Title: "1984", Author: "George Orwell", ISBN: "9780451524935", PublishedYear: 1949, Status: book.StatusBorrowed}
	svc.nextID = 2

	w, envelope := doJSON(t, r, http.MethodPut, "/books/1", gin.H{"availabilityStatus": "Available"})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, envelope.Success)
	data, ok := envelope.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "Available", data["availabilityStatus"])
	assert.Equal(t, "1984", data["title"], "omitted fields unchanged")
}

func TestUpdateBookNotFound(t *testing.T) {
	r, _ := setupRouter(t)

	w, envelope := doJSON(t, r, http.MethodPut, "/books/42", gin.H{"title": "x"})

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Book not found", envelope.Message)
}

func TestDeleteBook(t *testing.T) {
	r, svc := setupRouter(t)
	svc.books[1] = &book.Book{ID: 1, Title: "x", Author: "y", ISBN: "1111111111", Status: book.StatusAvailable}
	svc.nextID = 2

	w, envelope := doJSON(t, r, http.MethodDelete, "/books/1", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, envelope.Success)
	assert.Equal(t, "Book deleted successfully", envelope.Message)

	w, envelope = doJSON(t, r, http.MethodDelete, "/books/1", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Book not found", envelope.Message)
}

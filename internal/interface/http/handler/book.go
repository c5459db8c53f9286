package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	appbook "libcatalog/internal/application/book"
	"libcatalog/internal/interface/http/dto"
	apperrors "libcatalog/pkg/errors"
	"libcatalog/pkg/response"
	"libcatalog/pkg/validator"
)

// BookHandler translates wire parameters into catalog use-case calls and
// renders the results as envelope JSON.
type BookHandler struct {
	createBook  *appbook.CreateBookUseCase
	getBook     *appbook.GetBookUseCase
	listBooks   *appbook.ListBooksUseCase
	searchBooks *appbook.SearchBooksUseCase
	updateBook  *appbook.UpdateBookUseCase
	deleteBook  *appbook.DeleteBookUseCase
}

// NewBookHandler creates the handler.
func NewBookHandler(
	createBook *appbook.CreateBookUseCase,
	getBook *appbook.GetBookUseCase,
	listBooks *appbook.ListBooksUseCase,
	searchBooks *appbook.SearchBooksUseCase,
	updateBook *appbook.UpdateBookUseCase,
	deleteBook *appbook.DeleteBookUseCase,
) *BookHandler {
	return &BookHandler{
		createBook:  createBook,
		getBook:     getBook,
		listBooks:   listBooks,
		searchBooks: searchBooks,
		updateBook:  updateBook,
		deleteBook:  deleteBook,
	}
}

// CreateBook adds a book to the catalog.
// @Summary      Create book
// @Tags         books
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateBookRequest true "book"
// @Success      201 {object} response.Response
// @Failure      400 {object} response.Response "validation"
// @Failure      409 {object} response.Response "duplicate ISBN"
// @Router       /books [post]
func (h *BookHandler) CreateBook(c *gin.Context) {
	var req dto.CreateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "Validation failed", validator.Translate(err))
		return
	}

	result, err := h.createBook.Execute(c.Request.Context(), appbook.CreateBookRequest{
		Title:              req.Title,
		Author:             req.Author,
		ISBN:               req.ISBN,
		PublishedYear:      req.PublishedYear,
		AvailabilityStatus: req.AvailabilityStatus,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Book created successfully", result)
}

// GetBook reads a single book.
// @Summary      Get book by id
// @Tags         books
// @Produce      json
// @Param        id path int true "book id"
// @Success      200 {object} response.Response
// @Failure      404 {object} response.Response
// @Router       /books/{id} [get]
func (h *BookHandler) GetBook(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	result, err := h.getBook.Execute(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, "Book retrieved successfully", result)
}

// ListBooks pages through the catalog.
// @Summary      List books
// @Tags         books
// @Produce      json
// @Param        page query int false "page (default 1)"
// @Param        limit query int false "limit (1-100, default 10)"
// @Param        author query string false "author substring filter"
// @Param        publishedYear query int false "exact year filter"
// @Success      200 {object} response.Response
// @Failure      400 {object} response.Response
// @Router       /books [get]
func (h *BookHandler) ListBooks(c *gin.Context) {
	var q dto.ListBooksQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.ValidationError(c, "Invalid query parameters", validator.Translate(err))
		return
	}

	result, err := h.listBooks.Execute(c.Request.Context(), appbook.ListBooksRequest{
		Page:          q.Page,
		Limit:         q.Limit,
		Author:        q.Author,
		PublishedYear: q.PublishedYear,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessWithPage(c, "Books retrieved successfully", result.Books,
		response.NewPagination(result.Page, result.Limit, result.Total))
}

// SearchBooks matches q against title or author.
// @Summary      Search books
// @Tags         books
// @Produce      json
// @Param        q query string true "search query"
// @Param        page query int false "page (default 1)"
// @Param        limit query int false "limit (1-100, default 10)"
// @Success      200 {object} response.Response
// @Failure      400 {object} response.Response "missing q"
// @Router       /books/search [get]
func (h *BookHandler) SearchBooks(c *gin.Context) {
	var q dto.SearchBooksQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.ValidationError(c, "Search query is required", validator.Translate(err))
		return
	}

	result, err := h.searchBooks.Execute(c.Request.Context(), appbook.SearchBooksRequest{
		Query: q.Q,
		Page:  q.Page,
		Limit: q.Limit,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessWithPage(c, "Search results retrieved successfully", result.Books,
		response.NewPagination(result.Page, result.Limit, result.Total))
}

// UpdateBook applies a partial update.
// @Summary      Update book
// @Tags         books
// @Accept       json
// @Produce      json
// @Param        id path int true "book id"
// @Param        request body dto.UpdateBookRequest true "fields to update"
// @Success      200 {object} response.Response
// @Failure      400 {object} response.Response
// @Failure      404 {object} response.Response
// @Failure      409 {object} response.Response
// @Router       /books/{id} [put]
func (h *BookHandler) UpdateBook(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req dto.UpdateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "Validation failed", validator.Translate(err))
		return
	}

	result, err := h.updateBook.Execute(c.Request.Context(), id, appbook.UpdateBookRequest{
		Title:              req.Title,
		Author:             req.Author,
		ISBN:               req.ISBN,
		PublishedYear:      req.PublishedYear,
		AvailabilityStatus: req.AvailabilityStatus,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, "Book updated successfully", result)
}

// DeleteBook soft-deletes a book.
// @Summary      Delete book
// @Tags         books
// @Produce      json
// @Param        id path int true "book id"
// @Success      200 {object} response.Response
// @Failure      404 {object} response.Response
// @Router       /books/{id} [delete]
func (h *BookHandler) DeleteBook(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.deleteBook.Execute(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, "Book deleted successfully", nil)
}

func parseID(c *gin.Context) (uint, bool) {
	raw := c.Param("id")
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		response.ValidationError(c, "Invalid book id", []apperrors.FieldError{
			{Field: "id", Message: "id must be a positive integer", Value: raw},
		})
		return 0, false
	}
	return uint(id), true
}

package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "libcatalog/pkg/errors"
)

func TestNewPagination(t *testing.T) {
	tests := []struct {
		name      string
		limit     int
		total     int64
		wantPages int
	}{
		{"exact multiple", 10, 40, 4},
		{"remainder rounds up", 10, 42, 5},
		{"single partial page", 10, 3, 1},
		{"empty", 10, 0, 0},
		{"limit one", 1, 7, 7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPagination(2, tt.limit, tt.total)
			assert.Equal(t, 2, p.Page)
			assert.Equal(t, tt.limit, p.Limit)
			assert.Equal(t, tt.total, p.Total)
			assert.Equal(t, tt.wantPages, p.TotalPages)
		})
	}
}

func TestNewPaginationGuardsZeroLimit(t *testing.T) {
	p := NewPagination(1, 0, 7)
	assert.Equal(t, 1, p.Limit)
	assert.Equal(t, 7, p.TotalPages)
}

func record(handler gin.HandlerFunc) (*httptest.ResponseRecorder, Response) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/books", nil)
	handler(c)

	var envelope Response
	_ = json.Unmarshal(w.Body.Bytes(), &envelope)
	return w, envelope
}

func TestSuccess(t *testing.T) {
	w, envelope := record(func(c *gin.Context) {
		Success(c, "ok", gin.H{"id": 1})
	})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, envelope.Success)
	assert.Equal(t, "ok", envelope.Message)
	assert.NotNil(t, envelope.Data)
}

func TestCreated(t *testing.T) {
	w, envelope := record(func(c *gin.Context) {
		Created(c, "made", nil)
	})
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.True(t, envelope.Success)
}

func TestErrorUsesAppErrorStatus(t *testing.T) {
	w, envelope := record(func(c *gin.Context) {
		Error(c, apperrors.NewNotFound("Book not found"))
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.False(t, envelope.Success)
	assert.Equal(t, "Book not found", envelope.Message)
	assert.Empty(t, envelope.Error, "internal detail hidden outside debug mode")
}

func TestErrorWrapsUnknownAsInternal(t *testing.T) {
	w, envelope := record(func(c *gin.Context) {
		Error(c, errors.New("dial tcp: refused"))
	})
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.False(t, envelope.Success)
	assert.Equal(t, "Internal server error", envelope.Message)
}

func TestValidationErrorEnumeratesFields(t *testing.T) {
	fields := []apperrors.FieldError{
		{Field: "title", Message: "title is required"},
		{Field: "isbn", Message: "isbn must be exactly 10 or 13 digits", Value: "xyz"},
	}
	w, envelope := record(func(c *gin.Context) {
		ValidationError(c, "Validation failed", fields)
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, envelope.Success)
	require.Len(t, envelope.Errors, 2)
	assert.Equal(t, "title", envelope.Errors[0].Field)
	assert.Equal(t, "xyz", envelope.Errors[1].Value)
}

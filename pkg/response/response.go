package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	apperrors "libcatalog/pkg/errors"
)

// LoggerKey is the gin context key under which the request middleware stores
// its request-scoped *zap.Logger, so the error boundary can log with the
// request id attached.
const LoggerKey = "logger"

// Response is the envelope every endpoint renders, success or failure.
type Response struct {
	Success    bool                    `json:"success"`
	Message    string                  `json:"message"`
	Data       interface{}             `json:"data,omitempty"`
	Pagination *Pagination             `json:"pagination,omitempty"`
	Errors     []apperrors.FieldError  `json:"errors,omitempty"`
	Error      string                  `json:"error,omitempty"` // internal detail, debug builds only
}

// Pagination is the paging metadata block.
type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
}

// NewPagination computes totalPages = ceil(total/limit). A limit below 1 is
// treated as 1.
func NewPagination(page, limit int, total int64) *Pagination {
	if limit < 1 {
		limit = 1
	}
	totalPages := int(total) / limit
	if int(total)%limit != 0 {
		totalPages++
	}
	return &Pagination{Page: page, Limit: limit, Total: total, TotalPages: totalPages}
}

// Success renders a 200 envelope.
func Success(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusOK, Response{Success: true, Message: message, Data: data})
}

// Created renders a 201 envelope.
func Created(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusCreated, Response{Success: true, Message: message, Data: data})
}

// SuccessWithPage renders a 200 envelope with pagination metadata.
func SuccessWithPage(c *gin.Context, message string, data interface{}, p *Pagination) {
	c.JSON(http.StatusOK, Response{Success: true, Message: message, Data: data, Pagination: p})
}

// Error is the single render boundary for failures. It extracts the AppError
// (wrapping unknown errors as 500), logs 4xx at warn and 5xx at error, and
// renders the envelope with the error's HTTP status.
func Error(c *gin.Context, err error) {
	appErr := apperrors.GetAppError(err)

	lg := loggerFrom(c)
	fields := []zap.Field{
		zap.Int("status", appErr.Status),
		zap.String("path", c.Request.URL.Path),
	}
	if appErr.Err != nil {
		fields = append(fields, zap.Error(appErr.Err))
	}
	if appErr.Status >= http.StatusInternalServerError {
		lg.Error(appErr.Message, fields...)
	} else {
		lg.Warn(appErr.Message, fields...)
	}

	resp := Response{Success: false, Message: appErr.Message, Errors: appErr.Fields}
	if gin.IsDebugging() && appErr.Err != nil {
		resp.Error = appErr.Err.Error()
	}
	c.JSON(appErr.Status, resp)
}

// ValidationError renders a 400 envelope enumerating every failing field.
func ValidationError(c *gin.Context, message string, fields []apperrors.FieldError) {
	Error(c, apperrors.NewValidation(message, fields))
}

func loggerFrom(c *gin.Context) *zap.Logger {
	if v, ok := c.Get(LoggerKey); ok {
		if lg, ok := v.(*zap.Logger); ok {
			return lg
		}
	}
	return zap.L()
}

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"libcatalog/internal/infrastructure/config"
)

func corsRouter(cfg config.CORSConfig) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(CORS(cfg))
	r.GET("/books", func(c *gin.Context) { c.Status(http.StatusOK) })
	return r
}

func doCORS(r *gin.Engine, method, origin string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, "/books", nil)
	if origin != "" {
		req.Header.Set("Origin", origin)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCORSAllowedOrigin(t *testing.T) {
	r := corsRouter(config.CORSConfig{
		Enabled:       true,
		AllowOrigins:  []string{"http://localhost:3000"},
		AllowMethods:  []string{"GET", "POST"},
		AllowHeaders:  []string{"Content-Type"},
		MaxAgeSeconds: 3600,
	})

	w := doCORS(r, http.MethodGet, "http://localhost:3000")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "GET, POST", w.Header().Get("Access-Control-Allow-Methods"))
	assert.Equal(t, "3600", w.Header().Get("Access-Control-Max-Age"))
}

func TestCORSWildcard(t *testing.T) {
	r := corsRouter(config.CORSConfig{Enabled: true, AllowOrigins: []string{"*"}})

	w := doCORS(r, http.MethodGet, "http://anywhere.example")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORSRejectsUnknownOrigin(t *testing.T) {
	r := corsRouter(config.CORSConfig{Enabled: true, AllowOrigins: []string{"http://localhost:3000"}})

	w := doCORS(r, http.MethodGet, "http://evil.example")
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestCORSPreflight(t *testing.T) {
	r := corsRouter(config.CORSConfig{
		Enabled:      true,
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "PUT", "DELETE"},
	})
	r.OPTIONS("/books", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := doCORS(r, http.MethodOptions, "http://localhost:3000")
	assert.Equal(t, http.StatusNoContent, w.Code, "preflight short-circuits before the handler")
	assert.Equal(t, "GET, PUT, DELETE", w.Header().Get("Access-Control-Allow-Methods"))
}

func TestCORSDisabled(t *testing.T) {
	r := corsRouter(config.CORSConfig{Enabled: false})

	w := doCORS(r, http.MethodGet, "http://anywhere.example")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORSNoOriginHeader(t *testing.T) {
	r := corsRouter(config.CORSConfig{Enabled: true, AllowOrigins: []string{"http://localhost:3000"}})

	// Same-origin and non-browser clients send no Origin; they pass through.
	w := doCORS(r, http.MethodGet, "")
	assert.Equal(t, http.StatusOK, w.Code)
}

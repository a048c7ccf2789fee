package middleware_test

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"blogcraft/internal/logger"
	"blogcraft/internal/middleware"
)

func TestCORS_AllowsAnyOrigin(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(middleware.CORS([]string{"*"}))
	router.GET("/api/blogs", func(c *gin.Context) {
		c.JSON(http.StatusOK, []string{})
	})

	req := httptest.NewRequest(http.MethodGet, "/api/blogs", nil)
	req.Header.Set("Origin", "http://localhost:8080")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORS_Preflight(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(middleware.CORS([]string{"*"}))
	router.POST("/api/blogs/publish", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodOptions, "/api/blogs/publish", nil)
	req.Header.Set("Origin", "https://editor.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	req.Header.Set("Access-Control-Request-Headers", "Content-Type")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), "POST")
}

func TestCORS_RestrictedOrigins(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(middleware.CORS([]string{"https://editor.example.com"}))
	router.GET("/api/blogs", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	allowed := httptest.NewRequest(http.MethodGet, "/api/blogs", nil)
	allowed.Header.Set("Origin", "https://editor.example.com")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, allowed)
	assert.Equal(t, "https://editor.example.com", w.Header().Get("Access-Control-Allow-Origin"))

	denied := httptest.NewRequest(http.MethodGet, "/api/blogs", nil)
	denied.Header.Set("Origin", "https://evil.example.com")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, denied)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestAccessLog(t *testing.T) {
	gin.SetMode(gin.TestMode)

	previous := logger.GetLogger()
	t.Cleanup(func() { logger.SetLogger(previous) })
	var buf bytes.Buffer
	logger.SetLogger(logger.New(&buf, slog.LevelInfo))

	router := gin.New()
	router.Use(middleware.RequestID(), middleware.AccessLog())
	router.GET("/api/blogs/:id", func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Blog not found"})
	})

	req := httptest.NewRequest(http.MethodGet, "/api/blogs/5", nil)
	req.Header.Set(middleware.RequestIDHeader, "req-log-1")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	output := buf.String()
	assert.Contains(t, output, `"level":"WARN"`)
	assert.Contains(t, output, `"request_id":"req-log-1"`)
	assert.Contains(t, output, `"path":"/api/blogs/5"`)
	assert.Contains(t, output, `"status":404`)
}

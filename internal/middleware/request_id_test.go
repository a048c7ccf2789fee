package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"blogcraft/internal/logger"
	"blogcraft/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRequestIDRouter(handler gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(middleware.RequestID())
	router.GET("/test", handler)
	return router
}

func TestRequestID_GeneratesNewID(t *testing.T) {
	router := newRequestIDRouter(func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"request_id": middleware.GetRequestID(c)})
	})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	requestID := w.Header().Get(middleware.RequestIDHeader)
	assert.Len(t, requestID, 36)
	assert.Contains(t, w.Body.String(), requestID)
}

func TestRequestID_UsesClientProvidedID(t *testing.T) {
	router := newRequestIDRouter(func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	clientRequestID := "client-provided-id-12345"
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set(middleware.RequestIDHeader, clientRequestID)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, clientRequestID, w.Header().Get(middleware.RequestIDHeader))
}

func TestRequestID_ReplacesOversizedClientID(t *testing.T) {
	router := newRequestIDRouter(func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set(middleware.RequestIDHeader, strings.Repeat("x", 500))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Len(t, w.Header().Get(middleware.RequestIDHeader), 36)
}

func TestRequestID_AvailableOnRequestContext(t *testing.T) {
	var fromGin, fromCtx string
	router := newRequestIDRouter(func(c *gin.Context) {
		fromGin = middleware.GetRequestID(c)
		fromCtx = logger.RequestIDFromContext(c.Request.Context())
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.NotEmpty(t, fromGin)
	assert.Equal(t, fromGin, fromCtx)
}

func TestGetRequestID_ReturnsEmptyWhenNotSet(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	assert.Empty(t, middleware.GetRequestID(c))
}

func TestGetRequestID_ReturnsEmptyWhenWrongType(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	c.Set(middleware.RequestIDKey, 12345)

	assert.Empty(t, middleware.GetRequestID(c))
}

func TestRequestID_MultipleRequests_DifferentIDs(t *testing.T) {
	var requestIDs []string
	router := newRequestIDRouter(func(c *gin.Context) {
		requestIDs = append(requestIDs, middleware.GetRequestID(c))
		c.Status(http.StatusOK)
	})

	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		require.Equal(t, http.StatusOK, w.Code)
	}

	require.Len(t, requestIDs, 3)
	assert.NotEqual(t, requestIDs[0], requestIDs[1])
	assert.NotEqual(t, requestIDs[1], requestIDs[2])
	assert.NotEqual(t, requestIDs[0], requestIDs[2])
}

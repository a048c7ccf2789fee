package router_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"blogcraft/internal/domain"
	"blogcraft/internal/handler"
	"blogcraft/internal/middleware"
	"blogcraft/internal/mocks"
	"blogcraft/internal/router"
)

type okPinger struct{}

func (okPinger) Ping(context.Context) error { return nil }

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestRouter(t *testing.T) (*gin.Engine, *mocks.MockBlogServiceInterface, *mocks.MockUploadServiceInterface) {
	t.Helper()
	blogs := mocks.NewMockBlogServiceInterface(t)
	uploads := mocks.NewMockUploadServiceInterface(t)
	engine := router.New(router.Handlers{
		Blog:   handler.NewBlogHandler(blogs),
		Upload: handler.NewUploadHandler(uploads),
		Health: handler.NewHealthHandler(okPinger{}, t.TempDir()),
	}, router.Options{CORSAllowOrigins: []string{"*"}})
	return engine, blogs, uploads
}

func serve(engine *gin.Engine, method, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	req.Header.Set("Origin", "http://localhost:3000")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func TestRouter_BlogRoutes(t *testing.T) {
	engine, blogs, _ := newTestRouter(t)
	blogs.EXPECT().ListBlogs(mock.Anything).Return([]domain.Blog{}, nil)
	blogs.EXPECT().GetBlog(mock.Anything, int64(3)).Return(nil, domain.ErrBlogNotFound)
	blogs.EXPECT().DeleteBlog(mock.Anything, int64(3)).Return(nil)

	w := serve(engine, http.MethodGet, "/api/blogs")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))

	assert.Equal(t, http.StatusNotFound, serve(engine, http.MethodGet, "/api/blogs/3").Code)
	assert.Equal(t, http.StatusOK, serve(engine, http.MethodDelete, "/api/blogs/3").Code)
}

func TestRouter_UploadRoutes(t *testing.T) {
	engine, _, uploads := newTestRouter(t)
	uploads.EXPECT().Resolve("missing.png").Return("", domain.ErrUploadNotFound)

	assert.Equal(t, http.StatusNotFound, serve(engine, http.MethodGet, "/uploads/missing.png").Code)
	assert.Equal(t, http.StatusBadRequest, serve(engine, http.MethodPost, "/api/upload").Code)
}

func TestRouter_OperationalRoutes(t *testing.T) {
	engine, _, _ := newTestRouter(t)

	assert.Equal(t, http.StatusOK, serve(engine, http.MethodGet, "/health").Code)
	assert.Equal(t, http.StatusOK, serve(engine, http.MethodGet, "/ready").Code)
	assert.Equal(t, http.StatusOK, serve(engine, http.MethodGet, "/live").Code)

	serve(engine, http.MethodGet, "/live")
	w := serve(engine, http.MethodGet, "/metrics")
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.Contains(w.Body.String(), "blogcraft_http_requests_total"))
}

func TestRouter_UploadRateLimit(t *testing.T) {
	engine := router.New(router.Handlers{
		Blog:   handler.NewBlogHandler(mocks.NewMockBlogServiceInterface(t)),
		Upload: handler.NewUploadHandler(mocks.NewMockUploadServiceInterface(t)),
		Health: handler.NewHealthHandler(okPinger{}, t.TempDir()),
	}, router.Options{CORSAllowOrigins: []string{"*"}, UploadRatePerMinute: 1, UploadRateBurst: 1})

	assert.Equal(t, http.StatusBadRequest, serve(engine, http.MethodPost, "/api/upload").Code)
	assert.Equal(t, http.StatusTooManyRequests, serve(engine, http.MethodPost, "/api/upload").Code)
}

func TestRouter_UnknownRoute(t *testing.T) {
	engine, _, _ := newTestRouter(t)

	assert.Equal(t, http.StatusNotFound, serve(engine, http.MethodGet, "/api/nothing").Code)
}

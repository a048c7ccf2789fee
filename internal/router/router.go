package router

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"blogcraft/internal/handler"
	"blogcraft/internal/middleware"
)

// Handlers groups everything the router dispatches to.
type Handlers struct {
	Blog   *handler.BlogHandler
	Upload *handler.UploadHandler
	Health *handler.HealthHandler
}

// Options tunes the cross-cutting middleware.
type Options struct {
	CORSAllowOrigins []string
	// UploadRatePerMinute limits uploads per client IP; 0 disables it.
	UploadRatePerMinute int
	UploadRateBurst     int
}

// New builds the gin engine with middleware and all routes registered.
func New(h Handlers, opts Options) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(opts.CORSAllowOrigins))
	router.Use(middleware.Metrics("/metrics"))
	router.Use(middleware.AccessLog())
	router.Use(middleware.Compress(handler.UploadsPath+"/", "/metrics"))

	var uploadLimiter *middleware.ClientRateLimiter
	if opts.UploadRatePerMinute > 0 {
		uploadLimiter = middleware.NewClientRateLimiter(opts.UploadRatePerMinute, opts.UploadRateBurst)
	}

	// Health and metrics endpoints
	router.GET("/health", h.Health.Health)
	router.GET("/ready", h.Health.Ready)
	router.GET("/live", h.Health.Live)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group("/api")
	{
		blogs := api.Group("/blogs")
		{
			blogs.GET("", h.Blog.ListBlogs)
			blogs.GET("/:id", h.Blog.GetBlog)
			blogs.POST("/save-draft", h.Blog.SaveDraft)
			blogs.POST("/publish", h.Blog.Publish)
			blogs.DELETE("/:id", h.Blog.DeleteBlog)
		}

		api.POST("/upload", middleware.RateLimit(uploadLimiter), h.Upload.Upload)
	}

	router.GET(handler.UploadsPath+"/:filename", h.Upload.ServeUpload)

	return router
}

package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"blogcraft/internal/domain"
	"blogcraft/internal/service"
)

// BlogHandler handles blog-related HTTP requests.
type BlogHandler struct {
	blogService service.BlogServiceInterface
}

// NewBlogHandler creates a new BlogHandler.
func NewBlogHandler(blogService service.BlogServiceInterface) *BlogHandler {
	return &BlogHandler{
		blogService: blogService,
	}
}

// BlogResponse represents a blog in the API response.
type BlogResponse struct {
	ID        int64    `json:"id"`
	Title     string   `json:"title"`
	Content   string   `json:"content"`
	Tags      []string `json:"tags"`
	Status    string   `json:"status"`
	ImageURL  *string  `json:"image_url"`
	CreatedAt string   `json:"created_at"`
	UpdatedAt string   `json:"updated_at"`
}

// toBlogResponse converts a domain.Blog to a BlogResponse.
func toBlogResponse(b *domain.Blog) BlogResponse {
	tags := b.Tags
	if tags == nil {
		tags = []string{}
	}
	return BlogResponse{
		ID:        b.ID,
		Title:     b.Title,
		Content:   b.Content,
		Tags:      tags,
		Status:    string(b.Status),
		ImageURL:  b.ImageURL,
		CreatedAt: b.CreatedAt.Format(TimeFormat),
		UpdatedAt: b.UpdatedAt.Format(TimeFormat),
	}
}

// SaveBlogRequest is the body of save-draft and publish. A missing or null id
// creates a new blog.
type SaveBlogRequest struct {
	ID domain.Optional[*int64] `json:"id"`
	domain.BlogFields
}

// ToUpsert resolves the request into a create or an update.
func (r SaveBlogRequest) ToUpsert() domain.BlogUpsert {
	if r.ID.Value == nil {
		return domain.CreateBlog{Fields: r.BlogFields}
	}
	return domain.UpdateBlog{ID: *r.ID.Value, Fields: r.BlogFields}
}

// ListBlogs handles GET /api/blogs
func (h *BlogHandler) ListBlogs(c *gin.Context) {
	blogs, err := h.blogService.ListBlogs(c.Request.Context())
	if err != nil {
		respondError(c, err, "")
		return
	}

	response := make([]BlogResponse, 0, len(blogs))
	for i := range blogs {
		response = append(response, toBlogResponse(&blogs[i]))
	}
	c.JSON(http.StatusOK, response)
}

// GetBlog handles GET /api/blogs/:id
func (h *BlogHandler) GetBlog(c *gin.Context) {
	id, ok := blogID(c)
	if !ok {
		return
	}

	blog, err := h.blogService.GetBlog(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, MsgBlogNotFound)
		return
	}

	c.JSON(http.StatusOK, toBlogResponse(blog))
}

// SaveDraft handles POST /api/blogs/save-draft
func (h *BlogHandler) SaveDraft(c *gin.Context) {
	h.save(c, h.blogService.SaveDraft)
}

// Publish handles POST /api/blogs/publish
func (h *BlogHandler) Publish(c *gin.Context) {
	h.save(c, h.blogService.Publish)
}

func (h *BlogHandler) save(c *gin.Context, op func(context.Context, domain.BlogUpsert) (*domain.Blog, error)) {
	var req SaveBlogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, domain.ErrInvalidBody, "")
		return
	}

	blog, err := op(c.Request.Context(), req.ToUpsert())
	if err != nil {
		respondError(c, err, MsgBlogNotFound)
		return
	}

	c.JSON(http.StatusOK, toBlogResponse(blog))
}

// DeleteBlog handles DELETE /api/blogs/:id
func (h *BlogHandler) DeleteBlog(c *gin.Context) {
	id, ok := blogID(c)
	if !ok {
		return
	}

	if err := h.blogService.DeleteBlog(c.Request.Context(), id); err != nil {
		respondError(c, err, MsgBlogNotFound)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": MsgBlogDeleted})
}

// blogID parses the :id path parameter. Non-integer ids are answered with 404
// since no blog can carry them.
func blogID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: MsgBlogNotFound})
		return 0, false
	}
	return id, true
}

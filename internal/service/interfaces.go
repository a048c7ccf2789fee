package service

import (
	"context"
	"io"

	"blogcraft/internal/domain"
)

// BlogServiceInterface defines the interface for blog operations.
// Used for dependency injection and mocking in tests.
type BlogServiceInterface interface {
	// ListBlogs returns every blog, drafts included.
	ListBlogs(ctx context.Context) ([]domain.Blog, error)
	// GetBlog returns one blog or domain.ErrBlogNotFound.
	GetBlog(ctx context.Context, id int64) (*domain.Blog, error)
	// SaveDraft creates or updates a blog and forces its status to draft.
	SaveDraft(ctx context.Context, req domain.BlogUpsert) (*domain.Blog, error)
	// Publish creates or updates a blog and forces its status to published.
	Publish(ctx context.Context, req domain.BlogUpsert) (*domain.Blog, error)
	// DeleteBlog permanently removes a blog.
	DeleteBlog(ctx context.Context, id int64) error
}

// UploadServiceInterface defines the interface for image upload storage.
type UploadServiceInterface interface {
	// Save validates filename and stores src under a new unique name, which it returns.
	Save(ctx context.Context, filename string, src io.Reader) (string, error)
	// Resolve returns the path of a stored upload or domain.ErrUploadNotFound.
	Resolve(name string) (string, error)
}

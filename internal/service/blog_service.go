package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"blogcraft/internal/domain"
	"blogcraft/internal/logger"
	"blogcraft/internal/metrics"
	"blogcraft/internal/repository"
	"blogcraft/internal/validator"
)

// Operation names used in logs and metrics.
const (
	OperationSaveDraft = "save_draft"
	OperationPublish   = "publish"
	OperationDelete    = "delete"
)

// BlogService implements the blog use cases on top of a BlogRepository.
type BlogService struct {
	repo      repository.BlogRepository
	validator *validator.Validator
	now       func() time.Time
}

// BlogServiceOption customizes a BlogService.
type BlogServiceOption func(*BlogService)

// WithClock overrides the time source used for created_at/updated_at.
func WithClock(now func() time.Time) BlogServiceOption {
	return func(s *BlogService) {
		s.now = now
	}
}

// NewBlogService creates a new BlogService.
func NewBlogService(repo repository.BlogRepository, v *validator.Validator, opts ...BlogServiceOption) *BlogService {
	s := &BlogService{
		repo:      repo,
		validator: v,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ListBlogs returns every blog.
func (s *BlogService) ListBlogs(ctx context.Context) ([]domain.Blog, error) {
	blogs, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list blogs: %w", err)
	}
	return blogs, nil
}

// GetBlog returns a single blog.
func (s *BlogService) GetBlog(ctx context.Context, id int64) (*domain.Blog, error) {
	return s.repo.GetByID(ctx, id)
}

// SaveDraft creates or updates a blog with status draft.
func (s *BlogService) SaveDraft(ctx context.Context, req domain.BlogUpsert) (*domain.Blog, error) {
	return s.save(ctx, OperationSaveDraft, req, domain.BlogStatusDraft)
}

// Publish creates or updates a blog with status published.
func (s *BlogService) Publish(ctx context.Context, req domain.BlogUpsert) (*domain.Blog, error) {
	return s.save(ctx, OperationPublish, req, domain.BlogStatusPublished)
}

// DeleteBlog permanently removes a blog.
func (s *BlogService) DeleteBlog(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		metrics.ObserveBlogWrite(OperationDelete, "delete", resultOf(err))
		return err
	}
	metrics.ObserveBlogWrite(OperationDelete, "delete", metrics.ResultSuccess)
	logger.FromContext(ctx).Info("Blog deleted", slog.Int64("blog_id", id))
	return nil
}

// save resolves the upsert variant. Updates load the row first so absent
// fields keep their stored values; concurrent writers to one row race and the
// last one wins.
func (s *BlogService) save(ctx context.Context, operation string, req domain.BlogUpsert, status domain.BlogStatus) (*domain.Blog, error) {
	var (
		blog *domain.Blog
		kind string
		err  error
	)

	switch r := req.(type) {
	case domain.CreateBlog:
		kind = "create"
		blog, err = s.create(ctx, r, status)
	case domain.UpdateBlog:
		kind = "update"
		blog, err = s.update(ctx, r, status)
	default:
		return nil, fmt.Errorf("%s: unsupported request %T", operation, req)
	}

	metrics.ObserveBlogWrite(operation, kind, resultOf(err))
	if err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Info("Blog saved",
		slog.String("operation", operation),
		slog.String("kind", kind),
		slog.Int64("blog_id", blog.ID),
		slog.String("status", string(blog.Status)))
	return blog, nil
}

func (s *BlogService) create(ctx context.Context, req domain.CreateBlog, status domain.BlogStatus) (*domain.Blog, error) {
	if err := s.validator.ValidateBlogFields(req.Fields); err != nil {
		return nil, err
	}

	blog := domain.NewBlog(req.Fields, status, s.now().UTC())
	if err := s.repo.Create(ctx, blog); err != nil {
		return nil, fmt.Errorf("create blog: %w", err)
	}
	return blog, nil
}

func (s *BlogService) update(ctx context.Context, req domain.UpdateBlog, status domain.BlogStatus) (*domain.Blog, error) {
	if err := s.validator.ValidateBlogFields(req.Fields); err != nil {
		return nil, err
	}

	blog, err := s.repo.GetByID(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	blog.Apply(req.Fields, status, s.now().UTC())
	if err := s.repo.Update(ctx, blog); err != nil {
		return nil, err
	}
	return blog, nil
}

func resultOf(err error) string {
	switch {
	case err == nil:
		return metrics.ResultSuccess
	case domain.IsNotFound(err):
		return metrics.ResultNotFound
	default:
		if _, ok := domain.AsValidationError(err); ok {
			return metrics.ResultInvalid
		}
		return metrics.ResultError
	}
}

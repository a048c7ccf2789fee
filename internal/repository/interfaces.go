package repository

import (
	"context"

	"blogcraft/internal/domain"
)

// BlogRepository defines methods for blog data access.
// Missing rows are reported as domain.ErrBlogNotFound.
type BlogRepository interface {
	List(ctx context.Context) ([]domain.Blog, error)
	GetByID(ctx context.Context, id int64) (*domain.Blog, error)
	Create(ctx context.Context, blog *domain.Blog) error
	Update(ctx context.Context, blog *domain.Blog) error
	Delete(ctx context.Context, id int64) error
}

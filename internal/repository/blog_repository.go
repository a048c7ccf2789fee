package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"blogcraft/internal/domain"
)

const blogColumns = `id, title, content, tags, status, image_url, created_at, updated_at`

// PostgresBlogRepository implements BlogRepository using PostgreSQL.
type PostgresBlogRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresBlogRepository creates a new PostgresBlogRepository.
func NewPostgresBlogRepository(pool *pgxpool.Pool) *PostgresBlogRepository {
	return &PostgresBlogRepository{pool: pool}
}

// List returns every blog ordered by id.
func (r *PostgresBlogRepository) List(ctx context.Context) ([]domain.Blog, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+blogColumns+` FROM blogs ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("query blogs: %w", err)
	}
	defer rows.Close()

	blogs := make([]domain.Blog, 0)
	for rows.Next() {
		b, err := scanBlog(rows)
		if err != nil {
			return nil, fmt.Errorf("scan blog: %w", err)
		}
		blogs = append(blogs, *b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read blogs: %w", err)
	}
	return blogs, nil
}

// GetByID returns a single blog.
func (r *PostgresBlogRepository) GetByID(ctx context.Context, id int64) (*domain.Blog, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+blogColumns+` FROM blogs WHERE id = $1`, id)

	b, err := scanBlog(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("get blog %d: %w", id, domain.ErrBlogNotFound)
		}
		return nil, fmt.Errorf("get blog %d: %w", id, err)
	}
	return b, nil
}

// Create inserts blog and fills in the generated id and stored timestamps.
func (r *PostgresBlogRepository) Create(ctx context.Context, blog *domain.Blog) error {
	err := r.pool.QueryRow(ctx, `
		INSERT INTO blogs (title, content, tags, status, image_url, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at
	`,
		blog.Title, blog.Content, tagsArg(blog.Tags), string(blog.Status), blog.ImageURL,
		blog.CreatedAt, blog.UpdatedAt,
	).Scan(&blog.ID, &blog.CreatedAt, &blog.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert blog: %w", err)
	}
	return nil
}

// Update overwrites every mutable column of the row identified by blog.ID.
// created_at is never written.
func (r *PostgresBlogRepository) Update(ctx context.Context, blog *domain.Blog) error {
	err := r.pool.QueryRow(ctx, `
		UPDATE blogs
		SET title = $2, content = $3, tags = $4, status = $5, image_url = $6, updated_at = $7
		WHERE id = $1
		RETURNING created_at, updated_at
	`,
		blog.ID, blog.Title, blog.Content, tagsArg(blog.Tags), string(blog.Status), blog.ImageURL,
		blog.UpdatedAt,
	).Scan(&blog.CreatedAt, &blog.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("update blog %d: %w", blog.ID, domain.ErrBlogNotFound)
		}
		return fmt.Errorf("update blog %d: %w", blog.ID, err)
	}
	return nil
}

// Delete permanently removes a blog.
func (r *PostgresBlogRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM blogs WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete blog %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("delete blog %d: %w", id, domain.ErrBlogNotFound)
	}
	return nil
}

func scanBlog(row pgx.Row) (*domain.Blog, error) {
	var (
		b      domain.Blog
		status string
	)
	if err := row.Scan(&b.ID, &b.Title, &b.Content, &b.Tags, &status, &b.ImageURL, &b.CreatedAt, &b.UpdatedAt); err != nil {
		return nil, err
	}
	b.Status = domain.BlogStatus(status)
	if b.Tags == nil {
		b.Tags = []string{}
	}
	return &b, nil
}

// tagsArg keeps the column NOT NULL when a caller passes a nil slice.
func tagsArg(tags []string) []string {
	if tags == nil {
		return []string{}
	}
	return tags
}

package domain

import "time"

// BlogStatus is the publication state of a blog post.
type BlogStatus string

const (
	BlogStatusDraft     BlogStatus = "draft"
	BlogStatusPublished BlogStatus = "published"
)

// ValidStatuses contains all valid blog statuses.
var ValidStatuses = []BlogStatus{BlogStatusDraft, BlogStatusPublished}

// IsValidStatus checks if a status is valid.
func IsValidStatus(status BlogStatus) bool {
	for _, s := range ValidStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// Blog represents a blog post entity in the system.
type Blog struct {
	ID        int64
	Title     string
	Content   string
	Tags      []string
	Status    BlogStatus
	ImageURL  *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// BlogFields holds the writable attributes of a blog post as sent by a client.
// Each attribute is tracked as present or absent so updates only touch what was sent.
type BlogFields struct {
	Title    Optional[string]   `json:"title"`
	Content  Optional[string]   `json:"content"`
	Tags     Optional[[]string] `json:"tags"`
	ImageURL Optional[*string]  `json:"image_url"`
}

// BlogUpsert is either a CreateBlog or an UpdateBlog.
type BlogUpsert interface {
	blogFields() BlogFields
}

// CreateBlog creates a new row from the given fields.
type CreateBlog struct {
	Fields BlogFields
}

// UpdateBlog overwrites the present fields of the row identified by ID.
type UpdateBlog struct {
	ID     int64
	Fields BlogFields
}

func (c CreateBlog) blogFields() BlogFields { return c.Fields }
func (u UpdateBlog) blogFields() BlogFields { return u.Fields }

// FieldsOf returns the client-supplied fields of an upsert.
func FieldsOf(u BlogUpsert) BlogFields {
	return u.blogFields()
}

// NewBlog builds a blog from fields, defaulting absent text to "" and absent tags to empty.
func NewBlog(f BlogFields, status BlogStatus, now time.Time) *Blog {
	return &Blog{
		Title:     f.Title.OrElse(""),
		Content:   f.Content.OrElse(""),
		Tags:      normalizeTags(f.Tags.OrElse(nil)),
		Status:    status,
		ImageURL:  f.ImageURL.OrElse(nil),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Apply overwrites the present fields, forces status and refreshes UpdatedAt.
// UpdatedAt never moves before CreatedAt.
func (b *Blog) Apply(f BlogFields, status BlogStatus, now time.Time) {
	b.Title = f.Title.OrElse(b.Title)
	b.Content = f.Content.OrElse(b.Content)
	if f.Tags.Present {
		b.Tags = normalizeTags(f.Tags.Value)
	}
	b.ImageURL = f.ImageURL.OrElse(b.ImageURL)
	b.Status = status
	if now.Before(b.CreatedAt) {
		now = b.CreatedAt
	}
	b.UpdatedAt = now
}

func normalizeTags(tags []string) []string {
	if tags == nil {
		return []string{}
	}
	return tags
}

package handler

import "time"

// TimeFormat is the standard time format for API responses (RFC3339)
const TimeFormat = time.RFC3339

// Client-facing messages.
const (
	MsgBlogNotFound   = "Blog not found"
	MsgFileNotFound   = "File not found"
	MsgBlogDeleted    = "Blog deleted successfully"
	MsgInternalServer = "internal server error"
)

const (
	// UploadFormField is the multipart field carrying the image.
	UploadFormField = "image"
	// UploadsPath is the URL prefix under which stored uploads are served.
	UploadsPath = "/uploads"
)

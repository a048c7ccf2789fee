package handler

import (
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"

	"blogcraft/internal/domain"
	"blogcraft/internal/service"
)

// UploadHandler handles image upload and retrieval.
type UploadHandler struct {
	uploadService service.UploadServiceInterface
}

// NewUploadHandler creates a new UploadHandler.
func NewUploadHandler(uploadService service.UploadServiceInterface) *UploadHandler {
	return &UploadHandler{
		uploadService: uploadService,
	}
}

// UploadResponse is returned after a successful upload.
type UploadResponse struct {
	URL string `json:"url"`
}

// Upload handles POST /api/upload
func (h *UploadHandler) Upload(c *gin.Context) {
	file, header, err := c.Request.FormFile(UploadFormField)
	if err != nil {
		if isMissingUpload(err) {
			err = domain.ErrNoFile
		}
		respondError(c, err, MsgFileNotFound)
		return
	}
	defer file.Close()

	name, err := h.uploadService.Save(c.Request.Context(), header.Filename, file)
	if err != nil {
		respondError(c, err, MsgFileNotFound)
		return
	}

	c.JSON(http.StatusOK, UploadResponse{URL: publicURL(c.Request, name)})
}

// isMissingUpload reports whether a FormFile error means the client sent no
// file, as opposed to a body that failed to read.
func isMissingUpload(err error) bool {
	return errors.Is(err, http.ErrMissingFile) ||
		errors.Is(err, http.ErrNotMultipart) ||
		errors.Is(err, http.ErrMissingBoundary)
}

// ServeUpload handles GET /uploads/:filename
func (h *UploadHandler) ServeUpload(c *gin.Context) {
	path, err := h.uploadService.Resolve(c.Param("filename"))
	if err != nil {
		respondError(c, err, MsgFileNotFound)
		return
	}

	c.File(path)
}

// publicURL builds the absolute URL of a stored upload from the request's
// host. TLS or an X-Forwarded-Proto of https selects the https scheme.
func publicURL(r *http.Request, name string) string {
	scheme := "http"
	if r.TLS != nil || strings.EqualFold(r.Header.Get("X-Forwarded-Proto"), "https") {
		scheme = "https"
	}
	u := url.URL{
		Scheme: scheme,
		Host:   r.Host,
		Path:   UploadsPath + "/" + name,
	}
	return u.String()
}

package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"blogcraft/internal/domain"
	"blogcraft/internal/logger"
	"blogcraft/internal/metrics"
	"blogcraft/internal/validator"
)

const tempUploadPattern = ".upload-*"

// UploadService stores uploaded images as flat files in one directory.
type UploadService struct {
	dir       string
	validator *validator.Validator
	newName   func() string
}

// UploadServiceOption customizes an UploadService.
type UploadServiceOption func(*UploadService)

// WithNameGenerator overrides how the base of stored file names is chosen.
func WithNameGenerator(fn func() string) UploadServiceOption {
	return func(s *UploadService) {
		s.newName = fn
	}
}

// NewUploadService creates an UploadService rooted at dir, creating the
// directory if it does not exist.
func NewUploadService(dir string, v *validator.Validator, opts ...UploadServiceOption) (*UploadService, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload directory: %w", err)
	}

	s := &UploadService{
		dir:       dir,
		validator: v,
		newName:   func() string { return uuid.New().String() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Dir returns the upload directory.
func (s *UploadService) Dir() string {
	return s.dir
}

// Save stores src as <unique>.<ext> where ext is the lowercase extension of
// filename. The file becomes visible only once it is completely written.
func (s *UploadService) Save(ctx context.Context, filename string, src io.Reader) (string, error) {
	ext, err := s.validator.ValidateUploadFilename(filename)
	if err != nil {
		metrics.ObserveUpload("", metrics.ResultInvalid, 0)
		return "", err
	}

	if err := ctx.Err(); err != nil {
		metrics.ObserveUpload(ext, metrics.ResultError, 0)
		return "", err
	}

	name := s.newName() + "." + ext
	size, err := s.write(ctx, name, src)
	if err != nil {
		metrics.ObserveUpload(ext, metrics.ResultError, 0)
		logger.FromContext(ctx).Error("Failed to store upload",
			slog.String("filename", filename),
			slog.String("error", err.Error()))
		return "", err
	}

	metrics.ObserveUpload(ext, metrics.ResultSuccess, size)
	logger.FromContext(ctx).Info("Upload stored",
		slog.String("name", name),
		slog.Int64("bytes", size))
	return name, nil
}

func (s *UploadService) write(ctx context.Context, name string, src io.Reader) (int64, error) {
	tmp, err := os.CreateTemp(s.dir, tempUploadPattern)
	if err != nil {
		return 0, fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer func() {
		// no-op after a successful rename
		_ = os.Remove(tmpPath)
	}()

	size, err := io.Copy(tmp, src)
	if err != nil {
		tmp.Close()
		return 0, fmt.Errorf("write upload: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return 0, fmt.Errorf("close upload: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	if err := os.Rename(tmpPath, filepath.Join(s.dir, name)); err != nil {
		return 0, fmt.Errorf("finalize upload: %w", err)
	}
	return size, nil
}

// Resolve returns the on-disk path of a stored upload. Names that could
// escape the directory, hidden files and directories all resolve to
// domain.ErrUploadNotFound.
func (s *UploadService) Resolve(name string) (string, error) {
	if name == "" || strings.HasPrefix(name, ".") || strings.ContainsAny(name, "/\\\x00") {
		return "", domain.ErrUploadNotFound
	}

	path := filepath.Join(s.dir, name)
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", domain.ErrUploadNotFound
		}
		return "", fmt.Errorf("stat upload: %w", err)
	}
	if !info.Mode().IsRegular() {
		return "", domain.ErrUploadNotFound
	}
	return path, nil
}

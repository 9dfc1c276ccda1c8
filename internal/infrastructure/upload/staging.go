// Package upload stages multipart image uploads to local disk so they can be
// relayed to the external image host. Staged files are temporary by contract:
// the caller removes them once the batch has been relayed, success or failure.
package upload

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/devport/portfolio-api/internal/core/domain"
)

const (
	// MaxFileSize caps each uploaded file at 10MB.
	MaxFileSize = 10 << 20
	// MaxScreenshots caps the screenshots field; the thumbnail field takes one file.
	MaxScreenshots = 30

	// Multipart field names, fixed by the dashboard client.
	FieldThumbnail   = "thumbnailImg"
	FieldScreenshots = "screenshots"
)

var allowedExts = map[string]struct{}{
	".jpg":  {},
	".jpeg": {},
	".png":  {},
	".gif":  {},
	".jfif": {},
}

// sniffedTypes are the content types a staged file may actually be. A .jfif
// file sniffs as image/jpeg.
var sniffedTypes = []string{"image/jpeg", "image/png", "image/gif"}

// Stager validates incoming files and writes them to the staging directory.
type Stager struct {
	dir string
	log zerolog.Logger
}

func NewStager(dir string, log zerolog.Logger) (*Stager, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create staging dir: %w", err)
	}
	return &Stager{dir: dir, log: log}, nil
}

// Batch holds the staged files of one request.
type Batch struct {
	ThumbnailPath   string
	ScreenshotPaths []string

	staged []string
	log    zerolog.Logger
}

// StageBatch validates and stages every file in the form. On any failure the
// files staged so far are removed before the error is returned, so a failed
// batch never leaves staging residue behind.
func (s *Stager) StageBatch(form *multipart.Form) (*Batch, error) {
	b := &Batch{log: s.log}

	thumbs := form.File[FieldThumbnail]
	if len(thumbs) > 1 {
		return nil, fmt.Errorf("%w: at most one thumbnail allowed", domain.ErrInvalidFile)
	}
	shots := form.File[FieldScreenshots]
	if len(shots) > MaxScreenshots {
		return nil, fmt.Errorf("%w: at most %d screenshots allowed", domain.ErrInvalidFile, MaxScreenshots)
	}

	if len(thumbs) == 1 {
		path, err := s.Stage(thumbs[0])
		if err != nil {
			b.Cleanup()
			return nil, err
		}
		b.staged = append(b.staged, path)
		b.ThumbnailPath = path
	}

	for _, fh := range shots {
		path, err := s.Stage(fh)
		if err != nil {
			b.Cleanup()
			return nil, err
		}
		b.staged = append(b.staged, path)
		b.ScreenshotPaths = append(b.ScreenshotPaths, path)
	}

	return b, nil
}

// Stage validates a single file and copies it into the staging directory
// under a collision-free name. The file content is sniffed after the copy;
// a mismatch removes the staged copy again.
func (s *Stager) Stage(fh *multipart.FileHeader) (string, error) {
	if err := validateHeader(fh); err != nil {
		return "", err
	}

	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("%w: open upload: %v", domain.ErrUploadFailed, err)
	}
	defer src.Close()

	path := filepath.Join(s.dir, uuid.NewString()+strings.ToLower(filepath.Ext(fh.Filename)))
	dst, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("%w: create staging file: %v", domain.ErrUploadFailed, err)
	}

	_, err = io.Copy(dst, src)
	if cerr := dst.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		_ = os.Remove(path)
		return "", fmt.Errorf("%w: write staging file: %v", domain.ErrUploadFailed, err)
	}

	mt, err := mimetype.DetectFile(path)
	if err != nil || !isAllowedContent(mt) {
		_ = os.Remove(path)
		return "", fmt.Errorf("%w: images only (jpg, jpeg, png, gif, jfif)", domain.ErrInvalidFile)
	}

	return path, nil
}

// Cleanup removes every staged file of the batch. Safe to call more than once.
func (b *Batch) Cleanup() {
	for _, path := range b.staged {
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			b.log.Warn().Err(err).Str("path", path).Msg("failed to remove staging file")
		}
	}
	b.staged = nil
}

// validateHeader checks extension, declared content type, and size before
// any bytes are written to disk.
func validateHeader(fh *multipart.FileHeader) error {
	ext := strings.ToLower(filepath.Ext(fh.Filename))
	if _, ok := allowedExts[ext]; !ok {
		return fmt.Errorf("%w: images only (jpg, jpeg, png, gif, jfif)", domain.ErrInvalidFile)
	}

	declared := strings.ToLower(fh.Header.Get("Content-Type"))
	if !declaredTypeAllowed(declared) {
		return fmt.Errorf("%w: images only (jpg, jpeg, png, gif, jfif)", domain.ErrInvalidFile)
	}

	if fh.Size > MaxFileSize {
		return fmt.Errorf("%w: file exceeds the 10MB limit", domain.ErrInvalidFile)
	}
	return nil
}

func declaredTypeAllowed(declared string) bool {
	for _, kw := range []string{"jpeg", "jpg", "png", "gif", "jfif"} {
		if strings.Contains(declared, kw) {
			return true
		}
	}
	return false
}

func isAllowedContent(mt *mimetype.MIME) bool {
	for _, t := range sniffedTypes {
		if mt.Is(t) {
			return true
		}
	}
	return false
}

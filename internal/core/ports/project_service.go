package ports

import (
	"context"

	"github.com/devport/portfolio-api/internal/core/domain"
)

// ProjectInput carries the form fields of a project create/update request.
// Technologies is the raw comma-separated string as submitted by the client;
// the service splits it without trimming or de-duplication.
// ThumbnailPath and ScreenshotPaths reference already-staged local files that
// the service relays to the image host.
type ProjectInput struct {
	Title           string
	Description     string
	Technologies    string
	DemoLink        string
	SourceLink      string
	ThumbnailPath   string
	ScreenshotPaths []string
}

type ProjectService interface {
	Create(ctx context.Context, in ProjectInput) (*domain.Project, error)
	// Update applies falsy-skip patch semantics: empty form fields and absent
	// files leave the stored values unchanged.
	Update(ctx context.Context, id string, in ProjectInput) (*domain.Project, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]domain.Project, error)
	Get(ctx context.Context, id string) (*domain.Project, error)
}

// ImageHost relays a staged local file to the external image-hosting API and
// returns the durable public URL.
type ImageHost interface {
	UploadImage(ctx context.Context, path string) (string, error)
}

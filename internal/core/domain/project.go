package domain

import (
	"errors"
	"time"
)

var ErrProjectNotFound = errors.New("project not found")

// Project is a portfolio entry. Image fields hold URLs served by the
// external image host, never local paths.
type Project struct {
	ID           string    `json:"_id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Technologies []string  `json:"technologies"`
	DemoLink     string    `json:"demoLink"`
	SourceLink   string    `json:"sourceLink"`
	ThumbnailImg string    `json:"thumbnailImg"`
	Screenshots  []string  `json:"screenshots"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

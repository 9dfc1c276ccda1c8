package domain

import (
	"errors"
	"time"
)

const (
	MinStars = 1
	MaxStars = 5
)

var ErrSkillNotFound = errors.New("skill not found")

// Skill is a single entry on the skills page. Icon is a symbolic identifier
// resolved against the frontend's icon catalog, not an image URL.
type Skill struct {
	ID        string    `json:"_id"`
	Icon      string    `json:"icon"`
	Title     string    `json:"title"`
	Star      int       `json:"star"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ValidStars reports whether star is within the allowed proficiency range.
func ValidStars(star int) bool {
	return star >= MinStars && star <= MaxStars
}

package domain

import (
	"errors"
	"time"
)

var ErrExperienceNotFound = errors.New("experience not found")

// Experience is a work-history entry. WorkTimeline is free text
// (e.g. "Jan 2022 – Mar 2024"); Description may be empty.
type Experience struct {
	ID           string    `json:"_id"`
	Company      string    `json:"company"`
	Role         string    `json:"role"`
	WorkTimeline string    `json:"workTimeline"`
	Description  string    `json:"description"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

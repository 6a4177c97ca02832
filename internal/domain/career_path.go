package domain

import (
	"context"
	"time"
)

type CareerPath struct {
	ID              string    `json:"id"`
	UserID          string    `json:"userId"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	RequiredSkills  []string  `json:"requiredSkills,omitempty"`
	MatchingSkills  []string  `json:"matchingSkills,omitempty"`
	MissingSkills   []string  `json:"missingSkills,omitempty"`
	MatchPercentage *int      `json:"matchPercentage,omitempty"`
	Timeline        string    `json:"timeline,omitempty"`
	SalaryRange     string    `json:"salaryRange,omitempty"`
	Icon            string    `json:"icon,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
}

type CareerPathRepository interface {
	// Upsert inserts the path or, when the user already holds a path
	// with the same title (case-insensitive), leaves the stored record
	// in place. Returns the stored record and whether it was created.
	Upsert(ctx context.Context, path *CareerPath) (*CareerPath, bool, error)
	GetByUserID(ctx context.Context, userID string) ([]CareerPath, error)
}

type CareerPathUsecase interface {
	List(ctx context.Context) ([]CareerPath, error)
}

package domain

import (
	"context"
	"time"
)

type Job struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Company      string    `json:"company"`
	Location     string    `json:"location"`
	Salary       *string   `json:"salary,omitempty"`
	Description  string    `json:"description"`
	Requirements []string  `json:"requirements,omitempty"`
	MatchScore   *int      `json:"matchScore,omitempty"`
	PostedAt     *string   `json:"postedAt,omitempty"`
	ApplyURL     *string   `json:"applyUrl,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

// AllLocations is the frontend's "no location filter" sentinel.
const AllLocations = "All Locations"

// JobFilter narrows job listings. Experience is accepted for
// compatibility with the frontend query string but is not applied.
type JobFilter struct {
	Location   string
	Experience string
}

type JobRepository interface {
	// Upsert inserts the job or, when a job with the same title and
	// company (case-insensitive) exists, leaves the stored record in
	// place. Returns the stored record and whether it was created.
	Upsert(ctx context.Context, job *Job) (*Job, bool, error)
	// List returns jobs sorted by match score descending, missing
	// scores treated as 0.
	List(ctx context.Context, filter JobFilter) ([]Job, error)
	ListByMatchScore(ctx context.Context, minScore int) ([]Job, error)
}

// JobListing is the payload of the jobs endpoint. Source reports where
// the listings came from ("fallback_data" when the analysis service was
// unreachable).
type JobListing struct {
	Success bool   `json:"success"`
	Jobs    []Job  `json:"jobs"`
	Source  string `json:"source"`
	Message string `json:"message,omitempty"`
}

type JobUsecase interface {
	List(ctx context.Context, filter JobFilter) (*JobListing, error)
	// Refresh pulls fresh listings from the analysis service and
	// upserts them, without any fallback substitution.
	Refresh(ctx context.Context) error
}

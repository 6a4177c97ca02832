package domain

import (
	"context"
	"time"
)

type Resume struct {
	ID         string        `json:"id"`
	UserID     string        `json:"userId"`
	FileName   string        `json:"fileName"`
	Content    string        `json:"content"`
	ParsedData *ParsedResume `json:"parsedData,omitempty"`
	Score      *int          `json:"score,omitempty"`
	CreatedAt  time.Time     `json:"createdAt"`
}

// ParsedResume mirrors the parse payload produced by the analysis service.
type ParsedResume struct {
	Name            string   `json:"name"`
	Email           string   `json:"email"`
	MobileNumber    string   `json:"mobile_number"`
	Skills          []string `json:"skills"`
	Education       []string `json:"education"`
	Experience      []string `json:"experience"`
	TotalExperience float64  `json:"total_experience"`
}

// ResumePatch carries a partial update; nil fields are left untouched.
type ResumePatch struct {
	FileName   *string
	Content    *string
	ParsedData *ParsedResume
	Score      *int
}

type ResumeRepository interface {
	Create(ctx context.Context, resume *Resume) error
	// GetByUserID returns the user's resume. A user holds at most one
	// resume; the first match wins.
	GetByUserID(ctx context.Context, userID string) (*Resume, error)
	// Update merges non-nil patch fields into the stored resume and
	// returns the result, or ErrNotFound when the id is unknown.
	Update(ctx context.Context, id string, patch ResumePatch) (*Resume, error)
}

// UploadResult is the response payload of a resume upload.
type UploadResult struct {
	Success         bool    `json:"success"`
	Resume          *Resume `json:"resume"`
	Message         string  `json:"message"`
	ExtractedSkills int     `json:"extractedSkills"`
}

type ResumeUsecase interface {
	// Upload analyzes the uploaded file and persists the outcome. The
	// file at path is never deleted here; the caller owns cleanup.
	Upload(ctx context.Context, fileName, path string) (*UploadResult, error)
	Get(ctx context.Context) (*Resume, error)
}

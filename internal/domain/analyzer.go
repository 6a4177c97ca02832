package domain

import (
	"context"
	"io"
)

// ParseResult is the analysis service's answer to a resume upload.
type ParseResult struct {
	Success    bool          `json:"success"`
	FileName   string        `json:"fileName"`
	Content    string        `json:"content"`
	ParsedData *ParsedResume `json:"parsedData"`
	Score      int           `json:"score"`
	Message    string        `json:"message"`
}

// JobFeed is the analysis service's job recommendation payload.
type JobFeed struct {
	Success bool   `json:"success"`
	Jobs    []Job  `json:"jobs"`
	Source  string `json:"source"`
	Message string `json:"message"`
}

// PathFeed is the analysis service's career path payload.
type PathFeed struct {
	Success    bool         `json:"success"`
	Paths      []CareerPath `json:"paths"`
	UserSkills []string     `json:"userSkills"`
	Message    string       `json:"message"`
}

// ResumeAnalyzer is the capability boundary to the external analysis
// service. Implementations must treat network errors, non-2xx responses
// and success=false bodies uniformly as a returned error; the caller
// decides what to substitute.
type ResumeAnalyzer interface {
	ParseResume(ctx context.Context, fileName string, file io.Reader) (*ParseResult, error)
	FetchJobs(ctx context.Context, skills []string) (*JobFeed, error)
	FetchCareerPaths(ctx context.Context, skills []string) (*PathFeed, error)
}

// DashboardStats is the payload of the dashboard stats endpoint.
type DashboardStats struct {
	ResumeScore        int `json:"resumeScore"`
	SkillMatches       int `json:"skillMatches"`
	JobRecommendations int `json:"jobRecommendations"`
}

type DashboardUsecase interface {
	GetStats(ctx context.Context) (*DashboardStats, error)
}

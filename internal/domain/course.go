package domain

import (
	"context"
	"time"
)

// AllCourses is the frontend's "no category filter" sentinel.
const AllCourses = "All Courses"

type Course struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Provider    string    `json:"provider"`
	Duration    string    `json:"duration,omitempty"`
	Level       string    `json:"level,omitempty"`
	Rating      *float64  `json:"rating,omitempty"`
	ImageURL    string    `json:"imageUrl,omitempty"`
	CourseURL   string    `json:"courseUrl"`
	IsFree      bool      `json:"isFree"`
	Category    string    `json:"category,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

type CourseRepository interface {
	// Upsert inserts the course or, when a course with the same title
	// (case-insensitive) exists, leaves the stored record in place.
	// Returns the stored record and whether it was created.
	Upsert(ctx context.Context, course *Course) (*Course, bool, error)
	// List filters by exact category unless category is empty or
	// "All Courses".
	List(ctx context.Context, category string) ([]Course, error)
}

type CourseUsecase interface {
	List(ctx context.Context, category string) ([]Course, error)
}

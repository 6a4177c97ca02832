package usecase

import (
	"context"
	"log/slog"

	"go-careercoach-backend/internal/domain"
	"go-careercoach-backend/pkg/apperror"
)

type courseUsecase struct {
	courseRepo domain.CourseRepository
	logger     *slog.Logger
}

func NewCourseUsecase(courseRepo domain.CourseRepository, logger *slog.Logger) domain.CourseUsecase {
	if logger == nil {
		logger = slog.Default()
	}
	return &courseUsecase{courseRepo: courseRepo, logger: logger}
}

// List returns the course catalog, filtered by category. An empty store
// is seeded from the curated free-course catalog before listing, so the
// endpoint never returns an empty dashboard on a fresh install.
func (u *courseUsecase) List(ctx context.Context, category string) ([]domain.Course, error) {
	courses, err := u.courseRepo.List(ctx, "")
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if len(courses) == 0 {
		u.seed(ctx)
	}

	courses, err = u.courseRepo.List(ctx, category)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if courses == nil {
		courses = []domain.Course{}
	}
	return courses, nil
}

func (u *courseUsecase) seed(ctx context.Context) {
	for _, course := range FallbackCourses() {
		c := course
		if _, _, err := u.courseRepo.Upsert(ctx, &c); err != nil {
			u.logger.Warn("could not seed course", "title", course.Title, "error", err)
		}
	}
}

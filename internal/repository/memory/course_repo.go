package memory

import (
	"context"
	"strings"
	"time"

	"go-careercoach-backend/internal/domain"
)

type courseRepo struct {
	store *Store
}

func NewCourseRepository(store *Store) domain.CourseRepository {
	return &courseRepo{store: store}
}

func (r *courseRepo) Upsert(_ context.Context, course *domain.Course) (*domain.Course, bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	title := strings.ToLower(course.Title)
	for i := range r.store.courses {
		if strings.ToLower(r.store.courses[i].Title) == title {
			existing := r.store.courses[i]
			return &existing, false, nil
		}
	}

	course.ID = newID()
	course.CreatedAt = time.Now()
	r.store.courses = append(r.store.courses, *course)
	stored := *course
	return &stored, true, nil
}

func (r *courseRepo) List(_ context.Context, category string) ([]domain.Course, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var courses []domain.Course
	for i := range r.store.courses {
		if category != "" && category != domain.AllCourses && r.store.courses[i].Category != category {
			continue
		}
		courses = append(courses, r.store.courses[i])
	}
	return courses, nil
}

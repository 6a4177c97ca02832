package postgres

import (
	"context"
	"time"

	"go-careercoach-backend/internal/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const courseColumns = `id, title, description, provider, duration, level, rating, image_url, course_url, is_free, category, created_at`

type courseRepo struct {
	db *pgxpool.Pool
}

func NewCourseRepository(db *pgxpool.Pool) domain.CourseRepository {
	return &courseRepo{db: db}
}

func (r *courseRepo) Upsert(ctx context.Context, course *domain.Course) (*domain.Course, bool, error) {
	course.ID = uuid.NewString()
	course.CreatedAt = time.Now()

	query := `INSERT INTO courses (` + courseColumns + `)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
              ON CONFLICT (LOWER(title)) DO NOTHING
              RETURNING id, created_at`
	err := r.db.QueryRow(ctx, query,
		course.ID, course.Title, course.Description, course.Provider, course.Duration, course.Level,
		course.Rating, course.ImageURL, course.CourseURL, course.IsFree, course.Category, course.CreatedAt,
	).Scan(&course.ID, &course.CreatedAt)
	if err == nil {
		stored := *course
		return &stored, true, nil
	}
	if err != pgx.ErrNoRows {
		return nil, false, err
	}

	existing := `SELECT ` + courseColumns + ` FROM courses WHERE LOWER(title) = LOWER($1)`
	rows, err := r.db.Query(ctx, existing, course.Title)
	if err != nil {
		return nil, false, err
	}
	stored, err := collectCourses(rows)
	if err != nil {
		return nil, false, err
	}
	if len(stored) == 0 {
		return nil, false, domain.ErrNotFound
	}
	return &stored[0], false, nil
}

func (r *courseRepo) List(ctx context.Context, category string) ([]domain.Course, error) {
	query := `SELECT ` + courseColumns + ` FROM courses
              WHERE ($1 = '' OR $1 = '` + domain.AllCourses + `' OR category = $1)
              ORDER BY created_at ASC`
	rows, err := r.db.Query(ctx, query, category)
	if err != nil {
		return nil, err
	}
	return collectCourses(rows)
}

func collectCourses(rows pgx.Rows) ([]domain.Course, error) {
	defer rows.Close()

	var courses []domain.Course
	for rows.Next() {
		var course domain.Course
		if err := rows.Scan(
			&course.ID, &course.Title, &course.Description, &course.Provider, &course.Duration, &course.Level,
			&course.Rating, &course.ImageURL, &course.CourseURL, &course.IsFree, &course.Category, &course.CreatedAt,
		); err != nil {
			return nil, err
		}
		courses = append(courses, course)
	}
	return courses, rows.Err()
}

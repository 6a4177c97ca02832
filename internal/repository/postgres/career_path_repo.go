package postgres

import (
	"context"
	"time"

	"go-careercoach-backend/internal/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const pathColumns = `id, user_id, title, description, required_skills, matching_skills, missing_skills, match_percentage, timeline, salary_range, icon, created_at`

type careerPathRepo struct {
	db *pgxpool.Pool
}

func NewCareerPathRepository(db *pgxpool.Pool) domain.CareerPathRepository {
	return &careerPathRepo{db: db}
}

func (r *careerPathRepo) Upsert(ctx context.Context, path *domain.CareerPath) (*domain.CareerPath, bool, error) {
	path.ID = uuid.NewString()
	path.CreatedAt = time.Now()

	query := `INSERT INTO career_paths (` + pathColumns + `)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
              ON CONFLICT (user_id, LOWER(title)) DO NOTHING
              RETURNING id, created_at`
	err := r.db.QueryRow(ctx, query,
		path.ID, path.UserID, path.Title, path.Description, path.RequiredSkills,
		path.MatchingSkills, path.MissingSkills, path.MatchPercentage,
		path.Timeline, path.SalaryRange, path.Icon, path.CreatedAt,
	).Scan(&path.ID, &path.CreatedAt)
	if err == nil {
		stored := *path
		return &stored, true, nil
	}
	if err != pgx.ErrNoRows {
		return nil, false, err
	}

	existing := `SELECT ` + pathColumns + ` FROM career_paths WHERE user_id = $1 AND LOWER(title) = LOWER($2)`
	rows, err := r.db.Query(ctx, existing, path.UserID, path.Title)
	if err != nil {
		return nil, false, err
	}
	stored, err := collectPaths(rows)
	if err != nil {
		return nil, false, err
	}
	if len(stored) == 0 {
		return nil, false, domain.ErrNotFound
	}
	return &stored[0], false, nil
}

func (r *careerPathRepo) GetByUserID(ctx context.Context, userID string) ([]domain.CareerPath, error) {
	query := `SELECT ` + pathColumns + ` FROM career_paths WHERE user_id = $1 ORDER BY created_at ASC`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	return collectPaths(rows)
}

func collectPaths(rows pgx.Rows) ([]domain.CareerPath, error) {
	defer rows.Close()

	var paths []domain.CareerPath
	for rows.Next() {
		var path domain.CareerPath
		if err := rows.Scan(
			&path.ID, &path.UserID, &path.Title, &path.Description, &path.RequiredSkills,
			&path.MatchingSkills, &path.MissingSkills, &path.MatchPercentage,
			&path.Timeline, &path.SalaryRange, &path.Icon, &path.CreatedAt,
		); err != nil {
			return nil, err
		}
		paths = append(paths, path)
	}
	return paths, rows.Err()
}

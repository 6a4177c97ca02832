package postgres

import (
	"context"
	"time"

	"go-careercoach-backend/internal/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const jobColumns = `id, title, company, location, salary, description, requirements, match_score, posted_at, apply_url, created_at`

type jobRepo struct {
	db *pgxpool.Pool
}

func NewJobRepository(db *pgxpool.Pool) domain.JobRepository {
	return &jobRepo{db: db}
}

func (r *jobRepo) Upsert(ctx context.Context, job *domain.Job) (*domain.Job, bool, error) {
	job.ID = uuid.NewString()
	job.CreatedAt = time.Now()

	query := `INSERT INTO jobs (` + jobColumns + `)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
              ON CONFLICT (LOWER(title), LOWER(company)) DO NOTHING
              RETURNING id, created_at`
	err := r.db.QueryRow(ctx, query,
		job.ID, job.Title, job.Company, job.Location, job.Salary, job.Description,
		job.Requirements, job.MatchScore, job.PostedAt, job.ApplyURL, job.CreatedAt,
	).Scan(&job.ID, &job.CreatedAt)
	if err == nil {
		stored := *job
		return &stored, true, nil
	}
	if err != pgx.ErrNoRows {
		return nil, false, err
	}

	existing := `SELECT ` + jobColumns + ` FROM jobs WHERE LOWER(title) = LOWER($1) AND LOWER(company) = LOWER($2)`
	rows, err := r.db.Query(ctx, existing, job.Title, job.Company)
	if err != nil {
		return nil, false, err
	}
	stored, err := collectJobs(rows)
	if err != nil {
		return nil, false, err
	}
	if len(stored) == 0 {
		return nil, false, domain.ErrNotFound
	}
	return &stored[0], false, nil
}

func (r *jobRepo) List(ctx context.Context, filter domain.JobFilter) ([]domain.Job, error) {
	// filter.Experience is intentionally not consulted.
	// Missing match scores sort as 0.
	query := `SELECT ` + jobColumns + ` FROM jobs
              WHERE ($1 = '' OR $1 = '` + domain.AllLocations + `' OR location ILIKE '%' || $1 || '%')
              ORDER BY COALESCE(match_score, 0) DESC, created_at ASC`
	rows, err := r.db.Query(ctx, query, filter.Location)
	if err != nil {
		return nil, err
	}
	return collectJobs(rows)
}

func (r *jobRepo) ListByMatchScore(ctx context.Context, minScore int) ([]domain.Job, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs
              WHERE COALESCE(match_score, 0) >= $1
              ORDER BY COALESCE(match_score, 0) DESC, created_at ASC`
	rows, err := r.db.Query(ctx, query, minScore)
	if err != nil {
		return nil, err
	}
	return collectJobs(rows)
}

func collectJobs(rows pgx.Rows) ([]domain.Job, error) {
	defer rows.Close()

	var jobs []domain.Job
	for rows.Next() {
		var job domain.Job
		if err := rows.Scan(
			&job.ID, &job.Title, &job.Company, &job.Location, &job.Salary, &job.Description,
			&job.Requirements, &job.MatchScore, &job.PostedAt, &job.ApplyURL, &job.CreatedAt,
		); err != nil {
			return nil, err
		}
		jobs = append(jobs, job)
	}
	return jobs, rows.Err()
}

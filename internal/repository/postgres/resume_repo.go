package postgres

import (
	"context"
	"errors"
	"time"

	"go-careercoach-backend/internal/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type resumeRepo struct {
	db *pgxpool.Pool
}

func NewResumeRepository(db *pgxpool.Pool) domain.ResumeRepository {
	return &resumeRepo{db: db}
}

func (r *resumeRepo) Create(ctx context.Context, resume *domain.Resume) error {
	resume.ID = uuid.NewString()
	resume.CreatedAt = time.Now()

	query := `INSERT INTO resumes (id, user_id, file_name, content, parsed_data, score, created_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.db.Exec(ctx, query,
		resume.ID, resume.UserID, resume.FileName, resume.Content, resume.ParsedData, resume.Score, resume.CreatedAt,
	)
	return err
}

func (r *resumeRepo) GetByUserID(ctx context.Context, userID string) (*domain.Resume, error) {
	// Oldest row wins, mirroring the memory store's first-match scan.
	query := `SELECT id, user_id, file_name, content, parsed_data, score, created_at
              FROM resumes WHERE user_id = $1 ORDER BY created_at ASC LIMIT 1`
	return scanResume(r.db.QueryRow(ctx, query, userID))
}

func (r *resumeRepo) Update(ctx context.Context, id string, patch domain.ResumePatch) (*domain.Resume, error) {
	query := `UPDATE resumes SET
                file_name   = COALESCE($2, file_name),
                content     = COALESCE($3, content),
                parsed_data = COALESCE($4::jsonb, parsed_data),
                score       = COALESCE($5, score)
              WHERE id = $1
              RETURNING id, user_id, file_name, content, parsed_data, score, created_at`
	return scanResume(r.db.QueryRow(ctx, query, id, patch.FileName, patch.Content, patch.ParsedData, patch.Score))
}

func scanResume(row pgx.Row) (*domain.Resume, error) {
	var resume domain.Resume
	err := row.Scan(
		&resume.ID, &resume.UserID, &resume.FileName, &resume.Content,
		&resume.ParsedData, &resume.Score, &resume.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &resume, nil
}

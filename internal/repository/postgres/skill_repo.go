package postgres

import (
	"context"
	"time"

	"go-careercoach-backend/internal/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type skillRepo struct {
	db *pgxpool.Pool
}

func NewSkillRepository(db *pgxpool.Pool) domain.SkillRepository {
	return &skillRepo{db: db}
}

func (r *skillRepo) Upsert(ctx context.Context, skill *domain.Skill) (*domain.Skill, bool, error) {
	skill.ID = uuid.NewString()
	skill.CreatedAt = time.Now()

	// ON CONFLICT DO NOTHING returns no row for duplicates; the stored
	// record is fetched afterwards so callers always get it back.
	query := `INSERT INTO skills (id, user_id, name, level, category, is_in_demand, created_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7)
              ON CONFLICT (user_id, LOWER(name)) DO NOTHING
              RETURNING id, created_at`
	err := r.db.QueryRow(ctx, query,
		skill.ID, skill.UserID, skill.Name, skill.Level, skill.Category, skill.IsInDemand, skill.CreatedAt,
	).Scan(&skill.ID, &skill.CreatedAt)
	if err == nil {
		stored := *skill
		return &stored, true, nil
	}
	if err != pgx.ErrNoRows {
		return nil, false, err
	}

	existing := `SELECT id, user_id, name, level, category, is_in_demand, created_at
                 FROM skills WHERE user_id = $1 AND LOWER(name) = LOWER($2)`
	var stored domain.Skill
	err = r.db.QueryRow(ctx, existing, skill.UserID, skill.Name).Scan(
		&stored.ID, &stored.UserID, &stored.Name, &stored.Level, &stored.Category, &stored.IsInDemand, &stored.CreatedAt,
	)
	if err != nil {
		return nil, false, err
	}
	return &stored, false, nil
}

func (r *skillRepo) GetByUserID(ctx context.Context, userID string) ([]domain.Skill, error) {
	query := `SELECT id, user_id, name, level, category, is_in_demand, created_at
              FROM skills WHERE user_id = $1 ORDER BY created_at ASC`
	return r.list(ctx, query, userID)
}

func (r *skillRepo) GetInDemand(ctx context.Context) ([]domain.Skill, error) {
	query := `SELECT id, user_id, name, level, category, is_in_demand, created_at
              FROM skills WHERE is_in_demand ORDER BY created_at ASC`
	return r.list(ctx, query)
}

func (r *skillRepo) list(ctx context.Context, query string, args ...any) ([]domain.Skill, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var skills []domain.Skill
	for rows.Next() {
		var skill domain.Skill
		if err := rows.Scan(&skill.ID, &skill.UserID, &skill.Name, &skill.Level, &skill.Category, &skill.IsInDemand, &skill.CreatedAt); err != nil {
			return nil, err
		}
		skills = append(skills, skill)
	}
	return skills, rows.Err()
}

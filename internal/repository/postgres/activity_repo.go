package postgres

import (
	"context"
	"time"

	"go-careercoach-backend/internal/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type activityRepo struct {
	db *pgxpool.Pool
}

func NewActivityRepository(db *pgxpool.Pool) domain.ActivityRepository {
	return &activityRepo{db: db}
}

func (r *activityRepo) Create(ctx context.Context, activity *domain.Activity) error {
	activity.ID = uuid.NewString()
	activity.CreatedAt = time.Now()

	query := `INSERT INTO activities (id, user_id, type, description, status, created_at)
              VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.db.Exec(ctx, query,
		activity.ID, activity.UserID, activity.Type, activity.Description, activity.Status, activity.CreatedAt,
	)
	return err
}

func (r *activityRepo) GetByUserID(ctx context.Context, userID string) ([]domain.Activity, error) {
	query := `SELECT id, user_id, type, description, status, created_at
              FROM activities WHERE user_id = $1 ORDER BY created_at DESC`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var activities []domain.Activity
	for rows.Next() {
		var activity domain.Activity
		if err := rows.Scan(&activity.ID, &activity.UserID, &activity.Type, &activity.Description, &activity.Status, &activity.CreatedAt); err != nil {
			return nil, err
		}
		activities = append(activities, activity)
	}
	return activities, rows.Err()
}

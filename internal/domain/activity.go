package domain

import (
	"context"
	"time"
)

// Activity statuses
const (
	StatusCompleted  = "completed"
	StatusNew        = "new"
	StatusInProgress = "in-progress"
)

type Activity struct {
	ID          string    `json:"id"`
	UserID      string    `json:"userId"`
	Type        string    `json:"type" validate:"required"`
	Description string    `json:"description" validate:"required"`
	Status      string    `json:"status" validate:"required,oneof=completed new in-progress"`
	CreatedAt   time.Time `json:"createdAt"`
}

type ActivityRepository interface {
	Create(ctx context.Context, activity *Activity) error
	// GetByUserID returns the user's activities newest first.
	GetByUserID(ctx context.Context, userID string) ([]Activity, error)
}

type ActivityUsecase interface {
	List(ctx context.Context) ([]Activity, error)
	Create(ctx context.Context, activity *Activity) error
}

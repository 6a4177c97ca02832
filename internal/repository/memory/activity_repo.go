package memory

import (
	"context"
	"time"

	"go-careercoach-backend/internal/domain"
)

type activityRepo struct {
	store *Store
}

func NewActivityRepository(store *Store) domain.ActivityRepository {
	return &activityRepo{store: store}
}

func (r *activityRepo) Create(_ context.Context, activity *domain.Activity) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	activity.ID = newID()
	activity.CreatedAt = time.Now()
	r.store.activities = append(r.store.activities, *activity)
	return nil
}

// GetByUserID returns activities newest first. Insertion order doubles
// as createdAt order, so a reverse scan is enough and keeps same-instant
// records deterministic.
func (r *activityRepo) GetByUserID(_ context.Context, userID string) ([]domain.Activity, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var activities []domain.Activity
	for i := len(r.store.activities) - 1; i >= 0; i-- {
		if r.store.activities[i].UserID == userID {
			activities = append(activities, r.store.activities[i])
		}
	}
	return activities, nil
}

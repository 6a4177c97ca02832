package memory

import (
	"context"
	"strings"
	"time"

	"go-careercoach-backend/internal/domain"
)

type careerPathRepo struct {
	store *Store
}

func NewCareerPathRepository(store *Store) domain.CareerPathRepository {
	return &careerPathRepo{store: store}
}

func (r *careerPathRepo) Upsert(_ context.Context, path *domain.CareerPath) (*domain.CareerPath, bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	title := strings.ToLower(path.Title)
	for i := range r.store.paths {
		if r.store.paths[i].UserID == path.UserID && strings.ToLower(r.store.paths[i].Title) == title {
			existing := r.store.paths[i]
			return &existing, false, nil
		}
	}

	path.ID = newID()
	path.CreatedAt = time.Now()
	r.store.paths = append(r.store.paths, *path)
	stored := *path
	return &stored, true, nil
}

func (r *careerPathRepo) GetByUserID(_ context.Context, userID string) ([]domain.CareerPath, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var paths []domain.CareerPath
	for i := range r.store.paths {
		if r.store.paths[i].UserID == userID {
			paths = append(paths, r.store.paths[i])
		}
	}
	return paths, nil
}

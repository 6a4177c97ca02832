package memory

import (
	"context"
	"time"

	"go-careercoach-backend/internal/domain"
)

type resumeRepo struct {
	store *Store
}

func NewResumeRepository(store *Store) domain.ResumeRepository {
	return &resumeRepo{store: store}
}

func (r *resumeRepo) Create(_ context.Context, resume *domain.Resume) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	resume.ID = newID()
	resume.CreatedAt = time.Now()
	r.store.resumes = append(r.store.resumes, *resume)
	return nil
}

func (r *resumeRepo) GetByUserID(_ context.Context, userID string) (*domain.Resume, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	// First match wins: a user holds at most one resume.
	for i := range r.store.resumes {
		if r.store.resumes[i].UserID == userID {
			resume := r.store.resumes[i]
			return &resume, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *resumeRepo) Update(_ context.Context, id string, patch domain.ResumePatch) (*domain.Resume, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for i := range r.store.resumes {
		if r.store.resumes[i].ID != id {
			continue
		}
		if patch.FileName != nil {
			r.store.resumes[i].FileName = *patch.FileName
		}
		if patch.Content != nil {
			r.store.resumes[i].Content = *patch.Content
		}
		if patch.ParsedData != nil {
			r.store.resumes[i].ParsedData = patch.ParsedData
		}
		if patch.Score != nil {
			r.store.resumes[i].Score = patch.Score
		}
		resume := r.store.resumes[i]
		return &resume, nil
	}
	return nil, domain.ErrNotFound
}

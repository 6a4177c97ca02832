package memory

import (
	"context"
	"strings"
	"time"

	"go-careercoach-backend/internal/domain"
)

type skillRepo struct {
	store *Store
}

func NewSkillRepository(store *Store) domain.SkillRepository {
	return &skillRepo{store: store}
}

func (r *skillRepo) Upsert(_ context.Context, skill *domain.Skill) (*domain.Skill, bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	name := strings.ToLower(skill.Name)
	for i := range r.store.skills {
		if r.store.skills[i].UserID == skill.UserID && strings.ToLower(r.store.skills[i].Name) == name {
			existing := r.store.skills[i]
			return &existing, false, nil
		}
	}

	skill.ID = newID()
	skill.CreatedAt = time.Now()
	r.store.skills = append(r.store.skills, *skill)
	stored := *skill
	return &stored, true, nil
}

func (r *skillRepo) GetByUserID(_ context.Context, userID string) ([]domain.Skill, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var skills []domain.Skill
	for i := range r.store.skills {
		if r.store.skills[i].UserID == userID {
			skills = append(skills, r.store.skills[i])
		}
	}
	return skills, nil
}

// GetInDemand scans skills of all users, not only the default one.
func (r *skillRepo) GetInDemand(_ context.Context) ([]domain.Skill, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var skills []domain.Skill
	for i := range r.store.skills {
		if r.store.skills[i].IsInDemand {
			skills = append(skills, r.store.skills[i])
		}
	}
	return skills, nil
}

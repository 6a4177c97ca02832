// Package repository holds store-agnostic persistence helpers shared by
// the memory and postgres backends.
package repository

import (
	"context"
	"errors"

	"go-careercoach-backend/internal/domain"
)

// DefaultUsername is the single seeded tenant of the dashboard.
const DefaultUsername = "demo"

// Seed ensures the default user exists and carries a starter skill set,
// and upserts the given course catalog. Idempotent across restarts: the
// user is only created when missing and every other write is an upsert.
// Returns the default user.
func Seed(
	ctx context.Context,
	users domain.UserRepository,
	skills domain.SkillRepository,
	courses domain.CourseRepository,
	catalog []domain.Course,
) (*domain.User, error) {
	user, err := users.GetByUsername(ctx, DefaultUsername)
	if errors.Is(err, domain.ErrNotFound) {
		user = &domain.User{
			Username: DefaultUsername,
			Password: "demo",
			Name:     "Demo User",
			Email:    "demo@example.com",
		}
		if err := users.Create(ctx, user); err != nil {
			return nil, err
		}
	} else if err != nil {
		return nil, err
	}

	starter := []domain.Skill{
		{UserID: user.ID, Name: "JavaScript", Level: domain.LevelIntermediate, Category: "Frontend", IsInDemand: true},
		{UserID: user.ID, Name: "HTML", Level: domain.LevelIntermediate, Category: "Frontend"},
		{UserID: user.ID, Name: "CSS", Level: domain.LevelIntermediate, Category: "Frontend"},
	}
	for i := range starter {
		if _, _, err := skills.Upsert(ctx, &starter[i]); err != nil {
			return nil, err
		}
	}

	for i := range catalog {
		course := catalog[i]
		if _, _, err := courses.Upsert(ctx, &course); err != nil {
			return nil, err
		}
	}

	return user, nil
}

package usecase

import (
	"context"
	"errors"

	"go-careercoach-backend/internal/domain"
	"go-careercoach-backend/pkg/apperror"
)

type dashboardUsecase struct {
	resumeRepo domain.ResumeRepository
	skillRepo  domain.SkillRepository
	jobRepo    domain.JobRepository
	userID     string
}

func NewDashboardUsecase(
	resumeRepo domain.ResumeRepository,
	skillRepo domain.SkillRepository,
	jobRepo domain.JobRepository,
	userID string,
) domain.DashboardUsecase {
	return &dashboardUsecase{
		resumeRepo: resumeRepo,
		skillRepo:  skillRepo,
		jobRepo:    jobRepo,
		userID:     userID,
	}
}

func (u *dashboardUsecase) GetStats(ctx context.Context) (*domain.DashboardStats, error) {
	stats := &domain.DashboardStats{}

	resume, err := u.resumeRepo.GetByUserID(ctx, u.userID)
	switch {
	case err == nil:
		if resume.Score != nil {
			stats.ResumeScore = *resume.Score
		}
	case errors.Is(err, domain.ErrNotFound):
		// No resume yet: score stays 0.
	default:
		return nil, apperror.Internal(err)
	}

	skills, err := u.skillRepo.GetByUserID(ctx, u.userID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	stats.SkillMatches = len(skills)

	jobs, err := u.jobRepo.List(ctx, domain.JobFilter{})
	if err != nil {
		return nil, apperror.Internal(err)
	}
	// Floor at 3 so the dashboard card never shows an empty state.
	stats.JobRecommendations = len(jobs)
	if stats.JobRecommendations < 3 {
		stats.JobRecommendations = 3
	}

	return stats, nil
}

package usecase

import (
	"context"
	"log/slog"

	"go-careercoach-backend/internal/domain"
)

type careerPathUsecase struct {
	pathRepo  domain.CareerPathRepository
	skillRepo domain.SkillRepository
	analyzer  domain.ResumeAnalyzer
	logger    *slog.Logger
	userID    string
}

func NewCareerPathUsecase(
	pathRepo domain.CareerPathRepository,
	skillRepo domain.SkillRepository,
	analyzer domain.ResumeAnalyzer,
	logger *slog.Logger,
	userID string,
) domain.CareerPathUsecase {
	if logger == nil {
		logger = slog.Default()
	}
	return &careerPathUsecase{
		pathRepo:  pathRepo,
		skillRepo: skillRepo,
		analyzer:  analyzer,
		logger:    logger,
		userID:    userID,
	}
}

// List asks the analysis service for career paths matched to the user's
// skills, persisting what it returns. When the service is unreachable
// the paths are computed locally from the static templates instead; the
// endpoint never fails over serving paths.
func (u *careerPathUsecase) List(ctx context.Context) ([]domain.CareerPath, error) {
	names := u.skillNames(ctx)

	feed, err := u.analyzer.FetchCareerPaths(ctx, names)
	if err != nil {
		u.logger.Warn("career paths unavailable, computing from templates", "error", err)
		return fallbackCareerPaths(names), nil
	}

	// The response always carries the freshly computed feed values;
	// the store only contributes record identity, since Upsert keeps
	// the first row for a given title.
	paths := feed.Paths
	for i := range paths {
		paths[i].UserID = u.userID
		record := paths[i]
		stored, _, err := u.pathRepo.Upsert(ctx, &record)
		if err != nil {
			u.logger.Warn("could not store career path", "title", paths[i].Title, "error", err)
			continue
		}
		paths[i].ID = stored.ID
		paths[i].CreatedAt = stored.CreatedAt
	}
	if paths == nil {
		paths = []domain.CareerPath{}
	}
	return paths, nil
}

func (u *careerPathUsecase) skillNames(ctx context.Context) []string {
	skills, err := u.skillRepo.GetByUserID(ctx, u.userID)
	if err != nil {
		u.logger.Warn("could not load skills for path matching", "error", err)
		return nil
	}
	names := make([]string, 0, len(skills))
	for _, s := range skills {
		names = append(names, s.Name)
	}
	return names
}

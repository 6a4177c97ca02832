package usecase

import (
	"context"
	"log/slog"

	"go-careercoach-backend/internal/domain"
)

// maxStoredJobs caps how many listings a single service response may
// push into the store.
const maxStoredJobs = 10

type jobUsecase struct {
	jobRepo   domain.JobRepository
	skillRepo domain.SkillRepository
	analyzer  domain.ResumeAnalyzer
	logger    *slog.Logger
	userID    string
}

func NewJobUsecase(
	jobRepo domain.JobRepository,
	skillRepo domain.SkillRepository,
	analyzer domain.ResumeAnalyzer,
	logger *slog.Logger,
	userID string,
) domain.JobUsecase {
	if logger == nil {
		logger = slog.Default()
	}
	return &jobUsecase{
		jobRepo:   jobRepo,
		skillRepo: skillRepo,
		analyzer:  analyzer,
		logger:    logger,
		userID:    userID,
	}
}

// List asks the analysis service for recommendations matched to the
// user's skills. When the service is unreachable it serves the static
// fallback listings instead; the endpoint never fails over serving jobs.
func (u *jobUsecase) List(ctx context.Context, filter domain.JobFilter) (*domain.JobListing, error) {
	feed, err := u.analyzer.FetchJobs(ctx, u.skillNames(ctx))
	if err != nil {
		u.logger.Warn("job recommendations unavailable, serving fallback listings", "error", err)
		// The fallback set is small; a filter that would empty it is
		// dropped so the endpoint always has listings to show.
		jobs := applyFilter(fallbackJobs(), filter)
		if len(jobs) == 0 {
			jobs = fallbackJobs()
		}
		return &domain.JobListing{
			Success: true,
			Jobs:    jobs,
			Source:  FallbackSource,
			Message: "Showing sample job listings (recommendation service unavailable)",
		}, nil
	}

	u.store(ctx, feed.Jobs)

	jobs := applyFilter(feed.Jobs, filter)
	if jobs == nil {
		jobs = []domain.Job{}
	}
	return &domain.JobListing{
		Success: true,
		Jobs:    jobs,
		Source:  feed.Source,
		Message: feed.Message,
	}, nil
}

// Refresh pulls fresh listings and upserts them. Unlike List it
// propagates failure so the caller (the scheduled refresh job) can
// report it.
func (u *jobUsecase) Refresh(ctx context.Context) error {
	feed, err := u.analyzer.FetchJobs(ctx, u.skillNames(ctx))
	if err != nil {
		return err
	}
	u.store(ctx, feed.Jobs)
	return nil
}

func (u *jobUsecase) skillNames(ctx context.Context) []string {
	skills, err := u.skillRepo.GetByUserID(ctx, u.userID)
	if err != nil {
		u.logger.Warn("could not load skills for job matching", "error", err)
		return nil
	}
	names := make([]string, 0, len(skills))
	for _, s := range skills {
		names = append(names, s.Name)
	}
	return names
}

func (u *jobUsecase) store(ctx context.Context, jobs []domain.Job) {
	for i, job := range jobs {
		if i == maxStoredJobs {
			break
		}
		j := job
		if _, _, err := u.jobRepo.Upsert(ctx, &j); err != nil {
			u.logger.Warn("could not store job listing", "title", job.Title, "error", err)
		}
	}
}

// applyFilter narrows listings by location substring. Experience is
// accepted from the query string but intentionally not applied, matching
// the frontend's expectations.
func applyFilter(jobs []domain.Job, filter domain.JobFilter) []domain.Job {
	if filter.Location == "" || filter.Location == domain.AllLocations {
		return jobs
	}
	filtered := make([]domain.Job, 0, len(jobs))
	for _, job := range jobs {
		if containsFold(job.Location, filter.Location) {
			filtered = append(filtered, job)
		}
	}
	return filtered
}

package memory

import (
	"context"
	"sort"
	"strings"
	"time"

	"go-careercoach-backend/internal/domain"
)

type jobRepo struct {
	store *Store
}

func NewJobRepository(store *Store) domain.JobRepository {
	return &jobRepo{store: store}
}

func (r *jobRepo) Upsert(_ context.Context, job *domain.Job) (*domain.Job, bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	title := strings.ToLower(job.Title)
	company := strings.ToLower(job.Company)
	for i := range r.store.jobs {
		if strings.ToLower(r.store.jobs[i].Title) == title && strings.ToLower(r.store.jobs[i].Company) == company {
			existing := r.store.jobs[i]
			return &existing, false, nil
		}
	}

	job.ID = newID()
	job.CreatedAt = time.Now()
	r.store.jobs = append(r.store.jobs, *job)
	stored := *job
	return &stored, true, nil
}

func (r *jobRepo) List(_ context.Context, filter domain.JobFilter) ([]domain.Job, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	// filter.Experience is intentionally not consulted.
	var jobs []domain.Job
	for i := range r.store.jobs {
		if filter.Location != "" && filter.Location != domain.AllLocations &&
			!strings.Contains(strings.ToLower(r.store.jobs[i].Location), strings.ToLower(filter.Location)) {
			continue
		}
		jobs = append(jobs, r.store.jobs[i])
	}

	sortByMatchScore(jobs)
	return jobs, nil
}

func (r *jobRepo) ListByMatchScore(_ context.Context, minScore int) ([]domain.Job, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var jobs []domain.Job
	for i := range r.store.jobs {
		if matchScore(r.store.jobs[i]) >= minScore {
			jobs = append(jobs, r.store.jobs[i])
		}
	}

	sortByMatchScore(jobs)
	return jobs, nil
}

func matchScore(job domain.Job) int {
	if job.MatchScore == nil {
		return 0
	}
	return *job.MatchScore
}

// sortByMatchScore orders jobs by match score descending, missing
// scores treated as 0. Stable, so ties keep insertion order.
func sortByMatchScore(jobs []domain.Job) {
	sort.SliceStable(jobs, func(i, j int) bool {
		return matchScore(jobs[i]) > matchScore(jobs[j])
	})
}

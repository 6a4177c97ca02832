package usecase_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go-careercoach-backend/internal/domain"
	"go-careercoach-backend/internal/repository/memory"
	"go-careercoach-backend/internal/usecase"
	"go-careercoach-backend/pkg/apperror"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// Mock Repositories

type MockResumeRepo struct {
	mock.Mock
}

func (m *MockResumeRepo) Create(ctx context.Context, resume *domain.Resume) error {
	return m.Called(ctx, resume).Error(0)
}

func (m *MockResumeRepo) GetByUserID(ctx context.Context, userID string) (*domain.Resume, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Resume), args.Error(1)
}

func (m *MockResumeRepo) Update(ctx context.Context, id string, patch domain.ResumePatch) (*domain.Resume, error) {
	args := m.Called(ctx, id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Resume), args.Error(1)
}

type MockSkillRepo struct {
	mock.Mock
}

func (m *MockSkillRepo) Upsert(ctx context.Context, skill *domain.Skill) (*domain.Skill, bool, error) {
	args := m.Called(ctx, skill)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*domain.Skill), args.Bool(1), args.Error(2)
}

func (m *MockSkillRepo) GetByUserID(ctx context.Context, userID string) ([]domain.Skill, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Skill), args.Error(1)
}

func (m *MockSkillRepo) GetInDemand(ctx context.Context) ([]domain.Skill, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Skill), args.Error(1)
}

type MockJobRepo struct {
	mock.Mock
}

func (m *MockJobRepo) Upsert(ctx context.Context, job *domain.Job) (*domain.Job, bool, error) {
	args := m.Called(ctx, job)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*domain.Job), args.Bool(1), args.Error(2)
}

func (m *MockJobRepo) List(ctx context.Context, filter domain.JobFilter) ([]domain.Job, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Job), args.Error(1)
}

func (m *MockJobRepo) ListByMatchScore(ctx context.Context, minScore int) ([]domain.Job, error) {
	args := m.Called(ctx, minScore)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Job), args.Error(1)
}

type MockActivityRepo struct {
	mock.Mock
}

func (m *MockActivityRepo) Create(ctx context.Context, activity *domain.Activity) error {
	return m.Called(ctx, activity).Error(0)
}

func (m *MockActivityRepo) GetByUserID(ctx context.Context, userID string) ([]domain.Activity, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Activity), args.Error(1)
}

type MockCareerPathRepo struct {
	mock.Mock
}

func (m *MockCareerPathRepo) Upsert(ctx context.Context, path *domain.CareerPath) (*domain.CareerPath, bool, error) {
	args := m.Called(ctx, path)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*domain.CareerPath), args.Bool(1), args.Error(2)
}

func (m *MockCareerPathRepo) GetByUserID(ctx context.Context, userID string) ([]domain.CareerPath, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CareerPath), args.Error(1)
}

type MockCourseRepo struct {
	mock.Mock
}

func (m *MockCourseRepo) Upsert(ctx context.Context, course *domain.Course) (*domain.Course, bool, error) {
	args := m.Called(ctx, course)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*domain.Course), args.Bool(1), args.Error(2)
}

func (m *MockCourseRepo) List(ctx context.Context, category string) ([]domain.Course, error) {
	args := m.Called(ctx, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Course), args.Error(1)
}

// stubAnalyzer fakes the analysis service without a network round trip.
type stubAnalyzer struct {
	parseFn func(ctx context.Context, fileName string, file io.Reader) (*domain.ParseResult, error)
	jobsFn  func(ctx context.Context, skills []string) (*domain.JobFeed, error)
	pathsFn func(ctx context.Context, skills []string) (*domain.PathFeed, error)
}

func (s *stubAnalyzer) ParseResume(ctx context.Context, fileName string, file io.Reader) (*domain.ParseResult, error) {
	return s.parseFn(ctx, fileName, file)
}

func (s *stubAnalyzer) FetchJobs(ctx context.Context, skills []string) (*domain.JobFeed, error) {
	return s.jobsFn(ctx, skills)
}

func (s *stubAnalyzer) FetchCareerPaths(ctx context.Context, skills []string) (*domain.PathFeed, error) {
	return s.pathsFn(ctx, skills)
}

func intPtr(v int) *int { return &v }

func writeTempResume(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "resume.txt")
	assert.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestResumeUpload(t *testing.T) {
	ctx := context.Background()

	t.Run("Should persist analyzed resume and extracted skills", func(t *testing.T) {
		resumeRepo := new(MockResumeRepo)
		skillRepo := new(MockSkillRepo)
		activityRepo := new(MockActivityRepo)
		analyzer := &stubAnalyzer{
			parseFn: func(_ context.Context, fileName string, _ io.Reader) (*domain.ParseResult, error) {
				return &domain.ParseResult{
					Success:  true,
					FileName: fileName,
					Content:  "parsed text",
					ParsedData: &domain.ParsedResume{
						Name:   "Jane Doe",
						Skills: []string{"Go", "SQL"},
					},
					Score: 82,
				}, nil
			},
		}

		resumeRepo.On("GetByUserID", ctx, "u1").Return(nil, domain.ErrNotFound)
		resumeRepo.On("Create", ctx, mock.AnythingOfType("*domain.Resume")).Return(nil).Run(func(args mock.Arguments) {
			r := args.Get(1).(*domain.Resume)
			assert.Equal(t, "u1", r.UserID)
			assert.Equal(t, "parsed text", r.Content)
			assert.Equal(t, 82, *r.Score)
		})
		skillRepo.On("Upsert", ctx, mock.AnythingOfType("*domain.Skill")).Return(&domain.Skill{}, true, nil)
		activityRepo.On("Create", ctx, mock.AnythingOfType("*domain.Activity")).Return(nil).Run(func(args mock.Arguments) {
			a := args.Get(1).(*domain.Activity)
			assert.Equal(t, "resume_upload", a.Type)
			assert.Equal(t, domain.StatusCompleted, a.Status)
		})

		uc := usecase.NewResumeUsecase(resumeRepo, skillRepo, activityRepo, analyzer, nil, "u1")
		result, err := uc.Upload(ctx, "resume.txt", writeTempResume(t, "raw"))

		assert.NoError(t, err)
		assert.True(t, result.Success)
		assert.Equal(t, 2, result.ExtractedSkills)
		skillRepo.AssertNumberOfCalls(t, "Upsert", 2)
		activityRepo.AssertNumberOfCalls(t, "Create", 1)
	})

	t.Run("Should fall back to raw text when the analysis service fails", func(t *testing.T) {
		resumeRepo := new(MockResumeRepo)
		skillRepo := new(MockSkillRepo)
		activityRepo := new(MockActivityRepo)
		analyzer := &stubAnalyzer{
			parseFn: func(context.Context, string, io.Reader) (*domain.ParseResult, error) {
				return nil, errors.New("connection refused")
			},
		}

		resumeRepo.On("GetByUserID", ctx, "u1").Return(nil, domain.ErrNotFound)
		resumeRepo.On("Create", ctx, mock.AnythingOfType("*domain.Resume")).Return(nil).Run(func(args mock.Arguments) {
			r := args.Get(1).(*domain.Resume)
			assert.Equal(t, "raw resume body", r.Content)
			assert.Equal(t, 65, *r.Score)
			assert.Equal(t, []string{"JavaScript", "HTML", "CSS"}, r.ParsedData.Skills)
		})
		skillRepo.On("Upsert", ctx, mock.AnythingOfType("*domain.Skill")).Return(&domain.Skill{}, true, nil)
		activityRepo.On("Create", ctx, mock.AnythingOfType("*domain.Activity")).Return(nil)

		uc := usecase.NewResumeUsecase(resumeRepo, skillRepo, activityRepo, analyzer, nil, "u1")
		result, err := uc.Upload(ctx, "resume.txt", writeTempResume(t, "raw resume body"))

		assert.NoError(t, err)
		assert.True(t, result.Success)
		assert.Equal(t, 3, result.ExtractedSkills)
		assert.Contains(t, result.Message, "unavailable")
		skillRepo.AssertNumberOfCalls(t, "Upsert", 3)
		activityRepo.AssertNumberOfCalls(t, "Create", 1)
	})

	t.Run("Should propagate a store failure after a successful parse", func(t *testing.T) {
		resumeRepo := new(MockResumeRepo)
		skillRepo := new(MockSkillRepo)
		activityRepo := new(MockActivityRepo)
		analyzer := &stubAnalyzer{
			parseFn: func(context.Context, string, io.Reader) (*domain.ParseResult, error) {
				return &domain.ParseResult{Success: true, Content: "parsed", Score: 82}, nil
			},
		}

		resumeRepo.On("GetByUserID", ctx, "u1").Return(nil, domain.ErrNotFound)
		resumeRepo.On("Create", ctx, mock.AnythingOfType("*domain.Resume")).Return(errors.New("store down"))

		uc := usecase.NewResumeUsecase(resumeRepo, skillRepo, activityRepo, analyzer, nil, "u1")
		result, err := uc.Upload(ctx, "resume.txt", writeTempResume(t, "raw"))

		assert.Nil(t, result)
		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, http.StatusInternalServerError, appErr.Code)
		// A persistence failure must not substitute fallback content or
		// write a second time.
		resumeRepo.AssertNumberOfCalls(t, "Create", 1)
		skillRepo.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
		activityRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Should patch the existing resume on re-upload", func(t *testing.T) {
		resumeRepo := new(MockResumeRepo)
		skillRepo := new(MockSkillRepo)
		activityRepo := new(MockActivityRepo)
		analyzer := &stubAnalyzer{
			parseFn: func(context.Context, string, io.Reader) (*domain.ParseResult, error) {
				return &domain.ParseResult{Success: true, Content: "new text", Score: 90}, nil
			},
		}

		existing := &domain.Resume{ID: "r1", UserID: "u1", FileName: "old.pdf"}
		resumeRepo.On("GetByUserID", ctx, "u1").Return(existing, nil)
		resumeRepo.On("Update", ctx, "r1", mock.AnythingOfType("domain.ResumePatch")).
			Return(&domain.Resume{ID: "r1", UserID: "u1", FileName: "new.pdf"}, nil)
		activityRepo.On("Create", ctx, mock.AnythingOfType("*domain.Activity")).Return(nil)

		uc := usecase.NewResumeUsecase(resumeRepo, skillRepo, activityRepo, analyzer, nil, "u1")
		result, err := uc.Upload(ctx, "new.pdf", writeTempResume(t, "raw"))

		assert.NoError(t, err)
		assert.Equal(t, "r1", result.Resume.ID)
		resumeRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestResumeGet(t *testing.T) {
	ctx := context.Background()
	resumeRepo := new(MockResumeRepo)
	uc := usecase.NewResumeUsecase(resumeRepo, new(MockSkillRepo), new(MockActivityRepo), &stubAnalyzer{}, nil, "u1")

	t.Run("Should map missing resume to 404", func(t *testing.T) {
		resumeRepo.On("GetByUserID", ctx, "u1").Return(nil, domain.ErrNotFound).Once()

		_, err := uc.Get(ctx)
		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, http.StatusNotFound, appErr.Code)
	})
}

func TestDashboardStats(t *testing.T) {
	ctx := context.Background()

	t.Run("Should report zero score without a resume and floor job count at 3", func(t *testing.T) {
		resumeRepo := new(MockResumeRepo)
		skillRepo := new(MockSkillRepo)
		jobRepo := new(MockJobRepo)

		resumeRepo.On("GetByUserID", ctx, "u1").Return(nil, domain.ErrNotFound)
		skillRepo.On("GetByUserID", ctx, "u1").Return([]domain.Skill{{Name: "Go"}, {Name: "SQL"}}, nil)
		jobRepo.On("List", ctx, domain.JobFilter{}).Return([]domain.Job{{Title: "Only One"}}, nil)

		uc := usecase.NewDashboardUsecase(resumeRepo, skillRepo, jobRepo, "u1")
		stats, err := uc.GetStats(ctx)

		assert.NoError(t, err)
		assert.Equal(t, 0, stats.ResumeScore)
		assert.Equal(t, 2, stats.SkillMatches)
		assert.Equal(t, 3, stats.JobRecommendations)
	})

	t.Run("Should use the stored resume score and real job count", func(t *testing.T) {
		resumeRepo := new(MockResumeRepo)
		skillRepo := new(MockSkillRepo)
		jobRepo := new(MockJobRepo)

		resumeRepo.On("GetByUserID", ctx, "u1").Return(&domain.Resume{Score: intPtr(77)}, nil)
		skillRepo.On("GetByUserID", ctx, "u1").Return([]domain.Skill{}, nil)
		jobRepo.On("List", ctx, domain.JobFilter{}).Return(make([]domain.Job, 5), nil)

		uc := usecase.NewDashboardUsecase(resumeRepo, skillRepo, jobRepo, "u1")
		stats, err := uc.GetStats(ctx)

		assert.NoError(t, err)
		assert.Equal(t, 77, stats.ResumeScore)
		assert.Equal(t, 5, stats.JobRecommendations)
	})
}

func TestJobList(t *testing.T) {
	ctx := context.Background()

	t.Run("Should persist and return service listings on success", func(t *testing.T) {
		jobRepo := new(MockJobRepo)
		skillRepo := new(MockSkillRepo)
		analyzer := &stubAnalyzer{
			jobsFn: func(_ context.Context, skills []string) (*domain.JobFeed, error) {
				assert.Equal(t, []string{"Go"}, skills)
				return &domain.JobFeed{
					Success: true,
					Jobs:    []domain.Job{{Title: "Go Developer", Company: "Acme"}},
					Source:  "live_data",
				}, nil
			},
		}

		skillRepo.On("GetByUserID", ctx, "u1").Return([]domain.Skill{{Name: "Go"}}, nil)
		jobRepo.On("Upsert", ctx, mock.AnythingOfType("*domain.Job")).Return(&domain.Job{}, true, nil)

		uc := usecase.NewJobUsecase(jobRepo, skillRepo, analyzer, nil, "u1")
		listing, err := uc.List(ctx, domain.JobFilter{})

		assert.NoError(t, err)
		assert.True(t, listing.Success)
		assert.Equal(t, "live_data", listing.Source)
		assert.Len(t, listing.Jobs, 1)
		jobRepo.AssertNumberOfCalls(t, "Upsert", 1)
	})

	t.Run("Should serve static listings when the service fails", func(t *testing.T) {
		jobRepo := new(MockJobRepo)
		skillRepo := new(MockSkillRepo)
		analyzer := &stubAnalyzer{
			jobsFn: func(context.Context, []string) (*domain.JobFeed, error) {
				return nil, errors.New("timeout")
			},
		}

		skillRepo.On("GetByUserID", ctx, "u1").Return([]domain.Skill{}, nil)

		uc := usecase.NewJobUsecase(jobRepo, skillRepo, analyzer, nil, "u1")
		listing, err := uc.List(ctx, domain.JobFilter{})

		assert.NoError(t, err)
		assert.True(t, listing.Success)
		assert.Equal(t, "fallback_data", listing.Source)
		assert.NotEmpty(t, listing.Jobs)
		jobRepo.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
	})

	t.Run("Should apply the location filter to fallback listings", func(t *testing.T) {
		jobRepo := new(MockJobRepo)
		skillRepo := new(MockSkillRepo)
		analyzer := &stubAnalyzer{
			jobsFn: func(context.Context, []string) (*domain.JobFeed, error) {
				return nil, errors.New("timeout")
			},
		}

		skillRepo.On("GetByUserID", ctx, "u1").Return([]domain.Skill{}, nil)

		uc := usecase.NewJobUsecase(jobRepo, skillRepo, analyzer, nil, "u1")
		listing, err := uc.List(ctx, domain.JobFilter{Location: "remote"})

		assert.NoError(t, err)
		assert.NotEmpty(t, listing.Jobs)
		for _, job := range listing.Jobs {
			assert.Contains(t, strings.ToLower(job.Location), "remote")
		}
	})

	t.Run("Should drop a filter that would empty the fallback listings", func(t *testing.T) {
		jobRepo := new(MockJobRepo)
		skillRepo := new(MockSkillRepo)
		analyzer := &stubAnalyzer{
			jobsFn: func(context.Context, []string) (*domain.JobFeed, error) {
				return nil, errors.New("timeout")
			},
		}

		skillRepo.On("GetByUserID", ctx, "u1").Return([]domain.Skill{}, nil)

		uc := usecase.NewJobUsecase(jobRepo, skillRepo, analyzer, nil, "u1")
		listing, err := uc.List(ctx, domain.JobFilter{Location: "Tokyo"})

		assert.NoError(t, err)
		assert.NotEmpty(t, listing.Jobs)
		assert.Equal(t, "fallback_data", listing.Source)
	})
}

func TestJobRefresh(t *testing.T) {
	ctx := context.Background()

	t.Run("Should propagate service failure without fallback", func(t *testing.T) {
		jobRepo := new(MockJobRepo)
		skillRepo := new(MockSkillRepo)
		analyzer := &stubAnalyzer{
			jobsFn: func(context.Context, []string) (*domain.JobFeed, error) {
				return nil, errors.New("unreachable")
			},
		}

		skillRepo.On("GetByUserID", ctx, "u1").Return([]domain.Skill{}, nil)

		uc := usecase.NewJobUsecase(jobRepo, skillRepo, analyzer, nil, "u1")
		assert.Error(t, uc.Refresh(ctx))
	})
}

func TestCareerPathList(t *testing.T) {
	ctx := context.Background()

	t.Run("Should persist service paths under the default user", func(t *testing.T) {
		pathRepo := new(MockCareerPathRepo)
		skillRepo := new(MockSkillRepo)
		analyzer := &stubAnalyzer{
			pathsFn: func(context.Context, []string) (*domain.PathFeed, error) {
				return &domain.PathFeed{
					Success: true,
					Paths:   []domain.CareerPath{{Title: "DevOps Engineer"}},
				}, nil
			},
		}

		skillRepo.On("GetByUserID", ctx, "u1").Return([]domain.Skill{}, nil)
		pathRepo.On("Upsert", ctx, mock.AnythingOfType("*domain.CareerPath")).
			Return(&domain.CareerPath{ID: "p1", UserID: "u1", Title: "DevOps Engineer"}, true, nil).
			Run(func(args mock.Arguments) {
				p := args.Get(1).(*domain.CareerPath)
				assert.Equal(t, "u1", p.UserID)
			})

		uc := usecase.NewCareerPathUsecase(pathRepo, skillRepo, analyzer, nil, "u1")
		paths, err := uc.List(ctx)

		assert.NoError(t, err)
		assert.Len(t, paths, 1)
		assert.Equal(t, "p1", paths[0].ID)
	})

	t.Run("Should serve recomputed feed values even for already-stored paths", func(t *testing.T) {
		store := memory.NewStore()
		pathRepo := memory.NewCareerPathRepository(store)
		skillRepo := new(MockSkillRepo)
		percentage := 40
		analyzer := &stubAnalyzer{
			pathsFn: func(context.Context, []string) (*domain.PathFeed, error) {
				return &domain.PathFeed{
					Success: true,
					Paths:   []domain.CareerPath{{Title: "Frontend Developer", MatchPercentage: intPtr(percentage)}},
				}, nil
			},
		}

		skillRepo.On("GetByUserID", ctx, "u1").Return([]domain.Skill{}, nil)

		uc := usecase.NewCareerPathUsecase(pathRepo, skillRepo, analyzer, nil, "u1")

		first, err := uc.List(ctx)
		assert.NoError(t, err)
		assert.Equal(t, 40, *first[0].MatchPercentage)

		// The service recomputes the match; the listing must reflect it
		// while the stored row keeps its identity.
		percentage = 80
		second, err := uc.List(ctx)
		assert.NoError(t, err)
		assert.Equal(t, 80, *second[0].MatchPercentage)
		assert.Equal(t, first[0].ID, second[0].ID)
	})

	t.Run("Should compute matching and missing skills when the service fails", func(t *testing.T) {
		pathRepo := new(MockCareerPathRepo)
		skillRepo := new(MockSkillRepo)
		analyzer := &stubAnalyzer{
			pathsFn: func(context.Context, []string) (*domain.PathFeed, error) {
				return nil, errors.New("timeout")
			},
		}

		skillRepo.On("GetByUserID", ctx, "u1").Return([]domain.Skill{
			{Name: "html"}, {Name: "CSS"}, {Name: "JavaScript"},
		}, nil)

		uc := usecase.NewCareerPathUsecase(pathRepo, skillRepo, analyzer, nil, "u1")
		paths, err := uc.List(ctx)

		assert.NoError(t, err)
		assert.Len(t, paths, 4)
		// Frontend requires HTML, CSS, JavaScript, React, TypeScript:
		// 3 of 5 match (case-insensitive), so it sorts first at 60%.
		assert.Equal(t, "Frontend Developer", paths[0].Title)
		assert.Equal(t, 60, *paths[0].MatchPercentage)
		assert.ElementsMatch(t, []string{"HTML", "CSS", "JavaScript"}, paths[0].MatchingSkills)
		assert.ElementsMatch(t, []string{"React", "TypeScript"}, paths[0].MissingSkills)
		for _, p := range paths[1:] {
			assert.LessOrEqual(t, *p.MatchPercentage, *paths[0].MatchPercentage)
		}
	})
}

func TestSkillOverview(t *testing.T) {
	ctx := context.Background()
	skillRepo := new(MockSkillRepo)
	skillRepo.On("GetByUserID", ctx, "u1").Return([]domain.Skill{{Name: "Go"}}, nil)

	uc := usecase.NewSkillUsecase(skillRepo, "u1")
	overview, err := uc.Overview(ctx)

	assert.NoError(t, err)
	assert.Equal(t, 1, overview.TotalSkills)
	assert.Len(t, overview.UserSkills, 1)
	assert.NotEmpty(t, overview.DemandSkills)
	assert.Equal(t, len(overview.DemandSkills), overview.DemandSkillsCount)
}

func TestActivityCreate(t *testing.T) {
	ctx := context.Background()
	validate := validator.New()

	t.Run("Should reject an activity with missing fields", func(t *testing.T) {
		repo := new(MockActivityRepo)
		uc := usecase.NewActivityUsecase(repo, validate, "u1")

		err := uc.Create(ctx, &domain.Activity{Type: "resume_upload"})
		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, http.StatusBadRequest, appErr.Code)
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Should reject an unknown status", func(t *testing.T) {
		repo := new(MockActivityRepo)
		uc := usecase.NewActivityUsecase(repo, validate, "u1")

		err := uc.Create(ctx, &domain.Activity{Type: "x", Description: "y", Status: "done"})
		assert.Error(t, err)
	})

	t.Run("Should force the default user id", func(t *testing.T) {
		repo := new(MockActivityRepo)
		repo.On("Create", ctx, mock.AnythingOfType("*domain.Activity")).Return(nil).Run(func(args mock.Arguments) {
			a := args.Get(1).(*domain.Activity)
			assert.Equal(t, "u1", a.UserID)
		})
		uc := usecase.NewActivityUsecase(repo, validate, "u1")

		err := uc.Create(ctx, &domain.Activity{
			UserID:      "someone-else",
			Type:        "course_started",
			Description: "Started CS50",
			Status:      domain.StatusInProgress,
		})
		assert.NoError(t, err)
	})
}

func TestCourseList(t *testing.T) {
	ctx := context.Background()

	t.Run("Should seed the catalog when the store is empty", func(t *testing.T) {
		repo := new(MockCourseRepo)
		repo.On("List", ctx, "").Return([]domain.Course{}, nil).Once()
		repo.On("Upsert", ctx, mock.AnythingOfType("*domain.Course")).Return(&domain.Course{}, true, nil)
		seeded := usecase.FallbackCourses()
		repo.On("List", ctx, "").Return(seeded, nil).Once()

		uc := usecase.NewCourseUsecase(repo, nil)
		courses, err := uc.List(ctx, "")

		assert.NoError(t, err)
		assert.Len(t, courses, len(seeded))
		repo.AssertNumberOfCalls(t, "Upsert", len(seeded))
	})

	t.Run("Should pass the category filter through", func(t *testing.T) {
		repo := new(MockCourseRepo)
		repo.On("List", ctx, "").Return([]domain.Course{{Title: "CS50"}}, nil).Once()
		repo.On("List", ctx, "Programming").Return([]domain.Course{{Title: "CS50"}}, nil).Once()

		uc := usecase.NewCourseUsecase(repo, nil)
		courses, err := uc.List(ctx, "Programming")

		assert.NoError(t, err)
		assert.Len(t, courses, 1)
		repo.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
	})
}

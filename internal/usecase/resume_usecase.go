package usecase

import (
	"context"
	"errors"
	"log/slog"
	"os"

	"go-careercoach-backend/internal/domain"
	"go-careercoach-backend/pkg/apperror"
)

type resumeUsecase struct {
	resumeRepo   domain.ResumeRepository
	skillRepo    domain.SkillRepository
	activityRepo domain.ActivityRepository
	analyzer     domain.ResumeAnalyzer
	logger       *slog.Logger
	userID       string
}

func NewResumeUsecase(
	resumeRepo domain.ResumeRepository,
	skillRepo domain.SkillRepository,
	activityRepo domain.ActivityRepository,
	analyzer domain.ResumeAnalyzer,
	logger *slog.Logger,
	userID string,
) domain.ResumeUsecase {
	if logger == nil {
		logger = slog.Default()
	}
	return &resumeUsecase{
		resumeRepo:   resumeRepo,
		skillRepo:    skillRepo,
		activityRepo: activityRepo,
		analyzer:     analyzer,
		logger:       logger,
		userID:       userID,
	}
}

// Upload runs the analyze-or-fallback pipeline: the file is handed to
// the analysis service; when the service fails the raw file text is
// stored with a fixed minimal skill set and score instead. Only the
// parse step selects the fallback branch — a store failure after a
// successful parse is a server error, not a reason to substitute
// fallback content. Either way a persisted upload is logged as an
// activity.
func (u *resumeUsecase) Upload(ctx context.Context, fileName, path string) (*domain.UploadResult, error) {
	var result *domain.UploadResult

	parsed, err := u.parse(ctx, fileName, path)
	if err != nil {
		u.logger.Warn("resume analysis unavailable, applying fallback", "file", fileName, "error", err)
		result, err = u.fallback(ctx, fileName, path)
	} else {
		result, err = u.storeAnalyzed(ctx, fileName, parsed)
	}
	if err != nil {
		return nil, apperror.Internal(err)
	}

	u.logUpload(ctx, fileName)
	return result, nil
}

func (u *resumeUsecase) parse(ctx context.Context, fileName, path string) (*domain.ParseResult, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return u.analyzer.ParseResume(ctx, fileName, file)
}

func (u *resumeUsecase) storeAnalyzed(ctx context.Context, fileName string, parsed *domain.ParseResult) (*domain.UploadResult, error) {
	resume, err := u.persist(ctx, fileName, parsed.Content, parsed.ParsedData, parsed.Score)
	if err != nil {
		return nil, err
	}

	extracted := 0
	if parsed.ParsedData != nil {
		extracted = len(parsed.ParsedData.Skills)
		u.storeSkills(ctx, parsed.ParsedData.Skills)
	}

	message := parsed.Message
	if message == "" {
		message = "Resume uploaded and analyzed successfully"
	}
	return &domain.UploadResult{
		Success:         true,
		Resume:          resume,
		Message:         message,
		ExtractedSkills: extracted,
	}, nil
}

func (u *resumeUsecase) fallback(ctx context.Context, fileName, path string) (*domain.UploadResult, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	parsedData := &domain.ParsedResume{Skills: fallbackResumeSkills}
	resume, err := u.persist(ctx, fileName, string(raw), parsedData, fallbackResumeScore)
	if err != nil {
		return nil, err
	}

	u.storeSkills(ctx, fallbackResumeSkills)

	return &domain.UploadResult{
		Success:         true,
		Resume:          resume,
		Message:         "Resume uploaded successfully (analysis service unavailable, basic processing applied)",
		ExtractedSkills: len(fallbackResumeSkills),
	}, nil
}

// persist creates the user's resume or, since a user holds at most one,
// patches the existing row on re-upload.
func (u *resumeUsecase) persist(ctx context.Context, fileName, content string, parsedData *domain.ParsedResume, score int) (*domain.Resume, error) {
	existing, err := u.resumeRepo.GetByUserID(ctx, u.userID)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	if existing != nil {
		return u.resumeRepo.Update(ctx, existing.ID, domain.ResumePatch{
			FileName:   &fileName,
			Content:    &content,
			ParsedData: parsedData,
			Score:      intPtr(score),
		})
	}

	resume := &domain.Resume{
		UserID:     u.userID,
		FileName:   fileName,
		Content:    content,
		ParsedData: parsedData,
		Score:      intPtr(score),
	}
	if err := u.resumeRepo.Create(ctx, resume); err != nil {
		return nil, err
	}
	return resume, nil
}

// storeSkills upserts one skill record per extracted name. Best-effort:
// a failing record is logged and skipped, never aborting the batch.
func (u *resumeUsecase) storeSkills(ctx context.Context, names []string) {
	for _, name := range names {
		if name == "" {
			continue
		}
		skill := &domain.Skill{
			UserID:   u.userID,
			Name:     name,
			Level:    domain.LevelIntermediate,
			Category: "Technical",
		}
		if _, _, err := u.skillRepo.Upsert(ctx, skill); err != nil {
			u.logger.Warn("could not store extracted skill", "skill", name, "error", err)
		}
	}
}

func (u *resumeUsecase) logUpload(ctx context.Context, fileName string) {
	activity := &domain.Activity{
		UserID:      u.userID,
		Type:        "resume_upload",
		Description: "Uploaded resume: " + fileName,
		Status:      domain.StatusCompleted,
	}
	if err := u.activityRepo.Create(ctx, activity); err != nil {
		u.logger.Warn("could not log resume upload activity", "error", err)
	}
}

func (u *resumeUsecase) Get(ctx context.Context) (*domain.Resume, error) {
	resume, err := u.resumeRepo.GetByUserID(ctx, u.userID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, apperror.NotFound("No resume found")
	}
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return resume, nil
}

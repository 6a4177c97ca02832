package usecase

import (
	"context"

	"go-careercoach-backend/internal/domain"
	"go-careercoach-backend/pkg/apperror"
)

type skillUsecase struct {
	skillRepo domain.SkillRepository
	userID    string
}

func NewSkillUsecase(skillRepo domain.SkillRepository, userID string) domain.SkillUsecase {
	return &skillUsecase{skillRepo: skillRepo, userID: userID}
}

// Overview combines the user's stored skills with the market-demand
// catalog. The demand list is a curated static dataset refreshed with
// releases rather than fetched live.
func (u *skillUsecase) Overview(ctx context.Context) (*domain.SkillOverview, error) {
	userSkills, err := u.skillRepo.GetByUserID(ctx, u.userID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if userSkills == nil {
		userSkills = []domain.Skill{}
	}

	demand := demandSkillsList()
	return &domain.SkillOverview{
		UserSkills:        userSkills,
		DemandSkills:      demand,
		TotalSkills:       len(userSkills),
		DemandSkillsCount: len(demand),
	}, nil
}

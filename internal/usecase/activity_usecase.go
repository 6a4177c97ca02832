package usecase

import (
	"context"

	"go-careercoach-backend/internal/domain"
	"go-careercoach-backend/pkg/apperror"

	"github.com/go-playground/validator/v10"
)

type activityUsecase struct {
	repo     domain.ActivityRepository
	validate *validator.Validate
	userID   string
}

func NewActivityUsecase(repo domain.ActivityRepository, validate *validator.Validate, userID string) domain.ActivityUsecase {
	return &activityUsecase{
		repo:     repo,
		validate: validate,
		userID:   userID,
	}
}

func (u *activityUsecase) List(ctx context.Context) ([]domain.Activity, error) {
	activities, err := u.repo.GetByUserID(ctx, u.userID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if activities == nil {
		activities = []domain.Activity{}
	}
	return activities, nil
}

func (u *activityUsecase) Create(ctx context.Context, activity *domain.Activity) error {
	// The dashboard is single-tenant; the body cannot pick a user.
	activity.UserID = u.userID

	if err := u.validate.Struct(activity); err != nil {
		return apperror.BadRequest("Invalid activity data")
	}

	if err := u.repo.Create(ctx, activity); err != nil {
		return apperror.Internal(err)
	}
	return nil
}

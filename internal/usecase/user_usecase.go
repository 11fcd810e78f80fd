package usecase

import (
	"context"
	"errors"

	"resume-portal-backend/internal/domain"
	"resume-portal-backend/pkg/apperror"
)

type userUsecase struct {
	userRepo domain.UserRepository
}

func NewUserUsecase(userRepo domain.UserRepository) domain.UserUsecase {
	return &userUsecase{userRepo: userRepo}
}

func (u *userUsecase) ListUsers(ctx context.Context) ([]domain.UserSummary, error) {
	return u.userRepo.FetchWithResumeCounts(ctx)
}

func (u *userUsecase) GetUser(ctx context.Context, id int64) (*domain.UserDetail, error) {
	user, err := u.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("User not found")
		}
		return nil, err
	}

	resumes, err := u.userRepo.FetchResumeRefsByEmail(ctx, user.EmailID)
	if err != nil {
		return nil, err
	}
	if resumes == nil {
		resumes = []domain.UserResumeRef{}
	}

	var created *string
	if !user.CreatedDate.IsZero() {
		s := user.CreatedDate.Format("2006-01-02 15:04:05")
		created = &s
	}

	return &domain.UserDetail{
		UserID:      user.UserID,
		Username:    user.Username,
		FirstName:   user.FirstName,
		LastName:    user.LastName,
		Email:       user.EmailID,
		Phone:       user.PhoneNumber,
		CreatedDate: created,
		Resumes:     resumes,
	}, nil
}

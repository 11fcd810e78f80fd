package usecase

import (
	"context"
	"errors"
	"strings"

	"resume-portal-backend/internal/domain"
	"resume-portal-backend/pkg/apperror"
	"resume-portal-backend/pkg/auth"
	"resume-portal-backend/pkg/validation"
)

var validUserTypes = map[string]bool{
	"admin":     true,
	"recruiter": true,
	"candidate": true,
}

type authUsecase struct {
	userRepo domain.UserRepository
}

func NewAuthUsecase(userRepo domain.UserRepository) domain.AuthUsecase {
	return &authUsecase{userRepo: userRepo}
}

func (u *authUsecase) Register(ctx context.Context, input *domain.RegisterInput) error {
	input.UserType = strings.TrimSpace(input.UserType)
	input.Username = strings.TrimSpace(input.Username)
	input.FirstName = strings.TrimSpace(input.FirstName)
	input.LastName = strings.TrimSpace(input.LastName)
	input.EmailID = strings.TrimSpace(input.EmailID)
	input.PhoneNumber = strings.TrimSpace(input.PhoneNumber)

	if input.UserType == "" || input.Username == "" || input.FirstName == "" ||
		input.LastName == "" || input.Password == "" || input.EmailID == "" ||
		input.PhoneNumber == "" {
		return apperror.BadRequest("All fields are required")
	}
	if !validUserTypes[input.UserType] {
		return apperror.BadRequest("Invalid user type")
	}
	if !validation.ValidUsername(input.Username) {
		return apperror.BadRequest("Invalid username format")
	}
	if !validation.ValidEmail(input.EmailID) {
		return apperror.BadRequest("Invalid email format")
	}
	if !validation.ValidPhone(input.PhoneNumber) {
		return apperror.BadRequest("Invalid phone number")
	}
	if !validation.ValidPassword(input.Password) {
		return apperror.BadRequest("Password must be at least 6 characters")
	}

	existing, err := u.userRepo.GetByUsernameOrEmail(ctx, input.Username, input.EmailID)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return err
	}
	if existing != nil {
		if existing.Username == input.Username {
			return apperror.Conflict("Username already taken")
		}
		return apperror.Conflict("Email already registered")
	}

	hashed, err := auth.HashPassword(input.Password)
	if err != nil {
		return err
	}

	user := &domain.User{
		Username:    input.Username,
		FirstName:   input.FirstName,
		LastName:    input.LastName,
		Password:    hashed,
		EmailID:     input.EmailID,
		PhoneNumber: input.PhoneNumber,
		UserType:    input.UserType,
	}
	return u.userRepo.Create(ctx, user)
}

func (u *authUsecase) Login(ctx context.Context, username, password string) (*domain.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, apperror.BadRequest("Username and password required")
	}

	user, err := u.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.Unauthorized("Invalid username or password")
		}
		return nil, err
	}

	if !auth.CheckPassword(user.Password, password) {
		return nil, apperror.Unauthorized("Invalid username or password")
	}
	return user, nil
}

func (u *authUsecase) CheckUsername(ctx context.Context, username string) (bool, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return false, nil
	}
	return u.userRepo.UsernameExists(ctx, username)
}

func (u *authUsecase) CheckEmail(ctx context.Context, email string) (bool, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return false, nil
	}
	return u.userRepo.EmailExists(ctx, email)
}

// Verify is a stateless existence check by user id. There is no session or
// token; the caller keeps the id client-side.
func (u *authUsecase) Verify(ctx context.Context, userID int64) (bool, error) {
	if userID <= 0 {
		return false, nil
	}
	_, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

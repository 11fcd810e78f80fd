package domain

import (
	"context"
	"errors"
	"time"
)

// Common domain errors
var ErrNotFound = errors.New("resource not found")

type User struct {
	UserID      int64     `json:"userId"`
	Username    string    `json:"username"`
	FirstName   string    `json:"firstName"`
	LastName    string    `json:"lastName"`
	Password    string    `json:"-"`
	EmailID     string    `json:"email"`
	PhoneNumber string    `json:"phone"`
	UserType    string    `json:"userType"`
	CreatedDate time.Time `json:"-"`
}

// UserSummary is one row of the admin user listing, with the number of
// resumes whose personal-information email matches the account email.
type UserSummary struct {
	UserID      int64   `json:"userId"`
	Username    string  `json:"username"`
	FirstName   string  `json:"firstName"`
	LastName    string  `json:"lastName"`
	Name        string  `json:"name"`
	Email       string  `json:"email"`
	Phone       string  `json:"phone"`
	CreatedDate *string `json:"createdDate"`
	ResumeCount int64   `json:"resumeCount"`
	Status      string  `json:"status"`
}

type UserResumeRef struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	CreatedDate *string `json:"createdDate"`
}

type UserDetail struct {
	UserID      int64           `json:"userId"`
	Username    string          `json:"username"`
	FirstName   string          `json:"firstName"`
	LastName    string          `json:"lastName"`
	Email       string          `json:"email"`
	Phone       string          `json:"phone"`
	CreatedDate *string         `json:"createdDate"`
	Resumes     []UserResumeRef `json:"resumes"`
}

type RegisterInput struct {
	UserType    string
	Username    string
	FirstName   string
	LastName    string
	Password    string
	EmailID     string
	PhoneNumber string
}

type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByUsername(ctx context.Context, username string) (*User, error)
	GetByID(ctx context.Context, id int64) (*User, error)
	UsernameExists(ctx context.Context, username string) (bool, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	// GetByUsernameOrEmail returns the first account matching either value,
	// or ErrNotFound when neither is taken.
	GetByUsernameOrEmail(ctx context.Context, username, email string) (*User, error)
	FetchWithResumeCounts(ctx context.Context) ([]UserSummary, error)
	FetchResumeRefsByEmail(ctx context.Context, email string) ([]UserResumeRef, error)
}

type AuthUsecase interface {
	Register(ctx context.Context, input *RegisterInput) error
	Login(ctx context.Context, username, password string) (*User, error)
	CheckUsername(ctx context.Context, username string) (bool, error)
	CheckEmail(ctx context.Context, email string) (bool, error)
	Verify(ctx context.Context, userID int64) (bool, error)
}

type UserUsecase interface {
	ListUsers(ctx context.Context) ([]UserSummary, error)
	GetUser(ctx context.Context, id int64) (*UserDetail, error)
}

package usecase_test

import (
	"context"
	"testing"

	"resume-portal-backend/internal/domain"
	"resume-portal-backend/internal/usecase"
	"resume-portal-backend/pkg/apperror"
	"resume-portal-backend/pkg/auth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// Mock Repositories
type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	return m.Called(ctx, user).Error(0)
}
func (m *MockUserRepo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) UsernameExists(ctx context.Context, username string) (bool, error) {
	args := m.Called(ctx, username)
	return args.Bool(0), args.Error(1)
}
func (m *MockUserRepo) EmailExists(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}
func (m *MockUserRepo) GetByUsernameOrEmail(ctx context.Context, username, email string) (*domain.User, error) {
	args := m.Called(ctx, username, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) FetchWithResumeCounts(ctx context.Context) ([]domain.UserSummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.UserSummary), args.Error(1)
}
func (m *MockUserRepo) FetchResumeRefsByEmail(ctx context.Context, email string) ([]domain.UserResumeRef, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.UserResumeRef), args.Error(1)
}

type MockResumeRepo struct {
	mock.Mock
}

func (m *MockResumeRepo) SaveDocument(ctx context.Context, doc *domain.ResumeDocument) (int64, error) {
	args := m.Called(ctx, doc)
	return args.Get(0).(int64), args.Error(1)
}
func (m *MockResumeRepo) Fetch(ctx context.Context) ([]domain.ResumeSummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ResumeSummary), args.Error(1)
}
func (m *MockResumeRepo) GetByID(ctx context.Context, id int64) (*domain.ResumeDetail, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ResumeDetail), args.Error(1)
}
func (m *MockResumeRepo) IncrementViewCount(ctx context.Context, id int64) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}
func (m *MockResumeRepo) IncrementDownloadCount(ctx context.Context, id int64) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}
func (m *MockResumeRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type MockJobRepo struct {
	mock.Mock
}

func (m *MockJobRepo) CreateWithMasterData(ctx context.Context, posting *domain.JobPosting) (int64, error) {
	args := m.Called(ctx, posting)
	return args.Get(0).(int64), args.Error(1)
}
func (m *MockJobRepo) UpdateWithMasterData(ctx context.Context, id int64, posting *domain.JobPosting) error {
	return m.Called(ctx, id, posting).Error(0)
}
func (m *MockJobRepo) GetByID(ctx context.Context, id int64) (*domain.Job, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Job), args.Error(1)
}
func (m *MockJobRepo) Fetch(ctx context.Context) ([]domain.Job, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Job), args.Error(1)
}
func (m *MockJobRepo) Search(ctx context.Context, filter *domain.JobSearchFilter) ([]domain.Job, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Job), args.Error(1)
}
func (m *MockJobRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func validRegisterInput() *domain.RegisterInput {
	return &domain.RegisterInput{
		UserType:    "candidate",
		Username:    "jane_doe",
		FirstName:   "Jane",
		LastName:    "Doe",
		Password:    "secret123",
		EmailID:     "jane@example.com",
		PhoneNumber: "9876543210",
	}
}

func appErrCode(err error) int {
	if appErr, ok := err.(*apperror.AppError); ok {
		return appErr.Code
	}
	return 0
}

func TestRegisterValidation(t *testing.T) {
	ctx := context.Background()

	t.Run("Should fail when a field is missing", func(t *testing.T) {
		uc := usecase.NewAuthUsecase(new(MockUserRepo))
		input := validRegisterInput()
		input.EmailID = ""
		err := uc.Register(ctx, input)
		assert.Error(t, err)
		assert.Equal(t, 400, appErrCode(err))
		assert.Contains(t, err.Error(), "All fields are required")
	})

	t.Run("Should reject unknown user types", func(t *testing.T) {
		uc := usecase.NewAuthUsecase(new(MockUserRepo))
		input := validRegisterInput()
		input.UserType = "superuser"
		err := uc.Register(ctx, input)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Invalid user type")
	})

	t.Run("Should reject a malformed email", func(t *testing.T) {
		uc := usecase.NewAuthUsecase(new(MockUserRepo))
		input := validRegisterInput()
		input.EmailID = "not-an-email"
		err := uc.Register(ctx, input)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Invalid email format")
	})

	t.Run("Should reject a short password", func(t *testing.T) {
		uc := usecase.NewAuthUsecase(new(MockUserRepo))
		input := validRegisterInput()
		input.Password = "abc"
		err := uc.Register(ctx, input)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "at least 6 characters")
	})

	t.Run("Should report a taken username as a conflict", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		uc := usecase.NewAuthUsecase(mockRepo)
		input := validRegisterInput()
		mockRepo.On("GetByUsernameOrEmail", ctx, input.Username, input.EmailID).
			Return(&domain.User{Username: input.Username, EmailID: "other@example.com"}, nil)

		err := uc.Register(ctx, input)
		assert.Error(t, err)
		assert.Equal(t, 409, appErrCode(err))
		assert.Contains(t, err.Error(), "Username already taken")
	})

	t.Run("Should report a taken email as a conflict", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		uc := usecase.NewAuthUsecase(mockRepo)
		input := validRegisterInput()
		mockRepo.On("GetByUsernameOrEmail", ctx, input.Username, input.EmailID).
			Return(&domain.User{Username: "someone_else", EmailID: input.EmailID}, nil)

		err := uc.Register(ctx, input)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Email already registered")
	})

	t.Run("Should store a bcrypt hash, never the plaintext", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		uc := usecase.NewAuthUsecase(mockRepo)
		input := validRegisterInput()
		mockRepo.On("GetByUsernameOrEmail", ctx, input.Username, input.EmailID).
			Return(nil, domain.ErrNotFound)
		mockRepo.On("Create", ctx, mock.AnythingOfType("*domain.User")).Return(nil).
			Run(func(args mock.Arguments) {
				user := args.Get(1).(*domain.User)
				assert.NotEqual(t, "secret123", user.Password)
				assert.True(t, auth.CheckPassword(user.Password, "secret123"))
			})

		err := uc.Register(ctx, input)
		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})
}

func TestLogin(t *testing.T) {
	ctx := context.Background()

	t.Run("Should reject empty credentials", func(t *testing.T) {
		uc := usecase.NewAuthUsecase(new(MockUserRepo))
		_, err := uc.Login(ctx, "", "")
		assert.Error(t, err)
		assert.Equal(t, 400, appErrCode(err))
	})

	t.Run("Should not reveal whether the username exists", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		uc := usecase.NewAuthUsecase(mockRepo)
		mockRepo.On("GetByUsername", ctx, "ghost").Return(nil, domain.ErrNotFound)

		_, err := uc.Login(ctx, "ghost", "whatever")
		assert.Error(t, err)
		assert.Equal(t, 401, appErrCode(err))
		assert.Contains(t, err.Error(), "Invalid username or password")
	})

	t.Run("Should reject a wrong password with the same message", func(t *testing.T) {
		hashed, err := auth.HashPassword("rightpass")
		assert.NoError(t, err)

		mockRepo := new(MockUserRepo)
		uc := usecase.NewAuthUsecase(mockRepo)
		mockRepo.On("GetByUsername", ctx, "jane_doe").
			Return(&domain.User{Username: "jane_doe", Password: hashed}, nil)

		_, err = uc.Login(ctx, "jane_doe", "wrongpass")
		assert.Error(t, err)
		assert.Equal(t, 401, appErrCode(err))
		assert.Contains(t, err.Error(), "Invalid username or password")
	})

	t.Run("Should return the account on success", func(t *testing.T) {
		hashed, err := auth.HashPassword("rightpass")
		assert.NoError(t, err)

		mockRepo := new(MockUserRepo)
		uc := usecase.NewAuthUsecase(mockRepo)
		mockRepo.On("GetByUsername", ctx, "jane_doe").
			Return(&domain.User{UserID: 7, Username: "jane_doe", Password: hashed}, nil)

		user, err := uc.Login(ctx, "jane_doe", "rightpass")
		assert.NoError(t, err)
		assert.Equal(t, int64(7), user.UserID)
	})
}

func TestVerify(t *testing.T) {
	ctx := context.Background()

	t.Run("Should be false for non-positive ids without touching the repo", func(t *testing.T) {
		uc := usecase.NewAuthUsecase(new(MockUserRepo))
		valid, err := uc.Verify(ctx, 0)
		assert.NoError(t, err)
		assert.False(t, valid)
	})

	t.Run("Should be false, not an error, for a missing user", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		uc := usecase.NewAuthUsecase(mockRepo)
		mockRepo.On("GetByID", ctx, int64(42)).Return(nil, domain.ErrNotFound)

		valid, err := uc.Verify(ctx, 42)
		assert.NoError(t, err)
		assert.False(t, valid)
	})

	t.Run("Should be true when the user exists", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		uc := usecase.NewAuthUsecase(mockRepo)
		mockRepo.On("GetByID", ctx, int64(42)).Return(&domain.User{UserID: 42}, nil)

		valid, err := uc.Verify(ctx, 42)
		assert.NoError(t, err)
		assert.True(t, valid)
	})
}

func TestSaveResumeShaping(t *testing.T) {
	ctx := context.Background()

	mockRepo := new(MockResumeRepo)
	uc := usecase.NewResumeUsecase(mockRepo)

	input := &domain.ResumeInput{
		Name: "Jane Doe",
		Experience: []domain.ExperienceInput{
			{Company: "Acme", JobRole: "Engineer", StartDate: "2020-01-01", EndDate: "2022-03-01"},
			{Company: "", JobRole: "Ghost role"},
		},
		Education: []domain.EducationInput{
			{College: "State College", Year: "abc", CGPA: "8.5"},
			{College: ""},
		},
		Projects: []domain.ProjectInput{
			{Title: "Portfolio", Link: "https://example.com"},
			{Title: ""},
		},
		TechnicalSkills: []string{"Go", "", "SQL"},
		Certifications:  []string{"", "AWS SAA"},
		Hobbies:         []string{"Chess"},
	}

	var saved *domain.ResumeDocument
	mockRepo.On("SaveDocument", ctx, mock.AnythingOfType("*domain.ResumeDocument")).
		Return(int64(11), nil).
		Run(func(args mock.Arguments) {
			saved = args.Get(1).(*domain.ResumeDocument)
		})

	id, err := uc.SaveResume(ctx, input)
	assert.NoError(t, err)
	assert.Equal(t, int64(11), id)

	assert.Equal(t, "Jane Doe - Resume", saved.Title)
	assert.Len(t, saved.Experience, 1)
	assert.Equal(t, "2 year(s) 2 month(s)", saved.Experience[0].Experience)
	assert.Len(t, saved.Education, 1)
	assert.Nil(t, saved.Education[0].Year)
	assert.NotNil(t, saved.Education[0].CGPA)
	assert.Equal(t, 8.5, *saved.Education[0].CGPA)
	assert.Len(t, saved.Projects, 1)
	assert.Len(t, saved.Skills, 2)
	assert.Equal(t, "Technical", saved.Skills[0].SkillType)
	assert.Equal(t, []string{"AWS SAA"}, saved.Certifications)
	assert.Equal(t, []string{"Chess"}, saved.Interests)
}

func TestDuration(t *testing.T) {
	t.Run("Should count whole months between dates", func(t *testing.T) {
		assert.Equal(t, "2 year(s) 2 month(s)", usecase.Duration("2020-01-01", "2022-03-01"))
		assert.Equal(t, "0 year(s) 0 month(s)", usecase.Duration("2021-05-15", "2021-05-20"))
		assert.Equal(t, "0 year(s) 11 month(s)", usecase.Duration("2021-01-01", "2021-12-01"))
	})

	t.Run("Should floor reversed ranges, never a negative month part", func(t *testing.T) {
		assert.Equal(t, "-1 year(s) 7 month(s)", usecase.Duration("2021-06-01", "2021-01-01"))
		assert.Equal(t, "-3 year(s) 10 month(s)", usecase.Duration("2022-03-01", "2020-01-01"))
	})

	t.Run("Should be empty on malformed or missing dates", func(t *testing.T) {
		assert.Equal(t, "", usecase.Duration("", "2022-03-01"))
		assert.Equal(t, "", usecase.Duration("2020-01-01", ""))
		assert.Equal(t, "", usecase.Duration("01/01/2020", "2022-03-01"))
		assert.Equal(t, "", usecase.Duration("2020-01-01", "garbage"))
	})
}

func TestSplitSkills(t *testing.T) {
	assert.Equal(t, []string{"Go", "SQL", "Docker"}, usecase.SplitSkills("Go, SQL ,Docker"))
	assert.Equal(t, []string{"Go"}, usecase.SplitSkills("Go"))
	assert.Nil(t, usecase.SplitSkills(""))
	assert.Nil(t, usecase.SplitSkills(" , ,"))
}

func TestJobPosting(t *testing.T) {
	ctx := context.Background()

	t.Run("Should require title, company, sector and course", func(t *testing.T) {
		uc := usecase.NewJobUsecase(new(MockJobRepo))
		posting := &domain.JobPosting{Title: "Backend Engineer", Company: "Acme", Sector: "IT"}
		_, err := uc.CreateJob(ctx, posting)
		assert.Error(t, err)
		assert.Equal(t, 400, appErrCode(err))
		assert.Contains(t, err.Error(), "Title, Company, Sector, and Course are required")
	})

	t.Run("Should derive the display location from city, state, country", func(t *testing.T) {
		mockRepo := new(MockJobRepo)
		uc := usecase.NewJobUsecase(mockRepo)
		posting := &domain.JobPosting{
			Title:   "Backend Engineer",
			Company: "Acme",
			Sector:  "IT",
			Course:  "B.Tech",
			City:    "Pune",
			State:   "Maharashtra",
			Country: "India",
		}
		mockRepo.On("CreateWithMasterData", ctx, posting).Return(int64(3), nil)

		id, err := uc.CreateJob(ctx, posting)
		assert.NoError(t, err)
		assert.Equal(t, int64(3), id)
		assert.Equal(t, "Pune, Maharashtra, India", posting.Location)
	})

	t.Run("Should skip missing location parts", func(t *testing.T) {
		mockRepo := new(MockJobRepo)
		uc := usecase.NewJobUsecase(mockRepo)
		posting := &domain.JobPosting{
			Title:   "Backend Engineer",
			Company: "Acme",
			Sector:  "IT",
			Course:  "B.Tech",
			Country: "India",
		}
		mockRepo.On("CreateWithMasterData", ctx, posting).Return(int64(4), nil)

		_, err := uc.CreateJob(ctx, posting)
		assert.NoError(t, err)
		assert.Equal(t, "India", posting.Location)
	})

	t.Run("Should pass inclusive experience bounds through untouched", func(t *testing.T) {
		mockRepo := new(MockJobRepo)
		uc := usecase.NewJobUsecase(mockRepo)

		min, max := 1.5, 3.0
		sectorID := int64(2)
		filter := &domain.JobSearchFilter{
			Keyword:       "  go backend  ",
			Location:      " Pune ",
			JobType:       "Full-Time",
			ExperienceMin: &min,
			ExperienceMax: &max,
			SectorID:      &sectorID,
		}

		var seen *domain.JobSearchFilter
		mockRepo.On("Search", ctx, mock.AnythingOfType("*domain.JobSearchFilter")).
			Return([]domain.Job{}, nil).
			Run(func(args mock.Arguments) {
				seen = args.Get(1).(*domain.JobSearchFilter)
			})

		_, err := uc.SearchJobs(ctx, filter)
		assert.NoError(t, err)
		assert.Equal(t, "go backend", seen.Keyword)
		assert.Equal(t, "Pune", seen.Location)
		assert.Equal(t, "Full-Time", seen.JobType)
		assert.Equal(t, 1.5, *seen.ExperienceMin)
		assert.Equal(t, 3.0, *seen.ExperienceMax)
		assert.Equal(t, int64(2), *seen.SectorID)
		assert.Nil(t, seen.CourseID)
	})

	t.Run("Should map a missing job to a 404 on update", func(t *testing.T) {
		mockRepo := new(MockJobRepo)
		uc := usecase.NewJobUsecase(mockRepo)
		posting := &domain.JobPosting{Title: "T", Company: "C", Sector: "S", Course: "X"}
		mockRepo.On("UpdateWithMasterData", ctx, int64(99), posting).Return(domain.ErrNotFound)

		err := uc.UpdateJob(ctx, 99, posting)
		assert.Error(t, err)
		assert.Equal(t, 404, appErrCode(err))
		assert.Contains(t, err.Error(), "Job not found")
	})
}

func TestGetUserDetail(t *testing.T) {
	ctx := context.Background()

	t.Run("Should map a missing user to a 404", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		uc := usecase.NewUserUsecase(mockRepo)
		mockRepo.On("GetByID", ctx, int64(5)).Return(nil, domain.ErrNotFound)

		_, err := uc.GetUser(ctx, 5)
		assert.Error(t, err)
		assert.Equal(t, 404, appErrCode(err))
	})

	t.Run("Should return an empty resume list, never nil", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		uc := usecase.NewUserUsecase(mockRepo)
		mockRepo.On("GetByID", ctx, int64(5)).
			Return(&domain.User{UserID: 5, EmailID: "jane@example.com"}, nil)
		mockRepo.On("FetchResumeRefsByEmail", ctx, "jane@example.com").
			Return(nil, nil)

		detail, err := uc.GetUser(ctx, 5)
		assert.NoError(t, err)
		assert.NotNil(t, detail.Resumes)
		assert.Len(t, detail.Resumes, 0)
	})
}

package v1

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"resume-portal-backend/internal/domain"
	"resume-portal-backend/pkg/apperror"
	"resume-portal-backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

// Stub usecases: function fields so each test overrides only what it hits.
type stubAuthUC struct {
	register      func(ctx context.Context, input *domain.RegisterInput) error
	login         func(ctx context.Context, username, password string) (*domain.User, error)
	checkUsername func(ctx context.Context, username string) (bool, error)
	checkEmail    func(ctx context.Context, email string) (bool, error)
	verify        func(ctx context.Context, userID int64) (bool, error)
}

func (s *stubAuthUC) Register(ctx context.Context, input *domain.RegisterInput) error {
	return s.register(ctx, input)
}
func (s *stubAuthUC) Login(ctx context.Context, username, password string) (*domain.User, error) {
	return s.login(ctx, username, password)
}
func (s *stubAuthUC) CheckUsername(ctx context.Context, username string) (bool, error) {
	return s.checkUsername(ctx, username)
}
func (s *stubAuthUC) CheckEmail(ctx context.Context, email string) (bool, error) {
	return s.checkEmail(ctx, email)
}
func (s *stubAuthUC) Verify(ctx context.Context, userID int64) (bool, error) {
	return s.verify(ctx, userID)
}

type stubResumeUC struct {
	save func(ctx context.Context, input *domain.ResumeInput) (int64, error)
	get  func(ctx context.Context, id int64) (*domain.ResumeDetail, error)
}

func (s *stubResumeUC) SaveResume(ctx context.Context, input *domain.ResumeInput) (int64, error) {
	return s.save(ctx, input)
}
func (s *stubResumeUC) ListResumes(ctx context.Context) ([]domain.ResumeSummary, error) {
	return nil, nil
}
func (s *stubResumeUC) GetResume(ctx context.Context, id int64) (*domain.ResumeDetail, error) {
	return s.get(ctx, id)
}
func (s *stubResumeUC) IncrementView(ctx context.Context, id int64) (int64, error) {
	return 0, nil
}
func (s *stubResumeUC) IncrementDownload(ctx context.Context, id int64) (int64, error) {
	return 0, nil
}
func (s *stubResumeUC) DeleteResume(ctx context.Context, id int64) error { return nil }

type stubAnalyticsUC struct {
	counts func(ctx context.Context) (*domain.EntityCounts, error)
}

func (s *stubAnalyticsUC) Overview(ctx context.Context) (*domain.AnalyticsOverview, error) {
	return nil, nil
}
func (s *stubAnalyticsUC) Timeline(ctx context.Context) ([]domain.TimelinePoint, error) {
	return nil, nil
}
func (s *stubAnalyticsUC) Counts(ctx context.Context) (*domain.EntityCounts, error) {
	return s.counts(ctx)
}

func newTestRouter(t *testing.T, deps RouterDeps) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	logger.Init()
	return NewRouter(deps)
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var parsed map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &parsed); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
	return w, parsed
}

func TestLoginResponseShapes(t *testing.T) {
	auth := &stubAuthUC{}
	r := newTestRouter(t, RouterDeps{AuthUC: auth})

	t.Run("success carries the user payload", func(t *testing.T) {
		auth.login = func(ctx context.Context, username, password string) (*domain.User, error) {
			return &domain.User{UserID: 7, Username: username, UserType: "candidate"}, nil
		}

		w, body := doJSON(t, r, http.MethodPost, "/api/login",
			gin.H{"username": "jane_doe", "password": "secret123"})

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, true, body["success"])
		assert.Equal(t, "Login successful", body["message"])
		user := body["user"].(map[string]any)
		assert.Equal(t, float64(7), user["userId"])
		assert.NotContains(t, user, "password")
	})

	t.Run("bad credentials use the message envelope", func(t *testing.T) {
		auth.login = func(ctx context.Context, username, password string) (*domain.User, error) {
			return nil, apperror.Unauthorized("Invalid username or password")
		}

		w, body := doJSON(t, r, http.MethodPost, "/api/login",
			gin.H{"username": "jane_doe", "password": "wrong"})

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, false, body["success"])
		assert.Equal(t, "Invalid username or password", body["message"])
		assert.NotContains(t, body, "error")
	})
}

func TestCheckEmailBindsEmailIdKey(t *testing.T) {
	var asked string
	auth := &stubAuthUC{
		checkEmail: func(ctx context.Context, email string) (bool, error) {
			asked = email
			return email == "taken@example.com", nil
		},
	}
	r := newTestRouter(t, RouterDeps{AuthUC: auth})

	w, body := doJSON(t, r, http.MethodPost, "/api/check-email",
		gin.H{"emailId": "taken@example.com"})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "taken@example.com", asked)
	assert.Equal(t, true, body["exists"])
}

func TestRegisterBindsEmailIdKey(t *testing.T) {
	var captured *domain.RegisterInput
	auth := &stubAuthUC{
		register: func(ctx context.Context, input *domain.RegisterInput) error {
			captured = input
			return nil
		},
	}
	r := newTestRouter(t, RouterDeps{AuthUC: auth})

	w, body := doJSON(t, r, http.MethodPost, "/api/register", gin.H{
		"userType":    "candidate",
		"username":    "jane_doe",
		"firstName":   "Jane",
		"lastName":    "Doe",
		"password":    "secret123",
		"emailId":     "jane@example.com",
		"phoneNumber": "9876543210",
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "jane@example.com", captured.EmailID)
	assert.Equal(t, "9876543210", captured.PhoneNumber)
}

func TestCheckUsernameDegradesToFalse(t *testing.T) {
	auth := &stubAuthUC{
		checkUsername: func(ctx context.Context, username string) (bool, error) {
			return false, errors.New("connection refused")
		},
	}
	r := newTestRouter(t, RouterDeps{AuthUC: auth})

	w, body := doJSON(t, r, http.MethodPost, "/api/check-username", gin.H{"username": "jane_doe"})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, false, body["exists"])
}

func TestVerifyAlwaysResponds200(t *testing.T) {
	auth := &stubAuthUC{
		verify: func(ctx context.Context, userID int64) (bool, error) {
			return false, errors.New("connection refused")
		},
	}
	r := newTestRouter(t, RouterDeps{AuthUC: auth})

	w, body := doJSON(t, r, http.MethodPost, "/api/verify", gin.H{"userId": 42})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, false, body["valid"])
}

func TestGetResumeNotFoundUsesErrorEnvelope(t *testing.T) {
	resume := &stubResumeUC{
		get: func(ctx context.Context, id int64) (*domain.ResumeDetail, error) {
			return nil, apperror.NotFound("Resume not found")
		},
	}
	r := newTestRouter(t, RouterDeps{ResumeUC: resume})

	w, body := doJSON(t, r, http.MethodGet, "/api/get-resume/99", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Resume not found", body["error"])
	assert.NotContains(t, body, "message")
}

func TestHealth(t *testing.T) {
	t.Run("reports counts when the database answers", func(t *testing.T) {
		analytics := &stubAnalyticsUC{
			counts: func(ctx context.Context) (*domain.EntityCounts, error) {
				return &domain.EntityCounts{Users: 3, Resumes: 8, Jobs: 2}, nil
			},
		}
		r := newTestRouter(t, RouterDeps{AnalyticsUC: analytics})

		w, body := doJSON(t, r, http.MethodGet, "/api/health", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "OK", body["status"])
		assert.Equal(t, "Connected", body["database"])
		assert.Equal(t, float64(3), body["total_users"])
		assert.Equal(t, float64(8), body["total_resumes"])
		assert.Equal(t, float64(2), body["total_jobs"])
		assert.NotEmpty(t, body["timestamp"])
	})

	t.Run("degrades to ERROR when the database is down", func(t *testing.T) {
		analytics := &stubAnalyticsUC{
			counts: func(ctx context.Context) (*domain.EntityCounts, error) {
				return nil, errors.New("connection refused")
			},
		}
		r := newTestRouter(t, RouterDeps{AnalyticsUC: analytics})

		w, body := doJSON(t, r, http.MethodGet, "/api/health", nil)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, "ERROR", body["status"])
		assert.Contains(t, body["message"], "connection refused")
	})
}

func TestSaveResumeCoercesLooseNumbers(t *testing.T) {
	var captured *domain.ResumeInput
	resume := &stubResumeUC{
		save: func(ctx context.Context, input *domain.ResumeInput) (int64, error) {
			captured = input
			return 5, nil
		},
	}
	r := newTestRouter(t, RouterDeps{ResumeUC: resume})

	w, body := doJSON(t, r, http.MethodPost, "/api/save-resume", gin.H{
		"name": "Jane Doe",
		"education": []gin.H{
			{"college": "State College", "year": 2023, "cgpa": "8.5"},
			{"college": "Other College", "year": "2019", "cgpa": 7.25},
		},
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, float64(5), body["resume_id"])

	assert.Len(t, captured.Education, 2)
	assert.Equal(t, "2023", captured.Education[0].Year)
	assert.Equal(t, "8.5", captured.Education[0].CGPA)
	assert.Equal(t, "2019", captured.Education[1].Year)
	assert.Equal(t, "7.25", captured.Education[1].CGPA)
}

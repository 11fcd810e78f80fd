package usecase

import (
	"context"
	"errors"
	"strings"

	"resume-portal-backend/internal/domain"
	"resume-portal-backend/pkg/apperror"
)

type jobUsecase struct {
	jobRepo domain.JobRepository
}

func NewJobUsecase(jobRepo domain.JobRepository) domain.JobUsecase {
	return &jobUsecase{jobRepo: jobRepo}
}

func (u *jobUsecase) CreateJob(ctx context.Context, posting *domain.JobPosting) (int64, error) {
	if err := preparePosting(posting); err != nil {
		return 0, err
	}
	return u.jobRepo.CreateWithMasterData(ctx, posting)
}

func (u *jobUsecase) UpdateJob(ctx context.Context, id int64, posting *domain.JobPosting) error {
	if err := preparePosting(posting); err != nil {
		return err
	}
	err := u.jobRepo.UpdateWithMasterData(ctx, id, posting)
	if errors.Is(err, domain.ErrNotFound) {
		return apperror.NotFound("Job not found")
	}
	return err
}

func (u *jobUsecase) GetJob(ctx context.Context, id int64) (*domain.Job, error) {
	job, err := u.jobRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Job not found")
		}
		return nil, err
	}
	return job, nil
}

func (u *jobUsecase) ListJobs(ctx context.Context) ([]domain.Job, error) {
	return u.jobRepo.Fetch(ctx)
}

func (u *jobUsecase) SearchJobs(ctx context.Context, filter *domain.JobSearchFilter) ([]domain.Job, error) {
	filter.Keyword = strings.TrimSpace(filter.Keyword)
	filter.Location = strings.TrimSpace(filter.Location)
	filter.JobType = strings.TrimSpace(filter.JobType)
	return u.jobRepo.Search(ctx, filter)
}

func (u *jobUsecase) DeleteJob(ctx context.Context, id int64) error {
	err := u.jobRepo.Delete(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return apperror.NotFound("Job not found")
	}
	return err
}

// preparePosting trims the free-text master-data fields, derives the display
// location and enforces the required fields before any row is touched.
func preparePosting(posting *domain.JobPosting) error {
	posting.Title = strings.TrimSpace(posting.Title)
	posting.Company = strings.TrimSpace(posting.Company)
	posting.Sector = strings.TrimSpace(posting.Sector)
	posting.Course = strings.TrimSpace(posting.Course)
	posting.JobType = strings.TrimSpace(posting.JobType)
	posting.Country = strings.TrimSpace(posting.Country)
	posting.State = strings.TrimSpace(posting.State)
	posting.City = strings.TrimSpace(posting.City)
	posting.SalaryPackage = strings.TrimSpace(posting.SalaryPackage)
	posting.ContactEmail = strings.TrimSpace(posting.ContactEmail)
	posting.Benefits = strings.TrimSpace(posting.Benefits)

	if posting.Title == "" || posting.Company == "" || posting.Sector == "" || posting.Course == "" {
		return apperror.BadRequest("Title, Company, Sector, and Course are required")
	}

	posting.Location = joinLocation(posting.City, posting.State, posting.Country)
	return nil
}

func joinLocation(parts ...string) string {
	var present []string
	for _, part := range parts {
		if part != "" {
			present = append(present, part)
		}
	}
	return strings.Join(present, ", ")
}

// SplitSkills breaks comma-separated skill input into trimmed names,
// discarding empty fragments.
func SplitSkills(input string) []string {
	var skills []string
	for _, fragment := range strings.Split(input, ",") {
		if name := strings.TrimSpace(fragment); name != "" {
			skills = append(skills, name)
		}
	}
	return skills
}

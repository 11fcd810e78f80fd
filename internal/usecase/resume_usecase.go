package usecase

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"resume-portal-backend/internal/domain"
	"resume-portal-backend/pkg/apperror"
)

const dateLayout = "2006-01-02"

type resumeUsecase struct {
	resumeRepo domain.ResumeRepository
}

func NewResumeUsecase(resumeRepo domain.ResumeRepository) domain.ResumeUsecase {
	return &resumeUsecase{resumeRepo: resumeRepo}
}

// SaveResume shapes the raw payload into the row set written by one
// transaction. Malformed child entries are skipped or softened, never fatal:
// a bad date yields an empty duration, a bad year or cgpa stores null.
func (u *resumeUsecase) SaveResume(ctx context.Context, input *domain.ResumeInput) (int64, error) {
	doc := &domain.ResumeDocument{
		Title: resumeTitle(input.Name),
		Personal: domain.PersonalInformation{
			FullName:        input.Name,
			Email:           input.Email,
			PhoneNumber:     input.Phone,
			DateOfBirth:     input.DOB,
			Location:        input.Location,
			PhotoPath:       input.Photo,
			LinkedInURL:     input.LinkedIn,
			GitHubURL:       input.GitHub,
			CareerObjective: input.Objective,
		},
	}

	for _, exp := range input.Experience {
		if exp.Company == "" {
			continue
		}
		doc.Experience = append(doc.Experience, domain.WorkExperience{
			CompanyName:     exp.Company,
			JobRole:         exp.JobRole,
			DateOfJoin:      exp.StartDate,
			LastWorkingDate: exp.EndDate,
			Experience:      Duration(exp.StartDate, exp.EndDate),
		})
	}

	for _, edu := range input.Education {
		if edu.College == "" {
			continue
		}
		doc.Education = append(doc.Education, domain.Education{
			College:    edu.College,
			University: edu.University,
			Course:     edu.Course,
			Year:       parseYear(edu.Year),
			CGPA:       parseCGPA(edu.CGPA),
		})
	}

	for _, proj := range input.Projects {
		if proj.Title == "" {
			continue
		}
		doc.Projects = append(doc.Projects, domain.Project{
			Title:        proj.Title,
			Link:         proj.Link,
			Organization: proj.Company,
			Description:  proj.Description,
		})
	}

	appendSkills(doc, "Personal", input.PersonalSkills)
	appendSkills(doc, "Professional", input.ProfessionalSkills)
	appendSkills(doc, "Technical", input.TechnicalSkills)

	for _, cert := range input.Certifications {
		if cert != "" {
			doc.Certifications = append(doc.Certifications, cert)
		}
	}
	for _, hobby := range input.Hobbies {
		if hobby != "" {
			doc.Interests = append(doc.Interests, hobby)
		}
	}

	return u.resumeRepo.SaveDocument(ctx, doc)
}

func (u *resumeUsecase) ListResumes(ctx context.Context) ([]domain.ResumeSummary, error) {
	return u.resumeRepo.Fetch(ctx)
}

func (u *resumeUsecase) GetResume(ctx context.Context, id int64) (*domain.ResumeDetail, error) {
	detail, err := u.resumeRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Resume not found")
		}
		return nil, err
	}
	return detail, nil
}

func (u *resumeUsecase) IncrementView(ctx context.Context, id int64) (int64, error) {
	count, err := u.resumeRepo.IncrementViewCount(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return 0, apperror.NotFound("Resume not found")
	}
	return count, err
}

func (u *resumeUsecase) IncrementDownload(ctx context.Context, id int64) (int64, error) {
	count, err := u.resumeRepo.IncrementDownloadCount(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return 0, apperror.NotFound("Resume not found")
	}
	return count, err
}

func (u *resumeUsecase) DeleteResume(ctx context.Context, id int64) error {
	err := u.resumeRepo.Delete(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return apperror.NotFound("Resume not found")
	}
	return err
}

func resumeTitle(name string) string {
	if name == "" {
		name = "Untitled"
	}
	return name + " - Resume"
}

// Duration renders the span between two YYYY-MM-DD dates as
// "<years> year(s) <months> month(s)". Any parse failure yields an empty
// string; the surrounding save continues regardless.
func Duration(startDate, endDate string) string {
	if startDate == "" || endDate == "" {
		return ""
	}
	start, err := time.Parse(dateLayout, startDate)
	if err != nil {
		return ""
	}
	end, err := time.Parse(dateLayout, endDate)
	if err != nil {
		return ""
	}

	months := (end.Year()-start.Year())*12 + int(end.Month()) - int(start.Month())
	// Floored divmod so reversed date ranges render the same way they
	// always have ("-1 year(s) 7 month(s)", never a negative month part).
	years, rem := months/12, months%12
	if rem < 0 {
		years--
		rem += 12
	}
	return fmt.Sprintf("%d year(s) %d month(s)", years, rem)
}

func parseYear(s string) *int64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	year, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return nil
	}
	return &year
}

func parseCGPA(s string) *float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	cgpa, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &cgpa
}

func appendSkills(doc *domain.ResumeDocument, skillType string, names []string) {
	for _, name := range names {
		if name == "" {
			continue
		}
		doc.Skills = append(doc.Skills, domain.SkillEntry{
			SkillType: skillType,
			SkillName: name,
		})
	}
}

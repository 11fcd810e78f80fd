package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"resume-portal-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type resumeRepo struct {
	db *pgxpool.Pool
}

func NewResumeRepository(db *pgxpool.Pool) domain.ResumeRepository {
	return &resumeRepo{db: db}
}

// SaveDocument writes the resume and all of its child rows inside one
// transaction. Nothing is visible to readers unless every insert succeeds.
func (r *resumeRepo) SaveDocument(ctx context.Context, doc *domain.ResumeDocument) (int64, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback(ctx)

	now := time.Now()

	var resumeID int64
	err = tx.QueryRow(ctx, `
		INSERT INTO resumes (resume_title, status, created_date, updated_date, visitor_count, download_count)
		VALUES ($1, 'Active', $2, $2, 0, 0)
		RETURNING resume_id`,
		doc.Title, now,
	).Scan(&resumeID)
	if err != nil {
		return 0, fmt.Errorf("insert resume: %w", err)
	}

	p := doc.Personal
	var dob any
	if p.DateOfBirth != "" {
		dob = p.DateOfBirth
	}
	_, err = tx.Exec(ctx, `
		INSERT INTO personal_information
			(resume_id, full_name, email, phone_number, date_of_birth, location,
			 photo_path, linkedin_url, github_url, career_objective, created_date, updated_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $11)`,
		resumeID, p.FullName, p.Email, p.PhoneNumber, dob, p.Location,
		p.PhotoPath, p.LinkedInURL, p.GitHubURL, p.CareerObjective, now,
	)
	if err != nil {
		return 0, fmt.Errorf("insert personal information: %w", err)
	}

	for _, exp := range doc.Experience {
		_, err = tx.Exec(ctx, `
			INSERT INTO work_experience
				(resume_id, company_name, job_role, date_of_join, last_working_date, experience, created_date, updated_date)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $7)`,
			resumeID, exp.CompanyName, exp.JobRole, exp.DateOfJoin, exp.LastWorkingDate, exp.Experience, now,
		)
		if err != nil {
			return 0, fmt.Errorf("insert work experience: %w", err)
		}
	}

	for _, edu := range doc.Education {
		_, err = tx.Exec(ctx, `
			INSERT INTO education
				(resume_id, college, university, course, year, cgpa, created_date, updated_date)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $7)`,
			resumeID, edu.College, edu.University, edu.Course, edu.Year, edu.CGPA, now,
		)
		if err != nil {
			return 0, fmt.Errorf("insert education: %w", err)
		}
	}

	for _, proj := range doc.Projects {
		_, err = tx.Exec(ctx, `
			INSERT INTO projects
				(resume_id, project_title, project_link, organization, description, created_date, updated_date)
			VALUES ($1, $2, $3, $4, $5, $6, $6)`,
			resumeID, proj.Title, proj.Link, proj.Organization, proj.Description, now,
		)
		if err != nil {
			return 0, fmt.Errorf("insert project: %w", err)
		}
	}

	for _, skill := range doc.Skills {
		_, err = tx.Exec(ctx, `
			INSERT INTO skills (resume_id, skill_type, skill_name, created_date, updated_date)
			VALUES ($1, $2, $3, $4, $4)`,
			resumeID, skill.SkillType, skill.SkillName, now,
		)
		if err != nil {
			return 0, fmt.Errorf("insert skill: %w", err)
		}
	}

	for _, cert := range doc.Certifications {
		_, err = tx.Exec(ctx, `
			INSERT INTO certifications (resume_id, certification_name, created_date, updated_date)
			VALUES ($1, $2, $3, $3)`,
			resumeID, cert, now,
		)
		if err != nil {
			return 0, fmt.Errorf("insert certification: %w", err)
		}
	}

	for _, interest := range doc.Interests {
		_, err = tx.Exec(ctx, `
			INSERT INTO interests (resume_id, interest_name, created_date, updated_date)
			VALUES ($1, $2, $3, $3)`,
			resumeID, interest, now,
		)
		if err != nil {
			return 0, fmt.Errorf("insert interest: %w", err)
		}
	}

	return resumeID, tx.Commit(ctx)
}

func (r *resumeRepo) Fetch(ctx context.Context) ([]domain.ResumeSummary, error) {
	query := `
		SELECT
			r.resume_id, r.resume_title, r.status,
			p.full_name, p.email, p.phone_number, p.location,
			r.created_date, r.updated_date,
			COALESCE(r.visitor_count, 0), COALESCE(r.download_count, 0)
		FROM resumes r
		LEFT JOIN personal_information p ON r.resume_id = p.resume_id
		ORDER BY r.created_date DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var resumes []domain.ResumeSummary
	for rows.Next() {
		var s domain.ResumeSummary
		var created, updated *time.Time
		if err := rows.Scan(&s.ID, &s.Title, &s.Status,
			&s.Name, &s.Email, &s.Phone, &s.Location,
			&created, &updated, &s.VisitorCount, &s.DownloadCount); err != nil {
			return nil, err
		}
		s.CreatedAt = fmtTimestamp(created)
		s.UpdatedAt = fmtTimestamp(updated)
		resumes = append(resumes, s)
	}
	return resumes, rows.Err()
}

func (r *resumeRepo) GetByID(ctx context.Context, id int64) (*domain.ResumeDetail, error) {
	query := `
		SELECT
			r.resume_id, r.resume_title, r.status, r.created_date, r.updated_date,
			COALESCE(r.visitor_count, 0), COALESCE(r.download_count, 0),
			p.full_name, p.email, p.phone_number, p.date_of_birth, p.location,
			p.linkedin_url, p.github_url, p.career_objective
		FROM resumes r
		LEFT JOIN personal_information p ON r.resume_id = p.resume_id
		WHERE r.resume_id = $1`

	var d domain.ResumeDetail
	var created, updated, dob *time.Time
	err := r.db.QueryRow(ctx, query, id).Scan(
		&d.ID, &d.Title, &d.Status, &created, &updated,
		&d.VisitorCount, &d.DownloadCount,
		&d.Name, &d.Email, &d.Phone, &dob, &d.Location,
		&d.LinkedIn, &d.GitHub, &d.Objective,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	d.CreatedAt = fmtTimestamp(created)
	d.UpdatedAt = fmtTimestamp(updated)
	d.DOB = fmtDate(dob)

	if err := r.fetchChildren(ctx, id, &d); err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *resumeRepo) fetchChildren(ctx context.Context, id int64, d *domain.ResumeDetail) error {
	d.Experience = []domain.ExperienceDetail{}
	d.Education = []domain.EducationDetail{}
	d.Projects = []domain.ProjectDetail{}
	d.Skills = []domain.SkillDetail{}

	rows, err := r.db.Query(ctx,
		`SELECT company_name, job_role, date_of_join, last_working_date FROM work_experience WHERE resume_id = $1`, id)
	if err != nil {
		return err
	}
	for rows.Next() {
		var e domain.ExperienceDetail
		var start, end *time.Time
		if err := rows.Scan(&e.Company, &e.Role, &start, &end); err != nil {
			rows.Close()
			return err
		}
		e.Start = fmtDate(start)
		e.End = fmtDate(end)
		d.Experience = append(d.Experience, e)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return err
	}

	rows, err = r.db.Query(ctx,
		`SELECT college, course, year, cgpa FROM education WHERE resume_id = $1`, id)
	if err != nil {
		return err
	}
	for rows.Next() {
		var e domain.EducationDetail
		if err := rows.Scan(&e.College, &e.Course, &e.Year, &e.CGPA); err != nil {
			rows.Close()
			return err
		}
		d.Education = append(d.Education, e)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return err
	}

	rows, err = r.db.Query(ctx,
		`SELECT project_title, project_link, description FROM projects WHERE resume_id = $1`, id)
	if err != nil {
		return err
	}
	for rows.Next() {
		var p domain.ProjectDetail
		if err := rows.Scan(&p.Title, &p.Link, &p.Desc); err != nil {
			rows.Close()
			return err
		}
		d.Projects = append(d.Projects, p)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return err
	}

	rows, err = r.db.Query(ctx,
		`SELECT skill_name, skill_type FROM skills WHERE resume_id = $1`, id)
	if err != nil {
		return err
	}
	for rows.Next() {
		var s domain.SkillDetail
		if err := rows.Scan(&s.Name, &s.Type); err != nil {
			rows.Close()
			return err
		}
		d.Skills = append(d.Skills, s)
	}
	rows.Close()
	return rows.Err()
}

// IncrementViewCount bumps the counter without locking; concurrent bumps can
// lose updates, which the contract accepts.
func (r *resumeRepo) IncrementViewCount(ctx context.Context, id int64) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `
		UPDATE resumes
		SET visitor_count = COALESCE(visitor_count, 0) + 1, updated_date = NOW()
		WHERE resume_id = $1
		RETURNING visitor_count`, id).Scan(&count)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, domain.ErrNotFound
	}
	return count, err
}

func (r *resumeRepo) IncrementDownloadCount(ctx context.Context, id int64) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `
		UPDATE resumes
		SET download_count = COALESCE(download_count, 0) + 1, updated_date = NOW()
		WHERE resume_id = $1
		RETURNING download_count`, id).Scan(&count)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, domain.ErrNotFound
	}
	return count, err
}

// Delete removes the parent row; child rows go with it via ON DELETE CASCADE.
func (r *resumeRepo) Delete(ctx context.Context, id int64) error {
	result, err := r.db.Exec(ctx, `DELETE FROM resumes WHERE resume_id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

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

type jobRepo struct {
	db       *pgxpool.Pool
	resolver masterDataResolver
}

func NewJobRepository(db *pgxpool.Pool) domain.JobRepository {
	return &jobRepo{db: db}
}

// resolveMasterData runs the fixed get-or-create sequence for a posting:
// company, then sector, then course, then country/state/city (only when all
// three location fields are present). Skill resolution happens after the job
// row exists because the links need its id.
func (r *jobRepo) resolveMasterData(ctx context.Context, tx pgx.Tx, posting *domain.JobPosting) (companyID int64, sectorID, courseID, cityID *int64, err error) {
	companyID, err = r.resolver.Company(ctx, tx, posting.Company)
	if err != nil {
		return 0, nil, nil, nil, fmt.Errorf("resolve company: %w", err)
	}

	if posting.Sector != "" {
		id, err := r.resolver.Sector(ctx, tx, posting.Sector)
		if err != nil {
			return 0, nil, nil, nil, fmt.Errorf("resolve sector: %w", err)
		}
		sectorID = &id
	}

	if posting.Course != "" {
		id, err := r.resolver.Course(ctx, tx, posting.Course)
		if err != nil {
			return 0, nil, nil, nil, fmt.Errorf("resolve course: %w", err)
		}
		courseID = &id
	}

	if posting.City != "" && posting.State != "" && posting.Country != "" {
		countryID, err := r.resolver.Country(ctx, tx, posting.Country)
		if err != nil {
			return 0, nil, nil, nil, fmt.Errorf("resolve country: %w", err)
		}
		stateID, err := r.resolver.State(ctx, tx, posting.State, countryID)
		if err != nil {
			return 0, nil, nil, nil, fmt.Errorf("resolve state: %w", err)
		}
		id, err := r.resolver.City(ctx, tx, posting.City, stateID)
		if err != nil {
			return 0, nil, nil, nil, fmt.Errorf("resolve city: %w", err)
		}
		cityID = &id
	}

	return companyID, sectorID, courseID, cityID, nil
}

func (r *jobRepo) linkSkills(ctx context.Context, tx pgx.Tx, jobID int64, skills []string) error {
	for _, name := range skills {
		skillID, err := r.resolver.Skill(ctx, tx, name)
		if err != nil {
			return fmt.Errorf("resolve skill %q: %w", name, err)
		}
		if _, err := tx.Exec(ctx, `INSERT INTO job_skills (job_id, skill_id) VALUES ($1, $2)`, jobID, skillID); err != nil {
			return fmt.Errorf("link skill %q: %w", name, err)
		}
	}
	return nil
}

func (r *jobRepo) CreateWithMasterData(ctx context.Context, posting *domain.JobPosting) (int64, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback(ctx)

	companyID, sectorID, courseID, cityID, err := r.resolveMasterData(ctx, tx, posting)
	if err != nil {
		return 0, err
	}

	var deadline any
	if posting.Deadline != "" {
		deadline = posting.Deadline
	}

	query := `
		INSERT INTO jobs (
			company_id, job_title, job_description, education_requirement,
			experience_years, job_type, salary_package, job_location,
			application_deadline, benefits, contact_email, job_status, posted_date,
			sector_id, course_id, city_id
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, 'Open', $12, $13, $14, $15)
		RETURNING job_id`

	var jobID int64
	err = tx.QueryRow(ctx, query,
		companyID, posting.Title, posting.Description, posting.Course,
		posting.ExperienceYears, posting.JobType, posting.SalaryPackage, posting.Location,
		deadline, posting.Benefits, posting.ContactEmail, time.Now(),
		sectorID, courseID, cityID,
	).Scan(&jobID)
	if err != nil {
		return 0, fmt.Errorf("insert job: %w", err)
	}

	if err := r.linkSkills(ctx, tx, jobID, posting.Skills); err != nil {
		return 0, err
	}

	return jobID, tx.Commit(ctx)
}

func (r *jobRepo) UpdateWithMasterData(ctx context.Context, id int64, posting *domain.JobPosting) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	companyID, sectorID, courseID, cityID, err := r.resolveMasterData(ctx, tx, posting)
	if err != nil {
		return err
	}

	var deadline any
	if posting.Deadline != "" {
		deadline = posting.Deadline
	}

	query := `
		UPDATE jobs SET
			company_id = $2, job_title = $3, job_description = $4,
			education_requirement = $5, experience_years = $6, job_type = $7,
			salary_package = $8, job_location = $9, application_deadline = $10,
			benefits = $11, contact_email = $12,
			sector_id = $13, course_id = $14, city_id = $15
		WHERE job_id = $1`

	result, err := tx.Exec(ctx, query,
		id, companyID, posting.Title, posting.Description,
		posting.Course, posting.ExperienceYears, posting.JobType,
		posting.SalaryPackage, posting.Location, deadline,
		posting.Benefits, posting.ContactEmail,
		sectorID, courseID, cityID,
	)
	if err != nil {
		return fmt.Errorf("update job: %w", err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}

	// Skill links are replaced wholesale: delete all, re-resolve, re-add.
	if _, err := tx.Exec(ctx, `DELETE FROM job_skills WHERE job_id = $1`, id); err != nil {
		return fmt.Errorf("clear skill links: %w", err)
	}
	if err := r.linkSkills(ctx, tx, id, posting.Skills); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

const jobSelectColumns = `
	j.job_id, j.job_title, j.job_description, j.education_requirement,
	j.experience_years, j.job_type, j.salary_package, j.job_location,
	j.application_deadline, j.benefits, j.contact_email, j.job_status,
	j.posted_date, c.company_name, c.company_id,
	s.sector_name, s.sector_id,
	co.course_name, co.course_id,
	ci.city_name, ci.city_id,
	st.state_name, st.state_id,
	cn.country_name, cn.country_id`

const jobSelectJoins = `
	FROM jobs j
	INNER JOIN companies c ON j.company_id = c.company_id
	LEFT JOIN sectors s ON j.sector_id = s.sector_id
	LEFT JOIN courses co ON j.course_id = co.course_id
	LEFT JOIN cities ci ON j.city_id = ci.city_id
	LEFT JOIN states st ON ci.state_id = st.state_id
	LEFT JOIN countries cn ON st.country_id = cn.country_id`

func (r *jobRepo) scanJob(row pgx.Row) (*domain.Job, error) {
	var job domain.Job
	var deadline, posted *time.Time
	err := row.Scan(
		&job.JobID, &job.Title, &job.Description, &job.EducationRequirement,
		&job.ExperienceYears, &job.JobType, &job.SalaryPackage, &job.Location,
		&deadline, &job.Benefits, &job.ContactEmail, &job.Status,
		&posted, &job.CompanyName, &job.CompanyID,
		&job.SectorName, &job.SectorID,
		&job.CourseName, &job.CourseID,
		&job.CityName, &job.CityID,
		&job.StateName, &job.StateID,
		&job.CountryName, &job.CountryID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	job.ApplicationDeadline = fmtRFC3339(deadline)
	job.PostedDate = fmtRFC3339(posted)
	return &job, nil
}

func (r *jobRepo) fetchSkills(ctx context.Context, jobID int64) ([]domain.JobSkillRef, error) {
	query := `
		SELECT sk.skill_id, sk.skill_name
		FROM job_skills js
		INNER JOIN job_skills_master sk ON js.skill_id = sk.skill_id
		WHERE js.job_id = $1`

	rows, err := r.db.Query(ctx, query, jobID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	skills := []domain.JobSkillRef{}
	for rows.Next() {
		var s domain.JobSkillRef
		if err := rows.Scan(&s.SkillID, &s.SkillName); err != nil {
			return nil, err
		}
		skills = append(skills, s)
	}
	return skills, rows.Err()
}

func (r *jobRepo) GetByID(ctx context.Context, id int64) (*domain.Job, error) {
	query := `SELECT` + jobSelectColumns + jobSelectJoins + ` WHERE j.job_id = $1`
	job, err := r.scanJob(r.db.QueryRow(ctx, query, id))
	if err != nil {
		return nil, err
	}
	job.Skills, err = r.fetchSkills(ctx, job.JobID)
	if err != nil {
		return nil, err
	}
	return job, nil
}

func (r *jobRepo) collectJobs(ctx context.Context, rows pgx.Rows) ([]domain.Job, error) {
	defer rows.Close()

	var jobs []domain.Job
	for rows.Next() {
		job, err := r.scanJob(rows)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, *job)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range jobs {
		skills, err := r.fetchSkills(ctx, jobs[i].JobID)
		if err != nil {
			return nil, err
		}
		jobs[i].Skills = skills
	}
	return jobs, nil
}

func (r *jobRepo) Fetch(ctx context.Context) ([]domain.Job, error) {
	query := `SELECT` + jobSelectColumns + jobSelectJoins + ` ORDER BY j.posted_date DESC`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	return r.collectJobs(ctx, rows)
}

// Search applies only the filters present; experience bounds are inclusive
// and only open jobs are considered.
func (r *jobRepo) Search(ctx context.Context, filter *domain.JobSearchFilter) ([]domain.Job, error) {
	query := `SELECT DISTINCT` + jobSelectColumns + jobSelectJoins + ` WHERE j.job_status = 'Open'`
	var params []any

	addParam := func(clause string, value any) {
		params = append(params, value)
		query += fmt.Sprintf(clause, len(params))
	}

	if filter.Keyword != "" {
		params = append(params, "%"+filter.Keyword+"%")
		n := len(params)
		query += fmt.Sprintf(" AND (j.job_title ILIKE $%d OR j.job_description ILIKE $%d OR c.company_name ILIKE $%d)", n, n, n)
	}
	if filter.Location != "" {
		addParam(" AND j.job_location ILIKE $%d", "%"+filter.Location+"%")
	}
	if filter.JobType != "" {
		addParam(" AND j.job_type = $%d", filter.JobType)
	}
	if filter.ExperienceMin != nil {
		addParam(" AND j.experience_years >= $%d", *filter.ExperienceMin)
	}
	if filter.ExperienceMax != nil {
		addParam(" AND j.experience_years <= $%d", *filter.ExperienceMax)
	}
	if filter.SectorID != nil {
		addParam(" AND j.sector_id = $%d", *filter.SectorID)
	}
	if filter.CourseID != nil {
		addParam(" AND j.course_id = $%d", *filter.CourseID)
	}

	query += ` ORDER BY j.posted_date DESC`

	rows, err := r.db.Query(ctx, query, params...)
	if err != nil {
		return nil, err
	}
	return r.collectJobs(ctx, rows)
}

func (r *jobRepo) Delete(ctx context.Context, id int64) error {
	result, err := r.db.Exec(ctx, `DELETE FROM jobs WHERE job_id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

package postgres

import (
	"context"
	"time"

	"resume-portal-backend/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type masterDataRepo struct {
	db *pgxpool.Pool
}

func NewMasterDataRepository(db *pgxpool.Pool) domain.MasterDataRepository {
	return &masterDataRepo{db: db}
}

func (r *masterDataRepo) FetchSectors(ctx context.Context) ([]domain.Sector, error) {
	query := `
		SELECT sector_id, sector_name, COALESCE(description, ''), is_active
		FROM sectors
		WHERE is_active
		ORDER BY sector_name`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	sectors := []domain.Sector{}
	for rows.Next() {
		var s domain.Sector
		if err := rows.Scan(&s.ID, &s.Name, &s.Description, &s.IsActive); err != nil {
			return nil, err
		}
		sectors = append(sectors, s)
	}
	return sectors, rows.Err()
}

func (r *masterDataRepo) FetchCourses(ctx context.Context) ([]domain.Course, error) {
	query := `
		SELECT course_id, course_name, COALESCE(course_type, ''), COALESCE(duration, ''), is_active
		FROM courses
		WHERE is_active
		ORDER BY course_name`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	courses := []domain.Course{}
	for rows.Next() {
		var c domain.Course
		if err := rows.Scan(&c.ID, &c.Name, &c.Type, &c.Duration, &c.IsActive); err != nil {
			return nil, err
		}
		courses = append(courses, c)
	}
	return courses, rows.Err()
}

func (r *masterDataRepo) FetchSkills(ctx context.Context) ([]domain.SkillMaster, error) {
	query := `
		SELECT skill_id, skill_name, COALESCE(category, ''), is_active
		FROM job_skills_master
		WHERE is_active
		ORDER BY skill_name`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	skills := []domain.SkillMaster{}
	for rows.Next() {
		var s domain.SkillMaster
		if err := rows.Scan(&s.ID, &s.Name, &s.Category, &s.IsActive); err != nil {
			return nil, err
		}
		skills = append(skills, s)
	}
	return skills, rows.Err()
}

func (r *masterDataRepo) FetchCountries(ctx context.Context) ([]domain.Country, error) {
	query := `
		SELECT country_id, country_name, COALESCE(country_code, ''), is_active
		FROM countries
		WHERE is_active
		ORDER BY country_name`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	countries := []domain.Country{}
	for rows.Next() {
		var c domain.Country
		if err := rows.Scan(&c.ID, &c.Name, &c.Code, &c.IsActive); err != nil {
			return nil, err
		}
		countries = append(countries, c)
	}
	return countries, rows.Err()
}

func (r *masterDataRepo) FetchStates(ctx context.Context, countryID *int64) ([]domain.State, error) {
	query := `
		SELECT state_id, state_name, COALESCE(state_code, ''), country_id, is_active
		FROM states
		WHERE is_active AND ($1::bigint IS NULL OR country_id = $1)
		ORDER BY state_name`

	rows, err := r.db.Query(ctx, query, countryID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	states := []domain.State{}
	for rows.Next() {
		var s domain.State
		if err := rows.Scan(&s.ID, &s.Name, &s.Code, &s.CountryID, &s.IsActive); err != nil {
			return nil, err
		}
		states = append(states, s)
	}
	return states, rows.Err()
}

func (r *masterDataRepo) FetchCities(ctx context.Context, stateID *int64) ([]domain.City, error) {
	query := `
		SELECT city_id, city_name, state_id, is_active
		FROM cities
		WHERE is_active AND ($1::bigint IS NULL OR state_id = $1)
		ORDER BY city_name`

	rows, err := r.db.Query(ctx, query, stateID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cities := []domain.City{}
	for rows.Next() {
		var c domain.City
		if err := rows.Scan(&c.ID, &c.Name, &c.StateID, &c.IsActive); err != nil {
			return nil, err
		}
		cities = append(cities, c)
	}
	return cities, rows.Err()
}

func (r *masterDataRepo) FetchCompanies(ctx context.Context) ([]domain.Company, error) {
	query := `SELECT company_id, company_name, created_at FROM companies ORDER BY company_name`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	companies := []domain.Company{}
	for rows.Next() {
		var c domain.Company
		var created *time.Time
		if err := rows.Scan(&c.CompanyID, &c.CompanyName, &created); err != nil {
			return nil, err
		}
		c.CreatedAt = fmtRFC3339(created)
		companies = append(companies, c)
	}
	return companies, rows.Err()
}

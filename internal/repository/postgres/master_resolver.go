package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
)

// masterDataResolver implements the get-or-create pattern for the lookup
// tables referenced by job postings. Names match case-sensitively; the first
// writer of a name owns the row and later postings reuse it.
//
// Two concurrent postings naming a brand-new value can both miss the select
// and insert duplicate rows. The legacy contract accepts that race, so no
// ON CONFLICT guard is applied here.
type masterDataResolver struct{}

func (masterDataResolver) resolve(ctx context.Context, tx pgx.Tx, selectQuery, insertQuery string, args ...any) (int64, error) {
	var id int64
	err := tx.QueryRow(ctx, selectQuery, args...).Scan(&id)
	if err == nil {
		return id, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return 0, err
	}
	if err := tx.QueryRow(ctx, insertQuery, args...).Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

func (m masterDataResolver) Company(ctx context.Context, tx pgx.Tx, name string) (int64, error) {
	return m.resolve(ctx, tx,
		`SELECT company_id FROM companies WHERE company_name = $1`,
		`INSERT INTO companies (company_name) VALUES ($1) RETURNING company_id`,
		name)
}

func (m masterDataResolver) Sector(ctx context.Context, tx pgx.Tx, name string) (int64, error) {
	return m.resolve(ctx, tx,
		`SELECT sector_id FROM sectors WHERE sector_name = $1`,
		`INSERT INTO sectors (sector_name, is_active) VALUES ($1, TRUE) RETURNING sector_id`,
		name)
}

func (m masterDataResolver) Course(ctx context.Context, tx pgx.Tx, name string) (int64, error) {
	return m.resolve(ctx, tx,
		`SELECT course_id FROM courses WHERE course_name = $1`,
		`INSERT INTO courses (course_name, is_active) VALUES ($1, TRUE) RETURNING course_id`,
		name)
}

func (m masterDataResolver) Country(ctx context.Context, tx pgx.Tx, name string) (int64, error) {
	return m.resolve(ctx, tx,
		`SELECT country_id FROM countries WHERE country_name = $1`,
		`INSERT INTO countries (country_name, is_active) VALUES ($1, TRUE) RETURNING country_id`,
		name)
}

func (m masterDataResolver) State(ctx context.Context, tx pgx.Tx, name string, countryID int64) (int64, error) {
	return m.resolve(ctx, tx,
		`SELECT state_id FROM states WHERE state_name = $1 AND country_id = $2`,
		`INSERT INTO states (state_name, country_id, is_active) VALUES ($1, $2, TRUE) RETURNING state_id`,
		name, countryID)
}

func (m masterDataResolver) City(ctx context.Context, tx pgx.Tx, name string, stateID int64) (int64, error) {
	return m.resolve(ctx, tx,
		`SELECT city_id FROM cities WHERE city_name = $1 AND state_id = $2`,
		`INSERT INTO cities (city_name, state_id, is_active) VALUES ($1, $2, TRUE) RETURNING city_id`,
		name, stateID)
}

func (m masterDataResolver) Skill(ctx context.Context, tx pgx.Tx, name string) (int64, error) {
	return m.resolve(ctx, tx,
		`SELECT skill_id FROM job_skills_master WHERE skill_name = $1`,
		`INSERT INTO job_skills_master (skill_name, is_active) VALUES ($1, TRUE) RETURNING skill_id`,
		name)
}

package postgres

import (
	"context"
	"time"

	"resume-portal-backend/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type analyticsRepo struct {
	db *pgxpool.Pool
}

func NewAnalyticsRepository(db *pgxpool.Pool) domain.AnalyticsRepository {
	return &analyticsRepo{db: db}
}

func (r *analyticsRepo) Totals(ctx context.Context) (*domain.AnalyticsTotals, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM resumes),
			(SELECT COUNT(*) FROM users),
			(SELECT COALESCE(SUM(COALESCE(visitor_count, 0)), 0) FROM resumes),
			(SELECT COALESCE(SUM(COALESCE(download_count, 0)), 0) FROM resumes),
			(SELECT COUNT(*) FROM jobs)`

	var t domain.AnalyticsTotals
	err := r.db.QueryRow(ctx, query).Scan(&t.Resumes, &t.Users, &t.Views, &t.Downloads, &t.Jobs)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *analyticsRepo) RecentActivity(ctx context.Context, days int) (*domain.AnalyticsRecent, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM resumes WHERE created_date >= NOW() - make_interval(days => $1)),
			(SELECT COUNT(*) FROM jobs WHERE posted_date >= NOW() - make_interval(days => $1))`

	var recent domain.AnalyticsRecent
	err := r.db.QueryRow(ctx, query, days).Scan(&recent.ResumesLast7Days, &recent.JobsLast7Days)
	if err != nil {
		return nil, err
	}
	return &recent, nil
}

func (r *analyticsRepo) TopLocations(ctx context.Context, limit int) ([]domain.LocationCount, error) {
	query := `
		SELECT location, COUNT(*) AS count
		FROM personal_information
		WHERE location IS NOT NULL
		GROUP BY location
		ORDER BY count DESC
		LIMIT $1`

	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	locations := []domain.LocationCount{}
	for rows.Next() {
		var lc domain.LocationCount
		if err := rows.Scan(&lc.Location, &lc.Count); err != nil {
			return nil, err
		}
		locations = append(locations, lc)
	}
	return locations, rows.Err()
}

func (r *analyticsRepo) TopSkills(ctx context.Context, limit int) ([]domain.SkillCount, error) {
	query := `
		SELECT skill_name, COUNT(*) AS count
		FROM skills
		GROUP BY skill_name
		ORDER BY count DESC
		LIMIT $1`

	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	skills := []domain.SkillCount{}
	for rows.Next() {
		var sc domain.SkillCount
		if err := rows.Scan(&sc.Skill, &sc.Count); err != nil {
			return nil, err
		}
		skills = append(skills, sc)
	}
	return skills, rows.Err()
}

func (r *analyticsRepo) ResumeTimeline(ctx context.Context, days int) ([]domain.TimelinePoint, error) {
	query := `
		SELECT created_date::date AS date, COUNT(*) AS count
		FROM resumes
		WHERE created_date >= NOW() - make_interval(days => $1)
		GROUP BY created_date::date
		ORDER BY date`

	rows, err := r.db.Query(ctx, query, days)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	timeline := []domain.TimelinePoint{}
	for rows.Next() {
		var day time.Time
		var count int64
		if err := rows.Scan(&day, &count); err != nil {
			return nil, err
		}
		timeline = append(timeline, domain.TimelinePoint{
			Date:  day.Format("2006-01-02"),
			Count: count,
		})
	}
	return timeline, rows.Err()
}

func (r *analyticsRepo) EntityCounts(ctx context.Context) (*domain.EntityCounts, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM users),
			(SELECT COUNT(*) FROM resumes),
			(SELECT COUNT(*) FROM jobs)`

	var counts domain.EntityCounts
	err := r.db.QueryRow(ctx, query).Scan(&counts.Users, &counts.Resumes, &counts.Jobs)
	if err != nil {
		return nil, err
	}
	return &counts, nil
}

package usecase

import (
	"context"

	"resume-portal-backend/internal/domain"
)

const (
	recentActivityDays = 7
	timelineDays       = 30
	topListLimit       = 10
)

type analyticsUsecase struct {
	repo domain.AnalyticsRepository
}

func NewAnalyticsUsecase(repo domain.AnalyticsRepository) domain.AnalyticsUsecase {
	return &analyticsUsecase{repo: repo}
}

func (u *analyticsUsecase) Overview(ctx context.Context) (*domain.AnalyticsOverview, error) {
	totals, err := u.repo.Totals(ctx)
	if err != nil {
		return nil, err
	}
	recent, err := u.repo.RecentActivity(ctx, recentActivityDays)
	if err != nil {
		return nil, err
	}
	locations, err := u.repo.TopLocations(ctx, topListLimit)
	if err != nil {
		return nil, err
	}
	skills, err := u.repo.TopSkills(ctx, topListLimit)
	if err != nil {
		return nil, err
	}

	return &domain.AnalyticsOverview{
		Totals:    *totals,
		Recent:    *recent,
		Locations: locations,
		Skills:    skills,
	}, nil
}

func (u *analyticsUsecase) Timeline(ctx context.Context) ([]domain.TimelinePoint, error) {
	return u.repo.ResumeTimeline(ctx, timelineDays)
}

func (u *analyticsUsecase) Counts(ctx context.Context) (*domain.EntityCounts, error) {
	return u.repo.EntityCounts(ctx)
}

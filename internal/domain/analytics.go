package domain

import "context"

type AnalyticsTotals struct {
	Resumes   int64 `json:"resumes"`
	Users     int64 `json:"users"`
	Views     int64 `json:"views"`
	Downloads int64 `json:"downloads"`
	Jobs      int64 `json:"jobs"`
}

type AnalyticsRecent struct {
	ResumesLast7Days int64 `json:"resumes_last_7_days"`
	JobsLast7Days    int64 `json:"jobs_last_7_days"`
}

type LocationCount struct {
	Location string `json:"location"`
	Count    int64  `json:"count"`
}

type SkillCount struct {
	Skill string `json:"skill"`
	Count int64  `json:"count"`
}

type AnalyticsOverview struct {
	Totals    AnalyticsTotals `json:"totals"`
	Recent    AnalyticsRecent `json:"recent"`
	Locations []LocationCount `json:"locations"`
	Skills    []SkillCount    `json:"skills"`
}

type TimelinePoint struct {
	Date  string `json:"date"`
	Count int64  `json:"count"`
}

// EntityCounts feeds the health endpoint and the startup probe.
type EntityCounts struct {
	Users   int64
	Resumes int64
	Jobs    int64
}

type AnalyticsRepository interface {
	Totals(ctx context.Context) (*AnalyticsTotals, error)
	RecentActivity(ctx context.Context, days int) (*AnalyticsRecent, error)
	TopLocations(ctx context.Context, limit int) ([]LocationCount, error)
	TopSkills(ctx context.Context, limit int) ([]SkillCount, error)
	ResumeTimeline(ctx context.Context, days int) ([]TimelinePoint, error)
	EntityCounts(ctx context.Context) (*EntityCounts, error)
}

type AnalyticsUsecase interface {
	Overview(ctx context.Context) (*AnalyticsOverview, error)
	Timeline(ctx context.Context) ([]TimelinePoint, error)
	Counts(ctx context.Context) (*EntityCounts, error)
}

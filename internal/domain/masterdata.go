package domain

import "context"

type Sector struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	IsActive    bool   `json:"isActive"`
}

type Course struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Type     string `json:"type"`
	Duration string `json:"duration"`
	IsActive bool   `json:"isActive"`
}

type SkillMaster struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
	IsActive bool   `json:"isActive"`
}

type Country struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Code     string `json:"code"`
	IsActive bool   `json:"isActive"`
}

type State struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Code      string `json:"code"`
	CountryID int64  `json:"countryId"`
	IsActive  bool   `json:"isActive"`
}

type City struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	StateID  int64  `json:"stateId"`
	IsActive bool   `json:"isActive"`
}

type Company struct {
	CompanyID   int64   `json:"companyId"`
	CompanyName string  `json:"companyName"`
	CreatedAt   *string `json:"createdAt"`
}

type MasterDataRepository interface {
	FetchSectors(ctx context.Context) ([]Sector, error)
	FetchCourses(ctx context.Context) ([]Course, error)
	FetchSkills(ctx context.Context) ([]SkillMaster, error)
	FetchCountries(ctx context.Context) ([]Country, error)
	// FetchStates and FetchCities filter by parent scope when the id is
	// non-nil.
	FetchStates(ctx context.Context, countryID *int64) ([]State, error)
	FetchCities(ctx context.Context, stateID *int64) ([]City, error)
	FetchCompanies(ctx context.Context) ([]Company, error)
}

type MasterDataUsecase interface {
	ListSectors(ctx context.Context) ([]Sector, error)
	ListCourses(ctx context.Context) ([]Course, error)
	ListSkills(ctx context.Context) ([]SkillMaster, error)
	ListCountries(ctx context.Context) ([]Country, error)
	ListStates(ctx context.Context, countryID *int64) ([]State, error)
	ListCities(ctx context.Context, stateID *int64) ([]City, error)
	ListCompanies(ctx context.Context) ([]Company, error)
}

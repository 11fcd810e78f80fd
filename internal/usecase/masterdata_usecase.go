package usecase

import (
	"context"

	"resume-portal-backend/internal/domain"
)

type masterDataUsecase struct {
	repo domain.MasterDataRepository
}

func NewMasterDataUsecase(repo domain.MasterDataRepository) domain.MasterDataUsecase {
	return &masterDataUsecase{repo: repo}
}

func (u *masterDataUsecase) ListSectors(ctx context.Context) ([]domain.Sector, error) {
	return u.repo.FetchSectors(ctx)
}

func (u *masterDataUsecase) ListCourses(ctx context.Context) ([]domain.Course, error) {
	return u.repo.FetchCourses(ctx)
}

func (u *masterDataUsecase) ListSkills(ctx context.Context) ([]domain.SkillMaster, error) {
	return u.repo.FetchSkills(ctx)
}

func (u *masterDataUsecase) ListCountries(ctx context.Context) ([]domain.Country, error) {
	return u.repo.FetchCountries(ctx)
}

func (u *masterDataUsecase) ListStates(ctx context.Context, countryID *int64) ([]domain.State, error) {
	return u.repo.FetchStates(ctx, countryID)
}

func (u *masterDataUsecase) ListCities(ctx context.Context, stateID *int64) ([]domain.City, error) {
	return u.repo.FetchCities(ctx, stateID)
}

func (u *masterDataUsecase) ListCompanies(ctx context.Context) ([]domain.Company, error) {
	return u.repo.FetchCompanies(ctx)
}

package usecases

import (
	"context"
	"fmt"
	"log/slog"

	"settings-server/internal/referencedata/domain"
)

type CountryService interface {
	ListCountries(ctx context.Context, pagination Pagination) ([]domain.Country, int, error)
	GetCountry(ctx context.Context, id int64) (domain.Country, error)
	SaveCountry(ctx context.Context, country domain.Country) (domain.Country, error)
	DeleteCountry(ctx context.Context, id int64) error
	CountryCodeExists(ctx context.Context, code string, excludeID int64) (bool, error)
	CountryNameExists(ctx context.Context, name string, excludeID int64) (bool, error)
}

func NewCountryService(countries CountryRepository) *SimpleCountryService {
	return &SimpleCountryService{
		countries: countries,
	}
}

var _ CountryService = (*SimpleCountryService)(nil)

type SimpleCountryService struct {
	countries CountryRepository
}

func (s *SimpleCountryService) ListCountries(ctx context.Context, pagination Pagination) ([]domain.Country, int, error) {
	countries, total, err := s.countries.FindAll(ctx, pagination)
	if err != nil {
		return nil, 0, fmt.Errorf("finding countries: %w", err)
	}

	return countries, total, nil
}

func (s *SimpleCountryService) GetCountry(ctx context.Context, id int64) (domain.Country, error) {
	return s.countries.GetByID(ctx, id)
}

// SaveCountry creates when the id is zero and updates otherwise. Either
// path rejects a code or name already taken by another row.
func (s *SimpleCountryService) SaveCountry(ctx context.Context, country domain.Country) (domain.Country, error) {
	codeTaken, err := s.countries.CodeExists(ctx, country.CountryCode, country.ID)
	if err != nil {
		return domain.Country{}, fmt.Errorf("checking country code: %w", err)
	}
	nameTaken, err := s.countries.NameExists(ctx, country.CountryName, country.ID)
	if err != nil {
		return domain.Country{}, fmt.Errorf("checking country name: %w", err)
	}
	if codeTaken || nameTaken {
		return domain.Country{}, ErrCountryDuplicated
	}

	if country.IsNew() {
		country.StampCreated()
		created, err := s.countries.Create(ctx, country)
		if err != nil {
			return domain.Country{}, fmt.Errorf("creating country: %w", err)
		}
		slog.Info("country created",
			slog.Int64("id", created.ID),
			slog.String("code", created.CountryCode),
		)
		return created, nil
	}

	existing, err := s.countries.GetByID(ctx, country.ID)
	if err != nil {
		return domain.Country{}, err
	}

	existing.CountryCode = country.CountryCode
	existing.CountryName = country.CountryName
	existing.IsActive = country.IsActive
	existing.StampModified()

	err = s.countries.Update(ctx, existing)
	if err != nil {
		return domain.Country{}, fmt.Errorf("updating country: %w", err)
	}

	return existing, nil
}

func (s *SimpleCountryService) DeleteCountry(ctx context.Context, id int64) error {
	_, err := s.countries.GetByID(ctx, id)
	if err != nil {
		return err
	}

	err = s.countries.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("deleting country: %w", err)
	}

	slog.Info("country deleted", slog.Int64("id", id))
	return nil
}

func (s *SimpleCountryService) CountryCodeExists(ctx context.Context, code string, excludeID int64) (bool, error) {
	return s.countries.CodeExists(ctx, code, excludeID)
}

func (s *SimpleCountryService) CountryNameExists(ctx context.Context, name string, excludeID int64) (bool, error) {
	return s.countries.NameExists(ctx, name, excludeID)
}

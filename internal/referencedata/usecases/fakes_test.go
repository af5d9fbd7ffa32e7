package usecases_test

import (
	"context"
	"sort"
	"strings"

	"settings-server/internal/referencedata/domain"
	"settings-server/internal/referencedata/usecases"
)

type fakeCountryRepository struct {
	nextID    int64
	countries map[int64]domain.Country
}

func newFakeCountryRepository() *fakeCountryRepository {
	return &fakeCountryRepository{
		nextID:    1,
		countries: make(map[int64]domain.Country),
	}
}

var _ usecases.CountryRepository = (*fakeCountryRepository)(nil)

func (f *fakeCountryRepository) Create(_ context.Context, country domain.Country) (domain.Country, error) {
	country.ID = f.nextID
	f.nextID++
	f.countries[country.ID] = country
	return country, nil
}

func (f *fakeCountryRepository) Update(_ context.Context, country domain.Country) error {
	f.countries[country.ID] = country
	return nil
}

func (f *fakeCountryRepository) GetByID(_ context.Context, id int64) (domain.Country, error) {
	country, ok := f.countries[id]
	if !ok {
		return domain.Country{}, usecases.ErrCountryNotFound
	}
	return country, nil
}

func (f *fakeCountryRepository) FindAll(_ context.Context, pagination usecases.Pagination) ([]domain.Country, int, error) {
	all := make([]domain.Country, 0, len(f.countries))
	for _, country := range f.countries {
		all = append(all, country)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].CountryName < all[j].CountryName })

	total := len(all)
	if pagination.Offset >= total {
		return nil, total, nil
	}
	all = all[pagination.Offset:]
	if pagination.Limit > 0 && pagination.Limit < len(all) {
		all = all[:pagination.Limit]
	}
	return all, total, nil
}

func (f *fakeCountryRepository) CodeExists(_ context.Context, code string, excludeID int64) (bool, error) {
	for _, country := range f.countries {
		if country.ID != excludeID && strings.EqualFold(country.CountryCode, code) {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeCountryRepository) NameExists(_ context.Context, name string, excludeID int64) (bool, error) {
	for _, country := range f.countries {
		if country.ID != excludeID && strings.EqualFold(country.CountryName, name) {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeCountryRepository) Delete(_ context.Context, id int64) error {
	delete(f.countries, id)
	return nil
}

type fakeGeneralCodeRepository struct {
	nextID int64
	codes  map[int64]domain.GeneralCode
}

func newFakeGeneralCodeRepository() *fakeGeneralCodeRepository {
	return &fakeGeneralCodeRepository{
		nextID: 1,
		codes:  make(map[int64]domain.GeneralCode),
	}
}

var _ usecases.GeneralCodeRepository = (*fakeGeneralCodeRepository)(nil)

func (f *fakeGeneralCodeRepository) Create(_ context.Context, code domain.GeneralCode) (domain.GeneralCode, error) {
	code.ID = f.nextID
	f.nextID++
	f.codes[code.ID] = code
	return code, nil
}

func (f *fakeGeneralCodeRepository) Update(_ context.Context, code domain.GeneralCode) error {
	f.codes[code.ID] = code
	return nil
}

func (f *fakeGeneralCodeRepository) GetByID(_ context.Context, id int64) (domain.GeneralCode, error) {
	code, ok := f.codes[id]
	if !ok {
		return domain.GeneralCode{}, usecases.ErrGeneralCodeNotFound
	}
	return code, nil
}

func (f *fakeGeneralCodeRepository) GetByNaturalKey(_ context.Context, codeType, codeNumber int, languageCode string) (domain.GeneralCode, error) {
	for _, code := range f.codes {
		if code.CodeType == codeType && code.CodeNumber == codeNumber && strings.EqualFold(code.LanguageCode, languageCode) {
			return code, nil
		}
	}
	return domain.GeneralCode{}, usecases.ErrGeneralCodeNotFound
}

func (f *fakeGeneralCodeRepository) FindAll(_ context.Context, filter usecases.GeneralCodeFilter, pagination usecases.Pagination) ([]domain.GeneralCode, int, error) {
	var all []domain.GeneralCode
	for _, code := range f.codes {
		if filter.CodeType != nil && code.CodeType != *filter.CodeType {
			continue
		}
		if filter.LanguageCode != "" && !strings.EqualFold(code.LanguageCode, filter.LanguageCode) {
			continue
		}
		all = append(all, code)
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].CodeType != all[j].CodeType {
			return all[i].CodeType < all[j].CodeType
		}
		return all[i].CodeNumber < all[j].CodeNumber
	})

	total := len(all)
	if pagination.Offset >= total {
		return nil, total, nil
	}
	all = all[pagination.Offset:]
	if pagination.Limit > 0 && pagination.Limit < len(all) {
		all = all[:pagination.Limit]
	}
	return all, total, nil
}

func (f *fakeGeneralCodeRepository) Exists(_ context.Context, codeType, codeNumber int, languageCode string, excludeID int64) (bool, error) {
	for _, code := range f.codes {
		if code.ID == excludeID {
			continue
		}
		if code.CodeType == codeType && code.CodeNumber == codeNumber && strings.EqualFold(code.LanguageCode, languageCode) {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeGeneralCodeRepository) Delete(_ context.Context, id int64) error {
	delete(f.codes, id)
	return nil
}
